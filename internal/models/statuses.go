package models

type UserRole string
type ComplaintStatus string
type ComplaintPriority string
type CategoryType string

const (
	UserRoleUser         UserRole = "user"
	UserRoleWorker       UserRole = "worker"
	UserRoleOrganization UserRole = "organization"
	UserRoleAdmin        UserRole = "admin"

	ComplaintStatusOpen       ComplaintStatus = "Open"
	ComplaintStatusInProgress ComplaintStatus = "In Progress"
	ComplaintStatusResolved   ComplaintStatus = "Resolved"
	ComplaintStatusRejected   ComplaintStatus = "Rejected"

	ComplaintPriorityLow    ComplaintPriority = "Low"
	ComplaintPriorityMedium ComplaintPriority = "Medium"
	ComplaintPriorityHigh   ComplaintPriority = "High"

	CategoryTypeWorker CategoryType = "worker"
	CategoryTypeIssue  CategoryType = "issue"
)

// AllRoles is the closed set of roles; role dispatch must be exhaustive
// over this list.
var AllRoles = []UserRole{
	UserRoleUser,
	UserRoleWorker,
	UserRoleOrganization,
	UserRoleAdmin,
}

func (r UserRole) Valid() bool {
	switch r {
	case UserRoleUser, UserRoleWorker, UserRoleOrganization, UserRoleAdmin:
		return true
	}
	return false
}

func (s ComplaintStatus) Valid() bool {
	switch s {
	case ComplaintStatusOpen, ComplaintStatusInProgress, ComplaintStatusResolved, ComplaintStatusRejected:
		return true
	}
	return false
}

func (p ComplaintPriority) Valid() bool {
	switch p {
	case ComplaintPriorityLow, ComplaintPriorityMedium, ComplaintPriorityHigh:
		return true
	}
	return false
}

func (t CategoryType) Valid() bool {
	return t == CategoryTypeWorker || t == CategoryTypeIssue
}

// statusTransitions is the explicit complaint lifecycle. The original
// behavior left transitions unconstrained; this table closes that gap:
// open complaints can move anywhere, in-progress ones can be finished
// or pushed back, and terminal states can only be reopened.
var statusTransitions = map[ComplaintStatus][]ComplaintStatus{
	ComplaintStatusOpen:       {ComplaintStatusInProgress, ComplaintStatusResolved, ComplaintStatusRejected},
	ComplaintStatusInProgress: {ComplaintStatusResolved, ComplaintStatusRejected, ComplaintStatusOpen},
	ComplaintStatusResolved:   {ComplaintStatusOpen},
	ComplaintStatusRejected:   {ComplaintStatusOpen},
}

// CanTransition reports whether a complaint may move from one status to
// another. Self-transitions are no-ops and always allowed.
func CanTransition(from, to ComplaintStatus) bool {
	if from == to {
		return true
	}
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

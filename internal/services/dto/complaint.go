package dto

// CreateComplaintRequest carries the form fields of the multipart
// complaint submission; files arrive separately.
type CreateComplaintRequest struct {
	Title       string `form:"title" json:"title" validate:"required,min=3,max=200"`
	Description string `form:"description" json:"description" validate:"required,min=3"`
	Category    string `form:"category" json:"category" validate:"max=100"`
	Priority    string `form:"priority" json:"priority" validate:"omitempty,is-complaint-priority"`
	// Organization names the organization the complaint is filed
	// against. Actors affiliated with an organization always file
	// into their own; everyone else must name one.
	Organization string `form:"organization" json:"organization" validate:"omitempty,max=200"`
}

// UpdateComplaintRequest is a whitelist-checked patch. Nil fields are
// left untouched; Version, when set, must match the stored complaint.
type UpdateComplaintRequest struct {
	Title              *string `json:"title" validate:"omitempty,min=3,max=200"`
	Description        *string `json:"description" validate:"omitempty,min=3"`
	Category           *string `json:"category" validate:"omitempty,max=100"`
	Priority           *string `json:"priority" validate:"omitempty,is-complaint-priority"`
	Status             *string `json:"status" validate:"omitempty,is-complaint-status"`
	Progress           *int    `json:"progress" validate:"omitempty,min=0,max=100"`
	AssignedWorkerName *string `json:"assignedWorkerName" validate:"omitempty,max=100"`
	Organization       *string `json:"organization" validate:"omitempty,min=1,max=200"`
	Version            *int    `json:"version" validate:"omitempty,min=1"`
}

// Fields lists the names of the fields the patch actually sets, for
// the per-role whitelist check.
func (r *UpdateComplaintRequest) Fields() []string {
	var fields []string
	if r.Title != nil {
		fields = append(fields, "title")
	}
	if r.Description != nil {
		fields = append(fields, "description")
	}
	if r.Category != nil {
		fields = append(fields, "category")
	}
	if r.Priority != nil {
		fields = append(fields, "priority")
	}
	if r.Status != nil {
		fields = append(fields, "status")
	}
	if r.Progress != nil {
		fields = append(fields, "progress")
	}
	if r.AssignedWorkerName != nil {
		fields = append(fields, "assignedWorkerName")
	}
	if r.Organization != nil {
		fields = append(fields, "organization")
	}
	return fields
}

// ProgressUpdateRequest is the worker's "update progress" action.
type ProgressUpdateRequest struct {
	Progress *int   `json:"progress" validate:"required,min=0,max=100"`
	Status   string `json:"status" validate:"omitempty,is-complaint-status"`
	WorkNote string `json:"workNote" validate:"required,min=1,max=2000"`
	Version  *int   `json:"version" validate:"omitempty,min=1"`
}

// ListComplaintsQuery is the admin-visible listing filter; other roles
// are scoped server-side regardless of what they pass.
type ListComplaintsQuery struct {
	UserID       string `form:"userId"`
	Organization string `form:"organization"`
	Status       string `form:"status" validate:"omitempty,is-complaint-status"`
}

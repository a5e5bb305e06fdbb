package auth

import (
	"trackify_backend/internal/models"
)

// Per-role whitelists of complaint fields a PUT may touch. Anything
// outside the actor's list is rejected, replacing the old unbounded
// shallow merge.
var patchableFields = map[models.UserRole]map[string]bool{
	models.UserRoleUser: {
		"title":       true,
		"description": true,
		"category":    true,
		"priority":    true,
	},
	models.UserRoleWorker: {
		"status":   true,
		"progress": true,
	},
	models.UserRoleOrganization: {
		"status":             true,
		"priority":           true,
		"assignedWorkerName": true,
	},
	models.UserRoleAdmin: {
		"title":              true,
		"description":        true,
		"category":           true,
		"priority":           true,
		"status":             true,
		"progress":           true,
		"assignedWorkerName": true,
		"organization":       true,
	},
}

// CanPatchField reports whether the role may update the named
// complaint field.
func CanPatchField(role models.UserRole, field string) bool {
	fields, exists := patchableFields[role]
	if !exists {
		return false
	}
	return fields[field]
}

// PatchableFields returns the whitelist for a role; admins see the
// full set.
func PatchableFields(role models.UserRole) []string {
	fields := patchableFields[role]
	out := make([]string, 0, len(fields))
	for f := range fields {
		out = append(out, f)
	}
	return out
}

// CanReopen reports whether the role may move a complaint out of a
// terminal status. Rejected complaints need organization or admin;
// resolved ones may also be reopened by their owner.
func CanReopen(role models.UserRole, from models.ComplaintStatus) bool {
	switch from {
	case models.ComplaintStatusRejected:
		return role == models.UserRoleAdmin || role == models.UserRoleOrganization
	case models.ComplaintStatusResolved:
		return role != models.UserRoleWorker
	}
	return true
}

func IsAdmin(role models.UserRole) bool {
	return role == models.UserRoleAdmin
}

// IsStaff reports whether the role acts on complaints it did not file.
func IsStaff(role models.UserRole) bool {
	return role == models.UserRoleAdmin || role == models.UserRoleOrganization || role == models.UserRoleWorker
}

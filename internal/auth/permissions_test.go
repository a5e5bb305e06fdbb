package auth

import (
	"testing"

	"trackify_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCanPatchField(t *testing.T) {
	// users edit their own complaint content but never its workflow
	assert.True(t, CanPatchField(models.UserRoleUser, "title"))
	assert.True(t, CanPatchField(models.UserRoleUser, "description"))
	assert.True(t, CanPatchField(models.UserRoleUser, "priority"))
	assert.False(t, CanPatchField(models.UserRoleUser, "status"))
	assert.False(t, CanPatchField(models.UserRoleUser, "assignedWorkerName"))
	assert.False(t, CanPatchField(models.UserRoleUser, "progress"))

	// workers drive the workflow but never rewrite the report
	assert.True(t, CanPatchField(models.UserRoleWorker, "status"))
	assert.True(t, CanPatchField(models.UserRoleWorker, "progress"))
	assert.False(t, CanPatchField(models.UserRoleWorker, "title"))
	assert.False(t, CanPatchField(models.UserRoleWorker, "assignedWorkerName"))

	// organizations triage and assign
	assert.True(t, CanPatchField(models.UserRoleOrganization, "status"))
	assert.True(t, CanPatchField(models.UserRoleOrganization, "priority"))
	assert.True(t, CanPatchField(models.UserRoleOrganization, "assignedWorkerName"))
	assert.False(t, CanPatchField(models.UserRoleOrganization, "description"))

	// rerouting a complaint to another organization is admin-only
	assert.False(t, CanPatchField(models.UserRoleUser, "organization"))
	assert.False(t, CanPatchField(models.UserRoleWorker, "organization"))
	assert.False(t, CanPatchField(models.UserRoleOrganization, "organization"))

	for _, field := range []string{"title", "description", "category", "priority", "status", "progress", "assignedWorkerName", "organization"} {
		assert.True(t, CanPatchField(models.UserRoleAdmin, field), "admin should patch %s", field)
	}

	assert.False(t, CanPatchField(models.UserRole("ghost"), "title"))
	assert.False(t, CanPatchField(models.UserRoleAdmin, "version"))
}

func TestCanReopen(t *testing.T) {
	assert.True(t, CanReopen(models.UserRoleAdmin, models.ComplaintStatusRejected))
	assert.True(t, CanReopen(models.UserRoleOrganization, models.ComplaintStatusRejected))
	assert.False(t, CanReopen(models.UserRoleUser, models.ComplaintStatusRejected))
	assert.False(t, CanReopen(models.UserRoleWorker, models.ComplaintStatusRejected))

	assert.True(t, CanReopen(models.UserRoleUser, models.ComplaintStatusResolved))
	assert.True(t, CanReopen(models.UserRoleOrganization, models.ComplaintStatusResolved))
	assert.False(t, CanReopen(models.UserRoleWorker, models.ComplaintStatusResolved))

	// non-terminal statuses are not gated here
	assert.True(t, CanReopen(models.UserRoleUser, models.ComplaintStatusOpen))
}

func TestRoleHelpers(t *testing.T) {
	assert.True(t, IsAdmin(models.UserRoleAdmin))
	assert.False(t, IsAdmin(models.UserRoleOrganization))

	assert.True(t, IsStaff(models.UserRoleWorker))
	assert.True(t, IsStaff(models.UserRoleOrganization))
	assert.True(t, IsStaff(models.UserRoleAdmin))
	assert.False(t, IsStaff(models.UserRoleUser))
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserRoleValid(t *testing.T) {
	for _, role := range AllRoles {
		assert.True(t, role.Valid(), "role %s should be valid", role)
	}

	assert.False(t, UserRole("superadmin").Valid())
	assert.False(t, UserRole("").Valid())
	assert.False(t, UserRole("Admin").Valid(), "role matching is case sensitive")
}

func TestComplaintStatusValid(t *testing.T) {
	assert.True(t, ComplaintStatusOpen.Valid())
	assert.True(t, ComplaintStatusInProgress.Valid())
	assert.True(t, ComplaintStatusResolved.Valid())
	assert.True(t, ComplaintStatusRejected.Valid())

	assert.False(t, ComplaintStatus("Closed").Valid())
	assert.False(t, ComplaintStatus("open").Valid())
}

func TestComplaintPriorityValid(t *testing.T) {
	assert.True(t, ComplaintPriorityLow.Valid())
	assert.True(t, ComplaintPriorityMedium.Valid())
	assert.True(t, ComplaintPriorityHigh.Valid())

	assert.False(t, ComplaintPriority("Urgent").Valid())
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from    ComplaintStatus
		to      ComplaintStatus
		allowed bool
	}{
		{ComplaintStatusOpen, ComplaintStatusInProgress, true},
		{ComplaintStatusOpen, ComplaintStatusResolved, true},
		{ComplaintStatusOpen, ComplaintStatusRejected, true},
		{ComplaintStatusInProgress, ComplaintStatusResolved, true},
		{ComplaintStatusInProgress, ComplaintStatusRejected, true},
		{ComplaintStatusInProgress, ComplaintStatusOpen, true},
		{ComplaintStatusResolved, ComplaintStatusOpen, true},
		{ComplaintStatusRejected, ComplaintStatusOpen, true},

		// terminal states can only be reopened, never swapped
		{ComplaintStatusResolved, ComplaintStatusInProgress, false},
		{ComplaintStatusResolved, ComplaintStatusRejected, false},
		{ComplaintStatusRejected, ComplaintStatusResolved, false},
		{ComplaintStatusRejected, ComplaintStatusInProgress, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestCanTransitionSelfIsNoop(t *testing.T) {
	for _, s := range []ComplaintStatus{ComplaintStatusOpen, ComplaintStatusInProgress, ComplaintStatusResolved, ComplaintStatusRejected} {
		assert.True(t, CanTransition(s, s), "self transition for %s", s)
	}
}

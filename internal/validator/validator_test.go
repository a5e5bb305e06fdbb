package validator

import (
	"testing"

	"trackify_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRegisterRequest(t *testing.T) {
	v := New()

	valid := dto.RegisterRequest{
		Name:     "Dana",
		Email:    "dana@example.com",
		Password: "super_password123",
		Role:     "user",
	}
	assert.NoError(t, v.Validate(&valid))

	invalid := dto.RegisterRequest{
		Name:     "Dana",
		Email:    "not-an-email",
		Password: "123",
		Role:     "superhero",
	}
	err := v.Validate(&invalid)
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)

	// field names come from json tags
	assert.Contains(t, vErr.Errors, "email")
	assert.Contains(t, vErr.Errors, "password")
	assert.Contains(t, vErr.Errors, "role")
	assert.NotContains(t, vErr.Errors, "name")
}

func TestValidateComplaintStatusTag(t *testing.T) {
	v := New()

	good := "In Progress"
	assert.NoError(t, v.Validate(&dto.UpdateComplaintRequest{Status: &good}))

	bad := "Closed"
	err := v.Validate(&dto.UpdateComplaintRequest{Status: &bad})
	require.Error(t, err)
	vErr := err.(*ValidationError)
	assert.Contains(t, vErr.Errors["status"], "valid status")
}

func TestValidateProgressUpdateRequest(t *testing.T) {
	v := New()

	progress := 50
	assert.NoError(t, v.Validate(&dto.ProgressUpdateRequest{
		Progress: &progress,
		WorkNote: "replaced the valve",
	}))

	// progress is required, zero included
	zero := 0
	assert.NoError(t, v.Validate(&dto.ProgressUpdateRequest{
		Progress: &zero,
		WorkNote: "starting",
	}))

	tooHigh := 150
	err := v.Validate(&dto.ProgressUpdateRequest{
		Progress: &tooHigh,
		WorkNote: "done",
	})
	require.Error(t, err)

	err = v.Validate(&dto.ProgressUpdateRequest{Progress: &progress})
	require.Error(t, err, "workNote is required")
}

func TestValidateOTPLength(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&dto.VerifyOTPRequest{Email: "a@b.com", OTP: "123456"}))
	assert.Error(t, v.Validate(&dto.VerifyOTPRequest{Email: "a@b.com", OTP: "123"}))
	assert.Error(t, v.Validate(&dto.VerifyOTPRequest{Email: "a@b.com", OTP: "1234567"}))
}

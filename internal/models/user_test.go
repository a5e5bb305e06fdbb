package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHasValidOTP(t *testing.T) {
	now := time.Now()
	expiry := now.Add(10 * time.Minute)

	user := &User{ResetOTP: "123456", ResetOTPExpiresAt: &expiry}

	assert.True(t, user.HasValidOTP("123456", now))
	assert.True(t, user.HasValidOTP("123456", now.Add(9*time.Minute)))

	assert.False(t, user.HasValidOTP("654321", now), "wrong code")
	assert.False(t, user.HasValidOTP("", now), "empty code")
	assert.False(t, user.HasValidOTP("123456", now.Add(10*time.Minute)), "expired exactly at the deadline")
	assert.False(t, user.HasValidOTP("123456", now.Add(time.Hour)), "expired")
}

func TestHasValidOTPWithoutPendingReset(t *testing.T) {
	user := &User{}
	assert.False(t, user.HasValidOTP("123456", time.Now()))

	// code set but expiry missing counts as invalid
	user.ResetOTP = "123456"
	assert.False(t, user.HasValidOTP("123456", time.Now()))
}

func TestSanitizedStripsSecrets(t *testing.T) {
	expiry := time.Now().Add(time.Minute)
	user := User{
		Name:              "Dana",
		Email:             "dana@example.com",
		PasswordHash:      "$2a$10$hash",
		ResetOTP:          "123456",
		ResetOTPExpiresAt: &expiry,
	}

	clean := user.Sanitized()

	assert.Empty(t, clean.PasswordHash)
	assert.Empty(t, clean.ResetOTP)
	assert.Nil(t, clean.ResetOTPExpiresAt)
	assert.Equal(t, "dana@example.com", clean.Email)

	// the original is untouched
	assert.Equal(t, "123456", user.ResetOTP)
}

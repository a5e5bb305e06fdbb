package models

import (
	"time"

	"github.com/lib/pq"
)

type User struct {
	BaseModel
	Name             string         `gorm:"not null" json:"name"`
	Email            string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash     string         `gorm:"not null" json:"-"`
	Role             UserRole       `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	OrganizationName string         `json:"organizationName,omitempty"`
	WorkerCategories pq.StringArray `gorm:"type:text[]" json:"workerCategories,omitempty"`

	// OTP password reset; both cleared once the reset completes.
	ResetOTP          string     `json:"-"`
	ResetOTPExpiresAt *time.Time `json:"-"`
}

// Sanitized returns a copy safe to serialize in API responses.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	u.ResetOTP = ""
	u.ResetOTPExpiresAt = nil
	return u
}

// HasValidOTP reports whether otp matches an unexpired reset code.
func (u *User) HasValidOTP(otp string, now time.Time) bool {
	if u.ResetOTP == "" || otp == "" || u.ResetOTP != otp {
		return false
	}
	return u.ResetOTPExpiresAt != nil && now.Before(*u.ResetOTPExpiresAt)
}

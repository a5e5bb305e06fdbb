package dto

import (
	"trackify_backend/internal/models"
)

type RegisterRequest struct {
	Name             string          `json:"name" validate:"required,min=2,max=100"`
	Email            string          `json:"email" validate:"required,email"`
	Password         string          `json:"password" validate:"required,min=6"`
	Role             models.UserRole `json:"role" validate:"required,is-user-role"`
	OrganizationName string          `json:"organizationName" validate:"max=200"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	OTP         string `json:"otp" validate:"required,len=6"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

package dto

import (
	"trackify_backend/internal/models"
)

// AdminCreateUserRequest lets an admin seed accounts (workers,
// organization staff) that never self-register.
type AdminCreateUserRequest struct {
	Name             string          `json:"name" validate:"required,min=2,max=100"`
	Email            string          `json:"email" validate:"required,email"`
	Password         string          `json:"password" validate:"required,min=6"`
	Role             models.UserRole `json:"role" validate:"required,is-user-role"`
	OrganizationName string          `json:"organizationName" validate:"max=200"`
	WorkerCategories []string        `json:"workerCategories"`
}

// UpdateUserRequest patches a user; nil fields are untouched.
type UpdateUserRequest struct {
	Name             *string   `json:"name" validate:"omitempty,min=2,max=100"`
	Email            *string   `json:"email" validate:"omitempty,email"`
	Role             *string   `json:"role" validate:"omitempty,is-user-role"`
	OrganizationName *string   `json:"organizationName" validate:"omitempty,max=200"`
	WorkerCategories *[]string `json:"workerCategories"`
}

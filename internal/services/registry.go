package services

import (
	"trackify_backend/internal/email"
)

// ServiceContainer bundles the services for handler wiring.
type ServiceContainer struct {
	AuthService      AuthService
	UserService      UserService
	ComplaintService ComplaintService
	TaxonomyService  TaxonomyService
	EmailService     email.Provider
}

package validator

import (
	"log"

	"trackify_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs the enum validations used by the DTOs.
// Empty values pass: 'required' handles presence separately.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that cannot register means the binary is
			// misconfigured; refuse to start.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-complaint-status", validateComplaintStatus)
	mustRegister("is-complaint-priority", validateComplaintPriority)
	mustRegister("is-category-type", validateCategoryType)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.UserRole(value).Valid()
}

func validateComplaintStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ComplaintStatus(value).Valid()
}

func validateComplaintPriority(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ComplaintPriority(value).Valid()
}

func validateCategoryType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.CategoryType(value).Valid()
}

package services

import (
	"trackify_backend/internal/auth"
	"trackify_backend/internal/models"
	"trackify_backend/internal/repositories"
	"trackify_backend/internal/services/dto"
	"trackify_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService interface {
	GetByID(db *gorm.DB, id string) (*models.User, error)
	ListAll(db *gorm.DB) ([]models.User, error)
	ListByRole(db *gorm.DB, role models.UserRole) ([]models.User, error)
	AdminCreate(db *gorm.DB, req *dto.AdminCreateUserRequest) (*models.User, error)
	AdminUpdate(db *gorm.DB, id string, req *dto.UpdateUserRequest) (*models.User, error)
	AdminDelete(db *gorm.DB, actorID, id string) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) GetByID(db *gorm.DB, id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// ListAll returns every user with credential fields stripped.
func (s *UserServiceImpl) ListAll(db *gorm.DB) ([]models.User, error) {
	users, err := s.userRepo.FindAll(db, 0, 0)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	for i := range users {
		users[i] = users[i].Sanitized()
	}
	return users, nil
}

// ListByRole narrows the listing to one role, e.g. the worker roster
// an organization assigns from.
func (s *UserServiceImpl) ListByRole(db *gorm.DB, role models.UserRole) ([]models.User, error) {
	if !role.Valid() {
		return nil, apperrors.ErrInvalidUserRole
	}

	users, err := s.userRepo.FindByRole(db, role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	for i := range users {
		users[i] = users[i].Sanitized()
	}
	return users, nil
}

func (s *UserServiceImpl) AdminCreate(db *gorm.DB, req *dto.AdminCreateUserRequest) (*models.User, error) {
	if !req.Role.Valid() {
		return nil, apperrors.ErrInvalidUserRole
	}
	if err := requireAffiliation(req.Role, req.OrganizationName); err != nil {
		return nil, err
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:             req.Name,
		Email:            req.Email,
		PasswordHash:     hashedPassword,
		Role:             req.Role,
		OrganizationName: req.OrganizationName,
		WorkerCategories: req.WorkerCategories,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	sanitized := user.Sanitized()
	return &sanitized, nil
}

func (s *UserServiceImpl) AdminUpdate(db *gorm.DB, id string, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Role != nil {
		role := models.UserRole(*req.Role)
		if !role.Valid() {
			return nil, apperrors.ErrInvalidUserRole
		}
		user.Role = role
	}
	if req.OrganizationName != nil {
		user.OrganizationName = *req.OrganizationName
	}
	if req.WorkerCategories != nil {
		user.WorkerCategories = *req.WorkerCategories
	}

	if err := requireAffiliation(user.Role, user.OrganizationName); err != nil {
		return nil, err
	}

	if err := s.userRepo.Update(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	sanitized := user.Sanitized()
	return &sanitized, nil
}

// requireAffiliation rejects worker and organization accounts without
// an organization name. An empty name would make every organization
// scope check compare against "".
func requireAffiliation(role models.UserRole, organizationName string) error {
	if (role == models.UserRoleWorker || role == models.UserRoleOrganization) && organizationName == "" {
		return apperrors.ValidationError("organizationName is required for worker and organization accounts")
	}
	return nil
}

func (s *UserServiceImpl) AdminDelete(db *gorm.DB, actorID, id string) error {
	if actorID == id {
		return apperrors.NewForbiddenError("Operation on self is not allowed")
	}

	if err := s.userRepo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

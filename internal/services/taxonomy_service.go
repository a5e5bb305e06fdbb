package services

import (
	"trackify_backend/internal/models"
	"trackify_backend/internal/repositories"
	"trackify_backend/internal/services/dto"
	"trackify_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type TaxonomyService interface {
	CreateCategory(db *gorm.DB, req *dto.CreateCategoryRequest) (*models.Category, error)
	ListCategories(db *gorm.DB, categoryType string) ([]models.Category, error)
	DeleteCategory(db *gorm.DB, id string) error

	CreateRoleDefinition(db *gorm.DB, req *dto.CreateRoleDefinitionRequest) (*models.RoleDefinition, error)
	ListRoleDefinitions(db *gorm.DB) ([]models.RoleDefinition, error)
	DeleteRoleDefinition(db *gorm.DB, id string) error
}

type TaxonomyServiceImpl struct {
	taxonomyRepo repositories.TaxonomyRepository
}

func NewTaxonomyService(taxonomyRepo repositories.TaxonomyRepository) TaxonomyService {
	return &TaxonomyServiceImpl{taxonomyRepo: taxonomyRepo}
}

func (s *TaxonomyServiceImpl) CreateCategory(db *gorm.DB, req *dto.CreateCategoryRequest) (*models.Category, error) {
	categoryType := models.CategoryType(req.Type)
	if !categoryType.Valid() {
		return nil, apperrors.ValidationError("type must be 'worker' or 'issue'")
	}

	category := &models.Category{
		Name: req.Name,
		Type: categoryType,
	}

	if err := s.taxonomyRepo.CreateCategory(db, category); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return category, nil
}

func (s *TaxonomyServiceImpl) ListCategories(db *gorm.DB, categoryType string) ([]models.Category, error) {
	categories, err := s.taxonomyRepo.FindCategories(db, models.CategoryType(categoryType))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return categories, nil
}

// DeleteCategory is a hard delete; complaints referencing the name
// keep their dangling string.
func (s *TaxonomyServiceImpl) DeleteCategory(db *gorm.DB, id string) error {
	if err := s.taxonomyRepo.DeleteCategory(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrTaxonomyNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *TaxonomyServiceImpl) CreateRoleDefinition(db *gorm.DB, req *dto.CreateRoleDefinitionRequest) (*models.RoleDefinition, error) {
	role := &models.RoleDefinition{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.taxonomyRepo.CreateRoleDefinition(db, role); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return role, nil
}

func (s *TaxonomyServiceImpl) ListRoleDefinitions(db *gorm.DB) ([]models.RoleDefinition, error) {
	roles, err := s.taxonomyRepo.FindRoleDefinitions(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return roles, nil
}

func (s *TaxonomyServiceImpl) DeleteRoleDefinition(db *gorm.DB, id string) error {
	if err := s.taxonomyRepo.DeleteRoleDefinition(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrTaxonomyNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

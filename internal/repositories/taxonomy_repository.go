package repositories

import (
	"errors"

	"trackify_backend/internal/models"

	"gorm.io/gorm"
)

var ErrTaxonomyNotFound = errors.New("taxonomy entry not found")

type TaxonomyRepository interface {
	CreateCategory(db *gorm.DB, category *models.Category) error
	FindCategories(db *gorm.DB, categoryType models.CategoryType) ([]models.Category, error)
	DeleteCategory(db *gorm.DB, id string) error

	CreateRoleDefinition(db *gorm.DB, role *models.RoleDefinition) error
	FindRoleDefinitions(db *gorm.DB) ([]models.RoleDefinition, error)
	DeleteRoleDefinition(db *gorm.DB, id string) error
}

type TaxonomyRepositoryImpl struct{}

func NewTaxonomyRepository() TaxonomyRepository {
	return &TaxonomyRepositoryImpl{}
}

func (r *TaxonomyRepositoryImpl) CreateCategory(db *gorm.DB, category *models.Category) error {
	return db.Create(category).Error
}

func (r *TaxonomyRepositoryImpl) FindCategories(db *gorm.DB, categoryType models.CategoryType) ([]models.Category, error) {
	query := db.Model(&models.Category{})
	if categoryType != "" {
		query = query.Where("type = ?", categoryType)
	}

	var categories []models.Category
	err := query.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *TaxonomyRepositoryImpl) DeleteCategory(db *gorm.DB, id string) error {
	result := db.Delete(&models.Category{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaxonomyNotFound
	}
	return nil
}

func (r *TaxonomyRepositoryImpl) CreateRoleDefinition(db *gorm.DB, role *models.RoleDefinition) error {
	return db.Create(role).Error
}

func (r *TaxonomyRepositoryImpl) FindRoleDefinitions(db *gorm.DB) ([]models.RoleDefinition, error) {
	var roles []models.RoleDefinition
	err := db.Order("name ASC").Find(&roles).Error
	return roles, err
}

func (r *TaxonomyRepositoryImpl) DeleteRoleDefinition(db *gorm.DB, id string) error {
	result := db.Delete(&models.RoleDefinition{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaxonomyNotFound
	}
	return nil
}

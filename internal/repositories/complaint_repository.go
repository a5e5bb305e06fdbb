package repositories

import (
	"errors"

	"trackify_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrComplaintNotFound = errors.New("complaint not found")
	ErrVersionMismatch   = errors.New("complaint version mismatch")
)

// ComplaintFilter narrows a listing. Zero values mean "no constraint".
type ComplaintFilter struct {
	UserID             string
	Organization       string
	AssignedWorkerName string
	Status             models.ComplaintStatus
	// IncludeUnassigned widens a worker-name filter to also return
	// unassigned complaints of the same organization.
	IncludeUnassigned bool
}

type ComplaintRepository interface {
	Create(db *gorm.DB, complaint *models.Complaint) error
	FindByID(db *gorm.DB, id string) (*models.Complaint, error)
	FindWithFilter(db *gorm.DB, filter ComplaintFilter) ([]models.Complaint, error)
	// SaveGuarded persists the complaint only if the stored version
	// still equals expectedVersion, incrementing it on success.
	SaveGuarded(db *gorm.DB, complaint *models.Complaint, expectedVersion int) error
	CountByStatus(db *gorm.DB, organization string) (map[models.ComplaintStatus]int64, error)
}

type ComplaintRepositoryImpl struct{}

func NewComplaintRepository() ComplaintRepository {
	return &ComplaintRepositoryImpl{}
}

func (r *ComplaintRepositoryImpl) Create(db *gorm.DB, complaint *models.Complaint) error {
	return db.Create(complaint).Error
}

func (r *ComplaintRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Complaint, error) {
	var complaint models.Complaint
	err := db.First(&complaint, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrComplaintNotFound
		}
		return nil, err
	}
	return &complaint, nil
}

func (r *ComplaintRepositoryImpl) FindWithFilter(db *gorm.DB, filter ComplaintFilter) ([]models.Complaint, error) {
	query := db.Model(&models.Complaint{})

	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Organization != "" {
		query = query.Where("organization = ?", filter.Organization)
	}
	if filter.AssignedWorkerName != "" {
		if filter.IncludeUnassigned {
			query = query.Where("assigned_worker_name = ? OR assigned_worker_name = ''", filter.AssignedWorkerName)
		} else {
			query = query.Where("assigned_worker_name = ?", filter.AssignedWorkerName)
		}
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var complaints []models.Complaint
	err := query.Order("created_at DESC").Find(&complaints).Error
	return complaints, err
}

func (r *ComplaintRepositoryImpl) SaveGuarded(db *gorm.DB, complaint *models.Complaint, expectedVersion int) error {
	complaint.Version = expectedVersion + 1

	result := db.Model(&models.Complaint{}).
		Where("id = ? AND version = ?", complaint.ID, expectedVersion).
		Updates(map[string]interface{}{
			"title":                complaint.Title,
			"description":          complaint.Description,
			"category":             complaint.Category,
			"priority":             complaint.Priority,
			"status":               complaint.Status,
			"organization":         complaint.Organization,
			"assigned_worker_name": complaint.AssignedWorkerName,
			"progress":             complaint.Progress,
			"work_log":             complaint.WorkLog,
			"attachments":          complaint.Attachments,
			"version":              complaint.Version,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Either the row is gone or someone updated it first.
		var exists int64
		db.Model(&models.Complaint{}).Where("id = ?", complaint.ID).Count(&exists)
		if exists == 0 {
			return ErrComplaintNotFound
		}
		return ErrVersionMismatch
	}
	return nil
}

func (r *ComplaintRepositoryImpl) CountByStatus(db *gorm.DB, organization string) (map[models.ComplaintStatus]int64, error) {
	type row struct {
		Status models.ComplaintStatus
		Count  int64
	}

	query := db.Model(&models.Complaint{}).Select("status, count(*) as count").Group("status")
	if organization != "" {
		query = query.Where("organization = ?", organization)
	}

	var rows []row
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[models.ComplaintStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}

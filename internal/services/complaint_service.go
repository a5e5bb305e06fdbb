package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"trackify_backend/internal/auth"
	"trackify_backend/internal/cache"
	"trackify_backend/internal/events"
	"trackify_backend/internal/logger"
	"trackify_backend/internal/models"
	"trackify_backend/internal/repositories"
	"trackify_backend/internal/services/dto"
	"trackify_backend/internal/storage"
	"trackify_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Actor is the authenticated identity a complaint operation runs as.
type Actor struct {
	ID           string
	Role         models.UserRole
	Organization string
}

// Fallbacks when the upload limits are not configured.
const (
	defaultAttachmentSize  = 50 * 1024 * 1024
	defaultAttachmentCount = 5
)

type ComplaintService interface {
	Create(ctx context.Context, db *gorm.DB, actor Actor, req *dto.CreateComplaintRequest, files []*multipart.FileHeader) (*models.Complaint, error)
	List(ctx context.Context, db *gorm.DB, actor Actor, query *dto.ListComplaintsQuery) ([]models.Complaint, error)
	Get(ctx context.Context, db *gorm.DB, actor Actor, id string) (*models.Complaint, error)
	Update(ctx context.Context, db *gorm.DB, actor Actor, id string, patch *dto.UpdateComplaintRequest) (*models.Complaint, error)
	UpdateProgress(ctx context.Context, db *gorm.DB, actor Actor, id string, req *dto.ProgressUpdateRequest) (*models.Complaint, error)
	Stats(ctx context.Context, db *gorm.DB, actor Actor) (map[models.ComplaintStatus]int64, error)
}

type ComplaintServiceImpl struct {
	complaintRepo repositories.ComplaintRepository
	userRepo      repositories.UserRepository
	store         storage.Storage
	listCache     cache.ListCache
	publisher     events.Publisher

	maxFileSize int64
	maxFiles    int
}

func NewComplaintService(
	complaintRepo repositories.ComplaintRepository,
	userRepo repositories.UserRepository,
	store storage.Storage,
	listCache cache.ListCache,
	publisher events.Publisher,
	maxFileSize int64,
	maxFiles int,
) ComplaintService {
	if maxFileSize <= 0 {
		maxFileSize = defaultAttachmentSize
	}
	if maxFiles <= 0 {
		maxFiles = defaultAttachmentCount
	}
	return &ComplaintServiceImpl{
		complaintRepo: complaintRepo,
		userRepo:      userRepo,
		store:         store,
		listCache:     listCache,
		publisher:     publisher,
		maxFileSize:   maxFileSize,
		maxFiles:      maxFiles,
	}
}

func (s *ComplaintServiceImpl) Create(ctx context.Context, db *gorm.DB, actor Actor, req *dto.CreateComplaintRequest, files []*multipart.FileHeader) (*models.Complaint, error) {
	user, err := s.userRepo.FindByID(db, actor.ID)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("Unknown user")
	}

	priority := models.ComplaintPriority(req.Priority)
	if priority == "" {
		priority = models.ComplaintPriorityMedium
	}
	if !priority.Valid() {
		return nil, apperrors.ValidationError("invalid priority")
	}

	// Affiliated actors always file into their own organization;
	// citizens and admins name the target one.
	organization := strings.TrimSpace(req.Organization)
	if user.OrganizationName != "" {
		organization = user.OrganizationName
	}
	if organization == "" {
		return nil, apperrors.ValidationError("organization is required")
	}

	attachments, err := s.saveAttachments(ctx, files)
	if err != nil {
		return nil, err
	}

	complaint := &models.Complaint{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Priority:     priority,
		Status:       models.ComplaintStatusOpen,
		UserID:       user.ID,
		UserName:     user.Name,
		Organization: organization,
		Attachments:  attachments,
		Version:      1,
	}

	if err := s.complaintRepo.Create(db, complaint); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.afterWrite(ctx, "complaint.created", complaint)

	return complaint, nil
}

// List scopes the result to what the actor may see, regardless of the
// filters it asked for. Only admins can filter freely.
func (s *ComplaintServiceImpl) List(ctx context.Context, db *gorm.DB, actor Actor, query *dto.ListComplaintsQuery) ([]models.Complaint, error) {
	filter, err := s.scopeFilter(db, actor, query)
	if err != nil {
		return nil, err
	}

	key := cacheKey(filter)
	if cached, ok := s.listCache.Get(ctx, key); ok {
		return cached, nil
	}

	complaints, err := s.complaintRepo.FindWithFilter(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.listCache.Set(ctx, key, complaints)
	return complaints, nil
}

func (s *ComplaintServiceImpl) Get(ctx context.Context, db *gorm.DB, actor Actor, id string) (*models.Complaint, error) {
	complaint, err := s.complaintRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrComplaintNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.checkVisibility(db, actor, complaint); err != nil {
		return nil, err
	}

	return complaint, nil
}

func (s *ComplaintServiceImpl) Update(ctx context.Context, db *gorm.DB, actor Actor, id string, patch *dto.UpdateComplaintRequest) (*models.Complaint, error) {
	complaint, err := s.Get(ctx, db, actor, id)
	if err != nil {
		return nil, err
	}

	for _, field := range patch.Fields() {
		if !auth.CanPatchField(actor.Role, field) {
			return nil, apperrors.NewForbiddenError(
				fmt.Sprintf("role %s may not update field %s", actor.Role, field))
		}
	}

	if patch.Status != nil {
		if err := s.checkStatusChange(actor, complaint, models.ComplaintStatus(*patch.Status)); err != nil {
			return nil, err
		}
	}

	expectedVersion := complaint.Version
	if patch.Version != nil {
		expectedVersion = *patch.Version
	}

	applyPatch(complaint, patch)

	if err := s.saveGuarded(db, complaint, expectedVersion); err != nil {
		return nil, err
	}

	s.afterWrite(ctx, "complaint.updated", complaint)

	return complaint, nil
}

// UpdateProgress appends to the work log and mirrors progress/status
// onto the complaint, all under one version check so racing updates
// serialize instead of clobbering the log.
func (s *ComplaintServiceImpl) UpdateProgress(ctx context.Context, db *gorm.DB, actor Actor, id string, req *dto.ProgressUpdateRequest) (*models.Complaint, error) {
	if actor.Role != models.UserRoleWorker && actor.Role != models.UserRoleAdmin && actor.Role != models.UserRoleOrganization {
		return nil, apperrors.ErrInsufficientPermissions
	}

	complaint, err := s.Get(ctx, db, actor, id)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(db, actor.ID)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("Unknown user")
	}

	if req.Status != "" {
		if err := s.checkStatusChange(actor, complaint, models.ComplaintStatus(req.Status)); err != nil {
			return nil, err
		}
	}

	expectedVersion := complaint.Version
	if req.Version != nil {
		expectedVersion = *req.Version
	}

	complaint.AppendWorkLog(models.WorkLogEntry{
		Progress: *req.Progress,
		Note:     req.WorkNote,
		By:       user.Name,
		At:       time.Now(),
	})
	if req.Status != "" {
		complaint.Status = models.ComplaintStatus(req.Status)
	}

	if err := s.saveGuarded(db, complaint, expectedVersion); err != nil {
		return nil, err
	}

	s.afterWrite(ctx, "complaint.progress", complaint)

	return complaint, nil
}

// Stats returns complaint counts per status for dashboards. Admins see
// platform-wide counts, organization staff their own organization's.
func (s *ComplaintServiceImpl) Stats(ctx context.Context, db *gorm.DB, actor Actor) (map[models.ComplaintStatus]int64, error) {
	var organization string
	switch actor.Role {
	case models.UserRoleAdmin:
	case models.UserRoleOrganization, models.UserRoleWorker:
		if actor.Organization == "" {
			return nil, apperrors.NewForbiddenError("account is not affiliated with an organization")
		}
		organization = actor.Organization
	default:
		return nil, apperrors.ErrInsufficientPermissions
	}

	counts, err := s.complaintRepo.CountByStatus(db, organization)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return counts, nil
}

// --- helpers ---

func (s *ComplaintServiceImpl) scopeFilter(db *gorm.DB, actor Actor, query *dto.ListComplaintsQuery) (repositories.ComplaintFilter, error) {
	filter := repositories.ComplaintFilter{
		Status: models.ComplaintStatus(query.Status),
	}

	switch actor.Role {
	case models.UserRoleUser:
		filter.UserID = actor.ID
	case models.UserRoleOrganization:
		// An empty organization would widen the filter to the whole
		// platform instead of narrowing it.
		if actor.Organization == "" {
			return filter, apperrors.NewForbiddenError("account is not affiliated with an organization")
		}
		filter.Organization = actor.Organization
	case models.UserRoleWorker:
		if actor.Organization == "" {
			return filter, apperrors.NewForbiddenError("account is not affiliated with an organization")
		}
		user, err := s.userRepo.FindByID(db, actor.ID)
		if err != nil {
			return filter, apperrors.NewUnauthorizedError("Unknown user")
		}
		filter.Organization = actor.Organization
		filter.AssignedWorkerName = user.Name
		filter.IncludeUnassigned = true
	case models.UserRoleAdmin:
		filter.UserID = query.UserID
		filter.Organization = query.Organization
	default:
		return filter, apperrors.ErrInsufficientPermissions
	}

	return filter, nil
}

func (s *ComplaintServiceImpl) checkVisibility(db *gorm.DB, actor Actor, complaint *models.Complaint) error {
	switch actor.Role {
	case models.UserRoleAdmin:
		return nil
	case models.UserRoleUser:
		if complaint.UserID == actor.ID {
			return nil
		}
	case models.UserRoleOrganization:
		if actor.Organization != "" && complaint.Organization == actor.Organization {
			return nil
		}
	case models.UserRoleWorker:
		if actor.Organization == "" {
			break
		}
		user, err := s.userRepo.FindByID(db, actor.ID)
		if err != nil {
			return apperrors.NewUnauthorizedError("Unknown user")
		}
		if complaint.Organization == actor.Organization &&
			(complaint.AssignedWorkerName == "" || complaint.AssignedWorkerName == user.Name) {
			return nil
		}
	}
	return apperrors.NewForbiddenError("You do not have access to this complaint")
}

func (s *ComplaintServiceImpl) checkStatusChange(actor Actor, complaint *models.Complaint, to models.ComplaintStatus) error {
	from := complaint.Status
	if !models.CanTransition(from, to) {
		return apperrors.ErrInvalidStatus("complaint",
			fmt.Sprintf("cannot move complaint from %s to %s", from, to))
	}
	if from != to && (from == models.ComplaintStatusResolved || from == models.ComplaintStatusRejected) {
		if !auth.CanReopen(actor.Role, from) {
			return apperrors.NewForbiddenError(
				fmt.Sprintf("role %s may not reopen a %s complaint", actor.Role, from))
		}
	}
	return nil
}

func (s *ComplaintServiceImpl) saveGuarded(db *gorm.DB, complaint *models.Complaint, expectedVersion int) error {
	err := s.complaintRepo.SaveGuarded(db, complaint, expectedVersion)
	if err != nil {
		if apperrors.Is(err, repositories.ErrVersionMismatch) {
			return apperrors.ErrVersionConflict
		}
		if apperrors.Is(err, repositories.ErrComplaintNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ComplaintServiceImpl) afterWrite(ctx context.Context, eventType string, complaint *models.Complaint) {
	s.listCache.Invalidate(ctx)

	if s.publisher != nil {
		s.publisher.Publish(events.Event{
			Type:         eventType,
			ComplaintID:  complaint.ID,
			Organization: complaint.Organization,
			UserID:       complaint.UserID,
			Status:       string(complaint.Status),
			At:           time.Now(),
		})
	}
}

func (s *ComplaintServiceImpl) saveAttachments(ctx context.Context, files []*multipart.FileHeader) ([]models.Attachment, error) {
	if len(files) == 0 {
		return nil, nil
	}
	if len(files) > s.maxFiles {
		return nil, apperrors.ErrTooManyFiles
	}

	var attachments []models.Attachment
	for _, fh := range files {
		if fh.Size > s.maxFileSize {
			return nil, apperrors.ErrFileTooLarge
		}

		src, err := fh.Open()
		if err != nil {
			return nil, apperrors.InternalError(err)
		}

		// UUID filenames cannot collide, unlike the old
		// timestamp-based scheme.
		contentType := fh.Header.Get("Content-Type")
		storedName := uuid.NewString() + filepath.Ext(fh.Filename)

		saveErr := s.store.Save(ctx, storedName, src, contentType)
		src.Close()
		if saveErr != nil {
			return nil, apperrors.InternalError(saveErr)
		}

		url, err := s.store.GetURL(ctx, storedName)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}

		attachments = append(attachments, models.Attachment{
			URL:  url,
			Type: AttachmentType(contentType),
			Name: fh.Filename,
		})

		logger.CtxDebug(ctx, "attachment stored", "name", fh.Filename, "stored_as", storedName, "size", fh.Size)
	}

	return attachments, nil
}

// AttachmentType buckets a MIME type by its prefix.
func AttachmentType(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return "image"
	case strings.HasPrefix(contentType, "video/"):
		return "video"
	default:
		return "file"
	}
}

func applyPatch(complaint *models.Complaint, patch *dto.UpdateComplaintRequest) {
	if patch.Title != nil {
		complaint.Title = *patch.Title
	}
	if patch.Description != nil {
		complaint.Description = *patch.Description
	}
	if patch.Category != nil {
		complaint.Category = *patch.Category
	}
	if patch.Priority != nil {
		complaint.Priority = models.ComplaintPriority(*patch.Priority)
	}
	if patch.Status != nil {
		complaint.Status = models.ComplaintStatus(*patch.Status)
	}
	if patch.Progress != nil {
		complaint.Progress = *patch.Progress
	}
	if patch.AssignedWorkerName != nil {
		complaint.AssignedWorkerName = *patch.AssignedWorkerName
	}
	// A complaint must always stay routed somewhere.
	if patch.Organization != nil && *patch.Organization != "" {
		complaint.Organization = *patch.Organization
	}
}

func cacheKey(filter repositories.ComplaintFilter) string {
	return fmt.Sprintf("u=%s|o=%s|w=%s|s=%s|inc=%t",
		filter.UserID, filter.Organization, filter.AssignedWorkerName, filter.Status, filter.IncludeUnassigned)
}

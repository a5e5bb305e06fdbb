package services

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/textproto"
	"testing"

	"trackify_backend/internal/models"
	"trackify_backend/internal/repositories"
	"trackify_backend/internal/services/dto"
	"trackify_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore records saved paths without touching the filesystem.
type fakeStore struct {
	saved []string
}

func (f *fakeStore) Save(ctx context.Context, path string, reader io.Reader, contentType string) error {
	if _, err := io.Copy(io.Discard, reader); err != nil {
		return err
	}
	f.saved = append(f.saved, path)
	return nil
}

func (f *fakeStore) Get(ctx context.Context, path string) (io.ReadCloser, error) { return nil, nil }
func (f *fakeStore) Delete(ctx context.Context, path string) error               { return nil }
func (f *fakeStore) Exists(ctx context.Context, path string) (bool, error)       { return false, nil }
func (f *fakeStore) GetURL(ctx context.Context, path string) (string, error) {
	return "/uploads/" + path, nil
}

func TestAttachmentType(t *testing.T) {
	assert.Equal(t, "image", AttachmentType("image/png"))
	assert.Equal(t, "image", AttachmentType("image/jpeg"))
	assert.Equal(t, "video", AttachmentType("video/mp4"))
	assert.Equal(t, "file", AttachmentType("application/pdf"))
	assert.Equal(t, "file", AttachmentType("text/plain"))
	assert.Equal(t, "file", AttachmentType(""))
}

func TestApplyPatchOnlySetFields(t *testing.T) {
	complaint := &models.Complaint{
		Title:       "original title",
		Description: "original description",
		Priority:    models.ComplaintPriorityLow,
		Status:      models.ComplaintStatusOpen,
		Progress:    10,
	}

	title := "new title"
	progress := 55
	applyPatch(complaint, &dto.UpdateComplaintRequest{
		Title:    &title,
		Progress: &progress,
	})

	assert.Equal(t, "new title", complaint.Title)
	assert.Equal(t, 55, complaint.Progress)
	assert.Equal(t, "original description", complaint.Description, "unset fields stay untouched")
	assert.Equal(t, models.ComplaintPriorityLow, complaint.Priority)
	assert.Equal(t, models.ComplaintStatusOpen, complaint.Status)

	organization := "city of springfield"
	applyPatch(complaint, &dto.UpdateComplaintRequest{Organization: &organization})
	assert.Equal(t, "city of springfield", complaint.Organization)

	blank := ""
	applyPatch(complaint, &dto.UpdateComplaintRequest{Organization: &blank})
	assert.Equal(t, "city of springfield", complaint.Organization, "a complaint must stay routed somewhere")
}

// Staff accounts without an organization name must not fall through to
// an unscoped listing or match org-less complaints.
func TestUnaffiliatedStaffIsRejected(t *testing.T) {
	svc := &ComplaintServiceImpl{}
	query := &dto.ListComplaintsQuery{}

	for _, role := range []models.UserRole{models.UserRoleOrganization, models.UserRoleWorker} {
		actor := Actor{ID: "u1", Role: role}

		filter, err := svc.scopeFilter(nil, actor, query)
		assert.Error(t, err, "listing as an org-less %s must fail", role)
		assert.Empty(t, filter.Organization)

		err = svc.checkVisibility(nil, actor, &models.Complaint{Organization: ""})
		assert.Error(t, err, "an org-less %s must not see org-less complaints", role)

		_, err = svc.Stats(context.Background(), nil, actor)
		assert.Error(t, err, "stats for an org-less %s must fail", role)
	}

	filter, err := svc.scopeFilter(nil, Actor{ID: "u1", Role: models.UserRoleOrganization, Organization: "acme"}, query)
	assert.NoError(t, err)
	assert.Equal(t, "acme", filter.Organization)
}

func multipartFiles(t *testing.T, count int, contentType string, content []byte) []*multipart.FileHeader {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for i := 0; i < count; i++ {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="attachments"; filename="photo.png"`)
		header.Set("Content-Type", contentType)
		part, err := w.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	return form.File["attachments"]
}

func TestSaveAttachments(t *testing.T) {
	store := &fakeStore{}
	svc := &ComplaintServiceImpl{store: store, maxFileSize: 16, maxFiles: 2}
	ctx := context.Background()

	attachments, err := svc.saveAttachments(ctx, multipartFiles(t, 2, "image/png", []byte("tiny png")))
	require.NoError(t, err)
	require.Len(t, attachments, 2)
	assert.Equal(t, "photo.png", attachments[0].Name, "original filename is kept in metadata")
	assert.Equal(t, "image", attachments[0].Type)
	assert.Contains(t, attachments[0].URL, "/uploads/")
	assert.Len(t, store.saved, 2)
	assert.NotEqual(t, store.saved[0], store.saved[1], "stored names must not collide")

	attachments, err = svc.saveAttachments(ctx, nil)
	assert.NoError(t, err)
	assert.Empty(t, attachments)
}

func TestSaveAttachmentsEnforcesCaps(t *testing.T) {
	svc := &ComplaintServiceImpl{store: &fakeStore{}, maxFileSize: 16, maxFiles: 2}
	ctx := context.Background()

	_, err := svc.saveAttachments(ctx, multipartFiles(t, 3, "image/png", []byte("x")))
	assert.ErrorIs(t, err, apperrors.ErrTooManyFiles)

	_, err = svc.saveAttachments(ctx, multipartFiles(t, 1, "image/png", bytes.Repeat([]byte("a"), 17)))
	assert.ErrorIs(t, err, apperrors.ErrFileTooLarge)
}

func TestCheckStatusChange(t *testing.T) {
	svc := &ComplaintServiceImpl{}

	open := &models.Complaint{Status: models.ComplaintStatusOpen}
	rejected := &models.Complaint{Status: models.ComplaintStatusRejected}
	resolved := &models.Complaint{Status: models.ComplaintStatusResolved}

	worker := Actor{Role: models.UserRoleWorker}
	org := Actor{Role: models.UserRoleOrganization}
	user := Actor{Role: models.UserRoleUser}

	assert.NoError(t, svc.checkStatusChange(worker, open, models.ComplaintStatusInProgress))
	assert.NoError(t, svc.checkStatusChange(org, rejected, models.ComplaintStatusOpen))
	assert.NoError(t, svc.checkStatusChange(user, resolved, models.ComplaintStatusOpen))

	// lifecycle violations
	assert.Error(t, svc.checkStatusChange(org, rejected, models.ComplaintStatusResolved))
	assert.Error(t, svc.checkStatusChange(org, resolved, models.ComplaintStatusInProgress))

	// reopen gates
	assert.Error(t, svc.checkStatusChange(user, rejected, models.ComplaintStatusOpen))
	assert.Error(t, svc.checkStatusChange(worker, resolved, models.ComplaintStatusOpen))

	// restating the current status is a no-op
	assert.NoError(t, svc.checkStatusChange(user, rejected, models.ComplaintStatusRejected))
}

func TestCacheKeyDistinguishesScopes(t *testing.T) {
	own := cacheKey(repositories.ComplaintFilter{UserID: "u1"})
	other := cacheKey(repositories.ComplaintFilter{UserID: "u2"})
	org := cacheKey(repositories.ComplaintFilter{Organization: "acme"})
	workerScoped := cacheKey(repositories.ComplaintFilter{
		Organization:       "acme",
		AssignedWorkerName: "Dana",
		IncludeUnassigned:  true,
	})

	keys := map[string]bool{own: true, other: true, org: true, workerScoped: true}
	assert.Len(t, keys, 4, "each scope must map to its own key")
}

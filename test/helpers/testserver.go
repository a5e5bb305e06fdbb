package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"trackify_backend/internal/app"
	"trackify_backend/internal/config"
	"trackify_backend/internal/database"
	"trackify_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// TestServer drives the full HTTP stack in-process. Requests carry a
// per-test transaction in their context, which DBMiddleware picks up
// instead of the pool, so every test rolls back cleanly.
type TestServer struct {
	Router *gin.Engine
	DB     *gorm.DB
}

func NewTestServer(t *testing.T) *TestServer {
	gin.SetMode(gin.TestMode)

	config.LoadConfig()
	cfg := config.GetConfig()
	dsn := cfg.Database.DSN

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to test database (%s): %v", dsn, err)
	}

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get *sql.DB from GORM: %v", err)
	}

	router := app.SetupRouter(cfg, db, sqlDB)

	return &TestServer{
		Router: router,
		DB:     db,
	}
}

func (ts *TestServer) Close() {
	sqlDB, _ := ts.DB.DB()
	sqlDB.Close()
}

func (ts *TestServer) BeginTransaction(t *testing.T) *gorm.DB {
	tx := ts.DB.Begin()
	if tx.Error != nil {
		t.Fatalf("failed to begin transaction: %v", tx.Error)
	}
	return tx
}

func (ts *TestServer) RollbackTransaction(t *testing.T, tx *gorm.DB) {
	if err := tx.Rollback().Error; err != nil && err != gorm.ErrInvalidTransaction {
		t.Logf("rollback failed: %v", err)
	}
}

// SendRequest performs an in-process request inside the given
// transaction and returns the recorded response plus its body.
func (ts *TestServer) SendRequest(t *testing.T, tx *gorm.DB, method, path, token string, body interface{}) (*httptest.ResponseRecorder, string) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, path, reqBody)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	ctx := context.WithValue(req.Context(), contextkeys.DBContextKey, tx)
	req = req.WithContext(ctx)

	rec := httptest.NewRecorder()
	ts.Router.ServeHTTP(rec, req)

	return rec, rec.Body.String()
}

// MultipartFile is one uploaded file for SendMultipartRequest.
type MultipartFile struct {
	Field       string
	Name        string
	ContentType string
	Content     []byte
}

// SendMultipartRequest posts a multipart form with the given fields
// and files, carrying the test transaction like SendRequest.
func (ts *TestServer) SendMultipartRequest(t *testing.T, tx *gorm.DB, path, token string, fields map[string]string, files []MultipartFile) (*httptest.ResponseRecorder, string) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			t.Fatalf("failed to write form field %s: %v", key, err)
		}
	}
	for _, f := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.Field, f.Name))
		header.Set("Content-Type", f.ContentType)
		part, err := w.CreatePart(header)
		if err != nil {
			t.Fatalf("failed to create form file %s: %v", f.Name, err)
		}
		if _, err := part.Write(f.Content); err != nil {
			t.Fatalf("failed to write form file %s: %v", f.Name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to finish multipart body: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, path, &buf)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	ctx := context.WithValue(req.Context(), contextkeys.DBContextKey, tx)
	req = req.WithContext(ctx)

	rec := httptest.NewRecorder()
	ts.Router.ServeHTTP(rec, req)

	return rec, rec.Body.String()
}

package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"trackify_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser inserts a user inside the transaction, hashing the raw
// password when one is given.
func CreateUser(t *testing.T, tx *gorm.DB, user *models.User) error {
	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		if err != nil {
			t.Fatalf("failed to hash password: %v", err)
		}
		user.PasswordHash = string(hashed)
	}

	if user.Role == "" {
		user.Role = models.UserRoleUser
	}

	result := tx.Create(user)
	if result.Error != nil {
		t.Logf("failed to create user %s: %v", user.Email, result.Error)
		return result.Error
	}
	return nil
}

// CreateAndLoginUser creates a user and logs them in through the API,
// returning the bearer token.
func CreateAndLoginUser(t *testing.T, ts *TestServer, tx *gorm.DB, name, email, password string, role models.UserRole, organization string) (string, *models.User) {
	user := &models.User{
		Name:             name,
		Email:            email,
		PasswordHash:     password,
		Role:             role,
		OrganizationName: organization,
	}
	err := CreateUser(t, tx, user)
	assert.NoError(t, err)

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}

	rec, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, rec.Code, "login should succeed, got: "+bodyStr)

	var loginResponse struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	err = json.Unmarshal([]byte(bodyStr), &loginResponse)
	assert.NoError(t, err)
	assert.NotEmpty(t, loginResponse.Data.Token)

	return loginResponse.Data.Token, user
}

// CreateAndLoginCitizen is shorthand for a regular reporter with a
// unique email.
func CreateAndLoginCitizen(t *testing.T, ts *TestServer, tx *gorm.DB) (string, *models.User) {
	email := fmt.Sprintf("citizen_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, tx, "Test Citizen", email, "password123", models.UserRoleUser, "")
}

// CreateAndLoginWorker creates a worker in the given organization.
func CreateAndLoginWorker(t *testing.T, ts *TestServer, tx *gorm.DB, organization string) (string, *models.User) {
	email := fmt.Sprintf("worker_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, tx, "Test Worker", email, "password123", models.UserRoleWorker, organization)
}

// CreateAndLoginAdmin creates an admin account.
func CreateAndLoginAdmin(t *testing.T, ts *TestServer, tx *gorm.DB) (string, *models.User) {
	email := fmt.Sprintf("admin_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, tx, "Test Admin", email, "password123", models.UserRoleAdmin, "")
}

// CreateComplaint inserts a complaint directly in the transaction.
func CreateComplaint(t *testing.T, tx *gorm.DB, complaint *models.Complaint) *models.Complaint {
	if complaint.Status == "" {
		complaint.Status = models.ComplaintStatusOpen
	}
	if complaint.Priority == "" {
		complaint.Priority = models.ComplaintPriorityMedium
	}
	if complaint.Version == 0 {
		complaint.Version = 1
	}
	if err := tx.Create(complaint).Error; err != nil {
		t.Fatalf("failed to create test complaint: %v", err)
	}
	return complaint
}

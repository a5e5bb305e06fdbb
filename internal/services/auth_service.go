package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"trackify_backend/internal/auth"
	"trackify_backend/internal/email"
	"trackify_backend/internal/logger"
	"trackify_backend/internal/models"
	"trackify_backend/internal/repositories"
	"trackify_backend/internal/services/dto"
	"trackify_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const otpTTL = 10 * time.Minute

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	ForgotPassword(db *gorm.DB, emailAddr string) error
	VerifyOTP(db *gorm.DB, emailAddr, otp string) error
	ResetPassword(db *gorm.DB, req *dto.ResetPasswordRequest) (*dto.AuthResponse, error)
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	emailProvider email.Provider
}

func NewAuthService(userRepo repositories.UserRepository, emailProvider email.Provider) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		emailProvider: emailProvider,
	}
}

func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	if !req.Role.Valid() {
		return nil, apperrors.ErrInvalidUserRole
	}

	// Organizations and workers register under an organization name.
	if req.Role == models.UserRoleOrganization || req.Role == models.UserRoleWorker {
		if req.OrganizationName == "" {
			return nil, apperrors.ValidationError("organizationName is required for this role")
		}
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
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	s.sendWelcomeEmail(user)

	return s.buildAuthResponse(user)
}

// Login deliberately reports the same error for an unknown email and a
// wrong password, so callers cannot probe which emails exist.
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.buildAuthResponse(user)
}

// ForgotPassword stores a short-lived OTP on the user and emails it.
// Delivery failure rolls the OTP back so a dead code cannot linger.
func (s *AuthServiceImpl) ForgotPassword(db *gorm.DB, emailAddr string) error {
	user, err := s.userRepo.FindByEmail(db, emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	otp, err := generateOTP()
	if err != nil {
		return apperrors.InternalError(err)
	}

	expiresAt := time.Now().Add(otpTTL)
	if err := s.userRepo.UpdateOTP(db, user.ID, otp, &expiresAt); err != nil {
		return apperrors.InternalError(err)
	}

	if s.emailProvider == nil {
		s.clearOTP(db, user.ID)
		return apperrors.ErrEmailDeliveryFailed(fmt.Errorf("email provider not configured"))
	}

	if err := s.emailProvider.SendOTP(user.Email, user.Name, otp); err != nil {
		s.clearOTP(db, user.ID)
		return apperrors.ErrEmailDeliveryFailed(err)
	}

	return nil
}

func (s *AuthServiceImpl) VerifyOTP(db *gorm.DB, emailAddr, otp string) error {
	user, err := s.userRepo.FindByEmail(db, emailAddr)
	if err != nil {
		return apperrors.ErrInvalidOTP
	}

	if !user.HasValidOTP(otp, time.Now()) {
		return apperrors.ErrInvalidOTP
	}

	return nil
}

func (s *AuthServiceImpl) ResetPassword(db *gorm.DB, req *dto.ResetPasswordRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidOTP
	}

	if !user.HasValidOTP(req.OTP, time.Now()) {
		return nil, apperrors.ErrInvalidOTP
	}

	if err := auth.ValidatePassword(req.NewPassword); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hashedPassword, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Also clears the OTP fields.
	if err := s.userRepo.UpdatePassword(db, user.ID, hashedPassword); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.buildAuthResponse(user)
}

// --- helpers ---

func (s *AuthServiceImpl) buildAuthResponse(user *models.User) (*dto.AuthResponse, error) {
	token, err := auth.GenerateToken(user.ID, string(user.Role), user.OrganizationName)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Token: token,
		User:  user.Sanitized(),
	}, nil
}

func (s *AuthServiceImpl) clearOTP(db *gorm.DB, userID string) {
	if err := s.userRepo.UpdateOTP(db, userID, "", nil); err != nil {
		logger.Warn("failed to roll back OTP after delivery failure", "user_id", userID, "error", err.Error())
	}
}

func (s *AuthServiceImpl) sendWelcomeEmail(user *models.User) {
	if s.emailProvider == nil {
		return
	}

	// Best effort, off the request path.
	go func() {
		if err := s.emailProvider.SendWelcome(user.Email, user.Name, string(user.Role)); err != nil {
			logger.Warn("failed to send welcome email", "email", user.Email, "error", err.Error())
		}
	}()
}

// generateOTP returns a 6-digit numeric code with leading zeros kept.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

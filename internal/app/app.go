package app

import (
	"database/sql"
	"errors"
	"fmt"

	"trackify_backend/internal/auth"
	"trackify_backend/internal/cache"
	"trackify_backend/internal/config"
	"trackify_backend/internal/database"
	"trackify_backend/internal/email"
	"trackify_backend/internal/events"
	"trackify_backend/internal/handlers"
	"trackify_backend/internal/logger"
	"trackify_backend/internal/middleware"
	"trackify_backend/internal/models"
	"trackify_backend/internal/repositories"
	"trackify_backend/internal/routes"
	"trackify_backend/internal/services"
	"trackify_backend/internal/storage"
	"trackify_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB, sqlDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the whole HTTP stack. Tests call it directly with
// their own database handles.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB, sqlDB *sql.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		BasePath: cfg.Upload.Dir,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "dir", cfg.Upload.Dir)

	hub := events.NewHub()
	go hub.Run()
	eventsHandler := events.NewHandler(hub)

	serviceContainer := initializeServices(cfg, storageInstance, hub)

	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(gormDB)

	routes.RegisterRoutes(ginRouter, appHandlers, eventsHandler, cfg.Upload.Dir)

	return ginRouter
}

func initializeServices(cfg *config.Config, storageInstance storage.Storage, hub *events.Hub) *services.ServiceContainer {
	var emailService email.Provider
	if cfg.Email.SMTPHost != "" {
		provider, err := email.NewSMTPProvider(cfg)
		if err != nil {
			logger.Fatal("Failed to initialize SMTP provider", "error", err)
		}
		emailService = provider
		logger.Info("SMTP email provider initialized", "host", cfg.Email.SMTPHost)
	} else {
		logger.Warn("SMTP_HOST not set, email delivery disabled")
	}

	var listCache cache.ListCache
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		listCache = cache.NewRedisCache(client, cache.DefaultTTL)
		logger.Info("Redis list cache initialized", "addr", cfg.Redis.Addr)
	} else {
		listCache = cache.NewMemoryCache(cache.DefaultTTL)
		logger.Info("In-memory list cache initialized")
	}

	userRepo := repositories.NewUserRepository()
	complaintRepo := repositories.NewComplaintRepository()
	taxonomyRepo := repositories.NewTaxonomyRepository()

	authService := services.NewAuthService(userRepo, emailService)
	userService := services.NewUserService(userRepo)
	complaintService := services.NewComplaintService(complaintRepo, userRepo, storageInstance, listCache, hub,
		cfg.Upload.MaxFileSize, cfg.Upload.MaxFiles)
	taxonomyService := services.NewTaxonomyService(taxonomyRepo)

	return &services.ServiceContainer{
		AuthService:      authService,
		UserService:      userService,
		ComplaintService: complaintService,
		TaxonomyService:  taxonomyService,
		EmailService:     emailService,
	}
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		Auth:      handlers.NewAuthHandler(baseHandler, container.AuthService),
		User:      handlers.NewUserHandler(baseHandler, container.UserService),
		Complaint: handlers.NewComplaintHandler(baseHandler, container.ComplaintService),
		Taxonomy:  handlers.NewTaxonomyHandler(baseHandler, container.TaxonomyService),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var adminUser models.User
	result := db.Where("email = ?", adminEmail).First(&adminUser)

	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}

	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found with specified email. Creating first admin...", "email", adminEmail)

	hashedPassword, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Name:         "Administrator",
		Email:        adminEmail,
		PasswordHash: hashedPassword,
		Role:         models.UserRoleAdmin,
	}

	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user in database: %w", err)
	}

	logger.Info("Successfully created first admin user", "email", adminEmail)
	return nil
}

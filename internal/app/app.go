package app

import (
	"fmt"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/database"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/identity"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/routes"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/storage"
	"jobboard_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Run wires the whole application together and starts the HTTP server.
func Run() {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)
	logger.Info("starting server", "env", cfg.Server.Env, "port", cfg.Server.Port)

	// TranslateError turns driver-level unique violations into
	// gorm.ErrDuplicatedKey, which the repositories depend on.
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}

	if err := database.Migrate(db); err != nil {
		logger.Fatal("failed to run migrations", "error", err)
	}

	store, err := storage.NewStorage(storage.Config{
		Type:       cfg.Storage.Type,
		BasePath:   cfg.Storage.BasePath,
		BaseURL:    cfg.Storage.BaseURL,
		Bucket:     cfg.Storage.Bucket,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Endpoint:   cfg.Storage.Endpoint,
		PublicRead: cfg.Storage.PublicRead,
	})
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}

	tokens := auth.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.TTL)
	verifier := identity.NewJWTVerifier(cfg.Identity.Secret, cfg.Identity.Issuer)

	companyRepo := repositories.NewCompanyRepository(db)
	userRepo := repositories.NewUserRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	appRepo := repositories.NewApplicationRepository(db)
	savedRepo := repositories.NewSavedJobRepository(db)

	sc := &services.ServiceContainer{
		CompanyAuthService: services.NewCompanyAuthService(companyRepo, tokens, store),
		UserService:        services.NewUserService(userRepo),
		JobService:         services.NewJobService(jobRepo, appRepo),
		ApplicationService: services.NewApplicationService(appRepo, jobRepo),
		SavedJobService:    services.NewSavedJobService(savedRepo, jobRepo),
		ResumeService:      services.NewResumeService(userRepo, store),
	}

	v := validator.New()
	h := handlers.NewAppHandlers(sc, v)

	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())

	routes.Register(router, h, sc, verifier)

	// Local storage serves its blobs straight from disk.
	if cfg.Storage.Type == "local" {
		router.Static(cfg.Storage.BaseURL, cfg.Storage.BasePath)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	if err := router.Run(addr); err != nil {
		logger.Fatal("server stopped", "error", err)
	}
}

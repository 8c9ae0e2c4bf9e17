package app

import (
	"fmt"

	"github.com/D1Massacre007/York-Realty/internal/config"
	"github.com/D1Massacre007/York-Realty/internal/db"
	"github.com/D1Massacre007/York-Realty/internal/repository"
	"github.com/D1Massacre007/York-Realty/internal/service"
	"github.com/D1Massacre007/York-Realty/internal/storage"
	"github.com/jmoiron/sqlx"
)

type App struct {
	Cfg            *config.Config
	DB             *sqlx.DB
	Storage        storage.Storage
	UploadService  *service.UploadService
	ListingService *service.ListingService
	AuthService    *service.AuthService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations unless a deploy pipeline owns them
	if cfg.DBAutoMigrate {
		err = db.RunMigrations(database.DB, cfg.DBDriver)
		if err != nil {
			return nil, fmt.Errorf("failed to run migrations: %v", err)
		}
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	listingRepository := repository.NewListingRepository(database)

	// Storage (upload directory is provisioned here, once)
	fileStorage, err := storage.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %v", err)
	}

	// Services
	uploadService := service.NewUploadService(fileStorage)
	listingService := service.NewListingService(listingRepository, uploadService)
	authService := service.NewAuthService(userRepository, cfg.JWTSecret, cfg.JWTExpiry)

	return &App{
		Cfg:            cfg,
		DB:             database,
		Storage:        fileStorage,
		UploadService:  uploadService,
		ListingService: listingService,
		AuthService:    authService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}

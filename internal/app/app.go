package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"onlyfame_backend/database"
	"onlyfame_backend/internal/auth"
	"onlyfame_backend/internal/config"
	"onlyfame_backend/internal/handlers"
	"onlyfame_backend/internal/logger"
	"onlyfame_backend/internal/middleware"
	"onlyfame_backend/internal/repositories"
	"onlyfame_backend/internal/routes"
	"onlyfame_backend/internal/services"
	"onlyfame_backend/internal/storage"
	"onlyfame_backend/internal/validator"
	"onlyfame_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)
	apperrors.SetDebug(!cfg.IsProduction())
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.Open(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	logger.Info("Database connected")

	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(gormDB); err != nil {
			logger.Fatal("Failed to migrate database", "error", err)
		}
		logger.Info("Database migrated")
	}

	if err := seedVerifiedCasters(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed verified casters", "error", err)
	}

	ginRouter, err := SetupRouter(cfg, gormDB)
	if err != nil {
		logger.Fatal("Failed to set up router", "error", err)
	}

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         address,
		Handler:      ginRouter,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("Server starting", "address", address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Info("Shutting down server...", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	if sqlDB, err := gormDB.DB(); err == nil {
		sqlDB.Close()
	}
	logger.Info("Server stopped")
}

// SetupRouter собирает хранилище, сервисы, хэндлеры и маршруты
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) (*gin.Engine, error) {
	storageInstance, err := storage.NewStorage(context.Background(), storage.Config{
		Type:       cfg.Storage.Type,
		BasePath:   cfg.Storage.BasePath,
		BaseURL:    cfg.Storage.BaseURL,
		Bucket:     cfg.Storage.Bucket,
		Region:     cfg.Storage.Region,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Endpoint:   cfg.Storage.Endpoint,
		UseSSL:     cfg.Storage.UseSSL,
		PublicRead: cfg.Storage.PublicRead,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	// 1. Сервисы
	serviceContainer := initializeServices(cfg, storageInstance)

	// 2. Хэндлеры
	appHandlers := handlers.NewAppHandlers(cfg, serviceContainer, storageInstance, validator.New())

	// 3. Gin
	ginRouter := initializeGinRouter(cfg, gormDB)

	// 4. Маршруты
	routes.RegisterRoutes(
		ginRouter,
		appHandlers,
		serviceContainer.AuthService,
		cfg.JWT.CookieName,
		isLocalStorage(cfg.Storage.Type),
	)

	return ginRouter, nil
}

func initializeServices(cfg *config.Config, storageInstance storage.Storage) *services.ServiceContainer {
	tokens := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Minute)
	return services.NewServiceContainer(cfg, storageInstance, tokens)
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowOrigins))
	router.Use(middleware.DBMiddleware(db))
	return router
}

func isLocalStorage(storageType string) bool {
	return storageType == "" || storageType == "local"
}

// seedVerifiedCasters ставит verified кастерам из platform.verified_casters.
// Кастера, который еще не зарегистрирован, пропускаем.
func seedVerifiedCasters(db *gorm.DB, cfg *config.Config) error {
	emails := cfg.Platform.VerifiedCasters
	if len(emails) == 0 {
		return nil
	}

	userRepo := repositories.NewUserRepository()
	profileRepo := repositories.NewProfileRepository()

	return db.Transaction(func(tx *gorm.DB) error {
		for _, email := range emails {
			email = strings.TrimSpace(email)
			if email == "" {
				continue
			}

			user, err := userRepo.FindByEmail(tx, email)
			if errors.Is(err, repositories.ErrUserNotFound) {
				logger.Warn("Verified caster is not registered yet, skipping", "email", email)
				continue
			}
			if err != nil {
				return fmt.Errorf("failed to find caster %s: %w", email, err)
			}

			err = profileRepo.MarkCasterVerified(tx, user.ID)
			if errors.Is(err, repositories.ErrCastingProfileNotFound) {
				logger.Warn("User has no casting profile, skipping", "email", email)
				continue
			}
			if err != nil {
				return fmt.Errorf("failed to verify caster %s: %w", email, err)
			}
			logger.Info("Caster marked as verified", "email", email)
		}
		return nil
	})
}

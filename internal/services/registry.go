package services

import (
	"onlyfame_backend/internal/auth"
	"onlyfame_backend/internal/config"
	"onlyfame_backend/internal/repositories"
	"onlyfame_backend/internal/storage"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService         AuthService
	ProfileService      ProfileService
	CastingService      CastingService
	ApplicationService  ApplicationService
	DashboardService    DashboardService
	NotificationService NotificationService
}

// NewServiceContainer собирает репозитории и сервисы
func NewServiceContainer(cfg *config.Config, store storage.Storage, tokens *auth.TokenManager) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	profileRepo := repositories.NewProfileRepository()
	castingRepo := repositories.NewCastingRepository()
	applicationRepo := repositories.NewApplicationRepository()
	notificationRepo := repositories.NewNotificationRepository()

	notificationService := NewNotificationService(notificationRepo)

	return &ServiceContainer{
		AuthService:         NewAuthService(userRepo, profileRepo, tokens),
		ProfileService:      NewProfileService(profileRepo, store, cfg.ImageUpload()),
		CastingService:      NewCastingService(castingRepo, applicationRepo, profileRepo),
		ApplicationService:  NewApplicationService(applicationRepo, castingRepo, profileRepo, notificationService),
		DashboardService:    NewDashboardService(profileRepo, castingRepo, applicationRepo, notificationService),
		NotificationService: notificationService,
	}
}

package handlers

import (
	"onlyfame_backend/internal/config"
	"onlyfame_backend/internal/services"
	"onlyfame_backend/internal/storage"
	"onlyfame_backend/internal/validator"
)

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	ActorHandler        *ActorHandler
	CasterHandler       *CasterHandler
	NotificationHandler *NotificationHandler
	FileHandler         *FileHandler
	HealthHandler       *HealthHandler
}

// NewAppHandlers собирает хэндлеры поверх контейнера сервисов
func NewAppHandlers(cfg *config.Config, sc *services.ServiceContainer, store storage.Storage, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		AuthHandler:         NewAuthHandler(base, sc.AuthService, cfg),
		ActorHandler:        NewActorHandler(base, sc.DashboardService, sc.ProfileService, sc.CastingService, sc.ApplicationService),
		CasterHandler:       NewCasterHandler(base, sc.DashboardService, sc.CastingService, sc.ApplicationService),
		NotificationHandler: NewNotificationHandler(base, sc.NotificationService),
		FileHandler:         NewFileHandler(base, store),
		HealthHandler:       NewHealthHandler(base),
	}
}

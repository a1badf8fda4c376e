package routes

import (
	"onlyfame_backend/internal/handlers"
	"onlyfame_backend/internal/logger"
	"onlyfame_backend/internal/middleware"
	"onlyfame_backend/internal/services"
	"onlyfame_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes регистрирует инфраструктурные маршруты и страницы.
// Страницы проходят через сессию и guard, инфраструктура - нет.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	authService services.AuthService,
	cookieName string,
	serveFiles bool,
) {
	// Инфраструктура
	infra := ginRouter.Group("")
	{
		appHandlers.HealthHandler.RegisterRoutes(infra)
		if serveFiles {
			appHandlers.FileHandler.RegisterRoutes(infra)
		}
		infra.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	pageMiddleware := []gin.HandlerFunc{
		middleware.SessionMiddleware(authService, cookieName),
		middleware.GuardMiddleware(),
	}

	// Страницы
	pages := ginRouter.Group("", pageMiddleware...)
	{
		appHandlers.AuthHandler.RegisterRoutes(pages)
		appHandlers.ActorHandler.RegisterRoutes(pages)
		appHandlers.CasterHandler.RegisterRoutes(pages)
		appHandlers.NotificationHandler.RegisterRoutes(pages)
	}

	// Неизвестные пути тоже проходят guard: гость уйдет на /auth/login
	ginRouter.NoRoute(append(pageMiddleware, notFound)...)

	logger.Info("Routes registered", "serve_files", serveFiles)
}

func notFound(c *gin.Context) {
	apperrors.HandleError(c, apperrors.ErrNotFound("route", "Page not found", map[string]string{
		"path":   c.Request.URL.Path,
		"method": c.Request.Method,
	}))
}

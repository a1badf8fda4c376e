package middleware

import (
	"net/http"

	"onlyfame_backend/internal/guard"
	"onlyfame_backend/internal/logger"
	"onlyfame_backend/internal/services/dto"
	"onlyfame_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// GuardMiddleware применяет guard.Decide к каждому запросу страницы.
// Несовпадение роли никогда не становится ошибкой, только редиректом.
func GuardMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		decision := guard.Decide(path, SessionFrom(c))

		switch decision.Outcome {
		case guard.Redirect:
			logger.CtxDebug(c.Request.Context(), "Guard redirect", "path", path, "location", decision.Location)
			c.Redirect(RedirectStatus(c.Request.Method), decision.Location)
			c.Abort()
		case guard.SetupPending:
			c.Header("Retry-After", "2")
			pending := apperrors.ErrProfileSetupPending
			view := dto.NewProfileSetupPendingView(path, string(pending.Code), pending.Message)
			c.AbortWithStatusJSON(pending.HTTPCode, dto.Page{View: view})
		default:
			c.Next()
		}
	}
}

// RedirectStatus - 302 для GET/HEAD, 303 для остальных (браузер перейдет GET-ом)
func RedirectStatus(method string) int {
	if method == http.MethodGet || method == http.MethodHead {
		return http.StatusFound
	}
	return http.StatusSeeOther
}

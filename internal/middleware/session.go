package middleware

import (
	"errors"
	"strings"

	"onlyfame_backend/internal/guard"
	"onlyfame_backend/internal/logger"
	"onlyfame_backend/internal/services"
	"onlyfame_backend/pkg/apperrors"
	"onlyfame_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SessionMiddleware разбирает токен (Bearer или cookie) и кладет сессию в контекст.
// Без токена или с невалидным токеном запрос идет дальше как гостевой.
func SessionMiddleware(authService services.AuthService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := TokenFromRequest(c, cookieName)
		if token == "" {
			c.Next()
			return
		}

		db := c.MustGet(string(contextkeys.DBContextKey)).(*gorm.DB).WithContext(c.Request.Context())

		session, err := authService.ResolveSession(db, token)
		if err != nil {
			if errors.Is(err, apperrors.ErrInvalidToken) {
				logger.CtxDebug(c.Request.Context(), "Ignoring invalid session token", "path", c.Request.URL.Path)
				c.Next()
				return
			}
			apperrors.HandleError(c, err)
			c.Abort()
			return
		}

		c.Set(contextkeys.UserIDKey, session.UserID)
		c.Set(contextkeys.SessionKey, session)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), session.UserID))
		c.Next()
	}
}

// TokenFromRequest - заголовок Authorization имеет приоритет над cookie
func TokenFromRequest(c *gin.Context, cookieName string) string {
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	if cookieName == "" {
		return ""
	}
	if cookie, err := c.Cookie(cookieName); err == nil {
		return cookie
	}
	return ""
}

// SessionFrom возвращает сессию или nil для гостя
func SessionFrom(c *gin.Context) *guard.Session {
	val, ok := c.Get(contextkeys.SessionKey)
	if !ok {
		return nil
	}
	session, _ := val.(*guard.Session)
	return session
}

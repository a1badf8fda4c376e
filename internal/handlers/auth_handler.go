package handlers

import (
	"net/http"
	"time"

	"onlyfame_backend/internal/config"
	"onlyfame_backend/internal/guard"
	"onlyfame_backend/internal/logger"
	"onlyfame_backend/internal/models"
	"onlyfame_backend/internal/services"
	"onlyfame_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
	cfg         *config.Config
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		cfg:         cfg,
	}
}

// RegisterRoutes регистрирует публичные страницы и маршруты аутентификации
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET(guard.PathLanding, h.Landing)

	auth := rg.Group("/auth")
	{
		auth.GET("/login", h.LoginForm)
		auth.POST("/login", h.Login)
		auth.GET("/register", h.RegisterForm)
		auth.POST("/register", h.Register)
		auth.POST("/logout", h.Logout)
	}
}

// Landing godoc
// @Summary Главная страница
// @Tags Public
// @Produce json
// @Success 200 {object} dto.Page
// @Router / [get]
func (h *AuthHandler) Landing(c *gin.Context) {
	h.RenderPage(c, http.StatusOK, dto.LandingView{
		Title:     "ONLYFAME",
		Tagline:   "Where actors meet their next role",
		PublicURL: h.cfg.Platform.PublicURL,
		PublicKey: h.cfg.Platform.PublicKey,
		Links: []dto.NavLink{
			{Label: "Login", Href: guard.PathLogin},
			{Label: "Join as Actor", Href: guard.PathRegister + "?role=" + string(models.UserRoleActor)},
			{Label: "Join as Caster", Href: guard.PathRegister + "?role=" + string(models.UserRoleCaster)},
		},
	})
}

func (h *AuthHandler) LoginForm(c *gin.Context) {
	h.RenderPage(c, http.StatusOK, dto.LoginFormView{
		Title: "Login",
		Fields: []dto.FormField{
			{Name: "email", Type: "email", Label: "Email", Required: true},
			{Name: "password", Type: "password", Label: "Password", Required: true},
		},
		Links: []dto.NavLink{
			{Label: "Create an account", Href: guard.PathRegister},
		},
	})
}

// Login godoc
// @Summary Вход по email и паролю
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Учетные данные"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.setSessionCookie(c, resp.Token, resp.ExpiresAt)
	logger.CtxInfo(c.Request.Context(), "User logged in", "user_id", resp.User.ID)
	c.JSON(http.StatusOK, resp)
}

// RegisterForm - выбор роли берется из ?role=, по умолчанию actor
func (h *AuthHandler) RegisterForm(c *gin.Context) {
	role := models.UserRole(c.Query("role"))
	if !role.IsValid() {
		role = models.UserRoleActor
	}

	h.RenderPage(c, http.StatusOK, dto.RegisterFormView{
		Title:        "Create your account",
		SelectedRole: role,
		Roles:        []models.UserRole{models.UserRoleActor, models.UserRoleCaster},
		Fields: []dto.FormField{
			{Name: "full_name", Type: "text", Label: "Full name", Required: true},
			{Name: "email", Type: "email", Label: "Email", Required: true},
			{Name: "password", Type: "password", Label: "Password", Required: true},
			{Name: "role", Type: "select", Label: "I am", Required: true, Options: []string{string(models.UserRoleActor), string(models.UserRoleCaster)}},
		},
		Links: []dto.NavLink{
			{Label: "Already have an account?", Href: guard.PathLogin},
		},
	})
}

// Register godoc
// @Summary Регистрация актера или кастинг-директора
// @Tags Auth
// @Accept json
// @Produce json
// @Param role query string false "actor или caster, если не передано в теле"
// @Param request body dto.RegisterRequest true "Данные регистрации"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.bind(c, &req) {
		return
	}
	if req.Role == "" {
		req.Role = models.UserRole(c.Query("role"))
	}
	if !h.validate(c, &req) {
		return
	}

	resp, err := h.authService.Register(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.setSessionCookie(c, resp.Token, resp.ExpiresAt)
	logger.CtxInfo(c.Request.Context(), "User registered", "user_id", resp.User.ID, "role", resp.User.Role)
	c.JSON(http.StatusCreated, resp)
}

// Logout godoc
// @Summary Выход
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.RedirectResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, dto.RedirectResponse{Redirect: guard.PathLogin})
}

// ---------------- cookie ----------------

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, expiresAt time.Time) {
	if h.cfg.JWT.CookieName == "" {
		return
	}
	maxAge := int(time.Until(expiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.JWT.CookieName, token, maxAge, "/", "", h.cfg.JWT.CookieSecure, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	if h.cfg.JWT.CookieName == "" {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.JWT.CookieName, "", -1, "/", "", h.cfg.JWT.CookieSecure, true)
}

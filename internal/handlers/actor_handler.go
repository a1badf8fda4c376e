package handlers

import (
	"net/http"

	"onlyfame_backend/internal/models"
	"onlyfame_backend/internal/services"
	"onlyfame_backend/internal/services/dto"
	"onlyfame_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// ActorHandler - страницы актера (/actor/...)
type ActorHandler struct {
	*BaseHandler
	dashboardService   services.DashboardService
	profileService     services.ProfileService
	castingService     services.CastingService
	applicationService services.ApplicationService
}

func NewActorHandler(
	base *BaseHandler,
	dashboardService services.DashboardService,
	profileService services.ProfileService,
	castingService services.CastingService,
	applicationService services.ApplicationService,
) *ActorHandler {
	return &ActorHandler{
		BaseHandler:        base,
		dashboardService:   dashboardService,
		profileService:     profileService,
		castingService:     castingService,
		applicationService: applicationService,
	}
}

func (h *ActorHandler) RegisterRoutes(rg *gin.RouterGroup) {
	actor := rg.Group("/actor")
	{
		actor.GET("/dashboard", h.Dashboard)

		actor.GET("/profile", h.GetProfile)
		actor.PUT("/profile", h.UpdateProfile)
		actor.POST("/profile/images/:type", h.UploadImage)

		actor.GET("/casting-calls", h.ListCastingCalls)
		actor.GET("/casting-calls/:id", h.GetCastingCall)
		actor.GET("/casting-calls/:id/apply", h.ApplyForm)
		actor.POST("/casting-calls/:id/apply", h.Apply)

		actor.GET("/applications", h.ListApplications)
	}
}

// Dashboard godoc
// @Summary Дашборд актера
// @Tags Actor
// @Produce json
// @Success 200 {object} dto.Page
// @Router /actor/dashboard [get]
func (h *ActorHandler) Dashboard(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	view, err := h.dashboardService.ActorDashboard(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RenderPage(c, http.StatusOK, view)
}

// ============================================================================
// Профиль
// ============================================================================

func (h *ActorHandler) GetProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetActorProfile(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RenderPage(c, http.StatusOK, dto.ActorProfileView{
		Profile:    profile,
		ImageTypes: models.ImageTypes,
	})
}

// UpdateProfile godoc
// @Summary Обновление профиля актера
// @Tags Actor
// @Accept json
// @Produce json
// @Param request body dto.UpdateActorProfileRequest true "Профиль"
// @Success 200 {object} dto.Page
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /actor/profile [put]
func (h *ActorHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateActorProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.profileService.UpdateActorProfile(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RenderPage(c, http.StatusOK, dto.ActorProfileView{
		Profile:    profile,
		ImageTypes: models.ImageTypes,
		Message:    "Profile updated successfully!",
	})
}

// UploadImage godoc
// @Summary Загрузка фото актера (left, center, right)
// @Tags Actor
// @Accept multipart/form-data
// @Produce json
// @Param type path string true "left, center или right"
// @Param image formData file true "Изображение"
// @Success 200 {object} dto.ImageUploadResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /actor/profile/images/{type} [post]
func (h *ActorHandler) UploadImage(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	imageType := models.ImageType(c.Param("type"))
	if !imageType.IsValid() {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid image type, expected left, center or right"))
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Image file is required"))
		return
	}

	resp, err := h.profileService.UploadActorImage(c.Request.Context(), h.GetDB(c), userID, imageType, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ============================================================================
// Кастинги
// ============================================================================

// ListCastingCalls godoc
// @Summary Активные кастинги
// @Tags Actor
// @Produce json
// @Param match query bool false "Только подходящие по требованиям"
// @Success 200 {object} dto.Page
// @Router /actor/casting-calls [get]
func (h *ActorHandler) ListCastingCalls(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	matchOnly := c.Query("match") == "true"

	view, err := h.castingService.ListActiveCalls(h.GetDB(c), userID, matchOnly)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RenderPage(c, http.StatusOK, view)
}

func (h *ActorHandler) GetCastingCall(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	view, err := h.castingService.GetCallForActor(h.GetDB(c), userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RenderPage(c, http.StatusOK, view)
}

func (h *ActorHandler) ApplyForm(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	view, err := h.applicationService.GetApplyForm(h.GetDB(c), userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RenderPage(c, http.StatusOK, view)
}

// Apply godoc
// @Summary Отклик на кастинг
// @Tags Actor
// @Accept json
// @Produce json
// @Param id path string true "ID кастинга"
// @Param request body dto.ApplyRequest false "Сопроводительное письмо и видео"
// @Success 201 {object} dto.ApplyResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /actor/casting-calls/{id}/apply [post]
func (h *ActorHandler) Apply(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ApplyRequest
	// Пустое тело допустимо: оба поля необязательны
	if c.Request.ContentLength != 0 && !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.applicationService.Apply(h.GetDB(c), userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ============================================================================
// Отклики
// ============================================================================

func (h *ActorHandler) ListApplications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	view, err := h.applicationService.ListActorApplications(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RenderPage(c, http.StatusOK, view)
}

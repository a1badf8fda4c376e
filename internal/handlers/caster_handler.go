package handlers

import (
	"net/http"

	"onlyfame_backend/internal/models"
	"onlyfame_backend/internal/services"
	"onlyfame_backend/internal/services/dto"
	"onlyfame_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

// CasterHandler - страницы кастинг-директора (/caster/...)
type CasterHandler struct {
	*BaseHandler
	dashboardService   services.DashboardService
	castingService     services.CastingService
	applicationService services.ApplicationService
}

func NewCasterHandler(
	base *BaseHandler,
	dashboardService services.DashboardService,
	castingService services.CastingService,
	applicationService services.ApplicationService,
) *CasterHandler {
	return &CasterHandler{
		BaseHandler:        base,
		dashboardService:   dashboardService,
		castingService:     castingService,
		applicationService: applicationService,
	}
}

func (h *CasterHandler) RegisterRoutes(rg *gin.RouterGroup) {
	caster := rg.Group("/caster")
	{
		caster.GET("/dashboard", h.Dashboard)

		caster.GET("/create-call", h.CreateCallForm)
		caster.POST("/create-call", h.CreateCall)

		caster.GET("/calls", h.ListCalls)
		caster.GET("/calls/:id", h.GetCall)
		caster.PATCH("/calls/:id", h.UpdateCall)

		caster.GET("/applications", h.ListApplications)
		caster.GET("/applications/:id", h.GetApplication)
		caster.PUT("/applications/:id/status", h.UpdateApplicationStatus)
	}
}

// Dashboard godoc
// @Summary Дашборд кастинг-директора
// @Tags Caster
// @Produce json
// @Success 200 {object} dto.Page
// @Router /caster/dashboard [get]
func (h *CasterHandler) Dashboard(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	view, err := h.dashboardService.CasterDashboard(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RenderPage(c, http.StatusOK, view)
}

// ============================================================================
// Кастинги
// ============================================================================

func (h *CasterHandler) CreateCallForm(c *gin.Context) {
	h.RenderPage(c, http.StatusOK, dto.CreateCallFormView{
		GenderOptions: dto.GenderOptions,
		ExperienceLevels: []models.ExperienceLevel{
			models.ExperienceLevelAny,
			models.ExperienceLevelFresher,
			models.ExperienceLevelExperienced,
		},
		DateFormat: validator.DateLayout,
	})
}

// CreateCall godoc
// @Summary Создание кастинга
// @Tags Caster
// @Accept json
// @Produce json
// @Param request body dto.CreateCastingCallRequest true "Кастинг"
// @Success 201 {object} dto.CreateCastingCallResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /caster/create-call [post]
func (h *CasterHandler) CreateCall(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCastingCallRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.castingService.CreateCall(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CasterHandler) ListCalls(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	view, err := h.castingService.ListCasterCalls(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RenderPage(c, http.StatusOK, view)
}

func (h *CasterHandler) GetCall(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	view, err := h.castingService.GetCasterCall(h.GetDB(c), userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RenderPage(c, http.StatusOK, view)
}

// UpdateCall godoc
// @Summary Правка кастинга владельцем
// @Tags Caster
// @Accept json
// @Produce json
// @Param id path string true "ID кастинга"
// @Param request body dto.UpdateCastingCallRequest true "Изменения"
// @Success 200 {object} dto.CastingCallResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /caster/calls/{id} [patch]
func (h *CasterHandler) UpdateCall(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCastingCallRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.castingService.UpdateCall(h.GetDB(c), userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ============================================================================
// Отклики
// ============================================================================

// ListApplications godoc
// @Summary Отклики на кастинги владельца
// @Tags Caster
// @Produce json
// @Param call query string false "Фильтр по кастингу"
// @Success 200 {object} dto.Page
// @Router /caster/applications [get]
func (h *CasterHandler) ListApplications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	view, err := h.applicationService.ListForCaster(h.GetDB(c), userID, c.Query("call"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RenderPage(c, http.StatusOK, view)
}

func (h *CasterHandler) GetApplication(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	view, err := h.applicationService.GetForCaster(h.GetDB(c), userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RenderPage(c, http.StatusOK, view)
}

// UpdateApplicationStatus godoc
// @Summary Смена статуса отклика
// @Tags Caster
// @Accept json
// @Produce json
// @Param id path string true "ID отклика"
// @Param request body dto.UpdateApplicationStatusRequest true "shortlisted, selected или rejected"
// @Success 200 {object} dto.UpdateApplicationStatusResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /caster/applications/{id}/status [put]
func (h *CasterHandler) UpdateApplicationStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.applicationService.UpdateStatus(h.GetDB(c), userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

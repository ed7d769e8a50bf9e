package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/tillpoint/tillpoint-api/internal/application/service"
	"github.com/tillpoint/tillpoint-api/internal/presentation/http/dto/request"
	"github.com/tillpoint/tillpoint-api/internal/presentation/http/dto/response"
	"github.com/tillpoint/tillpoint-api/pkg/apperror"
)

// SettingsHandler handles business profile HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get returns the business profile, creating defaults on first access
func (h *SettingsHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	settings, err := h.settingsService.GetSettings(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, settings)
}

// Update applies a partial update to the business profile
func (h *SettingsHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	var req request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), *userID, &service.UpdateSettingsInput{
		BusinessName:    req.BusinessName,
		BusinessAddress: req.BusinessAddress,
		Phone:           req.Phone,
		Email:           req.Email,
		Currency:        req.Currency,
		DefaultTaxRate:  req.DefaultTaxRate,
		ReceiptFooter:   req.ReceiptFooter,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, settings)
}

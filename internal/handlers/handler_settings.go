package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/arprinters/pos_backend/internal/core/ports/services"
	"github.com/arprinters/pos_backend/internal/dto"
	"github.com/arprinters/pos_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// settingsHandler handles HTTP requests for the shop profile.
type settingsHandler struct {
	settingsService portssvc.SettingsSvcFacade
}

// newSettingsHandler creates a new settingsHandler.
func newSettingsHandler(ss portssvc.SettingsSvcFacade) *settingsHandler {
	return &settingsHandler{
		settingsService: ss,
	}
}

// registerSettingsRoutes registers routes related to settings.
func registerSettingsRoutes(rg *gin.RouterGroup, settingsService portssvc.SettingsSvcFacade) {
	h := newSettingsHandler(settingsService)

	settings := rg.Group("/settings")
	{
		settings.GET("/profile", h.getShopProfile)
		settings.PUT("/profile", h.saveShopProfile)
	}
}

// getShopProfile godoc
// @Summary Get the shop profile
// @Description Retrieves the shop identity printed on receipts
// @Tags settings
// @Produce  json
// @Success 200 {object} dto.ShopProfileResponse
// @Failure 500 {object} map[string]string "Failed to retrieve shop profile"
// @Security BearerAuth
// @Router /settings/profile [get]
func (h *settingsHandler) getShopProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	profile, err := h.settingsService.GetShopProfile(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get shop profile", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve shop profile"})
		return
	}

	c.JSON(http.StatusOK, dto.ToShopProfileResponse(profile))
}

// saveShopProfile godoc
// @Summary Replace the shop profile
// @Description Replaces the shop identity printed on receipts
// @Tags settings
// @Accept  json
// @Produce  json
// @Param   profile body dto.SaveShopProfileRequest true "Shop profile"
// @Success 200 {object} dto.ShopProfileResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to save shop profile"
// @Security BearerAuth
// @Router /settings/profile [put]
func (h *settingsHandler) saveShopProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SaveShopProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	profile, err := h.settingsService.SaveShopProfile(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to save shop profile", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save shop profile"})
		return
	}

	c.JSON(http.StatusOK, dto.ToShopProfileResponse(profile))
}

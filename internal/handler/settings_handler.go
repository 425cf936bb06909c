package handler

import (
	"net/http"

	"pos/internal/middleware"
	"pos/internal/model"
	"pos/internal/service"
	"pos/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type SettingsHandler struct {
	settingsService service.SettingsService
	backupService   service.BackupService
	checkoutTaxRate decimal.Decimal
	auth            *middleware.Authenticator
}

func NewSettingsHandler(settingsService service.SettingsService, backupService service.BackupService, checkoutTaxRate decimal.Decimal, auth *middleware.Authenticator) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		backupService:   backupService,
		checkoutTaxRate: checkoutTaxRate,
		auth:            auth,
	}
}

// SettingsResponse adds the rate checkout actually applies, which may differ from tax_rate.
type SettingsResponse struct {
	model.Settings
	CheckoutTaxRate decimal.Decimal `json:"checkout_tax_rate"`
}

func (h *SettingsHandler) respond(s model.Settings) SettingsResponse {
	return SettingsResponse{Settings: s, CheckoutTaxRate: h.checkoutTaxRate}
}

func (h *SettingsHandler) RegisterRoutes(router *gin.RouterGroup) {
	admin := router.Group("/api")
	{
		admin.GET("/settings", h.auth.RequirePermission(model.PermManageSettings), h.GetSettings)
		admin.PATCH("/settings", h.auth.RequirePermission(model.PermManageSettings), h.UpdateSettings)
		admin.GET("/backup", h.auth.RequirePermission(model.PermManageSettings), h.ExportBackup)
		admin.POST("/backup", h.auth.RequirePermission(model.PermManageSettings), h.ImportBackup)
		admin.POST("/reset", h.auth.RequirePermission(model.PermManageSystem), h.Reset)
	}
}

// GetSettings returns the store preferences
// @Summary      Get settings
// @Tags         settings
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=SettingsResponse}
// @Router       /api/settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.respond(h.settingsService.Get())))
}

// UpdateSettings merges the supplied preferences
// @Summary      Update settings
// @Tags         settings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      model.SettingsPatch  true  "Fields to change"
// @Success      200      {object}  response.Response{data=SettingsResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/settings [patch]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var patch model.SettingsPatch
	if !bindJSON(c, &patch) {
		return
	}
	settings, err := h.settingsService.Update(c.Request.Context(), patch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.respond(settings)))
}

// ExportBackup downloads every collection as JSON
// @Summary      Export backup
// @Tags         settings
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  service.Backup
// @Router       /api/backup [get]
func (h *SettingsHandler) ExportBackup(c *gin.Context) {
	b := h.backupService.Export()
	c.Header("Content-Disposition", `attachment; filename="pos-backup-`+b.ExportedAt.Format("20060102-150405")+`.json"`)
	c.JSON(http.StatusOK, b)
}

// ImportBackup replaces the collections present in the uploaded backup
// @Summary      Import backup
// @Tags         settings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.Backup  true  "Backup document"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /api/backup [post]
func (h *SettingsHandler) ImportBackup(c *gin.Context) {
	var b service.Backup
	if !bindJSON(c, &b) {
		return
	}
	if err := h.backupService.Import(c.Request.Context(), b); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Backup imported successfully"}))
}

// Reset wipes all store data and restores the factory defaults
// @Summary      Reset data
// @Tags         settings
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/reset [post]
func (h *SettingsHandler) Reset(c *gin.Context) {
	if err := h.backupService.Reset(c.Request.Context()); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Data reset to defaults"}))
}

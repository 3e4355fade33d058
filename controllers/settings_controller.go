package controllers

import (
	"as-production-store/cart"
	"as-production-store/models"
	"as-production-store/repositories"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	settings *repositories.SettingsRepository
}

func NewSettingsController() *SettingsController {
	return &SettingsController{settings: repositories.NewSettingsRepository()}
}

// @Summary Get enquiry settings
// @Description Get the WhatsApp number and message template (Admin)
// @Tags Admin - Settings
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/settings/enquiry [get]
func (ctrl *SettingsController) GetEnquirySettings(c *gin.Context) {
	settings, err := ctrl.settings.GetEnquirySettings(c.Request.Context())
	if err != nil {
		// No row yet: surface the defaults the composer would use.
		settings = &models.EnquirySettings{
			WhatsAppNumber: cart.DefaultWhatsAppNumber,
			PrefilledText:  cart.DefaultPrefilledText,
		}
	}

	c.JSON(200, gin.H{"success": true, "message": "Enquiry settings retrieved", "data": settings})
}

// @Summary Update enquiry settings
// @Description Update the WhatsApp number and message template (Admin)
// @Tags Admin - Settings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.EnquirySettingsRequest true "Enquiry settings"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/settings/enquiry [put]
func (ctrl *SettingsController) UpdateEnquirySettings(c *gin.Context) {
	var req models.EnquirySettingsRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "WhatsApp number must be digits only and the message at least 10 characters", "error": err.Error()})
		return
	}

	settings := &models.EnquirySettings{
		WhatsAppNumber: req.WhatsAppNumber,
		PrefilledText:  req.PrefilledText,
	}

	if err := ctrl.settings.UpsertEnquirySettings(c.Request.Context(), settings); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to save settings"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Enquiry settings saved", "data": settings})
}

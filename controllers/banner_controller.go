package controllers

import (
	"context"
	"strconv"
	"strings"

	"as-production-store/libs"
	"as-production-store/models"
	"as-production-store/repositories"

	"github.com/gin-gonic/gin"
)

type BannerController struct {
	banners *repositories.BannerRepository
}

func NewBannerController() *BannerController {
	return &BannerController{banners: repositories.NewBannerRepository()}
}

// @Summary Get active banners
// @Description Get the banners shown on the storefront
// @Tags Banners
// @Produce json
// @Success 200 {object} models.Response
// @Router /banners [get]
func (ctrl *BannerController) GetActiveBanners(c *gin.Context) {
	banners, err := ctrl.banners.List(c.Request.Context(), true)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get banners"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Banners retrieved", "data": banners})
}

// @Summary Get all banners
// @Description Get every banner including inactive ones (Admin)
// @Tags Admin - Banners
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/banners [get]
func (ctrl *BannerController) GetAllBanners(c *gin.Context) {
	banners, err := ctrl.banners.List(c.Request.Context(), false)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get banners"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Banners retrieved", "data": banners})
}

func validateBannerLink(link string) bool {
	return strings.HasPrefix(link, "http://") ||
		strings.HasPrefix(link, "https://") ||
		strings.HasPrefix(link, "/")
}

// @Summary Create banner
// @Description Create a new storefront banner (Admin)
// @Tags Admin - Banners
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Banner title"
// @Param subtitle formData string true "Banner subtitle"
// @Param button_text formData string true "Button text"
// @Param button_link formData string true "Button link (URL or /path)"
// @Param is_active formData bool false "Is active"
// @Param image formData file true "Banner image"
// @Success 201 {object} models.Response
// @Router /admin/banners [post]
func (ctrl *BannerController) CreateBanner(c *gin.Context) {
	title := strings.TrimSpace(c.PostForm("title"))
	subtitle := strings.TrimSpace(c.PostForm("subtitle"))
	buttonText := strings.TrimSpace(c.PostForm("button_text"))
	buttonLink := strings.TrimSpace(c.PostForm("button_link"))
	isActive, _ := strconv.ParseBool(c.DefaultPostForm("is_active", "true"))

	if len(title) < 2 || len(subtitle) < 2 || len(buttonText) < 2 {
		c.JSON(400, gin.H{"success": false, "message": "Title, subtitle, and button text must be at least 2 characters"})
		return
	}

	if !validateBannerLink(buttonLink) {
		c.JSON(400, gin.H{"success": false, "message": "Button link must be a URL or start with /"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "An image is required"})
		return
	}

	cloud, err := libs.NewCloudinaryService()
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Image storage not configured", "error": err.Error()})
		return
	}

	if err := cloud.ValidateImageFile(file); err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	opened, err := file.Open()
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Failed to read image"})
		return
	}
	defer opened.Close()

	url, publicID, err := cloud.UploadImage(c.Request.Context(), opened, file.Filename, "banners")
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Image upload failed", "error": err.Error()})
		return
	}

	banner := &models.Banner{
		Title:         title,
		Subtitle:      subtitle,
		ButtonText:    buttonText,
		ButtonLink:    buttonLink,
		ImageURL:      url,
		ImagePublicID: publicID,
		IsActive:      isActive,
	}

	if err := ctrl.banners.Create(c.Request.Context(), banner); err != nil {
		cloud.DeleteImage(context.Background(), publicID)
		c.JSON(500, gin.H{"success": false, "message": "Failed to create banner"})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Banner created successfully", "data": banner})
}

// @Summary Update banner
// @Description Update an existing banner (Admin)
// @Tags Admin - Banners
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Banner ID"
// @Param title formData string false "Banner title"
// @Param subtitle formData string false "Banner subtitle"
// @Param button_text formData string false "Button text"
// @Param button_link formData string false "Button link"
// @Param is_active formData bool false "Is active"
// @Param image formData file false "Replacement image"
// @Success 200 {object} models.Response
// @Router /admin/banners/{id} [patch]
func (ctrl *BannerController) UpdateBanner(c *gin.Context) {
	ctx := c.Request.Context()

	banner, err := ctrl.banners.GetByID(ctx, c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Banner not found"})
		return
	}

	banner.Title = strings.TrimSpace(c.DefaultPostForm("title", banner.Title))
	banner.Subtitle = strings.TrimSpace(c.DefaultPostForm("subtitle", banner.Subtitle))
	banner.ButtonText = strings.TrimSpace(c.DefaultPostForm("button_text", banner.ButtonText))
	banner.ButtonLink = strings.TrimSpace(c.DefaultPostForm("button_link", banner.ButtonLink))
	banner.IsActive, _ = strconv.ParseBool(c.DefaultPostForm("is_active", strconv.FormatBool(banner.IsActive)))

	if len(banner.Title) < 2 || len(banner.Subtitle) < 2 || len(banner.ButtonText) < 2 {
		c.JSON(400, gin.H{"success": false, "message": "Title, subtitle, and button text must be at least 2 characters"})
		return
	}
	if !validateBannerLink(banner.ButtonLink) {
		c.JSON(400, gin.H{"success": false, "message": "Button link must be a URL or start with /"})
		return
	}

	oldPublicID := ""
	if file, err := c.FormFile("image"); err == nil {
		cloud, err := libs.NewCloudinaryService()
		if err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Image storage not configured", "error": err.Error()})
			return
		}
		if err := cloud.ValidateImageFile(file); err != nil {
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
			return
		}
		opened, err := file.Open()
		if err != nil {
			c.JSON(400, gin.H{"success": false, "message": "Failed to read image"})
			return
		}
		url, publicID, err := cloud.UploadImage(ctx, opened, file.Filename, "banners")
		opened.Close()
		if err != nil {
			c.JSON(400, gin.H{"success": false, "message": "Image upload failed", "error": err.Error()})
			return
		}
		oldPublicID = banner.ImagePublicID
		banner.ImageURL = url
		banner.ImagePublicID = publicID
	}

	if err := ctrl.banners.Update(ctx, banner); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update banner"})
		return
	}

	if oldPublicID != "" {
		if cloud, err := libs.NewCloudinaryService(); err == nil {
			cloud.DeleteImage(context.Background(), oldPublicID)
		}
	}

	c.JSON(200, gin.H{"success": true, "message": "Banner updated successfully", "data": banner})
}

// @Summary Delete banner
// @Description Delete a banner (Admin)
// @Tags Admin - Banners
// @Security BearerAuth
// @Produce json
// @Param id path string true "Banner ID"
// @Success 200 {object} models.Response
// @Router /admin/banners/{id} [delete]
func (ctrl *BannerController) DeleteBanner(c *gin.Context) {
	ctx := c.Request.Context()

	banner, err := ctrl.banners.GetByID(ctx, c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Banner not found"})
		return
	}

	if err := ctrl.banners.Delete(ctx, banner.ID); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete banner"})
		return
	}

	if cloud, err := libs.NewCloudinaryService(); err == nil {
		cloud.DeleteImage(context.Background(), banner.ImagePublicID)
	}

	c.JSON(200, gin.H{"success": true, "message": "Banner deleted successfully"})
}

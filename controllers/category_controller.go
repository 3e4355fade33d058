package controllers

import (
	"strconv"
	"strings"

	"as-production-store/repositories"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	categories *repositories.CategoryRepository
}

func NewCategoryController() *CategoryController {
	return &CategoryController{categories: repositories.NewCategoryRepository()}
}

// @Summary Get all categories
// @Description Get list of all categories
// @Tags Categories
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *CategoryController) GetCategories(c *gin.Context) {
	categories, err := ctrl.categories.List(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get categories"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Categories retrieved",
		"data":    categories,
	})
}

// @Summary Create new category
// @Description Create a new category (Admin)
// @Tags Admin - Categories
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Category name"
// @Security BearerAuth
// @Success 201 {object} models.Response
// @Router /admin/categories [post]
func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))

	if name == "" {
		c.JSON(400, gin.H{"success": false, "message": "Name is required"})
		return
	}

	if len(name) < 2 {
		c.JSON(400, gin.H{"success": false, "message": "Category name must be at least 2 characters"})
		return
	}

	taken, err := ctrl.categories.NameTaken(c.Request.Context(), name, 0)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create category"})
		return
	}
	if taken {
		c.JSON(400, gin.H{"success": false, "message": "Category name already exists"})
		return
	}

	category, err := ctrl.categories.Create(c.Request.Context(), name)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create category"})
		return
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Category created successfully",
		"data":    category,
	})
}

// @Summary Update category
// @Description Update an existing category (Admin)
// @Tags Admin - Categories
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Category ID"
// @Param name formData string true "Category name"
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /admin/categories/{id} [patch]
func (ctrl *CategoryController) UpdateCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid category ID"})
		return
	}

	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		c.JSON(400, gin.H{"success": false, "message": "Name is required"})
		return
	}
	if len(name) < 2 {
		c.JSON(400, gin.H{"success": false, "message": "Category name must be at least 2 characters"})
		return
	}

	if _, err := ctrl.categories.GetByID(c.Request.Context(), id); err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Category not found"})
		return
	}

	taken, err := ctrl.categories.NameTaken(c.Request.Context(), name, id)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update category"})
		return
	}
	if taken {
		c.JSON(400, gin.H{"success": false, "message": "Category name already exists"})
		return
	}

	if err := ctrl.categories.Update(c.Request.Context(), id, name); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update category"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Category updated successfully",
	})
}

// @Summary Delete category
// @Description Delete a category that no product uses (Admin)
// @Tags Admin - Categories
// @Produce json
// @Param id path int true "Category ID"
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /admin/categories/{id} [delete]
func (ctrl *CategoryController) DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid category ID"})
		return
	}

	if _, err := ctrl.categories.GetByID(c.Request.Context(), id); err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Category not found"})
		return
	}

	inUse, err := ctrl.categories.InUse(c.Request.Context(), id)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete category"})
		return
	}
	if inUse {
		c.JSON(400, gin.H{"success": false, "message": "Category is still used by products"})
		return
	}

	if err := ctrl.categories.Delete(c.Request.Context(), id); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete category"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Category deleted successfully",
	})
}

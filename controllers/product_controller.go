package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"as-production-store/config"
	"as-production-store/libs"
	"as-production-store/models"
	"as-production-store/repositories"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	products   *repositories.ProductRepository
	categories *repositories.CategoryRepository
}

func NewProductController() *ProductController {
	return &ProductController{
		products:   repositories.NewProductRepository(),
		categories: repositories.NewCategoryRepository(),
	}
}

func getProductCacheKey(page, limit int) string {
	return fmt.Sprintf("products_list_p%d_l%d", page, limit)
}

func invalidateProductCache() {
	if config.RedisClient == nil {
		return
	}
	ctx := context.Background()
	iter := config.RedisClient.Scan(ctx, 0, "products_list_*", 0).Iterator()
	for iter.Next(ctx) {
		config.RedisClient.Del(ctx, iter.Val())
	}
}

// @Summary Get all products
// @Description Get paginated list of active products
// @Tags Products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.PaginationResponse
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 12
	}

	cacheKey := getProductCacheKey(page, limit)
	ctx := c.Request.Context()

	if config.RedisClient != nil {
		cached, err := config.RedisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			c.Data(200, "application/json", []byte(cached))
			return
		}
	}

	products, total, err := ctrl.products.List(ctx, page, limit)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get products"})
		return
	}

	response := gin.H{
		"success": true, "message": "Products retrieved", "data": products,
		"meta": gin.H{
			"page": page, "limit": limit, "total_items": total,
			"total_pages": int(math.Ceil(float64(total) / float64(limit))),
		},
	}

	if config.RedisClient != nil {
		jsonData, _ := json.Marshal(response)
		config.RedisClient.Set(ctx, cacheKey, string(jsonData), 5*time.Minute)
	}

	c.JSON(200, response)
}

// @Summary Filter products
// @Description Filter products by search, category, sort, and price range
// @Tags Products
// @Produce json
// @Param search query string false "Search by product name"
// @Param category query string false "Filter by category name"
// @Param sort_name query string false "Sort by name" Enums(asc, desc)
// @Param sort_price query string false "Sort by price" Enums(asc, desc)
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Success 200 {object} models.Response
// @Router /products/filter [get]
func (ctrl *ProductController) FilterProducts(c *gin.Context) {
	minPrice, _ := strconv.ParseFloat(c.Query("min_price"), 64)
	maxPrice, _ := strconv.ParseFloat(c.Query("max_price"), 64)

	opts := repositories.FilterOptions{
		Search:    strings.TrimSpace(c.Query("search")),
		Category:  strings.TrimSpace(c.Query("category")),
		MinPrice:  minPrice,
		MaxPrice:  maxPrice,
		SortName:  strings.TrimSpace(c.Query("sort_name")),
		SortPrice: strings.TrimSpace(c.Query("sort_price")),
	}

	products, err := ctrl.products.Filter(c.Request.Context(), opts)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to filter products"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Products filtered",
		"data":    products,
		"total":   len(products),
	})
}

// @Summary Get new arrivals
// @Description Get the newest active products (limited to 8)
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /products/new-arrivals [get]
func (ctrl *ProductController) GetNewArrivals(c *gin.Context) {
	products, err := ctrl.products.NewArrivals(c.Request.Context(), 8)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get new arrivals"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "New arrivals retrieved", "data": products})
}

// @Summary Get product by ID
// @Description Get product details
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	product, err := ctrl.products.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Product retrieved", "data": product})
}

// @Summary Create product
// @Description Create new product (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Product name"
// @Param description formData string false "Product description"
// @Param category_id formData int true "Category ID"
// @Param price formData number true "Product price"
// @Param show_price formData bool false "Show price to buyers"
// @Param images formData file true "Product images (1-5)"
// @Success 201 {object} models.Response
// @Router /admin/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	description := strings.TrimSpace(c.PostForm("description"))
	categoryIDStr := c.PostForm("category_id")
	priceStr := c.PostForm("price")
	showPrice, _ := strconv.ParseBool(c.DefaultPostForm("show_price", "true"))

	if name == "" || categoryIDStr == "" || priceStr == "" {
		c.JSON(400, gin.H{"success": false, "message": "Name, category_id, and price are required"})
		return
	}

	if len(name) < 2 {
		c.JSON(400, gin.H{"success": false, "message": "Product name must be at least 2 characters"})
		return
	}

	categoryID, err := strconv.Atoi(categoryIDStr)
	if err != nil || categoryID <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid category_id"})
		return
	}

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil || price < 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid price"})
		return
	}

	exists, err := ctrl.categories.Exists(c.Request.Context(), categoryID)
	if err != nil || !exists {
		c.JSON(400, gin.H{"success": false, "message": "Category not found"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid multipart form"})
		return
	}

	files := form.File["images"]
	if len(files) < 1 || len(files) > config.AppConfig.MaxImages {
		c.JSON(400, gin.H{"success": false, "message": fmt.Sprintf("You must upload between 1 and %d images", config.AppConfig.MaxImages)})
		return
	}

	cloud, err := libs.NewCloudinaryService()
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Image storage not configured", "error": err.Error()})
		return
	}

	urls, publicIDs, err := cloud.UploadMultipleImages(c.Request.Context(), files, "products")
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Image upload failed", "error": err.Error()})
		return
	}

	product := &models.Product{
		Name:           name,
		Description:    description,
		CategoryID:     categoryID,
		Price:          price,
		ImageURLs:      urls,
		ImagePublicIDs: publicIDs,
		ShowPrice:      showPrice,
		IsActive:       true,
	}

	if err := ctrl.products.Create(c.Request.Context(), product); err != nil {
		cloudCtx := context.Background()
		for _, id := range publicIDs {
			cloud.DeleteImage(cloudCtx, id)
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to create product", "error": err.Error()})
		return
	}

	invalidateProductCache()

	c.JSON(201, gin.H{"success": true, "message": "Product created successfully", "data": product})
}

// @Summary Update product
// @Description Update product; new images replace all existing ones (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Product ID"
// @Param name formData string false "Product name"
// @Param description formData string false "Product description"
// @Param category_id formData int false "Category ID"
// @Param price formData number false "Product price"
// @Param show_price formData bool false "Show price to buyers"
// @Param is_active formData bool false "Is active"
// @Param images formData file false "Replacement images (1-5)"
// @Success 200 {object} models.Response
// @Router /admin/products/{id} [patch]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	ctx := c.Request.Context()

	product, err := ctrl.products.GetByID(ctx, c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	name := strings.TrimSpace(c.DefaultPostForm("name", product.Name))
	description := strings.TrimSpace(c.DefaultPostForm("description", product.Description))
	categoryID, _ := strconv.Atoi(c.DefaultPostForm("category_id", strconv.Itoa(product.CategoryID)))
	price, err := strconv.ParseFloat(c.DefaultPostForm("price", strconv.FormatFloat(product.Price, 'f', -1, 64)), 64)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid price"})
		return
	}
	showPrice, _ := strconv.ParseBool(c.DefaultPostForm("show_price", strconv.FormatBool(product.ShowPrice)))
	isActive, _ := strconv.ParseBool(c.DefaultPostForm("is_active", strconv.FormatBool(product.IsActive)))

	if len(name) < 2 {
		c.JSON(400, gin.H{"success": false, "message": "Product name must be at least 2 characters"})
		return
	}
	if price < 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid price"})
		return
	}
	if categoryID != product.CategoryID {
		exists, err := ctrl.categories.Exists(ctx, categoryID)
		if err != nil || !exists {
			c.JSON(400, gin.H{"success": false, "message": "Category not found"})
			return
		}
	}

	oldPublicIDs := []string{}
	if form, err := c.MultipartForm(); err == nil {
		if files := form.File["images"]; len(files) > 0 {
			if len(files) > config.AppConfig.MaxImages {
				c.JSON(400, gin.H{"success": false, "message": fmt.Sprintf("You can upload a maximum of %d images", config.AppConfig.MaxImages)})
				return
			}

			cloud, err := libs.NewCloudinaryService()
			if err != nil {
				c.JSON(500, gin.H{"success": false, "message": "Image storage not configured", "error": err.Error()})
				return
			}

			urls, publicIDs, err := cloud.UploadMultipleImages(ctx, files, "products")
			if err != nil {
				c.JSON(400, gin.H{"success": false, "message": "Image upload failed", "error": err.Error()})
				return
			}

			oldPublicIDs = product.ImagePublicIDs
			product.ImageURLs = urls
			product.ImagePublicIDs = publicIDs
		}
	}

	product.Name = name
	product.Description = description
	product.CategoryID = categoryID
	product.Price = price
	product.ShowPrice = showPrice
	product.IsActive = isActive

	if err := ctrl.products.Update(ctx, product); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update product"})
		return
	}

	// Old assets are removed only after the row update succeeded.
	if len(oldPublicIDs) > 0 {
		if cloud, err := libs.NewCloudinaryService(); err == nil {
			cloudCtx := context.Background()
			for _, id := range oldPublicIDs {
				cloud.DeleteImage(cloudCtx, id)
			}
		}
	}

	invalidateProductCache()

	c.JSON(200, gin.H{"success": true, "message": "Product updated successfully", "data": product})
}

// @Summary Delete product
// @Description Delete product permanently (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Router /admin/products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	ctx := c.Request.Context()

	product, err := ctrl.products.GetByID(ctx, c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	if err := ctrl.products.Delete(ctx, product.ID); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete product"})
		return
	}

	// Best effort: a leftover asset is preferable to a failed delete.
	if cloud, err := libs.NewCloudinaryService(); err == nil {
		cloudCtx := context.Background()
		for _, id := range product.ImagePublicIDs {
			cloud.DeleteImage(cloudCtx, id)
		}
	}

	invalidateProductCache()

	c.JSON(200, gin.H{"success": true, "message": "Product deleted permanently"})
}

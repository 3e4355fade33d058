package routes

import (
	"as-production-store/cart"
	"as-production-store/controllers"
	"as-production-store/middleware"
	"as-production-store/repositories"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	authCtrl := controllers.NewAuthController()
	productCtrl := controllers.NewProductController()
	categoryCtrl := controllers.NewCategoryController()
	bannerCtrl := controllers.NewBannerController()
	settingsCtrl := controllers.NewSettingsController()
	cartCtrl := controllers.NewCartController(
		cart.NewStore(),
		repositories.NewProductRepository(),
		repositories.NewSettingsRepository(),
	)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/login", authCtrl.Login)
	router.POST("/auth/forgot-password", authCtrl.ForgotPassword)
	router.POST("/auth/reset-password", authCtrl.ResetPassword)

	router.GET("/products", productCtrl.GetAllProducts)
	router.GET("/products/filter", productCtrl.FilterProducts)
	router.GET("/products/new-arrivals", productCtrl.GetNewArrivals)
	router.GET("/products/:id", productCtrl.GetProductByID)
	router.GET("/categories", categoryCtrl.GetCategories)
	router.GET("/banners", bannerCtrl.GetActiveBanners)

	router.GET("/cart", cartCtrl.GetCart)
	router.DELETE("/cart", cartCtrl.ClearCart)
	router.POST("/cart/items", cartCtrl.AddItem)
	router.PATCH("/cart/items/:id", cartCtrl.UpdateItem)
	router.DELETE("/cart/items/:id", cartCtrl.RemoveItem)
	router.POST("/cart/enquiry", cartCtrl.ComposeEnquiry)

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("/products", productCtrl.CreateProduct)
		admin.PATCH("/products/:id", productCtrl.UpdateProduct)
		admin.DELETE("/products/:id", productCtrl.DeleteProduct)

		admin.POST("/categories", categoryCtrl.CreateCategory)
		admin.PATCH("/categories/:id", categoryCtrl.UpdateCategory)
		admin.DELETE("/categories/:id", categoryCtrl.DeleteCategory)

		admin.GET("/banners", bannerCtrl.GetAllBanners)
		admin.POST("/banners", bannerCtrl.CreateBanner)
		admin.PATCH("/banners/:id", bannerCtrl.UpdateBanner)
		admin.DELETE("/banners/:id", bannerCtrl.DeleteBanner)

		admin.GET("/settings/enquiry", settingsCtrl.GetEnquirySettings)
		admin.PUT("/settings/enquiry", settingsCtrl.UpdateEnquirySettings)
	}
}

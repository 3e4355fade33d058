package main

import (
	"context"
	"log"

	"as-production-store/config"
	_ "as-production-store/docs"
	"as-production-store/middleware"
	"as-production-store/repositories"
	"as-production-store/routes"

	"github.com/gin-gonic/gin"
)

// @title AS Production Store API
// @version 1.0
// @description Storefront and admin API for the AS Production catalog with WhatsApp enquiry checkout.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	config.ConnectDB()
	defer config.CloseDB()

	config.InitRedis()
	defer config.CloseRedis()

	repositories.NewUserRepository().SeedAdmin(context.Background())

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

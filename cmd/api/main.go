package main

import (
	"log"

	"github.com/devshare/devshare-go/config"
	"github.com/devshare/devshare-go/db"
	"github.com/devshare/devshare-go/internal/api/middleware"
	"github.com/devshare/devshare-go/internal/api/routes"
	"github.com/gin-gonic/gin"
)

// @title DevShare API
// @version 1.0
// @description Content-sharing platform for project write-ups.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection and run migrations
	db.Init()

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(router, db.DB)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}

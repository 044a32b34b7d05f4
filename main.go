package main

import (
	"log"
	"os"
	"time"

	"murshid-backend/cache"
	"murshid-backend/db"
	_ "murshid-backend/docs"
	"murshid-backend/handlers/posts"
	"murshid-backend/routes"
	"murshid-backend/utils"

	"github.com/gin-gonic/gin"
)

// @title Murshid API
// @version 1.0
// @description Academic guidance platform API
// @host localhost:8080
// @BasePath /
// @SecurityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter the JWT with the Bearer prefix: Bearer <JWT>
func main() {

	gin.SetMode(gin.ReleaseMode)

	db.InitDB()

	if err := utils.InitCloudinary(); err != nil {
		log.Printf("Warning: Cloudinary initialization failed: %v", err)
		log.Println("Image uploads will not work properly.")
	}

	tagCache := cache.NewTagTranslations(db.DB, 10*time.Minute)
	if err := tagCache.Refresh(); err != nil {
		log.Printf("Warning: tag translation cache preload failed: %v", err)
	}
	posts.UseTagCache(tagCache)

	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Error starting the server:", err)
	}
}

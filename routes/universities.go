package routes

import (
	"murshid-backend/handlers/universities"
	"murshid-backend/middleware"

	"github.com/gin-gonic/gin"
)

func UniversitiesRoutes(r *gin.Engine) {
	r.GET("/universities", universities.GetAllUniversities)
	r.GET("/universities/:id", universities.GetUniversityByID)

	adminRoutes := r.Group("/universities")
	adminRoutes.Use(middleware.JWTAuth())
	adminRoutes.Use(middleware.AdminAuth())
	{
		adminRoutes.POST("", universities.CreateUniversity)
		adminRoutes.PUT("/:id", universities.UpdateUniversity)
		adminRoutes.PUT("/:id/logo", universities.UploadUniversityLogo)
		adminRoutes.DELETE("/:id", universities.DeleteUniversity)
	}
}

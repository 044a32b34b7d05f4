package routes

import (
	"murshid-backend/handlers/majors"
	"murshid-backend/middleware"

	"github.com/gin-gonic/gin"
)

func MajorsRoutes(r *gin.Engine) {
	r.GET("/majors", majors.GetAllMajors)
	r.GET("/majors/:id", majors.GetMajorByID)

	adminRoutes := r.Group("/majors")
	adminRoutes.Use(middleware.JWTAuth())
	adminRoutes.Use(middleware.AdminAuth())
	{
		adminRoutes.POST("", majors.CreateMajor)
		adminRoutes.PUT("/:id", majors.UpdateMajor)
		adminRoutes.DELETE("/:id", majors.DeleteMajor)
	}
}

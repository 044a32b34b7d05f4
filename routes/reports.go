package routes

import (
	"murshid-backend/handlers/reports"
	"murshid-backend/middleware"

	"github.com/gin-gonic/gin"
)

func ReportsRoutes(r *gin.Engine) {
	reportsRoutes := r.Group("/reports")
	reportsRoutes.Use(middleware.JWTAuth())
	reportsRoutes.POST("", reports.SubmitReport)

	// Admin-only review routes
	adminRoutes := r.Group("/reports")
	adminRoutes.Use(middleware.JWTAuth())
	adminRoutes.Use(middleware.AdminAuth())
	{
		adminRoutes.GET("", reports.GetAllReports)
		adminRoutes.PUT("/:id/dismiss", reports.DismissReport)
		adminRoutes.PUT("/:id/action", reports.ActionReport)
	}
}

package routes

import (
	"murshid-backend/handlers/users"
	"murshid-backend/middleware"

	"github.com/gin-gonic/gin"
)

func UsersRoutes(r *gin.Engine) {
	// Public profile
	r.GET("/users/:id", users.GetUserByID)

	usersRoutes := r.Group("/users")
	usersRoutes.Use(middleware.JWTAuth())
	{
		usersRoutes.GET("/me", users.GetMyProfile)
		usersRoutes.PUT("/me", users.UpdateProfile)
	}

	adminRoutes := r.Group("/users")
	adminRoutes.Use(middleware.JWTAuth(), middleware.AdminAuth())
	{
		adminRoutes.GET("", users.GetAllUsers)
	}
}

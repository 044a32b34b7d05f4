package routes

import (
	"murshid-backend/handlers/bookmarks"
	"murshid-backend/middleware"

	"github.com/gin-gonic/gin"
)

func BookmarksRoutes(r *gin.Engine) {
	bookmarksRoutes := r.Group("/bookmarks")
	bookmarksRoutes.Use(middleware.JWTAuth())
	{
		bookmarksRoutes.POST("", bookmarks.ToggleBookmark)
		bookmarksRoutes.GET("", bookmarks.GetMyBookmarks)
	}
}

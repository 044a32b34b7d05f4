package routes

import (
	"murshid-backend/handlers/posts"
	"murshid-backend/handlers/posts/answers"
	"murshid-backend/handlers/posts/comments"
	"murshid-backend/handlers/posts/likes"
	"murshid-backend/middleware"

	"github.com/gin-gonic/gin"
)

func PostsRoutes(r *gin.Engine) {
	// Public routes
	r.GET("/posts", posts.GetAllPosts)
	r.GET("/posts/:id", posts.GetPostByID)
	r.GET("/posts/:id/answers", answers.GetAnswersByPostID)
	r.GET("/posts/answers/:id/comments", comments.GetCommentsByAnswerID)

	// Protected routes
	postsRoutes := r.Group("/posts")
	postsRoutes.Use(middleware.JWTAuth())
	{
		postsRoutes.POST("", posts.CreatePost)
		postsRoutes.PUT("/:id", posts.UpdatePost)
		postsRoutes.DELETE("/:id", posts.DeletePost)
		postsRoutes.GET("/:id/versions", posts.GetPostVersions)
		postsRoutes.POST("/:id/like", likes.TogglePostLike)

		postsRoutes.POST("/:id/answers", answers.CreateAnswer)
		postsRoutes.PUT("/answers/:id", answers.UpdateAnswer)
		postsRoutes.DELETE("/answers/:id", answers.DeleteAnswer)
		postsRoutes.PUT("/answers/:id/accept", answers.AcceptAnswer)
		postsRoutes.GET("/answers/:id/versions", answers.GetAnswerVersions)
		postsRoutes.POST("/answers/:id/like", likes.ToggleAnswerLike)

		postsRoutes.POST("/answers/:id/comments", comments.CreateComment)
		postsRoutes.DELETE("/comments/:id", comments.DeleteComment)
		postsRoutes.POST("/comments/:id/like", likes.ToggleCommentLike)
	}
}

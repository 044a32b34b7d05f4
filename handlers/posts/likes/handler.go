package likes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"murshid-backend/db"
	"murshid-backend/models"
)

// @Summary Toggle like on a post
// @Description Add or remove a like on a post
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Like added/removed successfully"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Post not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /posts/{id}/like [post]
func TogglePostLike(c *gin.Context) {
	toggle(c, models.PostContent)
}

// @Summary Toggle like on an answer
// @Description Add or remove a like on an answer
// @Tags answers
// @Produce json
// @Param id path string true "Answer ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Like added/removed successfully"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Answer not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /posts/answers/{id}/like [post]
func ToggleAnswerLike(c *gin.Context) {
	toggle(c, models.AnswerContent)
}

// @Summary Toggle like on a comment
// @Description Add or remove a like on a comment
// @Tags comments
// @Produce json
// @Param id path string true "Comment ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Like added/removed successfully"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Comment not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /posts/comments/{id}/like [post]
func ToggleCommentLike(c *gin.Context) {
	toggle(c, models.CommentContent)
}

func toggle(c *gin.Context, targetType models.ContentType) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	targetID := c.Param("id")

	if !targetExists(targetType, targetID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
		return
	}

	var like models.Like
	result := db.DB.Where("target_type = ? AND target_id = ? AND user_id = ?", targetType, targetID, userID).First(&like)

	if result.Error == nil {
		// The like exists, remove it.
		if err := db.DB.Delete(&like).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error removing like: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Like removed successfully"})
		return
	}

	like = models.Like{
		TargetType: targetType,
		TargetID:   targetID,
		UserID:     userID.(string),
	}

	if err := db.DB.Create(&like).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error adding like: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Like added successfully"})
}

// targetExists checks that the liked content is live.
func targetExists(targetType models.ContentType, targetID string) bool {
	var err error
	switch targetType {
	case models.PostContent:
		var post models.Post
		err = db.DB.First(&post, "id = ? AND is_deleted = ?", targetID, false).Error
	case models.AnswerContent:
		var answer models.Answer
		err = db.DB.First(&answer, "id = ? AND is_deleted = ?", targetID, false).Error
	case models.CommentContent:
		var comment models.Comment
		err = db.DB.First(&comment, "id = ? AND is_deleted = ?", targetID, false).Error
	default:
		return false
	}
	return err == nil
}

package comments

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"murshid-backend/db"
	"murshid-backend/models"
	"murshid-backend/moderation"
	"murshid-backend/utils"
)

func commentResponse(cm models.Comment) gin.H {
	likesCount, _ := moderation.LiveLikeCount(db.DB, models.CommentContent, cm.ID)

	return gin.H{
		"id":              cm.ID,
		"answerId":        cm.AnswerID,
		"parentCommentId": cm.ParentCommentID,
		"userId":          cm.UserID,
		"content":         cm.Content,
		"authorName":      cm.AuthorName,
		"authorRole":      cm.AuthorRole,
		"likesCount":      likesCount,
		"createdAt":       cm.CreatedAt,
	}
}

// @Summary Comment on an answer
// @Description Create a comment, optionally replying to a top-level comment
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Answer ID"
// @Param comment body models.CommentCreate true "Comment content"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Answer not found"
// @Failure 422 {object} map[string]interface{} "error: Content rejected by moderation"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /posts/answers/{id}/comments [post]
func CreateComment(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	answerID := c.Param("id")

	var answer models.Answer
	if err := db.DB.First(&answer, "id = ? AND is_deleted = ?", answerID, false).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Answer not found"})
		return
	}

	var input models.CommentCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	// Threading is one level deep: a reply must point at a top-level
	// comment under the same answer.
	if input.ParentCommentID != nil {
		var parent models.Comment
		if err := db.DB.First(&parent, "id = ? AND is_deleted = ?", *input.ParentCommentID, false).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Parent comment not found"})
			return
		}
		if parent.AnswerID != answerID {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parent comment belongs to another answer"})
			return
		}
		if parent.ParentCommentID != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot reply to a reply"})
			return
		}
	}

	screening := moderation.Screen(input.Content, input.Lang)
	if !screening.IsAllowed {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":    "Content rejected by moderation",
			"issues":   screening.Issues,
			"severity": screening.Severity,
		})
		return
	}

	var author models.User
	if err := db.DB.First(&author, "id = ?", userID).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error loading author in CreateComment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading author profile"})
		return
	}

	comment := models.Comment{
		AnswerID:        answerID,
		ParentCommentID: input.ParentCommentID,
		UserID:          userID.(string),
		Content:         input.Content,
		AuthorName:      author.Name,
		AuthorRole:      author.Role,
	}

	if err := db.DB.Create(&comment).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating comment in CreateComment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating comment: " + err.Error()})
		return
	}

	response := gin.H{"comment": commentResponse(comment)}
	if screening.Severity == moderation.SeverityMedium {
		response["warnings"] = screening.Issues
	}

	utils.LogSuccessWithUser(userID, "Comment successfully created in CreateComment")
	c.JSON(http.StatusCreated, response)
}

// @Summary Get the comments of an answer
// @Description List live comments of an answer, oldest first
// @Tags comments
// @Produce json
// @Param id path string true "Answer ID"
// @Success 200 {array} map[string]interface{}
// @Failure 404 {object} map[string]string "error: Answer not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /posts/answers/{id}/comments [get]
func GetCommentsByAnswerID(c *gin.Context) {
	answerID := c.Param("id")

	var answer models.Answer
	if err := db.DB.First(&answer, "id = ? AND is_deleted = ?", answerID, false).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Answer not found"})
		return
	}

	var comments []models.Comment
	if err := db.DB.Where("answer_id = ? AND is_deleted = ?", answerID, false).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		utils.LogError(err, "Error retrieving comments in GetCommentsByAnswerID")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving comments: " + err.Error()})
		return
	}

	responses := make([]gin.H, 0, len(comments))
	for _, comment := range comments {
		responses = append(responses, commentResponse(comment))
	}

	c.JSON(http.StatusOK, gin.H{"comments": responses})
}

// @Summary Delete a comment
// @Description Soft-delete a single comment; comments are leaves, nothing cascades
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Comment ID"
// @Param reason body models.DeleteRequest false "Deletion reason"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Comment deleted successfully"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 404 {object} map[string]string "error: Comment not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /posts/comments/{id} [delete]
func DeleteComment(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var comment models.Comment
	commentID := c.Param("id")

	if err := db.DB.First(&comment, "id = ?", commentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	role, _ := c.Get("role")
	if comment.UserID != userID.(string) && role != string(models.AdminRole) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to delete this comment"})
		return
	}

	var input models.DeleteRequest
	_ = c.ShouldBindJSON(&input)

	reason := input.Reason
	if reason == "" {
		if comment.UserID == userID.(string) {
			reason = "Deleted by author"
		} else {
			reason = "Deleted by admin"
		}
	}

	if err := moderation.DeleteComment(db.DB, commentID, userID.(string), reason); err != nil {
		if errors.Is(err, moderation.ErrContentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
			return
		}
		utils.LogErrorWithUser(userID, err, "Error deleting comment in DeleteComment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting comment: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "Comment successfully deleted in DeleteComment")
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}

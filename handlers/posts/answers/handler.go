package answers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"murshid-backend/db"
	"murshid-backend/models"
	"murshid-backend/moderation"
	"murshid-backend/utils"
	"murshid-backend/versions"
)

func answerResponse(a models.Answer) gin.H {
	commentsCount, _ := moderation.LiveCommentCount(db.DB, a.ID)
	likesCount, _ := moderation.LiveLikeCount(db.DB, models.AnswerContent, a.ID)

	return gin.H{
		"id":                a.ID,
		"postId":            a.PostID,
		"userId":            a.UserID,
		"content":           a.Content,
		"authorName":        a.AuthorName,
		"authorRole":        a.AuthorRole,
		"authorInstitution": a.AuthorInstitution,
		"authorMajor":       a.AuthorMajor,
		"authorLevel":       a.AuthorLevel,
		"isAccepted":        a.IsAccepted,
		"commentsCount":     commentsCount,
		"likesCount":        likesCount,
		"createdAt":         a.CreatedAt,
		"updatedAt":         a.UpdatedAt,
	}
}

// @Summary Answer a post
// @Description Create an answer; the author's profile is snapshotted at creation time
// @Tags answers
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param answer body models.AnswerCreate true "Answer content"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Post not found"
// @Failure 422 {object} map[string]interface{} "error: Content rejected by moderation"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /posts/{id}/answers [post]
func CreateAnswer(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	postID := c.Param("id")

	var post models.Post
	if err := db.DB.First(&post, "id = ? AND is_deleted = ?", postID, false).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var input models.AnswerCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
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

	// Snapshot the author profile as it is right now; answers never
	// live-join the users table.
	var author models.User
	if err := db.DB.First(&author, "id = ?", userID).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error loading author in CreateAnswer")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading author profile"})
		return
	}

	answer := models.Answer{
		PostID:            postID,
		UserID:            userID.(string),
		Content:           input.Content,
		AuthorName:        author.Name,
		AuthorRole:        author.Role,
		AuthorInstitution: author.Institution,
		AuthorMajor:       author.Major,
		AuthorLevel:       author.Level,
	}

	if err := db.DB.Create(&answer).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating answer in CreateAnswer")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating answer: " + err.Error()})
		return
	}

	response := gin.H{"answer": answerResponse(answer)}
	if screening.Severity == moderation.SeverityMedium {
		response["warnings"] = screening.Issues
	}

	utils.LogSuccessWithUser(userID, "Answer successfully created in CreateAnswer")
	c.JSON(http.StatusCreated, response)
}

// @Summary Get the answers of a post
// @Description List live answers, accepted answer first
// @Tags answers
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {array} map[string]interface{}
// @Failure 404 {object} map[string]string "error: Post not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /posts/{id}/answers [get]
func GetAnswersByPostID(c *gin.Context) {
	postID := c.Param("id")

	var post models.Post
	if err := db.DB.First(&post, "id = ? AND is_deleted = ?", postID, false).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var answers []models.Answer
	if err := db.DB.Where("post_id = ? AND is_deleted = ?", postID, false).
		Order("is_accepted DESC, created_at ASC").
		Find(&answers).Error; err != nil {
		utils.LogError(err, "Error retrieving answers in GetAnswersByPostID")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving answers: " + err.Error()})
		return
	}

	responses := make([]gin.H, 0, len(answers))
	for _, answer := range answers {
		responses = append(responses, answerResponse(answer))
	}

	c.JSON(http.StatusOK, responses)
}

// @Summary Update an answer
// @Description Update an answer's content; the previous state is archived as a new version
// @Tags answers
// @Accept json
// @Produce json
// @Param id path string true "Answer ID"
// @Param answer body models.AnswerUpdate true "New content"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 404 {object} map[string]string "error: Answer not found"
// @Failure 422 {object} map[string]interface{} "error: Content rejected by moderation"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /posts/answers/{id} [put]
func UpdateAnswer(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var answer models.Answer
	answerID := c.Param("id")

	if err := db.DB.First(&answer, "id = ? AND is_deleted = ?", answerID, false).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Answer not found"})
		return
	}

	role, _ := c.Get("role")
	if answer.UserID != userID.(string) && role != string(models.AdminRole) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to update this answer"})
		return
	}

	var input models.AnswerUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
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

	before := versions.AnswerSnapshot(&answer)
	answer.Content = input.Content

	if err := db.DB.Save(&answer).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error updating answer in UpdateAnswer")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating answer: " + err.Error()})
		return
	}

	if err := versions.Record(db.DB, models.AnswerContent, answer.ID, userID.(string), before, versions.AnswerSnapshot(&answer)); err != nil {
		utils.LogErrorWithUser(userID, err, "Error recording answer version in UpdateAnswer")
	}

	utils.LogSuccessWithUser(userID, "Answer successfully updated in UpdateAnswer")
	c.JSON(http.StatusOK, answerResponse(answer))
}

// @Summary Delete an answer
// @Description Soft-delete an answer and cascade to its comments
// @Tags answers
// @Accept json
// @Produce json
// @Param id path string true "Answer ID"
// @Param reason body models.DeleteRequest false "Deletion reason"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Answer deleted successfully"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 404 {object} map[string]string "error: Answer not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /posts/answers/{id} [delete]
func DeleteAnswer(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var answer models.Answer
	answerID := c.Param("id")

	if err := db.DB.First(&answer, "id = ?", answerID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Answer not found"})
		return
	}

	role, _ := c.Get("role")
	if answer.UserID != userID.(string) && role != string(models.AdminRole) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to delete this answer"})
		return
	}

	var input models.DeleteRequest
	_ = c.ShouldBindJSON(&input)

	reason := input.Reason
	if reason == "" {
		if answer.UserID == userID.(string) {
			reason = "Deleted by author"
		} else {
			reason = "Deleted by admin"
		}
	}

	if err := moderation.DeleteAnswer(db.DB, answerID, userID.(string), reason); err != nil {
		if errors.Is(err, moderation.ErrContentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Answer not found"})
			return
		}
		utils.LogErrorWithUser(userID, err, "Error cascading answer deletion in DeleteAnswer")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting answer: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "Answer successfully deleted in DeleteAnswer")
	c.JSON(http.StatusOK, gin.H{"message": "Answer deleted successfully"})
}

// @Summary Accept an answer
// @Description Mark an answer as accepted; any previously accepted sibling is unaccepted in the same transaction
// @Tags answers
// @Produce json
// @Param id path string true "Answer ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Answer accepted"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 404 {object} map[string]string "error: Answer not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /posts/answers/{id}/accept [put]
func AcceptAnswer(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var answer models.Answer
	answerID := c.Param("id")

	if err := db.DB.First(&answer, "id = ? AND is_deleted = ?", answerID, false).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Answer not found"})
		return
	}

	var post models.Post
	if err := db.DB.First(&post, "id = ? AND is_deleted = ?", answer.PostID, false).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	// Only the question's author decides which answer solved it.
	if post.UserID != userID.(string) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the post author can accept an answer"})
		return
	}

	// Unaccept siblings and accept the target atomically, so at most one
	// answer per post is ever accepted at any observation point.
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Answer{}).
			Where("post_id = ? AND id <> ? AND is_accepted = ?", answer.PostID, answerID, true).
			Update("is_accepted", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.Answer{}).
			Where("id = ?", answerID).
			Update("is_accepted", true).Error
	})
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error accepting answer in AcceptAnswer")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error accepting answer: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "Answer accepted in AcceptAnswer")
	c.JSON(http.StatusOK, gin.H{"message": "Answer accepted"})
}

// @Summary Get the edit history of an answer
// @Description List version records for an answer, newest first
// @Tags answers
// @Produce json
// @Param id path string true "Answer ID"
// @Security BearerAuth
// @Success 200 {array} models.ContentVersion
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 404 {object} map[string]string "error: Answer not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /posts/answers/{id}/versions [get]
func GetAnswerVersions(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var answer models.Answer
	answerID := c.Param("id")

	if err := db.DB.First(&answer, "id = ?", answerID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Answer not found"})
		return
	}

	role, _ := c.Get("role")
	if answer.UserID != userID.(string) && role != string(models.AdminRole) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to view this history"})
		return
	}

	history, err := versions.List(db.DB, models.AnswerContent, answerID)
	if err != nil {
		utils.LogError(err, "Error retrieving answer versions in GetAnswerVersions")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving versions: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, history)
}

package bookmarks

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"murshid-backend/db"
	"murshid-backend/models"
	"murshid-backend/utils"
)

// @Summary Toggle a bookmark
// @Description Add or remove a bookmark on a university, major or post
// @Tags bookmarks
// @Accept json
// @Produce json
// @Param bookmark body models.BookmarkToggle true "Bookmark target"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Bookmark added/removed successfully"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Target not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /bookmarks [post]
func ToggleBookmark(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var input models.BookmarkToggle
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if !models.ValidBookmarkTarget(input.TargetType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bookmark target type"})
		return
	}

	if !targetExists(input.TargetType, input.TargetID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Target not found"})
		return
	}

	var bookmark models.Bookmark
	result := db.DB.Where("user_id = ? AND target_type = ? AND target_id = ?",
		userID, input.TargetType, input.TargetID).First(&bookmark)

	if result.Error == nil {
		if err := db.DB.Delete(&bookmark).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error removing bookmark: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Bookmark removed successfully"})
		return
	}

	bookmark = models.Bookmark{
		UserID:     userID.(string),
		TargetType: input.TargetType,
		TargetID:   input.TargetID,
	}

	if err := db.DB.Create(&bookmark).Error; err != nil {
		// Two quick toggles can race past the lookup; the unique index
		// turns the second insert into a conflict, not a server fault.
		if strings.Contains(err.Error(), "duplicate key value") {
			c.JSON(http.StatusConflict, gin.H{"error": "Bookmark already exists"})
			return
		}
		utils.LogErrorWithUser(userID, err, "Error creating bookmark in ToggleBookmark")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error adding bookmark: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bookmark added successfully"})
}

// @Summary Get my bookmarks
// @Description List the caller's bookmarks, optionally filtered by target type
// @Tags bookmarks
// @Produce json
// @Param targetType query string false "Filter by target type"
// @Security BearerAuth
// @Success 200 {array} models.Bookmark
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /bookmarks [get]
func GetMyBookmarks(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	query := db.DB.Where("user_id = ?", userID).Order("created_at DESC")
	if targetType := c.Query("targetType"); targetType != "" {
		query = query.Where("target_type = ?", targetType)
	}

	var bookmarks []models.Bookmark
	if err := query.Find(&bookmarks).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error retrieving bookmarks in GetMyBookmarks")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving bookmarks: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, bookmarks)
}

func targetExists(targetType models.BookmarkTarget, targetID string) bool {
	var err error
	switch targetType {
	case models.UniversityBookmark:
		var university models.University
		err = db.DB.First(&university, "id = ?", targetID).Error
	case models.MajorBookmark:
		var major models.Major
		err = db.DB.First(&major, "id = ?", targetID).Error
	case models.PostBookmark:
		var post models.Post
		err = db.DB.First(&post, "id = ? AND is_deleted = ?", targetID, false).Error
	default:
		return false
	}
	return err == nil
}

package users

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"murshid-backend/db"
	"murshid-backend/models"
	"murshid-backend/utils"
)

func publicProfile(user models.User) gin.H {
	return gin.H{
		"id":          user.ID,
		"name":        user.Name,
		"role":        user.Role,
		"avatarUrl":   user.AvatarURL,
		"institution": user.Institution,
		"major":       user.Major,
		"level":       user.Level,
		"createdAt":   user.CreatedAt,
	}
}

// @Summary Get my profile
// @Description Retrieve the profile of the authenticated user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: User not found"
// @Router /users/me [get]
func GetMyProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// @Summary Update my profile
// @Description Update the profile of the authenticated user, with an optional avatar image
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Param name formData string false "Display name"
// @Param institution formData string false "Institution"
// @Param major formData string false "Major"
// @Param level formData string false "Study level"
// @Param avatar formData file false "Avatar image"
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: User not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /users/me [put]
func UpdateProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if name := c.PostForm("name"); name != "" {
		user.Name = name
	}
	if institution := c.PostForm("institution"); institution != "" {
		user.Institution = institution
	}
	if major := c.PostForm("major"); major != "" {
		user.Major = major
	}
	if level := c.PostForm("level"); level != "" {
		user.Level = level
	}

	oldAvatarURL := ""
	if file, err := c.FormFile("avatar"); err == nil {
		avatarURL, err := utils.UploadImage(file, "avatars", "avatar")
		if err != nil {
			utils.LogErrorWithUser(userID, err, "Error uploading avatar in UpdateProfile")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading avatar: " + err.Error()})
			return
		}
		oldAvatarURL = user.AvatarURL
		user.AvatarURL = avatarURL
	}

	if err := db.DB.Save(&user).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error updating profile in UpdateProfile")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating profile: " + err.Error()})
		return
	}

	if oldAvatarURL != "" {
		if err := utils.DeleteImage(oldAvatarURL); err != nil {
			utils.LogErrorWithUser(userID, err, "Error deleting old avatar in UpdateProfile")
		}
	}

	utils.LogSuccessWithUser(userID, "Profile successfully updated in UpdateProfile")
	c.JSON(http.StatusOK, user)
}

// @Summary Get a user by ID
// @Description Retrieve the public profile of a user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "error: User not found"
// @Router /users/{id} [get]
func GetUserByID(c *gin.Context) {
	var user models.User
	if err := db.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, publicProfile(user))
}

// @Summary Get all users (Admin only)
// @Description Retrieve all users, optionally filtered by role
// @Tags admin
// @Produce json
// @Param role query string false "Filter by role"
// @Security BearerAuth
// @Success 200 {array} models.User
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /users [get]
func GetAllUsers(c *gin.Context) {
	query := db.DB.Order("created_at DESC")
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		utils.LogError(err, "Error retrieving users in GetAllUsers")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving users: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, users)
}

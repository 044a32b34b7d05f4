package majors

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"murshid-backend/db"
	"murshid-backend/models"
	"murshid-backend/utils"
)

// @Summary Get all majors
// @Description Retrieve majors, optionally filtered by category or a name search
// @Tags majors
// @Produce json
// @Param category query string false "Filter by category"
// @Param search query string false "Search in names"
// @Success 200 {array} models.Major
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /majors [get]
func GetAllMajors(c *gin.Context) {
	query := db.DB.Order("name ASC")

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR name_en ILIKE ?", pattern, pattern)
	}

	var majors []models.Major
	if err := query.Find(&majors).Error; err != nil {
		utils.LogError(err, "Error retrieving majors in GetAllMajors")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, majors)
}

// @Summary Get a major by ID
// @Description Retrieve a single major
// @Tags majors
// @Produce json
// @Param id path string true "Major ID"
// @Success 200 {object} models.Major
// @Failure 404 {object} map[string]string "error: Major not found"
// @Router /majors/{id} [get]
func GetMajorByID(c *gin.Context) {
	var major models.Major
	if err := db.DB.First(&major, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Major not found"})
		return
	}

	c.JSON(http.StatusOK, major)
}

// @Summary Create a new major (Admin only)
// @Description Create a major with the provided information
// @Tags admin
// @Accept json
// @Produce json
// @Param major body models.MajorCreate true "Major information"
// @Security BearerAuth
// @Success 201 {object} models.Major
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /majors [post]
func CreateMajor(c *gin.Context) {
	var input models.MajorCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var existing models.Major
	if err := db.DB.First(&existing, "name = ?", input.Name).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Major already exists"})
		return
	}

	major := models.Major{
		Name:        input.Name,
		NameEn:      input.NameEn,
		Category:    input.Category,
		Description: input.Description,
	}

	if err := db.DB.Create(&major).Error; err != nil {
		utils.LogError(err, "Error creating major in CreateMajor")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating major: " + err.Error()})
		return
	}

	utils.LogSuccess("Major successfully created in CreateMajor")
	c.JSON(http.StatusCreated, major)
}

// @Summary Update a major (Admin only)
// @Description Update a major with the provided information
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Major ID"
// @Param major body models.MajorCreate true "Updated major information"
// @Security BearerAuth
// @Success 200 {object} models.Major
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Major not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /majors/{id} [put]
func UpdateMajor(c *gin.Context) {
	var major models.Major
	if err := db.DB.First(&major, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Major not found"})
		return
	}

	var input models.MajorCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	major.Name = input.Name
	major.NameEn = input.NameEn
	major.Category = input.Category
	major.Description = input.Description

	if err := db.DB.Save(&major).Error; err != nil {
		utils.LogError(err, "Error updating major in UpdateMajor")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating major: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, major)
}

// @Summary Delete a major (Admin only)
// @Description Delete a major by its ID
// @Tags admin
// @Produce json
// @Param id path string true "Major ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Major deleted successfully"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Major not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /majors/{id} [delete]
func DeleteMajor(c *gin.Context) {
	majorID := c.Param("id")

	var major models.Major
	if err := db.DB.First(&major, "id = ?", majorID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Major not found"})
		return
	}

	if err := db.DB.Exec("DELETE FROM bookmarks WHERE target_type = ? AND target_id = ?",
		models.MajorBookmark, majorID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error removing major bookmarks: " + err.Error()})
		return
	}

	if err := db.DB.Delete(&major).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting major: " + err.Error()})
		return
	}

	utils.LogSuccess("Major successfully deleted in DeleteMajor")
	c.JSON(http.StatusOK, gin.H{"message": "Major deleted successfully"})
}

package universities

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"murshid-backend/db"
	"murshid-backend/models"
	"murshid-backend/utils"
)

// @Summary Get all universities
// @Description Retrieve universities, optionally filtered by city, type or a name search
// @Tags universities
// @Produce json
// @Param city query string false "Filter by city"
// @Param type query string false "Filter by type"
// @Param search query string false "Search in names"
// @Success 200 {array} models.University
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /universities [get]
func GetAllUniversities(c *gin.Context) {
	query := db.DB.Order("name ASC")

	if city := c.Query("city"); city != "" {
		query = query.Where("city = ?", city)
	}
	if uniType := c.Query("type"); uniType != "" {
		query = query.Where("type = ?", uniType)
	}
	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR name_en ILIKE ?", pattern, pattern)
	}

	var universities []models.University
	if err := query.Find(&universities).Error; err != nil {
		utils.LogError(err, "Error retrieving universities in GetAllUniversities")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, universities)
}

// @Summary Get a university by ID
// @Description Retrieve a single university
// @Tags universities
// @Produce json
// @Param id path string true "University ID"
// @Success 200 {object} models.University
// @Failure 404 {object} map[string]string "error: University not found"
// @Router /universities/{id} [get]
func GetUniversityByID(c *gin.Context) {
	var university models.University
	if err := db.DB.First(&university, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "University not found"})
		return
	}

	c.JSON(http.StatusOK, university)
}

// @Summary Create a new university (Admin only)
// @Description Create a university with the provided information
// @Tags admin
// @Accept json
// @Produce json
// @Param university body models.UniversityCreate true "University information"
// @Security BearerAuth
// @Success 201 {object} models.University
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /universities [post]
func CreateUniversity(c *gin.Context) {
	var input models.UniversityCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var existing models.University
	if err := db.DB.First(&existing, "name = ?", input.Name).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "University already exists"})
		return
	}

	university := models.University{
		Name:        input.Name,
		NameEn:      input.NameEn,
		City:        input.City,
		Type:        input.Type,
		Website:     input.Website,
		Description: input.Description,
	}

	if err := db.DB.Create(&university).Error; err != nil {
		utils.LogError(err, "Error creating university in CreateUniversity")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating university: " + err.Error()})
		return
	}

	utils.LogSuccess("University successfully created in CreateUniversity")
	c.JSON(http.StatusCreated, university)
}

// @Summary Update a university (Admin only)
// @Description Update a university with the provided information
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "University ID"
// @Param university body models.UniversityCreate true "Updated university information"
// @Security BearerAuth
// @Success 200 {object} models.University
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: University not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /universities/{id} [put]
func UpdateUniversity(c *gin.Context) {
	var university models.University
	if err := db.DB.First(&university, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "University not found"})
		return
	}

	var input models.UniversityCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	university.Name = input.Name
	university.NameEn = input.NameEn
	university.City = input.City
	university.Type = input.Type
	university.Website = input.Website
	university.Description = input.Description

	if err := db.DB.Save(&university).Error; err != nil {
		utils.LogError(err, "Error updating university in UpdateUniversity")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating university: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, university)
}

// @Summary Upload a university logo (Admin only)
// @Description Upload the logo image of a university, replacing the previous one
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "University ID"
// @Param logo formData file true "Logo image"
// @Security BearerAuth
// @Success 200 {object} models.University
// @Failure 400 {object} map[string]string "error: Invalid file"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: University not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /universities/{id}/logo [put]
func UploadUniversityLogo(c *gin.Context) {
	var university models.University
	if err := db.DB.First(&university, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "University not found"})
		return
	}

	file, err := c.FormFile("logo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Logo file is required"})
		return
	}

	logoURL, err := utils.UploadImage(file, "universities", "logo")
	if err != nil {
		utils.LogError(err, "Error uploading logo in UploadUniversityLogo")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading logo: " + err.Error()})
		return
	}

	oldLogoURL := university.LogoURL
	university.LogoURL = logoURL
	if err := db.DB.Save(&university).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating university: " + err.Error()})
		return
	}

	if oldLogoURL != "" {
		if err := utils.DeleteImage(oldLogoURL); err != nil {
			utils.LogError(err, "Error deleting old logo in UploadUniversityLogo")
		}
	}

	c.JSON(http.StatusOK, university)
}

// @Summary Delete a university (Admin only)
// @Description Delete a university by its ID
// @Tags admin
// @Produce json
// @Param id path string true "University ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: University deleted successfully"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: University not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /universities/{id} [delete]
func DeleteUniversity(c *gin.Context) {
	universityID := c.Param("id")

	var university models.University
	if err := db.DB.First(&university, "id = ?", universityID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "University not found"})
		return
	}

	// Bookmarks pointing at the university go with it.
	if err := db.DB.Exec("DELETE FROM bookmarks WHERE target_type = ? AND target_id = ?",
		models.UniversityBookmark, universityID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error removing university bookmarks: " + err.Error()})
		return
	}

	if err := db.DB.Delete(&university).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting university: " + err.Error()})
		return
	}

	if university.LogoURL != "" {
		if err := utils.DeleteImage(university.LogoURL); err != nil {
			utils.LogError(err, "Error deleting logo in DeleteUniversity")
		}
	}

	utils.LogSuccess("University successfully deleted in DeleteUniversity")
	c.JSON(http.StatusOK, gin.H{"message": "University deleted successfully"})
}

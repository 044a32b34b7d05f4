package posts

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"murshid-backend/cache"
	"murshid-backend/db"
	"murshid-backend/models"
	"murshid-backend/moderation"
	"murshid-backend/utils"
	"murshid-backend/versions"
)

var tagCache *cache.TagTranslations

// UseTagCache injects the tag translation cache, constructed in main.
func UseTagCache(c *cache.TagTranslations) {
	tagCache = c
}

// postResponse builds the API shape of a post. Answer and like counts are
// derived from non-deleted children at read time, never read from stored
// counters.
func postResponse(p models.Post) gin.H {
	answersCount, _ := moderation.LiveAnswerCount(db.DB, p.ID)
	likesCount, _ := moderation.LiveLikeCount(db.DB, models.PostContent, p.ID)

	resp := gin.H{
		"id":            p.ID,
		"userId":        p.UserID,
		"title":         p.Title,
		"content":       p.Content,
		"authorRole":    p.AuthorRole,
		"tags":          []string(p.Tags),
		"majorIds":      []string(p.MajorIDs),
		"universityIds": []string(p.UniversityIDs),
		"isSolved":      p.IsSolved,
		"viewsCount":    p.ViewsCount,
		"answersCount":  answersCount,
		"likesCount":    likesCount,
		"createdAt":     p.CreatedAt,
		"updatedAt":     p.UpdatedAt,
	}

	if tagCache != nil {
		resp["majorNames"] = tagCache.MajorNames(p.MajorIDs)
		resp["universityNames"] = tagCache.UniversityNames(p.UniversityIDs)
	}

	return resp
}

// @Summary Create a new post
// @Description Create a question post, screened for prohibited content first
// @Tags posts
// @Accept json
// @Produce json
// @Param post body models.PostCreate true "Post information"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 422 {object} map[string]interface{} "error: Content rejected by moderation"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /posts [post]
func CreatePost(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var input models.PostCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	screening := moderation.Screen(input.Title+"\n"+input.Content, input.Lang)
	if !screening.IsAllowed {
		utils.LogErrorWithUser(userID, nil, "Post blocked by content screening in CreatePost")
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":    "Content rejected by moderation",
			"issues":   screening.Issues,
			"severity": screening.Severity,
		})
		return
	}

	role, _ := c.Get("role")
	authorRole, _ := role.(string)

	post := models.Post{
		UserID:        userID.(string),
		Title:         input.Title,
		Content:       input.Content,
		AuthorRole:    models.Role(authorRole),
		Tags:          input.Tags,
		MajorIDs:      input.MajorIDs,
		UniversityIDs: input.UniversityIDs,
	}

	if err := db.DB.Create(&post).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating post in CreatePost")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating post: " + err.Error()})
		return
	}

	response := gin.H{"post": postResponse(post)}
	if screening.Severity == moderation.SeverityMedium {
		response["warnings"] = screening.Issues
	}

	utils.LogSuccessWithUser(userID, "Post successfully created in CreatePost")
	c.JSON(http.StatusCreated, response)
}

// @Summary Get all posts
// @Description Retrieve live posts with optional filtering
// @Tags posts
// @Produce json
// @Param tag query string false "Filter by free-form tag"
// @Param major query string false "Filter by major tag id"
// @Param university query string false "Filter by university tag id"
// @Param solved query boolean false "Filter by solved state"
// @Success 200 {array} map[string]interface{}
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /posts [get]
func GetAllPosts(c *gin.Context) {
	var posts []models.Post
	query := db.DB.Where("is_deleted = ?", false).Order("created_at DESC")

	if tag := c.Query("tag"); tag != "" {
		query = query.Where("? = ANY(tags)", tag)
	}
	if major := c.Query("major"); major != "" {
		query = query.Where("? = ANY(major_ids)", major)
	}
	if university := c.Query("university"); university != "" {
		query = query.Where("? = ANY(university_ids)", university)
	}
	if solved := c.Query("solved"); solved != "" {
		query = query.Where("is_solved = ?", solved == "true")
	}

	if err := query.Find(&posts).Error; err != nil {
		utils.LogError(err, "Error retrieving posts in GetAllPosts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving posts: " + err.Error()})
		return
	}

	responses := make([]gin.H, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, postResponse(post))
	}

	c.JSON(http.StatusOK, responses)
}

// @Summary Get a post by ID
// @Description Retrieve a live post by its ID
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "error: Post not found"
// @Router /posts/{id} [get]
func GetPostByID(c *gin.Context) {
	var post models.Post
	postID := c.Param("id")

	if err := db.DB.First(&post, "id = ? AND is_deleted = ?", postID, false).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, postResponse(post))
}

// @Summary Update a post
// @Description Update a post; the previous state is archived as a new version
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param post body models.PostUpdate true "Fields to update"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 404 {object} map[string]string "error: Post not found"
// @Failure 422 {object} map[string]interface{} "error: Content rejected by moderation"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /posts/{id} [put]
func UpdatePost(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var post models.Post
	postID := c.Param("id")

	if err := db.DB.First(&post, "id = ? AND is_deleted = ?", postID, false).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	role, _ := c.Get("role")
	if post.UserID != userID.(string) && role != string(models.AdminRole) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to update this post"})
		return
	}

	var input models.PostUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if input.Title != "" || input.Content != "" {
		screening := moderation.Screen(input.Title+"\n"+input.Content, input.Lang)
		if !screening.IsAllowed {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":    "Content rejected by moderation",
				"issues":   screening.Issues,
				"severity": screening.Severity,
			})
			return
		}
	}

	before := versions.PostSnapshot(&post)

	if input.Title != "" {
		post.Title = input.Title
	}
	if input.Content != "" {
		post.Content = input.Content
	}
	if input.Tags != nil {
		post.Tags = input.Tags
	}
	if input.MajorIDs != nil {
		post.MajorIDs = input.MajorIDs
	}
	if input.UniversityIDs != nil {
		post.UniversityIDs = input.UniversityIDs
	}
	if input.IsSolved != nil {
		post.IsSolved = *input.IsSolved
	}

	if err := db.DB.Save(&post).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error updating post in UpdatePost")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating post: " + err.Error()})
		return
	}

	// Versioning is best-effort logging, never a reason to fail the edit.
	if err := versions.Record(db.DB, models.PostContent, post.ID, userID.(string), before, versions.PostSnapshot(&post)); err != nil {
		utils.LogErrorWithUser(userID, err, "Error recording post version in UpdatePost")
	}

	utils.LogSuccessWithUser(userID, "Post successfully updated in UpdatePost")
	c.JSON(http.StatusOK, postResponse(post))
}

// @Summary Delete a post
// @Description Soft-delete a post and cascade to its answers and comments
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param reason body models.DeleteRequest false "Deletion reason"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Post deleted successfully"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 404 {object} map[string]string "error: Post not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /posts/{id} [delete]
func DeletePost(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var post models.Post
	postID := c.Param("id")

	if err := db.DB.First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	role, _ := c.Get("role")
	if post.UserID != userID.(string) && role != string(models.AdminRole) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to delete this post"})
		return
	}

	var input models.DeleteRequest
	_ = c.ShouldBindJSON(&input)

	reason := input.Reason
	if reason == "" {
		if post.UserID == userID.(string) {
			reason = "Deleted by author"
		} else {
			reason = "Deleted by admin"
		}
	}

	if err := moderation.DeletePost(db.DB, postID, userID.(string), reason); err != nil {
		if errors.Is(err, moderation.ErrContentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		utils.LogErrorWithUser(userID, err, "Error cascading post deletion in DeletePost")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting post: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "Post successfully deleted in DeletePost")
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

// @Summary Get the edit history of a post
// @Description List version records for a post, newest first
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Security BearerAuth
// @Success 200 {array} models.ContentVersion
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 404 {object} map[string]string "error: Post not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /posts/{id}/versions [get]
func GetPostVersions(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var post models.Post
	postID := c.Param("id")

	if err := db.DB.First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	role, _ := c.Get("role")
	if post.UserID != userID.(string) && role != string(models.AdminRole) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to view this history"})
		return
	}

	history, err := versions.List(db.DB, models.PostContent, postID)
	if err != nil {
		utils.LogError(err, "Error retrieving post versions in GetPostVersions")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving versions: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, history)
}

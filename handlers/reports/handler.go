package reports

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"murshid-backend/db"
	"murshid-backend/models"
	"murshid-backend/moderation"
	"murshid-backend/utils"
)

// Deletion reason used when an admin actions a report without notes.
const defaultActionReason = "Content removed by admin due to report"

const previewLength = 120

// contentInfo is what a report needs to know about its target: who wrote
// it and a short preview for the admin listing.
type contentInfo struct {
	AuthorID string
	Title    string
	Excerpt  string
	Deleted  bool
}

func lookupContent(targetType models.ContentType, targetID string) (contentInfo, error) {
	switch targetType {
	case models.PostContent:
		var post models.Post
		if err := db.DB.First(&post, "id = ?", targetID).Error; err != nil {
			return contentInfo{}, err
		}
		return contentInfo{AuthorID: post.UserID, Title: post.Title, Excerpt: excerpt(post.Content), Deleted: post.IsDeleted}, nil
	case models.AnswerContent:
		var answer models.Answer
		if err := db.DB.First(&answer, "id = ?", targetID).Error; err != nil {
			return contentInfo{}, err
		}
		return contentInfo{AuthorID: answer.UserID, Excerpt: excerpt(answer.Content), Deleted: answer.IsDeleted}, nil
	case models.CommentContent:
		var comment models.Comment
		if err := db.DB.First(&comment, "id = ?", targetID).Error; err != nil {
			return contentInfo{}, err
		}
		return contentInfo{AuthorID: comment.UserID, Excerpt: excerpt(comment.Content), Deleted: comment.IsDeleted}, nil
	}
	return contentInfo{}, gorm.ErrRecordNotFound
}

func excerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= previewLength {
		return content
	}
	return string(runes[:previewLength]) + "…"
}

// @Summary Report a content item
// @Description Report a post, answer or comment for moderation review
// @Tags reports
// @Accept json
// @Produce json
// @Param report body models.ReportCreate true "Report details"
// @Security BearerAuth
// @Success 201 {object} models.Report
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Cannot report own content"
// @Failure 404 {object} map[string]string "error: Content not found"
// @Failure 409 {object} map[string]string "error: Already reported"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /reports [post]
func SubmitReport(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.LogError(nil, "User not found in token in SubmitReport")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var input models.ReportCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if !models.ValidContentType(input.TargetType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid target type"})
		return
	}
	if !models.ValidReportReason(input.Reason) {
		utils.LogError(nil, "Invalid report reason in SubmitReport")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report reason"})
		return
	}

	info, err := lookupContent(input.TargetType, input.TargetID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
		return
	}

	// Same rule the UI applies before offering the action.
	if info.AuthorID == userID.(string) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You cannot report your own content"})
		return
	}

	// One pending report per (reporter, target). A report that already
	// reached a terminal state does not block re-reporting.
	var existing models.Report
	err = db.DB.Where("reported_by = ? AND target_type = ? AND target_id = ? AND status = ?",
		userID, input.TargetType, input.TargetID, models.ReportPending).First(&existing).Error
	if err == nil {
		utils.LogErrorWithUser(userID, nil, "Duplicate report in SubmitReport")
		c.JSON(http.StatusConflict, gin.H{"error": "You have already reported this content"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.LogErrorWithUser(userID, err, "Error checking existing report in SubmitReport")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error checking existing report"})
		return
	}

	report := models.Report{
		ReportedBy:  userID.(string),
		TargetType:  input.TargetType,
		TargetID:    input.TargetID,
		Reason:      input.Reason,
		Description: input.Description,
		Status:      models.ReportPending,
	}

	if err := db.DB.Create(&report).Error; err != nil {
		// Two simultaneous submissions can both pass the check above;
		// the partial unique index is the backstop and its violation is
		// the same user error, not a server fault.
		if strings.Contains(err.Error(), "duplicate key value") {
			c.JSON(http.StatusConflict, gin.H{"error": "You have already reported this content"})
			return
		}
		utils.LogErrorWithUser(userID, err, "Error creating report in SubmitReport")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating report: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "Report successfully created in SubmitReport")
	c.JSON(http.StatusCreated, report)
}

// @Summary Get all reports (Admin only)
// @Description List reports with optional status and target type filters, newest first
// @Tags admin
// @Produce json
// @Param status query string false "Filter by status"
// @Param targetType query string false "Filter by target type"
// @Security BearerAuth
// @Success 200 {array} map[string]interface{}
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /reports [get]
func GetAllReports(c *gin.Context) {
	query := db.DB.Order("created_at DESC")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if targetType := c.Query("targetType"); targetType != "" {
		query = query.Where("target_type = ?", targetType)
	}

	var reports []models.Report
	if err := query.Find(&reports).Error; err != nil {
		utils.LogError(err, "Error retrieving reports in GetAllReports")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving reports: " + err.Error()})
		return
	}

	responses := make([]gin.H, 0, len(reports))
	for _, report := range reports {
		entry := gin.H{
			"report": report,
		}
		// Preview degrades to empty fields when the content is gone or
		// already deleted, it never fails the listing.
		info, err := lookupContent(report.TargetType, report.TargetID)
		if err == nil {
			entry["contentTitle"] = info.Title
			entry["contentExcerpt"] = info.Excerpt
			entry["contentAuthorId"] = info.AuthorID
			entry["contentDeleted"] = info.Deleted
		} else {
			entry["contentTitle"] = ""
			entry["contentExcerpt"] = ""
			entry["contentAuthorId"] = ""
			entry["contentDeleted"] = true
		}
		responses = append(responses, entry)
	}

	userID, exists := c.Get("user_id")
	if !exists {
		userID = "0"
	}
	utils.LogSuccessWithUser(userID, "Reports successfully retrieved in GetAllReports")
	c.JSON(http.StatusOK, responses)
}

// @Summary Dismiss a report (Admin only)
// @Description Close a pending report without touching the reported content
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Param resolution body models.ReportResolve false "Resolution notes"
// @Security BearerAuth
// @Success 200 {object} models.Report
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Report not found"
// @Failure 409 {object} map[string]string "error: Report already resolved"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /reports/{id}/dismiss [put]
func DismissReport(c *gin.Context) {
	resolveReport(c, false)
}

// @Summary Action a report (Admin only)
// @Description Cascade-delete the reported content, then close the report
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Param resolution body models.ReportResolve false "Resolution notes, used as the deletion reason"
// @Security BearerAuth
// @Success 200 {object} models.Report
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Report not found"
// @Failure 409 {object} map[string]string "error: Report already resolved"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /reports/{id}/action [put]
func ActionReport(c *gin.Context) {
	resolveReport(c, true)
}

func resolveReport(c *gin.Context, action bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var report models.Report
	reportID := c.Param("id")

	if err := db.DB.First(&report, "id = ?", reportID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}

	// pending is the only state resolution actions are valid in;
	// dismissed and actioned are terminal.
	if report.Status != models.ReportPending {
		c.JSON(http.StatusConflict, gin.H{"error": "Report already resolved"})
		return
	}

	var input models.ReportResolve
	_ = c.ShouldBindJSON(&input)

	newStatus := models.ReportDismissed
	if action {
		newStatus = models.ReportActioned

		reason := input.Notes
		if reason == "" {
			reason = defaultActionReason
		}

		// The cascade runs before the report flips to terminal: if it
		// fails the report stays pending and the action can be retried.
		var err error
		switch report.TargetType {
		case models.PostContent:
			err = moderation.DeletePost(db.DB, report.TargetID, userID.(string), reason)
		case models.AnswerContent:
			err = moderation.DeleteAnswer(db.DB, report.TargetID, userID.(string), reason)
		case models.CommentContent:
			err = moderation.DeleteComment(db.DB, report.TargetID, userID.(string), reason)
		}
		if err != nil && !errors.Is(err, moderation.ErrContentNotFound) {
			utils.LogErrorWithUser(userID, err, "Error cascading deletion in ActionReport")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting reported content: " + err.Error()})
			return
		}
	}

	updates := map[string]interface{}{
		"status":           newStatus,
		"resolution_notes": input.Notes,
		"resolved_by":      userID.(string),
	}
	if err := db.DB.Model(&report).Updates(updates).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error updating report in resolveReport")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating report: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "Report successfully resolved in resolveReport")
	c.JSON(http.StatusOK, report)
}

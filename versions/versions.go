package versions

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"murshid-backend/models"
)

// Record appends an edit-history entry for a content item. The new version
// number is the current maximum plus one (1 for the first edit). Callers
// treat a failure here as best-effort logging: the underlying content
// update must never be blocked or rolled back because of it.
func Record(db *gorm.DB, contentType models.ContentType, contentID, editorID string, before, after map[string]any) error {
	var maxVersion int
	err := db.Model(&models.ContentVersion{}).
		Where("content_type = ? AND content_id = ?", contentType, contentID).
		Select("COALESCE(MAX(version_number), 0)").
		Scan(&maxVersion).Error
	if err != nil {
		return fmt.Errorf("reading max version for %s %s: %w", contentType, contentID, err)
	}

	previousData, err := json.Marshal(before)
	if err != nil {
		return fmt.Errorf("marshaling previous snapshot: %w", err)
	}
	diffData, err := json.Marshal(Structural(before, after))
	if err != nil {
		return fmt.Errorf("marshaling diff: %w", err)
	}

	version := models.ContentVersion{
		ID:            uuid.New().String(),
		ContentType:   contentType,
		ContentID:     contentID,
		VersionNumber: maxVersion + 1,
		PreviousData:  string(previousData),
		Diff:          string(diffData),
		EditedBy:      editorID,
	}

	if err := db.Create(&version).Error; err != nil {
		return fmt.Errorf("saving version %d for %s %s: %w", version.VersionNumber, contentType, contentID, err)
	}
	return nil
}

// List returns the edit history of a content item, newest version first.
func List(db *gorm.DB, contentType models.ContentType, contentID string) ([]models.ContentVersion, error) {
	var history []models.ContentVersion
	err := db.Where("content_type = ? AND content_id = ?", contentType, contentID).
		Order("version_number DESC").
		Find(&history).Error
	return history, err
}

// PostSnapshot captures the versioned fields of a post.
func PostSnapshot(p *models.Post) map[string]any {
	return map[string]any{
		"title":          p.Title,
		"content":        p.Content,
		"tags":           []string(p.Tags),
		"major_ids":      []string(p.MajorIDs),
		"university_ids": []string(p.UniversityIDs),
		"is_solved":      p.IsSolved,
	}
}

// AnswerSnapshot captures the versioned fields of an answer.
func AnswerSnapshot(a *models.Answer) map[string]any {
	return map[string]any{
		"content": a.Content,
	}
}

package models

import (
	"time"
)

// ContentVersion stores one edit-history entry. VersionNumber is strictly
// increasing per (content_type, content_id), starting at 1. PreviousData is
// the full pre-edit snapshot and Diff the structural delta, so history can
// be reconstructed by folding diffs forward.
type ContentVersion struct {
	ID            string      `json:"id" gorm:"primaryKey;type:uuid"`
	ContentType   ContentType `json:"contentType" gorm:"column:content_type;index:idx_versions_content"`
	ContentID     string      `json:"contentId" gorm:"column:content_id;index:idx_versions_content"`
	VersionNumber int         `json:"versionNumber" gorm:"column:version_number"`
	PreviousData  string      `json:"previousData" gorm:"column:previous_data;type:jsonb"`
	Diff          string      `json:"diff" gorm:"type:jsonb"`
	EditedBy      string      `json:"editedBy" gorm:"column:edited_by"`
	CreatedAt     time.Time   `json:"createdAt"`
}

func (ContentVersion) TableName() string {
	return "content_versions"
}

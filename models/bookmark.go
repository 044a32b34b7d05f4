package models

import (
	"time"
)

type BookmarkTarget string

const (
	UniversityBookmark BookmarkTarget = "university"
	MajorBookmark      BookmarkTarget = "major"
	PostBookmark       BookmarkTarget = "post"
)

type Bookmark struct {
	ID         string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID     string         `json:"userId" gorm:"column:user_id;uniqueIndex:idx_bookmarks_user_target"`
	TargetType BookmarkTarget `json:"targetType" gorm:"column:target_type;uniqueIndex:idx_bookmarks_user_target"`
	TargetID   string         `json:"targetId" gorm:"column:target_id;uniqueIndex:idx_bookmarks_user_target"`
	CreatedAt  time.Time      `json:"createdAt"`
}

type BookmarkToggle struct {
	TargetType BookmarkTarget `json:"targetType" binding:"required"`
	TargetID   string         `json:"targetId" binding:"required"`
}

func ValidBookmarkTarget(t BookmarkTarget) bool {
	switch t {
	case UniversityBookmark, MajorBookmark, PostBookmark:
		return true
	}
	return false
}

func (Bookmark) TableName() string {
	return "bookmarks"
}

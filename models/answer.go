package models

import (
	"time"
)

// Answer carries a snapshot of its author's profile taken at creation time,
// not a live join against the users table.
type Answer struct {
	ID                string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	PostID            string     `json:"postId" gorm:"column:post_id;index"`
	UserID            string     `json:"userId" gorm:"column:user_id"`
	Content           string     `json:"content" binding:"required"`
	AuthorName        string     `json:"authorName" gorm:"column:author_name"`
	AuthorRole        Role       `json:"authorRole" gorm:"column:author_role"`
	AuthorInstitution string     `json:"authorInstitution" gorm:"column:author_institution"`
	AuthorMajor       string     `json:"authorMajor" gorm:"column:author_major"`
	AuthorLevel       string     `json:"authorLevel" gorm:"column:author_level"`
	IsAccepted        bool       `json:"isAccepted" gorm:"column:is_accepted"`
	IsDeleted         bool       `json:"isDeleted" gorm:"column:is_deleted;index"`
	DeletedAt         *time.Time `json:"deletedAt,omitempty"`
	DeletedBy         string     `json:"deletedBy,omitempty" gorm:"column:deleted_by"`
	DeletionReason    string     `json:"deletionReason,omitempty" gorm:"column:deletion_reason"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

type AnswerCreate struct {
	Content string `json:"content" binding:"required"`
	Lang    string `json:"lang"`
}

type AnswerUpdate struct {
	Content string `json:"content" binding:"required"`
	Lang    string `json:"lang"`
}

func (Answer) TableName() string {
	return "answers"
}

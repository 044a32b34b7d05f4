package models

import (
	"time"

	"github.com/lib/pq"
)

type Post struct {
	ID         string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID     string         `json:"userId" gorm:"column:user_id"`
	Title      string         `json:"title" binding:"required"`
	Content    string         `json:"content" binding:"required"`
	AuthorRole Role           `json:"authorRole" gorm:"column:author_role"`
	Tags       pq.StringArray `json:"tags" gorm:"type:text[]"`
	// Curated tag arrays referencing the majors and universities catalog.
	MajorIDs      pq.StringArray `json:"majorIds" gorm:"column:major_ids;type:text[]"`
	UniversityIDs pq.StringArray `json:"universityIds" gorm:"column:university_ids;type:text[]"`
	IsSolved      bool           `json:"isSolved" gorm:"column:is_solved"`
	// Views tracking is disabled, the column stays at zero.
	ViewsCount     int        `json:"viewsCount" gorm:"column:views_count"`
	IsDeleted      bool       `json:"isDeleted" gorm:"column:is_deleted;index"`
	DeletedAt      *time.Time `json:"deletedAt,omitempty"`
	DeletedBy      string     `json:"deletedBy,omitempty" gorm:"column:deleted_by"`
	DeletionReason string     `json:"deletionReason,omitempty" gorm:"column:deletion_reason"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

type PostCreate struct {
	Title         string   `json:"title" binding:"required"`
	Content       string   `json:"content" binding:"required"`
	Tags          []string `json:"tags"`
	MajorIDs      []string `json:"majorIds"`
	UniversityIDs []string `json:"universityIds"`
	Lang          string   `json:"lang"`
}

type PostUpdate struct {
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	Tags          []string `json:"tags"`
	MajorIDs      []string `json:"majorIds"`
	UniversityIDs []string `json:"universityIds"`
	IsSolved      *bool    `json:"isSolved"`
	Lang          string   `json:"lang"`
}

type DeleteRequest struct {
	Reason string `json:"reason"`
}

func (Post) TableName() string {
	return "posts"
}

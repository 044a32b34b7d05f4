package models

import (
	"time"
)

// Comment hangs off an answer. ParentCommentID allows one level of
// threading: a reply may point at a top-level comment, never at another
// reply.
type Comment struct {
	ID              string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	AnswerID        string     `json:"answerId" gorm:"column:answer_id;index"`
	ParentCommentID *string    `json:"parentCommentId,omitempty" gorm:"column:parent_comment_id"`
	UserID          string     `json:"userId" gorm:"column:user_id"`
	Content         string     `json:"content" binding:"required"`
	AuthorName      string     `json:"authorName" gorm:"column:author_name"`
	AuthorRole      Role       `json:"authorRole" gorm:"column:author_role"`
	IsDeleted       bool       `json:"isDeleted" gorm:"column:is_deleted;index"`
	DeletedAt       *time.Time `json:"deletedAt,omitempty"`
	DeletedBy       string     `json:"deletedBy,omitempty" gorm:"column:deleted_by"`
	DeletionReason  string     `json:"deletionReason,omitempty" gorm:"column:deletion_reason"`
	CreatedAt       time.Time  `json:"createdAt"`
}

type CommentCreate struct {
	Content         string  `json:"content" binding:"required"`
	ParentCommentID *string `json:"parentCommentId"`
	Lang            string  `json:"lang"`
}

func (Comment) TableName() string {
	return "comments"
}

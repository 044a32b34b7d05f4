package models

import (
	"time"
)

type Like struct {
	ID         string      `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID     string      `json:"userId" gorm:"column:user_id;uniqueIndex:idx_likes_user_target"`
	TargetType ContentType `json:"targetType" gorm:"column:target_type;uniqueIndex:idx_likes_user_target"`
	TargetID   string      `json:"targetId" gorm:"column:target_id;uniqueIndex:idx_likes_user_target"`
	CreatedAt  time.Time   `json:"createdAt"`
}

func (Like) TableName() string {
	return "likes"
}

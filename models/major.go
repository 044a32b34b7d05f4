package models

import (
	"time"
)

type Major struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name        string    `json:"name" binding:"required"`
	NameEn      string    `json:"nameEn" gorm:"column:name_en"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type MajorCreate struct {
	Name        string `json:"name" binding:"required"`
	NameEn      string `json:"nameEn"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

func (Major) TableName() string {
	return "majors"
}

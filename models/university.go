package models

import (
	"time"
)

type University struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name        string    `json:"name" binding:"required"`
	NameEn      string    `json:"nameEn" gorm:"column:name_en"`
	City        string    `json:"city"`
	Type        string    `json:"type"`
	Website     string    `json:"website"`
	LogoURL     string    `json:"logoUrl" gorm:"column:logo_url"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type UniversityCreate struct {
	Name        string `json:"name" binding:"required"`
	NameEn      string `json:"nameEn"`
	City        string `json:"city"`
	Type        string `json:"type"`
	Website     string `json:"website"`
	Description string `json:"description"`
}

func (University) TableName() string {
	return "universities"
}

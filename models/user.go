package models

import (
	"time"
)

type Role string

const (
	StudentRole    Role = "STUDENT"
	SpecialistRole Role = "SPECIALIST"
	AdminRole      Role = "ADMIN"
)

type User struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Email       string    `json:"email" gorm:"uniqueIndex" binding:"required,email"`
	Password    string    `json:"-"`
	Name        string    `json:"name"`
	Role        Role      `json:"role"`
	AvatarURL   string    `json:"avatarUrl" gorm:"column:avatar_url"`
	Institution string    `json:"institution"`
	Major       string    `json:"major"`
	Level       string    `json:"level"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type UserRegister struct {
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Role        string `json:"role"`
	Institution string `json:"institution"`
	Major       string `json:"major"`
	Level       string `json:"level"`
}

type UserLogin struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (User) TableName() string {
	return "users"
}

package models

import (
	"time"
)

type ReportReason string

const (
	ReasonSpam           ReportReason = "spam"
	ReasonHarassment     ReportReason = "harassment"
	ReasonInappropriate  ReportReason = "inappropriate"
	ReasonMisinformation ReportReason = "misinformation"
	ReasonOther          ReportReason = "other"
)

type ReportStatus string

const (
	ReportPending   ReportStatus = "pending"
	ReportDismissed ReportStatus = "dismissed"
	ReportActioned  ReportStatus = "actioned"
)

type Report struct {
	ID              string       `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ReportedBy      string       `json:"reportedBy" gorm:"column:reported_by;index"`
	TargetType      ContentType  `json:"targetType" gorm:"column:target_type"`
	TargetID        string       `json:"targetId" gorm:"column:target_id;index"`
	Reason          ReportReason `json:"reason"`
	Description     string       `json:"description"`
	Status          ReportStatus `json:"status" gorm:"index"`
	ResolutionNotes string       `json:"resolutionNotes" gorm:"column:resolution_notes"`
	ResolvedBy      string       `json:"resolvedBy" gorm:"column:resolved_by"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

type ReportCreate struct {
	TargetType ContentType  `json:"targetType" binding:"required"`
	TargetID   string       `json:"targetId" binding:"required"`
	Reason     ReportReason `json:"reason" binding:"required"`
	Description string      `json:"description"`
}

type ReportResolve struct {
	Notes string `json:"notes"`
}

func ValidReportReason(r ReportReason) bool {
	switch r {
	case ReasonSpam, ReasonHarassment, ReasonInappropriate, ReasonMisinformation, ReasonOther:
		return true
	}
	return false
}

func (Report) TableName() string {
	return "reports"
}

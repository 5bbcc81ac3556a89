package entity

import (
	"time"

	applicationEntity "JobTracker/internal/modules/application/domain/entity"

	"gorm.io/datatypes"
)

// Level 提醒升级等级，不落库，每次扫描根据 reminderSentAt 推导
type Level int

const (
	LevelNone    Level = 0
	LevelFirst   Level = 1
	LevelSecond  Level = 2
	LevelGhosted Level = 3
)

// Row 扫描查询的一行：投递字段加上所属用户的提醒设置
type Row struct {
	ApplicationID       string                      `gorm:"column:application_id"`
	UserID              string                      `gorm:"column:user_id"`
	CompanyName         string                      `gorm:"column:company_name"`
	PositionTitle       string                      `gorm:"column:position_title"`
	Status              applicationEntity.Status    `gorm:"column:status"`
	Priority            applicationEntity.Priority  `gorm:"column:priority"`
	Tags                datatypes.JSONSlice[string] `gorm:"column:tags"`
	Archived            bool                        `gorm:"column:archived"`
	AutoReminderEnabled bool                        `gorm:"column:auto_reminder_enabled"`
	LastActivityAt      time.Time                   `gorm:"column:last_activity_at"`
	ReminderSentAt      *time.Time                  `gorm:"column:reminder_sent_at"`
	ReminderEnabled     bool                        `gorm:"column:reminder_enabled"`
	ReminderDays        int                         `gorm:"column:reminder_days"`
}

// Candidate 本次扫描需要提醒的投递
type Candidate struct {
	ApplicationID string `json:"applicationId"`
	UserID        string `json:"userId"`
	CompanyName   string `json:"companyName"`
	PositionTitle string `json:"positionTitle"`
	DaysInactive  int    `json:"daysInactive"`
	Level         Level  `json:"reminderLevel"`
}

package repository

import (
	"context"
	"time"
)

// GroupCount 分组计数
type GroupCount struct {
	Key   string `gorm:"column:group_key"`
	Count int    `gorm:"column:cnt"`
}

// RecentApplication 仪表盘最近投递
type RecentApplication struct {
	ID            string    `gorm:"column:id" json:"id"`
	CompanyName   string    `gorm:"column:company_name" json:"companyName"`
	PositionTitle string    `gorm:"column:position_title" json:"positionTitle"`
	Status        string    `gorm:"column:status" json:"status"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"createdAt"`
}

// AnalyticsRepository 只统计未归档的投递，面试数除外
type AnalyticsRepository interface {
	CountActive(ctx context.Context, userID string) (int, error)
	// CountBy column 只接受 status / platform / job_type
	CountBy(ctx context.Context, userID, column string) ([]GroupCount, error)
	AppliedDates(ctx context.Context, userID string) ([]time.Time, error)
	CountInterviews(ctx context.Context, userID string) (int, error)
	CountNeedsFollowUp(ctx context.Context, userID string, inactiveBefore time.Time) (int, error)
	Recent(ctx context.Context, userID string, limit int) ([]RecentApplication, error)
}

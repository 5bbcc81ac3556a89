package persistence

import (
	"context"
	"fmt"
	"time"

	"JobTracker/internal/modules/analytics/domain/repository"
	applicationEntity "JobTracker/internal/modules/application/domain/entity"

	"gorm.io/gorm"
)

var groupColumns = map[string]bool{"status": true, "platform": true, "job_type": true}

type analyticsRepositoryImpl struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) repository.AnalyticsRepository {
	return &analyticsRepositoryImpl{db: db}
}

func (r *analyticsRepositoryImpl) active(ctx context.Context, userID string) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&applicationEntity.Application{}).
		Where("user_id = ? AND archived = ?", userID, false)
}

func (r *analyticsRepositoryImpl) CountActive(ctx context.Context, userID string) (int, error) {
	var n int64
	err := r.active(ctx, userID).Count(&n).Error
	return int(n), err
}

func (r *analyticsRepositoryImpl) CountBy(ctx context.Context, userID, column string) ([]repository.GroupCount, error) {
	if !groupColumns[column] {
		return nil, fmt.Errorf("unsupported group column %q", column)
	}
	var out []repository.GroupCount
	err := r.active(ctx, userID).
		Select(column + " AS group_key, COUNT(*) AS cnt").
		Group(column).
		Order("cnt DESC").
		Scan(&out).Error
	return out, err
}

func (r *analyticsRepositoryImpl) AppliedDates(ctx context.Context, userID string) ([]time.Time, error) {
	var dates []time.Time
	err := r.active(ctx, userID).Pluck("applied_date", &dates).Error
	return dates, err
}

func (r *analyticsRepositoryImpl) CountInterviews(ctx context.Context, userID string) (int, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&applicationEntity.Interview{}).
		Joins("JOIN applications ON applications.id = interviews.application_id").
		Where("applications.user_id = ?", userID).
		Count(&n).Error
	return int(n), err
}

func (r *analyticsRepositoryImpl) CountNeedsFollowUp(ctx context.Context, userID string, inactiveBefore time.Time) (int, error) {
	var n int64
	err := r.active(ctx, userID).
		Where("status IN ?", applicationEntity.AwaitingResponse).
		Where("last_activity_at < ?", inactiveBefore).
		Count(&n).Error
	return int(n), err
}

func (r *analyticsRepositoryImpl) Recent(ctx context.Context, userID string, limit int) ([]repository.RecentApplication, error) {
	var out []repository.RecentApplication
	err := r.active(ctx, userID).
		Select("id, company_name, position_title, status, created_at").
		Order("created_at DESC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}

package repository

import (
	"context"
	"time"

	notificationRepository "JobTracker/internal/modules/notification/domain/repository"
	"JobTracker/internal/modules/reminder/domain/entity"
)

type ReminderRepository interface {
	// FindReminderCandidates 一次查询取出所有可能需要提醒的投递及其用户设置
	FindReminderCandidates(ctx context.Context) ([]*entity.Row, error)
}

// ReminderMarker 推进投递的提醒状态
type ReminderMarker interface {
	MarkReminded(ctx context.Context, applicationID string, at time.Time) error
}

// ReminderUnitOfWork 单个候选的通知和 reminderSentAt 在同一事务提交
type ReminderUnitOfWork interface {
	Transaction(ctx context.Context, fn func(notifications notificationRepository.NotificationRepository, marker ReminderMarker) error) error
}

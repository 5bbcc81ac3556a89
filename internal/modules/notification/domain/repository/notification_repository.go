package repository

import (
	"JobTracker/internal/modules/notification/domain/entity"
	"context"
)

// NotificationRepository 通知仓储接口
type NotificationRepository interface {
	// CreateNotification 创建通知，ID 和 CreatedAt 为空时由仓储补齐
	CreateNotification(ctx context.Context, n *entity.Notification) error

	// ListByUser 按创建时间倒序返回用户最近的通知
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Notification, error)

	// MarkRead 标记单条已读（仅限所属用户）
	MarkRead(ctx context.Context, id string, userID string) error

	// MarkAllRead 标记用户全部未读为已读
	MarkAllRead(ctx context.Context, userID string) error

	CountUnread(ctx context.Context, userID string) (int64, error)
}

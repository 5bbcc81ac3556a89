package service

import (
	"context"

	"JobTracker/internal/modules/notification/application/dto/respond"
	"JobTracker/internal/modules/notification/domain/entity"
	"JobTracker/internal/modules/notification/domain/repository"
	"JobTracker/pkg/xerr"
	"JobTracker/pkg/zlog"

	"go.uber.org/zap"
)

const listLimit = 50

type NotificationService interface {
	List(ctx context.Context, userID string) ([]*entity.Notification, error)
	UnreadCount(ctx context.Context, userID string) (*respond.UnreadCountRespond, error)
	MarkRead(ctx context.Context, userID, id string) error
	MarkAllRead(ctx context.Context, userID string) error
}

type notificationServiceImpl struct {
	repo repository.NotificationRepository
}

func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationServiceImpl{repo: repo}
}

func (s *notificationServiceImpl) List(ctx context.Context, userID string) ([]*entity.Notification, error) {
	list, err := s.repo.ListByUser(ctx, userID, listLimit)
	if err != nil {
		zlog.Error("list notifications failed", zap.Error(err), zap.String("user_id", userID))
		return nil, xerr.ErrServerError
	}
	if list == nil {
		list = []*entity.Notification{}
	}
	return list, nil
}

func (s *notificationServiceImpl) UnreadCount(ctx context.Context, userID string) (*respond.UnreadCountRespond, error) {
	n, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		zlog.Error("count unread failed", zap.Error(err), zap.String("user_id", userID))
		return nil, xerr.ErrServerError
	}
	return &respond.UnreadCountRespond{Count: n}, nil
}

func (s *notificationServiceImpl) MarkRead(ctx context.Context, userID, id string) error {
	if id == "" {
		return xerr.ErrParam
	}
	if err := s.repo.MarkRead(ctx, id, userID); err != nil {
		zlog.Error("mark read failed", zap.Error(err), zap.String("notification_id", id))
		return xerr.ErrServerError
	}
	return nil
}

func (s *notificationServiceImpl) MarkAllRead(ctx context.Context, userID string) error {
	if err := s.repo.MarkAllRead(ctx, userID); err != nil {
		zlog.Error("mark all read failed", zap.Error(err), zap.String("user_id", userID))
		return xerr.ErrServerError
	}
	return nil
}

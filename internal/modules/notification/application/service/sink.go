package service

import (
	"context"

	"JobTracker/internal/modules/notification/domain/entity"
	"JobTracker/internal/modules/notification/infrastructure/mq"
	"JobTracker/pkg/zlog"

	"go.uber.org/zap"
)

// Sink 通知落库之后的投递出口。投递失败只记日志，不影响已提交的通知
type Sink interface {
	Deliver(ctx context.Context, notifications ...*entity.Notification)
}

// Pusher 在线推送（websocket hub 实现）
type Pusher interface {
	SendJSON(userID string, v interface{}) (bool, error)
}

type fanoutSink struct {
	pusher    Pusher
	publisher mq.Publisher
}

// NewSink pusher 和 publisher 均可为 nil
func NewSink(pusher Pusher, publisher mq.Publisher) Sink {
	return &fanoutSink{pusher: pusher, publisher: publisher}
}

type pushEvent struct {
	Type         string               `json:"type"`
	Notification *entity.Notification `json:"notification"`
}

func (s *fanoutSink) Deliver(ctx context.Context, notifications ...*entity.Notification) {
	for _, n := range notifications {
		if n == nil {
			continue
		}
		if s.pusher != nil {
			if _, err := s.pusher.SendJSON(n.UserID, pushEvent{Type: "notification", Notification: n}); err != nil {
				zlog.Warn("notification push failed", zap.Error(err), zap.String("notification_id", n.ID))
			}
		}
		if s.publisher != nil {
			s.publish(ctx, n)
		}
	}
}

func (s *fanoutSink) publish(ctx context.Context, n *entity.Notification) {
	if _, err := s.publisher.Publish(ctx, n); err != nil {
		zlog.Warn("notification publish failed",
			zap.Error(err),
			zap.String("notification_id", n.ID),
			zap.String("user_id", n.UserID))
	}
}

type discardSink struct{}

// Discard 不投递，测试和未配置推送时使用
func Discard() Sink { return discardSink{} }

func (discardSink) Deliver(context.Context, ...*entity.Notification) {}

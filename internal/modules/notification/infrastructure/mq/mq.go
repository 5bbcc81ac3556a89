package mq

import (
	"context"

	"JobTracker/internal/modules/notification/domain/entity"
)

type PublishResult struct {
	Partition int32
	Offset    int64
}

// Publisher 把已落库的通知写到消息队列，供邮件/短信等下游消费
type Publisher interface {
	Publish(ctx context.Context, n *entity.Notification) (PublishResult, error)
	Close() error
}

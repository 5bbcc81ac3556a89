package initial

import (
	"JobTracker/internal/config"
	"JobTracker/internal/modules/notification/infrastructure/mq"
	"JobTracker/internal/modules/notification/infrastructure/mq/kafka"
	"JobTracker/pkg/zlog"

	"go.uber.org/zap"
)

// InitKafka 未配置 broker 时返回 nil，通知只走 websocket
func InitKafka(conf config.KafkaConfig) mq.Publisher {
	if len(conf.Brokers) == 0 {
		zlog.Info("Kafka 未配置，跳过初始化")
		return nil
	}
	p, err := kafka.NewNotificationPublisher(kafka.PublisherConfig{
		Brokers:  conf.Brokers,
		ClientID: conf.ClientID,
		Topic:    conf.NotificationTopic,
	})
	if err != nil {
		zlog.Error("Kafka 连接失败", zap.Error(err), zap.Strings("brokers", conf.Brokers))
		return nil
	}
	zlog.Info("Kafka 连接成功", zap.String("topic", conf.NotificationTopic))
	return p
}

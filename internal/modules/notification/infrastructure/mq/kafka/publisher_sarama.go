package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"JobTracker/internal/modules/notification/domain/entity"
	"JobTracker/internal/modules/notification/infrastructure/mq"

	"github.com/IBM/sarama"
)

const (
	headerType           = "type"
	headerNotificationID = "notification_id"
)

type PublisherConfig struct {
	Brokers  []string
	ClientID string
	Topic    string
}

// notificationPublisher 消息 key 为用户 id，同一用户的通知落在同一分区，消费端按用户有序
type notificationPublisher struct {
	p     sarama.SyncProducer
	topic string
}

func NewNotificationPublisher(cfg PublisherConfig) (mq.Publisher, error) {
	brokers := make([]string, 0, len(cfg.Brokers))
	for _, b := range cfg.Brokers {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	if len(brokers) == 0 {
		return nil, errors.New("kafka brokers is empty")
	}
	topic := strings.TrimSpace(cfg.Topic)
	if topic == "" {
		return nil, errors.New("kafka notification topic is empty")
	}

	p, err := sarama.NewSyncProducer(brokers, producerConfig(cfg.ClientID))
	if err != nil {
		return nil, err
	}
	return &notificationPublisher{p: p, topic: topic}, nil
}

func producerConfig(clientID string) *sarama.Config {
	sc := sarama.NewConfig()
	sc.Version = sarama.V2_8_0_0
	sc.ClientID = strings.TrimSpace(clientID)
	sc.Producer.Return.Successes = true
	sc.Producer.RequiredAcks = sarama.WaitForAll
	sc.Producer.Retry.Max = 5
	sc.Producer.Retry.Backoff = 100 * time.Millisecond
	// 幂等写要求单连接单飞行请求
	sc.Producer.Idempotent = true
	sc.Net.MaxOpenRequests = 1
	sc.Producer.Partitioner = sarama.NewHashPartitioner
	return sc
}

func (s *notificationPublisher) message(n *entity.Notification) (*sarama.ProducerMessage, error) {
	if n == nil || n.UserID == "" {
		return nil, errors.New("notification without user")
	}
	b, err := json.Marshal(n)
	if err != nil {
		return nil, err
	}
	return &sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(n.UserID),
		Value: sarama.ByteEncoder(b),
		Headers: []sarama.RecordHeader{
			{Key: []byte(headerType), Value: []byte(n.Type)},
			{Key: []byte(headerNotificationID), Value: []byte(n.ID)},
		},
	}, nil
}

func (s *notificationPublisher) Publish(ctx context.Context, n *entity.Notification) (mq.PublishResult, error) {
	if err := ctx.Err(); err != nil {
		return mq.PublishResult{}, err
	}
	m, err := s.message(n)
	if err != nil {
		return mq.PublishResult{}, err
	}
	partition, offset, err := s.p.SendMessage(m)
	if err != nil {
		return mq.PublishResult{}, err
	}
	return mq.PublishResult{Partition: partition, Offset: offset}, nil
}

func (s *notificationPublisher) Close() error {
	if s == nil || s.p == nil {
		return nil
	}
	return s.p.Close()
}

package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"JobTracker/internal/modules/notification/domain/entity"

	"github.com/IBM/sarama/mocks"
)

func TestNewNotificationPublisherValidatesConfig(t *testing.T) {
	if _, err := NewNotificationPublisher(PublisherConfig{Brokers: []string{" ", ""}, Topic: "t"}); err == nil {
		t.Error("expected error for empty broker list")
	}
	if _, err := NewNotificationPublisher(PublisherConfig{Brokers: []string{"127.0.0.1:9092"}, Topic: " "}); err == nil {
		t.Error("expected error for empty topic")
	}
}

func TestMessageKeyedByUserWithHeaders(t *testing.T) {
	p := &notificationPublisher{topic: "jobtracker.notifications"}
	m, err := p.message(&entity.Notification{ID: "n1", UserID: "u1", Type: entity.TypeFollowUp, Title: "Follow up"})
	if err != nil {
		t.Fatalf("message: %v", err)
	}
	if m.Topic != "jobtracker.notifications" {
		t.Errorf("unexpected topic %s", m.Topic)
	}
	if key, _ := m.Key.Encode(); string(key) != "u1" {
		t.Errorf("expected user id as key, got %s", key)
	}
	headers := map[string]string{}
	for _, h := range m.Headers {
		headers[string(h.Key)] = string(h.Value)
	}
	if headers["type"] != "FOLLOW_UP" || headers["notification_id"] != "n1" {
		t.Errorf("unexpected headers %v", headers)
	}

	if _, err := p.message(&entity.Notification{ID: "n2"}); err == nil {
		t.Error("expected error for notification without user")
	}
}

func TestPublishSendsNotificationJSON(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var n entity.Notification
		if err := json.Unmarshal(val, &n); err != nil {
			return err
		}
		if n.ID != "n1" || n.UserID != "u1" {
			return errors.New("unexpected notification payload")
		}
		return nil
	})
	p := &notificationPublisher{p: producer, topic: "jobtracker.notifications"}
	defer p.Close()

	if _, err := p.Publish(context.Background(), &entity.Notification{ID: "n1", UserID: "u1", Type: entity.TypeReminder}); err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}
}

func TestPublishHonoursCancelledContext(t *testing.T) {
	p := &notificationPublisher{p: mocks.NewSyncProducer(t, nil), topic: "t"}
	defer p.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := p.Publish(ctx, &entity.Notification{ID: "n1", UserID: "u1"}); err == nil {
		t.Error("expected context error")
	}
}

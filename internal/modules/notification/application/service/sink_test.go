package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"JobTracker/internal/modules/notification/domain/entity"
	"JobTracker/internal/modules/notification/infrastructure/mq"
)

type mockPusher struct {
	mu    sync.Mutex
	users []string
}

func (m *mockPusher) SendJSON(userID string, v interface{}) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users = append(m.users, userID)
	return true, nil
}

type mockPublisher struct {
	mu   sync.Mutex
	msgs []*entity.Notification
	err  error
}

func (m *mockPublisher) Publish(ctx context.Context, n *entity.Notification) (mq.PublishResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.msgs = append(m.msgs, n)
	return mq.PublishResult{}, m.err
}

func (m *mockPublisher) Close() error { return nil }

func TestSinkDeliversToPusherAndPublisher(t *testing.T) {
	pusher := &mockPusher{}
	pub := &mockPublisher{}
	sink := NewSink(pusher, pub)

	sink.Deliver(context.Background(),
		&entity.Notification{ID: "n1", UserID: "u1", Type: entity.TypeFollowUp},
		nil,
		&entity.Notification{ID: "n2", UserID: "u2", Type: entity.TypeStatusChange},
	)

	if len(pusher.users) != 2 || pusher.users[0] != "u1" || pusher.users[1] != "u2" {
		t.Errorf("unexpected pushes %v", pusher.users)
	}
	if len(pub.msgs) != 2 {
		t.Fatalf("expected 2 published messages, got %d", len(pub.msgs))
	}
	if pub.msgs[0].ID != "n1" || pub.msgs[1].ID != "n2" {
		t.Errorf("unexpected published notifications %+v", pub.msgs)
	}
}

func TestSinkSwallowsPublishErrors(t *testing.T) {
	pub := &mockPublisher{err: errors.New("broker down")}
	sink := NewSink(nil, pub)
	// 不应 panic，也没有返回值需要处理
	sink.Deliver(context.Background(), &entity.Notification{ID: "n1", UserID: "u1"})
	if len(pub.msgs) != 1 {
		t.Errorf("expected publish attempt, got %d", len(pub.msgs))
	}
}

func TestSinkWithoutPublisherOnlyPushes(t *testing.T) {
	pusher := &mockPusher{}
	NewSink(pusher, nil).Deliver(context.Background(), &entity.Notification{ID: "n1", UserID: "u1"})
	if len(pusher.users) != 1 {
		t.Errorf("expected one push, got %d", len(pusher.users))
	}
}

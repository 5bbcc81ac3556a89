package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	notificationEntity "JobTracker/internal/modules/notification/domain/entity"
	notificationRepository "JobTracker/internal/modules/notification/domain/repository"
	"JobTracker/internal/modules/user/application/dto/request"
	"JobTracker/internal/modules/user/domain/entity"
	"JobTracker/internal/modules/user/domain/repository"
	"JobTracker/pkg/clock"
	"JobTracker/pkg/util/myjwt"
	"JobTracker/pkg/xerr"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func init() {
	hashCost = bcrypt.MinCost
}

type mockUserRepo struct {
	mu        sync.Mutex
	users     map[string]*entity.User
	updates   map[string]interface{}
	lookErr   error
	createErr error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: map[string]*entity.User{}}
}

func (m *mockUserRepo) CreateUser(ctx context.Context, user *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	if user.ID == "" {
		user.ID = "user-" + user.Email
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.lookErr != nil {
		return nil, m.lookErr
	}
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) UpdateSettings(ctx context.Context, id string, fields map[string]interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.updates = fields
	return nil
}

type mockNotificationRepo struct {
	mu    sync.Mutex
	items []*notificationEntity.Notification
}

func (m *mockNotificationRepo) CreateNotification(ctx context.Context, n *notificationEntity.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, n)
	return nil
}

func (m *mockNotificationRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*notificationEntity.Notification, error) {
	return nil, nil
}
func (m *mockNotificationRepo) MarkRead(ctx context.Context, id string, userID string) error { return nil }
func (m *mockNotificationRepo) MarkAllRead(ctx context.Context, userID string) error        { return nil }
func (m *mockNotificationRepo) CountUnread(ctx context.Context, userID string) (int64, error) {
	return 0, nil
}

type mockUow struct {
	users         *mockUserRepo
	notifications *mockNotificationRepo
}

func (u *mockUow) Transaction(ctx context.Context, fn func(users repository.UserRepository, notifications notificationRepository.NotificationRepository) error) error {
	return fn(u.users, u.notifications)
}

type recordingSink struct {
	mu        sync.Mutex
	delivered []*notificationEntity.Notification
}

func (s *recordingSink) Deliver(ctx context.Context, ns ...*notificationEntity.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delivered = append(s.delivered, ns...)
}

type fixture struct {
	svc   UserService
	repo  *mockUserRepo
	notes *mockNotificationRepo
	sink  *recordingSink
	jwt   *myjwt.Manager
}

func newFixture() *fixture {
	repo := newMockUserRepo()
	notes := &mockNotificationRepo{}
	sink := &recordingSink{}
	jm := myjwt.New("test-key", "jobtracker", 1)
	now := clock.Fixed(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	return &fixture{
		svc:   NewUserService(repo, &mockUow{users: repo, notifications: notes}, jm, sink, now),
		repo:  repo,
		notes: notes,
		sink:  sink,
		jwt:   jm,
	}
}

func codeOf(err error) int {
	var e *xerr.CodeError
	if errors.As(err, &e) {
		return e.Code
	}
	return 0
}

func TestRegisterCreatesUserAndWelcomeNotification(t *testing.T) {
	f := newFixture()
	res, err := f.svc.Register(context.Background(), request.RegisterRequest{Name: "Ada", Email: "Ada@Example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if !res.Success || res.UserID == "" {
		t.Fatalf("unexpected respond %+v", res)
	}

	u := f.repo.users[res.UserID]
	if u.Email != "ada@example.com" {
		t.Errorf("email not normalized: %s", u.Email)
	}
	if !u.ReminderEnabled || u.ReminderDays != entity.DefaultReminderDays {
		t.Errorf("defaults not applied: %+v", u)
	}
	if bcrypt.CompareHashAndPassword([]byte(*u.HashedPassword), []byte("secret1")) != nil {
		t.Error("password not hashed correctly")
	}

	if len(f.notes.items) != 1 || f.notes.items[0].Type != notificationEntity.TypeSystem || f.notes.items[0].UserID != res.UserID {
		t.Fatalf("unexpected welcome notification %+v", f.notes.items)
	}
	if len(f.sink.delivered) != 1 {
		t.Errorf("welcome notification should be pushed, got %d", len(f.sink.delivered))
	}
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	if _, err := f.svc.Register(ctx, request.RegisterRequest{Name: "A", Email: "a@example.com", Password: "secret1"}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := f.svc.Register(ctx, request.RegisterRequest{Name: "A", Email: "A@example.com", Password: "secret1"})
	if codeOf(err) != xerr.Conflict {
		t.Errorf("expected 409, got %v", err)
	}
}

func TestRegisterUniqueIndexViolationConflicts(t *testing.T) {
	f := newFixture()
	// 查询时邮箱还不存在，插入时被并发请求抢先
	f.repo.createErr = gorm.ErrDuplicatedKey
	_, err := f.svc.Register(context.Background(), request.RegisterRequest{Name: "A", Email: "a@example.com", Password: "secret1"})
	if codeOf(err) != xerr.Conflict {
		t.Errorf("expected 409, got %v", err)
	}
	if len(f.notes.items) != 0 || len(f.sink.delivered) != 0 {
		t.Error("no welcome notification for a rejected registration")
	}
}

func TestRegisterLookupFailureIsUnavailable(t *testing.T) {
	f := newFixture()
	f.repo.lookErr = errors.New("connection refused")
	_, err := f.svc.Register(context.Background(), request.RegisterRequest{Name: "A", Email: "a@example.com", Password: "secret1"})
	if codeOf(err) != xerr.ServiceUnavailable {
		t.Errorf("expected 503, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	reg, _ := f.svc.Register(ctx, request.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "secret1"})

	res, err := f.svc.Login(ctx, request.LoginRequest{Email: "ada@example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, err := f.jwt.ParseToken(res.Token)
	if err != nil || claims.UserID != reg.UserID {
		t.Errorf("token does not carry user id: %v %+v", err, claims)
	}

	tests := []struct {
		name string
		req  request.LoginRequest
	}{
		{"wrong password", request.LoginRequest{Email: "ada@example.com", Password: "nope"}},
		{"unknown email", request.LoginRequest{Email: "bob@example.com", Password: "secret1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Login(ctx, tt.req)
			if codeOf(err) != xerr.Unauthorized {
				t.Errorf("expected 401, got %v", err)
			}
		})
	}
}

func TestLoginWithoutPassword(t *testing.T) {
	f := newFixture()
	f.repo.users["oauth"] = &entity.User{ID: "oauth", Email: "oauth@example.com"}
	_, err := f.svc.Login(context.Background(), request.LoginRequest{Email: "oauth@example.com", Password: "x"})
	if codeOf(err) != xerr.Unauthorized {
		t.Errorf("expected 401, got %v", err)
	}
}

func TestUpdateSettingsWritesChangedColumns(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.repo.users["u1"] = &entity.User{ID: "u1"}

	days := 15
	off := false
	if err := f.svc.UpdateSettings(ctx, "u1", request.UpdateSettingsRequest{ReminderDays: &days, ReminderEnabled: &off}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if f.repo.updates["reminder_days"] != 15 || f.repo.updates["reminder_enabled"] != false {
		t.Errorf("unexpected updates %v", f.repo.updates)
	}

	if err := f.svc.UpdateSettings(ctx, "missing", request.UpdateSettingsRequest{ReminderDays: &days}); codeOf(err) != xerr.NotFound {
		t.Errorf("expected 404, got %v", err)
	}
}

func TestGetSettings(t *testing.T) {
	f := newFixture()
	u := &entity.User{ID: "u1"}
	u.ApplyDefaultSettings()
	f.repo.users["u1"] = u

	res, err := f.svc.GetSettings(context.Background(), "u1")
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	if res.ReminderDays != 7 || res.ReminderTime != "09:00" || !res.ReminderEnabled {
		t.Errorf("unexpected settings %+v", res)
	}
}

package service

import (
	"context"
	"errors"
	"strings"

	notificationService "JobTracker/internal/modules/notification/application/service"
	notificationEntity "JobTracker/internal/modules/notification/domain/entity"
	notificationRepository "JobTracker/internal/modules/notification/domain/repository"
	"JobTracker/internal/modules/user/application/dto/request"
	"JobTracker/internal/modules/user/application/dto/respond"
	"JobTracker/internal/modules/user/domain/entity"
	"JobTracker/internal/modules/user/domain/repository"
	"JobTracker/pkg/clock"
	"JobTracker/pkg/util/myjwt"
	"JobTracker/pkg/xerr"
	"JobTracker/pkg/zlog"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// hashCost 测试里会调低
	hashCost = 12

	errEmailTaken     = xerr.New(xerr.Conflict, "An account with this email already exists")
	errBadCredentials = xerr.New(xerr.Unauthorized, "Invalid email or password")
)

// UserService 注册、登录和提醒设置
type UserService interface {
	Register(ctx context.Context, req request.RegisterRequest) (*respond.RegisterRespond, error)
	Login(ctx context.Context, req request.LoginRequest) (*respond.LoginRespond, error)
	GetSettings(ctx context.Context, userID string) (*respond.SettingsRespond, error)
	UpdateSettings(ctx context.Context, userID string, req request.UpdateSettingsRequest) error
}

type userServiceImpl struct {
	repo  repository.UserRepository
	uow   repository.UserUnitOfWork
	jwt   *myjwt.Manager
	sink  notificationService.Sink
	clock clock.Clock
}

func NewUserService(repo repository.UserRepository, uow repository.UserUnitOfWork, jwt *myjwt.Manager, sink notificationService.Sink, clk clock.Clock) UserService {
	return &userServiceImpl{repo: repo, uow: uow, jwt: jwt, sink: sink, clock: clk}
}

func (s *userServiceImpl) Register(ctx context.Context, req request.RegisterRequest) (*respond.RegisterRespond, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	zlog.Info("register attempt", zap.String("email", email))

	if _, err := s.repo.GetUserByEmail(ctx, email); err == nil {
		zlog.Info("register rejected, user exists", zap.String("email", email))
		return nil, errEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		zlog.Error("register lookup failed", zap.Error(err), zap.String("email", email))
		return nil, xerr.ErrServiceUnavailable
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), hashCost)
	if err != nil {
		zlog.Error("hash password failed", zap.Error(err))
		return nil, xerr.ErrServerError
	}
	hashedStr := string(hashed)

	now := s.clock.Now()
	user := &entity.User{
		Name:           strings.TrimSpace(req.Name),
		Email:          email,
		HashedPassword: &hashedStr,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	user.ApplyDefaultSettings()

	var welcome *notificationEntity.Notification
	err = s.uow.Transaction(ctx, func(users repository.UserRepository, notifications notificationRepository.NotificationRepository) error {
		if err := users.CreateUser(ctx, user); err != nil {
			return err
		}
		welcome = &notificationEntity.Notification{
			UserID:    user.ID,
			Title:     "Welcome to JobTracker! 🎉",
			Message:   "Start adding your job applications and never lose track of your job search again.",
			Type:      notificationEntity.TypeSystem,
			CreatedAt: now,
		}
		return notifications.CreateNotification(ctx, welcome)
	})
	if err != nil {
		// 并发注册同一邮箱时由唯一索引兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			zlog.Info("register rejected, unique email violated", zap.String("email", email))
			return nil, errEmailTaken
		}
		zlog.Error("register failed", zap.Error(err), zap.String("email", email))
		return nil, xerr.New(xerr.InternalServerError, "Something went wrong during registration. Please try again later.")
	}

	s.sink.Deliver(ctx, welcome)
	zlog.Info("register succeeded", zap.String("email", email), zap.String("user_id", user.ID))
	return &respond.RegisterRespond{Success: true, Message: "Account created successfully", UserID: user.ID}, nil
}

func (s *userServiceImpl) Login(ctx context.Context, req request.LoginRequest) (*respond.LoginRespond, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			zlog.Error("login lookup failed", zap.Error(err))
			return nil, xerr.ErrServerError
		}
		zlog.Info("login user not found", zap.String("email", email))
		return nil, errBadCredentials
	}
	// 第三方登录创建的账号没有密码
	if user.HashedPassword == nil || *user.HashedPassword == "" {
		zlog.Info("login user has no password", zap.String("email", email))
		return nil, errBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.HashedPassword), []byte(req.Password)); err != nil {
		zlog.Info("login invalid password", zap.String("email", email))
		return nil, errBadCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Email)
	if err != nil {
		zlog.Error("generate token failed", zap.Error(err))
		return nil, xerr.ErrServerError
	}
	return &respond.LoginRespond{
		Token: token,
		User:  respond.UserBrief{ID: user.ID, Name: user.Name, Email: user.Email, Image: user.Image},
	}, nil
}

func (s *userServiceImpl) GetSettings(ctx context.Context, userID string) (*respond.SettingsRespond, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, xerr.ErrNotFound
		}
		zlog.Error("get settings failed", zap.Error(err), zap.String("user_id", userID))
		return nil, xerr.ErrServerError
	}
	return &respond.SettingsRespond{
		ReminderEnabled:      user.ReminderEnabled,
		EmailReminders:       user.EmailReminders,
		DesktopNotifications: user.DesktopNotifications,
		SmsReminders:         user.SmsReminders,
		ReminderDays:         user.ReminderDays,
		ReminderTime:         user.ReminderTime,
	}, nil
}

// UpdateSettings 取值范围由 handler 绑定时校验
func (s *userServiceImpl) UpdateSettings(ctx context.Context, userID string, req request.UpdateSettingsRequest) error {
	fields := map[string]interface{}{}
	if req.ReminderEnabled != nil {
		fields["reminder_enabled"] = *req.ReminderEnabled
	}
	if req.EmailReminders != nil {
		fields["email_reminders"] = *req.EmailReminders
	}
	if req.DesktopNotifications != nil {
		fields["desktop_notifications"] = *req.DesktopNotifications
	}
	if req.SmsReminders != nil {
		fields["sms_reminders"] = *req.SmsReminders
	}
	if req.ReminderDays != nil {
		fields["reminder_days"] = *req.ReminderDays
	}
	if req.ReminderTime != nil {
		fields["reminder_time"] = *req.ReminderTime
	}
	if len(fields) == 0 {
		return nil
	}
	fields["updated_at"] = s.clock.Now()

	if err := s.repo.UpdateSettings(ctx, userID, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return xerr.ErrNotFound
		}
		zlog.Error("update settings failed", zap.Error(err), zap.String("user_id", userID))
		return xerr.ErrServerError
	}
	return nil
}

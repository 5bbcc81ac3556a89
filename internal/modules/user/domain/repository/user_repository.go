package repository

import (
	"JobTracker/internal/modules/user/domain/entity"
	notificationRepository "JobTracker/internal/modules/notification/domain/repository"
	"context"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	// UpdateSettings 只更新传入的提醒设置列
	UpdateSettings(ctx context.Context, id string, fields map[string]interface{}) error
}

// UserUnitOfWork 注册时用户和欢迎通知要么一起落库，要么都不落库
type UserUnitOfWork interface {
	Transaction(ctx context.Context, fn func(users UserRepository, notifications notificationRepository.NotificationRepository) error) error
}

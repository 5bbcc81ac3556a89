package persistence

import (
	"context"

	notificationPersistence "JobTracker/internal/modules/notification/infrastructure/persistence"
	notificationRepository "JobTracker/internal/modules/notification/domain/repository"
	"JobTracker/internal/modules/user/domain/repository"

	"gorm.io/gorm"
)

type userUnitOfWorkImpl struct {
	db *gorm.DB
}

func NewUserUnitOfWork(db *gorm.DB) repository.UserUnitOfWork {
	return &userUnitOfWorkImpl{db: db}
}

func (u *userUnitOfWorkImpl) Transaction(ctx context.Context, fn func(users repository.UserRepository, notifications notificationRepository.NotificationRepository) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewUserRepository(tx), notificationPersistence.NewNotificationRepository(tx))
	})
}

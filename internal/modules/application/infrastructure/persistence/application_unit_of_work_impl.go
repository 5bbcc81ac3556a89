package persistence

import (
	"context"

	"JobTracker/internal/modules/application/domain/repository"
	notificationRepository "JobTracker/internal/modules/notification/domain/repository"
	notificationPersistence "JobTracker/internal/modules/notification/infrastructure/persistence"

	"gorm.io/gorm"
)

type applicationUnitOfWorkImpl struct {
	db *gorm.DB
}

func NewApplicationUnitOfWork(db *gorm.DB) repository.ApplicationUnitOfWork {
	return &applicationUnitOfWorkImpl{db: db}
}

func (u *applicationUnitOfWorkImpl) Transaction(ctx context.Context, fn func(apps repository.ApplicationRepository, interviews repository.InterviewRepository, notifications notificationRepository.NotificationRepository) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewApplicationRepository(tx), NewInterviewRepository(tx), notificationPersistence.NewNotificationRepository(tx))
	})
}

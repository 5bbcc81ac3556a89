package persistence

import (
	"context"
	"time"

	applicationEntity "JobTracker/internal/modules/application/domain/entity"
	notificationRepository "JobTracker/internal/modules/notification/domain/repository"
	notificationPersistence "JobTracker/internal/modules/notification/infrastructure/persistence"
	"JobTracker/internal/modules/reminder/domain/entity"
	"JobTracker/internal/modules/reminder/domain/repository"
	userEntity "JobTracker/internal/modules/user/domain/entity"

	"gorm.io/gorm"
)

type reminderRepositoryImpl struct {
	db *gorm.DB
}

func NewReminderRepository(db *gorm.DB) repository.ReminderRepository {
	return &reminderRepositoryImpl{db: db}
}

func (r *reminderRepositoryImpl) FindReminderCandidates(ctx context.Context) ([]*entity.Row, error) {
	apps := applicationEntity.Application{}.TableName()
	users := userEntity.User{}.TableName()

	var rows []*entity.Row
	// 用户总开关在内存里判断，这里只带出设置
	err := r.db.WithContext(ctx).
		Table(apps).
		Select(apps+".id AS application_id, "+
			apps+".user_id, "+
			apps+".company_name, "+
			apps+".position_title, "+
			apps+".status, "+
			apps+".priority, "+
			apps+".tags, "+
			apps+".archived, "+
			apps+".auto_reminder_enabled, "+
			apps+".last_activity_at, "+
			apps+".reminder_sent_at, "+
			users+".reminder_enabled, "+
			users+".reminder_days").
		Joins("JOIN "+users+" ON "+users+".id = "+apps+".user_id").
		Where(apps+".archived = ? AND "+apps+".auto_reminder_enabled = ?", false, true).
		Where(apps+".status IN ?", applicationEntity.AwaitingResponse).
		Order(apps + ".last_activity_at ASC").
		Scan(&rows).Error
	return rows, err
}

type reminderMarkerImpl struct {
	db *gorm.DB
}

func NewReminderMarker(db *gorm.DB) repository.ReminderMarker {
	return &reminderMarkerImpl{db: db}
}

// MarkReminded 不算用户活动，不更新 updated_at / last_activity_at
func (m *reminderMarkerImpl) MarkReminded(ctx context.Context, applicationID string, at time.Time) error {
	res := m.db.WithContext(ctx).
		Model(&applicationEntity.Application{}).
		Where("id = ?", applicationID).
		UpdateColumn("reminder_sent_at", at)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type reminderUnitOfWorkImpl struct {
	db *gorm.DB
}

func NewReminderUnitOfWork(db *gorm.DB) repository.ReminderUnitOfWork {
	return &reminderUnitOfWorkImpl{db: db}
}

func (u *reminderUnitOfWorkImpl) Transaction(ctx context.Context, fn func(notifications notificationRepository.NotificationRepository, marker repository.ReminderMarker) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(notificationPersistence.NewNotificationRepository(tx), NewReminderMarker(tx))
	})
}

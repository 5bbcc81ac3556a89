package persistence

import (
	"context"

	"JobTracker/internal/modules/application/domain/entity"
	"JobTracker/internal/modules/application/domain/repository"
	"JobTracker/pkg/util"

	"gorm.io/gorm"
)

type interviewRepositoryImpl struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) repository.InterviewRepository {
	return &interviewRepositoryImpl{db: db}
}

func (r *interviewRepositoryImpl) CreateInterview(ctx context.Context, interview *entity.Interview) error {
	if interview.ID == "" {
		interview.ID = util.GenerateUUID()
	}
	return r.db.WithContext(ctx).Create(interview).Error
}

func (r *interviewRepositoryImpl) GetInterview(ctx context.Context, userID, id string) (*entity.Interview, error) {
	var interview entity.Interview
	err := r.db.WithContext(ctx).
		Joins("JOIN applications ON applications.id = interviews.application_id").
		Where("interviews.id = ? AND applications.user_id = ?", id, userID).
		First(&interview).Error
	if err != nil {
		return nil, err
	}
	return &interview, nil
}

func (r *interviewRepositoryImpl) UpdateInterview(ctx context.Context, id string, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&entity.Interview{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *interviewRepositoryImpl) DeleteInterview(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Interview{}).Error
}

func (r *interviewRepositoryImpl) DeleteByApplication(ctx context.Context, applicationID string) error {
	return r.db.WithContext(ctx).Where("application_id = ?", applicationID).Delete(&entity.Interview{}).Error
}

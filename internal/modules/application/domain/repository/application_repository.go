package repository

import (
	"context"

	"JobTracker/internal/modules/application/domain/entity"
	notificationRepository "JobTracker/internal/modules/notification/domain/repository"
)

// ListFilter 列表筛选条件，空字段表示不限
type ListFilter struct {
	Archived bool
	Status   string
	Platform string
	JobType  string
	Priority string
	Tags     []string
	Query    string
}

type ApplicationRepository interface {
	CreateApplication(ctx context.Context, app *entity.Application) error
	// GetApplication 按用户隔离，带面试轮次
	GetApplication(ctx context.Context, userID, id string) (*entity.Application, error)
	ListApplications(ctx context.Context, userID string, filter ListFilter) ([]*entity.Application, error)
	// FindDuplicate 公司名和职位忽略大小写，只在未归档的投递里找
	FindDuplicate(ctx context.Context, userID, companyName, positionTitle string) (*entity.Application, error)
	UpdateApplication(ctx context.Context, userID, id string, fields map[string]interface{}) error
	DeleteApplication(ctx context.Context, userID, id string) error
	Search(ctx context.Context, userID, query string, limit int) ([]*entity.Application, error)
	// ListAllApplications 导出用，包含已归档
	ListAllApplications(ctx context.Context, userID string) ([]*entity.Application, error)
}

type InterviewRepository interface {
	CreateInterview(ctx context.Context, interview *entity.Interview) error
	// GetInterview 通过所属投递校验用户
	GetInterview(ctx context.Context, userID, id string) (*entity.Interview, error)
	UpdateInterview(ctx context.Context, id string, fields map[string]interface{}) error
	DeleteInterview(ctx context.Context, id string) error
	DeleteByApplication(ctx context.Context, applicationID string) error
}

type ApplicationUnitOfWork interface {
	Transaction(ctx context.Context, fn func(apps ApplicationRepository, interviews InterviewRepository, notifications notificationRepository.NotificationRepository) error) error
}

package persistence

import (
	"context"
	"strings"

	"JobTracker/internal/modules/application/domain/entity"
	"JobTracker/internal/modules/application/domain/repository"
	"JobTracker/pkg/util"

	"gorm.io/gorm"
)

var searchColumns = []string{
	"company_name", "position_title", "recruiter_name", "recruiter_email",
	"recruiter_phone", "location", "notes",
}

type applicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) repository.ApplicationRepository {
	return &applicationRepositoryImpl{db: db}
}

func preloadInterviews(db *gorm.DB) *gorm.DB {
	return db.Order("round_number ASC")
}

func (r *applicationRepositoryImpl) CreateApplication(ctx context.Context, app *entity.Application) error {
	if app.ID == "" {
		app.ID = util.GenerateUUID()
	}
	return r.db.WithContext(ctx).Omit("Interviews").Create(app).Error
}

func (r *applicationRepositoryImpl) GetApplication(ctx context.Context, userID, id string) (*entity.Application, error) {
	var app entity.Application
	err := r.db.WithContext(ctx).
		Preload("Interviews", preloadInterviews).
		Where("id = ? AND user_id = ?", id, userID).
		First(&app).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// likeEscaper 用 ! 作转义符，mysql 字符串里的反斜杠本身需要转义，各库写法不一致
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// likeAny 多列忽略大小写模糊匹配，mysql/postgres/sqlite 通用；% 和 _ 按字面匹配
func likeAny(query string) (string, []interface{}) {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(query)) + "%"
	clauses := make([]string, 0, len(searchColumns))
	args := make([]interface{}, 0, len(searchColumns))
	for _, col := range searchColumns {
		clauses = append(clauses, "LOWER("+col+") LIKE ? ESCAPE '!'")
		args = append(args, pattern)
	}
	return "(" + strings.Join(clauses, " OR ") + ")", args
}

func (r *applicationRepositoryImpl) ListApplications(ctx context.Context, userID string, filter repository.ListFilter) ([]*entity.Application, error) {
	q := r.db.WithContext(ctx).
		Preload("Interviews", preloadInterviews).
		Where("user_id = ? AND archived = ?", userID, filter.Archived)
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Platform != "" {
		q = q.Where("platform = ?", filter.Platform)
	}
	if filter.JobType != "" {
		q = q.Where("job_type = ?", filter.JobType)
	}
	if filter.Priority != "" {
		q = q.Where("priority = ?", filter.Priority)
	}
	if s := strings.TrimSpace(filter.Query); s != "" {
		cond, args := likeAny(s)
		q = q.Where(cond, args...)
	}

	var list []*entity.Application
	if err := q.Order("updated_at DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	// tags 是 JSON 列，各数据库的 JSON 查询语法不同，放在内存里过滤
	if len(filter.Tags) == 0 {
		return list, nil
	}
	out := list[:0]
	for _, app := range list {
		if app.HasAllTags(filter.Tags) {
			out = append(out, app)
		}
	}
	return out, nil
}

func (r *applicationRepositoryImpl) FindDuplicate(ctx context.Context, userID, companyName, positionTitle string) (*entity.Application, error) {
	var app entity.Application
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND archived = ?", userID, false).
		Where("LOWER(company_name) = ? AND LOWER(position_title) = ?",
			strings.ToLower(strings.TrimSpace(companyName)), strings.ToLower(strings.TrimSpace(positionTitle))).
		First(&app).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepositoryImpl) UpdateApplication(ctx context.Context, userID, id string, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).
		Model(&entity.Application{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *applicationRepositoryImpl) DeleteApplication(ctx context.Context, userID, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entity.Application{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *applicationRepositoryImpl) Search(ctx context.Context, userID, query string, limit int) ([]*entity.Application, error) {
	if limit <= 0 {
		limit = 20
	}
	cond, args := likeAny(query)
	var list []*entity.Application
	err := r.db.WithContext(ctx).
		Preload("Interviews", preloadInterviews).
		Where("user_id = ?", userID).
		Where(cond, args...).
		Order("updated_at DESC").
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *applicationRepositoryImpl) ListAllApplications(ctx context.Context, userID string) ([]*entity.Application, error) {
	var list []*entity.Application
	err := r.db.WithContext(ctx).
		Preload("Interviews", preloadInterviews).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"JobTracker/internal/modules/application/application/dto/request"
	"JobTracker/internal/modules/application/application/dto/respond"
	"JobTracker/internal/modules/application/domain/entity"
	"JobTracker/internal/modules/application/domain/quickadd"
	"JobTracker/internal/modules/application/domain/repository"
	notificationService "JobTracker/internal/modules/notification/application/service"
	notificationEntity "JobTracker/internal/modules/notification/domain/entity"
	notificationRepository "JobTracker/internal/modules/notification/domain/repository"
	"JobTracker/pkg/clock"
	"JobTracker/pkg/util"
	"JobTracker/pkg/xerr"
	"JobTracker/pkg/zlog"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const searchLimit = 20

var (
	errApplicationNotFound = xerr.New(xerr.NotFound, "Application not found")
	errDuplicate           = xerr.New(xerr.Conflict, "duplicate")
)

type ApplicationService interface {
	List(ctx context.Context, userID string, req request.ListApplicationsRequest) ([]*respond.ApplicationRespond, error)
	Get(ctx context.Context, userID, id string) (*respond.ApplicationRespond, error)
	Create(ctx context.Context, userID string, req request.CreateApplicationRequest) (*respond.ApplicationRespond, error)
	Update(ctx context.Context, userID, id string, req request.UpdateApplicationRequest) (*respond.ApplicationRespond, error)
	UpdateStatus(ctx context.Context, userID, id string, status entity.Status) (*respond.ApplicationRespond, error)
	Archive(ctx context.Context, userID, id string, archived bool) error
	Delete(ctx context.Context, userID, id string) error
	Search(ctx context.Context, userID, query string) ([]*respond.ApplicationRespond, error)
	QuickAdd(ctx context.Context, text string) quickadd.Result
	Import(ctx context.Context, userID string, items []request.CreateApplicationRequest) *respond.ImportRespond
	Export(ctx context.Context, userID, format string) (*respond.ExportFile, error)
}

type applicationServiceImpl struct {
	repo     repository.ApplicationRepository
	uow      repository.ApplicationUnitOfWork
	sink     notificationService.Sink
	clock    clock.Clock
	validate *validator.Validate
}

func NewApplicationService(repo repository.ApplicationRepository, uow repository.ApplicationUnitOfWork, sink notificationService.Sink, clk clock.Clock) ApplicationService {
	v := validator.New()
	// 与 gin 的 binding 标签保持一致，导入时逐条复用
	v.SetTagName("binding")
	return &applicationServiceImpl{repo: repo, uow: uow, sink: sink, clock: clk, validate: v}
}

func mapRepoErr(err error, msg string, fields ...zap.Field) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errApplicationNotFound
	}
	zlog.Error(msg, append(fields, zap.Error(err))...)
	return xerr.ErrServerError
}

func (s *applicationServiceImpl) List(ctx context.Context, userID string, req request.ListApplicationsRequest) ([]*respond.ApplicationRespond, error) {
	list, err := s.repo.ListApplications(ctx, userID, repository.ListFilter{
		Archived: req.Archived,
		Status:   req.Status,
		Platform: req.Platform,
		JobType:  req.JobType,
		Priority: req.Priority,
		Tags:     req.Tags,
		Query:    req.Query,
	})
	if err != nil {
		zlog.Error("list applications failed", zap.Error(err), zap.String("user_id", userID))
		return nil, xerr.ErrServerError
	}
	return respond.FromApplications(list), nil
}

func (s *applicationServiceImpl) Get(ctx context.Context, userID, id string) (*respond.ApplicationRespond, error) {
	app, err := s.repo.GetApplication(ctx, userID, id)
	if err != nil {
		return nil, mapRepoErr(err, "get application failed", zap.String("id", id))
	}
	return respond.FromApplication(app), nil
}

// newApplication 把请求转换成实体并填充默认值
func (s *applicationServiceImpl) newApplication(userID string, req request.CreateApplicationRequest) *entity.Application {
	now := s.clock.Now()
	app := &entity.Application{
		UserID:              userID,
		CompanyName:         strings.TrimSpace(req.CompanyName),
		PositionTitle:       strings.TrimSpace(req.PositionTitle),
		Platform:            entity.PlatformOther,
		JobType:             entity.JobTypeRemote,
		Status:              entity.StatusApplied,
		Priority:            entity.PriorityMedium,
		SalaryMin:           req.SalaryMin,
		SalaryMax:           req.SalaryMax,
		Location:            util.TrimPtr(req.Location),
		AppliedDate:         now,
		FollowUpDate:        req.FollowUpDate,
		RecruiterName:       util.TrimPtr(req.RecruiterName),
		RecruiterEmail:      util.TrimPtr(req.RecruiterEmail),
		RecruiterPhone:      util.TrimPtr(req.RecruiterPhone),
		JobLink:             util.TrimPtr(req.JobLink),
		ResumeVersion:       util.TrimPtr(req.ResumeVersion),
		Notes:               req.Notes,
		Tags:                req.Tags,
		AutoReminderEnabled: true,
		LastActivityAt:      now,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if app.Tags == nil {
		app.Tags = []string{}
	}
	if req.Platform != "" {
		app.Platform = entity.Platform(req.Platform)
	}
	if req.JobType != "" {
		app.JobType = entity.JobType(req.JobType)
	}
	if req.Status != "" {
		app.Status = entity.Status(req.Status)
	}
	if req.Priority != "" {
		app.Priority = entity.Priority(req.Priority)
	}
	if req.AppliedDate != nil {
		app.AppliedDate = *req.AppliedDate
	}
	if req.AutoReminderEnabled != nil {
		app.AutoReminderEnabled = *req.AutoReminderEnabled
	}
	return app
}

func (s *applicationServiceImpl) Create(ctx context.Context, userID string, req request.CreateApplicationRequest) (*respond.ApplicationRespond, error) {
	existing, err := s.repo.FindDuplicate(ctx, userID, req.CompanyName, req.PositionTitle)
	if err == nil {
		zlog.Info("duplicate application", zap.String("user_id", userID), zap.String("existing_id", existing.ID))
		return nil, errDuplicate.WithData(map[string]string{"existingId": existing.ID})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		zlog.Error("duplicate check failed", zap.Error(err), zap.String("user_id", userID))
		return nil, xerr.ErrServerError
	}

	app := s.newApplication(userID, req)
	if err := s.repo.CreateApplication(ctx, app); err != nil {
		zlog.Error("create application failed", zap.Error(err), zap.String("user_id", userID))
		return nil, xerr.ErrServerError
	}
	app.Interviews = []entity.Interview{}
	return respond.FromApplication(app), nil
}

func (s *applicationServiceImpl) Update(ctx context.Context, userID, id string, req request.UpdateApplicationRequest) (*respond.ApplicationRespond, error) {
	fields := updateFields(req)
	fields["last_activity_at"] = s.clock.Now()

	if err := s.repo.UpdateApplication(ctx, userID, id, fields); err != nil {
		return nil, mapRepoErr(err, "update application failed", zap.String("id", id))
	}
	return s.Get(ctx, userID, id)
}

func updateFields(req request.UpdateApplicationRequest) map[string]interface{} {
	fields := map[string]interface{}{}
	setString := func(col string, v *string) {
		if v != nil {
			fields[col] = strings.TrimSpace(*v)
		}
	}
	// 可选文本字段传空串时存 NULL
	setNullable := func(col string, v *string) {
		if v != nil {
			fields[col] = util.TrimPtr(v)
		}
	}
	setString("company_name", req.CompanyName)
	setString("position_title", req.PositionTitle)
	setString("platform", req.Platform)
	setString("job_type", req.JobType)
	setString("status", req.Status)
	setString("priority", req.Priority)
	setNullable("location", req.Location)
	setNullable("recruiter_name", req.RecruiterName)
	setNullable("recruiter_email", req.RecruiterEmail)
	setNullable("recruiter_phone", req.RecruiterPhone)
	setNullable("job_link", req.JobLink)
	setNullable("resume_version", req.ResumeVersion)
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}
	if req.SalaryMin != nil {
		fields["salary_min"] = *req.SalaryMin
	}
	if req.SalaryMax != nil {
		fields["salary_max"] = *req.SalaryMax
	}
	if req.AppliedDate != nil {
		fields["applied_date"] = *req.AppliedDate
	}
	if req.FollowUpDate != nil {
		fields["follow_up_date"] = *req.FollowUpDate
	}
	if req.Tags != nil {
		fields["tags"] = datatypes.JSONSlice[string](req.Tags)
	}
	if req.Archived != nil {
		fields["archived"] = *req.Archived
	}
	if req.AutoReminderEnabled != nil {
		fields["auto_reminder_enabled"] = *req.AutoReminderEnabled
	}
	return fields
}

func (s *applicationServiceImpl) UpdateStatus(ctx context.Context, userID, id string, status entity.Status) (*respond.ApplicationRespond, error) {
	now := s.clock.Now()
	var note *notificationEntity.Notification
	err := s.uow.Transaction(ctx, func(apps repository.ApplicationRepository, _ repository.InterviewRepository, notifications notificationRepository.NotificationRepository) error {
		app, err := apps.GetApplication(ctx, userID, id)
		if err != nil {
			return err
		}
		if err := apps.UpdateApplication(ctx, userID, id, map[string]interface{}{
			"status":           status,
			"last_activity_at": now,
		}); err != nil {
			return err
		}
		note = &notificationEntity.Notification{
			UserID:    userID,
			Title:     "Status Updated",
			Message:   app.CompanyName + " - " + app.PositionTitle + " moved to " + string(status),
			Type:      notificationEntity.TypeStatusChange,
			Link:      notificationEntity.ApplicationLink(id),
			CreatedAt: now,
		}
		return notifications.CreateNotification(ctx, note)
	})
	if err != nil {
		return nil, mapRepoErr(err, "update status failed", zap.String("id", id), zap.String("status", string(status)))
	}

	s.sink.Deliver(ctx, note)
	return s.Get(ctx, userID, id)
}

func (s *applicationServiceImpl) Archive(ctx context.Context, userID, id string, archived bool) error {
	err := s.repo.UpdateApplication(ctx, userID, id, map[string]interface{}{
		"archived":         archived,
		"last_activity_at": s.clock.Now(),
	})
	if err != nil {
		return mapRepoErr(err, "archive application failed", zap.String("id", id))
	}
	return nil
}

func (s *applicationServiceImpl) Delete(ctx context.Context, userID, id string) error {
	err := s.uow.Transaction(ctx, func(apps repository.ApplicationRepository, interviews repository.InterviewRepository, _ notificationRepository.NotificationRepository) error {
		if _, err := apps.GetApplication(ctx, userID, id); err != nil {
			return err
		}
		if err := interviews.DeleteByApplication(ctx, id); err != nil {
			return err
		}
		return apps.DeleteApplication(ctx, userID, id)
	})
	if err != nil {
		return mapRepoErr(err, "delete application failed", zap.String("id", id))
	}
	return nil
}

func (s *applicationServiceImpl) Search(ctx context.Context, userID, query string) ([]*respond.ApplicationRespond, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*respond.ApplicationRespond{}, nil
	}
	list, err := s.repo.Search(ctx, userID, query, searchLimit)
	if err != nil {
		zlog.Error("search applications failed", zap.Error(err), zap.String("user_id", userID))
		return nil, xerr.ErrServerError
	}
	return respond.FromApplications(list), nil
}

func (s *applicationServiceImpl) QuickAdd(ctx context.Context, text string) quickadd.Result {
	return quickadd.Parse(text)
}

func (s *applicationServiceImpl) Import(ctx context.Context, userID string, items []request.CreateApplicationRequest) *respond.ImportRespond {
	res := &respond.ImportRespond{Errors: []string{}}
	for i := range items {
		item := items[i]
		err := s.validate.Struct(&item)
		if err == nil {
			err = s.repo.CreateApplication(ctx, s.newApplication(userID, item))
		}
		if err != nil {
			name := strings.TrimSpace(item.CompanyName)
			if name == "" {
				name = "Unknown"
			}
			zlog.Warn("import application failed", zap.Error(err), zap.String("user_id", userID), zap.Int("index", i))
			res.Failed++
			res.Errors = append(res.Errors, "Failed to import: "+name)
			continue
		}
		res.Success++
	}
	zlog.Info("import finished", zap.String("user_id", userID), zap.Int("success", res.Success), zap.Int("failed", res.Failed))
	return res
}

func (s *applicationServiceImpl) Export(ctx context.Context, userID, format string) (*respond.ExportFile, error) {
	if format != "csv" && format != "json" {
		return nil, xerr.New(xerr.BadRequest, "format must be csv or json")
	}
	list, err := s.repo.ListAllApplications(ctx, userID)
	if err != nil {
		zlog.Error("export applications failed", zap.Error(err), zap.String("user_id", userID))
		return nil, xerr.ErrServerError
	}

	stamp := s.clock.Now().Format("2006-01-02")
	var body []byte
	if format == "csv" {
		body, err = encodeCSV(list)
	} else {
		body, err = encodeJSON(list)
	}
	if err != nil {
		zlog.Error("encode export failed", zap.Error(err), zap.String("format", format))
		return nil, xerr.ErrServerError
	}
	file := &respond.ExportFile{Filename: "applications-" + stamp + "." + format, Body: body}
	if format == "csv" {
		file.ContentType = "text/csv; charset=utf-8"
	} else {
		file.ContentType = "application/json; charset=utf-8"
	}
	return file, nil
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

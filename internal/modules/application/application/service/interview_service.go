package service

import (
	"context"
	"errors"

	"JobTracker/internal/modules/application/application/dto/request"
	"JobTracker/internal/modules/application/domain/entity"
	"JobTracker/internal/modules/application/domain/repository"
	notificationRepository "JobTracker/internal/modules/notification/domain/repository"
	"JobTracker/pkg/clock"
	"JobTracker/pkg/xerr"
	"JobTracker/pkg/zlog"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var errInterviewNotFound = xerr.New(xerr.NotFound, "Interview not found")

type InterviewService interface {
	Create(ctx context.Context, userID string, req request.CreateInterviewRequest) (*entity.Interview, error)
	Update(ctx context.Context, userID, id string, req request.UpdateInterviewRequest) (*entity.Interview, error)
	Delete(ctx context.Context, userID, id string) error
}

type interviewServiceImpl struct {
	interviews repository.InterviewRepository
	uow        repository.ApplicationUnitOfWork
	clock      clock.Clock
}

func NewInterviewService(interviews repository.InterviewRepository, uow repository.ApplicationUnitOfWork, clk clock.Clock) InterviewService {
	return &interviewServiceImpl{interviews: interviews, uow: uow, clock: clk}
}

// Create 新增面试轮次，同时把投递推进到 INTERVIEW
func (s *interviewServiceImpl) Create(ctx context.Context, userID string, req request.CreateInterviewRequest) (*entity.Interview, error) {
	now := s.clock.Now()
	interview := &entity.Interview{
		ApplicationID: req.ApplicationID,
		RoundNumber:   req.RoundNumber,
		Type:          entity.InterviewHR,
		ScheduledAt:   req.ScheduledAt,
		Result:        entity.ResultPending,
		Notes:         req.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if req.Type != "" {
		interview.Type = entity.InterviewType(req.Type)
	}
	if req.Result != "" {
		interview.Result = entity.InterviewResult(req.Result)
	}

	err := s.uow.Transaction(ctx, func(apps repository.ApplicationRepository, interviews repository.InterviewRepository, _ notificationRepository.NotificationRepository) error {
		if _, err := apps.GetApplication(ctx, userID, req.ApplicationID); err != nil {
			return err
		}
		if err := interviews.CreateInterview(ctx, interview); err != nil {
			return err
		}
		return apps.UpdateApplication(ctx, userID, req.ApplicationID, map[string]interface{}{
			"status":           entity.StatusInterview,
			"last_activity_at": now,
		})
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errApplicationNotFound
		}
		zlog.Error("create interview failed", zap.Error(err), zap.String("application_id", req.ApplicationID))
		return nil, xerr.ErrServerError
	}
	return interview, nil
}

func (s *interviewServiceImpl) Update(ctx context.Context, userID, id string, req request.UpdateInterviewRequest) (*entity.Interview, error) {
	if _, err := s.interviews.GetInterview(ctx, userID, id); err != nil {
		return nil, s.mapErr(err, id)
	}

	fields := map[string]interface{}{}
	if req.RoundNumber != nil {
		fields["round_number"] = *req.RoundNumber
	}
	if req.Type != nil {
		fields["type"] = *req.Type
	}
	if req.ScheduledAt != nil {
		fields["scheduled_at"] = *req.ScheduledAt
	}
	if req.Result != nil {
		fields["result"] = *req.Result
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}
	if len(fields) > 0 {
		if err := s.interviews.UpdateInterview(ctx, id, fields); err != nil {
			return nil, s.mapErr(err, id)
		}
	}

	updated, err := s.interviews.GetInterview(ctx, userID, id)
	if err != nil {
		return nil, s.mapErr(err, id)
	}
	return updated, nil
}

func (s *interviewServiceImpl) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.interviews.GetInterview(ctx, userID, id); err != nil {
		return s.mapErr(err, id)
	}
	if err := s.interviews.DeleteInterview(ctx, id); err != nil {
		return s.mapErr(err, id)
	}
	return nil
}

func (s *interviewServiceImpl) mapErr(err error, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errInterviewNotFound
	}
	zlog.Error("interview operation failed", zap.Error(err), zap.String("interview_id", id))
	return xerr.ErrServerError
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	notificationService "JobTracker/internal/modules/notification/application/service"
	notificationRepository "JobTracker/internal/modules/notification/domain/repository"
	"JobTracker/internal/modules/reminder/domain/entity"
	"JobTracker/internal/modules/reminder/domain/repository"
	"JobTracker/internal/modules/reminder/domain/rule"
	"JobTracker/pkg/clock"
	"JobTracker/pkg/redis"
	"JobTracker/pkg/zlog"

	"go.uber.org/zap"
)

const LockKey = "jobtracker:reminder:scan"

// ErrScanInProgress 另一个扫描正在进行
var ErrScanInProgress = errors.New("reminder scan already in progress")

// Locker 分布式锁，返回释放函数
type Locker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (func(), error)
}

type RunResult struct {
	Scanned   int
	Processed int
	Failed    int
	Timestamp time.Time
}

type ReminderService interface {
	// Scan 只读，取数失败直接返回错误
	Scan(ctx context.Context) ([]*entity.Candidate, error)
	// Process 逐个处理候选，单个失败记录日志后继续
	Process(ctx context.Context, candidates []*entity.Candidate) (processed int, failed int)
	Run(ctx context.Context) (*RunResult, error)
}

type reminderServiceImpl struct {
	repo    repository.ReminderRepository
	uow     repository.ReminderUnitOfWork
	sink    notificationService.Sink
	clock   clock.Clock
	locker  Locker
	lockTTL time.Duration
}

// NewReminderService locker 为 nil 时不加锁
func NewReminderService(repo repository.ReminderRepository, uow repository.ReminderUnitOfWork, sink notificationService.Sink, clk clock.Clock, locker Locker, lockTTL time.Duration) ReminderService {
	if lockTTL <= 0 {
		lockTTL = 10 * time.Minute
	}
	return &reminderServiceImpl{repo: repo, uow: uow, sink: sink, clock: clk, locker: locker, lockTTL: lockTTL}
}

func (s *reminderServiceImpl) Scan(ctx context.Context) ([]*entity.Candidate, error) {
	rows, err := s.repo.FindReminderCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch reminder candidates: %w", err)
	}

	now := s.clock.Now()
	candidates := make([]*entity.Candidate, 0, len(rows))
	for _, row := range rows {
		if c, ok := rule.Classify(row, now); ok {
			candidates = append(candidates, c)
		}
	}
	zlog.Info("reminder scan finished", zap.Int("fetched", len(rows)), zap.Int("candidates", len(candidates)))
	return candidates, nil
}

func (s *reminderServiceImpl) Process(ctx context.Context, candidates []*entity.Candidate) (int, int) {
	processed, failed := 0, 0
	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			// 未处理的候选下次扫描会重新判断
			zlog.Warn("reminder dispatch interrupted", zap.Error(err), zap.Int("remaining", len(candidates)-processed-failed))
			break
		}

		now := s.clock.Now()
		notes := c.Notifications(now)
		err := s.uow.Transaction(ctx, func(notifications notificationRepository.NotificationRepository, marker repository.ReminderMarker) error {
			for _, n := range notes {
				if err := notifications.CreateNotification(ctx, n); err != nil {
					return err
				}
			}
			return marker.MarkReminded(ctx, c.ApplicationID, now)
		})
		if err != nil {
			failed++
			zlog.Error("reminder dispatch failed",
				zap.Error(err),
				zap.String("application_id", c.ApplicationID),
				zap.String("user_id", c.UserID),
				zap.Int("level", int(c.Level)))
			continue
		}

		s.sink.Deliver(ctx, notes...)
		processed++
	}
	return processed, failed
}

func (s *reminderServiceImpl) Run(ctx context.Context) (*RunResult, error) {
	if s.locker != nil {
		unlock, err := s.locker.TryLock(ctx, LockKey, s.lockTTL)
		if err != nil {
			if errors.Is(err, redis.ErrLockHeld) {
				return nil, ErrScanInProgress
			}
			return nil, fmt.Errorf("acquire reminder lock: %w", err)
		}
		defer unlock()
	}

	candidates, err := s.Scan(ctx)
	if err != nil {
		zlog.Error("reminder scan failed", zap.Error(err))
		return nil, err
	}
	processed, failed := s.Process(ctx, candidates)

	res := &RunResult{
		Scanned:   len(candidates),
		Processed: processed,
		Failed:    failed,
		Timestamp: s.clock.Now(),
	}
	zlog.Info("reminder run finished",
		zap.Int("scanned", res.Scanned),
		zap.Int("processed", res.Processed),
		zap.Int("failed", res.Failed))
	return res, nil
}

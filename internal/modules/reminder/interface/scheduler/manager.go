package scheduler

import (
	"context"
	"errors"
	"time"

	"JobTracker/internal/modules/reminder/application/service"
	"JobTracker/pkg/zlog"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// SchedulerManager 进程内的每日提醒扫描
type SchedulerManager struct {
	cron    *cron.Cron
	svc     service.ReminderService
	expr    string
	timeout time.Duration
}

func NewSchedulerManager(svc service.ReminderService, expr string, loc *time.Location, timeout time.Duration) *SchedulerManager {
	if loc == nil {
		loc = time.Local
	}
	if timeout <= 0 {
		timeout = 10 * time.Minute
	}
	return &SchedulerManager{
		// 使用标准5段Cron表达式（不含秒）
		cron:    cron.New(cron.WithLocation(loc)),
		svc:     svc,
		expr:    expr,
		timeout: timeout,
	}
}

func (m *SchedulerManager) Start() error {
	if _, err := m.cron.AddFunc(m.expr, m.tick); err != nil {
		return err
	}
	m.cron.Start()
	zlog.Info("reminder scheduler started", zap.String("cron", m.expr))
	return nil
}

// Stop 等待正在执行的扫描结束
func (m *SchedulerManager) Stop() {
	<-m.cron.Stop().Done()
}

func (m *SchedulerManager) tick() {
	defer func() {
		if r := recover(); r != nil {
			zlog.Error("reminder tick panic", zap.Any("panic", r))
		}
	}()
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	res, err := m.svc.Run(ctx)
	if err != nil {
		if errors.Is(err, service.ErrScanInProgress) {
			zlog.Info("reminder tick skipped, scan in progress")
			return
		}
		zlog.Error("reminder tick failed", zap.Error(err))
		return
	}
	zlog.Info("reminder tick done", zap.Int("scanned", res.Scanned), zap.Int("processed", res.Processed))
}

package service

import (
	"context"
	"math"
	"sort"
	"time"

	"JobTracker/internal/modules/analytics/application/dto/respond"
	"JobTracker/internal/modules/analytics/domain/repository"
	applicationEntity "JobTracker/internal/modules/application/domain/entity"
	"JobTracker/pkg/clock"
	"JobTracker/pkg/xerr"
	"JobTracker/pkg/zlog"

	"go.uber.org/zap"
)

const (
	followUpAfter = 14 * 24 * time.Hour
	monthsShown   = 12
	recentShown   = 5
)

type AnalyticsService interface {
	Analytics(ctx context.Context, userID string) (*respond.AnalyticsRespond, error)
	Dashboard(ctx context.Context, userID string) (*respond.DashboardRespond, error)
}

type analyticsServiceImpl struct {
	repo  repository.AnalyticsRepository
	clock clock.Clock
}

func NewAnalyticsService(repo repository.AnalyticsRepository, clk clock.Clock) AnalyticsService {
	return &analyticsServiceImpl{repo: repo, clock: clk}
}

func rate(n, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(n) / float64(total) * 100))
}

func (s *analyticsServiceImpl) Analytics(ctx context.Context, userID string) (*respond.AnalyticsRespond, error) {
	fail := func(step string, err error) (*respond.AnalyticsRespond, error) {
		zlog.Error("analytics query failed", zap.String("step", step), zap.Error(err), zap.String("user_id", userID))
		return nil, xerr.ErrServerError
	}

	total, err := s.repo.CountActive(ctx, userID)
	if err != nil {
		return fail("total", err)
	}
	byStatus, err := s.repo.CountBy(ctx, userID, "status")
	if err != nil {
		return fail("status", err)
	}
	byPlatform, err := s.repo.CountBy(ctx, userID, "platform")
	if err != nil {
		return fail("platform", err)
	}
	byJobType, err := s.repo.CountBy(ctx, userID, "job_type")
	if err != nil {
		return fail("job_type", err)
	}
	dates, err := s.repo.AppliedDates(ctx, userID)
	if err != nil {
		return fail("monthly", err)
	}
	interviews, err := s.repo.CountInterviews(ctx, userID)
	if err != nil {
		return fail("interviews", err)
	}
	now := s.clock.Now()
	followUp, err := s.repo.CountNeedsFollowUp(ctx, userID, now.Add(-followUpAfter))
	if err != nil {
		return fail("follow_up", err)
	}
	recent, err := s.repo.Recent(ctx, userID, recentShown)
	if err != nil {
		return fail("recent", err)
	}

	res := &respond.AnalyticsRespond{
		TotalApps:      total,
		StatusCounts:   make([]respond.StatusCount, 0, len(byStatus)),
		PlatformCounts: make([]respond.PlatformCount, 0, len(byPlatform)),
		JobTypeCounts:  make([]respond.JobTypeCount, 0, len(byJobType)),
		MonthlyApps:    monthly(dates, now.Location()),
		InterviewCount: interviews,
		NeedsFollowUp:  followUp,
		RecentApps:     recent,
	}
	for _, g := range byStatus {
		res.StatusCounts = append(res.StatusCounts, respond.StatusCount{Status: g.Key, Count: g.Count})
	}
	for _, g := range byPlatform {
		res.PlatformCounts = append(res.PlatformCounts, respond.PlatformCount{Platform: g.Key, Count: g.Count})
	}
	for _, g := range byJobType {
		res.JobTypeCounts = append(res.JobTypeCounts, respond.JobTypeCount{JobType: g.Key, Count: g.Count})
	}
	if res.RecentApps == nil {
		res.RecentApps = []repository.RecentApplication{}
	}

	res.OfferCount = res.StatusCount(string(applicationEntity.StatusOffer))
	res.RejectedCount = res.StatusCount(string(applicationEntity.StatusRejected))
	res.GhostedCount = res.StatusCount(string(applicationEntity.StatusGhosted))
	res.InterviewConversionRate = rate(interviews, total)
	res.OfferRate = rate(res.OfferCount, total)
	res.RejectionRate = rate(res.RejectedCount, total)
	res.GhostedRate = rate(res.GhostedCount, total)
	return res, nil
}

// monthly 按月份计数，只返回有投递的月份，最新的在前，最多 12 个
func monthly(dates []time.Time, loc *time.Location) []respond.MonthCount {
	counts := map[string]int{}
	for _, d := range dates {
		if d.IsZero() {
			continue
		}
		counts[d.In(loc).Format("2006-01")]++
	}
	out := make([]respond.MonthCount, 0, len(counts))
	for month, n := range counts {
		out = append(out, respond.MonthCount{Month: month, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month > out[j].Month })
	if len(out) > monthsShown {
		out = out[:monthsShown]
	}
	return out
}

func (s *analyticsServiceImpl) Dashboard(ctx context.Context, userID string) (*respond.DashboardRespond, error) {
	a, err := s.Analytics(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &respond.DashboardRespond{Analytics: a, Insights: Insights(a)}, nil
}

package service

import (
	"context"
	"testing"
	"time"

	"JobTracker/internal/modules/analytics/infrastructure/persistence"
	applicationEntity "JobTracker/internal/modules/application/domain/entity"
	"JobTracker/internal/testutil"
	"JobTracker/pkg/clock"

	"gorm.io/gorm"
)

var testNow = time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC)

func seed(t *testing.T, db *gorm.DB, id string, status applicationEntity.Status, applied time.Time, inactiveDays int, archived bool) {
	t.Helper()
	app := &applicationEntity.Application{
		ID:             id,
		UserID:         "u1",
		CompanyName:    "Company " + id,
		PositionTitle:  "Engineer",
		Platform:       applicationEntity.PlatformLinkedIn,
		JobType:        applicationEntity.JobTypeRemote,
		Status:         status,
		Priority:       applicationEntity.PriorityMedium,
		AppliedDate:    applied,
		Archived:       archived,
		LastActivityAt: testNow.AddDate(0, 0, -inactiveDays),
		CreatedAt:      applied,
	}
	if err := db.Create(app).Error; err != nil {
		t.Fatalf("seed %s: %v", id, err)
	}
}

func TestAnalyticsAggregates(t *testing.T) {
	db := testutil.OpenDB(t, &applicationEntity.Application{}, &applicationEntity.Interview{})
	may := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	june := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)

	seed(t, db, "a1", applicationEntity.StatusApplied, may, 20, false)
	seed(t, db, "a2", applicationEntity.StatusScreening, may, 3, false)
	seed(t, db, "a3", applicationEntity.StatusOffer, june, 1, false)
	seed(t, db, "a4", applicationEntity.StatusGhosted, june, 30, false)
	seed(t, db, "a5", applicationEntity.StatusApplied, june, 40, true)
	if err := db.Create(&applicationEntity.Interview{ID: "i1", ApplicationID: "a3", RoundNumber: 1,
		Type: applicationEntity.InterviewHR, Result: applicationEntity.ResultPending}).Error; err != nil {
		t.Fatalf("seed interview: %v", err)
	}

	svc := NewAnalyticsService(persistence.NewAnalyticsRepository(db), clock.Fixed(testNow))
	got, err := svc.Analytics(context.Background(), "u1")
	if err != nil {
		t.Fatalf("analytics: %v", err)
	}
	if got.TotalApps != 4 {
		t.Errorf("archived application must be excluded, total=%d", got.TotalApps)
	}
	if got.OfferCount != 1 || got.GhostedCount != 1 || got.RejectedCount != 0 {
		t.Errorf("unexpected status counts: %+v", got.StatusCounts)
	}
	if got.OfferRate != 25 || got.GhostedRate != 25 || got.InterviewConversionRate != 25 {
		t.Errorf("unexpected rates offer=%d ghosted=%d interview=%d", got.OfferRate, got.GhostedRate, got.InterviewConversionRate)
	}
	if got.InterviewCount != 1 {
		t.Errorf("expected 1 interview, got %d", got.InterviewCount)
	}
	if got.NeedsFollowUp != 1 {
		t.Errorf("only a1 waits 14+ days, got %d", got.NeedsFollowUp)
	}
	if len(got.MonthlyApps) != 2 || got.MonthlyApps[0].Month != "2024-06" || got.MonthlyApps[0].Count != 2 {
		t.Errorf("unexpected monthly buckets %+v", got.MonthlyApps)
	}
	if len(got.RecentApps) != 4 || (got.RecentApps[0].ID != "a3" && got.RecentApps[0].ID != "a4") {
		t.Errorf("unexpected recent applications %+v", got.RecentApps)
	}
	if len(got.PlatformCounts) != 1 || got.PlatformCounts[0].Count != 4 {
		t.Errorf("unexpected platform counts %+v", got.PlatformCounts)
	}
}

func TestDashboardForEmptyAccount(t *testing.T) {
	db := testutil.OpenDB(t, &applicationEntity.Application{}, &applicationEntity.Interview{})
	svc := NewAnalyticsService(persistence.NewAnalyticsRepository(db), clock.Fixed(testNow))

	got, err := svc.Dashboard(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if got.Analytics.TotalApps != 0 || got.Analytics.OfferRate != 0 {
		t.Errorf("expected zeroed analytics, got %+v", got.Analytics)
	}
	if len(got.Insights) != 1 || got.Insights[0].ID != "get-started" {
		t.Errorf("unexpected insights %+v", got.Insights)
	}
	if got.Analytics.MonthlyApps == nil || got.Analytics.RecentApps == nil {
		t.Error("empty lists must encode as []")
	}
}

func TestMonthlyCapsAtTwelve(t *testing.T) {
	var dates []time.Time
	for i := 0; i < 15; i++ {
		dates = append(dates, time.Date(2023, time.Month(1+i), 1, 0, 0, 0, 0, time.UTC))
	}
	got := monthly(dates, time.UTC)
	if len(got) != 12 {
		t.Fatalf("expected 12 months, got %d", len(got))
	}
	if got[0].Month != "2024-03" || got[11].Month != "2023-04" {
		t.Errorf("unexpected range %s..%s", got[0].Month, got[11].Month)
	}
}

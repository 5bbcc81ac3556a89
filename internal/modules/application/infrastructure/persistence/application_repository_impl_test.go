package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"JobTracker/internal/modules/application/domain/entity"
	"JobTracker/internal/modules/application/domain/repository"
	notificationEntity "JobTracker/internal/modules/notification/domain/entity"
	notificationRepository "JobTracker/internal/modules/notification/domain/repository"
	"JobTracker/internal/testutil"

	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

func seed(t *testing.T, db *gorm.DB, apps ...*entity.Application) {
	t.Helper()
	repo := NewApplicationRepository(db)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, app := range apps {
		if app.Status == "" {
			app.Status = entity.StatusApplied
		}
		if app.Priority == "" {
			app.Priority = entity.PriorityMedium
		}
		if app.Platform == "" {
			app.Platform = entity.PlatformOther
		}
		if app.JobType == "" {
			app.JobType = entity.JobTypeRemote
		}
		app.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		app.UpdatedAt = app.CreatedAt
		app.LastActivityAt = app.CreatedAt
		if err := repo.CreateApplication(context.Background(), app); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
}

func TestListFiltersAndOrdering(t *testing.T) {
	db := testutil.OpenDB(t, &entity.Application{}, &entity.Interview{})
	seed(t, db,
		&entity.Application{UserID: "u1", CompanyName: "Acme", PositionTitle: "SWE", Tags: []string{"Startup", "Referral"}},
		&entity.Application{UserID: "u1", CompanyName: "Globex", PositionTitle: "SRE", Status: entity.StatusScreening, Tags: []string{"MNC"}},
		&entity.Application{UserID: "u1", CompanyName: "Initech", PositionTitle: "PM", Archived: true},
		&entity.Application{UserID: "u2", CompanyName: "Other", PositionTitle: "SWE"},
	)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	list, err := repo.ListApplications(ctx, "u1", repository.ListFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].CompanyName != "Globex" {
		t.Fatalf("expected newest active first, got %d items", len(list))
	}

	list, _ = repo.ListApplications(ctx, "u1", repository.ListFilter{Status: "SCREENING"})
	if len(list) != 1 || list[0].CompanyName != "Globex" {
		t.Errorf("status filter failed: %v", list)
	}

	list, _ = repo.ListApplications(ctx, "u1", repository.ListFilter{Tags: []string{"Referral", "Startup"}})
	if len(list) != 1 || list[0].CompanyName != "Acme" {
		t.Errorf("tag filter failed: %v", list)
	}

	list, _ = repo.ListApplications(ctx, "u1", repository.ListFilter{Archived: true})
	if len(list) != 1 || list[0].CompanyName != "Initech" {
		t.Errorf("archived filter failed: %v", list)
	}

	list, _ = repo.ListApplications(ctx, "u1", repository.ListFilter{Query: "glob"})
	if len(list) != 1 {
		t.Errorf("query filter failed: %v", list)
	}
}

func TestFindDuplicateIgnoresCaseAndArchived(t *testing.T) {
	db := testutil.OpenDB(t, &entity.Application{}, &entity.Interview{})
	seed(t, db,
		&entity.Application{UserID: "u1", CompanyName: "Acme", PositionTitle: "Backend Engineer"},
		&entity.Application{UserID: "u1", CompanyName: "Old Co", PositionTitle: "Dev", Archived: true},
	)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	if _, err := repo.FindDuplicate(ctx, "u1", "ACME", "backend engineer"); err != nil {
		t.Errorf("expected duplicate, got %v", err)
	}
	if _, err := repo.FindDuplicate(ctx, "u1", "old co", "dev"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("archived applications are not duplicates, got %v", err)
	}
	if _, err := repo.FindDuplicate(ctx, "u2", "Acme", "Backend Engineer"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("duplicates are per user, got %v", err)
	}
}

func TestSearchMatchesRecruiterAndNotes(t *testing.T) {
	db := testutil.OpenDB(t, &entity.Application{}, &entity.Interview{})
	seed(t, db,
		&entity.Application{UserID: "u1", CompanyName: "Acme", PositionTitle: "SWE", RecruiterName: strPtr("Jane Doe")},
		&entity.Application{UserID: "u1", CompanyName: "Globex", PositionTitle: "SRE", Notes: strPtr("Talked to JANE at meetup")},
		&entity.Application{UserID: "u1", CompanyName: "Initech", PositionTitle: "PM"},
	)
	list, err := NewApplicationRepository(db).Search(context.Background(), "u1", "jane", 20)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("expected 2 matches, got %d", len(list))
	}
}

func TestSearchTreatsWildcardsLiterally(t *testing.T) {
	db := testutil.OpenDB(t, &entity.Application{}, &entity.Interview{})
	seed(t, db,
		&entity.Application{UserID: "u1", CompanyName: "Acme", PositionTitle: "SWE"},
		&entity.Application{UserID: "u1", CompanyName: "100% Remote Co", PositionTitle: "Go_Dev"},
		&entity.Application{UserID: "u1", CompanyName: "Bang!", PositionTitle: "PM"},
	)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	cases := []struct {
		query string
		want  int
	}{
		{"%", 1},
		{"_", 1},
		{"!", 1},
		{"0% r", 1},
		{"o_d", 1},
		{"go_", 1},
	}
	for _, tc := range cases {
		list, err := repo.Search(ctx, "u1", tc.query, 20)
		if err != nil {
			t.Fatalf("search %q: %v", tc.query, err)
		}
		if len(list) != tc.want {
			t.Errorf("search %q: expected %d matches, got %d", tc.query, tc.want, len(list))
		}
	}

	list, err := repo.ListApplications(ctx, "u1", repository.ListFilter{Query: "_"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].PositionTitle != "Go_Dev" {
		t.Errorf("list filter must treat _ literally, got %d rows", len(list))
	}
}

func TestInterviewsPreloadedByRoundAndScopedByOwner(t *testing.T) {
	db := testutil.OpenDB(t, &entity.Application{}, &entity.Interview{})
	app := &entity.Application{UserID: "u1", CompanyName: "Acme", PositionTitle: "SWE"}
	seed(t, db, app)
	ctx := context.Background()
	interviews := NewInterviewRepository(db)
	for _, round := range []int{2, 1} {
		if err := interviews.CreateInterview(ctx, &entity.Interview{ApplicationID: app.ID, RoundNumber: round, Type: entity.InterviewHR, Result: entity.ResultPending}); err != nil {
			t.Fatalf("create interview: %v", err)
		}
	}

	got, err := NewApplicationRepository(db).GetApplication(ctx, "u1", app.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Interviews) != 2 || got.Interviews[0].RoundNumber != 1 {
		t.Errorf("interviews not ordered by round: %+v", got.Interviews)
	}

	if _, err := interviews.GetInterview(ctx, "u2", got.Interviews[0].ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("other users must not see the interview, got %v", err)
	}
	if _, err := NewApplicationRepository(db).GetApplication(ctx, "u2", app.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("other users must not see the application, got %v", err)
	}
}

func TestUnitOfWorkCommitsStatusChangeWithNotification(t *testing.T) {
	db := testutil.OpenDB(t, &entity.Application{}, &entity.Interview{}, &notificationEntity.Notification{})
	app := &entity.Application{UserID: "u1", CompanyName: "Acme", PositionTitle: "SWE"}
	seed(t, db, app)
	ctx := context.Background()

	err := NewApplicationUnitOfWork(db).Transaction(ctx, func(apps repository.ApplicationRepository, _ repository.InterviewRepository, notifications notificationRepository.NotificationRepository) error {
		if err := apps.UpdateApplication(ctx, "u1", app.ID, map[string]interface{}{"status": entity.StatusOffer}); err != nil {
			return err
		}
		return notifications.CreateNotification(ctx, &notificationEntity.Notification{UserID: "u1", Title: "Status Updated", Type: notificationEntity.TypeStatusChange})
	})
	if err != nil {
		t.Fatalf("tx: %v", err)
	}
	got, _ := NewApplicationRepository(db).GetApplication(ctx, "u1", app.ID)
	if got.Status != entity.StatusOffer {
		t.Errorf("status not committed: %s", got.Status)
	}
	var count int64
	db.Model(&notificationEntity.Notification{}).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 notification, got %d", count)
	}
}

func TestDeleteApplicationScopedByUser(t *testing.T) {
	db := testutil.OpenDB(t, &entity.Application{}, &entity.Interview{})
	app := &entity.Application{UserID: "u1", CompanyName: "Acme", PositionTitle: "SWE"}
	seed(t, db, app)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	if err := repo.DeleteApplication(ctx, "u2", app.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected not found for other user, got %v", err)
	}
	if err := repo.DeleteApplication(ctx, "u1", app.ID); err != nil {
		t.Errorf("delete: %v", err)
	}
}

package entity

import (
	"testing"
	"time"

	notificationEntity "JobTracker/internal/modules/notification/domain/entity"
)

func TestNotificationsPerLevel(t *testing.T) {
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	c := Candidate{ApplicationID: "a1", UserID: "u1", CompanyName: "Acme", PositionTitle: "SWE", DaysInactive: 15}

	c.Level = LevelFirst
	ns := c.Notifications(now)
	if len(ns) != 1 || ns[0].Type != notificationEntity.TypeFollowUp || ns[0].Title != "Follow-up Reminder" {
		t.Fatalf("unexpected level 1 notifications %+v", ns)
	}
	if ns[0].Message != "No updates on your application at Acme (SWE) for 15 days. Consider following up!" {
		t.Errorf("unexpected message %q", ns[0].Message)
	}
	if ns[0].Link == nil || *ns[0].Link != "/applications?id=a1" {
		t.Errorf("unexpected link %v", ns[0].Link)
	}

	c.Level = LevelSecond
	ns = c.Notifications(now)
	if len(ns) != 1 || ns[0].Title != "Second Reminder" || ns[0].Type != notificationEntity.TypeFollowUp {
		t.Fatalf("unexpected level 2 notifications %+v", ns)
	}

	c.Level = LevelGhosted
	ns = c.Notifications(now)
	if len(ns) != 2 {
		t.Fatalf("level 3 must produce two notifications, got %d", len(ns))
	}
	if ns[0].Type != notificationEntity.TypeReminder || ns[0].Title != "Likely Ghosted" {
		t.Errorf("unexpected ghosted notification %+v", ns[0])
	}
	if ns[1].Type != notificationEntity.TypeStatusChange || ns[1].Message != `Consider changing Acme - SWE status to "Ghosted"` {
		t.Errorf("unexpected suggestion %+v", ns[1])
	}

	c.Level = LevelNone
	if ns := c.Notifications(now); ns != nil {
		t.Errorf("no notifications expected, got %+v", ns)
	}
}

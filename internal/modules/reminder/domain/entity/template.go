package entity

import (
	"fmt"
	"time"

	notificationEntity "JobTracker/internal/modules/notification/domain/entity"
)

// Notifications 按等级生成要写入的通知，第三级额外附带一条改状态建议
func (c *Candidate) Notifications(now time.Time) []*notificationEntity.Notification {
	link := notificationEntity.ApplicationLink(c.ApplicationID)
	main := &notificationEntity.Notification{
		UserID:    c.UserID,
		Link:      link,
		CreatedAt: now,
	}

	switch c.Level {
	case LevelFirst:
		main.Title = "Follow-up Reminder"
		main.Type = notificationEntity.TypeFollowUp
		main.Message = fmt.Sprintf("No updates on your application at %s (%s) for %d days. Consider following up!",
			c.CompanyName, c.PositionTitle, c.DaysInactive)
	case LevelSecond:
		main.Title = "Second Reminder"
		main.Type = notificationEntity.TypeFollowUp
		main.Message = fmt.Sprintf("Still no response from %s for %s. Consider sending another follow-up.",
			c.CompanyName, c.PositionTitle)
	case LevelGhosted:
		main.Title = "Likely Ghosted"
		main.Type = notificationEntity.TypeReminder
		main.Message = fmt.Sprintf("%s hasn't responded for %d days regarding %s. Consider marking as ghosted.",
			c.CompanyName, c.DaysInactive, c.PositionTitle)
	default:
		return nil
	}

	out := []*notificationEntity.Notification{main}
	if c.Level == LevelGhosted {
		out = append(out, &notificationEntity.Notification{
			UserID:    c.UserID,
			Title:     "Status Update Suggested",
			Message:   fmt.Sprintf("Consider changing %s - %s status to \"Ghosted\"", c.CompanyName, c.PositionTitle),
			Type:      notificationEntity.TypeStatusChange,
			Link:      notificationEntity.ApplicationLink(c.ApplicationID),
			CreatedAt: now,
		})
	}
	return out
}

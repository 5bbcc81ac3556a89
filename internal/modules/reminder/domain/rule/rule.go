// Package rule 提醒引擎的纯函数规则，不依赖存储和时钟
package rule

import (
	"time"

	applicationEntity "JobTracker/internal/modules/application/domain/entity"
	"JobTracker/internal/modules/reminder/domain/entity"
)

const (
	day = 24 * time.Hour

	// 距上次提醒的天数：>=7 第二次提醒，>=14 建议标记为 ghosted
	secondReminderAfter = 7
	ghostedAfter        = 14
)

// DaysInactive 向下取整的整天数，now 早于 last 时按 0 处理
func DaysInactive(last, now time.Time) int {
	d := now.Sub(last)
	if d < 0 {
		return 0
	}
	return int(d / day)
}

// SmartReminderDays 按优先级和标签决定首次提醒的天数，先命中先返回
func SmartReminderDays(tags []string, priority applicationEntity.Priority) int {
	if priority == applicationEntity.PriorityHigh {
		return 7
	}
	switch {
	case contains(tags, "Referral"):
		return 10
	case contains(tags, "Startup"):
		return 14
	case contains(tags, "MNC"):
		return 30
	}
	return 30
}

// EffectiveThreshold 取智能天数和用户设置中较小的一个；用户未设置时只看智能天数
func EffectiveThreshold(tags []string, priority applicationEntity.Priority, userDays int) int {
	smart := SmartReminderDays(tags, priority)
	if userDays <= 0 {
		return smart
	}
	return min(smart, userDays)
}

// LevelFor 根据上次提醒时间推导等级，LevelNone 表示距上次提醒太近
func LevelFor(reminderSentAt *time.Time, now time.Time) entity.Level {
	if reminderSentAt == nil {
		return entity.LevelFirst
	}
	since := DaysInactive(*reminderSentAt, now)
	switch {
	case since >= ghostedAfter:
		return entity.LevelGhosted
	case since >= secondReminderAfter:
		return entity.LevelSecond
	default:
		return entity.LevelNone
	}
}

// Eligible 扫描条件：未归档、开启自动提醒、等待回复中、用户总开关打开
func Eligible(row *entity.Row) bool {
	if row.Archived || !row.AutoReminderEnabled || !row.ReminderEnabled {
		return false
	}
	for _, s := range applicationEntity.AwaitingResponse {
		if row.Status == s {
			return true
		}
	}
	return false
}

// Classify 判断一行是否需要提醒，需要时返回候选
func Classify(row *entity.Row, now time.Time) (*entity.Candidate, bool) {
	if !Eligible(row) {
		return nil, false
	}
	days := DaysInactive(row.LastActivityAt, now)
	if days < EffectiveThreshold(row.Tags, row.Priority, row.ReminderDays) {
		return nil, false
	}
	level := LevelFor(row.ReminderSentAt, now)
	if level == entity.LevelNone {
		return nil, false
	}
	return &entity.Candidate{
		ApplicationID: row.ApplicationID,
		UserID:        row.UserID,
		CompanyName:   row.CompanyName,
		PositionTitle: row.PositionTitle,
		DaysInactive:  days,
		Level:         level,
	}, true
}

func contains(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

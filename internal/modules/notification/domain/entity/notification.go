package entity

import "time"

// Type 通知类型
type Type string

const (
	TypeFollowUp     Type = "FOLLOW_UP"
	TypeReminder     Type = "REMINDER"
	TypeStatusChange Type = "STATUS_CHANGE"
	TypeInterview    Type = "INTERVIEW"
	TypeSystem       Type = "SYSTEM"
)

// Notification 站内通知，提醒引擎只写不读
type Notification struct {
	ID        string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	UserID    string    `gorm:"column:user_id;type:char(36);index:idx_notification_user_read;not null" json:"userId"`
	Title     string    `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Message   string    `gorm:"column:message;type:text;not null" json:"message"`
	Type      Type      `gorm:"column:type;type:varchar(30);not null" json:"type"`
	Link      *string   `gorm:"column:link;type:varchar(500)" json:"link,omitempty"`
	IsRead    bool      `gorm:"column:is_read;index:idx_notification_user_read;not null;default:false" json:"isRead"`
	CreatedAt time.Time `gorm:"column:created_at;index;not null" json:"createdAt"`
}

func (Notification) TableName() string {
	return "notification"
}

// ApplicationLink 通知跳转到申请详情的链接
func ApplicationLink(applicationID string) *string {
	l := "/applications?id=" + applicationID
	return &l
}

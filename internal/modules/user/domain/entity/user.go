package entity

import "time"

const (
	DefaultReminderDays = 7
	DefaultReminderTime = "09:00"
)

type User struct {
	ID                   string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	Name                 string    `gorm:"column:name;type:varchar(100)" json:"name"`
	Email                string    `gorm:"column:email;type:varchar(200);uniqueIndex;not null" json:"email"`
	HashedPassword       *string   `gorm:"column:hashed_password;type:varchar(100)" json:"-"`
	Image                *string   `gorm:"column:image;type:varchar(500)" json:"image,omitempty"`
	ReminderEnabled      bool      `gorm:"column:reminder_enabled;not null" json:"reminderEnabled"`
	EmailReminders       bool      `gorm:"column:email_reminders;not null" json:"emailReminders"`
	DesktopNotifications bool      `gorm:"column:desktop_notifications;not null" json:"desktopNotifications"`
	SmsReminders         bool      `gorm:"column:sms_reminders;not null" json:"smsReminders"`
	ReminderDays         int       `gorm:"column:reminder_days;not null" json:"reminderDays"`
	ReminderTime         string    `gorm:"column:reminder_time;type:varchar(5);not null" json:"reminderTime"`
	CreatedAt            time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt            time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

// ApplyDefaultSettings 新用户的默认提醒设置
func (u *User) ApplyDefaultSettings() {
	u.ReminderEnabled = true
	u.EmailReminders = true
	u.DesktopNotifications = true
	if u.ReminderDays == 0 {
		u.ReminderDays = DefaultReminderDays
	}
	if u.ReminderTime == "" {
		u.ReminderTime = DefaultReminderTime
	}
}

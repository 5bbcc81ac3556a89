package request

// UpdateSettingsRequest 字段为 nil 表示不修改
type UpdateSettingsRequest struct {
	ReminderEnabled      *bool   `json:"reminderEnabled"`
	EmailReminders       *bool   `json:"emailReminders"`
	DesktopNotifications *bool   `json:"desktopNotifications"`
	SmsReminders         *bool   `json:"smsReminders"`
	ReminderDays         *int    `json:"reminderDays" binding:"omitempty,oneof=7 14 15 30 45"`
	ReminderTime         *string `json:"reminderTime" binding:"omitempty,len=5,datetime=15:04"`
}

var SettingsMessages = map[string]string{
	"ReminderDays": "reminderDays must be one of 7, 14, 15, 30, 45",
	"ReminderTime": "reminderTime must be HH:MM",
}

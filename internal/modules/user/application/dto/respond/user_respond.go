package respond

type RegisterRespond struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

type LoginRespond struct {
	Token string    `json:"token"`
	User  UserBrief `json:"user"`
}

type UserBrief struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Image *string `json:"image,omitempty"`
}

type SettingsRespond struct {
	ReminderEnabled      bool   `json:"reminderEnabled"`
	EmailReminders       bool   `json:"emailReminders"`
	DesktopNotifications bool   `json:"desktopNotifications"`
	SmsReminders         bool   `json:"smsReminders"`
	ReminderDays         int    `json:"reminderDays"`
	ReminderTime         string `json:"reminderTime"`
}

package entity

import (
	"time"

	"gorm.io/datatypes"
)

type Application struct {
	ID                  string                      `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	UserID              string                      `gorm:"column:user_id;type:char(36);index;not null" json:"userId"`
	CompanyName         string                      `gorm:"column:company_name;type:varchar(200);not null" json:"companyName"`
	PositionTitle       string                      `gorm:"column:position_title;type:varchar(200);not null" json:"positionTitle"`
	Platform            Platform                    `gorm:"column:platform;type:varchar(20);not null" json:"platform"`
	JobType             JobType                     `gorm:"column:job_type;type:varchar(10);not null" json:"jobType"`
	SalaryMin           *int                        `gorm:"column:salary_min" json:"salaryMin"`
	SalaryMax           *int                        `gorm:"column:salary_max" json:"salaryMax"`
	Location            *string                     `gorm:"column:location;type:varchar(200)" json:"location"`
	Status              Status                      `gorm:"column:status;type:varchar(20);index;not null" json:"status"`
	Priority            Priority                    `gorm:"column:priority;type:varchar(10);not null" json:"priority"`
	AppliedDate         time.Time                   `gorm:"column:applied_date" json:"appliedDate"`
	FollowUpDate        *time.Time                  `gorm:"column:follow_up_date" json:"followUpDate"`
	RecruiterName       *string                     `gorm:"column:recruiter_name;type:varchar(200)" json:"recruiterName"`
	RecruiterEmail      *string                     `gorm:"column:recruiter_email;type:varchar(200)" json:"recruiterEmail"`
	RecruiterPhone      *string                     `gorm:"column:recruiter_phone;type:varchar(50)" json:"recruiterPhone"`
	JobLink             *string                     `gorm:"column:job_link;type:varchar(1000)" json:"jobLink"`
	ResumeVersion       *string                     `gorm:"column:resume_version;type:varchar(100)" json:"resumeVersion"`
	Notes               *string                     `gorm:"column:notes;type:text" json:"notes"`
	Tags                datatypes.JSONSlice[string] `gorm:"column:tags" json:"tags"`
	Archived            bool                        `gorm:"column:archived;index;not null" json:"archived"`
	AutoReminderEnabled bool                        `gorm:"column:auto_reminder_enabled;not null" json:"autoReminderEnabled"`
	LastActivityAt      time.Time                   `gorm:"column:last_activity_at;not null" json:"lastActivityAt"`
	ReminderSentAt      *time.Time                  `gorm:"column:reminder_sent_at" json:"reminderSentAt"`
	CreatedAt           time.Time                   `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt           time.Time                   `gorm:"column:updated_at" json:"updatedAt"`
	Interviews          []Interview                 `gorm:"foreignKey:ApplicationID" json:"interviews"`
}

func (Application) TableName() string {
	return "applications"
}

// HasTag 标签精确匹配
func (a *Application) HasTag(tag string) bool {
	for _, t := range a.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasAllTags 筛选时要求全部命中
func (a *Application) HasAllTags(tags []string) bool {
	for _, t := range tags {
		if !a.HasTag(t) {
			return false
		}
	}
	return true
}

type Interview struct {
	ID            string          `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	ApplicationID string          `gorm:"column:application_id;type:char(36);index;not null" json:"applicationId"`
	RoundNumber   int             `gorm:"column:round_number;not null" json:"roundNumber"`
	Type          InterviewType   `gorm:"column:type;type:varchar(20);not null" json:"type"`
	ScheduledAt   *time.Time      `gorm:"column:scheduled_at" json:"scheduledAt"`
	Result        InterviewResult `gorm:"column:result;type:varchar(10);not null" json:"result"`
	Notes         *string         `gorm:"column:notes;type:text" json:"notes"`
	CreatedAt     time.Time       `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt     time.Time       `gorm:"column:updated_at" json:"updatedAt"`
}

func (Interview) TableName() string {
	return "interviews"
}

package request

import "time"

type CreateApplicationRequest struct {
	CompanyName         string     `json:"companyName" binding:"required,max=200"`
	PositionTitle       string     `json:"positionTitle" binding:"required,max=200"`
	Platform            string     `json:"platform" binding:"omitempty,oneof=LINKEDIN INDEED REFERRAL DIRECT GLASSDOOR ANGELLIST COMPANY_WEBSITE OTHER"`
	JobType             string     `json:"jobType" binding:"omitempty,oneof=REMOTE HYBRID ONSITE"`
	SalaryMin           *int       `json:"salaryMin" binding:"omitempty,min=0"`
	SalaryMax           *int       `json:"salaryMax" binding:"omitempty,min=0"`
	Location            *string    `json:"location" binding:"omitempty,max=200"`
	Status              string     `json:"status" binding:"omitempty,oneof=APPLIED SCREENING INTERVIEW OFFER REJECTED GHOSTED NO_CONFIRMATION"`
	Priority            string     `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	AppliedDate         *time.Time `json:"appliedDate"`
	FollowUpDate        *time.Time `json:"followUpDate"`
	RecruiterName       *string    `json:"recruiterName" binding:"omitempty,max=200"`
	RecruiterEmail      *string    `json:"recruiterEmail" binding:"omitempty,email"`
	RecruiterPhone      *string    `json:"recruiterPhone" binding:"omitempty,max=50"`
	JobLink             *string    `json:"jobLink" binding:"omitempty,url"`
	ResumeVersion       *string    `json:"resumeVersion" binding:"omitempty,max=100"`
	Notes               *string    `json:"notes"`
	Tags                []string   `json:"tags"`
	AutoReminderEnabled *bool      `json:"autoReminderEnabled"`
}

// UpdateApplicationRequest 部分更新，nil 表示不修改
type UpdateApplicationRequest struct {
	CompanyName         *string    `json:"companyName" binding:"omitempty,min=1,max=200"`
	PositionTitle       *string    `json:"positionTitle" binding:"omitempty,min=1,max=200"`
	Platform            *string    `json:"platform" binding:"omitempty,oneof=LINKEDIN INDEED REFERRAL DIRECT GLASSDOOR ANGELLIST COMPANY_WEBSITE OTHER"`
	JobType             *string    `json:"jobType" binding:"omitempty,oneof=REMOTE HYBRID ONSITE"`
	SalaryMin           *int       `json:"salaryMin" binding:"omitempty,min=0"`
	SalaryMax           *int       `json:"salaryMax" binding:"omitempty,min=0"`
	Location            *string    `json:"location" binding:"omitempty,max=200"`
	Status              *string    `json:"status" binding:"omitempty,oneof=APPLIED SCREENING INTERVIEW OFFER REJECTED GHOSTED NO_CONFIRMATION"`
	Priority            *string    `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	AppliedDate         *time.Time `json:"appliedDate"`
	FollowUpDate        *time.Time `json:"followUpDate"`
	RecruiterName       *string    `json:"recruiterName" binding:"omitempty,max=200"`
	RecruiterEmail      *string    `json:"recruiterEmail" binding:"omitempty,email"`
	RecruiterPhone      *string    `json:"recruiterPhone" binding:"omitempty,max=50"`
	JobLink             *string    `json:"jobLink" binding:"omitempty,url"`
	ResumeVersion       *string    `json:"resumeVersion" binding:"omitempty,max=100"`
	Notes               *string    `json:"notes"`
	Tags                []string   `json:"tags"`
	Archived            *bool      `json:"archived"`
	AutoReminderEnabled *bool      `json:"autoReminderEnabled"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=APPLIED SCREENING INTERVIEW OFFER REJECTED GHOSTED NO_CONFIRMATION"`
}

type ArchiveRequest struct {
	Archived *bool `json:"archived" binding:"required"`
}

type ListApplicationsRequest struct {
	Archived bool     `form:"archived"`
	Status   string   `form:"status"`
	Platform string   `form:"platform"`
	JobType  string   `form:"jobType"`
	Priority string   `form:"priority"`
	Tags     []string `form:"tags"`
	Query    string   `form:"query" binding:"max=200"`
}

type QuickAddRequest struct {
	Text string `json:"text" binding:"required,max=500"`
}

// ImportRequest 每条记录单独校验，失败的不影响其它
type ImportRequest struct {
	Applications []CreateApplicationRequest `json:"applications" binding:"required"`
}

// ApplicationMessages 校验失败时返回给前端的提示
var ApplicationMessages = map[string]string{
	"CompanyName.required":   "Company name is required",
	"PositionTitle.required": "Position title is required",
	"CompanyName.min":        "Company name is required",
	"PositionTitle.min":      "Position title is required",
	"RecruiterEmail":         "Invalid recruiter email",
	"JobLink":                "Invalid job link",
	"SalaryMin":              "Salary must be a positive number",
	"SalaryMax":              "Salary must be a positive number",
}

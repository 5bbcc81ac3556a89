package entity

type Status string

const (
	StatusApplied        Status = "APPLIED"
	StatusScreening      Status = "SCREENING"
	StatusInterview      Status = "INTERVIEW"
	StatusOffer          Status = "OFFER"
	StatusRejected       Status = "REJECTED"
	StatusGhosted        Status = "GHOSTED"
	StatusNoConfirmation Status = "NO_CONFIRMATION"
)

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

type Platform string

const (
	PlatformLinkedIn       Platform = "LINKEDIN"
	PlatformIndeed         Platform = "INDEED"
	PlatformReferral       Platform = "REFERRAL"
	PlatformDirect         Platform = "DIRECT"
	PlatformGlassdoor      Platform = "GLASSDOOR"
	PlatformAngelList      Platform = "ANGELLIST"
	PlatformCompanyWebsite Platform = "COMPANY_WEBSITE"
	PlatformOther          Platform = "OTHER"
)

type JobType string

const (
	JobTypeRemote JobType = "REMOTE"
	JobTypeHybrid JobType = "HYBRID"
	JobTypeOnsite JobType = "ONSITE"
)

type InterviewType string

const (
	InterviewHR           InterviewType = "HR"
	InterviewTechnical    InterviewType = "TECHNICAL"
	InterviewManagerial   InterviewType = "MANAGERIAL"
	InterviewAssignment   InterviewType = "ASSIGNMENT"
	InterviewCultureFit   InterviewType = "CULTURE_FIT"
	InterviewSystemDesign InterviewType = "SYSTEM_DESIGN"
)

type InterviewResult string

const (
	ResultPending InterviewResult = "PENDING"
	ResultPassed  InterviewResult = "PASSED"
	ResultFailed  InterviewResult = "FAILED"
)

// AwaitingResponse 尚未得到公司回复的状态，提醒和跟进统计只看这两种
var AwaitingResponse = []Status{StatusApplied, StatusScreening}

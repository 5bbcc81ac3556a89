package respond

import "JobTracker/internal/modules/analytics/domain/repository"

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type PlatformCount struct {
	Platform string `json:"platform"`
	Count    int    `json:"count"`
}

type JobTypeCount struct {
	JobType string `json:"jobType"`
	Count   int    `json:"count"`
}

type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type AnalyticsRespond struct {
	TotalApps               int                            `json:"totalApps"`
	StatusCounts            []StatusCount                  `json:"statusCounts"`
	PlatformCounts          []PlatformCount                `json:"platformCounts"`
	JobTypeCounts           []JobTypeCount                 `json:"jobTypeCounts"`
	MonthlyApps             []MonthCount                   `json:"monthlyApps"`
	InterviewConversionRate int                            `json:"interviewConversionRate"`
	OfferRate               int                            `json:"offerRate"`
	RejectionRate           int                            `json:"rejectionRate"`
	GhostedRate             int                            `json:"ghostedRate"`
	OfferCount              int                            `json:"offerCount"`
	InterviewCount          int                            `json:"interviewCount"`
	RejectedCount           int                            `json:"rejectedCount"`
	GhostedCount            int                            `json:"ghostedCount"`
	NeedsFollowUp           int                            `json:"needsFollowUp"`
	RecentApps              []repository.RecentApplication `json:"recentApps"`
}

// StatusCount 取某个状态的数量，没有时为 0
func (a *AnalyticsRespond) StatusCount(status string) int {
	for _, s := range a.StatusCounts {
		if s.Status == status {
			return s.Count
		}
	}
	return 0
}

type Insight struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Emoji       string `json:"emoji"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
}

type DashboardRespond struct {
	Analytics *AnalyticsRespond `json:"analytics"`
	Insights  []Insight         `json:"insights"`
}

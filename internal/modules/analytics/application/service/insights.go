package service

import (
	"fmt"
	"sort"

	"JobTracker/internal/modules/analytics/application/dto/respond"
	applicationEntity "JobTracker/internal/modules/application/domain/entity"
)

const maxInsights = 4

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// Insights 根据统计结果生成仪表盘建议，按优先级排序后取前 4 条
func Insights(a *respond.AnalyticsRespond) []respond.Insight {
	var out []respond.Insight

	if a.NeedsFollowUp > 0 {
		out = append(out, respond.Insight{
			ID:          "follow-up",
			Type:        "action",
			Emoji:       "📬",
			Title:       fmt.Sprintf("Follow up with %d %s", a.NeedsFollowUp, plural(a.NeedsFollowUp, "company", "companies")),
			Description: fmt.Sprintf("%d %s been waiting 14+ days. A polite follow-up can boost your chances.", a.NeedsFollowUp, plural(a.NeedsFollowUp, "application has", "applications have")),
			Priority:    1,
		})
	}

	if a.TotalApps >= 5 {
		if a.InterviewConversionRate >= 30 {
			out = append(out, respond.Insight{
				ID:          "interview-rate-good",
				Type:        "success",
				Emoji:       "🔥",
				Title:       fmt.Sprintf("Interview rate is %d%% — excellent!", a.InterviewConversionRate),
				Description: "You're getting interviews at a great rate. Your resume and targeting are working well.",
				Priority:    3,
			})
		} else if a.InterviewConversionRate < 10 {
			out = append(out, respond.Insight{
				ID:          "interview-rate-low",
				Type:        "tip",
				Emoji:       "💡",
				Title:       "Your interview rate is below 10%",
				Description: "Consider tailoring your resume for each role, or focus on roles that match your strongest skills.",
				Priority:    2,
			})
		}
	}

	if a.OfferCount > 0 {
		out = append(out, respond.Insight{
			ID:          "offer-celebration",
			Type:        "success",
			Emoji:       "🎉",
			Title:       fmt.Sprintf("You have %d %s!", a.OfferCount, plural(a.OfferCount, "offer", "offers")),
			Description: "Congratulations! Take time to evaluate and negotiate. You've earned this.",
			Priority:    1,
		})
	}

	if a.GhostedRate > 30 && a.TotalApps >= 5 {
		out = append(out, respond.Insight{
			ID:          "ghosted-warning",
			Type:        "warning",
			Emoji:       "👻",
			Title:       fmt.Sprintf("%d%% of applications went silent", a.GhostedRate),
			Description: "Try applying directly through company websites and following up after 1 week.",
			Priority:    2,
		})
	}

	if screening := a.StatusCount(string(applicationEntity.StatusScreening)); screening > 3 {
		out = append(out, respond.Insight{
			ID:          "screening-pile-up",
			Type:        "tip",
			Emoji:       "📋",
			Title:       fmt.Sprintf("%d applications stuck in screening", screening),
			Description: "Consider reaching out to recruiters directly to move things forward.",
			Priority:    2,
		})
	}

	switch {
	case a.TotalApps == 0:
		out = append(out, respond.Insight{
			ID:          "get-started",
			Type:        "action",
			Emoji:       "🚀",
			Title:       "Start your job search journey",
			Description: "Add your first application and let us help you stay organized and focused.",
			Priority:    1,
		})
	case a.TotalApps < 5:
		out = append(out, respond.Insight{
			ID:          "build-momentum",
			Type:        "tip",
			Emoji:       "⚡",
			Title:       "Build momentum — aim for 5+ applications",
			Description: "Studies show that applying to at least 5 positions per week gives the best results.",
			Priority:    3,
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority < out[j].Priority })
	if len(out) > maxInsights {
		out = out[:maxInsights]
	}
	if out == nil {
		out = []respond.Insight{}
	}
	return out
}

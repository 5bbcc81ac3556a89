package request

import "time"

type CreateInterviewRequest struct {
	ApplicationID string     `json:"applicationId" binding:"required"`
	RoundNumber   int        `json:"roundNumber" binding:"required,min=1,max=20"`
	Type          string     `json:"type" binding:"omitempty,oneof=HR TECHNICAL MANAGERIAL ASSIGNMENT CULTURE_FIT SYSTEM_DESIGN"`
	ScheduledAt   *time.Time `json:"scheduledAt"`
	Result        string     `json:"result" binding:"omitempty,oneof=PENDING PASSED FAILED"`
	Notes         *string    `json:"notes"`
}

type UpdateInterviewRequest struct {
	RoundNumber *int       `json:"roundNumber" binding:"omitempty,min=1,max=20"`
	Type        *string    `json:"type" binding:"omitempty,oneof=HR TECHNICAL MANAGERIAL ASSIGNMENT CULTURE_FIT SYSTEM_DESIGN"`
	ScheduledAt *time.Time `json:"scheduledAt"`
	Result      *string    `json:"result" binding:"omitempty,oneof=PENDING PASSED FAILED"`
	Notes       *string    `json:"notes"`
}

package dto

import "onlyfame_backend/internal/models"

type ActorStats struct {
	Total       int64 `json:"total"`
	Shortlisted int64 `json:"shortlisted"`
	Selected    int64 `json:"selected"`
}

type ActorDashboardView struct {
	Profile            *ActorProfileResponse  `json:"profile"`
	ProfileComplete    bool                   `json:"profile_complete"`
	RecentApplications []ApplicationResponse  `json:"recent_applications"`
	Notifications      []NotificationResponse `json:"notifications"`
	Stats              ActorStats             `json:"stats"`
}

type CasterStats struct {
	TotalCalls          int64 `json:"total_calls"`
	ActiveCalls         int64 `json:"active_calls"`
	TotalApplications   int64 `json:"total_applications"`
	PendingApplications int64 `json:"pending_applications"`
}

type CasterDashboardView struct {
	Profile            *models.Profile        `json:"profile"`
	Company            *CompanySummary        `json:"company"`
	RecentCalls        []CastingCallResponse  `json:"recent_calls"`
	RecentApplications []ApplicationReviewRow `json:"recent_applications"`
	Notifications      []NotificationResponse `json:"notifications"`
	Stats              CasterStats            `json:"stats"`
}

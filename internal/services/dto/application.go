package dto

import (
	"strings"
	"time"

	"onlyfame_backend/internal/models"
)

// --- Application Requests ---

type ApplyRequest struct {
	CoverLetter      string `json:"cover_letter" form:"cover_letter" validate:"max=5000"`
	AuditionVideoURL string `json:"audition_video_url" form:"audition_video_url" validate:"max=1024"`
}

type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" form:"status" validate:"required,is-review-status"`
}

// --- Actor side ---

// CallRef - краткая ссылка на кастинг внутри заявки
type CallRef struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description *string         `json:"description,omitempty"`
	IsActive    bool            `json:"is_active"`
	Company     *CompanySummary `json:"company,omitempty"`
}

type ApplicationResponse struct {
	ID               string                   `json:"id"`
	CastingCallID    string                   `json:"casting_call_id"`
	ActorID          string                   `json:"actor_id"`
	Status           models.ApplicationStatus `json:"status"`
	Notes            *string                  `json:"notes"`
	AuditionVideoURL *string                  `json:"audition_video_url"`
	CreatedAt        time.Time                `json:"created_at"`
	UpdatedAt        time.Time                `json:"updated_at"`
	CastingCall      *CallRef                 `json:"casting_call,omitempty"`
}

type ApplyFormView struct {
	Call           CastingCallResponse  `json:"call"`
	AlreadyApplied bool                 `json:"already_applied"`
	Application    *ExistingApplication `json:"application"`
	CanApply       bool                 `json:"can_apply"`
}

type ApplyResponse struct {
	Application ApplicationResponse `json:"application"`
	Message     string              `json:"message"`
	Redirect    string              `json:"redirect"`
}

type ApplicationGroup struct {
	Status       models.ApplicationStatus `json:"status"`
	Applications []ApplicationResponse    `json:"applications"`
}

type ActorApplicationsView struct {
	Groups []ApplicationGroup               `json:"groups"`
	Counts map[models.ApplicationStatus]int `json:"counts"`
	Total  int                              `json:"total"`
}

// --- Caster side ---

// ContactInfo раскрывается только для заявок в статусе selected
type ContactInfo struct {
	Email string  `json:"email"`
	Phone *string `json:"phone"`
}

type ActorSummary struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	FullName  string          `json:"full_name"`
	Age       *int            `json:"age"`
	Gender    *string         `json:"gender"`
	Height    *string         `json:"height"`
	Location  *string         `json:"location"`
	Bio       *string         `json:"bio"`
	Languages []string        `json:"languages"`
	Images    []ImageResponse `json:"images"`
}

type ApplicationReviewRow struct {
	ID               string                   `json:"id"`
	Status           models.ApplicationStatus `json:"status"`
	Notes            *string                  `json:"notes"`
	AuditionVideoURL *string                  `json:"audition_video_url"`
	CreatedAt        time.Time                `json:"created_at"`
	CastingCall      *CallRef                 `json:"casting_call,omitempty"`
	Actor            *ActorSummary            `json:"actor"`
	Contact          *ContactInfo             `json:"contact"`
	Actions          []Action                 `json:"actions"`
}

type CasterApplicationsView struct {
	CallFilter   string                           `json:"call_filter,omitempty"`
	Calls        []CallRef                        `json:"calls"`
	Applications []ApplicationReviewRow           `json:"applications"`
	StatusCounts map[models.ApplicationStatus]int `json:"status_counts"`
	Total        int                              `json:"total"`
}

type ApplicationReviewView struct {
	Application ApplicationReviewRow `json:"application"`
	Buttons     []Action             `json:"buttons"`
}

type UpdateApplicationStatusResponse struct {
	ID      string                   `json:"id"`
	Status  models.ApplicationStatus `json:"status"`
	Message string                   `json:"message"`
}

// --- Builders ---

func NewCallRef(call *models.CastingCall) *CallRef {
	if call == nil {
		return nil
	}
	return &CallRef{
		ID:          call.ID,
		Title:       call.Title,
		Description: call.Description,
		IsActive:    call.IsActive,
		Company:     NewCompanySummary(call.CastingProfile, false),
	}
}

func NewApplicationResponse(app *models.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:               app.ID,
		CastingCallID:    app.CastingCallID,
		ActorID:          app.ActorID,
		Status:           app.Status,
		Notes:            app.Notes,
		AuditionVideoURL: app.AuditionVideoURL,
		CreatedAt:        app.CreatedAt,
		UpdatedAt:        app.UpdatedAt,
		CastingCall:      NewCallRef(app.CastingCall),
	}
}

func NewExistingApplication(app *models.Application) *ExistingApplication {
	if app == nil {
		return nil
	}
	return &ExistingApplication{ID: app.ID, Status: app.Status, CreatedAt: app.CreatedAt}
}

func NewActorSummary(actor *models.ActorProfile) *ActorSummary {
	if actor == nil {
		return nil
	}
	summary := &ActorSummary{
		ID:        actor.ID,
		UserID:    actor.UserID,
		Age:       actor.Age,
		Gender:    actor.Gender,
		Height:    actor.Height,
		Location:  actor.Location,
		Bio:       actor.Bio,
		Languages: actor.GetLanguages(),
		Images:    NewImageResponses(actor.Images),
	}
	if actor.Profile != nil {
		summary.FullName = actor.Profile.FullName
	}
	return summary
}

// NewApplicationReviewRow - строка для кастинг-директора.
// Контакты актера видны только после выбора (selected).
func NewApplicationReviewRow(app *models.Application) ApplicationReviewRow {
	row := ApplicationReviewRow{
		ID:               app.ID,
		Status:           app.Status,
		Notes:            app.Notes,
		AuditionVideoURL: app.AuditionVideoURL,
		CreatedAt:        app.CreatedAt,
		CastingCall:      NewCallRef(app.CastingCall),
		Actor:            NewActorSummary(app.ActorProfile),
		Actions:          StatusActions(app.ID, app.Status.NextActions(), ""),
	}

	if app.Status == models.ApplicationStatusSelected && app.ActorProfile != nil && app.ActorProfile.Profile != nil {
		row.Contact = &ContactInfo{
			Email: app.ActorProfile.Profile.Email,
			Phone: app.ActorProfile.Profile.Phone,
		}
	}
	return row
}

// StatusActions - кнопки смены статуса; кнопка текущего статуса неактивна
func StatusActions(appID string, statuses []models.ApplicationStatus, current models.ApplicationStatus) []Action {
	actions := make([]Action, 0, len(statuses))
	for _, st := range statuses {
		actions = append(actions, Action{
			Label:    StatusLabel(st),
			Method:   "PUT",
			Href:     "/caster/applications/" + appID + "/status",
			Body:     map[string]string{"status": string(st)},
			Disabled: st == current,
		})
	}
	return actions
}

// StatusLabel - "shortlisted" -> "Shortlist"
func StatusLabel(status models.ApplicationStatus) string {
	switch status {
	case models.ApplicationStatusShortlisted:
		return "Shortlist"
	case models.ApplicationStatusSelected:
		return "Select"
	case models.ApplicationStatusRejected:
		return "Reject"
	}
	s := string(status)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// EmptyStatusCounts - все четыре статуса с нулями
func EmptyStatusCounts() map[models.ApplicationStatus]int {
	counts := make(map[models.ApplicationStatus]int, len(models.ApplicationStatuses))
	for _, st := range models.ApplicationStatuses {
		counts[st] = 0
	}
	return counts
}

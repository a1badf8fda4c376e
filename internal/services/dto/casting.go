package dto

import (
	"time"

	"onlyfame_backend/internal/algorithms"
	"onlyfame_backend/internal/models"
)

// --- Casting Requests ---

// RequirementsInput - требования в том виде, в каком их отправляет форма
type RequirementsInput struct {
	AgeMin          *int     `json:"age_min" validate:"omitempty,min=0,max=120"`
	AgeMax          *int     `json:"age_max" validate:"omitempty,min=0,max=120"`
	Gender          []string `json:"gender" validate:"max=10,dive,max=32"`
	Languages       string   `json:"languages" validate:"max=1000"`
	Skills          []string `json:"skills" validate:"max=50,dive,max=100"`
	Location        string   `json:"location" validate:"max=255"`
	ExperienceLevel string   `json:"experience_level" validate:"omitempty,is-experience-level"`
}

type CreateCastingCallRequest struct {
	Title           string            `json:"title" validate:"required,notblank,max=255"`
	Description     string            `json:"description" validate:"required,notblank,max=10000"`
	Requirements    RequirementsInput `json:"requirements"`
	Deadline        string            `json:"deadline" validate:"omitempty,is-date"`
	SampleScriptURL string            `json:"sample_script_url" validate:"omitempty,url,max=1024"`
	VoiceNoteURL    string            `json:"voice_note_url" validate:"omitempty,url,max=1024"`
}

// UpdateCastingCallRequest - правка владельцем. Пустой deadline снимает дедлайн.
type UpdateCastingCallRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,notblank,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,notblank,max=10000"`
	IsActive    *bool   `json:"is_active,omitempty"`
	Deadline    *string `json:"deadline,omitempty" validate:"omitempty,is-date"`
}

// --- Casting Responses ---

type CastingCallResponse struct {
	ID              string                     `json:"id"`
	CasterID        string                     `json:"caster_id"`
	Title           string                     `json:"title"`
	Description     *string                    `json:"description"`
	Requirements    models.CastingRequirements `json:"requirements"`
	SampleScriptURL *string                    `json:"sample_script_url"`
	VoiceNoteURL    *string                    `json:"voice_note_url"`
	IsActive        bool                       `json:"is_active"`
	Deadline        *string                    `json:"deadline"`
	CreatedAt       time.Time                  `json:"created_at"`
	Company         *CompanySummary            `json:"company,omitempty"`
}

// CastingCallCard - карточка в списке кастингов актера
type CastingCallCard struct {
	CastingCallResponse
	HasApplied bool                    `json:"has_applied"`
	Match      *algorithms.MatchResult `json:"match,omitempty"`
}

type CastingCallListView struct {
	Calls          []CastingCallCard `json:"calls"`
	AppliedCallIDs []string          `json:"applied_call_ids"`
	Total          int               `json:"total"`
	MatchOnly      bool              `json:"match_only"`
}

// ExistingApplication - уже поданная заявка актера на этот кастинг
type ExistingApplication struct {
	ID        string                   `json:"id"`
	Status    models.ApplicationStatus `json:"status"`
	CreatedAt time.Time                `json:"created_at"`
}

type CastingCallDetailView struct {
	Call        CastingCallResponse     `json:"call"`
	Application *ExistingApplication    `json:"application"`
	CanApply    bool                    `json:"can_apply"`
	ApplyURL    string                  `json:"apply_url,omitempty"`
	Match       *algorithms.MatchResult `json:"match,omitempty"`
}

type CreateCallFormView struct {
	GenderOptions    []string                 `json:"gender_options"`
	ExperienceLevels []models.ExperienceLevel `json:"experience_levels"`
	DateFormat       string                   `json:"date_format"`
}

type CreateCastingCallResponse struct {
	Call     CastingCallResponse `json:"call"`
	Message  string              `json:"message"`
	Redirect string              `json:"redirect"`
}

// CasterCallRow - строка в списке кастингов директора
type CasterCallRow struct {
	CastingCallResponse
	ApplicationCount int64 `json:"application_count"`
}

type CasterCallsView struct {
	Calls []CasterCallRow `json:"calls"`
	Total int             `json:"total"`
}

type CasterCallDetailView struct {
	Call         CastingCallResponse              `json:"call"`
	Applications []ApplicationReviewRow           `json:"applications"`
	StatusCounts map[models.ApplicationStatus]int `json:"status_counts"`
}

// GenderOptions - варианты пола в форме кастинга
var GenderOptions = []string{"Male", "Female", "Non-binary", "Any"}

func NewCastingCallResponse(call *models.CastingCall, withCompanyDetails bool) CastingCallResponse {
	resp := CastingCallResponse{
		ID:              call.ID,
		CasterID:        call.CasterID,
		Title:           call.Title,
		Description:     call.Description,
		Requirements:    call.GetRequirements(),
		SampleScriptURL: call.SampleScriptURL,
		VoiceNoteURL:    call.VoiceNoteURL,
		IsActive:        call.IsActive,
		CreatedAt:       call.CreatedAt,
		Company:         NewCompanySummary(call.CastingProfile, withCompanyDetails),
	}
	if call.Deadline != nil {
		d := call.Deadline.UTC().Format("2006-01-02")
		resp.Deadline = &d
	}
	return resp
}

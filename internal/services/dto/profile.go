package dto

import (
	"time"

	"onlyfame_backend/internal/models"
)

// ==========================
// Requests
// ==========================

// PastWorkInput - элемент портфолио в форме профиля
type PastWorkInput struct {
	Title string `json:"title" validate:"required,max=255"`
	Type  string `json:"type" validate:"required,is-past-work-type"`
	Role  string `json:"role" validate:"max=255"`
	Year  int    `json:"year" validate:"omitempty,min=1900,max=2100"`
	Link  string `json:"link" validate:"omitempty,url,max=1024"`
}

// UpdateActorProfileRequest - форма редактирования профиля актера.
// Пустые строки сохраняются как NULL, языки приходят строкой "Hindi, English".
type UpdateActorProfileRequest struct {
	FullName  string          `json:"full_name" validate:"required,max=255"`
	Phone     string          `json:"phone" validate:"max=32"`
	Age       *int            `json:"age" validate:"omitempty,min=0,max=120"`
	Gender    string          `json:"gender" validate:"max=32"`
	Height    string          `json:"height" validate:"max=32"`
	Languages string          `json:"languages" validate:"max=1000"`
	Location  string          `json:"location" validate:"max=255"`
	Bio       string          `json:"bio" validate:"max=5000"`
	PastWorks []PastWorkInput `json:"past_works" validate:"max=50,dive"`
}

// ==========================
// Responses
// ==========================

type ImageResponse struct {
	Type      models.ImageType `json:"type"`
	ImageURL  string           `json:"image_url"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// ActorProfileResponse - профиль актера вместе с контактами из Profile
type ActorProfileResponse struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	FullName  string            `json:"full_name"`
	Email     string            `json:"email"`
	Phone     *string           `json:"phone"`
	Age       *int              `json:"age"`
	Gender    *string           `json:"gender"`
	Height    *string           `json:"height"`
	Languages []string          `json:"languages"`
	Location  *string           `json:"location"`
	Bio       *string           `json:"bio"`
	PastWorks []models.PastWork `json:"past_works"`
	Images    []ImageResponse   `json:"images"`
	Complete  bool              `json:"complete"`
}

type ActorProfileView struct {
	Profile    *ActorProfileResponse `json:"profile"`
	ImageTypes []models.ImageType    `json:"image_types"`
	Message    string                `json:"message,omitempty"`
}

type ImageUploadResponse struct {
	Image   ImageResponse `json:"image"`
	Message string        `json:"message"`
}

// CompanySummary - то, что актер видит о кастинг-директоре
type CompanySummary struct {
	ID          string  `json:"id"`
	CompanyName string  `json:"company_name"`
	Verified    bool    `json:"verified"`
	Description *string `json:"description,omitempty"`
	Website     *string `json:"website,omitempty"`
}

func NewActorProfileResponse(profile *models.Profile, actor *models.ActorProfile) *ActorProfileResponse {
	resp := &ActorProfileResponse{
		ID:        actor.ID,
		UserID:    actor.UserID,
		Age:       actor.Age,
		Gender:    actor.Gender,
		Height:    actor.Height,
		Languages: actor.GetLanguages(),
		Location:  actor.Location,
		Bio:       actor.Bio,
		PastWorks: actor.GetPastWorks(),
		Images:    NewImageResponses(actor.Images),
		Complete:  actor.IsComplete(),
	}
	if profile != nil {
		resp.FullName = profile.FullName
		resp.Email = profile.Email
		resp.Phone = profile.Phone
	}
	return resp
}

func NewImageResponses(images []models.ActorImage) []ImageResponse {
	result := make([]ImageResponse, 0, len(images))
	for _, img := range images {
		result = append(result, ImageResponse{
			Type:      img.Type,
			ImageURL:  img.ImageURL,
			UpdatedAt: img.UpdatedAt,
		})
	}
	return result
}

func NewCompanySummary(cp *models.CastingProfile, withDetails bool) *CompanySummary {
	if cp == nil {
		return nil
	}
	summary := &CompanySummary{
		ID:          cp.ID,
		CompanyName: cp.CompanyName,
		Verified:    cp.Verified,
	}
	if withDetails {
		summary.Description = cp.Description
		summary.Website = cp.Website
	}
	return summary
}

package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Profile - один на учетную запись, ID совпадает с User.ID.
// Роль задается при регистрации и больше не меняется.
type Profile struct {
	BaseModel
	Role      UserRole `gorm:"size:16;not null;index" json:"role"`
	FullName  string   `gorm:"size:255;not null" json:"full_name"`
	Email     string   `gorm:"size:255;not null" json:"email"`
	Phone     *string  `gorm:"size:32" json:"phone"`
	AvatarURL *string  `gorm:"size:1024" json:"avatar_url"`
}

// PastWork - элемент портфолио актера
type PastWork struct {
	Title string       `json:"title"`
	Type  PastWorkType `json:"type"`
	Role  string       `json:"role"`
	Year  int          `json:"year"`
	Link  string       `json:"link,omitempty"`
}

type ActorProfile struct {
	BaseModel
	UserID    string         `gorm:"size:36;uniqueIndex;not null" json:"user_id"`
	Profile   *Profile       `gorm:"foreignKey:UserID" json:"profile,omitempty"`
	Age       *int           `json:"age"`
	Gender    *string        `gorm:"size:32" json:"gender"`
	Height    *string        `gorm:"size:32" json:"height"`
	Languages datatypes.JSON `json:"languages"`
	Location  *string        `gorm:"size:255" json:"location"`
	Bio       *string        `gorm:"type:text" json:"bio"`
	PastWorks datatypes.JSON `json:"past_works"`
	Images    []ActorImage   `gorm:"foreignKey:ActorID" json:"images,omitempty"`
}

// GetLanguages возвращает языки актера как slice строк
func (a *ActorProfile) GetLanguages() []string {
	languages := []string{}
	if len(a.Languages) > 0 {
		_ = json.Unmarshal(a.Languages, &languages)
	}
	return languages
}

// SetLanguages сохраняет языки (nil сохраняется как пустой список)
func (a *ActorProfile) SetLanguages(languages []string) {
	if languages == nil {
		languages = []string{}
	}
	data, _ := json.Marshal(languages)
	a.Languages = datatypes.JSON(data)
}

func (a *ActorProfile) GetPastWorks() []PastWork {
	works := []PastWork{}
	if len(a.PastWorks) > 0 {
		_ = json.Unmarshal(a.PastWorks, &works)
	}
	return works
}

func (a *ActorProfile) SetPastWorks(works []PastWork) {
	if works == nil {
		works = []PastWork{}
	}
	data, _ := json.Marshal(works)
	a.PastWorks = datatypes.JSON(data)
}

// IsComplete - так дашборд решает, показывать ли "заполните профиль".
// Возраст 0 считается незаполненным.
func (a *ActorProfile) IsComplete() bool {
	return a.Age != nil && *a.Age > 0 && a.Bio != nil && *a.Bio != ""
}

// ActorImage - фото по ракурсу, одно на (actor_id, type)
type ActorImage struct {
	BaseModel
	ActorID  string    `gorm:"size:36;not null;uniqueIndex:idx_actor_images_actor_type" json:"actor_id"`
	Type     ImageType `gorm:"size:8;not null;uniqueIndex:idx_actor_images_actor_type" json:"type"`
	ImageURL string    `gorm:"size:1024;not null" json:"image_url"`
}

// CastingProfile - компания кастинг-директора. Verified выставляется администратором (см. platform.verified_casters).
type CastingProfile struct {
	BaseModel
	UserID      string   `gorm:"size:36;uniqueIndex;not null" json:"user_id"`
	Profile     *Profile `gorm:"foreignKey:UserID" json:"profile,omitempty"`
	CompanyName string   `gorm:"size:255;not null" json:"company_name"`
	Description *string  `gorm:"type:text" json:"description"`
	Website     *string  `gorm:"size:1024" json:"website"`
	Verified    bool     `gorm:"not null" json:"verified"`
}

package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// CastingRequirements хранится JSON-объектом. Отсутствующее требование - null,
// а не пустой список или пустая строка.
type CastingRequirements struct {
	AgeRange        *AgeRange        `json:"age_range"`
	Gender          []string         `json:"gender"`
	Languages       []string         `json:"languages"`
	Skills          []string         `json:"skills"`
	Location        *string          `json:"location"`
	ExperienceLevel *ExperienceLevel `json:"experience_level"`
}

type CastingCall struct {
	BaseModel
	CasterID        string          `gorm:"size:36;not null;index" json:"caster_id"`
	CastingProfile  *CastingProfile `gorm:"foreignKey:CasterID" json:"casting_profile,omitempty"`
	Title           string          `gorm:"size:255;not null" json:"title"`
	Description     *string         `gorm:"type:text" json:"description"`
	Requirements    datatypes.JSON  `json:"requirements"`
	SampleScriptURL *string         `gorm:"size:1024" json:"sample_script_url"`
	VoiceNoteURL    *string         `gorm:"size:1024" json:"voice_note_url"`
	IsActive        bool            `gorm:"not null;index" json:"is_active"`
	Deadline        *time.Time      `gorm:"type:date" json:"deadline"`
}

func (c *CastingCall) GetRequirements() CastingRequirements {
	var req CastingRequirements
	if len(c.Requirements) > 0 {
		_ = json.Unmarshal(c.Requirements, &req)
	}
	return req
}

func (c *CastingCall) SetRequirements(req CastingRequirements) {
	data, _ := json.Marshal(req)
	c.Requirements = datatypes.JSON(data)
}

// DeadlinePassed - дедлайн включительно: в сам день дедлайна подавать еще можно
func (c *CastingCall) DeadlinePassed(now time.Time) bool {
	if c.Deadline == nil {
		return false
	}
	d := c.Deadline.UTC()
	endOfDay := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	return !now.UTC().Before(endOfDay)
}

// AcceptsApplications - условие показа кнопки "Apply Now"
func (c *CastingCall) AcceptsApplications(now time.Time) bool {
	return c.IsActive && !c.DeadlinePassed(now)
}

package models

// Application - заявка актера на кастинг. Пара (casting_call_id, actor_id)
// уникальна на уровне индекса.
type Application struct {
	BaseModel
	CastingCallID    string            `gorm:"size:36;not null;uniqueIndex:idx_applications_call_actor" json:"casting_call_id"`
	CastingCall      *CastingCall      `gorm:"foreignKey:CastingCallID" json:"casting_call,omitempty"`
	ActorID          string            `gorm:"size:36;not null;uniqueIndex:idx_applications_call_actor;index" json:"actor_id"`
	ActorProfile     *ActorProfile     `gorm:"foreignKey:ActorID" json:"actor_profile,omitempty"`
	AuditionVideoURL *string           `gorm:"size:1024" json:"audition_video_url"`
	Notes            *string           `gorm:"type:text" json:"notes"`
	Status           ApplicationStatus `gorm:"size:16;not null;index" json:"status"`
}

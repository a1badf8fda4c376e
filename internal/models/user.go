package models

import "time"

// User - учетная запись (email + пароль). Профиль хранится отдельно в Profile
// с тем же ID.
type User struct {
	BaseModel
	Email        string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
}

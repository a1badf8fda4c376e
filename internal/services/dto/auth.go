package dto

import (
	"time"

	"onlyfame_backend/internal/models"
)

// RegisterRequest - запрос регистрации. Роль можно передать и через ?role=.
type RegisterRequest struct {
	Email    string          `json:"email" form:"email" validate:"required,email,max=255"`
	Password string          `json:"password" form:"password" validate:"required,min=6,max=72"`
	FullName string          `json:"full_name" form:"full_name" validate:"required,max=255"`
	Role     models.UserRole `json:"role" form:"role" validate:"required,is-user-role"`
}

// LoginRequest - запрос входа
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// AuthResponse - успешный вход или регистрация
type AuthResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	Redirect  string      `json:"redirect"`
	User      UserSummary `json:"user"`
}

type UserSummary struct {
	ID       string          `json:"id"`
	Email    string          `json:"email"`
	FullName string          `json:"full_name,omitempty"`
	Role     models.UserRole `json:"role,omitempty"`
}

type RedirectResponse struct {
	Redirect string `json:"redirect"`
}

// FormField - описание поля формы для клиента
type FormField struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Label    string   `json:"label"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
}

type LoginFormView struct {
	Title  string      `json:"title"`
	Fields []FormField `json:"fields"`
	Links  []NavLink   `json:"links"`
}

type RegisterFormView struct {
	Title        string            `json:"title"`
	SelectedRole models.UserRole   `json:"selected_role"`
	Roles        []models.UserRole `json:"roles"`
	Fields       []FormField       `json:"fields"`
	Links        []NavLink         `json:"links"`
}

// LandingView - главная страница
type LandingView struct {
	Title     string    `json:"title"`
	Tagline   string    `json:"tagline"`
	PublicURL string    `json:"public_url,omitempty"`
	PublicKey string    `json:"public_key,omitempty"`
	Links     []NavLink `json:"links"`
}

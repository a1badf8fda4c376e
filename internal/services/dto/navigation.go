package dto

import "onlyfame_backend/internal/models"

// NavLink - пункт меню
type NavLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Action - кнопка, которая отправляет запрос (выход, обновить, статус)
type Action struct {
	Label    string            `json:"label"`
	Method   string            `json:"method"`
	Href     string            `json:"href"`
	Body     map[string]string `json:"body,omitempty"`
	Disabled bool              `json:"disabled,omitempty"`
}

// Nav - оболочка навигации, которая встраивается в каждую страницу
type Nav struct {
	Role     models.UserRole `json:"role"`
	UserName string          `json:"user_name"`
	Links    []NavLink       `json:"links"`
	Logout   Action          `json:"logout"`
}

// Page - ответ страницы: навигация + данные представления
type Page struct {
	Nav  *Nav        `json:"nav,omitempty"`
	View interface{} `json:"view"`
}

var LogoutAction = Action{Label: "Logout", Method: "POST", Href: "/auth/logout"}

var roleLinks = map[models.UserRole][]NavLink{
	models.UserRoleActor: {
		{Label: "Dashboard", Href: "/actor/dashboard"},
		{Label: "Casting Calls", Href: "/actor/casting-calls"},
		{Label: "My Applications", Href: "/actor/applications"},
		{Label: "Profile", Href: "/actor/profile"},
	},
	models.UserRoleCaster: {
		{Label: "Dashboard", Href: "/caster/dashboard"},
		{Label: "Create Call", Href: "/caster/create-call"},
		{Label: "My Calls", Href: "/caster/calls"},
		{Label: "Applications", Href: "/caster/applications"},
	},
}

// NavFor собирает меню для роли. Для неизвестной роли ссылок нет.
func NavFor(role models.UserRole, userName string) *Nav {
	links := make([]NavLink, len(roleLinks[role]))
	copy(links, roleLinks[role])

	return &Nav{
		Role:     role,
		UserName: userName,
		Links:    links,
		Logout:   LogoutAction,
	}
}

// ProfileSetupPendingView - промежуточный экран, пока не создан Profile
type ProfileSetupPendingView struct {
	Status     string   `json:"status"`
	Code       string   `json:"code"`
	Message    string   `json:"message"`
	RetryAfter int      `json:"retry_after"`
	Actions    []Action `json:"actions"`
}

// NewProfileSetupPendingView - код и текст берутся из apperrors.ErrProfileSetupPending
func NewProfileSetupPendingView(path, code, message string) ProfileSetupPendingView {
	return ProfileSetupPendingView{
		Status:     "profile_setup_pending",
		Code:       code,
		Message:    message,
		RetryAfter: 2,
		Actions: []Action{
			{Label: "Refresh", Method: "GET", Href: path},
			LogoutAction,
		},
	}
}

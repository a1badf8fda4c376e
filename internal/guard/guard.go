// Package guard решает, что делать с запросом к странице: пропустить,
// перенаправить или показать экран ожидания профиля.
package guard

import (
	"onlyfame_backend/internal/auth"
	"onlyfame_backend/internal/models"
)

const (
	PathLanding  = "/"
	PathLogin    = "/auth/login"
	PathRegister = "/auth/register"
)

// Session - аутентифицированный пользователь. Role пустая, пока нет Profile.
type Session struct {
	UserID   string
	Email    string
	FullName string
	Role     models.UserRole
}

// HasProfile - строка Profile уже создана
func (s *Session) HasProfile() bool {
	return s != nil && s.Role.IsValid()
}

type Outcome int

const (
	Allow Outcome = iota
	Redirect
	SetupPending
)

func (o Outcome) String() string {
	switch o {
	case Allow:
		return "allow"
	case Redirect:
		return "redirect"
	case SetupPending:
		return "setup_pending"
	}
	return "unknown"
}

type Decision struct {
	Outcome  Outcome
	Location string
}

var publicPaths = map[string]bool{
	PathLanding:  true,
	PathLogin:    true,
	PathRegister: true,
}

// IsPublic - страницы, доступные без входа (точное совпадение)
func IsPublic(path string) bool {
	return publicPaths[path]
}

// Decide - чистая функция без обращения к БД; session == nil значит гость
func Decide(path string, session *Session) Decision {
	if session == nil {
		if IsPublic(path) {
			return Decision{Outcome: Allow}
		}
		return Decision{Outcome: Redirect, Location: PathLogin}
	}

	if path == PathLogin || path == PathRegister {
		if session.HasProfile() {
			return Decision{Outcome: Redirect, Location: session.Role.Dashboard()}
		}
		return Decision{Outcome: Allow}
	}

	if auth.ScopeOf(path) == "" {
		return Decision{Outcome: Allow}
	}

	if !session.HasProfile() {
		return Decision{Outcome: SetupPending}
	}

	if !auth.CanAccess(session.Role, path) {
		return Decision{Outcome: Redirect, Location: session.Role.Dashboard()}
	}

	return Decision{Outcome: Allow}
}

package guard

import (
	"testing"

	"onlyfame_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	actor := &Session{UserID: "u1", Role: models.UserRoleActor}
	caster := &Session{UserID: "u2", Role: models.UserRoleCaster}
	pending := &Session{UserID: "u3"}

	tests := []struct {
		name     string
		path     string
		session  *Session
		outcome  Outcome
		location string
	}{
		{"гость на главной", "/", nil, Allow, ""},
		{"гость на логине", "/auth/login", nil, Allow, ""},
		{"гость на регистрации", "/auth/register", nil, Allow, ""},
		{"гость на дашборде", "/actor/dashboard", nil, Redirect, "/auth/login"},
		{"гость на вложенном auth пути", "/auth/login/extra", nil, Redirect, "/auth/login"},
		{"гость на уведомлениях", "/notifications/read", nil, Redirect, "/auth/login"},

		{"актер у себя", "/actor/casting-calls/42", actor, Allow, ""},
		{"актер у кастинг-директора", "/caster/dashboard", actor, Redirect, "/actor/dashboard"},
		{"директор у актера", "/actor/applications", caster, Redirect, "/caster/dashboard"},
		{"директор у себя", "/caster/applications/7", caster, Allow, ""},
		{"похожий префикс", "/actors", actor, Allow, ""},

		{"вошедший на логине", "/auth/login", caster, Redirect, "/caster/dashboard"},
		{"вошедший на регистрации", "/auth/register", actor, Redirect, "/actor/dashboard"},
		{"вошедший на главной", "/", actor, Allow, ""},

		{"без профиля на логине", "/auth/login", pending, Allow, ""},
		{"без профиля в кабинете актера", "/actor/dashboard", pending, SetupPending, ""},
		{"без профиля в кабинете директора", "/caster/calls", pending, SetupPending, ""},
		{"без профиля на общем пути", "/", pending, Allow, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Decide(tt.path, tt.session)
			assert.Equal(t, tt.outcome, d.Outcome, d.Outcome.String())
			assert.Equal(t, tt.location, d.Location)
		})
	}
}

func TestSession_HasProfile(t *testing.T) {
	var nilSession *Session
	assert.False(t, nilSession.HasProfile())
	assert.False(t, (&Session{UserID: "x"}).HasProfile())
	assert.True(t, (&Session{UserID: "x", Role: models.UserRoleCaster}).HasProfile())
}

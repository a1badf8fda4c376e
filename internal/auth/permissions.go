package auth

import (
	"strings"

	"onlyfame_backend/internal/models"
)

// Области страниц по ролям: актер живет под /actor, кастинг-директор под /caster
var roleScopes = map[models.UserRole]string{
	models.UserRoleActor:  "/actor",
	models.UserRoleCaster: "/caster",
}

// ScopeOf возвращает роль, которой принадлежит путь, или "" для общих путей
func ScopeOf(path string) models.UserRole {
	for role, prefix := range roleScopes {
		if hasScopePrefix(path, prefix) {
			return role
		}
	}
	return ""
}

// CanAccess - может ли роль открыть путь
func CanAccess(role models.UserRole, path string) bool {
	owner := ScopeOf(path)
	return owner == "" || owner == role
}

// hasScopePrefix совпадает с "/actor" и "/actor/...", но не с "/actors"
func hasScopePrefix(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

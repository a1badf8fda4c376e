// Package testutil - общая тестовая БД и фикстуры для тестов репозиториев,
// сервисов и HTTP-слоя.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"onlyfame_backend/database"
	"onlyfame_backend/internal/auth"
	"onlyfame_backend/internal/config"
	"onlyfame_backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const DefaultPassword = "password123"

// NewTestConfig - конфиг для тестов: sqlite в памяти и локальное хранилище во временной папке
func NewTestConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Server.Env = "test"
	cfg.Database.Driver = "sqlite"
	cfg.Database.DSN = fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	cfg.Database.MaxOpenConns = 1
	cfg.Database.AutoMigrate = true
	cfg.JWT.Secret = "test-secret"
	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = t.TempDir()
	return cfg
}

// NewTestDB открывает отдельную БД в памяти на тест и прогоняет миграции
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return OpenDB(t, NewTestConfig(t))
}

func OpenDB(t *testing.T, cfg *config.Config) *gorm.DB {
	t.Helper()

	db, err := database.Open(cfg)
	require.NoError(t, err, "Не удалось открыть тестовую БД")
	require.NoError(t, database.AutoMigrate(db), "Не удалось выполнить AutoMigrate")

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// ============================================================================
// Фикстуры
// ============================================================================

// UniqueEmail - email, не пересекающийся между тестами
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s_%s@test.com", prefix, uuid.NewString()[:8])
}

// CreateUser создает User с паролем DefaultPassword и, если role не пустая, Profile
func CreateUser(t *testing.T, db *gorm.DB, email, fullName string, role models.UserRole) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(DefaultPassword)
	require.NoError(t, err)

	user := &models.User{Email: email, PasswordHash: hash}
	require.NoError(t, db.Create(user).Error, "Не удалось создать пользователя %s", email)

	if role != "" {
		profile := &models.Profile{
			BaseModel: models.BaseModel{ID: user.ID},
			Role:      role,
			FullName:  fullName,
			Email:     email,
		}
		require.NoError(t, db.Create(profile).Error, "Не удалось создать профиль %s", email)
	}
	return user
}

// CreateActor - пользователь-актер с пустым ActorProfile
func CreateActor(t *testing.T, db *gorm.DB, fullName string) (*models.User, *models.ActorProfile) {
	t.Helper()

	user := CreateUser(t, db, UniqueEmail("actor"), fullName, models.UserRoleActor)

	actor := &models.ActorProfile{UserID: user.ID}
	actor.SetLanguages(nil)
	actor.SetPastWorks(nil)
	require.NoError(t, db.Create(actor).Error, "Не удалось создать профиль актера")
	return user, actor
}

// CreateCaster - пользователь-кастер с CastingProfile
func CreateCaster(t *testing.T, db *gorm.DB, companyName string) (*models.User, *models.CastingProfile) {
	t.Helper()

	user := CreateUser(t, db, UniqueEmail("caster"), companyName, models.UserRoleCaster)

	caster := &models.CastingProfile{UserID: user.ID, CompanyName: companyName}
	require.NoError(t, db.Create(caster).Error, "Не удалось создать профиль кастинга")
	return user, caster
}

// CreateCastingCall - активный кастинг без требований; mutate может поменять поля до вставки
func CreateCastingCall(t *testing.T, db *gorm.DB, casterID, title string, mutate func(*models.CastingCall)) *models.CastingCall {
	t.Helper()

	call := &models.CastingCall{
		CasterID: casterID,
		Title:    title,
		IsActive: true,
	}
	call.SetRequirements(models.CastingRequirements{})
	if mutate != nil {
		mutate(call)
	}

	// Select("*") нужен, чтобы IsActive=false не заменился значением по умолчанию
	require.NoError(t, db.Select("*").Omit("CastingProfile").Create(call).Error, "Не удалось создать кастинг")
	return call
}

// CreateApplication вставляет заявку напрямую
func CreateApplication(t *testing.T, db *gorm.DB, callID, actorID string, status models.ApplicationStatus) *models.Application {
	t.Helper()

	app := &models.Application{
		CastingCallID: callID,
		ActorID:       actorID,
		Status:        status,
	}
	require.NoError(t, db.Omit("CastingCall", "ActorProfile").Create(app).Error, "Не удалось создать заявку")
	return app
}

// FixedClock - часы для детерминированных проверок дедлайна
func FixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func IntPtr(v int) *int { return &v }

func StrPtr(v string) *string { return &v }

func BoolPtr(v bool) *bool { return &v }

func TimePtr(v time.Time) *time.Time { return &v }

package database

import (
	"errors"
	"fmt"
	"testing"

	"onlyfame_backend/internal/config"
	"onlyfame_backend/internal/models"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestOpenAndMigrate_SQLite(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Env = "test"
	cfg.Database.Driver = "sqlite"
	cfg.Database.DSN = fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())

	db, err := Open(cfg)
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	for _, m := range AllModels() {
		assert.True(t, db.Migrator().HasTable(m), "%T", m)
	}

	// уникальный индекс (casting_call_id, actor_id)
	app := models.Application{CastingCallID: "call-1", ActorID: "actor-1", Status: models.ApplicationStatusApplied}
	require.NoError(t, db.Create(&app).Error)

	dup := models.Application{CastingCallID: "call-1", ActorID: "actor-1", Status: models.ApplicationStatusApplied}
	err = db.Create(&dup).Error
	require.Error(t, err)
	assert.True(t, IsDuplicateKeyError(err))
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	cfg := config.Default()
	cfg.Database.Driver = "oracle"
	cfg.Database.DSN = "x"

	_, err := Open(cfg)
	assert.Error(t, err)
}

func TestIsDuplicateKeyError(t *testing.T) {
	assert.False(t, IsDuplicateKeyError(nil))
	assert.False(t, IsDuplicateKeyError(errors.New("connection refused")))
	assert.True(t, IsDuplicateKeyError(gorm.ErrDuplicatedKey))
	assert.True(t, IsDuplicateKeyError(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsDuplicateKeyError(&pgconn.PgError{Code: "23503"}))
	assert.True(t, IsDuplicateKeyError(&mysql.MySQLError{Number: 1062}))
	assert.True(t, IsDuplicateKeyError(fmt.Errorf("insert: %w", errors.New("UNIQUE constraint failed: applications.casting_call_id"))))
}

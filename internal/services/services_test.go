package services

import (
	"context"
	"testing"
	"time"

	"onlyfame_backend/internal/auth"
	"onlyfame_backend/internal/config"
	"onlyfame_backend/internal/storage"
	"onlyfame_backend/internal/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// testEnv - сервисы поверх sqlite в памяти и локального хранилища
type testEnv struct {
	cfg   *config.Config
	db    *gorm.DB
	store storage.Storage
	sc    *ServiceContainer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := testutil.NewTestConfig(t)
	db := testutil.OpenDB(t, cfg)

	store, err := storage.NewStorage(context.Background(), storage.Config{
		Type:     cfg.Storage.Type,
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
		Bucket:   cfg.Storage.Bucket,
	})
	require.NoError(t, err)

	tokens := auth.NewTokenManager(cfg.JWT.Secret, time.Hour)

	return &testEnv{
		cfg:   cfg,
		db:    db,
		store: store,
		sc:    NewServiceContainer(cfg, store, tokens),
	}
}

// setNow фиксирует часы сервисов, которые проверяют дедлайны
func (e *testEnv) setNow(at time.Time) {
	clock := Clock(testutil.FixedClock(at))
	e.sc.CastingService.(*CastingServiceImpl).now = clock
	e.sc.ApplicationService.(*ApplicationServiceImpl).now = clock
}

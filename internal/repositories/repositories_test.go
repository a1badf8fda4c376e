package repositories

import (
	"testing"
	"time"

	"onlyfame_backend/internal/models"
	"onlyfame_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewUserRepository()

	user := &models.User{Email: "  Jane@Example.com ", PasswordHash: "hash"}
	require.NoError(t, repo.Create(db, user))
	assert.Equal(t, "jane@example.com", user.Email)

	found, err := repo.FindByEmail(db, "JANE@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	err = repo.Create(db, &models.User{Email: "jane@example.com", PasswordHash: "hash"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	_, err = repo.FindByID(db, "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, repo.UpdateLastLogin(db, user.ID, at))
	found, err = repo.FindByID(db, user.ID)
	require.NoError(t, err)
	require.NotNil(t, found.LastLoginAt)
	assert.True(t, found.LastLoginAt.Equal(at))
}

func TestProfileRepository_ActorProfile(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewProfileRepository()

	user, actor := testutil.CreateActor(t, db, "Jane Doe")

	found, err := repo.FindActorProfileByUserID(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, actor.ID, found.ID)
	assert.Empty(t, found.GetLanguages())

	found.Age = testutil.IntPtr(27)
	found.Bio = testutil.StrPtr("Stage actor")
	found.SetLanguages([]string{"English", "Hindi"})
	require.NoError(t, repo.UpdateActorProfile(db, found))

	updated, err := repo.FindActorProfileByUserID(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 27, *updated.Age)
	assert.Equal(t, []string{"English", "Hindi"}, updated.GetLanguages())
	assert.True(t, updated.IsComplete())

	// Снятие значения сохраняется как NULL
	updated.Bio = nil
	require.NoError(t, repo.UpdateActorProfile(db, updated))
	cleared, err := repo.FindActorProfileByUserID(db, user.ID)
	require.NoError(t, err)
	assert.Nil(t, cleared.Bio)

	_, err = repo.FindActorProfileByUserID(db, "missing")
	assert.ErrorIs(t, err, ErrActorProfileNotFound)
}

func TestProfileRepository_UpsertActorImage(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewProfileRepository()

	_, actor := testutil.CreateActor(t, db, "Jane Doe")

	require.NoError(t, repo.UpsertActorImage(db, &models.ActorImage{
		ActorID: actor.ID, Type: models.ImageTypeCenter, ImageURL: "/files/a/center.jpg",
	}))
	require.NoError(t, repo.UpsertActorImage(db, &models.ActorImage{
		ActorID: actor.ID, Type: models.ImageTypeCenter, ImageURL: "/files/a/center.png",
	}))
	require.NoError(t, repo.UpsertActorImage(db, &models.ActorImage{
		ActorID: actor.ID, Type: models.ImageTypeLeft, ImageURL: "/files/a/left.jpg",
	}))

	stored, err := repo.FindActorProfileByUserID(db, actor.UserID)
	require.NoError(t, err)
	require.Len(t, stored.Images, 2)

	byType := map[models.ImageType]string{}
	for _, img := range stored.Images {
		byType[img.Type] = img.ImageURL
	}
	assert.Equal(t, "/files/a/center.png", byType[models.ImageTypeCenter])
	assert.Equal(t, "/files/a/left.jpg", byType[models.ImageTypeLeft])
}

func TestProfileRepository_MarkCasterVerified(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewProfileRepository()

	user, _ := testutil.CreateCaster(t, db, "Red Chillies")

	require.NoError(t, repo.MarkCasterVerified(db, user.ID))
	// Повторный вызов не ошибка
	require.NoError(t, repo.MarkCasterVerified(db, user.ID))

	caster, err := repo.FindCastingProfileByUserID(db, user.ID)
	require.NoError(t, err)
	assert.True(t, caster.Verified)

	assert.ErrorIs(t, repo.MarkCasterVerified(db, "missing"), ErrCastingProfileNotFound)
}

func TestCastingRepository_ActiveAndOwnerScoped(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewCastingRepository()

	_, caster := testutil.CreateCaster(t, db, "Red Chillies")
	_, other := testutil.CreateCaster(t, db, "Dharma")

	base := time.Now().UTC().Add(-time.Hour)
	older := testutil.CreateCastingCall(t, db, caster.ID, "Older", func(c *models.CastingCall) {
		c.CreatedAt = base
	})
	newer := testutil.CreateCastingCall(t, db, caster.ID, "Newer", func(c *models.CastingCall) {
		c.CreatedAt = base.Add(time.Minute)
	})
	testutil.CreateCastingCall(t, db, caster.ID, "Closed", func(c *models.CastingCall) {
		c.IsActive = false
	})

	active, err := repo.FindActive(db)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, newer.ID, active[0].ID)
	assert.Equal(t, older.ID, active[1].ID)
	require.NotNil(t, active[0].CastingProfile)
	assert.Equal(t, "Red Chillies", active[0].CastingProfile.CompanyName)

	total, err := repo.CountByCaster(db, caster.ID, false)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	activeCount, err := repo.CountByCaster(db, caster.ID, true)
	require.NoError(t, err)
	assert.EqualValues(t, 2, activeCount)

	_, err = repo.FindByIDForCaster(db, older.ID, other.ID)
	assert.ErrorIs(t, err, ErrCastingCallNotFound)

	found, err := repo.FindByIDForCaster(db, older.ID, caster.ID)
	require.NoError(t, err)
	assert.Equal(t, "Older", found.Title)

	require.NoError(t, repo.Update(db, older.ID, map[string]interface{}{"is_active": false}))
	found, err = repo.FindByID(db, older.ID)
	require.NoError(t, err)
	assert.False(t, found.IsActive)
}

func TestApplicationRepository_DuplicateRejected(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewApplicationRepository()

	_, caster := testutil.CreateCaster(t, db, "Red Chillies")
	_, actor := testutil.CreateActor(t, db, "Jane Doe")
	call := testutil.CreateCastingCall(t, db, caster.ID, "Lead role", nil)

	first := &models.Application{CastingCallID: call.ID, ActorID: actor.ID, Status: models.ApplicationStatusApplied}
	require.NoError(t, repo.Create(db, first))

	second := &models.Application{CastingCallID: call.ID, ActorID: actor.ID, Status: models.ApplicationStatusApplied}
	assert.ErrorIs(t, repo.Create(db, second), ErrDuplicateApplication)

	var count int64
	require.NoError(t, db.Model(&models.Application{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestApplicationRepository_CasterQueries(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewApplicationRepository()

	_, caster := testutil.CreateCaster(t, db, "Red Chillies")
	_, otherCaster := testutil.CreateCaster(t, db, "Dharma")
	_, actorA := testutil.CreateActor(t, db, "Actor A")
	_, actorB := testutil.CreateActor(t, db, "Actor B")

	callOne := testutil.CreateCastingCall(t, db, caster.ID, "One", nil)
	callTwo := testutil.CreateCastingCall(t, db, caster.ID, "Two", nil)
	foreign := testutil.CreateCastingCall(t, db, otherCaster.ID, "Foreign", nil)

	testutil.CreateApplication(t, db, callOne.ID, actorA.ID, models.ApplicationStatusApplied)
	testutil.CreateApplication(t, db, callOne.ID, actorB.ID, models.ApplicationStatusSelected)
	testutil.CreateApplication(t, db, callTwo.ID, actorA.ID, models.ApplicationStatusApplied)
	testutil.CreateApplication(t, db, foreign.ID, actorB.ID, models.ApplicationStatusApplied)

	all, err := repo.ListForCaster(db, caster.ID, ApplicationFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
	for _, app := range all {
		require.NotNil(t, app.CastingCall)
		assert.Equal(t, caster.ID, app.CastingCall.CasterID)
		require.NotNil(t, app.ActorProfile)
		require.NotNil(t, app.ActorProfile.Profile)
	}

	filtered, err := repo.ListForCaster(db, caster.ID, ApplicationFilter{CastingCallID: callOne.ID})
	require.NoError(t, err)
	assert.Len(t, filtered, 2)

	applied := models.ApplicationStatusApplied
	pending, err := repo.CountForCaster(db, caster.ID, &applied)
	require.NoError(t, err)
	assert.EqualValues(t, 2, pending)

	counts, err := repo.CountByCallIDs(db, []string{callOne.ID, callTwo.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 2, counts[callOne.ID])
	assert.EqualValues(t, 1, counts[callTwo.ID])

	ids, err := repo.AppliedCallIDs(db, actorA.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{callOne.ID, callTwo.ID}, ids)
}

func TestApplicationRepository_UpdateStatus(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewApplicationRepository()

	_, caster := testutil.CreateCaster(t, db, "Red Chillies")
	_, actor := testutil.CreateActor(t, db, "Jane Doe")
	call := testutil.CreateCastingCall(t, db, caster.ID, "Lead role", nil)
	app := testutil.CreateApplication(t, db, call.ID, actor.ID, models.ApplicationStatusRejected)

	// Переходы не ограничены: rejected -> selected допустим
	require.NoError(t, repo.UpdateStatus(db, app.ID, models.ApplicationStatusSelected))

	found, err := repo.FindByID(db, app.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusSelected, found.Status)

	assert.ErrorIs(t, repo.UpdateStatus(db, "missing", models.ApplicationStatusRejected), ErrApplicationNotFound)
}

func TestNotificationRepository_UnreadAndMarkRead(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewNotificationRepository()

	user, _ := testutil.CreateActor(t, db, "Jane Doe")

	for _, title := range []string{"First", "Second"} {
		require.NoError(t, repo.Create(db, &models.Notification{UserID: user.ID, Type: "application_status", Title: title}))
	}

	unread, err := repo.FindUnread(db, user.ID, 5)
	require.NoError(t, err)
	assert.Len(t, unread, 2)

	require.NoError(t, repo.MarkAllAsRead(db, user.ID))
	count, err := repo.CountUnread(db, user.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

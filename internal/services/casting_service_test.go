package services

import (
	"testing"
	"time"

	"onlyfame_backend/internal/models"
	"onlyfame_backend/internal/repositories"
	"onlyfame_backend/internal/services/dto"
	"onlyfame_backend/internal/testutil"
	"onlyfame_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCastingService_CreateCallNormalizesRequirements(t *testing.T) {
	env := newTestEnv(t)
	user, caster := testutil.CreateCaster(t, env.db, "Red Chillies")

	resp, err := env.sc.CastingService.CreateCall(env.db, user.ID, &dto.CreateCastingCallRequest{
		Title:       "  Lead role ",
		Description: "Feature film",
		Requirements: dto.RequirementsInput{
			AgeMin:          testutil.IntPtr(20),
			Gender:          []string{},
			Languages:       " English, , Hindi ,",
			ExperienceLevel: "any",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Lead role", resp.Call.Title)
	assert.Equal(t, caster.ID, resp.Call.CasterID)
	assert.True(t, resp.Call.IsActive)
	assert.Equal(t, "/caster/calls/"+resp.Call.ID, resp.Redirect)

	req := resp.Call.Requirements
	// Один край возраста без второго - требования по возрасту нет
	assert.Nil(t, req.AgeRange)
	assert.Nil(t, req.Gender)
	assert.Equal(t, []string{"English", "Hindi"}, req.Languages)
	assert.Nil(t, req.ExperienceLevel)
	assert.Nil(t, req.Location)
	assert.Nil(t, resp.Call.Deadline)
	assert.Nil(t, resp.Call.SampleScriptURL)

	stored, err := repositories.NewCastingRepository().FindByID(env.db, resp.Call.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"English", "Hindi"}, stored.GetRequirements().Languages)
}

func TestCastingService_CreateCallWithFullRequirements(t *testing.T) {
	env := newTestEnv(t)
	user, _ := testutil.CreateCaster(t, env.db, "Red Chillies")

	resp, err := env.sc.CastingService.CreateCall(env.db, user.ID, &dto.CreateCastingCallRequest{
		Title:       "Villain",
		Description: "Web series",
		Requirements: dto.RequirementsInput{
			AgeMin:          testutil.IntPtr(25),
			AgeMax:          testutil.IntPtr(40),
			Gender:          []string{"Male"},
			Location:        "Mumbai",
			ExperienceLevel: "experienced",
		},
		Deadline: "2026-12-31",
	})
	require.NoError(t, err)

	req := resp.Call.Requirements
	require.NotNil(t, req.AgeRange)
	assert.Equal(t, models.AgeRange{Min: 25, Max: 40}, *req.AgeRange)
	assert.Equal(t, []string{"Male"}, req.Gender)
	require.NotNil(t, req.ExperienceLevel)
	assert.Equal(t, models.ExperienceLevelExperienced, *req.ExperienceLevel)
	require.NotNil(t, resp.Call.Deadline)
	assert.Equal(t, "2026-12-31", *resp.Call.Deadline)
}

func TestCastingService_CreateCallInvalidAgeRange(t *testing.T) {
	env := newTestEnv(t)
	user, _ := testutil.CreateCaster(t, env.db, "Red Chillies")

	_, err := env.sc.CastingService.CreateCall(env.db, user.ID, &dto.CreateCastingCallRequest{
		Title:        "Lead",
		Description:  "Film",
		Requirements: dto.RequirementsInput{AgeMin: testutil.IntPtr(40), AgeMax: testutil.IntPtr(20)},
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidAgeRange)
}

func TestCastingService_CreateCallRequiresCastingProfile(t *testing.T) {
	env := newTestEnv(t)
	actorUser, _ := testutil.CreateActor(t, env.db, "Jane Doe")

	_, err := env.sc.CastingService.CreateCall(env.db, actorUser.ID, &dto.CreateCastingCallRequest{Title: "Lead", Description: "Film"})
	assert.ErrorIs(t, err, apperrors.ErrCastingProfileMissing)
}

func TestCastingService_GetCallForActor(t *testing.T) {
	env := newTestEnv(t)
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	env.setNow(now)

	actorUser, actor := testutil.CreateActor(t, env.db, "Jane Doe")
	_, caster := testutil.CreateCaster(t, env.db, "Red Chillies")

	open := testutil.CreateCastingCall(t, env.db, caster.ID, "Open", nil)
	inactive := testutil.CreateCastingCall(t, env.db, caster.ID, "Inactive", func(c *models.CastingCall) {
		c.IsActive = false
	})
	expired := testutil.CreateCastingCall(t, env.db, caster.ID, "Expired", func(c *models.CastingCall) {
		c.Deadline = testutil.TimePtr(time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC))
	})

	t.Run("открытый кастинг без заявки", func(t *testing.T) {
		view, err := env.sc.CastingService.GetCallForActor(env.db, actorUser.ID, open.ID)
		require.NoError(t, err)
		assert.True(t, view.CanApply)
		assert.Equal(t, "/actor/casting-calls/"+open.ID+"/apply", view.ApplyURL)
		assert.Nil(t, view.Application)
		require.NotNil(t, view.Call.Company)
		assert.Equal(t, "Red Chillies", view.Call.Company.CompanyName)
	})

	t.Run("после заявки подать нельзя", func(t *testing.T) {
		app := testutil.CreateApplication(t, env.db, open.ID, actor.ID, models.ApplicationStatusShortlisted)

		view, err := env.sc.CastingService.GetCallForActor(env.db, actorUser.ID, open.ID)
		require.NoError(t, err)
		assert.False(t, view.CanApply)
		assert.Empty(t, view.ApplyURL)
		require.NotNil(t, view.Application)
		assert.Equal(t, app.ID, view.Application.ID)
		assert.Equal(t, models.ApplicationStatusShortlisted, view.Application.Status)
	})

	t.Run("неактивный кастинг - 404 с причиной", func(t *testing.T) {
		_, err := env.sc.CastingService.GetCallForActor(env.db, actorUser.ID, inactive.ID)
		require.ErrorIs(t, err, apperrors.ErrCastingCallNotFound)

		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, map[string]string{"id": inactive.ID, "reason": "inactive"}, appErr.Details)
	})

	t.Run("прошедший дедлайн", func(t *testing.T) {
		view, err := env.sc.CastingService.GetCallForActor(env.db, actorUser.ID, expired.ID)
		require.NoError(t, err)
		assert.False(t, view.CanApply)
	})

	t.Run("несуществующий кастинг", func(t *testing.T) {
		_, err := env.sc.CastingService.GetCallForActor(env.db, actorUser.ID, "missing")
		assert.ErrorIs(t, err, apperrors.ErrCastingCallNotFound)
	})
}

func TestCastingService_ListActiveCalls(t *testing.T) {
	env := newTestEnv(t)

	actorUser, actor := testutil.CreateActor(t, env.db, "Jane Doe")
	actor.Age = testutil.IntPtr(25)
	require.NoError(t, repositories.NewProfileRepository().UpdateActorProfile(env.db, actor))

	_, caster := testutil.CreateCaster(t, env.db, "Red Chillies")

	fits := testutil.CreateCastingCall(t, env.db, caster.ID, "Young lead", func(c *models.CastingCall) {
		c.SetRequirements(models.CastingRequirements{AgeRange: &models.AgeRange{Min: 20, Max: 30}})
	})
	tooOld := testutil.CreateCastingCall(t, env.db, caster.ID, "Father", func(c *models.CastingCall) {
		c.SetRequirements(models.CastingRequirements{AgeRange: &models.AgeRange{Min: 45, Max: 60}})
	})
	testutil.CreateCastingCall(t, env.db, caster.ID, "Closed", func(c *models.CastingCall) {
		c.IsActive = false
	})
	testutil.CreateApplication(t, env.db, tooOld.ID, actor.ID, models.ApplicationStatusApplied)

	view, err := env.sc.CastingService.ListActiveCalls(env.db, actorUser.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Total)
	assert.Equal(t, []string{tooOld.ID}, view.AppliedCallIDs)

	applied := map[string]bool{}
	for _, card := range view.Calls {
		applied[card.ID] = card.HasApplied
		require.NotNil(t, card.Match)
		require.NotNil(t, card.Company)
	}
	assert.True(t, applied[tooOld.ID])
	assert.False(t, applied[fits.ID])

	matched, err := env.sc.CastingService.ListActiveCalls(env.db, actorUser.ID, true)
	require.NoError(t, err)
	assert.True(t, matched.MatchOnly)
	require.Len(t, matched.Calls, 1)
	assert.Equal(t, fits.ID, matched.Calls[0].ID)
}

func TestCastingService_CasterCallsAndOwnership(t *testing.T) {
	env := newTestEnv(t)

	casterUser, caster := testutil.CreateCaster(t, env.db, "Red Chillies")
	otherUser, _ := testutil.CreateCaster(t, env.db, "Dharma")
	_, actorA := testutil.CreateActor(t, env.db, "Actor A")
	_, actorB := testutil.CreateActor(t, env.db, "Actor B")

	call := testutil.CreateCastingCall(t, env.db, caster.ID, "Lead", nil)
	empty := testutil.CreateCastingCall(t, env.db, caster.ID, "Extra", nil)
	testutil.CreateApplication(t, env.db, call.ID, actorA.ID, models.ApplicationStatusApplied)
	testutil.CreateApplication(t, env.db, call.ID, actorB.ID, models.ApplicationStatusSelected)

	list, err := env.sc.CastingService.ListCasterCalls(env.db, casterUser.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)
	counts := map[string]int64{}
	for _, row := range list.Calls {
		counts[row.ID] = row.ApplicationCount
	}
	assert.EqualValues(t, 2, counts[call.ID])
	assert.EqualValues(t, 0, counts[empty.ID])

	detail, err := env.sc.CastingService.GetCasterCall(env.db, casterUser.ID, call.ID)
	require.NoError(t, err)
	assert.Len(t, detail.Applications, 2)
	assert.Equal(t, 1, detail.StatusCounts[models.ApplicationStatusApplied])
	assert.Equal(t, 1, detail.StatusCounts[models.ApplicationStatusSelected])
	assert.Equal(t, 0, detail.StatusCounts[models.ApplicationStatusRejected])

	_, err = env.sc.CastingService.GetCasterCall(env.db, otherUser.ID, call.ID)
	assert.ErrorIs(t, err, apperrors.ErrCastingCallNotFound)

	_, err = env.sc.CastingService.UpdateCall(env.db, otherUser.ID, call.ID, &dto.UpdateCastingCallRequest{IsActive: testutil.BoolPtr(false)})
	assert.ErrorIs(t, err, apperrors.ErrCastingCallNotFound)
}

func TestCastingService_UpdateCall(t *testing.T) {
	env := newTestEnv(t)

	casterUser, caster := testutil.CreateCaster(t, env.db, "Red Chillies")
	call := testutil.CreateCastingCall(t, env.db, caster.ID, "Lead", func(c *models.CastingCall) {
		c.Deadline = testutil.TimePtr(time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC))
	})

	resp, err := env.sc.CastingService.UpdateCall(env.db, casterUser.ID, call.ID, &dto.UpdateCastingCallRequest{
		Title:    testutil.StrPtr("Lead (updated)"),
		IsActive: testutil.BoolPtr(false),
		Deadline: testutil.StrPtr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, "Lead (updated)", resp.Title)
	assert.False(t, resp.IsActive)
	assert.Nil(t, resp.Deadline)
}

func TestCastingService_CreateCallRejectsBlankText(t *testing.T) {
	env := newTestEnv(t)
	casterUser, caster := testutil.CreateCaster(t, env.db, "Red Chillies")

	tests := []struct {
		name  string
		req   dto.CreateCastingCallRequest
		field string
	}{
		{"Название из пробелов", dto.CreateCastingCallRequest{Title: "   ", Description: "Film"}, "title"},
		{"Описание из пробелов", dto.CreateCastingCallRequest{Title: "Lead", Description: " \t "}, "description"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.sc.CastingService.CreateCall(env.db, casterUser.ID, &tc.req)
			require.Error(t, err)

			appErr, ok := apperrors.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
			assert.Contains(t, appErr.Details, tc.field)
		})
	}

	count, err := repositories.NewCastingRepository().CountByCaster(env.db, caster.ID, false)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCastingService_UpdateCallRejectsBlankText(t *testing.T) {
	env := newTestEnv(t)
	casterUser, caster := testutil.CreateCaster(t, env.db, "Red Chillies")
	call := testutil.CreateCastingCall(t, env.db, caster.ID, "Lead", func(c *models.CastingCall) {
		c.Description = testutil.StrPtr("Feature film")
	})

	_, err := env.sc.CastingService.UpdateCall(env.db, casterUser.ID, call.ID, &dto.UpdateCastingCallRequest{Title: testutil.StrPtr(" ")})
	require.Error(t, err)

	_, err = env.sc.CastingService.UpdateCall(env.db, casterUser.ID, call.ID, &dto.UpdateCastingCallRequest{Description: testutil.StrPtr("  ")})
	require.Error(t, err)

	stored, err := repositories.NewCastingRepository().FindByID(env.db, call.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lead", stored.Title)
	require.NotNil(t, stored.Description)
	assert.Equal(t, "Feature film", *stored.Description)
}

func TestCastingService_GetCallForActorWithoutActorProfile(t *testing.T) {
	env := newTestEnv(t)
	casterUser, caster := testutil.CreateCaster(t, env.db, "Red Chillies")
	call := testutil.CreateCastingCall(t, env.db, caster.ID, "Lead", nil)

	view, err := env.sc.CastingService.GetCallForActor(env.db, casterUser.ID, call.ID)
	require.NoError(t, err)
	assert.False(t, view.CanApply)
	assert.Empty(t, view.ApplyURL)
	assert.Nil(t, view.Match)
}

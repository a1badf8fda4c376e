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

func TestApplicationService_Apply(t *testing.T) {
	env := newTestEnv(t)

	actorUser, actor := testutil.CreateActor(t, env.db, "Jane Doe")
	casterUser, caster := testutil.CreateCaster(t, env.db, "Red Chillies")
	call := testutil.CreateCastingCall(t, env.db, caster.ID, "Lead role", nil)

	resp, err := env.sc.ApplicationService.Apply(env.db, actorUser.ID, call.ID, &dto.ApplyRequest{
		CoverLetter: "Excited for this role",
	})
	require.NoError(t, err)
	assert.Equal(t, "Application submitted successfully!", resp.Message)
	assert.Equal(t, "/actor/applications", resp.Redirect)
	assert.Equal(t, models.ApplicationStatusApplied, resp.Application.Status)

	stored, err := repositories.NewApplicationRepository().FindByActorAndCall(env.db, actor.ID, call.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Notes)
	assert.Equal(t, "Excited for this role", *stored.Notes)
	assert.Nil(t, stored.AuditionVideoURL)

	// Кастер получает уведомление о новой заявке
	unread, err := env.sc.NotificationService.GetUnread(env.db, casterUser.ID, 5)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, "new_application", unread[0].Type)
}

func TestApplicationService_ApplyTwiceRejected(t *testing.T) {
	env := newTestEnv(t)

	actorUser, _ := testutil.CreateActor(t, env.db, "Jane Doe")
	_, caster := testutil.CreateCaster(t, env.db, "Red Chillies")
	call := testutil.CreateCastingCall(t, env.db, caster.ID, "Lead role", nil)

	_, err := env.sc.ApplicationService.Apply(env.db, actorUser.ID, call.ID, &dto.ApplyRequest{})
	require.NoError(t, err)

	_, err = env.sc.ApplicationService.Apply(env.db, actorUser.ID, call.ID, &dto.ApplyRequest{})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyApplied)

	var count int64
	require.NoError(t, env.db.Model(&models.Application{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestApplicationService_ApplyErrors(t *testing.T) {
	env := newTestEnv(t)
	env.setNow(time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC))

	actorUser, _ := testutil.CreateActor(t, env.db, "Jane Doe")
	casterUser, caster := testutil.CreateCaster(t, env.db, "Red Chillies")

	inactive := testutil.CreateCastingCall(t, env.db, caster.ID, "Inactive", func(c *models.CastingCall) {
		c.IsActive = false
	})
	expired := testutil.CreateCastingCall(t, env.db, caster.ID, "Expired", func(c *models.CastingCall) {
		c.Deadline = testutil.TimePtr(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))
	})
	open := testutil.CreateCastingCall(t, env.db, caster.ID, "Open", nil)

	tests := []struct {
		name   string
		userID string
		callID string
		want   error
	}{
		{"неактивный кастинг", actorUser.ID, inactive.ID, apperrors.ErrCastingCallClosed},
		{"дедлайн прошел", actorUser.ID, expired.ID, apperrors.ErrCastingCallClosed},
		{"кастинга нет", actorUser.ID, "missing", apperrors.ErrCastingCallNotFound},
		{"нет профиля актера", casterUser.ID, open.ID, apperrors.ErrActorProfileMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.sc.ApplicationService.Apply(env.db, tt.userID, tt.callID, &dto.ApplyRequest{})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestApplicationService_GetApplyForm(t *testing.T) {
	env := newTestEnv(t)

	actorUser, actor := testutil.CreateActor(t, env.db, "Jane Doe")
	_, caster := testutil.CreateCaster(t, env.db, "Red Chillies")
	call := testutil.CreateCastingCall(t, env.db, caster.ID, "Lead role", nil)

	form, err := env.sc.ApplicationService.GetApplyForm(env.db, actorUser.ID, call.ID)
	require.NoError(t, err)
	assert.True(t, form.CanApply)
	assert.False(t, form.AlreadyApplied)

	testutil.CreateApplication(t, env.db, call.ID, actor.ID, models.ApplicationStatusApplied)

	form, err = env.sc.ApplicationService.GetApplyForm(env.db, actorUser.ID, call.ID)
	require.NoError(t, err)
	assert.False(t, form.CanApply)
	assert.True(t, form.AlreadyApplied)
	require.NotNil(t, form.Application)
}

func TestApplicationService_ListActorApplicationsGrouped(t *testing.T) {
	env := newTestEnv(t)

	actorUser, actor := testutil.CreateActor(t, env.db, "Jane Doe")
	_, caster := testutil.CreateCaster(t, env.db, "Red Chillies")
	one := testutil.CreateCastingCall(t, env.db, caster.ID, "One", nil)
	two := testutil.CreateCastingCall(t, env.db, caster.ID, "Two", nil)
	testutil.CreateApplication(t, env.db, one.ID, actor.ID, models.ApplicationStatusApplied)
	testutil.CreateApplication(t, env.db, two.ID, actor.ID, models.ApplicationStatusSelected)

	view, err := env.sc.ApplicationService.ListActorApplications(env.db, actorUser.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Total)
	assert.Equal(t, 1, view.Counts[models.ApplicationStatusApplied])
	assert.Equal(t, 1, view.Counts[models.ApplicationStatusSelected])
	assert.Equal(t, 0, view.Counts[models.ApplicationStatusRejected])

	require.Len(t, view.Groups, 4)
	for _, group := range view.Groups {
		assert.NotNil(t, group.Applications)
		if group.Status == models.ApplicationStatusSelected {
			require.Len(t, group.Applications, 1)
			require.NotNil(t, group.Applications[0].CastingCall)
			assert.Equal(t, "Two", group.Applications[0].CastingCall.Title)
		}
	}
}

func TestApplicationService_ContactOnlyWhenSelected(t *testing.T) {
	env := newTestEnv(t)

	casterUser, caster := testutil.CreateCaster(t, env.db, "Red Chillies")
	actorAUser, actorA := testutil.CreateActor(t, env.db, "Actor A")
	_, actorB := testutil.CreateActor(t, env.db, "Actor B")
	call := testutil.CreateCastingCall(t, env.db, caster.ID, "Lead role", nil)

	selected := testutil.CreateApplication(t, env.db, call.ID, actorA.ID, models.ApplicationStatusSelected)
	applied := testutil.CreateApplication(t, env.db, call.ID, actorB.ID, models.ApplicationStatusApplied)

	view, err := env.sc.ApplicationService.ListForCaster(env.db, casterUser.ID, "")
	require.NoError(t, err)
	require.Len(t, view.Applications, 2)
	assert.Equal(t, 1, view.StatusCounts[models.ApplicationStatusSelected])
	assert.Equal(t, 1, view.StatusCounts[models.ApplicationStatusApplied])
	require.Len(t, view.Calls, 1)

	for _, row := range view.Applications {
		switch row.ID {
		case selected.ID:
			require.NotNil(t, row.Contact)
			assert.Equal(t, actorAUser.Email, row.Contact.Email)
			assert.Empty(t, row.Actions)
		case applied.ID:
			assert.Nil(t, row.Contact)
			require.Len(t, row.Actions, 2)
			assert.Equal(t, "Shortlist", row.Actions[0].Label)
			assert.Equal(t, "Reject", row.Actions[1].Label)
		default:
			t.Fatalf("неожиданная заявка %s", row.ID)
		}
	}

	review, err := env.sc.ApplicationService.GetForCaster(env.db, casterUser.ID, applied.ID)
	require.NoError(t, err)
	assert.Nil(t, review.Application.Contact)
	require.Len(t, review.Buttons, 3)
	for _, b := range review.Buttons {
		assert.False(t, b.Disabled)
		assert.Equal(t, "PUT", b.Method)
	}

	review, err = env.sc.ApplicationService.GetForCaster(env.db, casterUser.ID, selected.ID)
	require.NoError(t, err)
	assert.NotNil(t, review.Application.Contact)
	for _, b := range review.Buttons {
		assert.Equal(t, b.Label == "Select", b.Disabled)
	}
}

func TestApplicationService_UpdateStatus(t *testing.T) {
	env := newTestEnv(t)

	casterUser, caster := testutil.CreateCaster(t, env.db, "Red Chillies")
	otherUser, _ := testutil.CreateCaster(t, env.db, "Dharma")
	actorUser, actor := testutil.CreateActor(t, env.db, "Jane Doe")
	call := testutil.CreateCastingCall(t, env.db, caster.ID, "Lead role", nil)
	app := testutil.CreateApplication(t, env.db, call.ID, actor.ID, models.ApplicationStatusApplied)

	// applied -> rejected -> selected: переходы не ограничены
	for _, status := range []models.ApplicationStatus{models.ApplicationStatusRejected, models.ApplicationStatusSelected} {
		resp, err := env.sc.ApplicationService.UpdateStatus(env.db, casterUser.ID, app.ID, &dto.UpdateApplicationStatusRequest{Status: status})
		require.NoError(t, err)
		assert.Equal(t, status, resp.Status)
		assert.Equal(t, "Application "+string(status), resp.Message)
	}

	stored, err := repositories.NewApplicationRepository().FindByID(env.db, app.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusSelected, stored.Status)

	unread, err := env.sc.NotificationService.GetUnread(env.db, actorUser.ID, 5)
	require.NoError(t, err)
	assert.Len(t, unread, 2)

	_, err = env.sc.ApplicationService.UpdateStatus(env.db, otherUser.ID, app.ID, &dto.UpdateApplicationStatusRequest{Status: models.ApplicationStatusRejected})
	assert.ErrorIs(t, err, apperrors.ErrApplicationNotFound)

	_, err = env.sc.ApplicationService.UpdateStatus(env.db, casterUser.ID, app.ID, &dto.UpdateApplicationStatusRequest{Status: models.ApplicationStatusApplied})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidStatus, appErr.Code)
}

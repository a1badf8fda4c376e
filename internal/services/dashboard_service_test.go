package services

import (
	"testing"

	"onlyfame_backend/internal/models"
	"onlyfame_backend/internal/services/dto"
	"onlyfame_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_ActorEmpty(t *testing.T) {
	env := newTestEnv(t)
	user, _ := testutil.CreateActor(t, env.db, "Jane Doe")

	view, err := env.sc.DashboardService.ActorDashboard(env.db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, dto.ActorStats{}, view.Stats)
	assert.Empty(t, view.RecentApplications)
	assert.NotNil(t, view.RecentApplications)
	assert.False(t, view.ProfileComplete)
	require.NotNil(t, view.Profile)
	assert.Equal(t, "Jane Doe", view.Profile.FullName)
}

func TestDashboardService_ActorStats(t *testing.T) {
	env := newTestEnv(t)
	user, actor := testutil.CreateActor(t, env.db, "Jane Doe")
	_, caster := testutil.CreateCaster(t, env.db, "Red Chillies")

	statuses := []models.ApplicationStatus{
		models.ApplicationStatusApplied,
		models.ApplicationStatusShortlisted,
		models.ApplicationStatusShortlisted,
		models.ApplicationStatusSelected,
		models.ApplicationStatusRejected,
		models.ApplicationStatusApplied,
	}
	for _, st := range statuses {
		call := testutil.CreateCastingCall(t, env.db, caster.ID, "Call "+string(st), nil)
		testutil.CreateApplication(t, env.db, call.ID, actor.ID, st)
	}

	view, err := env.sc.DashboardService.ActorDashboard(env.db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, dto.ActorStats{Total: 6, Shortlisted: 2, Selected: 1}, view.Stats)
	// Последние 5
	assert.Len(t, view.RecentApplications, 5)
	for _, app := range view.RecentApplications {
		require.NotNil(t, app.CastingCall)
	}
}

func TestDashboardService_Caster(t *testing.T) {
	env := newTestEnv(t)
	casterUser, caster := testutil.CreateCaster(t, env.db, "Red Chillies")
	_, actor := testutil.CreateActor(t, env.db, "Jane Doe")

	view, err := env.sc.DashboardService.CasterDashboard(env.db, casterUser.ID)
	require.NoError(t, err)
	assert.Equal(t, dto.CasterStats{}, view.Stats)
	assert.Empty(t, view.RecentCalls)
	require.NotNil(t, view.Company)
	assert.Equal(t, "Red Chillies", view.Company.CompanyName)

	open := testutil.CreateCastingCall(t, env.db, caster.ID, "Open", nil)
	closed := testutil.CreateCastingCall(t, env.db, caster.ID, "Closed", func(c *models.CastingCall) {
		c.IsActive = false
	})
	testutil.CreateApplication(t, env.db, open.ID, actor.ID, models.ApplicationStatusApplied)
	testutil.CreateApplication(t, env.db, closed.ID, actor.ID, models.ApplicationStatusSelected)

	view, err = env.sc.DashboardService.CasterDashboard(env.db, casterUser.ID)
	require.NoError(t, err)
	assert.Equal(t, dto.CasterStats{
		TotalCalls:          2,
		ActiveCalls:         1,
		TotalApplications:   2,
		PendingApplications: 1,
	}, view.Stats)
	assert.Len(t, view.RecentCalls, 2)
	require.Len(t, view.RecentApplications, 2)
	for _, row := range view.RecentApplications {
		require.NotNil(t, row.Actor)
		assert.Equal(t, "Jane Doe", row.Actor.FullName)
	}
}

func TestNotificationService_MarkAllAsRead(t *testing.T) {
	env := newTestEnv(t)
	user, _ := testutil.CreateActor(t, env.db, "Jane Doe")
	call := &models.CastingCall{Title: "Lead"}

	require.NoError(t, env.sc.NotificationService.NotifyApplicationStatus(env.db, user.ID, call, models.ApplicationStatusShortlisted))

	unread, err := env.sc.NotificationService.GetUnread(env.db, user.ID, 5)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, `Your application to "Lead" is now shortlisted`, unread[0].Message)
	require.NotNil(t, unread[0].Link)
	assert.Equal(t, "/actor/applications", *unread[0].Link)

	require.NoError(t, env.sc.NotificationService.MarkAllAsRead(env.db, user.ID))
	unread, err = env.sc.NotificationService.GetUnread(env.db, user.ID, 5)
	require.NoError(t, err)
	assert.Empty(t, unread)
}

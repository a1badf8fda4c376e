package services

import (
	"errors"

	"onlyfame_backend/internal/models"
	"onlyfame_backend/internal/repositories"
	"onlyfame_backend/internal/services/dto"
	"onlyfame_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// Сколько последних записей показывает дашборд
const dashboardRecentLimit = 5

type DashboardService interface {
	ActorDashboard(db *gorm.DB, userID string) (*dto.ActorDashboardView, error)
	CasterDashboard(db *gorm.DB, userID string) (*dto.CasterDashboardView, error)
}

type dashboardService struct {
	profileRepo         repositories.ProfileRepository
	castingRepo         repositories.CastingRepository
	applicationRepo     repositories.ApplicationRepository
	notificationService NotificationService
}

func NewDashboardService(
	profileRepo repositories.ProfileRepository,
	castingRepo repositories.CastingRepository,
	applicationRepo repositories.ApplicationRepository,
	notificationService NotificationService,
) DashboardService {
	return &dashboardService{
		profileRepo:         profileRepo,
		castingRepo:         castingRepo,
		applicationRepo:     applicationRepo,
		notificationService: notificationService,
	}
}

func (s *dashboardService) ActorDashboard(db *gorm.DB, userID string) (*dto.ActorDashboardView, error) {
	ctx := db.Statement.Context

	profile, err := s.profileRepo.FindProfileByID(db, userID)
	if err != nil {
		return nil, handleProfileError(err)
	}

	view := &dto.ActorDashboardView{
		RecentApplications: []dto.ApplicationResponse{},
	}

	actor, err := s.profileRepo.FindActorProfileByUserID(db, userID)
	if err != nil && !errors.Is(err, repositories.ErrActorProfileNotFound) {
		return nil, apperrors.DatabaseError(err)
	}

	if actor != nil {
		view.Profile = dto.NewActorProfileResponse(profile, actor)
		view.ProfileComplete = actor.IsComplete()

		recent, err := s.applicationRepo.ListByActor(db, actor.ID, dashboardRecentLimit)
		if err != nil {
			return nil, apperrors.DatabaseError(err)
		}
		for i := range recent {
			view.RecentApplications = append(view.RecentApplications, dto.NewApplicationResponse(&recent[i]))
		}

		shortlisted := models.ApplicationStatusShortlisted
		selected := models.ApplicationStatusSelected

		total, err := s.applicationRepo.CountByActor(db, actor.ID, nil)
		view.Stats.Total = countOrZero(ctx, "total", total, err)
		short, err := s.applicationRepo.CountByActor(db, actor.ID, &shortlisted)
		view.Stats.Shortlisted = countOrZero(ctx, "shortlisted", short, err)
		sel, err := s.applicationRepo.CountByActor(db, actor.ID, &selected)
		view.Stats.Selected = countOrZero(ctx, "selected", sel, err)
	}

	notifications, err := s.notificationService.GetUnread(db, userID, dashboardRecentLimit)
	if err != nil {
		return nil, err
	}
	view.Notifications = notifications

	return view, nil
}

// CasterDashboard - заявки считаются по всем кастингам директора
func (s *dashboardService) CasterDashboard(db *gorm.DB, userID string) (*dto.CasterDashboardView, error) {
	ctx := db.Statement.Context

	profile, err := s.profileRepo.FindProfileByID(db, userID)
	if err != nil {
		return nil, handleProfileError(err)
	}

	view := &dto.CasterDashboardView{
		Profile:            profile,
		RecentCalls:        []dto.CastingCallResponse{},
		RecentApplications: []dto.ApplicationReviewRow{},
	}

	caster, err := s.profileRepo.FindCastingProfileByUserID(db, userID)
	if err != nil && !errors.Is(err, repositories.ErrCastingProfileNotFound) {
		return nil, apperrors.DatabaseError(err)
	}

	if caster != nil {
		view.Company = dto.NewCompanySummary(caster, true)

		calls, err := s.castingRepo.FindByCaster(db, caster.ID, dashboardRecentLimit)
		if err != nil {
			return nil, apperrors.DatabaseError(err)
		}
		for i := range calls {
			calls[i].CastingProfile = caster
			view.RecentCalls = append(view.RecentCalls, dto.NewCastingCallResponse(&calls[i], false))
		}

		apps, err := s.applicationRepo.ListForCaster(db, caster.ID, repositories.ApplicationFilter{Limit: dashboardRecentLimit})
		if err != nil {
			return nil, apperrors.DatabaseError(err)
		}
		for i := range apps {
			view.RecentApplications = append(view.RecentApplications, dto.NewApplicationReviewRow(&apps[i]))
		}

		pending := models.ApplicationStatusApplied

		totalCalls, err := s.castingRepo.CountByCaster(db, caster.ID, false)
		view.Stats.TotalCalls = countOrZero(ctx, "total_calls", totalCalls, err)
		activeCalls, err := s.castingRepo.CountByCaster(db, caster.ID, true)
		view.Stats.ActiveCalls = countOrZero(ctx, "active_calls", activeCalls, err)
		totalApps, err := s.applicationRepo.CountForCaster(db, caster.ID, nil)
		view.Stats.TotalApplications = countOrZero(ctx, "total_applications", totalApps, err)
		pendingApps, err := s.applicationRepo.CountForCaster(db, caster.ID, &pending)
		view.Stats.PendingApplications = countOrZero(ctx, "pending_applications", pendingApps, err)
	}

	notifications, err := s.notificationService.GetUnread(db, userID, dashboardRecentLimit)
	if err != nil {
		return nil, err
	}
	view.Notifications = notifications

	return view, nil
}

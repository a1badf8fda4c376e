package services

import (
	"context"
	"errors"

	"onlyfame_backend/internal/logger"
	"onlyfame_backend/internal/models"
	"onlyfame_backend/internal/repositories"
	"onlyfame_backend/internal/services/dto"
	"onlyfame_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ApplicationService interface {
	// Actor
	GetApplyForm(db *gorm.DB, userID, callID string) (*dto.ApplyFormView, error)
	Apply(db *gorm.DB, userID, callID string, req *dto.ApplyRequest) (*dto.ApplyResponse, error)
	ListActorApplications(db *gorm.DB, userID string) (*dto.ActorApplicationsView, error)

	// Caster
	ListForCaster(db *gorm.DB, userID, callFilter string) (*dto.CasterApplicationsView, error)
	GetForCaster(db *gorm.DB, userID, applicationID string) (*dto.ApplicationReviewView, error)
	UpdateStatus(db *gorm.DB, userID, applicationID string, req *dto.UpdateApplicationStatusRequest) (*dto.UpdateApplicationStatusResponse, error)
}

type ApplicationServiceImpl struct {
	applicationRepo     repositories.ApplicationRepository
	castingRepo         repositories.CastingRepository
	profileRepo         repositories.ProfileRepository
	notificationService NotificationService
	now                 Clock
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	castingRepo repositories.CastingRepository,
	profileRepo repositories.ProfileRepository,
	notificationService NotificationService,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo:     applicationRepo,
		castingRepo:         castingRepo,
		profileRepo:         profileRepo,
		notificationService: notificationService,
		now:                 defaultClock,
	}
}

// ==========================
// Actor
// ==========================

func (s *ApplicationServiceImpl) GetApplyForm(db *gorm.DB, userID, callID string) (*dto.ApplyFormView, error) {
	call, err := s.castingRepo.FindByID(db, callID)
	if err != nil {
		return nil, castingNotFound(err, callID)
	}

	view := &dto.ApplyFormView{Call: dto.NewCastingCallResponse(call, false)}

	actor, err := s.profileRepo.FindActorProfileByUserID(db, userID)
	if err != nil && !errors.Is(err, repositories.ErrActorProfileNotFound) {
		return nil, apperrors.DatabaseError(err)
	}
	if actor != nil {
		existing, err := s.applicationRepo.FindByActorAndCall(db, actor.ID, call.ID)
		if err != nil && !errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.DatabaseError(err)
		}
		view.Application = dto.NewExistingApplication(existing)
		view.AlreadyApplied = existing != nil
	}

	view.CanApply = actor != nil && !view.AlreadyApplied && call.AcceptsApplications(s.now())
	return view, nil
}

// Apply - подача заявки. Дубликат отсекается проверкой и уникальным индексом.
func (s *ApplicationServiceImpl) Apply(db *gorm.DB, userID, callID string, req *dto.ApplyRequest) (*dto.ApplyResponse, error) {
	ctx := db.Statement.Context

	actor, err := s.profileRepo.FindActorProfileByUserID(db, userID)
	if err != nil {
		return nil, handleProfileError(err)
	}

	call, err := s.castingRepo.FindByID(db, callID)
	if err != nil {
		return nil, castingNotFound(err, callID)
	}
	if !call.AcceptsApplications(s.now()) {
		return nil, apperrors.ErrCastingCallClosed
	}

	if _, err := s.applicationRepo.FindByActorAndCall(db, actor.ID, call.ID); err == nil {
		return nil, apperrors.ErrAlreadyApplied
	} else if !errors.Is(err, repositories.ErrApplicationNotFound) {
		return nil, apperrors.DatabaseError(err)
	}

	app := &models.Application{
		CastingCallID:    call.ID,
		ActorID:          actor.ID,
		Status:           models.ApplicationStatusApplied,
		Notes:            nullIfEmpty(req.CoverLetter),
		AuditionVideoURL: nullIfEmpty(req.AuditionVideoURL),
	}
	if err := s.applicationRepo.Create(db, app); err != nil {
		if errors.Is(err, repositories.ErrDuplicateApplication) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.DatabaseError(err)
	}
	app.CastingCall = call

	s.notifyCaster(ctx, db, userID, call, app.ID)

	logger.CtxInfo(ctx, "Application submitted", "application_id", app.ID, "casting_call_id", call.ID)

	return &dto.ApplyResponse{
		Application: dto.NewApplicationResponse(app),
		Message:     "Application submitted successfully!",
		Redirect:    "/actor/applications",
	}, nil
}

// notifyCaster - уведомление не должно ломать уже сохраненную заявку
func (s *ApplicationServiceImpl) notifyCaster(ctx context.Context, db *gorm.DB, actorUserID string, call *models.CastingCall, applicationID string) {
	if call.CastingProfile == nil {
		return
	}
	actorName := ""
	if profile, err := s.profileRepo.FindProfileByID(db, actorUserID); err == nil {
		actorName = profile.FullName
	}
	if err := s.notificationService.NotifyNewApplication(db, call.CastingProfile.UserID, actorName, call, applicationID); err != nil {
		logger.CtxWarn(ctx, "Failed to store new application notification", "application_id", applicationID, "error", err.Error())
	}
}

// ListActorApplications - все заявки актера, сгруппированные по статусу
func (s *ApplicationServiceImpl) ListActorApplications(db *gorm.DB, userID string) (*dto.ActorApplicationsView, error) {
	view := &dto.ActorApplicationsView{Counts: dto.EmptyStatusCounts()}

	actor, err := s.profileRepo.FindActorProfileByUserID(db, userID)
	if err != nil && !errors.Is(err, repositories.ErrActorProfileNotFound) {
		return nil, apperrors.DatabaseError(err)
	}

	var apps []models.Application
	if actor != nil {
		if apps, err = s.applicationRepo.ListByActor(db, actor.ID, 0); err != nil {
			return nil, apperrors.DatabaseError(err)
		}
	}

	grouped := make(map[models.ApplicationStatus][]dto.ApplicationResponse, len(models.ApplicationStatuses))
	for i := range apps {
		grouped[apps[i].Status] = append(grouped[apps[i].Status], dto.NewApplicationResponse(&apps[i]))
		view.Counts[apps[i].Status]++
	}

	view.Groups = make([]dto.ApplicationGroup, 0, len(models.ApplicationStatuses))
	for _, st := range models.ApplicationStatuses {
		items := grouped[st]
		if items == nil {
			items = []dto.ApplicationResponse{}
		}
		view.Groups = append(view.Groups, dto.ApplicationGroup{Status: st, Applications: items})
	}
	view.Total = len(apps)
	return view, nil
}

// ==========================
// Caster
// ==========================

func (s *ApplicationServiceImpl) ListForCaster(db *gorm.DB, userID, callFilter string) (*dto.CasterApplicationsView, error) {
	caster, err := s.profileRepo.FindCastingProfileByUserID(db, userID)
	if err != nil {
		return nil, handleProfileError(err)
	}

	calls, err := s.castingRepo.FindByCaster(db, caster.ID, 0)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	apps, err := s.applicationRepo.ListForCaster(db, caster.ID, repositories.ApplicationFilter{CastingCallID: callFilter})
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	view := &dto.CasterApplicationsView{
		CallFilter:   callFilter,
		Calls:        make([]dto.CallRef, 0, len(calls)),
		Applications: make([]dto.ApplicationReviewRow, 0, len(apps)),
		StatusCounts: dto.EmptyStatusCounts(),
		Total:        len(apps),
	}
	for i := range calls {
		view.Calls = append(view.Calls, *dto.NewCallRef(&calls[i]))
	}
	for i := range apps {
		view.Applications = append(view.Applications, dto.NewApplicationReviewRow(&apps[i]))
		view.StatusCounts[apps[i].Status]++
	}
	return view, nil
}

func (s *ApplicationServiceImpl) GetForCaster(db *gorm.DB, userID, applicationID string) (*dto.ApplicationReviewView, error) {
	app, err := s.findOwned(db, userID, applicationID)
	if err != nil {
		return nil, err
	}

	row := dto.NewApplicationReviewRow(app)
	return &dto.ApplicationReviewView{
		Application: row,
		Buttons:     dto.StatusActions(app.ID, models.ReviewStatuses, app.Status),
	}, nil
}

// UpdateStatus - переход не ограничивается: допустим любой статус ревью из любого
func (s *ApplicationServiceImpl) UpdateStatus(db *gorm.DB, userID, applicationID string, req *dto.UpdateApplicationStatusRequest) (*dto.UpdateApplicationStatusResponse, error) {
	if !req.Status.IsReviewStatus() {
		return nil, apperrors.ErrInvalidStatus("application", "Status must be one of: shortlisted, selected, rejected")
	}

	app, err := s.findOwned(db, userID, applicationID)
	if err != nil {
		return nil, err
	}

	if err := s.applicationRepo.UpdateStatus(db, app.ID, req.Status); err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, applicationNotFound(applicationID)
		}
		return nil, apperrors.DatabaseError(err)
	}

	ctx := db.Statement.Context
	if app.ActorProfile != nil {
		if err := s.notificationService.NotifyApplicationStatus(db, app.ActorProfile.UserID, app.CastingCall, req.Status); err != nil {
			logger.CtxWarn(ctx, "Failed to store status notification", "application_id", app.ID, "error", err.Error())
		}
	}

	logger.CtxInfo(ctx, "Application status updated", "application_id", app.ID, "from", app.Status, "to", req.Status)

	return &dto.UpdateApplicationStatusResponse{
		ID:      app.ID,
		Status:  req.Status,
		Message: "Application " + string(req.Status),
	}, nil
}

// findOwned - заявка на чужой кастинг выглядит как несуществующая
func (s *ApplicationServiceImpl) findOwned(db *gorm.DB, userID, applicationID string) (*models.Application, error) {
	caster, err := s.profileRepo.FindCastingProfileByUserID(db, userID)
	if err != nil {
		return nil, handleProfileError(err)
	}

	app, err := s.applicationRepo.FindByID(db, applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, applicationNotFound(applicationID)
		}
		return nil, apperrors.DatabaseError(err)
	}
	if app.CastingCall == nil || app.CastingCall.CasterID != caster.ID {
		return nil, applicationNotFound(applicationID)
	}
	return app, nil
}

func applicationNotFound(id string) error {
	return apperrors.ErrApplicationNotFound.WithDetails(map[string]string{
		"id":     id,
		"reason": "not_found",
	})
}

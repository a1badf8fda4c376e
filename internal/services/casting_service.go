package services

import (
	"errors"
	"strings"
	"time"

	"onlyfame_backend/internal/algorithms"
	"onlyfame_backend/internal/models"
	"onlyfame_backend/internal/repositories"
	"onlyfame_backend/internal/services/dto"
	"onlyfame_backend/internal/validator"
	"onlyfame_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type CastingService interface {
	// Caster
	CreateCall(db *gorm.DB, userID string, req *dto.CreateCastingCallRequest) (*dto.CreateCastingCallResponse, error)
	UpdateCall(db *gorm.DB, userID, callID string, req *dto.UpdateCastingCallRequest) (*dto.CastingCallResponse, error)
	ListCasterCalls(db *gorm.DB, userID string) (*dto.CasterCallsView, error)
	GetCasterCall(db *gorm.DB, userID, callID string) (*dto.CasterCallDetailView, error)

	// Actor
	ListActiveCalls(db *gorm.DB, userID string, matchOnly bool) (*dto.CastingCallListView, error)
	GetCallForActor(db *gorm.DB, userID, callID string) (*dto.CastingCallDetailView, error)
}

type CastingServiceImpl struct {
	castingRepo     repositories.CastingRepository
	applicationRepo repositories.ApplicationRepository
	profileRepo     repositories.ProfileRepository
	now             Clock
}

func NewCastingService(
	castingRepo repositories.CastingRepository,
	applicationRepo repositories.ApplicationRepository,
	profileRepo repositories.ProfileRepository,
) CastingService {
	return &CastingServiceImpl{
		castingRepo:     castingRepo,
		applicationRepo: applicationRepo,
		profileRepo:     profileRepo,
		now:             defaultClock,
	}
}

// ==========================
// Caster
// ==========================

// CreateCall нормализует форму: незаданные требования хранятся как null
func (s *CastingServiceImpl) CreateCall(db *gorm.DB, userID string, req *dto.CreateCastingCallRequest) (*dto.CreateCastingCallResponse, error) {
	title, err := requireText("title", req.Title)
	if err != nil {
		return nil, err
	}
	description, err := requireText("description", req.Description)
	if err != nil {
		return nil, err
	}

	caster, err := s.profileRepo.FindCastingProfileByUserID(db, userID)
	if err != nil {
		return nil, handleProfileError(err)
	}

	requirements, err := normalizeRequirements(req.Requirements)
	if err != nil {
		return nil, err
	}

	deadline, err := parseDeadline(req.Deadline)
	if err != nil {
		return nil, err
	}

	call := &models.CastingCall{
		CasterID:        caster.ID,
		Title:           title,
		Description:     &description,
		SampleScriptURL: nullIfEmpty(req.SampleScriptURL),
		VoiceNoteURL:    nullIfEmpty(req.VoiceNoteURL),
		IsActive:        true,
		Deadline:        deadline,
	}
	call.SetRequirements(requirements)

	if err := s.castingRepo.Create(db, call); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	call.CastingProfile = caster

	return &dto.CreateCastingCallResponse{
		Call:     dto.NewCastingCallResponse(call, false),
		Message:  "Casting call created successfully!",
		Redirect: "/caster/calls/" + call.ID,
	}, nil
}

func normalizeRequirements(in dto.RequirementsInput) (models.CastingRequirements, error) {
	var req models.CastingRequirements

	if in.AgeMin != nil && in.AgeMax != nil {
		if *in.AgeMin > *in.AgeMax {
			return req, apperrors.ErrInvalidAgeRange
		}
		req.AgeRange = &models.AgeRange{Min: *in.AgeMin, Max: *in.AgeMax}
	}

	req.Gender = cleanList(in.Gender)
	req.Languages = splitList(in.Languages)
	req.Skills = cleanList(in.Skills)
	req.Location = nullIfEmpty(in.Location)

	if level := models.ExperienceLevel(strings.TrimSpace(in.ExperienceLevel)); level != "" && level != models.ExperienceLevelAny {
		req.ExperienceLevel = &level
	}

	return req, nil
}

// parseDeadline - "" -> nil, иначе дата YYYY-MM-DD в UTC
func parseDeadline(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	d, err := time.Parse(validator.DateLayout, value)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Deadline must be a date in YYYY-MM-DD format")
	}
	return &d, nil
}

// UpdateCall - правка и (де)активация кастинга владельцем
func (s *CastingServiceImpl) UpdateCall(db *gorm.DB, userID, callID string, req *dto.UpdateCastingCallRequest) (*dto.CastingCallResponse, error) {
	caster, err := s.profileRepo.FindCastingProfileByUserID(db, userID)
	if err != nil {
		return nil, handleProfileError(err)
	}

	call, err := s.castingRepo.FindByIDForCaster(db, callID, caster.ID)
	if err != nil {
		return nil, castingNotFound(err, callID)
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		title, err := requireText("title", *req.Title)
		if err != nil {
			return nil, err
		}
		updates["title"] = title
	}
	if req.Description != nil {
		description, err := requireText("description", *req.Description)
		if err != nil {
			return nil, err
		}
		updates["description"] = description
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.Deadline != nil {
		deadline, err := parseDeadline(*req.Deadline)
		if err != nil {
			return nil, err
		}
		updates["deadline"] = deadline
	}

	if len(updates) > 0 {
		if err := s.castingRepo.Update(db, call.ID, updates); err != nil {
			return nil, apperrors.DatabaseError(err)
		}
		if call, err = s.castingRepo.FindByIDForCaster(db, callID, caster.ID); err != nil {
			return nil, castingNotFound(err, callID)
		}
	}

	resp := dto.NewCastingCallResponse(call, false)
	return &resp, nil
}

func (s *CastingServiceImpl) ListCasterCalls(db *gorm.DB, userID string) (*dto.CasterCallsView, error) {
	caster, err := s.profileRepo.FindCastingProfileByUserID(db, userID)
	if err != nil {
		return nil, handleProfileError(err)
	}

	calls, err := s.castingRepo.FindByCaster(db, caster.ID, 0)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	ids := make([]string, 0, len(calls))
	for _, c := range calls {
		ids = append(ids, c.ID)
	}
	counts, err := s.applicationRepo.CountByCallIDs(db, ids)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	view := &dto.CasterCallsView{Calls: make([]dto.CasterCallRow, 0, len(calls)), Total: len(calls)}
	for i := range calls {
		view.Calls = append(view.Calls, dto.CasterCallRow{
			CastingCallResponse: dto.NewCastingCallResponse(&calls[i], false),
			ApplicationCount:    counts[calls[i].ID],
		})
	}
	return view, nil
}

// GetCasterCall - чужой кастинг отдается как 404
func (s *CastingServiceImpl) GetCasterCall(db *gorm.DB, userID, callID string) (*dto.CasterCallDetailView, error) {
	caster, err := s.profileRepo.FindCastingProfileByUserID(db, userID)
	if err != nil {
		return nil, handleProfileError(err)
	}

	call, err := s.castingRepo.FindByIDForCaster(db, callID, caster.ID)
	if err != nil {
		return nil, castingNotFound(err, callID)
	}

	apps, err := s.applicationRepo.ListForCaster(db, caster.ID, repositories.ApplicationFilter{CastingCallID: call.ID})
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	view := &dto.CasterCallDetailView{
		Call:         dto.NewCastingCallResponse(call, false),
		Applications: make([]dto.ApplicationReviewRow, 0, len(apps)),
		StatusCounts: dto.EmptyStatusCounts(),
	}
	for i := range apps {
		view.Applications = append(view.Applications, dto.NewApplicationReviewRow(&apps[i]))
		view.StatusCounts[apps[i].Status]++
	}
	return view, nil
}

// ==========================
// Actor
// ==========================

func (s *CastingServiceImpl) ListActiveCalls(db *gorm.DB, userID string, matchOnly bool) (*dto.CastingCallListView, error) {
	calls, err := s.castingRepo.FindActive(db)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	// Без профиля актера список все равно показывается, просто без отметок
	actor, err := s.profileRepo.FindActorProfileByUserID(db, userID)
	if err != nil && !errors.Is(err, repositories.ErrActorProfileNotFound) {
		return nil, apperrors.DatabaseError(err)
	}

	applied := map[string]bool{}
	appliedIDs := []string{}
	if actor != nil {
		ids, err := s.applicationRepo.AppliedCallIDs(db, actor.ID)
		if err != nil {
			return nil, apperrors.DatabaseError(err)
		}
		for _, id := range ids {
			applied[id] = true
		}
		appliedIDs = append(appliedIDs, ids...)
	}

	view := &dto.CastingCallListView{
		Calls:          make([]dto.CastingCallCard, 0, len(calls)),
		AppliedCallIDs: appliedIDs,
		MatchOnly:      matchOnly && actor != nil,
	}
	for i := range calls {
		card := dto.CastingCallCard{
			CastingCallResponse: dto.NewCastingCallResponse(&calls[i], false),
			HasApplied:          applied[calls[i].ID],
		}
		if actor != nil {
			match := algorithms.CalculateMatchScore(&calls[i], actor)
			if view.MatchOnly && !match.Matches {
				continue
			}
			card.Match = &match
		}
		view.Calls = append(view.Calls, card)
	}
	view.Total = len(view.Calls)
	return view, nil
}

// GetCallForActor - закрытый кастинг для актера не существует (404 с причиной)
func (s *CastingServiceImpl) GetCallForActor(db *gorm.DB, userID, callID string) (*dto.CastingCallDetailView, error) {
	call, err := s.castingRepo.FindByID(db, callID)
	if err != nil {
		return nil, castingNotFound(err, callID)
	}
	if !call.IsActive {
		return nil, apperrors.ErrCastingCallNotFound.WithDetails(map[string]string{
			"id":     callID,
			"reason": "inactive",
		})
	}

	view := &dto.CastingCallDetailView{Call: dto.NewCastingCallResponse(call, true)}

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

		match := algorithms.CalculateMatchScore(call, actor)
		view.Match = &match
	}

	// Без профиля актера форма отклика недоступна, кнопку не показываем
	view.CanApply = actor != nil && call.AcceptsApplications(s.now()) && view.Application == nil
	if view.CanApply {
		view.ApplyURL = "/actor/casting-calls/" + call.ID + "/apply"
	}
	return view, nil
}

// castingNotFound - 404 с диагностикой для not-found панели
func castingNotFound(err error, callID string) error {
	if errors.Is(err, repositories.ErrCastingCallNotFound) {
		return apperrors.ErrCastingCallNotFound.WithDetails(map[string]string{
			"id":     callID,
			"reason": "not_found",
		})
	}
	return apperrors.DatabaseError(err)
}

package repositories

import (
	"errors"

	"onlyfame_backend/database"
	"onlyfame_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("application already exists")
)

// ApplicationFilter - выборка заявок кастинг-директора
type ApplicationFilter struct {
	CastingCallID string
	Limit         int
}

type ApplicationRepository interface {
	Create(db *gorm.DB, app *models.Application) error
	FindByID(db *gorm.DB, id string) (*models.Application, error)
	FindByActorAndCall(db *gorm.DB, actorID, callID string) (*models.Application, error)

	ListByActor(db *gorm.DB, actorID string, limit int) ([]models.Application, error)
	AppliedCallIDs(db *gorm.DB, actorID string) ([]string, error)
	ListForCaster(db *gorm.DB, casterID string, filter ApplicationFilter) ([]models.Application, error)

	CountByActor(db *gorm.DB, actorID string, status *models.ApplicationStatus) (int64, error)
	CountForCaster(db *gorm.DB, casterID string, status *models.ApplicationStatus) (int64, error)
	CountByCallIDs(db *gorm.DB, callIDs []string) (map[string]int64, error)

	UpdateStatus(db *gorm.DB, id string, status models.ApplicationStatus) error
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

func (r *ApplicationRepositoryImpl) Create(db *gorm.DB, app *models.Application) error {
	err := db.Omit("CastingCall", "ActorProfile").Create(app).Error
	if err != nil && database.IsDuplicateKeyError(err) {
		return ErrDuplicateApplication
	}
	return err
}

func (r *ApplicationRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Application, error) {
	var app models.Application
	err := db.Preload("CastingCall").
		Preload("ActorProfile.Profile").
		Preload("ActorProfile.Images").
		First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) FindByActorAndCall(db *gorm.DB, actorID, callID string) (*models.Application, error) {
	var app models.Application
	err := db.Where("actor_id = ? AND casting_call_id = ?", actorID, callID).First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) ListByActor(db *gorm.DB, actorID string, limit int) ([]models.Application, error) {
	var apps []models.Application
	query := db.Preload("CastingCall.CastingProfile").
		Where("actor_id = ?", actorID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) AppliedCallIDs(db *gorm.DB, actorID string) ([]string, error) {
	var ids []string
	err := db.Model(&models.Application{}).
		Where("actor_id = ?", actorID).
		Pluck("casting_call_id", &ids).Error
	return ids, err
}

// ListForCaster - заявки на кастинги владельца, свежие сверху
func (r *ApplicationRepositoryImpl) ListForCaster(db *gorm.DB, casterID string, filter ApplicationFilter) ([]models.Application, error) {
	var apps []models.Application
	query := db.Model(&models.Application{}).
		Select("applications.*").
		Joins("JOIN casting_calls ON casting_calls.id = applications.casting_call_id").
		Where("casting_calls.caster_id = ?", casterID).
		Preload("CastingCall").
		Preload("ActorProfile.Profile").
		Preload("ActorProfile.Images").
		Order("applications.created_at DESC")

	if filter.CastingCallID != "" {
		query = query.Where("applications.casting_call_id = ?", filter.CastingCallID)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	err := query.Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) CountByActor(db *gorm.DB, actorID string, status *models.ApplicationStatus) (int64, error) {
	var count int64
	query := db.Model(&models.Application{}).Where("actor_id = ?", actorID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *ApplicationRepositoryImpl) CountForCaster(db *gorm.DB, casterID string, status *models.ApplicationStatus) (int64, error) {
	var count int64
	query := db.Model(&models.Application{}).
		Joins("JOIN casting_calls ON casting_calls.id = applications.casting_call_id").
		Where("casting_calls.caster_id = ?", casterID)
	if status != nil {
		query = query.Where("applications.status = ?", *status)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *ApplicationRepositoryImpl) CountByCallIDs(db *gorm.DB, callIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(callIDs))
	if len(callIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		CastingCallID string
		Total         int64
	}
	err := db.Model(&models.Application{}).
		Select("casting_call_id, COUNT(*) AS total").
		Where("casting_call_id IN ?", callIDs).
		Group("casting_call_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.CastingCallID] = row.Total
	}
	return counts, nil
}

func (r *ApplicationRepositoryImpl) UpdateStatus(db *gorm.DB, id string, status models.ApplicationStatus) error {
	result := db.Model(&models.Application{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

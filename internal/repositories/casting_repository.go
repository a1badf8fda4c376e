package repositories

import (
	"errors"

	"onlyfame_backend/internal/models"

	"gorm.io/gorm"
)

var ErrCastingCallNotFound = errors.New("casting call not found")

type CastingRepository interface {
	Create(db *gorm.DB, call *models.CastingCall) error
	FindByID(db *gorm.DB, id string) (*models.CastingCall, error)
	FindByIDForCaster(db *gorm.DB, id, casterID string) (*models.CastingCall, error)
	FindActive(db *gorm.DB) ([]models.CastingCall, error)
	FindByCaster(db *gorm.DB, casterID string, limit int) ([]models.CastingCall, error)
	CountByCaster(db *gorm.DB, casterID string, activeOnly bool) (int64, error)
	Update(db *gorm.DB, id string, updates map[string]interface{}) error
}

type CastingRepositoryImpl struct{}

func NewCastingRepository() CastingRepository {
	return &CastingRepositoryImpl{}
}

func (r *CastingRepositoryImpl) Create(db *gorm.DB, call *models.CastingCall) error {
	// is_active пишется явно, иначе false потеряется как нулевое значение
	return db.Select("*").Omit("CastingProfile").Create(call).Error
}

func (r *CastingRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.CastingCall, error) {
	var call models.CastingCall
	if err := db.Preload("CastingProfile").First(&call, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCastingCallNotFound
		}
		return nil, err
	}
	return &call, nil
}

// FindByIDForCaster - чужой кастинг неотличим от несуществующего
func (r *CastingRepositoryImpl) FindByIDForCaster(db *gorm.DB, id, casterID string) (*models.CastingCall, error) {
	var call models.CastingCall
	err := db.Preload("CastingProfile").
		Where("id = ? AND caster_id = ?", id, casterID).
		First(&call).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCastingCallNotFound
		}
		return nil, err
	}
	return &call, nil
}

func (r *CastingRepositoryImpl) FindActive(db *gorm.DB) ([]models.CastingCall, error) {
	var calls []models.CastingCall
	err := db.Preload("CastingProfile").
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&calls).Error
	return calls, err
}

// FindByCaster - limit <= 0 означает без ограничения
func (r *CastingRepositoryImpl) FindByCaster(db *gorm.DB, casterID string, limit int) ([]models.CastingCall, error) {
	var calls []models.CastingCall
	query := db.Where("caster_id = ?", casterID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&calls).Error
	return calls, err
}

func (r *CastingRepositoryImpl) CountByCaster(db *gorm.DB, casterID string, activeOnly bool) (int64, error) {
	var count int64
	query := db.Model(&models.CastingCall{}).Where("caster_id = ?", casterID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *CastingRepositoryImpl) Update(db *gorm.DB, id string, updates map[string]interface{}) error {
	result := db.Model(&models.CastingCall{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCastingCallNotFound
	}
	return nil
}

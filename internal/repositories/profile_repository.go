package repositories

import (
	"errors"

	"onlyfame_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrProfileNotFound        = errors.New("profile not found")
	ErrActorProfileNotFound   = errors.New("actor profile not found")
	ErrCastingProfileNotFound = errors.New("casting profile not found")
)

type ProfileRepository interface {
	// Profile
	CreateProfile(db *gorm.DB, profile *models.Profile) error
	FindProfileByID(db *gorm.DB, id string) (*models.Profile, error)
	UpdateProfileContact(db *gorm.DB, id, fullName string, phone *string) error

	// ActorProfile
	CreateActorProfile(db *gorm.DB, actor *models.ActorProfile) error
	FindActorProfileByUserID(db *gorm.DB, userID string) (*models.ActorProfile, error)
	UpdateActorProfile(db *gorm.DB, actor *models.ActorProfile) error

	// ActorImage
	UpsertActorImage(db *gorm.DB, image *models.ActorImage) error

	// CastingProfile
	CreateCastingProfile(db *gorm.DB, caster *models.CastingProfile) error
	FindCastingProfileByUserID(db *gorm.DB, userID string) (*models.CastingProfile, error)
	MarkCasterVerified(db *gorm.DB, userID string) error
}

type ProfileRepositoryImpl struct{}

func NewProfileRepository() ProfileRepository {
	return &ProfileRepositoryImpl{}
}

// ---------------- Profile ----------------

func (r *ProfileRepositoryImpl) CreateProfile(db *gorm.DB, profile *models.Profile) error {
	return db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindProfileByID(db *gorm.DB, id string) (*models.Profile, error) {
	var profile models.Profile
	if err := db.First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// UpdateProfileContact меняет только имя и телефон; роль не трогается никогда
func (r *ProfileRepositoryImpl) UpdateProfileContact(db *gorm.DB, id, fullName string, phone *string) error {
	result := db.Model(&models.Profile{}).Where("id = ?", id).Updates(map[string]interface{}{
		"full_name": fullName,
		"phone":     phone,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// ---------------- ActorProfile ----------------

func (r *ProfileRepositoryImpl) CreateActorProfile(db *gorm.DB, actor *models.ActorProfile) error {
	if len(actor.Languages) == 0 {
		actor.SetLanguages(nil)
	}
	if len(actor.PastWorks) == 0 {
		actor.SetPastWorks(nil)
	}
	return db.Create(actor).Error
}

func (r *ProfileRepositoryImpl) FindActorProfileByUserID(db *gorm.DB, userID string) (*models.ActorProfile, error) {
	var actor models.ActorProfile
	err := db.Preload("Images", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("type ASC")
	}).First(&actor, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActorProfileNotFound
		}
		return nil, err
	}
	return &actor, nil
}

// UpdateActorProfile пишет все редактируемые поля, включая NULL
func (r *ProfileRepositoryImpl) UpdateActorProfile(db *gorm.DB, actor *models.ActorProfile) error {
	result := db.Model(&models.ActorProfile{}).Where("id = ?", actor.ID).Updates(map[string]interface{}{
		"age":        actor.Age,
		"gender":     actor.Gender,
		"height":     actor.Height,
		"languages":  actor.Languages,
		"location":   actor.Location,
		"bio":        actor.Bio,
		"past_works": actor.PastWorks,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrActorProfileNotFound
	}
	return nil
}

// ---------------- ActorImage ----------------

// UpsertActorImage - одна строка на ракурс: повторная загрузка меняет image_url
func (r *ProfileRepositoryImpl) UpsertActorImage(db *gorm.DB, image *models.ActorImage) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "actor_id"}, {Name: "type"}},
		DoUpdates: clause.AssignmentColumns([]string{"image_url", "updated_at"}),
	}).Create(image).Error
}

// ---------------- CastingProfile ----------------

func (r *ProfileRepositoryImpl) CreateCastingProfile(db *gorm.DB, caster *models.CastingProfile) error {
	return db.Create(caster).Error
}

func (r *ProfileRepositoryImpl) FindCastingProfileByUserID(db *gorm.DB, userID string) (*models.CastingProfile, error) {
	var caster models.CastingProfile
	if err := db.First(&caster, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCastingProfileNotFound
		}
		return nil, err
	}
	return &caster, nil
}

func (r *ProfileRepositoryImpl) MarkCasterVerified(db *gorm.DB, userID string) error {
	result := db.Model(&models.CastingProfile{}).
		Where("user_id = ?", userID).
		Update("verified", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// MySQL не считает строки, где значение не изменилось
		_, err := r.FindCastingProfileByUserID(db, userID)
		return err
	}
	return nil
}

package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"onlyfame_backend/internal/config"
	"onlyfame_backend/internal/imageprocessor"
	"onlyfame_backend/internal/logger"
	"onlyfame_backend/internal/models"
	"onlyfame_backend/internal/repositories"
	"onlyfame_backend/internal/services/dto"
	"onlyfame_backend/internal/storage"
	"onlyfame_backend/pkg/apperrors"

	"github.com/gabriel-vasile/mimetype"
	"gorm.io/gorm"
)

// =======================
// 1. ИНТЕРФЕЙС
// =======================
type ProfileService interface {
	GetActorProfile(db *gorm.DB, userID string) (*dto.ActorProfileResponse, error)
	UpdateActorProfile(db *gorm.DB, userID string, req *dto.UpdateActorProfileRequest) (*dto.ActorProfileResponse, error)
	UploadActorImage(ctx context.Context, db *gorm.DB, userID string, imageType models.ImageType, file *multipart.FileHeader) (*dto.ImageUploadResponse, error)
}

// =======================
// 2. РЕАЛИЗАЦИЯ
// =======================
type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
	storage     storage.Storage
	processor   *imageprocessor.Processor
	upload      config.ImageUploadConfig
}

func NewProfileService(
	profileRepo repositories.ProfileRepository,
	store storage.Storage,
	upload config.ImageUploadConfig,
) ProfileService {
	return &ProfileServiceImpl{
		profileRepo: profileRepo,
		storage:     store,
		processor:   imageprocessor.NewProcessor(upload.Quality, upload.MaxDimension),
		upload:      upload,
	}
}

// ==========================
// Profile
// ==========================

func (s *ProfileServiceImpl) GetActorProfile(db *gorm.DB, userID string) (*dto.ActorProfileResponse, error) {
	profile, err := s.profileRepo.FindProfileByID(db, userID)
	if err != nil {
		return nil, handleProfileError(err)
	}
	actor, err := s.profileRepo.FindActorProfileByUserID(db, userID)
	if err != nil {
		return nil, handleProfileError(err)
	}
	return dto.NewActorProfileResponse(profile, actor), nil
}

// UpdateActorProfile - пустые поля становятся NULL, роль не меняется никогда
func (s *ProfileServiceImpl) UpdateActorProfile(db *gorm.DB, userID string, req *dto.UpdateActorProfileRequest) (*dto.ActorProfileResponse, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		actor, err := s.profileRepo.FindActorProfileByUserID(tx, userID)
		if err != nil {
			return err
		}

		if err := s.profileRepo.UpdateProfileContact(tx, userID, strings.TrimSpace(req.FullName), nullIfEmpty(req.Phone)); err != nil {
			return err
		}

		actor.Age = req.Age
		actor.Gender = nullIfEmpty(req.Gender)
		actor.Height = nullIfEmpty(req.Height)
		actor.Location = nullIfEmpty(req.Location)
		actor.Bio = nullIfEmpty(req.Bio)
		actor.SetLanguages(splitList(req.Languages))
		actor.SetPastWorks(toPastWorks(req.PastWorks))

		return s.profileRepo.UpdateActorProfile(tx, actor)
	})
	if err != nil {
		return nil, handleProfileError(err)
	}

	return s.GetActorProfile(db, userID)
}

func toPastWorks(items []dto.PastWorkInput) []models.PastWork {
	works := make([]models.PastWork, 0, len(items))
	for _, item := range items {
		works = append(works, models.PastWork{
			Title: strings.TrimSpace(item.Title),
			Type:  models.PastWorkType(item.Type),
			Role:  strings.TrimSpace(item.Role),
			Year:  item.Year,
			Link:  strings.TrimSpace(item.Link),
		})
	}
	return works
}

// ==========================
// Actor images
// ==========================

// UploadActorImage сохраняет фото ракурса в <profileID>/<type>.<ext> с перезаписью
// и обновляет ссылку в actor_images
func (s *ProfileServiceImpl) UploadActorImage(ctx context.Context, db *gorm.DB, userID string, imageType models.ImageType, file *multipart.FileHeader) (*dto.ImageUploadResponse, error) {
	if !imageType.IsValid() {
		return nil, apperrors.NewBadRequestError("Image type must be one of: left, center, right")
	}
	if file == nil {
		return nil, apperrors.NewBadRequestError("Image file is required")
	}
	if s.upload.MaxSize > 0 && file.Size > s.upload.MaxSize {
		return nil, apperrors.ErrFileTooLarge
	}

	actor, err := s.profileRepo.FindActorProfileByUserID(db, userID)
	if err != nil {
		return nil, handleProfileError(err)
	}

	data, err := s.readUpload(file)
	if err != nil {
		return nil, err
	}

	if mime := mimetype.Detect(data).String(); !s.upload.IsAllowed(mime) {
		logger.CtxWarn(ctx, "Rejected actor image", "type", imageType, "mime", mime)
		return nil, apperrors.ErrInvalidFileType
	}

	processed, err := s.processor.Process(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, imageprocessor.ErrUnsupportedFormat) {
			return nil, apperrors.ErrInvalidFileType
		}
		return nil, apperrors.ErrUploadFailed.WithError(err)
	}

	key := imageKey(actor.UserID, imageType, processed.Extension)
	if err := s.storage.Save(ctx, key, bytes.NewReader(processed.Data), processed.ContentType); err != nil {
		logger.CtxWithError(ctx, "Failed to store actor image", err, "key", key)
		return nil, apperrors.ErrUploadFailed.WithError(err)
	}
	s.removeStaleVariants(ctx, actor.UserID, imageType, processed.Extension)

	url, err := s.storage.GetURL(ctx, key)
	if err != nil {
		return nil, apperrors.ErrUploadFailed.WithError(err)
	}

	image := &models.ActorImage{ActorID: actor.ID, Type: imageType, ImageURL: url}
	if err := s.profileRepo.UpsertActorImage(db, image); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "Actor image uploaded", "type", imageType, "key", key,
		"width", processed.Width, "height", processed.Height)

	return &dto.ImageUploadResponse{
		Image: dto.ImageResponse{
			Type:      imageType,
			ImageURL:  url,
			UpdatedAt: image.UpdatedAt,
		},
		Message: fmt.Sprintf("%s image uploaded!", imageType),
	}, nil
}

func (s *ProfileServiceImpl) readUpload(file *multipart.FileHeader) ([]byte, error) {
	src, err := file.Open()
	if err != nil {
		return nil, apperrors.ErrUploadFailed.WithError(err)
	}
	defer src.Close()

	limit := s.upload.MaxSize
	if limit <= 0 {
		limit = 10 << 20
	}
	data, err := io.ReadAll(io.LimitReader(src, limit+1))
	if err != nil {
		return nil, apperrors.ErrUploadFailed.WithError(err)
	}
	if int64(len(data)) > limit {
		return nil, apperrors.ErrFileTooLarge
	}
	return data, nil
}

// removeStaleVariants удаляет фото того же ракурса с другим расширением
func (s *ProfileServiceImpl) removeStaleVariants(ctx context.Context, profileID string, imageType models.ImageType, keep string) {
	for _, ext := range []string{"jpg", "png"} {
		if ext == keep {
			continue
		}
		if err := s.storage.Delete(ctx, imageKey(profileID, imageType, ext)); err != nil {
			logger.CtxWarn(ctx, "Failed to remove stale image", "type", imageType, "ext", ext, "error", err.Error())
		}
	}
}

func imageKey(profileID string, imageType models.ImageType, ext string) string {
	return fmt.Sprintf("%s/%s.%s", profileID, imageType, ext)
}

// handleProfileError переводит ошибки репозитория в ошибки API
func handleProfileError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrProfileNotFound):
		return apperrors.ErrProfileNotFound
	case errors.Is(err, repositories.ErrActorProfileNotFound):
		return apperrors.ErrActorProfileMissing
	case errors.Is(err, repositories.ErrCastingProfileNotFound):
		return apperrors.ErrCastingProfileMissing
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperrors.DatabaseError(err)
}

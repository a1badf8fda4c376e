package services

import (
	"fmt"

	"onlyfame_backend/internal/models"
	"onlyfame_backend/internal/repositories"
	"onlyfame_backend/internal/services/dto"
	"onlyfame_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// NotificationService только пишет и читает строки уведомлений, доставки нет
type NotificationService interface {
	NotifyNewApplication(db *gorm.DB, casterUserID, actorName string, call *models.CastingCall, applicationID string) error
	NotifyApplicationStatus(db *gorm.DB, actorUserID string, call *models.CastingCall, status models.ApplicationStatus) error
	GetUnread(db *gorm.DB, userID string, limit int) ([]dto.NotificationResponse, error)
	MarkAllAsRead(db *gorm.DB, userID string) error
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

func (s *notificationService) NotifyNewApplication(db *gorm.DB, casterUserID, actorName string, call *models.CastingCall, applicationID string) error {
	if actorName == "" {
		actorName = "An actor"
	}
	link := "/caster/applications/" + applicationID

	return s.notificationRepo.Create(db, &models.Notification{
		UserID:  casterUserID,
		Type:    models.NotificationTypeNewApplication,
		Title:   "New application",
		Message: fmt.Sprintf("%s applied to \"%s\"", actorName, call.Title),
		Link:    &link,
	})
}

func (s *notificationService) NotifyApplicationStatus(db *gorm.DB, actorUserID string, call *models.CastingCall, status models.ApplicationStatus) error {
	link := "/actor/applications"

	return s.notificationRepo.Create(db, &models.Notification{
		UserID:  actorUserID,
		Type:    models.NotificationTypeApplicationStatus,
		Title:   "Application update",
		Message: fmt.Sprintf("Your application to \"%s\" is now %s", call.Title, status),
		Link:    &link,
	})
}

func (s *notificationService) GetUnread(db *gorm.DB, userID string, limit int) ([]dto.NotificationResponse, error) {
	items, err := s.notificationRepo.FindUnread(db, userID, limit)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return dto.NewNotificationResponses(items), nil
}

func (s *notificationService) MarkAllAsRead(db *gorm.DB, userID string) error {
	if err := s.notificationRepo.MarkAllAsRead(db, userID); err != nil {
		return apperrors.DatabaseError(err)
	}
	return nil
}

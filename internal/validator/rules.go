package validator

import (
	"log"
	"strings"
	"time"

	"onlyfame_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// DateLayout - формат дат в формах (дедлайн кастинга)
const DateLayout = "2006-01-02"

// registerCustomRules регистрирует все кастомные функции валидации
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Ошибка времени запуска, приложение не должно стартовать
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// -----------------------------------------------------------------
	// Правила на основе statuses.go
	// -----------------------------------------------------------------
	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-review-status", validateReviewStatus)
	mustRegister("is-image-type", validateImageType)
	mustRegister("is-experience-level", validateExperienceLevel)
	mustRegister("is-past-work-type", validatePastWorkType)

	// -----------------------------------------------------------------
	// Форматы
	// -----------------------------------------------------------------
	mustRegister("is-date", validateDate)
	mustRegister("notblank", validateNotBlank)
}

// Пустые значения пропускаются везде: для них есть 'required'

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.UserRole(value).IsValid()
}

func validateReviewStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.ApplicationStatus(value).IsReviewStatus()
}

func validateImageType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.ImageType(value).IsValid()
}

func validateExperienceLevel(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.ExperienceLevel(value).IsValid()
}

func validatePastWorkType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.PastWorkType(value).IsValid()
}

func validateDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := time.Parse(DateLayout, value)
	return err == nil
}

// validateNotBlank - строка из одних пробелов считается пустой
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

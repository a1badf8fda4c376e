package apperrors

import (
	"net/http"
)

/*
Фабрики и предопределенные ошибки бизнес-логики.
Предопределенные переменные не мутируются: WithDetails/WithError возвращают копию.
*/

// =========================================================================
// Фабричные ФУНКЦИИ
// =========================================================================

// ErrNotFound - ресурс не найден (404) с диагностикой для not-found панели
func ErrNotFound(domain, message string, details interface{}) *AppError {
	return New(CodeNotFound, domain, message, http.StatusNotFound).WithDetails(details)
}

// ErrInvalidStatus - невалидный статус (400)
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// =========================================================================
// Предопределенные ПЕРЕМЕННЫЕ
// =========================================================================

// --- Auth ---

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid login credentials",
	http.StatusUnauthorized,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"User already registered",
	http.StatusConflict,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired session",
	http.StatusUnauthorized,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"auth",
	"Password should be at least 6 characters",
	http.StatusBadRequest,
)

// --- Profiles ---

// ErrProfileSetupPending - identity есть, а строки Profile еще нет
var ErrProfileSetupPending = New(
	CodeProfileSetupPending,
	"profile",
	"Setting up your profile...",
	http.StatusAccepted,
)

var ErrProfileNotFound = New(
	CodeNotFound,
	"profile",
	"Profile not found",
	http.StatusNotFound,
)

var ErrActorProfileMissing = New(
	CodeProfileIncomplete,
	"actor_profile",
	"Actor profile not found. Please complete your profile first.",
	http.StatusBadRequest,
)

var ErrCastingProfileMissing = New(
	CodeProfileIncomplete,
	"casting_profile",
	"Casting profile not found",
	http.StatusBadRequest,
)

var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"business_logic",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

// --- Casting calls ---

var ErrCastingCallNotFound = New(
	CodeNotFound,
	"casting_call",
	"Casting call not found",
	http.StatusNotFound,
)

var ErrCastingCallClosed = New(
	CodeCastingCallClosed,
	"casting_call",
	"This casting call is no longer accepting applications",
	http.StatusConflict,
)

var ErrInvalidAgeRange = New(
	CodeValidationFailed,
	"casting_call",
	"Minimum age cannot be greater than maximum age",
	http.StatusBadRequest,
)

// --- Applications ---

var ErrApplicationNotFound = New(
	CodeNotFound,
	"application",
	"Application not found",
	http.StatusNotFound,
)

var ErrAlreadyApplied = New(
	CodeAlreadyApplied,
	"application",
	"You have already applied to this casting call",
	http.StatusConflict,
)

// --- Uploads ---

var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"validation",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

var ErrInvalidFileType = New(
	CodeValidationFailed,
	"validation",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)

var ErrUploadFailed = New(
	CodeExternalServiceError,
	"storage",
	"Failed to upload image",
	http.StatusBadGateway,
)

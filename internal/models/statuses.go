package models

type UserRole string
type ApplicationStatus string
type ImageType string
type ExperienceLevel string
type PastWorkType string

const (
	UserRoleActor  UserRole = "actor"
	UserRoleCaster UserRole = "caster"

	ApplicationStatusApplied     ApplicationStatus = "applied"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusSelected    ApplicationStatus = "selected"
	ApplicationStatusRejected    ApplicationStatus = "rejected"

	ImageTypeLeft   ImageType = "left"
	ImageTypeCenter ImageType = "center"
	ImageTypeRight  ImageType = "right"

	ExperienceLevelFresher     ExperienceLevel = "fresher"
	ExperienceLevelExperienced ExperienceLevel = "experienced"
	ExperienceLevelAny         ExperienceLevel = "any"

	PastWorkFilm    PastWorkType = "film"
	PastWorkAd      PastWorkType = "ad"
	PastWorkTheatre PastWorkType = "theatre"
	PastWorkWeb     PastWorkType = "web"
	PastWorkOther   PastWorkType = "other"
)

// Типы уведомлений
const (
	NotificationTypeNewApplication    = "new_application"
	NotificationTypeApplicationStatus = "application_status"
)

// ApplicationStatuses - порядок колонок при группировке
var ApplicationStatuses = []ApplicationStatus{
	ApplicationStatusApplied,
	ApplicationStatusShortlisted,
	ApplicationStatusSelected,
	ApplicationStatusRejected,
}

// ReviewStatuses - статусы, которые может выставить кастинг-директор
var ReviewStatuses = []ApplicationStatus{
	ApplicationStatusShortlisted,
	ApplicationStatusSelected,
	ApplicationStatusRejected,
}

var ImageTypes = []ImageType{ImageTypeLeft, ImageTypeCenter, ImageTypeRight}

func (r UserRole) IsValid() bool {
	return r == UserRoleActor || r == UserRoleCaster
}

// Dashboard - домашняя страница роли
func (r UserRole) Dashboard() string {
	return "/" + string(r) + "/dashboard"
}

func (s ApplicationStatus) IsValid() bool {
	for _, st := range ApplicationStatuses {
		if st == s {
			return true
		}
	}
	return false
}

func (s ApplicationStatus) IsReviewStatus() bool {
	for _, st := range ReviewStatuses {
		if st == s {
			return true
		}
	}
	return false
}

// NextActions - кнопки в списке заявок кастинг-директора
func (s ApplicationStatus) NextActions() []ApplicationStatus {
	switch s {
	case ApplicationStatusApplied:
		return []ApplicationStatus{ApplicationStatusShortlisted, ApplicationStatusRejected}
	case ApplicationStatusShortlisted:
		return []ApplicationStatus{ApplicationStatusSelected, ApplicationStatusRejected}
	default:
		return []ApplicationStatus{}
	}
}

func (t ImageType) IsValid() bool {
	return t == ImageTypeLeft || t == ImageTypeCenter || t == ImageTypeRight
}

func (l ExperienceLevel) IsValid() bool {
	return l == ExperienceLevelFresher || l == ExperienceLevelExperienced || l == ExperienceLevelAny
}

func (t PastWorkType) IsValid() bool {
	switch t {
	case PastWorkFilm, PastWorkAd, PastWorkTheatre, PastWorkWeb, PastWorkOther:
		return true
	}
	return false
}

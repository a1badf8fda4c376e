package algorithms

import (
	"strings"

	"onlyfame_backend/internal/models"

	"golang.org/x/text/cases"
)

// Веса требований в итоговом балле (сумма 100)
const (
	weightAge       = 30.0
	weightGender    = 25.0
	weightLanguages = 25.0
	weightLocation  = 20.0
)

// anyGender - значение из формы кастинга, снимающее ограничение по полу
const anyGender = "any"

// MatchResult - насколько актер подходит под требования кастинга.
// Matches == false, если хотя бы одно заданное требование не выполнено.
type MatchResult struct {
	Matches bool     `json:"matches"`
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons"`
}

// CalculateMatchScore сравнивает профиль актера с требованиями (0-100).
// Отсутствующее требование никого не отсекает и дает полный вес.
func CalculateMatchScore(call *models.CastingCall, actor *models.ActorProfile) MatchResult {
	req := call.GetRequirements()
	res := MatchResult{Matches: true, Reasons: []string{}}

	// Возраст
	if req.AgeRange != nil {
		if actor.Age != nil && *actor.Age >= req.AgeRange.Min && *actor.Age <= req.AgeRange.Max {
			res.Score += weightAge
			res.Reasons = append(res.Reasons, "Age matches requirements")
		} else {
			res.Matches = false
		}
	} else {
		res.Score += weightAge
	}

	// Пол
	if len(req.Gender) > 0 && !containsFold(req.Gender, anyGender) {
		if actor.Gender != nil && containsFold(req.Gender, *actor.Gender) {
			res.Score += weightGender
			res.Reasons = append(res.Reasons, "Gender matches")
		} else {
			res.Matches = false
		}
	} else {
		res.Score += weightGender
	}

	// Языки: достаточно одного общего
	if len(req.Languages) > 0 {
		shared := sharedLanguages(req.Languages, actor.GetLanguages())
		if len(shared) > 0 {
			res.Score += weightLanguages
			res.Reasons = append(res.Reasons, "Speaks "+strings.Join(shared, ", "))
		} else {
			res.Matches = false
		}
	} else {
		res.Score += weightLanguages
	}

	// Локация: подстрока без учета регистра ("Mumbai" ~ "Mumbai, India")
	if req.Location != nil && *req.Location != "" {
		if actor.Location != nil && strings.Contains(fold(*actor.Location), fold(*req.Location)) {
			res.Score += weightLocation
			res.Reasons = append(res.Reasons, "Same location")
		} else {
			res.Matches = false
		}
	} else {
		res.Score += weightLocation
	}

	return res
}

// fold - case folding по Unicode; Caser не потокобезопасен, поэтому создается на вызов
func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

func containsFold(list []string, value string) bool {
	v := fold(value)
	for _, item := range list {
		if fold(item) == v {
			return true
		}
	}
	return false
}

func sharedLanguages(required, spoken []string) []string {
	var shared []string
	for _, lang := range required {
		if containsFold(spoken, lang) {
			shared = append(shared, strings.TrimSpace(lang))
		}
	}
	return shared
}

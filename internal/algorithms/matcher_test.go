package algorithms

import (
	"testing"

	"onlyfame_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func callWith(req models.CastingRequirements) *models.CastingCall {
	call := &models.CastingCall{}
	call.SetRequirements(req)
	return call
}

func actorWith(age int, gender, location string, languages ...string) *models.ActorProfile {
	a := &models.ActorProfile{Age: ptr(age), Gender: ptr(gender), Location: ptr(location)}
	a.SetLanguages(languages)
	return a
}

func TestCalculateMatchScore_NoRequirements(t *testing.T) {
	res := CalculateMatchScore(callWith(models.CastingRequirements{}), &models.ActorProfile{})

	assert.True(t, res.Matches)
	assert.Equal(t, 100.0, res.Score)
}

func TestCalculateMatchScore_AllSatisfied(t *testing.T) {
	call := callWith(models.CastingRequirements{
		AgeRange:  &models.AgeRange{Min: 20, Max: 30},
		Gender:    []string{"Female", "Non-binary"},
		Languages: []string{"Hindi", "Marathi"},
		Location:  ptr("mumbai"),
	})
	actor := actorWith(25, "female", "Mumbai, India", "english", "HINDI")

	res := CalculateMatchScore(call, actor)
	assert.True(t, res.Matches)
	assert.Equal(t, 100.0, res.Score)
	assert.Contains(t, res.Reasons, "Speaks Hindi")
}

func TestCalculateMatchScore_Misses(t *testing.T) {
	call := callWith(models.CastingRequirements{
		AgeRange:  &models.AgeRange{Min: 40, Max: 50},
		Languages: []string{"Tamil"},
	})
	actor := actorWith(25, "Male", "Delhi", "Hindi")

	res := CalculateMatchScore(call, actor)
	assert.False(t, res.Matches)
	assert.Equal(t, weightGender+weightLocation, res.Score)
}

func TestCalculateMatchScore_AnyGenderAndMissingAge(t *testing.T) {
	call := callWith(models.CastingRequirements{Gender: []string{"Any"}})
	assert.True(t, CalculateMatchScore(call, &models.ActorProfile{}).Matches)

	ageCall := callWith(models.CastingRequirements{AgeRange: &models.AgeRange{Min: 18, Max: 25}})
	assert.False(t, CalculateMatchScore(ageCall, &models.ActorProfile{}).Matches, "возраст не указан")
}

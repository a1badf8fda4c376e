package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pastWork struct {
	Type string `json:"type" validate:"required,is-past-work-type"`
}

type sampleRequest struct {
	Role     string     `json:"role" validate:"required,is-user-role"`
	Status   string     `json:"status" validate:"omitempty,is-review-status"`
	Angle    string     `json:"angle" validate:"omitempty,is-image-type"`
	Level    string     `json:"experience_level" validate:"omitempty,is-experience-level"`
	Deadline string     `json:"deadline" validate:"omitempty,is-date"`
	Works    []pastWork `json:"past_works" validate:"dive"`
}

func TestValidate_CustomRules(t *testing.T) {
	v := New()

	ok := sampleRequest{
		Role:     "caster",
		Status:   "rejected",
		Angle:    "center",
		Level:    "any",
		Deadline: "2026-12-31",
		Works:    []pastWork{{Type: "theatre"}},
	}
	assert.NoError(t, v.Validate(&ok))

	bad := sampleRequest{
		Role:     "admin",
		Status:   "applied",
		Angle:    "profile",
		Level:    "senior",
		Deadline: "31/12/2026",
		Works:    []pastWork{{Type: "opera"}},
	}
	err := v.Validate(&bad)
	require.Error(t, err)

	vErr, isValidation := err.(*ValidationError)
	require.True(t, isValidation)
	assert.Equal(t, "Must be one of: actor, caster", vErr.Errors["role"])
	assert.Equal(t, "Must be one of: shortlisted, selected, rejected", vErr.Errors["status"])
	assert.Contains(t, vErr.Errors, "angle")
	assert.Contains(t, vErr.Errors, "experience_level")
	assert.Contains(t, vErr.Errors, "deadline")
	assert.Contains(t, vErr.Errors, "past_works[0].type")
}

func TestValidate_Required(t *testing.T) {
	err := New().Validate(&sampleRequest{})
	require.Error(t, err)
	assert.Equal(t, "This field is required", err.(*ValidationError).Errors["role"])
}

type titledRequest struct {
	Title   string  `json:"title" validate:"required,notblank"`
	Summary *string `json:"summary" validate:"omitempty,notblank"`
}

func TestValidate_NotBlank(t *testing.T) {
	v := New()

	spaces := "  "
	err := v.Validate(&titledRequest{Title: " \t ", Summary: &spaces})
	require.Error(t, err)
	vErr := err.(*ValidationError)
	assert.Equal(t, "This field is required", vErr.Errors["title"])
	assert.Equal(t, "This field is required", vErr.Errors["summary"])

	summary := "Short"
	assert.NoError(t, v.Validate(&titledRequest{Title: "Lead", Summary: &summary}))
	assert.NoError(t, v.Validate(&titledRequest{Title: "Lead"}))
}

package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hredostate/upss-webly/internal/models"
	"github.com/hredostate/upss-webly/internal/services/dto"
)

func TestValidateReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&dto.RegisterRequest{Email: "not-an-email", Password: "short"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "email")
	assert.Contains(t, vErr.Errors, "password")
	assert.Contains(t, vErr.Errors, "full_name")
}

func TestSlugRule(t *testing.T) {
	v := New()

	valid := []string{"about", "about-us", "class-of-2026"}
	for _, slug := range valid {
		err := v.Validate(&dto.CreatePageRequest{Slug: slug, Title: "Title"})
		assert.NoError(t, err, "slug %q", slug)
	}

	invalid := []string{"About", "about us", "-about", "about-", "about--us", "о-школе"}
	for _, slug := range invalid {
		err := v.Validate(&dto.CreatePageRequest{Slug: slug, Title: "Title"})
		require.Error(t, err, "slug %q", slug)

		vErr, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Contains(t, vErr.Errors, "slug")
	}
}

func TestApplicationStatusRule(t *testing.T) {
	v := New()

	err := v.Validate(&dto.ChangeStatusRequest{Status: models.ApplicationStatusShortlisted})
	assert.NoError(t, err)

	err = v.Validate(&dto.ChangeStatusRequest{Status: models.ApplicationStatus("archived")})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "status")
}

func TestJobStatusRule(t *testing.T) {
	v := New()

	req := &dto.CreateJobRequest{Title: "Math Teacher", Description: "Teach math", Status: "open"}
	assert.NoError(t, v.Validate(req))

	req.Status = "archived"
	err := v.Validate(req)
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "status")
}

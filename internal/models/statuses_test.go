package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentStage(t *testing.T) {
	tests := []struct {
		status    ApplicationStatus
		wantStage int
		wantOK    bool
	}{
		{ApplicationStatusSubmitted, 0, true},
		{ApplicationStatusUnderReview, 1, true},
		{ApplicationStatusShortlisted, 2, true},
		{ApplicationStatusInterviewScheduled, 3, true},
		{ApplicationStatusOfferExtended, 4, true},
		{ApplicationStatusHired, 5, true},

		// Статусы вне линии прогресса
		{ApplicationStatusInterviewCompleted, 0, false},
		{ApplicationStatusOfferAccepted, 0, false},
		{ApplicationStatusRejected, 0, false},
		{ApplicationStatusWithdrawn, 0, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			stage, ok := CurrentStage(tt.status)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantStage, stage)
			}
		})
	}
}

func TestIsTerminalStatus(t *testing.T) {
	assert.True(t, IsTerminalStatus(ApplicationStatusRejected))
	assert.True(t, IsTerminalStatus(ApplicationStatusWithdrawn))
	assert.True(t, IsTerminalStatus(ApplicationStatusHired))

	assert.False(t, IsTerminalStatus(ApplicationStatusSubmitted))
	assert.False(t, IsTerminalStatus(ApplicationStatusUnderReview))
	assert.False(t, IsTerminalStatus(ApplicationStatusOfferExtended))
	assert.False(t, IsTerminalStatus(ApplicationStatusOfferAccepted))
}

func TestIsActiveStatus(t *testing.T) {
	for status := range allApplicationStatuses {
		assert.Equal(t, !IsTerminalStatus(status), IsActiveStatus(status), "status %s", status)
	}
}

func TestProgressFraction(t *testing.T) {
	progress, ok := ProgressFraction(ApplicationStatusSubmitted)
	require.True(t, ok)
	assert.Equal(t, 0.0, progress)

	progress, ok = ProgressFraction(ApplicationStatusHired)
	require.True(t, ok)
	assert.Equal(t, 1.0, progress)

	progress, ok = ProgressFraction(ApplicationStatusShortlisted)
	require.True(t, ok)
	assert.InDelta(t, 0.4, progress, 1e-9)

	_, ok = ProgressFraction(ApplicationStatusRejected)
	assert.False(t, ok)

	_, ok = ProgressFraction(ApplicationStatusInterviewCompleted)
	assert.False(t, ok)
}

func TestIsValidApplicationStatus(t *testing.T) {
	assert.True(t, IsValidApplicationStatus(ApplicationStatusSubmitted))
	assert.True(t, IsValidApplicationStatus(ApplicationStatusWithdrawn))

	assert.False(t, IsValidApplicationStatus(ApplicationStatus("archived")))
	assert.False(t, IsValidApplicationStatus(ApplicationStatus("")))
}

func TestForwardStagesExcludeTerminalStatuses(t *testing.T) {
	for _, stage := range ForwardStages {
		if stage == ApplicationStatusHired {
			continue // hired завершает линию прогресса
		}
		assert.False(t, IsTerminalStatus(stage), "stage %s", stage)
	}
}

package dto

import (
	"encoding/json"
	"time"

	"github.com/hredostate/upss-webly/internal/models"
)

// SubmitApplicationRequest - отклик кандидата на вакансию
type SubmitApplicationRequest struct {
	CoverLetter     string          `json:"cover_letter" validate:"required,min=10"`
	YearsExperience *int            `json:"years_experience,omitempty" validate:"omitempty,min=0,max=80"`
	ExpectedSalary  *float64        `json:"expected_salary,omitempty" validate:"omitempty,min=0"`
	AvailableFrom   *time.Time      `json:"available_from,omitempty"`
	Answers         json.RawMessage `json:"answers,omitempty"`
}

// ChangeStatusRequest - смена статуса отклика админом
type ChangeStatusRequest struct {
	Status models.ApplicationStatus `json:"status" validate:"required,application_status"`
	Note   string                   `json:"note" validate:"omitempty,max=2000"`
}

// UpdateApplicationRequest - обновление метаданных интервью и ревью
type UpdateApplicationRequest struct {
	InterviewDate     *time.Time `json:"interview_date,omitempty"`
	InterviewLocation *string    `json:"interview_location,omitempty" validate:"omitempty,max=300"`
	InterviewType     *string    `json:"interview_type,omitempty" validate:"omitempty,oneof=onsite phone video"`
	InterviewNotes    *string    `json:"interview_notes,omitempty" validate:"omitempty,max=5000"`
	ReviewNotes       *string    `json:"review_notes,omitempty" validate:"omitempty,max=5000"`
	ReviewRating      *int       `json:"review_rating,omitempty" validate:"omitempty,min=1,max=5"`
}

// ApplicationView - отклик вместе с производными полями для прогресс-бара.
// CurrentStage и Progress равны null для терминальных и промежуточных
// статусов: UI показывает состояние вместо числового этапа.
type ApplicationView struct {
	*models.JobApplication
	CurrentStage *int     `json:"current_stage"`
	Progress     *float64 `json:"progress"`
	Terminal     bool     `json:"terminal"`
}

// NewApplicationView строит представление отклика с производными полями
func NewApplicationView(app *models.JobApplication) *ApplicationView {
	view := &ApplicationView{
		JobApplication: app,
		Terminal:       models.IsTerminalStatus(app.Status),
	}
	if stage, ok := models.CurrentStage(app.Status); ok {
		view.CurrentStage = &stage
	}
	if progress, ok := models.ProgressFraction(app.Status); ok {
		view.Progress = &progress
	}
	return view
}

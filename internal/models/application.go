package models

import (
	"time"

	"gorm.io/datatypes"
)

type JobApplication struct {
	BaseModelWithDeleted
	// Частичный уникальный индекс: не больше одного неудаленного отклика
	// на пару (кандидат, вакансия). После admin delete пара освобождается.
	ApplicantID  string `gorm:"not null;index:idx_applications_applicant_job,unique,where:deleted_at IS NULL" json:"applicant_id"`
	JobListingID string `gorm:"not null;index:idx_applications_applicant_job,unique,where:deleted_at IS NULL" json:"job_listing_id"`

	CoverLetter     string         `gorm:"type:text" json:"cover_letter"`
	YearsExperience *int           `json:"years_experience"`
	ExpectedSalary  *float64       `json:"expected_salary"`
	AvailableFrom   *time.Time     `json:"available_from"`
	Answers         datatypes.JSON `gorm:"type:jsonb" json:"answers"`

	Status ApplicationStatus `gorm:"type:varchar(30);not null;default:'submitted'" json:"status"`

	// Интервью (заполняется админом)
	InterviewDate     *time.Time `json:"interview_date"`
	InterviewLocation *string    `json:"interview_location"`
	InterviewType     *string    `gorm:"type:varchar(30)" json:"interview_type"`
	InterviewNotes    *string    `json:"interview_notes"`

	// HR-ревью
	ReviewNotes  *string    `json:"review_notes"`
	ReviewRating *int       `json:"review_rating"`
	ReviewedBy   *string    `json:"reviewed_by"`
	ReviewedAt   *time.Time `json:"reviewed_at"`

	// Relations
	StatusHistory []ApplicationStatusHistory `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE" json:"-"`
}

// ApplicationStatusHistory - append-only журнал переходов статуса.
// Записи никогда не изменяются и не удаляются; newStatus последней записи
// обязан совпадать с текущим статусом отклика.
type ApplicationStatusHistory struct {
	ID             string             `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	ApplicationID  string             `gorm:"not null;index" json:"application_id"`
	PreviousStatus *ApplicationStatus `gorm:"type:varchar(30)" json:"previous_status"`
	NewStatus      ApplicationStatus  `gorm:"type:varchar(30);not null" json:"new_status"`
	Note           string             `json:"note"`
	ActorID        *string            `json:"actor_id"`
	CreatedAt      time.Time          `gorm:"default:now()" json:"created_at"`
}

func (ApplicationStatusHistory) TableName() string {
	return "application_status_history"
}

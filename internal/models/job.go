package models

import (
	"time"

	"gorm.io/datatypes"
)

type JobListing struct {
	BaseModelWithDeleted
	Title            string         `gorm:"not null" json:"title"`
	Department       string         `json:"department"`
	Location         string         `json:"location"`
	EmploymentType   string         `gorm:"type:varchar(30)" json:"employment_type"`
	Description      string         `gorm:"type:text" json:"description"`
	Requirements     datatypes.JSON `gorm:"type:jsonb" json:"requirements"`
	SalaryMin        *float64       `json:"salary_min"`
	SalaryMax        *float64       `json:"salary_max"`
	Status           JobStatus      `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`
	ApplicationCount int            `gorm:"not null;default:0" json:"application_count"`
	PostedAt         *time.Time     `json:"posted_at"`
	ClosesAt         *time.Time     `json:"closes_at"`
}

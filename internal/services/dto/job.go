package dto

import "time"

type CreateJobRequest struct {
	Title          string     `json:"title" validate:"required,min=3,max=200"`
	Department     string     `json:"department" validate:"omitempty,max=100"`
	Location       string     `json:"location" validate:"omitempty,max=200"`
	EmploymentType string     `json:"employment_type" validate:"omitempty,oneof=full_time part_time contract temporary"`
	Description    string     `json:"description" validate:"required"`
	Requirements   []string   `json:"requirements"`
	SalaryMin      *float64   `json:"salary_min" validate:"omitempty,min=0"`
	SalaryMax      *float64   `json:"salary_max" validate:"omitempty,min=0,gtefield=SalaryMin"`
	Status         string     `json:"status" validate:"omitempty,job_status"`
	ClosesAt       *time.Time `json:"closes_at,omitempty"`
}

type UpdateJobRequest struct {
	Title          *string    `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Department     *string    `json:"department,omitempty" validate:"omitempty,max=100"`
	Location       *string    `json:"location,omitempty" validate:"omitempty,max=200"`
	EmploymentType *string    `json:"employment_type,omitempty" validate:"omitempty,oneof=full_time part_time contract temporary"`
	Description    *string    `json:"description,omitempty"`
	Requirements   []string   `json:"requirements,omitempty"`
	SalaryMin      *float64   `json:"salary_min,omitempty" validate:"omitempty,min=0"`
	SalaryMax      *float64   `json:"salary_max,omitempty" validate:"omitempty,min=0"`
	Status         *string    `json:"status,omitempty" validate:"omitempty,job_status"`
	ClosesAt       *time.Time `json:"closes_at,omitempty"`
}

package validator

import (
	"log"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/hredostate/upss-webly/internal/models"
)

var slugRe = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// registerCustomRules регистрирует все кастомные функции валидации в
// переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Правило не зарегистрировалось - приложение не должно запускаться
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("slug", validateSlug)
	mustRegister("application_status", validateApplicationStatus)
	mustRegister("job_status", validateJobStatus)
}

func validateSlug(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // пустые проверяет 'required'
	}
	return slugRe.MatchString(value)
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.IsValidApplicationStatus(models.ApplicationStatus(value))
}

func validateJobStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.JobStatus(value) {
	case models.JobStatusDraft, models.JobStatusOpen, models.JobStatusClosed:
		return true
	default:
		return false
	}
}

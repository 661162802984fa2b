package auth

import "errors"

// Роли пользователей сайта
const (
	RoleAdmin     = "admin"
	RoleApplicant = "applicant"
)

// ValidateRole проверяет валидность роли
func ValidateRole(role string) error {
	switch role {
	case RoleAdmin, RoleApplicant:
		return nil
	default:
		return errors.New("invalid role")
	}
}

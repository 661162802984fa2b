package models

type UserStatus string
type UserRole string
type JobStatus string
type ApplicationStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"

	UserRoleApplicant UserRole = "applicant"
	UserRoleAdmin     UserRole = "admin"

	JobStatusDraft  JobStatus = "draft"
	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"

	ApplicationStatusSubmitted          ApplicationStatus = "submitted"
	ApplicationStatusUnderReview        ApplicationStatus = "under_review"
	ApplicationStatusShortlisted        ApplicationStatus = "shortlisted"
	ApplicationStatusInterviewScheduled ApplicationStatus = "interview_scheduled"
	ApplicationStatusInterviewCompleted ApplicationStatus = "interview_completed"
	ApplicationStatusOfferExtended      ApplicationStatus = "offer_extended"
	ApplicationStatusOfferAccepted      ApplicationStatus = "offer_accepted"
	ApplicationStatusHired              ApplicationStatus = "hired"
	ApplicationStatusRejected           ApplicationStatus = "rejected"
	ApplicationStatusWithdrawn          ApplicationStatus = "withdrawn"
)

// ForwardStages - каноническая линия прогресса отклика для UI.
// interview_completed и offer_accepted намеренно не входят: они считаются
// промежуточными и не двигают счетчик этапов.
var ForwardStages = []ApplicationStatus{
	ApplicationStatusSubmitted,
	ApplicationStatusUnderReview,
	ApplicationStatusShortlisted,
	ApplicationStatusInterviewScheduled,
	ApplicationStatusOfferExtended,
	ApplicationStatusHired,
}

var allApplicationStatuses = map[ApplicationStatus]bool{
	ApplicationStatusSubmitted:          true,
	ApplicationStatusUnderReview:        true,
	ApplicationStatusShortlisted:        true,
	ApplicationStatusInterviewScheduled: true,
	ApplicationStatusInterviewCompleted: true,
	ApplicationStatusOfferExtended:      true,
	ApplicationStatusOfferAccepted:      true,
	ApplicationStatusHired:              true,
	ApplicationStatusRejected:           true,
	ApplicationStatusWithdrawn:          true,
}

// IsValidApplicationStatus проверяет, что статус входит в закрытый набор
func IsValidApplicationStatus(s ApplicationStatus) bool {
	return allApplicationStatuses[s]
}

// CurrentStage возвращает индекс статуса на линии прогресса.
// Для rejected/withdrawn и промежуточных статусов ok == false: у них нет
// числового этапа, UI показывает терминальное или промежуточное состояние.
func CurrentStage(s ApplicationStatus) (int, bool) {
	for i, stage := range ForwardStages {
		if stage == s {
			return i, true
		}
	}
	return 0, false
}

// IsTerminalStatus - true для rejected, withdrawn и hired
func IsTerminalStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationStatusRejected, ApplicationStatusWithdrawn, ApplicationStatusHired:
		return true
	}
	return false
}

// IsActiveStatus - true для любого нетерминального статуса
func IsActiveStatus(s ApplicationStatus) bool {
	return !IsTerminalStatus(s)
}

// ProgressFraction возвращает долю пройденного пути [0,1] для прогресс-бара.
// Для статусов вне линии прогресса ok == false, вызывающий обязан
// обработать этот случай отдельно.
func ProgressFraction(s ApplicationStatus) (float64, bool) {
	stage, ok := CurrentStage(s)
	if !ok {
		return 0, false
	}
	return float64(stage) / float64(len(ForwardStages)-1), true
}

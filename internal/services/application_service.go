package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/hredostate/upss-webly/internal/logger"
	"github.com/hredostate/upss-webly/internal/models"
	"github.com/hredostate/upss-webly/internal/services/dto"
	"github.com/hredostate/upss-webly/pkg/apperrors"
)

// Узкие интерфейсы хранилищ: сервис зависит только от того, что вызывает,
// тесты подставляют фейки без базы.

type ApplicationStore interface {
	Submit(ctx context.Context, app *models.JobApplication) error
	ChangeStatus(ctx context.Context, id string, newStatus models.ApplicationStatus, note string, actorID *string) (*models.JobApplication, error)
	FindByID(ctx context.Context, id string) (*models.JobApplication, error)
	FindByApplicantAndJob(ctx context.Context, applicantID, jobID string) (*models.JobApplication, error)
	ListByApplicant(ctx context.Context, applicantID string) ([]models.JobApplication, error)
	List(ctx context.Context, jobID string, status models.ApplicationStatus, limit, offset int) ([]models.JobApplication, int64, error)
	Update(ctx context.Context, app *models.JobApplication) error
	Delete(ctx context.Context, id string) error
}

type JobStore interface {
	FindByID(ctx context.Context, id string) (*models.JobListing, error)
}

type HistoryStore interface {
	ListByApplication(ctx context.Context, applicationID string) ([]models.ApplicationStatusHistory, error)
}

type ApplicantStore interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// StatusNotifier уведомляет кандидата о смене статуса. Отправка best-effort:
// сбой почты не откатывает смену статуса.
type StatusNotifier interface {
	NotifyStatusChange(to, applicantName, jobTitle string, status models.ApplicationStatus) error
}

type ApplicationService struct {
	apps     ApplicationStore
	jobs     JobStore
	history  HistoryStore
	users    ApplicantStore
	notifier StatusNotifier
}

func NewApplicationService(
	apps ApplicationStore,
	jobs JobStore,
	history HistoryStore,
	users ApplicantStore,
	notifier StatusNotifier,
) *ApplicationService {
	return &ApplicationService{
		apps:     apps,
		jobs:     jobs,
		history:  history,
		users:    users,
		notifier: notifier,
	}
}

// Submit создает отклик кандидата на вакансию.
// Отклик принимается только на открытую вакансию, повторный активный отклик
// той же пары (кандидат, вакансия) отклоняется конфликтом.
func (s *ApplicationService) Submit(ctx context.Context, applicantID, jobID string, req *dto.SubmitApplicationRequest) (*dto.ApplicationView, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.StorageError(err)
	}

	if job.Status != models.JobStatusOpen {
		return nil, apperrors.ErrJobNotOpen
	}

	if _, err := s.apps.FindByApplicantAndJob(ctx, applicantID, jobID); err == nil {
		return nil, apperrors.ErrDuplicateApplication
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.StorageError(err)
	}

	app := &models.JobApplication{
		ApplicantID:     applicantID,
		JobListingID:    jobID,
		CoverLetter:     req.CoverLetter,
		YearsExperience: req.YearsExperience,
		ExpectedSalary:  req.ExpectedSalary,
		AvailableFrom:   req.AvailableFrom,
		Status:          models.ApplicationStatusSubmitted,
	}
	if len(req.Answers) > 0 {
		app.Answers = datatypes.JSON(req.Answers)
	}

	if err := s.apps.Submit(ctx, app); err != nil {
		// Конкурирующий submit той же пары мог проскочить проверку выше;
		// его ловит частичный уникальный индекс уже внутри транзакции.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateApplication
		}
		return nil, apperrors.StorageError(err)
	}

	logger.CtxInfo(ctx, "application submitted",
		"application_id", app.ID,
		"job_id", jobID,
	)

	return dto.NewApplicationView(app), nil
}

// ChangeStatus переводит отклик в новый статус от имени админа.
// Переходы не ограничиваются таблицей: админ может исправить ошибочный
// статус в любую сторону, полная трасса остается в журнале.
func (s *ApplicationService) ChangeStatus(ctx context.Context, id string, req *dto.ChangeStatusRequest, actorID string) (*dto.ApplicationView, error) {
	if !models.IsValidApplicationStatus(req.Status) {
		return nil, apperrors.ErrInvalidApplicationStatus
	}

	note := req.Note
	if note == "" {
		note = fmt.Sprintf("Status changed to %s", req.Status)
	}

	app, err := s.apps.ChangeStatus(ctx, id, req.Status, note, &actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.StorageError(err)
	}

	logger.CtxInfo(ctx, "application status changed",
		"application_id", app.ID,
		"new_status", string(req.Status),
	)

	s.notifyApplicant(ctx, app)

	return dto.NewApplicationView(app), nil
}

// Withdraw отзывает отклик по инициативе кандидата.
// Чужой отклик отозвать нельзя, причем кандидату, угадавшему чужой id,
// возвращается 403, а не 404: существование отклика не скрывается.
func (s *ApplicationService) Withdraw(ctx context.Context, id, applicantID string) (*dto.ApplicationView, error) {
	app, err := s.apps.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.StorageError(err)
	}

	if app.ApplicantID != applicantID {
		return nil, apperrors.ErrNotApplicationOwner
	}

	// Отзывать можно только активный отклик: повторный withdraw или отзыв
	// после hired/rejected не порождает новых записей журнала
	if !models.IsActiveStatus(app.Status) {
		return nil, apperrors.ErrApplicationNotActive
	}

	updated, err := s.apps.ChangeStatus(ctx, id,
		models.ApplicationStatusWithdrawn,
		"Application withdrawn by applicant",
		&applicantID,
	)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.StorageError(err)
	}

	logger.CtxInfo(ctx, "application withdrawn", "application_id", id)

	return dto.NewApplicationView(updated), nil
}

// GetByID возвращает отклик. Кандидат видит только свои отклики,
// админ - любые.
func (s *ApplicationService) GetByID(ctx context.Context, id, requesterID string, isAdmin bool) (*dto.ApplicationView, error) {
	app, err := s.apps.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.StorageError(err)
	}

	if !isAdmin && app.ApplicantID != requesterID {
		return nil, apperrors.ErrNotApplicationOwner
	}

	return dto.NewApplicationView(app), nil
}

// GetHistory возвращает журнал переходов статуса, старые записи первыми.
// Права те же, что у GetByID.
func (s *ApplicationService) GetHistory(ctx context.Context, id, requesterID string, isAdmin bool) ([]models.ApplicationStatusHistory, error) {
	app, err := s.apps.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.StorageError(err)
	}

	if !isAdmin && app.ApplicantID != requesterID {
		return nil, apperrors.ErrNotApplicationOwner
	}

	entries, err := s.history.ListByApplication(ctx, id)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	return entries, nil
}

// ListMine возвращает отклики кандидата, свежие первыми
func (s *ApplicationService) ListMine(ctx context.Context, applicantID string) ([]*dto.ApplicationView, error) {
	apps, err := s.apps.ListByApplicant(ctx, applicantID)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	return toViews(apps), nil
}

// List возвращает отклики для админки с фильтрами по вакансии и статусу
func (s *ApplicationService) List(ctx context.Context, jobID string, status models.ApplicationStatus, limit, offset int) ([]*dto.ApplicationView, int64, error) {
	if status != "" && !models.IsValidApplicationStatus(status) {
		return nil, 0, apperrors.ErrInvalidApplicationStatus
	}

	apps, total, err := s.apps.List(ctx, jobID, status, limit, offset)
	if err != nil {
		return nil, 0, apperrors.StorageError(err)
	}
	return toViews(apps), total, nil
}

// Update обновляет метаданные интервью и ревью, статус не трогает
func (s *ApplicationService) Update(ctx context.Context, id string, req *dto.UpdateApplicationRequest) (*dto.ApplicationView, error) {
	app, err := s.apps.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.StorageError(err)
	}

	if req.InterviewDate != nil {
		app.InterviewDate = req.InterviewDate
	}
	if req.InterviewLocation != nil {
		app.InterviewLocation = req.InterviewLocation
	}
	if req.InterviewType != nil {
		app.InterviewType = req.InterviewType
	}
	if req.InterviewNotes != nil {
		app.InterviewNotes = req.InterviewNotes
	}
	if req.ReviewNotes != nil {
		app.ReviewNotes = req.ReviewNotes
	}
	if req.ReviewRating != nil {
		app.ReviewRating = req.ReviewRating
	}

	if err := s.apps.Update(ctx, app); err != nil {
		return nil, apperrors.StorageError(err)
	}
	return dto.NewApplicationView(app), nil
}

// Delete мягко удаляет отклик (админ). Журнал остается.
func (s *ApplicationService) Delete(ctx context.Context, id string) error {
	if _, err := s.apps.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrApplicationNotFound
		}
		return apperrors.StorageError(err)
	}

	if err := s.apps.Delete(ctx, id); err != nil {
		return apperrors.StorageError(err)
	}
	return nil
}

func (s *ApplicationService) notifyApplicant(ctx context.Context, app *models.JobApplication) {
	if s.notifier == nil {
		return
	}

	user, err := s.users.FindByID(ctx, app.ApplicantID)
	if err != nil {
		logger.CtxWarn(ctx, "notify skipped: applicant lookup failed", "error", err)
		return
	}

	jobTitle := ""
	if job, err := s.jobs.FindByID(ctx, app.JobListingID); err == nil {
		jobTitle = job.Title
	}

	if err := s.notifier.NotifyStatusChange(user.Email, user.FullName, jobTitle, app.Status); err != nil {
		logger.CtxWarn(ctx, "status notification failed",
			"application_id", app.ID,
			"error", err,
		)
	}
}

func toViews(apps []models.JobApplication) []*dto.ApplicationView {
	views := make([]*dto.ApplicationView, 0, len(apps))
	for i := range apps {
		views = append(views, dto.NewApplicationView(&apps[i]))
	}
	return views
}

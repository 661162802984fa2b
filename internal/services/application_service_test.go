package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/hredostate/upss-webly/internal/models"
	"github.com/hredostate/upss-webly/internal/services/dto"
	"github.com/hredostate/upss-webly/pkg/apperrors"
)

// --- Fakes ---

type fakeApplicationStore struct {
	mu      sync.Mutex
	nextID  int
	apps    map[string]*models.JobApplication
	history map[string][]models.ApplicationStatusHistory

	// staleReads эмулирует читателя, не видящего параллельную вставку:
	// FindByApplicantAndJob промахивается, дубликат ловит только
	// уникальный индекс в Submit
	staleReads bool
}

func newFakeApplicationStore() *fakeApplicationStore {
	return &fakeApplicationStore{
		apps:    make(map[string]*models.JobApplication),
		history: make(map[string][]models.ApplicationStatusHistory),
	}
}

func (s *fakeApplicationStore) Submit(ctx context.Context, app *models.JobApplication) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Частичный уникальный индекс на (applicant_id, job_listing_id)
	for _, existing := range s.apps {
		if existing.ApplicantID == app.ApplicantID && existing.JobListingID == app.JobListingID {
			return gorm.ErrDuplicatedKey
		}
	}
	s.nextID++
	app.ID = fmt.Sprintf("app-%d", s.nextID)
	copied := *app
	s.apps[app.ID] = &copied
	s.history[app.ID] = append(s.history[app.ID], models.ApplicationStatusHistory{
		ApplicationID:  app.ID,
		PreviousStatus: nil,
		NewStatus:      app.Status,
		Note:           "Application submitted",
		ActorID:        &app.ApplicantID,
	})
	return nil
}

func (s *fakeApplicationStore) ChangeStatus(ctx context.Context, id string, newStatus models.ApplicationStatus, note string, actorID *string) (*models.JobApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	app, ok := s.apps[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	prev := app.Status
	app.Status = newStatus
	s.history[id] = append(s.history[id], models.ApplicationStatusHistory{
		ApplicationID:  id,
		PreviousStatus: &prev,
		NewStatus:      newStatus,
		Note:           note,
		ActorID:        actorID,
	})
	copied := *app
	return &copied, nil
}

func (s *fakeApplicationStore) FindByID(ctx context.Context, id string) (*models.JobApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	app, ok := s.apps[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *app
	return &copied, nil
}

func (s *fakeApplicationStore) FindByApplicantAndJob(ctx context.Context, applicantID, jobID string) (*models.JobApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.staleReads {
		return nil, gorm.ErrRecordNotFound
	}
	for _, app := range s.apps {
		if app.ApplicantID == applicantID && app.JobListingID == jobID {
			copied := *app
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeApplicationStore) ListByApplicant(ctx context.Context, applicantID string) ([]models.JobApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.JobApplication
	for _, app := range s.apps {
		if app.ApplicantID == applicantID {
			out = append(out, *app)
		}
	}
	return out, nil
}

func (s *fakeApplicationStore) List(ctx context.Context, jobID string, status models.ApplicationStatus, limit, offset int) ([]models.JobApplication, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.JobApplication
	for _, app := range s.apps {
		if jobID != "" && app.JobListingID != jobID {
			continue
		}
		if status != "" && app.Status != status {
			continue
		}
		out = append(out, *app)
	}
	return out, int64(len(out)), nil
}

func (s *fakeApplicationStore) Update(ctx context.Context, app *models.JobApplication) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.apps[app.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *app
	s.apps[app.ID] = &copied
	return nil
}

func (s *fakeApplicationStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.apps, id)
	return nil
}

type fakeHistoryStore struct {
	apps *fakeApplicationStore
}

func (s *fakeHistoryStore) ListByApplication(ctx context.Context, applicationID string) ([]models.ApplicationStatusHistory, error) {
	s.apps.mu.Lock()
	defer s.apps.mu.Unlock()
	return append([]models.ApplicationStatusHistory(nil), s.apps.history[applicationID]...), nil
}

type fakeJobStore struct {
	jobs map[string]*models.JobListing
}

func (s *fakeJobStore) FindByID(ctx context.Context, id string) (*models.JobListing, error) {
	job, ok := s.jobs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return job, nil
}

type fakeApplicantStore struct {
	users map[string]*models.User
}

func (s *fakeApplicantStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

type fakeNotifier struct {
	mu    sync.Mutex
	calls []models.ApplicationStatus
}

func (n *fakeNotifier) NotifyStatusChange(to, applicantName, jobTitle string, status models.ApplicationStatus) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, status)
	return nil
}

// --- Fixture ---

type serviceFixture struct {
	svc      *ApplicationService
	apps     *fakeApplicationStore
	jobs     *fakeJobStore
	notifier *fakeNotifier
}

func newServiceFixture() *serviceFixture {
	apps := newFakeApplicationStore()
	jobs := &fakeJobStore{jobs: map[string]*models.JobListing{}}
	users := &fakeApplicantStore{users: map[string]*models.User{}}
	notifier := &fakeNotifier{}

	openJob := &models.JobListing{Title: "Math Teacher", Status: models.JobStatusOpen}
	openJob.ID = "job-open"
	closedJob := &models.JobListing{Title: "Physics Teacher", Status: models.JobStatusClosed}
	closedJob.ID = "job-closed"
	draftJob := &models.JobListing{Title: "Chemistry Teacher", Status: models.JobStatusDraft}
	draftJob.ID = "job-draft"

	jobs.jobs[openJob.ID] = openJob
	jobs.jobs[closedJob.ID] = closedJob
	jobs.jobs[draftJob.ID] = draftJob

	applicant := &models.User{Email: "applicant@example.com", FullName: "Jane Doe", Role: models.UserRoleApplicant}
	applicant.ID = "user-1"
	users.users[applicant.ID] = applicant

	return &serviceFixture{
		svc:      NewApplicationService(apps, jobs, &fakeHistoryStore{apps: apps}, users, notifier),
		apps:     apps,
		jobs:     jobs,
		notifier: notifier,
	}
}

func submitRequest() *dto.SubmitApplicationRequest {
	return &dto.SubmitApplicationRequest{CoverLetter: "I would like to apply for this position."}
}

// --- Tests ---

func TestSubmitCreatesApplicationWithHistory(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	view, err := f.svc.Submit(ctx, "user-1", "job-open", submitRequest())
	require.NoError(t, err)

	assert.Equal(t, models.ApplicationStatusSubmitted, view.Status)
	require.NotNil(t, view.CurrentStage)
	assert.Equal(t, 0, *view.CurrentStage)
	assert.False(t, view.Terminal)

	entries, err := f.svc.GetHistory(ctx, view.ID, "user-1", false)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Nil(t, entries[0].PreviousStatus)
	assert.Equal(t, models.ApplicationStatusSubmitted, entries[0].NewStatus)
}

func TestSubmitToUnknownJobReturnsNotFound(t *testing.T) {
	f := newServiceFixture()

	_, err := f.svc.Submit(context.Background(), "user-1", "job-missing", submitRequest())
	assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
}

func TestSubmitToClosedJobReturnsConflict(t *testing.T) {
	f := newServiceFixture()

	_, err := f.svc.Submit(context.Background(), "user-1", "job-closed", submitRequest())
	assert.ErrorIs(t, err, apperrors.ErrJobNotOpen)

	_, err = f.svc.Submit(context.Background(), "user-1", "job-draft", submitRequest())
	assert.ErrorIs(t, err, apperrors.ErrJobNotOpen)
}

func TestDuplicateSubmitReturnsConflict(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	_, err := f.svc.Submit(ctx, "user-1", "job-open", submitRequest())
	require.NoError(t, err)

	_, err = f.svc.Submit(ctx, "user-1", "job-open", submitRequest())
	assert.ErrorIs(t, err, apperrors.ErrDuplicateApplication)
}

func TestSimultaneousSubmitsCreateOnlyOneApplication(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	// Оба запроса проходят предварительную проверку дубликата до того,
	// как первый закоммитился; вторую вставку обязан отклонить индекс
	f.apps.staleReads = true

	_, firstErr := f.svc.Submit(ctx, "user-1", "job-open", submitRequest())
	_, secondErr := f.svc.Submit(ctx, "user-1", "job-open", submitRequest())

	require.NoError(t, firstErr)
	assert.ErrorIs(t, secondErr, apperrors.ErrDuplicateApplication)
	assert.Len(t, f.apps.apps, 1)
}

func TestConcurrentStatusChangesKeepHistoryConsistent(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	view, err := f.svc.Submit(ctx, "user-1", "job-open", submitRequest())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for _, status := range []models.ApplicationStatus{
		models.ApplicationStatusUnderReview,
		models.ApplicationStatusShortlisted,
	} {
		wg.Add(1)
		go func(status models.ApplicationStatus) {
			defer wg.Done()
			_, err := f.svc.ChangeStatus(ctx, view.ID, &dto.ChangeStatusRequest{Status: status}, "admin-1")
			assert.NoError(t, err)
		}(status)
	}
	wg.Wait()

	// Ни один переход не потерян: submit + оба изменения статуса
	entries, err := f.svc.GetHistory(ctx, view.ID, "admin-1", true)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Каждая запись продолжает предыдущую, независимо от порядка записи
	assert.Nil(t, entries[0].PreviousStatus)
	for i := 1; i < len(entries); i++ {
		require.NotNil(t, entries[i].PreviousStatus)
		assert.Equal(t, entries[i-1].NewStatus, *entries[i].PreviousStatus, "entry %d", i)
	}

	// Текущий статус отклика равен newStatus последней записи
	final, err := f.svc.GetByID(ctx, view.ID, "admin-1", true)
	require.NoError(t, err)
	assert.Equal(t, entries[len(entries)-1].NewStatus, final.Status)
}

func TestChangeStatusRecordsTransition(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	view, err := f.svc.Submit(ctx, "user-1", "job-open", submitRequest())
	require.NoError(t, err)

	updated, err := f.svc.ChangeStatus(ctx, view.ID, &dto.ChangeStatusRequest{
		Status: models.ApplicationStatusUnderReview,
		Note:   "Looks promising",
	}, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusUnderReview, updated.Status)

	entries, err := f.svc.GetHistory(ctx, view.ID, "admin-1", true)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	last := entries[1]
	require.NotNil(t, last.PreviousStatus)
	assert.Equal(t, models.ApplicationStatusSubmitted, *last.PreviousStatus)
	assert.Equal(t, models.ApplicationStatusUnderReview, last.NewStatus)
	assert.Equal(t, "Looks promising", last.Note)

	// Кандидат получил уведомление
	assert.Equal(t, []models.ApplicationStatus{models.ApplicationStatusUnderReview}, f.notifier.calls)
}

func TestChangeStatusGeneratesDefaultNote(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	view, err := f.svc.Submit(ctx, "user-1", "job-open", submitRequest())
	require.NoError(t, err)

	_, err = f.svc.ChangeStatus(ctx, view.ID, &dto.ChangeStatusRequest{
		Status: models.ApplicationStatusShortlisted,
	}, "admin-1")
	require.NoError(t, err)

	entries, err := f.svc.GetHistory(ctx, view.ID, "admin-1", true)
	require.NoError(t, err)
	assert.Equal(t, "Status changed to shortlisted", entries[len(entries)-1].Note)
}

func TestChangeStatusRejectsUnknownStatus(t *testing.T) {
	f := newServiceFixture()

	_, err := f.svc.ChangeStatus(context.Background(), "app-1", &dto.ChangeStatusRequest{
		Status: models.ApplicationStatus("archived"),
	}, "admin-1")
	assert.ErrorIs(t, err, apperrors.ErrInvalidApplicationStatus)
}

func TestChangeStatusUnknownApplicationReturnsNotFound(t *testing.T) {
	f := newServiceFixture()

	_, err := f.svc.ChangeStatus(context.Background(), "app-missing", &dto.ChangeStatusRequest{
		Status: models.ApplicationStatusUnderReview,
	}, "admin-1")
	assert.ErrorIs(t, err, apperrors.ErrApplicationNotFound)
}

func TestWithdrawByOwner(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	view, err := f.svc.Submit(ctx, "user-1", "job-open", submitRequest())
	require.NoError(t, err)

	withdrawn, err := f.svc.Withdraw(ctx, view.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusWithdrawn, withdrawn.Status)
	assert.True(t, withdrawn.Terminal)
	assert.Nil(t, withdrawn.CurrentStage)
	assert.Nil(t, withdrawn.Progress)
}

func TestWithdrawTerminalApplicationReturnsConflict(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	view, err := f.svc.Submit(ctx, "user-1", "job-open", submitRequest())
	require.NoError(t, err)

	_, err = f.svc.Withdraw(ctx, view.ID, "user-1")
	require.NoError(t, err)

	// Повторный отзыв уже отозванного отклика
	_, err = f.svc.Withdraw(ctx, view.ID, "user-1")
	assert.ErrorIs(t, err, apperrors.ErrApplicationNotActive)

	// Нанятый кандидат тоже не может отозвать отклик
	other, err := f.svc.Submit(ctx, "user-2", "job-open", submitRequest())
	require.NoError(t, err)
	_, err = f.svc.ChangeStatus(ctx, other.ID, &dto.ChangeStatusRequest{Status: models.ApplicationStatusHired}, "admin-1")
	require.NoError(t, err)
	_, err = f.svc.Withdraw(ctx, other.ID, "user-2")
	assert.ErrorIs(t, err, apperrors.ErrApplicationNotActive)
}

func TestWithdrawForeignApplicationReturnsForbidden(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	view, err := f.svc.Submit(ctx, "user-1", "job-open", submitRequest())
	require.NoError(t, err)

	_, err = f.svc.Withdraw(ctx, view.ID, "user-2")
	assert.ErrorIs(t, err, apperrors.ErrNotApplicationOwner)
}

func TestGetByIDEnforcesOwnership(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	view, err := f.svc.Submit(ctx, "user-1", "job-open", submitRequest())
	require.NoError(t, err)

	_, err = f.svc.GetByID(ctx, view.ID, "user-2", false)
	assert.ErrorIs(t, err, apperrors.ErrNotApplicationOwner)

	// Админу чужой отклик доступен
	got, err := f.svc.GetByID(ctx, view.ID, "admin-1", true)
	require.NoError(t, err)
	assert.Equal(t, view.ID, got.ID)
}

func TestLifecycleHistoryTrace(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	view, err := f.svc.Submit(ctx, "user-1", "job-open", submitRequest())
	require.NoError(t, err)

	_, err = f.svc.ChangeStatus(ctx, view.ID, &dto.ChangeStatusRequest{Status: models.ApplicationStatusUnderReview}, "admin-1")
	require.NoError(t, err)
	_, err = f.svc.ChangeStatus(ctx, view.ID, &dto.ChangeStatusRequest{Status: models.ApplicationStatusShortlisted}, "admin-1")
	require.NoError(t, err)
	_, err = f.svc.Withdraw(ctx, view.ID, "user-1")
	require.NoError(t, err)

	entries, err := f.svc.GetHistory(ctx, view.ID, "user-1", false)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	wantTransitions := []struct {
		prev *models.ApplicationStatus
		next models.ApplicationStatus
	}{
		{nil, models.ApplicationStatusSubmitted},
		{statusPtr(models.ApplicationStatusSubmitted), models.ApplicationStatusUnderReview},
		{statusPtr(models.ApplicationStatusUnderReview), models.ApplicationStatusShortlisted},
		{statusPtr(models.ApplicationStatusShortlisted), models.ApplicationStatusWithdrawn},
	}

	for i, want := range wantTransitions {
		if want.prev == nil {
			assert.Nil(t, entries[i].PreviousStatus, "entry %d", i)
		} else {
			require.NotNil(t, entries[i].PreviousStatus, "entry %d", i)
			assert.Equal(t, *want.prev, *entries[i].PreviousStatus, "entry %d", i)
		}
		assert.Equal(t, want.next, entries[i].NewStatus, "entry %d", i)
	}

	// newStatus последней записи совпадает с текущим статусом отклика
	final, err := f.svc.GetByID(ctx, view.ID, "user-1", false)
	require.NoError(t, err)
	assert.Equal(t, entries[len(entries)-1].NewStatus, final.Status)
}

func TestListFiltersRejectUnknownStatus(t *testing.T) {
	f := newServiceFixture()

	_, _, err := f.svc.List(context.Background(), "", models.ApplicationStatus("bogus"), 20, 0)
	assert.ErrorIs(t, err, apperrors.ErrInvalidApplicationStatus)
}

func statusPtr(s models.ApplicationStatus) *models.ApplicationStatus {
	return &s
}

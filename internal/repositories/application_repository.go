package repositories

import (
	"context"
	"time"

	"github.com/hredostate/upss-webly/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Submit создает отклик вместе с первой записью журнала и увеличивает
// счетчик откликов вакансии. Все три записи попадают в одну транзакцию:
// отклик без записи журнала существовать не должен.
func (r *ApplicationRepository) Submit(ctx context.Context, app *models.JobApplication) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(app).Error; err != nil {
			return err
		}

		entry := &models.ApplicationStatusHistory{
			ApplicationID:  app.ID,
			PreviousStatus: nil,
			NewStatus:      app.Status,
			Note:           "Application submitted",
			ActorID:        &app.ApplicantID,
		}
		if err := tx.Create(entry).Error; err != nil {
			return err
		}

		return tx.Model(&models.JobListing{}).
			Where("id = ?", app.JobListingID).
			UpdateColumn("application_count", gorm.Expr("application_count + 1")).Error
	})
}

// ChangeStatus выполняет смену статуса и запись в журнал одной транзакцией.
// Строка отклика блокируется SELECT ... FOR UPDATE на время транзакции,
// поэтому конкурирующая смена статуса увидит уже обновленное значение
// previous_status, а не устаревшее.
func (r *ApplicationRepository) ChangeStatus(
	ctx context.Context,
	id string,
	newStatus models.ApplicationStatus,
	note string,
	actorID *string,
) (*models.JobApplication, error) {
	var app models.JobApplication

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&app, "id = ?", id).Error; err != nil {
			return err
		}

		prev := app.Status
		app.Status = newStatus
		if actorID != nil {
			now := time.Now()
			app.ReviewedBy = actorID
			app.ReviewedAt = &now
		}

		if err := tx.Save(&app).Error; err != nil {
			return err
		}

		entry := &models.ApplicationStatusHistory{
			ApplicationID:  app.ID,
			PreviousStatus: &prev,
			NewStatus:      newStatus,
			Note:           note,
			ActorID:        actorID,
		}
		return tx.Create(entry).Error
	})
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id string) (*models.JobApplication, error) {
	var app models.JobApplication
	if err := r.db.WithContext(ctx).First(&app, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

// FindByApplicantAndJob возвращает неудаленный отклик пары (кандидат, вакансия).
// Мягко удаленные отклики не учитываются: после admin delete кандидат может
// податься снова.
func (r *ApplicationRepository) FindByApplicantAndJob(ctx context.Context, applicantID, jobID string) (*models.JobApplication, error) {
	var app models.JobApplication
	err := r.db.WithContext(ctx).
		First(&app, "applicant_id = ? AND job_listing_id = ?", applicantID, jobID).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepository) ListByApplicant(ctx context.Context, applicantID string) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	err := r.db.WithContext(ctx).
		Where("applicant_id = ?", applicantID).
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

// List возвращает отклики для админки с фильтрами по вакансии и статусу
func (r *ApplicationRepository) List(ctx context.Context, jobID string, status models.ApplicationStatus, limit, offset int) ([]models.JobApplication, int64, error) {
	var (
		apps  []models.JobApplication
		total int64
	)

	q := r.db.WithContext(ctx).Model(&models.JobApplication{})
	if jobID != "" {
		q = q.Where("job_listing_id = ?", jobID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&apps).Error
	if err != nil {
		return nil, 0, err
	}
	return apps, total, nil
}

func (r *ApplicationRepository) Update(ctx context.Context, app *models.JobApplication) error {
	return r.db.WithContext(ctx).Omit("StatusHistory").Save(app).Error
}

func (r *ApplicationRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.JobApplication{}, "id = ?", id).Error
}

package repositories

import (
	"context"

	"github.com/hredostate/upss-webly/internal/models"
	"gorm.io/gorm"
)

// HistoryRepository - чтение журнала переходов статуса. Записи добавляются
// только внутри транзакций ApplicationRepository и никогда не обновляются
// и не удаляются.
type HistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// ListByApplication возвращает записи журнала, старые первыми
func (r *HistoryRepository) ListByApplication(ctx context.Context, applicationID string) ([]models.ApplicationStatusHistory, error) {
	var entries []models.ApplicationStatusHistory
	err := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("created_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

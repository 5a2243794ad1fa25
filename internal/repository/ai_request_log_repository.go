package repository

import (
	"github.com/littlejems/diagnostics-api/internal/model"
	"gorm.io/gorm"
)

type AIRequestLogRepository interface {
	Create(entry *model.AIRequestLog) error
	FindRecent(limit int) ([]model.AIRequestLog, error)
	WithTx(tx *gorm.DB) AIRequestLogRepository
}

type aiRequestLogRepository struct {
	db *gorm.DB
}

func NewAIRequestLogRepository(db *gorm.DB) AIRequestLogRepository {
	return &aiRequestLogRepository{db: db}
}

func (r *aiRequestLogRepository) WithTx(tx *gorm.DB) AIRequestLogRepository {
	return &aiRequestLogRepository{db: tx}
}

func (r *aiRequestLogRepository) Create(entry *model.AIRequestLog) error {
	return r.db.Create(entry).Error
}

func (r *aiRequestLogRepository) FindRecent(limit int) ([]model.AIRequestLog, error) {
	var entries []model.AIRequestLog
	if err := r.db.Order("created_at DESC").Limit(limit).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

package repository

import (
	"github.com/google/uuid"
	"github.com/littlejems/diagnostics-api/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DiagnosticResponseRepository interface {
	// Upsert writes the selection for (test, question), overwriting any
	// earlier selection so save-then-resubmit flows work.
	Upsert(response *model.DiagnosticResponse) error
	FindByTestID(testID uuid.UUID) ([]model.DiagnosticResponse, error)
	WithTx(tx *gorm.DB) DiagnosticResponseRepository
}

type diagnosticResponseRepository struct {
	db *gorm.DB
}

func NewDiagnosticResponseRepository(db *gorm.DB) DiagnosticResponseRepository {
	return &diagnosticResponseRepository{db: db}
}

func (r *diagnosticResponseRepository) WithTx(tx *gorm.DB) DiagnosticResponseRepository {
	return &diagnosticResponseRepository{db: tx}
}

func (r *diagnosticResponseRepository) Upsert(response *model.DiagnosticResponse) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "test_id"}, {Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"selected_option", "updated_at"}),
	}).Create(response).Error
}

func (r *diagnosticResponseRepository) FindByTestID(testID uuid.UUID) ([]model.DiagnosticResponse, error) {
	var responses []model.DiagnosticResponse
	if err := r.db.Where("test_id = ?", testID).Find(&responses).Error; err != nil {
		return nil, err
	}
	return responses, nil
}

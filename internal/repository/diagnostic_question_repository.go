package repository

import (
	"github.com/google/uuid"
	"github.com/littlejems/diagnostics-api/internal/model"
	"gorm.io/gorm"
)

type DiagnosticQuestionRepository interface {
	// BulkCreate inserts the whole batch in one statement. Callers wrap it in
	// a transaction so a partial question list is never visible.
	BulkCreate(questions []model.DiagnosticQuestion) error
	FindByTestID(testID uuid.UUID) ([]model.DiagnosticQuestion, error)
	ExistsForTest(testID uuid.UUID) (bool, error)
	WithTx(tx *gorm.DB) DiagnosticQuestionRepository
}

type diagnosticQuestionRepository struct {
	db *gorm.DB
}

func NewDiagnosticQuestionRepository(db *gorm.DB) DiagnosticQuestionRepository {
	return &diagnosticQuestionRepository{db: db}
}

func (r *diagnosticQuestionRepository) WithTx(tx *gorm.DB) DiagnosticQuestionRepository {
	return &diagnosticQuestionRepository{db: tx}
}

func (r *diagnosticQuestionRepository) BulkCreate(questions []model.DiagnosticQuestion) error {
	return r.db.Create(&questions).Error
}

func (r *diagnosticQuestionRepository) FindByTestID(testID uuid.UUID) ([]model.DiagnosticQuestion, error) {
	var questions []model.DiagnosticQuestion
	if err := r.db.Where("test_id = ?", testID).Order("question_order ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *diagnosticQuestionRepository) ExistsForTest(testID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&model.DiagnosticQuestion{}).Where("test_id = ?", testID).Count(&count).Error
	return count > 0, err
}

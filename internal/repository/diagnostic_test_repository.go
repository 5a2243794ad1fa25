package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/littlejems/diagnostics-api/internal/model"
	"gorm.io/gorm"
)

type DiagnosticTestRepository interface {
	Create(test *model.DiagnosticTest) error
	Save(test *model.DiagnosticTest) error
	FindByID(id uuid.UUID) (*model.DiagnosticTest, error)
	FindByIDWithQuestions(id uuid.UUID) (*model.DiagnosticTest, error)
	// FindLatestIncomplete returns the newest incomplete test for the child
	// and subject, or nil when none exists.
	FindLatestIncomplete(childID uuid.UUID, subject model.Subject) (*model.DiagnosticTest, error)
	HasCompleted(childID uuid.UUID, subject model.Subject) (bool, error)
	// WithTx returns a repository bound to the given transaction.
	WithTx(tx *gorm.DB) DiagnosticTestRepository
}

type diagnosticTestRepository struct {
	db *gorm.DB
}

func NewDiagnosticTestRepository(db *gorm.DB) DiagnosticTestRepository {
	return &diagnosticTestRepository{db: db}
}

func (r *diagnosticTestRepository) WithTx(tx *gorm.DB) DiagnosticTestRepository {
	return &diagnosticTestRepository{db: tx}
}

func (r *diagnosticTestRepository) Create(test *model.DiagnosticTest) error {
	return r.db.Create(test).Error
}

func (r *diagnosticTestRepository) Save(test *model.DiagnosticTest) error {
	return r.db.Save(test).Error
}

func (r *diagnosticTestRepository) FindByID(id uuid.UUID) (*model.DiagnosticTest, error) {
	var test model.DiagnosticTest
	if err := r.db.First(&test, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *diagnosticTestRepository) FindByIDWithQuestions(id uuid.UUID) (*model.DiagnosticTest, error) {
	var test model.DiagnosticTest
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("diagnostic_questions.question_order ASC")
		}).
		Preload("Child").
		First(&test, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *diagnosticTestRepository) FindLatestIncomplete(childID uuid.UUID, subject model.Subject) (*model.DiagnosticTest, error) {
	var test model.DiagnosticTest
	err := r.db.
		Where("child_id = ? AND subject = ? AND is_completed = ?", childID, subject, false).
		Order("created_at DESC").
		First(&test).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *diagnosticTestRepository) HasCompleted(childID uuid.UUID, subject model.Subject) (bool, error) {
	var count int64
	err := r.db.Model(&model.DiagnosticTest{}).
		Where("child_id = ? AND subject = ? AND is_completed = ?", childID, subject, true).
		Count(&count).Error
	return count > 0, err
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DiagnosticResponse stores the child's selected option for one question.
// Unique per (test, question); later writes overwrite earlier ones so a quiz
// can be saved and resumed.
type DiagnosticResponse struct {
	ID             uuid.UUID          `gorm:"type:uuid;primarykey" json:"id"`
	TestID         uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:idx_response_test_question" json:"test_id"`
	QuestionID     uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:idx_response_test_question" json:"question_id"`
	Question       DiagnosticQuestion `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"question,omitempty"`
	SelectedOption Option             `gorm:"type:varchar(1);not null" json:"selected_option"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

func (r *DiagnosticResponse) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

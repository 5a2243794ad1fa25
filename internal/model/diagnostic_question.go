package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Option string

const (
	OptionA Option = "A"
	OptionB Option = "B"
	OptionC Option = "C"
	OptionD Option = "D"
)

func (o Option) Valid() bool {
	switch o {
	case OptionA, OptionB, OptionC, OptionD:
		return true
	}
	return false
}

// DiagnosticQuestion is one multiple-choice question owned by a test.
// Questions are bulk-created right after generation and never mutated.
type DiagnosticQuestion struct {
	ID            uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	TestID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_question_test_order" json:"test_id"`
	PromptVersion string    `gorm:"size:50;not null" json:"prompt_version"`
	Seed          string    `gorm:"size:255;not null" json:"seed"`
	Order         int       `gorm:"column:question_order;not null;uniqueIndex:idx_question_test_order" json:"order"`
	QuestionText  string    `gorm:"type:text;not null" json:"question_text"`
	OptionA       string    `gorm:"size:255;not null" json:"option_a"`
	OptionB       string    `gorm:"size:255;not null" json:"option_b"`
	OptionC       string    `gorm:"size:255;not null" json:"option_c"`
	OptionD       string    `gorm:"size:255;not null" json:"option_d"`
	CorrectOption Option    `gorm:"type:varchar(1);not null" json:"correct_option"`
	Difficulty    string    `gorm:"size:20;not null" json:"difficulty"`
}

func (q *DiagnosticQuestion) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// OptionText returns the text of the given labelled option.
func (q *DiagnosticQuestion) OptionText(o Option) string {
	switch o {
	case OptionA:
		return q.OptionA
	case OptionB:
		return q.OptionB
	case OptionC:
		return q.OptionC
	case OptionD:
		return q.OptionD
	}
	return ""
}

package model

import (
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Subject string

const (
	SubjectMaths   Subject = "maths"
	SubjectEnglish Subject = "english"
	SubjectScience Subject = "science"
)

func (s Subject) Valid() bool {
	switch s {
	case SubjectMaths, SubjectEnglish, SubjectScience:
		return true
	}
	return false
}

type Rank string

const (
	RankBronze Rank = "bronze"
	RankSilver Rank = "silver"
	RankGold   Rank = "gold"
)

// DiagnosticTest is one scored quiz attempt for one child in one subject.
// Rank stays nil until a completion listener assigns it, and is never
// overwritten afterwards.
type DiagnosticTest struct {
	ID              uuid.UUID            `gorm:"type:uuid;primarykey" json:"id"`
	ChildID         uuid.UUID            `gorm:"type:uuid;not null;index" json:"child_id"`
	Child           Child                `gorm:"foreignKey:ChildID;constraint:OnDelete:CASCADE" json:"child,omitempty"`
	Subject         Subject              `gorm:"type:varchar(10);not null" json:"subject"`
	TotalQuestions  int                  `gorm:"not null;default:10" json:"total_questions"`
	CorrectAnswers  int                  `gorm:"not null;default:0" json:"correct_answers"`
	ScorePercentage float64              `gorm:"type:numeric(5,2);not null;default:0" json:"score_percentage"`
	Rank            *Rank                `gorm:"type:varchar(10)" json:"rank,omitempty"`
	IsCompleted     bool                 `gorm:"not null;default:false" json:"is_completed"`
	CompletedAt     *time.Time           `json:"completed_at,omitempty"`
	Questions       []DiagnosticQuestion `gorm:"foreignKey:TestID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

func (t *DiagnosticTest) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// BeforeSave recomputes the derived score on every write, so CorrectAnswers
// and ScorePercentage can never drift apart in the database.
func (t *DiagnosticTest) BeforeSave(tx *gorm.DB) error {
	t.ScorePercentage = ComputeScorePercentage(t.CorrectAnswers, t.TotalQuestions)
	return nil
}

// ComputeScorePercentage quantizes correct/total to two decimal places with
// half-up rounding. A zero total scores 0.00.
func ComputeScorePercentage(correct, total int) float64 {
	if total <= 0 {
		return 0
	}
	raw := float64(correct) / float64(total) * 100
	return math.Floor(raw*100+0.5) / 100
}

// Complete transitions the test to its terminal state. It reports whether
// this call performed the transition; repeat calls are no-ops that leave
// CompletedAt untouched.
func (t *DiagnosticTest) Complete(now time.Time) bool {
	if t.IsCompleted {
		return false
	}
	t.IsCompleted = true
	t.CompletedAt = &now
	return true
}

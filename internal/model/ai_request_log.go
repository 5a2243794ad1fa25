package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LogStatus string

const (
	LogStatusSuccess LogStatus = "success"
	LogStatusFailure LogStatus = "failure"
)

// AIRequestLog is the append-only audit record of one generation attempt.
// TestID is nullable so the test can be deleted without losing the log.
type AIRequestLog struct {
	ID              uuid.UUID  `gorm:"type:uuid;primarykey" json:"id"`
	TestID          *uuid.UUID `gorm:"type:uuid;index" json:"test_id,omitempty"`
	PromptVersion   string     `gorm:"size:50;not null" json:"prompt_version"`
	Seed            string     `gorm:"size:255;not null" json:"seed"`
	Provider        string     `gorm:"size:50;not null" json:"provider"`
	Status          LogStatus  `gorm:"type:varchar(10);not null" json:"status"`
	ErrorMessage    string     `gorm:"type:text" json:"error_message,omitempty"`
	PromptExcerpt   string     `gorm:"type:text" json:"prompt_excerpt"`
	ResponseExcerpt string     `gorm:"type:text" json:"response_excerpt,omitempty"`
	LatencyMs       *int64     `json:"latency_ms,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func (l *AIRequestLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

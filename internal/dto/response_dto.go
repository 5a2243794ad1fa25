package dto

import (
	"time"

	"github.com/google/uuid"
)

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type ChildResponseDTO struct {
	ID         uuid.UUID `json:"id"`
	ParentID   uuid.UUID `json:"parent_id"`
	FirstName  string    `json:"first_name"`
	Age        int       `json:"age"`
	SchoolName string    `json:"school_name"`
	YearGroup  int       `json:"year_group"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TestCreatedDTO is the create-endpoint response body.
type TestCreatedDTO struct {
	ID      uuid.UUID `json:"id"`
	Subject string    `json:"subject"`
	Rank    *string   `json:"rank"`
}

// QuestionResponseDTO never exposes the correct option; it is the quiz-taking
// view of a question, with any previously saved selection for resume flows.
type QuestionResponseDTO struct {
	ID             uuid.UUID `json:"id"`
	Order          int       `json:"order"`
	QuestionText   string    `json:"question_text"`
	OptionA        string    `json:"option_a"`
	OptionB        string    `json:"option_b"`
	OptionC        string    `json:"option_c"`
	OptionD        string    `json:"option_d"`
	Difficulty     string    `json:"difficulty"`
	SelectedOption *string   `json:"selected_option,omitempty"`
}

type TestDetailDTO struct {
	ID             uuid.UUID             `json:"id"`
	ChildID        uuid.UUID             `json:"child_id"`
	Subject        string                `json:"subject"`
	TotalQuestions int                   `json:"total_questions"`
	IsCompleted    bool                  `json:"is_completed"`
	CompletedAt    *time.Time            `json:"completed_at,omitempty"`
	Rank           *string               `json:"rank,omitempty"`
	Questions      []QuestionResponseDTO `json:"questions"`
	CreatedAt      time.Time             `json:"created_at"`
}

type ResponsesSavedDTO struct {
	TestID uuid.UUID `json:"test_id"`
	Saved  int       `json:"saved"`
}

// TestCompletedDTO reports the outcome of the idempotent complete endpoint.
type TestCompletedDTO struct {
	ID              uuid.UUID  `json:"id"`
	CorrectAnswers  int        `json:"correct_answers"`
	TotalQuestions  int        `json:"total_questions"`
	ScorePercentage string     `json:"score_percentage"`
	Rank            *string    `json:"rank"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

// ResultItemDTO is one per-question line of the results breakdown.
type ResultItemDTO struct {
	Order          int    `json:"order"`
	QuestionText   string `json:"question_text"`
	Difficulty     string `json:"difficulty"`
	SelectedOption string `json:"selected_option"`
	SelectedText   string `json:"selected_text"`
	CorrectOption  string `json:"correct_option"`
	CorrectText    string `json:"correct_text"`
	Correct        bool   `json:"correct"`
}

type TestResultsDTO struct {
	ID              uuid.UUID         `json:"id"`
	ChildID         uuid.UUID         `json:"child_id"`
	Subject         string            `json:"subject"`
	CorrectAnswers  int               `json:"correct_answers"`
	TotalQuestions  int               `json:"total_questions"`
	ScorePercentage string            `json:"score_percentage"`
	Rank            *string           `json:"rank"`
	CompletedAt     *time.Time        `json:"completed_at,omitempty"`
	Items           []ResultItemDTO   `json:"items"`
	Chest           *ChestResponseDTO `json:"chest,omitempty"`
}

type ChestResponseDTO struct {
	ID                uuid.UUID  `json:"id"`
	ChildID           uuid.UUID  `json:"child_id"`
	RewardDescription string     `json:"reward_description"`
	RewardValue       float64    `json:"reward_value"`
	IsLocked          bool       `json:"is_locked"`
	UnlockedAt        *time.Time `json:"unlocked_at,omitempty"`
}

// AIRequestLogDTO is the admin view of one generation attempt.
type AIRequestLogDTO struct {
	ID              uuid.UUID  `json:"id"`
	TestID          *uuid.UUID `json:"test_id,omitempty"`
	PromptVersion   string     `json:"prompt_version"`
	Seed            string     `json:"seed"`
	Provider        string     `json:"provider"`
	Status          string     `json:"status"`
	ErrorMessage    string     `json:"error_message,omitempty"`
	PromptExcerpt   string     `json:"prompt_excerpt"`
	ResponseExcerpt string     `json:"response_excerpt,omitempty"`
	LatencyMs       *int64     `json:"latency_ms,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Question is one validated multiple-choice question from the provider.
type Question struct {
	QuestionText  string
	Options       [4]string
	CorrectOption string // "A"-"D"
	Difficulty    string
}

type rawQuestion struct {
	QuestionText       string   `json:"question_text"`
	Options            []string `json:"options"`
	CorrectAnswerIndex *int     `json:"correct_answer_index"`
	Difficulty         string   `json:"difficulty"`
}

type rawPayload struct {
	Questions []json.RawMessage `json:"questions"`
}

var optionLabels = [4]string{"A", "B", "C", "D"}

// ParseQuestions parses raw provider text and enforces the strict question
// schema. Any mismatch aborts the whole batch; there is no partial
// acceptance. All text fields are trimmed and difficulty is lower-cased.
func ParseQuestions(raw string) ([]Question, error) {
	var payload rawPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, &ValidationError{Message: "AI response must be valid JSON", Err: err}
	}
	if payload.Questions == nil {
		return nil, &ValidationError{Message: "payload missing 'questions' list"}
	}

	parsed := make([]Question, 0, len(payload.Questions))
	for i, entry := range payload.Questions {
		idx := i + 1
		var row rawQuestion
		if err := json.Unmarshal(entry, &row); err != nil {
			return nil, &ValidationError{Message: fmt.Sprintf("question #%d is not an object", idx), Err: err}
		}

		if strings.TrimSpace(row.QuestionText) == "" {
			return nil, &ValidationError{Message: fmt.Sprintf("question #%d missing text", idx)}
		}
		if len(row.Options) != 4 {
			return nil, &ValidationError{Message: fmt.Sprintf("question #%d must include 4 options", idx)}
		}
		if row.CorrectAnswerIndex == nil {
			return nil, &ValidationError{Message: fmt.Sprintf("question #%d missing correct index", idx)}
		}
		if strings.TrimSpace(row.Difficulty) == "" {
			return nil, &ValidationError{Message: fmt.Sprintf("question #%d missing difficulty", idx)}
		}

		correctIndex := *row.CorrectAnswerIndex
		if correctIndex < 0 || correctIndex >= len(optionLabels) {
			return nil, &ValidationError{Message: fmt.Sprintf("invalid correct option index: %d", correctIndex)}
		}

		var options [4]string
		for j, opt := range row.Options {
			options[j] = strings.TrimSpace(opt)
		}
		parsed = append(parsed, Question{
			QuestionText:  strings.TrimSpace(row.QuestionText),
			Options:       options,
			CorrectOption: optionLabels[correctIndex],
			Difficulty:    strings.ToLower(strings.TrimSpace(row.Difficulty)),
		})
	}

	if len(parsed) == 0 {
		return nil, &ValidationError{Message: "no questions returned by provider"}
	}
	return parsed, nil
}

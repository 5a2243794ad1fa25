package service

import "errors"

// Domain rule violations. Controllers map these to 400/409-class responses;
// they are never conflated with provider or validation failures from the AI
// pipeline.
var (
	ErrWrongSubject               = errors.New("AI generation currently supports Maths only")
	ErrTestCompleted              = errors.New("cannot generate questions for a completed test")
	ErrDiagnosticAlreadyCompleted = errors.New("maths diagnostic already completed for this child")
	ErrUnansweredQuestions        = errors.New("all questions must be answered before submission")
	ErrChestExists                = errors.New("treasure chest already exists for this child")
)

// GenerationError is the single user-facing wrapper for a failed generation
// when no stub fallback is configured. The underlying provider or validation
// error stays reachable through Unwrap for logging.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return "diagnostic question generation failed: " + e.Err.Error()
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

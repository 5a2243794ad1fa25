package dto

import "github.com/google/uuid"

// ChildCreateDTO creates a child profile. Parent identity arrives as an
// opaque id until authentication lands.
type ChildCreateDTO struct {
	ParentID   uuid.UUID `json:"parent_id" binding:"required"`
	FirstName  string    `json:"first_name" binding:"required,max=100"`
	Age        int       `json:"age" binding:"required,min=5,max=11"`
	SchoolName string    `json:"school_name" binding:"required,max=255"`
	YearGroup  int       `json:"year_group" binding:"min=0,max=6"`
}

type ChildUpdateDTO struct {
	FirstName  *string `json:"first_name" binding:"omitempty,max=100"`
	Age        *int    `json:"age" binding:"omitempty,min=5,max=11"`
	SchoolName *string `json:"school_name" binding:"omitempty,max=255"`
	YearGroup  *int    `json:"year_group" binding:"omitempty,min=0,max=6"`
}

// DiagnosticTestCreateDTO starts (or resumes) a diagnostic test for a child.
type DiagnosticTestCreateDTO struct {
	ChildID    uuid.UUID `json:"child_id" binding:"required"`
	Subject    string    `json:"subject" binding:"required,oneof=maths english science"`
	NQuestions *int      `json:"n_questions" binding:"omitempty,min=1,max=50"`
}

// ResponsesSubmitDTO records the child's selections, keyed by question id.
type ResponsesSubmitDTO struct {
	Answers map[string]string `json:"answers" binding:"required,dive,oneof=A B C D"`
}

type ChestCreateDTO struct {
	RewardDescription string  `json:"reward_description" binding:"required,max=255"`
	RewardValue       float64 `json:"reward_value" binding:"required,gt=0,lte=5"`
}

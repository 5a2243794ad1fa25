package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// yearGroupsByAge maps a child's age to the school year groups it may sit in
// (0 = Reception, 1-6 = UK Primary Years).
var yearGroupsByAge = map[int][]int{
	5:  {0, 1},
	6:  {1, 2},
	7:  {2, 3},
	8:  {3, 4},
	9:  {4, 5},
	10: {5, 6},
	11: {6},
}

// Child is a learner profile owned by a parent. Age is strictly 5-11.
type Child struct {
	ID         uuid.UUID      `gorm:"type:uuid;primarykey" json:"id"`
	ParentID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"parent_id"`
	FirstName  string         `gorm:"size:100;not null" json:"first_name"`
	Age        int            `gorm:"not null" json:"age"`
	SchoolName string         `gorm:"size:255;not null" json:"school_name"`
	YearGroup  int            `gorm:"not null" json:"year_group"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (c *Child) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// Validate enforces the profile business rules: age range, non-empty school
// name, and year group aligned with age.
func (c *Child) Validate() error {
	if c.Age < 5 || c.Age > 11 {
		return fmt.Errorf("%w: age must be between 5 and 11", ErrInvalidChild)
	}
	if c.SchoolName == "" {
		return fmt.Errorf("%w: school name cannot be empty", ErrInvalidChild)
	}
	if c.YearGroup < 0 || c.YearGroup > 6 {
		return fmt.Errorf("%w: year group must be between 0 and 6", ErrInvalidChild)
	}
	expected, ok := yearGroupsByAge[c.Age]
	if !ok {
		return nil
	}
	for _, yg := range expected {
		if c.YearGroup == yg {
			return nil
		}
	}
	return fmt.Errorf("%w: year group must align with age, expected one of %v for age %d", ErrInvalidChild, expected, c.Age)
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TreasureChest is the reward entity unlocked on a child's first diagnostic
// completion. One chest per child.
type TreasureChest struct {
	ID                uuid.UUID  `gorm:"type:uuid;primarykey" json:"id"`
	ParentID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"parent_id"`
	ChildID           uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"child_id"`
	RewardDescription string     `gorm:"size:255;not null" json:"reward_description"`
	RewardValue       float64    `gorm:"type:numeric(3,2);not null" json:"reward_value"`
	IsLocked          bool       `gorm:"not null;default:true" json:"is_locked"`
	UnlockedAt        *time.Time `json:"unlocked_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

func (c *TreasureChest) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// Unlock flips the chest open on first call only. Reports whether this call
// performed the unlock.
func (c *TreasureChest) Unlock(now time.Time) bool {
	if !c.IsLocked {
		return false
	}
	c.IsLocked = false
	c.UnlockedAt = &now
	return true
}

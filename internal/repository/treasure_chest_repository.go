package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/littlejems/diagnostics-api/internal/model"
	"gorm.io/gorm"
)

type TreasureChestRepository interface {
	Create(chest *model.TreasureChest) error
	// FindByChildID returns nil when the child has no chest.
	FindByChildID(childID uuid.UUID) (*model.TreasureChest, error)
	Save(chest *model.TreasureChest) error
	WithTx(tx *gorm.DB) TreasureChestRepository
}

type treasureChestRepository struct {
	db *gorm.DB
}

func NewTreasureChestRepository(db *gorm.DB) TreasureChestRepository {
	return &treasureChestRepository{db: db}
}

func (r *treasureChestRepository) WithTx(tx *gorm.DB) TreasureChestRepository {
	return &treasureChestRepository{db: tx}
}

func (r *treasureChestRepository) Create(chest *model.TreasureChest) error {
	return r.db.Create(chest).Error
}

func (r *treasureChestRepository) FindByChildID(childID uuid.UUID) (*model.TreasureChest, error) {
	var chest model.TreasureChest
	err := r.db.First(&chest, "child_id = ?", childID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &chest, nil
}

func (r *treasureChestRepository) Save(chest *model.TreasureChest) error {
	return r.db.Save(chest).Error
}

package repository

import (
	"github.com/google/uuid"
	"github.com/littlejems/diagnostics-api/internal/model"
	"gorm.io/gorm"
)

type ChildRepository interface {
	Create(child *model.Child) error
	FindByID(id uuid.UUID) (*model.Child, error)
	FindAllByParent(parentID uuid.UUID) ([]model.Child, error)
	Update(child *model.Child) error
	Delete(id uuid.UUID) error
}

type childRepository struct {
	db *gorm.DB
}

func NewChildRepository(db *gorm.DB) ChildRepository {
	return &childRepository{db: db}
}

func (r *childRepository) Create(child *model.Child) error {
	return r.db.Create(child).Error
}

func (r *childRepository) FindByID(id uuid.UUID) (*model.Child, error) {
	var child model.Child
	if err := r.db.First(&child, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &child, nil
}

func (r *childRepository) FindAllByParent(parentID uuid.UUID) ([]model.Child, error) {
	var children []model.Child
	if err := r.db.Where("parent_id = ?", parentID).Order("created_at ASC").Find(&children).Error; err != nil {
		return nil, err
	}
	return children, nil
}

func (r *childRepository) Update(child *model.Child) error {
	return r.db.Save(child).Error
}

func (r *childRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Child{}, "id = ?", id).Error
}

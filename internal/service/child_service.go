package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/littlejems/diagnostics-api/internal/dto"
	"github.com/littlejems/diagnostics-api/internal/model"
	"github.com/littlejems/diagnostics-api/internal/repository"
	"github.com/rs/zerolog/log"
)

type ChildService interface {
	CreateChild(req dto.ChildCreateDTO) (*dto.ChildResponseDTO, error)
	GetChild(id uuid.UUID) (*dto.ChildResponseDTO, error)
	ListChildren(parentID uuid.UUID) ([]dto.ChildResponseDTO, error)
	UpdateChild(id uuid.UUID, req dto.ChildUpdateDTO) (*dto.ChildResponseDTO, error)
	DeleteChild(id uuid.UUID) error
}

type childService struct {
	childRepo repository.ChildRepository
}

func NewChildService(childRepo repository.ChildRepository) ChildService {
	return &childService{childRepo: childRepo}
}

func (s *childService) CreateChild(req dto.ChildCreateDTO) (*dto.ChildResponseDTO, error) {
	child := model.Child{
		ParentID:   req.ParentID,
		FirstName:  req.FirstName,
		Age:        req.Age,
		SchoolName: req.SchoolName,
		YearGroup:  req.YearGroup,
	}
	if err := child.Validate(); err != nil {
		return nil, err
	}
	if err := s.childRepo.Create(&child); err != nil {
		log.Error().Err(err).Msg("Failed to create child profile")
		return nil, fmt.Errorf("database error creating child: %w", err)
	}
	return childToDTO(&child)
}

func (s *childService) GetChild(id uuid.UUID) (*dto.ChildResponseDTO, error) {
	child, err := s.childRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("child not found with ID %s: %w", id, err)
	}
	return childToDTO(child)
}

func (s *childService) ListChildren(parentID uuid.UUID) ([]dto.ChildResponseDTO, error) {
	children, err := s.childRepo.FindAllByParent(parentID)
	if err != nil {
		log.Error().Err(err).Str("parentID", parentID.String()).Msg("Failed to list children")
		return nil, fmt.Errorf("error fetching children: %w", err)
	}
	dtos := make([]dto.ChildResponseDTO, 0, len(children))
	for i := range children {
		resp, err := childToDTO(&children[i])
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, *resp)
	}
	return dtos, nil
}

func (s *childService) UpdateChild(id uuid.UUID, req dto.ChildUpdateDTO) (*dto.ChildResponseDTO, error) {
	child, err := s.childRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("child not found with ID %s: %w", id, err)
	}

	if req.FirstName != nil {
		child.FirstName = *req.FirstName
	}
	if req.Age != nil {
		child.Age = *req.Age
	}
	if req.SchoolName != nil {
		child.SchoolName = *req.SchoolName
	}
	if req.YearGroup != nil {
		child.YearGroup = *req.YearGroup
	}
	if err := child.Validate(); err != nil {
		return nil, err
	}
	if err := s.childRepo.Update(child); err != nil {
		log.Error().Err(err).Str("childID", id.String()).Msg("Failed to update child profile")
		return nil, fmt.Errorf("database error updating child: %w", err)
	}
	return childToDTO(child)
}

func (s *childService) DeleteChild(id uuid.UUID) error {
	if _, err := s.childRepo.FindByID(id); err != nil {
		return fmt.Errorf("child not found with ID %s: %w", id, err)
	}
	return s.childRepo.Delete(id)
}

func childToDTO(child *model.Child) (*dto.ChildResponseDTO, error) {
	var resp dto.ChildResponseDTO
	if err := copier.Copy(&resp, child); err != nil {
		return nil, fmt.Errorf("error preparing child response: %w", err)
	}
	return &resp, nil
}

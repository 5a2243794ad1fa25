package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/littlejems/diagnostics-api/internal/dto"
	"github.com/littlejems/diagnostics-api/internal/model"
	"github.com/littlejems/diagnostics-api/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type RewardService interface {
	CreateChest(childID uuid.UUID, req dto.ChestCreateDTO) (*dto.ChestResponseDTO, error)
	GetChestForChild(childID uuid.UUID) (*dto.ChestResponseDTO, error)
}

type rewardService struct {
	chestRepo repository.TreasureChestRepository
	childRepo repository.ChildRepository
}

func NewRewardService(chestRepo repository.TreasureChestRepository, childRepo repository.ChildRepository) RewardService {
	return &rewardService{chestRepo: chestRepo, childRepo: childRepo}
}

func (s *rewardService) CreateChest(childID uuid.UUID, req dto.ChestCreateDTO) (*dto.ChestResponseDTO, error) {
	child, err := s.childRepo.FindByID(childID)
	if err != nil {
		return nil, fmt.Errorf("child not found with ID %s: %w", childID, err)
	}

	existing, err := s.chestRepo.FindByChildID(child.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrChestExists
	}

	chest := model.TreasureChest{
		ParentID:          child.ParentID,
		ChildID:           child.ID,
		RewardDescription: req.RewardDescription,
		RewardValue:       req.RewardValue,
		IsLocked:          true,
	}
	if err := s.chestRepo.Create(&chest); err != nil {
		log.Error().Err(err).Str("childID", childID.String()).Msg("Failed to create treasure chest")
		return nil, fmt.Errorf("database error creating treasure chest: %w", err)
	}
	return chestToDTO(&chest)
}

func (s *rewardService) GetChestForChild(childID uuid.UUID) (*dto.ChestResponseDTO, error) {
	chest, err := s.chestRepo.FindByChildID(childID)
	if err != nil {
		return nil, err
	}
	if chest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return chestToDTO(chest)
}

func chestToDTO(chest *model.TreasureChest) (*dto.ChestResponseDTO, error) {
	var resp dto.ChestResponseDTO
	if err := copier.Copy(&resp, chest); err != nil {
		return nil, fmt.Errorf("error preparing chest response: %w", err)
	}
	return &resp, nil
}

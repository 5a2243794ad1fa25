package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/littlejems/diagnostics-api/internal/dto"
	"github.com/littlejems/diagnostics-api/internal/service"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type RewardController struct {
	rewardService service.RewardService
}

func NewRewardController(rewardService service.RewardService) *RewardController {
	return &RewardController{rewardService: rewardService}
}

// CreateChest godoc
// @Summary Create a treasure chest for a child
// @Description One chest per child; it unlocks when the child completes their first diagnostic.
// @Tags Rewards
// @Accept json
// @Produce json
// @Param child_id path string true "Child ID"
// @Param chest body dto.ChestCreateDTO true "Reward description and value (max 5.00)"
// @Success 201 {object} dto.ChestResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Chest already exists"
// @Router /children/{child_id}/chest [post]
func (c *RewardController) CreateChest(ctx *gin.Context) {
	childID, err := uuid.Parse(ctx.Param("child_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid child ID format"})
		return
	}
	var req dto.ChestCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	chest, err := c.rewardService.CreateChest(childID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrChestExists):
			ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		default:
			log.Error().Err(err).Str("childID", childID.String()).Msg("CreateChest: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create treasure chest", Details: []string{err.Error()}})
		}
		return
	}
	ctx.JSON(http.StatusCreated, chest)
}

// GetChest godoc
// @Summary Get a child's treasure chest
// @Tags Rewards
// @Produce json
// @Param child_id path string true "Child ID"
// @Success 200 {object} dto.ChestResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /children/{child_id}/chest [get]
func (c *RewardController) GetChest(ctx *gin.Context) {
	childID, err := uuid.Parse(ctx.Param("child_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid child ID format"})
		return
	}

	chest, err := c.rewardService.GetChestForChild(childID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "no treasure chest for this child"})
			return
		}
		log.Error().Err(err).Str("childID", childID.String()).Msg("GetChest: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to fetch treasure chest", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, chest)
}

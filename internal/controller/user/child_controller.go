package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/littlejems/diagnostics-api/internal/dto"
	"github.com/littlejems/diagnostics-api/internal/model"
	"github.com/littlejems/diagnostics-api/internal/service"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type ChildController struct {
	childService service.ChildService
}

func NewChildController(childService service.ChildService) *ChildController {
	return &ChildController{childService: childService}
}

// CreateChild godoc
// @Summary Create a child profile
// @Description Creates a learner profile (age 5-11) owned by a parent.
// @Tags Children
// @Accept json
// @Produce json
// @Param child body dto.ChildCreateDTO true "Child profile data"
// @Success 201 {object} dto.ChildResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid payload or age/year-group mismatch"
// @Router /children [post]
func (c *ChildController) CreateChild(ctx *gin.Context) {
	var req dto.ChildCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.childService.CreateChild(req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidChild) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Msg("CreateChild: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create child profile", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ListChildren godoc
// @Summary List a parent's children
// @Tags Children
// @Produce json
// @Param parent_id query string true "Parent ID"
// @Success 200 {array} dto.ChildResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /children [get]
func (c *ChildController) ListChildren(ctx *gin.Context) {
	parentID, err := uuid.Parse(ctx.Query("parent_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid parent_id"})
		return
	}

	children, err := c.childService.ListChildren(parentID)
	if err != nil {
		log.Error().Err(err).Msg("ListChildren: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to list children", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, children)
}

// GetChild godoc
// @Summary Get a child profile
// @Tags Children
// @Produce json
// @Param child_id path string true "Child ID"
// @Success 200 {object} dto.ChildResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /children/{child_id} [get]
func (c *ChildController) GetChild(ctx *gin.Context) {
	childID, err := uuid.Parse(ctx.Param("child_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid child ID format"})
		return
	}

	resp, err := c.childService.GetChild(childID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateChild godoc
// @Summary Update a child profile
// @Tags Children
// @Accept json
// @Produce json
// @Param child_id path string true "Child ID"
// @Param child body dto.ChildUpdateDTO true "Fields to update"
// @Success 200 {object} dto.ChildResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /children/{child_id} [put]
func (c *ChildController) UpdateChild(ctx *gin.Context) {
	childID, err := uuid.Parse(ctx.Param("child_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid child ID format"})
		return
	}
	var req dto.ChildUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.childService.UpdateChild(childID, req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidChild):
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		default:
			log.Error().Err(err).Str("childID", childID.String()).Msg("UpdateChild: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to update child profile", Details: []string{err.Error()}})
		}
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteChild godoc
// @Summary Delete a child profile
// @Tags Children
// @Param child_id path string true "Child ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /children/{child_id} [delete]
func (c *ChildController) DeleteChild(ctx *gin.Context) {
	childID, err := uuid.Parse(ctx.Param("child_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid child ID format"})
		return
	}
	if err := c.childService.DeleteChild(childID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Str("childID", childID.String()).Msg("DeleteChild: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to delete child profile", Details: []string{err.Error()}})
		return
	}
	ctx.Status(http.StatusNoContent)
}

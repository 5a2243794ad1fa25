package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"github.com/littlejems/diagnostics-api/internal/dto"
	"github.com/littlejems/diagnostics-api/internal/repository"
	"github.com/rs/zerolog/log"
)

const defaultLogLimit = 50

type AdminLogController struct {
	logRepo repository.AIRequestLogRepository
}

func NewAdminLogController(logRepo repository.AIRequestLogRepository) *AdminLogController {
	return &AdminLogController{logRepo: logRepo}
}

// ListAILogs godoc
// @Summary (Admin) List recent AI generation attempts
// @Description Returns the audit trail of generation attempts, newest first.
// @Tags Admin
// @Produce json
// @Param limit query int false "Max rows to return (default 50)"
// @Success 200 {array} dto.AIRequestLogDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/ai-logs [get]
func (c *AdminLogController) ListAILogs(ctx *gin.Context) {
	limit := defaultLogLimit
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid limit"})
			return
		}
		limit = parsed
	}

	entries, err := c.logRepo.FindRecent(limit)
	if err != nil {
		log.Error().Err(err).Msg("ListAILogs: repository error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to fetch AI request logs", Details: []string{err.Error()}})
		return
	}

	dtos := make([]dto.AIRequestLogDTO, len(entries))
	for i := range entries {
		if err := copier.Copy(&dtos[i], &entries[i]); err != nil {
			log.Error().Err(err).Msg("ListAILogs: failed to map log entry")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to fetch AI request logs", Details: []string{err.Error()}})
			return
		}
		dtos[i].Status = string(entries[i].Status)
	}
	ctx.JSON(http.StatusOK, dtos)
}

package admin

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/littlejems/diagnostics-api/internal/dto"
	"github.com/littlejems/diagnostics-api/internal/model"
	"github.com/littlejems/diagnostics-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newLogRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.AIRequestLog{}))

	ctrl := NewAdminLogController(repository.NewAIRequestLogRepository(db))
	router := gin.New()
	router.GET("/api/v1/admin/ai-logs", ctrl.ListAILogs)
	return router, db
}

func TestListAILogs(t *testing.T) {
	router, db := newLogRouter(t)

	latency := int64(120)
	for i := 0; i < 3; i++ {
		status := model.LogStatusSuccess
		if i == 2 {
			status = model.LogStatusFailure
		}
		require.NoError(t, db.Create(&model.AIRequestLog{
			PromptVersion: "lj-ai-maths-v1",
			Seed:          fmt.Sprintf("seed-%d", i),
			Provider:      "gemini",
			Status:        status,
			PromptExcerpt: "prompt",
			LatencyMs:     &latency,
		}).Error)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/ai-logs", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var logs []dto.AIRequestLogDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logs))
	require.Len(t, logs, 3)
	assert.Equal(t, "lj-ai-maths-v1", logs[0].PromptVersion)
	require.NotNil(t, logs[0].LatencyMs)
	assert.Equal(t, int64(120), *logs[0].LatencyMs)

	// Limit caps the result set.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/ai-logs?limit=2", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logs))
	assert.Len(t, logs, 2)
}

func TestListAILogs_InvalidLimit(t *testing.T) {
	router, _ := newLogRouter(t)

	for _, limit := range []string{"0", "-5", "abc"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/ai-logs?limit="+limit, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, "limit=%s", limit)
	}
}

package user

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/littlejems/diagnostics-api/internal/dto"
	"github.com/littlejems/diagnostics-api/internal/model"
	"github.com/littlejems/diagnostics-api/internal/service"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type DiagnosticController struct {
	diagnosticService service.DiagnosticService
	rewardService     service.RewardService
}

func NewDiagnosticController(diagnosticService service.DiagnosticService, rewardService service.RewardService) *DiagnosticController {
	return &DiagnosticController{
		diagnosticService: diagnosticService,
		rewardService:     rewardService,
	}
}

// CreateTest godoc
// @Summary Start or resume a diagnostic test
// @Description Creates a maths diagnostic for the child with AI-generated questions, or resumes the existing incomplete one. A child gets one completed maths diagnostic, ever.
// @Tags Diagnostics
// @Accept json
// @Produce json
// @Param test body dto.DiagnosticTestCreateDTO true "Child, subject, optional question count"
// @Success 201 {object} dto.TestCreatedDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid payload or unsupported subject"
// @Failure 404 {object} dto.ErrorResponse "Child not found"
// @Failure 409 {object} dto.ErrorResponse "Completed maths diagnostic already exists"
// @Failure 503 {object} dto.ErrorResponse "Generation failed and no stub fallback is configured"
// @Router /diagnostics/tests [post]
func (c *DiagnosticController) CreateTest(ctx *gin.Context) {
	var req dto.DiagnosticTestCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	if model.Subject(req.Subject) != model.SubjectMaths {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: service.ErrWrongSubject.Error()})
		return
	}

	nQuestions := 0
	if req.NQuestions != nil {
		nQuestions = *req.NQuestions
	}

	test, err := c.diagnosticService.CreateOrResumeMathsTest(ctx.Request.Context(), req.ChildID, nQuestions)
	if err != nil {
		c.writeDiagnosticError(ctx, err, "CreateTest")
		return
	}

	ctx.JSON(http.StatusCreated, dto.TestCreatedDTO{
		ID:      test.ID,
		Subject: string(test.Subject),
		Rank:    rankString(test.Rank),
	})
}

// GetTest godoc
// @Summary Get a test with its questions
// @Description Returns the test and its ordered questions (correct answers withheld), including any saved selections for resume.
// @Tags Diagnostics
// @Produce json
// @Param test_id path string true "Test ID"
// @Success 200 {object} dto.TestDetailDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /diagnostics/tests/{test_id} [get]
func (c *DiagnosticController) GetTest(ctx *gin.Context) {
	testID, ok := parseTestID(ctx)
	if !ok {
		return
	}

	test, responses, err := c.diagnosticService.GetTestWithQuestions(testID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: fmt.Sprintf("test not found with ID %s", testID)})
		return
	}

	selected := make(map[uuid.UUID]model.Option, len(responses))
	for _, r := range responses {
		selected[r.QuestionID] = r.SelectedOption
	}

	questions := make([]dto.QuestionResponseDTO, 0, len(test.Questions))
	for _, q := range test.Questions {
		item := dto.QuestionResponseDTO{
			ID:           q.ID,
			Order:        q.Order,
			QuestionText: q.QuestionText,
			OptionA:      q.OptionA,
			OptionB:      q.OptionB,
			OptionC:      q.OptionC,
			OptionD:      q.OptionD,
			Difficulty:   q.Difficulty,
		}
		if option, ok := selected[q.ID]; ok {
			s := string(option)
			item.SelectedOption = &s
		}
		questions = append(questions, item)
	}

	ctx.JSON(http.StatusOK, dto.TestDetailDTO{
		ID:             test.ID,
		ChildID:        test.ChildID,
		Subject:        string(test.Subject),
		TotalQuestions: test.TotalQuestions,
		IsCompleted:    test.IsCompleted,
		CompletedAt:    test.CompletedAt,
		Rank:           rankString(test.Rank),
		Questions:      questions,
		CreatedAt:      test.CreatedAt,
	})
}

// SubmitResponses godoc
// @Summary Save answers for a test
// @Description Upserts the child's selections. Answers for questions outside this test are ignored. Safe to call repeatedly for save-then-resume.
// @Tags Diagnostics
// @Accept json
// @Produce json
// @Param test_id path string true "Test ID"
// @Param answers body dto.ResponsesSubmitDTO true "Map of question id to selected option (A-D)"
// @Success 200 {object} dto.ResponsesSavedDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Test already completed"
// @Router /diagnostics/tests/{test_id}/responses [post]
func (c *DiagnosticController) SubmitResponses(ctx *gin.Context) {
	testID, ok := parseTestID(ctx)
	if !ok {
		return
	}
	var req dto.ResponsesSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	answers := make(map[uuid.UUID]model.Option, len(req.Answers))
	for rawID, rawOption := range req.Answers {
		questionID, err := uuid.Parse(rawID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: fmt.Sprintf("Invalid question ID format: %s", rawID)})
			return
		}
		answers[questionID] = model.Option(rawOption)
	}

	saved, err := c.diagnosticService.RecordResponses(testID, answers)
	if err != nil {
		c.writeDiagnosticError(ctx, err, "SubmitResponses")
		return
	}
	ctx.JSON(http.StatusOK, dto.ResponsesSavedDTO{TestID: testID, Saved: saved})
}

// CompleteTest godoc
// @Summary Score and complete a test
// @Description Idempotent. Scores stored responses against the correct options, completes the test, assigns the rank and unlocks the reward chest. Returns 200 with the rank whether this call performed the transition or found the test already complete.
// @Tags Diagnostics
// @Produce json
// @Param test_id path string true "Test ID"
// @Success 200 {object} dto.TestCompletedDTO
// @Failure 400 {object} dto.ErrorResponse "Unanswered questions remain"
// @Failure 404 {object} dto.ErrorResponse
// @Router /diagnostics/tests/{test_id}/complete [post]
func (c *DiagnosticController) CompleteTest(ctx *gin.Context) {
	testID, ok := parseTestID(ctx)
	if !ok {
		return
	}

	test, err := c.diagnosticService.ScoreFromResponses(testID)
	if err != nil {
		c.writeDiagnosticError(ctx, err, "CompleteTest")
		return
	}

	ctx.JSON(http.StatusOK, dto.TestCompletedDTO{
		ID:              test.ID,
		CorrectAnswers:  test.CorrectAnswers,
		TotalQuestions:  test.TotalQuestions,
		ScorePercentage: fmt.Sprintf("%.2f", test.ScorePercentage),
		Rank:            rankString(test.Rank),
		CompletedAt:     test.CompletedAt,
	})
}

// GetResults godoc
// @Summary Get the per-question results breakdown
// @Tags Diagnostics
// @Produce json
// @Param test_id path string true "Test ID"
// @Success 200 {object} dto.TestResultsDTO
// @Failure 404 {object} dto.ErrorResponse "Unknown test or test not completed yet"
// @Router /diagnostics/tests/{test_id}/results [get]
func (c *DiagnosticController) GetResults(ctx *gin.Context) {
	testID, ok := parseTestID(ctx)
	if !ok {
		return
	}

	test, responses, err := c.diagnosticService.GetTestWithQuestions(testID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: fmt.Sprintf("test not found with ID %s", testID)})
		return
	}
	if !test.IsCompleted {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "test has not been completed yet"})
		return
	}

	selected := make(map[uuid.UUID]model.Option, len(responses))
	for _, r := range responses {
		selected[r.QuestionID] = r.SelectedOption
	}

	items := make([]dto.ResultItemDTO, 0, len(test.Questions))
	for _, q := range test.Questions {
		option := selected[q.ID]
		items = append(items, dto.ResultItemDTO{
			Order:          q.Order,
			QuestionText:   q.QuestionText,
			Difficulty:     q.Difficulty,
			SelectedOption: string(option),
			SelectedText:   q.OptionText(option),
			CorrectOption:  string(q.CorrectOption),
			CorrectText:    q.OptionText(q.CorrectOption),
			Correct:        option == q.CorrectOption,
		})
	}

	results := dto.TestResultsDTO{
		ID:              test.ID,
		ChildID:         test.ChildID,
		Subject:         string(test.Subject),
		CorrectAnswers:  test.CorrectAnswers,
		TotalQuestions:  test.TotalQuestions,
		ScorePercentage: fmt.Sprintf("%.2f", test.ScorePercentage),
		Rank:            rankString(test.Rank),
		CompletedAt:     test.CompletedAt,
		Items:           items,
	}
	if chest, err := c.rewardService.GetChestForChild(test.ChildID); err == nil {
		results.Chest = chest
	}
	ctx.JSON(http.StatusOK, results)
}

func (c *DiagnosticController) writeDiagnosticError(ctx *gin.Context, err error, op string) {
	var genErr *service.GenerationError
	switch {
	case errors.Is(err, service.ErrDiagnosticAlreadyCompleted):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrTestCompleted):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrWrongSubject), errors.Is(err, service.ErrUnansweredQuestions):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
	case errors.As(err, &genErr):
		log.Error().Err(err).Str("op", op).Msg("Diagnostic generation failed")
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Message: "Question generation is temporarily unavailable", Details: []string{err.Error()}})
	case errors.Is(err, gorm.ErrRecordNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	default:
		log.Error().Err(err).Str("op", op).Msg("Diagnostic service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal error", Details: []string{err.Error()}})
	}
}

func parseTestID(ctx *gin.Context) (uuid.UUID, bool) {
	testID, err := uuid.Parse(ctx.Param("test_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Test ID format"})
		return uuid.Nil, false
	}
	return testID, true
}

func rankString(rank *model.Rank) *string {
	if rank == nil {
		return nil
	}
	s := string(*rank)
	return &s
}

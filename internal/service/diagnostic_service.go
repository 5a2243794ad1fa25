package service

import (
	"context"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/littlejems/diagnostics-api/config"
	"github.com/littlejems/diagnostics-api/internal/ai"
	"github.com/littlejems/diagnostics-api/internal/model"
	"github.com/littlejems/diagnostics-api/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const excerptLimit = 500

// DiagnosticService is the transactional boundary around the generation and
// scoring pipeline.
type DiagnosticService interface {
	// CreateOrResumeMathsTest returns the child's existing incomplete maths
	// test, or creates a new one and generates its questions immediately.
	// nQuestions <= 0 means the configured default.
	CreateOrResumeMathsTest(ctx context.Context, childID uuid.UUID, nQuestions int) (*model.DiagnosticTest, error)
	// EnsureQuestionsForTest generates and persists questions for the test at
	// most once; repeat calls return the existing set unchanged.
	EnsureQuestionsForTest(ctx context.Context, test *model.DiagnosticTest, nQuestions int) ([]model.DiagnosticQuestion, error)
	// RecordResponses upserts one selection per owned question and reports how
	// many were saved. Question ids not belonging to the test are ignored.
	RecordResponses(testID uuid.UUID, answers map[uuid.UUID]model.Option) (int, error)
	// ScoreFromResponses counts correct answers, completes the test and runs
	// the completion listeners. Idempotent: an already-completed test is
	// returned as-is.
	ScoreFromResponses(testID uuid.UUID) (*model.DiagnosticTest, error)
	GetTestWithQuestions(testID uuid.UUID) (*model.DiagnosticTest, []model.DiagnosticResponse, error)
}

type diagnosticService struct {
	childRepo    repository.ChildRepository
	testRepo     repository.DiagnosticTestRepository
	questionRepo repository.DiagnosticQuestionRepository
	responseRepo repository.DiagnosticResponseRepository
	logRepo      repository.AIRequestLogRepository
	generator    ai.Generator
	listeners    []CompletionListener
	cfg          config.AI
	db           *gorm.DB

	// genLocks holds one mutex per test id so two racing requests for the
	// same test cannot both pass the existence check, while generations for
	// different tests proceed in parallel. Single-instance deployments only;
	// the existence re-check also runs inside the insert transaction.
	genLocks sync.Map
}

func NewDiagnosticService(
	childRepo repository.ChildRepository,
	testRepo repository.DiagnosticTestRepository,
	questionRepo repository.DiagnosticQuestionRepository,
	responseRepo repository.DiagnosticResponseRepository,
	logRepo repository.AIRequestLogRepository,
	generator ai.Generator,
	listeners []CompletionListener,
	cfg *config.Config,
	db *gorm.DB,
) DiagnosticService {
	return &diagnosticService{
		childRepo:    childRepo,
		testRepo:     testRepo,
		questionRepo: questionRepo,
		responseRepo: responseRepo,
		logRepo:      logRepo,
		generator:    generator,
		listeners:    listeners,
		cfg:          cfg.AI,
		db:           db,
	}
}

// generationLock returns the mutex for one test id. Entries stay for the
// process lifetime; each is a bare mutex and generation happens at most once
// per test.
func (s *diagnosticService) generationLock(testID uuid.UUID) *sync.Mutex {
	lock, _ := s.genLocks.LoadOrStore(testID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

func (s *diagnosticService) questionTarget() int {
	if s.cfg.QuestionCount > 0 {
		return s.cfg.QuestionCount
	}
	return 10
}

func (s *diagnosticService) CreateOrResumeMathsTest(ctx context.Context, childID uuid.UUID, nQuestions int) (*model.DiagnosticTest, error) {
	child, err := s.childRepo.FindByID(childID)
	if err != nil {
		return nil, err
	}

	completed, err := s.testRepo.HasCompleted(child.ID, model.SubjectMaths)
	if err != nil {
		return nil, err
	}
	if completed {
		return nil, ErrDiagnosticAlreadyCompleted
	}

	existing, err := s.testRepo.FindLatestIncomplete(child.ID, model.SubjectMaths)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		log.Info().Str("testID", existing.ID.String()).Str("childID", child.ID.String()).Msg("Resuming incomplete maths diagnostic")
		return existing, nil
	}

	total := nQuestions
	if total <= 0 {
		total = s.questionTarget()
	}
	test := &model.DiagnosticTest{
		ChildID:        child.ID,
		Child:          *child,
		Subject:        model.SubjectMaths,
		TotalQuestions: total,
	}
	if err := s.testRepo.Create(test); err != nil {
		return nil, err
	}

	if _, err := s.EnsureQuestionsForTest(ctx, test, total); err != nil {
		return nil, err
	}
	return test, nil
}

func (s *diagnosticService) EnsureQuestionsForTest(ctx context.Context, test *model.DiagnosticTest, nQuestions int) ([]model.DiagnosticQuestion, error) {
	if test.Subject != model.SubjectMaths {
		return nil, ErrWrongSubject
	}
	if test.IsCompleted {
		return nil, ErrTestCompleted
	}

	lock := s.generationLock(test.ID)
	lock.Lock()
	defer lock.Unlock()

	exists, err := s.questionRepo.ExistsForTest(test.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return s.questionRepo.FindByTestID(test.ID)
	}

	if nQuestions <= 0 {
		nQuestions = s.questionTarget()
	}

	child := test.Child
	if child.ID == uuid.Nil {
		loaded, err := s.childRepo.FindByID(test.ChildID)
		if err != nil {
			return nil, err
		}
		child = *loaded
	}

	start := time.Now()
	entry := model.AIRequestLog{
		TestID:        &test.ID,
		PromptVersion: ai.PromptVersion,
		Seed:          ai.ComputeSeed(child.Age, child.YearGroup, nQuestions),
		Provider:      s.cfg.Provider,
		PromptExcerpt: truncate(ai.BuildMathsPrompt(child.Age, child.YearGroup, nQuestions), excerptLimit),
	}

	generation, genErr := s.generator.Generate(ctx, child.Age, child.YearGroup, nQuestions)
	latency := time.Since(start).Milliseconds()
	entry.LatencyMs = &latency

	if genErr != nil {
		entry.Status = model.LogStatusFailure
		entry.ErrorMessage = genErr.Error()
		if logErr := s.logRepo.Create(&entry); logErr != nil {
			log.Error().Err(logErr).Str("testID", test.ID.String()).Msg("Failed to write failure audit log")
		}
		log.Warn().Err(genErr).Str("testID", test.ID.String()).Int64("latencyMs", latency).Msg("Question generation failed")

		if s.cfg.FallbackMode == "stub" {
			return s.persistStubQuestions(test, nQuestions)
		}
		return nil, &GenerationError{Err: genErr}
	}

	entry.Status = model.LogStatusSuccess
	entry.PromptVersion = generation.PromptVersion
	entry.Seed = generation.Seed
	entry.PromptExcerpt = truncate(generation.PromptText, excerptLimit)
	entry.ResponseExcerpt = truncate(generation.ResponseText, excerptLimit)

	questions := make([]model.DiagnosticQuestion, 0, len(generation.Questions))
	for i, q := range generation.Questions {
		questions = append(questions, model.DiagnosticQuestion{
			TestID:        test.ID,
			PromptVersion: generation.PromptVersion,
			Seed:          generation.Seed,
			Order:         i + 1,
			QuestionText:  q.QuestionText,
			OptionA:       q.Options[0],
			OptionB:       q.Options[1],
			OptionC:       q.Options[2],
			OptionD:       q.Options[3],
			CorrectOption: model.Option(q.CorrectOption),
			Difficulty:    q.Difficulty,
		})
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Existence re-check inside the transaction backs up the mutex.
		exists, err := s.questionRepo.WithTx(tx).ExistsForTest(test.ID)
		if err != nil {
			return err
		}
		if exists {
			questions = nil
			return nil
		}
		if err := s.questionRepo.WithTx(tx).BulkCreate(questions); err != nil {
			return err
		}
		return s.logRepo.WithTx(tx).Create(&entry)
	})
	if err != nil {
		return nil, err
	}
	if questions == nil {
		return s.questionRepo.FindByTestID(test.ID)
	}

	log.Info().Str("testID", test.ID.String()).Int("questions", len(questions)).Int64("latencyMs", latency).Msg("Diagnostic questions generated")
	return questions, nil
}

// stubDeck is the fixed fallback used when generation fails and fallback mode
// permits it, so production environments without AI credentials keep working.
var stubDeck = []struct {
	text    string
	options [4]string
	correct model.Option
}{
	{"2 + 3 = ?", [4]string{"4", "5", "6", "7"}, model.OptionB},
	{"10 - 4 = ?", [4]string{"4", "5", "6", "7"}, model.OptionC},
	{"6 + 7 = ?", [4]string{"11", "12", "13", "14"}, model.OptionC},
	{"9 - 3 = ?", [4]string{"5", "6", "7", "8"}, model.OptionB},
	{"3 + 8 = ?", [4]string{"10", "11", "12", "13"}, model.OptionB},
	{"12 - 5 = ?", [4]string{"6", "7", "8", "9"}, model.OptionB},
	{"4 + 4 = ?", [4]string{"6", "7", "8", "9"}, model.OptionC},
	{"15 - 9 = ?", [4]string{"5", "6", "7", "8"}, model.OptionB},
	{"7 + 5 = ?", [4]string{"11", "12", "13", "14"}, model.OptionB},
	{"8 - 2 = ?", [4]string{"5", "6", "7", "8"}, model.OptionB},
}

func (s *diagnosticService) persistStubQuestions(test *model.DiagnosticTest, total int) ([]model.DiagnosticQuestion, error) {
	questions := make([]model.DiagnosticQuestion, 0, total)
	for i := 1; i <= total; i++ {
		stub := stubDeck[(i-1)%len(stubDeck)]
		questions = append(questions, model.DiagnosticQuestion{
			TestID:        test.ID,
			PromptVersion: "stub",
			Seed:          "stub",
			Order:         i,
			QuestionText:  stub.text,
			OptionA:       stub.options[0],
			OptionB:       stub.options[1],
			OptionC:       stub.options[2],
			OptionD:       stub.options[3],
			CorrectOption: stub.correct,
			Difficulty:    "easy",
		})
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		exists, err := s.questionRepo.WithTx(tx).ExistsForTest(test.ID)
		if err != nil {
			return err
		}
		if exists {
			questions = nil
			return nil
		}
		return s.questionRepo.WithTx(tx).BulkCreate(questions)
	})
	if err != nil {
		return nil, err
	}
	if questions == nil {
		return s.questionRepo.FindByTestID(test.ID)
	}

	log.Info().Str("testID", test.ID.String()).Int("questions", len(questions)).Msg("Stub question deck persisted")
	return questions, nil
}

func (s *diagnosticService) RecordResponses(testID uuid.UUID, answers map[uuid.UUID]model.Option) (int, error) {
	test, err := s.testRepo.FindByID(testID)
	if err != nil {
		return 0, err
	}
	if test.IsCompleted {
		return 0, ErrTestCompleted
	}

	questions, err := s.questionRepo.FindByTestID(test.ID)
	if err != nil {
		return 0, err
	}
	owned := make(map[uuid.UUID]bool, len(questions))
	for _, q := range questions {
		owned[q.ID] = true
	}

	saved := 0
	err = s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.responseRepo.WithTx(tx)
		for questionID, option := range answers {
			if !owned[questionID] {
				// Defensive: answers for foreign questions are skipped, not
				// treated as an error.
				log.Warn().Str("testID", test.ID.String()).Str("questionID", questionID.String()).Msg("Ignoring answer for question not in this test")
				continue
			}
			if err := repo.Upsert(&model.DiagnosticResponse{
				TestID:         test.ID,
				QuestionID:     questionID,
				SelectedOption: option,
			}); err != nil {
				return err
			}
			saved++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return saved, nil
}

func (s *diagnosticService) ScoreFromResponses(testID uuid.UUID) (*model.DiagnosticTest, error) {
	test, err := s.testRepo.FindByID(testID)
	if err != nil {
		return nil, err
	}
	if test.IsCompleted {
		return test, nil
	}

	questions, err := s.questionRepo.FindByTestID(test.ID)
	if err != nil {
		return nil, err
	}
	responses, err := s.responseRepo.FindByTestID(test.ID)
	if err != nil {
		return nil, err
	}
	selected := make(map[uuid.UUID]model.Option, len(responses))
	for _, r := range responses {
		selected[r.QuestionID] = r.SelectedOption
	}

	correct := 0
	for _, q := range questions {
		option, ok := selected[q.ID]
		if !ok {
			return nil, ErrUnansweredQuestions
		}
		if option == q.CorrectOption {
			correct++
		}
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		test.CorrectAnswers = correct
		if !test.Complete(time.Now().UTC()) {
			return nil
		}
		if err := s.testRepo.WithTx(tx).Save(test); err != nil {
			return err
		}
		for _, listener := range s.listeners {
			if err := listener.OnTestCompleted(tx, test); err != nil {
				log.Error().Err(err).Str("listener", listener.Name()).Str("testID", test.ID.String()).Msg("Completion listener failed")
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("testID", test.ID.String()).
		Int("correct", correct).
		Float64("score", test.ScorePercentage).
		Msg("Diagnostic test completed")
	return test, nil
}

func (s *diagnosticService) GetTestWithQuestions(testID uuid.UUID) (*model.DiagnosticTest, []model.DiagnosticResponse, error) {
	test, err := s.testRepo.FindByIDWithQuestions(testID)
	if err != nil {
		return nil, nil, err
	}
	responses, err := s.responseRepo.FindByTestID(test.ID)
	if err != nil {
		return nil, nil, err
	}
	return test, responses, nil
}

// truncate cuts s to at most limit bytes without splitting a rune, keeping
// excerpts valid UTF-8 for the text columns they land in.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

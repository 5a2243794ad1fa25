package service

import (
	"time"

	"github.com/littlejems/diagnostics-api/internal/model"
	"github.com/littlejems/diagnostics-api/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// CompletionListener reacts to a test's first transition into the completed
// state. Listeners run synchronously, in registration order, inside the
// transaction that performed the transition.
type CompletionListener interface {
	Name() string
	OnTestCompleted(tx *gorm.DB, test *model.DiagnosticTest) error
}

// NewCompletionListeners returns the listener chain in its deterministic
// order: rank assignment first, then treasure-chest unlock.
func NewCompletionListeners(chestRepo repository.TreasureChestRepository) []CompletionListener {
	return []CompletionListener{
		&rankAssigner{},
		&chestUnlocker{chestRepo: chestRepo},
	}
}

// rankAssigner writes the rank derived from the final score. The guarded
// update keeps the rank immutable once set, even if CorrectAnswers is mutated
// later.
type rankAssigner struct{}

func (l *rankAssigner) Name() string { return "rank_assigner" }

func (l *rankAssigner) OnTestCompleted(tx *gorm.DB, test *model.DiagnosticTest) error {
	if test.Rank != nil {
		return nil
	}
	rank := DetermineRank(test.ScorePercentage)
	if rank == nil {
		log.Info().Str("testID", test.ID.String()).Float64("score", test.ScorePercentage).Msg("Score below rank thresholds, no rank assigned")
		return nil
	}

	result := tx.Model(&model.DiagnosticTest{}).
		Where("id = ? AND rank IS NULL", test.ID).
		Update("rank", *rank)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		test.Rank = rank
		log.Info().Str("testID", test.ID.String()).Str("rank", string(*rank)).Msg("Rank assigned")
	}
	return nil
}

// chestUnlocker flips the child's treasure chest open on first completion.
// Children without a chest are skipped; an already-open chest stays untouched.
type chestUnlocker struct {
	chestRepo repository.TreasureChestRepository
}

func (l *chestUnlocker) Name() string { return "chest_unlocker" }

func (l *chestUnlocker) OnTestCompleted(tx *gorm.DB, test *model.DiagnosticTest) error {
	repo := l.chestRepo.WithTx(tx)
	chest, err := repo.FindByChildID(test.ChildID)
	if err != nil {
		return err
	}
	if chest == nil {
		return nil
	}
	if !chest.Unlock(time.Now().UTC()) {
		return nil
	}
	if err := repo.Save(chest); err != nil {
		return err
	}
	log.Info().Str("childID", test.ChildID.String()).Str("chestID", chest.ID.String()).Msg("Treasure chest unlocked")
	return nil
}

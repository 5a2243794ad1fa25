package service

import "github.com/littlejems/diagnostics-api/internal/model"

// Rank thresholds are inclusive percentage bands. Scores below bronzeMin earn
// no rank, ever.
const (
	bronzeMin = 40.00
	bronzeMax = 50.00
	silverMin = 51.00
	silverMax = 70.00
	goldMin   = 71.00
	goldMax   = 100.00
)

// DetermineRank maps a quantized percentage score to a rank tier, or nil when
// the score earns none.
func DetermineRank(score float64) *model.Rank {
	var rank model.Rank
	switch {
	case score >= bronzeMin && score <= bronzeMax:
		rank = model.RankBronze
	case score >= silverMin && score <= silverMax:
		rank = model.RankSilver
	case score >= goldMin && score <= goldMax:
		rank = model.RankGold
	default:
		return nil
	}
	return &rank
}

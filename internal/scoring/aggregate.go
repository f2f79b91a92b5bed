package scoring

import (
	"math"

	"github.com/namesmith/namesmith/internal/types"
)

// Final-bucket thresholds for multi-persona aggregation.
const (
	fastFlipThreshold = 8.0
	softFlipThreshold = 7.0
	holdThreshold     = 4.0
)

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// deriveBucket recomputes the final bucket from the winning persona's score.
// In the 7.0-7.99 band the winner's own label decides between FAST-FLIP and
// HOLD; this smooths inconsistent oracle bucket labels near the boundary and
// is a fixed contract, even where it disagrees with the winner's literal
// bucket string.
func deriveBucket(bestScore float64, winnerBucket types.Bucket) types.Bucket {
	switch {
	case bestScore >= fastFlipThreshold:
		return types.BucketFastFlip
	case bestScore >= softFlipThreshold:
		if winnerBucket == types.BucketFastFlip {
			return types.BucketFastFlip
		}
		return types.BucketHold
	case bestScore >= holdThreshold:
		return types.BucketHold
	default:
		return types.BucketPass
	}
}

// aggregate folds per-persona sub-results into one MultiScoreResult. Personas
// absent from subs contribute a zero score and PASS; fallbackReason fills the
// reason when the winning persona had no sub-result. The winner is the
// persona with the strictly highest score, so the first persona wins ties.
func aggregate(cand types.Candidate, selected []types.Persona, subs map[string]looseSubResult, fallbackReason string) types.MultiScoreResult {
	result := types.MultiScoreResult{
		Domain:        cand.Domain,
		TemplateUsed:  cand.Template,
		Sources:       cand.SourceTrace(),
		Bucket:        types.BucketPass,
		ScoreByPreset: make(map[string]float64, len(selected)),
	}

	bestScore := -1.0
	var bestBucket types.Bucket
	sum := 0.0

	for _, persona := range selected {
		sub, present := subs[persona.ID]

		score := 0.0
		bucket := types.BucketPass
		reason := fallbackReason
		useCase := ""
		if present {
			score = round1(coerceScore(sub.Score))
			bucket = coerceBucket(sub.Bucket)
			reason = truncate(sub.Reason, types.MaxReasonLen)
			useCase = truncate(sub.UseCase, types.MaxUseCaseLen)
		}

		result.ScoreByPreset[persona.ID] = score
		sum += score

		if score > bestScore {
			bestScore = score
			bestBucket = bucket
			result.BestPresetID = persona.ID
			result.BestPresetName = persona.Name
			result.Reason = reason
			result.UseCase = useCase
		}
	}

	if len(selected) == 0 {
		return result
	}

	result.BestScore = bestScore
	result.MaxScore = bestScore
	result.AvgScore = sum / float64(len(selected))
	result.Bucket = deriveBucket(bestScore, bestBucket)
	return result
}

// Package ranking orders scored candidates and truncates to the requested
// top-K. Sorting is stable so equal keys preserve input order and a re-run on
// sorted input is a no-op.
package ranking

import (
	"sort"

	"github.com/namesmith/namesmith/internal/types"
)

// Top-K limits.
const (
	DefaultTopK = 25
	MaxTopK     = 100
)

// EffectiveTopK resolves a requested top-K against the default and hard cap.
func EffectiveTopK(requested int) int {
	if requested <= 0 {
		return DefaultTopK
	}
	if requested > MaxTopK {
		return MaxTopK
	}
	return requested
}

// RankSingle sorts single-persona results descending by score and truncates
// to the effective top-K.
func RankSingle(results []types.ScoreResult, topK int) []types.ScoreResult {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return truncateSingle(results, EffectiveTopK(topK))
}

// RankMulti sorts multi-persona results descending by best score, ties broken
// descending by average score, and truncates to the effective top-K.
func RankMulti(results []types.MultiScoreResult, topK int) []types.MultiScoreResult {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].BestScore != results[j].BestScore {
			return results[i].BestScore > results[j].BestScore
		}
		return results[i].AvgScore > results[j].AvgScore
	})
	return truncateMulti(results, EffectiveTopK(topK))
}

func truncateSingle(results []types.ScoreResult, k int) []types.ScoreResult {
	if len(results) > k {
		return results[:k]
	}
	return results
}

func truncateMulti(results []types.MultiScoreResult, k int) []types.MultiScoreResult {
	if len(results) > k {
		return results[:k]
	}
	return results
}

// Package scoring dispatches candidate batches to the scoring oracle and
// reconciles its loosely-typed responses into strict results.
package scoring

import "github.com/namesmith/namesmith/internal/types"

// Batch size limits, sized to the oracle's payload and output-token limits.
// Multi-persona responses carry one sub-result per persona per candidate, so
// those batches are smaller.
const (
	BatchSizeSingle = 40
	BatchSizeMulti  = 20
)

// BatchSize returns the batch size for a persona count.
func BatchSize(personaCount int) int {
	if personaCount > 1 {
		return BatchSizeMulti
	}
	return BatchSizeSingle
}

// Partition splits candidates into contiguous batches of at most size.
func Partition(candidates []types.Candidate, size int) [][]types.Candidate {
	if size < 1 {
		size = 1
	}
	var batches [][]types.Candidate
	for start := 0; start < len(candidates); start += size {
		end := start + size
		if end > len(candidates) {
			end = len(candidates)
		}
		batches = append(batches, candidates[start:end])
	}
	return batches
}

package generation

import (
	"fmt"

	"github.com/namesmith/namesmith/internal/types"
)

// MaxCandidates is the hard cap on deduplicated candidates per run. Exceeding
// it signals that the caller's packs/templates are too permissive.
const MaxCandidates = 500

// TooManyCandidatesError is the terminal validation error returned when the
// deduplicated candidate set exceeds MaxCandidates.
type TooManyCandidatesError struct {
	Count int
	Limit int
}

func (e *TooManyCandidatesError) Error() string {
	return fmt.Sprintf("too many candidates: %d exceeds limit of %d (narrow your packs or templates)", e.Count, e.Limit)
}

// Dedupe collapses the filtered set to one candidate per domain string,
// keeping the first-seen candidate's template and sources. Input order is
// preserved for the kept representatives. Returns TooManyCandidatesError when
// the unique set exceeds the hard cap.
func Dedupe(candidates []types.Candidate) ([]types.Candidate, error) {
	seen := make(map[string]bool, len(candidates))
	unique := make([]types.Candidate, 0, len(candidates))
	for _, cand := range candidates {
		if seen[cand.Domain] {
			continue
		}
		seen[cand.Domain] = true
		unique = append(unique, cand)
	}

	if len(unique) > MaxCandidates {
		return nil, &TooManyCandidatesError{Count: len(unique), Limit: MaxCandidates}
	}
	return unique, nil
}

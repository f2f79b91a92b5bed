package scoring

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/namesmith/namesmith/internal/llm"
	"github.com/namesmith/namesmith/internal/types"
)

// Synthetic failure reasons. A batch that could not be scored at all uses
// ReasonScoringFailed; a parsed response that omits a submitted domain uses
// ReasonError.
const (
	ReasonScoringFailed = "Scoring failed"
	ReasonError         = "Error"
)

// looseResult mirrors one single-persona assessment as the oracle reports it.
// Score is left untyped because the oracle sometimes returns strings or
// garbage where numbers belong.
type looseResult struct {
	Domain  string `json:"domain"`
	Score   any    `json:"score"`
	Bucket  string `json:"bucket"`
	Reason  string `json:"reason"`
	UseCase string `json:"use_case"`
}

// looseSubResult is one persona's sub-assessment in multi-persona mode.
type looseSubResult struct {
	Score   any    `json:"score"`
	Bucket  string `json:"bucket"`
	Reason  string `json:"reason"`
	UseCase string `json:"use_case"`
}

// looseMultiResult mirrors one multi-persona assessment from the oracle.
type looseMultiResult struct {
	Domain  string                    `json:"domain"`
	Presets map[string]looseSubResult `json:"presets"`
}

// normalizeKey produces the matching key for a reported or submitted domain:
// lower-cased, with a literal ".com" suffix stripped if the oracle echoed one.
func normalizeKey(domain string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(domain)), ".com")
}

// coerceScore converts a loosely-typed score into a float clamped to [0,10].
// Non-numeric and absent values become 0.
func coerceScore(v any) float64 {
	var score float64
	switch n := v.(type) {
	case float64:
		score = n
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		score = parsed
	default:
		return 0
	}
	return clamp(score)
}

func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}

// coerceBucket forces anything outside the three-value enumeration to PASS.
func coerceBucket(s string) types.Bucket {
	b := types.Bucket(strings.ToUpper(strings.TrimSpace(s)))
	if !b.Valid() {
		return types.BucketPass
	}
	return b
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

// syntheticFailure builds the fallback record for a candidate that received
// no usable assessment.
func syntheticFailure(cand types.Candidate, reason string) types.ScoreResult {
	return types.ScoreResult{
		Domain:       cand.Domain,
		Score:        0,
		Bucket:       types.BucketPass,
		Reason:       reason,
		UseCase:      "",
		TemplateUsed: cand.Template,
		Sources:      cand.SourceTrace(),
	}
}

// SyntheticFailures builds fallback records for an entire batch.
func SyntheticFailures(batch []types.Candidate, reason string) []types.ScoreResult {
	results := make([]types.ScoreResult, len(batch))
	for i, cand := range batch {
		results[i] = syntheticFailure(cand, reason)
	}
	return results
}

// ReconcileSingle parses a single-persona oracle response and maps it back
// onto the submitted batch. Every candidate gets exactly one result: parse
// failure turns the whole batch into synthetic records, a missing entry turns
// that candidate into one.
func ReconcileSingle(body string, batch []types.Candidate) []types.ScoreResult {
	var reported []looseResult
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(body)), &reported); err != nil {
		return SyntheticFailures(batch, ReasonScoringFailed)
	}

	byDomain := make(map[string]looseResult, len(reported))
	for _, r := range reported {
		byDomain[normalizeKey(r.Domain)] = r
	}

	results := make([]types.ScoreResult, len(batch))
	for i, cand := range batch {
		r, ok := byDomain[normalizeKey(cand.Domain)]
		if !ok {
			results[i] = syntheticFailure(cand, ReasonError)
			continue
		}
		results[i] = types.ScoreResult{
			Domain:       cand.Domain,
			Score:        coerceScore(r.Score),
			Bucket:       coerceBucket(r.Bucket),
			Reason:       truncate(r.Reason, types.MaxReasonLen),
			UseCase:      truncate(r.UseCase, types.MaxUseCaseLen),
			TemplateUsed: cand.Template,
			Sources:      cand.SourceTrace(),
		}
	}
	return results
}

// ReconcileMulti parses a multi-persona oracle response and aggregates one
// MultiScoreResult per submitted candidate. Candidates missing from the
// response aggregate from empty sub-results (zero scores, PASS, reason
// "Error"); a whole-batch parse failure does the same with reason
// "Scoring failed".
func ReconcileMulti(body string, batch []types.Candidate, selected []types.Persona) []types.MultiScoreResult {
	var reported []looseMultiResult
	parseErr := json.Unmarshal([]byte(llm.CleanJSONBlock(body)), &reported)

	byDomain := make(map[string]looseMultiResult, len(reported))
	for _, r := range reported {
		byDomain[normalizeKey(r.Domain)] = r
	}

	results := make([]types.MultiScoreResult, len(batch))
	for i, cand := range batch {
		fallbackReason := ReasonError
		if parseErr != nil {
			fallbackReason = ReasonScoringFailed
		}
		var subs map[string]looseSubResult
		if r, ok := byDomain[normalizeKey(cand.Domain)]; ok {
			subs = r.Presets
		}
		results[i] = aggregate(cand, selected, subs, fallbackReason)
	}
	return results
}

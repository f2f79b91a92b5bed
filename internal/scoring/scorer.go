package scoring

import (
	"context"
	"fmt"
	"strings"

	"github.com/namesmith/namesmith/internal/llm"
	"github.com/namesmith/namesmith/internal/personas"
	"github.com/namesmith/namesmith/internal/prompts"
	"github.com/namesmith/namesmith/internal/types"
)

// Scorer dispatches candidate batches to the oracle and reconciles responses.
// Batches are submitted strictly in sequence to bound load on the oracle.
type Scorer struct {
	client   llm.Client
	registry *personas.Registry
}

// NewScorer creates a Scorer over an oracle client and a persona registry.
func NewScorer(client llm.Client, registry *personas.Registry) *Scorer {
	return &Scorer{client: client, registry: registry}
}

// ScoreBatch scores one batch in single-persona mode. Unlike the pipeline
// fold, this path propagates oracle errors to the caller; use it when a
// partial result is worse than no result.
func (s *Scorer) ScoreBatch(ctx context.Context, batch []types.Candidate, mode string) ([]types.ScoreResult, error) {
	body, err := s.client.GenerateJSON(ctx, s.buildSinglePrompt(batch, mode))
	if err != nil {
		return nil, fmt.Errorf("oracle call failed: %w", err)
	}
	return ReconcileSingle(body, batch), nil
}

// ScoreAll scores every candidate in single-persona mode as a sequential fold
// over the batch list. A batch whose oracle call exhausts its retries
// degrades to synthetic failure records instead of aborting the run, so every
// candidate always receives exactly one result. Only context cancellation
// stops the fold early.
func (s *Scorer) ScoreAll(ctx context.Context, candidates []types.Candidate, mode string) ([]types.ScoreResult, error) {
	results := make([]types.ScoreResult, 0, len(candidates))
	for _, batch := range Partition(candidates, BatchSizeSingle) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		body, err := s.client.GenerateJSON(ctx, s.buildSinglePrompt(batch, mode))
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			results = append(results, SyntheticFailures(batch, ReasonScoringFailed)...)
			continue
		}
		results = append(results, ReconcileSingle(body, batch)...)
	}
	return results, nil
}

// ScoreAllMulti scores every candidate against the selected personas, batch
// by batch in sequence, with the same degrade-to-synthetic policy as
// ScoreAll.
func (s *Scorer) ScoreAllMulti(ctx context.Context, candidates []types.Candidate, selected []types.Persona) ([]types.MultiScoreResult, error) {
	results := make([]types.MultiScoreResult, 0, len(candidates))
	for _, batch := range Partition(candidates, BatchSizeMulti) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		body, err := s.client.GenerateJSON(ctx, s.buildMultiPrompt(batch, selected))
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			// Empty body reconciles every candidate to a synthetic record.
			results = append(results, ReconcileMulti("", batch, selected)...)
			continue
		}
		results = append(results, ReconcileMulti(body, batch, selected)...)
	}
	return results, nil
}

// buildSinglePrompt renders the single-persona rubric with the niche context
// for the request's mode key.
func (s *Scorer) buildSinglePrompt(batch []types.Candidate, mode string) string {
	template := prompts.MustGet("scoring.json", "score-batch")
	return prompts.Format(template, map[string]string{
		"NicheContext": s.registry.NicheContext(mode),
		"Domains":      domainList(batch),
	})
}

// buildMultiPrompt renders the multi-persona rubric with every selected
// persona's description block.
func (s *Scorer) buildMultiPrompt(batch []types.Candidate, selected []types.Persona) string {
	ids := make([]string, len(selected))
	for i, p := range selected {
		ids[i] = p.ID
	}

	template := prompts.MustGet("scoring.json", "score-batch-multi")
	return prompts.Format(template, map[string]string{
		"Personas":  personas.RenderAll(selected),
		"PresetIDs": strings.Join(ids, ", "),
		"Domains":   domainList(batch),
	})
}

func domainList(batch []types.Candidate) string {
	lines := make([]string, len(batch))
	for i, cand := range batch {
		lines[i] = cand.Domain
	}
	return strings.Join(lines, "\n")
}

// Package pipeline provides the high-level orchestration for the
// generate-filter-dedupe-score-rank process.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/namesmith/namesmith/internal/availability"
	"github.com/namesmith/namesmith/internal/generation"
	"github.com/namesmith/namesmith/internal/llm"
	"github.com/namesmith/namesmith/internal/observability"
	"github.com/namesmith/namesmith/internal/personas"
	"github.com/namesmith/namesmith/internal/ranking"
	"github.com/namesmith/namesmith/internal/scoring"
	"github.com/namesmith/namesmith/internal/types"
)

// Pipeline wires the generation stages to an oracle client, a persona
// registry, and an availability checker. One Pipeline serves many runs; no
// state crosses invocations.
type Pipeline struct {
	scorer   *scoring.Scorer
	registry *personas.Registry
	checker  availability.Checker
}

// New creates a Pipeline. The registry must be non-nil; checker may be nil to
// skip availability annotation entirely.
func New(client llm.Client, registry *personas.Registry, checker availability.Checker) *Pipeline {
	return &Pipeline{
		scorer:   scoring.NewScorer(client, registry),
		registry: registry,
		checker:  checker,
	}
}

// RunOptions holds per-run flags shared by both modes.
type RunOptions struct {
	Verbose bool
}

// generate runs the candidate stages common to both modes: expand, filter,
// dedupe. A template set producing zero candidates is not an error.
func (p *Pipeline) generate(req types.GenerateRequest, opts RunOptions) ([]types.Candidate, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	raw := generation.Expand(req.Packs, req.Templates)
	if opts.Verbose {
		fmt.Printf("[VERBOSE] Expanded %d raw candidates from %d templates\n", len(raw), len(req.Templates))
	}

	filtered := generation.Filter(raw, req.Constraints)
	if opts.Verbose {
		fmt.Printf("[VERBOSE] %d candidates survived constraint filtering\n", len(filtered))
	}

	deduped, err := generation.Dedupe(filtered)
	if err != nil {
		return nil, err
	}
	return deduped, nil
}

// availabilityMap checks every candidate with the configured checker.
// Failures for individual domains are skipped rather than fatal.
func (p *Pipeline) availabilityMap(ctx context.Context, candidates []types.Candidate) map[string]bool {
	checked := make(map[string]bool, len(candidates))
	for _, cand := range candidates {
		if ctx.Err() != nil {
			return checked
		}
		available, err := p.checker.Check(ctx, cand.Domain)
		if err != nil {
			continue
		}
		checked[cand.Domain] = available
	}
	return checked
}

// Run executes the single-persona pipeline: generate, filter, dedupe, score
// in sequential batches, annotate availability, rank, truncate. Returns the
// ranked results plus the pre-truncation candidate count. Failed batches
// surface as synthetic zero-score PASS records, never as dropped candidates.
func (p *Pipeline) Run(ctx context.Context, req types.GenerateRequest, opts RunOptions) (*types.GenerateResponse, error) {
	printer := observability.NewPrinter(os.Stdout)

	fmt.Printf("Step 1/4: Generating candidates...\n")
	candidates, err := p.generate(req, opts)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return &types.GenerateResponse{Results: []types.ScoreResult{}, TotalGenerated: 0}, nil
	}

	fmt.Printf("Step 2/4: Scoring %d candidates...\n", len(candidates))

	// Availability never touches the oracle, so it runs alongside scoring.
	// Scoring batches themselves stay strictly sequential inside ScoreAll.
	g, gCtx := errgroup.WithContext(ctx)

	var results []types.ScoreResult
	var checked map[string]bool
	var mu sync.Mutex

	g.Go(func() error {
		scored, err := p.scorer.ScoreAll(gCtx, candidates, req.Mode)
		if err != nil {
			return fmt.Errorf("scoring failed: %w", err)
		}
		mu.Lock()
		results = scored
		mu.Unlock()
		return nil
	})

	if p.checker != nil && req.CheckAvailability {
		g.Go(func() error {
			m := p.availabilityMap(gCtx, candidates)
			mu.Lock()
			checked = m
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	fmt.Printf("Step 3/4: Annotating availability...\n")
	for i := range results {
		if available, ok := checked[results[i].Domain]; ok {
			a := available
			results[i].Available = &a
		}
	}

	fmt.Printf("Step 4/4: Ranking results...\n")
	ranked := ranking.RankSingle(results, req.TopK)
	if opts.Verbose {
		printer.PrintScoreResults(ranked)
	}

	return &types.GenerateResponse{Results: ranked, TotalGenerated: len(candidates)}, nil
}

// RunMulti executes the multi-persona pipeline. Persona resolution (unknown
// ids, duplicates, the 1..6 bound) happens before any oracle call.
func (p *Pipeline) RunMulti(ctx context.Context, req types.MultiGenerateRequest, opts RunOptions) (*types.MultiGenerateResponse, error) {
	printer := observability.NewPrinter(os.Stdout)

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}
	selected, err := p.registry.Resolve(req.PresetIDs)
	if err != nil {
		return nil, err
	}

	fmt.Printf("Step 1/4: Generating candidates...\n")
	candidates, err := p.generate(req.GenerateRequest, opts)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return &types.MultiGenerateResponse{Results: []types.MultiScoreResult{}, TotalGenerated: 0}, nil
	}

	fmt.Printf("Step 2/4: Scoring %d candidates across %d personas...\n", len(candidates), len(selected))

	g, gCtx := errgroup.WithContext(ctx)

	var results []types.MultiScoreResult
	var checked map[string]bool
	var mu sync.Mutex

	g.Go(func() error {
		scored, err := p.scorer.ScoreAllMulti(gCtx, candidates, selected)
		if err != nil {
			return fmt.Errorf("scoring failed: %w", err)
		}
		mu.Lock()
		results = scored
		mu.Unlock()
		return nil
	})

	if p.checker != nil && req.CheckAvailability {
		g.Go(func() error {
			m := p.availabilityMap(gCtx, candidates)
			mu.Lock()
			checked = m
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	fmt.Printf("Step 3/4: Annotating availability...\n")
	for i := range results {
		if available, ok := checked[results[i].Domain]; ok {
			a := available
			results[i].Available = &a
		}
	}

	fmt.Printf("Step 4/4: Ranking results...\n")
	ranked := ranking.RankMulti(results, req.TopK)
	if opts.Verbose {
		printer.PrintMultiScoreResults(ranked)
	}

	return &types.MultiGenerateResponse{Results: ranked, TotalGenerated: len(candidates)}, nil
}

package personas

import (
	"fmt"
	"strings"

	"github.com/namesmith/namesmith/internal/types"
)

// Caps on how much of a persona is rendered into the oracle prompt; output
// tokens per candidate grow with every rendered line.
const (
	maxRenderedBanned  = 5
	maxRenderedAffixes = 3
)

// Render formats one persona as a prompt block: name, description, max
// length, per-dimension weights, a bounded slice of banned substrings and
// preferred affixes, and free-text notes when present.
func Render(p types.Persona) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("[%s] %s\n", p.ID, p.Name))
	if p.Description != "" {
		sb.WriteString(fmt.Sprintf("  Profile: %s\n", p.Description))
	}
	sb.WriteString(fmt.Sprintf("  Max length: %d chars\n", p.Constraints.EffectiveMaxLen()))
	sb.WriteString(fmt.Sprintf("  Weights: brandability %.2f, pronunciation %.2f, spelling %.2f, native meaning %.2f, buyer intent %.2f\n",
		p.Weights.Brandability, p.Weights.Pronunciation, p.Weights.Spelling, p.Weights.NativeMeaning, p.Weights.BuyerIntent))

	if banned := capList(p.BannedSubstrings, maxRenderedBanned); len(banned) > 0 {
		sb.WriteString(fmt.Sprintf("  Avoid substrings: %s\n", strings.Join(banned, ", ")))
	}
	if prefixes := capList(p.PreferredPrefixes, maxRenderedAffixes); len(prefixes) > 0 {
		sb.WriteString(fmt.Sprintf("  Preferred prefixes: %s\n", strings.Join(prefixes, ", ")))
	}
	if suffixes := capList(p.PreferredSuffixes, maxRenderedAffixes); len(suffixes) > 0 {
		sb.WriteString(fmt.Sprintf("  Preferred suffixes: %s\n", strings.Join(suffixes, ", ")))
	}
	if p.Notes != "" {
		sb.WriteString(fmt.Sprintf("  Notes: %s\n", p.Notes))
	}

	return sb.String()
}

// RenderAll formats every persona, in order, separated by blank lines.
func RenderAll(personas []types.Persona) string {
	blocks := make([]string, len(personas))
	for i, p := range personas {
		blocks[i] = Render(p)
	}
	return strings.Join(blocks, "\n")
}

func capList(values []string, limit int) []string {
	if len(values) > limit {
		return values[:limit]
	}
	return values
}

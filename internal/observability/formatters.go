// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/namesmith/namesmith/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of results to display
	maxItemsToShow = 10
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScoreResults outputs a human-readable summary of ranked single-persona results.
func (p *Printer) PrintScoreResults(results []types.ScoreResult) {
	var sb strings.Builder

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := results[i]
		sb.WriteString(fmt.Sprintf("%2d. %-18s %4.1f %-9s", i+1, r.Domain, r.Score, r.Bucket))
		if r.Available != nil {
			if *r.Available {
				sb.WriteString(" [avail]")
			} else {
				sb.WriteString(" [taken]")
			}
		}
		sb.WriteString("\n")
		if r.Reason != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", r.Reason))
		}
	}
	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(results)-maxItemsToShow))
	}

	p.printBox(fmt.Sprintf("Scored Candidates (%d)", len(results)), sb.String())
}

// PrintMultiScoreResults outputs a human-readable summary of ranked multi-persona results.
func (p *Printer) PrintMultiScoreResults(results []types.MultiScoreResult) {
	var sb strings.Builder

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := results[i]
		sb.WriteString(fmt.Sprintf("%2d. %-18s best %4.1f avg %4.1f %-9s\n", i+1, r.Domain, r.BestScore, r.AvgScore, r.Bucket))
		sb.WriteString(fmt.Sprintf("    winner: %s\n", r.BestPresetName))
	}
	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(results)-maxItemsToShow))
	}

	p.printBox(fmt.Sprintf("Multi-Persona Results (%d)", len(results)), sb.String())
}

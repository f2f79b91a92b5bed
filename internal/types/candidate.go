// Package types provides type definitions for structured data used throughout the namesmith system.
package types

// PackLabel identifies a word pack or multiplier slot in a template.
type PackLabel string

// Pack and multiplier labels used in template definitions and provenance traces.
const (
	PackA      PackLabel = "A"
	PackB      PackLabel = "B"
	PackC      PackLabel = "C"
	PackPrefix PackLabel = "prefix"
	PackSuffix PackLabel = "suffix"
)

// TemplateID names a composition pattern from the closed template set.
type TemplateID string

// The closed set of composition templates. Unknown ids expand to nothing.
const (
	TemplateAB       TemplateID = "A+B"
	TemplateBA       TemplateID = "B+A"
	TemplateAC       TemplateID = "A+C"
	TemplateCA       TemplateID = "C+A"
	TemplateBC       TemplateID = "B+C"
	TemplatePreA     TemplateID = "prefix+A"
	TemplateASuf     TemplateID = "A+suffix"
	TemplatePreAB    TemplateID = "prefix+A+B"
	TemplateABSuf    TemplateID = "A+B+suffix"
	TemplatePreABSuf TemplateID = "prefix+A+B+suffix"
)

// WordPacks holds the caller-supplied word fragment buckets and multipliers.
// Immutable during a run.
type WordPacks struct {
	A        []string `json:"a,omitempty"`
	B        []string `json:"b,omitempty"`
	C        []string `json:"c,omitempty"`
	Prefixes []string `json:"prefixes,omitempty"`
	Suffixes []string `json:"suffixes,omitempty"`
}

// SourcePart records one component of a candidate's provenance: which pack it
// came from and the fragment value that was used.
type SourcePart struct {
	Pack  PackLabel `json:"pack"`
	Value string    `json:"value"`
}

// Candidate is a generated domain name with its provenance. The domain is
// normalized by the constraint filter; everything else is immutable.
type Candidate struct {
	Domain   string       `json:"domain"`
	Template TemplateID   `json:"template"`
	Sources  []SourcePart `json:"sources"`
}

// SourceTrace renders the provenance as a human-readable string,
// e.g. "A:trust + B:flow".
func (c *Candidate) SourceTrace() string {
	trace := ""
	for i, part := range c.Sources {
		if i > 0 {
			trace += " + "
		}
		trace += string(part.Pack) + ":" + part.Value
	}
	return trace
}

// Constraints holds the lexical rules applied to raw candidates.
// Read-only configuration for one generation run.
type Constraints struct {
	MaxLen            int      `json:"max_len,omitempty"`
	NoHyphens         bool     `json:"no_hyphens,omitempty"`
	NoNumbers         bool     `json:"no_numbers,omitempty"`
	Banned            []string `json:"banned,omitempty"`
	AvoidUglyClusters bool     `json:"avoid_ugly_clusters,omitempty"`
}

// DefaultMaxLen is applied when a constraint set leaves MaxLen unset.
const DefaultMaxLen = 15

// EffectiveMaxLen returns MaxLen, falling back to DefaultMaxLen when unset.
func (c *Constraints) EffectiveMaxLen() int {
	if c.MaxLen <= 0 {
		return DefaultMaxLen
	}
	return c.MaxLen
}

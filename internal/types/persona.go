package types

import "github.com/go-playground/validator/v10"

// PersonaWeights holds the per-dimension scoring weights for a buyer persona.
// Weights are non-negative; they shape the oracle's rubric, not a local formula.
type PersonaWeights struct {
	Brandability  float64 `json:"brandability" validate:"gte=0"`
	Pronunciation float64 `json:"pronunciation" validate:"gte=0"`
	Spelling      float64 `json:"spelling" validate:"gte=0"`
	NativeMeaning float64 `json:"native_meaning" validate:"gte=0"`
	BuyerIntent   float64 `json:"buyer_intent" validate:"gte=0"`
}

// Persona describes one hypothetical buyer segment used to steer scoring.
// The pipeline only reads personas: when rendering the oracle request and when
// resolving an id to a display name.
type Persona struct {
	ID                string         `json:"id" validate:"required"`
	Name              string         `json:"name" validate:"required"`
	Description       string         `json:"description"`
	Weights           PersonaWeights `json:"weights"`
	Constraints       Constraints    `json:"constraints"`
	BannedSubstrings  []string       `json:"banned_substrings,omitempty"`
	PreferredPrefixes []string       `json:"preferred_prefixes,omitempty"`
	PreferredSuffixes []string       `json:"preferred_suffixes,omitempty"`
	Notes             string         `json:"notes,omitempty"`
}

// Validate validates the Persona using the validator.
func (p *Persona) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

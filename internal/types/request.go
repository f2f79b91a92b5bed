package types

import "github.com/go-playground/validator/v10"

// GenerateRequest is the caller-supplied configuration for one
// generate-filter-dedupe-score-rank run.
type GenerateRequest struct {
	Packs             WordPacks    `json:"packs"`
	Templates         []TemplateID `json:"templates,omitempty"`
	Constraints       Constraints  `json:"constraints"`
	Mode              string       `json:"mode,omitempty"`
	TopK              int          `json:"top_k,omitempty" validate:"gte=0"`
	CheckAvailability bool         `json:"check_availability,omitempty"`
}

// Validate validates the GenerateRequest using the validator.
func (r *GenerateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// MultiGenerateRequest extends GenerateRequest with the persona ids to score
// against. Between 1 and 6 personas may be requested.
type MultiGenerateRequest struct {
	GenerateRequest
	PresetIDs []string `json:"preset_ids" validate:"required,min=1,max=6"`
}

// Validate validates the MultiGenerateRequest using the validator.
func (r *MultiGenerateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// GenerateResponse carries the ranked single-persona results plus the
// pre-truncation candidate count.
type GenerateResponse struct {
	Results        []ScoreResult `json:"results"`
	TotalGenerated int           `json:"total_generated"`
}

// MultiGenerateResponse carries the ranked multi-persona results plus the
// pre-truncation candidate count.
type MultiGenerateResponse struct {
	Results        []MultiScoreResult `json:"results"`
	TotalGenerated int                `json:"total_generated"`
}

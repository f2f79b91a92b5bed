package types

// Bucket is the coarse value tier assigned to a scored candidate.
type Bucket string

// The three bucket values. Anything else from the oracle is forced to PASS.
const (
	BucketFastFlip Bucket = "FAST-FLIP"
	BucketHold     Bucket = "HOLD"
	BucketPass     Bucket = "PASS"
)

// Valid reports whether b is one of the three enumerated buckets.
func (b Bucket) Valid() bool {
	switch b {
	case BucketFastFlip, BucketHold, BucketPass:
		return true
	}
	return false
}

// Field length limits applied when reconciling oracle output.
const (
	MaxReasonLen  = 200
	MaxUseCaseLen = 50
)

// ScoreResult is one candidate's assessment in single-persona mode.
// Score is always in [0,10] and Bucket is always a valid enum value.
type ScoreResult struct {
	Domain       string     `json:"domain"`
	Score        float64    `json:"score"`
	Bucket       Bucket     `json:"bucket"`
	Reason       string     `json:"reason"`
	UseCase      string     `json:"use_case"`
	TemplateUsed TemplateID `json:"template_used"`
	Sources      string     `json:"sources"`
	Available    *bool      `json:"available,omitempty"`
}

// MultiScoreResult is one candidate's assessment aggregated across personas.
// ScoreByPreset has exactly one entry per requested persona id.
type MultiScoreResult struct {
	Domain         string             `json:"domain"`
	TemplateUsed   TemplateID         `json:"template_used"`
	Sources        string             `json:"sources"`
	BestPresetID   string             `json:"best_preset_id"`
	BestPresetName string             `json:"best_preset_name"`
	BestScore      float64            `json:"best_score"`
	AvgScore       float64            `json:"avg_score"`
	MaxScore       float64            `json:"max_score"`
	Bucket         Bucket             `json:"bucket"`
	Reason         string             `json:"reason"`
	UseCase        string             `json:"use_case"`
	ScoreByPreset  map[string]float64 `json:"score_by_preset"`
	Available      *bool              `json:"available,omitempty"`
}

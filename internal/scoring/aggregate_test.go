package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/namesmith/namesmith/internal/types"
)

func twoPersonas() []types.Persona {
	return []types.Persona{
		{ID: "startup-founder", Name: "Startup Founder"},
		{ID: "ecom-seller", Name: "E-commerce Seller"},
	}
}

func TestDeriveBucket(t *testing.T) {
	tests := []struct {
		name         string
		bestScore    float64
		winnerBucket types.Bucket
		expected     types.Bucket
	}{
		{"At fast-flip threshold", 8.0, types.BucketPass, types.BucketFastFlip},
		{"Above fast-flip threshold", 9.3, types.BucketHold, types.BucketFastFlip},
		{"Band with fast-flip winner", 7.5, types.BucketFastFlip, types.BucketFastFlip},
		{"Band with hold winner", 7.5, types.BucketHold, types.BucketHold},
		{"Band with pass winner", 7.0, types.BucketPass, types.BucketHold},
		{"Hold range", 5.0, types.BucketFastFlip, types.BucketHold},
		{"At hold threshold", 4.0, types.BucketPass, types.BucketHold},
		{"Below hold threshold", 3.9, types.BucketFastFlip, types.BucketPass},
		{"Zero", 0, types.BucketPass, types.BucketPass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, deriveBucket(tt.bestScore, tt.winnerBucket))
		})
	}
}

func TestReconcileMulti_Aggregation(t *testing.T) {
	batch := batchOf("trustflow")
	body := `[{
		"domain": "trustflow",
		"presets": {
			"startup-founder": {"score": 7.5, "bucket": "HOLD", "reason": "Solid SaaS name", "use_case": "Dev tools"},
			"ecom-seller": {"score": 6.0, "bucket": "HOLD", "reason": "Less retail appeal", "use_case": "Storefront"}
		}
	}]`

	results := ReconcileMulti(body, batch, twoPersonas())

	require.Len(t, results, 1)
	r := results[0]
	assert.Equal(t, "trustflow", r.Domain)
	assert.Equal(t, "startup-founder", r.BestPresetID)
	assert.Equal(t, "Startup Founder", r.BestPresetName)
	assert.InDelta(t, 7.5, r.BestScore, 0.001)
	assert.InDelta(t, 7.5, r.MaxScore, 0.001)
	assert.InDelta(t, 6.75, r.AvgScore, 0.001)
	assert.Equal(t, types.BucketHold, r.Bucket)
	assert.Equal(t, "Solid SaaS name", r.Reason)
	assert.Equal(t, "Dev tools", r.UseCase)
	assert.InDelta(t, 7.5, r.ScoreByPreset["startup-founder"], 0.001)
	assert.InDelta(t, 6.0, r.ScoreByPreset["ecom-seller"], 0.001)
}

func TestReconcileMulti_WinnerFastFlipInBand(t *testing.T) {
	batch := batchOf("trustflow")
	body := `[{
		"domain": "trustflow",
		"presets": {
			"startup-founder": {"score": 7.5, "bucket": "FAST-FLIP", "reason": "r", "use_case": "u"},
			"ecom-seller": {"score": 2.0, "bucket": "PASS", "reason": "r", "use_case": "u"}
		}
	}]`

	results := ReconcileMulti(body, batch, twoPersonas())

	require.Len(t, results, 1)
	assert.Equal(t, types.BucketFastFlip, results[0].Bucket)
}

func TestReconcileMulti_TieGoesToFirstPersona(t *testing.T) {
	batch := batchOf("trustflow")
	body := `[{
		"domain": "trustflow",
		"presets": {
			"startup-founder": {"score": 6.0, "bucket": "HOLD", "reason": "first", "use_case": "u"},
			"ecom-seller": {"score": 6.0, "bucket": "HOLD", "reason": "second", "use_case": "u"}
		}
	}]`

	results := ReconcileMulti(body, batch, twoPersonas())

	require.Len(t, results, 1)
	assert.Equal(t, "startup-founder", results[0].BestPresetID)
	assert.Equal(t, "first", results[0].Reason)
}

func TestReconcileMulti_PerPresetScoresRounded(t *testing.T) {
	batch := batchOf("trustflow")
	body := `[{
		"domain": "trustflow",
		"presets": {
			"startup-founder": {"score": 7.44, "bucket": "HOLD", "reason": "r", "use_case": "u"},
			"ecom-seller": {"score": 7.46, "bucket": "HOLD", "reason": "r", "use_case": "u"}
		}
	}]`

	results := ReconcileMulti(body, batch, twoPersonas())

	require.Len(t, results, 1)
	assert.InDelta(t, 7.4, results[0].ScoreByPreset["startup-founder"], 0.001)
	assert.InDelta(t, 7.5, results[0].ScoreByPreset["ecom-seller"], 0.001)
}

func TestReconcileMulti_MissingPersonaEntry(t *testing.T) {
	batch := batchOf("trustflow")
	body := `[{
		"domain": "trustflow",
		"presets": {
			"startup-founder": {"score": 9.0, "bucket": "FAST-FLIP", "reason": "r", "use_case": "u"}
		}
	}]`

	results := ReconcileMulti(body, batch, twoPersonas())

	require.Len(t, results, 1)
	r := results[0]
	assert.InDelta(t, 9.0, r.BestScore, 0.001)
	assert.InDelta(t, 4.5, r.AvgScore, 0.001)
	assert.Zero(t, r.ScoreByPreset["ecom-seller"])
	assert.Len(t, r.ScoreByPreset, 2)
}

func TestReconcileMulti_MissingDomain(t *testing.T) {
	batch := batchOf("trustflow", "zenpay")
	body := `[{
		"domain": "trustflow",
		"presets": {
			"startup-founder": {"score": 8.0, "bucket": "FAST-FLIP", "reason": "r", "use_case": "u"},
			"ecom-seller": {"score": 8.0, "bucket": "FAST-FLIP", "reason": "r", "use_case": "u"}
		}
	}]`

	results := ReconcileMulti(body, batch, twoPersonas())

	require.Len(t, results, 2)
	assert.Equal(t, types.BucketFastFlip, results[0].Bucket)

	missing := results[1]
	assert.Equal(t, "zenpay", missing.Domain)
	assert.Zero(t, missing.BestScore)
	assert.Zero(t, missing.AvgScore)
	assert.Equal(t, types.BucketPass, missing.Bucket)
	assert.Equal(t, ReasonError, missing.Reason)
	assert.Len(t, missing.ScoreByPreset, 2)
}

func TestReconcileMulti_MalformedBody(t *testing.T) {
	batch := batchOf("trustflow")

	results := ReconcileMulti("not json", batch, twoPersonas())

	require.Len(t, results, 1)
	r := results[0]
	assert.Zero(t, r.BestScore)
	assert.Equal(t, types.BucketPass, r.Bucket)
	assert.Equal(t, ReasonScoringFailed, r.Reason)
	assert.Len(t, r.ScoreByPreset, 2)
}

func TestAggregate_NoPersonas(t *testing.T) {
	cand := types.Candidate{Domain: "trustflow", Template: types.TemplateAB}

	result := aggregate(cand, nil, nil, ReasonError)

	assert.Zero(t, result.BestScore)
	assert.Zero(t, result.AvgScore)
	assert.Equal(t, types.BucketPass, result.Bucket)
	assert.Empty(t, result.ScoreByPreset)
}

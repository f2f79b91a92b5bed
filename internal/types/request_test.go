package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRequest_Validate(t *testing.T) {
	req := GenerateRequest{
		Packs: WordPacks{A: []string{"trust"}, B: []string{"flow"}},
		TopK:  10,
	}
	assert.NoError(t, req.Validate())

	req.TopK = -1
	assert.Error(t, req.Validate())
}

func TestMultiGenerateRequest_Validate(t *testing.T) {
	base := GenerateRequest{Packs: WordPacks{A: []string{"trust"}}}

	req := MultiGenerateRequest{GenerateRequest: base, PresetIDs: []string{"startup-founder"}}
	assert.NoError(t, req.Validate())

	req.PresetIDs = nil
	assert.Error(t, req.Validate())

	req.PresetIDs = []string{"a", "b", "c", "d", "e", "f", "g"}
	assert.Error(t, req.Validate())
}

func TestGenerateRequest_JSONUnmarshaling(t *testing.T) {
	jsonInput := `{
		"packs": {"a": ["trust"], "b": ["flow"], "prefixes": ["get"]},
		"templates": ["A+B", "prefix+A"],
		"constraints": {"max_len": 10, "no_hyphens": true, "banned": ["spam"]},
		"mode": "saas",
		"top_k": 5,
		"check_availability": true
	}`

	var req GenerateRequest
	require.NoError(t, json.Unmarshal([]byte(jsonInput), &req))
	assert.Equal(t, []string{"trust"}, req.Packs.A)
	assert.Equal(t, []string{"get"}, req.Packs.Prefixes)
	assert.Equal(t, []TemplateID{TemplateAB, TemplatePreA}, req.Templates)
	assert.Equal(t, 10, req.Constraints.MaxLen)
	assert.True(t, req.Constraints.NoHyphens)
	assert.Equal(t, "saas", req.Mode)
	assert.Equal(t, 5, req.TopK)
	assert.True(t, req.CheckAvailability)
}

package personas

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/namesmith/namesmith/internal/schemas"
	"github.com/namesmith/namesmith/internal/types"
)

// PresetSchemaPath is the repo-relative location of the preset file schema.
const PresetSchemaPath = "schemas/persona_preset.schema.json"

// LoadPresetFile reads a caller-supplied persona preset JSON file, validates
// it against the preset schema when one can be resolved, and registers every
// persona in it. Presets in the file replace built-ins with the same id.
func (r *Registry) LoadPresetFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read preset file %s: %w", path, err)
	}

	if schemaPath := schemas.ResolveSchemaPath(PresetSchemaPath); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			return fmt.Errorf("preset file %s: %w", path, err)
		}
	}

	var presets []types.Persona
	if err := json.Unmarshal(data, &presets); err != nil {
		return fmt.Errorf("failed to parse preset file %s: %w", path, err)
	}

	for _, p := range presets {
		if err := r.AddPersona(p); err != nil {
			return fmt.Errorf("preset file %s: %w", path, err)
		}
	}
	return nil
}

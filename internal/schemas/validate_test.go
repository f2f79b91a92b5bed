package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["id"],
	"properties": {
		"id": {"type": "string", "minLength": 1},
		"count": {"type": "integer", "minimum": 0}
	}
}`

func TestValidateJSONString_Valid(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"id": "abc", "count": 3}`)
	assert.NoError(t, err)
}

func TestValidateJSONString_MissingRequired(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"count": 3}`)

	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, err.Error(), "id")
}

func TestValidateJSONString_WrongType(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"id": "abc", "count": "three"}`)

	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "count", validationErr.Errors[0].Field)
}

func TestValidateJSONString_BadSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": 42}`, `{}`)

	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateJSON_Files(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.json")
	docPath := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(testSchema), 0o644))
	require.NoError(t, os.WriteFile(docPath, []byte(`{"id": "abc"}`), 0o644))

	assert.NoError(t, ValidateJSON(schemaPath, docPath))
}

func TestValidateJSON_MissingFiles(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(testSchema), 0o644))

	err := ValidateJSON(schemaPath, filepath.Join(dir, "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON file not found")

	err = ValidateJSON(filepath.Join(dir, "absent-schema.json"), schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema file not found")
}

func TestResolveSchemaPath_Found(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "schemas"), 0o755))
	target := filepath.Join(dir, "schemas", "thing.schema.json")
	require.NoError(t, os.WriteFile(target, []byte(`{}`), 0o644))

	t.Chdir(dir)

	resolved := ResolveSchemaPath(filepath.Join("schemas", "thing.schema.json"))
	assert.Equal(t, target, resolved)
}

func TestResolveSchemaPath_ParentDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "schemas"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	target := filepath.Join(dir, "schemas", "thing.schema.json")
	require.NoError(t, os.WriteFile(target, []byte(`{}`), 0o644))

	t.Chdir(filepath.Join(dir, "nested"))

	resolved := ResolveSchemaPath(filepath.Join("schemas", "thing.schema.json"))
	assert.Equal(t, target, resolved)
}

func TestResolveSchemaPath_NotFound(t *testing.T) {
	t.Chdir(t.TempDir())

	assert.Empty(t, ResolveSchemaPath(filepath.Join("schemas", "missing.schema.json")))
}

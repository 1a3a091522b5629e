package validation

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"service-catalog/internal/common/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

const sampleSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"title": "Service Catalog",
	"type": "object",
	"required": ["services"],
	"properties": {"version": {"type": "string"}, "count": {"type": "integer", "maximum": 10}}
}`

func writeSchema(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schema.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSchema_Success(t *testing.T) {
	path := writeSchema(t, sampleSchema)

	schema, err := LoadSchema(path)
	require.NoError(t, err)

	assert.Equal(t, path, schema.Path)
	assert.Equal(t, "http://json-schema.org/draft-07/schema#", schema.Draft())
	assert.Equal(t, "Service Catalog", schema.Title())

	props := schema.Document["properties"].(map[string]interface{})
	count := props["count"].(map[string]interface{})
	assert.Equal(t, json.Number("10"), count["maximum"])
}

func TestLoadSchema_DocumentCompiles(t *testing.T) {
	schema, err := LoadSchema(writeSchema(t, sampleSchema))
	require.NoError(t, err)

	_, err = gojsonschema.NewSchema(gojsonschema.NewGoLoader(map[string]interface{}(schema.Document)))
	assert.NoError(t, err)
}

func TestLoadSchema_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSchema(filepath.Join(t.TempDir(), "schema.json"))
		assert.True(t, errors.HasCode(err, errors.ErrCodeFileLoadFailed))
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := LoadSchema(writeSchema(t, `{"type":`))
		assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidJSON))
	})

	t.Run("not an object", func(t *testing.T) {
		_, err := LoadSchema(writeSchema(t, `["a"]`))
		assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidJSON))
	})
}

func TestSchema_EmptyAccessors(t *testing.T) {
	schema, err := LoadSchema(writeSchema(t, `{}`))
	require.NoError(t, err)
	assert.Empty(t, schema.Draft())
	assert.Empty(t, schema.Title())
}

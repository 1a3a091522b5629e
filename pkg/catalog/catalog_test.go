package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"service-catalog/internal/common/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDocument_Success(t *testing.T) {
	path := writeFile(t, "services.json", `{
		"version": "1.0.0",
		"services": [{"serviceId": 1, "slug": "a"}, "oops"],
		"categories": [{"id": "cat1"}]
	}`)

	doc, err := LoadDocument(path)
	require.NoError(t, err)

	assert.True(t, doc.Has(FieldVersion))
	assert.False(t, doc.Has(FieldLastUpdated))

	services := doc.Services()
	require.Len(t, services, 2)
	assert.Equal(t, json.Number("1"), services[0].Get(FieldServiceID))
	assert.Empty(t, services[1], "non-object entries become empty records")

	require.Len(t, doc.Categories(), 1)
	assert.Equal(t, "cat1", doc.Categories()[0].Get(FieldCategoryID))
}

func TestLoadDocument_Errors(t *testing.T) {
	tests := []struct {
		name     string
		content  *string
		wantCode errors.ErrorCode
	}{
		{name: "missing file", content: nil, wantCode: errors.ErrCodeFileLoadFailed},
		{name: "malformed", content: strPtr(`{"version":`), wantCode: errors.ErrCodeInvalidJSON},
		{name: "array top level", content: strPtr(`[1, 2]`), wantCode: errors.ErrCodeInvalidJSON},
		{name: "null top level", content: strPtr(`null`), wantCode: errors.ErrCodeInvalidJSON},
		{name: "trailing data", content: strPtr(`{} {}`), wantCode: errors.ErrCodeInvalidJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "services.json")
			if tt.content != nil {
				path = writeFile(t, "services.json", *tt.content)
			}

			doc, err := LoadDocument(path)
			assert.Nil(t, doc)
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, tt.wantCode), "got %v", err)
		})
	}
}

func TestDocument_ShapeTolerance(t *testing.T) {
	doc := Document{FieldServices: "not-a-list", FieldCategories: nil}
	assert.Nil(t, doc.Services())
	assert.Nil(t, doc.Categories())
	assert.True(t, doc.Has(FieldCategories))
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		expected string
	}{
		{"nil", nil, "None"},
		{"string", "cat1", "cat1"},
		{"true", true, "True"},
		{"false", false, "False"},
		{"json integer", json.Number("42"), "42"},
		{"json float", json.Number("1.5"), "1.5"},
		{"json float trailing zero", json.Number("1.50"), "1.5"},
		{"json integral float", json.Number("7.0"), "7.0"},
		{"json exponent", json.Number("1e2"), "100.0"},
		{"json large exponent", json.Number("1e16"), "1e+16"},
		{"json small exponent", json.Number("0.00001"), "1e-05"},
		{"json overflow", json.Number("1e400"), "inf"},
		{"json negative zero integer", json.Number("-0"), "0"},
		{"json large integer", json.Number("9007199254740993"), "9007199254740993"},
		{"float64", float64(3), "3.0"},
		{"int", 7, "7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatValue(tt.value))
		})
	}
}

func TestValueKey(t *testing.T) {
	assert.Equal(t, ValueKey(json.Number("1")), ValueKey(json.Number("1.0")))
	assert.Equal(t, ValueKey(json.Number("1")), ValueKey(float64(1)))
	assert.NotEqual(t, ValueKey("1"), ValueKey(json.Number("1")))
	assert.NotEqual(t, ValueKey(true), ValueKey("true"))
	assert.Equal(t, ValueKey(nil), ValueKey(Record{}.Get(FieldSlug)))

	t.Run("large integers stay distinct", func(t *testing.T) {
		assert.NotEqual(t, ValueKey(json.Number("9007199254740992")), ValueKey(json.Number("9007199254740993")))
		assert.Equal(t, ValueKey(json.Number("9007199254740993")), ValueKey(json.Number("9007199254740993")))
	})

	t.Run("float literals compare by their float value", func(t *testing.T) {
		assert.Equal(t, ValueKey(json.Number("100")), ValueKey(json.Number("1e2")))
		assert.Equal(t, ValueKey(json.Number("0.1")), ValueKey(json.Number("0.10")))
		assert.Equal(t, ValueKey(json.Number("9007199254740992")), ValueKey(json.Number("9007199254740993.0")))
	})

	t.Run("booleans equal one and zero", func(t *testing.T) {
		assert.Equal(t, ValueKey(true), ValueKey(json.Number("1")))
		assert.Equal(t, ValueKey(false), ValueKey(json.Number("0.0")))
		assert.NotEqual(t, ValueKey(true), ValueKey(false))
	})
}

func strPtr(s string) *string { return &s }

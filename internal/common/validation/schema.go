package validation

import (
	"fmt"
	"os"

	"service-catalog/internal/common/errors"
	"service-catalog/pkg/catalog"

	"github.com/xeipuuv/gojsonschema"
)

// Schema is a loaded schema.json. It must parse as a JSON object; its rules
// are not applied to the catalog.
type Schema struct {
	Path     string
	Document catalog.Document
}

// LoadSchema reads and parses the schema file at path.
func LoadSchema(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewFileLoadFailedError(path, err)
	}

	raw, err := gojsonschema.NewBytesLoader(data).LoadJSON()
	if err != nil {
		return nil, errors.NewInvalidJSONError(path, err)
	}

	obj, ok := raw.(map[string]interface{})
	if !ok {
		return nil, errors.NewInvalidJSONError(path, fmt.Errorf("top-level value must be an object"))
	}

	return &Schema{Path: path, Document: catalog.Document(obj)}, nil
}

// Draft returns the declared $schema URI, or "" when absent.
func (s *Schema) Draft() string {
	if v, ok := s.Document["$schema"].(string); ok {
		return v
	}
	return ""
}

// Title returns the schema title, or "" when absent.
func (s *Schema) Title() string {
	if v, ok := s.Document["title"].(string); ok {
		return v
	}
	return ""
}

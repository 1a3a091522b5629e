// pkg/catalog/catalog.go
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"service-catalog/internal/common/errors"
)

// LoadDocument reads and parses a services.json file.
func LoadDocument(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewFileLoadFailedError(path, err)
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, errors.NewInvalidJSONError(path, err)
	}
	return doc, nil
}

// ParseDocument decodes a JSON object, keeping number literals intact.
func ParseDocument(data []byte) (Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after top-level value")
	}

	obj, ok := raw.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("top-level value must be an object, got %s", kindOf(raw))
	}
	return Document(obj), nil
}

func kindOf(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case []interface{}:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}

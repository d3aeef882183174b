package schema

import (
	_ "embed"
	"encoding/json"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed request.json
var requestSchema json.RawMessage
var requestSchemaLoader = gojsonschema.NewBytesLoader(requestSchema)

// Schema validates decoded request bodies.
type Schema struct {
	schema *gojsonschema.Schema
}

func NewRequestSchema() (*Schema, error) {
	schema, err := gojsonschema.NewSchema(requestSchemaLoader)
	if err != nil {
		return nil, err
	}

	return &Schema{schema: schema}, nil
}

// Validate validates an already decoded JSON document.
func (s *Schema) Validate(data any) (*gojsonschema.Result, error) {
	return s.schema.Validate(gojsonschema.NewGoLoader(data))
}

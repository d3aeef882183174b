package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestSchema(t *testing.T) {
	_, err := NewRequestSchema()
	if err != nil {
		t.Errorf("NewRequestSchema() returned an error: %v", err)
	}
}

func TestSchema_Validate(t *testing.T) {
	s, err := NewRequestSchema()
	require.NoError(t, err)

	tests := []struct {
		name  string
		data  any
		valid bool
	}{
		{"object with name", map[string]any{"name": "BodyUser"}, true},
		{"object with numeric name", map[string]any{"name": json.Number("42")}, true},
		{"empty object", map[string]any{}, true},
		{"array", []any{"name"}, false},
		{"string", "name", false},
		{"null", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := s.Validate(tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.valid, res.Valid())
		})
	}
}

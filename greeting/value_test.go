package greeting

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := map[string]string{
		"42":                    "42",
		"-0":                    "0",
		"123456789012345678901": "123456789012345678901",
		"1.5":                   "1.5",
		"1e2":                   "100.0",
		"1E2":                   "100.0",
		"0.0":                   "0.0",
		"-0.0":                  "-0.0",
		"0.0001":                "0.0001",
		"0.00001":               "1e-05",
		"1e15":                  "1000000000000000.0",
		"1e16":                  "1e+16",
		"1.5e-7":                "1.5e-07",
		"123456789012345678.0":  "1.2345678901234568e+17",
		"1e400":                 "inf",
		"-1e400":                "-inf",
	}

	for in, expected := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, expected, formatNumber(json.Number(in)))
		})
	}
}

func TestQuoteString(t *testing.T) {
	tests := map[string]string{
		"a":        `'a'`,
		"it's":     `"it's"`,
		`say "hi"`: `'say "hi"'`,
		`it's "x"`: `'it\'s "x"'`,
		"a\\b":     `'a\\b'`,
		"a\nb\tc":  `'a\nb\tc'`,
		"\x01":     `'\x01'`,
		"héllo":    `'héllo'`,
	}

	for in, expected := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, expected, quoteString(in))
		})
	}
}

func TestJSONObject_MarshalJSON(t *testing.T) {
	obj := newJSONObject()
	obj.set("b", json.Number("1"))
	obj.set("a", "<x>")
	obj.set("b", []any{nil})

	b, err := json.Marshal(obj)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"b":[null],"a":"<x>"}`, string(b))
	assert.Equal(t, []string{"b", "a"}, obj.keys)
}

package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"additionalProperties": {
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string"},
			"weight_g": {"type": "integer", "minimum": 0}
		}
	}
}`

func TestSchemaValidator_Validate(t *testing.T) {
	v := NewSchemaValidator()
	require.NoError(t, v.Register("products", []byte(productSchema)))

	tests := []struct {
		name     string
		doc      string
		wantErr  bool
		contains string
	}{
		{"valid", `{"12345678": {"name": "Oats", "weight_g": 500}}`, false, ""},
		{"empty object", `{}`, false, ""},
		{"missing name", `{"12345678": {"weight_g": 500}}`, true, "/12345678"},
		{"wrong type", `{"12345678": {"name": 7}}`, true, "/12345678/name"},
		{"negative weight", `{"12345678": {"name": "Oats", "weight_g": -1}}`, true, "minimum"},
		{"not an object", `[1, 2]`, true, "(root)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate("products", []byte(tt.doc))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSchemaViolation)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestSchemaValidator_Errors(t *testing.T) {
	v := NewSchemaValidator()

	err := v.Validate("unknown", []byte(`{}`))
	assert.ErrorContains(t, err, ErrMsgSchemaNotRegistered)

	assert.Error(t, v.Register("broken", []byte(`{not json`)))

	require.NoError(t, v.Register("products", []byte(productSchema)))
	err = v.Validate("products", []byte(`{"a":`))
	assert.ErrorContains(t, err, ErrMsgParseDocument)
	assert.NotErrorIs(t, err, ErrSchemaViolation)
}

func TestSchemaValidator_RegisterTwiceKeepsFirst(t *testing.T) {
	v := NewSchemaValidator()
	require.NoError(t, v.Register("s", []byte(`{"type": "object"}`)))
	require.NoError(t, v.Register("s", []byte(`{"type": "array"}`)))

	assert.NoError(t, v.Validate("s", []byte(`{}`)))
}

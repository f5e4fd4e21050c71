package llm

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pairSchema(name string) *Schema {
	return &Schema{
		Name:        name,
		Description: "A question/answer pair",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{"type": "string", "minLength": 1},
				"answer":   map[string]any{"type": "string", "minLength": 1},
				"score":    map[string]any{"type": "integer", "minimum": 1, "maximum": 10},
			},
			"required": []any{"question", "answer"},
		},
	}
}

func TestValidateJSON(t *testing.T) {
	schema := pairSchema("validate-pair")

	cases := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"question":"What is a cell?","answer":"The unit of life","score":8}`, false},
		{"optional field omitted", `{"question":"Q","answer":"A"}`, false},
		{"missing answer", `{"question":"Q"}`, true},
		{"empty question", `{"question":"","answer":"A"}`, true},
		{"score out of range", `{"question":"Q","answer":"A","score":11}`, true},
		{"score wrong type", `{"question":"Q","answer":"A","score":"high"}`, true},
		{"not json", `Q: what? A: that`, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateJSON(schema, json.RawMessage(tc.raw))
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var inv *ErrInvalidResponse
			require.True(t, errors.As(err, &inv), "want *ErrInvalidResponse, got %T", err)
			assert.Equal(t, tc.raw, string(inv.Content))
		})
	}
}

func TestValidateJSON_NilSchema(t *testing.T) {
	assert.NoError(t, ValidateJSON(nil, json.RawMessage(`not even json`)))
}

func TestValidateJSON_BadSchemaDefinition(t *testing.T) {
	schema := &Schema{
		Name:       "validate-broken",
		Definition: map[string]any{"type": 42},
	}
	err := ValidateJSON(schema, json.RawMessage(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compile schema")
}

func TestValidateJSON_CachesCompiledSchema(t *testing.T) {
	schema := pairSchema("validate-cached")
	require.NoError(t, ValidateJSON(schema, json.RawMessage(`{"question":"Q","answer":"A"}`)))

	_, ok := schemaCache.Load("validate-cached")
	assert.True(t, ok)
}

package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func answerSchema() *Schema {
	return &Schema{
		Name:        "test-answer",
		Description: "A short answer with a confidence score.",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"answer":     map[string]any{"type": "string"},
				"confidence": map[string]any{"type": "number"},
			},
			"required":             []any{"answer"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"answer": "42", "confidence": 0.9}`)
	if err := validateResponse(answerSchema(), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"confidence": 0.9}`)
	err := validateResponse(answerSchema(), raw)
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got: %v", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{"answer": "42"`)
	err := validateResponse(answerSchema(), raw)
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got: %v", err)
	}
	if len(invalid.Content) == 0 {
		t.Error("expected error to carry the offending content")
	}
}

func TestValidateResponse_NilSchemaSkips(t *testing.T) {
	raw := json.RawMessage(`plain text, not even JSON`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

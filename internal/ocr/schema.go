package ocr

import (
	"bytes"
	"encoding/json"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/muhtegaralfikri/bosowa-smart-ocr/internal/common"
)

// BuildPayloadJSONSchema returns a JSON-Schema (draft 2020-12 subset) for
// the OCR engine's response as a generic map. Both the {status, data}
// envelope and a bare line array are valid shapes.
func BuildPayloadJSONSchema() map[string]any {
	lineSchema := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"text":       map[string]any{"type": "string"},
			"confidence": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
		},
		"required": []string{"text"},
	}
	linesSchema := map[string]any{
		"type":  "array",
		"items": lineSchema,
	}

	return map[string]any{
		"oneOf": []any{
			linesSchema,
			map[string]any{
				"type": "object",
				"properties": map[string]any{
					"status": map[string]any{"type": "string"},
					"data":   linesSchema,
				},
				"required": []string{"data"},
			},
		},
	}
}

// ValidatePayload validates a raw OCR response against the payload schema.
func ValidatePayload(raw []byte) error {
	b, err := json.Marshal(BuildPayloadJSONSchema())
	if err != nil {
		return common.WrapError(err, "marshal schema")
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("ocr-payload.json", bytes.NewReader(b)); err != nil {
		return common.WrapError(err, "add schema")
	}
	schema, err := compiler.Compile("ocr-payload.json")
	if err != nil {
		return common.WrapError(err, "compile schema")
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return common.NewAppError("OCR_PAYLOAD_MALFORMED", "payload is not valid JSON", err)
	}
	if err := schema.Validate(v); err != nil {
		return common.NewAppError("OCR_PAYLOAD_INVALID", "payload does not match schema", err)
	}
	return nil
}

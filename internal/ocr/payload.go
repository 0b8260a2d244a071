package ocr

import (
	"encoding/json"
)

// Line is one recognized text fragment from the external OCR engine.
// Order is significant: it approximates top-to-bottom reading order on
// the source page.
type Line struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// Payload is the envelope the OCR engine wraps its results in.
type Payload struct {
	Status string `json:"status"`
	Data   []Line `json:"data"`
}

// DecodeLines flattens a raw OCR response into its line records. It
// accepts either the {status, data} envelope or a bare array of lines.
// Anything else decodes to zero lines; a malformed payload is not an
// error for the caller.
func DecodeLines(raw []byte) []Line {
	var envelope Payload
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Data != nil {
		return envelope.Data
	}

	var bare []Line
	if err := json.Unmarshal(raw, &bare); err == nil {
		return bare
	}

	return nil
}

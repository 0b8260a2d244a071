package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/muhtegaralfikri/bosowa-smart-ocr/internal/common"
	"github.com/muhtegaralfikri/bosowa-smart-ocr/internal/extract"
	"github.com/muhtegaralfikri/bosowa-smart-ocr/internal/ocr"
)

// Config holds thresholds and behavior flags for the processor.
type Config struct {
	MinConfidence float32 // default 0.60
}

// Processor runs one raw OCR payload through decode, field extraction
// and presentation, and decides whether the result needs human review.
type Processor struct {
	logger *slog.Logger
	cfg    Config
	engine *extract.Engine
}

func NewProcessor(cfg Config, engine *extract.Engine, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MinConfidence <= 0 {
		cfg.MinConfidence = 0.60
	}
	return &Processor{logger: logger, cfg: cfg, engine: engine}
}

// Result is what the processor hands to persistence and presentation.
type Result struct {
	DocumentID  uuid.UUID
	Lines       []ocr.Line
	Fields      extract.Fields
	Display     extract.DisplayFields
	Confidence  float32
	NeedsReview bool
}

// Process extracts structured fields from a raw OCR response. A
// malformed payload is not an error: the result carries an empty field
// set and is flagged for review.
func (p *Processor) Process(ctx context.Context, raw []byte) Result {
	start := time.Now()
	id := uuid.New()
	logger := p.logger
	if reqID := common.RequestIDFromContext(ctx); reqID != "" {
		logger = logger.With("request_id", reqID)
	}

	if err := ocr.ValidatePayload(raw); err != nil {
		logger.Warn("ocr.payload.invalid", "document_id", id, "error", err)
	}
	lines := ocr.DecodeLines(raw)
	confidence := ocr.AggregateConfidence(lines)

	fields := p.engine.Extract(ctx, lines)
	display := p.engine.Present(fields)

	needsReview := fields.Reference() == "" ||
		fields.DocDate == nil ||
		confidence < p.cfg.MinConfidence

	logger.Info("pipeline.process.ok",
		"document_id", id,
		"lines", len(lines),
		"type", string(fields.Type),
		"reference", fields.Reference(),
		"confidence", confidence,
		"needs_review", needsReview,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return Result{
		DocumentID:  id,
		Lines:       lines,
		Fields:      fields,
		Display:     display,
		Confidence:  confidence,
		NeedsReview: needsReview,
	}
}

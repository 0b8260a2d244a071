package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/muhtegaralfikri/bosowa-smart-ocr/internal/common"
	"github.com/muhtegaralfikri/bosowa-smart-ocr/internal/extract"
	"github.com/muhtegaralfikri/bosowa-smart-ocr/internal/pipeline"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "extractfields <ocr-payload.json>")
		os.Exit(2)
	}

	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		logger.Error("read payload", "path", os.Args[1], "error", err)
		os.Exit(1)
	}

	cfg := common.LoadConfig()
	engine := extract.NewEngine(extract.Config{
		HeaderLines:     cfg.Extract.HeaderLines,
		InternalKeyword: cfg.Extract.InternalKeyword,
		InternalSender:  cfg.Extract.InternalSender,
	}, logger)
	p := pipeline.NewProcessor(pipeline.Config{
		MinConfidence: cfg.Review.MinConfidence,
	}, engine, logger)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	start := time.Now()
	res := p.Process(ctx, raw)

	out := struct {
		DocumentID  string                `json:"documentId"`
		Extracted   extract.DisplayFields `json:"extracted"`
		Confidence  float32               `json:"confidence"`
		NeedsReview bool                  `json:"needsReview"`
	}{
		DocumentID:  res.DocumentID.String(),
		Extracted:   res.Display,
		Confidence:  res.Confidence,
		NeedsReview: res.NeedsReview,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}

	logger.Info("extract OK",
		"document_id", res.DocumentID,
		"type", string(res.Fields.Type),
		"reference", res.Fields.Reference(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}

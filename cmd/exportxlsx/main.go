package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/muhtegaralfikri/bosowa-smart-ocr/internal/common"
	"github.com/muhtegaralfikri/bosowa-smart-ocr/internal/export"
	"github.com/muhtegaralfikri/bosowa-smart-ocr/internal/extract"
	"github.com/muhtegaralfikri/bosowa-smart-ocr/internal/pipeline"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) < 3 {
		logger.Error("usage", "cmd", "exportxlsx <out.xlsx> <ocr-payload.json>...")
		os.Exit(2)
	}
	outPath := os.Args[1]

	cfg := common.LoadConfig()
	engine := extract.NewEngine(extract.Config{
		HeaderLines:     cfg.Extract.HeaderLines,
		InternalKeyword: cfg.Extract.InternalKeyword,
		InternalSender:  cfg.Extract.InternalSender,
	}, logger)
	p := pipeline.NewProcessor(pipeline.Config{
		MinConfidence: cfg.Review.MinConfidence,
	}, engine, logger)
	svc := export.NewService(cfg.Export.SheetName, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	start := time.Now()
	results := make([]pipeline.Result, 0, len(os.Args)-2)
	for _, path := range os.Args[2:] {
		raw, err := os.ReadFile(path)
		if err != nil {
			logger.Error("read payload", "path", path, "error", err)
			os.Exit(1)
		}
		results = append(results, p.Process(ctx, raw))
	}

	b, err := svc.DocumentsXLSX(results)
	if err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(outPath, b, 0o644); err != nil {
		logger.Error("write workbook", "path", outPath, "error", err)
		os.Exit(1)
	}

	logger.Info("export OK",
		"path", outPath,
		"documents", len(results),
		"bytes", len(b),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}

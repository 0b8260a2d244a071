package extract

import (
	"context"
	"log/slog"
	"regexp"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/muhtegaralfikri/bosowa-smart-ocr/internal/ocr"
)

// Config holds the engine's heuristic knobs.
type Config struct {
	HeaderLines     int    // header window size, default 8
	InternalKeyword string // organization self-reference, default "bosowa"
	InternalSender  string // canonical internal-sender label
}

// Engine turns an ordered OCR line set into a structured field record.
// It is stateless and side-effect-free: calls are independent and may run
// concurrently from multiple goroutines.
type Engine struct {
	cfg        Config
	logger     *slog.Logger
	reInternal *regexp.Regexp
}

func NewEngine(cfg Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.HeaderLines <= 0 {
		cfg.HeaderLines = 8
	}
	if cfg.InternalKeyword == "" {
		cfg.InternalKeyword = "bosowa"
	}
	if cfg.InternalSender == "" {
		cfg.InternalSender = "BOSOWA (Internal)"
	}
	return &Engine{
		cfg:        cfg,
		logger:     logger,
		reInternal: regexp.MustCompile(`(?i)` + regexp.QuoteMeta(cfg.InternalKeyword)),
	}
}

// Extract runs the full pipeline: sanitize, evaluate the independent
// field extractors, classify. The reference, date, amount, contact and
// sender extractors only read the sanitized line set, so they run
// concurrently within the call.
func (e *Engine) Extract(ctx context.Context, items []ocr.Line) Fields {
	doc := newDocument(SanitizeLines(items), e.cfg.HeaderLines)

	var (
		ref             referenceResult
		docDate         *time.Time
		amount          *decimal.Decimal
		email, phone    string
		address         string
		sender, subject string
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		ref = extractReference(doc)
		return nil
	})
	g.Go(func() error {
		docDate = extractDate(doc)
		return nil
	})
	g.Go(func() error {
		amount = extractAmount(doc)
		return nil
	})
	g.Go(func() error {
		email = extractEmail(doc)
		phone = extractPhone(doc)
		address = extractAddress(doc)
		return nil
	})
	g.Go(func() error {
		sender = e.extractSender(doc)
		subject = extractSubject(doc)
		return nil
	})
	_ = g.Wait()

	f := Fields{
		InvoiceNo: ref.invoiceNo,
		LetterNo:  ref.letterNo,
		DocDate:   docDate,
		Sender:    sender,
		Subject:   subject,
		Address:   address,
		Email:     email,
		Phone:     phone,
		Amount:    amount,
		Type:      classify(ref.invoiceNo != "", doc.joined),
	}

	e.logger.Debug("extract.fields.ok",
		"lines", len(doc.lines),
		"type", string(f.Type),
		"reference", f.Reference(),
		"has_date", f.DocDate != nil,
		"has_amount", f.Amount != nil,
	)
	return f
}

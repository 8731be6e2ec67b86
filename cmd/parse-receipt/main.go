package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/receipt-parser/constants"
	"github.com/joseph-ayodele/receipt-parser/internal/entity"
	"github.com/joseph-ayodele/receipt-parser/internal/ocr"
	"github.com/joseph-ayodele/receipt-parser/internal/parser"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) > 2 {
		logger.Error("usage", "cmd", "parse-receipt [ocr-text-file]  (reads stdin when no file given)")
		os.Exit(2)
	}

	var raw []byte
	var err error
	source := "stdin"
	if len(os.Args) == 2 {
		source = os.Args[1]
		raw, err = os.ReadFile(source)
	} else {
		raw, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		logger.Error("read input", "source", source, "error", err)
		os.Exit(1)
	}

	traceID := uuid.NewString()
	text := ocr.Normalize(string(raw))
	logger.Info("parse.start",
		"trace_id", traceID, "source", source,
		"bytes", len(text), "ocr_quality", ocr.TextQuality(text))

	p := parser.New(parser.Config{Logger: logger})
	start := time.Now()
	rec := p.Parse(text)
	dur := time.Since(start)

	rec.RawText = "" // diagnostics only; keep CLI output compact
	out, err := entity.ToJSON(rec)
	if err != nil {
		logger.Error("marshal record", "trace_id", traceID, "error", err)
		os.Exit(1)
	}
	if err := entity.ValidateJSONAgainstSchema(entity.BuildReceiptJSONSchema(), out); err != nil {
		logger.Error("record failed schema validation", "trace_id", traceID, "error", err)
		os.Exit(1)
	}

	// Partially unreadable documents are a success, not a failure: report
	// what was recovered and its confidence.
	logger.Info("parse.ok",
		"trace_id", traceID,
		"restaurant_name", rec.RestaurantName,
		"total", moneyStr(rec),
		"items", len(rec.Items),
		"confidence_total", rec.ConfidenceScores[constants.FieldTotal],
		"confidence_name", rec.ConfidenceScores[constants.FieldRestaurantName],
		"confidence_items", rec.ConfidenceScores[constants.FieldItems],
		"duration_ms", dur.Milliseconds(),
	)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	var pretty map[string]any
	if err := json.Unmarshal(out, &pretty); err != nil {
		logger.Error("encode output", "trace_id", traceID, "error", err)
		os.Exit(1)
	}
	if err := enc.Encode(pretty); err != nil {
		logger.Error("encode output", "trace_id", traceID, "error", err)
		os.Exit(1)
	}
}

func moneyStr(rec *entity.Receipt) string {
	if rec.Total == nil {
		return ""
	}
	return rec.Total.StringFixed(2)
}

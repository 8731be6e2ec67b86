package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joseph-ayodele/receipt-parser/internal/async"
	"github.com/joseph-ayodele/receipt-parser/internal/entity"
	"github.com/joseph-ayodele/receipt-parser/internal/ocr"
	"github.com/joseph-ayodele/receipt-parser/internal/parser"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "receipt-batch <dir-of-ocr-txt-files>")
		os.Exit(2)
	}
	dir := os.Args[1]

	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Error("read dir", "dir", dir, "error", err)
		os.Exit(1)
	}
	var jobs []async.Job
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".txt") {
			continue
		}
		jobs = append(jobs, async.NewJob(filepath.Join(dir, e.Name())))
	}
	if len(jobs) == 0 {
		logger.Error("no .txt files found", "dir", dir)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	// one Parser, shared: Parse is safe for concurrent use
	p := parser.New(parser.Config{Logger: logger})
	pool := async.NewPool(getEnvAsInt("BATCH_WORKERS", 4), logger)

	start := time.Now()
	results := pool.Run(ctx, jobs, func(_ context.Context, job async.Job) error {
		raw, err := os.ReadFile(job.Path)
		if err != nil {
			return err
		}
		rec := p.Parse(ocr.Normalize(string(raw)))
		rec.RawText = ""
		out, err := entity.ToJSON(rec)
		if err != nil {
			return err
		}
		dst := strings.TrimSuffix(job.Path, filepath.Ext(job.Path)) + ".json"
		return os.WriteFile(dst, out, 0o644)
	})

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	logger.Info("batch.done",
		"dir", dir, "jobs", len(jobs), "failed", failed,
		"duration_ms", time.Since(start).Milliseconds())
	if failed > 0 {
		os.Exit(1)
	}
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

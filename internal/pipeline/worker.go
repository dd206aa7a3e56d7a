package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/dgallion1/outliner/internal/artifact"
	"github.com/dgallion1/outliner/internal/indexstore"
	"github.com/dgallion1/outliner/internal/outline"
	"github.com/dgallion1/outliner/internal/parser"
)

// Worker processes a single document job.
type Worker struct {
	writer *artifact.Writer
	index  *indexstore.Client // nil when publication is disabled
	stats  *ProcessStats
	log    *slog.Logger
}

func NewWorker(writer *artifact.Writer, index *indexstore.Client, stats *ProcessStats, log *slog.Logger) *Worker {
	return &Worker{
		writer: writer,
		index:  index,
		stats:  stats,
		log:    log,
	}
}

// Process runs the full outline pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "doc_id", job.DocID, "file", job.Filename)
	started := time.Now()

	// Phase 1: Parse
	job.SetStatus(StatusParsing, "parsing")
	p, err := parser.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	data := job.FileData()
	job.ContentHash = ContentHashHex(data)

	o, err := p.Parse(bytes.NewReader(data), job.Filename)
	if err != nil {
		log.Error("parse failed", "error", err)
		job.AddError(fmt.Sprintf("parse: %s", err))
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	job.SetResult(o)
	job.SetHeadings(len(o.Outline))
	log.Info("outline built", "title", o.Title, "headings", len(o.Outline))

	// Phase 2: Store artifact, then publish when an indexstore is wired.
	job.SetStatus(StatusStoring, "storing")
	base := strings.TrimSuffix(job.Filename, filepath.Ext(job.Filename))
	if _, err := w.writer.Write(base, o); err != nil {
		log.Error("artifact write failed", "error", err)
		job.AddError(fmt.Sprintf("store: %s", err))
		job.SetStatus(StatusFailed, "storing")
		return
	}

	hadErrors := false
	if w.index != nil {
		if err := w.publish(ctx, job, base, o); err != nil {
			log.Error("indexstore publish failed", "error", err)
			job.AddError(fmt.Sprintf("publish: %s", err))
			hadErrors = true
		} else {
			job.SetPublished(true)
		}
	}

	w.stats.Record(time.Since(started).Milliseconds())
	if hadErrors {
		job.SetStatus(StatusPartial, "done")
	} else {
		job.SetStatus(StatusCompleted, "done")
	}
}

// publish pushes the outline to the indexstore, retrying transient failures.
func (w *Worker) publish(ctx context.Context, job *Job, key string, o *outline.Outline) error {
	rec := indexstore.OutlineRecord{
		Source:    job.Filename,
		Title:     o.Title,
		Headings:  len(o.Outline),
		Outline:   o.Outline,
		IndexedAt: time.Now().UTC().Format(time.RFC3339),
	}

	var lastErr error
	for attempt := 0; attempt < MaxRetries; attempt++ {
		lastErr = w.index.PutOutline(ctx, key, rec)
		if lastErr == nil || !IsRetryable(lastErr) {
			break
		}
		w.log.Warn("retryable publish error", "job_id", job.ID, "attempt", attempt, "error", lastErr)
		select {
		case <-time.After(Backoff(attempt)):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return lastErr
}

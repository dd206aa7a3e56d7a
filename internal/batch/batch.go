// Package batch runs the headless filesystem mode: scan a fixed input
// directory for PDFs and write one outline artifact per document.
package batch

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgallion1/outliner/internal/artifact"
	"github.com/dgallion1/outliner/internal/layout"
	"github.com/dgallion1/outliner/internal/outline"
)

type Result struct {
	Processed int
	Total     int
}

// Run processes every .pdf file in inputDir and writes artifacts into
// outputDir. A missing input directory and an empty one both end the
// run cleanly; per-document failures are logged and skipped so one bad
// file cannot sink the batch.
func Run(inputDir, outputDir string, log *slog.Logger) (Result, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		log.Error("input directory unavailable", "dir", inputDir, "error", err)
		return Result{}, nil
	}

	var pdfs []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			pdfs = append(pdfs, e.Name())
		}
	}
	if len(pdfs) == 0 {
		log.Info("no pdf files found", "dir", inputDir)
		return Result{}, nil
	}

	writer := artifact.NewWriter(outputDir)
	res := Result{Total: len(pdfs)}
	for _, name := range pdfs {
		if err := processOne(filepath.Join(inputDir, name), name, writer); err != nil {
			log.Error("document failed", "file", name, "error", err)
			continue
		}
		log.Info("document processed", "file", name)
		res.Processed++
	}
	log.Info("batch complete", "successful", res.Processed, "total", res.Total)
	return res, nil
}

func processOne(path, name string, writer *artifact.Writer) error {
	src, release, err := layout.OpenPDF(path)
	if err != nil {
		return fmt.Errorf("open pdf: %w", err)
	}
	defer release()

	cands, err := layout.Scan(src)
	if err != nil {
		return fmt.Errorf("scan layout: %w", err)
	}

	o := outline.Build(cands, name)
	base := strings.TrimSuffix(name, filepath.Ext(name))
	if _, err := writer.Write(base, o); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}
	return nil
}

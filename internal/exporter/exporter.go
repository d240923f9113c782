package exporter

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gemexport/internal/dom"
	"gemexport/internal/download"
	"gemexport/internal/extractor"
	"gemexport/internal/formatter"
	"gemexport/internal/reporter"
)

// Result describes one finished export.
type Result struct {
	Filename string
	Content  string
	Length   int
}

// Exporter runs extract, assemble, save and report once per call.
type Exporter struct {
	extractor *extractor.Extractor
	saver     download.Saver
	reporter  *reporter.Reporter
	format    formatter.Format
	prefix    string
	filename  string
	now       func() time.Time
}

// Option customizes an Exporter.
type Option func(*Exporter)

// WithClock replaces time.Now for filename dating.
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) {
		e.now = now
	}
}

// WithFilename saves under name instead of the dated default.
func WithFilename(name string) Option {
	return func(e *Exporter) {
		e.filename = name
	}
}

// NewExporter creates an Exporter. The format decides the artifact extension
// and content type and should match the one the extractor renders with.
func NewExporter(ext *extractor.Extractor, saver download.Saver, rep *reporter.Reporter, format formatter.Format, prefix string, opts ...Option) *Exporter {
	e := &Exporter{
		extractor: ext,
		saver:     saver,
		reporter:  rep,
		format:    format,
		prefix:    prefix,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export extracts doc, saves the artifact and reports on it. An empty
// extraction is still a successful export.
func (e *Exporter) Export(ctx context.Context, doc dom.Document) (*Result, error) {
	lines, err := e.extractor.Extract(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to extract content: %w", err)
	}
	content := extractor.Assemble(lines)
	slog.Debug("content assembled", slog.Int("lines", len(lines)))

	filename := e.filename
	if filename == "" {
		filename = download.Filename(e.prefix, e.now(), e.format.Extension())
	}
	if err := e.saver.Save(ctx, filename, e.format.ContentType(), []byte(content)); err != nil {
		return nil, fmt.Errorf("failed to save %s: %w", filename, err)
	}

	if e.reporter != nil {
		e.reporter.Report(content)
	}

	return &Result{
		Filename: filename,
		Content:  content,
		Length:   extractor.Length(content),
	}, nil
}

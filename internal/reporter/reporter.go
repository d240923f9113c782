package reporter

import (
	"fmt"
	"io"
	"log/slog"

	"gemexport/internal/config"
	"gemexport/internal/extractor"
)

// Reporter writes the post-export summary to a console-like writer.
type Reporter struct {
	w             io.Writer
	labels        config.Labels
	previewLength int
	warnBelow     int
}

// New creates a Reporter writing to w.
func New(w io.Writer, labels config.Labels, previewLength, warnBelow int) *Reporter {
	return &Reporter{
		w:             w,
		labels:        labels,
		previewLength: previewLength,
		warnBelow:     warnBelow,
	}
}

// Report writes the success line, the character count and a preview.
func (r *Reporter) Report(content string) {
	length := extractor.Length(content)

	fmt.Fprintln(r.w, r.labels.Done)
	fmt.Fprintf(r.w, r.labels.Length+"\n", length)
	fmt.Fprintf(r.w, "\n"+r.labels.Preview+"\n%s\n", r.previewLength, Preview(content, r.previewLength))

	if length < r.warnBelow {
		slog.Warn(r.labels.Short, slog.Int("length", length))
	}
}

// Preview returns the first n characters of s.
func Preview(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

package extractor

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"gemexport/internal/config"
	"gemexport/internal/dom"
	"gemexport/internal/formatter"
)

// RuleWidth is the width of the "=" lines around the title.
const RuleWidth = 80

// fallbackThreshold is the buffer size below which the body fallback kicks in.
const fallbackThreshold = 5

// Options configures an Extractor.
type Options struct {
	Selectors    config.Selectors
	MinLength    int
	Labels       config.Labels
	Format       formatter.Format
	FallbackBody bool
}

// Extractor walks a document and builds the content buffer.
type Extractor struct {
	opts Options
}

// NewExtractor creates a new Extractor instance
func NewExtractor(opts Options) *Extractor {
	if opts.Format == "" {
		opts.Format = formatter.Text
	}
	return &Extractor{opts: opts}
}

// Extract returns the content buffer for doc: title banner, numbered message
// sections, then paragraph-like fragments of every content container.
func (e *Extractor) Extract(ctx context.Context, doc dom.Document) ([]string, error) {
	var lines []string

	title, err := e.extractTitle(ctx, doc)
	if err != nil {
		return nil, err
	}
	lines = append(lines, title...)

	messages, err := e.extractMessages(ctx, doc)
	if err != nil {
		return nil, err
	}
	lines = append(lines, messages...)

	paragraphs, err := e.extractContainers(ctx, doc)
	if err != nil {
		return nil, err
	}
	lines = append(lines, paragraphs...)

	if e.opts.FallbackBody && len(lines) < fallbackThreshold {
		body, err := e.extractBody(ctx, doc)
		if err != nil {
			return nil, err
		}
		lines = append(lines, body...)
	}

	return lines, nil
}

func (e *Extractor) extractTitle(ctx context.Context, doc dom.Document) ([]string, error) {
	node, ok, err := doc.First(ctx, e.opts.Selectors.Title)
	if err != nil {
		return nil, fmt.Errorf("failed to find title: %w", err)
	}
	if !ok {
		return nil, nil
	}

	// the title is always plain text, even in markdown mode
	text, err := node.Text(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read title: %w", err)
	}

	rule := strings.Repeat("=", RuleWidth)
	return []string{rule, e.opts.Labels.Title + strings.TrimSpace(text), rule, ""}, nil
}

// extractMessages numbers sections by position among all matches, so a
// dropped short fragment leaves a gap in the numbering.
func (e *Extractor) extractMessages(ctx context.Context, doc dom.Document) ([]string, error) {
	nodes, err := doc.All(ctx, e.opts.Selectors.Messages)
	if err != nil {
		return nil, fmt.Errorf("failed to find messages: %w", err)
	}

	var lines []string
	for idx, node := range nodes {
		text, err := e.fragment(ctx, node)
		if err != nil {
			return nil, err
		}
		if !e.keep(text) {
			continue
		}
		lines = append(lines, fmt.Sprintf("\n--- %s %d ---", e.opts.Labels.Section, idx+1), text, "")
	}
	return lines, nil
}

func (e *Extractor) extractContainers(ctx context.Context, doc dom.Document) ([]string, error) {
	containers, err := doc.All(ctx, e.opts.Selectors.Containers)
	if err != nil {
		return nil, fmt.Errorf("failed to find content containers: %w", err)
	}

	var lines []string
	for _, container := range containers {
		paragraphs, err := container.All(ctx, e.opts.Selectors.Paragraphs)
		if err != nil {
			return nil, fmt.Errorf("failed to find paragraphs: %w", err)
		}
		for _, p := range paragraphs {
			text, err := e.fragment(ctx, p)
			if err != nil {
				return nil, err
			}
			if !e.keep(text) {
				continue
			}
			lines = append(lines, text, "")
		}
	}
	return lines, nil
}

func (e *Extractor) extractBody(ctx context.Context, doc dom.Document) ([]string, error) {
	body, ok, err := doc.First(ctx, e.opts.Selectors.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to find body: %w", err)
	}
	if !ok {
		return nil, nil
	}
	text, err := body.Text(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}
	return []string{fmt.Sprintf("\n--- %s ---", e.opts.Labels.FullPage), text}, nil
}

func (e *Extractor) fragment(ctx context.Context, n dom.Node) (string, error) {
	text, err := formatter.Render(ctx, n, e.opts.Format)
	if err != nil {
		return "", fmt.Errorf("failed to render fragment: %w", err)
	}
	return strings.TrimSpace(text), nil
}

func (e *Extractor) keep(text string) bool {
	return Length(text) > e.opts.MinLength
}

// Assemble joins the content buffer into the output artifact.
func Assemble(lines []string) string {
	return strings.Join(lines, "\n")
}

// Length counts characters, not bytes.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}

package formatter

import (
	"context"
	"fmt"
	"strings"

	"gemexport/internal/dom"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
)

// Format selects how a matched element becomes a fragment.
type Format string

const (
	Text     Format = "text"
	Markdown Format = "markdown"
)

// Parse validates a --format value.
func Parse(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case Text, Markdown:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", s)
	}
}

// Extension is the artifact file extension for the format.
func (f Format) Extension() string {
	if f == Markdown {
		return "md"
	}
	return "txt"
}

// ContentType is the MIME type the artifact is saved with.
func (f Format) ContentType() string {
	if f == Markdown {
		return "text/markdown;charset=utf-8"
	}
	return "text/plain;charset=utf-8"
}

// Render returns the untrimmed fragment for n.
func Render(ctx context.Context, n dom.Node, f Format) (string, error) {
	switch f {
	case Markdown:
		html, err := n.HTML(ctx)
		if err != nil {
			return "", err
		}
		converter := md.NewConverter("", true, nil)
		// research answers often carry tables and strikethrough
		converter.Use(plugin.GitHubFlavored())
		markdown, err := converter.ConvertString(html)
		if err != nil {
			return "", fmt.Errorf("failed to convert HTML to Markdown: %w", err)
		}
		return markdown, nil
	case Text, "":
		return n.Text(ctx)
	default:
		return "", fmt.Errorf("unsupported output format: %s", f)
	}
}

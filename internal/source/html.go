package source

import (
	"context"
	"fmt"
	"io"
	"os"

	"gemexport/internal/dom"
)

// HTMLSource reads a saved page from a file or stdin.
type HTMLSource struct{}

func (s *HTMLSource) Name() string {
	return "html"
}

func (s *HTMLSource) Open(ctx context.Context, target string, opts Options) (*Opened, error) {
	var r io.Reader
	if target == "" || target == "-" {
		r = stdinOr(opts.Stdin)
	} else {
		f, err := os.Open(target)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", target, err)
		}
		defer f.Close()
		r = f
	}

	doc, err := dom.NewHTMLDocument(r)
	if err != nil {
		return nil, err
	}
	return &Opened{Doc: doc}, nil
}

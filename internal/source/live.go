package source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gemexport/internal/browser"
	"gemexport/internal/dom"
	"gemexport/internal/fetcher"
)

// LiveSource opens a URL in Chromium and exposes the rendered page.
type LiveSource struct{}

func (s *LiveSource) Name() string {
	return "live"
}

func (s *LiveSource) Open(ctx context.Context, target string, opts Options) (*Opened, error) {
	if err := opts.Fetch.Validate(); err != nil {
		return nil, err
	}

	b, err := browser.New(opts.Browser)
	if err != nil {
		return nil, err
	}

	result, err := fetcher.NewFetcher(b).Fetch(ctx, target, opts.Fetch)
	if err != nil {
		b.Close()
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}
	slog.Info("page ready", slog.String("title", result.Title), slog.String("url", result.URL), slog.Duration("load_time", result.LoadTime))

	if opts.Screenshot != "" {
		if err := fetcher.Screenshot(ctx, result.Page, opts.Screenshot); err != nil {
			slog.Warn("screenshot skipped", slog.Any("error", err))
		}
	}

	return &Opened{
		Doc:  dom.NewPageDocument(result.Page),
		Page: result.Page,
		close: func() error {
			return errors.Join(result.Page.Close(), b.Close())
		},
	}, nil
}

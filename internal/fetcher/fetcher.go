package fetcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gemexport/internal/browser"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// WaitStrategy wait strategy type
type WaitStrategy string

const (
	WaitStrategyLoad    WaitStrategy = "load"    // Wait for page to fully load
	WaitStrategyElement WaitStrategy = "element" // Wait for specific element to appear
	WaitStrategyTime    WaitStrategy = "time"    // Wait for fixed time
)

// Options controls navigation and waiting.
type Options struct {
	WaitFor    WaitStrategy
	WaitTarget string        // selector for element, milliseconds for time
	Timeout    time.Duration // navigation and wait timeout
	LoginWait  time.Duration // extra pause for a manual sign-in
}

// Validate checks the wait strategy and its target.
func (o Options) Validate() error {
	switch o.WaitFor {
	case WaitStrategyLoad:
	case WaitStrategyElement, WaitStrategyTime:
		if o.WaitTarget == "" {
			return fmt.Errorf("--wait-target is required when using '%s' wait strategy", o.WaitFor)
		}
	default:
		return fmt.Errorf("invalid wait strategy: %s", o.WaitFor)
	}
	if o.LoginWait < 0 {
		return fmt.Errorf("invalid login wait: %s", o.LoginWait)
	}
	return nil
}

// FetchResult fetch result
type FetchResult struct {
	Page     *rod.Page
	Title    string
	URL      string // final URL after redirects
	LoadTime time.Duration
}

// Fetcher page fetcher
type Fetcher struct {
	browser *browser.Browser
}

// NewFetcher creates a new Fetcher instance
func NewFetcher(browser *browser.Browser) *Fetcher {
	return &Fetcher{
		browser: browser,
	}
}

// Fetch opens url in a new page and waits until its content is ready.
// The caller owns the returned page.
func (f *Fetcher) Fetch(ctx context.Context, url string, opts Options) (*FetchResult, error) {
	startTime := time.Now()

	page, err := f.browser.NewPage()
	if err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	slog.Info("opening page", slog.String("url", url))
	if err := bounded(ctx, page, opts.Timeout).Navigate(url); err != nil {
		page.Close()
		return nil, fmt.Errorf("failed to navigate: %w", err)
	}

	if opts.LoginWait > 0 {
		slog.Info("waiting for sign-in in the browser window", slog.Duration("wait", opts.LoginWait))
		if err := sleep(ctx, opts.LoginWait); err != nil {
			page.Close()
			return nil, err
		}
	}

	if err := f.applyWaitStrategy(ctx, page, opts); err != nil {
		page.Close()
		return nil, fmt.Errorf("wait strategy failed: %w", err)
	}

	info, err := page.Context(ctx).Info()
	if err != nil {
		page.Close()
		return nil, fmt.Errorf("failed to get page info: %w", err)
	}

	return &FetchResult{
		Page:     page,
		Title:    info.Title,
		URL:      info.URL,
		LoadTime: time.Since(startTime),
	}, nil
}

// applyWaitStrategy applies wait strategy
func (f *Fetcher) applyWaitStrategy(ctx context.Context, page *rod.Page, opts Options) error {
	p := bounded(ctx, page, opts.Timeout)

	switch opts.WaitFor {
	case WaitStrategyElement:
		if opts.WaitTarget == "" {
			return fmt.Errorf("wait target is required for element strategy")
		}
		if _, err := p.Element(opts.WaitTarget); err != nil {
			return fmt.Errorf("failed to wait for element '%s': %w", opts.WaitTarget, err)
		}

	case WaitStrategyTime:
		if opts.WaitTarget == "" {
			return fmt.Errorf("wait target is required for time strategy")
		}
		duration, err := time.ParseDuration(opts.WaitTarget + "ms")
		if err != nil {
			return fmt.Errorf("invalid wait time '%s': %w", opts.WaitTarget, err)
		}
		return sleep(ctx, duration)

	default:
		if err := p.WaitLoad(); err != nil {
			return fmt.Errorf("failed to wait for page load: %w", err)
		}
		// Gemini renders the conversation after load; give XHR a chance to settle.
		wait := p.WaitRequestIdle(
			500*time.Millisecond, nil, nil,
			[]proto.NetworkResourceType{proto.NetworkResourceTypeImage, proto.NetworkResourceTypeMedia},
		)
		wait()
	}

	return nil
}

// Screenshot writes a full-page PNG of page to path.
func Screenshot(ctx context.Context, page *rod.Page, path string) error {
	img, err := page.Context(ctx).Screenshot(true, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return fmt.Errorf("failed to capture screenshot: %w", err)
	}
	if err := os.WriteFile(path, img, 0644); err != nil {
		return fmt.Errorf("failed to write screenshot: %w", err)
	}
	slog.Info("screenshot saved", slog.String("path", path))
	return nil
}

// bounded scopes page to ctx and, when set, the timeout.
func bounded(ctx context.Context, page *rod.Page, timeout time.Duration) *rod.Page {
	p := page.Context(ctx)
	if timeout > 0 {
		p = p.Timeout(timeout)
	}
	return p
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

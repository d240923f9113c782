package download

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-rod/rod"
)

// triggerJS saves a string through a transient download anchor.
const triggerJS = `(name, type, text) => {
	const blob = new Blob([text], { type: type });
	const url = URL.createObjectURL(blob);
	const a = document.createElement('a');
	a.href = url;
	a.download = name;
	a.style.display = 'none';
	document.body.appendChild(a);
	a.click();
	document.body.removeChild(a);
	setTimeout(() => URL.revokeObjectURL(url), 1000);
}`

// PageSaver triggers the download from inside a live page and moves the
// file the browser writes into Dir under the requested name.
type PageSaver struct {
	Page *rod.Page
	Dir  string
}

func (s *PageSaver) Save(ctx context.Context, filename, contentType string, data []byte) error {
	dir, err := filepath.Abs(s.Dir)
	if err != nil {
		return fmt.Errorf("failed to resolve download directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create download directory: %w", err)
	}

	wait := s.Page.Browser().Context(ctx).WaitDownload(dir)

	if _, err := s.Page.Context(ctx).Eval(triggerJS, filename, contentType, string(data)); err != nil {
		return fmt.Errorf("failed to trigger download: %w", err)
	}

	info := wait()
	if info == nil {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("download did not complete: %w", err)
		}
		return fmt.Errorf("download did not complete")
	}

	// the browser names the file after the download GUID
	path := filepath.Join(dir, filename)
	if err := os.Rename(filepath.Join(dir, info.GUID), path); err != nil {
		return fmt.Errorf("failed to rename downloaded file: %w", err)
	}
	slog.Info("artifact downloaded", slog.String("path", path), slog.String("content_type", contentType), slog.Int("bytes", len(data)))
	return nil
}

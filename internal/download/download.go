package download

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Saver makes an artifact available to the user as a local file.
type Saver interface {
	Save(ctx context.Context, filename, contentType string, data []byte) error
}

// Filename builds "<prefix><YYYY-MM-DD>.<ext>" from the UTC date of now.
func Filename(prefix string, now time.Time, ext string) string {
	return fmt.Sprintf("%s%s.%s", prefix, now.UTC().Format(time.DateOnly), ext)
}

// FileSaver writes artifacts into Dir.
type FileSaver struct {
	Dir string
}

// Save writes data to Dir/filename, creating Dir when needed.
func (s *FileSaver) Save(ctx context.Context, filename, contentType string, data []byte) error {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write to file: %w", err)
	}
	slog.Info("artifact saved", slog.String("path", path), slog.String("content_type", contentType), slog.Int("bytes", len(data)))
	return nil
}

// Saved is one recorded call to MemorySaver.Save.
type Saved struct {
	Filename    string
	ContentType string
	Data        []byte
}

// MemorySaver keeps saved artifacts in memory.
type MemorySaver struct {
	mu    sync.Mutex
	saves []Saved
}

func (s *MemorySaver) Save(ctx context.Context, filename, contentType string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves = append(s.saves, Saved{
		Filename:    filename,
		ContentType: contentType,
		Data:        append([]byte(nil), data...),
	})
	return nil
}

// Saves returns a copy of what has been saved so far.
func (s *MemorySaver) Saves() []Saved {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Saved(nil), s.saves...)
}

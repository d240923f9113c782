package source

import (
	"context"
	"io"
	"os"

	"gemexport/internal/browser"
	"gemexport/internal/dom"
	"gemexport/internal/fetcher"

	"github.com/go-rod/rod"
)

// Source opens a document root for a target.
type Source interface {
	Name() string
	Open(ctx context.Context, target string, opts Options) (*Opened, error)
}

// Options are shared by all sources; each reads what it needs.
type Options struct {
	Stdin      io.Reader // read when the target is "" or "-"
	Browser    browser.Config
	Fetch      fetcher.Options
	Screenshot string // live only: write a full-page PNG here
}

// Opened is an open document. Page is set only for live documents.
type Opened struct {
	Doc   dom.Document
	Page  *rod.Page
	close func() error
}

// Close releases whatever the source holds open.
func (o *Opened) Close() error {
	if o.close == nil {
		return nil
	}
	return o.close()
}

func stdinOr(r io.Reader) io.Reader {
	if r != nil {
		return r
	}
	return os.Stdin
}

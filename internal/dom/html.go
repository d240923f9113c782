package dom

import (
	"context"
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

// HTMLDocument is a Document over parsed, static HTML.
type HTMLDocument struct {
	doc *goquery.Document
}

// NewHTMLDocument parses HTML from r.
func NewHTMLDocument(r io.Reader) (*HTMLDocument, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return &HTMLDocument{doc: doc}, nil
}

// First returns the first element matching any of the selectors.
func (d *HTMLDocument) First(ctx context.Context, selectors []string) (Node, bool, error) {
	nodes, err := find(d.doc.Selection, selectors)
	if err != nil || len(nodes) == 0 {
		return nil, false, err
	}
	return nodes[0], true, nil
}

// All returns every element matching any of the selectors.
func (d *HTMLDocument) All(ctx context.Context, selectors []string) ([]Node, error) {
	return find(d.doc.Selection, selectors)
}

// htmlNode wraps a single-element goquery selection.
type htmlNode struct {
	sel *goquery.Selection
}

func (n *htmlNode) Text(ctx context.Context) (string, error) {
	if n.sel.Length() == 0 {
		return "", nil
	}
	return InnerText(n.sel.Get(0)), nil
}

func (n *htmlNode) HTML(ctx context.Context) (string, error) {
	html, err := goquery.OuterHtml(n.sel)
	if err != nil {
		return "", fmt.Errorf("failed to render element HTML: %w", err)
	}
	return html, nil
}

func (n *htmlNode) All(ctx context.Context, selectors []string) ([]Node, error) {
	return find(n.sel, selectors)
}

func find(root *goquery.Selection, selectors []string) ([]Node, error) {
	if len(selectors) == 0 {
		return nil, nil
	}
	m, err := cascadia.Compile(Group(selectors))
	if err != nil {
		return nil, fmt.Errorf("invalid selector group %q: %w", Group(selectors), err)
	}

	var nodes []Node
	root.FindMatcher(m).Each(func(i int, s *goquery.Selection) {
		nodes = append(nodes, &htmlNode{sel: s})
	})
	return nodes, nil
}

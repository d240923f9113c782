package dom

import (
	"context"
	"fmt"

	"github.com/go-rod/rod"
)

// PageDocument is a Document over a live browser page. Text comes from the
// element's real innerText.
type PageDocument struct {
	page *rod.Page
}

// NewPageDocument wraps a loaded page.
func NewPageDocument(page *rod.Page) *PageDocument {
	return &PageDocument{page: page}
}

// First returns the first element matching any of the selectors, without
// waiting for one to appear.
func (d *PageDocument) First(ctx context.Context, selectors []string) (Node, bool, error) {
	if len(selectors) == 0 {
		return nil, false, nil
	}
	has, el, err := d.page.Context(ctx).Has(Group(selectors))
	if err != nil {
		return nil, false, fmt.Errorf("failed to query %q: %w", Group(selectors), err)
	}
	if !has {
		return nil, false, nil
	}
	return &pageNode{el: el}, true, nil
}

// All returns every element matching any of the selectors.
func (d *PageDocument) All(ctx context.Context, selectors []string) ([]Node, error) {
	if len(selectors) == 0 {
		return nil, nil
	}
	els, err := d.page.Context(ctx).Elements(Group(selectors))
	if err != nil {
		return nil, fmt.Errorf("failed to query %q: %w", Group(selectors), err)
	}
	return wrapElements(els), nil
}

type pageNode struct {
	el *rod.Element
}

func (n *pageNode) Text(ctx context.Context) (string, error) {
	text, err := n.el.Context(ctx).Text()
	if err != nil {
		return "", fmt.Errorf("failed to get element text: %w", err)
	}
	return text, nil
}

func (n *pageNode) HTML(ctx context.Context) (string, error) {
	html, err := n.el.Context(ctx).HTML()
	if err != nil {
		return "", fmt.Errorf("failed to get element HTML: %w", err)
	}
	return html, nil
}

func (n *pageNode) All(ctx context.Context, selectors []string) ([]Node, error) {
	if len(selectors) == 0 {
		return nil, nil
	}
	els, err := n.el.Context(ctx).Elements(Group(selectors))
	if err != nil {
		return nil, fmt.Errorf("failed to query %q: %w", Group(selectors), err)
	}
	return wrapElements(els), nil
}

func wrapElements(els rod.Elements) []Node {
	nodes := make([]Node, 0, len(els))
	for _, el := range els {
		nodes = append(nodes, &pageNode{el: el})
	}
	return nodes
}

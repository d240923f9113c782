package dom

import (
	"context"
	"strings"
)

// Document is the root the extractor queries. Implementations return matches
// in document order, each element at most once per query.
type Document interface {
	// First returns the first element matching any of the selectors.
	First(ctx context.Context, selectors []string) (Node, bool, error)
	// All returns every element matching any of the selectors.
	All(ctx context.Context, selectors []string) ([]Node, error)
}

// Node is a single element of a Document.
type Node interface {
	// Text returns the rendered text of the element, like innerText.
	Text(ctx context.Context) (string, error)
	// HTML returns the outer HTML of the element.
	HTML(ctx context.Context) (string, error)
	// All returns descendants matching any of the selectors.
	All(ctx context.Context, selectors []string) ([]Node, error)
}

// Group joins an ordered selector list into one selector group.
func Group(selectors []string) string {
	return strings.Join(selectors, ", ")
}

package dom_test

import (
	"context"
	"strings"
	"testing"

	"gemexport/internal/dom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, html string) *dom.HTMLDocument {
	t.Helper()
	doc, err := dom.NewHTMLDocument(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestInnerText(t *testing.T) {
	testCases := []struct {
		name     string
		html     string
		expected string
	}{
		{
			name:     "inline_whitespace_collapses",
			html:     "<div>Hello   <b>bold</b>\n world</div>",
			expected: "Hello bold world",
		},
		{
			name:     "paragraphs_are_separated_by_a_blank_line",
			html:     "<div><p>One</p><p>Two</p></div>",
			expected: "One\n\nTwo",
		},
		{
			name:     "list_items_break_lines",
			html:     "<div><ul>\n  <li>one</li>\n  <li>two</li>\n</ul></div>",
			expected: "one\ntwo",
		},
		{
			name:     "br_breaks_a_line",
			html:     "<div>Line<br>Break</div>",
			expected: "Line\nBreak",
		},
		{
			name:     "scripts_and_hidden_elements_are_skipped",
			html:     "<div>shown<script>x()</script><style>p{}</style><span hidden>gone</span></div>",
			expected: "shown",
		},
		{
			name:     "pre_keeps_whitespace",
			html:     "<div><pre>a\n  b</pre></div>",
			expected: "a\n  b",
		},
		{
			name:     "table_cells_are_tab_separated",
			html:     "<div><table><tr><td>a</td><td>b</td></tr><tr><td>c</td><td>d</td></tr></table></div>",
			expected: "a\tb\nc\td",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doc := parse(t, tc.html)
			node, ok, err := doc.First(context.Background(), []string{"div"})
			require.NoError(t, err)
			require.True(t, ok)

			text, err := node.Text(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tc.expected, text)
		})
	}
}

func TestHTMLDocument_All(t *testing.T) {
	ctx := context.Background()
	doc := parse(t, `<div class="message">a</div><article>b</article><div role="article" class="message">c</div>`)

	t.Run("document_order_without_duplicates", func(t *testing.T) {
		nodes, err := doc.All(ctx, []string{`[role="article"]`, ".message", "article"})
		require.NoError(t, err)
		require.Len(t, nodes, 3)

		var texts []string
		for _, n := range nodes {
			text, err := n.Text(ctx)
			require.NoError(t, err)
			texts = append(texts, text)
		}
		assert.Equal(t, []string{"a", "b", "c"}, texts)
	})

	t.Run("empty_selector_list_matches_nothing", func(t *testing.T) {
		nodes, err := doc.All(ctx, nil)
		assert.NoError(t, err)
		assert.Empty(t, nodes)
	})

	t.Run("invalid_selector_is_an_error", func(t *testing.T) {
		_, err := doc.All(ctx, []string{"[class*="})
		assert.Error(t, err)
	})

	t.Run("missing_first_is_not_an_error", func(t *testing.T) {
		_, ok, err := doc.First(ctx, []string{"h1"})
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestHTMLNode(t *testing.T) {
	ctx := context.Background()
	doc := parse(t, `<main><p>first</p><section><li>second</li></section></main><p>outside</p>`)

	main, ok, err := doc.First(ctx, []string{"main"})
	require.NoError(t, err)
	require.True(t, ok)

	nodes, err := main.All(ctx, []string{"p", "li"})
	require.NoError(t, err)
	require.Len(t, nodes, 2, "only descendants are searched")

	html, err := nodes[0].HTML(ctx)
	require.NoError(t, err)
	assert.Equal(t, "<p>first</p>", html)
}

func TestGroup(t *testing.T) {
	assert.Equal(t, `h1, [role="heading"]`, dom.Group([]string{"h1", `[role="heading"]`}))
	assert.Equal(t, "", dom.Group(nil))
}

package source_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gemexport/internal/source"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	testCases := []struct {
		target   string
		expected string
	}{
		{target: "https://gemini.google.com/gem/2978c017455c/f84d19cbb2532ab8", expected: "live"},
		{target: "HTTP://example.com", expected: "live"},
		{target: "saved.html", expected: "html"},
		{target: "-", expected: "html"},
		{target: "", expected: "html"},
	}

	for _, tc := range testCases {
		t.Run(tc.target, func(t *testing.T) {
			assert.Equal(t, tc.expected, source.Resolve(tc.target).Name())
		})
	}
}

func TestGet(t *testing.T) {
	s, ok := source.Get("HTML")
	require.True(t, ok)
	assert.Equal(t, "html", s.Name())

	_, ok = source.Get("selenium")
	assert.False(t, ok)
}

func TestHTMLSource(t *testing.T) {
	ctx := context.Background()
	s := &source.HTMLSource{}

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "page.html")
		require.NoError(t, os.WriteFile(path, []byte("<h1>From file</h1>"), 0644))

		opened, err := s.Open(ctx, path, source.Options{})
		require.NoError(t, err)
		defer opened.Close()
		assert.Nil(t, opened.Page)

		node, ok, err := opened.Doc.First(ctx, []string{"h1"})
		require.NoError(t, err)
		require.True(t, ok)
		text, err := node.Text(ctx)
		require.NoError(t, err)
		assert.Equal(t, "From file", text)
	})

	t.Run("stdin", func(t *testing.T) {
		opened, err := s.Open(ctx, "-", source.Options{Stdin: strings.NewReader("<h1>From stdin</h1>")})
		require.NoError(t, err)
		defer opened.Close()

		node, ok, err := opened.Doc.First(ctx, []string{"h1"})
		require.NoError(t, err)
		require.True(t, ok)
		text, err := node.Text(ctx)
		require.NoError(t, err)
		assert.Equal(t, "From stdin", text)
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := s.Open(ctx, filepath.Join(t.TempDir(), "missing.html"), source.Options{})
		assert.Error(t, err)
	})
}

func TestLiveSource_RejectsInvalidWait(t *testing.T) {
	s := &source.LiveSource{}
	opts := source.Options{}
	opts.Fetch.WaitFor = "forever"

	// validation happens before any browser is launched
	_, err := s.Open(context.Background(), "https://example.com", opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid wait strategy")
}

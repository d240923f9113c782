package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"gemexport/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gemexport.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("empty_path_returns_defaults", func(t *testing.T) {
		cfg, err := config.Load("")
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("missing_file_is_an_error", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("file_overrides_defaults", func(t *testing.T) {
		path := writeConfig(t, `
language: en
min_length: 3
selectors:
  messages:
    - ".chat-turn"
`)
		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "en", cfg.Language)
		assert.Equal(t, 3, cfg.MinLength)
		assert.Equal(t, []string{".chat-turn"}, cfg.Selectors.Messages)
		assert.Equal(t, config.Default().Selectors.Containers, cfg.Selectors.Containers)
		assert.Equal(t, 500, cfg.PreviewLength)
	})

	t.Run("invalid_selector_is_rejected", func(t *testing.T) {
		path := writeConfig(t, "selectors:\n  title:\n    - \"[role=\"\n")
		_, err := config.Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid title selector")
	})

	t.Run("malformed_yaml_is_rejected", func(t *testing.T) {
		path := writeConfig(t, "min_length: [")
		_, err := config.Load(path)
		assert.Error(t, err)
	})
}

func TestLoadDefault(t *testing.T) {
	t.Run("missing_file_returns_defaults", func(t *testing.T) {
		cfg, err := config.LoadDefault(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("existing_file_is_read", func(t *testing.T) {
		cfg, err := config.LoadDefault(writeConfig(t, "preview_length: 80\n"))
		require.NoError(t, err)
		assert.Equal(t, 80, cfg.PreviewLength)
	})

	t.Run("invalid_file_is_still_rejected", func(t *testing.T) {
		_, err := config.LoadDefault(writeConfig(t, "language: fr\n"))
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*config.Config)
		errMsg string
	}{
		{name: "defaults", mutate: func(*config.Config) {}},
		{name: "negative_min_length", mutate: func(c *config.Config) { c.MinLength = -1 }, errMsg: "min_length"},
		{name: "negative_preview", mutate: func(c *config.Config) { c.PreviewLength = -5 }, errMsg: "preview_length"},
		{name: "unknown_language", mutate: func(c *config.Config) { c.Language = "fr" }, errMsg: "unsupported language"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

func TestLabels(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "제목: ", cfg.Labels().Title)
	assert.Equal(t, "섹션", cfg.Labels().Section)

	cfg.Language = "en"
	assert.Equal(t, "Title: ", cfg.Labels().Title)
	assert.Equal(t, "Section", cfg.Labels().Section)
}

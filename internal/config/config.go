package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/andybalholm/cascadia"
	"gopkg.in/yaml.v3"
)

// Selectors are the ordered selector groups the extractor queries.
type Selectors struct {
	Title      []string `yaml:"title"`
	Messages   []string `yaml:"messages"`
	Containers []string `yaml:"containers"`
	Paragraphs []string `yaml:"paragraphs"`
	Body       []string `yaml:"body"`
}

// Config holds everything that shapes an export.
type Config struct {
	Selectors      Selectors `yaml:"selectors"`
	MinLength      int       `yaml:"min_length"`
	Language       string    `yaml:"language"`
	FilenamePrefix string    `yaml:"filename_prefix"`
	PreviewLength  int       `yaml:"preview_length"`
	WarnBelow      int       `yaml:"warn_below"`
}

// Default returns the selector set and limits used against Gemini pages.
func Default() *Config {
	return &Config{
		Selectors: Selectors{
			Title: []string{"h1", `[role="heading"]`},
			Messages: []string{
				`[data-test-id*="message"]`,
				".message",
				`[class*="message"]`,
				"article",
				`[role="article"]`,
			},
			Containers: []string{"main", `[role="main"]`, ".content", `[class*="content"]`},
			Paragraphs: []string{"p", "pre", "code", "li"},
			Body:       []string{"body"},
		},
		MinLength:      10,
		Language:       "ko",
		FilenamePrefix: "gemini_research_",
		PreviewLength:  500,
		WarnBelow:      100,
	}
}

// Load reads a YAML config from path over the defaults. An empty path yields
// the defaults; a missing file is an error.
func Load(path string) (*Config, error) {
	return load(path, false)
}

// LoadDefault is Load for a path that was not asked for explicitly, such as
// one taken from the environment: a missing file yields the defaults.
func LoadDefault(path string) (*Config, error) {
	return load(path, true)
}

func load(path string, missingOK bool) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && missingOK {
		slog.Debug("config file not found, using defaults", slog.String("path", path))
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks limits, language and that every selector compiles.
func (c *Config) Validate() error {
	if c.MinLength < 0 {
		return fmt.Errorf("min_length must not be negative: %d", c.MinLength)
	}
	if c.PreviewLength < 0 {
		return fmt.Errorf("preview_length must not be negative: %d", c.PreviewLength)
	}
	if _, ok := labels[c.Language]; !ok {
		return fmt.Errorf("unsupported language: %s", c.Language)
	}

	groups := map[string][]string{
		"title":      c.Selectors.Title,
		"messages":   c.Selectors.Messages,
		"containers": c.Selectors.Containers,
		"paragraphs": c.Selectors.Paragraphs,
		"body":       c.Selectors.Body,
	}
	for name, sels := range groups {
		for _, sel := range sels {
			if _, err := cascadia.Compile(sel); err != nil {
				return fmt.Errorf("invalid %s selector %q: %w", name, sel, err)
			}
		}
	}
	return nil
}

// Labels returns the output labels for the configured language.
func (c *Config) Labels() Labels {
	if l, ok := labels[c.Language]; ok {
		return l
	}
	return labels["ko"]
}

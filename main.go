package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"gemexport/internal/browser"
	"gemexport/internal/config"
	"gemexport/internal/download"
	"gemexport/internal/exporter"
	"gemexport/internal/extractor"
	"gemexport/internal/fetcher"
	"gemexport/internal/formatter"
	"gemexport/internal/reporter"
	"gemexport/internal/source"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var version = "dev"

var (
	outputDir       string
	outputFile      string
	outputFormat    string
	language        string
	configPath      string
	waitFor         string
	waitTarget      string
	timeout         time.Duration
	loginWait       time.Duration
	showUI          bool
	proxyURL        string
	userDataDir     string
	screenshot      string
	browserDownload bool
	fallbackBody    bool
	verbose         bool
)

func main() {
	// .env must be loaded before flag defaults read the environment
	_ = godotenv.Load()

	var rootCmd = &cobra.Command{
		Use:     "gemexport [URL|FILE|-]",
		Short:   "Export the text of a Gemini Gem research session",
		Version: version,
		Long: `gemexport extracts the visible text of a Gemini "Gem" research session and
saves it as gemini_research_YYYY-MM-DD.txt. The page is either opened live in
Chromium (sign in with --showui --login-wait) or read from a saved HTML file.`,
		Example: `  # Open the session live, sign in by hand, then export
  gemexport --showui --login-wait 30s https://gemini.google.com/gem/2978c017455c/f84d19cbb2532ab8

  # Reuse a signed-in Chrome profile and let the page itself download the file
  gemexport --user-data-dir ~/.config/google-chrome --browser-download https://gemini.google.com/gem/...

  # Export a page saved from the browser
  gemexport -o exports saved_session.html

  # Save under an explicit file name
  gemexport -O research/nvda_deep_dive.txt saved_session.html

  # Markdown with English labels, from stdin
  gemexport -f markdown --lang en - < saved_session.html`,
		Args:         cobra.MaximumNArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "o", ".", "Directory the artifact is saved to")
	rootCmd.Flags().StringVarP(&outputFile, "output", "O", "", "Artifact file path, overrides --output-dir and the dated filename")
	rootCmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Fragment format (text, markdown)")
	rootCmd.Flags().StringVar(&language, "lang", "", "Label language ("+strings.Join(config.Languages(), ", ")+"), overrides the config file")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", os.Getenv("GEMEXPORT_CONFIG"), "YAML file with selectors and limits, defaults to GEMEXPORT_CONFIG env var")
	rootCmd.Flags().StringVarP(&waitFor, "wait-for", "w", "load", "Wait strategy for live pages (load, element, time)")
	rootCmd.Flags().StringVarP(&waitTarget, "wait-target", "T", "", "Wait target (selector for 'element' strategy, milliseconds for 'time' strategy)")
	rootCmd.Flags().DurationVarP(&timeout, "timeout", "t", 60*time.Second, "Navigation and wait timeout")
	rootCmd.Flags().DurationVar(&loginWait, "login-wait", 0, "Pause after navigation to sign in by hand (e.g. 30s)")
	rootCmd.Flags().BoolVar(&showUI, "showui", false, "Show browser UI (disable headless mode)")
	rootCmd.Flags().StringVarP(&proxyURL, "proxy", "p", os.Getenv("GEMEXPORT_PROXY"), "Proxy URL (e.g. http://127.0.0.1:7890), defaults to GEMEXPORT_PROXY env var")
	rootCmd.Flags().StringVar(&userDataDir, "user-data-dir", "", "Chromium profile directory to reuse a signed-in session")
	rootCmd.Flags().StringVar(&screenshot, "screenshot", "", "Write a full-page PNG of the live page to this path")
	rootCmd.Flags().BoolVar(&browserDownload, "browser-download", false, "Let the live page download the file instead of writing it directly")
	rootCmd.Flags().BoolVar(&fallbackBody, "fallback-body", false, "Append the whole page text when almost nothing matched")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	setupLogging(verbose)

	target := "-"
	if len(args) == 1 {
		target = args[0]
	}

	loadConfig := config.LoadDefault
	if cmd.Flags().Changed("config") {
		loadConfig = config.Load
	}
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if language != "" {
		cfg.Language = language
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	format, err := formatter.Parse(outputFormat)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	src := source.Resolve(target)
	opened, err := src.Open(ctx, target, source.Options{
		Stdin: cmd.InOrStdin(),
		Browser: browser.Config{
			Headless:    !showUI,
			ProxyURL:    proxyURL,
			UserDataDir: userDataDir,
		},
		Fetch: fetcher.Options{
			WaitFor:    fetcher.WaitStrategy(waitFor),
			WaitTarget: waitTarget,
			Timeout:    timeout,
			LoginWait:  loginWait,
		},
		Screenshot: screenshot,
	})
	if err != nil {
		return err
	}
	defer opened.Close()

	dir, filename := outputTarget(outputDir, outputFile)

	var saver download.Saver = &download.FileSaver{Dir: dir}
	if browserDownload {
		if opened.Page != nil {
			saver = &download.PageSaver{Page: opened.Page, Dir: dir}
		} else {
			slog.Warn("--browser-download needs a live page, writing the file directly")
		}
	}

	labels := cfg.Labels()
	ext := extractor.NewExtractor(extractor.Options{
		Selectors:    cfg.Selectors,
		MinLength:    cfg.MinLength,
		Labels:       labels,
		Format:       format,
		FallbackBody: fallbackBody,
	})
	rep := reporter.New(cmd.ErrOrStderr(), labels, cfg.PreviewLength, cfg.WarnBelow)

	var opts []exporter.Option
	if filename != "" {
		opts = append(opts, exporter.WithFilename(filename))
	}
	result, err := exporter.NewExporter(ext, saver, rep, format, cfg.FilenamePrefix, opts...).Export(ctx, opened.Doc)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Output written to: %s\n", filepath.Join(dir, result.Filename))
	return nil
}

// outputTarget splits an explicit --output path into directory and file
// name. Without one the artifact goes to outputDir under the dated name.
func outputTarget(outputDir, output string) (dir, filename string) {
	if output == "" {
		return outputDir, ""
	}
	return filepath.Dir(output), filepath.Base(output)
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// -----------------------------------------------------------------------
// Doceo - Convert PDF documents to Marp presentation slides
// -----------------------------------------------------------------------

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/doceo/internal/common"
	"github.com/ternarybob/doceo/internal/interfaces"
	"github.com/ternarybob/doceo/internal/models"
	"github.com/ternarybob/doceo/internal/services/extract"
	"github.com/ternarybob/doceo/internal/services/llm"
	"github.com/ternarybob/doceo/internal/services/pdf"
	"github.com/ternarybob/doceo/internal/storage/badger"
)

// configPaths is a custom flag type that allows multiple -config flags
type configPaths []string

func (c *configPaths) String() string {
	return fmt.Sprintf("%v", *c)
}

func (c *configPaths) Set(value string) error {
	*c = append(*c, value)
	return nil
}

var (
	// Command-line flags
	configFiles  configPaths // Multiple -config flags supported
	style        = flag.String("style", "", "Presentation style: default, minimal, academic (overrides config)")
	language     = flag.String("language", "", "Output language: en, ja (overrides config)")
	slides       = flag.Int("slides", 0, "Target number of slides, more slides = more detail (overrides config)")
	pageRange    = flag.String("pages", "", "Page range to extract, e.g. '66-100'")
	provider     = flag.String("provider", "", "LLM provider: claude, gemini (overrides config)")
	model        = flag.String("model", "", "Model name, e.g. claude-sonnet-4-20250514 (overrides config)")
	saveText     = flag.String("save-text", "", "Optional path to save the extracted document text")
	showVersion  = flag.Bool("version", false, "Print version information")
	showVersionV = flag.Bool("v", false, "Print version information (shorthand)")

	// Global state
	config *common.Config
	logger arbor.ILogger
)

func init() {
	// Register custom flag for multiple config files
	flag.Var(&configFiles, "config", "Configuration file path (can be specified multiple times, later files override earlier ones)")
	flag.Var(&configFiles, "c", "Configuration file path (shorthand)")
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] input.pdf output.md\n\nFlags:\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	common.InstallCrashHandler("")
	defer common.RecoverWithCrashFile()

	flag.Usage = usage
	flag.Parse()

	// Handle version flag
	if *showVersion || *showVersionV {
		fmt.Printf("Doceo version %s\n", common.GetVersion())
		os.Exit(0)
	}

	if flag.NArg() != 2 {
		usage()
		os.Exit(2)
	}
	inputPath := flag.Arg(0)
	outputPath := flag.Arg(1)

	// Startup sequence (REQUIRED ORDER):
	// 1. Load config (defaults -> file1 -> file2 -> ... -> env)
	// 2. Apply CLI overrides (highest priority)
	// 3. Initialize logger
	// 4. Print banner
	var err error

	// Auto-discover config file if not specified
	if len(configFiles) == 0 {
		if _, err := os.Stat("doceo.toml"); err == nil {
			configFiles = append(configFiles, "doceo.toml")
		}
	}

	config, err = common.LoadFromFiles(configFiles...)
	if err != nil {
		tempLogger := arbor.NewLogger()
		tempLogger.Fatal().Strs("paths", configFiles).Err(err).Msg("Failed to load configuration files")
		os.Exit(1)
	}

	applyFlagOverrides(config)

	logger = common.InitLogger(config)

	common.PrintBanner(common.GetVersion())

	logger = logger.WithCorrelationId(common.NewRunID())

	if err := run(inputPath, outputPath); err != nil {
		logger.Fatal().Err(err).Msg("Conversion failed")
		os.Exit(1)
	}
}

// applyFlagOverrides applies command-line flag overrides to config
func applyFlagOverrides(config *common.Config) {
	if *style != "" {
		config.Output.Style = *style
	}
	if *language != "" {
		config.Output.Language = *language
	}
	if *slides > 0 {
		config.Output.TargetSlides = *slides
	}
	if *provider != "" {
		config.LLM.DefaultProvider = common.LLMProvider(*provider)
	}
	if *model != "" {
		switch llmProviderForModel(*model) {
		case common.LLMProviderGemini:
			config.Gemini.Model = *model
		default:
			config.Claude.Model = *model
		}
	}
}

// llmProviderForModel picks the config section a -model flag belongs to.
func llmProviderForModel(model string) common.LLMProvider {
	if strings.HasPrefix(strings.ToLower(model), "gemini") {
		return common.LLMProviderGemini
	}
	return common.LLMProviderClaude
}

func run(inputPath, outputPath string) error {
	if _, err := os.Stat(inputPath); err != nil {
		return fmt.Errorf("input file not found: %s", inputPath)
	}
	if !strings.EqualFold(filepath.Ext(inputPath), ".pdf") {
		return fmt.Errorf("input file must be a PDF: %s", inputPath)
	}

	request, err := buildRequest()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Open the document
	doc, err := pdf.Open(inputPath, logger)
	if err != nil {
		return err
	}
	defer doc.Close()

	meta := doc.Metadata()
	if meta.IsEncrypted {
		return fmt.Errorf("PDF is encrypted: %s", inputPath)
	}

	logger.Info().
		Str("input", inputPath).
		Int("pages", meta.PageCount).
		Int64("file_size", meta.FileSize).
		Msg("Opened PDF document")

	if meta.PageCount > config.Extract.PageWarnThreshold && request.Pages == nil {
		logger.Warn().
			Int("pages", meta.PageCount).
			Msg("Large document; processing everything may be slow. Consider -pages to extract specific chapters (e.g. -pages 10-30)")
	}

	// Extract and assemble the document body
	extractSvc := extract.NewService(extract.HeuristicsFromConfig(config.Extract.Tables), logger)
	body, err := extractSvc.BuildDocument(ctx, doc, request.Pages)
	if err != nil {
		return err
	}
	if strings.TrimSpace(body) == "" {
		return fmt.Errorf("no text could be extracted from the PDF")
	}

	logger.Info().Int("characters", len(body)).Msg("Extracted document text")

	if *saveText != "" {
		if err := writeFile(*saveText, body); err != nil {
			return fmt.Errorf("failed to save extracted text: %w", err)
		}
		logger.Info().Str("path", *saveText).Msg("Extracted text saved")
	}

	// Convert to Marp
	cache, err := openCache()
	if err != nil {
		return err
	}
	if cache != nil {
		defer cache.Close()
	}

	factory := llm.NewProviderFactory(&config.Claude, &config.Gemini, &config.LLM, logger)
	defer factory.Close()

	converter := llm.NewMarpService(factory, cache, logger)

	result, err := converter.ConvertToMarp(ctx, body, request)
	if err != nil {
		return err
	}

	if err := writeFile(outputPath, result.Markdown); err != nil {
		return fmt.Errorf("failed to write presentation: %w", err)
	}

	logger.Info().
		Str("output", outputPath).
		Str("provider", result.Provider).
		Str("model", result.Model).
		Int("slide_count", result.SlideCount).
		Bool("cached", result.Cached).
		Msg("Marp presentation saved")

	fmt.Printf("\nConversion completed successfully!\n")
	fmt.Printf("\nTo view the presentation, use Marp CLI or VS Code with the Marp extension:\n")
	fmt.Printf("  marp %s\n", outputPath)

	return nil
}

// buildRequest assembles the conversion request from config and flags.
func buildRequest() (*models.ConversionRequest, error) {
	request := &models.ConversionRequest{
		Style:        config.Output.Style,
		Language:     config.Output.Language,
		TargetSlides: config.Output.TargetSlides,
		Provider:     string(config.LLM.DefaultProvider),
	}

	if *pageRange != "" {
		pages, err := models.ParsePageRange(*pageRange)
		if err != nil {
			return nil, err
		}
		request.Pages = pages
		logger.Info().Int("start", pages.Start).Int("end", pages.End).Msg("Extracting page range")
	}

	if err := request.Validate(); err != nil {
		return nil, err
	}

	return request, nil
}

// openCache opens the conversion cache when enabled, nil otherwise.
func openCache() (interfaces.ConversionCache, error) {
	if !config.Cache.Enabled {
		return nil, nil
	}

	db, err := badger.NewBadgerDB(logger, &config.Cache)
	if err != nil {
		return nil, fmt.Errorf("failed to open conversion cache: %w", err)
	}

	return badger.NewConversionCacheStorage(db, logger), nil
}

func writeFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(content), 0644)
}

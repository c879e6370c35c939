package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Logging LoggingConfig `toml:"logging"`
	Extract ExtractConfig `toml:"extract"`
	Output  OutputConfig  `toml:"output"`
	LLM     LLMConfig     `toml:"llm"`
	Claude  ClaudeConfig  `toml:"claude"`
	Gemini  GeminiConfig  `toml:"gemini"`
	Cache   CacheConfig   `toml:"cache"`
}

type LoggingConfig struct {
	Level      string   `toml:"level"`       // "debug", "info", "warn", "error"
	Format     string   `toml:"format"`      // "json" or "text"
	Output     []string `toml:"output"`      // "stdout", "file"
	TimeFormat string   `toml:"time_format"` // Time format for logs (default: "15:04:05")
}

// ExtractConfig contains configuration for the PDF extraction stage
type ExtractConfig struct {
	Tables TableHeuristicsConfig `toml:"tables"`
	// PageWarnThreshold triggers a warning when a document exceeds this many
	// pages and no page range was requested (default: 50)
	PageWarnThreshold int `toml:"page_warn_threshold"`
}

// TableHeuristicsConfig contains the acceptance thresholds for candidate
// tables. The validator rejects grids that fall below any threshold; the
// defaults bias toward precision because false-positive tables pollute the
// generated document far more than a missed true table.
type TableHeuristicsConfig struct {
	MinRows           int     `toml:"min_rows"`            // Minimum total rows, header included (default: 2)
	MinNonEmptyRows   int     `toml:"min_non_empty_rows"`  // Minimum rows with at least one filled cell (default: 4)
	MinContentDensity float64 `toml:"min_content_density"` // Minimum fraction of non-empty cells (default: 0.4)
	MinAvgCellLength  float64 `toml:"min_avg_cell_length"` // Minimum mean character length of filled cells (default: 15)
	MinRowFillRate    float64 `toml:"min_row_fill_rate"`   // Minimum mean row fill ratio (default: 0.4)
}

// OutputConfig contains defaults for the generated presentation
type OutputConfig struct {
	Style        string `toml:"style"`         // "default", "minimal", or "academic"
	Language     string `toml:"language"`      // "en" or "ja"
	TargetSlides int    `toml:"target_slides"` // Target slide count (default: 20)
}

// LLMProvider represents the AI provider type
type LLMProvider string

const (
	// LLMProviderGemini uses Google Gemini API
	LLMProviderGemini LLMProvider = "gemini"
	// LLMProviderClaude uses Anthropic Claude API
	LLMProviderClaude LLMProvider = "claude"
)

// LLMConfig contains unified configuration for all AI providers
type LLMConfig struct {
	DefaultProvider LLMProvider `toml:"default_provider"` // Default provider: "claude" or "gemini" (default: "claude")
}

// ClaudeConfig contains Anthropic Claude API configuration
type ClaudeConfig struct {
	APIKey      string  `toml:"api_key"`     // Anthropic API key (fallback: ANTHROPIC_API_KEY env)
	Model       string  `toml:"model"`       // Model for conversions (default: "claude-sonnet-4-20250514")
	MaxTokens   int     `toml:"max_tokens"`  // Maximum tokens in response (default: 16000)
	Timeout     string  `toml:"timeout"`     // Operation timeout as duration string (default: "5m")
	RateLimit   string  `toml:"rate_limit"`  // Minimum interval between requests (default: "1s")
	Temperature float32 `toml:"temperature"` // Completion temperature (default: 0.7)
}

// GeminiConfig contains Google Gemini API configuration
type GeminiConfig struct {
	APIKey      string  `toml:"api_key"`     // Google Gemini API key (fallback: GEMINI_API_KEY env)
	Model       string  `toml:"model"`       // Model for conversions (default: "gemini-3-flash-preview")
	Timeout     string  `toml:"timeout"`     // Operation timeout as duration string (default: "5m")
	RateLimit   string  `toml:"rate_limit"`  // Minimum interval between requests (default: "4s" for 15 RPM)
	Temperature float32 `toml:"temperature"` // Completion temperature (default: 0.7)
}

// CacheConfig contains configuration for the conversion cache
type CacheConfig struct {
	Enabled bool   `toml:"enabled"` // Cache generated Marp output in BadgerDB (default: false)
	Path    string `toml:"path"`    // Database directory path (default: "./data/cache")
}

// NewDefaultConfig creates a configuration with default values
func NewDefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "text",
			Output:     []string{"stdout"},
			TimeFormat: "15:04:05",
		},
		Extract: ExtractConfig{
			Tables: TableHeuristicsConfig{
				MinRows:           2,
				MinNonEmptyRows:   4,
				MinContentDensity: 0.4,
				MinAvgCellLength:  15,
				MinRowFillRate:    0.4,
			},
			PageWarnThreshold: 50,
		},
		Output: OutputConfig{
			Style:        "default",
			Language:     "en",
			TargetSlides: 20,
		},
		LLM: LLMConfig{
			DefaultProvider: LLMProviderClaude,
		},
		Claude: ClaudeConfig{
			APIKey:      "",
			Model:       "claude-sonnet-4-20250514",
			MaxTokens:   16000,
			Timeout:     "5m",
			RateLimit:   "1s",
			Temperature: 0.7,
		},
		Gemini: GeminiConfig{
			APIKey:      "",
			Model:       "gemini-3-flash-preview",
			Timeout:     "5m",
			RateLimit:   "4s",
			Temperature: 0.7,
		},
		Cache: CacheConfig{
			Enabled: false,
			Path:    "./data/cache",
		},
	}
}

// LoadFromFile loads configuration with priority: defaults -> file -> env
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration from multiple files. Later files override
// earlier ones; environment variables override all files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if level := os.Getenv("DOCEO_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if output := os.Getenv("DOCEO_LOG_OUTPUT"); output != "" {
		parts := strings.Split(output, ",")
		outputs := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				outputs = append(outputs, trimmed)
			}
		}
		if len(outputs) > 0 {
			config.Logging.Output = outputs
		}
	}

	if style := os.Getenv("DOCEO_STYLE"); style != "" {
		config.Output.Style = style
	}
	if language := os.Getenv("DOCEO_LANGUAGE"); language != "" {
		config.Output.Language = language
	}
	if slides := os.Getenv("DOCEO_SLIDES"); slides != "" {
		if n, err := strconv.Atoi(slides); err == nil && n > 0 {
			config.Output.TargetSlides = n
		}
	}

	if provider := os.Getenv("DOCEO_LLM_PROVIDER"); provider != "" {
		config.LLM.DefaultProvider = LLMProvider(provider)
	}

	// Standard provider key variables take precedence over config file values
	// so keys never need to live on disk.
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		config.Claude.APIKey = key
	}
	if key := os.Getenv("DOCEO_CLAUDE_API_KEY"); key != "" {
		config.Claude.APIKey = key
	}
	if model := os.Getenv("DOCEO_CLAUDE_MODEL"); model != "" {
		config.Claude.Model = model
	}

	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		config.Gemini.APIKey = key
	}
	if key := os.Getenv("DOCEO_GEMINI_API_KEY"); key != "" {
		config.Gemini.APIKey = key
	}
	if model := os.Getenv("DOCEO_GEMINI_MODEL"); model != "" {
		config.Gemini.Model = model
	}

	if enabled := os.Getenv("DOCEO_CACHE_ENABLED"); enabled != "" {
		if b, err := strconv.ParseBool(enabled); err == nil {
			config.Cache.Enabled = b
		}
	}
	if path := os.Getenv("DOCEO_CACHE_PATH"); path != "" {
		config.Cache.Path = path
	}
}

// ResolveAPIKey returns the configured key for a provider or an error naming
// the expected sources. Environment overrides have already been applied by
// config loading.
func ResolveAPIKey(provider, configured string) (string, error) {
	if configured != "" {
		return configured, nil
	}
	switch provider {
	case "claude":
		return "", fmt.Errorf("Anthropic API key is required (set ANTHROPIC_API_KEY, DOCEO_CLAUDE_API_KEY, or claude.api_key in config)")
	case "gemini":
		return "", fmt.Errorf("Gemini API key is required (set GEMINI_API_KEY, DOCEO_GEMINI_API_KEY, or gemini.api_key in config)")
	default:
		return "", fmt.Errorf("%s API key is required", provider)
	}
}

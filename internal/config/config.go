// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config carries settings for the rendering and constraint-checking
// collaborators. The analysis engine itself accepts no configuration;
// nothing here changes an analysis result.
type Config struct {
	Version string `yaml:"version" json:"version"`

	// Output settings
	Output OutputConfig `yaml:"output" json:"output"`

	// Annotation rendering settings
	Render RenderConfig `yaml:"render" json:"render"`

	// Constraint checking settings
	Limits LimitsConfig `yaml:"limits" json:"limits"`

	// File patterns
	Files FilesConfig `yaml:"files" json:"files"`
}

type OutputConfig struct {
	// Default output format
	Format string `yaml:"format" json:"format"`

	// Colorized output
	Colors bool `yaml:"colors" json:"colors"`

	// Verbosity level
	Verbose bool `yaml:"verbose" json:"verbose"`

	// Output file path (optional)
	OutputFile string `yaml:"output_file,omitempty" json:"output_file,omitempty"`
}

type RenderConfig struct {
	// Show per-line annotations in the report
	ShowAnnotations bool `yaml:"show_annotations" json:"show_annotations"`

	// Show the per-function summary table
	ShowFunctions bool `yaml:"show_functions" json:"show_functions"`

	// Icons per severity band, merged over defaults
	Icons IconConfig `yaml:"icons" json:"icons"`

	// Lattice rank at or above which an annotation is highlighted
	HighlightRank int `yaml:"highlight_rank" json:"highlight_rank"`
}

type IconConfig struct {
	Good    string `yaml:"good" json:"good"`
	Warning string `yaml:"warning" json:"warning"`
	Bad     string `yaml:"bad" json:"bad"`
}

type LimitsConfig struct {
	Enabled bool `yaml:"enabled" json:"enabled"`

	// Assumed problem size n
	ProblemSize int64 `yaml:"problem_size" json:"problem_size"`

	// Time limit in milliseconds
	TimeLimitMS int `yaml:"time_limit_ms" json:"time_limit_ms"`

	// Memory limit in megabytes
	MemoryLimitMB int `yaml:"memory_limit_mb" json:"memory_limit_mb"`

	// Assumed machine throughput
	ThresholdOpsPerSec float64 `yaml:"threshold_ops_per_sec" json:"threshold_ops_per_sec"`
}

type FilesConfig struct {
	// Include patterns
	Include []string `yaml:"include" json:"include"`

	// Exclude patterns
	Exclude []string `yaml:"exclude" json:"exclude"`

	// Max file size (in KB)
	MaxFileSize int `yaml:"max_file_size" json:"max_file_size"`
}

func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Output: OutputConfig{
			Format:  "console",
			Colors:  true,
			Verbose: false,
		},
		Render: RenderConfig{
			ShowAnnotations: true,
			ShowFunctions:   true,
			Icons: IconConfig{
				Good:    "✅",
				Warning: "⚠️",
				Bad:     "🚨",
			},
			HighlightRank: 9, // quadratic and above
		},
		Limits: LimitsConfig{
			Enabled:            true,
			ProblemSize:        100000,
			TimeLimitMS:        1000,
			MemoryLimitMB:      256,
			ThresholdOpsPerSec: 1e8,
		},
		Files: FilesConfig{
			Include:     []string{"**/*.cpp", "**/*.cc", "**/*.c", "**/*.h", "**/*.hpp"},
			Exclude:     []string{"build/**", ".git/**", "third_party/**"},
			MaxFileSize: 1024, // 1MB
		},
	}
}

// LoadConfig loads configuration from file or returns default
func LoadConfig(configPath string) (*Config, error) {
	// If no config path provided, look for default config files
	if configPath == "" {
		configPath = findConfigFile()
	}

	// If still no config found, return default
	if configPath == "" {
		return DefaultConfig(), nil
	}

	// Load from file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	config := DefaultConfig() // Start with defaults

	// Parse YAML
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// findConfigFile looks for config files in common locations
func findConfigFile() string {
	possiblePaths := []string{
		".bigocheck.yml",
		".bigocheck.yaml",
		"bigocheck.yml",
		"bigocheck.yaml",
		".config/bigocheck.yml",
		".config/bigocheck.yaml",
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate output format
	validFormats := []string{"console", "json"}
	formatValid := false
	for _, format := range validFormats {
		if c.Output.Format == format {
			formatValid = true
			break
		}
	}
	if !formatValid {
		return fmt.Errorf("invalid output format: %s (valid: %v)", c.Output.Format, validFormats)
	}

	// Validate constraint limits
	if c.Limits.Enabled {
		if c.Limits.ProblemSize < 1 {
			return fmt.Errorf("problem_size must be at least 1")
		}
		if c.Limits.TimeLimitMS < 1 {
			return fmt.Errorf("time_limit_ms must be at least 1")
		}
		if c.Limits.ThresholdOpsPerSec <= 0 {
			return fmt.Errorf("threshold_ops_per_sec must be positive")
		}
	}

	if c.Render.HighlightRank < 0 {
		return fmt.Errorf("highlight_rank must not be negative")
	}

	return nil
}

// SaveConfig saves configuration to file
func (c *Config) SaveConfig(configPath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Write file
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GenerateConfig creates a sample configuration file
func GenerateConfig(configPath string) error {
	config := DefaultConfig()
	return config.SaveConfig(configPath)
}

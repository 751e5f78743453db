package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. The client default would wait
	// forever on a stalled connection, so the pipeline always applies a
	// finite value (15s unless configured).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "faculty-scraper/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ScrapeConfig holds settings for the scrape pipeline.
type ScrapeConfig struct {
	HTTPConfig `yaml:",inline"`

	// DirectoryURL is the faculty directory page to scrape.
	DirectoryURL string `json:"directory_url" yaml:"directory_url"`

	// BaseURL prefixes derived profile links. When empty it is derived from
	// DirectoryURL's scheme and host.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// MaxWorkers caps concurrent profile-page fetch tasks (default 10).
	MaxWorkers int `json:"max_workers" yaml:"max_workers"`
}

// ExportFormat selects the export serialization.
type ExportFormat string

const (
	FormatCSV  ExportFormat = "csv"
	FormatYAML ExportFormat = "yaml"
	FormatJSON ExportFormat = "json"
)

// ExportConfig holds settings for the export stage.
type ExportConfig struct {
	// Format selects the output serialization: csv, yaml, or json.
	Format ExportFormat `json:"format" yaml:"format"`

	// Path is the output file path (e.g. "faculty.csv").
	Path string `json:"path" yaml:"path"`
}

// LogConfig holds settings for the diagnostic log.
type LogConfig struct {
	// Path is the append-only log file (default "scraper.log").
	Path string `json:"path" yaml:"path"`

	// Level is the minimum level written: debug, info, warn, or error
	// (default warn, so alignment flags land in the file alongside errors).
	Level string `json:"level" yaml:"level"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Scrape ScrapeConfig `json:"scrape" yaml:"scrape"`
	Export ExportConfig `json:"export" yaml:"export"`
	Log    LogConfig    `json:"log" yaml:"log"`
}

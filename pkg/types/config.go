package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "dataset-bridge/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// CatalogConfig holds settings for talking to the source CKAN catalog.
type CatalogConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the catalog site root (e.g. "https://open.data.example.org").
	// The Action API lives under BaseURL/api/3/action and dataset landing
	// pages under BaseURL/dataset/.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// APIKey is an optional CKAN API key sent as the Authorization header.
	// Needed only for catalogs with private datasets.
	APIKey string `json:"-" yaml:"-"`
}

// HarvestConfig holds settings for a harvest run.
type HarvestConfig struct {
	Catalog CatalogConfig `yaml:",inline"`

	// OutputFile is the path of the JSON array written at the end of a run.
	OutputFile string `json:"output_file" yaml:"output_file"`

	// ReportFile, when non-empty, is the path of a YAML run report.
	ReportFile string `json:"report_file,omitempty" yaml:"report_file,omitempty"`

	// Limit caps the number of packages fetched; 0 means all.
	Limit int `json:"limit,omitempty" yaml:"limit,omitempty"`

	// RequestDelay is the pause between consecutive package fetches.
	RequestDelay time.Duration `json:"request_delay" yaml:"request_delay"`
}

// ArchiveConfig holds settings for the SQLite harvest archive.
type ArchiveConfig struct {
	// Path is the SQLite database file. Empty disables archiving.
	Path string `json:"path" yaml:"path"`
}

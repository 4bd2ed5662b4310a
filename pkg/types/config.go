// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "scholar-cli/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ScholarConfig holds settings for Google Scholar queries.
type ScholarConfig struct {
	HTTPConfig `yaml:",inline"`

	// Limit is the maximum number of results to return (default 10).
	Limit int `json:"limit" yaml:"limit"`

	// FetchCeiling bounds the extra result pages pulled to satisfy a year
	// filter (default 3).
	FetchCeiling int `json:"fetch_ceiling" yaml:"fetch_ceiling"`

	// Backend selects the search backend: "direct" or "serpapi".
	Backend string `json:"backend" yaml:"backend"`

	// SortByDate orders results newest first instead of by relevance.
	SortByDate bool `json:"sort_by_date" yaml:"sort_by_date"`

	// Cookie is an optional Scholar session cookie sent with direct
	// requests to reduce rate limiting.
	Cookie string `json:"cookie,omitempty" yaml:"cookie,omitempty"`

	// SerpAPIKey authenticates against SerpApi when Backend is "serpapi".
	SerpAPIKey string `json:"serpapi_key,omitempty" yaml:"serpapi_key,omitempty"`
}

// BooksConfig holds settings for Google Books queries.
type BooksConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIKey authenticates against the Google Books API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Limit is the maximum number of volumes to return (default 10, API max 40).
	Limit int `json:"limit" yaml:"limit"`
}

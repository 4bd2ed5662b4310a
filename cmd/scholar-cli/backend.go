// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/scholar-cli/internal/scholar"
	"github.com/pdiddy/scholar-cli/internal/secrets"
	"github.com/pdiddy/scholar-cli/pkg/types"
)

const defaultTimeout = 30 * time.Second

// scholarConfig assembles the Scholar settings from config file, secrets,
// and command flags. Flags win over config keys.
func scholarConfig(cmd *cobra.Command) types.ScholarConfig {
	cfg := types.ScholarConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("scholar.timeout"),
			UserAgent: viper.GetString("scholar.user_agent"),
		},
		Limit:        viper.GetInt("scholar.limit"),
		FetchCeiling: viper.GetInt("scholar.fetch_ceiling"),
		Backend:      viper.GetString("scholar.backend"),
		Cookie:       secrets.Get(loadedSecrets, "scholar-cookie", ""),
		SerpAPIKey:   secrets.Get(loadedSecrets, "serpapi-api-key", "SERPAPI_API_KEY"),
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.Backend == "" {
		cfg.Backend = "direct"
	}

	if cmd.Flags().Changed("limit") {
		cfg.Limit, _ = cmd.Flags().GetInt("limit")
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout, _ = cmd.Flags().GetDuration("timeout")
	}
	if cmd.Flags().Changed("backend") {
		cfg.Backend, _ = cmd.Flags().GetString("backend")
	}
	if viper.GetString("scholar.sort") == "date" {
		cfg.SortByDate = true
	}
	if cmd.Flags().Changed("sort") {
		sort, _ := cmd.Flags().GetString("sort")
		cfg.SortByDate = sort == "date"
	}
	return cfg
}

// newBackend builds the configured Scholar backend.
func newBackend(cfg types.ScholarConfig) (scholar.Backend, error) {
	client := &http.Client{Timeout: cfg.Timeout}
	switch cfg.Backend {
	case "direct":
		return &scholar.DirectBackend{Client: client, Config: cfg}, nil
	case "serpapi":
		return &scholar.SerpAPIBackend{Client: client, APIKey: cfg.SerpAPIKey, Config: cfg}, nil
	}
	return nil, fmt.Errorf("unknown scholar backend %q (use direct or serpapi)", cfg.Backend)
}

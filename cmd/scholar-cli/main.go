// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the scholar-cli tool: a command-line
// client for Google Scholar publication, author, and Google Books searches.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/scholar-cli/internal/render"
	"github.com/pdiddy/scholar-cli/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

const defaultUserAgent = "scholar-cli/0.1"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the scholar-cli tool.
var rootCmd = &cobra.Command{
	Use:   "scholar-cli",
	Short: "Query Google Scholar from the command line",
	Long: `scholar-cli builds Google Scholar queries from structured options (exact
phrases, exclusions, title filters, year ranges), previews the compiled query
string, and executes searches through a pluggable backend.

The search command defaults to a dry-run preview; pass --execute to hit the
network. Results render as human-readable blocks, JSON, or YAML.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		render.Hyperlinks = stdoutIsTerminal() && os.Getenv("NO_COLOR") == ""
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./scholar-cli.yaml or ~/.config/scholar-cli/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("scholar-cli")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "scholar-cli"))
		}
	}

	viper.SetEnvPrefix("SCHOLAR_CLI")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// stdoutIsTerminal reports whether stdout is attached to a character device,
// so hyperlinks and other terminal niceties stay out of piped output.
func stdoutIsTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

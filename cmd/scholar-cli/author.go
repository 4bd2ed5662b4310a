// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/scholar-cli/internal/render"
	"github.com/pdiddy/scholar-cli/internal/scholar"
	"github.com/pdiddy/scholar-cli/pkg/types"
)

var authorCmd = &cobra.Command{
	Use:   "author [name]",
	Short: "Search Google Scholar author profiles",
	Long: `Author finds Scholar author profiles by name, or fetches a single
profile by Scholar ID. Author search is rate-limited more aggressively than
publication search.

Examples:

  scholar-cli author "Albert Einstein"
  scholar-cli author --scholar-id qc6CJjYAAAAJ
  scholar-cli author "John Doe" --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAuthor,
}

func init() {
	authorCmd.Flags().IntP("limit", "l", 5, "maximum results to return")
	authorCmd.Flags().StringP("scholar-id", "i", "", "fetch one author by Scholar ID")
	authorCmd.Flags().StringP("format", "f", "human", "output format: human, json, or yaml")
	authorCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	authorCmd.Flags().String("backend", "", "search backend: direct or serpapi")

	rootCmd.AddCommand(authorCmd)
}

func runAuthor(cmd *cobra.Command, args []string) error {
	scholarID, _ := cmd.Flags().GetString("scholar-id")
	if len(args) == 0 && scholarID == "" {
		return fmt.Errorf("provide an author name or --scholar-id")
	}

	format, _ := cmd.Flags().GetString("format")
	outFormat, err := render.ParseFormat(format)
	if err != nil {
		return err
	}

	cfg := scholarConfig(cmd)
	backend, err := newBackend(cfg)
	if err != nil {
		return err
	}
	orch := &scholar.Orchestrator{Backend: backend}

	var authors []types.Author
	if scholarID != "" {
		a, err := orch.AuthorByID(cmd.Context(), scholarID)
		if err != nil {
			return err
		}
		authors = []types.Author{*a}
	} else {
		limit, _ := cmd.Flags().GetInt("limit")
		authors, err = orch.Authors(cmd.Context(), args[0], limit)
		if err != nil {
			return err
		}
	}

	return render.Authors(cmd.OutOrStdout(), authors, outFormat)
}

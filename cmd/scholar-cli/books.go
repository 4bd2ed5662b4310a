// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/scholar-cli/internal/books"
	"github.com/pdiddy/scholar-cli/internal/render"
	"github.com/pdiddy/scholar-cli/internal/secrets"
	"github.com/pdiddy/scholar-cli/pkg/types"
)

var booksCmd = &cobra.Command{
	Use:   "books [query]",
	Short: "Search Google Books for volumes",
	Long: `Books searches the Google Books volumes API. It needs an API key in
.secrets/google-books-api-key or the GOOGLE_BOOKS_API_KEY environment
variable.

Examples:

  scholar-cli books "machine learning"
  scholar-cli books "python programming" --format json
  scholar-cli books "deep learning" --cite apa --limit 5`,
	Args: cobra.ExactArgs(1),
	RunE: runBooks,
}

func init() {
	booksCmd.Flags().IntP("limit", "l", 10, "maximum results to return (API max 40)")
	booksCmd.Flags().StringP("format", "f", "human", "output format: human, json, or yaml")
	booksCmd.Flags().StringP("cite", "c", "", "print citations instead: apa, mla, chicago, or harvard")
	booksCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")

	rootCmd.AddCommand(booksCmd)
}

func runBooks(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	outFormat, err := render.ParseFormat(format)
	if err != nil {
		return err
	}

	citeFlag, _ := cmd.Flags().GetString("cite")
	var style books.Style
	if citeFlag != "" {
		if style, err = books.ParseStyle(citeFlag); err != nil {
			return err
		}
	}

	cfg := types.BooksConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("books.timeout"),
			UserAgent: defaultUserAgent,
		},
		APIKey: secrets.Get(loadedSecrets, "google-books-api-key", "GOOGLE_BOOKS_API_KEY"),
		Limit:  viper.GetInt("books.limit"),
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout, _ = cmd.Flags().GetDuration("timeout")
	}
	limit, _ := cmd.Flags().GetInt("limit")
	if !cmd.Flags().Changed("limit") && cfg.Limit > 0 {
		limit = cfg.Limit
	}

	client := &books.Client{
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
		Config:     cfg,
	}
	results, err := client.Search(cmd.Context(), args[0], limit)
	if err != nil {
		return err
	}

	if citeFlag != "" {
		for _, b := range results {
			citation, err := books.Cite(b, style)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), citation)
		}
		return nil
	}
	return render.Books(cmd.OutOrStdout(), results, outFormat)
}

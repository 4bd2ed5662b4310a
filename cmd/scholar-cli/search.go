// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/scholar-cli/internal/query"
	"github.com/pdiddy/scholar-cli/internal/render"
	"github.com/pdiddy/scholar-cli/internal/scholar"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Compile and run a Google Scholar publication search",
	Long: `Search builds a Google Scholar query from free text plus structured
options: exact phrases (quoted, AND-joined), excluded terms, a title filter,
and a publication-year range. Without any structured options the query
argument is passed to Scholar verbatim.

The default is a dry run that prints the compiled query; pass --execute to
run the search. Year bounds are applied as a post-filter because Scholar's
query grammar has no year operator.

Examples:

  # Preview the compiled query
  scholar-cli search "HRM" --exact "job satisfaction" --intitle "the Netherlands"

  # Run it
  scholar-cli search "HRM" --exact "job satisfaction" --execute

  # Raw Scholar syntax, passed through unchanged
  scholar-cli search '"HRM" AND "job satisfaction"' --execute

  # Year-filtered, JSON for scripting
  scholar-cli search "deep learning" --year-start 2020 --year-end 2024 --execute --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringArrayP("exact", "e", nil, "exact phrase to include (repeatable)")
	searchCmd.Flags().StringArrayP("exclude", "x", nil, "term to exclude (repeatable)")
	searchCmd.Flags().StringP("intitle", "t", "", "term that must appear in the title")
	searchCmd.Flags().IntP("limit", "l", 0, "maximum results to return (default 10)")
	searchCmd.Flags().Int("year-start", 0, "filter results from this year onwards")
	searchCmd.Flags().Int("year-end", 0, "filter results up to this year")
	searchCmd.Flags().Bool("execute", false, "run the search instead of previewing the compiled query")
	searchCmd.Flags().StringP("format", "f", "human", "output format: human, json, or yaml")
	searchCmd.Flags().String("sort", "relevance", "sort results by relevance or date (newest first)")
	searchCmd.Flags().String("save", "", "write the executed query and results to a YAML file")
	searchCmd.Flags().BoolP("stdin", "s", false, "read the query from stdin")
	searchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	searchCmd.Flags().String("backend", "", "search backend: direct or serpapi")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	text, err := queryArg(cmd, args)
	if err != nil {
		return err
	}

	exact, _ := cmd.Flags().GetStringArray("exact")
	exclude, _ := cmd.Flags().GetStringArray("exclude")
	intitle, _ := cmd.Flags().GetString("intitle")
	yearStart, _ := cmd.Flags().GetInt("year-start")
	yearEnd, _ := cmd.Flags().GetInt("year-end")

	// Structured options switch the compiler on; without them the query
	// argument is raw Scholar syntax and passes through untouched.
	var model query.Model
	if len(exact) > 0 || len(exclude) > 0 || intitle != "" {
		model = query.Structured{
			FreeText:     text,
			ExactPhrases: exact,
			Exclusions:   exclude,
			TitleTerm:    intitle,
			YearStart:    yearStart,
			YearEnd:      yearEnd,
		}
	} else {
		if err := query.ValidateYearRange(yearStart, yearEnd); err != nil {
			return err
		}
		model = query.Raw{Query: text}
	}

	compiled, err := query.Compile(model)
	if err != nil {
		return err
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
	orch := &scholar.Orchestrator{Backend: backend, FetchCeiling: cfg.FetchCeiling}

	req := scholar.Request{
		Query:     compiled,
		Limit:     cfg.Limit,
		YearStart: yearStart,
		YearEnd:   yearEnd,
	}
	mode := scholar.Preview
	if execute, _ := cmd.Flags().GetBool("execute"); execute {
		mode = scholar.Execute
	}

	out, err := orch.Run(cmd.Context(), req, mode)
	if err != nil {
		return err
	}

	if mode == scholar.Preview {
		printPreview(cmd.OutOrStdout(), out)
		return nil
	}

	if out.Partial {
		fmt.Fprintf(os.Stderr, "warning: fetch ceiling reached; returning %d of %d requested results\n",
			len(out.Results), out.Limit)
	}
	if save, _ := cmd.Flags().GetString("save"); save != "" {
		if err := scholar.WriteExport(save, out, backend.Name()); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "Saved results to", save)
	}
	return render.Publications(cmd.OutOrStdout(), out.Results, outFormat)
}

// printPreview shows the compiled query and effective parameters without
// touching the network.
func printPreview(w io.Writer, out scholar.Outcome) {
	fmt.Fprintln(w, "Query:", out.Query)
	fmt.Fprintln(w, "Limit:", out.Limit)
	if out.YearStart != 0 || out.YearEnd != 0 {
		fmt.Fprintln(w, "Years:", yearRangeString(out.YearStart, out.YearEnd))
	}
	fmt.Fprintln(w, "Dry run; pass --execute to run the search.")
}

func yearRangeString(start, end int) string {
	switch {
	case start != 0 && end != 0:
		return fmt.Sprintf("%d-%d", start, end)
	case start != 0:
		return fmt.Sprintf("%d-", start)
	default:
		return fmt.Sprintf("-%d", end)
	}
}

// queryArg returns the query text from the positional argument or stdin.
func queryArg(cmd *cobra.Command, args []string) (string, error) {
	if useStdin, _ := cmd.Flags().GetBool("stdin"); useStdin {
		data, err := io.ReadAll(bufio.NewReader(cmd.InOrStdin()))
		if err != nil {
			return "", fmt.Errorf("reading query from stdin: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}
	if len(args) > 0 {
		return args[0], nil
	}
	return "", nil
}

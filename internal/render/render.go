// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render formats search records for terminal or script consumption.
// Human output is one block per record with a stable field order; JSON and
// YAML output round-trip for downstream scripting. Input order is preserved:
// it is the backend's relevance order and is never re-sorted.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/scholar-cli/pkg/types"
)

// Format selects the output representation.
type Format int

const (
	Human Format = iota
	JSON
	YAML
)

// ParseFormat maps a CLI format name onto a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "human":
		return Human, nil
	case "json":
		return JSON, nil
	case "yaml":
		return YAML, nil
	}
	return Human, fmt.Errorf("unknown output format %q (use human, json, or yaml)", s)
}

// Hyperlinks enables OSC 8 terminal hyperlinks in human output. The CLI
// turns it on when stdout is a terminal and NO_COLOR is unset; it stays off
// otherwise so piped output is plain text.
var Hyperlinks bool

// noResults is the explicit human empty state. Zero records is a success.
const noResults = "No results found."

// Publications writes pubs to w in the given format.
func Publications(w io.Writer, pubs []types.Publication, f Format) error {
	switch f {
	case JSON:
		return writeJSON(w, pubs, len(pubs))
	case YAML:
		return writeYAML(w, pubs)
	}

	if len(pubs) == 0 {
		fmt.Fprintln(w, noResults)
		return nil
	}
	for i, p := range pubs {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%d. %s\n", i+1, hyperlink(p.URL, p.Title))
		fmt.Fprintf(w, "   Authors: %s\n", orUnknown(strings.Join(p.Authors, ", ")))
		fmt.Fprintf(w, "   Venue: %s\n", orUnknown(p.Venue))
		fmt.Fprintf(w, "   Year: %s\n", yearString(p.Year))
		fmt.Fprintf(w, "   Citations: %d\n", p.Citations)
		if p.URL != "" {
			fmt.Fprintf(w, "   URL: %s\n", p.URL)
		}
		if p.Abstract != "" {
			fmt.Fprintf(w, "   %s\n", p.Abstract)
		}
	}
	return nil
}

// Authors writes author profiles to w in the given format.
func Authors(w io.Writer, authors []types.Author, f Format) error {
	switch f {
	case JSON:
		return writeJSON(w, authors, len(authors))
	case YAML:
		return writeYAML(w, authors)
	}

	if len(authors) == 0 {
		fmt.Fprintln(w, noResults)
		return nil
	}
	for i, a := range authors {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%d. %s\n", i+1, a.Name)
		if a.Affiliation != "" {
			fmt.Fprintf(w, "   Affiliation: %s\n", a.Affiliation)
		}
		fmt.Fprintf(w, "   Citations: %d\n", a.Citations)
		fmt.Fprintf(w, "   h-index: %d\n", a.HIndex)
		fmt.Fprintf(w, "   i10-index: %d\n", a.I10Index)
		if len(a.Interests) > 0 {
			fmt.Fprintf(w, "   Interests: %s\n", strings.Join(a.Interests, ", "))
		}
		if a.ScholarID != "" {
			fmt.Fprintf(w, "   Scholar ID: %s\n", a.ScholarID)
		}
	}
	return nil
}

// Books writes book records to w in the given format.
func Books(w io.Writer, books []types.Book, f Format) error {
	switch f {
	case JSON:
		return writeJSON(w, books, len(books))
	case YAML:
		return writeYAML(w, books)
	}

	if len(books) == 0 {
		fmt.Fprintln(w, noResults)
		return nil
	}
	for i, b := range books {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%d. %s\n", i+1, hyperlink(b.InfoLink, b.Title))
		fmt.Fprintf(w, "   Authors: %s\n", orUnknown(strings.Join(b.Authors, ", ")))
		if b.Publisher != "" {
			fmt.Fprintf(w, "   Publisher: %s\n", b.Publisher)
		}
		if b.PublishedDate != "" {
			fmt.Fprintf(w, "   Published: %s\n", b.PublishedDate)
		}
		if b.PageCount > 0 {
			fmt.Fprintf(w, "   Pages: %d\n", b.PageCount)
		}
		if len(b.Categories) > 0 {
			fmt.Fprintf(w, "   Categories: %s\n", strings.Join(b.Categories, ", "))
		}
		if b.ISBN() != "" {
			fmt.Fprintf(w, "   ISBN: %s\n", b.ISBN())
		}
		if b.PreviewLink != "" {
			fmt.Fprintf(w, "   Preview: %s\n", b.PreviewLink)
		}
	}
	return nil
}

// writeJSON emits a single indented JSON array. A nil or empty slice renders
// as the literal [] so scripted consumers always receive an array.
func writeJSON[T any](w io.Writer, records []T, n int) error {
	if n == 0 {
		records = []T{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func writeYAML[T any](w io.Writer, records []T) error {
	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshaling results: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// hyperlink wraps text in an OSC 8 escape sequence pointing at url when
// hyperlinks are enabled and a URL exists.
func hyperlink(url, text string) string {
	if !Hyperlinks || url == "" {
		return text
	}
	return "\x1b]8;;" + url + "\x1b\\" + text + "\x1b]8;;\x1b\\"
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

func yearString(year int) string {
	if year == 0 {
		return "Unknown"
	}
	return fmt.Sprintf("%d", year)
}

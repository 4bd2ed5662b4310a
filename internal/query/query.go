// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package query models a Google Scholar search request and compiles it into
// the textual query grammar Scholar expects.
package query

import "strings"

// Model is a search request in one of two mutually exclusive forms: a raw
// query string the user wrote themselves, or a structured set of options the
// compiler assembles. The two forms are distinct types so they can never be
// merged into a single request.
type Model interface {
	// Validate reports the first malformed field as a *ValidationError.
	Validate() error

	sealed()
}

// Raw wraps a complete, pre-written Scholar query. Compile returns the
// string unchanged; the caller owns grammar correctness in this mode.
type Raw struct {
	Query string
}

func (Raw) sealed() {}

// Validate rejects an empty raw query.
func (r Raw) Validate() error {
	if strings.TrimSpace(r.Query) == "" {
		return &ValidationError{Field: "query", Reason: "raw query is empty"}
	}
	return nil
}

// Structured holds the option-built form of a search request.
type Structured struct {
	// FreeText is the user's search terms, kept verbatim. It may already
	// contain OR tokens or quoted phrases; the compiler treats it as an
	// opaque token and never re-parses it, so Scholar's own grammar decides
	// how an OR inside it binds against the ANDs added for exact phrases.
	FreeText string

	// ExactPhrases are quoted in the output and AND-joined in input order.
	ExactPhrases []string

	// Exclusions become -term tokens at the end of the query, in input order.
	Exclusions []string

	// TitleTerm restricts matches to the publication title. It must not
	// contain double quotes: a mangled intitle: filter is indistinguishable
	// from "no match" on the backend side, so it is rejected up front.
	TitleTerm string

	// YearStart and YearEnd bound publication years; zero means unset.
	// Scholar's query grammar has no year operator, so the bounds never
	// appear in the compiled string. The orchestrator applies them as a
	// post-filter instead.
	YearStart int
	YearEnd   int
}

func (Structured) sealed() {}

// Validate checks the structured request before compilation.
func (s Structured) Validate() error {
	positive := strings.TrimSpace(s.FreeText) != ""
	for _, p := range s.ExactPhrases {
		if strings.TrimSpace(p) != "" {
			positive = true
			break
		}
	}
	if !positive {
		return &ValidationError{Field: "free_text", Reason: "provide search terms or at least one exact phrase"}
	}
	if strings.Contains(s.TitleTerm, `"`) {
		return &ValidationError{Field: "intitle", Reason: "title term must not contain double quotes"}
	}
	return ValidateYearRange(s.YearStart, s.YearEnd)
}

// ValidateYearRange rejects an inverted year range. Zero means unset and is
// always accepted.
func ValidateYearRange(start, end int) error {
	if start != 0 && end != 0 && end < start {
		return &ValidationError{Field: "year_end", Reason: "year_end is before year_start"}
	}
	return nil
}

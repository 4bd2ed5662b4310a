// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for scholar-cli.
package types

// Publication represents one Google Scholar search result. Fields are
// pass-through from the backend; the tool reads Year for post-filtering and
// the rest only to render output.
type Publication struct {
	// Title is the publication title.
	Title string `json:"title" yaml:"title"`

	// Authors lists the authors in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// Venue is the journal, conference, or publisher string.
	Venue string `json:"venue" yaml:"venue"`

	// Year is the publication year; zero when the backend did not report one.
	Year int `json:"year" yaml:"year"`

	// Citations is the "Cited by" count.
	Citations int `json:"citations" yaml:"citations"`

	// URL points at the publication page or eprint.
	URL string `json:"url" yaml:"url"`

	// Abstract is the snippet Scholar shows under the result.
	Abstract string `json:"abstract" yaml:"abstract"`
}

// Author represents a Google Scholar author profile.
type Author struct {
	Name        string   `json:"name" yaml:"name"`
	Affiliation string   `json:"affiliation" yaml:"affiliation"`
	EmailDomain string   `json:"email_domain" yaml:"email_domain"`
	Citations   int      `json:"citations" yaml:"citations"`
	HIndex      int      `json:"h_index" yaml:"h_index"`
	I10Index    int      `json:"i10_index" yaml:"i10_index"`
	Interests   []string `json:"interests" yaml:"interests"`
	ScholarID   string   `json:"scholar_id" yaml:"scholar_id"`
}

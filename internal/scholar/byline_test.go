// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"reflect"
	"testing"
)

func TestParseByline(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		wantAuthors []string
		wantVenue   string
		wantYear    int
	}{
		{
			name:        "full byline",
			line:        "A Einstein, B Podolsky, N Rosen - Physical Review, 1935 - APS",
			wantAuthors: []string{"A Einstein", "B Podolsky", "N Rosen"},
			wantVenue:   "Physical Review",
			wantYear:    1935,
		},
		{
			name:        "no venue",
			line:        "J Smith - 2021 - example.com",
			wantAuthors: []string{"J Smith"},
			wantVenue:   "",
			wantYear:    2021,
		},
		{
			name:        "no year",
			line:        "J Smith - Proceedings of Things - publisher.com",
			wantAuthors: []string{"J Smith"},
			wantVenue:   "Proceedings of Things",
			wantYear:    0,
		},
		{
			name:        "truncated author list drops ellipsis",
			line:        "A Vaswani, N Shazeer, N Parmar, … - Advances in neural information processing systems, 2017",
			wantAuthors: []string{"A Vaswani", "N Shazeer", "N Parmar"},
			wantVenue:   "Advances in neural information processing systems",
			wantYear:    2017,
		},
		{
			name:        "authors only",
			line:        "J Smith",
			wantAuthors: []string{"J Smith"},
		},
		{
			name: "empty byline",
			line: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authors, venue, year := parseByline(tt.line)
			if !reflect.DeepEqual(authors, tt.wantAuthors) {
				t.Errorf("authors = %v, want %v", authors, tt.wantAuthors)
			}
			if venue != tt.wantVenue {
				t.Errorf("venue = %q, want %q", venue, tt.wantVenue)
			}
			if year != tt.wantYear {
				t.Errorf("year = %d, want %d", year, tt.wantYear)
			}
		})
	}
}

func TestParseCitedBy(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{"Cited by 1234", 1234},
		{"Cited by 1", 1},
		{"Related articles", 0},
		{"Cited by x", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := parseCitedBy(tt.label); got != tt.want {
			t.Errorf("parseCitedBy(%q) = %d, want %d", tt.label, got, tt.want)
		}
	}
}

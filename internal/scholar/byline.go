// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"regexp"
	"strconv"
	"strings"
)

// yearRe matches a plausible publication year anywhere in a byline.
var yearRe = regexp.MustCompile(`\b(1[5-9]\d{2}|20\d{2})\b`)

// parseByline splits a Scholar result byline of the form
// "A Einstein, B Podolsky - Physical Review, 1935 - APS" into its author
// list, venue, and year. Missing segments yield zero values.
func parseByline(line string) (authors []string, venue string, year int) {
	parts := strings.Split(line, " - ")

	for _, a := range strings.Split(parts[0], ",") {
		a = strings.TrimSpace(a)
		if a == "" || a == "…" {
			continue
		}
		authors = append(authors, a)
	}

	if len(parts) > 1 {
		meta := parts[1]
		if m := yearRe.FindString(meta); m != "" {
			year, _ = strconv.Atoi(m)
			meta = strings.Replace(meta, m, "", 1)
		}
		venue = strings.Trim(meta, " ,…")
	}
	return authors, venue, year
}

// parseCitedBy extracts the count from a "Cited by 123" link label.
func parseCitedBy(label string) int {
	const prefix = "Cited by "
	if !strings.HasPrefix(label, prefix) {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(label[len(prefix):]))
	if err != nil {
		return 0
	}
	return n
}

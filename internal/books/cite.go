// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package books

import (
	"fmt"
	"strings"

	"github.com/pdiddy/scholar-cli/pkg/types"
)

// Style selects a citation format.
type Style string

const (
	APA     Style = "apa"
	MLA     Style = "mla"
	Chicago Style = "chicago"
	Harvard Style = "harvard"
)

// ParseStyle maps a CLI style name onto a Style.
func ParseStyle(s string) (Style, error) {
	switch Style(strings.ToLower(s)) {
	case APA, MLA, Chicago, Harvard:
		return Style(strings.ToLower(s)), nil
	}
	return "", fmt.Errorf("unsupported citation style %q (use apa, mla, chicago, or harvard)", s)
}

// Cite formats b as a citation in the given style.
func Cite(b types.Book, style Style) (string, error) {
	publisher := b.Publisher
	if publisher == "" {
		publisher = "Publisher unknown"
	}

	switch style {
	case APA:
		// Author, A. A. (Year). Title of work. Publisher.
		return fmt.Sprintf("%s (%s). %s. %s.", authorsAPA(b.Authors), b.Year(), b.Title, publisher), nil
	case MLA, Chicago:
		// Last, First. Title of Work. Publisher, Year.
		authors := authorsMLA(b.Authors)
		sep := ". "
		if strings.HasSuffix(authors, ".") {
			// "et al." already ends with a period.
			sep = " "
		}
		return fmt.Sprintf("%s%s%s. %s, %s.", authors, sep, b.Title, publisher, b.Year()), nil
	case Harvard:
		// Last, F.M. (Year) Title of work. Publisher.
		return fmt.Sprintf("%s (%s) %s. %s.", authorsHarvard(b.Authors), b.Year(), b.Title, publisher), nil
	}
	return "", fmt.Errorf("unsupported citation style %q", style)
}

// authorsAPA formats "Last, F. M., & Last, F. M.".
func authorsAPA(authors []string) string {
	if len(authors) == 0 {
		return "Unknown Author"
	}
	formatted := make([]string, len(authors))
	for i, a := range authors {
		formatted[i] = lastInitials(a, " ")
	}
	switch len(formatted) {
	case 1:
		return formatted[0]
	case 2:
		return formatted[0] + " & " + formatted[1]
	}
	return strings.Join(formatted[:len(formatted)-1], ", ") + ", & " + formatted[len(formatted)-1]
}

// authorsMLA formats "Last, First, and First Last", collapsing three or more
// authors to "Last, First, et al.".
func authorsMLA(authors []string) string {
	if len(authors) == 0 {
		return "Unknown Author"
	}
	switch len(authors) {
	case 1:
		return lastFirst(authors[0])
	case 2:
		return lastFirst(authors[0]) + ", and " + authors[1]
	}
	return lastFirst(authors[0]) + ", et al."
}

// authorsHarvard formats "Last, F.M. and Last, F.M.".
func authorsHarvard(authors []string) string {
	if len(authors) == 0 {
		return "Unknown Author"
	}
	formatted := make([]string, len(authors))
	for i, a := range authors {
		formatted[i] = lastInitials(a, "")
	}
	switch len(formatted) {
	case 1:
		return formatted[0]
	case 2:
		return formatted[0] + " and " + formatted[1]
	}
	return strings.Join(formatted[:len(formatted)-1], ", ") + " and " + formatted[len(formatted)-1]
}

// lastInitials turns "Ian J Goodfellow" into "Goodfellow, I. J." (sep " ")
// or "Goodfellow, I.J." (sep ""). Single-token names pass through.
func lastInitials(name, sep string) string {
	parts := strings.Fields(name)
	if len(parts) < 2 {
		return name
	}
	initials := make([]string, len(parts)-1)
	for i, p := range parts[:len(parts)-1] {
		initials[i] = string([]rune(p)[0]) + "."
	}
	return parts[len(parts)-1] + ", " + strings.Join(initials, sep)
}

// lastFirst turns "Ian Goodfellow" into "Goodfellow, Ian". Single-token
// names pass through.
func lastFirst(name string) string {
	parts := strings.Fields(name)
	if len(parts) < 2 {
		return name
	}
	return parts[len(parts)-1] + ", " + strings.Join(parts[:len(parts)-1], " ")
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"fmt"
	"strings"
)

// Compile translates a model into the Scholar query string. It is pure and
// deterministic: equal models compile to byte-identical strings, which keeps
// dry-run previews reproducible.
//
// For Structured models the grammar is assembled in a fixed order: free text
// verbatim, then each exact phrase quoted and AND-joined, then the
// intitle:"..." filter, then -term exclusions. Tokens are joined with single
// spaces and the result carries no leading or trailing whitespace.
func Compile(m Model) (string, error) {
	if err := m.Validate(); err != nil {
		return "", err
	}

	switch m := m.(type) {
	case Raw:
		return m.Query, nil
	case Structured:
		return compileStructured(m), nil
	}
	// Unreachable: Model is sealed to Raw and Structured.
	return "", &CompilationError{Detail: fmt.Sprintf("unknown model type %T", m)}
}

func compileStructured(s Structured) string {
	var conjoined []string
	// Edge whitespace is stripped; the text itself is never re-parsed.
	if ft := strings.TrimSpace(s.FreeText); ft != "" {
		conjoined = append(conjoined, ft)
	}
	for _, p := range s.ExactPhrases {
		if strings.TrimSpace(p) == "" {
			continue
		}
		conjoined = append(conjoined, quotePhrase(p))
	}

	q := strings.Join(conjoined, " AND ")

	if s.TitleTerm != "" {
		q += ` intitle:"` + s.TitleTerm + `"`
	}
	for _, t := range s.Exclusions {
		if strings.TrimSpace(t) == "" {
			continue
		}
		q += " -" + t
	}
	return q
}

// quotePhrase wraps p in double quotes unless it already carries them, so
// quoting is idempotent.
func quotePhrase(p string) string {
	if len(p) >= 2 && strings.HasPrefix(p, `"`) && strings.HasSuffix(p, `"`) {
		return p
	}
	return `"` + p + `"`
}

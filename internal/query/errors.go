// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import "fmt"

// ValidationError reports a malformed search request. It is raised before
// compilation and never reaches a backend.
type ValidationError struct {
	// Field names the offending input field (e.g. "intitle", "year_end").
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// CompilationError reports an internal compiler invariant violation. It is
// unreachable for validated models and indicates a defect, not a user error.
type CompilationError struct {
	Detail string
}

func (e *CompilationError) Error() string {
	return "query compiler defect: " + e.Detail
}

package engine

import (
	"fmt"

	"github.com/japaniel/grammascan/pkg/matcher"
)

// StructuralError reports a malformed pattern caught at Register time:
// zero tokens, or an invalid Wildcard range (spec.md §7).
type StructuralError struct {
	Msg string
}

func (e *StructuralError) Error() string { return "engine: " + e.Msg }

// UnknownPredicateError reports a Custom matcher referencing a
// predicate name absent from the matcher table (spec.md §7, §4.4).
type UnknownPredicateError struct {
	PatternName string
	Predicate   matcher.Name
}

func (e *UnknownPredicateError) Error() string {
	return fmt.Sprintf("engine: pattern %q references unknown predicate %q", e.PatternName, e.Predicate)
}

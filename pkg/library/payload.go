// Package library is the built-in catalogue of JLPT-tagged grammar
// patterns, partitioned N5..N1 (spec.md §4.2, §4.2.3, §4.2.4). It is
// the single concrete consumer of pkg/engine's generic PatternMatcher,
// binding its payload type to Payload.
package library

// Payload is the caller-chosen payload spec.md §3.3 leaves open,
// resolved here to a stable grammar-point identifier plus its JLPT
// level tag. The level tag is opaque to pkg/engine (spec.md §6) and
// only meaningful to callers that group matches by proficiency level.
type Payload struct {
	// ID is the stable identifier for the grammar point, independent
	// of the (possibly several) pattern names that recognize it —
	// several spelling/shape variants can share one ID (spec.md §4.2.3).
	ID string
	// Level is the JLPT level tag (n5..n1) this grammar point belongs to.
	Level string
}

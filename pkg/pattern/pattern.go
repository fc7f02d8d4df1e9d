// Package pattern defines Pattern, the named, prioritized token
// sequence the engine scans for, and a set of reusable construction
// helpers shared across JLPT levels (spec.md §3.3, §4.2).
package pattern

import "github.com/japaniel/grammascan/pkg/matcher"

// Category tags a Pattern with what kind of grammar point it is —
// informational metadata carried alongside the match, not used by the
// matching algorithm itself (spec.md §3.3). Grounded on
// original_source/grammar-lib/src/patterns/{n4,n5}.rs's per-pattern
// `category: PatternCategory::...` field.
type Category string

const (
	// Conjugation is a bare inflectional ending of a single verb/adjective
	// (て-form, ます-form, negative, past tense, and the like).
	Conjugation Category = "Conjugation"
	// Construction is a multi-morpheme grammar point built on top of a
	// conjugated stem (て-form + auxiliary, conditionals, idioms, ...).
	Construction Category = "Construction"
)

// Pattern is a named token sequence with a priority used to break ties
// between overlapping matches at the same span (spec.md §3.3, §4.3).
// Payload is left to the caller (pkg/library binds it to the concrete
// grammar-point identifier, including the JLPT level this Category
// does not carry); see pkg/engine's generic PatternMatcher.
type Pattern struct {
	Name     string
	Tokens   []matcher.Matcher
	Priority int
	Category Category
}

// Seq is a convenience alias for a token-matcher sequence, the unit
// every component helper in components.go returns.
type Seq = []matcher.Matcher

// Concat flattens any number of sequences into one, in order —
// grounded on original_source's pattern_components.rs `concat`.
func Concat(parts ...Seq) Seq {
	var out Seq
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// Optional wraps every matcher in seq as individually skippable,
// grounded on pattern_components.rs `optional`.
func Optional(seq Seq) Seq {
	out := make(Seq, len(seq))
	for i, m := range seq {
		out[i] = matcher.Opt(m)
	}
	return out
}

// OptionalOne wraps a single matcher as skippable, grounded on
// pattern_components.rs `optional_single`.
func OptionalOne(m matcher.Matcher) matcher.Matcher { return matcher.Opt(m) }

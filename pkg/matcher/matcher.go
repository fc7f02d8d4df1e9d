// Package matcher implements the TokenMatcher algebra: the closed set
// of variants describing what a single position in a pattern accepts
// (spec §3.2, §4.1). The variant set is intentionally closed — richer
// logic is routed through Custom(tag), itself a closed, named set of
// predicates (predicates.go) rather than an open interface, so that
// pattern tables stay data-driven and serializable (spec §9.1).
package matcher

import "github.com/japaniel/grammascan/pkg/token"

// Kind identifies which TokenMatcher variant a Matcher is.
type Kind int

const (
	KindVerb Kind = iota
	KindSurface
	KindAny
	KindOptional
	KindWildcard
	KindCustom
)

// Matcher is one position in a Pattern. Only the fields relevant to
// Kind are meaningful; see the constructors below.
type Matcher struct {
	Kind Kind

	// KindVerb
	Form string // optional conjugation form constraint (features[5])
	Base string // optional base-form constraint

	// KindSurface
	Surface string

	// KindOptional
	Inner *Matcher

	// KindWildcard
	Min, Max int
	Stop     []Matcher

	// KindCustom
	Predicate Name
}

// Verb constrains pos[0]=動詞, optionally features[5] and base_form.
func Verb(form, base string) Matcher {
	return Matcher{Kind: KindVerb, Form: form, Base: base}
}

// VerbForm constrains pos[0]=動詞 and features[5]=form.
func VerbForm(form string) Matcher { return Verb(form, "") }

// SpecificVerb constrains pos[0]=動詞 and base_form=base.
func SpecificVerb(base string) Matcher { return Verb("", base) }

// SpecificVerbForm constrains pos[0]=動詞, features[5]=form and base_form=base.
func SpecificVerbForm(base, form string) Matcher { return Verb(form, base) }

// Surface requires surface=s.
func Surf(s string) Matcher { return Matcher{Kind: KindSurface, Surface: s} }

// Any matches any single token.
func Any() Matcher { return Matcher{Kind: KindAny} }

// Opt wraps a matcher so it may be skipped (consumed zero tokens) by
// the engine's search. This is a control construct, not a pointwise
// predicate (spec §9.2) — its semantics live in the engine.
func Opt(inner Matcher) Matcher {
	innerCopy := inner
	return Matcher{Kind: KindOptional, Inner: &innerCopy}
}

// Wild matches between min and max tokens inclusive, none of which
// satisfies any matcher in stop. Also a control construct (spec §9.2).
func Wild(min, max int, stop ...Matcher) Matcher {
	return Matcher{Kind: KindWildcard, Min: min, Max: max, Stop: stop}
}

// Cust dispatches to the named custom predicate (spec §4.4).
func Cust(name Name) Matcher { return Matcher{Kind: KindCustom, Predicate: name} }

// PointwiseResult is what a pointwise matcher (Verb/Surface/Any/Custom)
// yields when applied to one token: whether it matched, and the
// specificity score it contributes (spec §4.1).
type PointwiseResult struct {
	Matched bool
	Score   float64
}

// Pointwise applies a Verb/Surface/Any/Custom matcher to a single
// token. Callers must not pass KindOptional or KindWildcard — those
// are control constructs resolved by the engine's search, not
// pointwise predicates (spec §4.1, §9.2).
func Pointwise(m Matcher, t token.Token, table *Table) PointwiseResult {
	switch m.Kind {
	case KindVerb:
		if t.POS(0) != "動詞" {
			return PointwiseResult{}
		}
		score := 1.0
		if m.Form != "" {
			if t.ConjugationForm() != m.Form {
				return PointwiseResult{}
			}
			score += 2.0
		}
		if m.Base != "" {
			if t.BaseForm != m.Base {
				return PointwiseResult{}
			}
			score += 3.0
		}
		return PointwiseResult{Matched: true, Score: score}

	case KindSurface:
		if t.Surface == m.Surface {
			return PointwiseResult{Matched: true, Score: 3.0}
		}
		return PointwiseResult{}

	case KindAny:
		return PointwiseResult{Matched: true, Score: 0.5}

	case KindCustom:
		fn, ok := table.lookup(m.Predicate)
		if !ok {
			// Unresolved custom tags are caught at registration time
			// (engine.UnknownPredicateError); reaching here is a bug in the
			// caller, not input data, so treat conservatively.
			return PointwiseResult{}
		}
		if fn(t) {
			return PointwiseResult{Matched: true, Score: 2.0}
		}
		return PointwiseResult{}

	default:
		// KindOptional / KindWildcard: not a pointwise predicate.
		return PointwiseResult{}
	}
}

// IsControl reports whether m is a control construct (Optional or
// Wildcard) whose semantics the engine's search resolves, as opposed
// to a pointwise predicate.
func (m Matcher) IsControl() bool {
	return m.Kind == KindOptional || m.Kind == KindWildcard
}

// Package engine implements the pattern-matching search: given a
// registered set of pattern.Pattern values and a token.Token sequence,
// it finds every span the patterns match and scores each one
// (spec.md §3.4, §4.3). Grounded on original_source's
// src-tauri/src/grammar/pattern_matcher.rs (PatternMatcher::match_tokens,
// match_pattern_at) extended with the recursive Optional/Wildcard
// search the newer grammar-lib crate's richer TokenMatcher set implies.
package engine

import (
	"fmt"
	"sort"

	"github.com/japaniel/grammascan/pkg/matcher"
	"github.com/japaniel/grammascan/pkg/pattern"
	"github.com/japaniel/grammascan/pkg/token"
)

// PatternMatch is one located, scored occurrence of a registered
// pattern within a token sequence (spec.md §3.4).
type PatternMatch[T any] struct {
	Result      T
	Confidence  float64
	PatternName string
	StartChar   int
	EndChar     int
}

type entry[T any] struct {
	pattern pattern.Pattern
	payload T
}

// PatternMatcher holds a registered pattern table and scans token
// sequences against it. The payload type T is chosen by the caller;
// pkg/library binds it to its grammar-point identifier (spec.md §3.3).
type PatternMatcher[T any] struct {
	entries []entry[T]
	table   *matcher.Table
}

// New builds an empty matcher with the default predicate table.
func New[T any]() *PatternMatcher[T] {
	return &PatternMatcher[T]{table: matcher.NewTable()}
}

// Register adds a pattern/payload pair, validating its structure
// (spec.md §7): a pattern must have at least one token, and every
// Custom predicate it (transitively, through Optional/Wildcard)
// references must resolve in the matcher table.
func (pm *PatternMatcher[T]) Register(p pattern.Pattern, payload T) error {
	if len(p.Tokens) == 0 {
		return &StructuralError{Msg: fmt.Sprintf("pattern %q has zero tokens", p.Name)}
	}
	for _, m := range p.Tokens {
		if err := validateMatcher(p.Name, m, pm.table); err != nil {
			return err
		}
	}
	pm.entries = append(pm.entries, entry[T]{pattern: p, payload: payload})
	return nil
}

func validateMatcher(patternName string, m matcher.Matcher, table *matcher.Table) error {
	switch m.Kind {
	case matcher.KindCustom:
		if !table.Has(m.Predicate) {
			return &UnknownPredicateError{PatternName: patternName, Predicate: m.Predicate}
		}
	case matcher.KindOptional:
		if m.Inner == nil {
			return &StructuralError{Msg: fmt.Sprintf("pattern %q has an Optional with no inner matcher", patternName)}
		}
		return validateMatcher(patternName, *m.Inner, table)
	case matcher.KindWildcard:
		if m.Min < 0 || m.Max < m.Min {
			return &StructuralError{Msg: fmt.Sprintf("pattern %q has an invalid Wildcard range [%d,%d]", patternName, m.Min, m.Max)}
		}
		for _, s := range m.Stop {
			if err := validateMatcher(patternName, s, table); err != nil {
				return err
			}
		}
	}
	return nil
}

// Scan finds every occurrence of every registered pattern in tokens,
// sorted by confidence descending, ties broken by span length
// (end_char - start_char) descending (spec.md §4.3, §8 P1-P3).
func (pm *PatternMatcher[T]) Scan(tokens []token.Token) ([]PatternMatch[T], error) {
	if err := token.Sequence(tokens); err != nil {
		return nil, err
	}

	var out []PatternMatch[T]
	for _, e := range pm.entries {
		for start := range tokens {
			endIdx, confidence, ok := matchPatternAt(e.pattern, tokens, start, pm.table)
			if !ok {
				continue
			}
			out = append(out, PatternMatch[T]{
				Result:      e.payload,
				Confidence:  confidence,
				PatternName: e.pattern.Name,
				StartChar:   tokens[start].StartChar,
				EndChar:     tokens[endIdx-1].EndChar,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Confidence != out[j].Confidence {
			return out[i].Confidence > out[j].Confidence
		}
		li := out[i].EndChar - out[i].StartChar
		lj := out[j].EndChar - out[j].StartChar
		return li > lj
	})
	return out, nil
}

// matchPatternAt tries to match p.Tokens starting exactly at tokens[start].
// On success it reports the exclusive end token index and the
// confidence score (spec.md §4.3: priority + specificity_total/N).
func matchPatternAt(p pattern.Pattern, tokens []token.Token, start int, table *matcher.Table) (endIdx int, confidence float64, ok bool) {
	endIdx, specificity, ok := matchFrom(p.Tokens, 0, tokens, start, table)
	if !ok {
		return 0, 0, false
	}
	n := float64(len(p.Tokens))
	confidence = float64(p.Priority) + specificity/n
	return endIdx, confidence, true
}

// matchFrom recursively matches matchers[mi:] against tokens starting
// at ti. It returns the exclusive end index and the accumulated
// specificity score on success. Optional tries its consuming branch
// first (consumption is preferred on ambiguity, spec.md §4.3); Wildcard
// tries the shortest valid length first (non-greedy, spec.md §4.3).
func matchFrom(matchers []matcher.Matcher, mi int, tokens []token.Token, ti int, table *matcher.Table) (endIdx int, score float64, ok bool) {
	if mi == len(matchers) {
		return ti, 0, true
	}
	m := matchers[mi]

	switch m.Kind {
	case matcher.KindOptional:
		if ti < len(tokens) {
			pr := matcher.Pointwise(*m.Inner, tokens[ti], table)
			if pr.Matched {
				if endIdx, rest, ok := matchFrom(matchers, mi+1, tokens, ti+1, table); ok {
					return endIdx, pr.Score + rest, true
				}
			}
		}
		return matchFrom(matchers, mi+1, tokens, ti, table)

	case matcher.KindWildcard:
		maxK := m.Max
		if remaining := len(tokens) - ti; remaining < maxK {
			maxK = remaining
		}
		stopAt := maxK
		for j := 0; j < maxK; j++ {
			if tokenStopsWildcard(m, tokens[ti+j], table) {
				stopAt = j
				break
			}
		}
		for k := m.Min; k <= stopAt; k++ {
			if endIdx, rest, ok := matchFrom(matchers, mi+1, tokens, ti+k, table); ok {
				return endIdx, rest, true
			}
		}
		return 0, 0, false

	default:
		if ti >= len(tokens) {
			return 0, 0, false
		}
		pr := matcher.Pointwise(m, tokens[ti], table)
		if !pr.Matched {
			return 0, 0, false
		}
		endIdx, rest, ok := matchFrom(matchers, mi+1, tokens, ti+1, table)
		if !ok {
			return 0, 0, false
		}
		return endIdx, pr.Score + rest, true
	}
}

func tokenStopsWildcard(m matcher.Matcher, t token.Token, table *matcher.Table) bool {
	for _, sc := range m.Stop {
		if matcher.Pointwise(sc, t, table).Matched {
			return true
		}
	}
	return false
}

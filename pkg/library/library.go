package library

import (
	"github.com/japaniel/grammascan/pkg/engine"
	"github.com/japaniel/grammascan/pkg/pattern"
)

// entry pairs a pattern with the grammar-point id it recognizes and the
// JLPT level it was registered under. Several entries may share one id:
// variant spellings of the same grammar point are registered as
// distinct Pattern values with a common payload id (spec.md §4.2.3,
// §9.3). Level lives here rather than on pattern.Pattern itself: the
// level is a library-table concern (which n*.go file a pattern came
// from), distinct from pattern.Category's Conjugation/Construction tag.
type entryDef struct {
	p     pattern.Pattern
	id    string
	level string
}

// PatternMatcher is the engine matcher bound to this module's Payload,
// pre-loaded with every pattern shipped by New.
type PatternMatcher = engine.PatternMatcher[Payload]

// New builds a PatternMatcher pre-loaded with every pattern this
// module ships, across all five JLPT levels.
func New() (*PatternMatcher, error) {
	pm := engine.New[Payload]()
	for _, defs := range [][]entryDef{n5Patterns(), n4Patterns(), n3Patterns(), n2Patterns(), n1Patterns()} {
		for _, d := range defs {
			if err := pm.Register(d.p, Payload{ID: d.id, Level: d.level}); err != nil {
				return nil, err
			}
		}
	}
	return pm, nil
}

// Package analyzer wraps kagome into the morphological analyzer the
// core engine consumes (spec.md §6: "an external tool ... not part of
// this module"), reshaping its flattened token fields into the core's
// token.Token (POS path, feature slice, codepoint offsets).
package analyzer

import (
	"regexp"
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
	"golang.org/x/text/width"

	"github.com/japaniel/grammascan/pkg/token"
)

// Sentence is one sentence's worth of analyzed tokens, offsets
// relative to the start of that sentence.
type Sentence struct {
	Text   string
	Tokens []token.Token
}

// Analyzer handles text segmentation and morphological analysis.
type Analyzer struct {
	t *tokenizer.Tokenizer
}

// New creates a kagome-backed analyzer using the IPA dictionary.
func New() (*Analyzer, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Analyzer{t: t}, nil
}

// Analyze tokenizes a single sentence into the core's Token shape.
// Kagome does not report codepoint offsets directly, so they are
// reconstructed by accumulating each token's surface rune length in
// order, the same technique the core's own tests use to build
// well-formed token sequences.
func (a *Analyzer) Analyze(text string) ([]token.Token, error) {
	raw := a.t.Tokenize(text)
	var out []token.Token
	offset := 0

	for _, rt := range raw {
		if rt.Class == tokenizer.DUMMY {
			continue
		}
		if strings.TrimSpace(rt.Surface) == "" {
			continue
		}

		features := rt.Features()
		pos := posPath(features)
		morph := morphFeatures(features)
		base := rt.Surface
		if len(features) > 6 && features[6] != "*" {
			base = features[6]
		}

		n := len([]rune(rt.Surface))
		out = append(out, token.Token{
			Surface:      rt.Surface,
			BaseForm:     base,
			PartOfSpeech: pos,
			Features:     morph,
			StartChar:    offset,
			EndChar:      offset + n,
		})
		offset += n
	}

	return out, token.Sequence(out)
}

// AnalyzeDocument splits text into sentences and analyzes each one.
func (a *Analyzer) AnalyzeDocument(text string) ([]Sentence, error) {
	var result []Sentence
	for _, s := range splitSentences(text) {
		if strings.TrimSpace(s) == "" {
			continue
		}
		toks, err := a.Analyze(s)
		if err != nil {
			return nil, err
		}
		result = append(result, Sentence{Text: s, Tokens: toks})
	}
	return result, nil
}

// posPath returns the kagome POS sub-tags (features[0:4]) as the
// core's PartOfSpeech path, dropping "*" placeholders at the tail.
func posPath(features []string) []string {
	end := 4
	if end > len(features) {
		end = len(features)
	}
	path := append([]string(nil), features[:end]...)
	for len(path) > 0 && path[len(path)-1] == "*" {
		path = path[:len(path)-1]
	}
	return path
}

// morphFeatures returns kagome's full feature list unchanged: index 4
// is the conjugation class, index 5 the conjugation form, matching
// token.Token.ConjugationClass/ConjugationForm.
func morphFeatures(features []string) []string {
	return append([]string(nil), features...)
}

// splitSentences width-folds full-width ASCII punctuation to its
// half-width form before splitting, so "１２３！" and "123!" are
// treated the same way by the delimiter check below; width.Fold also
// turns the full-width "！"/"？" delimiters into plain "!"/"?", which
// is why those (not their full-width originals) are checked here.
func splitSentences(text string) []string {
	folded := width.Fold.String(text)
	var sentences []string
	var current strings.Builder
	for _, r := range folded {
		current.WriteRune(r)
		if r == '。' || r == '!' || r == '?' || r == '\n' {
			sentences = append(sentences, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		sentences = append(sentences, current.String())
	}
	return sentences
}

var (
	reRT = regexp.MustCompile(`(?si)<rt\b[^>]*>.*?</rt>`)
	reRP = regexp.MustCompile(`(?si)<rp\b[^>]*>.*?</rp>`)
)

// SanitizeRuby removes ruby text (<rt>...</rt>) and ruby parentheses
// (<rp>...</rp>) from HTML content extracted by go-readability:
// readability otherwise duplicates furigana into the plain-text output
// (e.g. "漢字" becomes "漢字かんじ").
func SanitizeRuby(content []byte) []byte {
	cleaned := reRT.ReplaceAll(content, []byte{})
	cleaned = reRP.ReplaceAll(cleaned, []byte{})
	return cleaned
}

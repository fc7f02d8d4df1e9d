package analyzer

import (
	"strings"
	"testing"
)

func TestAnalyzeBasicSentence(t *testing.T) {
	a, err := New()
	if err != nil {
		t.Fatalf("failed to create analyzer: %v", err)
	}

	tokens, err := a.Analyze("猫が好きです。")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if len(tokens) == 0 {
		t.Fatal("expected at least one token")
	}

	found := false
	for _, tok := range tokens {
		if tok.Surface == "猫" {
			found = true
			if tok.BaseForm != "猫" {
				t.Errorf("expected base form 猫, got %s", tok.BaseForm)
			}
		}
	}
	if !found {
		t.Error("expected to find token 猫")
	}

	// Offsets must be monotonic codepoint positions, not byte positions.
	for i, tok := range tokens {
		if tok.StartChar >= tok.EndChar {
			t.Errorf("token %d (%q) has non-increasing offsets %d..%d", i, tok.Surface, tok.StartChar, tok.EndChar)
		}
		if i > 0 && tok.StartChar != tokens[i-1].EndChar {
			t.Errorf("token %d (%q) does not start where token %d ended", i, tok.Surface, i-1)
		}
	}
}

func TestAnalyzeDocumentSplitsOnSentenceDelimiters(t *testing.T) {
	a, err := New()
	if err != nil {
		t.Fatalf("failed to create analyzer: %v", err)
	}

	sentences, err := a.AnalyzeDocument("猫が好きです。犬も好きです。")
	if err != nil {
		t.Fatalf("AnalyzeDocument failed: %v", err)
	}
	if len(sentences) != 2 {
		t.Fatalf("expected 2 sentences, got %d", len(sentences))
	}
	for _, s := range sentences {
		if len(s.Tokens) == 0 {
			t.Errorf("sentence %q produced no tokens", s.Text)
		}
	}
}

func TestSplitSentencesFullWidthPunctuation(t *testing.T) {
	// Full-width "！" folds to ASCII "!" before the delimiter check, so
	// it splits just as its half-width counterpart would.
	got := splitSentences("すごい！次は？")
	if len(got) != 2 {
		t.Fatalf("expected 2 sentences, got %d: %v", len(got), got)
	}
}

func TestSanitizeRuby(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple ruby",
			input:    "<ruby>漢字<rt>かんじ</rt></ruby>",
			expected: "<ruby>漢字</ruby>",
		},
		{
			name:     "ruby with rp",
			input:    "<ruby>漢字<rp>(</rp><rt>かんじ</rt><rp>)</rp></ruby>",
			expected: "<ruby>漢字</ruby>",
		},
		{
			name:     "multiple ruby",
			input:    "<ruby>私<rt>わたし</rt></ruby>は<ruby>猫<rt>ねこ</rt></ruby>である",
			expected: "<ruby>私</ruby>は<ruby>猫</ruby>である",
		},
		{
			name:     "attributes in tags",
			input:    "<ruby class='test'>漢字<rt class='reading'>かんじ</rt></ruby>",
			expected: "<ruby class='test'>漢字</ruby>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SanitizeRuby([]byte(tt.input))
			if string(result) != tt.expected {
				t.Errorf("got %q, want %q", string(result), tt.expected)
			}
		})
	}
}

func TestPosPathDropsTrailingPlaceholders(t *testing.T) {
	got := posPath([]string{"名詞", "一般", "*", "*", "*", "*"})
	want := []string{"名詞", "一般"}
	if strings.Join(got, "/") != strings.Join(want, "/") {
		t.Errorf("got %v, want %v", got, want)
	}
}

package matcher

import "testing"

import "github.com/japaniel/grammascan/pkg/token"

func verbToken(surface, base, form string) token.Token {
	return token.Token{
		Surface:      surface,
		BaseForm:     base,
		PartOfSpeech: []string{"動詞", "自立"},
		Features:     []string{"動詞", "自立", "*", "*", "一段", form},
	}
}

func TestPointwiseVerb(t *testing.T) {
	table := NewTable()
	tok := verbToken("食べ", "食べる", "連用形")

	if r := Pointwise(VerbForm("連用形"), tok, table); !r.Matched {
		t.Fatalf("expected form-only verb matcher to match")
	}
	if r := Pointwise(VerbForm("終止形"), tok, table); r.Matched {
		t.Fatalf("form mismatch must not match")
	}
	if r := Pointwise(SpecificVerb("食べる"), tok, table); !r.Matched {
		t.Fatalf("expected base-form matcher to match")
	}
	if r := Pointwise(SpecificVerb("飲む"), tok, table); r.Matched {
		t.Fatalf("base mismatch must not match")
	}

	plain := Pointwise(Verb("", ""), tok, table)
	withForm := Pointwise(VerbForm("連用形"), tok, table)
	withBoth := Pointwise(SpecificVerbForm("食べる", "連用形"), tok, table)
	if !(plain.Score < withForm.Score && withForm.Score < withBoth.Score) {
		t.Fatalf("specificity scores must increase with constraints: %v < %v < %v", plain.Score, withForm.Score, withBoth.Score)
	}
}

func TestPointwiseSurfaceAndAny(t *testing.T) {
	table := NewTable()
	tok := token.Token{Surface: "て"}

	if r := Pointwise(Surf("て"), tok, table); !r.Matched {
		t.Fatalf("expected exact surface match")
	}
	if r := Pointwise(Surf("で"), tok, table); r.Matched {
		t.Fatalf("surface mismatch must not match")
	}
	if r := Pointwise(Any(), tok, table); !r.Matched {
		t.Fatalf("Any must always match")
	}
}

func TestIsControl(t *testing.T) {
	if !Opt(Any()).IsControl() {
		t.Fatalf("Optional must be a control construct")
	}
	if !Wild(0, 3).IsControl() {
		t.Fatalf("Wildcard must be a control construct")
	}
	if Any().IsControl() {
		t.Fatalf("Any must not be a control construct")
	}
}

package library

import (
	"testing"

	"github.com/japaniel/grammascan/pkg/token"
)

func withOffsets(toks []token.Token) []token.Token {
	c := 0
	for i := range toks {
		toks[i].StartChar = c
		toks[i].EndChar = c + len([]rune(toks[i].Surface))
		c = toks[i].EndChar
	}
	return toks
}

func sf(s string) token.Token { return token.Token{Surface: s, BaseForm: s} }

func verbTok(surface, base, class, form string) token.Token {
	return token.Token{
		Surface:      surface,
		BaseForm:     base,
		PartOfSpeech: []string{"動詞", "自立"},
		Features:     []string{"動詞", "自立", "*", "*", class, form},
	}
}

func TestNewBuildsWithoutError(t *testing.T) {
	if _, err := New(); err != nil {
		t.Fatalf("New() returned an error: %v", err)
	}
}

func TestScenarioNagaraniUmareShite(t *testing.T) {
	// S8: 生まれながらにして才能がある -> nagarani_umare_shite.
	pm, err := New()
	if err != nil {
		t.Fatal(err)
	}
	toks := withOffsets([]token.Token{
		sf("生まれながら"), sf("に"), sf("し"), sf("て"),
		sf("才能"), sf("が"), verbTok("ある", "ある", "五段ラ行", "基本形"),
	})
	matches, err := pm.Scan(toks)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, m := range matches {
		if m.PatternName == "nagarani_umare_shite" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected nagarani_umare_shite to fire: %+v", matches)
	}
}

func TestScenarioTaritomo(t *testing.T) {
	// S9: 一人たりとも許さない -> taritomo.
	pm, err := New()
	if err != nil {
		t.Fatal(err)
	}
	toks := withOffsets([]token.Token{
		sf("一人"), sf("たり"), sf("と"), sf("も"),
		verbTok("許さ", "許す", "五段サ行", "未然形"), sf("ない"),
	})
	matches, err := pm.Scan(toks)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, m := range matches {
		if m.PatternName == "taritomo" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected taritomo to fire: %+v", matches)
	}
}

func TestScenarioDewaArumaishi(t *testing.T) {
	// S10: 子供ではあるまいし分かるでしょ -> dewa_arumaishi.
	pm, err := New()
	if err != nil {
		t.Fatal(err)
	}
	toks := withOffsets([]token.Token{
		sf("子供"), sf("で"), sf("は"), sf("ある"), sf("まい"), sf("し"),
		verbTok("分かる", "分かる", "五段ラ行", "基本形"), sf("でしょ"),
	})
	matches, err := pm.Scan(toks)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, m := range matches {
		if m.PatternName == "dewa_arumaishi" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected dewa_arumaishi to fire: %+v", matches)
	}
}

func TestScenarioTeIru(t *testing.T) {
	pm, err := New()
	if err != nil {
		t.Fatal(err)
	}
	toks := withOffsets([]token.Token{
		verbTok("食べ", "食べる", "一段", "連用形"),
		sf("て"),
		verbTok("いる", "いる", "一段", "基本形"),
	})
	matches, err := pm.Scan(toks)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, m := range matches {
		if m.PatternName == "te_iru" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected te_iru to fire: %+v", matches)
	}
}

func TestScenarioMasuForm(t *testing.T) {
	// S1: 食べます -> masu_form spanning [0, 4).
	pm, err := New()
	if err != nil {
		t.Fatal(err)
	}
	toks := withOffsets([]token.Token{
		verbTok("食べ", "食べる", "一段", "連用形"),
		sf("ます"),
	})
	matches, err := pm.Scan(toks)
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range matches {
		if m.PatternName == "masu_form" {
			if m.StartChar != 0 || m.EndChar != 4 {
				t.Fatalf("expected masu_form at [0,4), got [%d,%d)", m.StartChar, m.EndChar)
			}
			return
		}
	}
	t.Fatalf("expected masu_form to fire: %+v", matches)
}

func TestScenarioTeMitaiToOmotteIruNDesu(t *testing.T) {
	// S2: 食べてみたいと思っているんです -> te_miru, tai_form, te_iru,
	// n_desu all present.
	pm, err := New()
	if err != nil {
		t.Fatal(err)
	}
	taiAux := token.Token{Surface: "たい", BaseForm: "たい", PartOfSpeech: []string{"助動詞"}}
	nNoun := token.Token{Surface: "ん", BaseForm: "ん", PartOfSpeech: []string{"名詞", "非自立"}}
	toks := withOffsets([]token.Token{
		verbTok("食べ", "食べる", "一段", "連用形"),
		sf("て"),
		verbTok("み", "みる", "一段", "連用形"),
		taiAux,
		sf("と"),
		verbTok("思っ", "思う", "五段ワ行", "連用タ接続"),
		sf("て"),
		verbTok("いる", "いる", "一段", "基本形"),
		nNoun,
		sf("です"),
	})
	matches, err := pm.Scan(toks)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]bool{"te_miru": false, "tai_form": false, "te_iru": false, "n_desu": false}
	for _, m := range matches {
		if _, ok := want[m.PatternName]; ok {
			want[m.PatternName] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Fatalf("expected %s to fire: %+v", name, matches)
		}
	}
}

func TestScenarioTeMoIiPrecedesTeMo(t *testing.T) {
	// S3: 食べてもいい -> te_mo_ii and te_mo both present; te_mo_ii
	// precedes te_mo in the output.
	pm, err := New()
	if err != nil {
		t.Fatal(err)
	}
	iiAux := token.Token{Surface: "いい", BaseForm: "いい", PartOfSpeech: []string{"形容詞"}}
	toks := withOffsets([]token.Token{
		verbTok("食べ", "食べる", "一段", "連用形"),
		sf("て"),
		sf("も"),
		iiAux,
	})
	matches, err := pm.Scan(toks)
	if err != nil {
		t.Fatal(err)
	}
	teMoIiIdx, teMoIdx := -1, -1
	for i, m := range matches {
		switch m.PatternName {
		case "te_mo_ii":
			teMoIiIdx = i
		case "te_mo":
			teMoIdx = i
		}
	}
	if teMoIiIdx == -1 {
		t.Fatalf("expected te_mo_ii to fire: %+v", matches)
	}
	if teMoIdx == -1 {
		t.Fatalf("expected te_mo to fire: %+v", matches)
	}
	if teMoIiIdx >= teMoIdx {
		t.Fatalf("expected te_mo_ii to precede te_mo, got indices %d, %d: %+v", teMoIiIdx, teMoIdx, matches)
	}
}

func TestScenarioTaraDouPrecedesTaraConditional(t *testing.T) {
	// S4: 食べたらどうですか -> tara_dou present and precedes any
	// tara_conditional match.
	pm, err := New()
	if err != nil {
		t.Fatal(err)
	}
	taraAux := token.Token{Surface: "たら", BaseForm: "た", PartOfSpeech: []string{"助動詞"}}
	toks := withOffsets([]token.Token{
		verbTok("食べ", "食べる", "一段", "連用形"),
		taraAux,
		sf("どう"),
		sf("です"),
		sf("か"),
	})
	matches, err := pm.Scan(toks)
	if err != nil {
		t.Fatal(err)
	}
	taraDouIdx, taraCondIdx := -1, -1
	for i, m := range matches {
		switch m.PatternName {
		case "tara_dou":
			taraDouIdx = i
		case "tara_conditional":
			taraCondIdx = i
		}
	}
	if taraDouIdx == -1 {
		t.Fatalf("expected tara_dou to fire: %+v", matches)
	}
	if taraCondIdx != -1 && taraDouIdx >= taraCondIdx {
		t.Fatalf("expected tara_dou to precede tara_conditional, got indices %d, %d: %+v", taraDouIdx, taraCondIdx, matches)
	}
}

func TestAllPatternsHaveNonEmptyIDs(t *testing.T) {
	for _, defs := range [][]entryDef{n5Patterns(), n4Patterns(), n3Patterns(), n2Patterns(), n1Patterns()} {
		for _, d := range defs {
			if d.id == "" {
				t.Fatalf("pattern %q has an empty payload id", d.p.Name)
			}
			if len(d.p.Tokens) == 0 {
				t.Fatalf("pattern %q has no tokens", d.p.Name)
			}
		}
	}
}

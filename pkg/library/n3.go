package library

import (
	"github.com/japaniel/grammascan/pkg/matcher"
	"github.com/japaniel/grammascan/pkg/pattern"
)

// n3Patterns is grounded pattern-for-pattern on
// original_source/src-tauri/src/grammar/patterns/n3.rs (55 patterns).
func n3Patterns() []entryDef {
	def := func(name string, priority int, toks pattern.Seq, id string, cat pattern.Category) entryDef {
		return entryDef{p: pattern.Pattern{Name: name, Tokens: toks, Priority: priority, Category: cat}, id: id, level: "N3"}
	}
	// n3.rs predates the category field (see n1.go/n2.go); Construction
	// is the default below, with Conjugation reserved for the two
	// patterns shaped like n5.rs's bare verb+auxiliary-ending patterns
	// (zu and mai, cf. negative and mashou in n5.go).
	return []entryDef{
		def("hajimeru", 7, pattern.Hajimeru(), "hajimeru", pattern.Construction),
		def("rashii", 5, pattern.Seq{matcher.Any(), matcher.Surf("らしい")}, "rashii", pattern.Construction),
		def("you_ni_naru", 10, pattern.YouNiNaru(), "you_ni_naru", pattern.Construction),
		def("you_ni_suru", 10, pattern.YouNiSuru(), "you_ni_suru", pattern.Construction),
		def("tame_ni", 8, pattern.TameNi(), "tame_ni", pattern.Construction),
		def("zu", 6, pattern.Zu(), "zu", pattern.Conjugation),
		def("gachi", 6, pattern.Seq{matcher.Cust(matcher.FlexibleVerbForm), matcher.Surf("がち")}, "gachi", pattern.Construction),
		def("ta_bakari", 9, pattern.TaBakari(), "ta_bakari", pattern.Construction),
		def("ta_mono_da", 10, pattern.TaMonoDa(), "ta_mono_da", pattern.Construction),
		def("ta_mono_desu", 10, pattern.TaMonoDesu(), "ta_mono_da", pattern.Construction),
		def("ni_chigainai", 8, pattern.Seq{matcher.Any(), matcher.Surf("に"), matcher.Surf("違い"), matcher.Surf("ない")}, "ni_chigainai", pattern.Construction),
		def("mama", 6, pattern.Seq{matcher.Cust(matcher.FlexibleVerbForm), matcher.Surf("まま")}, "mama", pattern.Construction),
		def("furi", 6, pattern.Seq{matcher.Any(), matcher.Surf("ふり")}, "furi", pattern.Construction),
		def("nai_uchi_ni", 10, pattern.NaiUchiNi(), "nai_uchi_ni", pattern.Construction),
		def("ppoi_split", 6, pattern.Seq{matcher.Any(), matcher.Cust(matcher.PpoiForm)}, "ppoi", pattern.Construction),
		// ppoi_compound has lower priority than ppoi_split: when both can
		// fire, the two-token split reading (stem + suffix) is preferred;
		// open question, see DESIGN.md Q2.
		def("ppoi_compound", 5, pattern.Seq{matcher.Cust(matcher.PpoiForm)}, "ppoi", pattern.Construction),
		def("to_shitara", 8, pattern.Seq{matcher.Any(), matcher.Surf("と"), matcher.Surf("し"), matcher.Surf("たら")}, "to_shitara", pattern.Construction),
		def("bakari", 5, pattern.Seq{matcher.Any(), matcher.Surf("ばかり")}, "bakari", pattern.Construction),
		def("kawari", 6, pattern.Seq{matcher.Any(), matcher.Surf("代わり")}, "kawari", pattern.Construction),
		def("okage_de", 7, pattern.Seq{matcher.Any(), matcher.Surf("おかげ"), matcher.Surf("で")}, "okage_de", pattern.Construction),
		def("sae", 5, pattern.Seq{matcher.Any(), matcher.Surf("さえ")}, "sae", pattern.Construction),
		def("you_ni_standalone", 7, pattern.Seq{matcher.VerbForm("基本形"), matcher.Surf("よう"), matcher.Surf("に")}, "you_ni", pattern.Construction),
		def("masaka", 5, pattern.Seq{matcher.Surf("まさか")}, "masaka", pattern.Construction),
		def("mushiro", 5, pattern.Seq{matcher.Surf("むしろ")}, "mushiro", pattern.Construction),
		def("sudeni", 5, pattern.Seq{matcher.Surf("すでに")}, "sudeni", pattern.Construction),
		def("tsui", 5, pattern.Seq{matcher.Surf("つい")}, "tsui", pattern.Construction),
		def("doushitemo", 5, pattern.Seq{matcher.Surf("どうしても")}, "doushitemo", pattern.Construction),
		def("teki_suffix", 6, pattern.Seq{matcher.Any(), matcher.Cust(matcher.TekiSuffix)}, "teki", pattern.Construction),
		def("tate_suffix", 6, pattern.Seq{matcher.Any(), matcher.Cust(matcher.TateSuffix)}, "tate", pattern.Construction),
		def("ni_yotte", 7, pattern.Seq{matcher.Any(), matcher.Surf("によって")}, "ni_yotte", pattern.Construction),
		def("kiri_past", 7, pattern.Seq{matcher.Cust(matcher.PastAuxiliary), matcher.Surf("きり")}, "kiri", pattern.Construction),
		def("kiri_noun", 6, pattern.Seq{matcher.Cust(matcher.Noun), matcher.Surf("きり")}, "kiri", pattern.Construction),
		def("gurai", 5, pattern.Seq{matcher.Any(), matcher.Cust(matcher.GuraiForm)}, "gurai", pattern.Construction),
		def("ni_yoru_to", 8, pattern.Seq{matcher.Any(), matcher.Surf("に"), matcher.SpecificVerb("よる"), matcher.Surf("と")}, "ni_yoru_to", pattern.Construction),
		def("toshite", 6, pattern.Seq{matcher.Any(), matcher.Surf("として")}, "toshite", pattern.Construction),
		def("suginai", 7, pattern.Seq{matcher.Any(), matcher.Surf("過ぎ"), matcher.Surf("ない")}, "suginai", pattern.Construction),
		def("oite_compound", 7, pattern.Seq{matcher.Any(), matcher.Surf("において")}, "oite", pattern.Construction),
		def("oite_split", 7, pattern.Seq{matcher.Any(), matcher.Cust(matcher.OiteForm), matcher.Surf("て")}, "oite", pattern.Construction),
		def("tsumori_de", 6, pattern.Seq{matcher.Any(), matcher.Surf("つもり"), matcher.Surf("で")}, "tsumori_de", pattern.Construction),
		def("ni_kansuru", 7, pattern.Seq{matcher.Any(), matcher.Cust(matcher.NiKansuruForm)}, "ni_kansuru", pattern.Construction),
		def("to_tomoni", 7, pattern.Seq{matcher.Any(), matcher.Surf("とともに")}, "to_tomoni", pattern.Construction),
		def("te_hajimete", 8, pattern.Seq{
			matcher.Cust(matcher.FlexibleVerbForm), matcher.Surf("て"), matcher.Cust(matcher.HajimeteAdverb),
		}, "te_hajimete", pattern.Construction),
		def("seizei", 5, pattern.Seq{matcher.Surf("せいぜい")}, "seizei", pattern.Construction),
		def("wo_hajime", 7, pattern.Seq{matcher.Any(), matcher.Surf("を"), matcher.Surf("始め")}, "wo_hajime", pattern.Construction),
		def("ba_hodo", 8, pattern.Seq{
			matcher.VerbForm("仮定形"), matcher.Surf("ば"), matcher.Any(), matcher.Surf("ほど"),
		}, "ba_hodo", pattern.Construction),
		// Final N3 patterns (adverbs, particles, advanced forms).
		def("douyara", 5, pattern.Seq{matcher.Surf("どうやら")}, "douyara", pattern.Construction),
		def("kaette", 5, pattern.Seq{matcher.Surf("かえって")}, "kaette", pattern.Construction),
		def("sae_ba", 9, pattern.Seq{
			matcher.Any(), matcher.Surf("さえ"), matcher.VerbForm("仮定形"), matcher.Surf("ば"),
		}, "sae_ba", pattern.Construction),
		def("koso", 6, pattern.Seq{matcher.Any(), matcher.Surf("こそ")}, "koso", pattern.Construction),
		def("sarani", 5, pattern.Seq{matcher.Surf("さらに")}, "sarani", pattern.Construction),
		// mai pairs a bare verb form with a single custom auxiliary ending,
		// the same shape as n5.go's mashou, so it's classed as Conjugation
		// rather than Construction.
		def("mai", 7, pattern.Seq{matcher.VerbForm("基本形"), matcher.Cust(matcher.MaiForm)}, "mai", pattern.Conjugation),
		def("wazawaza", 5, pattern.Seq{matcher.Surf("わざわざ")}, "wazawaza", pattern.Construction),
		def("kagiru", 7, pattern.Seq{matcher.Any(), matcher.Surf("に"), matcher.SpecificVerb("限る")}, "kagiru", pattern.Construction),
		def("nakanaka", 5, pattern.Seq{matcher.Surf("なかなか")}, "nakanaka", pattern.Construction),
		def("ittai", 5, pattern.Seq{matcher.Surf("いったい")}, "ittai", pattern.Construction),
	}
}

package library

import (
	"github.com/japaniel/grammascan/pkg/matcher"
	"github.com/japaniel/grammascan/pkg/pattern"
)

// n5Patterns is grounded pattern-for-pattern on
// original_source/grammar-lib/src/patterns/n5.rs: same names, token
// sequences and priorities, re-expressed with this module's types.
func n5Patterns() []entryDef {
	def := func(name string, priority int, toks pattern.Seq, id string, cat pattern.Category) entryDef {
		return entryDef{p: pattern.Pattern{Name: name, Tokens: toks, Priority: priority, Category: cat}, id: id, level: "N5"}
	}
	return []entryDef{
		def("te_iru", 10, pattern.TeIru(), "te_iru", pattern.Construction),
		def("te_request", 10, pattern.Concat(pattern.TeConstruction(), pattern.Seq{matcher.SpecificVerb("くださる")}), "te_request", pattern.Construction),
		def("te_kudasai", 10, pattern.TeKudasaiConstruction(), "te_kudasai", pattern.Construction),
		def("te_kara", 9, pattern.Concat(pattern.TeConstruction(), pattern.Seq{matcher.Surf("から")}), "te_kara", pattern.Construction),
		def("te_form_basic", 3, pattern.TeConstruction(), "te_form", pattern.Conjugation),
		def("tai_form", 5, pattern.TaiForm(), "tai_form", pattern.Conjugation),
		def("takatta_form", 6, pattern.TakattaForm(), "takatta_form", pattern.Conjugation),
		def("takunai_form", 6, pattern.TakunaiForm(), "takunai_form", pattern.Conjugation),
		def("dictionary_form", 1, pattern.Seq{matcher.VerbForm("基本形")}, "dictionary_form", pattern.Conjugation),
		def("masu_form", 4, pattern.MasuEnding(), "masu_form", pattern.Conjugation),
		def("negative", 4, pattern.NegativeEnding(), "negative", pattern.Conjugation),
		def("past_tense", 4, pattern.Seq{matcher.Cust(matcher.FlexibleVerbForm), matcher.Cust(matcher.PastAuxiliary)}, "past_tense", pattern.Conjugation),
		def("mashou", 6, pattern.Seq{matcher.VerbForm("連用形"), matcher.Cust(matcher.MashouForm)}, "mashou", pattern.Conjugation),
		def("ta_koto_ga_aru", 11, pattern.TaKotoGaAru(), "ta_koto_ga_aru", pattern.Construction),
		def("te_mo_ii", 11, pattern.TeMoIi(), "te_mo_ii", pattern.Construction),
		def("te_wa_ikenai", 11, pattern.TeWaIkenai(), "te_wa_ikenai", pattern.Construction),
		def("naide_kudasai", 11, pattern.NaideKudasai(), "naide_kudasai", pattern.Construction),
		def("masen_ka", 7, pattern.Seq{
			matcher.VerbForm("連用形"), matcher.Cust(matcher.MasenForm), matcher.Surf("ん"), matcher.Surf("か"),
		}, "masen_ka", pattern.Construction),
		def("mashou_ka", 8, pattern.Seq{
			matcher.VerbForm("連用形"), matcher.Cust(matcher.MashouForm), matcher.Surf("う"), matcher.Surf("か"),
		}, "mashou_ka", pattern.Construction),
		def("sugiru", 6, pattern.Sugiru(), "sugiru", pattern.Construction),
		def("tsumori_desu", 9, pattern.TsumoriDesu(), "tsumori_desu", pattern.Construction),
		def("hou_ga_ii", 11, pattern.Concat(
			pattern.Seq{matcher.Cust(matcher.FlexibleVerbForm), matcher.Cust(matcher.PastAuxiliary)},
			pattern.HouGaIiSuffix(),
		), "hou_ga_ii", pattern.Construction),
		def("nakucha_ikenai", 10, pattern.Seq{
			matcher.VerbForm("未然形"), matcher.Surf("なく"), matcher.Surf("ちゃ"), matcher.Cust(matcher.IkenaiForm),
		}, "nakucha_ikenai", pattern.Construction),
		def("deshou", 5, pattern.Seq{matcher.Cust(matcher.DeshouForm), matcher.Surf("う")}, "deshou", pattern.Construction),
		def("mada_te_imasen", 12, pattern.Seq{
			matcher.Surf("まだ"), matcher.Cust(matcher.FlexibleVerbForm), matcher.Cust(matcher.TeParticle),
			matcher.Surf("い"), matcher.Cust(matcher.MasenForm), matcher.Surf("ん"),
		}, "mada_te_imasen", pattern.Construction),
		def("n_desu", 5, pattern.NDesu(), "n_desu", pattern.Construction),
		def("node", 5, pattern.Concat(pattern.Seq{matcher.VerbForm("基本形")}, pattern.NodeSuffix()), "node", pattern.Construction),
		def("ni_iku", 8, pattern.NiIku(), "ni_iku", pattern.Construction),
		def("mae_ni", 7, pattern.MaeNi(), "mae_ni", pattern.Construction),
	}
}

package library

import (
	"github.com/japaniel/grammascan/pkg/matcher"
	"github.com/japaniel/grammascan/pkg/pattern"
)

// n4Patterns is grounded pattern-for-pattern on
// original_source/grammar-lib/src/patterns/n4.rs.
func n4Patterns() []entryDef {
	def := func(name string, priority int, toks pattern.Seq, id string) entryDef {
		return entryDef{p: pattern.Pattern{Name: name, Tokens: toks, Priority: priority, Category: pattern.Construction}, id: id, level: "N4"}
	}
	return []entryDef{
		def("te_miru", 10, pattern.TeMiru(), "te_miru"),
		def("te_shimau", 10, pattern.TeShimau(), "te_shimau"),
		def("tari_form", 8, pattern.Seq{matcher.Cust(matcher.FlexibleVerbForm), matcher.Cust(matcher.TariParticle)}, "tari_form"),
		def("ba_conditional", 6, pattern.BaConditional(), "ba_conditional"),
		def("tara_conditional", 7, pattern.TaraConditional(), "tara_conditional"),
		def("potential", 5, pattern.PassiveIchidan(), "potential"),
		def("passive", 4, pattern.PassiveIchidan(), "passive"),
		def("causative", 5, pattern.Causative(), "causative"),
		def("causative_passive", 11, pattern.CausativePassive(), "causative_passive"),
		def("volitional", 6, pattern.Volitional(), "volitional"),
		def("imperative", 5, pattern.Imperative(), "imperative"),
		def("nagara", 7, pattern.Nagara(), "nagara"),
		def("past_negative", 6, pattern.PastNegative(), "past_negative"),
		def("must_nakereba", 10, pattern.Seq{
			matcher.Cust(matcher.NakereForm), matcher.Surf("ば"), matcher.Surf("なら"), matcher.Surf("ない"),
		}, "must"),
		def("must_nakute_wa", 9, pattern.Seq{
			matcher.Cust(matcher.NakuForm), matcher.Surf("て"), matcher.Surf("は"), matcher.Cust(matcher.IkenaiForm),
		}, "must"),
		def("te_aru", 10, pattern.TeAru(), "te_aru"),
		def("te_kureru", 10, pattern.TeKureru(), "te_kureru"),
		def("te_ageru", 10, pattern.TeAgeru(), "te_ageru"),
		def("te_oku", 10, pattern.TeOku(), "te_oku"),
		def("yasui", 6, pattern.Yasui(), "yasui"),
		def("nikui", 6, pattern.Nikui(), "nikui"),
		def("te_morau", 10, pattern.TeMorau(), "te_morau"),
		def("te_sumimasen", 11, pattern.TeSumimasen(), "te_sumimasen"),
		def("te_kurete_arigatou", 13, pattern.TeKureteArigatou(), "te_kurete_arigatou"),
		def("te_yokatta", 11, pattern.TeYokatta(), "te_yokatta"),
		def("te_mo", 8, pattern.TeMo(), "te_mo"),
		def("naide", 7, pattern.Naide(), "naide"),
		def("nakute_mo_ii", 11, pattern.NakuteMoIi(), "nakute_mo_ii"),
		def("ba_yokatta", 10, pattern.BaYokatta(), "ba_yokatta"),
		def("nasai", 6, pattern.Nasai(), "nasai"),
		def("hazu_desu", 9, pattern.HazuDesu(), "hazu_desu"),
		def("tagaru", 7, pattern.Seq{matcher.Cust(matcher.FlexibleVerbForm), matcher.Cust(matcher.TagaruForm)}, "tagaru"),
		def("te_itadakemasen_ka", 10, pattern.TeItadakemasenKa(), "te_itadakemasen_ka"),
		def("tara_dou", 12, pattern.Seq{
			matcher.Cust(matcher.FlexibleVerbForm), matcher.Cust(matcher.TaraForm),
			matcher.Surf("どう"), matcher.Surf("です"), matcher.Surf("か"),
		}, "tara_dou"),
		def("to_ii", 8, pattern.ToIi(), "to_ii"),
		def("ga_hoshii", 5, pattern.GaHoshii(), "ga_hoshii"),
		def("shika_nai", 8, pattern.ShikaNai(), "shika_nai"),
		def("to_iu", 5, pattern.ToIu(), "to_iu"),
		def("dictionary_to", 4, pattern.DictionaryTo(), "dictionary_to"),
		def("nara", 6, pattern.NaraConditional(), "nara"),
		def("shi", 3, pattern.Seq{matcher.Cust(matcher.ShiParticle)}, "shi"),
		def("ka_dou_ka", 9, pattern.KaDouKa(), "ka_dou_ka"),
		def("koto_ni_suru", 10, pattern.KotoNiSuru(), "koto_ni_suru"),
		def("noni", 5, pattern.Noni(), "noni"),
		def("koto_ni_naru", 10, pattern.KotoNiNaru(), "koto_ni_naru"),
		def("sou_desu_appearance", 9, pattern.Seq{
			matcher.Cust(matcher.SouAppearanceStem), matcher.Surf("そう"), matcher.Surf("です"),
		}, "sou_desu_appearance"),
		def("sou_desu_hearsay", 8, pattern.Seq{
			matcher.Cust(matcher.SouHearsayStem), matcher.Surf("そう"), matcher.Surf("です"),
		}, "sou_desu_hearsay"),
		def("sou_desu_hearsay_na", 9, pattern.Seq{
			matcher.Cust(matcher.SouHearsayStem), matcher.Surf("だ"), matcher.Surf("そう"), matcher.Surf("です"),
		}, "sou_desu_hearsay"),
		def("kamo_shirenai", 8, pattern.KamoShirenai(), "kamo_shirenai"),
		def("kamo_shiremasen", 8, pattern.KamoShiremasen(), "kamo_shirenai"),
		def("kamo_shirenai_adj_noun", 7, pattern.Seq{
			matcher.Any(), matcher.Surf("かも"), matcher.SpecificVerb("しれる"), matcher.Surf("ない"),
		}, "kamo_shirenai"),
		def("kamo_shiremasen_adj_noun", 7, pattern.Seq{
			matcher.Any(), matcher.Surf("かも"), matcher.SpecificVerb("しれる"), matcher.Surf("ませ"), matcher.Surf("ん"),
		}, "kamo_shirenai"),
		def("mitai", 6, pattern.Mitai(), "mitai"),
		def("mitai_adj_noun", 5, pattern.Seq{matcher.Any(), matcher.Surf("みたい")}, "mitai"),
	}
}

package library

import (
	"github.com/japaniel/grammascan/pkg/matcher"
	"github.com/japaniel/grammascan/pkg/pattern"
)

// n2Patterns is grounded pattern-for-pattern on
// original_source/src-tauri/src/grammar/patterns/n2.rs.
func n2Patterns() []entryDef {
	// n2.rs predates the category field; every N2 pattern here is a
	// multi-morpheme idiomatic construction, so all of them get
	// Construction (see n1.go for the same reasoning).
	def := func(name string, priority int, toks pattern.Seq, id string) entryDef {
		return entryDef{p: pattern.Pattern{Name: name, Tokens: toks, Priority: priority, Category: pattern.Construction}, id: id, level: "N2"}
	}
	return []entryDef{
		def("toutei", 5, pattern.Seq{matcher.Surf("とうてい")}, "toutei"),
		def("yoppodo", 5, pattern.Seq{matcher.Surf("よっぽど")}, "yoppodo"),
		def("iyoiyo", 5, pattern.Seq{matcher.Surf("いよいよ")}, "iyoiyo"),
		def("sekkaku", 5, pattern.Seq{matcher.Surf("せっかく")}, "sekkaku"),
		def("yamuoezu_verb", 7, pattern.Seq{matcher.SpecificVerb("やむをえる"), matcher.Surf("ず")}, "yamuoezu"),
		def("yappari", 5, pattern.Seq{matcher.Surf("やっぱり")}, "yappari"),
		def("narubeku", 5, pattern.Seq{matcher.Surf("なるべく")}, "narubeku"),
		def("tashika", 5, pattern.Seq{matcher.Surf("たしか")}, "tashika"),
		def("man_ichi", 5, pattern.Seq{matcher.Surf("万一")}, "man_ichi"),
		def("man_ichi_kana", 5, pattern.Seq{matcher.Surf("まんいち")}, "man_ichi"),
		def("nanishiro", 5, pattern.Seq{matcher.Surf("なにしろ")}, "nanishiro"),
		def("nanishiro_kanji", 5, pattern.Seq{matcher.Surf("何しろ")}, "nanishiro"),
		def("sorenishitemo", 5, pattern.Seq{matcher.Surf("それにしても")}, "sorenishitemo"),
		def("tachimachi", 5, pattern.Seq{matcher.Surf("たちまち")}, "tachimachi"),
		def("sasugani_split", 6, pattern.Seq{matcher.Surf("さすが"), matcher.Surf("に")}, "sasugani"),
		def("itsunomanika", 5, pattern.Seq{matcher.Surf("いつのまにか")}, "itsunomanika"),
		def("itsunomanika_split", 5, pattern.Seq{matcher.Surf("いつの間にか")}, "itsunomanika"),
		def("aete", 5, pattern.Seq{matcher.Surf("あえて")}, "aete"),
		def("semete", 5, pattern.Seq{matcher.Surf("せめて")}, "semete"),
		def("nantoittemo_split_kanji", 9, pattern.Seq{
			matcher.Surf("何"), matcher.Surf("と"), matcher.Surf("いっ"), matcher.Surf("て"), matcher.Surf("も"),
		}, "nantoittemo"),
		def("nantoittemo_adverb_split", 9, pattern.Seq{
			matcher.Surf("なんと"), matcher.Surf("いっ"), matcher.Surf("て"), matcher.Surf("も"),
		}, "nantoittemo"),
		def("rou_ni", 5, pattern.Seq{matcher.Surf("ろくに")}, "rou_ni"),
		def("kaneru", 7, pattern.Seq{matcher.VerbForm("連用形"), matcher.SpecificVerb("かねる")}, "kaneru"),
		def("kanenai", 8, pattern.Seq{matcher.VerbForm("連用形"), matcher.SpecificVerb("かねる"), matcher.Surf("ない")}, "kaneru"),
		def("tamaranai", 6, pattern.Seq{matcher.Any(), matcher.Surf("たまらない")}, "tamaranai"),
		def("naide_sumu_split", 9, pattern.Seq{
			matcher.VerbForm("未然形"), matcher.Surf("ない"), matcher.Surf("で"), matcher.SpecificVerb("済む"),
		}, "naide_sumu"),
		def("kara_naru", 7, pattern.Seq{matcher.Any(), matcher.Surf("から"), matcher.SpecificVerb("なる")}, "kara_naru"),
		def("yori_shikata_ganai", 9, pattern.Seq{
			matcher.Any(), matcher.Surf("より"), matcher.Surf("仕方"), matcher.Surf("が"), matcher.Surf("ない"),
		}, "yori_shikata_ganai"),
		def("yori_shikata_ganai_kana", 9, pattern.Seq{
			matcher.Any(), matcher.Surf("より"), matcher.Surf("しかた"), matcher.Surf("が"), matcher.Surf("ない"),
		}, "yori_shikata_ganai"),
		def("ta_ue_de", 7, pattern.Seq{matcher.Any(), matcher.Surf("上"), matcher.Surf("で")}, "ta_ue_de"),
		def("ni_ataru_compound", 7, pattern.Seq{matcher.Any(), matcher.Surf("にあたる")}, "ni_ataru"),
		def("ni_ataru_compound_kanji", 7, pattern.Seq{matcher.Any(), matcher.Surf("に当たる")}, "ni_ataru"),
		def("gotoshi", 6, pattern.Seq{matcher.Any(), matcher.Surf("ごとし")}, "gotoshi"),
		def("gotoshi_kanji", 6, pattern.Seq{matcher.Any(), matcher.Surf("如し")}, "gotoshi"),
		def("tsuujite_verb_kanji", 7, pattern.Seq{matcher.Any(), matcher.SpecificVerb("通じる"), matcher.Surf("て")}, "tsuujite"),
		def("tsuujite_verb_kana", 7, pattern.Seq{matcher.Any(), matcher.SpecificVerb("つうじる"), matcher.Surf("て")}, "tsuujite"),
		def("noboru", 7, pattern.Seq{matcher.Any(), matcher.Surf("に"), matcher.SpecificVerb("のぼる")}, "noboru"),
		def("gatera_split", 8, pattern.Seq{matcher.Any(), matcher.Surf("が"), matcher.Surf("てら")}, "gatera"),
		def("oyobi", 7, pattern.Seq{matcher.Any(), matcher.Surf("および"), matcher.Any()}, "oyobi"),
		def("oyobi_kanji", 7, pattern.Seq{matcher.Any(), matcher.Surf("及び"), matcher.Any()}, "oyobi"),
		def("katawara_kanji", 6, pattern.Seq{matcher.Any(), matcher.Surf("傍ら")}, "katawara"),
		def("katawara_kana", 6, pattern.Seq{matcher.Any(), matcher.Surf("かたわら")}, "katawara"),
		def("sei_ka", 7, pattern.Seq{matcher.Any(), matcher.Surf("せい"), matcher.Surf("か")}, "sei_ka"),
		def("yueni_split", 7, pattern.Seq{matcher.Any(), matcher.Surf("ゆえ"), matcher.Surf("に")}, "yueni"),
		def("ippou_dewa_split", 8, pattern.Seq{matcher.Surf("一方"), matcher.Surf("で"), matcher.Surf("は")}, "ippou_dewa"),
		def("mono_no", 6, pattern.Seq{matcher.Any(), matcher.Surf("ものの")}, "mono_no"),
		def("kuse_ni_split", 7, pattern.Seq{matcher.Any(), matcher.Surf("くせ"), matcher.Surf("に")}, "kuse_ni"),
		def("kaketeha_compound", 8, pattern.Seq{matcher.Any(), matcher.Surf("にかけて"), matcher.Surf("は")}, "kaketeha"),
		def("itaru_made", 7, pattern.Seq{matcher.Any(), matcher.Surf("いたる"), matcher.Surf("まで")}, "itaru_made"),
		def("itaru_made_kanji", 7, pattern.Seq{matcher.Any(), matcher.Surf("至る"), matcher.Surf("まで")}, "itaru_made"),
		def("ni_itaru_made", 8, pattern.Seq{matcher.Any(), matcher.Surf("に"), matcher.Surf("いたる"), matcher.Surf("まで")}, "ni_itaru_made"),
		def("ni_itaru_made_kanji", 8, pattern.Seq{matcher.Any(), matcher.Surf("に"), matcher.Surf("至る"), matcher.Surf("まで")}, "ni_itaru_made"),
		def("igai_no", 7, pattern.Seq{matcher.Any(), matcher.Surf("以外"), matcher.Surf("の")}, "igai_no"),
		def("ba_ii_noni", 9, pattern.Seq{
			matcher.VerbForm("仮定形"), matcher.Surf("ば"), matcher.Any(), matcher.Surf("のに"),
		}, "ba_ii_noni"),
		def("ba_yoi_noni_split", 11, pattern.Seq{
			matcher.VerbForm("仮定形"), matcher.Surf("ば"), matcher.Surf("良い"), matcher.Surf("の"), matcher.Surf("に"),
		}, "ba_ii_noni"),
		def("wake_desu", 7, pattern.Seq{matcher.Any(), matcher.Surf("わけ"), matcher.Surf("です")}, "wake_da"),
		def("wake_da", 7, pattern.Seq{matcher.Any(), matcher.Surf("わけ"), matcher.Surf("だ")}, "wake_da"),
		def("you_na_ki_ga_suru", 10, pattern.Seq{
			matcher.Any(), matcher.Surf("よう"), matcher.Surf("な"), matcher.Surf("気"), matcher.Surf("が"), matcher.SpecificVerb("する"),
		}, "you_na_ki_ga_suru"),
		def("ni_ki_wo_tsukeru", 9, pattern.Seq{
			matcher.Any(), matcher.Surf("に"), matcher.Surf("気"), matcher.Surf("を"), matcher.SpecificVerb("つける"),
		}, "ni_ki_wo_tsukeru"),
		def("betsuni_nai_split", 8, pattern.Seq{
			matcher.Surf("別"), matcher.Surf("に"), matcher.Any(), matcher.Surf("ない"),
		}, "betsuni_nai"),
		def("wake_niwa_ikanai_short", 10, pattern.Seq{
			matcher.VerbForm("基本形"), matcher.Surf("わけ"), matcher.Surf("に"), matcher.Surf("は"), matcher.Surf("いか"), matcher.Surf("ない"),
		}, "wake_niwa_ikanai"),
		def("dewa_nai_darou_ka_full_split", 11, pattern.Seq{
			matcher.Surf("で"), matcher.Surf("は"), matcher.Surf("ない"), matcher.Surf("だろ"), matcher.Surf("う"), matcher.Surf("か"),
		}, "dewa_nai_darou_ka"),
		def("to_iu_wake_dewa_nai_compound", 11, pattern.Seq{
			matcher.Surf("という"), matcher.Surf("わけ"), matcher.Surf("で"), matcher.Surf("は"), matcher.Surf("ない"),
		}, "to_iu_wake_dewa_nai"),
		def("ni_koshita_koto_wa_nai", 11, pattern.Seq{
			matcher.VerbForm("基本形"), matcher.Surf("に"), matcher.Surf("越し"), matcher.Surf("た"),
			matcher.Surf("こと"), matcher.Surf("は"), matcher.Surf("ない"),
		}, "ni_koshita_koto_wa_nai"),
		def("sashitsukaenai", 7, pattern.Seq{matcher.Surf("さしつかえ"), matcher.Surf("ない")}, "sashitsukaenai"),
		def("sashitsukaenai_kanji", 7, pattern.Seq{matcher.Surf("差し支え"), matcher.Surf("ない")}, "sashitsukaenai"),
		def("nai_wake_niwa_ikanai_short", 11, pattern.Seq{
			matcher.VerbForm("未然形"), matcher.Surf("ない"), matcher.Surf("わけ"), matcher.Surf("に"),
			matcher.Surf("は"), matcher.Surf("いか"), matcher.Surf("ない"),
		}, "nai_wake_niwa_ikanai"),
		def("to_ittemo", 8, pattern.Seq{matcher.Surf("と"), matcher.Surf("言っ"), matcher.Surf("て"), matcher.Surf("も")}, "to_ittemo"),
		def("to_ittemo_kana", 8, pattern.Seq{matcher.Surf("と"), matcher.Surf("いっ"), matcher.Surf("て"), matcher.Surf("も")}, "to_ittemo"),
		def("ga_ki_ni_naru", 9, pattern.Seq{
			matcher.Any(), matcher.Surf("が"), matcher.Surf("気"), matcher.Surf("に"), matcher.SpecificVerb("なる"),
		}, "ga_ki_ni_naru"),
		def("omou_you_ni", 8, pattern.Seq{matcher.SpecificVerb("思う"), matcher.Surf("よう"), matcher.Surf("に")}, "omou_you_ni"),
		def("mono_desukara", 8, pattern.Seq{
			matcher.Any(), matcher.Surf("もの"), matcher.Surf("です"), matcher.Surf("から"),
		}, "mono_dakara"),
		def("mono_dakara", 8, pattern.Seq{
			matcher.Any(), matcher.Surf("もの"), matcher.Surf("だ"), matcher.Surf("から"),
		}, "mono_dakara"),
	}
}

package library

import (
	"github.com/japaniel/grammascan/pkg/matcher"
	"github.com/japaniel/grammascan/pkg/pattern"
)

// n1Patterns is grounded pattern-for-pattern on
// original_source/src-tauri/src/grammar/patterns/n1.rs.
func n1Patterns() []entryDef {
	// original_source/src-tauri/src/grammar/patterns/n1.rs predates the
	// category field (see grammar-lib/src/patterns/{n4,n5}.rs for where
	// it was introduced); every N1 pattern here is a multi-morpheme
	// idiomatic construction rather than a bare inflectional ending, so
	// all of them get Construction.
	def := func(name string, priority int, toks pattern.Seq, id string) entryDef {
		return entryDef{p: pattern.Pattern{Name: name, Tokens: toks, Priority: priority, Category: pattern.Construction}, id: id, level: "N1"}
	}
	return []entryDef{
		def("meku", 6, pattern.Seq{matcher.Any(), matcher.Surf("めく")}, "meku"),
		def("mamire", 6, pattern.Seq{matcher.Any(), matcher.Surf("まみれ")}, "mamire"),
		def("zukume", 6, pattern.Seq{matcher.Any(), matcher.Surf("ずくめ")}, "zukume"),
		def("ppanashi", 6, pattern.Seq{matcher.Any(), matcher.Surf("っぱなし")}, "ppanashi"),
		def("kiwamaru", 7, pattern.Seq{matcher.Any(), matcher.SpecificVerb("極まる")}, "kiwamaru"),
		def("kiwamarinai", 7, pattern.Seq{matcher.Any(), matcher.Surf("極まりない")}, "kiwamaru"),
		def("beku", 7, pattern.Seq{matcher.VerbForm("基本形"), matcher.Surf("べく")}, "beku"),
		def("bekarazu", 8, pattern.Seq{matcher.VerbForm("基本形"), matcher.Surf("べから"), matcher.Surf("ず")}, "bekarazu"),
		def("majiki", 6, pattern.Seq{matcher.Any(), matcher.Surf("まじき")}, "majiki"),
		def("nari", 7, pattern.Seq{matcher.VerbForm("基本形"), matcher.Surf("なり")}, "nari"),
		def("ya_inaya", 8, pattern.Seq{matcher.VerbForm("基本形"), matcher.Surf("や"), matcher.Surf("否や")}, "ya_inaya"),
		def("ya_inaya_single", 7, pattern.Seq{matcher.VerbForm("基本形"), matcher.Surf("やいなや")}, "ya_inaya"),
		def("ga_hayai_ka", 9, pattern.Seq{
			matcher.VerbForm("基本形"), matcher.Surf("が"), matcher.Surf("早い"), matcher.Surf("か"),
		}, "ga_hayai_ka"),
		def("ga_saigo", 8, pattern.Seq{matcher.VerbForm("基本形"), matcher.Surf("が"), matcher.Surf("最後")}, "ga_saigo"),
		def("gotoki", 6, pattern.Seq{matcher.Any(), matcher.Surf("ごとき")}, "gotoki"),
		def("wo_kawakiri_ni", 9, pattern.Seq{
			matcher.Any(), matcher.Surf("を"), matcher.Surf("皮切り"), matcher.Surf("に"),
		}, "wo_kawakiri_ni"),
		def("wo_motte", 7, pattern.Seq{matcher.Any(), matcher.Surf("をもって")}, "wo_motte"),
		def("nakushiteha", 10, pattern.Seq{
			matcher.Any(), matcher.Surf("なく"), matcher.Surf("し"), matcher.Surf("て"), matcher.Surf("は"),
		}, "nakushiteha"),
		def("nashini", 7, pattern.Seq{matcher.Any(), matcher.Surf("なし"), matcher.Surf("に")}, "nashini"),
		def("naradewa", 7, pattern.Seq{matcher.Any(), matcher.Surf("ならでは")}, "naradewa"),
		def("ni_taru", 8, pattern.Seq{matcher.Any(), matcher.Surf("に"), matcher.SpecificVerb("足る")}, "ni_taru"),
		def("toatte", 9, pattern.Seq{matcher.Any(), matcher.Surf("と"), matcher.Surf("あっ"), matcher.Surf("て")}, "toatte"),
		def("katagata", 6, pattern.Seq{matcher.Any(), matcher.Surf("かたがた")}, "katagata"),
		def("wo_kagiri_ni", 8, pattern.Seq{
			matcher.Any(), matcher.Surf("を"), matcher.Surf("限り"), matcher.Surf("に"),
		}, "wo_kagiri_ni"),
		def("wo_hete", 8, pattern.Seq{matcher.Any(), matcher.Surf("を"), matcher.Surf("経"), matcher.Surf("て")}, "wo_hete"),
		def("wo_oshite", 8, pattern.Seq{matcher.Any(), matcher.Surf("を"), matcher.Surf("おして")}, "wo_oshite"),
		def("wo_fumaete", 8, pattern.Seq{
			matcher.Any(), matcher.Surf("を"), matcher.Surf("踏まえ"), matcher.Surf("て"),
		}, "wo_fumaete"),
		def("te_yamanai", 8, pattern.Seq{matcher.Surf("て"), matcher.Surf("やま"), matcher.Surf("ない")}, "te_yamanai"),
		def("to_omoikiya", 10, pattern.Seq{
			matcher.Any(), matcher.Surf("と"), matcher.Surf("思い"), matcher.Surf("き"), matcher.Surf("や"),
		}, "to_omoikiya"),
		def("to_areba", 9, pattern.Seq{matcher.Any(), matcher.Surf("と"), matcher.Surf("あれ"), matcher.Surf("ば")}, "to_areba"),
		def("ta_tokoro_de", 10, pattern.Seq{
			matcher.VerbForm("連用タ接続"), matcher.Surf("た"), matcher.Surf("ところ"), matcher.Surf("で"),
		}, "ta_tokoro_de"),
		def("de_are", 7, pattern.Seq{matcher.Any(), matcher.Surf("で"), matcher.Surf("あれ")}, "de_are"),
		def("to_wa_ie", 9, pattern.Seq{matcher.Any(), matcher.Surf("と"), matcher.Surf("は"), matcher.Surf("いえ")}, "to_wa_ie"),
		def("mono_wo", 7, pattern.Seq{matcher.Any(), matcher.Surf("もの"), matcher.Surf("を")}, "mono_wo"),
		def("you_ga", 8, pattern.Seq{matcher.VerbForm("未然ウ接続"), matcher.Surf("う"), matcher.Surf("が")}, "you_ga"),
		def("nai_made_mo", 9, pattern.Seq{
			matcher.Any(), matcher.Surf("ない"), matcher.Surf("まで"), matcher.Surf("も"),
		}, "nai_made_mo"),
		def("nagara_mo", 7, pattern.Seq{matcher.Any(), matcher.Surf("ながら"), matcher.Surf("も")}, "nagara_mo"),
		// dewa_arumaishi: mandatory end-to-end scenario S10
		// ("子供ではあるまいし分かるでしょ" -> dewa_arumaishi over で+は+ある+まい+し).
		def("dewa_arumaishi", 11, pattern.Seq{
			matcher.Any(), matcher.Surf("で"), matcher.Surf("は"), matcher.Surf("ある"), matcher.Surf("まい"), matcher.Surf("し"),
		}, "dewa_arumaishi"),
		def("to_shita_tokoro_de", 11, pattern.Seq{
			matcher.Any(), matcher.Surf("と"), matcher.Surf("し"), matcher.Surf("た"), matcher.Surf("ところ"), matcher.Surf("で"),
		}, "to_shita_tokoro_de"),
		def("to_iedomo", 9, pattern.Seq{matcher.Any(), matcher.Surf("と"), matcher.Surf("いえ"), matcher.Surf("ども")}, "to_iedomo"),
		def("tomo_naruto", 10, pattern.Seq{
			matcher.Any(), matcher.Surf("と"), matcher.Surf("も"), matcher.Surf("なる"), matcher.Surf("と"),
		}, "tomo_naruto"),
		def("ni_taenai", 9, pattern.Seq{
			matcher.Any(), matcher.Surf("に"), matcher.Surf("堪え"), matcher.Surf("ない"),
		}, "ni_taenai"),
		def("tokoro_wo", 7, pattern.Seq{matcher.Any(), matcher.Surf("ところ"), matcher.Surf("を")}, "tokoro_wo"),
		def("ni_sokushite", 8, pattern.Seq{
			matcher.Any(), matcher.Surf("に"), matcher.Surf("即し"), matcher.Surf("て"),
		}, "ni_sokushite"),
		def("to_aimatte", 8, pattern.Seq{matcher.Any(), matcher.Surf("と"), matcher.Surf("相まって")}, "to_aimatte"),
		def("wo_yosoni", 9, pattern.Seq{
			matcher.Any(), matcher.Surf("を"), matcher.Surf("よそ"), matcher.Surf("に"),
		}, "wo_yosoni"),
		def("temo_sashitsukaenai", 9, pattern.Seq{
			matcher.Surf("て"), matcher.Surf("も"), matcher.Surf("さしつかえ"), matcher.Surf("ない"),
		}, "temo_sashitsukaenai"),
		def("wo_kinjienai", 10, pattern.Seq{
			matcher.Any(), matcher.Surf("を"), matcher.Surf("禁じ"), matcher.Surf("得"), matcher.Surf("ない"),
		}, "wo_kinjienai"),
		def("wo_yoginakusareru", 10, pattern.Seq{
			matcher.Any(), matcher.Surf("を"), matcher.Surf("余儀なく"), matcher.Surf("さ"), matcher.Surf("れる"),
		}, "wo_yoginakusareru"),
		def("te_karatoiumono", 9, pattern.Seq{
			matcher.Surf("て"), matcher.Surf("から"), matcher.Surf("という"), matcher.Surf("もの"),
		}, "te_karatoiumono"),
		def("nimo_mashite", 9, pattern.Seq{
			matcher.Any(), matcher.Surf("に"), matcher.Surf("も"), matcher.Surf("まして"),
		}, "nimo_mashite"),
		def("ni_hikikae", 7, pattern.Seq{matcher.Any(), matcher.Surf("に"), matcher.Surf("ひきかえ")}, "ni_hikikae"),
		def("ikan", 6, pattern.Seq{matcher.Any(), matcher.Surf("いかん")}, "ikan"),
		// taritomo: mandatory end-to-end scenario S9
		// ("一人たりとも許さない" -> taritomo).
		def("taritomo", 9, pattern.Seq{
			matcher.Any(), matcher.Surf("たり"), matcher.Surf("と"), matcher.Surf("も"),
		}, "taritomo"),
		def("kirai_ga_aru", 9, pattern.Seq{
			matcher.Any(), matcher.Surf("きらい"), matcher.Surf("が"), matcher.Surf("ある"),
		}, "kirai_ga_aru"),
		def("shimatsu_da", 8, pattern.Seq{matcher.Any(), matcher.Surf("始末"), matcher.Surf("だ")}, "shimatsu_da"),
		def("shimatsu_datta", 8, pattern.Seq{matcher.Any(), matcher.Surf("始末"), matcher.Surf("だっ")}, "shimatsu_da"),
		def("warini", 7, pattern.Seq{matcher.Any(), matcher.Surf("割り"), matcher.Surf("に")}, "warini"),
		def("wariniha", 8, pattern.Seq{
			matcher.Any(), matcher.Surf("割り"), matcher.Surf("に"), matcher.Surf("は"),
		}, "warini"),
		def("kai_mo_naku", 9, pattern.Seq{
			matcher.Any(), matcher.Surf("甲斐"), matcher.Surf("も"), matcher.Surf("なく"),
		}, "kai_mo_naku"),
		def("dake_mashi", 7, pattern.Seq{matcher.Any(), matcher.Surf("だけ"), matcher.Surf("まし")}, "dake_mashi"),
		def("naide_wa_sumanai", 11, pattern.Seq{
			matcher.Any(), matcher.Surf("ない"), matcher.Surf("で"), matcher.Surf("は"), matcher.Surf("すま"), matcher.Surf("ない"),
		}, "naide_wa_sumanai"),
		def("koto_nashini", 8, pattern.Seq{
			matcher.Any(), matcher.Surf("こと"), matcher.Surf("なし"), matcher.Surf("に"),
		}, "koto_nashini"),
		def("de_sura", 7, pattern.Seq{matcher.Any(), matcher.Surf("で"), matcher.Surf("すら")}, "sura"),
		def("sura", 6, pattern.Seq{matcher.Any(), matcher.Surf("すら")}, "sura"),
		def("nagarani_umare", 9, pattern.Seq{matcher.Surf("生まれながら"), matcher.Surf("に")}, "nagarani"),
		// nagarani_umare_shite: mandatory end-to-end scenario S8
		// ("生まれながらにして才能がある" -> nagarani_umare_shite).
		def("nagarani_umare_shite", 10, pattern.Seq{
			matcher.Surf("生まれながら"), matcher.Surf("に"), matcher.Surf("し"), matcher.Surf("て"),
		}, "nagarani_umare_shite"),
		def("nagarani_split", 7, pattern.Seq{matcher.Any(), matcher.Surf("ながら"), matcher.Surf("に")}, "nagarani"),
		def("nagarani_shite", 8, pattern.Seq{
			matcher.Any(), matcher.Surf("ながら"), matcher.Surf("に"), matcher.Surf("し"), matcher.Surf("て"),
		}, "nagarani"),
		def("ha_oroka", 7, pattern.Seq{matcher.Any(), matcher.Surf("は"), matcher.Surf("おろか")}, "ha_oroka"),
	}
}

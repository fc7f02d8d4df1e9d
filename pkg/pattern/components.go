package pattern

import "github.com/japaniel/grammascan/pkg/matcher"

// The functions below are reusable token sequences shared by several
// patterns across JLPT levels. Each is grounded, one-for-one, on
// original_source/grammar-lib/src/pattern_components.rs; names and
// shapes are kept, types re-expressed as this module's Matcher/Pattern.

// Core verb constructions

func VerbStem() Seq { return Seq{matcher.Cust(matcher.FlexibleVerbForm)} }
func TeParticle() Seq { return Seq{matcher.Cust(matcher.TeParticle)} }
func TeConstruction() Seq { return Concat(VerbStem(), TeParticle()) }
func TeIru() Seq  { return Concat(TeConstruction(), Seq{matcher.SpecificVerb("いる")}) }
func TeAru() Seq  { return Concat(TeConstruction(), Seq{matcher.SpecificVerb("ある")}) }
func TeOku() Seq  { return Concat(TeConstruction(), Seq{matcher.SpecificVerb("おく")}) }
func TeMiru() Seq { return Concat(TeConstruction(), Seq{matcher.SpecificVerb("みる")}) }
func TeShimau() Seq { return Concat(TeConstruction(), Seq{matcher.SpecificVerb("しまう")}) }
func TeAgeru() Seq   { return Concat(TeConstruction(), Seq{matcher.SpecificVerb("あげる")}) }
func TeKureru() Seq  { return Concat(TeConstruction(), Seq{matcher.SpecificVerb("くれる")}) }
func TeMorau() Seq   { return Concat(TeConstruction(), Seq{matcher.SpecificVerb("もらう")}) }
func TeKudasaiConstruction() Seq {
	return Concat(TeConstruction(), Seq{matcher.Surf("ください")})
}

// Tai-form constructions

func TaiBase() Seq {
	return Seq{matcher.VerbForm("連用形"), matcher.Cust(matcher.TaiForm)}
}
func TaiForm() Seq { return TaiBase() }
func TakattaForm() Seq {
	return Concat(
		Seq{matcher.VerbForm("連用形")},
		Seq{matcher.Cust(matcher.TakattaForm)},
		Seq{matcher.Surf("た")},
	)
}
func TakunaiForm() Seq {
	return Concat(
		Seq{matcher.VerbForm("連用形")},
		Seq{matcher.Cust(matcher.TakuForm)},
		Seq{matcher.Surf("ない")},
	)
}

// Request & permission constructions

func TeMoIi() Seq {
	return Concat(TeConstruction(), Seq{matcher.Surf("も")}, Seq{matcher.Cust(matcher.IiForm)})
}
func TeWaIkenai() Seq {
	return Concat(TeConstruction(), Seq{matcher.Surf("は")}, Seq{matcher.Cust(matcher.IkenaiForm)})
}
func NaideKudasai() Seq {
	return Seq{
		matcher.VerbForm("未然形"),
		matcher.Surf("ない"),
		matcher.Surf("で"),
		matcher.Surf("ください"),
	}
}

// Predicate types (for ので, から, etc.)

func VerbPredicate() Seq      { return Seq{matcher.VerbForm("基本形")} }
func IAdjectivePredicate() Seq { return Seq{matcher.Cust(matcher.IAdjective)} }
func NaAdjectivePredicate() Seq {
	return Seq{matcher.Cust(matcher.NaAdjectiveStem), matcher.Surf("な")}
}
func NominalPredicate() Seq { return Seq{matcher.Any(), matcher.Surf("な")} }

// Common suffixes & particles

func NodeSuffix() Seq { return Seq{matcher.Surf("ので")} }
func KaraSuffix() Seq { return Seq{matcher.Surf("から")} }
func TsumoriSuffix() Seq {
	return Seq{matcher.Surf("つもり"), matcher.Surf("です")}
}
func TsumoriDesu() Seq { return Concat(VerbPredicate(), TsumoriSuffix()) }
func HouGaIiSuffix() Seq {
	return Seq{matcher.Surf("ほう"), matcher.Surf("が"), matcher.Cust(matcher.IiForm)}
}
func MasuEnding() Seq { return Seq{matcher.VerbForm("連用形"), matcher.Surf("ます")} }
func NegativeEnding() Seq {
	return Seq{matcher.VerbForm("未然形"), matcher.Surf("ない")}
}

// Node pattern variations (ので constructions)

func NodeVerb() Seq {
	return Concat(Optional(TeConstruction()), Seq{matcher.VerbForm("基本形")}, NodeSuffix())
}
func NodeAdjective() Seq { return Concat(IAdjectivePredicate(), NodeSuffix()) }
func NodeNominal() Seq   { return Concat(NominalPredicate(), NodeSuffix()) }

// Conditional & hypothetical (N4+)

func BaConditional() Seq {
	return Seq{matcher.VerbForm("仮定形"), matcher.Surf("ば")}
}
func TaraConditional() Seq {
	return Concat(Seq{matcher.Cust(matcher.FlexibleVerbForm)}, Seq{matcher.Cust(matcher.TaraForm)})
}
func NaraConditional() Seq { return Seq{matcher.Surf("なら")} }

// Voice & mood (N4+)

func PotentialGodan() Seq {
	return Seq{matcher.Cust(matcher.GodanMizen), matcher.Cust(matcher.EruForm)}
}
func PassiveIchidan() Seq {
	return Seq{matcher.Cust(matcher.IchidanMizen), matcher.Cust(matcher.RareruForm)}
}
func PassiveGodan() Seq {
	return Seq{matcher.Cust(matcher.GodanMizen), matcher.Cust(matcher.ReruForm)}
}
func Causative() Seq {
	return Seq{matcher.VerbForm("未然形"), matcher.Cust(matcher.CausativeForm)}
}
func Volitional() Seq  { return Seq{matcher.VerbForm("意志形")} }
func Imperative() Seq  { return Seq{matcher.Cust(matcher.ImperativeForm)} }

// Difficulty & ease (N4+)

func Yasui() Seq { return Concat(Seq{matcher.VerbForm("連用形")}, Seq{matcher.Surf("やすい")}) }
func Nikui() Seq { return Concat(Seq{matcher.VerbForm("連用形")}, Seq{matcher.Surf("にくい")}) }

// Simultaneity & progression (N4+)

func Nagara() Seq { return Concat(Seq{matcher.VerbForm("連用形")}, Seq{matcher.Surf("ながら")}) }

// Additional suffixes & forms (N4+)

func Nasai() Seq { return Concat(Seq{matcher.VerbForm("連用形")}, Seq{matcher.Surf("なさい")}) }

func TariSuruSingle() Seq {
	return Concat(
		Seq{matcher.Cust(matcher.FlexibleVerbForm)},
		Seq{matcher.Cust(matcher.TariParticle)},
		Seq{matcher.SpecificVerb("する")},
	)
}
func TariSuru() Seq {
	return Concat(
		Seq{matcher.Cust(matcher.FlexibleVerbForm)},
		Seq{matcher.Cust(matcher.TariParticle)},
		Seq{matcher.Wild(0, 15)},
		Seq{matcher.Cust(matcher.TariParticle)},
		Seq{matcher.SpecificVerb("する")},
	)
}

// PotentialGaVerb matches lexicalized potential readings evidenced by
// a preceding が (水が飲める, 空が見える), permitting up to two
// intervening tokens provided none is itself a verb or particle
// (original_source pattern_components.rs potential_ga_verb).
func PotentialGaVerb() Seq {
	return Seq{
		matcher.Surf("が"),
		matcher.Wild(0, 2, matcher.Verb("", ""), matcher.Cust(matcher.Particle)),
		matcher.Cust(matcher.GaPotentialVerb),
	}
}

// PotentialGaIchidan is the stricter ichidan-potential counterpart,
// requiring が evidence before Verb未然形 + られる.
func PotentialGaIchidan() Seq {
	return Seq{
		matcher.Surf("が"),
		matcher.Wild(0, 2, matcher.Verb("", ""), matcher.Cust(matcher.Particle)),
		matcher.Cust(matcher.IchidanMizen),
		matcher.Cust(matcher.RareruForm),
	}
}

func VolitionalUForm() Seq {
	return Seq{matcher.VerbForm("未然ウ接続"), matcher.Surf("う")}
}
func PastNegative() Seq {
	return Concat(
		Seq{matcher.VerbForm("未然形")},
		Seq{matcher.Cust(matcher.NakattaForm)},
		Seq{matcher.Surf("た")},
	)
}
func TeMo() Seq { return Concat(TeConstruction(), Seq{matcher.Surf("も")}) }

// Naide excludes lexicalized potential forms (帰れないで) via
// NonPotentialMizen rather than matching any 未然形 verb.
func Naide() Seq {
	return Seq{matcher.Cust(matcher.NonPotentialMizen), matcher.Surf("ない"), matcher.Surf("で")}
}
func TeSumimasen() Seq { return Concat(TeConstruction(), Seq{matcher.Surf("すみません")}) }
func TeKureteArigatou() Seq {
	return Concat(
		TeConstruction(),
		Seq{matcher.SpecificVerb("くれる")},
		Seq{matcher.Cust(matcher.TeDeForm)},
		Seq{matcher.Surf("ありがとう")},
	)
}
func TeYokatta() Seq {
	return Concat(TeConstruction(), Seq{matcher.Cust(matcher.YokattaForm)})
}
func NakuteMoIi() Seq {
	return Concat(
		Seq{matcher.VerbForm("未然形")},
		Seq{matcher.Cust(matcher.NakuForm)},
		Seq{matcher.Surf("て")},
		Seq{matcher.Surf("も")},
		Seq{matcher.Cust(matcher.IiForm)},
	)
}
func BaYokatta() Seq {
	return Concat(
		Seq{matcher.VerbForm("仮定形")},
		Seq{matcher.Surf("ば")},
		Seq{matcher.Cust(matcher.YokattaForm)},
		Seq{matcher.Surf("た")},
	)
}
func HazuDesu() Seq {
	return Concat(VerbPredicate(), Seq{matcher.Surf("はず")}, Seq{matcher.Surf("です")})
}
func KotoNiSuru() Seq {
	return Concat(VerbPredicate(), Seq{matcher.Surf("こと")}, Seq{matcher.Surf("に")}, Seq{matcher.SpecificVerb("する")})
}
func KotoNiNaru() Seq {
	return Concat(VerbPredicate(), Seq{matcher.Surf("こと")}, Seq{matcher.Surf("に")}, Seq{matcher.SpecificVerb("なる")})
}
func Noni() Seq  { return Concat(VerbPredicate(), Seq{matcher.Surf("のに")}) }
func Mitai() Seq { return Concat(VerbPredicate(), Seq{matcher.Surf("みたい")}) }
func KamoShirenai() Seq {
	return Concat(
		VerbPredicate(),
		Seq{matcher.Surf("かも")},
		Seq{matcher.SpecificVerb("しれる")},
		Seq{matcher.Surf("ない")},
	)
}
func KamoShiremasen() Seq {
	return Concat(
		VerbPredicate(),
		Seq{matcher.Surf("かも")},
		Seq{matcher.SpecificVerb("しれる")},
		Seq{matcher.Surf("ませ")},
		Seq{matcher.Surf("ん")},
	)
}
func TeItadakemasenKa() Seq {
	return Concat(TeConstruction(), Seq{matcher.SpecificVerb("いただく")})
}
func GaHoshii() Seq { return Seq{matcher.Surf("が"), matcher.Surf("ほしい")} }

// ShikaNai excludes 「なる」 mizen-forms so しかならない (becomes
// only/limited to) isn't mistaken for the しか…ない restriction.
func ShikaNai() Seq {
	return Seq{matcher.Surf("しか"), matcher.Cust(matcher.NonNaruMizen), matcher.Surf("ない")}
}
func ToIu() Seq { return Seq{matcher.Surf("という")} }
func YouNiSuru() Seq {
	return Concat(VerbPredicate(), Seq{matcher.Surf("よう")}, Seq{matcher.Surf("に")}, Seq{matcher.SpecificVerb("する")})
}
func YouNiNaru() Seq {
	return Concat(VerbPredicate(), Seq{matcher.Surf("よう")}, Seq{matcher.Surf("に")}, Seq{matcher.SpecificVerb("なる")})
}
func TameNi() Seq {
	return Concat(VerbPredicate(), Seq{matcher.Surf("ため")}, Seq{matcher.Surf("に")})
}
func Zu() Seq { return Seq{matcher.VerbForm("未然形"), matcher.Surf("ず")} }

func TaForm() Seq {
	return Seq{matcher.Cust(matcher.FlexibleVerbForm), matcher.Cust(matcher.PastAuxiliary)}
}
func TaBakari() Seq      { return Concat(TaForm(), Seq{matcher.Surf("ばかり")}) }
func TaMonoDa() Seq      { return Concat(TaForm(), Seq{matcher.Surf("もの")}, Seq{matcher.Surf("だ")}) }
func TaMonoDesu() Seq    { return Concat(TaForm(), Seq{matcher.Surf("もの")}, Seq{matcher.Surf("です")}) }
func TaKotoGaAru() Seq {
	return Concat(TaForm(), Seq{matcher.Surf("こと")}, Seq{matcher.Surf("が")}, Seq{matcher.SpecificVerb("ある")})
}
func TaUeDe() Seq { return Concat(TaForm(), Seq{matcher.Surf("上")}, Seq{matcher.Surf("で")}) }
func TeRequest() Seq {
	return Concat(TeConstruction(), Seq{matcher.SpecificVerbForm("くださる", "連用形")})
}
func DictionaryTo() Seq { return Concat(VerbPredicate(), Seq{matcher.Surf("と")}) }
func ToIi() Seq {
	return Concat(VerbPredicate(), Seq{matcher.Surf("と")}, Seq{matcher.Cust(matcher.ToIiForm)})
}
func KaDouKa() Seq {
	return Concat(VerbPredicate(), Seq{matcher.Surf("か")}, Seq{matcher.Surf("どう")}, Seq{matcher.Surf("か")})
}
func Hajimeru() Seq {
	return Concat(Seq{matcher.VerbForm("連用形")}, Seq{matcher.SpecificVerb("始める")})
}
func Kaneru() Seq {
	return Concat(Seq{matcher.VerbForm("連用形")}, Seq{matcher.SpecificVerb("かねる")})
}
func NaiUchiNi() Seq {
	return Concat(
		Seq{matcher.VerbForm("未然形")},
		Seq{matcher.Surf("ない")},
		Seq{matcher.Surf("うち")},
		Seq{matcher.Surf("に")},
	)
}
func YamuoezuVerb() Seq {
	return Concat(Seq{matcher.SpecificVerb("やむをえる")}, Seq{matcher.Surf("ず")})
}
func NiIku() Seq {
	return Concat(Seq{matcher.VerbForm("連用形")}, Seq{matcher.Surf("に")}, Seq{matcher.SpecificVerb("行く")})
}
func MaeNi() Seq {
	return Concat(VerbPredicate(), Seq{matcher.Surf("前")}, Seq{matcher.Surf("に")})
}
func Sugiru() Seq {
	return Concat(Seq{matcher.Cust(matcher.SugiruStem)}, Seq{matcher.SpecificVerb("すぎる")})
}
func NDesu() Seq {
	return Concat(Seq{matcher.Cust(matcher.NDesuForm)}, Seq{matcher.Surf("です")})
}
func CausativePassive() Seq {
	return Concat(
		Seq{matcher.VerbForm("未然形")},
		Seq{matcher.Cust(matcher.SaseForm)},
		Seq{matcher.Cust(matcher.RareruForm)},
	)
}

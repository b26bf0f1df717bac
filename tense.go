package cekim

// Tense enumerates the 14 supported tenses/moods. The first nine are
// simple tenses generated directly from the verb root; the last five
// are compound (narrative) tenses layered over a simple tense's
// 3rd-singular stem.
type Tense int

const (
	TensePresent Tense = iota
	TensePast
	TenseReported
	TenseFuture
	TenseAorist
	TenseConditional
	TenseNecessitative
	TenseOptative
	TenseImperative
	TensePastContinuous
	TensePastFuture
	TensePastAorist
	TensePluperfect
	TenseNarrativeContinuous
)

// Person enumerates the six grammatical persons in pronoun order.
type Person int

const (
	PersonBen Person = iota
	PersonSen
	PersonO
	PersonBiz
	PersonSiz
	PersonOnlar
)

// Polarity selects one cell column of the conjugation grid. Question
// forms are always derived from the positive/negative form by
// appending the harmonized mI particle; they are never stored.
type Polarity int

const (
	PolarityPositive Polarity = iota
	PolarityNegative
	PolarityQuestion
	PolarityNegativeQuestion
)

var pronouns = [6]string{"ben", "sen", "o", "biz", "siz", "onlar"}

var personIDs = [6]string{"1sg", "2sg", "3sg", "1pl", "2pl", "3pl"}

// Pronoun returns the Turkish pronoun label for p.
func (p Person) Pronoun() string {
	if p < 0 || int(p) >= len(pronouns) {
		return ""
	}
	return pronouns[p]
}

// ID returns the short person identifier ("1sg" … "3pl").
func (p Person) ID() string {
	if p < 0 || int(p) >= len(personIDs) {
		return ""
	}
	return personIDs[p]
}

// Persons lists all six persons in pronoun order.
var Persons = [6]Person{PersonBen, PersonSen, PersonO, PersonBiz, PersonSiz, PersonOnlar}

// Personal suffix template sets. Type 1 (vowel-initial) attaches to
// present/reported/future/aorist/necessitative stems; type 2
// (consonant-initial) attaches to past/conditional stems and to the
// story (-DI) layer of compound tenses. Optative endings carry the
// person distinction themselves.
var (
	type1Suffixes    = [6]string{"Im", "sIn", "", "Iz", "sInIz", "lAr"}
	type2Suffixes    = [6]string{"m", "n", "", "k", "nIz", "lAr"}
	optativeSuffixes = [6]string{"AyIm", "AsIn", "A", "AlIm", "AsInIz", "AlAr"}
)

// tenseInfo describes one tense: identity and labels, plus either a
// conjugation function (simple tenses) or a base tense, second
// harmonic layer and layer person set (compound tenses).
type tenseInfo struct {
	ID          string
	Name        string
	TurkishName string

	Compound bool
	// conjugate produces the full personal form for a simple tense.
	conjugate func(root string, p Person, negative bool) string
	// Base/Layer/LayerPersons define a compound tense: the layer is
	// re-suffixed onto the base tense's conjugated 3rd-singular form.
	Base         Tense
	Layer        string
	LayerPersons *[6]string
}

// tenseTable is the static dispatch table: one entry per Tense
// variant, each simple tense carrying its own transformation function
// with its irregularity rules.
var tenseTable = map[Tense]tenseInfo{
	TensePresent: {
		ID: "present", Name: "present continuous", TurkishName: "şimdiki zaman",
		conjugate: conjPresent,
	},
	TensePast: {
		ID: "past", Name: "simple past", TurkishName: "görülen geçmiş zaman",
		conjugate: conjPast,
	},
	TenseReported: {
		ID: "reported", Name: "reported past", TurkishName: "öğrenilen geçmiş zaman",
		conjugate: conjReported,
	},
	TenseFuture: {
		ID: "future", Name: "future", TurkishName: "gelecek zaman",
		conjugate: conjFuture,
	},
	TenseAorist: {
		ID: "aorist", Name: "aorist", TurkishName: "geniş zaman",
		conjugate: conjAorist,
	},
	TenseConditional: {
		ID: "conditional", Name: "conditional", TurkishName: "şart kipi",
		conjugate: conjConditional,
	},
	TenseNecessitative: {
		ID: "necessitative", Name: "necessitative", TurkishName: "gereklilik kipi",
		conjugate: conjNecessitative,
	},
	TenseOptative: {
		ID: "optative", Name: "optative", TurkishName: "istek kipi",
		conjugate: conjOptative,
	},
	TenseImperative: {
		ID: "imperative", Name: "imperative", TurkishName: "emir kipi",
		conjugate: conjImperative,
	},
	TensePastContinuous: {
		ID: "pastContinuous", Name: "past continuous", TurkishName: "şimdiki zamanın hikâyesi",
		Compound: true, Base: TensePresent, Layer: "DI", LayerPersons: &type2Suffixes,
	},
	TensePastFuture: {
		ID: "pastFuture", Name: "past future", TurkishName: "gelecek zamanın hikâyesi",
		Compound: true, Base: TenseFuture, Layer: "DI", LayerPersons: &type2Suffixes,
	},
	TensePastAorist: {
		ID: "pastAorist", Name: "past aorist", TurkishName: "geniş zamanın hikâyesi",
		Compound: true, Base: TenseAorist, Layer: "DI", LayerPersons: &type2Suffixes,
	},
	TensePluperfect: {
		ID: "pluperfect", Name: "pluperfect", TurkishName: "öğrenilen geçmiş zamanın hikâyesi",
		Compound: true, Base: TenseReported, Layer: "DI", LayerPersons: &type2Suffixes,
	},
	TenseNarrativeContinuous: {
		ID: "narrativeContinuous", Name: "narrative continuous", TurkishName: "şimdiki zamanın rivayeti",
		Compound: true, Base: TensePresent, Layer: "mIş", LayerPersons: &type1Suffixes,
	},
}

// SimpleTenses lists the nine simple tenses in table order.
var SimpleTenses = []Tense{
	TensePresent, TensePast, TenseReported, TenseFuture, TenseAorist,
	TenseConditional, TenseNecessitative, TenseOptative, TenseImperative,
}

// CompoundTenses lists the five compound tenses in table order.
var CompoundTenses = []Tense{
	TensePastContinuous, TensePastFuture, TensePastAorist,
	TensePluperfect, TenseNarrativeContinuous,
}

// ID returns the tense identifier used in suffix glosses and the API.
func (t Tense) ID() string { return tenseTable[t].ID }

// Name returns the English display label.
func (t Tense) Name() string { return tenseTable[t].Name }

// TurkishName returns the Turkish display label.
func (t Tense) TurkishName() string { return tenseTable[t].TurkishName }

// IsCompound reports whether t is a compound (narrative) tense.
func (t Tense) IsCompound() bool { return tenseTable[t].Compound }

// ParseTense resolves a tense identifier to its Tense value.
func ParseTense(id string) (Tense, bool) {
	for t, info := range tenseTable {
		if info.ID == id {
			return t, true
		}
	}
	return 0, false
}

// ParsePerson resolves a pronoun ("ben") or short identifier ("1sg").
func ParsePerson(s string) (Person, bool) {
	for _, p := range Persons {
		if s == p.Pronoun() || s == p.ID() {
			return p, true
		}
	}
	return 0, false
}

// ParsePolarity resolves a polarity identifier.
func ParsePolarity(s string) (Polarity, bool) {
	switch s {
	case "positive":
		return PolarityPositive, true
	case "negative":
		return PolarityNegative, true
	case "question":
		return PolarityQuestion, true
	case "negativeQuestion", "negative-question":
		return PolarityNegativeQuestion, true
	}
	return 0, false
}

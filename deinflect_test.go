package cekim

import "testing"

// findDeinflection returns the first analysis with the given
// dictionary form and its position, or nil.
func findDeinflection(results []Deinflection, dict string) (*Deinflection, int) {
	for i := range results {
		if results[i].DictionaryForm == dict {
			return &results[i], i
		}
	}
	return nil, -1
}

func suffixIDs(d *Deinflection) []string {
	ids := make([]string, len(d.Suffixes))
	for i, s := range d.Suffixes {
		ids[i] = s.ID
	}
	return ids
}

func equalIDs(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestDeinflectVerb(t *testing.T) {
	e := New()
	tests := []struct {
		word, dict string
		ids        []string
	}{
		{"geliyorum", "gelmek", []string{"present", "1sg"}},
		{"okuyorum", "okumak", []string{"present", "1sg"}},
		{"geldim", "gelmek", []string{"past", "1sg"}},
		{"geldiler", "gelmek", []string{"past", "3pl"}},
		{"gelmiş", "gelmek", []string{"reported", "3sg"}},
		{"geleceksin", "gelmek", []string{"future", "2sg"}},
		{"geleceğim", "gelmek", []string{"future", "1sg"}},
		{"gelirsiniz", "gelmek", []string{"aorist", "2pl"}},
		{"gelsek", "gelmek", []string{"conditional", "1pl"}},
		{"gelmeliyim", "gelmek", []string{"necessitative", "1sg"}},
		{"geleyim", "gelmek", []string{"optative", "1sg"}},
		{"gelsinler", "gelmek", []string{"imperative", "3pl"}},
		{"gelmiyorum", "gelmek", []string{"negative", "present", "1sg"}},
		{"gelmedim", "gelmek", []string{"negative", "past", "1sg"}},
		{"gelmem", "gelmek", []string{"negative", "aorist", "1sg"}},
		{"gelmeyiz", "gelmek", []string{"negative", "aorist", "1pl"}},
		{"geliyordum", "gelmek", []string{"pastContinuous", "1sg"}},
		{"gelecektim", "gelmek", []string{"pastFuture", "1sg"}},
		{"gelirdim", "gelmek", []string{"pastAorist", "1sg"}},
		{"gelmişti", "gelmek", []string{"pluperfect", "3sg"}},
		{"geliyormuşsun", "gelmek", []string{"narrativeContinuous", "2sg"}},
	}
	for _, tt := range tests {
		results := e.Deinflect(tt.word)
		d, _ := findDeinflection(results, tt.dict)
		if d == nil {
			t.Errorf("Deinflect(%q): no analysis for %q", tt.word, tt.dict)
			continue
		}
		if !equalIDs(suffixIDs(d), tt.ids) {
			t.Errorf("Deinflect(%q) → %q suffixes = %v, want %v", tt.word, tt.dict, suffixIDs(d), tt.ids)
		}
		if d.PossiblePOS[0] != POSVerb {
			t.Errorf("Deinflect(%q) → %q pos = %v, want verb", tt.word, tt.dict, d.PossiblePOS)
		}
	}
}

// Irregular-stem mutations are undone before the infinitive is rebuilt.
func TestDeinflectIrregularRoots(t *testing.T) {
	e := New()
	tests := []struct{ word, dict string }{
		{"gider", "gitmek"},
		{"gidiyor", "gitmek"},
		{"gitti", "gitmek"},
		{"yiyorum", "yemek"},
		{"yedim", "yemek"},
		{"ediyor", "etmek"},
		{"eder", "etmek"},
	}
	for _, tt := range tests {
		if d, _ := findDeinflection(e.Deinflect(tt.word), tt.dict); d == nil {
			t.Errorf("Deinflect(%q): no analysis for %q", tt.word, tt.dict)
		}
	}
}

func TestDeinflectNoun(t *testing.T) {
	e := New()
	tests := []struct {
		word, dict string
		ids        []string
	}{
		{"eve", "ev", []string{"dative"}},
		{"evden", "ev", []string{"ablative"}},
		{"evde", "ev", []string{"locative"}},
		{"evin", "ev", []string{"genitive"}},
		{"evler", "ev", []string{"plural"}},
		{"evlerden", "ev", []string{"plural", "ablative"}},
		{"kitaplarda", "kitap", []string{"plural", "locative"}},
		{"evimiz", "ev", []string{"poss1pl"}},
	}
	for _, tt := range tests {
		results := e.Deinflect(tt.word)
		d, _ := findDeinflection(results, tt.dict)
		if d == nil {
			t.Errorf("Deinflect(%q): no analysis for %q", tt.word, tt.dict)
			continue
		}
		if !equalIDs(suffixIDs(d), tt.ids) {
			t.Errorf("Deinflect(%q) → %q suffixes = %v, want %v", tt.word, tt.dict, suffixIDs(d), tt.ids)
		}
		if d.PossiblePOS[0] != POSNoun {
			t.Errorf("Deinflect(%q) → %q pos = %v, want noun", tt.word, tt.dict, d.PossiblePOS)
		}
	}
}

// Stacked plural+case strips before the bare case reading of the same
// word; both candidates are reported.
func TestDeinflectNounOrdering(t *testing.T) {
	e := New()
	results := e.Deinflect("evlerden")
	ev, evIdx := findDeinflection(results, "ev")
	evler, evlerIdx := findDeinflection(results, "evler")
	if ev == nil || evler == nil {
		t.Fatalf("missing candidate: ev=%v evler=%v", ev, evler)
	}
	if evIdx > evlerIdx {
		t.Errorf("ev at %d after evler at %d", evIdx, evlerIdx)
	}
	if !equalIDs(suffixIDs(ev), []string{"plural", "ablative"}) {
		t.Errorf("ev suffixes = %v", suffixIDs(ev))
	}
	if !equalIDs(suffixIDs(evler), []string{"ablative"}) {
		t.Errorf("evler suffixes = %v", suffixIDs(evler))
	}
}

// A second match on an already-seen dictionary form keeps the first
// suffix trail.
func TestDeinflectDedup(t *testing.T) {
	e := New()
	results := e.Deinflect("evi")
	seen := 0
	for _, d := range results {
		if d.DictionaryForm == "ev" {
			seen++
			if !equalIDs(suffixIDs(&d), []string{"accusative"}) {
				t.Errorf("ev suffixes = %v, want accusative first", suffixIDs(&d))
			}
		}
	}
	if seen != 1 {
		t.Errorf("ev appears %d times, want 1", seen)
	}
}

// One-rune noun stems are rejected as over-stripping.
func TestDeinflectMinimumStem(t *testing.T) {
	e := New()
	results := e.Deinflect("aya")
	if d, _ := findDeinflection(results, "a"); d != nil {
		t.Errorf("one-rune stem accepted: %v", d)
	}
	if d, _ := findDeinflection(results, "ay"); d == nil {
		t.Error("no dative analysis for ay")
	}
}

// The identity analysis is always present and always last.
func TestDeinflectIdentity(t *testing.T) {
	e := New()
	for _, word := range []string{"gelmek", "evlerden", "xyz"} {
		results := e.Deinflect(word)
		if len(results) == 0 {
			t.Fatalf("Deinflect(%q) returned nothing", word)
		}
		last := results[len(results)-1]
		if last.DictionaryForm != word {
			t.Errorf("Deinflect(%q) last = %q, want identity", word, last.DictionaryForm)
			continue
		}
		if len(last.Suffixes) != 0 {
			t.Errorf("identity analysis of %q has suffixes %v", word, last.Suffixes)
		}
		if len(last.PossiblePOS) != 1 || last.PossiblePOS[0] != POSUnknown {
			t.Errorf("identity analysis of %q pos = %v", word, last.PossiblePOS)
		}
	}
}

// An infinitive-shaped word never gets a second infinitive stacked on
// top by the bare-root pattern.
func TestDeinflectInfinitiveInput(t *testing.T) {
	e := New()
	for _, d := range e.Deinflect("gelmek") {
		if d.DictionaryForm == "gelmekmek" {
			t.Fatal("bare pattern applied to an infinitive")
		}
	}
}

func TestDeinflectQuestionParticle(t *testing.T) {
	e := New()
	tests := []struct {
		word, dict string
		ids        []string
	}{
		{"gelir mi?", "gelmek", []string{"aorist", "3sg", "question"}},
		{"geliyor mu?", "gelmek", []string{"present", "3sg", "question"}},
		{"okudu mu?", "okumak", []string{"past", "3sg", "question"}},
		{"gördü mü?", "görmek", []string{"past", "3sg", "question"}},
	}
	for _, tt := range tests {
		d, _ := findDeinflection(e.Deinflect(tt.word), tt.dict)
		if d == nil {
			t.Errorf("Deinflect(%q): no analysis for %q", tt.word, tt.dict)
			continue
		}
		if !equalIDs(suffixIDs(d), tt.ids) {
			t.Errorf("Deinflect(%q) → %q suffixes = %v, want %v", tt.word, tt.dict, suffixIDs(d), tt.ids)
		}
	}
}

func TestDeinflectNormalizesInput(t *testing.T) {
	e := New()
	if d, _ := findDeinflection(e.Deinflect("  GELDİM "), "gelmek"); d == nil {
		t.Error("no analysis for upper-cased padded input")
	}
}

// Every form the conjugator produces strips back to its lemma.
func TestDeinflectRoundTrip(t *testing.T) {
	e := New()
	lemmas := []string{"gelmek", "okumak", "yapmak", "çalışmak", "gitmek", "yemek", "etmek"}
	polarities := []Polarity{PolarityPositive, PolarityNegative, PolarityQuestion, PolarityNegativeQuestion}
	for _, lemma := range lemmas {
		for tense := TensePresent; tense <= TenseNarrativeContinuous; tense++ {
			for _, p := range Persons {
				for _, pol := range polarities {
					form := e.Conjugate(lemma, tense, p, pol)
					if form == "" {
						continue
					}
					if d, _ := findDeinflection(e.Deinflect(form), lemma); d == nil {
						t.Errorf("%s %s %s: %q does not strip back to %q",
							lemma, tense.ID(), p.ID(), form, lemma)
					}
				}
			}
		}
	}
}

package cekim

// PersonForms is one row of a tense grid: the four polarity cells for
// a single person. Empty cells mean the combination has no form
// (imperative 1st singular) and are omitted by display layers.
type PersonForms struct {
	Pronoun          string `json:"pronoun"`
	Positive         string `json:"positive"`
	Negative         string `json:"negative"`
	Question         string `json:"question"`
	NegativeQuestion string `json:"negativeQuestion"`
}

// TenseForms holds the 6-person × 4-polarity grid for one tense,
// together with its bilingual display labels.
type TenseForms struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	TurkishName string         `json:"turkishName"`
	Compound    bool           `json:"compound"`
	Persons     [6]PersonForms `json:"persons"`
}

// ConjugationTable is the complete, freshly computed conjugation of
// one lemma. It is a pure function of (lemma, includeCompound) and is
// never mutated after construction.
type ConjugationTable struct {
	Lemma   string       `json:"lemma"`
	Root    string       `json:"root"`
	Harmony string       `json:"harmony"` // "e" or "a"
	Tenses  []TenseForms `json:"tenses"`
}

// Tense returns the grid for the tense with the given identifier, or
// nil when the table does not carry it.
func (t *ConjugationTable) Tense(id string) *TenseForms {
	for i := range t.Tenses {
		if t.Tenses[i].ID == id {
			return &t.Tenses[i]
		}
	}
	return nil
}

// ConjugateVerb builds the full conjugation table for lemma across the
// nine simple tenses, plus the five compound tenses when
// includeCompound is set. It never fails: a malformed lemma produces a
// degenerate table with the whole string as root.
func (e *Engine) ConjugateVerb(lemma string, includeCompound bool) *ConjugationTable {
	lemma = Lower(lemma)
	root, _ := StripInfinitive(lemma)

	harmony := "a"
	if IsFrontVowelWord(root) {
		harmony = "e"
	}

	order := SimpleTenses
	if includeCompound {
		order = append(append([]Tense{}, SimpleTenses...), CompoundTenses...)
	}

	table := &ConjugationTable{
		Lemma:   lemma,
		Root:    root,
		Harmony: harmony,
		Tenses:  make([]TenseForms, 0, len(order)),
	}
	for _, t := range order {
		tf := TenseForms{
			ID:          t.ID(),
			Name:        t.Name(),
			TurkishName: t.TurkishName(),
			Compound:    t.IsCompound(),
		}
		for _, p := range Persons {
			pos := conjugateRoot(root, t, p, false)
			neg := conjugateRoot(root, t, p, true)
			tf.Persons[p] = PersonForms{
				Pronoun:          p.Pronoun(),
				Positive:         pos,
				Negative:         neg,
				Question:         MakeQuestion(pos),
				NegativeQuestion: MakeQuestion(neg),
			}
		}
		table.Tenses = append(table.Tenses, tf)
	}
	return table
}

package cekim

// Pattern table construction. The verb table is generated at engine
// construction from the same tense and person suffix templates the
// conjugator uses, so every regularly conjugated form strips back to
// its root by construction. The noun table is a curated ordered list.
// Both tables are built once and read-only afterwards.

// patternPersons enumerates persons longest-suffix-first so that more
// specific endings take priority in the result ordering.
var patternPersons = [6]Person{PersonSiz, PersonOnlar, PersonSen, PersonBiz, PersonBen, PersonO}

// compoundBaseMarkers lists the tense-marking ending variants of each
// compound base tense's 3rd-singular stem, longest first.
var compoundBaseMarkers = map[Tense]struct{ pos, neg []string }{
	TensePresent:  {pos: []string{"Iyor", "yor"}, neg: []string{"mIyor"}},
	TenseFuture:   {pos: []string{"yAcAk", "AcAk"}, neg: []string{"mAyAcAk"}},
	TenseAorist:   {pos: []string{"Ir", "Ar", "r"}, neg: []string{"mAz"}},
	TenseReported: {pos: []string{"mIş"}, neg: []string{"mAmIş"}},
}

// simplePatternOrder fixes the relative priority of the simple-tense
// pattern families: longer, more specific markers first. Inherited
// from the source table order; do not reorder.
var simplePatternOrder = []Tense{
	TenseFuture, TenseNecessitative, TenseReported, TensePresent,
	TenseAorist, TensePast, TenseConditional, TenseOptative, TenseImperative,
}

// futureEnding glues a future marker to a person suffix, voicing the
// marker's final k before a vowel-initial person suffix (the surface
// forms have ğ there: geleceğim).
func futureEnding(marker, person string) string {
	if person == "" {
		return marker
	}
	if person[0] == 'I' {
		return softenFinal(marker) + person
	}
	return marker + person
}

// simpleEndings returns the ending template variants of one
// (tense, person, polarity) cell, longest first. A nil result means
// the cell has no strippable ending (bare-stem imperative, undefined
// imperative 1sg).
func simpleEndings(t Tense, p Person, negative bool) []string {
	p1 := type1Suffixes[p]
	p2 := type2Suffixes[p]
	opt := optativeSuffixes[p]

	switch t {
	case TensePresent:
		if negative {
			return []string{"mIyor" + p1}
		}
		return []string{"Iyor" + p1, "yor" + p1}
	case TensePast:
		if negative {
			return []string{"mADI" + p2}
		}
		return []string{"DI" + p2}
	case TenseReported:
		if negative {
			return []string{"mAmIş" + p1}
		}
		return []string{"mIş" + p1}
	case TenseFuture:
		if negative {
			return []string{futureEnding("mAyAcAk", p1)}
		}
		return []string{futureEnding("yAcAk", p1), futureEnding("AcAk", p1)}
	case TenseAorist:
		if negative {
			switch p {
			case PersonBen:
				return []string{"mAm"}
			case PersonBiz:
				return []string{"mAyIz"}
			}
			return []string{"mAz" + p1}
		}
		return []string{"Ir" + p1, "Ar" + p1, "r" + p1}
	case TenseConditional:
		if negative {
			return []string{"mAsA" + p2}
		}
		return []string{"sA" + p2}
	case TenseNecessitative:
		buffered := p1
		if buffered != "" && buffered[0] == 'I' {
			buffered = "y" + buffered
		}
		if negative {
			return []string{"mAmAlI" + buffered}
		}
		return []string{"mAlI" + buffered}
	case TenseOptative:
		if negative {
			return []string{"mAy" + opt}
		}
		return []string{"y" + opt, opt}
	case TenseImperative:
		switch p {
		case PersonSen:
			if negative {
				return []string{"mA"}
			}
			return nil // bare root; handled by the terminal bare pattern
		case PersonO:
			if negative {
				return []string{"mAsIn"}
			}
			return []string{"sIn"}
		case PersonBiz:
			if negative {
				return []string{"mAyAlIm"}
			}
			return []string{"yAlIm", "AlIm"}
		case PersonSiz:
			if negative {
				return []string{"mAyIn"}
			}
			return []string{"yIn", "In"}
		case PersonOnlar:
			if negative {
				return []string{"mAsInlAr"}
			}
			return []string{"sInlAr"}
		}
		return nil
	}
	return nil
}

// buildVerbPatterns generates the ordered verb pattern table:
// compound tenses first (their endings are the longest), then the
// simple tense families, negatives ahead of positives, and finally
// the bare-root imperative pattern that matches any word.
func buildVerbPatterns() []*SuffixPattern {
	var pats []*SuffixPattern
	add := func(template string, t Tense, p Person, negative bool) {
		ids := make([]string, 0, 3)
		if negative {
			ids = append(ids, "negative")
		}
		ids = append(ids, t.ID(), p.ID())
		pats = append(pats, &SuffixPattern{
			Template: template,
			Suffixes: ids,
			POS:      POSVerb,
			Tense:    t,
			Person:   p,
			Negative: negative,
			slots:    compileSlots(template),
		})
	}

	for _, t := range CompoundTenses {
		info := tenseTable[t]
		markers := compoundBaseMarkers[info.Base]
		for _, negative := range []bool{true, false} {
			base := markers.pos
			if negative {
				base = markers.neg
			}
			for _, p := range patternPersons {
				for _, m := range base {
					add(m+info.Layer+info.LayerPersons[p], t, p, negative)
				}
			}
		}
	}

	for _, t := range simplePatternOrder {
		for _, negative := range []bool{true, false} {
			for _, p := range patternPersons {
				for _, tpl := range simpleEndings(t, p, negative) {
					add(tpl, t, p, negative)
				}
			}
		}
	}

	// Bare 2nd-singular imperative: the root itself is the form.
	add("", TenseImperative, PersonSen, false)
	return pats
}

// nounPatternSpecs is the curated noun case/possessive table in match
// order. Longer/more specific endings come first: stacked plural+case
// entries, then ablative before locative and genitive before
// accusative. Order is a correctness invariant, not a preference.
var nounPatternSpecs = []struct {
	template string
	suffixes []string
}{
	{"lArDAn", []string{"plural", "ablative"}},
	{"lArDA", []string{"plural", "locative"}},
	{"lArIn", []string{"plural", "genitive"}},
	{"lArA", []string{"plural", "dative"}},
	{"lArI", []string{"plural", "accusative"}},
	{"lArI", []string{"poss3pl"}},
	{"ImIz", []string{"poss1pl"}},
	{"InIz", []string{"poss2pl"}},
	{"mIz", []string{"poss1pl"}},
	{"nIz", []string{"poss2pl"}},
	{"DAn", []string{"ablative"}},
	{"nIn", []string{"genitive"}},
	{"DA", []string{"locative"}},
	{"In", []string{"genitive"}},
	{"yA", []string{"dative"}},
	{"yI", []string{"accusative"}},
	{"lAr", []string{"plural"}},
	{"sI", []string{"poss3sg"}},
	{"Im", []string{"poss1sg"}},
	{"In", []string{"poss2sg"}},
	{"A", []string{"dative"}},
	{"I", []string{"accusative"}},
	{"I", []string{"poss3sg"}},
	{"m", []string{"poss1sg"}},
	{"n", []string{"poss2sg"}},
}

func buildNounPatterns() []*SuffixPattern {
	pats := make([]*SuffixPattern, 0, len(nounPatternSpecs))
	for _, spec := range nounPatternSpecs {
		pats = append(pats, &SuffixPattern{
			Template: spec.template,
			Suffixes: spec.suffixes,
			POS:      POSNoun,
			slots:    compileSlots(spec.template),
		})
	}
	return pats
}

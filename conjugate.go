package cekim

import "unicode/utf8"

// negStem appends the harmonized negative marker -mA to root when
// negative is set.
func negStem(root string, negative bool) string {
	if !negative {
		return root
	}
	return root + ResolveSuffixTemplate(root, "mA")
}

// appendSuffix resolves template against stem and appends it. A
// vowel-initial suffix gets a buffer y after a vowel-final stem, and
// triggers the irregular consonant-softening table otherwise
// (git+eyim→gideyim; softening on regular roots like yap is not
// applied, membership in the table decides).
func appendSuffix(stem, template string) string {
	if template == "" {
		return stem
	}
	suffix := ResolveSuffixTemplate(stem, template)
	r, _ := utf8.DecodeRuneInString(suffix)
	if IsVowel(r) {
		if endsInVowel(stem) {
			return stem + "y" + suffix
		}
		stem = softenRoot(stem)
	}
	return stem + suffix
}

// conjPresent builds the present continuous (-Iyor). The root's final
// vowel elides before -yor; contraction-irregular roots substitute
// their narrowed stem in the positive (ye→yi-yor); the negative goes
// through -mA, whose vowel elides instead (gel-me→gelm-iyor).
func conjPresent(root string, p Person, negative bool) string {
	stem := root
	switch {
	case negative:
		stem += ResolveSuffixTemplate(stem, "mA")
	case contractionRoots[root] != "":
		stem = contractionRoots[root]
	default:
		stem = softenRoot(stem)
	}
	if endsInVowel(stem) {
		_, size := utf8.DecodeLastRuneInString(stem)
		stem = stem[:len(stem)-size]
	}
	form := stem + ResolveSuffixTemplate(stem, "Iyor")
	return appendSuffix(form, type1Suffixes[p])
}

// conjPast builds the simple past (-DI) with type-2 person suffixes.
func conjPast(root string, p Person, negative bool) string {
	stem := negStem(root, negative)
	form := stem + ResolveSuffixTemplate(stem, "DI")
	return appendSuffix(form, type2Suffixes[p])
}

// conjReported builds the reported past (-mIş).
func conjReported(root string, p Person, negative bool) string {
	stem := negStem(root, negative)
	form := stem + ResolveSuffixTemplate(stem, "mIş")
	return appendSuffix(form, type1Suffixes[p])
}

// conjFuture builds the future (-AcAk): buffer y after a vowel-final
// stem, and the suffix-final k voices to ğ before a vowel-initial
// person suffix (gelecek+im→geleceğim).
func conjFuture(root string, p Person, negative bool) string {
	stem := negStem(root, negative)
	if endsInVowel(stem) {
		stem += "y"
	} else {
		stem = softenRoot(stem)
	}
	form := stem + ResolveSuffixTemplate(stem, "AcAk")
	suffix := type1Suffixes[p]
	if suffix == "" {
		return form
	}
	resolved := ResolveSuffixTemplate(form, suffix)
	r, _ := utf8.DecodeRuneInString(resolved)
	if IsVowel(r) {
		form = softenFinal(form)
	}
	return form + resolved
}

// conjAorist builds the aorist. Positive suffix selection, in strict
// precedence: irregular consonant-softening roots take -Ar on the
// softened stem; the monosyllabic exception list takes -Ir; otherwise
// a vowel-final root takes bare -r, a polysyllabic consonant-final
// root takes -Ir, and a monosyllabic consonant-final root takes -Ar.
// The negative uses -mAz, with the irregular short 1st-singular -m
// and the 1st-plural -yIz attached to the bare -mA stem.
func conjAorist(root string, p Person, negative bool) string {
	if negative {
		base := root + ResolveSuffixTemplate(root, "mA")
		switch p {
		case PersonBen:
			return base + "m"
		case PersonBiz:
			return base + "y" + ResolveSuffixTemplate(base, "Iz")
		}
		form := root + ResolveSuffixTemplate(root, "mAz")
		return appendSuffix(form, type1Suffixes[p])
	}

	var form string
	switch {
	case softeningRoots[root] != "":
		form = softeningRoots[root] + ResolveSuffixTemplate(root, "Ar")
	case aoristIrRoots[root]:
		form = root + ResolveSuffixTemplate(root, "Ir")
	case endsInVowel(root):
		form = root + "r"
	case vowelCount(root) > 1:
		form = root + ResolveSuffixTemplate(root, "Ir")
	default:
		form = root + ResolveSuffixTemplate(root, "Ar")
	}
	return appendSuffix(form, type1Suffixes[p])
}

// conjConditional builds the conditional (-sA) with type-2 persons.
func conjConditional(root string, p Person, negative bool) string {
	stem := negStem(root, negative)
	form := stem + ResolveSuffixTemplate(stem, "sA")
	return appendSuffix(form, type2Suffixes[p])
}

// conjNecessitative builds the necessitative (-mAlI).
func conjNecessitative(root string, p Person, negative bool) string {
	stem := negStem(root, negative)
	form := stem + ResolveSuffixTemplate(stem, "mAlI")
	return appendSuffix(form, type1Suffixes[p])
}

// conjOptative builds the optative; the person distinction lives in
// the ending itself (-AyIm, -AsIn, …).
func conjOptative(root string, p Person, negative bool) string {
	stem := negStem(root, negative)
	return appendSuffix(stem, optativeSuffixes[p])
}

// conjImperative builds the imperative. There is no 1st-singular
// imperative; that cell is the empty string and callers omit it.
func conjImperative(root string, p Person, negative bool) string {
	stem := negStem(root, negative)
	switch p {
	case PersonSen:
		return stem
	case PersonO:
		return stem + ResolveSuffixTemplate(stem, "sIn")
	case PersonBiz:
		return appendSuffix(stem, "AlIm")
	case PersonSiz:
		return appendSuffix(stem, "In")
	case PersonOnlar:
		return stem + ResolveSuffixTemplate(stem, "sInlAr")
	}
	return ""
}

// conjugateRoot produces the non-question form for any tense given an
// already-extracted root. Compound tenses re-suffix the base tense's
// conjugated 3rd-singular form (the bare tense stem) with the second
// harmonic layer and the layer's own person suffix set.
func conjugateRoot(root string, t Tense, p Person, negative bool) string {
	info, ok := tenseTable[t]
	if !ok {
		return ""
	}
	if !info.Compound {
		return info.conjugate(root, p, negative)
	}
	base := conjugateRoot(root, info.Base, PersonO, negative)
	form := base + ResolveSuffixTemplate(base, info.Layer)
	return appendSuffix(form, info.LayerPersons[p])
}

// MakeQuestion appends the space-separated, harmony-resolved question
// particle to an already-conjugated form. The empty form (undefined
// grammatical combination) stays empty.
func MakeQuestion(form string) string {
	if form == "" {
		return ""
	}
	return form + " " + ResolveSuffixTemplate(form, "mI") + "?"
}

// Conjugate returns the surface form of lemma for the given tense,
// person and polarity. A lemma not ending in -mek/-mak is treated as
// if the whole string were the root; the output is then degenerate
// but never an error.
func (e *Engine) Conjugate(lemma string, t Tense, p Person, pol Polarity) string {
	root, _ := StripInfinitive(Lower(lemma))
	switch pol {
	case PolarityNegative:
		return conjugateRoot(root, t, p, true)
	case PolarityQuestion:
		return MakeQuestion(conjugateRoot(root, t, p, false))
	case PolarityNegativeQuestion:
		return MakeQuestion(conjugateRoot(root, t, p, true))
	default:
		return conjugateRoot(root, t, p, false)
	}
}

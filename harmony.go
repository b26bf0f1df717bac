package cekim

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Vowel classifies one of the 8 Turkish vowels.
type Vowel struct {
	// Front is true for e, i, ö, ü; false for a, ı, o, u.
	Front bool
	// Rounded is true for o, ö, u, ü.
	Rounded bool
}

// vowels is the fixed classification table. It is never extended at
// runtime; vowels are only ever looked up, not constructed.
var vowels = map[rune]Vowel{
	'a': {Front: false, Rounded: false},
	'ı': {Front: false, Rounded: false},
	'o': {Front: false, Rounded: true},
	'u': {Front: false, Rounded: true},
	'e': {Front: true, Rounded: false},
	'i': {Front: true, Rounded: false},
	'ö': {Front: true, Rounded: true},
	'ü': {Front: true, Rounded: true},
}

// voicelessConsonants is the voiceless partition of the consonants
// ("fıstıkçı şahap"). Used for the D suffix-onset choice.
var voicelessConsonants = map[rune]bool{
	'f': true, 's': true, 't': true, 'k': true,
	'ç': true, 'ş': true, 'h': true, 'p': true,
}

// softened maps the softening subset p,t,k,ç to their voiced
// counterparts before a vowel-initial suffix.
var softened = map[rune]rune{
	'p': 'b',
	't': 'd',
	'k': 'ğ',
	'ç': 'c',
}

// IsVowel reports whether r is a Turkish vowel.
func IsVowel(r rune) bool {
	_, ok := vowels[r]
	return ok
}

// LastVowel returns the rightmost vowel of stem. ok is false for a
// vowel-less stem; callers then default to front/e-type harmony.
func LastVowel(stem string) (r rune, ok bool) {
	for i := len(stem); i > 0; {
		r, size := utf8.DecodeLastRuneInString(stem[:i])
		if IsVowel(r) {
			return r, true
		}
		i -= size
	}
	return 0, false
}

// TwoWayHarmony resolves the A placeholder: front vowels select e,
// back vowels select a.
func TwoWayHarmony(v rune) rune {
	if c, ok := vowels[v]; ok && !c.Front {
		return 'a'
	}
	return 'e'
}

// FourWayHarmony resolves the I placeholder by the (frontness,
// roundedness) pair of v: i, ı, u or ü.
func FourWayHarmony(v rune) rune {
	c, ok := vowels[v]
	if !ok {
		return 'i'
	}
	switch {
	case c.Front && c.Rounded:
		return 'ü'
	case c.Front:
		return 'i'
	case c.Rounded:
		return 'u'
	default:
		return 'ı'
	}
}

// endsInVowel reports whether s ends in a vowel.
func endsInVowel(s string) bool {
	r, _ := utf8.DecodeLastRuneInString(s)
	return IsVowel(r)
}

// endsInVoiceless reports whether s ends in a voiceless consonant.
func endsInVoiceless(s string) bool {
	r, _ := utf8.DecodeLastRuneInString(s)
	return voicelessConsonants[r]
}

// vowelCount returns the number of vowels in s, which for Turkish is
// the syllable count.
func vowelCount(s string) int {
	n := 0
	for _, r := range s {
		if IsVowel(r) {
			n++
		}
	}
	return n
}

// softenFinal voices a final p, t, k or ç (kitap→kitab, gelecek→geleceğ).
// Applied when a vowel-initial suffix follows. A stem not ending in the
// softening subset is returned unchanged.
func softenFinal(s string) string {
	r, size := utf8.DecodeLastRuneInString(s)
	if v, ok := softened[r]; ok {
		return s[:len(s)-size] + string(v)
	}
	return s
}

// ResolveSuffixTemplate resolves the harmony placeholders of template
// against stem and returns the concrete suffix. Placeholders:
//
//	A: two-way harmony (e or a)
//	I: four-way harmony (i, ı, u or ü)
//	D: d, or t after a voiceless consonant
//
// Harmony propagates left to right through the suffix itself: each
// emitted vowel, literal or resolved, becomes the source vowel for the
// placeholders after it (oku+mAlI→malı, not malu). Literal consonants
// pass through unchanged. This is the single point of truth for
// harmony resolution; both engines go through it.
func ResolveSuffixTemplate(stem, template string) string {
	last, _ := LastVowel(stem) // zero value falls back to front/e-type
	var b strings.Builder
	b.Grow(len(template))
	for _, r := range template {
		switch r {
		case 'A':
			r = TwoWayHarmony(last)
		case 'I':
			r = FourWayHarmony(last)
		case 'D':
			r = 'd'
			if endsInVoiceless(stem) {
				r = 't'
			}
		}
		if IsVowel(r) {
			last = r
		}
		b.WriteRune(r)
	}
	return b.String()
}

// IsFrontVowelWord classifies a stem's harmony type for display:
// true for e-type (front) words, false for a-type. Vowel-less stems
// classify as e-type.
func IsFrontVowelWord(stem string) bool {
	last, ok := LastVowel(stem)
	if !ok {
		return true
	}
	return vowels[last].Front
}

// StripInfinitive removes a trailing -mek/-mak from lemma. ok is false
// when lemma does not look like an infinitive; the lemma is then
// returned whole, which yields degenerate but non-crashing output
// downstream.
func StripInfinitive(lemma string) (root string, ok bool) {
	if strings.HasSuffix(lemma, "mek") || strings.HasSuffix(lemma, "mak") {
		return lemma[:len(lemma)-3], true
	}
	return lemma, false
}

// Infinitive appends the harmony-correct infinitive ending to root.
func Infinitive(root string) string {
	if IsFrontVowelWord(root) {
		return root + "mek"
	}
	return root + "mak"
}

// Lower lowercases s with Turkish casing rules (İ→i, I→ı). The
// standard library's ToLower maps I to i, which mis-folds Turkish
// input, so all engine entry points fold through here.
func Lower(s string) string {
	return cases.Lower(language.Turkish).String(s)
}

package cekim

// Suffix recognition patterns. A pattern is a small explicit AST of
// literal runes and harmony slots, matched against the end of a
// surface form. Harmony resolution stays in harmony.go; the matcher
// only recognizes, it never resolves.

type slotKind int

const (
	slotLiteral slotKind = iota
	slotTwoWay           // A: matches a or e
	slotFourWay          // I: matches ı, i, u or ü
	slotConsonant        // D: matches d or t
)

type patternSlot struct {
	kind slotKind
	lit  rune
}

// SuffixPattern pairs a compiled recognition pattern with its suffix
// identifiers and grammatical tags. Patterns are immutable after
// compilation.
type SuffixPattern struct {
	// Template is the source template, with A/I/D harmony slots.
	Template string
	// Suffixes are the matched suffix identifiers, outermost last
	// (e.g. ["negative", "aorist", "1sg"]).
	Suffixes []string
	// POS is the part of speech this pattern implies.
	POS PartOfSpeech

	// Verb pattern tags; unset for noun patterns.
	Tense    Tense
	Person   Person
	Negative bool

	slots []patternSlot
}

// compileSlots turns a template string into its slot sequence. Each
// slot consumes exactly one rune of the surface form.
func compileSlots(template string) []patternSlot {
	slots := make([]patternSlot, 0, len(template))
	for _, r := range template {
		switch r {
		case 'A':
			slots = append(slots, patternSlot{kind: slotTwoWay})
		case 'I':
			slots = append(slots, patternSlot{kind: slotFourWay})
		case 'D':
			slots = append(slots, patternSlot{kind: slotConsonant})
		default:
			slots = append(slots, patternSlot{kind: slotLiteral, lit: r})
		}
	}
	return slots
}

func (s patternSlot) matches(r rune) bool {
	switch s.kind {
	case slotTwoWay:
		return r == 'a' || r == 'e'
	case slotFourWay:
		return r == 'ı' || r == 'i' || r == 'u' || r == 'ü'
	case slotConsonant:
		return r == 'd' || r == 't'
	default:
		return r == s.lit
	}
}

// Match tests the pattern against the end of word and returns the
// remaining stem. The stem must be non-empty; whether it is otherwise
// acceptable (noun minimum length, irregular reversal) is the
// caller's concern. An empty template matches the whole word as stem.
func (p *SuffixPattern) Match(word string) (stem string, ok bool) {
	runes := []rune(word)
	n := len(p.slots)
	if n == 0 {
		if len(runes) == 0 {
			return "", false
		}
		return word, true
	}
	if len(runes) < n+1 {
		return "", false
	}
	base := len(runes) - n
	for i, s := range p.slots {
		if !s.matches(runes[base+i]) {
			return "", false
		}
	}
	return string(runes[:base]), true
}

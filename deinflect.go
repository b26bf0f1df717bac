package cekim

import (
	"strings"
	"unicode/utf8"
)

// SuffixGloss is one matched suffix identifier with its human-readable
// Turkish label.
type SuffixGloss struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Deinflection is one analysis of a surface form: a candidate
// dictionary form plus the suffix chain that was stripped to reach it.
type Deinflection struct {
	DictionaryForm string         `json:"dictionaryForm"`
	Surface        string         `json:"surface"`
	Suffixes       []SuffixGloss  `json:"suffixes"`
	PossiblePOS    []PartOfSpeech `json:"possiblePos"`
}

// minNounStem is the minimum rune length of a stripped noun root.
// Shorter roots are rejected as over-stripping of short words.
const minNounStem = 2

// questionParticles are the four harmony variants of mI as a
// standalone trailing word.
var questionParticles = map[string]bool{"mı": true, "mi": true, "mu": true, "mü": true}

// Deinflect returns every analysis of word consistent with the verb
// and noun pattern tables, in table order, deduplicated by dictionary
// form (first occurrence wins; parts of speech are merged). The list
// is never empty: the identity analysis is always present, last.
func (e *Engine) Deinflect(word string) []Deinflection {
	surface := word
	w := Lower(strings.TrimSpace(word))

	// A trailing question particle ("gelir mi?") is stripped off and
	// recorded; the remaining single word is analyzed.
	question := false
	w = strings.TrimSuffix(w, "?")
	w = strings.TrimSpace(w)
	if i := strings.LastIndexByte(w, ' '); i >= 0 {
		if questionParticles[w[i+1:]] {
			question = true
			w = strings.TrimSpace(w[:i])
		}
	}

	var results []Deinflection
	index := make(map[string]int)
	add := func(dict string, ids []string, pos PartOfSpeech) {
		if j, ok := index[dict]; ok {
			// Same dictionary form found again: keep the first
			// analysis's suffix trail, merge the part of speech.
			for _, have := range results[j].PossiblePOS {
				if have == pos {
					return
				}
			}
			results[j].PossiblePOS = append(results[j].PossiblePOS, pos)
			return
		}
		glosses := make([]SuffixGloss, 0, len(ids)+1)
		for _, id := range ids {
			glosses = append(glosses, SuffixGloss{ID: id, Label: e.Gloss(id)})
		}
		if question {
			glosses = append(glosses, SuffixGloss{ID: "question", Label: e.Gloss("question")})
		}
		index[dict] = len(results)
		results = append(results, Deinflection{
			DictionaryForm: dict,
			Surface:        surface,
			Suffixes:       glosses,
			PossiblePOS:    []PartOfSpeech{pos},
		})
	}

	for _, p := range e.verbPatterns {
		if p.Template == "" && (strings.HasSuffix(w, "mek") || strings.HasSuffix(w, "mak")) {
			// Bare-imperative reading of a word already in infinitive
			// shape would stack a second infinitive ending.
			continue
		}
		stem, ok := p.Match(w)
		if !ok {
			continue
		}
		// Undo irregular-stem mutations, then restore the infinitive
		// by the resolved root's harmony (not the raw stem's).
		root := restoreRoot(stem)
		add(Infinitive(root), p.Suffixes, POSVerb)
	}

	for _, p := range e.nounPatterns {
		stem, ok := p.Match(w)
		if !ok || utf8.RuneCountInString(stem) < minNounStem {
			continue
		}
		add(stem, p.Suffixes, POSNoun)
	}

	// Identity analysis: the surface form itself as a candidate lemma.
	if _, ok := index[w]; !ok {
		results = append(results, Deinflection{
			DictionaryForm: w,
			Surface:        surface,
			Suffixes:       []SuffixGloss{},
			PossiblePOS:    []PartOfSpeech{POSUnknown},
		})
	}
	return results
}

// Package cekim provides rule-based Turkish morphology: generative
// conjugation of verbs across tenses, persons and polarities, and
// analytic deinflection of arbitrary surface forms back to candidate
// dictionary forms with suffix glosses.
//
// The engine is purely computational: its tables are populated once at
// construction and read-only afterwards, so a single Engine is safe
// for concurrent use from any number of goroutines.
package cekim

// PartOfSpeech labels a plausible grammatical category for a
// deinflection candidate.
type PartOfSpeech string

const (
	POSVerb    PartOfSpeech = "verb"
	POSNoun    PartOfSpeech = "noun"
	POSUnknown PartOfSpeech = "unknown"
)

// Engine holds the compiled suffix pattern tables and the gloss label
// table. Construct with New.
type Engine struct {
	// verbPatterns is the ordered verb-tense pattern table, generated
	// from the same suffix templates the conjugator uses.
	verbPatterns []*SuffixPattern

	// nounPatterns is the ordered noun case/possessive pattern table.
	// Order is correctness-critical: longer/more specific suffixes
	// (ablative -DAn) come before shorter overlapping ones
	// (locative -DA).
	nounPatterns []*SuffixPattern

	// glosses maps suffix identifier → Turkish display label.
	glosses map[string]string
}

// New compiles the suffix pattern tables and returns a ready Engine.
func New() *Engine {
	return &Engine{
		verbPatterns: buildVerbPatterns(),
		nounPatterns: buildNounPatterns(),
		glosses:      defaultGlosses(),
	}
}

// VerbPatterns returns the compiled verb pattern table in match order.
func (e *Engine) VerbPatterns() []*SuffixPattern { return e.verbPatterns }

// NounPatterns returns the compiled noun pattern table in match order.
func (e *Engine) NounPatterns() []*SuffixPattern { return e.nounPatterns }

package cekim

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Entry is a dictionary record as the external store returns it. The
// engine only ever supplies lowercase candidate lemma strings as
// lookup keys; the store's schema beyond this shape is not its
// concern.
type Entry struct {
	Word  string `json:"word"`
	POS   string `json:"pos,omitempty"`
	Gloss string `json:"gloss,omitempty"`
	// FormOf marks a grammatical "form of" reference entry whose
	// gloss names a base word.
	FormOf bool `json:"formOf,omitempty"`
}

// Dictionary is the external dictionary collaborator, keyed by
// lowercase lemma. A miss is (nil, nil); errors are I/O failures.
type Dictionary interface {
	Lookup(ctx context.Context, word string) (*Entry, error)
}

// LookupResult is the outcome of one orchestrated lookup.
type LookupResult struct {
	Query string `json:"query"`
	// Entry is the matched record, nil when nothing was found.
	Entry *Entry `json:"entry,omitempty"`
	// Analysis is the deinflection that produced the hit; nil for an
	// exact match on the query itself.
	Analysis *Deinflection `json:"analysis,omitempty"`
	// Base is the resolved base word of a "form of" entry, when the
	// gloss could be chased.
	Base *Entry `json:"base,omitempty"`
	// Tried lists the dictionary forms attempted, in order.
	Tried []string `json:"tried"`
}

// Lookup orchestrates dictionary access around the engine: exact
// lookup first, then deinflection candidates in engine order,
// stopping at the first hit.
type Lookup struct {
	dict   Dictionary
	engine *Engine
	log    *zap.Logger
}

// NewLookup wires a Lookup. A nil logger disables logging.
func NewLookup(dict Dictionary, engine *Engine, log *zap.Logger) *Lookup {
	if log == nil {
		log = zap.NewNop()
	}
	return &Lookup{dict: dict, engine: engine, log: log}
}

// Find resolves query against the dictionary. A miss is not an error:
// the result comes back with a nil Entry. Errors are I/O failures
// from the store only.
func (l *Lookup) Find(ctx context.Context, query string) (*LookupResult, error) {
	q := Lower(strings.TrimSpace(query))
	res := &LookupResult{Query: q, Tried: []string{q}}

	entry, err := l.dict.Lookup(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("lookup %q: %w", q, err)
	}
	if entry != nil {
		res.Entry = entry
		l.resolveFormOf(ctx, res)
		return res, nil
	}

	for _, d := range l.engine.Deinflect(q) {
		if d.DictionaryForm == q {
			continue // exact form already tried
		}
		res.Tried = append(res.Tried, d.DictionaryForm)
		entry, err := l.dict.Lookup(ctx, d.DictionaryForm)
		if err != nil {
			return nil, fmt.Errorf("lookup candidate %q: %w", d.DictionaryForm, err)
		}
		if entry == nil {
			continue
		}
		analysis := d
		res.Entry = entry
		res.Analysis = &analysis
		l.log.Debug("deinflected hit",
			zap.String("query", q),
			zap.String("dictionaryForm", d.DictionaryForm),
			zap.Int("candidate", len(res.Tried)-1))
		l.resolveFormOf(ctx, res)
		return res, nil
	}

	l.log.Debug("no dictionary match", zap.String("query", q), zap.Int("tried", len(res.Tried)))
	return res, nil
}

// resolveFormOf chases a "form of" reference one step: the base word
// is the token following the final "of" in the gloss. Absent or
// unparseable glosses and failed base lookups yield no base data,
// silently.
func (l *Lookup) resolveFormOf(ctx context.Context, res *LookupResult) {
	if res.Entry == nil || !res.Entry.FormOf {
		return
	}
	base := baseWordFromGloss(res.Entry.Gloss)
	if base == "" {
		return
	}
	entry, err := l.dict.Lookup(ctx, Lower(base))
	if err != nil || entry == nil {
		l.log.Debug("form-of base not resolved",
			zap.String("word", res.Entry.Word), zap.String("base", base))
		return
	}
	res.Base = entry
}

// baseWordFromGloss extracts the token following the word "of" at the
// end of a gloss ("plural of ev" → "ev"). Returns "" when the gloss
// does not end that way.
func baseWordFromGloss(gloss string) string {
	fields := strings.Fields(gloss)
	if len(fields) < 2 || fields[len(fields)-2] != "of" {
		return ""
	}
	return strings.Trim(fields[len(fields)-1], `."',;:!?`)
}

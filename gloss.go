package cekim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultGlosses returns the built-in suffix identifier → Turkish
// label table. Configuration data: extending or overriding it (see
// LoadGlossFile) requires no engine change.
func defaultGlosses() map[string]string {
	return map[string]string{
		"present":             "şimdiki zaman",
		"past":                "görülen geçmiş zaman",
		"reported":            "öğrenilen geçmiş zaman",
		"future":              "gelecek zaman",
		"aorist":              "geniş zaman",
		"conditional":         "şart kipi",
		"necessitative":       "gereklilik kipi",
		"optative":            "istek kipi",
		"imperative":          "emir kipi",
		"pastContinuous":      "şimdiki zamanın hikâyesi",
		"pastFuture":          "gelecek zamanın hikâyesi",
		"pastAorist":          "geniş zamanın hikâyesi",
		"pluperfect":          "öğrenilen geçmiş zamanın hikâyesi",
		"narrativeContinuous": "şimdiki zamanın rivayeti",

		"negative": "olumsuzluk eki",
		"question": "soru eki",

		"1sg": "1. tekil kişi (ben)",
		"2sg": "2. tekil kişi (sen)",
		"3sg": "3. tekil kişi (o)",
		"1pl": "1. çoğul kişi (biz)",
		"2pl": "2. çoğul kişi (siz)",
		"3pl": "3. çoğul kişi (onlar)",

		"plural":     "çoğul eki (-ler/-lar)",
		"ablative":   "ayrılma hâli (-den)",
		"locative":   "bulunma hâli (-de)",
		"genitive":   "ilgi hâli (-in)",
		"dative":     "yönelme hâli (-e)",
		"accusative": "belirtme hâli (-i)",
		"poss1sg":    "iyelik eki (benim)",
		"poss2sg":    "iyelik eki (senin)",
		"poss3sg":    "iyelik eki (onun)",
		"poss1pl":    "iyelik eki (bizim)",
		"poss2pl":    "iyelik eki (sizin)",
		"poss3pl":    "iyelik eki (onların)",
	}
}

// Gloss returns the display label for a suffix identifier. Unknown
// identifiers fall back to the identifier itself so that table
// extensions degrade visibly rather than silently.
func (e *Engine) Gloss(id string) string {
	if label, ok := e.glosses[id]; ok {
		return label
	}
	return id
}

// Glosses returns a copy of the current label table.
func (e *Engine) Glosses() map[string]string {
	out := make(map[string]string, len(e.glosses))
	for k, v := range e.glosses {
		out[k] = v
	}
	return out
}

// LoadGlossFile merges label overrides from a YAML file of
// `identifier: label` pairs into the gloss table. Call before sharing
// the engine across goroutines.
func (e *Engine) LoadGlossFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read gloss file: %w", err)
	}
	return e.mergeGlosses(data)
}

func (e *Engine) mergeGlosses(data []byte) error {
	overrides := make(map[string]string)
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return fmt.Errorf("parse gloss file: %w", err)
	}
	for id, label := range overrides {
		e.glosses[id] = label
	}
	return nil
}

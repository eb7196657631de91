// Package lexicon loads and serves the severity-tiered trigger-phrase
// lexicon and the metaphorical-context indicator tables.
//
// The lexicon is a versioned, human-editable YAML document loaded once at
// process start and frozen for the process lifetime. The Store exposes
// read-only lookups and is safe to share across arbitrarily many concurrent
// assessments.
package lexicon

import (
	"github.com/solace-health/crisis-detector/domain"
)

// DialectStandard is the default dialect tag. Dialects are an open axis of
// the document: new tags need no code changes. Within a tier, the standard
// dialect is scanned first and remaining dialects follow in sorted order so
// iteration is deterministic.
const DialectStandard = "standard"

// TriggerPhrase is one (tier, dialect, phrase) entry. The phrase is a
// lower-case literal substring; matching is case-insensitive substring
// containment, not word-boundary matching.
type TriggerPhrase struct {
	Tier    domain.Tier
	Dialect string
	Phrase  string
}

// ContextCategory names a group of indicator substrings that mark a message
// as metaphorical. Categories are not mutually exclusive and carry no
// weighting: any single indicator hit suppresses as strongly as any other.
type ContextCategory struct {
	Name       string
	Indicators []string
}

// Store is the immutable in-memory lexicon.
type Store struct {
	version    string
	phrases    map[domain.Tier][]TriggerPhrase
	categories []ContextCategory
}

// Version returns the document version of the loaded lexicon.
func (s *Store) Version() string {
	return s.version
}

// PhrasesFor returns the tier's trigger phrases in lexicon order, all
// dialects merged, de-duplicated at load. The returned slice must not be
// mutated.
func (s *Store) PhrasesFor(t domain.Tier) []TriggerPhrase {
	return s.phrases[t]
}

// Categories returns the metaphorical-context categories in name order.
// The returned slice must not be mutated.
func (s *Store) Categories() []ContextCategory {
	return s.categories
}

// PhraseCount returns the total number of trigger phrases across all tiers.
func (s *Store) PhraseCount() int {
	n := 0
	for _, phrases := range s.phrases {
		n += len(phrases)
	}
	return n
}

// IndicatorCount returns the total number of context indicators.
func (s *Store) IndicatorCount() int {
	n := 0
	for _, c := range s.categories {
		n += len(c.Indicators)
	}
	return n
}

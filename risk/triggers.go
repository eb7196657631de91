package risk

import (
	"fmt"
	"sort"
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"

	"github.com/solace-health/crisis-detector/domain"
	"github.com/solace-health/crisis-detector/lexicon"
)

// Extractor re-scans a message against every tier and dialect exhaustively
// and reports which phrases matched, for audit and explainability. Its
// output never feeds back into the tier decision.
type Extractor struct {
	matcher *ahocorasick.Matcher
	phrases []lexicon.TriggerPhrase // pattern-index aligned, CRITICAL block first
}

// NewExtractor builds one automaton over all tiers, in detection order so
// pattern indexes follow lexicon order across tiers.
func NewExtractor(store *lexicon.Store) *Extractor {
	e := &Extractor{}

	for _, tier := range detectionOrder {
		e.phrases = append(e.phrases, store.PhrasesFor(tier)...)
	}
	if len(e.phrases) > 0 {
		patterns := make([]string, len(e.phrases))
		for i, p := range e.phrases {
			patterns[i] = p.Phrase
		}
		e.matcher = ahocorasick.NewStringMatcher(patterns)
	}

	return e
}

// FindTriggers returns at most domain.MaxTriggers descriptions formatted as
// "<TIER>: '<phrase>'", in lexicon order across tiers. Each phrase is
// reported once regardless of repetition in the message.
func (e *Extractor) FindTriggers(message string) []string {
	if e.matcher == nil || message == "" {
		return nil
	}

	hits := e.matcher.Match([]byte(strings.ToLower(message)))
	if len(hits) == 0 {
		return nil
	}
	sort.Ints(hits)

	out := make([]string, 0, domain.MaxTriggers)
	for _, idx := range hits {
		if idx < 0 || idx >= len(e.phrases) {
			continue
		}
		p := e.phrases[idx]
		out = append(out, fmt.Sprintf("%s: '%s'", p.Tier, p.Phrase))
		if len(out) == domain.MaxTriggers {
			break
		}
	}
	return out
}

// Package risk implements the multi-layer crisis-risk classification
// pipeline: keyword scoring over the tiered lexicon, metaphorical-context
// suppression, dual-pass reconciliation over raw and lemma-reduced text, and
// fusion with the upstream emotion signal.
package risk

import (
	"strings"
	"unicode/utf8"

	ahocorasick "github.com/cloudflare/ahocorasick"

	"github.com/solace-health/crisis-detector/domain"
	"github.com/solace-health/crisis-detector/lexicon"
)

// minMessageRunes is the precondition short-circuit: anything shorter after
// trimming is SAFE without scanning.
const minMessageRunes = 3

// detectionOrder scans the most severe tier first; the scorer stops at the
// first tier with any hit.
var detectionOrder = []domain.Tier{domain.TierCritical, domain.TierHigh, domain.TierMedium}

// tierMatcher pairs one tier's phrases with its Aho-Corasick automaton.
type tierMatcher struct {
	tier    domain.Tier
	phrases []lexicon.TriggerPhrase
	matcher *ahocorasick.Matcher
}

// Scorer scans message text against the lexicon and applies the
// metaphorical-context downgrade. It is immutable after construction and
// safe for concurrent use without locking.
type Scorer struct {
	tiers    []tierMatcher
	contexts *ahocorasick.Matcher
}

// NewScorer builds the per-tier and context automatons from a loaded store.
func NewScorer(store *lexicon.Store) *Scorer {
	s := &Scorer{tiers: make([]tierMatcher, 0, len(detectionOrder))}

	for _, tier := range detectionOrder {
		phrases := store.PhrasesFor(tier)
		tm := tierMatcher{tier: tier, phrases: phrases}
		if len(phrases) > 0 {
			patterns := make([]string, len(phrases))
			for i, p := range phrases {
				patterns[i] = p.Phrase
			}
			tm.matcher = ahocorasick.NewStringMatcher(patterns)
		}
		s.tiers = append(s.tiers, tm)
	}

	indicators := make([]string, 0, store.IndicatorCount())
	for _, category := range store.Categories() {
		indicators = append(indicators, category.Indicators...)
	}
	if len(indicators) > 0 {
		s.contexts = ahocorasick.NewStringMatcher(indicators)
	}

	return s
}

// ScoreDetail describes one scoring pass: the resulting tier plus the inputs
// of the downgrade decision, for logging and metrics.
type ScoreDetail struct {
	Tier         domain.Tier
	Matched      bool
	MatchedTier  domain.Tier // pre-downgrade tier of the winning hit
	Metaphorical bool
}

// Score returns the keyword risk tier for one variant of the message text.
func (s *Scorer) Score(text string) domain.Tier {
	return s.ScoreDetail(text).Tier
}

// ScoreDetail scans text and returns the tier with downgrade diagnostics.
// Tiers are checked most severe first and the first tier with a hit wins;
// this is a short-circuiting existence check, not a best-match search.
func (s *Scorer) ScoreDetail(text string) ScoreDetail {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < minMessageRunes {
		return ScoreDetail{Tier: domain.TierSafe}
	}

	lower := strings.ToLower(text)
	metaphorical := s.IsMetaphorical(lower)

	for _, tm := range s.tiers {
		if tm.matcher == nil || len(tm.matcher.Match([]byte(lower))) == 0 {
			continue
		}
		return ScoreDetail{
			Tier:         downgrade(tm.tier, metaphorical),
			Matched:      true,
			MatchedTier:  tm.tier,
			Metaphorical: metaphorical,
		}
	}

	return ScoreDetail{Tier: domain.TierSafe, Metaphorical: metaphorical}
}

// IsMetaphorical reports whether any context indicator occurs anywhere in
// the lower-cased text. A single hit from any category is sufficient; there
// is no weighting, category precedence or proximity requirement.
func (s *Scorer) IsMetaphorical(lowerText string) bool {
	if s.contexts == nil {
		return false
	}
	return len(s.contexts.Match([]byte(lowerText))) > 0
}

// downgrade applies the metaphorical-context table. A critical-severity
// literal phrase in a nominally metaphorical sentence is still treated as at
// least HIGH; a MEDIUM hit in metaphorical context is treated as venting and
// fully suppressed.
func downgrade(t domain.Tier, metaphorical bool) domain.Tier {
	if !metaphorical {
		return t
	}
	switch t {
	case domain.TierCritical:
		return domain.TierHigh
	case domain.TierHigh:
		return domain.TierMedium
	case domain.TierMedium:
		return domain.TierSafe
	default:
		return t
	}
}

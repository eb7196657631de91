package lexicon

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/solace-health/crisis-detector/domain"
)

//go:embed lexicon.yaml
var defaultDocument []byte

// Validation errors returned by Load.
var (
	ErrMissingVersion = errors.New("lexicon: missing version")
	ErrNoTiers        = errors.New("lexicon: no tiers defined")
	ErrNoContexts     = errors.New("lexicon: no context categories defined")
)

// document is the on-disk YAML shape of the lexicon.
type document struct {
	Version  string                         `yaml:"version"`
	Tiers    map[string]map[string][]string `yaml:"tiers"`
	Contexts map[string][]string            `yaml:"contexts"`
}

// LoadDefault builds a Store from the embedded lexicon document.
func LoadDefault() (*Store, error) {
	return parse(defaultDocument)
}

// Load builds a Store from the document at path. An empty path falls back to
// the embedded default.
func Load(path string) (*Store, error) {
	if path == "" {
		return LoadDefault()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon file %s: %w", path, err)
	}
	store, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("lexicon file %s: %w", path, err)
	}
	return store, nil
}

func parse(data []byte) (*Store, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse lexicon document: %w", err)
	}

	if strings.TrimSpace(doc.Version) == "" {
		return nil, ErrMissingVersion
	}
	if len(doc.Tiers) == 0 {
		return nil, ErrNoTiers
	}
	if len(doc.Contexts) == 0 {
		return nil, ErrNoContexts
	}

	store := &Store{
		version: doc.Version,
		phrases: make(map[domain.Tier][]TriggerPhrase, len(doc.Tiers)),
	}

	for tierName, dialects := range doc.Tiers {
		tier, err := domain.ParseTier(tierName)
		if err != nil {
			return nil, fmt.Errorf("lexicon tiers: %w", err)
		}
		if tier == domain.TierSafe {
			return nil, fmt.Errorf("lexicon tiers: %q cannot carry trigger phrases", tierName)
		}
		phrases, err := mergeDialects(tier, dialects)
		if err != nil {
			return nil, err
		}
		store.phrases[tier] = phrases
	}

	categories, err := parseContexts(doc.Contexts)
	if err != nil {
		return nil, err
	}
	store.categories = categories

	return store, nil
}

// mergeDialects flattens a tier's dialect lists into one ordered slice.
// The standard dialect comes first and remaining dialects follow in sorted
// order; within a dialect the document order is preserved. Phrases are
// lower-cased and de-duplicated across the whole tier, first occurrence
// winning, so the trigger extractor never reports the same phrase twice.
func mergeDialects(tier domain.Tier, dialects map[string][]string) ([]TriggerPhrase, error) {
	if len(dialects) == 0 {
		return nil, fmt.Errorf("lexicon tier %s: no dialects defined", tier)
	}

	names := make([]string, 0, len(dialects))
	for name := range dialects {
		if name != DialectStandard {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	if _, ok := dialects[DialectStandard]; ok {
		names = append([]string{DialectStandard}, names...)
	}

	seen := make(map[string]bool)
	merged := make([]TriggerPhrase, 0, len(dialects)*len(dialects[names[0]]))
	for _, name := range names {
		for _, raw := range dialects[name] {
			phrase := strings.ToLower(strings.TrimSpace(raw))
			if phrase == "" {
				return nil, fmt.Errorf("lexicon tier %s dialect %s: empty phrase", tier, name)
			}
			if seen[phrase] {
				continue
			}
			seen[phrase] = true
			merged = append(merged, TriggerPhrase{Tier: tier, Dialect: name, Phrase: phrase})
		}
	}
	return merged, nil
}

// parseContexts flattens the context map into categories sorted by name so
// iteration is deterministic.
func parseContexts(contexts map[string][]string) ([]ContextCategory, error) {
	names := make([]string, 0, len(contexts))
	for name := range contexts {
		names = append(names, name)
	}
	sort.Strings(names)

	categories := make([]ContextCategory, 0, len(names))
	for _, name := range names {
		indicators := make([]string, 0, len(contexts[name]))
		for _, raw := range contexts[name] {
			indicator := strings.ToLower(strings.TrimSpace(raw))
			if indicator == "" {
				return nil, fmt.Errorf("lexicon context %s: empty indicator", name)
			}
			indicators = append(indicators, indicator)
		}
		if len(indicators) == 0 {
			return nil, fmt.Errorf("lexicon context %s: no indicators", name)
		}
		categories = append(categories, ContextCategory{Name: name, Indicators: indicators})
	}
	return categories, nil
}

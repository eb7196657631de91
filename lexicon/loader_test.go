package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solace-health/crisis-detector/domain"
)

func TestLoadDefault(t *testing.T) {
	store, err := LoadDefault()
	require.NoError(t, err)

	assert.NotEmpty(t, store.Version())
	assert.Positive(t, store.PhraseCount())
	assert.Positive(t, store.IndicatorCount())

	for _, tier := range []domain.Tier{domain.TierCritical, domain.TierHigh, domain.TierMedium} {
		assert.NotEmpty(t, store.PhrasesFor(tier), "tier %s has no phrases", tier)
	}
	assert.Empty(t, store.PhrasesFor(domain.TierSafe))
}

func TestLoadDefault_StandardDialectScansFirst(t *testing.T) {
	store, err := LoadDefault()
	require.NoError(t, err)

	critical := store.PhrasesFor(domain.TierCritical)
	require.NotEmpty(t, critical)

	assert.Equal(t, "kill myself", critical[0].Phrase)
	assert.Equal(t, DialectStandard, critical[0].Dialect)

	sawPidgin := false
	for _, p := range critical {
		if p.Dialect == "pidgin" {
			sawPidgin = true
		} else if sawPidgin {
			t.Fatalf("standard phrase %q after pidgin block", p.Phrase)
		}
	}
	assert.True(t, sawPidgin, "pidgin dialect missing from CRITICAL tier")
}

func TestLoadDefault_DeduplicatesAcrossDialects(t *testing.T) {
	store, err := LoadDefault()
	require.NoError(t, err)

	// "nobody go miss me" is listed under both standard and pidgin in the
	// document; the store must keep only the first occurrence.
	count := 0
	for _, p := range store.PhrasesFor(domain.TierHigh) {
		if p.Phrase == "nobody go miss me" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestLoadDefault_CategoriesSorted(t *testing.T) {
	store, err := LoadDefault()
	require.NoError(t, err)

	categories := store.Categories()
	require.Len(t, categories, 4)

	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"academic", "entertainment", "figurative", "positive"}, names)
}

func TestParse_Validation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing version", "tiers:\n  HIGH:\n    standard: [no hope]\ncontexts:\n  academic: [exam]\n"},
		{"no tiers", "version: \"1\"\ncontexts:\n  academic: [exam]\n"},
		{"no contexts", "version: \"1\"\ntiers:\n  HIGH:\n    standard: [no hope]\n"},
		{"unknown tier", "version: \"1\"\ntiers:\n  SEVERE:\n    standard: [no hope]\ncontexts:\n  academic: [exam]\n"},
		{"safe tier with phrases", "version: \"1\"\ntiers:\n  SAFE:\n    standard: [hello]\ncontexts:\n  academic: [exam]\n"},
		{"empty phrase", "version: \"1\"\ntiers:\n  HIGH:\n    standard: [\"  \"]\ncontexts:\n  academic: [exam]\n"},
		{"empty indicator", "version: \"1\"\ntiers:\n  HIGH:\n    standard: [no hope]\ncontexts:\n  academic: [\"\"]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestParse_LowercasesPhrases(t *testing.T) {
	doc := "version: \"1\"\ntiers:\n  HIGH:\n    standard: [\"No Hope\"]\ncontexts:\n  academic: [\"Exam\"]\n"

	store, err := parse([]byte(doc))
	require.NoError(t, err)

	phrases := store.PhrasesFor(domain.TierHigh)
	require.Len(t, phrases, 1)
	assert.Equal(t, "no hope", phrases[0].Phrase)
	assert.Equal(t, []string{"exam"}, store.Categories()[0].Indicators)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("testdata/does-not-exist.yaml")
	assert.Error(t, err)
}

func TestLoad_EmptyPathUsesEmbedded(t *testing.T) {
	store, err := Load("")
	require.NoError(t, err)
	assert.NotEmpty(t, store.Version())
}

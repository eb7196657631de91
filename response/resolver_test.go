package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solace-health/crisis-detector/domain"
)

func TestResolver_Resolve(t *testing.T) {
	r, err := LoadDefault()
	require.NoError(t, err)

	t.Run("safe has no bundle", func(t *testing.T) {
		assert.Nil(t, r.Resolve(domain.TierSafe))
	})

	t.Run("critical", func(t *testing.T) {
		b := r.Resolve(domain.TierCritical)
		require.NotNil(t, b)
		assert.True(t, b.Escalate)
		assert.True(t, b.ImmediateActionRequired)
		assert.Len(t, b.Resources, 4)
		assert.Contains(t, b.Message, "112 or 767")
	})

	t.Run("high", func(t *testing.T) {
		b := r.Resolve(domain.TierHigh)
		require.NotNil(t, b)
		assert.True(t, b.Escalate)
		assert.False(t, b.ImmediateActionRequired)
		assert.Len(t, b.Resources, 3)
	})

	t.Run("medium", func(t *testing.T) {
		b := r.Resolve(domain.TierMedium)
		require.NotNil(t, b)
		assert.False(t, b.Escalate)
		assert.False(t, b.ImmediateActionRequired)
		assert.Len(t, b.Resources, 1)
	})
}

func TestResolver_ResolveReturnsCopy(t *testing.T) {
	r, err := LoadDefault()
	require.NoError(t, err)

	first := r.Resolve(domain.TierCritical)
	first.Resources[0].Name = "mutated"
	first.Message = "mutated"

	second := r.Resolve(domain.TierCritical)
	assert.NotEqual(t, "mutated", second.Resources[0].Name)
	assert.NotEqual(t, "mutated", second.Message)
}

func TestResolver_ResourceShape(t *testing.T) {
	r, err := LoadDefault()
	require.NoError(t, err)

	for _, tier := range []domain.Tier{domain.TierMedium, domain.TierHigh, domain.TierCritical} {
		b := r.Resolve(tier)
		require.NotNil(t, b, "tier %s", tier)
		for _, resource := range b.Resources {
			assert.NotEmpty(t, resource.Name)
			assert.NotEmpty(t, resource.Contact)
			assert.NotEmpty(t, resource.Availability)
			assert.NotEmpty(t, resource.Category)
		}
	}
}

func TestParse_Validation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty document", ""},
		{"unknown tier", "SEVERE:\n  message: hi\n  resources: [{name: a, contact: b}]\n  escalate: true\n"},
		{"safe bundle", "SAFE:\n  message: hi\n  resources: [{name: a, contact: b}]\n"},
		{
			"wrong escalation flags",
			"CRITICAL:\n  message: hi\n  resources: [{name: a, contact: b}]\n  escalate: false\n  immediate_action_required: true\n",
		},
		{
			"missing tiers",
			"CRITICAL:\n  message: hi\n  resources: [{name: a, contact: b}]\n  escalate: true\n  immediate_action_required: true\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("testdata/does-not-exist.yaml")
	assert.Error(t, err)
}

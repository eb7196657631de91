//nolint:testpackage // Exercises unexported confidence constants directly
package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solace-health/crisis-detector/domain"
)

func TestFuse_DecisionTable(t *testing.T) {
	tests := []struct {
		name           string
		keywordTier    domain.Tier
		signal         domain.EmotionSignal
		wantTier       domain.Tier
		wantConfidence float64
		wantAdjustment string
	}{
		{
			name:           "critical confirmed by fear",
			keywordTier:    domain.TierCritical,
			signal:         domain.EmotionSignal{PrimaryEmotion: domain.EmotionFear, Confidence: 0.8, Urgency: domain.UrgencyHigh},
			wantTier:       domain.TierCritical,
			wantConfidence: 0.90,
			wantAdjustment: AdjustmentNone,
		},
		{
			name:           "high confirmed by sadness",
			keywordTier:    domain.TierHigh,
			signal:         domain.EmotionSignal{PrimaryEmotion: domain.EmotionSadness, Confidence: 0.7, Urgency: domain.UrgencyLow},
			wantTier:       domain.TierHigh,
			wantConfidence: 0.90,
			wantAdjustment: AdjustmentNone,
		},
		{
			name:           "high with strong anger",
			keywordTier:    domain.TierHigh,
			signal:         domain.EmotionSignal{PrimaryEmotion: domain.EmotionAnger, Confidence: 0.8, Urgency: domain.UrgencyMedium},
			wantTier:       domain.TierHigh,
			wantConfidence: 0.75,
			wantAdjustment: AdjustmentNone,
		},
		{
			name:           "high unconfirmed",
			keywordTier:    domain.TierHigh,
			signal:         domain.EmotionSignal{PrimaryEmotion: domain.EmotionJoy, Confidence: 0.9, Urgency: domain.UrgencyLow},
			wantTier:       domain.TierHigh,
			wantConfidence: 0.60,
			wantAdjustment: AdjustmentNone,
		},
		{
			name:           "fear below confidence floor does not confirm",
			keywordTier:    domain.TierCritical,
			signal:         domain.EmotionSignal{PrimaryEmotion: domain.EmotionFear, Confidence: 0.6, Urgency: domain.UrgencyHigh},
			wantTier:       domain.TierCritical,
			wantConfidence: 0.60,
			wantAdjustment: AdjustmentNone,
		},
		{
			name:           "anger below confidence floor does not confirm",
			keywordTier:    domain.TierHigh,
			signal:         domain.EmotionSignal{PrimaryEmotion: domain.EmotionAnger, Confidence: 0.7, Urgency: domain.UrgencyLow},
			wantTier:       domain.TierHigh,
			wantConfidence: 0.60,
			wantAdjustment: AdjustmentNone,
		},
		{
			name:           "medium upgraded by urgent fear",
			keywordTier:    domain.TierMedium,
			signal:         domain.EmotionSignal{PrimaryEmotion: domain.EmotionFear, Confidence: 0.5, Urgency: domain.UrgencyHigh},
			wantTier:       domain.TierHigh,
			wantConfidence: 0.70,
			wantAdjustment: AdjustmentEmotionUpgrade,
		},
		{
			name:           "medium without urgency unchanged",
			keywordTier:    domain.TierMedium,
			signal:         domain.EmotionSignal{PrimaryEmotion: domain.EmotionFear, Confidence: 0.9, Urgency: domain.UrgencyMedium},
			wantTier:       domain.TierMedium,
			wantConfidence: 0.50,
			wantAdjustment: AdjustmentNone,
		},
		{
			name:           "medium with urgent anger unchanged",
			keywordTier:    domain.TierMedium,
			signal:         domain.EmotionSignal{PrimaryEmotion: domain.EmotionAnger, Confidence: 0.9, Urgency: domain.UrgencyHigh},
			wantTier:       domain.TierMedium,
			wantConfidence: 0.50,
			wantAdjustment: AdjustmentNone,
		},
		{
			name:           "safe upgraded by urgent sadness",
			keywordTier:    domain.TierSafe,
			signal:         domain.EmotionSignal{PrimaryEmotion: domain.EmotionSadness, Confidence: 0.4, Urgency: domain.UrgencyHigh},
			wantTier:       domain.TierMedium,
			wantConfidence: 0.40,
			wantAdjustment: AdjustmentEmotionUpgrade,
		},
		{
			name:           "safe with low urgency stays safe",
			keywordTier:    domain.TierSafe,
			signal:         domain.EmotionSignal{PrimaryEmotion: domain.EmotionSadness, Confidence: 0.9, Urgency: domain.UrgencyLow},
			wantTier:       domain.TierSafe,
			wantConfidence: 0.95,
			wantAdjustment: AdjustmentNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fuse(tt.keywordTier, tt.signal)
			assert.Equal(t, tt.wantTier, got.Tier)
			assert.InDelta(t, tt.wantConfidence, got.Confidence, 0.0001)
			assert.Equal(t, tt.wantAdjustment, got.Adjustment)
		})
	}
}

func TestFuse_DefaultsMissingSignal(t *testing.T) {
	got := Fuse(domain.TierSafe, domain.EmotionSignal{})
	assert.Equal(t, domain.TierSafe, got.Tier)
	assert.InDelta(t, 0.95, got.Confidence, 0.0001)
}

func TestFuse_NeverMovesMoreThanOneStep(t *testing.T) {
	signals := []domain.EmotionSignal{
		{},
		{PrimaryEmotion: domain.EmotionFear, Confidence: 1.0, Urgency: domain.UrgencyHigh},
		{PrimaryEmotion: domain.EmotionSadness, Confidence: 0.99, Urgency: domain.UrgencyHigh},
		{PrimaryEmotion: domain.EmotionAnger, Confidence: 1.0, Urgency: domain.UrgencyHigh},
		{PrimaryEmotion: domain.EmotionJoy, Confidence: 0.1, Urgency: domain.UrgencyLow},
	}
	tiers := []domain.Tier{domain.TierSafe, domain.TierMedium, domain.TierHigh, domain.TierCritical}

	for _, tier := range tiers {
		for _, signal := range signals {
			got := Fuse(tier, signal)
			step := int(got.Tier) - int(tier)
			if step < -1 || step > 1 {
				t.Errorf("Fuse(%s, %+v) moved %d steps", tier, signal, step)
			}
			assert.GreaterOrEqual(t, got.Confidence, 0.0)
			assert.LessOrEqual(t, got.Confidence, 1.0)
		}
	}
}

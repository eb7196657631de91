package risk

import (
	"github.com/solace-health/crisis-detector/domain"
)

// Fusion confidence constants. These are a deliberately coarse scale
// selected per decision-table rule, not a statistical estimate.
const (
	confidenceEmotionConfirmed = 0.90
	confidenceAngerConfirmed   = 0.75
	confidenceUnconfirmed      = 0.60
	confidenceMediumUpgraded   = 0.70
	confidenceMediumDefault    = 0.50
	confidenceSafeUpgraded     = 0.40
	confidenceSafeDefault      = 0.95
)

// Emotion-signal thresholds used by the fusion rules.
const (
	distressConfidenceFloor = 0.6
	angerConfidenceFloor    = 0.7
)

// Adjustment trace values recorded on an assessment.
const (
	AdjustmentNone           = "none"
	AdjustmentEmotionUpgrade = "emotion_upgrade"
)

// FusionResult is the outcome of combining the keyword tier with the
// emotion signal.
type FusionResult struct {
	Tier       domain.Tier
	Confidence float64
	Adjustment string
}

// isDistress reports whether the primary emotion corroborates crisis
// keywords.
func isDistress(primary string) bool {
	return primary == domain.EmotionFear || primary == domain.EmotionSadness
}

// Fuse combines the keyword tier with the upstream emotion signal using a
// fixed decision table. It never moves the tier more than one severity step
// in either direction: HIGH and CRITICAL keyword tiers are never changed,
// MEDIUM can rise to HIGH and SAFE to MEDIUM when a high-urgency distress
// signal is present.
func Fuse(keywordTier domain.Tier, signal domain.EmotionSignal) FusionResult {
	signal = signal.WithDefaults()

	switch {
	case keywordTier >= domain.TierHigh:
		switch {
		case isDistress(signal.PrimaryEmotion) && signal.Confidence > distressConfidenceFloor:
			// Emotion confirms keyword risk.
			return FusionResult{Tier: keywordTier, Confidence: confidenceEmotionConfirmed, Adjustment: AdjustmentNone}
		case signal.PrimaryEmotion == domain.EmotionAnger && signal.Confidence > angerConfidenceFloor:
			return FusionResult{Tier: keywordTier, Confidence: confidenceAngerConfirmed, Adjustment: AdjustmentNone}
		default:
			return FusionResult{Tier: keywordTier, Confidence: confidenceUnconfirmed, Adjustment: AdjustmentNone}
		}

	case keywordTier == domain.TierMedium:
		if signal.Urgency == domain.UrgencyHigh && isDistress(signal.PrimaryEmotion) {
			// Emotion suggests higher risk than keywords alone.
			return FusionResult{Tier: domain.TierHigh, Confidence: confidenceMediumUpgraded, Adjustment: AdjustmentEmotionUpgrade}
		}
		return FusionResult{Tier: keywordTier, Confidence: confidenceMediumDefault, Adjustment: AdjustmentNone}

	default: // SAFE
		if signal.Urgency == domain.UrgencyHigh && isDistress(signal.PrimaryEmotion) {
			// Distress detected without crisis keywords.
			return FusionResult{Tier: domain.TierMedium, Confidence: confidenceSafeUpgraded, Adjustment: AdjustmentEmotionUpgrade}
		}
		return FusionResult{Tier: keywordTier, Confidence: confidenceSafeDefault, Adjustment: AdjustmentNone}
	}
}

package domain

import "time"

// Recommendation is the actionable follow-up derived from the final tier.
type Recommendation string

// Recommendations in descending urgency.
const (
	RecommendImmediateCrisisResponse     Recommendation = "IMMEDIATE_CRISIS_RESPONSE"
	RecommendUrgentSupportNeeded         Recommendation = "URGENT_SUPPORT_NEEDED"
	RecommendElevatedConcern             Recommendation = "ELEVATED_CONCERN"
	RecommendStandardTherapeuticResponse Recommendation = "STANDARD_THERAPEUTIC_RESPONSE"
)

// RecommendationFor maps a final tier to its recommendation.
func RecommendationFor(t Tier) Recommendation {
	switch t {
	case TierCritical:
		return RecommendImmediateCrisisResponse
	case TierHigh:
		return RecommendUrgentSupportNeeded
	case TierMedium:
		return RecommendElevatedConcern
	default:
		return RecommendStandardTherapeuticResponse
	}
}

// MaxTriggers caps the trigger descriptions reported on an assessment, even
// when more phrases matched.
const MaxTriggers = 5

// EmotionContext echoes the relevant emotion-signal fields back on an
// assessment for audit.
type EmotionContext struct {
	PrimaryEmotion    string  `json:"primary_emotion"`
	EmotionConfidence float64 `json:"emotion_confidence"`
	Urgency           string  `json:"urgency"`
}

// CrisisAssessment is the structured risk verdict for one message. It is
// created fresh per message and immutable once returned; persistence is the
// caller's concern.
type CrisisAssessment struct {
	RiskLevel      Tier           `json:"risk_level"`
	Confidence     float64        `json:"confidence"`
	Triggers       []string       `json:"triggers"`
	Recommendation Recommendation `json:"recommendation"`
	EmotionContext EmotionContext `json:"emotion_context"`

	// KeywordTier is the pre-fusion tier from the dual-pass keyword scan,
	// and FusionAdjustment records what fusion did to it.
	KeywordTier      Tier   `json:"keyword_tier"`
	FusionAdjustment string `json:"fusion_adjustment"`

	// Assessment metadata.
	DetectorVersion  string    `json:"detector_version,omitempty"`
	ProcessingTimeMs int64     `json:"processing_time_ms"`
	AssessedAt       time.Time `json:"assessed_at"`
}

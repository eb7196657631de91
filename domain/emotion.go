package domain

import (
	"math"
	"strings"
)

// Emotion labels produced by the upstream emotion classifier. The fusion
// rules compare against these as case-sensitive lower-case tags.
const (
	EmotionAnger    = "anger"
	EmotionDisgust  = "disgust"
	EmotionFear     = "fear"
	EmotionJoy      = "joy"
	EmotionNeutral  = "neutral"
	EmotionSadness  = "sadness"
	EmotionSurprise = "surprise"
)

// Urgency levels carried on an emotion signal.
const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

// EmotionSignal is the output of the external emotion classifier for one
// message. The detector treats it as an opaque read-only input; it does not
// validate internal consistency beyond defaulting missing fields.
type EmotionSignal struct {
	PrimaryEmotion string  `json:"primary_emotion" yaml:"primary_emotion"`
	Confidence     float64 `json:"confidence"      yaml:"confidence"`
	Urgency        string  `json:"urgency"         yaml:"urgency"`
}

// WithDefaults returns a copy of the signal with missing fields replaced by
// the neutral defaults (neutral / 0.0 / low). A malformed upstream signal is
// never fatal.
func (s EmotionSignal) WithDefaults() EmotionSignal {
	if strings.TrimSpace(s.PrimaryEmotion) == "" {
		s.PrimaryEmotion = EmotionNeutral
	}
	if math.IsNaN(s.Confidence) || s.Confidence < 0 {
		s.Confidence = 0
	}
	if strings.TrimSpace(s.Urgency) == "" {
		s.Urgency = UrgencyLow
	}
	return s
}

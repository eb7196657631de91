package risk

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/solace-health/crisis-detector/domain"
	"github.com/solace-health/crisis-detector/lexicon"
	"github.com/solace-health/crisis-detector/logger"
	"github.com/solace-health/crisis-detector/telemetry"
)

// Normalizer produces the lemma-reduced text variant for the second
// detection pass. Implementations must be safe for concurrent use.
type Normalizer interface {
	Normalize(text string) (string, error)
}

// Detector orchestrates the full pipeline: dual-pass keyword scoring,
// emotion fusion, trigger extraction and recommendation. It holds no
// mutable state after construction and is safe to call from arbitrarily
// many goroutines; rerunning Assess on the same input yields the same tier.
type Detector struct {
	scorer     *Scorer
	extractor  *Extractor
	normalizer Normalizer
	logger     logger.Logger
	telemetry  *telemetry.Provider
	version    string
}

// Config holds optional detector collaborators.
type Config struct {
	// Version tags assessments for audit; defaults to "1.0.0".
	Version string
	// Normalizer enables the second detection pass. Nil degrades the
	// detector to raw-text-only scoring.
	Normalizer Normalizer
	// Telemetry is optional; nil disables metrics and tracing.
	Telemetry *telemetry.Provider
}

const defaultVersion = "1.0.0"

// NewDetector builds a Detector over a frozen lexicon store. The store must
// not be mutated after this call.
func NewDetector(store *lexicon.Store, log logger.Logger, cfg Config) *Detector {
	if log == nil {
		log = logger.NewNop()
	}
	if cfg.Version == "" {
		cfg.Version = defaultVersion
	}

	d := &Detector{
		scorer:     NewScorer(store),
		extractor:  NewExtractor(store),
		normalizer: cfg.Normalizer,
		logger:     log,
		telemetry:  cfg.Telemetry,
		version:    cfg.Version,
	}

	log.Info("crisis detector initialized",
		logger.String("lexicon_version", store.Version()),
		logger.Int("phrases", store.PhraseCount()),
		logger.Int("context_indicators", store.IndicatorCount()),
		logger.Bool("normalizer_enabled", cfg.Normalizer != nil),
	)

	return d
}

// KeywordTier runs the dual-pass reconciliation for one message and returns
// the more severe of the raw and normalized passes. The combined result is
// never less severe than the raw pass alone.
func (d *Detector) KeywordTier(message string) domain.Tier {
	if utf8.RuneCountInString(strings.TrimSpace(message)) < minMessageRunes {
		return domain.TierSafe
	}

	raw := d.scorer.ScoreDetail(message)
	d.recordSuppression(raw)

	// Fast path: the normalized pass can only raise severity, and
	// HIGH/CRITICAL on raw text already decides the outcome.
	if raw.Tier >= domain.TierHigh {
		return raw.Tier
	}
	if d.normalizer == nil {
		return raw.Tier
	}

	normalized, err := d.normalizer.Normalize(message)
	if err != nil {
		// Normalization is best-effort; degrade to the raw pass.
		d.logger.Warn("normalization failed, using raw pass only",
			logger.Error(err),
			logger.Int("message_len", len(message)),
		)
		if d.telemetry != nil {
			d.telemetry.Metrics.NormalizationFailures.Inc()
		}
		return raw.Tier
	}

	// Skip the second pass when lemmatization was a no-op.
	if normalized == strings.ToLower(message) {
		return raw.Tier
	}

	second := d.scorer.ScoreDetail(normalized)
	d.recordSuppression(second)
	return domain.MaxTier(raw.Tier, second.Tier)
}

// Assess runs the full pipeline for one message and always returns a
// complete assessment; no (message, signal) pair produces an error.
func (d *Detector) Assess(ctx context.Context, message string, signal domain.EmotionSignal) *domain.CrisisAssessment {
	start := time.Now()

	var span trace.Span
	if d.telemetry != nil {
		ctx, span = d.telemetry.Tracer.Start(ctx, "detector.Assess")
		defer span.End()
	}
	_ = ctx

	signal = signal.WithDefaults()
	keywordTier := d.KeywordTier(message)
	fused := Fuse(keywordTier, signal)
	triggers := d.extractor.FindTriggers(message)

	assessment := &domain.CrisisAssessment{
		RiskLevel:      fused.Tier,
		Confidence:     fused.Confidence,
		Triggers:       triggers,
		Recommendation: domain.RecommendationFor(fused.Tier),
		EmotionContext: domain.EmotionContext{
			PrimaryEmotion:    signal.PrimaryEmotion,
			EmotionConfidence: signal.Confidence,
			Urgency:           signal.Urgency,
		},
		KeywordTier:      keywordTier,
		FusionAdjustment: fused.Adjustment,
		DetectorVersion:  d.version,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
		AssessedAt:       time.Now(),
	}

	d.record(span, assessment, time.Since(start))

	// Message content is sensitive; log only derived signals.
	d.logger.Debug("crisis assessment complete",
		logger.String("risk_level", assessment.RiskLevel.String()),
		logger.String("keyword_tier", keywordTier.String()),
		logger.Float64("confidence", assessment.Confidence),
		logger.String("fusion_adjustment", fused.Adjustment),
		logger.Int("triggers", len(triggers)),
		logger.Int("message_len", len(message)),
		logger.Int64("processing_time_ms", assessment.ProcessingTimeMs),
	)

	return assessment
}

// recordSuppression counts a metaphorical-context downgrade on one pass.
func (d *Detector) recordSuppression(detail ScoreDetail) {
	if d.telemetry == nil || !detail.Matched || !detail.Metaphorical {
		return
	}
	if detail.Tier != detail.MatchedTier {
		d.telemetry.Metrics.MetaphorSuppressions.Inc()
	}
}

func (d *Detector) record(span trace.Span, a *domain.CrisisAssessment, elapsed time.Duration) {
	if d.telemetry == nil {
		return
	}

	m := d.telemetry.Metrics
	m.AssessmentsTotal.WithLabelValues(a.RiskLevel.String()).Inc()
	m.KeywordTierTotal.WithLabelValues(a.KeywordTier.String()).Inc()
	if a.FusionAdjustment != AdjustmentNone {
		m.FusionAdjustments.WithLabelValues(a.FusionAdjustment).Inc()
	}
	m.AssessmentDuration.Observe(elapsed.Seconds())

	if span != nil {
		span.SetAttributes(
			attribute.String("risk.tier", a.RiskLevel.String()),
			attribute.String("risk.keyword_tier", a.KeywordTier.String()),
			attribute.Float64("risk.confidence", a.Confidence),
			attribute.Int("risk.triggers", len(a.Triggers)),
		)
	}
}

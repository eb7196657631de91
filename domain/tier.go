// Package domain holds the shared types of the crisis-risk pipeline:
// risk tiers, emotion signals, assessments and response bundles.
package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Tier is a crisis risk severity level, totally ordered from TierSafe up to
// TierCritical. The ordering is load-bearing: the dual-pass reconciler and
// the emotion fusion rules both keep the more severe of two tiers.
type Tier int

// Risk tiers in ascending severity.
const (
	TierSafe Tier = iota
	TierMedium
	TierHigh
	TierCritical
)

var tierNames = [...]string{"SAFE", "MEDIUM", "HIGH", "CRITICAL"}

// String returns the canonical upper-case tier name.
func (t Tier) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Tier(%d)", int(t))
	}
	return tierNames[t]
}

// Valid reports whether t is one of the four defined tiers.
func (t Tier) Valid() bool {
	return t >= TierSafe && t <= TierCritical
}

// MoreSevereThan reports whether t outranks other.
func (t Tier) MoreSevereThan(other Tier) bool {
	return t > other
}

// MaxTier returns the more severe of a and b.
func MaxTier(a, b Tier) Tier {
	if b > a {
		return b
	}
	return a
}

// ParseTier converts a tier name such as "SAFE" or "critical" to a Tier.
func ParseTier(s string) (Tier, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SAFE":
		return TierSafe, nil
	case "MEDIUM":
		return TierMedium, nil
	case "HIGH":
		return TierHigh, nil
	case "CRITICAL":
		return TierCritical, nil
	default:
		return TierSafe, fmt.Errorf("unknown risk tier %q", s)
	}
}

// MarshalJSON encodes the tier as its canonical name.
func (t Tier) MarshalJSON() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid tier %d", int(t))
	}
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a tier from its name.
func (t *Tier) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTier(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

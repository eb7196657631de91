// Package response maps a final risk tier to its canned human-readable
// message, support-resource list and escalation flags.
package response

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/solace-health/crisis-detector/domain"
)

//go:embed responses.yaml
var defaultDocument []byte

// Validation errors returned by Load.
var (
	ErrNoBundles = errors.New("responses: no tiers defined")
)

// Resolver serves the canned response bundles. It is immutable after load
// and safe for concurrent use.
type Resolver struct {
	bundles map[domain.Tier]domain.ResponseBundle
}

// LoadDefault builds a Resolver from the embedded response document.
func LoadDefault() (*Resolver, error) {
	return parse(defaultDocument)
}

// Load builds a Resolver from the document at path. An empty path falls
// back to the embedded default.
func Load(path string) (*Resolver, error) {
	if path == "" {
		return LoadDefault()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read responses file %s: %w", path, err)
	}
	resolver, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("responses file %s: %w", path, err)
	}
	return resolver, nil
}

func parse(data []byte) (*Resolver, error) {
	var doc map[string]domain.ResponseBundle
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse responses document: %w", err)
	}
	if len(doc) == 0 {
		return nil, ErrNoBundles
	}

	bundles := make(map[domain.Tier]domain.ResponseBundle, len(doc))
	for name, bundle := range doc {
		tier, err := domain.ParseTier(name)
		if err != nil {
			return nil, fmt.Errorf("responses: %w", err)
		}
		if tier == domain.TierSafe {
			return nil, fmt.Errorf("responses: %q cannot carry a bundle", name)
		}
		if err := validate(tier, bundle); err != nil {
			return nil, err
		}
		bundles[tier] = bundle
	}

	for _, tier := range []domain.Tier{domain.TierMedium, domain.TierHigh, domain.TierCritical} {
		if _, ok := bundles[tier]; !ok {
			return nil, fmt.Errorf("responses: missing bundle for tier %s", tier)
		}
	}

	return &Resolver{bundles: bundles}, nil
}

// validate enforces the fixed escalation contract: CRITICAL and HIGH
// escalate, only CRITICAL requires immediate action.
func validate(tier domain.Tier, b domain.ResponseBundle) error {
	if strings.TrimSpace(b.Message) == "" {
		return fmt.Errorf("responses: tier %s: empty message", tier)
	}
	if len(b.Resources) == 0 {
		return fmt.Errorf("responses: tier %s: no resources", tier)
	}
	for i, r := range b.Resources {
		if strings.TrimSpace(r.Name) == "" || strings.TrimSpace(r.Contact) == "" {
			return fmt.Errorf("responses: tier %s: resource %d missing name or contact", tier, i)
		}
	}

	wantEscalate := tier >= domain.TierHigh
	if b.Escalate != wantEscalate {
		return fmt.Errorf("responses: tier %s: escalate must be %t", tier, wantEscalate)
	}
	wantImmediate := tier == domain.TierCritical
	if b.ImmediateActionRequired != wantImmediate {
		return fmt.Errorf("responses: tier %s: immediate_action_required must be %t", tier, wantImmediate)
	}
	return nil
}

// Resolve returns a copy of the bundle for tier, or nil for SAFE (and any
// tier without a bundle): the caller proceeds with the normal conversational
// flow.
func (r *Resolver) Resolve(tier domain.Tier) *domain.ResponseBundle {
	bundle, ok := r.bundles[tier]
	if !ok {
		return nil
	}
	out := bundle
	out.Resources = slices.Clone(bundle.Resources)
	return &out
}

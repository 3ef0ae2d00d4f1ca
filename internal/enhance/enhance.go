// Package enhance rewrites profile prose into stronger, ATS-friendly form.
// The engine treats enhancement as an external collaborator behind a narrow
// interface: scoring works the same whether the enhancer is an LLM or the
// rule-based fallback, and a mutated profile must still satisfy the Profile
// invariants.
package enhance

import (
	"context"

	"github.com/Dhruv40689/resume-builder/internal/profile"
)

// Options carry the optional enhancement context.
type Options struct {
	TargetRole     string
	JobDescription string
}

// Enhancer rewrites a profile in place.
type Enhancer interface {
	Enhance(ctx context.Context, p *profile.Profile, opts Options) error
}

// WithFallback returns an enhancer that tries primary and falls back to the
// rule-based rewriter on any error, so enhancement always succeeds.
func WithFallback(primary Enhancer) Enhancer {
	return &fallbackEnhancer{primary: primary, fallback: RuleBased{}}
}

type fallbackEnhancer struct {
	primary  Enhancer
	fallback Enhancer
}

func (f *fallbackEnhancer) Enhance(ctx context.Context, p *profile.Profile, opts Options) error {
	if f.primary != nil {
		if err := f.primary.Enhance(ctx, p, opts); err == nil {
			p.Normalize()
			return nil
		}
	}
	if err := f.fallback.Enhance(ctx, p, opts); err != nil {
		return err
	}
	p.Normalize()
	return nil
}

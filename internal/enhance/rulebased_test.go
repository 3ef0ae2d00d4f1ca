package enhance

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Dhruv40689/resume-builder/internal/profile"
)

func enhanceTestProfile() *profile.Profile {
	return &profile.Profile{
		Contact: profile.Contact{Name: "Jane Doe", Email: "jane@example.com"},
		Summary: "Engineer with 6 years of experience.",
		Experience: []profile.ExperienceEntry{
			{
				Title:        "Senior Engineer",
				Organization: "Acme",
				Bullets: []string{
					"was responsible for the billing pipeline",
					"worked on internal tooling",
					"helped with onboarding new engineers",
					"Reduced p99 latency by 40% across 12 services",
				},
			},
		},
		Skills: []string{"Go", "PostgreSQL"},
	}
}

func TestRuleBasedRewritesWeakOpeners(t *testing.T) {
	p := enhanceTestProfile()

	if err := (RuleBased{}).Enhance(context.Background(), p, Options{}); err != nil {
		t.Fatalf("enhance: %v", err)
	}

	bullets := p.Experience[0].Bullets
	tests := []struct {
		idx  int
		want string
	}{
		{0, "Managed"},
		{1, "Developed"},
		{2, "Assisted in"},
		{3, "Reduced"},
	}
	for _, tt := range tests {
		if !strings.HasPrefix(bullets[tt.idx], tt.want) {
			t.Errorf("bullet %d = %q, want prefix %q", tt.idx, bullets[tt.idx], tt.want)
		}
	}
}

func TestRuleBasedSummaryUsesRoleYearsAndSkills(t *testing.T) {
	p := enhanceTestProfile()

	if err := (RuleBased{}).Enhance(context.Background(), p, Options{TargetRole: "Backend Developer"}); err != nil {
		t.Fatalf("enhance: %v", err)
	}

	for _, want := range []string{"Backend Developer", "6+ years", "Go"} {
		if !strings.Contains(p.Summary, want) {
			t.Errorf("summary missing %q: %q", want, p.Summary)
		}
	}
	if !strings.Contains(p.Summary, "Reduced p99 latency by 40%") {
		t.Errorf("summary missing impact line: %q", p.Summary)
	}
}

func TestRuleBasedInfersRoleWhenUnset(t *testing.T) {
	p := enhanceTestProfile()
	p.Experience[0].Bullets = append(p.Experience[0].Bullets, "Scaled backend services for peak traffic")

	if err := (RuleBased{}).Enhance(context.Background(), p, Options{}); err != nil {
		t.Fatalf("enhance: %v", err)
	}
	if !strings.Contains(p.Summary, "Backend Developer") {
		t.Errorf("summary = %q, expected inferred backend role", p.Summary)
	}

	generic := &profile.Profile{Summary: "Engineer."}
	if err := (RuleBased{}).Enhance(context.Background(), generic, Options{}); err != nil {
		t.Fatalf("enhance generic: %v", err)
	}
	if !strings.Contains(generic.Summary, "Software Developer") {
		t.Errorf("generic summary = %q, expected default role", generic.Summary)
	}
}

func TestRuleBasedExpandsSkillsWithCap(t *testing.T) {
	p := enhanceTestProfile()

	if err := (RuleBased{}).Enhance(context.Background(), p, Options{TargetRole: "DevOps Engineer"}); err != nil {
		t.Fatalf("enhance: %v", err)
	}

	for _, want := range []string{"Go", "Docker", "Kubernetes", "Git"} {
		if !containsSkill(p.Skills, want) {
			t.Errorf("skills missing %q: %#v", want, p.Skills)
		}
	}
	if len(p.Skills) > maxSkills {
		t.Errorf("skills over cap: %d", len(p.Skills))
	}

	seen := map[string]bool{}
	for _, s := range p.Skills {
		key := strings.ToLower(s)
		if seen[key] {
			t.Errorf("duplicate skill %q", s)
		}
		seen[key] = true
	}
}

func TestRuleBasedIsDeterministic(t *testing.T) {
	a := enhanceTestProfile()
	b := enhanceTestProfile()

	if err := (RuleBased{}).Enhance(context.Background(), a, Options{TargetRole: "DevOps Engineer"}); err != nil {
		t.Fatalf("enhance a: %v", err)
	}
	if err := (RuleBased{}).Enhance(context.Background(), b, Options{TargetRole: "DevOps Engineer"}); err != nil {
		t.Fatalf("enhance b: %v", err)
	}
	if strings.Join(a.Skills, "|") != strings.Join(b.Skills, "|") {
		t.Fatalf("skill expansion not deterministic: %#v vs %#v", a.Skills, b.Skills)
	}
}

type failingEnhancer struct{}

func (failingEnhancer) Enhance(ctx context.Context, p *profile.Profile, opts Options) error {
	return errors.New("upstream unavailable")
}

func TestWithFallbackRunsRuleBasedOnFailure(t *testing.T) {
	p := enhanceTestProfile()

	if err := WithFallback(failingEnhancer{}).Enhance(context.Background(), p, Options{}); err != nil {
		t.Fatalf("fallback enhance: %v", err)
	}
	if strings.HasPrefix(p.Experience[0].Bullets[0], "was responsible") {
		t.Fatal("fallback enhancer did not run")
	}
}

func containsSkill(skills []string, want string) bool {
	for _, s := range skills {
		if s == want {
			return true
		}
	}
	return false
}

package enhance

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/Dhruv40689/resume-builder/internal/profile"
)

// RuleBased is the always-available enhancer: deterministic rewrite rules,
// no network. It rewrites weak bullet openers, regenerates a thin summary,
// and rounds out the skills list for the target role.
type RuleBased struct{}

const maxSkills = 25

var bulletRewrites = []struct {
	pattern     *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`(?i)^as an? [\w ]+ at [\w ]+, i\s+`), ""},
	{regexp.MustCompile(`(?i)^as an? [\w ]+, i\s+`), ""},
	{regexp.MustCompile(`(?i)^i contributed to\b`), "Collaborated to deliver"},
	{regexp.MustCompile(`(?i)^contributed to the design and development of\b`), "Designed and developed"},
	{regexp.MustCompile(`(?i)^contributed to\b`), "Collaborated to deliver"},
	{regexp.MustCompile(`(?i)^was responsible for\b`), "Managed"},
	{regexp.MustCompile(`(?i)^responsible for\b`), "Managed"},
	{regexp.MustCompile(`(?i)^helped (?:with |to )?`), "Assisted in "},
	{regexp.MustCompile(`(?i)^worked on\b`), "Developed"},
	{regexp.MustCompile(`(?i)^used\b`), "Leveraged"},
	{regexp.MustCompile(`(?i)^made\b`), "Created"},
	{regexp.MustCompile(`(?i)^did\b`), "Executed"},
	{regexp.MustCompile(`(?i)^provided\b`), "Delivered"},
	{regexp.MustCompile(`(?i)^implemented a\b`), "Engineered a"},
}

var roleSkillMap = map[string][]string{
	"flutter":          {"Flutter", "Dart", "Android", "iOS", "Firebase", "REST API"},
	"android":          {"Android", "Kotlin", "Java", "Firebase", "REST API"},
	"frontend":         {"HTML", "CSS", "JavaScript", "React", "Responsive Design"},
	"backend":          {"Node.js", "REST API", "SQL", "PostgreSQL", "Microservices"},
	"python":           {"Python", "Django", "FastAPI", "Pandas", "SQL"},
	"machine learning": {"Machine Learning", "Python", "TensorFlow", "Scikit-learn"},
	"golang":           {"Go", "PostgreSQL", "Docker", "Kubernetes", "gRPC"},
	"devops":           {"Docker", "Kubernetes", "Terraform", "CI/CD", "AWS"},
}

var professionalSkills = []string{"Git", "Agile", "Problem Solving", "Team Collaboration", "Communication"}

var yearsRe = regexp.MustCompile(`(?i)(\d+)\+?\s*year`)

// Enhance rewrites the profile in place. It never fails.
func (RuleBased) Enhance(ctx context.Context, p *profile.Profile, opts Options) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.Summary = rewriteSummary(p, opts.TargetRole)
	for i := range p.Experience {
		p.Experience[i].Bullets = rewriteBullets(p.Experience[i].Bullets)
	}
	for i := range p.Projects {
		p.Projects[i].Bullets = rewriteBullets(p.Projects[i].Bullets)
	}
	p.Skills = expandSkills(p.Skills, opts.TargetRole)
	return nil
}

func rewriteSummary(p *profile.Profile, targetRole string) string {
	role := strings.TrimSpace(targetRole)
	if role == "" {
		role = inferRole(p)
	}

	skills := p.Skills
	skillsStr := "modern technologies"
	if len(skills) > 0 {
		n := len(skills)
		if n > 5 {
			n = 5
		}
		skillsStr = strings.Join(skills[:n], ", ")
	}

	years := ""
	if m := yearsRe.FindStringSubmatch(p.Summary); m != nil {
		years = m[1] + "+ years of "
	}

	impact := impactLine(p)
	if impact != "" {
		impact = " " + impact + "."
	}

	return fmt.Sprintf(
		"Results-driven %s with %shands-on expertise in %s. "+
			"Proven ability to design and deliver scalable, high-quality solutions with measurable impact.%s "+
			"Thrives in collaborative environments with a strong focus on engineering excellence and continuous improvement.",
		role, years, skillsStr, impact)
}

// impactLine picks the first short bullet containing a number as evidence of
// measurable impact.
func impactLine(p *profile.Profile) string {
	for _, b := range p.Bullets() {
		if len(b) > 20 && len(b) < 120 && strings.ContainsAny(b, "0123456789") {
			return strings.TrimRight(b, ".")
		}
	}
	return ""
}

func rewriteBullets(bullets []string) []string {
	out := make([]string, 0, len(bullets))
	for _, b := range bullets {
		improved := strings.TrimSpace(b)
		for _, rule := range bulletRewrites {
			if replaced := rule.pattern.ReplaceAllString(improved, rule.replacement); replaced != improved {
				improved = strings.TrimSpace(replaced)
				break
			}
		}
		if improved == "" {
			continue
		}
		improved = strings.ToUpper(improved[:1]) + improved[1:]
		out = append(out, improved)
	}
	return out
}

func expandSkills(skills []string, targetRole string) []string {
	haystack := strings.ToLower(targetRole + " " + strings.Join(skills, " "))
	expanded := append([]string{}, skills...)
	keys := make([]string, 0, len(roleSkillMap))
	for key := range roleSkillMap {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if strings.Contains(haystack, key) {
			expanded = append(expanded, roleSkillMap[key]...)
		}
	}
	expanded = append(expanded, professionalSkills...)
	expanded = profile.DedupeSkills(expanded)
	if len(expanded) > maxSkills {
		expanded = expanded[:maxSkills]
	}
	return expanded
}

func inferRole(p *profile.Profile) string {
	text := strings.ToLower(p.Corpus())
	switch {
	case strings.Contains(text, "flutter"):
		return "Flutter Developer"
	case strings.Contains(text, "machine learning"), strings.Contains(text, "deep learning"):
		return "AI/ML Engineer"
	case strings.Contains(text, "react"), strings.Contains(text, "frontend"):
		return "Frontend Developer"
	case strings.Contains(text, "kubernetes"), strings.Contains(text, "devops"):
		return "DevOps Engineer"
	case strings.Contains(text, "node"), strings.Contains(text, "backend"), strings.Contains(text, "golang"):
		return "Backend Developer"
	case strings.Contains(text, "python"):
		return "Python Developer"
	default:
		return "Software Developer"
	}
}

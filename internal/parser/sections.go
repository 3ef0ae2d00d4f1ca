package parser

import (
	"strings"

	"github.com/Dhruv40689/resume-builder/internal/profile"
)

// headerRule maps header keyword variants to a canonical section. Rules are
// evaluated in slice order, so an ambiguous header resolves to the earliest
// matching entry.
type headerRule struct {
	section  profile.Section
	variants []string
}

var headerRules = []headerRule{
	{profile.SectionSummary, []string{"summary", "objective", "profile", "about", "overview", "professional summary", "about me"}},
	{profile.SectionExperience, []string{"experience", "work history", "employment", "work experience", "professional experience", "career"}},
	{profile.SectionEducation, []string{"education", "academic", "academics", "qualifications", "academic background"}},
	{profile.SectionSkills, []string{"skills", "technical skills", "competencies", "core competencies", "expertise", "technologies"}},
	{profile.SectionProjects, []string{"projects", "personal projects", "portfolio", "projects & achievements"}},
	{profile.SectionCertifications, []string{"certifications", "certificates", "licenses", "credentials"}},
}

// Header lines are short. Anything longer is body text even if it contains a
// section keyword.
const maxHeaderLen = 40

// MatchHeader reports whether the line is a recognized section header and, if
// so, which canonical section it opens.
func MatchHeader(line string) (profile.Section, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) > maxHeaderLen {
		return "", false
	}
	normalized := strings.ToLower(strings.TrimRight(trimmed, ":.-–— \t"))
	for _, rule := range headerRules {
		for _, v := range rule.variants {
			if normalized == v {
				return rule.section, true
			}
		}
	}
	return "", false
}

// Segment partitions normalized lines into named sections. Everything before
// the first recognized header lands in the implicit header section, which the
// extractor treats as the contact/summary candidate zone. If the same header
// appears twice, the later block is appended to the earlier one.
func Segment(lines []string) map[profile.Section][]string {
	sections := make(map[profile.Section][]string)
	current := profile.SectionHeader
	for _, line := range lines {
		if section, ok := MatchHeader(line); ok {
			current = section
			if _, exists := sections[current]; !exists {
				sections[current] = nil
			}
			continue
		}
		sections[current] = append(sections[current], line)
	}
	for name, content := range sections {
		sections[name] = trimBlankEdges(content)
	}
	return sections
}

func trimBlankEdges(lines []string) []string {
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

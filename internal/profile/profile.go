package profile

import (
	"strings"
)

// Section is a canonical resume section name. The vocabulary is closed;
// segmenting never produces a name outside this set.
type Section string

const (
	SectionHeader         Section = "header"
	SectionSummary        Section = "summary"
	SectionExperience     Section = "experience"
	SectionEducation      Section = "education"
	SectionSkills         Section = "skills"
	SectionProjects       Section = "projects"
	SectionCertifications Section = "certifications"
)

// SectionOrder lists canonical sections in header-match priority order.
var SectionOrder = []Section{
	SectionHeader,
	SectionSummary,
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionProjects,
	SectionCertifications,
}

// Valid reports whether s belongs to the closed section vocabulary.
func (s Section) Valid() bool {
	for _, known := range SectionOrder {
		if s == known {
			return true
		}
	}
	return false
}

// Contact holds the contact fields extracted from a resume header.
type Contact struct {
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
}

// ExperienceEntry is one dated work-history entry.
type ExperienceEntry struct {
	Title        string   `json:"title,omitempty"`
	Organization string   `json:"organization,omitempty"`
	Dates        string   `json:"dates,omitempty"`
	Bullets      []string `json:"bullets,omitempty"`
}

// EducationEntry is one education entry.
type EducationEntry struct {
	Institution string `json:"institution,omitempty"`
	Degree      string `json:"degree,omitempty"`
	Dates       string `json:"dates,omitempty"`
}

// ProjectEntry is one project entry.
type ProjectEntry struct {
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	Bullets     []string `json:"bullets,omitempty"`
}

// Profile is the canonical structured resume representation. A Profile is
// produced either by the parser or directly from manual form input; both
// paths satisfy the same invariants, so scoring never cares about provenance.
type Profile struct {
	Contact        Contact              `json:"contact"`
	Summary        string               `json:"summary,omitempty"`
	Experience     []ExperienceEntry    `json:"experience,omitempty"`
	Education      []EducationEntry     `json:"education,omitempty"`
	Skills         []string             `json:"skills,omitempty"`
	Projects       []ProjectEntry       `json:"projects,omitempty"`
	Certifications []string             `json:"certifications,omitempty"`
	RawSections    map[Section][]string `json:"rawSections,omitempty"`
}

// Normalize enforces the Profile invariants in place: skills are deduplicated
// case-insensitively (first casing wins), bullets carry no embedded newlines,
// and raw sections outside the closed vocabulary are dropped.
func (p *Profile) Normalize() {
	p.Skills = DedupeSkills(p.Skills)

	for i := range p.Experience {
		p.Experience[i].Bullets = flattenBullets(p.Experience[i].Bullets)
	}
	for i := range p.Projects {
		p.Projects[i].Bullets = flattenBullets(p.Projects[i].Bullets)
	}

	p.Summary = strings.TrimSpace(p.Summary)

	for name := range p.RawSections {
		if !name.Valid() {
			delete(p.RawSections, name)
		}
	}
}

// DedupeSkills removes case-insensitive duplicates while preserving order and
// the casing of the first occurrence.
func DedupeSkills(skills []string) []string {
	if len(skills) == 0 {
		return skills
	}
	seen := make(map[string]struct{}, len(skills))
	out := skills[:0]
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}

func flattenBullets(bullets []string) []string {
	out := bullets[:0]
	for _, b := range bullets {
		b = strings.Join(strings.Fields(b), " ")
		if b == "" {
			continue
		}
		out = append(out, b)
	}
	return out
}

// Corpus concatenates every textual field into a single search body for
// keyword matching. Raw section lines are included so unparsed content still
// counts toward keyword and word-count checks.
func (p *Profile) Corpus() string {
	var b strings.Builder
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		b.WriteString(s)
		b.WriteByte('\n')
	}

	add(p.Contact.Name)
	add(p.Summary)
	for _, e := range p.Experience {
		add(e.Title)
		add(e.Organization)
		for _, bl := range e.Bullets {
			add(bl)
		}
	}
	for _, e := range p.Education {
		add(e.Institution)
		add(e.Degree)
	}
	add(strings.Join(p.Skills, ", "))
	for _, pr := range p.Projects {
		add(pr.Name)
		add(pr.Description)
		for _, bl := range pr.Bullets {
			add(bl)
		}
	}
	for _, c := range p.Certifications {
		add(c)
	}
	for _, name := range SectionOrder {
		for _, line := range p.RawSections[name] {
			add(line)
		}
	}
	return b.String()
}

// WordCount returns the number of whitespace-separated words in the corpus.
func (p *Profile) WordCount() int {
	return len(strings.Fields(p.Corpus()))
}

// Bullets returns all experience and project bullets in document order.
func (p *Profile) Bullets() []string {
	var out []string
	for _, e := range p.Experience {
		out = append(out, e.Bullets...)
	}
	for _, pr := range p.Projects {
		out = append(out, pr.Bullets...)
	}
	return out
}

// HasContact reports whether any contact field is populated.
func (p *Profile) HasContact() bool {
	c := p.Contact
	return c.Name != "" || c.Email != "" || c.Phone != "" || c.LinkedIn != "" || c.Portfolio != ""
}

// HasSection reports whether the named section carries structured or raw content.
func (p *Profile) HasSection(name Section) bool {
	switch name {
	case SectionHeader:
		return p.HasContact()
	case SectionSummary:
		if strings.TrimSpace(p.Summary) != "" {
			return true
		}
	case SectionExperience:
		if len(p.Experience) > 0 {
			return true
		}
	case SectionEducation:
		if len(p.Education) > 0 {
			return true
		}
	case SectionSkills:
		if len(p.Skills) > 0 {
			return true
		}
	case SectionProjects:
		if len(p.Projects) > 0 {
			return true
		}
	case SectionCertifications:
		if len(p.Certifications) > 0 {
			return true
		}
	default:
		return false
	}
	return hasNonEmptyLine(p.RawSections[name])
}

func hasNonEmptyLine(lines []string) bool {
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			return true
		}
	}
	return false
}

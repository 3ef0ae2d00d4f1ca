package parser

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Dhruv40689/resume-builder/internal/profile"
	"github.com/Dhruv40689/resume-builder/internal/taxonomy"
)

// ErrMalformedInput is the only extraction failure: the input is not textual
// at all. Missing sections, absent contact info, or zero bullets are degraded
// data, not errors.
var ErrMalformedInput = errors.New("malformed input: not valid text")

var (
	emailRe    = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phoneRe    = regexp.MustCompile(`\+?\(?\d[\d\s.\-()]{4,18}\d`)
	linkedinRe = regexp.MustCompile(`(?i)linkedin\.com/(?:in|pub)/[\w\-]+`)
	urlRe      = regexp.MustCompile(`(?i)(?:https?://|www\.)\S+|\b[\w\-]+\.(?:com|io|dev|net|org|me)/\S+`)

	dateRangeRe = regexp.MustCompile(`(?i)(?:(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+)?\d{4}\s*(?:[-–—]|to)\s*(?:(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+)?(?:\d{4}|present|current|now)`)
	yearRe      = regexp.MustCompile(`\b(19|20)\d{2}\b`)

	skillSplitRe = regexp.MustCompile(`[,|;•·▪‣]`)
)

var bulletMarkers = []string{"•", "-", "*", "‣", "▪", "·", "–"}

// ExtractProfile turns raw resume text into a structured Profile. Extraction
// is total: malformed or missing sections yield empty fields, never an error,
// so downstream scoring can always run. The only failure is non-textual input.
func ExtractProfile(raw string) (*profile.Profile, error) {
	if !utf8.ValidString(raw) {
		return nil, ErrMalformedInput
	}

	lines := Normalize(raw)
	sections := Segment(lines)

	p := &profile.Profile{RawSections: sections}
	extractContact(p, sections[profile.SectionHeader], lines)
	p.Summary = extractSummary(sections)
	p.Experience = parseExperience(sections[profile.SectionExperience])
	p.Education = parseEducation(sections[profile.SectionEducation])
	p.Skills = splitSkills(sections[profile.SectionSkills])
	p.Projects = parseProjects(sections[profile.SectionProjects])
	p.Certifications = nonBlank(sections[profile.SectionCertifications])

	if len(p.Skills) == 0 {
		p.Skills = taxonomy.KnownIn(raw)
	}

	p.Normalize()
	return p, nil
}

func extractContact(p *profile.Profile, header []string, all []string) {
	// Contact details can sit below the first recognized header in sparse
	// resumes, so scan the header zone plus the first few lines overall.
	zone := append(append([]string{}, header...), firstN(all, 6)...)
	text := strings.Join(zone, "\n")

	p.Contact.Email = emailRe.FindString(text)
	p.Contact.Phone = findPhone(text)
	p.Contact.LinkedIn = linkedinRe.FindString(text)
	p.Contact.Portfolio = findPortfolio(text)
	p.Contact.Name = findName(header)
}

func findPhone(text string) string {
	for _, cand := range phoneRe.FindAllString(text, -1) {
		digits := 0
		for _, r := range cand {
			if unicode.IsDigit(r) {
				digits++
			}
		}
		if digits >= 7 && digits <= 15 {
			return strings.TrimSpace(cand)
		}
	}
	return ""
}

func findPortfolio(text string) string {
	for _, cand := range urlRe.FindAllString(text, -1) {
		if linkedinRe.MatchString(cand) {
			continue
		}
		return strings.TrimRight(cand, ".,;")
	}
	return ""
}

// findName takes the first header line free of digits, @ signs, and URL
// tokens. Extraction never fails; a resume without such a line simply has no
// name.
func findName(header []string) string {
	for _, line := range header {
		if line == "" {
			continue
		}
		if strings.ContainsAny(line, "@0123456789") {
			continue
		}
		lower := strings.ToLower(line)
		if strings.Contains(lower, "http") || strings.Contains(lower, "www.") ||
			strings.Contains(lower, ".com") || strings.Contains(lower, "linkedin") {
			continue
		}
		return line
	}
	return ""
}

func extractSummary(sections map[profile.Section][]string) string {
	if lines := nonBlank(sections[profile.SectionSummary]); len(lines) > 0 {
		return strings.Join(lines, " ")
	}
	return ""
}

func parseExperience(lines []string) []profile.ExperienceEntry {
	var entries []profile.ExperienceEntry
	var cur *profile.ExperienceEntry

	flush := func() {
		if cur != nil {
			entries = append(entries, *cur)
			cur = nil
		}
	}

	for i, line := range lines {
		if line == "" {
			continue
		}
		bullet, text := stripBullet(line)

		if !bullet && dateRangeRe.MatchString(line) {
			dates := dateRangeRe.FindString(line)
			rest := strings.TrimSpace(dateRangeRe.ReplaceAllString(line, ""))
			// A date line directly under an undated header belongs to that
			// entry; anywhere else it opens a new one.
			if cur != nil && cur.Dates == "" && len(cur.Bullets) == 0 {
				cur.Dates = dates
				if rest != "" {
					assignEntryHeader(cur, rest)
				}
				continue
			}
			flush()
			cur = &profile.ExperienceEntry{Dates: dates}
			assignEntryHeader(cur, rest)
			continue
		}

		if cur == nil {
			cur = &profile.ExperienceEntry{}
			assignEntryHeader(cur, line)
			continue
		}

		if bullet {
			cur.Bullets = append(cur.Bullets, text)
			continue
		}

		if len(cur.Bullets) == 0 {
			// Second plain line under an entry is the organization.
			if cur.Organization == "" && cur.Title != "" {
				assignEntryHeader(cur, line)
				continue
			}
			assignEntryHeader(cur, line)
			continue
		}

		// A plain line after bullets starts a new entry when it is followed
		// by another bullet or a date line; otherwise it is a continuation
		// sentence.
		if nextIsBullet(lines, i) || nextIsDateRange(lines, i) {
			flush()
			cur = &profile.ExperienceEntry{}
			assignEntryHeader(cur, line)
			continue
		}
		cur.Bullets = append(cur.Bullets, text)
	}
	flush()
	return entries
}

// assignEntryHeader fills title, organization, and dates from a header line,
// honoring "Title | Organization" and "Title at Organization" forms.
func assignEntryHeader(e *profile.ExperienceEntry, line string) {
	line = strings.Trim(strings.TrimSpace(line), "-–—|,() ")
	if line == "" {
		return
	}
	if e.Dates == "" {
		if d := dateRangeRe.FindString(line); d != "" {
			e.Dates = d
			line = strings.Trim(strings.TrimSpace(dateRangeRe.ReplaceAllString(line, "")), "-–—|,() ")
		}
	}
	if line == "" {
		return
	}

	var parts []string
	switch {
	case strings.Contains(line, "|"):
		parts = strings.SplitN(line, "|", 2)
	case strings.Contains(line, " at "):
		parts = strings.SplitN(line, " at ", 2)
	default:
		parts = []string{line}
	}

	first := strings.TrimSpace(parts[0])
	if e.Title == "" {
		e.Title = first
	} else if e.Organization == "" {
		e.Organization = first
	}
	if len(parts) == 2 {
		second := strings.TrimSpace(parts[1])
		if e.Organization == "" {
			e.Organization = second
		}
	}
}

func parseEducation(lines []string) []profile.EducationEntry {
	var entries []profile.EducationEntry
	var cur *profile.EducationEntry

	flush := func() {
		if cur != nil {
			entries = append(entries, *cur)
			cur = nil
		}
	}

	for _, line := range lines {
		if line == "" {
			flush()
			continue
		}
		_, text := stripBullet(line)
		dates := dateRangeRe.FindString(text)
		if dates == "" {
			dates = yearRe.FindString(text)
		}
		body := text
		if dates != "" {
			body = strings.Trim(strings.TrimSpace(strings.Replace(text, dates, "", 1)), "-–—|,() ")
		}

		switch {
		case cur == nil:
			cur = &profile.EducationEntry{Institution: body, Dates: dates}
		case cur.Degree == "":
			cur.Degree = body
			if cur.Dates == "" {
				cur.Dates = dates
			}
		default:
			flush()
			cur = &profile.EducationEntry{Institution: body, Dates: dates}
		}
	}
	flush()
	return entries
}

func parseProjects(lines []string) []profile.ProjectEntry {
	var entries []profile.ProjectEntry
	var cur *profile.ProjectEntry

	flush := func() {
		if cur != nil {
			entries = append(entries, *cur)
			cur = nil
		}
	}

	for _, line := range lines {
		if line == "" {
			flush()
			continue
		}
		bullet, text := stripBullet(line)
		switch {
		case cur == nil:
			cur = &profile.ProjectEntry{Name: text}
		case bullet:
			cur.Bullets = append(cur.Bullets, text)
		case cur.Description == "":
			cur.Description = text
		default:
			cur.Description += " " + text
		}
	}
	flush()
	return entries
}

// splitSkills tokenizes skills-section lines on common delimiters and
// deduplicates case-insensitively, preserving the original casing.
func splitSkills(lines []string) []string {
	var skills []string
	for _, line := range lines {
		_, line = stripBullet(line)
		for _, tok := range skillSplitRe.Split(line, -1) {
			tok = strings.Trim(strings.TrimSpace(tok), "-–:•· ")
			// "Languages: Go, Python" style category prefixes
			if idx := strings.LastIndex(tok, ":"); idx >= 0 {
				tok = strings.TrimSpace(tok[idx+1:])
			}
			if len(tok) < 2 || len(tok) > 50 || len(strings.Fields(tok)) > 5 {
				continue
			}
			skills = append(skills, tok)
		}
	}
	return profile.DedupeSkills(skills)
}

func stripBullet(line string) (bool, string) {
	trimmed := strings.TrimSpace(line)
	for _, m := range bulletMarkers {
		if rest, ok := strings.CutPrefix(trimmed, m+" "); ok {
			if rest = strings.TrimSpace(rest); rest != "" {
				return true, rest
			}
		}
	}
	return false, trimmed
}

func nextIsBullet(lines []string, i int) bool {
	for j := i + 1; j < len(lines); j++ {
		if lines[j] == "" {
			continue
		}
		bullet, _ := stripBullet(lines[j])
		return bullet
	}
	return false
}

func nextIsDateRange(lines []string, i int) bool {
	for j := i + 1; j < len(lines); j++ {
		if lines[j] == "" {
			continue
		}
		bullet, _ := stripBullet(lines[j])
		return !bullet && dateRangeRe.MatchString(lines[j])
	}
	return false
}

func nonBlank(lines []string) []string {
	var out []string
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}

func firstN(lines []string, n int) []string {
	if len(lines) < n {
		n = len(lines)
	}
	return lines[:n]
}

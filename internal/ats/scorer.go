// Package ats computes the multi-dimensional ATS score for a resume profile.
// Scoring is a pure function of the profile, the optional job description,
// and the immutable taxonomy data: no I/O, no shared mutable state.
package ats

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/Dhruv40689/resume-builder/internal/profile"
	"github.com/Dhruv40689/resume-builder/internal/taxonomy"
)

// Status buckets an overall score. Thresholds are fixed so before/after
// scores stay comparable across calls.
type Status string

const (
	StatusGood    Status = "GOOD"
	StatusAverage Status = "AVERAGE"
	StatusPoor    Status = "POOR"
)

// Dimension weights. They sum to 1.
const (
	weightKeyword = 0.30
	weightSection = 0.25
	weightContent = 0.25
	weightFormat  = 0.20
)

// Calibration constants. Defaults are documented tunables, not derived values.
const (
	expectedTechnicalMatches = 15
	expectedSoftMatches      = 5
	expectedVerbMatches      = 6

	technicalCap = 50
	softCap      = 20
	verbCap      = 30

	summaryIdealMinWords = 60
	summaryIdealMaxWords = 100

	documentMinWords = 300
	documentMaxWords = 900

	statusGoodFloor    = 70
	statusAverageFloor = 50

	maxSuggestions     = 8
	maxMissingKeywords = 15

	// Share of the keyword dimension driven by job-description matches when
	// a job description is supplied.
	jdKeywordWeight = 0.6
)

// Options carry the optional scoring context.
type Options struct {
	JobDescription string
	TargetRole     string
}

// Dimensions holds the four 0-100 sub-scores.
type Dimensions struct {
	Keyword int `json:"keyword"`
	Section int `json:"section"`
	Content int `json:"content"`
	Format  int `json:"format"`
}

// Report is the immutable result of one scoring call.
type Report struct {
	Overall         int        `json:"overall"`
	Dimensions      Dimensions `json:"dimensions"`
	MissingKeywords []string   `json:"missingKeywords"`
	Suggestions     []string   `json:"suggestions"`
	Status          Status     `json:"status"`
}

var quantifiedRe = regexp.MustCompile(`%|[$€£₹]|\b\d+(?:[.,]\d+)?\b`)

// Score computes the weighted ATS score for a profile. It never fails: an
// entirely empty profile deterministically yields the minimum for each
// dimension.
func Score(p *profile.Profile, opts Options) Report {
	corpus := strings.ToLower(p.Corpus())
	match := taxonomy.Match(corpus)

	keyword, keywordSugs, missing := scoreKeywords(match, corpus, opts.JobDescription)
	section, sectionSugs := scoreSections(p)
	content, contentSugs := scoreContent(p)
	format, formatSugs := scoreFormat(p)

	overall := clampScore(math.Round(
		weightKeyword*float64(keyword) +
			weightSection*float64(section) +
			weightContent*float64(content) +
			weightFormat*float64(format)))

	suggestions := make([]string, 0, maxSuggestions)
	for _, group := range [][]string{keywordSugs, sectionSugs, contentSugs, formatSugs} {
		suggestions = append(suggestions, group...)
	}
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}

	return Report{
		Overall: overall,
		Dimensions: Dimensions{
			Keyword: keyword,
			Section: section,
			Content: content,
			Format:  format,
		},
		MissingKeywords: missing,
		Suggestions:     suggestions,
		Status:          statusFor(overall),
	}
}

func statusFor(overall int) Status {
	switch {
	case overall >= statusGoodFloor:
		return StatusGood
	case overall >= statusAverageFloor:
		return StatusAverage
	default:
		return StatusPoor
	}
}

// scoreKeywords scores taxonomy coverage. Each category contributes
// proportionally to its expected-match baseline up to a fixed cap. When a job
// description is present, its match ratio becomes the dominant driver and
// role-specific gaps outrank generic taxonomy gaps in the missing list.
func scoreKeywords(match taxonomy.MatchResult, corpus, jobDescription string) (int, []string, []string) {
	var sugs []string

	base := capped(len(match.Technical), expectedTechnicalMatches, technicalCap) +
		capped(len(match.Soft), expectedSoftMatches, softCap) +
		capped(len(match.Verbs), expectedVerbMatches, verbCap)

	if len(match.Technical) < 5 {
		sugs = append(sugs, "Add more technical skills relevant to your role")
	}
	if len(match.Soft) < 3 {
		sugs = append(sugs, "Include soft skills such as leadership and communication")
	}
	if len(match.Verbs) < 5 {
		sugs = append(sugs, "Start bullet points with strong action verbs like led, built, or optimized")
	}

	missing := make([]string, 0, maxMissingKeywords)
	score := base

	jdKeywords := ExtractJobKeywords(jobDescription)
	if len(jdKeywords) > 0 {
		matched := 0
		for _, kw := range jdKeywords {
			if taxonomy.ContainsKeyword(corpus, kw) {
				matched++
			} else {
				missing = append(missing, kw)
			}
		}
		jdScore := 100 * matched / len(jdKeywords)
		score = int(math.Round(jdKeywordWeight*float64(jdScore) + (1-jdKeywordWeight)*float64(base)))
		if len(missing)*2 > len(jdKeywords) {
			sugs = append(sugs, fmt.Sprintf("Add keywords from the job description: %s", strings.Join(firstStrings(missing, 5), ", ")))
		}
	}

	// Generic taxonomy gaps rank after role-specific ones, lexically for
	// determinism.
	generic := append([]string{}, match.MissingTechnical...)
	sort.Strings(generic)
	missing = appendUnique(missing, generic)
	if len(missing) > maxMissingKeywords {
		missing = missing[:maxMissingKeywords]
	}

	return clampScore(float64(score)), sugs, missing
}

// capped scales found/expected onto [0,limit].
func capped(found, expected, limit int) int {
	if expected <= 0 {
		return 0
	}
	pts := found * limit / expected
	if pts > limit {
		pts = limit
	}
	return pts
}

var requiredSections = []struct {
	name       profile.Section
	suggestion string
}{
	{profile.SectionHeader, "Add your contact information"},
	{profile.SectionSummary, "Add a professional summary"},
	{profile.SectionExperience, "Add your work experience"},
	{profile.SectionEducation, "Add your education"},
	{profile.SectionSkills, "Add a dedicated skills section"},
}

var optionalSections = []profile.Section{
	profile.SectionProjects,
	profile.SectionCertifications,
}

const optionalSectionBonus = 5

// scoreSections counts required sections present out of the required set,
// with small bonus credit for optional sections, never above 100.
func scoreSections(p *profile.Profile) (int, []string) {
	var sugs []string
	present := 0
	for _, req := range requiredSections {
		if p.HasSection(req.name) {
			present++
		} else {
			sugs = append(sugs, req.suggestion)
		}
	}
	score := 100 * present / len(requiredSections)
	for _, opt := range optionalSections {
		if p.HasSection(opt) {
			score += optionalSectionBonus
		}
	}
	return clampScore(float64(score)), sugs
}

// scoreContent rewards quantified achievement bullets and a summary inside
// the ideal word band, equally weighted.
func scoreContent(p *profile.Profile) (int, []string) {
	var sugs []string

	bullets := p.Bullets()
	quantified := 0
	for _, b := range bullets {
		if quantifiedRe.MatchString(b) {
			quantified++
		}
	}
	bulletSub := 0
	if len(bullets) > 0 {
		bulletSub = 100 * quantified / len(bullets)
	}
	switch {
	case quantified == 0:
		sugs = append(sugs, "Add quantifiable metrics to your experience bullets")
	case bulletSub < 50:
		sugs = append(sugs, "Quantify more achievements with percentages, amounts, or counts")
	}

	words := len(strings.Fields(p.Summary))
	summarySub := 0
	switch {
	case words == 0:
		sugs = append(sugs, "Your summary is missing or too short")
	case words < summaryIdealMinWords:
		summarySub = 100 * words / summaryIdealMinWords
		sugs = append(sugs, fmt.Sprintf("Expand your summary to %d-%d words", summaryIdealMinWords, summaryIdealMaxWords))
	case words <= summaryIdealMaxWords:
		summarySub = 100
	default:
		summarySub = summaryIdealMaxWords * 100 / words
		sugs = append(sugs, fmt.Sprintf("Tighten your summary to under %d words", summaryIdealMaxWords))
	}

	return clampScore(float64(bulletSub+summarySub) / 2), sugs
}

// Format check weights; they sum to 100.
const (
	formatEmailPoints    = 30
	formatPhonePoints    = 25
	formatURLPoints      = 20
	formatWordBandPoints = 25
)

// scoreFormat checks essential contact fields and the overall document length
// band. Each missing check subtracts its share of the dimension.
func scoreFormat(p *profile.Profile) (int, []string) {
	var sugs []string
	score := 0

	if p.Contact.Email != "" {
		score += formatEmailPoints
	} else {
		sugs = append(sugs, "Add a professional email address")
	}
	if p.Contact.Phone != "" {
		score += formatPhonePoints
	} else {
		sugs = append(sugs, "Add your phone number")
	}
	if p.Contact.LinkedIn != "" || p.Contact.Portfolio != "" {
		score += formatURLPoints
	} else {
		sugs = append(sugs, "Add your LinkedIn profile URL")
	}

	words := p.WordCount()
	switch {
	case words >= documentMinWords && words <= documentMaxWords:
		score += formatWordBandPoints
	case words < documentMinWords:
		score += formatWordBandPoints * words / documentMinWords
		sugs = append(sugs, "Resume is too short; add more detail to your sections")
	default:
		score += formatWordBandPoints * documentMaxWords / words
		sugs = append(sugs, "Resume is too long; trim less relevant content")
	}

	return clampScore(float64(score)), sugs
}

func clampScore(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(math.Round(v))
}

func appendUnique(dst, src []string) []string {
	seen := make(map[string]struct{}, len(dst))
	for _, s := range dst {
		seen[s] = struct{}{}
	}
	for _, s := range src {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		dst = append(dst, s)
	}
	return dst
}

func firstStrings(items []string, n int) []string {
	if len(items) < n {
		n = len(items)
	}
	return items[:n]
}

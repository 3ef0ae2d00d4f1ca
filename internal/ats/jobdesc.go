package ats

import (
	"sort"
	"strings"
	"unicode"
)

// Stop-words stripped from job descriptions before keyword ranking. Mostly
// filler recruiters repeat in every posting.
var jdStopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {}, "will": {}, "must": {},
	"have": {}, "has": {}, "had": {}, "your": {}, "our": {}, "you": {},
	"are": {}, "not": {}, "any": {}, "all": {}, "can": {}, "would": {},
	"should": {}, "could": {}, "this": {}, "that": {}, "these": {},
	"those": {}, "team": {}, "work": {}, "working": {}, "help": {},
	"role": {}, "job": {}, "years": {}, "year": {}, "strong": {},
	"good": {}, "great": {}, "who": {}, "what": {}, "when": {}, "where": {},
	"about": {}, "into": {}, "from": {}, "more": {}, "than": {}, "such": {},
	"including": {}, "etc": {}, "per": {}, "plus": {}, "ability": {},
	"experience": {}, "required": {}, "preferred": {}, "requirements": {},
	"responsibilities": {}, "qualifications": {}, "candidate": {},
	"looking": {}, "join": {}, "using": {}, "use": {}, "well": {},
	"within": {}, "across": {}, "both": {}, "also": {},
}

// ExtractJobKeywords tokenizes a job description and returns the
// content-bearing keywords ranked by frequency, most frequent first. Equally
// frequent keywords order lexically so the ranking is deterministic. All
// keywords are lower-cased.
func ExtractJobKeywords(jobDescription string) []string {
	if strings.TrimSpace(jobDescription) == "" {
		return nil
	}

	counts := make(map[string]int)
	tokens := strings.FieldsFunc(strings.ToLower(jobDescription), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) &&
			r != '+' && r != '#' && r != '.' && r != '/' && r != '-'
	})
	for _, tok := range tokens {
		tok = strings.Trim(tok, ".-/")
		if len(tok) < 3 || isNumeric(tok) {
			continue
		}
		if _, stop := jdStopwords[tok]; stop {
			continue
		}
		counts[tok]++
	}

	keywords := make([]string, 0, len(counts))
	for kw := range counts {
		keywords = append(keywords, kw)
	}
	sort.Slice(keywords, func(i, j int) bool {
		if counts[keywords[i]] != counts[keywords[j]] {
			return counts[keywords[i]] > counts[keywords[j]]
		}
		return keywords[i] < keywords[j]
	})
	return keywords
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) && r != '.' {
			return false
		}
	}
	return true
}

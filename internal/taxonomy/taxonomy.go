// Package taxonomy holds the fixed keyword reference sets the scorer matches
// resumes against. The sets are immutable after process start; concurrent
// scoring calls share them without coordination.
package taxonomy

import (
	"strings"
	"unicode"
)

// Technical is the canonical technical keyword set, lower-cased.
var Technical = []string{
	"python", "javascript", "typescript", "java", "c++", "c#", "go",
	"react", "angular", "vue", "next.js", "node.js", "express",
	"django", "flask", "fastapi", "spring",
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "linux",
	"sql", "postgresql", "mysql", "mongodb", "redis", "oracle",
	"git", "github", "ci/cd", "agile", "scrum", "devops",
	"html", "css", "graphql", "rest api", "microservices", "grpc",
	"machine learning", "deep learning", "tensorflow", "pytorch",
	"data science", "artificial intelligence", "nlp", "computer vision",
	"generative ai", "llm", "langchain", "hugging face", "rag",
	"flutter", "android", "kotlin", "swift", "transformers", "blockchain",
}

// Soft is the canonical soft-skill keyword set, lower-cased.
var Soft = []string{
	"leadership", "communication", "teamwork", "problem solving",
	"analytical", "project management", "critical thinking",
	"collaboration", "adaptable", "organized", "detail-oriented",
	"self-motivated", "innovative", "strategic", "mentoring", "coaching",
	"time management", "negotiation", "presentation", "stakeholder management",
}

// Verbs is the power-verb set expected to lead achievement bullets.
var Verbs = []string{
	"achieved", "improved", "reduced", "increased", "developed", "launched",
	"managed", "led", "created", "built", "designed", "implemented",
	"delivered", "optimized", "streamlined", "automated", "collaborated",
	"mentored", "trained", "analyzed", "evaluated", "generated", "enhanced",
	"accelerated", "drove", "established", "spearheaded", "orchestrated",
	"transformed", "scaled", "architected", "deployed", "migrated",
	"refactored", "modernized", "initiated", "pioneered", "consolidated",
}

// MatchResult lists which taxonomy keywords appear in a profile corpus.
type MatchResult struct {
	Technical        []string
	Soft             []string
	Verbs            []string
	MissingTechnical []string
}

// Match scans the corpus for every taxonomy keyword. Matching is
// case-insensitive and whole-word: "go" inside "django" does not count.
func Match(corpus string) MatchResult {
	lower := strings.ToLower(corpus)
	res := MatchResult{}
	for _, kw := range Technical {
		if ContainsKeyword(lower, kw) {
			res.Technical = append(res.Technical, kw)
		} else {
			res.MissingTechnical = append(res.MissingTechnical, kw)
		}
	}
	for _, kw := range Soft {
		if ContainsKeyword(lower, kw) {
			res.Soft = append(res.Soft, kw)
		}
	}
	for _, kw := range Verbs {
		if ContainsKeyword(lower, kw) {
			res.Verbs = append(res.Verbs, kw)
		}
	}
	return res
}

// KnownIn returns the technical keywords present in text, used as a fallback
// skills list when a resume has no recognizable skills section.
func KnownIn(text string) []string {
	lower := strings.ToLower(text)
	var out []string
	for _, kw := range Technical {
		if ContainsKeyword(lower, kw) {
			out = append(out, kw)
		}
	}
	return out
}

// ContainsKeyword reports whether keyword occurs in text on word boundaries.
// Both arguments are expected lower-cased. Keywords may contain symbols
// (c++, node.js, ci/cd), so boundaries are judged by the neighboring runes
// rather than a \b regex.
func ContainsKeyword(text, keyword string) bool {
	if keyword == "" {
		return false
	}
	for start := 0; ; {
		idx := strings.Index(text[start:], keyword)
		if idx < 0 {
			return false
		}
		begin := start + idx
		end := begin + len(keyword)
		beforeOK := begin == 0 || !isWordByte(text[begin-1])
		afterOK := end == len(text) || !isWordByte(text[end])
		if beforeOK && afterOK {
			return true
		}
		start = begin + 1
	}
}

func isWordByte(b byte) bool {
	return unicode.IsLetter(rune(b)) || unicode.IsDigit(rune(b))
}

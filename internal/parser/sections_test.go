package parser

import (
	"reflect"
	"strings"
	"testing"

	"github.com/Dhruv40689/resume-builder/internal/profile"
)

func TestMatchHeader(t *testing.T) {
	tests := []struct {
		line string
		want profile.Section
		ok   bool
	}{
		{"EXPERIENCE", profile.SectionExperience, true},
		{"Work History:", profile.SectionExperience, true},
		{"Professional Summary", profile.SectionSummary, true},
		{"TECHNICAL SKILLS", profile.SectionSkills, true},
		{"Education", profile.SectionEducation, true},
		{"Certifications:", profile.SectionCertifications, true},
		{"Projects & Achievements", profile.SectionProjects, true},
		{"I have experience shipping large systems to production", "", false},
		{"", "", false},
		{strings.Repeat("skills ", 10), "", false},
	}

	for _, tt := range tests {
		got, ok := MatchHeader(tt.line)
		if ok != tt.ok || got != tt.want {
			t.Fatalf("MatchHeader(%q) = (%q, %v), want (%q, %v)", tt.line, got, ok, tt.want, tt.ok)
		}
	}
}

// A header that could plausibly open more than one section resolves to the
// earliest rule in the table, so matching stays deterministic.
func TestMatchHeaderAmbiguityResolvesToEarliestRule(t *testing.T) {
	got, ok := MatchHeader("Profile")
	if !ok || got != profile.SectionSummary {
		t.Fatalf("MatchHeader(Profile) = (%q, %v), want summary", got, ok)
	}
}

func TestSegmentRoutesLinesToSections(t *testing.T) {
	lines := []string{
		"Jane Doe",
		"jane@example.com",
		"",
		"SUMMARY",
		"Engineer who ships.",
		"",
		"EXPERIENCE",
		"Senior Engineer | Acme",
		"- built things",
		"",
		"SKILLS",
		"Go, SQL",
	}

	sections := Segment(lines)

	if got := sections[profile.SectionHeader]; !reflect.DeepEqual(got, []string{"Jane Doe", "jane@example.com"}) {
		t.Fatalf("header section = %#v", got)
	}
	if got := sections[profile.SectionSummary]; !reflect.DeepEqual(got, []string{"Engineer who ships."}) {
		t.Fatalf("summary section = %#v", got)
	}
	if got := sections[profile.SectionExperience]; !reflect.DeepEqual(got, []string{"Senior Engineer | Acme", "- built things"}) {
		t.Fatalf("experience section = %#v", got)
	}
	if got := sections[profile.SectionSkills]; !reflect.DeepEqual(got, []string{"Go, SQL"}) {
		t.Fatalf("skills section = %#v", got)
	}
}

// Every non-blank input line must land in exactly one section; header lines
// are consumed, nothing else is dropped.
func TestSegmentIsTotal(t *testing.T) {
	lines := Normalize("Jane\nSUMMARY\nabout\nEXPERIENCE\njob one\njob two\nSKILLS\nGo\nEDUCATION\nState U")

	sections := Segment(lines)

	var kept []string
	for _, content := range sections {
		for _, line := range content {
			if line != "" {
				kept = append(kept, line)
			}
		}
	}

	headerCount := 0
	for _, line := range lines {
		if _, ok := MatchHeader(line); ok {
			headerCount++
		}
	}

	var nonBlank int
	for _, line := range lines {
		if line != "" {
			nonBlank++
		}
	}
	if len(kept) != nonBlank-headerCount {
		t.Fatalf("segment dropped lines: kept %d, want %d", len(kept), nonBlank-headerCount)
	}
}

func TestSegmentWithoutHeadersKeepsEverythingInHeaderSection(t *testing.T) {
	lines := []string{"Jane Doe", "jane@example.com", "ten years of backend work"}
	sections := Segment(lines)

	if len(sections) != 1 {
		t.Fatalf("expected only the implicit header section, got %#v", sections)
	}
	if got := sections[profile.SectionHeader]; !reflect.DeepEqual(got, lines) {
		t.Fatalf("header section = %#v", got)
	}
}

func TestSegmentAppendsRepeatedHeaders(t *testing.T) {
	lines := []string{
		"EXPERIENCE",
		"first job",
		"SKILLS",
		"Go",
		"EXPERIENCE",
		"second job",
	}
	sections := Segment(lines)

	want := []string{"first job", "second job"}
	if got := sections[profile.SectionExperience]; !reflect.DeepEqual(got, want) {
		t.Fatalf("experience section = %#v, want %#v", got, want)
	}
}

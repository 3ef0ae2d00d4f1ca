package parser

import (
	"errors"
	"reflect"
	"testing"
)

const sampleResume = `Jane Doe
jane.doe@example.com | +1 (415) 555-0142
linkedin.com/in/janedoe | janedoe.dev/portfolio

SUMMARY
Backend engineer with 6 years of experience building Go services.

EXPERIENCE
Senior Engineer | Acme Corp
Jan 2021 - Present
• Reduced p99 latency by 40% across 12 services
• Led migration of billing pipeline to Kubernetes

Software Engineer at Widget Inc
2018 - 2021
- Built REST APIs in Go and Python

EDUCATION
State University
BSc Computer Science, 2014 - 2018

SKILLS
Languages: Go, Python, SQL
Docker | Kubernetes | PostgreSQL

CERTIFICATIONS
AWS Certified Solutions Architect`

func TestExtractProfileFullResume(t *testing.T) {
	p, err := ExtractProfile(sampleResume)
	if err != nil {
		t.Fatalf("ExtractProfile: %v", err)
	}

	if p.Contact.Name != "Jane Doe" {
		t.Errorf("name = %q", p.Contact.Name)
	}
	if p.Contact.Email != "jane.doe@example.com" {
		t.Errorf("email = %q", p.Contact.Email)
	}
	if p.Contact.Phone != "+1 (415) 555-0142" {
		t.Errorf("phone = %q", p.Contact.Phone)
	}
	if p.Contact.LinkedIn != "linkedin.com/in/janedoe" {
		t.Errorf("linkedin = %q", p.Contact.LinkedIn)
	}
	if p.Contact.Portfolio == "" {
		t.Error("portfolio not found")
	}

	if p.Summary == "" {
		t.Error("summary empty")
	}

	if len(p.Experience) != 2 {
		t.Fatalf("experience entries = %d, want 2: %#v", len(p.Experience), p.Experience)
	}
	first := p.Experience[0]
	if first.Title != "Senior Engineer" || first.Organization != "Acme Corp" {
		t.Errorf("first entry header = %q / %q", first.Title, first.Organization)
	}
	if first.Dates == "" {
		t.Error("first entry has no dates")
	}
	if len(first.Bullets) != 2 {
		t.Errorf("first entry bullets = %#v", first.Bullets)
	}
	second := p.Experience[1]
	if second.Title != "Software Engineer" || second.Organization != "Widget Inc" {
		t.Errorf("second entry header = %q / %q", second.Title, second.Organization)
	}

	if len(p.Education) != 1 {
		t.Fatalf("education entries = %#v", p.Education)
	}
	if p.Education[0].Institution != "State University" {
		t.Errorf("institution = %q", p.Education[0].Institution)
	}

	for _, want := range []string{"Go", "Python", "SQL", "Docker", "Kubernetes", "PostgreSQL"} {
		if !containsString(p.Skills, want) {
			t.Errorf("skills missing %q: %#v", want, p.Skills)
		}
	}

	if len(p.Certifications) != 1 {
		t.Errorf("certifications = %#v", p.Certifications)
	}
}

func TestExtractProfileContactOnly(t *testing.T) {
	p, err := ExtractProfile("Jane Doe\njane@example.com\n+1 415 555 0100")
	if err != nil {
		t.Fatalf("ExtractProfile: %v", err)
	}

	if p.Contact.Name != "Jane Doe" || p.Contact.Email != "jane@example.com" {
		t.Fatalf("contact = %#v", p.Contact)
	}
	if p.Summary != "" || len(p.Experience) != 0 || len(p.Education) != 0 {
		t.Fatalf("expected empty body fields: %#v", p)
	}
}

func TestExtractProfileRejectsInvalidUTF8(t *testing.T) {
	_, err := ExtractProfile("Jane\xff\xfeDoe")
	if !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("err = %v, want ErrMalformedInput", err)
	}
}

func TestExtractProfileIsDeterministic(t *testing.T) {
	a, err := ExtractProfile(sampleResume)
	if err != nil {
		t.Fatalf("first extract: %v", err)
	}
	b, err := ExtractProfile(sampleResume)
	if err != nil {
		t.Fatalf("second extract: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("extraction is not deterministic")
	}
}

// Without a skills section the extractor falls back to taxonomy terms found
// anywhere in the text.
func TestExtractProfileSkillsFallback(t *testing.T) {
	p, err := ExtractProfile("Jane Doe\njane@example.com\n\nSUMMARY\nShips Go and Docker workloads on Kubernetes.")
	if err != nil {
		t.Fatalf("ExtractProfile: %v", err)
	}
	for _, want := range []string{"go", "docker", "kubernetes"} {
		if !containsString(p.Skills, want) {
			t.Fatalf("fallback skills missing %q: %#v", want, p.Skills)
		}
	}
}

func containsString(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}

package render

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/Dhruv40689/resume-builder/internal/profile"
)

func renderTestProfile() *profile.Profile {
	return &profile.Profile{
		Contact: profile.Contact{
			Name:  "Jane Doe",
			Email: "jane@example.com",
			Phone: "+1 415 555 0100",
		},
		Summary: "Backend engineer with 6 years of Go and Postgres experience.",
		Experience: []profile.ExperienceEntry{
			{
				Title:        "Senior Engineer",
				Organization: "Acme",
				Dates:        "2020 - Present",
				Bullets:      []string{"Reduced p99 latency by 40%"},
			},
		},
		Education: []profile.EducationEntry{
			{Degree: "BSc Computer Science", Institution: "State University", Dates: "2014 - 2018"},
		},
		Skills: []string{"Go", "Postgres", "Docker"},
	}
}

func readDocumentXML(t *testing.T, data []byte) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open rendered docx: %v", err)
	}
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open document.xml: %v", err)
		}
		defer rc.Close()
		raw, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("read document.xml: %v", err)
		}
		return string(raw)
	}
	t.Fatal("rendered docx has no word/document.xml")
	return ""
}

func TestRenderDocxContainsSections(t *testing.T) {
	data, err := RenderDocx(renderTestProfile())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	doc := readDocumentXML(t, data)
	for _, want := range []string{
		"Jane Doe",
		"jane@example.com",
		"Professional Summary",
		"Senior Engineer | Acme (2020 - Present)",
		"Reduced p99 latency by 40%",
		"BSc Computer Science, State University, 2014 - 2018",
		"Go, Postgres, Docker",
	} {
		if !strings.Contains(doc, want) {
			t.Fatalf("document.xml missing %q", want)
		}
	}
}

func TestRenderDocxEscapesMarkup(t *testing.T) {
	p := renderTestProfile()
	p.Skills = append(p.Skills, "C++ <templates>")

	data, err := RenderDocx(p)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	doc := readDocumentXML(t, data)
	if strings.Contains(doc, "<templates>") {
		t.Fatal("raw markup leaked into document.xml")
	}
	if !strings.Contains(doc, "&lt;templates&gt;") {
		t.Fatal("expected escaped markup in document.xml")
	}
}

func TestRenderDocxRejectsAnonymousProfile(t *testing.T) {
	if _, err := RenderDocx(&profile.Profile{}); err == nil {
		t.Fatal("expected error for profile without name or email")
	}
}

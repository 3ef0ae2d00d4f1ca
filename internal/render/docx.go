package render

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"strings"

	"github.com/Dhruv40689/resume-builder/internal/profile"
)

// DocxMimeType is the content type served for rendered resumes.
const DocxMimeType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// RenderDocx renders a parsed profile into a minimal ATS-friendly DOCX
// package. The document is a single word/document.xml plus the fixed
// OPC plumbing parts, with one heading paragraph per resume section.
func RenderDocx(p *profile.Profile) ([]byte, error) {
	if p == nil {
		return nil, errors.New("nil profile")
	}
	if strings.TrimSpace(p.Contact.Name) == "" && strings.TrimSpace(p.Contact.Email) == "" {
		return nil, errors.New("profile has no name or email")
	}

	var output bytes.Buffer
	w := zip.NewWriter(&output)

	parts := []struct {
		name string
		body string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relsXML},
		{"word/document.xml", buildDocumentXML(p)},
	}
	for _, part := range parts {
		f, err := w.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", part.name, err)
		}
		if _, err := f.Write([]byte(part.body)); err != nil {
			return nil, fmt.Errorf("write %s: %w", part.name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, err
	}
	return output.Bytes(), nil
}

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

func buildDocumentXML(p *profile.Profile) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	b.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	writeParagraph(&b, p.Contact.Name, true)
	if line := contactLine(p.Contact); line != "" {
		writeParagraph(&b, line, false)
	}

	if p.Summary != "" {
		writeParagraph(&b, "Professional Summary", true)
		writeParagraph(&b, p.Summary, false)
	}

	if len(p.Experience) > 0 {
		writeParagraph(&b, "Experience", true)
		for _, entry := range p.Experience {
			writeParagraph(&b, experienceHeading(entry), false)
			for _, bullet := range entry.Bullets {
				writeParagraph(&b, "• "+bullet, false)
			}
		}
	}

	if len(p.Education) > 0 {
		writeParagraph(&b, "Education", true)
		for _, entry := range p.Education {
			writeParagraph(&b, educationHeading(entry), false)
		}
	}

	if len(p.Skills) > 0 {
		writeParagraph(&b, "Skills", true)
		writeParagraph(&b, strings.Join(p.Skills, ", "), false)
	}

	if len(p.Projects) > 0 {
		writeParagraph(&b, "Projects", true)
		for _, entry := range p.Projects {
			writeParagraph(&b, entry.Name, false)
			if entry.Description != "" {
				writeParagraph(&b, entry.Description, false)
			}
		}
	}

	if len(p.Certifications) > 0 {
		writeParagraph(&b, "Certifications", true)
		for _, cert := range p.Certifications {
			writeParagraph(&b, cert, false)
		}
	}

	b.WriteString(`</w:body></w:document>`)
	return b.String()
}

func writeParagraph(b *strings.Builder, text string, bold bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	b.WriteString(`<w:p><w:r>`)
	if bold {
		b.WriteString(`<w:rPr><w:b/></w:rPr>`)
	}
	b.WriteString(`<w:t xml:space="preserve">`)
	b.WriteString(escapeXML(text))
	b.WriteString(`</w:t></w:r></w:p>`)
}

func contactLine(c profile.Contact) string {
	parts := make([]string, 0, 4)
	for _, v := range []string{c.Email, c.Phone, c.LinkedIn, c.Portfolio} {
		if strings.TrimSpace(v) != "" {
			parts = append(parts, strings.TrimSpace(v))
		}
	}
	return strings.Join(parts, " | ")
}

func experienceHeading(e profile.ExperienceEntry) string {
	parts := make([]string, 0, 3)
	if e.Title != "" {
		parts = append(parts, e.Title)
	}
	if e.Organization != "" {
		parts = append(parts, e.Organization)
	}
	heading := strings.Join(parts, " | ")
	if e.Dates != "" {
		if heading != "" {
			heading += " (" + e.Dates + ")"
		} else {
			heading = e.Dates
		}
	}
	return heading
}

func educationHeading(e profile.EducationEntry) string {
	parts := make([]string, 0, 3)
	if e.Degree != "" {
		parts = append(parts, e.Degree)
	}
	if e.Institution != "" {
		parts = append(parts, e.Institution)
	}
	if e.Dates != "" {
		parts = append(parts, e.Dates)
	}
	return strings.Join(parts, ", ")
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return s
	}
	return buf.String()
}

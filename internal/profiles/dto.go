package profiles

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Dhruv40689/resume-builder/internal/ats"
	"github.com/Dhruv40689/resume-builder/internal/profile"
)

var validate = validator.New()

// CreateFromTextRequest carries raw resume text.
type CreateFromTextRequest struct {
	Text     string `json:"text" validate:"required,min=1"`
	FileName string `json:"fileName"`
}

// ManualExperience is one work-history entry from the manual form.
type ManualExperience struct {
	Title        string   `json:"title" validate:"required"`
	Organization string   `json:"organization"`
	Dates        string   `json:"dates"`
	Bullets      []string `json:"bullets" validate:"dive,min=1"`
}

// ManualEducation is one education entry from the manual form.
type ManualEducation struct {
	Institution string `json:"institution" validate:"required"`
	Degree      string `json:"degree"`
	Dates       string `json:"dates"`
}

// ManualProfileRequest is the structured manual-entry payload.
type ManualProfileRequest struct {
	Name           string             `json:"name" validate:"required,min=2,max=120"`
	Email          string             `json:"email" validate:"omitempty,email"`
	Phone          string             `json:"phone" validate:"omitempty,min=7,max=25"`
	LinkedIn       string             `json:"linkedin"`
	Portfolio      string             `json:"portfolio"`
	Summary        string             `json:"summary"`
	Experience     []ManualExperience `json:"experience" validate:"dive"`
	Education      []ManualEducation  `json:"education" validate:"dive"`
	Skills         []string           `json:"skills"`
	Certifications []string           `json:"certifications"`
}

// Validate runs struct-level validation plus the contact rule that at least
// one of email or phone must be present.
func (r *ManualProfileRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	if strings.TrimSpace(r.Email) == "" && strings.TrimSpace(r.Phone) == "" {
		return ErrInvalidInput
	}
	return nil
}

// ToProfile converts the manual payload to the canonical profile shape.
func (r *ManualProfileRequest) ToProfile() profile.Profile {
	p := profile.Profile{
		Contact: profile.Contact{
			Name:      strings.TrimSpace(r.Name),
			Email:     strings.TrimSpace(r.Email),
			Phone:     strings.TrimSpace(r.Phone),
			LinkedIn:  strings.TrimSpace(r.LinkedIn),
			Portfolio: strings.TrimSpace(r.Portfolio),
		},
		Summary:        strings.TrimSpace(r.Summary),
		Skills:         r.Skills,
		Certifications: r.Certifications,
	}
	for _, exp := range r.Experience {
		p.Experience = append(p.Experience, profile.ExperienceEntry{
			Title:        strings.TrimSpace(exp.Title),
			Organization: strings.TrimSpace(exp.Organization),
			Dates:        strings.TrimSpace(exp.Dates),
			Bullets:      exp.Bullets,
		})
	}
	for _, edu := range r.Education {
		p.Education = append(p.Education, profile.EducationEntry{
			Institution: strings.TrimSpace(edu.Institution),
			Degree:      strings.TrimSpace(edu.Degree),
			Dates:       strings.TrimSpace(edu.Dates),
		})
	}
	p.Normalize()
	return p
}

// ScoreRequest carries the optional scoring context.
type ScoreRequest struct {
	JobDescription string `json:"jobDescription"`
	TargetRole     string `json:"targetRole"`
}

// EnhanceRequest carries the enhancement context.
type EnhanceRequest struct {
	TargetRole     string `json:"targetRole"`
	JobDescription string `json:"jobDescription"`
}

// ProfileResponse is the outward-facing representation of a record.
type ProfileResponse struct {
	ProfileID string          `json:"profileId"`
	Source    string          `json:"source"`
	FileName  string          `json:"fileName,omitempty"`
	Profile   profile.Profile `json:"profile"`
	Scored    bool            `json:"scored"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// ScoreResponse is the outward-facing score report.
type ScoreResponse struct {
	ProfileID       string         `json:"profileId"`
	Overall         int            `json:"overall"`
	Status          ats.Status     `json:"status"`
	Dimensions      ats.Dimensions `json:"dimensions"`
	MissingKeywords []string       `json:"missingKeywords"`
	Suggestions     []string       `json:"suggestions"`
	ScoredAt        *time.Time     `json:"scoredAt,omitempty"`
}

func toResponse(rec Record) ProfileResponse {
	return ProfileResponse{
		ProfileID: rec.ID,
		Source:    rec.Source,
		FileName:  rec.FileName,
		Profile:   rec.Profile,
		Scored:    rec.Report != nil,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

func toScoreResponse(rec Record) ScoreResponse {
	resp := ScoreResponse{
		ProfileID: rec.ID,
		ScoredAt:  rec.ScoredAt,
	}
	if rec.Report != nil {
		resp.Overall = rec.Report.Overall
		resp.Status = rec.Report.Status
		resp.Dimensions = rec.Report.Dimensions
		resp.MissingKeywords = rec.Report.MissingKeywords
		resp.Suggestions = rec.Report.Suggestions
	}
	return resp
}

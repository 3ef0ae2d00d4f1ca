package profiles

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Dhruv40689/resume-builder/internal/ats"
	"github.com/Dhruv40689/resume-builder/internal/enhance"
	"github.com/Dhruv40689/resume-builder/internal/extract"
	"github.com/Dhruv40689/resume-builder/internal/parser"
	"github.com/Dhruv40689/resume-builder/internal/profile"
	"github.com/Dhruv40689/resume-builder/internal/render"
	"github.com/Dhruv40689/resume-builder/internal/shared/metrics"
	"github.com/Dhruv40689/resume-builder/internal/shared/storage/object"
)

// ErrMalformedResume wraps parser failures so handlers can map them to 422.
var ErrMalformedResume = errors.New("malformed resume")

// Service contains the profile lifecycle logic: parse, store, score,
// enhance and export.
type Service struct {
	Repo     Repo
	Store    object.ObjectStore
	Enhancer enhance.Enhancer
	Now      func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// CreateFromText parses raw resume text into a structured profile and
// stores it as the user's current record.
func (s *Service) CreateFromText(ctx context.Context, userId, text, fileName string) (Record, error) {
	if strings.TrimSpace(text) == "" {
		return Record{}, ErrInvalidInput
	}
	return s.createParsed(ctx, userId, text, fileName, SourceText)
}

// CreateFromUpload extracts text from an uploaded file, persists the
// original in object storage and stores the parsed profile.
func (s *Service) CreateFromUpload(ctx context.Context, userId, fileName string, r io.Reader) (Record, error) {
	if fileName == "" {
		return Record{}, ErrInvalidInput
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return Record{}, fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		return Record{}, ErrInvalidInput
	}

	mimeType := ""
	if s.Store != nil {
		_, _, mimeType, err = s.Store.Save(ctx, userId, fileName, bytes.NewReader(data))
		if err != nil {
			return Record{}, fmt.Errorf("store upload: %w", err)
		}
	}

	text, err := extract.ExtractTextFromBytes(ctx, data, mimeType, fileName)
	if err != nil {
		metrics.IncParseFailures()
		return Record{}, fmt.Errorf("%w: %v", ErrMalformedResume, err)
	}

	return s.createParsed(ctx, userId, text, fileName, SourceUpload)
}

func (s *Service) createParsed(ctx context.Context, userId, text, fileName, source string) (Record, error) {
	p, err := parser.ExtractProfile(text)
	if err != nil {
		metrics.IncParseFailures()
		if errors.Is(err, parser.ErrMalformedInput) {
			return Record{}, fmt.Errorf("%w: %v", ErrMalformedResume, err)
		}
		return Record{}, err
	}
	metrics.IncProfilesParsed()

	now := s.now()
	rec := Record{
		ID:        uuid.NewString(),
		UserID:    userId,
		Source:    source,
		FileName:  fileName,
		Profile:   *p,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// CreateManual stores a profile built from structured form input.
func (s *Service) CreateManual(ctx context.Context, userId string, p profile.Profile) (Record, error) {
	now := s.now()
	rec := Record{
		ID:        uuid.NewString(),
		UserID:    userId,
		Source:    SourceManual,
		Profile:   p,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Get returns a record by ID scoped to its owner.
func (s *Service) Get(ctx context.Context, userId, id string) (Record, error) {
	if userId == "" || id == "" {
		return Record{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userId, id)
}

// Current returns the user's most recent record.
func (s *Service) Current(ctx context.Context, userId string) (Record, error) {
	if userId == "" {
		return Record{}, ErrInvalidInput
	}
	return s.Repo.GetCurrentByUser(ctx, userId)
}

// List returns the user's records, newest first.
func (s *Service) List(ctx context.Context, userId string, limit, offset int) ([]Record, error) {
	if userId == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.List(ctx, userId, limit, offset)
}

// Score computes the ATS report for a profile. The report is cached: a
// repeat call with the same job description and target role returns the
// stored report without recomputing.
func (s *Service) Score(ctx context.Context, userId, id, jobDescription, targetRole string) (Record, error) {
	rec, err := s.Get(ctx, userId, id)
	if err != nil {
		return Record{}, err
	}

	if rec.Report != nil && rec.JobDescription == jobDescription && rec.TargetRole == targetRole {
		return rec, nil
	}

	start := metrics.NowMillis()
	report := ats.Score(&rec.Profile, ats.Options{
		JobDescription: jobDescription,
		TargetRole:     targetRole,
	})
	metrics.ObserveScoreDurationMs(metrics.NowMillis() - start)
	metrics.IncScoresComputed()

	now := s.now()
	rec.Report = &report
	rec.JobDescription = jobDescription
	rec.TargetRole = targetRole
	rec.ScoredAt = &now
	rec.UpdatedAt = now

	if err := s.Repo.Update(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Enhance rewrites the profile content in place and invalidates any cached
// score, since the rewritten content no longer matches it.
func (s *Service) Enhance(ctx context.Context, userId, id string, opts enhance.Options) (Record, error) {
	rec, err := s.Get(ctx, userId, id)
	if err != nil {
		return Record{}, err
	}

	enhancer := s.Enhancer
	if enhancer == nil {
		enhancer = enhance.RuleBased{}
	}
	if err := enhancer.Enhance(ctx, &rec.Profile, opts); err != nil {
		return Record{}, err
	}
	metrics.IncEnhancements()

	rec.InvalidateReport()
	rec.UpdatedAt = s.now()

	if err := s.Repo.Update(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Export renders the profile as a DOCX attachment.
func (s *Service) Export(ctx context.Context, userId, id string) ([]byte, string, error) {
	rec, err := s.Get(ctx, userId, id)
	if err != nil {
		return nil, "", err
	}
	data, err := render.RenderDocx(&rec.Profile)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	name := exportFileName(rec.Profile.Contact.Name)
	return data, name, nil
}

func exportFileName(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == ' ':
			return '_'
		default:
			return -1
		}
	}, strings.TrimSpace(name))
	if cleaned == "" {
		cleaned = "resume"
	}
	return cleaned + ".docx"
}

package profiles

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/Dhruv40689/resume-builder/internal/enhance"
)

const serviceTestResume = `Jane Doe
jane@example.com | +1 415 555 0100

SUMMARY
Backend engineer who ships Go services.

EXPERIENCE
Senior Engineer | Acme
2020 - Present
- Reduced p99 latency by 40%

SKILLS
Go, PostgreSQL, Docker`

func newTestService() *Service {
	return &Service{
		Repo:     NewMemoryRepo(),
		Enhancer: enhance.RuleBased{},
		Now:      func() time.Time { return time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func TestCreateFromTextParsesAndStores(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	rec, err := svc.CreateFromText(ctx, "guest:u1", serviceTestResume, "resume.txt")
	if err != nil {
		t.Fatalf("CreateFromText: %v", err)
	}
	if rec.ID == "" || rec.Source != SourceText {
		t.Fatalf("record = %#v", rec)
	}
	if rec.Profile.Contact.Name != "Jane Doe" {
		t.Fatalf("parsed name = %q", rec.Profile.Contact.Name)
	}
	if rec.Report != nil {
		t.Fatal("new record should not carry a report")
	}

	current, err := svc.Current(ctx, "guest:u1")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if current.ID != rec.ID {
		t.Fatalf("current = %s, want %s", current.ID, rec.ID)
	}
}

func TestCreateFromTextRejectsBlank(t *testing.T) {
	svc := newTestService()
	if _, err := svc.CreateFromText(context.Background(), "guest:u1", "   \n ", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestCreateFromTextMapsMalformedInput(t *testing.T) {
	svc := newTestService()
	if _, err := svc.CreateFromText(context.Background(), "guest:u1", "Jane\xff\xfe", ""); !errors.Is(err, ErrMalformedResume) {
		t.Fatalf("err = %v, want ErrMalformedResume", err)
	}
}

func TestScoreCachesReport(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	rec, err := svc.CreateFromText(ctx, "guest:u1", serviceTestResume, "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	scored, err := svc.Score(ctx, "guest:u1", rec.ID, "Go and Kubernetes", "Backend Developer")
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if scored.Report == nil || scored.ScoredAt == nil {
		t.Fatal("score did not persist a report")
	}

	again, err := svc.Score(ctx, "guest:u1", rec.ID, "Go and Kubernetes", "Backend Developer")
	if err != nil {
		t.Fatalf("repeat score: %v", err)
	}
	if !reflect.DeepEqual(again.Report, scored.Report) {
		t.Fatal("repeat score with same inputs returned a different report")
	}
	if !again.ScoredAt.Equal(*scored.ScoredAt) {
		t.Fatal("repeat score refreshed the timestamp")
	}

	rescored, err := svc.Score(ctx, "guest:u1", rec.ID, "entirely different posting text", "")
	if err != nil {
		t.Fatalf("rescore: %v", err)
	}
	if rescored.JobDescription != "entirely different posting text" {
		t.Fatal("new job description was not stored")
	}
}

func TestEnhanceInvalidatesReport(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	rec, err := svc.CreateFromText(ctx, "guest:u1", serviceTestResume, "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Score(ctx, "guest:u1", rec.ID, "", ""); err != nil {
		t.Fatalf("score: %v", err)
	}

	enhanced, err := svc.Enhance(ctx, "guest:u1", rec.ID, enhance.Options{TargetRole: "Backend Developer"})
	if err != nil {
		t.Fatalf("enhance: %v", err)
	}
	if enhanced.Report != nil || enhanced.ScoredAt != nil {
		t.Fatal("enhance did not invalidate the cached report")
	}
	if !strings.Contains(enhanced.Profile.Summary, "Backend Developer") {
		t.Fatalf("summary not rewritten: %q", enhanced.Profile.Summary)
	}

	stored, err := svc.Get(ctx, "guest:u1", rec.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Report != nil {
		t.Fatal("invalidation not persisted")
	}
}

func TestExportRendersDocx(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	rec, err := svc.CreateFromText(ctx, "guest:u1", serviceTestResume, "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	data, name, err := svc.Export(ctx, "guest:u1", rec.ID)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("export returned no bytes")
	}
	if name != "Jane_Doe.docx" {
		t.Fatalf("export file name = %q", name)
	}
}

func TestGetScopedToOwner(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	rec, err := svc.CreateFromText(ctx, "guest:u1", serviceTestResume, "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Get(ctx, "guest:u2", rec.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("cross-user get err = %v, want ErrNotFound", err)
	}
}

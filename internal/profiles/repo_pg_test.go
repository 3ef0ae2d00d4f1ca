package profiles

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/Dhruv40689/resume-builder/internal/ats"
	"github.com/Dhruv40689/resume-builder/internal/profile"
)

func pgTestRecord() Record {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	return Record{
		ID:       "profile-1",
		UserID:   "user-1",
		Source:   SourceText,
		FileName: "resume.txt",
		Profile: profile.Profile{
			Contact: profile.Contact{Name: "Jane Doe", Email: "jane@example.com"},
			Skills:  []string{"Go", "PostgreSQL"},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestPGRepoCreateMarshalsProfile(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	rec := pgTestRecord()

	profileJSON, jsonErr := json.Marshal(rec.Profile)
	if jsonErr != nil {
		t.Fatalf("marshal profile: %v", jsonErr)
	}

	mock.ExpectExec("INSERT INTO profiles").
		WithArgs(
			rec.ID,
			rec.UserID,
			rec.Source,
			sqlmock.AnyArg(), // file_name
			profileJSON,
			sqlmock.AnyArg(), // report
			sqlmock.AnyArg(), // job_description
			sqlmock.AnyArg(), // target_role
			sqlmock.AnyArg(), // scored_at
			rec.CreatedAt,
			rec.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), rec); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDDecodesJSON(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	rec := pgTestRecord()
	scoredAt := rec.UpdatedAt
	report := &ats.Report{Overall: 72, Status: ats.StatusGood}

	profileJSON, _ := json.Marshal(rec.Profile)
	reportJSON, _ := json.Marshal(report)

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "source", "file_name", "profile", "report",
		"job_description", "target_role", "scored_at", "created_at", "updated_at",
	}).AddRow(
		rec.ID, rec.UserID, rec.Source, rec.FileName, profileJSON, reportJSON,
		"Go role", "Backend Developer", scoredAt, rec.CreatedAt, rec.UpdatedAt,
	)

	mock.ExpectQuery("SELECT (.+) FROM profiles").
		WithArgs(rec.UserID, rec.ID).
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), rec.UserID, rec.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Profile.Contact.Name != "Jane Doe" {
		t.Errorf("decoded name = %q", got.Profile.Contact.Name)
	}
	if got.Report == nil || got.Report.Overall != 72 || got.Report.Status != ats.StatusGood {
		t.Errorf("decoded report = %#v", got.Report)
	}
	if got.JobDescription != "Go role" || got.TargetRole != "Backend Developer" {
		t.Errorf("decoded scoring context = %q / %q", got.JobDescription, got.TargetRole)
	}
	if got.ScoredAt == nil || !got.ScoredAt.Equal(scoredAt) {
		t.Errorf("decoded scored_at = %v", got.ScoredAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT (.+) FROM profiles").
		WithArgs("user-1", "missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	if _, err := repo.GetByID(context.Background(), "user-1", "missing"); err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestPGRepoUpdateReportsMissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	rec := pgTestRecord()

	mock.ExpectExec("UPDATE profiles").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Update(context.Background(), rec); err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

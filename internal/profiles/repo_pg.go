package profiles

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Dhruv40689/resume-builder/internal/ats"
)

// PGRepo implements Repo using Postgres. The structured profile and the
// score report are stored as JSONB.
type PGRepo struct {
	DB *sql.DB
}

const recordColumns = `id, user_id, source, file_name, profile, report, job_description, target_role, scored_at, created_at, updated_at`

// Create inserts a new profile record.
func (r *PGRepo) Create(ctx context.Context, rec Record) error {
	const query = `
INSERT INTO profiles (
    id,
    user_id,
    source,
    file_name,
    profile,
    report,
    job_description,
    target_role,
    scored_at,
    created_at,
    updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	profileJSON, reportJSON, err := marshalRecord(rec)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		rec.ID,
		rec.UserID,
		rec.Source,
		nullString(rec.FileName),
		profileJSON,
		reportJSON,
		nullString(rec.JobDescription),
		nullString(rec.TargetRole),
		nullTime(rec.ScoredAt),
		rec.CreatedAt,
		rec.UpdatedAt,
	)
	return err
}

// GetByID returns a record by ID scoped to its owner.
func (r *PGRepo) GetByID(ctx context.Context, userId, id string) (Record, error) {
	query := `
SELECT ` + recordColumns + `
FROM profiles
WHERE user_id = $1 AND id = $2`
	return scanRecord(r.DB.QueryRowContext(ctx, query, userId, id))
}

// GetCurrentByUser returns the latest record for a user.
func (r *PGRepo) GetCurrentByUser(ctx context.Context, userId string) (Record, error) {
	query := `
SELECT ` + recordColumns + `
FROM profiles
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT 1`
	return scanRecord(r.DB.QueryRowContext(ctx, query, userId))
}

// List returns records for a user, newest first.
func (r *PGRepo) List(ctx context.Context, userId string, limit, offset int) ([]Record, error) {
	query := `
SELECT ` + recordColumns + `
FROM profiles
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`
	rows, err := r.DB.QueryContext(ctx, query, userId, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Record, 0, limit)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Update replaces the mutable fields of a record.
func (r *PGRepo) Update(ctx context.Context, rec Record) error {
	const query = `
UPDATE profiles
SET profile = $1,
    report = $2,
    job_description = $3,
    target_role = $4,
    scored_at = $5,
    updated_at = $6
WHERE user_id = $7 AND id = $8`

	profileJSON, reportJSON, err := marshalRecord(rec)
	if err != nil {
		return err
	}

	res, err := r.DB.ExecContext(
		ctx,
		query,
		profileJSON,
		reportJSON,
		nullString(rec.JobDescription),
		nullString(rec.TargetRole),
		nullTime(rec.ScoredAt),
		rec.UpdatedAt,
		rec.UserID,
		rec.ID,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ClaimGuest reassigns all records from a guest identity to an
// authenticated user and returns the number moved.
func (r *PGRepo) ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (int, error) {
	res, err := r.DB.ExecContext(
		ctx,
		`UPDATE profiles SET user_id = $1 WHERE user_id = $2`,
		authedUserID,
		guestUserID,
	)
	if err != nil {
		return 0, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(affected), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var rec Record
	var fileName sql.NullString
	var profileJSON []byte
	var reportJSON []byte
	var jobDescription sql.NullString
	var targetRole sql.NullString
	var scoredAt sql.NullTime

	err := row.Scan(
		&rec.ID,
		&rec.UserID,
		&rec.Source,
		&fileName,
		&profileJSON,
		&reportJSON,
		&jobDescription,
		&targetRole,
		&scoredAt,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}

	if err := json.Unmarshal(profileJSON, &rec.Profile); err != nil {
		return Record{}, fmt.Errorf("decode profile json id=%s: %w", rec.ID, err)
	}
	if len(reportJSON) > 0 {
		var report ats.Report
		if err := json.Unmarshal(reportJSON, &report); err != nil {
			return Record{}, fmt.Errorf("decode report json id=%s: %w", rec.ID, err)
		}
		rec.Report = &report
	}
	if fileName.Valid {
		rec.FileName = fileName.String
	}
	if jobDescription.Valid {
		rec.JobDescription = jobDescription.String
	}
	if targetRole.Valid {
		rec.TargetRole = targetRole.String
	}
	if scoredAt.Valid {
		t := scoredAt.Time
		rec.ScoredAt = &t
	}
	return rec, nil
}

func marshalRecord(rec Record) ([]byte, []byte, error) {
	profileJSON, err := json.Marshal(rec.Profile)
	if err != nil {
		return nil, nil, fmt.Errorf("encode profile json id=%s: %w", rec.ID, err)
	}
	var reportJSON []byte
	if rec.Report != nil {
		reportJSON, err = json.Marshal(rec.Report)
		if err != nil {
			return nil, nil, fmt.Errorf("encode report json id=%s: %w", rec.ID, err)
		}
	}
	return profileJSON, reportJSON, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

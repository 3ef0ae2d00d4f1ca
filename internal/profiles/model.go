package profiles

import (
	"time"

	"github.com/Dhruv40689/resume-builder/internal/ats"
	"github.com/Dhruv40689/resume-builder/internal/profile"
)

// Record sources.
const (
	SourceUpload = "upload"
	SourceText   = "text"
	SourceManual = "manual"
)

// Record is a stored structured profile owned by a user, together with the
// most recent score report. Report and ScoredAt are nil until the profile is
// scored, and are cleared again whenever the profile content changes.
type Record struct {
	ID             string
	UserID         string
	Source         string
	FileName       string
	Profile        profile.Profile
	Report         *ats.Report
	JobDescription string
	TargetRole     string
	ScoredAt       *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// InvalidateReport drops the cached score after a content mutation.
func (r *Record) InvalidateReport() {
	r.Report = nil
	r.JobDescription = ""
	r.TargetRole = ""
	r.ScoredAt = nil
}

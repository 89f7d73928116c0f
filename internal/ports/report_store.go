package ports

import (
	"context"
	"time"
)

// BackupReport records the outcome of one orchestration for audit.
type BackupReport struct {
	Library    string    `json:"library"`
	SaveFile   string    `json:"save_file"`
	Downloaded bool      `json:"downloaded"`
	LocalPath  string    `json:"local_path,omitempty"`
	StartedAt  time.Time `json:"started_at"`
	Duration   string    `json:"duration"`
	Succeeded  bool      `json:"succeeded"`
	Error      string    `json:"error,omitempty"`
}

// ReportStore persists backup reports locally. Implementations write
// atomically (temp file, then rename) so a crash never leaves a
// half-written report behind.
type ReportStore interface {
	// Load retrieves the last saved report for a library.
	// Returns a zero report and nil error if none exists.
	Load(ctx context.Context, library string) (BackupReport, error)

	// Save persists the report for report.Library atomically.
	Save(ctx context.Context, report BackupReport) error
}

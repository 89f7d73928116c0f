package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/ibmi-tools/savelib/internal/ports"
)

// ReportFileStore implements ports.ReportStore using one JSON file per
// library under a state directory.
type ReportFileStore struct {
	dir string
}

// NewReportFileStore creates a ReportFileStore for the given directory.
func NewReportFileStore(dir string) *ReportFileStore {
	return &ReportFileStore{dir: dir}
}

// Load retrieves the last saved report for a library.
// Returns a zero report and nil error if no report file exists.
func (r *ReportFileStore) Load(ctx context.Context, library string) (ports.BackupReport, error) {
	data, err := os.ReadFile(r.path(library))
	if err != nil {
		if os.IsNotExist(err) {
			return ports.BackupReport{}, nil
		}
		return ports.BackupReport{}, err
	}

	var report ports.BackupReport
	if err := json.Unmarshal(data, &report); err != nil {
		return ports.BackupReport{}, err
	}
	return report, nil
}

// Save persists the report atomically.
// Uses atomic write (write to temp file, then rename) to prevent corruption.
func (r *ReportFileStore) Save(ctx context.Context, report ports.BackupReport) error {
	if err := os.MkdirAll(r.dir, 0o700); err != nil {
		return err
	}

	path := r.path(report.Library)
	tmp := path + ".tmp"

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}

// path returns the report file path for a library.
func (r *ReportFileStore) path(library string) string {
	return filepath.Join(r.dir, strings.ToUpper(library)+".json")
}

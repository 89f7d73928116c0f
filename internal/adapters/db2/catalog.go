package db2

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ibmi-tools/savelib/internal/domain"
	"github.com/ibmi-tools/savelib/pkg/log"
)

// Catalog answers read-only metadata queries about libraries and their
// objects. It shares the Session's command connection; all queries are
// single round trips with no compensation logic.
type Catalog struct {
	db     *sql.DB
	logger log.Logger
}

// NewCatalog creates a Catalog over an existing database handle.
func NewCatalog(db *sql.DB, logger log.Logger) *Catalog {
	return &Catalog{db: db, logger: logger}
}

// LibraryInfo returns the single-row summary for the named library.
// Returns domain.ErrLibraryNotFound when the catalog has no row for it.
func (c *Catalog) LibraryInfo(ctx context.Context, library string) (LibrarySummary, error) {
	lib, err := domain.NewIdentifier(library)
	if err != nil {
		return LibrarySummary{}, err
	}

	query := fmt.Sprintf("SELECT * FROM TABLE(QSYS2.LIBRARY_INFO(upper('%s')))", lib)
	c.logger.Debug("querying library info", log.String("library", lib.String()))

	var summary LibrarySummary
	err = c.db.QueryRowContext(ctx, query).Scan(summary.fields()...)
	if err == sql.ErrNoRows {
		return LibrarySummary{}, fmt.Errorf("%w: %s", domain.ErrLibraryNotFound, lib)
	}
	if err != nil {
		return LibrarySummary{}, fmt.Errorf("library info for %s: %w", lib, err)
	}
	return summary, nil
}

// Objects lists every object in the named library via OBJECT_STATISTICS.
// An empty slice with a nil error means the library holds no objects.
func (c *Catalog) Objects(ctx context.Context, library string) ([]ObjectRecord, error) {
	lib, err := domain.NewIdentifier(library)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT * FROM TABLE(QSYS2.OBJECT_STATISTICS('%s', '*ALL')) AS X", lib)
	c.logger.Debug("querying objects", log.String("library", lib.String()))

	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("object statistics for %s: %w", lib, err)
	}
	defer rows.Close()

	var records []ObjectRecord
	for rows.Next() {
		var r ObjectRecord
		if err := rows.Scan(r.fields()...); err != nil {
			return nil, fmt.Errorf("scan object row: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("object statistics for %s: %w", lib, err)
	}
	return records, nil
}

// Members lists the source physical file members of the named library
// via SYSMEMBERSTAT, ordered by member name.
func (c *Catalog) Members(ctx context.Context, library string) ([]MemberRecord, error) {
	lib, err := domain.NewIdentifier(library)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(
		"SELECT * FROM QSYS2.SYSMEMBERSTAT WHERE SYSTEM_TABLE_SCHEMA = '%s' AND SOURCE_TYPE IS NOT NULL ORDER BY SYSTEM_TABLE_MEMBER",
		lib)
	c.logger.Debug("querying members", log.String("library", lib.String()))

	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("member statistics for %s: %w", lib, err)
	}
	defer rows.Close()

	var records []MemberRecord
	for rows.Next() {
		var r MemberRecord
		if err := rows.Scan(r.fields()...); err != nil {
			return nil, fmt.Errorf("scan member row: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("member statistics for %s: %w", lib, err)
	}
	return records, nil
}

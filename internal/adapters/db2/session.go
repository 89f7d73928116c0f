// Package db2 implements the command channel and catalog queries against
// Db2 for i over ODBC.
//
// CL commands are dispatched through QSYS2.QCMDEXC on a single shared
// connection. Commit and Rollback run as plain SQL statements; they are
// advisory over the connection, because a CL command that already ran is
// not undone by a rollback.
package db2

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/alexbrainman/odbc" // registers the "odbc" driver

	"github.com/ibmi-tools/savelib/internal/domain"
	"github.com/ibmi-tools/savelib/pkg/log"
)

// qcmdexc is the parameterized call that runs one CL command.
// The command text is the only argument; it is never concatenated into
// the SQL statement itself.
const qcmdexc = "CALL QSYS2.QCMDEXC(?)"

// Session is the long-lived command connection shared by every step of
// one orchestration. It implements ports.SessionCloser.
type Session struct {
	db     *sql.DB
	owned  bool
	logger log.Logger
}

// Open connects to the host over ODBC and returns an owning Session.
// The DSN mirrors the usual Db2-for-i connection string:
// DRIVER=...;SYSTEM=...;UID=...;PWD=...;
//
// The connection pool is pinned to a single connection so that all steps
// of an orchestration share one command connection, serially.
func Open(driver, system, user, password string, logger log.Logger) (*Session, error) {
	dsn := fmt.Sprintf("DRIVER=%s;SYSTEM=%s;UID=%s;PWD=%s;", driver, system, user, password)
	db, err := sql.Open("odbc", dsn)
	if err != nil {
		return nil, fmt.Errorf("open command connection: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connect to %s: %w", system, err)
	}
	logger.Info("command connection established", log.String("system", system), log.String("user", user))
	return &Session{db: db, owned: true, logger: logger}, nil
}

// NewSession wraps an externally-owned database handle. Close is a no-op
// for a borrowed handle; the opener remains responsible for it.
func NewSession(db *sql.DB, logger log.Logger) *Session {
	return &Session{db: db, logger: logger}
}

// Execute dispatches exactly one CL command through QCMDEXC.
func (s *Session) Execute(ctx context.Context, command string) error {
	if command == "" {
		return fmt.Errorf("%w: empty command text", domain.ErrCommandFailed)
	}
	s.logger.Debug("executing command", log.String("command", command))
	if _, err := s.db.ExecContext(ctx, qcmdexc, command); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrCommandFailed, err)
	}
	return nil
}

// Commit finalizes the connection transaction.
func (s *Session) Commit(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "COMMIT"); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Rollback abandons the connection transaction.
func (s *Session) Rollback(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "ROLLBACK"); err != nil {
		return fmt.Errorf("rollback: %w", err)
	}
	return nil
}

// Close releases the connection when this Session owns it.
func (s *Session) Close() error {
	if !s.owned {
		return nil
	}
	return s.db.Close()
}

// DB exposes the underlying handle so the catalog can share the
// connection.
func (s *Session) DB() *sql.DB {
	return s.db
}

package ports

import "context"

// CommandRunner executes a single CL command on the host's command
// execution facility. The command text must be fully formed and
// validated by the caller; exactly one command is dispatched per call.
type CommandRunner interface {
	// Execute dispatches one CL command. A nil return means the host
	// accepted and ran the command; any error means the step is
	// not-committed and the caller must treat it as such.
	Execute(ctx context.Context, command string) error
}

// Session is the long-lived command connection shared by all steps of
// one orchestration. Commit and Rollback are advisory bookkeeping over
// the connection: CL commands are not implicitly transactional, so a
// rollback does not undo a partially-applied command on the host.
//
// A Session is not safe for concurrent orchestrations. Run one
// orchestration at a time per session; coordination is the caller's
// obligation, not an internal lock.
type Session interface {
	CommandRunner

	// Commit finalizes the connection transaction after a successful run.
	Commit(ctx context.Context) error

	// Rollback abandons the connection transaction after a failed command.
	Rollback(ctx context.Context) error
}

// SessionCloser is a Session whose lifecycle is owned by the holder.
// The orchestrator never closes a session it merely borrows; only the
// opener calls Close.
type SessionCloser interface {
	Session

	// Close releases the underlying connection.
	Close() error
}

package domain

import "errors"

// Domain errors represent error conditions in the savelib domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrInvalidIdentifier is returned when a library or object name is
	// empty, longer than ten characters, or contains characters the host
	// would not accept in an object name.
	ErrInvalidIdentifier = errors.New("savelib: invalid identifier")

	// ErrInvalidDescription is returned when a save-file description
	// cannot be safely embedded into command text.
	ErrInvalidDescription = errors.New("savelib: invalid description")

	// ErrMissingPath is returned when a transfer is requested without both
	// the remote and local directory.
	ErrMissingPath = errors.New("savelib: remote and local paths are both required")

	// ErrCommandFailed is returned when the host rejects or fails a CL command.
	ErrCommandFailed = errors.New("savelib: command execution failed")

	// ErrDownloadFailed is returned when the save file could not be
	// downloaded. Prior remote commands are not rolled back.
	ErrDownloadFailed = errors.New("savelib: download did not succeed")

	// ErrCleanupFailed is returned when the save file could not be removed
	// from the host after a successful transfer. The remote artifact may
	// still exist.
	ErrCleanupFailed = errors.New("savelib: save file was not successfully removed")

	// ErrLibraryNotFound is returned when a catalog query finds no data
	// for the named library.
	ErrLibraryNotFound = errors.New("savelib: no data found for library")
)

// Transfer errors classify failures of the SFTP download step so the
// caller can tell an authentication problem from a missing file.
var (
	// ErrAuthenticationFailed is returned when the SSH handshake rejects
	// the supplied credentials.
	ErrAuthenticationFailed = errors.New("savelib: authentication failed")

	// ErrProtocolError is returned for SSH or SFTP failures that are not
	// authentication or missing-file conditions.
	ErrProtocolError = errors.New("savelib: ssh protocol error")

	// ErrRemoteFileNotFound is returned when the remote stream file does
	// not exist at the expected path.
	ErrRemoteFileNotFound = errors.New("savelib: file not found on remote host")
)

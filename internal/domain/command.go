package domain

import (
	"fmt"
	"strings"
)

// DefaultDescription is the TEXT() placeholder used when the caller does
// not describe the save file.
const DefaultDescription = "A SaveFile from iLibrary"

// DefaultTargetRelease is the TGTRLS() sentinel for "the release this
// system is running".
const DefaultTargetRelease = "*CURRENT"

// maxDescriptionLen is the host limit for the TEXT() attribute.
const maxDescriptionLen = 50

// CreateSaveFileCommand returns the CRTSAVF command that creates the
// save-file container name in library lib.
func CreateSaveFileCommand(lib, name Identifier, description string) (string, error) {
	if description == "" {
		description = DefaultDescription
	}
	quoted, err := quoteText(description)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("CRTSAVF FILE(%s/%s) TEXT(%s)", lib, name, quoted), nil
}

// SaveLibraryCommand returns the SAVLIB command that serializes library
// lib into the save file toLib/name for the given target release.
func SaveLibraryCommand(lib, toLib, name Identifier, version string) (string, error) {
	if version == "" {
		version = DefaultTargetRelease
	}
	if err := checkReleaseTag(version); err != nil {
		return "", err
	}
	return fmt.Sprintf("SAVLIB LIB(%s) DEV(*SAVF) SAVF(%s/%s) TGTRLS(%s)",
		lib, toLib, name, version), nil
}

// CopyToStreamCommand returns the CPYTOSTMF command that converts the
// save file lib/name into a flat stream file at remotePath. The member
// path follows the fixed /QSYS.LIB object-path convention.
func CopyToStreamCommand(lib, name Identifier, remotePath string) (string, error) {
	if err := checkStreamPath(remotePath); err != nil {
		return "", err
	}
	return fmt.Sprintf(
		"CPYTOSTMF FROMMBR('/QSYS.LIB/%s.LIB/%s.FILE') TOSTMF('%s') STMFOPT(*REPLACE)",
		lib, name, remotePath), nil
}

// RemoveStreamFileCommand returns the QSH command that deletes the
// temporary stream file at remotePath.
func RemoveStreamFileCommand(remotePath string) (string, error) {
	if err := checkStreamPath(remotePath); err != nil {
		return "", err
	}
	return fmt.Sprintf("QSH CMD('rm -r %s')", remotePath), nil
}

// DeleteFileCommand returns the DLTF command that removes the save-file
// container name from library lib.
func DeleteFileCommand(lib, name Identifier) string {
	return fmt.Sprintf("DLTF FILE(%s/%s)", lib, name)
}

// quoteText wraps free text in a CL string literal, doubling embedded
// apostrophes. Control characters are rejected rather than escaped.
func quoteText(text string) (string, error) {
	if len(text) > maxDescriptionLen {
		return "", fmt.Errorf("%w: %d characters, maximum is %d",
			ErrInvalidDescription, len(text), maxDescriptionLen)
	}
	for _, r := range text {
		if r < 0x20 || r == 0x7f {
			return "", fmt.Errorf("%w: control character %q", ErrInvalidDescription, r)
		}
	}
	return "'" + strings.ReplaceAll(text, "'", "''") + "'", nil
}

// checkReleaseTag validates a TGTRLS() value such as *CURRENT, *PRV or
// V7R4M0. Tags are interpolated unquoted, so the character set is strict.
func checkReleaseTag(version string) error {
	for _, r := range version {
		if !isObjectNameRune(r) && r != '*' {
			return fmt.Errorf("%w: release tag %q", ErrInvalidIdentifier, version)
		}
	}
	return nil
}

// checkStreamPath validates an IFS path before it is embedded into
// quoted command text. Apostrophes, whitespace and control characters
// would change the shape of the CPYTOSTMF or QSH command, so they are
// rejected outright.
func checkStreamPath(path string) error {
	if path == "" {
		return fmt.Errorf("%w: stream file path is required", ErrMissingPath)
	}
	for _, r := range path {
		if r <= 0x20 || r == 0x7f || r == '\'' || r == '\\' {
			return fmt.Errorf("%w: path %q contains unsafe character %q",
				ErrMissingPath, path, r)
		}
	}
	return nil
}

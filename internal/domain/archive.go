package domain

import (
	"fmt"
	"strings"
)

// DefaultTransferPort is the SSH port used when none is configured.
// Hosts in this environment expose SFTP on 2222, not the conventional 22.
const DefaultTransferPort = 2222

// SaveFileSuffix is appended to the uppercased save-file name to form the
// stream-file name on both ends of the transfer.
const SaveFileSuffix = ".savf"

// SaveRequest describes one backup orchestration as the caller states it.
// Only Library and SaveFile are required; everything else has the
// documented default. Use Normalize to obtain a validated SaveJob.
type SaveRequest struct {
	// Library is the library to save.
	Library string

	// SaveFile is the name of the save-file container to create.
	SaveFile string

	// ToLibrary is the library that will own the save file.
	// Defaults to Library.
	ToLibrary string

	// Description is the TEXT() attribute of the save file.
	// Defaults to DefaultDescription.
	Description string

	// Version is the TGTRLS() target release. Defaults to *CURRENT.
	Version string

	// Download requests the transfer of the save file to local storage.
	Download bool

	// RemoteDir is the IFS directory for the temporary stream file.
	// Required when Download is set.
	RemoteDir string

	// LocalDir is the local directory the save file is downloaded to.
	// Required when Download is set.
	LocalDir string

	// Port is the SSH port for the transfer. Defaults to DefaultTransferPort.
	Port int

	// KeepRemote retains the save file on the host after a successful
	// download. By default the save file is deleted once transferred.
	KeepRemote bool
}

// SaveJob is a validated, normalized SaveRequest. Identifiers are
// uppercase, defaults are applied, and both transfer paths are fully
// computed. A SaveJob is only constructed through Normalize, so the
// orchestrator never re-validates.
type SaveJob struct {
	Library     Identifier
	ToLibrary   Identifier
	SaveFile    Identifier
	Description string
	Version     string

	Download   bool
	RemotePath string // full IFS path of the temporary stream file
	LocalPath  string // full local destination path
	Port       int
	KeepRemote bool
}

// Normalize validates the request and applies the default policy:
// ToLibrary falls back to Library, Version to *CURRENT, Port to 2222,
// and a trailing slash on either directory is stripped exactly once.
// Validation failures are reported before any remote call is made.
func (r SaveRequest) Normalize() (SaveJob, error) {
	lib, err := NewIdentifier(r.Library)
	if err != nil {
		return SaveJob{}, fmt.Errorf("library: %w", err)
	}
	savf, err := NewIdentifier(r.SaveFile)
	if err != nil {
		return SaveJob{}, fmt.Errorf("save file: %w", err)
	}

	toLib := lib
	if r.ToLibrary != "" {
		if toLib, err = NewIdentifier(r.ToLibrary); err != nil {
			return SaveJob{}, fmt.Errorf("to-library: %w", err)
		}
	}

	version := r.Version
	if version == "" {
		version = DefaultTargetRelease
	}
	if err := checkReleaseTag(version); err != nil {
		return SaveJob{}, err
	}

	job := SaveJob{
		Library:     lib,
		ToLibrary:   toLib,
		SaveFile:    savf,
		Description: r.Description,
		Version:     version,
		Download:    r.Download,
		Port:        r.Port,
		KeepRemote:  r.KeepRemote,
	}
	if job.Port == 0 {
		job.Port = DefaultTransferPort
	}

	if r.Download {
		if r.RemoteDir == "" {
			return SaveJob{}, fmt.Errorf("%w: remote directory is required for download", ErrMissingPath)
		}
		if r.LocalDir == "" {
			return SaveJob{}, fmt.Errorf("%w: local directory is required for download", ErrMissingPath)
		}
		filename := savf.String() + SaveFileSuffix
		job.RemotePath = strings.TrimSuffix(r.RemoteDir, "/") + "/" + filename
		job.LocalPath = strings.TrimSuffix(r.LocalDir, "/") + "/" + filename
		if err := checkStreamPath(job.RemotePath); err != nil {
			return SaveJob{}, err
		}
	}

	return job, nil
}

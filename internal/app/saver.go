package app

import (
	"context"
	"fmt"

	"github.com/ibmi-tools/savelib/internal/domain"
	"github.com/ibmi-tools/savelib/internal/ports"
	"github.com/ibmi-tools/savelib/pkg/log"
)

// Stage identifies how far an orchestration progressed. Each stage is
// reached only after every earlier stage succeeded.
type Stage string

const (
	StageInit             Stage = "init"
	StageContainerCreated Stage = "container_created"
	StagePopulated        Stage = "populated"
	StageTransferred      Stage = "transferred"
	StageRemoteCleaned    Stage = "remote_cleaned"
	StageDone             Stage = "done"
)

// Result reports the outcome of one orchestration.
type Result struct {
	// Stage is the last stage the orchestration reached. StageDone on
	// success; on failure, the stage during which the failure occurred
	// had not completed.
	Stage Stage

	// Job is the normalized request the orchestration ran with. Zero
	// when validation failed.
	Job domain.SaveJob
}

// Saver sequences the backup workflow: create the save-file container,
// populate it from the library, optionally convert and download it, and
// optionally delete the remote copy afterward.
//
// The command session is borrowed; Saver never closes it. The transfer
// session is ephemeral and fully owned by the download step. One Saver
// runs one orchestration at a time; steps are synchronous and nothing is
// retried.
type Saver struct {
	session    ports.Session
	containers *ContainerManager
	downloader ports.Downloader
	creds      ports.TransferCredentials
	logger     log.Logger
}

// NewSaver creates a Saver over a borrowed session. creds are used only
// when a request asks for a download.
func NewSaver(session ports.Session, downloader ports.Downloader, creds ports.TransferCredentials, logger log.Logger) *Saver {
	return &Saver{
		session:    session,
		containers: NewContainerManager(session, logger),
		downloader: downloader,
		creds:      creds,
		logger:     logger,
	}
}

// Save runs one backup orchestration. Validation failures surface before
// any remote call. Command failures roll back the connection transaction.
// A download failure aborts with domain.ErrDownloadFailed and does not
// roll back the commands that already applied; a post-download container
// cleanup failure aborts with domain.ErrCleanupFailed.
func (s *Saver) Save(ctx context.Context, req domain.SaveRequest) (Result, error) {
	job, err := req.Normalize()
	if err != nil {
		return Result{Stage: StageInit}, err
	}

	result := Result{Stage: StageInit, Job: job}

	// Init -> ContainerCreated
	if err := s.containers.Create(ctx, job.ToLibrary, job.SaveFile, job.Description); err != nil {
		s.logger.Error("save file creation failed",
			log.String("save_file", job.SaveFile.String()),
			log.Err(err))
		return result, err
	}
	result.Stage = StageContainerCreated
	s.logger.Info("save file created",
		log.String("library", job.ToLibrary.String()),
		log.String("save_file", job.SaveFile.String()))

	// ContainerCreated -> Populated
	cmd, err := domain.SaveLibraryCommand(job.Library, job.ToLibrary, job.SaveFile, job.Version)
	if err != nil {
		return result, err
	}
	if err := s.session.Execute(ctx, cmd); err != nil {
		s.rollback(ctx)
		// The created container is left behind; reap it manually.
		s.logger.Error("library save failed, container not cleaned up",
			log.String("library", job.Library.String()),
			log.String("save_file", job.SaveFile.String()),
			log.Err(err))
		return result, err
	}
	result.Stage = StagePopulated
	s.logger.Info("library saved",
		log.String("library", job.Library.String()),
		log.String("save_file", job.SaveFile.String()))

	if job.Download {
		// Populated -> Transferred
		if err := s.transfer(ctx, job); err != nil {
			return result, err
		}
		result.Stage = StageTransferred

		// Transferred -> RemoteCleaned
		if !job.KeepRemote {
			if err := s.containers.Remove(ctx, job.ToLibrary, job.SaveFile); err != nil {
				return result, fmt.Errorf("%w: %w", domain.ErrCleanupFailed, err)
			}
			result.Stage = StageRemoteCleaned
			s.logger.Info("save file removed from host",
				log.String("library", job.ToLibrary.String()),
				log.String("save_file", job.SaveFile.String()))
		}
	}

	// -> Done
	if err := s.session.Commit(ctx); err != nil {
		return result, err
	}
	result.Stage = StageDone
	return result, nil
}

// transfer converts the save file to a stream file, downloads it, and
// removes the temporary stream file. A failed download aborts without
// rolling back prior commands; a failed temporary-file removal is logged
// and not escalated.
func (s *Saver) transfer(ctx context.Context, job domain.SaveJob) error {
	cmd, err := domain.CopyToStreamCommand(job.ToLibrary, job.SaveFile, job.RemotePath)
	if err != nil {
		return err
	}
	if err := s.session.Execute(ctx, cmd); err != nil {
		s.rollback(ctx)
		return err
	}

	creds := s.creds
	creds.Port = job.Port
	if err := s.downloader.Download(creds, job.RemotePath, job.LocalPath); err != nil {
		// The converted stream file stays behind on the host.
		s.logger.Error("download failed, stream file not cleaned up",
			log.String("remote", job.RemotePath),
			log.Err(err))
		return fmt.Errorf("%w: %w", domain.ErrDownloadFailed, err)
	}
	s.logger.Info("save file downloaded", log.String("local", job.LocalPath))

	rmCmd, err := domain.RemoveStreamFileCommand(job.RemotePath)
	if err != nil {
		return err
	}
	if err := s.session.Execute(ctx, rmCmd); err != nil {
		// Deliberately not escalated: the download succeeded and the
		// leftover stream file only costs disk on the host.
		s.logger.Warn("temporary stream file removal failed",
			log.String("remote", job.RemotePath),
			log.Err(err))
	}
	return nil
}

func (s *Saver) rollback(ctx context.Context) {
	if err := s.session.Rollback(ctx); err != nil {
		s.logger.Warn("rollback failed", log.Err(err))
	}
}

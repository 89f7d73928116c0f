package main

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ibmi-tools/savelib"
	"github.com/ibmi-tools/savelib/internal/adapters/fs"
	"github.com/ibmi-tools/savelib/internal/app"
	"github.com/ibmi-tools/savelib/internal/ports"
)

func newSaveCmd() *cobra.Command {
	var (
		toLibrary   string
		description string
		version     string
		download    bool
		remoteDir   string
		localDir    string
		keepRemote  bool
	)

	cmd := &cobra.Command{
		Use:   "save <library> <save-file>",
		Short: "Save a library into a save file, optionally downloading it",
		Long: strings.TrimSpace(`
Save a library into a save file on the host.

With --download, the save file is converted to a stream file, copied to
the local directory over SFTP, and the temporary stream file is removed.
Unless --keep-remote is given, the save file itself is then deleted from
the host. The outcome is recorded as a JSON report under the state
directory.`),
		Example: strings.TrimSpace(`
  savelib save PAYROLL PAYBAK
  savelib save PAYROLL PAYBAK --download --remote-dir /home/backup --local-dir /var/backups
  savelib save PAYROLL PAYBAK --to-library BACKUPS --version V7R4M0`),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			started := time.Now()
			result, err := client.SaveLibrary(cmd.Context(), savelib.SaveRequest{
				Library:     args[0],
				SaveFile:    args[1],
				ToLibrary:   toLibrary,
				Description: description,
				Version:     version,
				Download:    download,
				RemoteDir:   remoteDir,
				LocalDir:    localDir,
				Port:        cfg.Port,
				KeepRemote:  keepRemote,
			})

			writeReport(cmd.Context(), args, result, started, err)

			if err != nil {
				return err
			}
			logger.Info().
				Str("library", result.Job.Library.String()).
				Str("save_file", result.Job.SaveFile.String()).
				Msg("library saved successfully")
			return nil
		},
	}

	cmd.Flags().StringVar(&toLibrary, "to-library", "", "library that will own the save file (default: the saved library)")
	cmd.Flags().StringVar(&description, "description", "", "TEXT() description for the save file")
	cmd.Flags().StringVar(&version, "version", "", "TGTRLS() target release (default *CURRENT)")
	cmd.Flags().BoolVar(&download, "download", false, "download the save file to the local directory")
	cmd.Flags().StringVar(&remoteDir, "remote-dir", "", "IFS directory for the temporary stream file")
	cmd.Flags().StringVar(&localDir, "local-dir", "", "local directory for the downloaded save file")
	cmd.Flags().BoolVar(&keepRemote, "keep-remote", false, "retain the save file on the host after download")

	return cmd
}

// writeReport persists the orchestration outcome. Report failures are
// logged, never escalated; the backup itself already succeeded or failed
// on its own terms.
func writeReport(ctx context.Context, args []string, result savelib.SaveResult, started time.Time, saveErr error) {
	if cfg.StateDir == "" {
		return
	}

	downloaded := result.Job.Download &&
		(result.Stage == app.StageTransferred ||
			result.Stage == app.StageRemoteCleaned ||
			result.Stage == app.StageDone)
	report := ports.BackupReport{
		Library:    strings.ToUpper(args[0]),
		SaveFile:   strings.ToUpper(args[1]),
		Downloaded: downloaded,
		LocalPath:  result.Job.LocalPath,
		StartedAt:  started,
		Duration:   time.Since(started).String(),
		Succeeded:  saveErr == nil,
	}
	if saveErr != nil {
		report.Error = saveErr.Error()
	}

	store := fs.NewReportFileStore(cfg.StateDir)
	if err := store.Save(ctx, report); err != nil {
		logger.Warn().Err(err).Msg("failed to write backup report")
	}
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <library> <save-file>",
		Short: "Delete a save file from the host",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			if err := client.RemoveSaveFile(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			logger.Info().
				Str("library", strings.ToUpper(args[0])).
				Str("save_file", strings.ToUpper(args[1])).
				Msg("save file removed")
			return nil
		},
	}
}

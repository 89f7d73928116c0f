package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/ibmi-tools/savelib/internal/domain"
	"github.com/ibmi-tools/savelib/internal/ports"
	"github.com/ibmi-tools/savelib/pkg/log"
)

// fakeSession records every command and can be told to fail a specific
// command by substring match.
type fakeSession struct {
	commands  []string
	failOn    string
	failErr   error
	commits   int
	rollbacks int
}

func (s *fakeSession) Execute(_ context.Context, command string) error {
	s.commands = append(s.commands, command)
	if s.failOn != "" && strings.Contains(command, s.failOn) {
		if s.failErr != nil {
			return s.failErr
		}
		return fmt.Errorf("%w: %s", domain.ErrCommandFailed, command)
	}
	return nil
}

func (s *fakeSession) Commit(context.Context) error   { s.commits++; return nil }
func (s *fakeSession) Rollback(context.Context) error { s.rollbacks++; return nil }

type fakeDownloader struct {
	calls  int
	remote string
	local  string
	port   int
	err    error
}

func (d *fakeDownloader) Download(creds ports.TransferCredentials, remotePath, localPath string) error {
	d.calls++
	d.remote = remotePath
	d.local = localPath
	d.port = creds.Port
	return d.err
}

func newTestSaver(session ports.Session, dl ports.Downloader) *Saver {
	return NewSaver(session, dl, ports.TransferCredentials{
		Host: "ibmi.example.com",
		User: "backup",
	}, log.NewNoopLogger())
}

func TestSaveWithoutDownload(t *testing.T) {
	session := &fakeSession{}
	dl := &fakeDownloader{}
	saver := newTestSaver(session, dl)

	result, err := saver.Save(context.Background(), domain.SaveRequest{
		Library:  "akansha231",
		SaveFile: "testfi1e",
	})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if result.Stage != StageDone {
		t.Errorf("Stage = %v, want %v", result.Stage, StageDone)
	}

	want := []string{
		"CRTSAVF FILE(AKANSHA231/TESTFI1E) TEXT('A SaveFile from iLibrary')",
		"SAVLIB LIB(AKANSHA231) DEV(*SAVF) SAVF(AKANSHA231/TESTFI1E) TGTRLS(*CURRENT)",
	}
	if len(session.commands) != len(want) {
		t.Fatalf("commands = %v, want %v", session.commands, want)
	}
	for i := range want {
		if session.commands[i] != want[i] {
			t.Errorf("command[%d] = %q, want %q", i, session.commands[i], want[i])
		}
	}
	if dl.calls != 0 {
		t.Errorf("downloader called %d times, want 0", dl.calls)
	}
	if session.rollbacks != 0 {
		t.Errorf("rollbacks = %d, want 0", session.rollbacks)
	}
}

func TestSaveWithDownload(t *testing.T) {
	session := &fakeSession{}
	dl := &fakeDownloader{}
	saver := newTestSaver(session, dl)

	result, err := saver.Save(context.Background(), domain.SaveRequest{
		Library:   "AKANSHA231",
		SaveFile:  "TESTFI1E",
		Download:  true,
		RemoteDir: "/home/user/",
		LocalDir:  "/var/backups",
	})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if result.Stage != StageDone {
		t.Errorf("Stage = %v, want %v", result.Stage, StageDone)
	}

	want := []string{
		"CRTSAVF FILE(AKANSHA231/TESTFI1E) TEXT('A SaveFile from iLibrary')",
		"SAVLIB LIB(AKANSHA231) DEV(*SAVF) SAVF(AKANSHA231/TESTFI1E) TGTRLS(*CURRENT)",
		"CPYTOSTMF FROMMBR('/QSYS.LIB/AKANSHA231.LIB/TESTFI1E.FILE') TOSTMF('/home/user/TESTFI1E.savf') STMFOPT(*REPLACE)",
		"QSH CMD('rm -r /home/user/TESTFI1E.savf')",
		"DLTF FILE(AKANSHA231/TESTFI1E)",
	}
	if len(session.commands) != len(want) {
		t.Fatalf("commands = %v, want %v", session.commands, want)
	}
	for i := range want {
		if session.commands[i] != want[i] {
			t.Errorf("command[%d] = %q, want %q", i, session.commands[i], want[i])
		}
	}

	if dl.calls != 1 {
		t.Fatalf("downloader called %d times, want 1", dl.calls)
	}
	if dl.remote != "/home/user/TESTFI1E.savf" {
		t.Errorf("remote path = %q, want /home/user/TESTFI1E.savf", dl.remote)
	}
	if dl.local != "/var/backups/TESTFI1E.savf" {
		t.Errorf("local path = %q, want /var/backups/TESTFI1E.savf", dl.local)
	}
	if dl.port != domain.DefaultTransferPort {
		t.Errorf("port = %d, want %d", dl.port, domain.DefaultTransferPort)
	}
}

func TestSaveKeepRemote(t *testing.T) {
	session := &fakeSession{}
	saver := newTestSaver(session, &fakeDownloader{})

	result, err := saver.Save(context.Background(), domain.SaveRequest{
		Library:    "LIB",
		SaveFile:   "SAVF",
		Download:   true,
		RemoteDir:  "/home/user",
		LocalDir:   "/var/backups",
		KeepRemote: true,
	})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if result.Stage != StageDone {
		t.Errorf("Stage = %v, want %v", result.Stage, StageDone)
	}
	for _, cmd := range session.commands {
		if strings.Contains(cmd, "DLTF") {
			t.Errorf("save file deleted despite KeepRemote: %q", cmd)
		}
	}
}

func TestSaveValidationFailure(t *testing.T) {
	session := &fakeSession{}
	saver := newTestSaver(session, &fakeDownloader{})

	result, err := saver.Save(context.Background(), domain.SaveRequest{
		Library:  "THISNAMEISTOOLONG",
		SaveFile: "SAVF",
	})
	if !errors.Is(err, domain.ErrInvalidIdentifier) {
		t.Errorf("Save() error = %v, want ErrInvalidIdentifier", err)
	}
	if result.Stage != StageInit {
		t.Errorf("Stage = %v, want %v", result.Stage, StageInit)
	}
	if len(session.commands) != 0 {
		t.Errorf("commands issued before validation: %v", session.commands)
	}
}

func TestSaveCreateFailure(t *testing.T) {
	session := &fakeSession{failOn: "CRTSAVF"}
	dl := &fakeDownloader{}
	saver := newTestSaver(session, dl)

	result, err := saver.Save(context.Background(), domain.SaveRequest{
		Library:  "LIB",
		SaveFile: "SAVF",
	})
	if !errors.Is(err, domain.ErrCommandFailed) {
		t.Errorf("Save() error = %v, want ErrCommandFailed", err)
	}
	if result.Stage != StageInit {
		t.Errorf("Stage = %v, want %v", result.Stage, StageInit)
	}
	if len(session.commands) != 1 {
		t.Errorf("commands = %v, want only the failed CRTSAVF", session.commands)
	}
	if session.rollbacks != 1 {
		t.Errorf("rollbacks = %d, want 1", session.rollbacks)
	}
	if dl.calls != 0 {
		t.Errorf("downloader called %d times, want 0", dl.calls)
	}
}

func TestSavePopulateFailure(t *testing.T) {
	session := &fakeSession{failOn: "SAVLIB"}
	dl := &fakeDownloader{}
	saver := newTestSaver(session, dl)

	result, err := saver.Save(context.Background(), domain.SaveRequest{
		Library:   "LIB",
		SaveFile:  "SAVF",
		Download:  true,
		RemoteDir: "/home/user",
		LocalDir:  "/var/backups",
	})
	if !errors.Is(err, domain.ErrCommandFailed) {
		t.Errorf("Save() error = %v, want ErrCommandFailed", err)
	}
	if result.Stage != StageContainerCreated {
		t.Errorf("Stage = %v, want %v", result.Stage, StageContainerCreated)
	}
	if session.rollbacks != 1 {
		t.Errorf("rollbacks = %d, want 1", session.rollbacks)
	}
	if dl.calls != 0 {
		t.Errorf("downloader called %d times after failed save, want 0", dl.calls)
	}
}

func TestSaveDownloadFailure(t *testing.T) {
	session := &fakeSession{}
	dl := &fakeDownloader{err: domain.ErrAuthenticationFailed}
	saver := newTestSaver(session, dl)

	result, err := saver.Save(context.Background(), domain.SaveRequest{
		Library:   "LIB",
		SaveFile:  "SAVF",
		Download:  true,
		RemoteDir: "/home/user",
		LocalDir:  "/var/backups",
	})
	if !errors.Is(err, domain.ErrDownloadFailed) {
		t.Errorf("Save() error = %v, want ErrDownloadFailed", err)
	}
	if !errors.Is(err, domain.ErrAuthenticationFailed) {
		t.Errorf("Save() error = %v, want wrapped ErrAuthenticationFailed", err)
	}
	if result.Stage != StagePopulated {
		t.Errorf("Stage = %v, want %v", result.Stage, StagePopulated)
	}

	// The failed download aborts: no stream-file removal, no container
	// delete, and no rollback of the commands that already applied.
	for _, cmd := range session.commands {
		if strings.Contains(cmd, "QSH") || strings.Contains(cmd, "DLTF") {
			t.Errorf("unexpected command after failed download: %q", cmd)
		}
	}
	if session.rollbacks != 0 {
		t.Errorf("rollbacks = %d, want 0 after download failure", session.rollbacks)
	}
}

func TestSaveTempRemovalFailureIsNotFatal(t *testing.T) {
	session := &fakeSession{failOn: "QSH"}
	saver := newTestSaver(session, &fakeDownloader{})

	result, err := saver.Save(context.Background(), domain.SaveRequest{
		Library:   "LIB",
		SaveFile:  "SAVF",
		Download:  true,
		RemoteDir: "/home/user",
		LocalDir:  "/var/backups",
	})
	if err != nil {
		t.Fatalf("Save() error = %v, want success despite failed rm", err)
	}
	if result.Stage != StageDone {
		t.Errorf("Stage = %v, want %v", result.Stage, StageDone)
	}

	// The container delete still runs.
	var deleted bool
	for _, cmd := range session.commands {
		if strings.Contains(cmd, "DLTF") {
			deleted = true
		}
	}
	if !deleted {
		t.Error("DLTF not issued after failed stream-file removal")
	}
}

func TestSaveCleanupFailure(t *testing.T) {
	session := &fakeSession{failOn: "DLTF"}
	saver := newTestSaver(session, &fakeDownloader{})

	result, err := saver.Save(context.Background(), domain.SaveRequest{
		Library:   "LIB",
		SaveFile:  "SAVF",
		Download:  true,
		RemoteDir: "/home/user",
		LocalDir:  "/var/backups",
	})
	if !errors.Is(err, domain.ErrCleanupFailed) {
		t.Errorf("Save() error = %v, want ErrCleanupFailed", err)
	}
	if result.Stage != StageTransferred {
		t.Errorf("Stage = %v, want %v", result.Stage, StageTransferred)
	}
}

func TestContainerManagerRemove(t *testing.T) {
	session := &fakeSession{}
	mgr := NewContainerManager(session, log.NewNoopLogger())

	if err := mgr.Remove(context.Background(), "AKANSHA231", "TESTFI1E"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if len(session.commands) != 1 || session.commands[0] != "DLTF FILE(AKANSHA231/TESTFI1E)" {
		t.Errorf("commands = %v, want the single DLTF", session.commands)
	}
	if session.commits != 1 {
		t.Errorf("commits = %d, want 1", session.commits)
	}

	failing := &fakeSession{failOn: "DLTF"}
	mgr = NewContainerManager(failing, log.NewNoopLogger())
	if err := mgr.Remove(context.Background(), "AKANSHA231", "TESTFI1E"); !errors.Is(err, domain.ErrCommandFailed) {
		t.Errorf("Remove() error = %v, want ErrCommandFailed", err)
	}
	if failing.rollbacks != 1 {
		t.Errorf("rollbacks = %d, want 1", failing.rollbacks)
	}
}

// Package sftp implements the secure transfer session over SSH.
//
// One Download call opens one authenticated session, copies exactly one
// remote file to a local path, and releases the SFTP sub-channel and the
// SSH connection on every exit path before returning.
package sftp

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"

	"github.com/ibmi-tools/savelib/internal/domain"
	"github.com/ibmi-tools/savelib/internal/ports"
	"github.com/ibmi-tools/savelib/pkg/log"
)

// Downloader implements ports.Downloader over SSH/SFTP.
type Downloader struct {
	logger log.Logger
}

// NewDownloader creates a new SFTP downloader.
func NewDownloader(logger log.Logger) *Downloader {
	return &Downloader{logger: logger}
}

// Download copies the single remote file at remotePath to localPath.
// Failures are classified as domain.ErrAuthenticationFailed,
// domain.ErrRemoteFileNotFound, or domain.ErrProtocolError so the caller
// can decide how to react; the orchestrator always aborts.
func (d *Downloader) Download(creds ports.TransferCredentials, remotePath, localPath string) error {
	if remotePath == "" {
		return fmt.Errorf("%w: remote path is required", domain.ErrMissingPath)
	}
	if localPath == "" {
		return fmt.Errorf("%w: local path is required", domain.ErrMissingPath)
	}
	port := creds.Port
	if port == 0 {
		port = domain.DefaultTransferPort
	}

	addr := net.JoinHostPort(creds.Host, strconv.Itoa(port))
	cfg := &ssh.ClientConfig{
		User: creds.User,
		Auth: []ssh.AuthMethod{ssh.Password(creds.Secret)},
		// Host keys are accepted blindly, matching the host-environment
		// policy this tool inherits. Pinning is a caller concern.
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
	}

	d.logger.Debug("opening transfer session", log.String("addr", addr), log.String("user", creds.User))

	conn, err := ssh.Dial("tcp", addr, cfg)
	if err != nil {
		if isAuthFailure(err) {
			return fmt.Errorf("%w: %v", domain.ErrAuthenticationFailed, err)
		}
		return fmt.Errorf("%w: dial %s: %v", domain.ErrProtocolError, addr, err)
	}
	defer conn.Close()

	client, err := sftp.NewClient(conn)
	if err != nil {
		return fmt.Errorf("%w: open sftp channel: %v", domain.ErrProtocolError, err)
	}
	defer client.Close()

	src, err := client.Open(remotePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", domain.ErrRemoteFileNotFound, remotePath)
		}
		return fmt.Errorf("%w: open %s: %v", domain.ErrProtocolError, remotePath, err)
	}
	defer src.Close()

	dst, err := os.Create(localPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", localPath, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return fmt.Errorf("%w: copy %s: %v", domain.ErrProtocolError, remotePath, err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("close %s: %w", localPath, err)
	}

	d.logger.Info("file downloaded",
		log.String("remote", remotePath),
		log.String("local", localPath))
	return nil
}

// isAuthFailure reports whether an SSH dial error is a credential
// rejection. The client side of x/crypto/ssh exposes no typed error for
// this, so the handshake message is matched.
func isAuthFailure(err error) bool {
	return strings.Contains(err.Error(), "unable to authenticate")
}

package sftp

import (
	"errors"
	"testing"

	"github.com/ibmi-tools/savelib/internal/domain"
	"github.com/ibmi-tools/savelib/internal/ports"
	"github.com/ibmi-tools/savelib/pkg/log"
)

func TestDownloadMissingPaths(t *testing.T) {
	d := NewDownloader(log.NewNoopLogger())
	creds := ports.TransferCredentials{Host: "ibmi.example.com", User: "backup"}

	if err := d.Download(creds, "", "/tmp/out.savf"); !errors.Is(err, domain.ErrMissingPath) {
		t.Errorf("Download with empty remote path: error = %v, want ErrMissingPath", err)
	}
	if err := d.Download(creds, "/home/user/out.savf", ""); !errors.Is(err, domain.ErrMissingPath) {
		t.Errorf("Download with empty local path: error = %v, want ErrMissingPath", err)
	}
}

func TestIsAuthFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "handshake credential rejection",
			err:  errors.New("ssh: handshake failed: ssh: unable to authenticate, attempted methods [none password], no supported methods remain"),
			want: true,
		},
		{
			name: "connection refused",
			err:  errors.New("dial tcp 10.0.0.1:2222: connect: connection refused"),
			want: false,
		},
		{
			name: "host key mismatch",
			err:  errors.New("ssh: handshake failed: host key mismatch"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isAuthFailure(tt.err); got != tt.want {
				t.Errorf("isAuthFailure(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

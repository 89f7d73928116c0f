package ports

// TransferCredentials carries what the downloader needs to open one
// authenticated session. The command connection's credentials are reused
// for the transfer, but the exchange itself is independent.
type TransferCredentials struct {
	// Host is the target hostname or IP address.
	Host string

	// User is the login username.
	User string

	// Secret is the login password.
	Secret string

	// Port is the SSH port. Hosts in this environment default to 2222.
	Port int
}

// Downloader moves exactly one file from a remote path to a local path
// over an authenticated, encrypted session. Implementations open the
// session, copy the file, and release every resource on every exit path
// before returning. Failures are classified with the domain transfer
// errors so the caller can tell authentication problems, protocol
// failures, and missing files apart.
type Downloader interface {
	Download(creds TransferCredentials, remotePath, localPath string) error
}

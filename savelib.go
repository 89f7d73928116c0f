// Package savelib backs up and inspects libraries on a remote IBM i system.
//
// Example usage:
//
//	client, err := savelib.Connect(savelib.Config{
//	    System:   "as400.example.com",
//	    User:     "backup",
//	    Password: os.Getenv("SAVELIB_PASSWORD"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	_, err = client.SaveLibrary(context.Background(), savelib.SaveRequest{
//	    Library:   "PAYROLL",
//	    SaveFile:  "PAYBAK",
//	    Download:  true,
//	    RemoteDir: "/home/backup",
//	    LocalDir:  "/var/backups",
//	})
package savelib

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ibmi-tools/savelib/internal/adapters/db2"
	sftpAdapter "github.com/ibmi-tools/savelib/internal/adapters/sftp"
	"github.com/ibmi-tools/savelib/internal/app"
	"github.com/ibmi-tools/savelib/internal/domain"
	"github.com/ibmi-tools/savelib/internal/ports"
	"github.com/ibmi-tools/savelib/pkg/log"
)

// SaveRequest describes one backup orchestration.
// Only Library and SaveFile are required; see the field docs for defaults.
type SaveRequest = domain.SaveRequest

// SaveResult reports how far an orchestration progressed.
type SaveResult = app.Result

// LibrarySummary is the single-row library metadata record.
type LibrarySummary = db2.LibrarySummary

// ObjectRecord is one object row of a library listing.
type ObjectRecord = db2.ObjectRecord

// MemberRecord is one source-member row of a library listing.
type MemberRecord = db2.MemberRecord

// Logger is the structured logging interface savelib components accept.
type Logger = log.Logger

// Errors callers are expected to branch on, re-exported from the domain.
var (
	ErrInvalidIdentifier = domain.ErrInvalidIdentifier
	ErrCommandFailed     = domain.ErrCommandFailed
	ErrDownloadFailed    = domain.ErrDownloadFailed
	ErrCleanupFailed     = domain.ErrCleanupFailed
	ErrLibraryNotFound   = domain.ErrLibraryNotFound
)

// Config holds the connection settings for a Client.
type Config struct {
	// System is the hostname of the IBM i system, shared by the command
	// connection and the transfer session.
	System string

	// User and Password authenticate both connections.
	User     string
	Password string

	// Driver is the ODBC driver name. Defaults to the IBM i Access driver.
	Driver string

	// Port is the SSH port for transfers. Defaults to 2222.
	Port int
}

// SetDefaults fills in the defaulted fields.
func (c *Config) SetDefaults() {
	if c.Driver == "" {
		c.Driver = "IBM i Access ODBC Driver"
	}
	if c.Port == 0 {
		c.Port = domain.DefaultTransferPort
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.System == "" {
		return fmt.Errorf("system is required")
	}
	if c.User == "" {
		return fmt.Errorf("user is required")
	}
	if c.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// Option configures optional behavior of a Client.
type Option func(*options)

type options struct {
	logger     log.Logger
	downloader ports.Downloader
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithDownloader sets a custom transfer implementation. Mainly useful
// for tests; the default downloads over SSH/SFTP.
func WithDownloader(d ports.Downloader) Option {
	return func(o *options) {
		o.downloader = d
	}
}

// Client bundles one command connection with the backup orchestrator and
// the catalog queries. A Client runs one orchestration at a time; it is
// not safe for concurrent use.
type Client struct {
	session *db2.Session
	saver   *app.Saver
	catalog *db2.Catalog
	logger  log.Logger
}

// Connect opens a command connection to the host and returns an owning
// Client. Close releases the connection.
func Connect(cfg Config, opts ...Option) (*Client, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := applyOptions(opts)
	session, err := db2.Open(cfg.Driver, cfg.System, cfg.User, cfg.Password, o.logger)
	if err != nil {
		return nil, err
	}
	return newClient(cfg, session, o), nil
}

// NewClient wraps an externally-owned database handle. The caller keeps
// responsibility for closing the handle; Close on the returned Client
// never touches it.
func NewClient(db *sql.DB, cfg Config, opts ...Option) (*Client, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := applyOptions(opts)
	return newClient(cfg, db2.NewSession(db, o.logger), o), nil
}

func applyOptions(opts []Option) options {
	o := options{logger: log.NewNoopLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func newClient(cfg Config, session *db2.Session, o options) *Client {
	downloader := o.downloader
	if downloader == nil {
		downloader = sftpAdapter.NewDownloader(o.logger)
	}
	creds := ports.TransferCredentials{
		Host:   cfg.System,
		User:   cfg.User,
		Secret: cfg.Password,
		Port:   cfg.Port,
	}
	return &Client{
		session: session,
		saver:   app.NewSaver(session, downloader, creds, o.logger),
		catalog: db2.NewCatalog(session.DB(), o.logger),
		logger:  o.logger,
	}
}

// SaveLibrary runs one backup orchestration.
func (c *Client) SaveLibrary(ctx context.Context, req SaveRequest) (SaveResult, error) {
	return c.saver.Save(ctx, req)
}

// RemoveSaveFile deletes a save-file container from the host.
// Removing a container that does not exist surfaces a command error.
func (c *Client) RemoveSaveFile(ctx context.Context, library, saveFile string) error {
	lib, err := domain.NewIdentifier(library)
	if err != nil {
		return fmt.Errorf("library: %w", err)
	}
	savf, err := domain.NewIdentifier(saveFile)
	if err != nil {
		return fmt.Errorf("save file: %w", err)
	}
	return app.NewContainerManager(c.session, c.logger).Remove(ctx, lib, savf)
}

// LibraryInfo returns the single-row summary for the named library.
func (c *Client) LibraryInfo(ctx context.Context, library string) (LibrarySummary, error) {
	return c.catalog.LibraryInfo(ctx, library)
}

// Objects lists every object in the named library.
func (c *Client) Objects(ctx context.Context, library string) ([]ObjectRecord, error) {
	return c.catalog.Objects(ctx, library)
}

// Members lists the source physical file members of the named library.
func (c *Client) Members(ctx context.Context, library string) ([]MemberRecord, error) {
	return c.catalog.Members(ctx, library)
}

// Close releases the command connection when this Client owns it.
func (c *Client) Close() error {
	return c.session.Close()
}

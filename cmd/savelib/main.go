package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/ibmi-tools/savelib/internal/cliconfig"
)

const helpDescription = `
Back up and inspect libraries on a remote IBM i system.

Highlights:
  - Saves a library into a save file with SAVLIB, in one shot.
  - Optionally downloads the save file over SFTP and removes the remote copy.
  - Read-only metadata queries: library summary, object and member listings.
  - Configure via config file, environment (SAVELIB_*), .env, or flags.
`

var exampleUsage = strings.TrimSpace(`
  savelib save PAYROLL PAYBAK --download --remote-dir /home/backup --local-dir /var/backups
  savelib info PAYROLL
  savelib objects PAYROLL --members
`)

var (
	cfg     cliconfig.Config
	cfgPath string
	logger  zerolog.Logger
)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg = cliconfig.DefaultConfig()
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	root := &cobra.Command{
		Use:     "savelib",
		Short:   "Back up and inspect libraries on a remote IBM i system",
		Long:    strings.TrimSpace(helpDescription),
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd)
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.savelib/config.toml)")
	root.PersistentFlags().StringVar(&cfg.System, "system", cfg.System, "IBM i hostname")
	root.PersistentFlags().StringVar(&cfg.User, "user", cfg.User, "user profile for both connections")
	root.PersistentFlags().StringVar(&cfg.Password, "password", cfg.Password, "password (prefer SAVELIB_PASSWORD or .env)")
	root.PersistentFlags().StringVar(&cfg.Driver, "driver", cfg.Driver, "ODBC driver name")
	root.PersistentFlags().IntVar(&cfg.Port, "port", cfg.Port, "SSH port for transfers")
	root.PersistentFlags().StringVar(&cfg.StateDir, "state-dir", cfg.StateDir, "directory for backup reports")
	root.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "enable debug logging")

	root.AddCommand(newSaveCmd())
	root.AddCommand(newRemoveCmd())
	root.AddCommand(newInfoCmd())
	root.AddCommand(newObjectsCmd())
	root.AddCommand(newReportCmd())

	if err := root.Execute(); err != nil {
		logger.Error().Err(err).Msg("savelib")
		os.Exit(1)
	}
}

// loadConfig resolves configuration with the precedence
// flags > environment > config file > defaults.
func loadConfig(cmd *cobra.Command) error {
	if err := cliconfig.LoadDotenv(); err != nil {
		return fmt.Errorf("load .env: %w", err)
	}

	// Build set of changed flags
	changed := map[string]bool{}
	cmd.Root().PersistentFlags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	cfgFile := cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}
	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
			return err
		}
	}

	if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.Verbose {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	// Log configuration (masking the password)
	logCfg := cfg
	if len(logCfg.Password) > 0 {
		logCfg.Password = "*****"
	}
	logger.Debug().Interface("config", logCfg).Msg("configuration")

	return nil
}

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	clog "github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"edactl/internal/app"
	cfg "edactl/internal/config"
	"edactl/internal/menu"
	"edactl/internal/system"
)

var (
	flagConfig   string
	flagLogFile  string
	flagRegistry string
	flagVerbose  bool
	flagPlain    bool
)

var (
	loaded    cfg.Config
	theApp    *app.App
	logCloser io.Closer
)

var errUnsupportedOS = errors.New("unsupported OS: macOS/Linux/Windows only")

var rootCmd = &cobra.Command{
	Use:   "edactl",
	Short: "edactl – install and update EDA tools",
	Long:  "edactl installs, configures and updates ngspice, KiCad and GHDL using the platform package manager (Homebrew, apt or Chocolatey).",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default action: the numbered menu
		a, err := loadApp()
		if err != nil {
			return err
		}
		if !a.Platform.Supported() {
			return errUnsupportedOS
		}
		in := cmd.InOrStdin()
		if !flagPlain && isTerminal(in) {
			return menu.RunInteractive(cmd.Context(), cmd.OutOrStdout(), a)
		}
		return menu.RunPlain(cmd.Context(), in, cmd.OutOrStdout(), a)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagConfig, "config", "c", "", "config.yaml path (default: <config dir>/config.yaml)")
	pf.StringVar(&flagLogFile, "log-file", "", "append-only log file (default: <config dir>/edactl.log)")
	pf.StringVar(&flagRegistry, "registry", "", "installed-tools registry file (default: <config dir>/tools.json)")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")
	rootCmd.Flags().BoolVar(&flagPlain, "plain", false, "line-based menu even on a terminal")
}

// Execute runs the CLI.
func Execute() {
	err := run(rootCmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run executes root and closes the log file whether or not the command
// failed.
func run(root *cobra.Command) error {
	defer closeLog()
	return root.Execute()
}

func closeLog() {
	if logCloser != nil {
		_ = logCloser.Close()
		logCloser = nil
	}
}

// setup loads config.yaml, applies flag overrides and starts file logging.
func setup() error {
	path := flagConfig
	if path == "" {
		p, err := cfg.FilePath()
		if err != nil {
			return err
		}
		path = p
	}
	c, err := cfg.Load(path)
	if err != nil {
		return err
	}
	if flagLogFile != "" {
		c.LogFile = flagLogFile
	}
	if flagRegistry != "" {
		c.RegistryFile = flagRegistry
	}
	loaded = c

	level, err := system.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if flagVerbose {
		level = clog.DebugLevel
	}
	logPath, err := c.ResolvedLogFile()
	if err != nil {
		return err
	}
	closer, err := system.SetupLogging(logPath, level)
	if err != nil {
		// console logging still works
		system.Logger.Warn("log file unavailable", "path", logPath, "err", err)
		return nil
	}
	logCloser = closer
	return nil
}

// loadApp builds the App on first use so commands like version and
// config never touch the registry.
func loadApp() (*app.App, error) {
	if theApp != nil {
		return theApp, nil
	}
	a, err := app.New(loaded)
	if err != nil {
		return nil, err
	}
	system.Logger.Info("detected platform", "os", a.Platform)
	theApp = a
	return a, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, strings.TrimSuffix(word, "s"))
}

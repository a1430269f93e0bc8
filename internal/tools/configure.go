package tools

import (
	"fmt"
	"os"
	"strings"

	clog "github.com/charmbracelet/log"

	"edactl/internal/system"
)

// Configurer applies post-install environment configuration.
type Configurer interface {
	Configure(t ToolInfo, p system.Platform) error
}

// ShellConfigurator appends PATH and tool exports to a shell profile on
// macOS and mirrors them into the current process environment. The profile
// is only ever appended to; repeated runs append repeated lines.
// Linux and Windows are log-only stubs.
type ShellConfigurator struct {
	Profile string // e.g. ~/.zshrc
	Prefix  string // Homebrew prefix, e.g. /opt/homebrew
	Logger  *clog.Logger

	// Setenv and Getenv default to os.Setenv/os.Getenv.
	Setenv func(key, value string) error
	Getenv func(key string) string
}

func (c *ShellConfigurator) Configure(t ToolInfo, p system.Platform) error {
	log := c.Logger
	if log == nil {
		log = system.Logger
	}
	switch p {
	case system.PlatformMacOS:
	case system.PlatformLinux:
		log.Info("Linux config stub, assuming PATH is set", "tool", t.ID)
		return nil
	case system.PlatformWindows:
		log.Info("Windows config stub, assuming PATH is set", "tool", t.ID)
		return nil
	default:
		return fmt.Errorf("configure %s: unsupported platform %s", t.ID, p)
	}

	setenv, getenv := c.Setenv, c.Getenv
	if setenv == nil {
		setenv = os.Setenv
	}
	if getenv == nil {
		getenv = os.Getenv
	}
	prefix := strings.TrimRight(c.Prefix, "/")
	bin := prefix + "/bin"

	if err := setenv("PATH", getenv("PATH")+string(os.PathListSeparator)+bin); err != nil {
		return fmt.Errorf("configure %s: set PATH: %w", t.ID, err)
	}
	lines := []string{fmt.Sprintf("export PATH=\"$PATH:%s\"", bin)}
	for _, e := range t.Env {
		val := prefix + "/" + e.Value
		if err := setenv(e.Key, val); err != nil {
			return fmt.Errorf("configure %s: set %s: %w", t.ID, e.Key, err)
		}
		lines = append(lines, fmt.Sprintf("export %s=\"%s\"", e.Key, val))
	}

	f, err := os.OpenFile(c.Profile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("configure %s: %w", t.ID, err)
	}
	for _, ln := range lines {
		if _, err := fmt.Fprintf(f, "\n%s\n", ln); err != nil {
			_ = f.Close()
			return fmt.Errorf("configure %s: write %s: %w", t.ID, c.Profile, err)
		}
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("configure %s: %w", t.ID, err)
	}
	log.Info("configured PATH and env vars (restart the terminal for effect)", "tool", t.ID, "profile", c.Profile)
	return nil
}

// Configure runs the post-install configurator for id on p.
func (m *Manager) Configure(id ToolID, p system.Platform) (res Result) {
	defer m.recoverInto(&res, id, OpConfigure)
	t, ok := m.Info(id)
	if !ok {
		return failed(id, OpConfigure, ReasonInternal, fmt.Errorf("unknown tool: %s", id))
	}
	if m.Configurator == nil {
		m.log().Debug("no configurator set", "tool", id)
		return succeeded(id, OpConfigure, "")
	}
	if err := m.Configurator.Configure(t, p); err != nil {
		m.log().Error("configuration failed", "tool", id, "err", err)
		return failed(id, OpConfigure, ReasonConfigure, err)
	}
	return succeeded(id, OpConfigure, "")
}

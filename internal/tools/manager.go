package tools

import (
	"context"
	"fmt"
	"strings"

	clog "github.com/charmbracelet/log"

	"edactl/internal/system"
)

// Manager runs the tool lifecycle: inspect, dependency gate, install,
// configure, update check and upgrade. It never mutates the registry;
// callers record versions on success.
type Manager struct {
	Runner       Runner
	Fetcher      PageFetcher
	Configurator Configurer
	Logger       *clog.Logger

	catalog map[ToolID]ToolInfo
}

// NewManager returns a Manager over the built-in tool table.
// A nil logger falls back to system.Logger.
func NewManager(r Runner, f PageFetcher, c Configurer, l *clog.Logger) *Manager {
	m := &Manager{Runner: r, Fetcher: f, Configurator: c, Logger: l, catalog: map[ToolID]ToolInfo{}}
	for _, t := range Tools {
		m.catalog[t.ID] = t
	}
	return m
}

// SetVendor replaces the vendor page used for id's update check.
// Empty fields keep the built-in value; Marker and Version go together.
func (m *Manager) SetVendor(id ToolID, v VendorPage) error {
	t, ok := m.catalog[id]
	if !ok {
		return fmt.Errorf("unknown tool: %s", id)
	}
	if (strings.TrimSpace(v.Marker) == "") != (strings.TrimSpace(v.Version) == "") {
		return fmt.Errorf("vendor %s: marker and version must be set together", id)
	}
	if strings.TrimSpace(v.URL) != "" {
		t.Vendor.URL = v.URL
	}
	if strings.TrimSpace(v.Marker) != "" {
		t.Vendor.Marker = v.Marker
		t.Vendor.Version = v.Version
	}
	m.catalog[id] = t
	return nil
}

// Info returns the effective table entry for id.
func (m *Manager) Info(id ToolID) (ToolInfo, bool) {
	t, ok := m.catalog[id]
	return t, ok
}

func (m *Manager) log() *clog.Logger {
	if m.Logger != nil {
		return m.Logger
	}
	return system.Logger
}

// runAll runs cmds in order and stops at the first failure.
func (m *Manager) runAll(ctx context.Context, id ToolID, cmds []Command) error {
	for _, c := range cmds {
		m.log().Info("running", "tool", id, "cmd", c.String())
		out, err := m.Runner.Run(ctx, c.Name, c.Args...)
		if s := strings.TrimSpace(out); s != "" {
			m.log().Debug("command output", "tool", id, "cmd", c.String(), "output", s)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", c, err)
		}
	}
	return nil
}

// recoverInto converts a panic in a lifecycle operation into a failed Result.
func (m *Manager) recoverInto(res *Result, id ToolID, op Op) {
	if r := recover(); r != nil {
		err := fmt.Errorf("unexpected error: %v", r)
		m.log().Error(string(op)+" error", "tool", id, "err", err)
		*res = failed(id, op, ReasonInternal, err)
	}
}

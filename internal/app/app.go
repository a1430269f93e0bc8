package app

import (
	"context"
	"fmt"
	"sync"

	clog "github.com/charmbracelet/log"

	"edactl/internal/config"
	"edactl/internal/store"
	"edactl/internal/system"
	"edactl/internal/tools"
)

// App ties the tool manager to the persisted registry for one platform.
// Front ends (menu, subcommands, TUI, web UI) go through App so every
// successful install or upgrade is recorded exactly once.
type App struct {
	Platform system.Platform
	Manager  *tools.Manager
	Registry *store.Registry
	Logger   *clog.Logger

	mu sync.Mutex
}

// Entry is one row of the installed-tools view.
type Entry struct {
	Tool     tools.ToolInfo
	Recorded string // registry version or tools.NotInstalled
}

// Status adds a live version probe to an Entry.
type Status struct {
	Entry
	Installed string // detected version or tools.NotInstalled
}

// New builds an App from cfg using the host platform, command runner and
// HTTP fetcher.
func New(cfg config.Config) (*App, error) {
	timeout, err := cfg.Timeout()
	if err != nil {
		return nil, err
	}
	regPath, err := cfg.ResolvedRegistryFile()
	if err != nil {
		return nil, err
	}
	profile, err := cfg.ResolvedShellProfile()
	if err != nil {
		return nil, err
	}
	reg, err := store.OpenRegistry(regPath)
	if err != nil {
		return nil, fmt.Errorf("open registry: %w", err)
	}
	conf := &tools.ShellConfigurator{Profile: profile, Prefix: cfg.ResolvedBrewPrefix(), Logger: system.Logger}
	m := tools.NewManager(tools.ExecRunner{}, tools.NewHTTPFetcher(timeout), conf, system.Logger)
	for name, v := range cfg.Vendors {
		t, err := tools.Lookup(name)
		if err != nil {
			return nil, fmt.Errorf("vendors: %w", err)
		}
		if err := m.SetVendor(t.ID, tools.VendorPage{URL: v.URL, Marker: v.Marker, Version: v.Version}); err != nil {
			return nil, err
		}
	}
	return NewWith(system.DetectPlatform(), m, reg, system.Logger), nil
}

// NewWith assembles an App from explicit parts.
func NewWith(p system.Platform, m *tools.Manager, reg *store.Registry, l *clog.Logger) *App {
	if l == nil {
		l = system.Logger
	}
	return &App{Platform: p, Manager: m, Registry: reg, Logger: l}
}

// Install installs id and records the detected version.
func (a *App) Install(ctx context.Context, id tools.ToolID) tools.Result {
	a.mu.Lock()
	defer a.mu.Unlock()
	res := a.Manager.Install(ctx, id, a.Platform)
	return a.record(res)
}

// Update upgrades id when the vendor page shows a different version and
// records the refreshed version.
func (a *App) Update(ctx context.Context, id tools.ToolID) tools.Result {
	a.mu.Lock()
	defer a.mu.Unlock()
	res := a.Manager.Upgrade(ctx, id, a.Platform)
	return a.record(res)
}

// Check reports whether an update is available for id.
func (a *App) Check(ctx context.Context, id tools.ToolID) tools.UpdateCheck {
	return a.Manager.CheckForUpdate(ctx, id)
}

// Deps runs the dependency gate for id on the current platform.
func (a *App) Deps(ctx context.Context, id tools.ToolID) bool {
	return a.Manager.DependenciesSatisfied(ctx, id, a.Platform)
}

// Installed lists every supported tool with its recorded version.
func (a *App) Installed() []Entry {
	snap := a.Registry.Snapshot()
	out := make([]Entry, 0, len(tools.Tools))
	for _, t := range tools.Tools {
		rec, ok := snap[string(t.ID)]
		if !ok {
			rec = tools.NotInstalled
		}
		out = append(out, Entry{Tool: t, Recorded: rec})
	}
	return out
}

// Refresh probes every tool's installed version. It does not write the
// registry.
func (a *App) Refresh(ctx context.Context) []Status {
	entries := a.Installed()
	out := make([]Status, 0, len(entries))
	for _, e := range entries {
		s := Status{Entry: e, Installed: tools.NotInstalled}
		if v, ok := a.Manager.InstalledVersion(ctx, e.Tool.ID); ok {
			s.Installed = v
		}
		out = append(out, s)
	}
	return out
}

func (a *App) record(res tools.Result) tools.Result {
	if !res.OK {
		return res
	}
	if err := a.Registry.Set(string(res.Tool), res.Version); err != nil {
		a.Logger.Error("registry save failed", "tool", res.Tool, "path", a.Registry.Path(), "err", err)
		res.OK = false
		res.Reason = tools.ReasonRegistry
		res.Err = err
		return res
	}
	a.Logger.Info("registry updated", "tool", res.Tool, "version", res.Version)
	return res
}

package tools

import (
	"context"
	"errors"
	"fmt"

	"edactl/internal/system"
)

var (
	errMissingDeps  = errors.New("missing dependencies, see log for details")
	errNotDetected  = errors.New("version not detected after install")
	errNoCommandFor = errors.New("no command sequence for platform")
)

// Install gates on dependencies, runs the platform install sequence,
// verifies the result via the version command and configures the tool.
// A zero-exit sequence that leaves no detectable version is a failure.
// Install never panics and never touches the registry.
func (m *Manager) Install(ctx context.Context, id ToolID, p system.Platform) (res Result) {
	defer m.recoverInto(&res, id, OpInstall)

	if _, ok := m.Info(id); !ok {
		return failed(id, OpInstall, ReasonInternal, fmt.Errorf("unknown tool: %s", id))
	}
	if !m.DependenciesSatisfied(ctx, id, p) {
		m.log().Error("missing dependencies", "tool", id)
		return failed(id, OpInstall, ReasonDependencies, errMissingDeps)
	}
	cmds, ok := InstallCommands(p, id)
	if !ok {
		m.log().Error("installation not supported", "tool", id, "platform", p)
		return failed(id, OpInstall, ReasonUnsupported, fmt.Errorf("%w %s", errNoCommandFor, p))
	}
	if err := m.runAll(ctx, id, cmds); err != nil {
		m.log().Error("installation error", "tool", id, "err", err)
		return failed(id, OpInstall, ReasonCommand, err)
	}
	ver, ok := m.InstalledVersion(ctx, id)
	if !ok {
		m.log().Error("installation failed, version not detected", "tool", id)
		return failed(id, OpInstall, ReasonNotDetected, errNotDetected)
	}
	// A configure failure is logged by Configure; the tool itself is installed.
	m.Configure(id, p)
	m.log().Info("installed successfully", "tool", id, "version", ver)
	return succeeded(id, OpInstall, ver)
}

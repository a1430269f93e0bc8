package tools

import (
	"context"
	"strings"

	"edactl/internal/system"
)

// DependenciesSatisfied checks that every Homebrew dependency of id is
// already installed. Only macOS performs a real check; every other platform
// passes unconditionally. Failing to query brew counts as unsatisfied.
func (m *Manager) DependenciesSatisfied(ctx context.Context, id ToolID, p system.Platform) bool {
	if p != system.PlatformMacOS {
		m.log().Debug("dependency check skipped", "tool", id, "platform", p)
		return true
	}
	t, ok := m.Info(id)
	if !ok {
		m.log().Error("dependency check failed", "tool", id, "err", "unknown tool")
		return false
	}
	args := []string{"deps"}
	if t.BrewCask {
		args = append(args, "--cask")
	}
	args = append(args, string(t.ID))
	out, err := m.Runner.Run(ctx, "brew", args...)
	if err != nil {
		m.log().Error("dependency check failed", "tool", id, "err", err)
		return false
	}
	deps := strings.Fields(out)
	satisfied := true
	for _, dep := range deps {
		o, err := m.Runner.Run(ctx, "brew", "list", "--versions", dep)
		if err != nil || strings.TrimSpace(o) == "" {
			m.log().Error("missing dependency", "tool", id, "dependency", dep)
			satisfied = false
		}
	}
	if satisfied {
		m.log().Info("dependencies satisfied", "tool", id, "count", len(deps))
	}
	return satisfied
}

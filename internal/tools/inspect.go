package tools

import (
	"context"
	"errors"
)

var errNoBinary = errors.New("executable not found")

// InstalledVersion runs the tool's version command and extracts the version
// token. A missing command, failing command or missing marker yields
// ok=false and a warning; it is never an error.
func (m *Manager) InstalledVersion(ctx context.Context, id ToolID) (string, bool) {
	t, ok := m.Info(id)
	if !ok {
		m.log().Warn("could not get version", "tool", id, "err", "unknown tool")
		return "", false
	}
	bin := m.resolveBinary(t)
	if bin == "" {
		m.log().Warn("could not get version", "tool", id, "err", errNoBinary)
		return "", false
	}
	out, err := m.Runner.Run(ctx, bin, t.VersionArgs...)
	if err != nil {
		m.log().Warn("could not get version", "tool", id, "err", err)
		return "", false
	}
	v, ok := t.Rule.Extract(out)
	if !ok {
		m.log().Warn("could not get version", "tool", id, "err", "version marker not found in output")
		return "", false
	}
	m.log().Info("found version", "tool", id, "version", v)
	return v, true
}

// resolveBinary returns Binary when it is in PATH, else the first existing
// fallback path, else "".
func (m *Manager) resolveBinary(t ToolInfo) string {
	if _, err := m.Runner.LookPath(t.Binary); err == nil {
		return t.Binary
	}
	for _, p := range t.FallbackPaths {
		if m.Runner.Exists(p) {
			m.log().Debug("using fallback path", "tool", t.ID, "path", p)
			return p
		}
	}
	return ""
}

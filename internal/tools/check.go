package tools

import (
	"context"
	"fmt"
	"strings"
)

// NotInstalled is the display sentinel for a tool with no detected version.
const NotInstalled = "Not installed"

// UpdateState classifies an update check.
type UpdateState string

const (
	UpdateNone         UpdateState = "none"
	UpdateAvailable    UpdateState = "available"
	UpdateNotInstalled UpdateState = "not-installed"
)

// UpdateCheck is the outcome of CheckForUpdate. Latest is set only when
// State is UpdateAvailable; Err records a fetch failure behind UpdateNone.
type UpdateCheck struct {
	Tool    ToolID
	State   UpdateState
	Current string
	Latest  string
	Err     error
}

// Available reports whether a different vendor version was found.
func (c UpdateCheck) Available() bool { return c.State == UpdateAvailable }

func (c UpdateCheck) String() string {
	switch c.State {
	case UpdateNotInstalled:
		return fmt.Sprintf("%s: %s", c.Tool, NotInstalled)
	case UpdateAvailable:
		return fmt.Sprintf("%s: update available %s -> %s", c.Tool, c.Current, c.Latest)
	}
	if c.Err != nil {
		return fmt.Sprintf("%s: %s (update check failed: %v)", c.Tool, c.Current, c.Err)
	}
	return fmt.Sprintf("%s: %s is up to date", c.Tool, c.Current)
}

// CheckForUpdate compares the installed version against the vendor page
// marker. Fetch failures are logged and reported as UpdateNone.
func (m *Manager) CheckForUpdate(ctx context.Context, id ToolID) (chk UpdateCheck) {
	chk = UpdateCheck{Tool: id, State: UpdateNone}
	defer func() {
		if r := recover(); r != nil {
			chk.State, chk.Latest = UpdateNone, ""
			chk.Err = fmt.Errorf("unexpected error: %v", r)
			m.log().Error("update check failed", "tool", id, "err", chk.Err)
		}
	}()

	current, ok := m.InstalledVersion(ctx, id)
	if !ok {
		chk.State = UpdateNotInstalled
		return chk
	}
	chk.Current = current

	t, _ := m.Info(id)
	latest, err := m.LatestVersion(ctx, id)
	if err != nil {
		chk.Err = err
		m.log().Error("update check failed (internet or site issue)", "tool", id, "url", t.Vendor.URL, "err", err)
		return chk
	}
	if latest != "" && !SameVersion(current, latest) {
		chk.State = UpdateAvailable
		chk.Latest = latest
		m.log().Info("update available", "tool", id, "current", current, "latest", latest)
		return chk
	}
	m.log().Info("up to date", "tool", id, "version", current)
	return chk
}

// LatestVersion fetches the vendor page and returns the marker's version,
// or "" when the marker is absent.
func (m *Manager) LatestVersion(ctx context.Context, id ToolID) (string, error) {
	t, ok := m.Info(id)
	if !ok {
		return "", fmt.Errorf("unknown tool: %s", id)
	}
	if m.Fetcher == nil {
		return "", fmt.Errorf("no page fetcher configured")
	}
	text, err := m.Fetcher.FetchText(ctx, t.Vendor.URL)
	if err != nil {
		return "", err
	}
	if t.Vendor.Marker != "" && strings.Contains(text, t.Vendor.Marker) {
		return t.Vendor.Version, nil
	}
	m.log().Debug("vendor marker not found", "tool", id, "marker", t.Vendor.Marker)
	return "", nil
}

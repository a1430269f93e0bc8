package tools

import (
	"context"
	"errors"
	"fmt"

	"edactl/internal/system"
)

var errNotDetectedAfterUpgrade = errors.New("version not detected after upgrade")

// Upgrade runs the upgrade sequence only when CheckForUpdate reports a
// different vendor version, then re-reads the installed version. With no
// update (or no installed tool) it returns a failed Result without issuing
// any command. Failed upgrade commands are not retried.
func (m *Manager) Upgrade(ctx context.Context, id ToolID, p system.Platform) (res Result) {
	defer m.recoverInto(&res, id, OpUpgrade)

	chk := m.CheckForUpdate(ctx, id)
	switch chk.State {
	case UpdateNotInstalled:
		m.log().Info("no update: not installed", "tool", id)
		return failed(id, OpUpgrade, ReasonNotInstalled, nil)
	case UpdateNone:
		m.log().Info("no update available", "tool", id)
		return failed(id, OpUpgrade, ReasonNoUpdate, chk.Err)
	}

	cmds, ok := UpgradeCommands(p, id)
	if !ok {
		m.log().Error("upgrade not supported", "tool", id, "platform", p)
		return failed(id, OpUpgrade, ReasonUnsupported, fmt.Errorf("%w %s", errNoCommandFor, p))
	}
	m.log().Info("upgrading", "tool", id, "from", chk.Current, "to", chk.Latest)
	if err := m.runAll(ctx, id, cmds); err != nil {
		m.log().Error("upgrade error", "tool", id, "err", err)
		return failed(id, OpUpgrade, ReasonCommand, err)
	}
	ver, ok := m.InstalledVersion(ctx, id)
	if !ok {
		m.log().Error("upgrade failed, version not detected", "tool", id)
		return failed(id, OpUpgrade, ReasonNotDetected, errNotDetectedAfterUpgrade)
	}
	m.log().Info("upgraded", "tool", id, "version", ver)
	return succeeded(id, OpUpgrade, ver)
}

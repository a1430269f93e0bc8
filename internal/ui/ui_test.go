package ui

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	clog "github.com/charmbracelet/log"
	xansi "github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"edactl/internal/app"
	"edactl/internal/store"
	"edactl/internal/system"
	tu "edactl/internal/testutil"
	"edactl/internal/tools"
)

func testModel(t *testing.T, r *tu.FakeRunner) model {
	t.Helper()
	zone.NewGlobal()
	reg, err := store.OpenRegistry(filepath.Join(t.TempDir(), "tools.json"))
	tu.Must(t, err)
	l := clog.New(&bytes.Buffer{})
	a := app.NewWith(system.PlatformLinux, tools.NewManager(r, &tu.FakeFetcher{}, nil, l), reg, l)
	return newModel(context.Background(), a)
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_RefreshAndCursor(t *testing.T) {
	r := tu.NewFakeRunner()
	r.Bins["ngspice"] = true
	r.On("ngspice --version", tu.Reply{Out: "** ngspice-45.2 : Circuit level simulation program"})
	m := testModel(t, r)
	if len(m.rows) != len(tools.Tools) || !m.busy {
		t.Fatalf("unexpected initial model: %+v", m.rows)
	}

	next, _ := m.Update(refreshCmd(m.ctx, m.app)())
	m = next.(model)
	if m.busy || m.rows[0].installed != "45.2" || m.rows[1].installed != tools.NotInstalled {
		t.Fatalf("unexpected rows after refresh: %+v", m.rows)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.(model).Update(key("j"))
	next, _ = next.(model).Update(key("j"))
	m = next.(model)
	if m.cursor != len(m.rows)-1 {
		t.Fatalf("cursor %d", m.cursor)
	}
	if v := m.View(); !strings.Contains(v, "GHDL") || !strings.Contains(v, "i install") {
		t.Fatalf("unexpected view: %q", v)
	}
}

func TestModel_BusyBlocksActions(t *testing.T) {
	m := testModel(t, tu.NewFakeRunner())
	next, cmd := m.Update(key("i"))
	if cmd != nil {
		t.Fatalf("expected no command while busy")
	}
	if !strings.HasPrefix(next.(model).notice, "busy") {
		t.Fatalf("expected busy notice, got %q", next.(model).notice)
	}
}

func TestModel_InstallResultUpdatesRecorded(t *testing.T) {
	r := tu.NewFakeRunner()
	r.On("sudo apt install -y ngspice", tu.Reply{Provides: []string{"ngspice"}})
	r.On("ngspice --version", tu.Reply{Out: "** ngspice-45.2 : Circuit level simulation program"})
	m := testModel(t, r)
	m.busy = false

	next, cmd := m.Update(key("i"))
	m = next.(model)
	if cmd == nil || !m.busy || !strings.Contains(m.busyNote, "installing") {
		t.Fatalf("expected install to start: %+v", m.busyNote)
	}
	res := m.app.Install(m.ctx, tools.ToolNgspice)
	next, _ = m.Update(resultMsg{result: res})
	m = next.(model)
	if m.rows[0].recorded != "45.2" {
		t.Fatalf("recorded not updated: %+v", m.rows[0])
	}
	if !strings.Contains(m.notice, "succeeded") {
		t.Fatalf("unexpected notice %q", m.notice)
	}
}

func TestModel_CheckedAndRegistryChange(t *testing.T) {
	m := testModel(t, tu.NewFakeRunner())
	m.busy = false
	chk := tools.UpdateCheck{Tool: tools.ToolKiCad, State: tools.UpdateAvailable, Current: "9.0.3", Latest: "9.0.4"}
	next, _ := m.Update(checkedMsg{check: chk})
	m = next.(model)
	if m.rows[1].check == nil || m.rows[1].installed != "9.0.3" {
		t.Fatalf("check not applied: %+v", m.rows[1])
	}
	if !strings.Contains(m.View(), "9.0.4") {
		t.Fatalf("latest not rendered")
	}

	tu.Must(t, store.SaveVersions(m.app.Registry.Path(), store.Versions{"ghdl": "4.1.0"}))
	next, _ = m.Update(registryChangedMsg{})
	m = next.(model)
	if m.rows[2].recorded != "4.1.0" {
		t.Fatalf("registry change not picked up: %+v", m.rows[2])
	}
}

func TestRenderStatusBarStyled_FitsWidth(t *testing.T) {
	s := renderStatusBarStyled(40, []string{strings.Repeat("x", 80)}, []string{"12:00:00", "v1"})
	if w := xansi.StringWidth(s); w != 40 {
		t.Fatalf("status bar width %d", w)
	}
}

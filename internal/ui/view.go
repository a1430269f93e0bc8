package ui

import (
	"fmt"
	"strings"
	"time"

	zone "github.com/lrstanley/bubblezone"

	"edactl/internal/tools"
	appver "edactl/internal/version"
)

type button struct {
	key   string
	label string
	zone  string
}

var buttons = []button{
	{key: "i", label: "Install", zone: "btn.install"},
	{key: "u", label: "Update", zone: "btn.update"},
	{key: "c", label: "Check", zone: "btn.check"},
	{key: "r", label: "Refresh", zone: "btn.refresh"},
}

func rowZone(id tools.ToolID) string { return "row." + string(id) }

func (m model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}
	b := &strings.Builder{}

	lines := []string{
		AccentBold().Render("✻ EDA Tool Manager"),
		"",
		fmt.Sprintf("platform: %s · registry: %s", m.app.Platform, m.app.Registry.Path()),
		"",
	}
	lines = append(lines, m.tableLines()...)
	b.WriteString(renderBanner(lines))
	b.WriteString("\n")

	var btns []string
	for _, bt := range buttons {
		btns = append(btns, zone.Mark(bt.zone, Button(fmt.Sprintf("%s %s", bt.key, bt.label))))
	}
	b.WriteString("  " + strings.Join(btns, AfterButton(" ")) + "\n\n")

	switch {
	case m.busy:
		fmt.Fprintf(b, "  %s %s…\n\n", m.spinner.View(), m.busyNote)
	case m.notice != "":
		fmt.Fprintf(b, "  %s\n\n", m.notice)
	default:
		b.WriteString("\n\n")
	}
	b.WriteString(m.renderStatusBarLine())
	return zone.Scan(b.String())
}

func (m model) tableLines() []string {
	head := fmt.Sprintf("  %-28s %-14s %-14s %s", "Tool", "Recorded", "Installed", "Latest")
	out := []string{MutedStyle().Render(head)}
	for i, r := range m.rows {
		installed := r.installed
		if installed == "" {
			installed = "…"
		}
		latest := "-"
		if r.check != nil {
			switch r.check.State {
			case tools.UpdateAvailable:
				latest = UpdateStyle().Render("↑ " + r.check.Latest)
			case tools.UpdateNotInstalled:
				latest = tools.NotInstalled
			default:
				if r.check.Err != nil {
					latest = "? fetch failed"
				} else {
					latest = "up to date"
				}
			}
		}
		cursor := "  "
		if i == m.cursor {
			cursor = AccentBold().Render("› ")
		}
		line := fmt.Sprintf("%s%-28s %-14s %-14s %s", cursor, r.tool.DisplayName, r.recorded, installed, latest)
		out = append(out, zone.Mark(rowZone(r.tool.ID), line))
	}
	return out
}

// renderStatusBarLine builds the status bar string (one line plus a newline).
func (m model) renderStatusBarLine() string {
	now := m.now
	if now.IsZero() {
		now = time.Now()
	}
	left := []string{"↑/↓ select · i install · u update · c check · r refresh · q quit"}
	right := []string{now.Format("15:04:05"), "v" + appver.AppVersion}
	return renderStatusBarStyled(m.width, left, right) + "\n"
}

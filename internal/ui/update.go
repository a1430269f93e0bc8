package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"edactl/internal/tools"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		m.now = time.Time(msg)
		return m, tickCmd()
	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case watchStartedMsg:
		m.watcher = msg.w
		m.watchCh = msg.ch
		return m, watchSubscribeCmd(m.watchCh)
	case registryChangedMsg:
		if err := m.app.Registry.Reload(); err != nil {
			m.notice = fmt.Sprintf("registry reload failed: %v", err)
		} else {
			m.applyRecorded()
		}
		return m, watchSubscribeCmd(m.watchCh)
	case refreshedMsg:
		m.busy = false
		for i := range m.rows {
			for _, s := range msg.status {
				if s.Tool.ID == m.rows[i].tool.ID {
					m.rows[i].recorded = s.Recorded
					m.rows[i].installed = s.Installed
				}
			}
		}
		return m, nil
	case checkedMsg:
		m.busy = false
		chk := msg.check
		if i := m.indexOf(chk.Tool); i >= 0 {
			m.rows[i].check = &chk
			if chk.Current != "" {
				m.rows[i].installed = chk.Current
			}
		}
		m.notice = chk.String()
		return m, nil
	case resultMsg:
		m.busy = false
		m.notice = msg.result.String()
		m.applyRecorded()
		if i := m.indexOf(msg.result.Tool); i >= 0 {
			m.rows[i].check = nil
		}
		cmd := m.start("probing installed versions", refreshCmd(m.ctx, m.app))
		return m, cmd
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		for i, r := range m.rows {
			if zone.Get(rowZone(r.tool.ID)).InBounds(msg) {
				m.cursor = i
				return m, nil
			}
		}
		for _, b := range buttons {
			if zone.Get(b.zone).InBounds(msg) {
				return m.act(b.key)
			}
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
			return m, nil
		}
		return m.act(msg.String())
	}
	return m, nil
}

// act runs the action bound to key on the selected tool. Only one action
// runs at a time.
func (m model) act(key string) (tea.Model, tea.Cmd) {
	t, ok := m.selected()
	if !ok {
		return m, nil
	}
	switch key {
	case "i", "u", "c", "r":
	default:
		return m, nil
	}
	if m.busy {
		m.notice = "busy: " + m.busyNote
		return m, nil
	}
	var cmd tea.Cmd
	switch key {
	case "i":
		cmd = m.start("installing "+t.DisplayName, installCmd(m.ctx, m.app, t.ID))
	case "u":
		cmd = m.start("updating "+t.DisplayName, updateCmd(m.ctx, m.app, t.ID))
	case "c":
		cmd = m.start("checking "+t.DisplayName, checkCmd(m.ctx, m.app, t.ID))
	default:
		cmd = m.start("probing installed versions", refreshCmd(m.ctx, m.app))
	}
	return m, cmd
}

func (m *model) start(note string, cmd tea.Cmd) tea.Cmd {
	m.busy = true
	m.busyNote = note
	return tea.Batch(m.spinner.Tick, cmd)
}

func (m *model) applyRecorded() {
	snap := m.app.Registry.Snapshot()
	for i := range m.rows {
		v, ok := snap[string(m.rows[i].tool.ID)]
		if !ok {
			v = tools.NotInstalled
		}
		m.rows[i].recorded = v
	}
}

func (m model) indexOf(id tools.ToolID) int {
	for i, r := range m.rows {
		if r.tool.ID == id {
			return i
		}
	}
	return -1
}

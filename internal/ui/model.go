package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	zone "github.com/lrstanley/bubblezone"

	"edactl/internal/app"
	"edactl/internal/system"
	"edactl/internal/tools"
)

// row is one tool line on the dashboard.
type row struct {
	tool      tools.ToolInfo
	recorded  string
	installed string // "" until the first probe returns
	check     *tools.UpdateCheck
}

// Model for TUI
type model struct {
	app  *app.App
	ctx  context.Context
	rows []row

	cursor   int
	busy     bool
	busyNote string
	spinner  spinner.Model
	notice   string
	quitting bool

	width  int
	height int
	now    time.Time

	// fsnotify watcher for registry changes
	watcher *fsnotify.Watcher
	watchCh chan struct{}
}

func newModel(ctx context.Context, a *app.App) model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = AccentBold()
	m := model{app: a, ctx: ctx, spinner: sp, busy: true, busyNote: "probing installed versions"}
	for _, e := range a.Installed() {
		m.rows = append(m.rows, row{tool: e.Tool, recorded: e.Recorded})
	}
	return m
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, refreshCmd(m.ctx, m.app), startWatchCmd(m.app.Registry.Path()), tickCmd())
}

func (m model) selected() (tools.ToolInfo, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return tools.ToolInfo{}, false
	}
	return m.rows[m.cursor].tool, true
}

// Run opens the dashboard full-screen until the user quits.
func Run(ctx context.Context, a *app.App) error {
	if ctx == nil {
		ctx = context.Background()
	}
	// Initialize global bubblezone manager for mouse-aware zones.
	zone.NewGlobal()
	restore := system.DetachConsole()
	defer restore()

	m := newModel(ctx, a)
	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx)).Run()
	if fm, ok := final.(model); ok && fm.watcher != nil {
		_ = fm.watcher.Close()
	}
	return err
}

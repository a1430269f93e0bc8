package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"edactl/internal/app"
	"edactl/internal/tools"
)

// Commands
func refreshCmd(ctx context.Context, a *app.App) tea.Cmd {
	return func() tea.Msg {
		return refreshedMsg{status: a.Refresh(ctx)}
	}
}

func checkCmd(ctx context.Context, a *app.App, id tools.ToolID) tea.Cmd {
	return func() tea.Msg {
		return checkedMsg{check: a.Check(ctx, id)}
	}
}

func installCmd(ctx context.Context, a *app.App, id tools.ToolID) tea.Cmd {
	return func() tea.Msg {
		return resultMsg{result: a.Install(ctx, id)}
	}
}

func updateCmd(ctx context.Context, a *app.App, id tools.ToolID) tea.Cmd {
	return func() tea.Msg {
		return resultMsg{result: a.Update(ctx, id)}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

package menu

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func theme() *huh.Theme {
	green := lipgloss.Color("#03BF87")
	t := huh.ThemeCharm()
	t.FieldSeparator = lipgloss.NewStyle()
	t.Blurred.Title = t.Blurred.Title.Foreground(lipgloss.Color("7"))
	t.Focused.Title = t.Focused.Title.Foreground(green).Bold(true)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(green)
	t.Focused.Base.BorderForeground(green)
	return t
}

// RunInteractive shows the same menu as RunPlain as a huh select form and
// writes action output to out. Ctrl+C or Esc exits like choosing Exit.
func RunInteractive(ctx context.Context, out io.Writer, a Actions) error {
	opts := make([]huh.Option[string], 0, len(Items))
	for _, it := range Items {
		opts = append(opts, huh.NewOption(it.Key+". "+it.Label, it.Key))
	}
	for {
		choice := ""
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("EDA Tool Manager").
					Options(opts...).
					Height(len(opts) + 2).
					Value(&choice),
			),
		).WithTheme(theme()).WithWidth(48)

		if err := form.RunWithContext(ctx); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
		it, ok := itemFor(choice)
		if !ok || it.act == actExit {
			return nil
		}
		perform(ctx, out, a, it)
	}
}

// Package menu is the numbered text menu shown when edactl runs without a
// subcommand.
package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"edactl/internal/app"
	"edactl/internal/tools"
)

// Actions is what the menu drives. *app.App satisfies it.
type Actions interface {
	Install(ctx context.Context, id tools.ToolID) tools.Result
	Update(ctx context.Context, id tools.ToolID) tools.Result
	Installed() []app.Entry
}

type action int

const (
	actInstall action = iota
	actUpdate
	actView
	actExit
)

// Item is one numbered menu entry.
type Item struct {
	Key   string
	Label string
	act   action
	tool  tools.ToolID
}

// Items is the fixed menu. Numbers never change between releases.
var Items = []Item{
	{Key: "1", Label: "Install Ngspice", act: actInstall, tool: tools.ToolNgspice},
	{Key: "2", Label: "Install KiCad", act: actInstall, tool: tools.ToolKiCad},
	{Key: "3", Label: "Check/Update Ngspice", act: actUpdate, tool: tools.ToolNgspice},
	{Key: "4", Label: "Check/Update KiCad", act: actUpdate, tool: tools.ToolKiCad},
	{Key: "5", Label: "View Installed Tools", act: actView},
	{Key: "6", Label: "Exit", act: actExit},
}

func itemFor(key string) (Item, bool) {
	key = strings.TrimSpace(key)
	for _, it := range Items {
		if it.Key == key {
			return it, true
		}
	}
	return Item{}, false
}

// RunPlain reads choices line by line from in until exit or EOF.
// Invalid choices print an error and re-prompt.
func RunPlain(ctx context.Context, in io.Reader, out io.Writer, a Actions) error {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprintln(out, "\nEDA Tool Manager")
		for _, it := range Items {
			fmt.Fprintf(out, "%s. %s\n", it.Key, it.Label)
		}
		fmt.Fprint(out, "Select an option: ")
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		it, ok := itemFor(sc.Text())
		if !ok {
			fmt.Fprintf(out, "Invalid choice %q, please enter 1-%d.\n", strings.TrimSpace(sc.Text()), len(Items))
			continue
		}
		if it.act == actExit {
			return nil
		}
		perform(ctx, out, a, it)
	}
}

func perform(ctx context.Context, out io.Writer, a Actions, it Item) {
	switch it.act {
	case actInstall:
		fmt.Fprintf(out, "Installing %s...\n", it.tool)
		fmt.Fprintln(out, a.Install(ctx, it.tool))
	case actUpdate:
		fmt.Fprintf(out, "Checking %s for updates...\n", it.tool)
		fmt.Fprintln(out, a.Update(ctx, it.tool))
	case actView:
		fmt.Fprint(out, InstalledText(a.Installed()))
	}
}

// InstalledText renders the installed-tools view.
func InstalledText(entries []app.Entry) string {
	var sb strings.Builder
	sb.WriteString("Installed Tools:\n")
	for _, e := range entries {
		fmt.Fprintf(&sb, "%s: %s\n", e.Tool.DisplayName, e.Recorded)
	}
	return sb.String()
}

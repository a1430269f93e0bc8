package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	runewidth "github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"edactl/internal/app"
)

var (
	lsMarkdown bool
	lsProbe    bool
)

func init() {
	rootCmd.AddCommand(lsCmd)
	lsCmd.Flags().BoolVar(&lsMarkdown, "md", false, "render as a markdown table")
	lsCmd.Flags().BoolVarP(&lsProbe, "probe", "p", false, "also run each tool's version command")
}

var lsCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "View installed tools",
	Long:    "Lists every supported tool with the version recorded in the registry. With --probe the installed version is detected live.",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		var rows []app.Status
		if lsProbe {
			rows = a.Refresh(cmd.Context())
		} else {
			for _, e := range a.Installed() {
				rows = append(rows, app.Status{Entry: e})
			}
		}
		if lsMarkdown {
			r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
			if err != nil {
				return err
			}
			out, err := r.Render(markdownTable(rows, lsProbe))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		}
		writeTable(cmd.OutOrStdout(), rows, lsProbe)
		return nil
	},
}

func header(probe bool) []string {
	h := []string{"Tool", "Role", "Recorded"}
	if probe {
		h = append(h, "Installed")
	}
	return h
}

func cells(s app.Status, probe bool) []string {
	c := []string{s.Tool.DisplayName, string(s.Tool.Role), s.Recorded}
	if probe {
		c = append(c, s.Installed)
	}
	return c
}

func markdownTable(rows []app.Status, probe bool) string {
	var sb strings.Builder
	sb.WriteString("# Installed Tools\n\n")
	h := header(probe)
	sb.WriteString("| " + strings.Join(h, " | ") + " |\n")
	sb.WriteString("|" + strings.Repeat(" --- |", len(h)) + "\n")
	for _, r := range rows {
		sb.WriteString("| " + strings.Join(cells(r, probe), " | ") + " |\n")
	}
	return sb.String()
}

// writeTable pads columns by display width.
func writeTable(w io.Writer, rows []app.Status, probe bool) {
	all := [][]string{header(probe)}
	for _, r := range rows {
		all = append(all, cells(r, probe))
	}
	widths := make([]int, len(all[0]))
	for _, row := range all {
		for i, c := range row {
			if cw := runewidth.StringWidth(c); cw > widths[i] {
				widths[i] = cw
			}
		}
	}
	for _, row := range all {
		parts := make([]string, len(row))
		for i, c := range row {
			if i == len(row)-1 {
				parts[i] = c
				continue
			}
			parts[i] = runewidth.FillRight(c, widths[i])
		}
		fmt.Fprintln(w, strings.Join(parts, "  "))
	}
}

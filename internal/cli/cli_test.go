package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"edactl/internal/app"
	"edactl/internal/tools"
)

func TestSelectTools(t *testing.T) {
	all, err := selectTools(nil)
	if err != nil || len(all) != len(tools.Tools) {
		t.Fatalf("no args: %v %v", all, err)
	}
	all, err = selectTools([]string{"ghdl", "ALL"})
	if err != nil || len(all) != len(tools.Tools) {
		t.Fatalf("all: %v %v", all, err)
	}
	sel, err := selectTools([]string{"kicad", "spice", "kicad-cli", " "})
	if err != nil {
		t.Fatalf("select error: %v", err)
	}
	if len(sel) != 2 || sel[0].ID != tools.ToolKiCad || sel[1].ID != tools.ToolNgspice {
		t.Fatalf("unexpected selection: %v", sel)
	}
	if _, err := selectTools([]string{"zzz"}); err == nil {
		t.Fatalf("expected unknown tool error")
	}
}

func TestWriteTable(t *testing.T) {
	ng, _ := tools.Get(tools.ToolNgspice)
	kc, _ := tools.Get(tools.ToolKiCad)
	rows := []app.Status{
		{Entry: app.Entry{Tool: ng, Recorded: "45.2"}, Installed: "45.2"},
		{Entry: app.Entry{Tool: kc, Recorded: tools.NotInstalled}, Installed: tools.NotInstalled},
	}
	var buf bytes.Buffer
	writeTable(&buf, rows, true)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("unexpected lines: %q", lines)
	}
	col := strings.Index(lines[0], "Role")
	for _, ln := range lines[1:] {
		if strings.Index(ln, string(tools.RoleSimulator)) != col && strings.Index(ln, string(tools.RolePCBSuite)) != col {
			t.Fatalf("columns not aligned: %q", lines)
		}
	}
	md := markdownTable(rows, false)
	if !strings.Contains(md, "| Tool | Role | Recorded |") || strings.Contains(md, "Installed |") {
		t.Fatalf("unexpected markdown: %q", md)
	}
}

func TestPlural(t *testing.T) {
	if plural(1, "tool") != "1 tool" || plural(2, "tool") != "2 tools" {
		t.Fatalf("plural: %q %q", plural(1, "tool"), plural(2, "tool"))
	}
}

type countingCloser struct{ n int }

func (c *countingCloser) Close() error { c.n++; return nil }

func TestRun_ClosesLogOnError(t *testing.T) {
	c := &countingCloser{}
	logCloser = c
	t.Cleanup(func() { logCloser = nil })
	boom := errors.New("boom")
	cmd := &cobra.Command{
		Use:           "x",
		RunE:          func(*cobra.Command, []string) error { return boom },
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetArgs([]string{})
	if err := run(cmd); !errors.Is(err, boom) {
		t.Fatalf("run error = %v", err)
	}
	if c.n != 1 || logCloser != nil {
		t.Fatalf("log file not closed: closes=%d", c.n)
	}
}

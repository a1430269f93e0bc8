package ui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// renderBanner draws lines inside a rounded box sized to the widest line.
func renderBanner(lines []string) string {
	// compute max display width (ignore ANSI codes)
	max := 0
	for _, ln := range lines {
		if w := xansi.StringWidth(ln); w > max {
			max = w
		}
	}
	top := "╭" + strings.Repeat("─", max+2) + "╮\n"
	bot := "╰" + strings.Repeat("─", max+2) + "╯\n"
	var sb strings.Builder
	sb.WriteString(top)
	for _, ln := range lines {
		pad := max - xansi.StringWidth(ln)
		sb.WriteString("│ ")
		sb.WriteString(ln)
		if pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}
		sb.WriteString(" │\n")
	}
	sb.WriteString(bot)
	return sb.String()
}

// renderStatusBarStyled draws a one-line status bar: left parts as plain
// text, right parts as colored chips. The left side is truncated first
// when the width is too small.
func renderStatusBarStyled(width int, left, right []string) string {
	w := width
	if w <= 0 {
		w = 100
	}
	chipColors := []func(string) string{
		func(s string) string { return ChipStyle(Vitesse.Cyan).Render(s) },
		func(s string) string { return ChipKeyStyle().Render(s) },
	}
	var rs strings.Builder
	for i, p := range right {
		rs.WriteString(chipColors[i%len(chipColors)](p))
	}
	r := rs.String()
	rw := xansi.StringWidth(r)

	l := " " + strings.Join(left, " · ")
	maxL := w - rw - 1
	if maxL < 0 {
		maxL = 0
	}
	if xansi.StringWidth(l) > maxL {
		l = xansi.Truncate(l, maxL, "…")
	}
	pad := w - xansi.StringWidth(l) - rw
	if pad < 0 {
		pad = 0
	}
	return StatusBarBase().Render(l+strings.Repeat(" ", pad)) + r
}

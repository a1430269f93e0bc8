package ui

import "github.com/charmbracelet/lipgloss"

// designTheme is the dashboard palette (Vitesse Dark Soft).
type designTheme struct {
	Primary   lipgloss.Color // buttons, cursor
	Yellow    lipgloss.Color // update available
	Cyan      lipgloss.Color
	Secondary lipgloss.Color // headers
	Bg        lipgloss.Color
	OnAccent  lipgloss.Color // text on accent backgrounds

	BarFG lipgloss.AdaptiveColor
	BarBG lipgloss.AdaptiveColor
}

// Vitesse defines the current global design theme for the TUI.
var Vitesse = designTheme{
	Primary:   lipgloss.Color("#4d9375"),
	Yellow:    lipgloss.Color("#e6cc77"),
	Cyan:      lipgloss.Color("#5eaab5"),
	Secondary: lipgloss.Color("#bfbaaa"),
	Bg:        lipgloss.Color("#181818"),
	OnAccent:  lipgloss.Color("#222"),

	BarFG: lipgloss.AdaptiveColor{Light: "#343433", Dark: "#bfbaaa"},
	BarBG: lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#222"},
}

// Convenience style helpers

// AccentBold returns a bold style using the primary accent color.
func AccentBold() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(Vitesse.Primary)
}

// MutedStyle is used for table headers and secondary text.
func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Vitesse.Secondary)
}

// UpdateStyle highlights an available update.
func UpdateStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(Vitesse.Yellow)
}

// ChipKeyStyle returns a style for the right-most highlighted chip in the status bar.
func ChipKeyStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Vitesse.OnAccent).
		Background(Vitesse.Primary).
		Padding(0, 1)
}

// ChipStyle returns a style for colored status bar segments.
func ChipStyle(bg lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Vitesse.OnAccent).Background(bg).Padding(0, 1)
}

// StatusBarBase returns the base style for the status bar background/foreground.
func StatusBarBase() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Vitesse.BarFG).Background(Vitesse.BarBG)
}

// Button renders a small accent button label with consistent styling.
func Button(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(Vitesse.OnAccent).Background(Vitesse.Primary).Padding(0, 1).Render(s)
}

// AfterButton wraps following text with the base background so the button
// background does not bleed past the label.
func AfterButton(s string) string {
	if s == "" {
		return ""
	}
	return lipgloss.NewStyle().Background(Vitesse.Bg).Render(s)
}

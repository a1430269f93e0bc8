package cli

import (
	"strings"

	"edactl/internal/app"
	"edactl/internal/tools"
)

// selectTools resolves args to tools in table order of first mention.
// No args or "all" selects every tool; names go through tools.Lookup.
func selectTools(args []string) ([]tools.ToolInfo, error) {
	if len(args) == 0 {
		return tools.Tools, nil
	}
	seen := map[tools.ToolID]bool{}
	sel := make([]tools.ToolInfo, 0, len(tools.Tools))
	for _, a := range args {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		if strings.EqualFold(a, "all") {
			return tools.Tools, nil
		}
		t, err := tools.Lookup(a)
		if err != nil {
			return nil, err
		}
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		sel = append(sel, t)
	}
	return sel, nil
}

// requireApp returns the App, refusing to run on an unsupported OS.
func requireApp() (*app.App, error) {
	a, err := loadApp()
	if err != nil {
		return nil, err
	}
	if !a.Platform.Supported() {
		return nil, errUnsupportedOS
	}
	return a, nil
}

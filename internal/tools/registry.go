package tools

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"
)

var Tools = []ToolInfo{
	{
		ID:          ToolNgspice,
		Role:        RoleSimulator,
		DisplayName: "Ngspice (circuit simulator)",
		Binary:      "ngspice",
		VersionArgs: []string{"--version"},
		Rule:        VersionRule{Kind: RuleAfterMarker, Marker: "ngspice-"},
		Vendor: VendorPage{
			URL:     "https://ngspice.sourceforge.io/download.html",
			Marker:  "ngspice-45.2",
			Version: "45.2",
		},
		Env: []EnvVar{{Key: "NGSPICE_LIB", Value: "share/ngspice/scripts"}},
	},
	{
		ID:            ToolKiCad,
		Role:          RolePCBSuite,
		DisplayName:   "KiCad (PCB design suite)",
		Binary:        "kicad-cli",
		VersionArgs:   []string{"version"},
		Rule:          VersionRule{Kind: RuleLastField},
		FallbackPaths: []string{"/Applications/KiCad/KiCad.app/Contents/MacOS/kicad-cli"},
		BrewCask:      true,
		Vendor: VendorPage{
			URL:     "https://www.kicad.org/download/",
			Marker:  "9.0.4",
			Version: "9.0.4",
		},
	},
	{
		ID:          ToolGHDL,
		Role:        RoleHDLCompiler,
		DisplayName: "GHDL (VHDL compiler)",
		Binary:      "ghdl",
		VersionArgs: []string{"--version"},
		Rule:        VersionRule{Kind: RuleAfterMarker, Marker: "GHDL "},
		Vendor: VendorPage{
			URL:     "https://ghdl.free.fr/",
			Marker:  "4.1.0",
			Version: "4.1.0",
		},
		Env: []EnvVar{{Key: "GHDL_BIN", Value: "bin/ghdl"}},
	},
}

var aliases = map[string]ToolID{
	"spice":     ToolNgspice,
	"sim":       ToolNgspice,
	"kicad-cli": ToolKiCad,
	"pcb":       ToolKiCad,
	"vhdl":      ToolGHDL,
	"hdl":       ToolGHDL,
}

// Names returns the supported tool names in table order.
func Names() []string {
	out := make([]string, 0, len(Tools))
	for _, t := range Tools {
		out = append(out, string(t.ID))
	}
	return out
}

// Get returns the table entry for id.
func Get(id ToolID) (ToolInfo, bool) {
	for _, t := range Tools {
		if t.ID == id {
			return t, true
		}
	}
	return ToolInfo{}, false
}

// Lookup resolves a user-supplied name: tool ID, role or alias. Anything
// else is an error; a close fuzzy match is only offered as a hint.
func Lookup(name string) (ToolInfo, error) {
	n := strings.TrimSpace(strings.ToLower(name))
	for _, t := range Tools {
		if n == string(t.ID) || n == string(t.Role) {
			return t, nil
		}
	}
	if id, ok := aliases[n]; ok {
		t, _ := Get(id)
		return t, nil
	}
	err := fmt.Errorf("unknown tool: %s (supported: %s)", name, strings.Join(Names(), ", "))
	if s := suggest(n); s != "" {
		err = fmt.Errorf("%w; did you mean %q?", err, s)
	}
	return ToolInfo{}, err
}

// suggest returns the tool ID closest to n, or "".
func suggest(n string) string {
	if n == "" {
		return ""
	}
	var names []string
	var ids []ToolID
	for _, t := range Tools {
		names = append(names, string(t.ID), string(t.Role))
		ids = append(ids, t.ID, t.ID)
	}
	for _, a := range slices.Sorted(maps.Keys(aliases)) {
		names = append(names, a)
		ids = append(ids, aliases[a])
	}
	matches := fuzzy.Find(n, names)
	if len(matches) == 0 {
		return ""
	}
	return string(ids[matches[0].Index])
}

package tools

// Tool identifiers and metadata
type ToolID string

const (
	ToolNgspice ToolID = "ngspice"
	ToolKiCad   ToolID = "kicad"
	ToolGHDL    ToolID = "ghdl"
)

// Role is what a tool does in the EDA flow.
type Role string

const (
	RoleSimulator   Role = "simulator"
	RolePCBSuite    Role = "pcb-suite"
	RoleHDLCompiler Role = "hdl-compiler"
)

type ToolInfo struct {
	ID          ToolID
	Role        Role
	DisplayName string
	Binary      string   // version-reporting executable looked up in PATH
	VersionArgs []string
	Rule        VersionRule
	// FallbackPaths are probed when Binary is not in PATH (manual installs).
	FallbackPaths []string
	BrewCask      bool // macOS package is a cask
	Vendor        VendorPage
	Env           []EnvVar // exported after a macOS install
}

// VendorPage is where the latest release is looked up. Marker is searched in
// the page text; when present, Version is the latest release.
type VendorPage struct {
	URL     string
	Marker  string
	Version string
}

// EnvVar is exported to the shell profile on macOS. Value is relative to the
// Homebrew prefix.
type EnvVar struct {
	Key   string
	Value string
}

// Command is one external command line.
type Command struct {
	Name string
	Args []string
}

func (c Command) String() string {
	s := c.Name
	for _, a := range c.Args {
		s += " " + a
	}
	return s
}

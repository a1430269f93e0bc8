package tools

import "edactl/internal/system"

func cmd(name string, args ...string) Command { return Command{Name: name, Args: args} }

// installTable maps platform × tool to the ordered install command sequence.
var installTable = map[system.Platform]map[ToolID][]Command{
	system.PlatformMacOS: {
		ToolNgspice: {cmd("brew", "install", "ngspice")},
		ToolKiCad:   {cmd("brew", "install", "--cask", "kicad")},
		ToolGHDL:    {cmd("brew", "install", "ghdl")},
	},
	system.PlatformLinux: {
		ToolNgspice: {cmd("sudo", "apt", "install", "-y", "ngspice")},
		ToolKiCad: {
			cmd("sudo", "add-apt-repository", "-y", "ppa:kicad/kicad-9.0-releases"),
			cmd("sudo", "apt", "update"),
			cmd("sudo", "apt", "install", "-y", "kicad"),
		},
		ToolGHDL: {cmd("sudo", "apt", "install", "-y", "ghdl")},
	},
	system.PlatformWindows: {
		ToolNgspice: {cmd("choco", "install", "-y", "ngspice")},
		ToolKiCad:   {cmd("choco", "install", "-y", "kicad")},
		ToolGHDL:    {cmd("choco", "install", "-y", "ghdl")},
	},
}

// upgradeTable maps platform × tool to the upgrade command sequence.
var upgradeTable = map[system.Platform]map[ToolID][]Command{
	system.PlatformMacOS: {
		ToolNgspice: {cmd("brew", "upgrade", "ngspice")},
		ToolKiCad:   {cmd("brew", "upgrade", "--cask", "kicad")},
		ToolGHDL:    {cmd("brew", "upgrade", "ghdl")},
	},
	system.PlatformLinux: {
		ToolNgspice: {cmd("sudo", "apt", "install", "--only-upgrade", "-y", "ngspice")},
		ToolKiCad: {
			cmd("sudo", "apt", "update"),
			cmd("sudo", "apt", "install", "--only-upgrade", "-y", "kicad"),
		},
		ToolGHDL: {cmd("sudo", "apt", "install", "--only-upgrade", "-y", "ghdl")},
	},
	system.PlatformWindows: {
		ToolNgspice: {cmd("choco", "upgrade", "-y", "ngspice")},
		ToolKiCad:   {cmd("choco", "upgrade", "-y", "kicad")},
		ToolGHDL:    {cmd("choco", "upgrade", "-y", "ghdl")},
	},
}

// InstallCommands returns the install sequence for id on p.
func InstallCommands(p system.Platform, id ToolID) ([]Command, bool) {
	cmds, ok := installTable[p][id]
	return cmds, ok
}

// UpgradeCommands returns the upgrade sequence for id on p.
func UpgradeCommands(p system.Platform, id ToolID) ([]Command, bool) {
	cmds, ok := upgradeTable[p][id]
	return cmds, ok
}

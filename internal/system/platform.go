package system

import "runtime"

// Platform is the host operating system family.
type Platform string

const (
	PlatformMacOS       Platform = "macos"
	PlatformLinux       Platform = "linux"
	PlatformWindows     Platform = "windows"
	PlatformUnsupported Platform = "unsupported"
)

// DetectPlatform maps runtime.GOOS to a Platform. Callers detect once per
// process and pass the value along.
func DetectPlatform() Platform {
	return PlatformFor(runtime.GOOS)
}

// PlatformFor maps a GOOS identifier to a Platform, logging a warning for
// anything outside the supported three.
func PlatformFor(goos string) Platform {
	switch goos {
	case "darwin":
		return PlatformMacOS
	case "linux":
		return PlatformLinux
	case "windows":
		return PlatformWindows
	}
	Logger.Warn("unsupported OS", "os", goos)
	return PlatformUnsupported
}

// Supported reports whether p is one of macOS, Linux or Windows.
func (p Platform) Supported() bool {
	return p == PlatformMacOS || p == PlatformLinux || p == PlatformWindows
}

func (p Platform) String() string { return string(p) }

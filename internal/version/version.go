package version

// AppVersion is the edactl release version. Overridden at build time via
// -ldflags "-X edactl/internal/version.AppVersion=...".
var AppVersion = "0.3.1"

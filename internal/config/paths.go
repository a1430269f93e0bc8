package config

import (
    "errors"
    "os"
    "path/filepath"
    "strings"
)

const appName = "edactl"

// Dir returns the edactl config directory under the user config base.
// On Linux, this typically resolves to $XDG_CONFIG_HOME/edactl; on macOS
// to ~/Library/Application Support/edactl; and on Windows to %AppData%/edactl.
// Falls back to HOME when UserConfigDir is unavailable.
func Dir() (string, error) {
    base, err := os.UserConfigDir()
    if err != nil || strings.TrimSpace(base) == "" {
        if home, herr := os.UserHomeDir(); herr == nil {
            base = home
        } else {
            return "", errors.New("cannot determine config directory")
        }
    }
    return filepath.Join(base, appName), nil
}

// FilePath returns the path of the optional config.yaml.
func FilePath() (string, error) {
    return inDir("config.yaml")
}

// RegistryPath returns the default installed-tools registry path.
func RegistryPath() (string, error) {
    return inDir("tools.json")
}

// LogPath returns the default append-only log file path.
func LogPath() (string, error) {
    return inDir(appName + ".log")
}

func inDir(name string) (string, error) {
    dir, err := Dir()
    if err != nil {
        return "", err
    }
    return filepath.Join(dir, name), nil
}

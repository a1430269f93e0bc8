package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultHTTPTimeout bounds vendor page fetches unless config overrides it.
const DefaultHTTPTimeout = 30 * time.Second

// Config is the optional config.yaml. Every field may be omitted.
type Config struct {
	LogFile      string            `yaml:"log_file,omitempty" json:"log_file,omitempty" jsonschema:"description=Append-only log file (default: <config dir>/edactl.log)"`
	LogLevel     string            `yaml:"log_level,omitempty" json:"log_level,omitempty" jsonschema:"enum=debug,enum=info,enum=warn,enum=error"`
	RegistryFile string            `yaml:"registry_file,omitempty" json:"registry_file,omitempty" jsonschema:"description=Installed-tools registry (default: <config dir>/tools.json)"`
	ShellProfile string            `yaml:"shell_profile,omitempty" json:"shell_profile,omitempty" jsonschema:"description=Shell profile receiving macOS exports (default: ~/.zshrc)"`
	BrewPrefix   string            `yaml:"brew_prefix,omitempty" json:"brew_prefix,omitempty" jsonschema:"description=Homebrew prefix (default: /opt/homebrew)"`
	HTTPTimeout  string            `yaml:"http_timeout,omitempty" json:"http_timeout,omitempty" jsonschema:"description=Vendor page fetch timeout as a Go duration; 0 disables the timeout"`
	Vendors      map[string]Vendor `yaml:"vendors,omitempty" json:"vendors,omitempty" jsonschema:"description=Per-tool vendor page overrides keyed by tool name"`
}

// Vendor overrides where a tool's latest version is looked up.
type Vendor struct {
	URL     string `yaml:"url,omitempty" json:"url,omitempty"`
	Marker  string `yaml:"marker,omitempty" json:"marker,omitempty"`
	Version string `yaml:"version,omitempty" json:"version,omitempty"`
}

// Load reads config.yaml from path. A missing file yields the zero Config.
func Load(path string) (Config, error) {
	var cfg Config
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if _, err := cfg.Timeout(); err != nil {
		return cfg, err
	}
	for name, v := range cfg.Vendors {
		if (v.Marker == "") != (v.Version == "") {
			return cfg, fmt.Errorf("vendors.%s: marker and version must be set together", name)
		}
	}
	return cfg, nil
}

// LoadDefault reads config.yaml from the config directory.
func LoadDefault() (Config, error) {
	p, err := FilePath()
	if err != nil {
		return Config{}, err
	}
	return Load(p)
}

// Timeout returns the vendor fetch timeout. Zero means no timeout.
func (c Config) Timeout() (time.Duration, error) {
	s := strings.TrimSpace(c.HTTPTimeout)
	if s == "" {
		return DefaultHTTPTimeout, nil
	}
	if s == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("http_timeout: %w", err)
	}
	if d < 0 {
		return 0, errors.New("http_timeout: must not be negative")
	}
	return d, nil
}

// ResolvedRegistryFile returns RegistryFile or the default registry path.
func (c Config) ResolvedRegistryFile() (string, error) {
	if p := strings.TrimSpace(c.RegistryFile); p != "" {
		return expandHome(p)
	}
	return RegistryPath()
}

// ResolvedLogFile returns LogFile or the default log path.
func (c Config) ResolvedLogFile() (string, error) {
	if p := strings.TrimSpace(c.LogFile); p != "" {
		return expandHome(p)
	}
	return LogPath()
}

// ResolvedShellProfile returns ShellProfile or ~/.zshrc.
func (c Config) ResolvedShellProfile() (string, error) {
	if p := strings.TrimSpace(c.ShellProfile); p != "" {
		return expandHome(p)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".zshrc"), nil
}

// ResolvedBrewPrefix returns BrewPrefix or /opt/homebrew.
func (c Config) ResolvedBrewPrefix() string {
	if p := strings.TrimSpace(c.BrewPrefix); p != "" {
		return strings.TrimRight(p, "/")
	}
	return "/opt/homebrew"
}

// Marshal renders the config as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func expandHome(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~")), nil
}

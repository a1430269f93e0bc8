package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tu "edactl/internal/testutil"
)

func TestDir_UsesXDG(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "XDG_CONFIG_HOME", tmp)()
	defer tu.WithEnv(t, "HOME", tmp)()

	d, err := Dir()
	if err != nil {
		t.Fatalf("Dir error: %v", err)
	}
	if !strings.HasSuffix(d, "edactl") {
		t.Fatalf("unexpected dir %q", d)
	}
	p, err := RegistryPath()
	if err != nil || filepath.Base(p) != "tools.json" {
		t.Fatalf("RegistryPath = %q, %v", p, err)
	}
	p, err = LogPath()
	if err != nil || filepath.Base(p) != "edactl.log" {
		t.Fatalf("LogPath = %q, %v", p, err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	d, err := cfg.Timeout()
	if err != nil || d != DefaultHTTPTimeout {
		t.Fatalf("Timeout = %v, %v", d, err)
	}
	if cfg.ResolvedBrewPrefix() != "/opt/homebrew" {
		t.Fatalf("unexpected brew prefix %q", cfg.ResolvedBrewPrefix())
	}
}

func TestLoad_ParsesFields(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	body := `log_level: debug
registry_file: /tmp/reg.json
brew_prefix: /usr/local/
http_timeout: 5s
vendors:
  ngspice:
    url: https://example.test/ngspice
    marker: ngspice-46
    version: "46"
`
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q", cfg.LogLevel)
	}
	if d, _ := cfg.Timeout(); d != 5*time.Second {
		t.Fatalf("Timeout = %v", d)
	}
	if got, _ := cfg.ResolvedRegistryFile(); got != "/tmp/reg.json" {
		t.Fatalf("registry = %q", got)
	}
	if cfg.ResolvedBrewPrefix() != "/usr/local" {
		t.Fatalf("brew prefix = %q", cfg.ResolvedBrewPrefix())
	}
	v := cfg.Vendors["ngspice"]
	if v.Marker != "ngspice-46" || v.Version != "46" || v.URL == "" {
		t.Fatalf("vendor = %+v", v)
	}
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"bad-timeout": "http_timeout: soon\n",
		"half-vendor": "vendors:\n  kicad:\n    marker: \"10.0\"\n",
		"bad-yaml":    "log_level: [\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			p := filepath.Join(dir, name+".yaml")
			if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(p); err == nil {
				t.Fatalf("expected error for %s", name)
			}
		})
	}
}

func TestTimeout_ZeroDisables(t *testing.T) {
	d, err := Config{HTTPTimeout: "0"}.Timeout()
	if err != nil || d != 0 {
		t.Fatalf("Timeout = %v, %v", d, err)
	}
	if _, err := (Config{HTTPTimeout: "-1s"}).Timeout(); err == nil {
		t.Fatal("expected error for negative timeout")
	}
}

func TestResolvedShellProfile(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "HOME", tmp)()

	got, err := Config{}.ResolvedShellProfile()
	if err != nil || got != filepath.Join(tmp, ".zshrc") {
		t.Fatalf("profile = %q, %v", got, err)
	}
	got, err = Config{ShellProfile: "~/.bash_profile"}.ResolvedShellProfile()
	if err != nil || got != filepath.Join(tmp, ".bash_profile") {
		t.Fatalf("profile = %q, %v", got, err)
	}
}

func TestSchemas(t *testing.T) {
	b, err := MarshalSchema(ConfigSchema())
	if err != nil {
		t.Fatalf("marshal config schema: %v", err)
	}
	for _, key := range []string{"registry_file", "http_timeout", "vendors"} {
		if !strings.Contains(string(b), key) {
			t.Errorf("config schema missing %q", key)
		}
	}
	b, err = MarshalSchema(RegistrySchema())
	if err != nil {
		t.Fatalf("marshal registry schema: %v", err)
	}
	if !strings.Contains(string(b), `"additionalProperties"`) {
		t.Fatalf("registry schema missing additionalProperties: %s", b)
	}
}

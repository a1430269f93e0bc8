package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	clog "github.com/charmbracelet/log"

	"edactl/internal/app"
	"edactl/internal/store"
	"edactl/internal/system"
	tu "edactl/internal/testutil"
	"edactl/internal/tools"
)

func newTestServer(t *testing.T, r *tu.FakeRunner, f *tu.FakeFetcher) (*httptest.Server, *app.App) {
	t.Helper()
	reg, err := store.OpenRegistry(filepath.Join(t.TempDir(), "tools.json"))
	tu.Must(t, err)
	l := clog.New(&bytes.Buffer{})
	a := app.NewWith(system.PlatformLinux, tools.NewManager(r, f, nil, l), reg, l)
	ts := httptest.NewServer((&Server{App: a}).Handler())
	t.Cleanup(ts.Close)
	return ts, a
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	tu.Must(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestHealthAndVersion(t *testing.T) {
	ts, _ := newTestServer(t, tu.NewFakeRunner(), &tu.FakeFetcher{})
	resp, err := http.Get(ts.URL + "/api/health")
	tu.Must(t, err)
	var h map[string]string
	decode(t, resp, &h)
	if h["status"] != "ok" {
		t.Fatalf("unexpected health: %v", h)
	}
	resp, err = http.Get(ts.URL + "/api/version")
	tu.Must(t, err)
	var v map[string]string
	decode(t, resp, &v)
	if v["version"] == "" || v["platform"] != "linux" {
		t.Fatalf("unexpected version: %v", v)
	}
}

func TestToolsList(t *testing.T) {
	r := tu.NewFakeRunner()
	r.Bins["ghdl"] = true
	r.On("ghdl --version", tu.Reply{Out: "GHDL 4.1.0 (tarball)"})
	ts, a := newTestServer(t, r, &tu.FakeFetcher{})
	tu.Must(t, a.Registry.Set("ghdl", "4.0.0"))

	resp, err := http.Get(ts.URL + "/api/tools")
	tu.Must(t, err)
	var list []toolJSON
	decode(t, resp, &list)
	if len(list) != 3 {
		t.Fatalf("expected 3 tools, got %d", len(list))
	}
	for _, it := range list {
		switch it.ID {
		case "ghdl":
			if it.Recorded != "4.0.0" || it.Installed != "4.1.0" {
				t.Fatalf("unexpected ghdl row: %+v", it)
			}
		default:
			if it.Installed != tools.NotInstalled {
				t.Fatalf("unexpected row: %+v", it)
			}
		}
	}
}

func TestInstallEndpoint(t *testing.T) {
	r := tu.NewFakeRunner()
	r.On("sudo apt install -y ngspice", tu.Reply{Provides: []string{"ngspice"}})
	r.On("ngspice --version", tu.Reply{Out: "** ngspice-42 : Circuit level simulation program"})
	ts, a := newTestServer(t, r, &tu.FakeFetcher{})

	resp, err := http.Post(ts.URL+"/api/tools/ngspice/install", "application/json", nil)
	tu.Must(t, err)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	var res resultJSON
	decode(t, resp, &res)
	if !res.OK || res.Version != "42" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if v, _ := a.Registry.Get("ngspice"); v != "42" {
		t.Fatalf("registry not updated: %q", v)
	}
}

func TestUpdateEndpoint_NotInstalled(t *testing.T) {
	r := tu.NewFakeRunner()
	ts, _ := newTestServer(t, r, &tu.FakeFetcher{})
	resp, err := http.Post(ts.URL+"/api/tools/kicad/update", "application/json", nil)
	tu.Must(t, err)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("status %d", resp.StatusCode)
	}
	var res resultJSON
	decode(t, resp, &res)
	if res.OK || res.Reason != string(tools.ReasonNotInstalled) {
		t.Fatalf("unexpected result: %+v", res)
	}
	if len(r.CallsWithPrefix("sudo")) != 0 {
		t.Fatalf("no upgrade command expected: %v", r.Calls)
	}
}

func TestUpdateEndpoint_CheckFailed(t *testing.T) {
	r := tu.NewFakeRunner()
	r.Bins["kicad-cli"] = true
	r.On("kicad-cli version", tu.Reply{Out: "9.0.3"})
	f := &tu.FakeFetcher{Errs: map[string]error{"https://www.kicad.org/download/": errors.New("connection refused")}}
	ts, _ := newTestServer(t, r, f)
	resp, err := http.Post(ts.URL+"/api/tools/kicad/update", "application/json", nil)
	tu.Must(t, err)
	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("status %d", resp.StatusCode)
	}
	var res resultJSON
	decode(t, resp, &res)
	if res.OK || !strings.Contains(res.Message, "update check failed") || !strings.Contains(res.Error, "connection refused") {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestCheckEndpoint(t *testing.T) {
	r := tu.NewFakeRunner()
	r.Bins["kicad-cli"] = true
	r.On("kicad-cli version", tu.Reply{Out: "9.0.3"})
	f := &tu.FakeFetcher{Pages: map[string]string{"https://www.kicad.org/download/": "KiCad 9.0.4"}}
	ts, _ := newTestServer(t, r, f)
	resp, err := http.Get(ts.URL + "/api/tools/kicad/check")
	tu.Must(t, err)
	var chk checkJSON
	decode(t, resp, &chk)
	if chk.State != "available" || chk.Current != "9.0.3" || chk.Latest != "9.0.4" {
		t.Fatalf("unexpected check: %+v", chk)
	}
}

func TestUnknownToolAndAPI404(t *testing.T) {
	ts, _ := newTestServer(t, tu.NewFakeRunner(), &tu.FakeFetcher{})
	resp, err := http.Get(ts.URL + "/api/tools/eagle/check")
	tu.Must(t, err)
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status %d", resp.StatusCode)
	}
	resp, err = http.Get(ts.URL + "/api/nope")
	tu.Must(t, err)
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status %d", resp.StatusCode)
	}
}

func TestIndexServed(t *testing.T) {
	ts, _ := newTestServer(t, tu.NewFakeRunner(), &tu.FakeFetcher{})
	for _, p := range []string{"/", "/index.html", "/some/page"} {
		resp, err := http.Get(ts.URL + p)
		tu.Must(t, err)
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(resp.Body)
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK || !strings.Contains(buf.String(), "EDA Tool Manager") {
			t.Fatalf("%s: status %d", p, resp.StatusCode)
		}
	}
}

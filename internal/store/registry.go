package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Versions maps a tool name to its installed version.
type Versions map[string]string

// Names returns the tool names in sorted order.
func (v Versions) Names() []string {
	out := make([]string, 0, len(v))
	for k := range v {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// LoadVersions reads a JSON object of tool name to version from path.
// A missing file yields an empty map without error. Null or empty values
// are dropped so only installed tools remain as keys.
func LoadVersions(path string) (Versions, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Versions{}, nil
		}
		return nil, err
	}
	if len(strings.TrimSpace(string(b))) == 0 {
		return Versions{}, nil
	}
	var raw map[string]*string
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	out := Versions{}
	for k, v := range raw {
		if v == nil || strings.TrimSpace(*v) == "" {
			continue
		}
		out[k] = *v
	}
	return out, nil
}

// SaveVersions writes the full map to path with 4-space indentation,
// creating parent dirs. The file is replaced via a temp file and rename.
func SaveVersions(path string, v Versions) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("empty path")
	}
	if v == nil {
		v = Versions{}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".registry-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Registry is the persisted tool registry. Every Set saves the full map;
// load-modify-save runs under one lock.
type Registry struct {
	mu   sync.Mutex
	path string
	data Versions
}

// OpenRegistry loads the registry at path, starting empty when the file
// does not exist.
func OpenRegistry(path string) (*Registry, error) {
	v, err := LoadVersions(path)
	if err != nil {
		return nil, err
	}
	return &Registry{path: path, data: v}, nil
}

func (r *Registry) Path() string { return r.path }

// Get returns the recorded version for name.
func (r *Registry) Get(name string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.data[name]
	return v, ok
}

// Set records version for name and persists the whole map. On a save error
// the in-memory state is left unchanged.
func (r *Registry) Set(name, version string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := maps.Clone(r.data)
	if next == nil {
		next = Versions{}
	}
	next[name] = version
	if err := SaveVersions(r.path, next); err != nil {
		return fmt.Errorf("save registry: %w", err)
	}
	r.data = next
	return nil
}

// Snapshot returns a copy of the current map.
func (r *Registry) Snapshot() Versions {
	r.mu.Lock()
	defer r.mu.Unlock()
	return maps.Clone(r.data)
}

// Reload re-reads the file, e.g. after another process wrote it.
func (r *Registry) Reload() error {
	v, err := LoadVersions(r.path)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.data = v
	r.mu.Unlock()
	return nil
}

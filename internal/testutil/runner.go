package testutil

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"sync"
)

// Reply scripts the result of one command invocation.
// Provides lists binaries that appear on PATH once the command has run.
type Reply struct {
	Out      string
	Err      error
	Provides []string
}

// ErrExit mimics a command exiting non-zero.
var ErrExit = errors.New("exit status 1")

// FakeRunner is a scripted command runner for tests.
// Replies are keyed by the full command line ("brew install ngspice"); a key
// with several replies hands them out in order and repeats the last one.
// Unscripted commands fail with exec.ErrNotFound.
type FakeRunner struct {
	mu      sync.Mutex
	Bins    map[string]bool
	Paths   map[string]bool
	Replies map[string][]Reply
	Calls   []string
}

// NewFakeRunner returns an empty FakeRunner.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		Bins:    map[string]bool{},
		Paths:   map[string]bool{},
		Replies: map[string][]Reply{},
	}
}

// On appends scripted replies for a command line.
func (f *FakeRunner) On(cmdline string, replies ...Reply) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Replies[cmdline] = append(f.Replies[cmdline], replies...)
	return f
}

// Run implements the command runner interface.
func (f *FakeRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	line := strings.Join(append([]string{name}, args...), " ")
	f.Calls = append(f.Calls, line)
	rs := f.Replies[line]
	if len(rs) == 0 {
		return "", exec.ErrNotFound
	}
	r := rs[0]
	if len(rs) > 1 {
		f.Replies[line] = rs[1:]
	}
	for _, b := range r.Provides {
		f.Bins[b] = true
	}
	return r.Out, r.Err
}

// LookPath reports binaries registered in Bins.
func (f *FakeRunner) LookPath(name string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Bins[name] {
		return "/usr/local/bin/" + name, nil
	}
	return "", exec.ErrNotFound
}

// Exists reports paths registered in Paths.
func (f *FakeRunner) Exists(path string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Paths[path]
}

// CallsWithPrefix returns recorded command lines starting with prefix.
func (f *FakeRunner) CallsWithPrefix(prefix string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, c := range f.Calls {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	return out
}

package tools

import (
    "context"
    "os"
    "os/exec"
)

// Runner executes external commands. The default implementation shells out;
// tests substitute a scripted runner.
type Runner interface {
    // Run executes name with args and returns combined output.
    Run(ctx context.Context, name string, args ...string) (string, error)
    LookPath(name string) (string, error)
    // Exists reports whether a filesystem path exists.
    Exists(path string) bool
}

// ExecRunner runs commands on the host.
type ExecRunner struct{}

// Run executes a command and returns combined output as string.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
    cmd := exec.CommandContext(ctx, name, args...)
    // Avoid opening pager or interactive prompts
    cmd.Env = append(os.Environ(), "NO_COLOR=1", "HOMEBREW_NO_AUTO_UPDATE=1")
    out, err := cmd.CombinedOutput()
    if ctx.Err() == context.DeadlineExceeded {
        return string(out), ctx.Err()
    }
    return string(out), err
}

func (ExecRunner) LookPath(name string) (string, error) {
    return exec.LookPath(name)
}

func (ExecRunner) Exists(path string) bool {
    _, err := os.Stat(path)
    return err == nil
}

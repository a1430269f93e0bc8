package tools

import "fmt"

// Reason is a machine-readable failure code carried by Result.
type Reason string

const (
	ReasonDependencies Reason = "dependencies"
	ReasonCommand      Reason = "command"
	ReasonNotDetected  Reason = "not-detected"
	ReasonConfigure    Reason = "configure"
	ReasonUnsupported  Reason = "unsupported"
	ReasonNotInstalled Reason = "not-installed"
	ReasonNoUpdate     Reason = "no-update"
	ReasonRegistry     Reason = "registry"
	ReasonInternal     Reason = "internal"
)

// Op names the lifecycle operation a Result belongs to.
type Op string

const (
	OpInstall   Op = "install"
	OpUpgrade   Op = "upgrade"
	OpConfigure Op = "configure"
)

// Result is the outcome of a lifecycle operation. Failures carry a Reason
// and, when there is one, the underlying error.
type Result struct {
	Tool    ToolID
	Op      Op
	OK      bool
	Version string
	Reason  Reason
	Err     error
}

func succeeded(id ToolID, op Op, version string) Result {
	return Result{Tool: id, Op: op, OK: true, Version: version}
}

// CheckFailed reports a no-update result caused by a failed update check
// rather than an up-to-date tool.
func (r Result) CheckFailed() bool {
	return !r.OK && r.Reason == ReasonNoUpdate && r.Err != nil
}

func failed(id ToolID, op Op, reason Reason, err error) Result {
	return Result{Tool: id, Op: op, Reason: reason, Err: err}
}

// String renders a one-line summary suitable for menus and logs.
func (r Result) String() string {
	if r.OK {
		if r.Version != "" {
			return fmt.Sprintf("%s %s succeeded (version %s)", r.Tool, r.Op, r.Version)
		}
		return fmt.Sprintf("%s %s succeeded", r.Tool, r.Op)
	}
	switch {
	case r.Reason == ReasonNoUpdate && r.Err != nil:
		return fmt.Sprintf("update check failed for %s: %v", r.Tool, r.Err)
	case r.Reason == ReasonNoUpdate, r.Reason == ReasonNotInstalled:
		return fmt.Sprintf("no update for %s or not installed", r.Tool)
	}
	if r.Err != nil {
		return fmt.Sprintf("%s %s failed [%s]: %v", r.Tool, r.Op, r.Reason, r.Err)
	}
	return fmt.Sprintf("%s %s failed [%s]", r.Tool, r.Op, r.Reason)
}

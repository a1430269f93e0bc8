package system

import (
    "io"
    "os"
    "path/filepath"
    "strings"

    clog "github.com/charmbracelet/log"
)

// Logger is the shared application logger.
// Until SetupLogging runs it prints to stderr only; afterwards every line also
// goes to the append-only log file. There is no teardown besides closing the
// file returned by SetupLogging.
var Logger = NewLogger(os.Stderr, clog.InfoLevel)

// logFile is the file opened by SetupLogging, if any.
var logFile io.Writer

// NewLogger creates a logger with timestamps writing to w at the given level.
func NewLogger(w io.Writer, level clog.Level) *clog.Logger {
    return clog.NewWithOptions(w, clog.Options{
        ReportTimestamp: true,
        TimeFormat:      "2006-01-02 15:04:05",
        Level:           level,
    })
}

// ParseLevel maps a config string to a log level; empty means info.
func ParseLevel(s string) (clog.Level, error) {
    s = strings.TrimSpace(s)
    if s == "" {
        return clog.InfoLevel, nil
    }
    return clog.ParseLevel(s)
}

// SetupLogging points Logger at stderr plus the log file at path and sets the
// level. An empty path keeps console-only output.
func SetupLogging(path string, level clog.Level) (io.Closer, error) {
    Logger.SetLevel(level)
    if strings.TrimSpace(path) == "" {
        return io.NopCloser(nil), nil
    }
    if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
        return nil, err
    }
    f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
    if err != nil {
        return nil, err
    }
    logFile = f
    Logger.SetOutput(io.MultiWriter(os.Stderr, f))
    return f, nil
}

// DetachConsole stops Logger from writing to stderr, e.g. while a
// full-screen TUI owns the terminal. The log file keeps receiving lines.
// The returned func restores console output.
func DetachConsole() (restore func()) {
    if logFile == nil {
        Logger.SetOutput(io.Discard)
        return func() { Logger.SetOutput(os.Stderr) }
    }
    Logger.SetOutput(logFile)
    return func() { Logger.SetOutput(io.MultiWriter(os.Stderr, logFile)) }
}

package ui

import (
	"time"

	"github.com/fsnotify/fsnotify"

	"edactl/internal/app"
	"edactl/internal/tools"
)

// Bubble Tea messages
type refreshedMsg struct{ status []app.Status }

type checkedMsg struct{ check tools.UpdateCheck }

type resultMsg struct{ result tools.Result }

// periodic tick for status bar time
type tickMsg time.Time

type watchStartedMsg struct {
	w  *fsnotify.Watcher
	ch chan struct{}
}

// registryChangedMsg is sent when the registry file is written, by this
// process or another one.
type registryChangedMsg struct{}

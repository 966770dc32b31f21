package state

import "quickdiff/internal/session"

// DiffMode controls how the diff is rendered.
type DiffMode int

const (
    Unified DiffMode = iota
    SideBySide
)

// UIState holds cross-widget UI state used by status bar, diff, and editors.
// Session content lives in session.State; this is presentation only.
type UIState struct {
    // View
    Wrap       bool
    View       DiffMode
    IgnoreTrim bool
    ShowHelp   bool

    // Layout & scrolling
    Width        int
    Height       int
    MinCol       int
    ScrollHLeft  int
    ScrollHRight int
    ScrollV      int
    SyncScroll   bool

    // Focus is the pane receiving keystrokes.
    Focus session.Side

    // Notices and ephemeral messages
    Notice string
}

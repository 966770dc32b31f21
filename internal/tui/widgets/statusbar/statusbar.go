package statusbar

import (
    "fmt"
    "strings"

    "quickdiff/internal/lang"
    "quickdiff/internal/session"
    "quickdiff/internal/tui/state"
    "quickdiff/internal/tui/widgets/diff"
)

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// View composes a concise status line reflecting session and UI state.
func (StatusBar) View(s state.UIState, ss session.State, st diff.Stats) string {
    mode := "[EDIT]"
    if ss.Gate.ReadOnly {
        mode = "[RO]"
    }
    language := lang.DisplayName(ss.Language)
    if ss.LanguagePinned {
        language += " (pinned)"
    }
    changes := fmt.Sprintf("+%d -%d", st.Added, st.Deleted)
    if !st.Changed() {
        changes = "No changes"
    }
    view := "Inline"
    if s.View == state.SideBySide {
        view = "Side-by-side"
    }
    wrap := "Wrap: Off"
    if s.Wrap {
        wrap = "Wrap: On"
    }
    ws := "WS: Shown"
    if s.IgnoreTrim {
        ws = "WS: Ignored"
    }
    pos := fmt.Sprintf("H:%d|%d V:%d", s.ScrollHLeft, s.ScrollHRight, s.ScrollV)

    parts := []string{mode, language, changes, view, wrap, ws, pos}
    if s.Notice != "" {
        parts = append(parts, s.Notice)
    }
    return strings.Join(parts, "  ")
}

package statusbar

import (
    "strings"
    "testing"

    "quickdiff/internal/session"
    "quickdiff/internal/tui/state"
    "quickdiff/internal/tui/widgets/diff"
)

func TestStatusLine(t *testing.T) {
    ss := session.New()
    ss.Language = "go"
    out := NewStatusBar().View(state.UIState{View: state.SideBySide, Notice: "saved"}, ss, diff.Stats{Added: 2, Deleted: 1})
    for _, want := range []string{"[EDIT]", "Go", "+2 -1", "Side-by-side", "Wrap: Off", "saved"} {
        if !strings.Contains(out, want) {
            t.Fatalf("status line %q missing %q", out, want)
        }
    }
}

func TestReadOnlyAndPinned(t *testing.T) {
    ss := session.New()
    ss.Gate.ReadOnly = true
    ss.LanguagePinned = true
    out := NewStatusBar().View(state.UIState{}, ss, diff.Stats{})
    for _, want := range []string{"[RO]", "Plain Text (pinned)", "No changes", "Inline"} {
        if !strings.Contains(out, want) {
            t.Fatalf("status line %q missing %q", out, want)
        }
    }
}

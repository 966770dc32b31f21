package util

import (
    "strings"

    "quickdiff/internal/session"
    "quickdiff/internal/tui/state"
)

// ComputeTags calculates the status chips for one pane from its provenance
// record, the read-only gate and the live buffer.
//
// The returned slice preserves a stable order:
//   File|Pasted|Edited, Modified, Shared, Read-only, Lines
//
// Rules:
// - At most one provenance tag; untouched panes get none.
// - Modified only for tracked provenance (File, Pasted) whose buffer diverged.
// - Shared and Read-only mirror the gate and so appear on both panes alike.
// - Lines is always included (counter).
func ComputeTags(c session.Content, g session.Gate, buf string) []state.Tag {
    tags := make([]state.Tag, 0, 5)

    switch c.Kind {
    case session.KindFile:
        tags = append(tags, state.Tag{Kind: state.FILE})
    case session.KindPasted:
        tags = append(tags, state.Tag{Kind: state.PASTED})
    case session.KindEdited:
        tags = append(tags, state.Tag{Kind: state.EDITED})
    }

    if c.Tracked() && c.Modified {
        tags = append(tags, state.Tag{Kind: state.MODIFIED})
    }
    if g.FromShared {
        tags = append(tags, state.Tag{Kind: state.SHARED})
    }
    if g.ReadOnly {
        tags = append(tags, state.Tag{Kind: state.READ_ONLY})
    }

    tags = append(tags, state.Tag{Kind: state.LINES, Value: LineCount(buf)})
    return tags
}

// LineCount counts lines the way an editor gutter does: an empty buffer has
// none and a trailing newline opens one more.
func LineCount(s string) int {
    if s == "" {
        return 0
    }
    return strings.Count(s, "\n") + 1
}

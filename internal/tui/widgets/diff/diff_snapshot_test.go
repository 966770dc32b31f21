package diff

import (
    "strings"
    "testing"

    "quickdiff/internal/tui/state"
)

func TestUnifiedSnapshot(t *testing.T) {
    v := NewDiffView(true)
    s := state.UIState{View: state.Unified, Width: 40}
    out := v.View(s, "a\nb", "a\nc")
    want := "  1 1 a\n" +
        "- 2   b\n" +
        "+   2 c\n"
    if out != want {
        t.Fatalf("unified output mismatch:\n%s\nwant:\n%s", out, want)
    }
}

func TestUnifiedTrailingNewline(t *testing.T) {
    out := NewDiffView(true).View(state.UIState{Width: 100}, "a\nb\n", "a\nc\n")
    want := "  1 1 a\n" +
        "- 2   b\n" +
        "+   2 c\n" +
        "  3 3\n"
    if out != want {
        t.Fatalf("unified output mismatch:\n%s\nwant:\n%s", out, want)
    }
}

func TestUnifiedPastLineTen(t *testing.T) {
    left := strings.Join([]string{"l1", "l2", "l3", "l4", "l5", "l6", "l7", "l8", "l9", "l10", "l11", "l12"}, "\n")
    right := strings.Replace(left, "l11", "L11", 1)
    out := NewDiffView(true).View(state.UIState{Width: 100}, left, right)
    for _, want := range []string{"  10 10 l10\n", "- 11    l11\n", "+    11 L11\n", "  12 12 l12\n"} {
        if !strings.Contains(out, want) {
            t.Fatalf("missing %q in:\n%s", want, out)
        }
    }
}

func TestUnifiedGroupsChangeBlocks(t *testing.T) {
    v := NewDiffView(true)
    out := v.View(state.UIState{Width: 40}, "x\ny", "X\nY")
    lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
    if len(lines) != 4 || !strings.HasPrefix(lines[0], "- ") || !strings.HasPrefix(lines[1], "- ") ||
        !strings.HasPrefix(lines[2], "+ ") || !strings.HasPrefix(lines[3], "+ ") {
        t.Fatalf("expected removed lines before added lines, got:\n%s", out)
    }
}

func TestSideBySideSnapshot(t *testing.T) {
    v := NewDiffView(true)
    s := state.UIState{View: state.SideBySide, Width: 23}
    out := v.View(s, "a\nb", "a\nc")
    want := "1   a      │ 1   a\n" +
        "2 - b      │ 2 + c\n"
    if out != want {
        t.Fatalf("side-by-side output mismatch:\n%s\nwant:\n%s", out, want)
    }
}

func TestSideBySideWrap(t *testing.T) {
    v := NewDiffView(true)
    s := state.UIState{View: state.SideBySide, Width: 23, Wrap: true}
    out := v.View(s, "abcdefgh", "")
    want := "1 - abcdef │\n" +
        "    gh     │\n"
    if out != want {
        t.Fatalf("wrapped output mismatch:\n%q\nwant:\n%q", out, want)
    }
}

func TestHorizontalScroll(t *testing.T) {
    v := NewDiffView(true)
    out := v.View(state.UIState{Width: 40, ScrollHLeft: 2}, "abcdef", "abcdef")
    if out != "  1 1 cdef\n" {
        t.Fatalf("unexpected scrolled output %q", out)
    }
}

func TestIgnoreTrimWhitespace(t *testing.T) {
    v := NewDiffView(true)
    out := v.View(state.UIState{Width: 40, IgnoreTrim: true}, "  a", "a")
    if out != "  1 1 a\n" {
        t.Fatalf("expected whitespace-only change hidden, got %q", out)
    }
    out = v.View(state.UIState{Width: 40}, "  a", "a")
    if !strings.Contains(out, "- 1") || !strings.Contains(out, "+   1 a") {
        t.Fatalf("expected whitespace change shown, got %q", out)
    }
}

func TestEmptyInputs(t *testing.T) {
    out := NewDiffView(true).View(state.UIState{}, "", "")
    if !strings.Contains(out, "Nothing to compare") {
        t.Fatalf("expected placeholder, got %q", out)
    }
}

func TestCutRespectsWideRunes(t *testing.T) {
    got := cut([]span{{text: "日本語"}}, 1, 4)
    if len(got) != 1 || got[0].text != "本語" {
        t.Fatalf("unexpected cut %v", got)
    }
}

func TestDisplayExpandsTabsAndControls(t *testing.T) {
    if got := display("\tx\x1b\r"); got != "    x·" {
        t.Fatalf("unexpected display %q", got)
    }
}

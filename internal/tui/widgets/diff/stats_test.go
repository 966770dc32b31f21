package diff

import (
    "fmt"
    "strings"
    "testing"
)

// numbered returns n distinct lines prefix01..prefixNN joined by "\n".
func numbered(prefix string, n int) string {
    lines := make([]string, n)
    for i := range lines {
        lines[i] = fmt.Sprintf("%s%02d", prefix, i+1)
    }
    return strings.Join(lines, "\n")
}

func TestCompute(t *testing.T) {
    cases := []struct {
        name        string
        left, right string
        ignoreTrim  bool
        want        Stats
    }{
        {"identical", "a\nb", "a\nb", false, Stats{}},
        {"both empty", "", "", false, Stats{}},
        {"added to empty", "", "x\ny", false, Stats{Added: 2}},
        {"cleared", "x", "", false, Stats{Deleted: 1}},
        {"replace and append", "a\nb\nc", "a\nx\nc\nd", false, Stats{Added: 2, Deleted: 1}},
        {"whitespace counted", "  a\nb", "a\nb", false, Stats{Added: 1, Deleted: 1}},
        {"whitespace ignored", "  a\nb\t", "a\nb", true, Stats{}},
        {"inner whitespace still counts", "a b", "a  b", true, Stats{Added: 1, Deleted: 1}},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            got := Compute(tc.left, tc.right, tc.ignoreTrim)
            if got != tc.want {
                t.Fatalf("Compute(%q, %q) = %+v, want %+v", tc.left, tc.right, got, tc.want)
            }
            if got.Changed() != (tc.want != Stats{}) {
                t.Fatalf("Changed() disagrees with counts")
            }
        })
    }
}

func TestComputeManyLines(t *testing.T) {
    base := numbered("line", 15)
    edited := strings.Replace(base, "line11", "LINE11", 1) + "\nextra1\nextra2"
    cases := []struct {
        name        string
        left, right string
        want        Stats
    }{
        {"twelve lines replaced by one", numbered("old", 12), "new", Stats{Added: 1, Deleted: 12}},
        {"one line replaced by twelve", "a", numbered("x", 12), Stats{Added: 12, Deleted: 1}},
        {"uneven change past line ten", base, edited, Stats{Added: 3, Deleted: 1}},
        {"trailing newline kept", base + "\n", base + "\n", Stats{}},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            if got := Compute(tc.left, tc.right, false); got != tc.want {
                t.Fatalf("Compute = %+v, want %+v", got, tc.want)
            }
        })
    }
}

func TestComputeRowsStayInRange(t *testing.T) {
    pairs := [][2]string{
        {numbered("old", 12), "new"},
        {"a", numbered("x", 12)},
        {numbered("l", 30), numbered("l", 20) + "\nz\n" + numbered("m", 5)},
        {"a\nb\n", "a\nc\n"},
    }
    for _, p := range pairs {
        a, b := splitLines(p[0]), splitLines(p[1])
        rows, _ := compute(a, b, false)
        seenL, seenR := 0, 0
        for _, rw := range rows {
            if rw.l >= len(a) || rw.r >= len(b) {
                t.Fatalf("row %+v out of range for %d/%d lines", rw, len(a), len(b))
            }
            if rw.l >= 0 {
                seenL++
            }
            if rw.r >= 0 {
                seenR++
            }
        }
        if seenL != len(a) || seenR != len(b) {
            t.Fatalf("rows cover %d/%d lines, want %d/%d", seenL, seenR, len(a), len(b))
        }
    }
}

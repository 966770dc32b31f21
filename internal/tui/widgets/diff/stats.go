package diff

import (
    "strings"
    "unicode/utf8"

    dmp "github.com/sergi/go-diff/diffmatchpatch"
)

// Op is the kind of a diff row.
type Op int

const (
    Equal Op = iota
    Delete
    Insert
    Change // a deleted line paired with the inserted line that replaced it
)

// Stats counts changed lines the way an editor's change gutter does.
type Stats struct {
    Added   int
    Deleted int
}

// Changed reports whether the two texts differ at all.
func (s Stats) Changed() bool { return s.Added > 0 || s.Deleted > 0 }

// row pairs a line index from each side. -1 marks a missing side.
type row struct {
    op   Op
    l, r int
}

// Compute returns line-change statistics for left against right. With
// ignoreTrim, lines that differ only in leading or trailing whitespace are equal.
func Compute(left, right string, ignoreTrim bool) Stats {
    _, st := compute(splitLines(left), splitLines(right), ignoreTrim)
    return st
}

// splitLines splits on "\n". An empty text has no lines.
func splitLines(s string) []string {
    if s == "" {
        return nil
    }
    return strings.Split(s, "\n")
}

// compute runs go-diff in line mode: every distinct line becomes one rune, so
// the character diff of the rune strings is a line diff.
func compute(a, b []string, ignoreTrim bool) ([]row, Stats) {
    d := dmp.New()
    ra, rb, _ := d.DiffLinesToRunes(joinLines(a, ignoreTrim), joinLines(b, ignoreTrim))
    diffs := d.DiffMainRunes(ra, rb, false)

    var (
        rows []row
        st   Stats
        i, j int
        dels []int
        ins  []int
    )
    flush := func() {
        n := min(len(dels), len(ins))
        for k := 0; k < n; k++ {
            rows = append(rows, row{op: Change, l: dels[k], r: ins[k]})
        }
        for _, l := range dels[n:] {
            rows = append(rows, row{op: Delete, l: l, r: -1})
        }
        for _, r := range ins[n:] {
            rows = append(rows, row{op: Insert, l: -1, r: r})
        }
        st.Deleted += len(dels)
        st.Added += len(ins)
        dels, ins = dels[:0], ins[:0]
    }

    for _, df := range diffs {
        n := utf8.RuneCountInString(df.Text)
        switch df.Type {
        case dmp.DiffEqual:
            flush()
            for k := 0; k < n; k++ {
                rows = append(rows, row{op: Equal, l: i, r: j})
                i++
                j++
            }
        case dmp.DiffDelete:
            for k := 0; k < n; k++ {
                dels = append(dels, i)
                i++
            }
        case dmp.DiffInsert:
            for k := 0; k < n; k++ {
                ins = append(ins, j)
                j++
            }
        }
    }
    flush()
    return rows, st
}

// joinLines terminates every line with "\n" so the last line hashes like the others.
func joinLines(lines []string, ignoreTrim bool) string {
    var b strings.Builder
    for _, l := range lines {
        if ignoreTrim {
            l = strings.TrimSpace(l)
        }
        b.WriteString(l)
        b.WriteByte('\n')
    }
    return b.String()
}

package diff

import (
    "fmt"
    "strconv"
    "strings"
    "unicode"

    "github.com/charmbracelet/lipgloss"
    "github.com/mattn/go-runewidth"
    dmp "github.com/sergi/go-diff/diffmatchpatch"

    "quickdiff/internal/tui/state"
)

const (
    defaultWidth = 80
    tabWidth     = 4
    separator    = " │ "
)

var (
    diffDelLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
    diffAddLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
    diffDelChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}).Underline(true)
    diffAddChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"}).Underline(true)
    faint       = lipgloss.NewStyle().Faint(true)
)

// DiffView renders two texts as a line diff with intraline highlights.
type DiffView struct {
    NoColor bool
}

func NewDiffView(noColor bool) DiffView { return DiffView{NoColor: noColor} }

// View renders the whole diff; the caller scrolls it vertically. Side-by-side
// uses one column per text with a vertical separator, unified prefixes lines
// with +/- markers. Horizontal scroll and wrapping follow s.
func (v DiffView) View(s state.UIState, left, right string) string {
    a, b := splitLines(left), splitLines(right)
    rows, _ := compute(a, b, s.IgnoreTrim)
    if len(rows) == 0 {
        return v.paint([]span{{text: "Nothing to compare yet"}}, faint, faint) + "\n"
    }
    r := renderer{
        v:     v,
        s:     s,
        a:     a,
        b:     b,
        num:   len(strconv.Itoa(max(len(a), len(b)))),
        width: s.Width,
    }
    if r.width <= 0 {
        r.width = defaultWidth
    }
    var sb strings.Builder
    if s.View == state.SideBySide {
        r.sideBySide(&sb, rows)
    } else {
        r.unified(&sb, rows)
    }
    return sb.String()
}

// span is a run of display text; hl marks intraline changes.
type span struct {
    text string
    hl   bool
}

type renderer struct {
    v     DiffView
    s     state.UIState
    a, b  []string
    num   int // line number gutter width
    width int
}

func (r renderer) unified(sb *strings.Builder, rows []row) {
    // marker, space, two numbers each followed by a space
    cw := max(r.width-2-2*(r.num+1), 1)
    for i := 0; i < len(rows); {
        if rows[i].op == Equal {
            rw := rows[i]
            gutter := fmt.Sprintf("  %*d %*d ", r.num, rw.l+1, r.num, rw.r+1)
            r.emit(sb, gutter, plain(display(r.b[rw.r])), cw, r.s.ScrollHLeft, faint, faint)
            i++
            continue
        }
        // A change block prints all removed lines before the added ones.
        j := i
        for j < len(rows) && rows[j].op != Equal {
            j++
        }
        block := rows[i:j]
        for _, rw := range block {
            if rw.l < 0 {
                continue
            }
            gutter := fmt.Sprintf("- %*d %*s ", r.num, rw.l+1, r.num, "")
            l, _ := r.spans(rw)
            r.emit(sb, gutter, l, cw, r.s.ScrollHLeft, diffDelLine, diffDelChar)
        }
        for _, rw := range block {
            if rw.r < 0 {
                continue
            }
            gutter := fmt.Sprintf("+ %*s %*d ", r.num, "", r.num, rw.r+1)
            _, rs := r.spans(rw)
            r.emit(sb, gutter, rs, cw, r.s.ScrollHLeft, diffAddLine, diffAddChar)
        }
        i = j
    }
}

// emit writes one logical line, wrapped onto continuation lines when Wrap is on.
func (r renderer) emit(sb *strings.Builder, gutter string, spans []span, cw, scroll int, base, hl lipgloss.Style) {
    for k, chunk := range r.chunks(spans, cw, scroll) {
        g := gutter
        if k > 0 {
            g = strings.Repeat(" ", runewidth.StringWidth(gutter))
        }
        line := r.v.paint([]span{{text: g}}, base, hl) + r.v.paint(chunk, base, hl)
        sb.WriteString(strings.TrimRight(line, " "))
        sb.WriteByte('\n')
    }
}

func (r renderer) sideBySide(sb *strings.Builder, rows []row) {
    colW := max((r.width-runewidth.StringWidth(separator))/2, r.num+3)
    // gutter is the line number, a space and a two-cell marker
    cw := max(colW-r.num-3, 1)
    for _, rw := range rows {
        l, rs := r.spans(rw)
        lbase, lhl, lmark := faint, faint, "  "
        rbase, rhl, rmark := faint, faint, "  "
        switch rw.op {
        case Delete, Change:
            lbase, lhl, lmark = diffDelLine, diffDelChar, "- "
        }
        switch rw.op {
        case Insert, Change:
            rbase, rhl, rmark = diffAddLine, diffAddChar, "+ "
        }

        var lc, rc [][]span
        if rw.l >= 0 {
            lc = r.chunks(l, cw, r.s.ScrollHLeft)
        }
        if rw.r >= 0 {
            rc = r.chunks(rs, cw, r.s.ScrollHRight)
        }
        for k := 0; k < max(len(lc), len(rc)); k++ {
            left := r.column(rw.l, k, lmark, lc, cw, lbase, lhl)
            right := r.column(rw.r, k, rmark, rc, cw, rbase, rhl)
            sb.WriteString(strings.TrimRight(left+separator+right, " "))
            sb.WriteByte('\n')
        }
    }
}

// column renders the k-th visual line of one side padded to the column width.
// Missing sides and exhausted wraps render as blanks.
func (r renderer) column(idx, k int, mark string, chunks [][]span, cw int, base, hl lipgloss.Style) string {
    blank := strings.Repeat(" ", r.num+1+len(mark)+cw)
    if idx < 0 || k >= len(chunks) {
        return blank
    }
    gutter := fmt.Sprintf("%*d %s", r.num, idx+1, mark)
    if k > 0 {
        gutter = strings.Repeat(" ", r.num+1+len(mark))
    }
    chunk := chunks[k]
    pad := cw - spansWidth(chunk)
    return r.v.paint([]span{{text: gutter}}, base, hl) + r.v.paint(chunk, base, hl) + strings.Repeat(" ", max(pad, 0))
}

// spans returns the display spans for both sides of a row. Changed pairs get
// character-level highlights from a semantic cleanup of their diff.
func (r renderer) spans(rw row) (left, right []span) {
    var lt, rt string
    if rw.l >= 0 {
        lt = display(r.a[rw.l])
    }
    if rw.r >= 0 {
        rt = display(r.b[rw.r])
    }
    if rw.op != Change {
        return plain(lt), plain(rt)
    }
    d := dmp.New()
    diffs := d.DiffMain(lt, rt, false)
    diffs = d.DiffCleanupSemantic(diffs)
    for _, df := range diffs {
        switch df.Type {
        case dmp.DiffDelete:
            left = append(left, span{text: df.Text, hl: true})
        case dmp.DiffInsert:
            right = append(right, span{text: df.Text, hl: true})
        case dmp.DiffEqual:
            left = append(left, span{text: df.Text})
            right = append(right, span{text: df.Text})
        }
    }
    return left, right
}

// chunks cuts spans into visual lines of at most cw cells: one line starting
// at scroll, or every line of the wrapped text when Wrap is on.
func (r renderer) chunks(spans []span, cw, scroll int) [][]span {
    if !r.s.Wrap {
        return [][]span{cut(spans, scroll, cw)}
    }
    total := spansWidth(spans)
    out := [][]span{cut(spans, 0, cw)}
    for from := cw; from < total; from += cw {
        out = append(out, cut(spans, from, cw))
    }
    return out
}

// cut returns the spans covering display cells [from, from+width). A wide rune
// straddling either edge is dropped.
func cut(spans []span, from, width int) []span {
    var out []span
    col, used := 0, 0
    for _, sp := range spans {
        var b strings.Builder
        for _, c := range sp.text {
            w := runewidth.RuneWidth(c)
            if col < from {
                col += w
                continue
            }
            if used+w > width {
                if b.Len() > 0 {
                    out = append(out, span{text: b.String(), hl: sp.hl})
                }
                return out
            }
            b.WriteRune(c)
            used += w
            col += w
        }
        if b.Len() > 0 {
            out = append(out, span{text: b.String(), hl: sp.hl})
        }
    }
    return out
}

func spansWidth(spans []span) int {
    n := 0
    for _, sp := range spans {
        n += runewidth.StringWidth(sp.text)
    }
    return n
}

func (v DiffView) paint(spans []span, base, hl lipgloss.Style) string {
    var b strings.Builder
    for _, sp := range spans {
        switch {
        case v.NoColor:
            b.WriteString(sp.text)
        case sp.hl:
            b.WriteString(hl.Render(sp.text))
        default:
            b.WriteString(base.Render(sp.text))
        }
    }
    return b.String()
}

func plain(s string) []span {
    if s == "" {
        return nil
    }
    return []span{{text: s}}
}

// display makes a line safe for a terminal cell grid: tabs expand, a trailing
// CR is dropped and other control characters become visible.
func display(line string) string {
    line = strings.TrimSuffix(line, "\r")
    line = strings.ReplaceAll(line, "\t", strings.Repeat(" ", tabWidth))
    return strings.Map(func(c rune) rune {
        if unicode.IsControl(c) {
            return '·'
        }
        return c
    }, line)
}

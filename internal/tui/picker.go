package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"quickdiff/internal/lang"
)

const pickerRows = 10

var matchStyle = lipgloss.NewStyle().Underline(true).Bold(true)

// langPicker filters the language list as the user types.
type langPicker struct {
	input   textinput.Model
	matches []lang.Match
	cursor  int
}

func newLangPicker(current string) langPicker {
	ti := textinput.New()
	ti.Prompt = "Language: "
	ti.Placeholder = lang.DisplayName(current)
	ti.CharLimit = 64
	ti.Focus()
	p := langPicker{input: ti}
	p.filter()
	for i, m := range p.matches {
		if m.ID == current {
			p.cursor = i
		}
	}
	return p
}

func (p *langPicker) filter() {
	p.matches = lang.Search(p.input.Value())
	p.cursor = 0
}

func (p *langPicker) move(delta int) {
	if len(p.matches) == 0 {
		return
	}
	p.cursor = (p.cursor + delta + len(p.matches)) % len(p.matches)
}

// selected returns the highlighted language id, if any.
func (p langPicker) selected() (string, bool) {
	if len(p.matches) == 0 {
		return "", false
	}
	return p.matches[p.cursor].ID, true
}

func (p langPicker) view(noColor bool) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Select language") + "\n")
	b.WriteString(p.input.View() + "\n\n")
	if len(p.matches) == 0 {
		b.WriteString(faintStyle.Render("  no match") + "\n")
		return b.String()
	}
	start := 0
	if p.cursor >= pickerRows {
		start = p.cursor - pickerRows + 1
	}
	end := min(start+pickerRows, len(p.matches))
	for i := start; i < end; i++ {
		m := p.matches[i]
		name := highlight(m.Name, m.Positions, noColor)
		if i == p.cursor {
			b.WriteString(selStyle.Render("> ") + name + "\n")
		} else {
			b.WriteString("  " + name + "\n")
		}
	}
	b.WriteString(faintStyle.Render("\n↑/↓: move   enter: pin language   esc: cancel") + "\n")
	return b.String()
}

// highlight marks the matched rune positions of name.
func highlight(name string, positions []int, noColor bool) string {
	if noColor || len(positions) == 0 {
		return name
	}
	hit := make(map[int]bool, len(positions))
	for _, p := range positions {
		hit[p] = true
	}
	var b strings.Builder
	for i, r := range []rune(name) {
		if hit[i] {
			b.WriteString(matchStyle.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

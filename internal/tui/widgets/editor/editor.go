package editor

import (
    "strings"

    "github.com/charmbracelet/lipgloss"

    "quickdiff/internal/tui/state"
    "quickdiff/internal/tui/widgets/tagchips"
)

var (
    focusStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "205", Dark: "213"}).Bold(true)
    blurStyle  = lipgloss.NewStyle().Bold(true)
)

// Pane is what the editor widget needs to draw one side.
type Pane struct {
    Label   string
    Tags    []state.Tag
    Body    string // the rendered text area
    Focused bool
}

type Editor struct {
    NoColor bool
}

func NewEditor(noColor bool) Editor { return Editor{NoColor: noColor} }

// View renders a header line with the provenance label and tag chips above the buffer.
func (e Editor) View(p Pane) string {
    marker := "  "
    style := blurStyle
    if p.Focused {
        marker = "> "
        style = focusStyle
    }
    header := marker + p.Label
    if !e.NoColor {
        header = style.Render(header)
    }
    if chips := tagchips.View(p.Tags, e.NoColor); chips != "" {
        header += "  " + chips
    }
    var b strings.Builder
    b.WriteString(header)
    b.WriteString("\n")
    b.WriteString(p.Body)
    return b.String()
}

package tagchips

import (
    "fmt"
    "strings"

    "github.com/charmbracelet/lipgloss"

    "quickdiff/internal/tui/state"
    "quickdiff/internal/tui/util"
)

// View renders pane tags in a stable order using colored chips when
// possible and ASCII fallbacks when color is disabled or not desired.
func View(tags []state.Tag, noColor bool) string {
    if len(tags) == 0 {
        return ""
    }
    noColor = util.NoColor(noColor)

    palette := util.DefaultPalette()
    parts := make([]string, 0, len(tags))
    for _, t := range tags {
        parts = append(parts, renderChip(t, noColor, palette))
    }
    return strings.Join(parts, " ")
}

func renderChip(t state.Tag, noColor bool, p util.Palette) string {
    label := chipLabel(t)
    if noColor {
        return fmt.Sprintf("[%s]", label)
    }
    return chipStyle(t, p).Render(label)
}

func chipLabel(t state.Tag) string {
    switch t.Kind {
    case state.FILE:
        return "File"
    case state.PASTED:
        return "Pasted"
    case state.EDITED:
        return "Edited"
    case state.MODIFIED:
        return "Modified"
    case state.SHARED:
        return "Shared"
    case state.READ_ONLY:
        return "Read-only"
    case state.LINES:
        if t.Value == 1 {
            return "1 line"
        }
        return fmt.Sprintf("%d lines", t.Value)
    default:
        return "Tag"
    }
}

func chipStyle(t state.Tag, p util.Palette) lipgloss.Style {
    switch t.Kind {
    case state.FILE:
        return p.Chip(p.Primary)
    case state.PASTED:
        return p.Chip(p.Success)
    case state.EDITED:
        return p.Chip(p.MutedDark)
    case state.MODIFIED:
        return p.Chip(p.Warning)
    case state.SHARED:
        return p.Chip(p.Primary)
    case state.READ_ONLY:
        return p.Chip(p.Danger)
    case state.LINES:
        return p.Chip(p.Muted)
    default:
        return lipgloss.NewStyle().Padding(0, 1).Bold(true)
    }
}

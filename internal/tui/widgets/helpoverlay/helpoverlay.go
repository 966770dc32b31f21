package helpoverlay

import (
    "fmt"
    "strings"

    "github.com/charmbracelet/bubbles/key"
)

// Section is a titled group of bindings.
type Section struct {
    Title string
    Keys  []key.Binding
}

type HelpOverlay struct{}

func NewHelpOverlay() HelpOverlay { return HelpOverlay{} }

// View returns grouped keys help with the current mode indicated. Bindings
// switched off by the read-only gate are listed as such.
func (HelpOverlay) View(readOnly bool, sections []Section) string {
    mode := "EDIT"
    if readOnly {
        mode = "READ-ONLY"
    }
    var b strings.Builder
    fmt.Fprintf(&b, "Help (Mode: %s)\n", mode)
    for _, sec := range sections {
        fmt.Fprintf(&b, "\n%s:\n", sec.Title)
        for _, k := range sec.Keys {
            h := k.Help()
            line := fmt.Sprintf("  %s: %s", h.Key, h.Desc)
            if !k.Enabled() {
                line += " (disabled)"
            }
            fmt.Fprintf(&b, "%s\n", line)
        }
    }
    return b.String()
}

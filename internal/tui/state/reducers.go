package state

const narrowNotice = "Narrow width: using unified view"

// ToggleWrap flips the Wrap flag and returns a new state copy.
func ToggleWrap(s UIState) UIState {
    s.Wrap = !s.Wrap
    if s.Wrap {
        s.ScrollHLeft, s.ScrollHRight = 0, 0
    }
    return s
}

// ToggleView switches between Unified and SideBySide diff views. Side-by-side
// is refused while the terminal is too narrow for two columns.
func ToggleView(s UIState) UIState {
    if s.View == Unified {
        if s.Width > 0 && s.Width < sideBySideWidth(s) {
            s.Notice = narrowNotice
            return s
        }
        s.View = SideBySide
    } else {
        s.View = Unified
    }
    return s
}

// ToggleIgnoreTrim flips whether leading and trailing whitespace count as changes.
func ToggleIgnoreTrim(s UIState) UIState {
    s.IgnoreTrim = !s.IgnoreTrim
    return s
}

// ToggleHelp shows or hides the help overlay.
func ToggleHelp(s UIState) UIState {
    s.ShowHelp = !s.ShowHelp
    return s
}

// Resize updates the terminal size and falls back to unified when too narrow for side-by-side.
// Threshold heuristic: need at least 2*MinCol plus 3 chars for separator/gutters.
func Resize(s UIState, width, height int) UIState {
    s.Width = width
    s.Height = height
    if s.View == SideBySide && s.Width < sideBySideWidth(s) {
        s.View = Unified
        s.Notice = narrowNotice
    }
    return s
}

func sideBySideWidth(s UIState) int {
    return 2*s.MinCol + 3
}

// ScrollLeft adjusts horizontal scroll for left or right column. With
// SyncScroll both columns move together.
func ScrollLeft(s UIState, fast bool, leftColumn bool) UIState {
    delta := step(fast)
    if leftColumn || s.SyncScroll {
        s.ScrollHLeft = max(s.ScrollHLeft-delta, 0)
    }
    if !leftColumn || s.SyncScroll {
        s.ScrollHRight = max(s.ScrollHRight-delta, 0)
    }
    return s
}

// ScrollRight adjusts horizontal scroll for left or right column.
func ScrollRight(s UIState, fast bool, leftColumn bool) UIState {
    if s.Wrap {
        return s
    }
    delta := step(fast)
    if leftColumn || s.SyncScroll {
        s.ScrollHLeft += delta
    }
    if !leftColumn || s.SyncScroll {
        s.ScrollHRight += delta
    }
    return s
}

func step(fast bool) int {
    if fast {
        return 8
    }
    return 1
}

// ToggleSyncScroll toggles synchronized column scrolling. Turning it on lines
// the right column up with the left.
func ToggleSyncScroll(s UIState) UIState {
    s.SyncScroll = !s.SyncScroll
    if s.SyncScroll {
        s.ScrollHRight = s.ScrollHLeft
    }
    return s
}

// CycleFocus moves keyboard focus to the other pane.
func CycleFocus(s UIState) UIState {
    s.Focus = s.Focus.Other()
    return s
}

// SetNotice replaces the ephemeral message. An empty string clears it.
func SetNotice(s UIState, notice string) UIState {
    s.Notice = notice
    return s
}

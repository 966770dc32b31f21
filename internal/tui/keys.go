package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"quickdiff/internal/session"
	"quickdiff/internal/tui/widgets/helpoverlay"
)

// keyMap defines all keyboard bindings for the application. Keys the text
// areas already use for editing (ctrl+a/e/k/u/w, alt+arrows) are left alone.
type keyMap struct {
	// Global
	Quit  key.Binding
	Help  key.Binding
	Focus key.Binding

	// Content
	Load   key.Binding
	Paste  key.Binding
	Swap   key.Binding
	Clear  key.Binding
	Format key.Binding

	// Sharing
	Share    key.Binding
	Export   key.Binding
	Patch    key.Binding
	Import   key.Binding
	ReadOnly key.Binding

	// View
	Language   key.Binding
	Layout     key.Binding
	Whitespace key.Binding
	Wrap       key.Binding
	SyncScroll key.Binding

	// Diff navigation
	PageUp      key.Binding
	PageDown    key.Binding
	ScrollLeft  key.Binding
	ScrollRight key.Binding

	// Dialogs
	Confirm key.Binding
	Cancel  key.Binding
	Yes     key.Binding
	No      key.Binding
	Up      key.Binding
	Down    key.Binding
	Accept  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+q"),
			key.WithHelp("ctrl+q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "Toggle help"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "Switch pane"),
		),

		// Content
		Load: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "Load file into pane"),
		),
		Paste: key.NewBinding(
			key.WithKeys("ctrl+v"),
			key.WithHelp("ctrl+v", "Paste clipboard into pane"),
		),
		Swap: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "Swap panes"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "Clear both panes"),
		),
		Format: key.NewBinding(
			key.WithKeys("f8"),
			key.WithHelp("f8", "Format both panes"),
		),

		// Sharing
		Share: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "Copy share link"),
		),
		Export: key.NewBinding(
			key.WithKeys("f5"),
			key.WithHelp("f5", "Export .qdiff file"),
		),
		Patch: key.NewBinding(
			key.WithKeys("f6"),
			key.WithHelp("f6", "Write patch file"),
		),
		Import: key.NewBinding(
			key.WithKeys("f7"),
			key.WithHelp("f7", "Import .qdiff file"),
		),
		ReadOnly: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "Toggle read-only"),
		),

		// View
		Language: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "Pick language"),
		),
		Layout: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("f2", "Side-by-side / inline"),
		),
		Whitespace: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("f3", "Ignore trim whitespace"),
		),
		Wrap: key.NewBinding(
			key.WithKeys("f4"),
			key.WithHelp("f4", "Wrap lines"),
		),
		SyncScroll: key.NewBinding(
			key.WithKeys("f9"),
			key.WithHelp("f9", "Sync column scroll"),
		),

		// Diff navigation
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "Scroll diff up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "Scroll diff down"),
		),
		ScrollLeft: key.NewBinding(
			key.WithKeys("shift+left"),
			key.WithHelp("shift+←", "Scroll diff left"),
		),
		ScrollRight: key.NewBinding(
			key.WithKeys("shift+right"),
			key.WithHelp("shift+→", "Scroll diff right"),
		),

		// Dialogs
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Cancel"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "Yes"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N"),
			key.WithHelp("n", "No"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "Previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "Next"),
		),
		Accept: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Complete"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Focus, k.Load, k.Paste, k.Share, k.ReadOnly, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	sections := k.sections()
	out := make([][]key.Binding, 0, len(sections))
	for _, s := range sections {
		out = append(out, s.Keys)
	}
	return out
}

func (k keyMap) sections() []helpoverlay.Section {
	return []helpoverlay.Section{
		{Title: "Content", Keys: []key.Binding{k.Focus, k.Load, k.Paste, k.Swap, k.Clear, k.Format}},
		{Title: "Sharing", Keys: []key.Binding{k.Share, k.Export, k.Patch, k.Import, k.ReadOnly}},
		{Title: "View", Keys: []key.Binding{k.Language, k.Layout, k.Whitespace, k.Wrap, k.SyncScroll}},
		{Title: "Diff", Keys: []key.Binding{k.PageUp, k.PageDown, k.ScrollLeft, k.ScrollRight}},
		{Title: "General", Keys: []key.Binding{k.Help, k.Quit}},
	}
}

// applyGate enables exactly the bindings the read-only gate allows.
func (k *keyMap) applyGate(g session.Gate) {
	k.Load.SetEnabled(g.Allows(session.ActionLoad))
	k.Paste.SetEnabled(g.Allows(session.ActionPaste))
	k.Swap.SetEnabled(g.Allows(session.ActionSwap))
	k.Clear.SetEnabled(g.Allows(session.ActionClear))
	k.Format.SetEnabled(g.Allows(session.ActionFormat))
	k.Import.SetEnabled(g.Allows(session.ActionImport))
	k.Share.SetEnabled(g.Allows(session.ActionShare))
	k.Export.SetEnabled(g.Allows(session.ActionExport))
	k.Patch.SetEnabled(g.Allows(session.ActionPatch))
}

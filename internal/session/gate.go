package session

// Gate controls whether edits are permitted.
//
// FromShared remembers that the current content came from a share link or an
// imported file. It survives leaving read-only mode and is only reset by Clear.
type Gate struct {
	ReadOnly   bool
	FromShared bool
}

// Action is a user affordance that may be disabled by the gate.
type Action int

const (
	ActionLoad Action = iota
	ActionPaste
	ActionSwap
	ActionClear
	ActionFormat
	ActionImport
	ActionShare
	ActionExport
	ActionPatch
)

// Mutating reports whether the action changes buffer contents.
func (a Action) Mutating() bool {
	switch a {
	case ActionLoad, ActionPaste, ActionSwap, ActionClear, ActionFormat:
		return true
	default:
		return false
	}
}

// Allows reports whether the action is enabled. Content-mutating actions are
// disabled exactly when the gate is read-only; read paths and imports are always enabled.
func (g Gate) Allows(a Action) bool {
	return !a.Mutating() || !g.ReadOnly
}

// NeedsConfirm reports whether moving to readOnly must be confirmed by the user first.
func (g Gate) NeedsConfirm(readOnly bool) bool {
	return g.ReadOnly && g.FromShared && !readOnly
}

package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentLabel(t *testing.T) {
	tcs := []struct {
		name string
		c    Content
		want string
	}{
		{name: "none", c: Content{}, want: Placeholder},
		{name: "file", c: Content{Kind: KindFile, FileName: "a.py"}, want: "a.py"},
		{name: "file modified", c: Content{Kind: KindFile, FileName: "a.py", Modified: true}, want: "a.py*"},
		{name: "pasted", c: Content{Kind: KindPasted}, want: "Pasted content"},
		{name: "pasted modified", c: Content{Kind: KindPasted, Modified: true}, want: "Pasted content*"},
		{name: "edited never starred", c: Content{Kind: KindEdited, Modified: true}, want: "Edited content"},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.c.Label())
		})
	}
}

func TestGateAllows(t *testing.T) {
	mutating := []Action{ActionLoad, ActionPaste, ActionSwap, ActionClear, ActionFormat}
	reads := []Action{ActionImport, ActionShare, ActionExport, ActionPatch}

	open := Gate{}
	locked := Gate{ReadOnly: true, FromShared: true}
	for _, a := range mutating {
		assert.True(t, open.Allows(a))
		assert.False(t, locked.Allows(a))
	}
	for _, a := range reads {
		assert.True(t, open.Allows(a))
		assert.True(t, locked.Allows(a))
	}
}

func TestGateNeedsConfirm(t *testing.T) {
	assert.True(t, Gate{ReadOnly: true, FromShared: true}.NeedsConfirm(false))
	assert.False(t, Gate{ReadOnly: true, FromShared: true}.NeedsConfirm(true))
	assert.False(t, Gate{ReadOnly: true}.NeedsConfirm(false))
	assert.False(t, Gate{FromShared: true}.NeedsConfirm(false))
}

func TestSideOther(t *testing.T) {
	assert.Equal(t, Right, Left.Other())
	assert.Equal(t, Left, Right.Other())
	assert.Equal(t, "L", Left.String())
}

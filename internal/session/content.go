package session

import "fmt"

// Side identifies one of the two panes. Left is the original, Right the modified text.
type Side int

const (
	Left Side = iota
	Right
)

// Sides lists both panes in display order.
var Sides = [2]Side{Left, Right}

func (s Side) String() string {
	switch s {
	case Left:
		return "L"
	case Right:
		return "R"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Other returns the opposite pane.
func (s Side) Other() Side {
	if s == Left {
		return Right
	}
	return Left
}

func (s Side) valid() bool { return s == Left || s == Right }

// Kind records how a side's content entered the session.
type Kind int

const (
	KindNone Kind = iota
	KindFile
	KindPasted
	KindEdited
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindFile:
		return "file"
	case KindPasted:
		return "pasted"
	case KindEdited:
		return "edited"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Placeholder is the label shown for a side with no content provenance yet.
const Placeholder = "Drop a file • or paste • or load"

// Content is the per-side provenance record. The zero value is the untouched state.
type Content struct {
	Kind     Kind
	Original string // captured at load, paste, or first keystroke
	FileName string // only set for KindFile
	Modified bool   // only meaningful for KindFile and KindPasted
}

// Tracked reports whether modifications are tracked against Original.
func (c Content) Tracked() bool {
	return c.Kind == KindFile || c.Kind == KindPasted
}

// Label is the text shown above a pane.
func (c Content) Label() string {
	switch c.Kind {
	case KindFile:
		return c.FileName + c.star()
	case KindPasted:
		return "Pasted content" + c.star()
	case KindEdited:
		return "Edited content"
	default:
		return Placeholder
	}
}

func (c Content) star() string {
	if c.Modified {
		return "*"
	}
	return ""
}

// sync recomputes Modified against the live buffer. It reports whether the flag flipped.
func (c *Content) sync(buf string) bool {
	was := c.Modified
	if c.Tracked() {
		c.Modified = buf != c.Original
	} else {
		c.Modified = false
	}
	return was != c.Modified
}

package session

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubDetector maps file names and content markers to languages.
type stubDetector struct{}

func (stubDetector) FromFilename(name string) string {
	switch {
	case strings.HasSuffix(name, ".py"):
		return "python"
	case strings.HasSuffix(name, ".go"):
		return "go"
	}
	return Plaintext
}

func (stubDetector) FromContent(text string) string {
	switch {
	case strings.Contains(text, "def "):
		return "python"
	case strings.Contains(text, "package "):
		return "go"
	}
	return Plaintext
}

func apply(t *testing.T, e Engine, s State, ev Event) (State, Effects) {
	t.Helper()
	next, fx, err := e.Apply(s, ev)
	require.NoError(t, err)
	return next, fx
}

func TestFileLoaded(t *testing.T) {
	e := Engine{Detect: stubDetector{}}
	s, fx := apply(t, e, New(), FileLoaded{Side: Left, Name: "a.py", Text: "print(1)"})

	c := s.Side(Left)
	assert.Equal(t, KindFile, c.Kind)
	assert.Equal(t, "a.py", c.FileName)
	assert.Equal(t, "print(1)", c.Original)
	assert.False(t, c.Modified)
	assert.Equal(t, "print(1)", s.Buffer(Left))
	assert.Equal(t, "python", s.Language)
	assert.True(t, fx.Language)
	assert.Equal(t, [2]bool{true, false}, fx.Buffers)
	assert.Equal(t, "a.py", s.Label(Left))
}

func TestModificationIsReversible(t *testing.T) {
	e := Engine{Detect: stubDetector{}}
	s, _ := apply(t, e, New(), FileLoaded{Side: Left, Name: "a.py", Text: "print(1)"})

	s, fx := apply(t, e, s, BufferChanged{Side: Left, Text: "print(2)"})
	assert.True(t, s.Side(Left).Modified)
	assert.True(t, fx.Labels[Left], "label must refresh when the flag flips")
	assert.Equal(t, "a.py*", s.Label(Left))

	s, fx = apply(t, e, s, BufferChanged{Side: Left, Text: "print(3)"})
	assert.True(t, s.Side(Left).Modified)
	assert.False(t, fx.Labels[Left], "no label churn while the flag holds")

	s, fx = apply(t, e, s, BufferChanged{Side: Left, Text: "print(1)"})
	assert.False(t, s.Side(Left).Modified)
	assert.True(t, fx.Labels[Left])
	assert.Equal(t, "a.py", s.Label(Left))
}

func TestPastedTracksModification(t *testing.T) {
	e := Engine{Detect: stubDetector{}}
	s, fx := apply(t, e, New(), Pasted{Side: Right, Text: "package main"})
	assert.Equal(t, KindPasted, s.Side(Right).Kind)
	assert.Empty(t, s.Side(Right).FileName)
	assert.Equal(t, "go", s.Language)
	assert.True(t, fx.Language)

	s, _ = apply(t, e, s, BufferChanged{Side: Right, Text: "package main\n"})
	assert.Equal(t, "Pasted content*", s.Label(Right))
}

func TestTypingIntoEmptySideBecomesEdited(t *testing.T) {
	e := Engine{}
	s, fx := apply(t, e, New(), BufferChanged{Side: Left, Text: "   "})
	assert.Equal(t, KindNone, s.Side(Left).Kind, "whitespace alone does not establish provenance")
	assert.False(t, fx.Labels[Left])

	s, fx = apply(t, e, s, BufferChanged{Side: Left, Text: "x"})
	assert.Equal(t, KindEdited, s.Side(Left).Kind)
	assert.Equal(t, "x", s.Side(Left).Original)
	assert.True(t, fx.Labels[Left])

	// Emptying the buffer again keeps the side Edited.
	s, _ = apply(t, e, s, BufferChanged{Side: Left, Text: ""})
	assert.Equal(t, KindEdited, s.Side(Left).Kind)
	assert.False(t, s.Side(Left).Modified)
	assert.Equal(t, "Edited content", s.Label(Left))
}

func TestSwapExchangesRecordsAndBuffers(t *testing.T) {
	e := Engine{}
	s, _ := apply(t, e, New(), FileLoaded{Side: Left, Name: "a.py", Text: "X"})
	s, _ = apply(t, e, s, Pasted{Side: Right, Text: "Y"})
	s, _ = apply(t, e, s, BufferChanged{Side: Right, Text: "Y2"})
	require.True(t, s.Side(Right).Modified)

	s, fx := apply(t, e, s, Swapped{})
	assert.Equal(t, [2]bool{true, true}, fx.Labels)
	assert.Equal(t, [2]bool{true, true}, fx.Buffers)

	assert.Equal(t, KindPasted, s.Side(Left).Kind)
	assert.Equal(t, "Y2", s.Buffer(Left))
	assert.True(t, s.Side(Left).Modified)

	assert.Equal(t, KindFile, s.Side(Right).Kind)
	assert.Equal(t, "a.py", s.Side(Right).FileName)
	assert.Equal(t, "X", s.Buffer(Right))
	assert.False(t, s.Side(Right).Modified, "swap must not introduce a modification marker")

	// Records are copies: editing one side after the swap leaves the other alone.
	s, _ = apply(t, e, s, BufferChanged{Side: Right, Text: "X!"})
	assert.True(t, s.Side(Right).Modified)
	assert.Equal(t, "Y", s.Side(Left).Original)
}

func TestClearResetsEverything(t *testing.T) {
	e := Engine{Detect: stubDetector{}}
	s, _ := apply(t, e, New(), FileLoaded{Side: Left, Name: "a.py", Text: "X"})
	s, _ = apply(t, e, s, LanguageSelected{ID: "rust"})
	s, _ = apply(t, e, s, ShareLoaded{Left: "a", Right: "b"})
	s, _ = apply(t, e, s, EditConfirmed{})
	require.True(t, s.Gate.FromShared)

	s, fx := apply(t, e, s, Cleared{})
	for _, side := range Sides {
		assert.Equal(t, Content{}, s.Side(side))
		assert.Empty(t, s.Buffer(side))
		assert.Equal(t, Placeholder, s.Label(side))
	}
	assert.False(t, s.LanguagePinned)
	assert.Equal(t, Gate{}, s.Gate)
	assert.True(t, fx.ReadOnly)
}

func TestPinnedLanguageSuppressesDetectionUntilClear(t *testing.T) {
	e := Engine{Detect: stubDetector{}}
	s, fx := apply(t, e, New(), LanguageSelected{ID: "rust"})
	assert.True(t, fx.Language)
	assert.True(t, s.LanguagePinned)

	s, fx = apply(t, e, s, FileLoaded{Side: Left, Name: "a.py", Text: "def f(): pass"})
	assert.Equal(t, "rust", s.Language)
	assert.False(t, fx.Language)

	s, fx = apply(t, e, s, BufferChanged{Side: Left, Text: "def f(): return 1"})
	assert.False(t, fx.ScheduleDetect)

	s, _ = apply(t, e, s, Cleared{})
	s, fx = apply(t, e, s, Pasted{Side: Left, Text: "def g(): pass"})
	assert.Equal(t, "python", s.Language)
	assert.True(t, fx.Language)
}

func TestDebouncedDetection(t *testing.T) {
	e := Engine{Detect: stubDetector{}}
	s, fx := apply(t, e, New(), BufferChanged{Side: Right, Text: "def f():"})
	assert.True(t, fx.ScheduleDetect)
	assert.Equal(t, Right, fx.DetectSide)

	// Too short to be worth detecting.
	s, fx = apply(t, e, s, LanguageDetected{Side: Right})
	assert.False(t, fx.Language)
	assert.Equal(t, Plaintext, s.Language)

	s, _ = apply(t, e, s, BufferChanged{Side: Right, Text: "def f():\n    return 42\n"})
	s, fx = apply(t, e, s, LanguageDetected{Side: Right})
	assert.True(t, fx.Language)
	assert.Equal(t, "python", s.Language)

	// Pinning while the timer is pending wins.
	s, _ = apply(t, e, s, LanguageSelected{ID: "text"})
	s, fx = apply(t, e, s, LanguageDetected{Side: Right})
	assert.False(t, fx.Language)
	assert.Equal(t, "text", s.Language)
}

func TestShareLoadedGatesEditing(t *testing.T) {
	e := Engine{Detect: stubDetector{}}
	before := Demo()
	s, fx := apply(t, e, before, ShareLoaded{Left: "a", Right: "b", Language: "python"})

	assert.Equal(t, "a", s.Buffer(Left))
	assert.Equal(t, "b", s.Buffer(Right))
	assert.Equal(t, "python", s.Language)
	assert.Equal(t, Content{Kind: KindEdited, Original: "a"}, s.Side(Left))
	assert.Equal(t, Content{Kind: KindEdited, Original: "b"}, s.Side(Right))
	assert.Equal(t, Gate{ReadOnly: true, FromShared: true}, s.Gate)
	assert.True(t, fx.ReadOnly)
	assert.NotEmpty(t, fx.Notice)

	// Leaving read-only needs confirmation and changes nothing until confirmed.
	after, fx := apply(t, e, s, ReadOnlyRequested{Value: false})
	assert.True(t, fx.ConfirmEdit)
	assert.Equal(t, s, after)

	after, fx = apply(t, e, after, EditConfirmed{})
	assert.Equal(t, Gate{ReadOnly: false, FromShared: true}, after.Gate)
	assert.True(t, fx.DropShareFragment)
}

func TestShareLoadedWithoutLanguageKeepsCurrent(t *testing.T) {
	s, fx := apply(t, Engine{}, Demo(), ShareLoaded{Left: "a"})
	assert.Equal(t, "javascript", s.Language)
	assert.False(t, fx.Language)
	assert.Empty(t, s.Buffer(Right))
}

func TestImportedMarksBothSidesAsFile(t *testing.T) {
	s, _ := apply(t, Engine{}, New(), Imported{Name: "x.qdiff", Left: "x"})
	for _, side := range Sides {
		assert.Equal(t, KindFile, s.Side(side).Kind)
		assert.Equal(t, "x.qdiff", s.Side(side).FileName)
		assert.False(t, s.Side(side).Modified)
	}
	assert.Equal(t, "x", s.Buffer(Left))
	assert.Empty(t, s.Buffer(Right))
	assert.Equal(t, Gate{ReadOnly: true, FromShared: true}, s.Gate)
}

func TestReadOnlyRefusesMutations(t *testing.T) {
	e := Engine{}
	s, _ := apply(t, e, Demo(), ReadOnlyRequested{Value: true})
	require.Equal(t, Gate{ReadOnly: true}, s.Gate)

	for _, ev := range []Event{
		FileLoaded{Side: Left, Name: "a", Text: "a"},
		Pasted{Side: Right, Text: "b"},
		BufferChanged{Side: Left, Text: "c"},
		Swapped{},
		Cleared{},
	} {
		next, fx, err := e.Apply(s, ev)
		assert.ErrorIs(t, err, ErrReadOnly, "%T", ev)
		assert.Equal(t, s, next, "%T", ev)
		assert.Equal(t, Effects{}, fx, "%T", ev)
	}

	// Locally edited content leaves read-only without confirmation.
	s, fx := apply(t, e, s, ReadOnlyRequested{Value: false})
	assert.False(t, fx.ConfirmEdit)
	assert.False(t, s.Gate.ReadOnly)
}

func TestReadOnlyRequestIsIdempotent(t *testing.T) {
	e := Engine{}
	s, fx := apply(t, e, New(), ReadOnlyRequested{Value: false})
	assert.Equal(t, Gate{}, s.Gate)
	assert.True(t, fx.ReadOnly, "affordances are refreshed even without a change")

	s, _ = apply(t, e, s, ReadOnlyRequested{Value: true})
	s, _ = apply(t, e, s, ReadOnlyRequested{Value: true})
	assert.Equal(t, Gate{ReadOnly: true}, s.Gate)
}

func TestSharedReadOnlyCanBeReenteredDirectly(t *testing.T) {
	e := Engine{}
	s, _ := apply(t, e, New(), ShareLoaded{Left: "a", Right: "b"})
	s, _ = apply(t, e, s, EditConfirmed{})
	s, fx := apply(t, e, s, ReadOnlyRequested{Value: true})
	assert.False(t, fx.ConfirmEdit)
	assert.Equal(t, Gate{ReadOnly: true, FromShared: true}, s.Gate)

	// Origin is still remembered, so leaving again asks once more.
	_, fx = apply(t, e, s, ReadOnlyRequested{Value: false})
	assert.True(t, fx.ConfirmEdit)
}

func TestUnknownSideIsAnError(t *testing.T) {
	_, _, err := Engine{}.Apply(New(), Pasted{Side: Side(7), Text: "x"})
	assert.Error(t, err)
	_, _, err = Engine{}.Apply(New(), nil)
	assert.Error(t, err)
}

func TestDemo(t *testing.T) {
	s := Demo()
	assert.Equal(t, "javascript", s.Language)
	assert.Equal(t, "Edited content", s.Label(Left))
	assert.Equal(t, "Edited content", s.Label(Right))
	assert.Equal(t, Gate{}, s.Gate)
	assert.NotEqual(t, s.Buffer(Left), s.Buffer(Right))
}

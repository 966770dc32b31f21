package session

import (
	"errors"
	"fmt"
	"strings"
)

// Plaintext is the language used when nothing better is known.
const Plaintext = "plaintext"

// minDetectLen is the trimmed length content must exceed before debounced
// detection looks at it.
const minDetectLen = 10

// ErrReadOnly is returned when a content-mutating event arrives while the gate is read-only.
var ErrReadOnly = errors.New("content is read-only")

// Detector guesses a language identifier. Implementations return Plaintext when unsure.
type Detector interface {
	FromContent(text string) string
	FromFilename(name string) string
}

// State is the whole comparison session. It is a value: copying it copies both
// sides, so reducers never share records between calls.
type State struct {
	Sides          [2]Content
	Buffers        [2]string
	Language       string
	LanguagePinned bool
	Gate           Gate
}

// New returns the empty session: both sides untouched, editing enabled.
func New() State {
	return State{Language: Plaintext}
}

// Side returns the provenance record for side.
func (s State) Side(side Side) Content { return s.Sides[side] }

// Buffer returns the live buffer for side.
func (s State) Buffer(side Side) string { return s.Buffers[side] }

// Label returns the display label for side.
func (s State) Label(side Side) string { return s.Sides[side].Label() }

func (s *State) applyLanguage(id string) bool {
	if id == "" || id == Plaintext || id == s.Language {
		return false
	}
	s.Language = id
	return true
}

// Effects describes what a transition changed so a renderer can update only that.
type Effects struct {
	Labels  [2]bool // label text for the side may differ
	Buffers [2]bool // buffer must be replaced from State.Buffers

	Language bool // State.Language changed
	ReadOnly bool // gate changed or must be re-applied to affordances

	// ConfirmEdit asks the caller to confirm leaving shared read-only mode and
	// to send EditConfirmed on acceptance. State is unchanged.
	ConfirmEdit bool
	// DropShareFragment asks the caller to remove "#share=" from its location.
	DropShareFragment bool
	// ScheduleDetect asks the caller to (re)start the detection debounce for DetectSide.
	ScheduleDetect bool
	DetectSide     Side

	Notice string
}

func (fx *Effects) both() {
	fx.Labels = [2]bool{true, true}
	fx.Buffers = [2]bool{true, true}
}

// Event is a discrete input to the engine.
type Event interface{ event() }

// FileLoaded replaces a side with the contents of a file.
type FileLoaded struct {
	Side Side
	Name string
	Text string
}

// Pasted replaces a side with clipboard text.
type Pasted struct {
	Side Side
	Text string
}

// BufferChanged reports the live buffer after a user edit.
type BufferChanged struct {
	Side Side
	Text string
}

// Swapped exchanges both sides.
type Swapped struct{}

// Cleared resets the session.
type Cleared struct{}

// LanguageSelected is an explicit language pick; it pins the language until Clear.
type LanguageSelected struct{ ID string }

// LanguageDetected fires when the detection debounce elapses for Side.
type LanguageDetected struct{ Side Side }

// ShareLoaded applies the contents of a share link.
type ShareLoaded struct {
	Left, Right string
	Language    string
}

// Imported applies the contents of an imported .qdiff file named Name.
type Imported struct {
	Name        string
	Left, Right string
	Language    string
}

// ReadOnlyRequested is a direct toggle of read-only mode.
type ReadOnlyRequested struct{ Value bool }

// EditConfirmed is the user's acceptance of leaving shared read-only mode.
type EditConfirmed struct{}

func (FileLoaded) event()        {}
func (Pasted) event()            {}
func (BufferChanged) event()     {}
func (Swapped) event()           {}
func (Cleared) event()           {}
func (LanguageSelected) event()  {}
func (LanguageDetected) event()  {}
func (ShareLoaded) event()       {}
func (Imported) event()          {}
func (ReadOnlyRequested) event() {}
func (EditConfirmed) event()     {}

// Engine applies events to a State. Detect may be nil, which disables detection.
type Engine struct {
	Detect Detector
}

// Apply returns the state after ev and the effects a renderer must apply.
// On error the returned state is s unchanged.
func (e Engine) Apply(s State, ev Event) (State, Effects, error) {
	switch ev := ev.(type) {
	case FileLoaded:
		return e.loadFile(s, ev)
	case Pasted:
		return e.paste(s, ev)
	case BufferChanged:
		return e.bufferChanged(s, ev)
	case Swapped:
		return swap(s)
	case Cleared:
		return reset(s)
	case LanguageSelected:
		return selectLanguage(s, ev)
	case LanguageDetected:
		return e.detected(s, ev)
	case ShareLoaded:
		return load(s, KindEdited, "", ev.Left, ev.Right, ev.Language, "Shared content loaded in read-only mode!")
	case Imported:
		return load(s, KindFile, ev.Name, ev.Left, ev.Right, ev.Language, "Diff imported successfully in read-only mode!")
	case ReadOnlyRequested:
		return requestReadOnly(s, ev)
	case EditConfirmed:
		return confirmEdit(s)
	case nil:
		return s, Effects{}, errors.New("session: nil event")
	default:
		return s, Effects{}, fmt.Errorf("session: unknown event %T", ev)
	}
}

func checkSide(side Side) error {
	if !side.valid() {
		return fmt.Errorf("session: unknown side %d", int(side))
	}
	return nil
}

func (e Engine) loadFile(s State, ev FileLoaded) (State, Effects, error) {
	if err := checkSide(ev.Side); err != nil {
		return s, Effects{}, err
	}
	if !s.Gate.Allows(ActionLoad) {
		return s, Effects{}, ErrReadOnly
	}
	s.Sides[ev.Side] = Content{Kind: KindFile, Original: ev.Text, FileName: ev.Name}
	s.Buffers[ev.Side] = ev.Text
	var fx Effects
	fx.Labels[ev.Side] = true
	fx.Buffers[ev.Side] = true
	if !s.LanguagePinned && e.Detect != nil {
		fx.Language = s.applyLanguage(e.Detect.FromFilename(ev.Name))
	}
	return s, fx, nil
}

func (e Engine) paste(s State, ev Pasted) (State, Effects, error) {
	if err := checkSide(ev.Side); err != nil {
		return s, Effects{}, err
	}
	if !s.Gate.Allows(ActionPaste) {
		return s, Effects{}, ErrReadOnly
	}
	s.Sides[ev.Side] = Content{Kind: KindPasted, Original: ev.Text}
	s.Buffers[ev.Side] = ev.Text
	var fx Effects
	fx.Labels[ev.Side] = true
	fx.Buffers[ev.Side] = true
	if !s.LanguagePinned && e.Detect != nil {
		fx.Language = s.applyLanguage(e.Detect.FromContent(ev.Text))
	}
	return s, fx, nil
}

// bufferChanged tracks edits. The None -> Edited transition is one-way: emptying
// the buffer afterwards keeps the side Edited until an explicit Clear.
func (e Engine) bufferChanged(s State, ev BufferChanged) (State, Effects, error) {
	if err := checkSide(ev.Side); err != nil {
		return s, Effects{}, err
	}
	if s.Gate.ReadOnly {
		return s, Effects{}, ErrReadOnly
	}
	var fx Effects
	s.Buffers[ev.Side] = ev.Text
	c := &s.Sides[ev.Side]
	switch {
	case c.Tracked():
		fx.Labels[ev.Side] = c.sync(ev.Text)
	case c.Kind == KindNone && strings.TrimSpace(ev.Text) != "":
		*c = Content{Kind: KindEdited, Original: ev.Text}
		fx.Labels[ev.Side] = true
	}
	if !s.LanguagePinned && e.Detect != nil {
		fx.ScheduleDetect = true
		fx.DetectSide = ev.Side
	}
	return s, fx, nil
}

func swap(s State) (State, Effects, error) {
	if !s.Gate.Allows(ActionSwap) {
		return s, Effects{}, ErrReadOnly
	}
	s.Sides[Left], s.Sides[Right] = s.Sides[Right], s.Sides[Left]
	s.Buffers[Left], s.Buffers[Right] = s.Buffers[Right], s.Buffers[Left]
	for _, side := range Sides {
		s.Sides[side].sync(s.Buffers[side])
	}
	var fx Effects
	fx.both()
	return s, fx, nil
}

// reset empties both sides and unpins the language from any writable state.
// While read-only it is refused like every other content change; leaving
// read-only mode comes first.
func reset(s State) (State, Effects, error) {
	if !s.Gate.Allows(ActionClear) {
		return s, Effects{}, ErrReadOnly
	}
	s.Sides = [2]Content{}
	s.Buffers = [2]string{}
	s.LanguagePinned = false
	s.Gate = Gate{}
	fx := Effects{ReadOnly: true}
	fx.both()
	return s, fx, nil
}

func selectLanguage(s State, ev LanguageSelected) (State, Effects, error) {
	id := strings.TrimSpace(ev.ID)
	if id == "" {
		return s, Effects{}, errors.New("session: empty language id")
	}
	s.LanguagePinned = true
	changed := s.Language != id
	s.Language = id
	return s, Effects{Language: changed}, nil
}

func (e Engine) detected(s State, ev LanguageDetected) (State, Effects, error) {
	if err := checkSide(ev.Side); err != nil {
		return s, Effects{}, err
	}
	if s.LanguagePinned || e.Detect == nil {
		return s, Effects{}, nil
	}
	text := s.Buffers[ev.Side]
	if len(strings.TrimSpace(text)) <= minDetectLen {
		return s, Effects{}, nil
	}
	return s, Effects{Language: s.applyLanguage(e.Detect.FromContent(text))}, nil
}

func load(s State, kind Kind, name, left, right, language, notice string) (State, Effects, error) {
	s.Buffers = [2]string{left, right}
	s.Sides[Left] = Content{Kind: kind, Original: left, FileName: name}
	s.Sides[Right] = Content{Kind: kind, Original: right, FileName: name}
	fx := Effects{ReadOnly: true, Notice: notice}
	fx.both()
	if language != "" {
		fx.Language = s.Language != language
		s.Language = language
	}
	s.Gate = Gate{ReadOnly: true, FromShared: true}
	return s, fx, nil
}

func requestReadOnly(s State, ev ReadOnlyRequested) (State, Effects, error) {
	if s.Gate.NeedsConfirm(ev.Value) {
		return s, Effects{ConfirmEdit: true}, nil
	}
	s.Gate.ReadOnly = ev.Value
	return s, Effects{ReadOnly: true}, nil
}

func confirmEdit(s State) (State, Effects, error) {
	fx := Effects{ReadOnly: true}
	if s.Gate.ReadOnly && s.Gate.FromShared {
		fx.DropShareFragment = true
		fx.Notice = "Edit mode enabled. Share link removed from URL."
	}
	s.Gate.ReadOnly = false
	return s, fx, nil
}

// Package tui is the terminal front end: two editable panes over a live diff.
package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quickdiff/internal/config"
	"quickdiff/internal/debounce"
	"quickdiff/internal/lang"
	"quickdiff/internal/patch"
	"quickdiff/internal/ports"
	"quickdiff/internal/session"
	"quickdiff/internal/share"
	"quickdiff/internal/tui/state"
	"quickdiff/internal/tui/util"
	"quickdiff/internal/tui/widgets/diff"
	"quickdiff/internal/tui/widgets/editor"
	"quickdiff/internal/tui/widgets/helpoverlay"
	"quickdiff/internal/tui/widgets/statusbar"
)

// Options configures a TUI session.
type Options struct {
	Config    *config.Config
	Logger    *slog.Logger
	Clipboard Clipboard
	// Share is a share token or any link carrying "#share=".
	Share string
	// Import is a .qdiff file opened read-only.
	Import string
	// Left and Right are files loaded at startup; either may be empty.
	Left, Right string
	// Dir receives exported .qdiff and patch files. Empty means the working directory.
	Dir     string
	NoColor bool
	Now     func() time.Time
}

// Run shows the diff editor and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	m := newModel(opts)

	var p *tea.Program
	det := newDetectScheduler(m.delay, func(msg tea.Msg) { p.Send(msg) })
	defer det.stop()
	m.schedule = det.schedule

	p = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// ===== Model =====

type mode int

const (
	modeEdit    mode = iota
	modePrompt       // path prompt open
	modePicker       // language picker open
	modeConfirm      // leaving shared read-only mode
)

// detectMsg is posted by the detection debouncer for a side.
type detectMsg struct{ side session.Side }

// detectScheduler runs detection once per typing pause across both panes.
// Each keystroke supersedes the pending run; the run detects the side typed into last.
type detectScheduler struct {
	deb *debounce.Debouncer

	mu   sync.Mutex
	last session.Side
}

func newDetectScheduler(delay time.Duration, send func(tea.Msg)) *detectScheduler {
	d := &detectScheduler{}
	d.deb = debounce.New(delay, func() {
		d.mu.Lock()
		side := d.last
		d.mu.Unlock()
		send(detectMsg{side: side})
	})
	return d
}

func (d *detectScheduler) schedule(side session.Side) {
	d.mu.Lock()
	d.last = side
	d.mu.Unlock()
	d.deb.Trigger()
}

func (d *detectScheduler) stop() { d.deb.Stop() }

type model struct {
	engine session.Engine
	st     session.State
	ui     state.UIState
	keys   keyMap
	help   help.Model

	editors [2]textarea.Model
	diffVP  viewport.Model
	stats   diff.Stats

	diffView  diff.DiffView
	editor    editor.Editor
	statusBar statusbar.StatusBar
	overlay   helpoverlay.HelpOverlay

	mode   mode
	prompt pathPrompt
	picker langPicker

	// shareLink is the link the session was opened from, until editing drops it.
	shareLink string

	clip     Clipboard
	baseURL  string
	dir      string
	delay    time.Duration
	noColor  bool
	now      func() time.Time
	log      *slog.Logger
	schedule func(session.Side)
}

func newModel(opts Options) model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = SystemClipboard{}
	}
	noColor := util.NoColor(opts.NoColor)

	ui := state.UIState{
		Wrap:       cfg.View.Wrap,
		IgnoreTrim: cfg.View.IgnoreTrimWhitespace,
		MinCol:     20,
		SyncScroll: true,
	}
	if cfg.SideBySide() {
		ui.View = state.SideBySide
	}

	m := model{
		engine:    session.Engine{Detect: lang.Detector{}},
		st:        session.New(),
		ui:        ui,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		diffVP:    viewport.New(80, 10),
		diffView:  diff.NewDiffView(noColor),
		editor:    editor.NewEditor(noColor),
		statusBar: statusbar.NewStatusBar(),
		overlay:   helpoverlay.NewHelpOverlay(),
		clip:      clip,
		baseURL:   linkBase(cfg),
		dir:       opts.Dir,
		delay:     cfg.DebounceDelay(),
		noColor:   noColor,
		now:       now,
		log:       log,
	}
	for _, side := range session.Sides {
		ta := textarea.New()
		ta.Placeholder = session.Placeholder
		ta.ShowLineNumbers = true
		ta.CharLimit = 0
		ta.MaxHeight = 0
		m.editors[side] = ta
	}

	m.startup(opts)
	m.keys.applyGate(m.st.Gate)
	m.focusEditors()
	m.layout()
	m.refresh()
	return m
}

// linkBase is where share links point: the configured base URL, else the
// local server address.
func linkBase(cfg *config.Config) string {
	if cfg.Server.BaseURL != "" {
		return cfg.Server.BaseURL
	}
	if cfg.Server.Addr == "" || cfg.Server.Addr == ports.Auto {
		return ""
	}
	return ports.LocalURL(cfg.Server.Addr) + "/"
}

// startup loads the first content: a share link, then an import, then files,
// else the demo pair. A failure becomes a notice over the demo.
func (m *model) startup(opts Options) {
	var err error
	switch {
	case opts.Share != "":
		err = m.openShare(opts.Share)
	case opts.Import != "":
		err = m.importFile(opts.Import)
	case opts.Left != "" || opts.Right != "":
		err = m.loadFiles(opts.Left, opts.Right)
	default:
		m.st = session.Demo()
		m.syncEditors()
		return
	}
	if err != nil {
		m.log.Warn("startup content failed", "err", err)
		m.st = session.Demo()
		m.syncEditors()
		m.ui = state.SetNotice(m.ui, err.Error())
	}
}

func (m *model) openShare(link string) error {
	var (
		env share.Envelope
		err error
	)
	if token, ok := share.TokenFromFragment(link); ok {
		env, err = share.Decode(token)
	} else {
		env, err = share.Decode(link)
	}
	if err != nil {
		return fmt.Errorf("failed to load shared content: %w", err)
	}
	if err := m.apply(env.ShareEvent()); err != nil {
		return err
	}
	m.shareLink = link
	return nil
}

func (m *model) importFile(path string) error {
	path, err := config.ExpandPath(path)
	if err != nil {
		return fmt.Errorf("failed to import file: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to import file: %w", err)
	}
	env, err := share.ParseFile(data)
	if err != nil {
		return fmt.Errorf("failed to import file, check the file format: %w", err)
	}
	return m.apply(env.ImportEvent(share.ImportName(path)))
}

func (m *model) loadFiles(left, right string) error {
	for side, path := range [2]string{left, right} {
		if path == "" {
			continue
		}
		if err := m.loadFile(session.Side(side), path); err != nil {
			return err
		}
	}
	return nil
}

func (m *model) loadFile(side session.Side, path string) error {
	path, err := config.ExpandPath(path)
	if err != nil {
		return fmt.Errorf("load file: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load file: %w", err)
	}
	if !utf8.Valid(data) {
		return fmt.Errorf("load file: %s is not UTF-8 text", filepath.Base(path))
	}
	return m.apply(session.FileLoaded{Side: side, Name: filepath.Base(path), Text: string(data)})
}

func (m model) Init() tea.Cmd { return textarea.Blink }

// Update handles all TUI interactions.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui = state.Resize(m.ui, msg.Width, msg.Height)
		m.layout()
		m.refresh()
		return m, nil

	case detectMsg:
		if err := m.apply(session.LanguageDetected{Side: msg.side}); err != nil {
			m.log.Debug("detection skipped", "side", msg.side, "err", err)
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		var cmd tea.Cmd
		if m.mode == modeEdit {
			m.ui = state.SetNotice(m.ui, "")
		}
		switch m.mode {
		case modePrompt:
			cmd = m.updatePrompt(msg)
		case modePicker:
			cmd = m.updatePicker(msg)
		case modeConfirm:
			m.updateConfirm(msg)
		default:
			cmd = m.updateEdit(msg)
		}
		m.refresh()
		return m, cmd
	}

	// cursor blink and other component messages
	var cmd tea.Cmd
	switch m.mode {
	case modePrompt:
		m.prompt.input, cmd = m.prompt.input.Update(msg)
	case modePicker:
		m.picker.input, cmd = m.picker.input.Update(msg)
	default:
		m.editors[m.ui.Focus], cmd = m.editors[m.ui.Focus].Update(msg)
	}
	return m, cmd
}

func (m *model) updateEdit(msg tea.KeyMsg) tea.Cmd {
	k := m.keys
	if m.ui.ShowHelp {
		switch {
		case key.Matches(msg, k.Quit):
			return tea.Quit
		case key.Matches(msg, k.Help), key.Matches(msg, k.Cancel):
			m.ui = state.ToggleHelp(m.ui)
		}
		return nil
	}

	switch {
	case key.Matches(msg, k.Quit):
		return tea.Quit
	case key.Matches(msg, k.Help):
		m.ui = state.ToggleHelp(m.ui)
	case key.Matches(msg, k.Focus):
		m.ui = state.CycleFocus(m.ui)
		m.focusEditors()
	case key.Matches(msg, k.Load):
		return m.openPrompt(promptLoad)
	case key.Matches(msg, k.Paste):
		m.paste()
	case key.Matches(msg, k.Swap):
		m.notify(m.apply(session.Swapped{}))
	case key.Matches(msg, k.Clear):
		if m.apply(session.Cleared{}) == nil {
			m.shareLink = ""
			m.ui = state.SetNotice(m.ui, "Cleared")
		}
	case key.Matches(msg, k.Format):
		m.format()
	case key.Matches(msg, k.Share):
		m.share()
	case key.Matches(msg, k.Export):
		m.export()
	case key.Matches(msg, k.Patch):
		m.writePatch()
	case key.Matches(msg, k.Import):
		return m.openPrompt(promptImport)
	case key.Matches(msg, k.ReadOnly):
		m.notify(m.apply(session.ReadOnlyRequested{Value: !m.st.Gate.ReadOnly}))
	case key.Matches(msg, k.Language):
		m.picker = newLangPicker(m.st.Language)
		m.mode = modePicker
		return textinput.Blink
	case key.Matches(msg, k.Layout):
		m.ui = state.ToggleView(m.ui)
	case key.Matches(msg, k.Whitespace):
		m.ui = state.ToggleIgnoreTrim(m.ui)
	case key.Matches(msg, k.Wrap):
		m.ui = state.ToggleWrap(m.ui)
	case key.Matches(msg, k.SyncScroll):
		m.ui = state.ToggleSyncScroll(m.ui)
	case key.Matches(msg, k.PageUp):
		m.diffVP.SetYOffset(m.diffVP.YOffset - m.diffVP.Height)
	case key.Matches(msg, k.PageDown):
		m.diffVP.SetYOffset(m.diffVP.YOffset + m.diffVP.Height)
	case key.Matches(msg, k.ScrollLeft):
		m.ui = state.ScrollLeft(m.ui, false, m.ui.Focus == session.Left)
	case key.Matches(msg, k.ScrollRight):
		m.ui = state.ScrollRight(m.ui, false, m.ui.Focus == session.Left)
	default:
		return m.edit(msg)
	}
	return nil
}

// edit forwards a keystroke to the focused pane and reports the new buffer to
// the engine when the text changed.
func (m *model) edit(msg tea.KeyMsg) tea.Cmd {
	if m.st.Gate.ReadOnly {
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace || msg.Type == tea.KeyEnter ||
			msg.Type == tea.KeyBackspace || msg.Type == tea.KeyDelete || msg.Type == tea.KeyCtrlV {
			m.ui = state.SetNotice(m.ui, "Read-only: press ctrl+r to edit")
		}
		return nil
	}
	side := m.ui.Focus
	before := m.editors[side].Value()
	var cmd tea.Cmd
	m.editors[side], cmd = m.editors[side].Update(msg)
	if after := m.editors[side].Value(); after != before {
		m.notify(m.apply(session.BufferChanged{Side: side, Text: after}))
	}
	return cmd
}

func (m *model) openPrompt(purpose promptPurpose) tea.Cmd {
	m.prompt = newPathPrompt(purpose, m.ui.Focus, m.ui.Width)
	m.mode = modePrompt
	return textinput.Blink
}

func (m *model) updatePrompt(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeEdit
		return nil
	case key.Matches(msg, m.keys.Accept):
		m.prompt.complete()
		return nil
	case key.Matches(msg, m.keys.Confirm):
		m.mode = modeEdit
		var err error
		if m.prompt.purpose == promptImport {
			err = m.importFile(m.prompt.input.Value())
		} else {
			err = m.loadFile(m.prompt.side, m.prompt.input.Value())
		}
		m.notify(err)
		return nil
	}
	var cmd tea.Cmd
	m.prompt.input, cmd = m.prompt.input.Update(msg)
	m.prompt.computeSuggestions()
	return cmd
}

func (m *model) updatePicker(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeEdit
		return nil
	case key.Matches(msg, m.keys.Up):
		m.picker.move(-1)
		return nil
	case key.Matches(msg, m.keys.Down):
		m.picker.move(1)
		return nil
	case key.Matches(msg, m.keys.Confirm):
		m.mode = modeEdit
		if id, ok := m.picker.selected(); ok {
			if m.apply(session.LanguageSelected{ID: id}) == nil {
				m.ui = state.SetNotice(m.ui, "Language: "+lang.DisplayName(id))
			}
		}
		return nil
	}
	var cmd tea.Cmd
	before := m.picker.input.Value()
	m.picker.input, cmd = m.picker.input.Update(msg)
	if m.picker.input.Value() != before {
		m.picker.filter()
	}
	return cmd
}

func (m *model) updateConfirm(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Yes), key.Matches(msg, m.keys.Confirm):
		m.mode = modeEdit
		m.notify(m.apply(session.EditConfirmed{}))
	case key.Matches(msg, m.keys.No), key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Quit):
		m.mode = modeEdit
		m.ui = state.SetNotice(m.ui, "Still read-only")
	}
}

// ===== Actions =====

// apply runs ev through the engine and renders its effects. On error the
// session is left as it was.
func (m *model) apply(ev session.Event) error {
	next, fx, err := m.engine.Apply(m.st, ev)
	if err != nil {
		return err
	}
	m.st = next
	m.render(fx)
	return nil
}

func (m *model) render(fx session.Effects) {
	for _, side := range session.Sides {
		if fx.Buffers[side] {
			m.editors[side].SetValue(m.st.Buffer(side))
		}
	}
	if fx.ReadOnly {
		m.keys.applyGate(m.st.Gate)
		m.focusEditors()
	}
	if fx.ScheduleDetect && m.schedule != nil {
		m.schedule(fx.DetectSide)
	}
	if fx.ConfirmEdit {
		m.mode = modeConfirm
	}
	if fx.DropShareFragment {
		m.shareLink = share.StripFragment(m.shareLink)
	}
	if fx.Language {
		m.log.Info("language changed", "language", m.st.Language, "pinned", m.st.LanguagePinned)
	}
	if fx.Notice != "" {
		m.ui = state.SetNotice(m.ui, fx.Notice)
	}
}

// notify turns an error into a notice.
func (m *model) notify(err error) {
	if err == nil {
		return
	}
	m.log.Debug("action failed", "err", err)
	m.ui = state.SetNotice(m.ui, err.Error())
}

// clipboardMissing reports, with a notice, that no clipboard tool is installed.
func (m *model) clipboardMissing() bool {
	u, ok := m.clip.(interface{ Unsupported() bool })
	if !ok || !u.Unsupported() {
		return false
	}
	m.ui = state.SetNotice(m.ui, noClipboardNotice)
	return true
}

func (m *model) paste() {
	if m.clipboardMissing() {
		return
	}
	text, err := m.clip.ReadAll()
	if err != nil {
		m.notify(fmt.Errorf("clipboard read failed: %w", err))
		return
	}
	if text == "" {
		m.ui = state.SetNotice(m.ui, "Clipboard is empty")
		return
	}
	m.notify(m.apply(session.Pasted{Side: m.ui.Focus, Text: text}))
}

// format tidies both panes; a pane that is already tidy is left alone. Both
// panes are formatted before either changes, so a failure changes nothing.
func (m *model) format() {
	if !m.st.Gate.Allows(session.ActionFormat) {
		m.notify(session.ErrReadOnly)
		return
	}
	var formatted [2]string
	for _, side := range session.Sides {
		out, err := formatText(m.st.Language, m.st.Buffer(side))
		if err != nil {
			m.notify(fmt.Errorf("formatting failed: %w", err))
			return
		}
		formatted[side] = out
	}
	changed := false
	for _, side := range session.Sides {
		if formatted[side] == m.st.Buffer(side) {
			continue
		}
		if err := m.apply(session.BufferChanged{Side: side, Text: formatted[side]}); err != nil {
			m.notify(err)
			return
		}
		m.editors[side].SetValue(formatted[side])
		changed = true
	}
	if changed {
		m.ui = state.SetNotice(m.ui, "Formatted")
	} else {
		m.ui = state.SetNotice(m.ui, "Nothing to format")
	}
}

func (m *model) share() {
	if m.st.Buffer(session.Left) == "" && m.st.Buffer(session.Right) == "" {
		m.ui = state.SetNotice(m.ui, "Nothing to share yet")
		return
	}
	if m.clipboardMissing() {
		return
	}
	sh, err := share.Build(share.FromState(m.st, m.now()), m.baseURL)
	if err != nil {
		m.notify(fmt.Errorf("failed to share diff: %w", err))
		return
	}
	if err := m.clip.WriteAll(sh.URL); err != nil {
		m.notify(fmt.Errorf("failed to share diff: %w", err))
		return
	}
	m.log.Info("share link copied", "length", sh.Length(), "size_safe", sh.SizeSafe)
	if !sh.SizeSafe {
		m.ui = state.SetNotice(m.ui, fmt.Sprintf("Share URL copied (large: %d chars, export a file instead if it fails to open)", sh.Length()))
		return
	}
	m.ui = state.SetNotice(m.ui, "Share URL copied to clipboard!")
}

func (m *model) export() {
	now := m.now()
	data, err := share.MarshalFile(share.FromState(m.st, now))
	if err != nil {
		m.notify(fmt.Errorf("failed to share diff: %w", err))
		return
	}
	path := filepath.Join(m.dir, share.ExportName(now))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		m.notify(fmt.Errorf("failed to share diff: %w", err))
		return
	}
	m.log.Info("exported diff", "path", path)
	m.ui = state.SetNotice(m.ui, "Diff file saved: "+path)
}

func (m *model) writePatch() {
	path := filepath.Join(m.dir, patch.FileName(m.now()))
	body := patch.Naive(m.st.Buffer(session.Left), m.st.Buffer(session.Right))
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		m.notify(fmt.Errorf("failed to write patch: %w", err))
		return
	}
	m.log.Info("wrote patch", "path", path)
	m.ui = state.SetNotice(m.ui, "Patch file saved: "+path)
}

// ===== Layout & rendering =====

// focusEditors gives the cursor to the focused pane unless content is read-only.
func (m *model) focusEditors() {
	for _, side := range session.Sides {
		if side == m.ui.Focus && !m.st.Gate.ReadOnly {
			m.editors[side].Focus()
		} else {
			m.editors[side].Blur()
		}
	}
}

// syncEditors replaces both pane buffers from the session.
func (m *model) syncEditors() {
	for _, side := range session.Sides {
		m.editors[side].SetValue(m.st.Buffer(side))
	}
}

// layout splits the screen: title, panes with headers, diff header, diff, status and help lines.
func (m *model) layout() {
	w, h := m.ui.Width, m.ui.Height
	if w <= 0 || h <= 0 {
		return
	}
	const chrome = 5
	paneH := max((h-chrome)/3, 3)
	paneW := max(w/2-1, 10)
	for side := range m.editors {
		m.editors[side].SetWidth(paneW)
		m.editors[side].SetHeight(paneH)
	}
	m.diffVP.Width = w
	m.diffVP.Height = max(h-chrome-paneH-1, 3)
	m.help.Width = w
}

// refresh recomputes the diff and line statistics after any change.
func (m *model) refresh() {
	left, right := m.st.Buffer(session.Left), m.st.Buffer(session.Right)
	m.stats = diff.Compute(left, right, m.ui.IgnoreTrim)
	m.diffVP.SetContent(m.diffView.View(m.ui, left, right))
	m.ui.ScrollV = m.diffVP.YOffset
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	selStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "205", Dark: "213"}).Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}).Bold(true)
)

func (m model) View() string {
	switch {
	case m.mode == modePrompt:
		return m.viewPrompt()
	case m.mode == modePicker:
		return m.picker.view(m.noColor)
	case m.mode == modeConfirm:
		return m.viewConfirm()
	case m.ui.ShowHelp:
		return m.overlay.View(m.st.Gate.ReadOnly, m.keys.sections()) + "\n" + faintStyle.Render("f1/esc: close help")
	}

	var b strings.Builder
	title := "quickdiff"
	if m.shareLink != "" {
		title += " · shared link"
	}
	b.WriteString(titleStyle.Render(title) + "\n")

	var panes [2]string
	for _, side := range session.Sides {
		panes[side] = m.editor.View(editor.Pane{
			Label:   m.st.Label(side),
			Tags:    util.ComputeTags(m.st.Side(side), m.st.Gate, m.st.Buffer(side)),
			Body:    m.editors[side].View(),
			Focused: side == m.ui.Focus,
		})
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, panes[session.Left], "  ", panes[session.Right]) + "\n")

	b.WriteString(titleStyle.Render("Diff: "+m.st.Label(session.Left)+" → "+m.st.Label(session.Right)) + "\n")
	b.WriteString(m.diffVP.View() + "\n")
	b.WriteString(m.statusBar.View(m.ui, m.st, m.stats) + "\n")
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	return b.String()
}

func (m model) viewPrompt() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.prompt.title()) + "\n\n")
	b.WriteString(m.prompt.input.View() + "\n")
	for _, s := range m.prompt.suggest {
		b.WriteString(faintStyle.Render("  • ") + s + "\n")
	}
	b.WriteString(faintStyle.Render("\nenter: open   tab: autocomplete   esc: cancel") + "\n")
	return b.String()
}

func (m model) viewConfirm() string {
	var b strings.Builder
	b.WriteString(warnStyle.Render("Enable editing?") + "\n\n")
	b.WriteString("This content was opened from a share link or file.\n")
	b.WriteString("Editing will leave read-only mode and drop the share link.\n\n")
	b.WriteString("y/enter: edit   n/esc: stay read-only\n")
	return b.String()
}

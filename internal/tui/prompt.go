package tui

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"quickdiff/internal/config"
	"quickdiff/internal/session"
)

const maxSuggestions = 8

// promptPurpose says what a confirmed path is used for.
type promptPurpose int

const (
	promptLoad promptPurpose = iota
	promptImport
)

// pathPrompt asks for a file path with directory-based completion.
type pathPrompt struct {
	purpose promptPurpose
	side    session.Side
	input   textinput.Model
	suggest []string
}

func newPathPrompt(purpose promptPurpose, side session.Side, width int) pathPrompt {
	ti := textinput.New()
	ti.Prompt = "Path: "
	ti.Placeholder = "~/file.txt"
	if purpose == promptImport {
		ti.Placeholder = "~/diff.qdiff"
	}
	ti.CharLimit = 4096
	ti.Width = max(width-len(ti.Prompt)-2, 10)
	ti.Focus()
	return pathPrompt{purpose: purpose, side: side, input: ti}
}

func (p pathPrompt) title() string {
	if p.purpose == promptImport {
		return "Import .qdiff file"
	}
	if p.side == session.Left {
		return "Load file into original (left) pane"
	}
	return "Load file into modified (right) pane"
}

// complete replaces the input with the first suggestion.
func (p *pathPrompt) complete() {
	if len(p.suggest) == 0 {
		return
	}
	p.input.SetValue(p.suggest[0])
	p.input.CursorEnd()
	p.computeSuggestions()
}

// computeSuggestions lists up to maxSuggestions entries of the directory being
// typed whose names contain the typed base name. Paths under the home
// directory are shown with "~".
func (p *pathPrompt) computeSuggestions() {
	in := p.input.Value()
	if strings.TrimSpace(in) == "" {
		p.suggest = nil
		return
	}
	expanded, err := config.ExpandPath(in)
	if err != nil {
		p.suggest = nil
		return
	}
	dir, base := expanded, ""
	if fi, err := os.Stat(expanded); err != nil || !fi.IsDir() || !strings.HasSuffix(in, string(filepath.Separator)) {
		dir, base = filepath.Dir(expanded), filepath.Base(expanded)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		p.suggest = nil
		return
	}
	home, _ := os.UserHomeDir()
	var out []string
	for _, e := range entries {
		name := e.Name()
		if base != "" && !strings.Contains(strings.ToLower(name), strings.ToLower(base)) {
			continue
		}
		cand := filepath.Join(dir, name)
		if e.IsDir() {
			cand += string(filepath.Separator)
		}
		if home != "" && strings.HasPrefix(cand, home+string(filepath.Separator)) {
			cand = "~" + strings.TrimPrefix(cand, home)
		}
		out = append(out, cand)
		if len(out) >= maxSuggestions {
			break
		}
	}
	p.suggest = out
}

package tui

import "github.com/atotto/clipboard"

const noClipboardNotice = "Clipboard unavailable: install xclip, xsel or wl-clipboard"

// Clipboard reads and writes the system clipboard.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// SystemClipboard uses the platform clipboard tools.
type SystemClipboard struct{}

func (SystemClipboard) ReadAll() (string, error)   { return clipboard.ReadAll() }
func (SystemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// Unsupported reports whether no clipboard tool was found on this system.
func (SystemClipboard) Unsupported() bool { return clipboard.Unsupported }

package share

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// FileExt is the extension of exported sessions.
const FileExt = ".qdiff"

// ErrMissingSides is returned for an import with neither a "left" nor a "right" key.
var ErrMissingSides = errors.New("invalid .qdiff file format")

// ParseFile decodes an exported session. Only "left" or "right" is required;
// an absent side imports as empty text.
func ParseFile(data []byte) (Envelope, error) {
	var w wireEnvelope
	if err := json.Unmarshal(data, &w); err != nil {
		return Envelope{}, fmt.Errorf("parse %s: %w", FileExt, err)
	}
	if w.Left == nil && w.Right == nil {
		return Envelope{}, ErrMissingSides
	}
	return w.envelope(), nil
}

// MarshalFile renders env as 2-space indented JSON without a trailing newline.
func MarshalFile(env Envelope) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(env); err != nil {
		return nil, fmt.Errorf("marshal %s: %w", FileExt, err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// ExportName is the suggested file name for an export made at now.
func ExportName(now time.Time) string {
	return "quickdiff-" + now.UTC().Format(time.DateOnly) + FileExt
}

// ImportName is the name an imported file is labeled with.
func ImportName(path string) string {
	name := filepath.Base(path)
	if name == "." || name == string(filepath.Separator) {
		return strings.TrimSpace(path)
	}
	return name
}

package tui

import (
	"bytes"
	"encoding/json"
	"strings"
)

// formatText tidies a buffer for the given language. JSON is re-indented;
// everything else has trailing whitespace stripped from each line. The
// result equals the input when there is nothing to do.
func formatText(language, text string) (string, error) {
	if language == "json" && strings.TrimSpace(text) != "" {
		var buf bytes.Buffer
		if err := json.Indent(&buf, []byte(strings.TrimSpace(text)), "", "  "); err != nil {
			return text, err
		}
		if strings.HasSuffix(text, "\n") {
			buf.WriteByte('\n')
		}
		return buf.String(), nil
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t\r")
	}
	return strings.Join(lines, "\n"), nil
}

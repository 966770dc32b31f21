package main

import (
    "io"
    "os"
    "strings"
    "testing"
)

func captureStdout(t *testing.T, fn func()) string {
    t.Helper()
    r, w, err := os.Pipe()
    if err != nil {
        t.Fatalf("pipe: %v", err)
    }
    old := os.Stdout
    os.Stdout = w
    defer func() { os.Stdout = old }()
    fn()
    w.Close()
    out, err := io.ReadAll(r)
    if err != nil {
        t.Fatalf("read: %v", err)
    }
    return string(out)
}

func TestUsageEndsWithSingleNewline(t *testing.T) {
    for _, topic := range []string{"", "tui", "serve", "open"} {
        out := captureStdout(t, func() {
            if topic == "" {
                usage()
            } else {
                helpTopic(topic)
            }
        })
        if !strings.HasSuffix(out, "\n") || strings.HasSuffix(out, "\n\n") {
            t.Fatalf("help %q should end with exactly one newline, got %q", topic, out[max(len(out)-20, 0):])
        }
        if !strings.Contains(out, "quickdiff") {
            t.Fatalf("help %q does not name the command: %q", topic, out)
        }
    }
}

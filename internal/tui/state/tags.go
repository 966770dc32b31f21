package state

// TagKind enumerates the types of status chips shown above a pane.
type TagKind int

const (
    // Stable ordering for display: provenance, Modified, Shared, Read-only, Lines
    FILE TagKind = iota
    PASTED
    EDITED
    MODIFIED
    SHARED
    READ_ONLY
    LINES
)

// Tag represents a single status chip. Value is used for numeric counters
// (the line count). Non-numeric tags use Value = 0.
type Tag struct {
    Kind  TagKind
    Value int
}

// Package share encodes comparison sessions into share links and .qdiff files
// and decodes them back.
package share

import (
	"time"

	"quickdiff/internal/session"
)

// Version is written into every envelope.
const Version = "1.0"

// TimeLayout is the ISO-8601 UTC form with millisecond precision used for Timestamp.
const TimeLayout = "2006-01-02T15:04:05.000Z"

// Envelope is the serialized payload of a share link or an exported file.
// Field order is the wire order.
type Envelope struct {
	Left      string `json:"left"`
	Right     string `json:"right"`
	Language  string `json:"language"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// NewEnvelope stamps the pair with now and the current Version.
func NewEnvelope(left, right, language string, now time.Time) Envelope {
	return Envelope{
		Left:      left,
		Right:     right,
		Language:  language,
		Timestamp: now.UTC().Format(TimeLayout),
		Version:   Version,
	}
}

// FromState captures the live buffers and language of s.
func FromState(s session.State, now time.Time) Envelope {
	return NewEnvelope(s.Buffer(session.Left), s.Buffer(session.Right), s.Language, now)
}

// ShareEvent is the engine event that applies env as a share link.
func (e Envelope) ShareEvent() session.ShareLoaded {
	return session.ShareLoaded{Left: e.Left, Right: e.Right, Language: e.Language}
}

// ImportEvent is the engine event that applies env as the imported file name.
func (e Envelope) ImportEvent(name string) session.Imported {
	return session.Imported{Name: name, Left: e.Left, Right: e.Right, Language: e.Language}
}

// Time parses Timestamp. Envelopes written by other tools may carry any RFC 3339 form.
func (e Envelope) Time() (time.Time, bool) {
	if e.Timestamp == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, e.Timestamp)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// wireEnvelope distinguishes absent keys from empty strings.
type wireEnvelope struct {
	Left      *string `json:"left"`
	Right     *string `json:"right"`
	Language  *string `json:"language"`
	Timestamp *string `json:"timestamp"`
	Version   *string `json:"version"`
}

func (w wireEnvelope) envelope() Envelope {
	return Envelope{
		Left:      deref(w.Left),
		Right:     deref(w.Right),
		Language:  deref(w.Language),
		Timestamp: deref(w.Timestamp),
		Version:   deref(w.Version),
	}
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

package share

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

// URLSizeLimit is the advisory upper bound for a share URL. Links at or above
// it may be truncated by browsers or chat clients.
const URLSizeLimit = 32000

// FragmentPrefix introduces the token in a URL fragment.
const FragmentPrefix = "share="

var (
	// ErrInvalidToken is wrapped by every share link decoding failure.
	ErrInvalidToken = errors.New("invalid share token")
	// ErrNoShareFragment means the input carries no "share=" fragment at all.
	ErrNoShareFragment = errors.New("no share fragment")
)

// Share is an encoded envelope and the link that carries it.
type Share struct {
	Envelope Envelope
	Token    string
	URL      string
	SizeSafe bool
}

// Length is the URL length in bytes.
func (s Share) Length() int { return len(s.URL) }

// Build encodes env and appends it as "#share=<token>" to base. Any query or
// fragment already on base is dropped; an empty base yields a bare fragment.
func Build(env Envelope, base string) (Share, error) {
	token, err := Encode(env)
	if err != nil {
		return Share{}, err
	}
	prefix, err := linkBase(base)
	if err != nil {
		return Share{}, err
	}
	link := prefix + "#" + FragmentPrefix + token
	return Share{
		Envelope: env,
		Token:    token,
		URL:      link,
		SizeSafe: len(link) < URLSizeLimit,
	}, nil
}

func linkBase(base string) (string, error) {
	if base == "" {
		return "", nil
	}
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	u.RawQuery = ""
	u.ForceQuery = false
	u.Fragment = ""
	u.RawFragment = ""
	return u.String(), nil
}

// Encode returns base64(encodeURIComponent(compact JSON of env)).
func Encode(env Envelope) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(env); err != nil {
		return "", fmt.Errorf("encode envelope: %w", err)
	}
	raw := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
	return base64.StdEncoding.EncodeToString([]byte(encodeURIComponent(string(raw)))), nil
}

// Decode reverses Encode. Absent fields decode as "".
func Decode(token string) (Envelope, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Envelope{}, fmt.Errorf("%w: empty", ErrInvalidToken)
	}
	escaped, err := decodeBase64(token)
	if err != nil {
		return Envelope{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	plain, err := url.PathUnescape(string(escaped))
	if err != nil {
		return Envelope{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !utf8.ValidString(plain) {
		return Envelope{}, fmt.Errorf("%w: payload is not utf-8", ErrInvalidToken)
	}
	if !strings.HasPrefix(strings.TrimSpace(plain), "{") {
		return Envelope{}, fmt.Errorf("%w: payload is not an object", ErrInvalidToken)
	}
	var w wireEnvelope
	if err := json.Unmarshal([]byte(plain), &w); err != nil {
		return Envelope{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return w.envelope(), nil
}

// Tokens pasted from chat clients sometimes lose their padding.
func decodeBase64(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err == nil {
		return b, nil
	}
	if b, rawErr := base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "=")); rawErr == nil {
		return b, nil
	}
	return nil, err
}

// ParseFragment extracts and decodes the token from a full URL, a "#share=..."
// fragment, or a bare "share=..." string.
func ParseFragment(s string) (Envelope, error) {
	token, ok := TokenFromFragment(s)
	if !ok {
		return Envelope{}, ErrNoShareFragment
	}
	return Decode(token)
}

// TokenFromFragment returns the token part of s, if s carries one.
func TokenFromFragment(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '#'); i >= 0 {
		s = s[i+1:]
	}
	if !strings.HasPrefix(s, FragmentPrefix) {
		return "", false
	}
	return s[len(FragmentPrefix):], true
}

// StripFragment removes a "#share=..." fragment from link and leaves other fragments alone.
func StripFragment(link string) string {
	i := strings.IndexByte(link, '#')
	if i < 0 || !strings.HasPrefix(link[i+1:], FragmentPrefix) {
		return link
	}
	return link[:i]
}

const hexUpper = "0123456789ABCDEF"

// encodeURIComponent percent-encodes every UTF-8 byte except the unreserved
// set A-Z a-z 0-9 - _ . ! ~ * ' ( ). url.QueryEscape differs on space and on
// the marks, which would change the token.
func encodeURIComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hexUpper[c>>4])
		b.WriteByte(hexUpper[c&0x0f])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}

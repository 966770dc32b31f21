package share

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickdiff/internal/session"
)

var fixedNow = time.Date(2024, 1, 2, 3, 4, 5, 6_000_000, time.FixedZone("CET", 3600))

func TestNewEnvelope(t *testing.T) {
	env := NewEnvelope("l", "r", "go", fixedNow)
	assert.Equal(t, "2024-01-02T02:04:05.006Z", env.Timestamp)
	assert.Equal(t, "1.0", env.Version)

	ts, ok := env.Time()
	require.True(t, ok)
	assert.True(t, ts.Equal(fixedNow.Truncate(time.Millisecond)))
}

func TestEncodeMatchesBrowserEncoding(t *testing.T) {
	env := Envelope{
		Left:      "a <b>",
		Right:     "héllo ✓",
		Language:  "go",
		Timestamp: "2024-01-02T03:04:05.006Z",
		Version:   "1.0",
	}
	// base64(encodeURIComponent(JSON.stringify(env))) as a browser computes it.
	const want = "JTdCJTIybGVmdCUyMiUzQSUyMmElMjAlM0NiJTNFJTIyJTJDJTIycmlnaHQlMjIlM0ElMjJoJUMzJUE5bGxvJTIwJUUyJTlDJTkzJTIyJTJDJTIybGFuZ3VhZ2UlMjIlM0ElMjJnbyUyMiUyQyUyMnRpbWVzdGFtcCUyMiUzQSUyMjIwMjQtMDEtMDJUMDMlM0EwNCUzQTA1LjAwNlolMjIlMkMlMjJ2ZXJzaW9uJTIyJTNBJTIyMS4wJTIyJTdE"

	token, err := Encode(env)
	require.NoError(t, err)
	assert.Equal(t, want, token)

	got, err := Decode(token)
	require.NoError(t, err)
	assert.Equal(t, env, got)
}

func TestRoundTripPreservesText(t *testing.T) {
	tcs := map[string][2]string{
		"empty":      {"", ""},
		"multiline":  {"line 1\nline 2\r\n\ttabbed", "x\n"},
		"unicode":    {"日本語 🎉 emoji", "Ünïcödé ✓"},
		"reserved":   {"100% sure? a=b&c=d #frag +plus", "'quotes' \"double\" (parens) *star* ~tilde!"},
		"json-ish":   {`{"left":"nested"}`, `A \\ \"`},
		"whitespace": {"   ", "\n\n\n"},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			env := NewEnvelope(tc[0], tc[1], "javascript", fixedNow)
			sh, err := Build(env, "https://example.com/app/")
			require.NoError(t, err)

			got, err := ParseFragment(sh.URL)
			require.NoError(t, err)
			assert.Equal(t, env, got)
		})
	}
}

func TestBuild(t *testing.T) {
	env := NewEnvelope("a", "b", "", fixedNow)

	sh, err := Build(env, "https://example.com/diff/index.html?x=1#old")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sh.URL, "https://example.com/diff/index.html#share="))
	assert.Equal(t, sh.Token, strings.TrimPrefix(sh.URL, "https://example.com/diff/index.html#share="))
	assert.True(t, sh.SizeSafe)
	assert.Equal(t, len(sh.URL), sh.Length())

	bare, err := Build(env, "")
	require.NoError(t, err)
	assert.Equal(t, "#share="+bare.Token, bare.URL)
}

func TestBuildFlagsOversizedLinks(t *testing.T) {
	big := strings.Repeat("x", URLSizeLimit)
	sh, err := Build(NewEnvelope(big, "", "", fixedNow), "https://example.com/")
	require.NoError(t, err)
	assert.False(t, sh.SizeSafe)
	assert.GreaterOrEqual(t, sh.Length(), URLSizeLimit)

	// Still a valid link.
	got, err := ParseFragment(sh.URL)
	require.NoError(t, err)
	assert.Equal(t, big, got.Left)
}

func TestParseFragmentForms(t *testing.T) {
	env := NewEnvelope("a", "b", "go", fixedNow)
	token, err := Encode(env)
	require.NoError(t, err)

	for _, in := range []string{
		"https://example.com/#share=" + token,
		"#share=" + token,
		"share=" + token,
		"  share=" + strings.TrimRight(token, "=") + "\n",
	} {
		got, err := ParseFragment(in)
		require.NoError(t, err, in)
		assert.Equal(t, env, got)
	}

	_, err = ParseFragment("https://example.com/#section")
	assert.ErrorIs(t, err, ErrNoShareFragment)
}

func TestDecodeMissingFieldsDefaultToEmpty(t *testing.T) {
	token := base64.StdEncoding.EncodeToString([]byte(encodeURIComponent(`{"right":"only"}`)))
	env, err := Decode(token)
	require.NoError(t, err)
	assert.Equal(t, Envelope{Right: "only"}, env)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	b64 := func(s string) string { return base64.StdEncoding.EncodeToString([]byte(s)) }
	for name, token := range map[string]string{
		"empty":      "",
		"not base64": "!!!",
		"bad escape": b64("%E0%A4%A"),
		"not utf8":   b64("%FF%FE"),
		"not json":   b64("hello"),
		"json array": b64("%5B1%2C2%5D"),
		"wrong type": b64(encodeURIComponent(`{"left":1}`)),
		"truncated":  b64(encodeURIComponent(`{"left":"a"`)),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestEventsCarryEnvelope(t *testing.T) {
	env := NewEnvelope("l", "r", "go", fixedNow)
	assert.Equal(t, session.ShareLoaded{Left: "l", Right: "r", Language: "go"}, env.ShareEvent())
	assert.Equal(t, session.Imported{Name: "x.qdiff", Left: "l", Right: "r", Language: "go"}, env.ImportEvent("x.qdiff"))
}

func TestFromState(t *testing.T) {
	env := FromState(session.Demo(), fixedNow)
	assert.Equal(t, session.DemoLeft, env.Left)
	assert.Equal(t, session.DemoRight, env.Right)
	assert.Equal(t, "javascript", env.Language)
}

func TestStripFragment(t *testing.T) {
	assert.Equal(t, "https://x/app", StripFragment("https://x/app#share=abc"))
	assert.Equal(t, "https://x/app#intro", StripFragment("https://x/app#intro"))
	assert.Equal(t, "https://x/app", StripFragment("https://x/app"))
}

func TestEncodeURIComponent(t *testing.T) {
	assert.Equal(t, "AZaz09-_.!~*'()", encodeURIComponent("AZaz09-_.!~*'()"))
	assert.Equal(t, "%20%2B%2F%3F%23%26%3D%25", encodeURIComponent(" +/?#&=%"))
	assert.Equal(t, "%C3%A9", encodeURIComponent("é"))
}

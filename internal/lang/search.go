package lang

import (
	"slices"
	"strings"
	"unicode"
)

// Match is a search hit. Positions are rune indexes into Language.Name that
// matched the query, for highlighting.
type Match struct {
	Language
	Positions []int
}

// Search filters All by an in-order, case-insensitive subsequence match on
// the display name. Exact matches on name or id rank first, then prefixes,
// then the rest alphabetically. An empty query returns everything.
func Search(query string) []Match {
	query = strings.TrimSpace(query)
	all := All()
	out := make([]Match, 0, len(all))
	for _, l := range all {
		pos, ok := MatchPositions(l.Name, query)
		if !ok {
			continue
		}
		out = append(out, Match{Language: l, Positions: pos})
	}
	if query == "" {
		return out
	}
	q := strings.ToLower(query)
	rank := func(l Language) int {
		name, id := strings.ToLower(l.Name), strings.ToLower(l.ID)
		switch {
		case name == q || id == q:
			return 0
		case strings.HasPrefix(name, q) || strings.HasPrefix(id, q):
			return 1
		default:
			return 2
		}
	}
	slices.SortStableFunc(out, func(a, b Match) int {
		if ra, rb := rank(a.Language), rank(b.Language); ra != rb {
			return ra - rb
		}
		return compareFold(a.Name, b.Name)
	})
	return out
}

// MatchPositions greedily matches query against text in order, ignoring case.
// ok is false when some query rune has no match.
func MatchPositions(text, query string) (positions []int, ok bool) {
	q := []rune(strings.TrimSpace(query))
	if len(q) == 0 {
		return nil, true
	}
	qi := 0
	for i, r := range []rune(text) {
		if qi == len(q) {
			break
		}
		if unicode.ToLower(r) == unicode.ToLower(q[qi]) {
			positions = append(positions, i)
			qi++
		}
	}
	if qi < len(q) {
		return nil, false
	}
	return positions, true
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

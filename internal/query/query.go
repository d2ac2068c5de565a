// Package query builds canonical FTS5 query strings from structured search
// intents. Every function is pure: no I/O, no engine access, one canonical
// string out per intent in.
//
// The produced grammar is exactly what SQLite FTS5 accepts on the right-hand
// side of a MATCH: "quoted phrases", "tok"* prefix tokens, AND/OR/NOT infix
// operators, and NEAR(a b ..., N) proximity groups.
//
// Every caller-supplied term is individually phrase-quoted with embedded
// quotes doubled, so arbitrary text can never inject operators or unbalance
// the query. Callers who want hand-written boolean expressions bypass this
// package and use the raw search primitive instead.
package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jpl-au/docdex/internal/validate"
)

// quote wraps a term in FTS5 phrase quotes, doubling any embedded quote
// characters. The result always matches the term's tokens literally.
func quote(term string) string {
	return `"` + strings.ReplaceAll(term, `"`, `""`) + `"`
}

// quoteAll quotes each term in a sequence.
func quoteAll(terms []string) []string {
	out := make([]string, len(terms))
	for i, t := range terms {
		out[i] = quote(t)
	}
	return out
}

// Phrase builds a query matching the exact token sequence of text.
// "quick brown" matches documents containing "quick" immediately followed
// by "brown", and not "brown quick".
func Phrase(text string) (string, error) {
	if err := validate.Terms([]string{text}); err != nil {
		return "", err
	}
	return quote(text), nil
}

// Prefix builds a query matching any token that starts with token.
// The token must be a single word: multi-word prefix queries are undefined.
func Prefix(token string) (string, error) {
	if err := validate.Token(token); err != nil {
		return "", err
	}
	return quote(token) + `*`, nil
}

// AndAll builds a query requiring every term to appear. A single term is
// the one-element sequence; an empty sequence fails.
func AndAll(terms ...string) (string, error) {
	return join(terms, " AND ")
}

// OrAny builds a query requiring at least one term to appear. A single term
// is the one-element sequence; an empty sequence fails.
func OrAny(terms ...string) (string, error) {
	return join(terms, " OR ")
}

// Not builds a binary exclusion query: documents containing include but
// not exclude. The operation is deliberately binary; it does not generalise
// to multiple exclude terms.
func Not(include, exclude string) (string, error) {
	if err := validate.Terms([]string{include, exclude}); err != nil {
		return "", err
	}
	return quote(include) + " NOT " + quote(exclude), nil
}

// Near builds a proximity query constraining all terms to occur within
// maxDistance tokens of one another, in any order. maxDistance zero means
// the terms must be adjacent.
func Near(maxDistance int, terms ...string) (string, error) {
	if err := validate.Distance(maxDistance); err != nil {
		return "", err
	}
	if err := validate.Terms(terms); err != nil {
		return "", err
	}
	return fmt.Sprintf("NEAR(%s, %s)",
		strings.Join(quoteAll(terms), " "),
		strconv.Itoa(maxDistance)), nil
}

// join validates terms and joins their quoted forms with the given operator.
func join(terms []string, op string) (string, error) {
	if err := validate.Terms(terms); err != nil {
		return "", err
	}
	return strings.Join(quoteAll(terms), op), nil
}

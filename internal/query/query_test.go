package query_test

import (
	"errors"
	"testing"

	"github.com/jpl-au/docdex/internal/query"
	"github.com/jpl-au/docdex/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Phrase Tests ---

func TestPhrase(t *testing.T) {
	q, err := query.Phrase("quick brown")
	require.NoError(t, err)
	assert.Equal(t, `"quick brown"`, q)
}

func TestPhrase_EscapesQuotes(t *testing.T) {
	q, err := query.Phrase(`say "hello" fox`)
	require.NoError(t, err)
	assert.Equal(t, `"say ""hello"" fox"`, q)
}

func TestPhrase_Empty(t *testing.T) {
	_, err := query.Phrase("")
	require.Error(t, err)
	assert.True(t, errors.Is(err, validate.ErrInvalidQuery))

	_, err = query.Phrase("   ")
	assert.True(t, errors.Is(err, validate.ErrInvalidQuery))
}

// --- Prefix Tests ---

func TestPrefix(t *testing.T) {
	q, err := query.Prefix("qui")
	require.NoError(t, err)
	assert.Equal(t, `"qui"*`, q)
}

func TestPrefix_RejectsWhitespace(t *testing.T) {
	for _, token := range []string{"", "quick brown", "quick\tbrown", " quick"} {
		_, err := query.Prefix(token)
		assert.True(t, errors.Is(err, validate.ErrInvalidQuery), "token %q", token)
	}
}

// --- Boolean Tests ---

func TestAndAll(t *testing.T) {
	q, err := query.AndAll("quick", "decisions")
	require.NoError(t, err)
	assert.Equal(t, `"quick" AND "decisions"`, q)
}

func TestOrAny(t *testing.T) {
	q, err := query.OrAny("enemy", "lazy")
	require.NoError(t, err)
	assert.Equal(t, `"enemy" OR "lazy"`, q)
}

func TestAndOr_DistinctForMultipleTerms(t *testing.T) {
	and, err := query.AndAll("alpha", "beta")
	require.NoError(t, err)
	or, err := query.OrAny("alpha", "beta")
	require.NoError(t, err)
	assert.NotEqual(t, and, or)
}

func TestAndOr_SingleTermConvenience(t *testing.T) {
	// A single term is the one-element sequence; AND and OR converge.
	and, err := query.AndAll("quick")
	require.NoError(t, err)
	or, err := query.OrAny("quick")
	require.NoError(t, err)
	assert.Equal(t, `"quick"`, and)
	assert.Equal(t, and, or)
}

func TestAndOr_EmptyFails(t *testing.T) {
	_, err := query.AndAll()
	assert.True(t, errors.Is(err, validate.ErrInvalidQuery))

	_, err = query.OrAny()
	assert.True(t, errors.Is(err, validate.ErrInvalidQuery))
}

func TestNot(t *testing.T) {
	q, err := query.Not("quick", "brown")
	require.NoError(t, err)
	assert.Equal(t, `"quick" NOT "brown"`, q)
}

func TestNot_BlankArguments(t *testing.T) {
	_, err := query.Not("", "brown")
	assert.True(t, errors.Is(err, validate.ErrInvalidQuery))

	_, err = query.Not("quick", "")
	assert.True(t, errors.Is(err, validate.ErrInvalidQuery))
}

// --- Proximity Tests ---

func TestNear(t *testing.T) {
	q, err := query.Near(10, "quick", "enemy")
	require.NoError(t, err)
	assert.Equal(t, `NEAR("quick" "enemy", 10)`, q)
}

func TestNear_ZeroDistance(t *testing.T) {
	q, err := query.Near(0, "lazy", "dog")
	require.NoError(t, err)
	assert.Equal(t, `NEAR("lazy" "dog", 0)`, q)
}

func TestNear_NegativeDistance(t *testing.T) {
	_, err := query.Near(-1, "quick", "enemy")
	assert.True(t, errors.Is(err, validate.ErrInvalidQuery))
}

func TestNear_EmptyTerms(t *testing.T) {
	_, err := query.Near(5)
	assert.True(t, errors.Is(err, validate.ErrInvalidQuery))
}

// --- Injection Hardening Tests ---

func TestQuoting_NeutralisesOperators(t *testing.T) {
	// Operator-looking terms are matched literally, never parsed.
	q, err := query.AndAll("quick OR lazy", "NOT")
	require.NoError(t, err)
	assert.Equal(t, `"quick OR lazy" AND "NOT"`, q)
}

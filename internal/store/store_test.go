package store_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jpl-au/docdex/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// corpus is the fixture set used across search tests. IDs are explicit so
// assertions can name them directly.
var corpus = []store.Document{
	{ID: 101, Content: "The quick brown fox jumps over the lazy dog"},
	{ID: 102, Content: "Never jump over the lazy dog quickly"},
	{ID: 103, Content: "A quick movement of the enemy will jeopardize six gunboats"},
	{ID: 104, Content: "Quick thinking leads to quick decisions"},
}

// setupStore creates a temporary SQLite store seeded with the corpus.
// Returns the store and a cleanup function.
func setupStore(t *testing.T) (*store.SQLiteStore, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "docdex-store-test-*")
	require.NoError(t, err)

	dbPath := filepath.Join(tmpDir, "test.db")
	s, err := store.Open(dbPath, corpus...)
	require.NoError(t, err)

	cleanup := func() {
		s.Close()
		os.RemoveAll(tmpDir)
	}

	return s, cleanup
}

// matchIDs extracts the identifiers from a match set.
func matchIDs(matches []store.Match) []int64 {
	ids := make([]int64, len(matches))
	for i, m := range matches {
		ids[i] = m.ID
	}
	return ids
}

// --- Open Tests ---

func TestStore_OpenSeedsDocuments(t *testing.T) {
	s, cleanup := setupStore(t)
	defer cleanup()
	ctx := context.Background()

	// Seed documents are searchable before any other call
	matches, err := s.Search(ctx, `"quick brown"`, store.NewSearchOptions())
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, int64(101), matches[0].ID)

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestStore_OpenInMemory(t *testing.T) {
	s, err := store.Open(":memory:", store.Document{Content: "ephemeral"})
	require.NoError(t, err)
	defer s.Close()

	doc, err := s.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "ephemeral", doc.Content)
}

// --- Insert Tests ---

func TestStore_InsertAutoAssign(t *testing.T) {
	s, cleanup := setupStore(t)
	defer cleanup()
	ctx := context.Background()

	// Auto-assigned ids continue from the highest rowid
	id, err := s.Insert(ctx, store.Document{Content: "auto assigned"}, store.InsertOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(105), id)

	doc, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "auto assigned", doc.Content)
}

func TestStore_InsertExplicitID(t *testing.T) {
	s, cleanup := setupStore(t)
	defer cleanup()
	ctx := context.Background()

	id, err := s.Insert(ctx, store.Document{ID: 500, Content: "explicit"}, store.InsertOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(500), id)
}

func TestStore_InsertDuplicateRejected(t *testing.T) {
	s, cleanup := setupStore(t)
	defer cleanup()
	ctx := context.Background()

	_, err := s.Insert(ctx, store.Document{ID: 101, Content: "usurper"}, store.InsertOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrDuplicateID))

	// Original content unchanged - no silent duplicate row
	doc, err := s.Get(ctx, 101)
	require.NoError(t, err)
	assert.Equal(t, corpus[0].Content, doc.Content)

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestStore_InsertManyAtomic(t *testing.T) {
	s, cleanup := setupStore(t)
	defer cleanup()
	ctx := context.Background()

	// A duplicate anywhere in the batch rolls back everything
	err := s.InsertMany(ctx, []store.Document{
		{ID: 200, Content: "first of batch"},
		{ID: 101, Content: "collides"},
		{ID: 201, Content: "never reached"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrDuplicateID))

	_, err = s.Get(ctx, 200)
	assert.True(t, errors.Is(err, store.ErrNotFound))

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestStore_InsertManySuccess(t *testing.T) {
	s, cleanup := setupStore(t)
	defer cleanup()
	ctx := context.Background()

	err := s.InsertMany(ctx, []store.Document{
		{Content: "batch one"},
		{ID: 300, Content: "batch two"},
	})
	require.NoError(t, err)

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(6), count)
}

// --- Search Tests ---

func TestStore_SearchPhraseOrderMatters(t *testing.T) {
	s, cleanup := setupStore(t)
	defer cleanup()
	ctx := context.Background()

	_, err := s.Insert(ctx, store.Document{ID: 110, Content: "brown quick reversal"}, store.InsertOptions{})
	require.NoError(t, err)

	matches, err := s.Search(ctx, `"quick brown"`, store.NewSearchOptions())
	require.NoError(t, err)
	assert.Equal(t, []int64{101}, matchIDs(matches))
}

func TestStore_SearchBoolean(t *testing.T) {
	s, cleanup := setupStore(t)
	defer cleanup()
	ctx := context.Background()

	matches, err := s.Search(ctx, `quick AND dog`, store.NewSearchOptions())
	require.NoError(t, err)
	assert.Equal(t, []int64{101}, matchIDs(matches))

	matches, err = s.Search(ctx, `quick AND decisions`, store.NewSearchOptions())
	require.NoError(t, err)
	assert.Equal(t, []int64{104}, matchIDs(matches))

	matches, err = s.Search(ctx, `enemy OR lazy`, store.NewSearchOptions())
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{101, 102, 103}, matchIDs(matches))
}

func TestStore_SearchNot(t *testing.T) {
	s, cleanup := setupStore(t)
	defer cleanup()

	matches, err := s.Search(context.Background(), `quick NOT brown`, store.NewSearchOptions())
	require.NoError(t, err)
	ids := matchIDs(matches)
	assert.NotContains(t, ids, int64(101))
	assert.ElementsMatch(t, []int64{103, 104}, ids)
}

func TestStore_SearchPrefix(t *testing.T) {
	s, cleanup := setupStore(t)
	defer cleanup()

	matches, err := s.Search(context.Background(), `"qui"*`, store.NewSearchOptions())
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{101, 102, 103, 104}, matchIDs(matches))
}

func TestStore_SearchNear(t *testing.T) {
	s, cleanup := setupStore(t)
	defer cleanup()
	ctx := context.Background()

	// "quick" and "enemy" are 4 tokens apart in document 103
	matches, err := s.Search(ctx, `NEAR("quick" "enemy", 10)`, store.NewSearchOptions())
	require.NoError(t, err)
	assert.Equal(t, []int64{103}, matchIDs(matches))

	// Tighter than the actual distance: no match
	matches, err = s.Search(ctx, `NEAR("quick" "enemy", 2)`, store.NewSearchOptions())
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestStore_SearchLimit(t *testing.T) {
	s, cleanup := setupStore(t)
	defer cleanup()

	matches, err := s.Search(context.Background(), `quick`, store.NewSearchOptions().WithLimit(2))
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestStore_SearchRejectsMalformedQuery(t *testing.T) {
	s, cleanup := setupStore(t)
	defer cleanup()

	_, err := s.Search(context.Background(), `AND AND`, store.NewSearchOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrQueryRejected))
	// The error carries the offending canonical query
	assert.Contains(t, err.Error(), "AND AND")
}

// --- Highlight Tests ---

func TestStore_SearchHighlight(t *testing.T) {
	s, cleanup := setupStore(t)
	defer cleanup()

	opts := store.NewSearchOptions().WithHighlight()
	matches, err := s.Search(context.Background(), `lazy`, opts)
	require.NoError(t, err)
	require.NotEmpty(t, matches)

	for _, m := range matches {
		assert.Contains(t, m.Highlighted, "<b>lazy</b>")
		// Plain content rides along unchanged
		assert.NotContains(t, m.Content, "<b>")
	}
}

func TestStore_SearchHighlightCustomMarkers(t *testing.T) {
	s, cleanup := setupStore(t)
	defer cleanup()

	opts := store.NewSearchOptions().WithHighlight().WithMarkers("<<", ">>")
	matches, err := s.Search(context.Background(), `enemy`, opts)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Contains(t, matches[0].Highlighted, "<<enemy>>")
}

func TestStore_SearchNoHighlightByDefault(t *testing.T) {
	s, cleanup := setupStore(t)
	defer cleanup()

	matches, err := s.Search(context.Background(), `lazy`, store.NewSearchOptions())
	require.NoError(t, err)
	for _, m := range matches {
		assert.Empty(t, m.Highlighted)
	}
}

// --- Lifecycle Tests ---

func TestStore_Delete(t *testing.T) {
	s, cleanup := setupStore(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, s.Delete(ctx, 102))

	_, err := s.Get(ctx, 102)
	assert.True(t, errors.Is(err, store.ErrNotFound))

	// Deleted documents no longer match
	matches, err := s.Search(ctx, `quickly`, store.NewSearchOptions())
	require.NoError(t, err)
	assert.Empty(t, matches)

	assert.True(t, errors.Is(s.Delete(ctx, 102), store.ErrNotFound))
}

func TestStore_ListAndStats(t *testing.T) {
	s, cleanup := setupStore(t)
	defer cleanup()
	ctx := context.Background()

	docs, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, docs, 4)
	assert.Equal(t, int64(101), docs[0].ID)
	assert.Equal(t, int64(104), docs[3].ID)

	docs, err = s.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	st, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), st.Documents)
	assert.Equal(t, int64(101), st.LowestID)
	assert.Equal(t, int64(104), st.HighestID)

	var want int64
	for _, d := range corpus {
		want += int64(len(d.Content))
	}
	assert.Equal(t, want, st.TotalBytes)
}

func TestStore_ClosedStoreFailsEverything(t *testing.T) {
	s, err := store.Open(":memory:", corpus...)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	ctx := context.Background()

	_, err = s.Insert(ctx, store.Document{Content: "late"}, store.InsertOptions{})
	assert.True(t, errors.Is(err, store.ErrClosed))

	err = s.InsertMany(ctx, []store.Document{{Content: "late"}})
	assert.True(t, errors.Is(err, store.ErrClosed))

	_, err = s.Search(ctx, `quick`, store.NewSearchOptions())
	assert.True(t, errors.Is(err, store.ErrClosed))

	_, err = s.Get(ctx, 101)
	assert.True(t, errors.Is(err, store.ErrClosed))

	err = s.Delete(ctx, 101)
	assert.True(t, errors.Is(err, store.ErrClosed))

	_, err = s.Count(ctx)
	assert.True(t, errors.Is(err, store.ErrClosed))

	err = s.Checkpoint(ctx)
	assert.True(t, errors.Is(err, store.ErrClosed))

	// Close is not idempotent: a second Close fails like everything else
	assert.True(t, errors.Is(s.Close(), store.ErrClosed))
}

func TestStore_CloseViaDefer(t *testing.T) {
	s, err := store.Open(":memory:")
	require.NoError(t, err)

	func() {
		defer s.Close()
		_, err := s.Insert(context.Background(), store.Document{Content: "scoped"}, store.InsertOptions{})
		require.NoError(t, err)
	}()

	_, err = s.Count(context.Background())
	assert.True(t, errors.Is(err, store.ErrClosed))
}

// --- Round-trip Test ---

func TestStore_RoundTrip(t *testing.T) {
	s, err := store.Open(":memory:")
	require.NoError(t, err)
	defer s.Close()
	ctx := context.Background()

	id, err := s.Insert(ctx, store.Document{ID: 101, Content: "The quick brown fox jumps over the lazy dog"}, store.InsertOptions{})
	require.NoError(t, err)
	require.Equal(t, int64(101), id)

	matches, err := s.Search(ctx, `quick AND dog`, store.NewSearchOptions())
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, int64(101), matches[0].ID)
	assert.True(t, strings.Contains(matches[0].Content, "quick brown fox"))
}

package document

import (
	"context"

	"github.com/jpl-au/docdex/internal/query"
	"github.com/jpl-au/docdex/internal/store"
)

// Search runs a raw FTS5 query string against the index, best match first.
// Returns store.ErrQueryRejected (wrapping the offending query) if the
// engine cannot parse it.
func (s *Service) Search(ctx context.Context, q string, opts store.SearchOptions) ([]store.Match, error) {
	return s.store.Search(ctx, q, opts)
}

// SearchPhrase matches documents containing the words of text adjacent
// and in order. Operator words inside text are matched literally.
func (s *Service) SearchPhrase(ctx context.Context, text string, opts store.SearchOptions) ([]store.Match, error) {
	q, err := query.Phrase(text)
	if err != nil {
		return nil, err
	}
	return s.store.Search(ctx, q, opts)
}

// SearchPrefix matches documents containing any token starting with token.
func (s *Service) SearchPrefix(ctx context.Context, token string, opts store.SearchOptions) ([]store.Match, error) {
	q, err := query.Prefix(token)
	if err != nil {
		return nil, err
	}
	return s.store.Search(ctx, q, opts)
}

// SearchAnd matches documents containing every one of the terms.
func (s *Service) SearchAnd(ctx context.Context, terms []string, opts store.SearchOptions) ([]store.Match, error) {
	q, err := query.AndAll(terms...)
	if err != nil {
		return nil, err
	}
	return s.store.Search(ctx, q, opts)
}

// SearchOr matches documents containing at least one of the terms.
func (s *Service) SearchOr(ctx context.Context, terms []string, opts store.SearchOptions) ([]store.Match, error) {
	q, err := query.OrAny(terms...)
	if err != nil {
		return nil, err
	}
	return s.store.Search(ctx, q, opts)
}

// SearchNot matches documents containing include but not exclude.
func (s *Service) SearchNot(ctx context.Context, include, exclude string, opts store.SearchOptions) ([]store.Match, error) {
	q, err := query.Not(include, exclude)
	if err != nil {
		return nil, err
	}
	return s.store.Search(ctx, q, opts)
}

// SearchNear matches documents where all terms appear within maxDistance
// tokens of each other.
func (s *Service) SearchNear(ctx context.Context, terms []string, maxDistance int, opts store.SearchOptions) ([]store.Match, error) {
	q, err := query.Near(maxDistance, terms...)
	if err != nil {
		return nil, err
	}
	return s.store.Search(ctx, q, opts)
}

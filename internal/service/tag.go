package service

import (
	"context"

	"socialnet/internal/store"
)

type TagService interface {
	List(ctx context.Context) ([]string, error)
}

type Tag struct {
	store store.Store
}

func NewTag(s store.Store) TagService {
	return &Tag{store: s}
}

// List returns every distinct tag used across posts, sorted ascending. The
// tag vocabulary is derived, not curated: it changes only through posts.
func (s *Tag) List(ctx context.Context) ([]string, error) {
	tags, err := s.store.DistinctSortedValues(ctx, store.Posts, "tags")
	if err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}

// Package memory is an in-memory store.Store used by tests and local
// development. It mirrors the document-store semantics the mongo adapter
// relies on: equality matches array membership, substring matches are
// case-insensitive, ties keep insertion order.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"socialnet/internal/store"
)

type Storage struct {
	mu          sync.RWMutex
	collections map[string][]store.Document
	seq         uint64
}

func New() *Storage {
	return &Storage{collections: make(map[string][]store.Document)}
}

func (s *Storage) nextID() string {
	s.seq++
	return fmt.Sprintf("%024x", s.seq)
}

func (s *Storage) Count(ctx context.Context, collection string, filter store.Filter) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, doc := range s.collections[collection] {
		if matches(doc, filter) {
			n++
		}
	}
	return n, nil
}

func (s *Storage) Find(ctx context.Context, collection string, filter store.Filter, srt store.Sort, skip, limit int) ([]store.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []store.Document
	for _, doc := range s.collections[collection] {
		if matches(doc, filter) {
			matched = append(matched, doc)
		}
	}

	if srt.Field != "" {
		sort.SliceStable(matched, func(i, j int) bool {
			less := compare(matched[i][srt.Field], matched[j][srt.Field]) < 0
			if srt.Desc {
				return !less && compare(matched[i][srt.Field], matched[j][srt.Field]) != 0
			}
			return less
		})
	}

	if skip >= len(matched) {
		return nil, nil
	}
	matched = matched[skip:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}

	out := make([]store.Document, len(matched))
	for i, doc := range matched {
		out[i] = clone(doc)
	}
	return out, nil
}

func (s *Storage) FindOne(ctx context.Context, collection, id string) (store.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, doc := range s.collections[collection] {
		if doc.String("_id") == id {
			return clone(doc), nil
		}
	}
	return nil, nil
}

func (s *Storage) Insert(ctx context.Context, collection string, doc store.Document) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := clone(doc)
	id := s.nextID()
	stored["_id"] = id
	s.collections[collection] = append(s.collections[collection], stored)
	return id, nil
}

func (s *Storage) Update(ctx context.Context, collection, id string, fields store.Document) (store.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range s.collections[collection] {
		if doc.String("_id") == id {
			for k, v := range fields {
				doc[k] = v
			}
			return clone(doc), nil
		}
	}
	return nil, nil
}

func (s *Storage) Delete(ctx context.Context, collection, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := s.collections[collection]
	for i, doc := range docs {
		if doc.String("_id") == id {
			s.collections[collection] = append(docs[:i:i], docs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *Storage) DistinctSortedValues(ctx context.Context, collection, field string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, doc := range s.collections[collection] {
		switch v := doc[field].(type) {
		case string:
			seen[v] = struct{}{}
		default:
			for _, e := range doc.Strings(field) {
				seen[e] = struct{}{}
			}
		}
	}

	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values, nil
}

func matches(doc store.Document, f store.Filter) bool {
	for _, c := range f.And {
		if !matchCondition(doc, c) {
			return false
		}
	}
	if len(f.Or) > 0 {
		any := false
		for _, c := range f.Or {
			if matchCondition(doc, c) {
				any = true
				break
			}
		}
		if !any {
			return false
		}
	}
	return true
}

func matchCondition(doc store.Document, c store.Condition) bool {
	switch c.Op {
	case store.OpEq:
		return matchEq(doc[c.Field], c.Value)
	case store.OpContains:
		needle, _ := c.Value.(string)
		hay, _ := doc[c.Field].(string)
		return strings.Contains(strings.ToLower(hay), strings.ToLower(needle))
	case store.OpIn:
		values, _ := c.Value.([]string)
		for _, v := range values {
			if matchEq(doc[c.Field], v) {
				return true
			}
		}
	}
	return false
}

func matchEq(stored, want any) bool {
	switch v := stored.(type) {
	case []string:
		for _, e := range v {
			if e == want {
				return true
			}
		}
		return false
	case []any:
		for _, e := range v {
			if e == want {
				return true
			}
		}
		return false
	default:
		return stored == want
	}
}

func compare(a, b any) int {
	switch av := a.(type) {
	case string:
		bv, _ := b.(string)
		return strings.Compare(av, bv)
	case int:
		return compareFloat(float64(av), b)
	case int64:
		return compareFloat(float64(av), b)
	case float64:
		return compareFloat(av, b)
	case time.Time:
		bv, _ := b.(time.Time)
		return av.Compare(bv)
	}
	return 0
}

func compareFloat(av float64, b any) int {
	var bv float64
	switch t := b.(type) {
	case int:
		bv = float64(t)
	case int64:
		bv = float64(t)
	case float64:
		bv = t
	}
	switch {
	case av < bv:
		return -1
	case av > bv:
		return 1
	default:
		return 0
	}
}

func clone(doc store.Document) store.Document {
	out := make(store.Document, len(doc))
	for k, v := range doc {
		switch t := v.(type) {
		case []string:
			out[k] = append([]string(nil), t...)
		case []any:
			out[k] = append([]any(nil), t...)
		case store.Document:
			out[k] = clone(t)
		case map[string]any:
			out[k] = clone(store.Document(t))
		default:
			out[k] = v
		}
	}
	return out
}

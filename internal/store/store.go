// Package store defines the minimal document-store interface the resource
// engine consumes, plus the store-agnostic filter predicate fed into it.
package store

import (
	"context"
	"time"
)

// Collection names used across the service layer.
const (
	Users    = "users"
	Posts    = "posts"
	Comments = "comments"
)

// Document is a raw stored document as returned by an adapter. Adapters
// normalize ids to 24-hex strings and timestamps to time.Time before
// handing documents to callers.
type Document map[string]any

// Sort is a single-key sort specification. Ties are resolved by the store's
// natural iteration order; no secondary key is applied.
type Sort struct {
	Field string
	Desc  bool
}

// Store is the query interface every adapter implements. It is safe for
// concurrent use by many in-flight requests.
type Store interface {
	Count(ctx context.Context, collection string, filter Filter) (int64, error)
	Find(ctx context.Context, collection string, filter Filter, sort Sort, skip, limit int) ([]Document, error)
	FindOne(ctx context.Context, collection, id string) (Document, error)
	Insert(ctx context.Context, collection string, doc Document) (string, error)
	Update(ctx context.Context, collection, id string, fields Document) (Document, error)
	Delete(ctx context.Context, collection, id string) (bool, error)
	DistinctSortedValues(ctx context.Context, collection, field string) ([]string, error)
}

// Typed field accessors. Missing or mistyped fields yield zero values, the
// same tolerance the original documents had for optional fields.

func (d Document) String(key string) string {
	s, _ := d[key].(string)
	return s
}

func (d Document) Int(key string) int {
	switch v := d[key].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func (d Document) Time(key string) *time.Time {
	if t, ok := d[key].(time.Time); ok {
		return &t
	}
	return nil
}

func (d Document) Strings(key string) []string {
	switch v := d[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func (d Document) Child(key string) Document {
	switch v := d[key].(type) {
	case Document:
		return v
	case map[string]any:
		return Document(v)
	}
	return nil
}

package mongo

import (
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"socialnet/internal/store"
)

// toBson translates the store-agnostic filter into a MongoDB query.
// Reference ids on _id are converted to ObjectIDs; substring searches become
// anchored-nowhere case-insensitive regexes with the needle quoted so user
// input cannot inject regex syntax.
func toBson(f store.Filter) bson.M {
	q := bson.M{}
	for _, c := range f.And {
		switch c.Op {
		case store.OpEq:
			q[c.Field] = fieldValue(c.Field, c.Value)
		case store.OpContains:
			q[c.Field] = regexMatch(c.Value)
		case store.OpIn:
			q[c.Field] = bson.M{"$in": inValues(c.Field, c.Value)}
		}
	}
	if len(f.Or) > 0 {
		or := make([]bson.M, 0, len(f.Or))
		for _, c := range f.Or {
			switch c.Op {
			case store.OpContains:
				or = append(or, bson.M{c.Field: regexMatch(c.Value)})
			default:
				or = append(or, bson.M{c.Field: fieldValue(c.Field, c.Value)})
			}
		}
		q["$or"] = or
	}
	return q
}

func regexMatch(v any) bson.M {
	needle, _ := v.(string)
	return bson.M{"$regex": regexp.QuoteMeta(needle), "$options": "i"}
}

func fieldValue(field string, v any) any {
	if field != "_id" {
		return v
	}
	if s, ok := v.(string); ok {
		if oid, err := primitive.ObjectIDFromHex(s); err == nil {
			return oid
		}
	}
	return v
}

func inValues(field string, v any) []any {
	values, _ := v.([]string)
	out := make([]any, 0, len(values))
	for _, s := range values {
		out = append(out, fieldValue(field, s))
	}
	return out
}

// normalize converts driver-specific values in a fetched document to the
// plain Go types the resolver layer expects: ObjectID to hex string,
// DateTime to time.Time, nested documents and arrays recursively.
func normalize(raw bson.M) store.Document {
	doc := make(store.Document, len(raw))
	for k, v := range raw {
		doc[k] = normalizeValue(v)
	}
	return doc
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case primitive.ObjectID:
		return t.Hex()
	case primitive.DateTime:
		return t.Time().UTC()
	case time.Time:
		return t.UTC()
	case bson.M:
		return normalize(t)
	case bson.D:
		return normalize(t.Map())
	case primitive.A:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = normalizeValue(e)
		}
		return out
	default:
		return v
	}
}

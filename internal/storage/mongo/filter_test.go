package mongo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"socialnet/internal/store"
)

func TestToBson_Empty(t *testing.T) {
	assert.Equal(t, bson.M{}, toBson(store.Filter{}))
}

func TestToBson_Eq(t *testing.T) {
	f := store.Filter{}.WithEq("owner", "507f1f77bcf86cd799439011").WithEq("title", "dr")
	q := toBson(f)

	// owner references are stored as plain strings, not ObjectIDs
	assert.Equal(t, "507f1f77bcf86cd799439011", q["owner"])
	assert.Equal(t, "dr", q["title"])
}

func TestToBson_IdEqBecomesObjectID(t *testing.T) {
	f := store.Filter{}.WithEq("_id", "507f1f77bcf86cd799439011")
	q := toBson(f)

	oid, err := primitive.ObjectIDFromHex("507f1f77bcf86cd799439011")
	require.NoError(t, err)
	assert.Equal(t, oid, q["_id"])
}

func TestToBson_SearchOr(t *testing.T) {
	f := store.Filter{}.WithSearch("ali", "firstName", "lastName", "email")
	q := toBson(f)

	or, ok := q["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, or, 3)
	assert.Equal(t, bson.M{"firstName": bson.M{"$regex": "ali", "$options": "i"}}, or[0])
	assert.Equal(t, bson.M{"lastName": bson.M{"$regex": "ali", "$options": "i"}}, or[1])
	assert.Equal(t, bson.M{"email": bson.M{"$regex": "ali", "$options": "i"}}, or[2])
}

func TestToBson_SearchQuotesRegexMeta(t *testing.T) {
	f := store.Filter{}.WithSearch("a.b*", "text")
	q := toBson(f)

	or := q["$or"].([]bson.M)
	assert.Equal(t, bson.M{"$regex": `a\.b\*`, "$options": "i"}, or[0]["text"])
}

func TestToBson_InOnIds(t *testing.T) {
	ids := []string{"507f1f77bcf86cd799439011", "507f1f77bcf86cd799439012"}
	q := toBson(store.In("_id", ids))

	in, ok := q["_id"].(bson.M)
	require.True(t, ok)
	values, ok := in["$in"].([]any)
	require.True(t, ok)
	require.Len(t, values, 2)
	for i, v := range values {
		oid, err := primitive.ObjectIDFromHex(ids[i])
		require.NoError(t, err)
		assert.Equal(t, oid, v)
	}
}

func TestNormalize(t *testing.T) {
	oid := primitive.NewObjectID()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	doc := normalize(bson.M{
		"_id":         oid,
		"publishDate": primitive.NewDateTimeFromTime(now),
		"tags":        primitive.A{"dog", "cat"},
		"location":    bson.M{"city": "Paris"},
		"likes":       int32(7),
	})

	assert.Equal(t, oid.Hex(), doc.String("_id"))
	require.NotNil(t, doc.Time("publishDate"))
	assert.Equal(t, now, *doc.Time("publishDate"))
	assert.Equal(t, []string{"dog", "cat"}, doc.Strings("tags"))
	assert.Equal(t, "Paris", doc.Child("location").String("city"))
	assert.Equal(t, 7, doc.Int("likes"))
}

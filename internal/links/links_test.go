package links

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const base = "http://localhost:8080"

func TestPagination_QueryPreservation(t *testing.T) {
	// page 2 of limit 10 over 30 posts with sort and search applied
	l := Pagination(base, "/api/v1/posts", 2, 10, 30,
		Param{"sort_by", "likes"}, Param{"sort_order", "asc"}, Param{"search", "cats"})

	assert.Equal(t, base+"/api/v1/posts?page=2&limit=10&sort_by=likes&sort_order=asc&search=cats", l["self"].Href)
	assert.Equal(t, base+"/api/v1/posts?page=1&limit=10&sort_by=likes&sort_order=asc&search=cats", l["first"].Href)
	assert.Equal(t, base+"/api/v1/posts?page=3&limit=10&sort_by=likes&sort_order=asc&search=cats", l["last"].Href)
	assert.Equal(t, base+"/api/v1/posts?page=1&limit=10&sort_by=likes&sort_order=asc&search=cats", l["prev"].Href)
	assert.Equal(t, base+"/api/v1/posts?page=3&limit=10&sort_by=likes&sort_order=asc&search=cats", l["next"].Href)
}

func TestPagination_EmptyParamsDropped(t *testing.T) {
	l := Pagination(base, "/api/v1/comments", 1, 20, 5,
		Param{"sort_by", "publishDate"}, Param{"sort_order", "desc"}, Param{"post", ""}, Param{"user", ""})

	assert.Equal(t, base+"/api/v1/comments?page=1&limit=20&sort_by=publishDate&sort_order=desc", l["self"].Href)
}

func TestPagination_PrevNextPresence(t *testing.T) {
	testCases := []struct {
		name     string
		page     int
		limit    int
		total    int64
		wantPrev bool
		wantNext bool
	}{
		{name: "first of many", page: 1, limit: 10, total: 30, wantPrev: false, wantNext: true},
		{name: "middle", page: 2, limit: 10, total: 30, wantPrev: true, wantNext: true},
		{name: "last", page: 3, limit: 10, total: 30, wantPrev: true, wantNext: false},
		{name: "single page", page: 1, limit: 10, total: 5, wantPrev: false, wantNext: false},
		{name: "past the end", page: 9, limit: 10, total: 30, wantPrev: true, wantNext: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := Pagination(base, "/api/v1/users", tc.page, tc.limit, tc.total)
			_, hasPrev := l["prev"]
			_, hasNext := l["next"]
			assert.Equal(t, tc.wantPrev, hasPrev, "prev presence")
			assert.Equal(t, tc.wantNext, hasNext, "next presence")
		})
	}
}

func TestPagination_EmptyCollection(t *testing.T) {
	// total == 0: last points at page 0 and is still emitted
	l := Pagination(base, "/api/v1/posts", 1, 20, 0)

	assert.Equal(t, base+"/api/v1/posts?page=0&limit=20", l["last"].Href)
	assert.NotContains(t, l, "prev")
	assert.NotContains(t, l, "next")
}

func TestResourceLinks(t *testing.T) {
	post := Post(base, "p1", "u1")
	assert.Equal(t, base+"/api/v1/posts/p1", post["self"].Href)
	assert.Equal(t, base+"/api/v1/users/u1", post["owner"].Href)
	assert.Equal(t, base+"/api/v1/comments?post=p1", post["comments"].Href)

	user := User(base, "u1")
	assert.Equal(t, base+"/api/v1/posts/user/u1", user["posts"].Href)
	assert.Equal(t, base+"/api/v1/comments/user/u1", user["comments"].Href)

	comment := Comment(base, "c1", "p1", "u1")
	assert.Equal(t, base+"/api/v1/comments/c1", comment["self"].Href)
	assert.Equal(t, base+"/api/v1/posts/p1", comment["post"].Href)

	tag := Tag(base, "travel")
	assert.Equal(t, base+"/api/v1/posts/tag/travel", tag["posts"].Href)
}

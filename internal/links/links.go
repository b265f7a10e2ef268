// Package links builds the HATEOAS relation and pagination link maps
// embedded in API responses.
package links

import (
	"fmt"

	"socialnet/internal/pagination"
)

type Link struct {
	Href string `json:"href"`
}

type Links map[string]Link

// Param is one extra query parameter echoed into pagination links.
// Params are appended in declaration order; empty values are dropped.
type Param struct {
	Key   string
	Value string
}

// Pagination emits self/first/last and, when applicable, prev/next.
// The query string is a byte-for-byte contract: page and limit first, then
// each non-empty extra parameter verbatim, no additional URL-encoding.
// With total == 0 the last link points at page 0 and is still emitted.
func Pagination(baseURL, endpoint string, page, limit int, total int64, params ...Param) Links {
	totalPages := pagination.TotalPages(total, limit)

	var extra string
	for _, p := range params {
		if p.Value == "" {
			continue
		}
		extra += fmt.Sprintf("&%s=%s", p.Key, p.Value)
	}

	href := func(page int) Link {
		return Link{Href: fmt.Sprintf("%s%s?page=%d&limit=%d%s", baseURL, endpoint, page, limit, extra)}
	}

	l := Links{
		"self":  href(page),
		"first": href(1),
		"last":  href(totalPages),
	}
	if page > 1 {
		l["prev"] = href(page - 1)
	}
	if page < totalPages {
		l["next"] = href(page + 1)
	}
	return l
}

// User links a user to its posts and comments listings.
func User(baseURL, userID string) Links {
	return Links{
		"self":     {Href: fmt.Sprintf("%s/api/v1/users/%s", baseURL, userID)},
		"posts":    {Href: fmt.Sprintf("%s/api/v1/posts/user/%s", baseURL, userID)},
		"comments": {Href: fmt.Sprintf("%s/api/v1/comments/user/%s", baseURL, userID)},
	}
}

// Post links a post to its owner and its comments-by-post listing.
func Post(baseURL, postID, ownerID string) Links {
	return Links{
		"self":     {Href: fmt.Sprintf("%s/api/v1/posts/%s", baseURL, postID)},
		"owner":    {Href: fmt.Sprintf("%s/api/v1/users/%s", baseURL, ownerID)},
		"comments": {Href: fmt.Sprintf("%s/api/v1/comments?post=%s", baseURL, postID)},
	}
}

// Comment links a comment to its post and owner.
func Comment(baseURL, commentID, postID, ownerID string) Links {
	return Links{
		"self":  {Href: fmt.Sprintf("%s/api/v1/comments/%s", baseURL, commentID)},
		"post":  {Href: fmt.Sprintf("%s/api/v1/posts/%s", baseURL, postID)},
		"owner": {Href: fmt.Sprintf("%s/api/v1/users/%s", baseURL, ownerID)},
	}
}

// Tag links a tag to its posts-by-tag listing.
func Tag(baseURL, tag string) Links {
	return Links{
		"self":  {Href: fmt.Sprintf("%s/api/v1/tags", baseURL)},
		"posts": {Href: fmt.Sprintf("%s/api/v1/posts/tag/%s", baseURL, tag)},
	}
}

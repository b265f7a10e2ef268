package service

import (
	"context"
	"fmt"
	"time"

	"socialnet/internal/apierr"
	"socialnet/internal/domain"
	"socialnet/internal/pagination"
	"socialnet/internal/service/utils"
	"socialnet/internal/store"
)

type PostService interface {
	List(ctx context.Context, p PostListParams) ([]domain.PostPreview, int64, error)
	Get(ctx context.Context, id string) (*domain.Post, error)
	Create(ctx context.Context, data domain.PostCreateData) (*domain.Post, error)
	Update(ctx context.Context, id string, data domain.PostUpdateData) (*domain.Post, error)
	Delete(ctx context.Context, id string) error
}

type PostListParams struct {
	pagination.Params
	Search string
	Owner  string
	Tag    string
}

type Post struct {
	store  store.Store
	owners ownerResolver
}

func NewPost(s store.Store) PostService {
	return &Post{store: s, owners: ownerResolver{store: s}}
}

// buildFilter returns ok=false when a reference-valued parameter is
// malformed: no post could possibly match, so the listing short-circuits to
// an empty result instead of raising a client error.
func (s *Post) buildFilter(p PostListParams) (store.Filter, bool) {
	f := store.Filter{}
	if p.Owner != "" {
		if !domain.IsValidID(p.Owner) {
			return f, false
		}
		f = f.WithEq("owner", p.Owner)
	}
	if p.Tag != "" {
		f = f.WithEq("tags", p.Tag)
	}
	if p.Search != "" {
		f = f.WithSearch(p.Search, "text")
	}
	return f, true
}

func (s *Post) List(ctx context.Context, p PostListParams) ([]domain.PostPreview, int64, error) {
	filter, ok := s.buildFilter(p)
	if !ok {
		return []domain.PostPreview{}, 0, nil
	}

	total, err := s.store.Count(ctx, store.Posts, filter)
	if err != nil {
		return nil, 0, err
	}

	docs, err := s.store.Find(ctx, store.Posts, filter,
		store.Sort{Field: p.SortBy, Desc: p.Desc()}, p.Skip(), p.Limit)
	if err != nil {
		return nil, 0, err
	}

	owners, err := s.owners.batch(ctx, docs)
	if err != nil {
		return nil, 0, err
	}

	// Items whose owner no longer exists are dropped from the page; total
	// still reports the raw count. Feeds tolerate broken references,
	// direct reads do not (see Get).
	posts := make([]domain.PostPreview, 0, len(docs))
	for _, doc := range docs {
		owner, ok := owners[doc.String("owner")]
		if !ok {
			continue
		}
		posts = append(posts, postFromDoc(doc, owner).Preview())
	}
	return posts, total, nil
}

func (s *Post) Get(ctx context.Context, id string) (*domain.Post, error) {
	doc, err := s.store.FindOne(ctx, store.Posts, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, apierr.ResourceNotFound("Post", id, "id")
	}
	return s.resolve(ctx, doc)
}

// resolve is the strict single-item path: a dangling owner reference is a
// hard error here.
func (s *Post) resolve(ctx context.Context, doc store.Document) (*domain.Post, error) {
	ownerID := doc.String("owner")
	owner, err := s.owners.preview(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, apierr.ResourceNotFound("User", ownerID, "id")
	}
	return postFromDoc(doc, *owner), nil
}

func (s *Post) Create(ctx context.Context, data domain.PostCreateData) (*domain.Post, error) {
	owner, err := s.owners.preview(ctx, data.Owner)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, apierr.BodyNotValid([]apierr.FieldViolation{{
			Field: "owner",
			Value: data.Owner,
			Issue: fmt.Sprintf("User with id %s not found", data.Owner),
			Type:  "reference_violation",
		}})
	}

	tags := data.Tags
	if tags == nil {
		tags = []string{}
	}
	doc := store.Document{
		"text":        utils.SanitizeText(data.Text),
		"image":       data.Image,
		"likes":       data.Likes,
		"tags":        tags,
		"owner":       data.Owner,
		"publishDate": time.Now().UTC(),
	}
	if data.Link != "" {
		doc["link"] = data.Link
	}

	id, err := s.store.Insert(ctx, store.Posts, doc)
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *Post) Update(ctx context.Context, id string, data domain.PostUpdateData) (*domain.Post, error) {
	fields := store.Document{}
	if data.Text != nil {
		fields["text"] = utils.SanitizeText(*data.Text)
	}
	if data.Image != nil {
		fields["image"] = *data.Image
	}
	if data.Likes != nil {
		fields["likes"] = *data.Likes
	}
	if data.Tags != nil {
		fields["tags"] = *data.Tags
	}
	if data.Link != nil {
		fields["link"] = *data.Link
	}

	if len(fields) == 0 {
		return s.Get(ctx, id)
	}

	doc, err := s.store.Update(ctx, store.Posts, id, fields)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, apierr.ResourceNotFound("Post", id, "id")
	}
	return s.resolve(ctx, doc)
}

func (s *Post) Delete(ctx context.Context, id string) error {
	found, err := s.store.Delete(ctx, store.Posts, id)
	if err != nil {
		return err
	}
	if !found {
		return apierr.ResourceNotFound("Post", id, "id")
	}
	return nil
}

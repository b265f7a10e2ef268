package service

import (
	"context"

	"socialnet/internal/domain"
	"socialnet/internal/store"
)

// ownerResolver turns owner references into user previews. List contexts use
// the batch path: referenced ids across a page are collected and fetched in a
// single multi-id query, then mapped back per item.
type ownerResolver struct {
	store store.Store
}

// preview fetches a single owner preview; nil when the reference is
// malformed or dangling.
func (r ownerResolver) preview(ctx context.Context, ownerID string) (*domain.UserPreview, error) {
	if !domain.IsValidID(ownerID) {
		return nil, nil
	}
	doc, err := r.store.FindOne(ctx, store.Users, ownerID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}
	p := userPreviewFromDoc(doc)
	return &p, nil
}

// batch resolves the owner previews for every document in docs keyed by
// owner id. Malformed references are left out; so are dangling ones.
func (r ownerResolver) batch(ctx context.Context, docs []store.Document) (map[string]domain.UserPreview, error) {
	seen := make(map[string]struct{})
	var ids []string
	for _, doc := range docs {
		id := doc.String("owner")
		if !domain.IsValidID(id) {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	owners, err := r.store.Find(ctx, store.Users, store.In("_id", ids), store.Sort{Field: "_id"}, 0, len(ids))
	if err != nil {
		return nil, err
	}

	out := make(map[string]domain.UserPreview, len(owners))
	for _, doc := range owners {
		out[doc.String("_id")] = userPreviewFromDoc(doc)
	}
	return out, nil
}

func userPreviewFromDoc(doc store.Document) domain.UserPreview {
	return domain.UserPreview{
		ID:        doc.String("_id"),
		Title:     doc.String("title"),
		FirstName: doc.String("firstName"),
		LastName:  doc.String("lastName"),
		Picture:   doc.String("picture"),
	}
}

func userFromDoc(doc store.Document) *domain.User {
	u := &domain.User{
		ID:          doc.String("_id"),
		Title:       doc.String("title"),
		FirstName:   doc.String("firstName"),
		LastName:    doc.String("lastName"),
		Email:       doc.String("email"),
		DateOfBirth: doc.Time("dateOfBirth"),
		Phone:       doc.String("phone"),
		Picture:     doc.String("picture"),
	}
	if t := doc.Time("registerDate"); t != nil {
		u.RegisterDate = *t
	}
	if loc := doc.Child("location"); loc != nil {
		u.Location = &domain.Location{
			Street:   loc.String("street"),
			City:     loc.String("city"),
			State:    loc.String("state"),
			Country:  loc.String("country"),
			Timezone: loc.String("timezone"),
		}
	}
	return u
}

func postFromDoc(doc store.Document, owner domain.UserPreview) *domain.Post {
	p := &domain.Post{
		ID:    doc.String("_id"),
		Text:  doc.String("text"),
		Image: doc.String("image"),
		Likes: doc.Int("likes"),
		Link:  doc.String("link"),
		Tags:  doc.Strings("tags"),
		Owner: owner,
	}
	if t := doc.Time("publishDate"); t != nil {
		p.PublishDate = *t
	}
	return p
}

func commentFromDoc(doc store.Document, owner domain.UserPreview) *domain.Comment {
	c := &domain.Comment{
		ID:      doc.String("_id"),
		Message: doc.String("message"),
		Owner:   owner,
		Post:    doc.String("post"),
	}
	if t := doc.Time("publishDate"); t != nil {
		c.PublishDate = *t
	}
	return c
}

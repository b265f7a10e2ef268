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

type CommentService interface {
	List(ctx context.Context, p CommentListParams) ([]domain.Comment, int64, error)
	Create(ctx context.Context, data domain.CommentCreateData) (*domain.Comment, error)
	Delete(ctx context.Context, id string) error
}

type CommentListParams struct {
	pagination.Params
	Post  string
	Owner string
}

type Comment struct {
	store  store.Store
	owners ownerResolver
}

func NewComment(s store.Store) CommentService {
	return &Comment{store: s, owners: ownerResolver{store: s}}
}

func (s *Comment) buildFilter(p CommentListParams) (store.Filter, bool) {
	f := store.Filter{}
	if p.Post != "" {
		if !domain.IsValidID(p.Post) {
			return f, false
		}
		f = f.WithEq("post", p.Post)
	}
	if p.Owner != "" {
		if !domain.IsValidID(p.Owner) {
			return f, false
		}
		f = f.WithEq("owner", p.Owner)
	}
	return f, true
}

func (s *Comment) List(ctx context.Context, p CommentListParams) ([]domain.Comment, int64, error) {
	filter, ok := s.buildFilter(p)
	if !ok {
		return []domain.Comment{}, 0, nil
	}

	total, err := s.store.Count(ctx, store.Comments, filter)
	if err != nil {
		return nil, 0, err
	}

	docs, err := s.store.Find(ctx, store.Comments, filter,
		store.Sort{Field: p.SortBy, Desc: p.Desc()}, p.Skip(), p.Limit)
	if err != nil {
		return nil, 0, err
	}

	owners, err := s.owners.batch(ctx, docs)
	if err != nil {
		return nil, 0, err
	}

	comments := make([]domain.Comment, 0, len(docs))
	for _, doc := range docs {
		owner, ok := owners[doc.String("owner")]
		if !ok {
			continue
		}
		comments = append(comments, *commentFromDoc(doc, owner))
	}
	return comments, total, nil
}

func (s *Comment) Create(ctx context.Context, data domain.CommentCreateData) (*domain.Comment, error) {
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

	post, err := s.findPost(ctx, data.Post)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apierr.BodyNotValid([]apierr.FieldViolation{{
			Field: "post",
			Value: data.Post,
			Issue: fmt.Sprintf("Post with id %s not found", data.Post),
			Type:  "reference_violation",
		}})
	}

	doc := store.Document{
		"message":     utils.SanitizeText(data.Message),
		"owner":       data.Owner,
		"post":        data.Post,
		"publishDate": time.Now().UTC(),
	}

	id, err := s.store.Insert(ctx, store.Comments, doc)
	if err != nil {
		return nil, err
	}

	created, err := s.store.FindOne(ctx, store.Comments, id)
	if err != nil {
		return nil, err
	}
	return commentFromDoc(created, *owner), nil
}

func (s *Comment) findPost(ctx context.Context, id string) (store.Document, error) {
	if !domain.IsValidID(id) {
		return nil, nil
	}
	return s.store.FindOne(ctx, store.Posts, id)
}

func (s *Comment) Delete(ctx context.Context, id string) error {
	found, err := s.store.Delete(ctx, store.Comments, id)
	if err != nil {
		return err
	}
	if !found {
		return apierr.ResourceNotFound("Comment", id, "id")
	}
	return nil
}

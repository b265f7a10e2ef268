package service

import (
	"context"
	"fmt"
	"time"

	"socialnet/internal/apierr"
	"socialnet/internal/domain"
	"socialnet/internal/pagination"
	"socialnet/internal/store"
)

type UserService interface {
	List(ctx context.Context, p UserListParams) ([]domain.UserPreview, int64, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, data domain.UserCreateData) (*domain.User, error)
	Update(ctx context.Context, id string, data domain.UserUpdateData) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

type UserListParams struct {
	pagination.Params
	Title  string
	Search string
}

type User struct {
	store store.Store
}

func NewUser(s store.Store) UserService {
	return &User{store: s}
}

func (s *User) buildFilter(p UserListParams) store.Filter {
	f := store.Filter{}
	if p.Title != "" {
		f = f.WithEq("title", p.Title)
	}
	if p.Search != "" {
		f = f.WithSearch(p.Search, "firstName", "lastName", "email")
	}
	return f
}

func (s *User) List(ctx context.Context, p UserListParams) ([]domain.UserPreview, int64, error) {
	filter := s.buildFilter(p)

	total, err := s.store.Count(ctx, store.Users, filter)
	if err != nil {
		return nil, 0, err
	}

	docs, err := s.store.Find(ctx, store.Users, filter,
		store.Sort{Field: p.SortBy, Desc: p.Desc()}, p.Skip(), p.Limit)
	if err != nil {
		return nil, 0, err
	}

	users := make([]domain.UserPreview, 0, len(docs))
	for _, doc := range docs {
		users = append(users, userPreviewFromDoc(doc))
	}
	return users, total, nil
}

func (s *User) Get(ctx context.Context, id string) (*domain.User, error) {
	doc, err := s.store.FindOne(ctx, store.Users, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, apierr.ResourceNotFound("User", id, "id")
	}
	return userFromDoc(doc), nil
}

func (s *User) Create(ctx context.Context, data domain.UserCreateData) (*domain.User, error) {
	// Email is globally unique
	existing, err := s.store.Find(ctx, store.Users,
		store.Filter{}.WithEq("email", data.Email), store.Sort{Field: "_id"}, 0, 1)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, apierr.BodyNotValid([]apierr.FieldViolation{{
			Field: "email",
			Value: data.Email,
			Issue: fmt.Sprintf("User with email %s already exists", data.Email),
			Type:  "unique_violation",
		}})
	}

	picture := data.Picture
	if picture == "" {
		picture = domain.DefaultPicture
	}

	doc := store.Document{
		"title":        data.Title,
		"firstName":    data.FirstName,
		"lastName":     data.LastName,
		"email":        data.Email,
		"phone":        data.Phone,
		"picture":      picture,
		"registerDate": time.Now().UTC(),
	}
	if data.DateOfBirth != nil {
		doc["dateOfBirth"] = data.DateOfBirth.UTC()
	}
	if data.Location != nil {
		doc["location"] = locationDoc(data.Location)
	}

	id, err := s.store.Insert(ctx, store.Users, doc)
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *User) Update(ctx context.Context, id string, data domain.UserUpdateData) (*domain.User, error) {
	fields := store.Document{}
	if data.Title != nil {
		fields["title"] = *data.Title
	}
	if data.FirstName != nil {
		fields["firstName"] = *data.FirstName
	}
	if data.LastName != nil {
		fields["lastName"] = *data.LastName
	}
	if data.DateOfBirth != nil {
		fields["dateOfBirth"] = data.DateOfBirth.UTC()
	}
	if data.Phone != nil {
		fields["phone"] = *data.Phone
	}
	if data.Picture != nil {
		fields["picture"] = *data.Picture
	}
	if data.Location != nil {
		fields["location"] = locationDoc(data.Location)
	}

	// Nothing mutable supplied: no-op, return the current state unchanged.
	if len(fields) == 0 {
		return s.Get(ctx, id)
	}

	doc, err := s.store.Update(ctx, store.Users, id, fields)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, apierr.ResourceNotFound("User", id, "id")
	}
	return userFromDoc(doc), nil
}

func (s *User) Delete(ctx context.Context, id string) error {
	found, err := s.store.Delete(ctx, store.Users, id)
	if err != nil {
		return err
	}
	if !found {
		return apierr.ResourceNotFound("User", id, "id")
	}
	return nil
}

func locationDoc(loc *domain.Location) store.Document {
	return store.Document{
		"street":   loc.Street,
		"city":     loc.City,
		"state":    loc.State,
		"country":  loc.Country,
		"timezone": loc.Timezone,
	}
}

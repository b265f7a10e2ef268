// Package api defines the wire shapes of the HTTP surface: request DTOs with
// their validation tags and response DTOs with rendered dates and links.
package api

import (
	"time"

	"socialnet/internal/domain"
)

type LocationRequest struct {
	Street   string `json:"street" validate:"required,min=5,max=100"`
	City     string `json:"city" validate:"required,min=2,max=30"`
	State    string `json:"state" validate:"required,min=2,max=30"`
	Country  string `json:"country" validate:"required,min=2,max=30"`
	Timezone string `json:"timezone" validate:"required,timezone_offset"`
}

func (l *LocationRequest) toDomain() *domain.Location {
	if l == nil {
		return nil
	}
	return &domain.Location{
		Street:   l.Street,
		City:     l.City,
		State:    l.State,
		Country:  l.Country,
		Timezone: l.Timezone,
	}
}

type CreateUserRequest struct {
	Title       string           `json:"title,omitempty" validate:"omitempty,oneof=mr miss dr"`
	FirstName   string           `json:"firstName" validate:"required,min=2,max=50"`
	LastName    string           `json:"lastName" validate:"required,min=2,max=50"`
	Email       string           `json:"email" validate:"required,email"`
	DateOfBirth *time.Time       `json:"dateOfBirth,omitempty"`
	Phone       string           `json:"phone,omitempty"`
	Picture     string           `json:"picture,omitempty" validate:"omitempty,url"`
	Location    *LocationRequest `json:"location,omitempty"`
}

func (r CreateUserRequest) ToData() domain.UserCreateData {
	return domain.UserCreateData{
		Title:       r.Title,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		DateOfBirth: r.DateOfBirth,
		Phone:       r.Phone,
		Picture:     r.Picture,
		Location:    r.Location.toDomain(),
	}
}

// UpdateUserRequest has no email field: email is immutable, and an unknown
// "email" key in the payload is simply not recognized as a mutable field.
type UpdateUserRequest struct {
	Title       *string          `json:"title,omitempty" validate:"omitempty,oneof=mr miss dr"`
	FirstName   *string          `json:"firstName,omitempty" validate:"omitempty,min=2,max=50"`
	LastName    *string          `json:"lastName,omitempty" validate:"omitempty,min=2,max=50"`
	DateOfBirth *time.Time       `json:"dateOfBirth,omitempty"`
	Phone       *string          `json:"phone,omitempty"`
	Picture     *string          `json:"picture,omitempty" validate:"omitempty,url"`
	Location    *LocationRequest `json:"location,omitempty"`
}

func (r UpdateUserRequest) ToData() domain.UserUpdateData {
	return domain.UserUpdateData{
		Title:       r.Title,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		DateOfBirth: r.DateOfBirth,
		Phone:       r.Phone,
		Picture:     r.Picture,
		Location:    r.Location.toDomain(),
	}
}

type CreatePostRequest struct {
	Text  string   `json:"text" validate:"required,min=6,max=1000"`
	Image string   `json:"image" validate:"required,url"`
	Likes int      `json:"likes,omitempty" validate:"gte=0"`
	Tags  []string `json:"tags,omitempty"`
	Owner string   `json:"owner" validate:"required,len=24,hexadecimal"`
	Link  string   `json:"link,omitempty" validate:"omitempty,min=6,max=200"`
}

func (r CreatePostRequest) ToData() domain.PostCreateData {
	return domain.PostCreateData{
		Text:  r.Text,
		Image: r.Image,
		Likes: r.Likes,
		Tags:  r.Tags,
		Owner: r.Owner,
		Link:  r.Link,
	}
}

// UpdatePostRequest has no owner field: owner is immutable.
type UpdatePostRequest struct {
	Text  *string   `json:"text,omitempty" validate:"omitempty,min=6,max=1000"`
	Image *string   `json:"image,omitempty" validate:"omitempty,url"`
	Likes *int      `json:"likes,omitempty" validate:"omitempty,gte=0"`
	Tags  *[]string `json:"tags,omitempty"`
	Link  *string   `json:"link,omitempty" validate:"omitempty,min=6,max=200"`
}

func (r UpdatePostRequest) ToData() domain.PostUpdateData {
	return domain.PostUpdateData{
		Text:  r.Text,
		Image: r.Image,
		Likes: r.Likes,
		Tags:  r.Tags,
		Link:  r.Link,
	}
}

type CreateCommentRequest struct {
	Message string `json:"message" validate:"required,min=2,max=500"`
	Owner   string `json:"owner" validate:"required,len=24,hexadecimal"`
	Post    string `json:"post" validate:"required,len=24,hexadecimal"`
}

func (r CreateCommentRequest) ToData() domain.CommentCreateData {
	return domain.CommentCreateData{
		Message: r.Message,
		Owner:   r.Owner,
		Post:    r.Post,
	}
}

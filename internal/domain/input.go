package domain

import "time"

// Creation and update payloads carried from the transport layer into the
// services. Update fields are pointers so an omitted field is distinguishable
// from a supplied one; a nil pointer always means "leave unchanged".

type UserCreateData struct {
	Title       string
	FirstName   string
	LastName    string
	Email       string
	DateOfBirth *time.Time
	Phone       string
	Picture     string
	Location    *Location
}

type UserUpdateData struct {
	Title       *string
	FirstName   *string
	LastName    *string
	DateOfBirth *time.Time
	Phone       *string
	Picture     *string
	Location    *Location
}

type PostCreateData struct {
	Text  string
	Image string
	Likes int
	Tags  []string
	Owner string
	Link  string
}

type PostUpdateData struct {
	Text  *string
	Image *string
	Likes *int
	Tags  *[]string
	Link  *string
}

type CommentCreateData struct {
	Message string
	Owner   string
	Post    string
}

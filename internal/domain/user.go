package domain

import "time"

// DefaultPicture is assigned when a user is created without one.
const DefaultPicture = "https://randomuser.me/api/portraits/lego/1.jpg"

type Location struct {
	Street   string
	City     string
	State    string
	Country  string
	Timezone string
}

// UserPreview is the reduced projection safe to embed in other entities' responses.
type UserPreview struct {
	ID        string
	Title     string
	FirstName string
	LastName  string
	Picture   string
}

// User is the full projection. Email is globally unique and immutable after
// creation; RegisterDate is server-assigned and never user-settable.
type User struct {
	ID           string
	Title        string
	FirstName    string
	LastName     string
	Email        string
	DateOfBirth  *time.Time
	RegisterDate time.Time
	Phone        string
	Picture      string
	Location     *Location
}

func (u User) Preview() UserPreview {
	return UserPreview{
		ID:        u.ID,
		Title:     u.Title,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Picture:   u.Picture,
	}
}

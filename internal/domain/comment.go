package domain

import "time"

// Comment has no partial update; only create and delete.
type Comment struct {
	ID          string
	Message     string
	Owner       UserPreview
	Post        string
	PublishDate time.Time
}

package domain

import "time"

// PreviewTextLimit caps the text carried in a post preview.
const PreviewTextLimit = 50

// Post is the full projection. Owner and PublishDate are immutable.
type Post struct {
	ID          string
	Text        string
	Image       string
	Likes       int
	Link        string
	Tags        []string
	PublishDate time.Time
	Owner       UserPreview
}

// PostPreview is the list projection: truncated text, no link field.
type PostPreview struct {
	ID          string
	Text        string
	Image       string
	Likes       int
	Tags        []string
	PublishDate time.Time
	Owner       UserPreview
}

func (p Post) Preview() PostPreview {
	text := p.Text
	// The limit counts characters, not bytes; multibyte text must not be
	// cut mid-rune.
	if runes := []rune(text); len(runes) > PreviewTextLimit {
		text = string(runes[:PreviewTextLimit])
	}
	return PostPreview{
		ID:          p.ID,
		Text:        text,
		Image:       p.Image,
		Likes:       p.Likes,
		Tags:        p.Tags,
		PublishDate: p.PublishDate,
		Owner:       p.Owner,
	}
}

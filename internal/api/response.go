package api

import (
	"socialnet/internal/domain"
	"socialnet/internal/i18n"
	"socialnet/internal/links"
)

// ListResponse is the envelope shared by every listing endpoint.
type ListResponse struct {
	Data  any         `json:"data"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
	Links links.Links `json:"_links"`
}

type DeleteResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type LocationResponse struct {
	Street   string `json:"street"`
	City     string `json:"city"`
	State    string `json:"state"`
	Country  string `json:"country"`
	Timezone string `json:"timezone"`
}

type UserPreviewResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Picture   string `json:"picture,omitempty"`
}

type UserResponse struct {
	ID           string            `json:"id"`
	Title        string            `json:"title,omitempty"`
	FirstName    string            `json:"firstName"`
	LastName     string            `json:"lastName"`
	Email        string            `json:"email"`
	DateOfBirth  string            `json:"dateOfBirth,omitempty"`
	RegisterDate string            `json:"registerDate"`
	Phone        string            `json:"phone,omitempty"`
	Picture      string            `json:"picture,omitempty"`
	Location     *LocationResponse `json:"location,omitempty"`
	Links        links.Links       `json:"_links"`
}

type UserListItem struct {
	UserPreviewResponse
	Links links.Links `json:"_links"`
}

type PostPreviewResponse struct {
	ID          string              `json:"id"`
	Text        string              `json:"text"`
	Image       string              `json:"image,omitempty"`
	Likes       int                 `json:"likes"`
	Tags        []string            `json:"tags"`
	PublishDate string              `json:"publishDate"`
	Owner       UserPreviewResponse `json:"owner"`
	Links       links.Links         `json:"_links"`
}

type PostResponse struct {
	ID          string              `json:"id"`
	Text        string              `json:"text"`
	Image       string              `json:"image,omitempty"`
	Likes       int                 `json:"likes"`
	Link        string              `json:"link,omitempty"`
	Tags        []string            `json:"tags"`
	PublishDate string              `json:"publishDate"`
	Owner       UserPreviewResponse `json:"owner"`
	Links       links.Links         `json:"_links"`
}

type CommentResponse struct {
	ID          string              `json:"id"`
	Message     string              `json:"message"`
	Owner       UserPreviewResponse `json:"owner"`
	Post        string              `json:"post"`
	PublishDate string              `json:"publishDate"`
	Links       links.Links         `json:"_links"`
}

type TagListItem struct {
	Tag   string      `json:"tag"`
	Links links.Links `json:"_links"`
}

// TagsResponse is not paginated: the tag vocabulary is a small derived
// projection recomputed on each read.
type TagsResponse struct {
	Data  []TagListItem `json:"data"`
	Total int           `json:"total"`
	Links links.Links   `json:"_links"`
}

// Response builders. Dates are rendered here, at the shaping boundary, per
// the request language; they are never stored rendered.

func NewUserPreviewResponse(u domain.UserPreview) UserPreviewResponse {
	return UserPreviewResponse{
		ID:        u.ID,
		Title:     u.Title,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Picture:   u.Picture,
	}
}

func NewUserResponse(u *domain.User, baseURL, lang string) UserResponse {
	resp := UserResponse{
		ID:           u.ID,
		Title:        u.Title,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		DateOfBirth:  i18n.FormatDate(u.DateOfBirth, lang),
		RegisterDate: i18n.FormatDate(&u.RegisterDate, lang),
		Phone:        u.Phone,
		Picture:      u.Picture,
		Links:        links.User(baseURL, u.ID),
	}
	if u.Location != nil {
		resp.Location = &LocationResponse{
			Street:   u.Location.Street,
			City:     u.Location.City,
			State:    u.Location.State,
			Country:  u.Location.Country,
			Timezone: u.Location.Timezone,
		}
	}
	return resp
}

func NewUserListItems(users []domain.UserPreview, baseURL string) []UserListItem {
	items := make([]UserListItem, 0, len(users))
	for _, u := range users {
		items = append(items, UserListItem{
			UserPreviewResponse: NewUserPreviewResponse(u),
			Links:               links.User(baseURL, u.ID),
		})
	}
	return items
}

func NewPostResponse(p *domain.Post, baseURL, lang string) PostResponse {
	publishDate := p.PublishDate
	return PostResponse{
		ID:          p.ID,
		Text:        p.Text,
		Image:       p.Image,
		Likes:       p.Likes,
		Link:        p.Link,
		Tags:        tagsOrEmpty(p.Tags),
		PublishDate: i18n.FormatDate(&publishDate, lang),
		Owner:       NewUserPreviewResponse(p.Owner),
		Links:       links.Post(baseURL, p.ID, p.Owner.ID),
	}
}

func NewPostPreviewResponses(posts []domain.PostPreview, baseURL, lang string) []PostPreviewResponse {
	items := make([]PostPreviewResponse, 0, len(posts))
	for _, p := range posts {
		publishDate := p.PublishDate
		items = append(items, PostPreviewResponse{
			ID:          p.ID,
			Text:        p.Text,
			Image:       p.Image,
			Likes:       p.Likes,
			Tags:        tagsOrEmpty(p.Tags),
			PublishDate: i18n.FormatDate(&publishDate, lang),
			Owner:       NewUserPreviewResponse(p.Owner),
			Links:       links.Post(baseURL, p.ID, p.Owner.ID),
		})
	}
	return items
}

func NewCommentResponse(c *domain.Comment, baseURL, lang string) CommentResponse {
	publishDate := c.PublishDate
	return CommentResponse{
		ID:          c.ID,
		Message:     c.Message,
		Owner:       NewUserPreviewResponse(c.Owner),
		Post:        c.Post,
		PublishDate: i18n.FormatDate(&publishDate, lang),
		Links:       links.Comment(baseURL, c.ID, c.Post, c.Owner.ID),
	}
}

func NewCommentResponses(comments []domain.Comment, baseURL, lang string) []CommentResponse {
	items := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		items = append(items, NewCommentResponse(&comments[i], baseURL, lang))
	}
	return items
}

func NewTagListItems(tags []string, baseURL string) []TagListItem {
	items := make([]TagListItem, 0, len(tags))
	for _, tag := range tags {
		items = append(items, TagListItem{Tag: tag, Links: links.Tag(baseURL, tag)})
	}
	return items
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

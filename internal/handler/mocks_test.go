package handler

import (
	"context"

	"socialnet/internal/config"
	"socialnet/internal/domain"
	"socialnet/internal/service"
)

type MockUserService struct {
	MockList   func(p service.UserListParams) ([]domain.UserPreview, int64, error)
	MockGet    func(id string) (*domain.User, error)
	MockCreate func(data domain.UserCreateData) (*domain.User, error)
	MockUpdate func(id string, data domain.UserUpdateData) (*domain.User, error)
	MockDelete func(id string) error
}

func (m *MockUserService) List(_ context.Context, p service.UserListParams) ([]domain.UserPreview, int64, error) {
	if m.MockList != nil {
		return m.MockList(p)
	}
	return nil, 0, nil
}

func (m *MockUserService) Get(_ context.Context, id string) (*domain.User, error) {
	if m.MockGet != nil {
		return m.MockGet(id)
	}
	return &domain.User{ID: id}, nil
}

func (m *MockUserService) Create(_ context.Context, data domain.UserCreateData) (*domain.User, error) {
	if m.MockCreate != nil {
		return m.MockCreate(data)
	}
	return &domain.User{}, nil
}

func (m *MockUserService) Update(_ context.Context, id string, data domain.UserUpdateData) (*domain.User, error) {
	if m.MockUpdate != nil {
		return m.MockUpdate(id, data)
	}
	return &domain.User{ID: id}, nil
}

func (m *MockUserService) Delete(_ context.Context, id string) error {
	if m.MockDelete != nil {
		return m.MockDelete(id)
	}
	return nil
}

type MockPostService struct {
	MockList   func(p service.PostListParams) ([]domain.PostPreview, int64, error)
	MockGet    func(id string) (*domain.Post, error)
	MockCreate func(data domain.PostCreateData) (*domain.Post, error)
	MockUpdate func(id string, data domain.PostUpdateData) (*domain.Post, error)
	MockDelete func(id string) error
}

func (m *MockPostService) List(_ context.Context, p service.PostListParams) ([]domain.PostPreview, int64, error) {
	if m.MockList != nil {
		return m.MockList(p)
	}
	return nil, 0, nil
}

func (m *MockPostService) Get(_ context.Context, id string) (*domain.Post, error) {
	if m.MockGet != nil {
		return m.MockGet(id)
	}
	return &domain.Post{ID: id}, nil
}

func (m *MockPostService) Create(_ context.Context, data domain.PostCreateData) (*domain.Post, error) {
	if m.MockCreate != nil {
		return m.MockCreate(data)
	}
	return &domain.Post{}, nil
}

func (m *MockPostService) Update(_ context.Context, id string, data domain.PostUpdateData) (*domain.Post, error) {
	if m.MockUpdate != nil {
		return m.MockUpdate(id, data)
	}
	return &domain.Post{ID: id}, nil
}

func (m *MockPostService) Delete(_ context.Context, id string) error {
	if m.MockDelete != nil {
		return m.MockDelete(id)
	}
	return nil
}

type MockCommentService struct {
	MockList   func(p service.CommentListParams) ([]domain.Comment, int64, error)
	MockCreate func(data domain.CommentCreateData) (*domain.Comment, error)
	MockDelete func(id string) error
}

func (m *MockCommentService) List(_ context.Context, p service.CommentListParams) ([]domain.Comment, int64, error) {
	if m.MockList != nil {
		return m.MockList(p)
	}
	return nil, 0, nil
}

func (m *MockCommentService) Create(_ context.Context, data domain.CommentCreateData) (*domain.Comment, error) {
	if m.MockCreate != nil {
		return m.MockCreate(data)
	}
	return &domain.Comment{}, nil
}

func (m *MockCommentService) Delete(_ context.Context, id string) error {
	if m.MockDelete != nil {
		return m.MockDelete(id)
	}
	return nil
}

type MockTagService struct {
	MockList func() ([]string, error)
}

func (m *MockTagService) List(_ context.Context) ([]string, error) {
	if m.MockList != nil {
		return m.MockList()
	}
	return nil, nil
}

func testConfig() *config.Config {
	return &config.Config{API: config.API{DefaultLimit: 20, MaxLimit: 100}}
}

func newTestHandler(users *MockUserService, posts *MockPostService, comments *MockCommentService, tags *MockTagService) *Handler {
	if users == nil {
		users = &MockUserService{}
	}
	if posts == nil {
		posts = &MockPostService{}
	}
	if comments == nil {
		comments = &MockCommentService{}
	}
	if tags == nil {
		tags = &MockTagService{}
	}
	return New(users, posts, comments, tags, testConfig())
}

// errorEnvelopeBody mirrors the wire shape for decoding in tests.
type testErrorEnvelope struct {
	Error struct {
		Code       string `json:"code"`
		Message    string `json:"message"`
		StatusCode int    `json:"statusCode"`
		Timestamp  string `json:"timestamp"`
		Path       string `json:"path"`
		Method     string `json:"method"`
	} `json:"error"`
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialnet/internal/apierr"
	"socialnet/internal/domain"
	"socialnet/internal/pagination"
	"socialnet/internal/storage/memory"
	"socialnet/internal/store"
)

func seedUser(t *testing.T, st *memory.Storage, firstName, lastName, email string) string {
	t.Helper()
	id, err := st.Insert(context.Background(), store.Users, store.Document{
		"title":        "mr",
		"firstName":    firstName,
		"lastName":     lastName,
		"email":        email,
		"picture":      "https://example.com/p.jpg",
		"registerDate": time.Now().UTC(),
	})
	require.NoError(t, err)
	return id
}

func TestUserCreate(t *testing.T) {
	st := memory.New()
	svc := NewUser(st)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.UserCreateData{
		Title:     "mr",
		FirstName: "Sara",
		LastName:  "Conner",
		Email:     "sara@example.com",
	})
	require.NoError(t, err)
	assert.Len(t, created.ID, 24)
	assert.Equal(t, "sara@example.com", created.Email)
	assert.Equal(t, domain.DefaultPicture, created.Picture, "picture should default when omitted")
	assert.False(t, created.RegisterDate.IsZero(), "register date is server-assigned")
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	st := memory.New()
	svc := NewUser(st)
	ctx := context.Background()
	seedUser(t, st, "Sara", "Conner", "sara@example.com")

	_, err := svc.Create(ctx, domain.UserCreateData{
		FirstName: "Sarah",
		LastName:  "Connor",
		Email:     "sara@example.com",
	})
	var apiErr *apierr.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierr.CodeBodyNotValid, apiErr.Code)
	assert.Equal(t, 400, apiErr.StatusCode)
}

func TestUserListSearch(t *testing.T) {
	st := memory.New()
	svc := NewUser(st)
	ctx := context.Background()
	seedUser(t, st, "Sara", "Conner", "sara@example.com")
	seedUser(t, st, "John", "Doe", "john@example.com")
	seedUser(t, st, "Sarah", "Connor", "sarah@example.com")

	users, total, err := svc.List(ctx, UserListParams{
		Params: pagination.Params{Page: 1, Limit: 20, SortBy: "firstName", SortOrder: pagination.OrderAsc},
		Search: "sara",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, users, 2)
	assert.Equal(t, "Sara", users[0].FirstName)
	assert.Equal(t, "Sarah", users[1].FirstName)
}

func TestUserUpdate(t *testing.T) {
	st := memory.New()
	svc := NewUser(st)
	ctx := context.Background()
	id := seedUser(t, st, "Sara", "Conner", "sara@example.com")

	phone := "+33 123 456 789"
	updated, err := svc.Update(ctx, id, domain.UserUpdateData{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, phone, updated.Phone)
	assert.Equal(t, "sara@example.com", updated.Email, "email stays immutable")
	assert.Equal(t, "Sara", updated.FirstName, "omitted fields keep their value")
}

func TestUserUpdateEmptyIsNoop(t *testing.T) {
	st := memory.New()
	svc := NewUser(st)
	ctx := context.Background()
	id := seedUser(t, st, "Sara", "Conner", "sara@example.com")

	updated, err := svc.Update(ctx, id, domain.UserUpdateData{})
	require.NoError(t, err)
	assert.Equal(t, "Sara", updated.FirstName)
	assert.Equal(t, "Conner", updated.LastName)
}

func TestUserGetNotFound(t *testing.T) {
	svc := NewUser(memory.New())

	_, err := svc.Get(context.Background(), "aaaaaaaaaaaaaaaaaaaaaaaa")
	var apiErr *apierr.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierr.CodeResourceNotFound, apiErr.Code)
	assert.Equal(t, 404, apiErr.StatusCode)
}

func TestUserDelete(t *testing.T) {
	st := memory.New()
	svc := NewUser(st)
	ctx := context.Background()
	id := seedUser(t, st, "Sara", "Conner", "sara@example.com")

	require.NoError(t, svc.Delete(ctx, id))

	err := svc.Delete(ctx, id)
	var apiErr *apierr.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierr.CodeResourceNotFound, apiErr.Code)
}

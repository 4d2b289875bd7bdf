package users_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/mediaverse/mediaverse/internal/errors"
	"github.com/mediaverse/mediaverse/store"
	"github.com/mediaverse/mediaverse/users"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := users.HashPassword("secret123")
	require.NoError(t, err)
	require.NotEqual(t, "secret123", hash)

	require.True(t, users.CheckPasswordHash("secret123", hash))
	require.False(t, users.CheckPasswordHash("wrong", hash))
}

func TestValidatePasswordStrength(t *testing.T) {
	require.Error(t, users.ValidatePasswordStrength("short"))
	require.NoError(t, users.ValidatePasswordStrength("longenough"))
}

func TestFirstName(t *testing.T) {
	u := &users.User{Name: "Ann Admin"}
	require.Equal(t, "Ann", u.FirstName())

	u = &users.User{Name: "Cher"}
	require.Equal(t, "Cher", u.FirstName())
}

func TestStoreRepoGetByEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users", r.URL.Path)
		switch r.URL.Query().Get("email") {
		case "a@x.com":
			json.NewEncoder(w).Encode([]users.User{{ID: "1", Name: "Ann Admin", Email: "a@x.com", IsAdmin: true}})
		default:
			json.NewEncoder(w).Encode([]users.User{})
		}
	}))
	defer srv.Close()

	repo := users.NewStoreRepo(store.NewClient(srv.URL))

	found, err := repo.GetByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.Equal(t, "Ann Admin", found.Name)
	require.True(t, found.IsAdmin)

	_, err = repo.GetByEmail(context.Background(), "missing@x.com")
	require.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUserJSONFieldNames(t *testing.T) {
	raw, err := json.Marshal(users.User{
		ID:           "1",
		Name:         "Ann Admin",
		Username:     "ann",
		Email:        "a@x.com",
		PasswordHash: "hashed",
		IsAdmin:      true,
		CreatedAt:    "2025-01-01T00:00:00Z",
	})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Contains(t, decoded, "user_name")
	require.Contains(t, decoded, "isAdmin")
	require.Contains(t, decoded, "password")
	require.Contains(t, decoded, "createdAt")
}

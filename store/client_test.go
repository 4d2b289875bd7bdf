package store_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/mediaverse/mediaverse/internal/errors"
	"github.com/mediaverse/mediaverse/store"
)

type record struct {
	ID     string `json:"id,omitempty"`
	UserID string `json:"user_id,omitempty"`
	Title  string `json:"Title,omitempty"`
}

func TestListWithFilters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/watch_list", r.URL.Path)
		require.Equal(t, "42", r.URL.Query().Get("user_id"))
		json.NewEncoder(w).Encode([]record{{ID: "1", UserID: "42", Title: "Dune"}})
	}))
	defer srv.Close()

	client := store.NewClient(srv.URL)
	var out []record
	err := client.List(context.Background(), store.CollectionWatchList, store.Filters{"user_id": "42"}, &out)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, "Dune", out[0].Title)
}

func TestCreateReturnsAssignedID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var in record
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		in.ID = "77"
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(in)
	}))
	defer srv.Close()

	client := store.NewClient(srv.URL)
	var created record
	err := client.Create(context.Background(), store.CollectionMovies, record{Title: "Heat"}, &created)
	require.NoError(t, err)
	require.Equal(t, "77", created.ID)
	require.Equal(t, "Heat", created.Title)
}

func TestPatchMergesRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/users/9", r.URL.Path)
		json.NewEncoder(w).Encode(record{ID: "9", Title: "merged"})
	}))
	defer srv.Close()

	client := store.NewClient(srv.URL)
	var merged record
	err := client.Patch(context.Background(), store.CollectionUsers, "9", map[string]any{"Title": "merged"}, &merged)
	require.NoError(t, err)
	require.Equal(t, "merged", merged.Title)
}

func TestNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := store.NewClient(srv.URL)
	var out record
	err := client.Get(context.Background(), store.CollectionMovies, "nope", &out)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUnreachableStoreIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // force connection refused

	client := store.NewClient(srv.URL)
	err := client.Delete(context.Background(), store.CollectionUsers, "1")
	require.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
}

func TestServerErrorIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := store.NewClient(srv.URL)
	var out []record
	err := client.List(context.Background(), store.CollectionMovies, nil, &out)
	require.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
}

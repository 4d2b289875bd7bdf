package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mediaverse/mediaverse/account"
	"github.com/mediaverse/mediaverse/admin"
	"github.com/mediaverse/mediaverse/catalog"
	catalogfakes "github.com/mediaverse/mediaverse/catalog/repofakes"
	"github.com/mediaverse/mediaverse/internal/config"
	listsfakes "github.com/mediaverse/mediaverse/lists/repofakes"
	requestfakes "github.com/mediaverse/mediaverse/requests/repofakes"
	"github.com/mediaverse/mediaverse/server"
	"github.com/mediaverse/mediaverse/session"
	"github.com/mediaverse/mediaverse/session/storagefakes"
	"github.com/mediaverse/mediaverse/token"
	"github.com/mediaverse/mediaverse/users"
	"github.com/mediaverse/mediaverse/users/repofake"
)

type apiFixture struct {
	srv   *httptest.Server
	media *catalogfakes.FakeMediaRepo
	users *repofake.FakeUserRepo
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	userRepo := repofake.NewFakeUserRepo()
	seedUser(t, userRepo, "u1", "maya@example.com", "correct-horse", false)
	seedUser(t, userRepo, "a1", "admin@example.com", "console-pass", true)

	mediaRepo := catalogfakes.NewFakeMediaRepo()
	ratingsRepo := catalogfakes.NewFakeRatingsRepo()
	listsRepo := listsfakes.NewFakeListsRepo()
	requestRepo := requestfakes.NewFakeRequestRepo()

	tokens := token.NewManager(token.NewHMACSigner("test-secret"), time.Hour)
	userGuard, err := session.NewGuard(storagefakes.NewFakeStorage(), userRepo, tokens)
	require.NoError(t, err)
	adminGuard, err := session.NewGuard(storagefakes.NewFakeStorage(), userRepo, tokens, session.WithRequireAdmin())
	require.NoError(t, err)

	accounts, err := account.NewService(account.Repos{
		Users: userRepo, Media: mediaRepo, Ratings: ratingsRepo, Lists: listsRepo, Requests: requestRepo,
	}, userGuard)
	require.NoError(t, err)

	admins, err := admin.NewService(admin.Repos{
		Users: userRepo, Media: mediaRepo, Ratings: ratingsRepo, Lists: listsRepo, Requests: requestRepo,
	}, adminGuard)
	require.NoError(t, err)

	s, err := server.New(config.New(), server.Repos{
		Users: userRepo, Media: mediaRepo, Ratings: ratingsRepo,
	}, tokens, userGuard, adminGuard, accounts, admins)
	require.NoError(t, err)

	srv := httptest.NewServer(s)
	t.Cleanup(srv.Close)
	return &apiFixture{srv: srv, media: mediaRepo, users: userRepo}
}

func seedUser(t *testing.T, repo *repofake.FakeUserRepo, id, email, password string, isAdmin bool) {
	t.Helper()
	hash, err := users.HashPassword(password)
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), &users.User{
		ID: id, Email: email, PasswordHash: hash, IsAdmin: isAdmin,
	})
	require.NoError(t, err)
}

func (f *apiFixture) postJSON(t *testing.T, path, tok string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, f.srv.URL+path, bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func (f *apiFixture) get(t *testing.T, path, tok string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, f.srv.URL+path, nil)
	require.NoError(t, err)
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func (f *apiFixture) login(t *testing.T, path, email, password string) string {
	t.Helper()
	resp := f.postJSON(t, path, "", map[string]string{"email": email, "password": password})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.Token)
	return body.Token
}

func TestLoginAndSession(t *testing.T) {
	f := newAPIFixture(t)
	tok := f.login(t, "/api/auth/login", "maya@example.com", "correct-horse")

	resp := f.get(t, "/api/auth/session", tok)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLoginWrongPassword(t *testing.T) {
	f := newAPIFixture(t)

	resp := f.postJSON(t, "/api/auth/login", "", map[string]string{"email": "maya@example.com", "password": "nope"})
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminLoginRejectsNonAdmin(t *testing.T) {
	f := newAPIFixture(t)

	resp := f.postJSON(t, "/api/auth/admin/login", "", map[string]string{"email": "maya@example.com", "password": "correct-horse"})
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGuardedRouteWithoutToken(t *testing.T) {
	f := newAPIFixture(t)

	resp := f.get(t, "/api/watch_list", "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGuardedRouteWithGarbageToken(t *testing.T) {
	f := newAPIFixture(t)

	resp := f.get(t, "/api/watch_list", "not.a.jwt")
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestWatchListOverHTTP(t *testing.T) {
	f := newAPIFixture(t)
	tok := f.login(t, "/api/auth/login", "maya@example.com", "correct-horse")

	resp := f.postJSON(t, "/api/watch_list", tok, catalog.Media{ID: "m1", MediaType: catalog.TypeMovie, Title: "Heat"})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	listResp := f.get(t, "/api/watch_list", tok)
	defer listResp.Body.Close()
	require.Equal(t, http.StatusOK, listResp.StatusCode)

	var entries []map[string]any
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&entries))
	require.Len(t, entries, 1)
	require.Equal(t, "Heat", entries[0]["Title"])
}

func TestAdminRouteForbiddenForUser(t *testing.T) {
	f := newAPIFixture(t)
	tok := f.login(t, "/api/auth/login", "maya@example.com", "correct-horse")

	resp := f.get(t, "/api/admin/users", tok)
	defer resp.Body.Close()
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAdminListUsersHidesHashes(t *testing.T) {
	f := newAPIFixture(t)
	tok := f.login(t, "/api/auth/admin/login", "admin@example.com", "console-pass")

	resp := f.get(t, "/api/admin/users", tok)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var all []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&all))
	require.Len(t, all, 2)
	for _, u := range all {
		require.Empty(t, u["password"])
	}
}

func TestPublicCatalogNeedsNoSession(t *testing.T) {
	f := newAPIFixture(t)
	_, err := f.media.Create(context.Background(), &catalog.Media{MediaType: catalog.TypeMovie, Title: "Heat"})
	require.NoError(t, err)

	resp := f.get(t, "/api/movies", "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var movies []catalog.Media
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&movies))
	require.Len(t, movies, 1)
}

func TestMediaBySlug(t *testing.T) {
	f := newAPIFixture(t)
	_, err := f.media.Create(context.Background(), &catalog.Media{MediaType: catalog.TypeMovie, Title: "The Dark Knight"})
	require.NoError(t, err)

	resp := f.get(t, "/api/media/by-slug/the-dark-knight", "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var media catalog.Media
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&media))
	require.Equal(t, "The Dark Knight", media.Title)

	missing := f.get(t, "/api/media/by-slug/no-such-title", "")
	defer missing.Body.Close()
	require.Equal(t, http.StatusNotFound, missing.StatusCode)
}

func TestRegisterOverHTTP(t *testing.T) {
	f := newAPIFixture(t)

	resp := f.postJSON(t, "/api/auth/register", "", map[string]string{
		"name": "New User", "email": "new@example.com",
		"password": "long-enough", "confirm_password": "long-enough",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	tok := f.login(t, "/api/auth/login", "new@example.com", "long-enough")
	require.NotEmpty(t, tok)
}

func TestRegisterMismatchedPasswords(t *testing.T) {
	f := newAPIFixture(t)

	resp := f.postJSON(t, "/api/auth/register", "", map[string]string{
		"email": "new@example.com", "password": "long-enough", "confirm_password": "other",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCorsPreflight(t *testing.T) {
	f := newAPIFixture(t)

	req, err := http.NewRequest(http.MethodOptions, f.srv.URL+"/api/movies", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestCorsDisallowedOrigin(t *testing.T) {
	f := newAPIFixture(t)

	req, err := http.NewRequest(http.MethodGet, f.srv.URL+"/api/movies", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://evil.example.com")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}

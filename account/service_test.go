package account_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mediaverse/mediaverse/account"
	"github.com/mediaverse/mediaverse/catalog"
	catalogfakes "github.com/mediaverse/mediaverse/catalog/repofakes"
	apperrors "github.com/mediaverse/mediaverse/internal/errors"
	listsfakes "github.com/mediaverse/mediaverse/lists/repofakes"
	"github.com/mediaverse/mediaverse/requests"
	requestfakes "github.com/mediaverse/mediaverse/requests/repofakes"
	"github.com/mediaverse/mediaverse/session"
	"github.com/mediaverse/mediaverse/session/storagefakes"
	"github.com/mediaverse/mediaverse/token"
	"github.com/mediaverse/mediaverse/users"
	"github.com/mediaverse/mediaverse/users/repofake"
)

type serviceFixture struct {
	service *account.Service
	guard   *session.Guard
	users   *repofake.FakeUserRepo
	media   *catalogfakes.FakeMediaRepo
	ratings *catalogfakes.FakeRatingsRepo
	lists   *listsfakes.FakeListsRepo
	reqs    *requestfakes.FakeRequestRepo
	session *session.Session
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	userRepo := repofake.NewFakeUserRepo()
	hash, err := users.HashPassword("correct-horse")
	require.NoError(t, err)
	_, err = userRepo.Create(context.Background(), &users.User{
		ID:           "u1",
		Name:         "Maya Chen",
		Username:     "maya",
		Email:        "maya@example.com",
		PasswordHash: hash,
	})
	require.NoError(t, err)

	manager := token.NewManager(token.NewHMACSigner("test-secret"), time.Hour)
	guard, err := session.NewGuard(storagefakes.NewFakeStorage(), userRepo, manager)
	require.NoError(t, err)

	f := &serviceFixture{
		guard:   guard,
		users:   userRepo,
		media:   catalogfakes.NewFakeMediaRepo(),
		ratings: catalogfakes.NewFakeRatingsRepo(),
		lists:   listsfakes.NewFakeListsRepo(),
		reqs:    requestfakes.NewFakeRequestRepo(),
	}

	f.service, err = account.NewService(account.Repos{
		Users:    f.users,
		Media:    f.media,
		Ratings:  f.ratings,
		Lists:    f.lists,
		Requests: f.reqs,
	}, guard)
	require.NoError(t, err)

	f.session, err = guard.Issue(context.Background(), "maya@example.com", "correct-horse")
	require.NoError(t, err)
	return f
}

func TestRegister(t *testing.T) {
	f := newServiceFixture(t)

	created, err := f.service.Register(context.Background(), "New User", "new@example.com", "long-enough", "long-enough")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.False(t, created.IsAdmin)
	require.NotEqual(t, "long-enough", created.PasswordHash)

	fetched, err := f.users.GetByEmail(context.Background(), "new@example.com")
	require.NoError(t, err)
	require.True(t, users.CheckPasswordHash("long-enough", fetched.PasswordHash))
}

func TestRegisterMismatchedConfirmation(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.service.Register(context.Background(), "New User", "new@example.com", "long-enough", "different")
	require.Error(t, err)

	_, err = f.users.GetByEmail(context.Background(), "new@example.com")
	require.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestRegisterWeakPassword(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.service.Register(context.Background(), "New User", "new@example.com", "short", "short")
	require.Error(t, err)
}

func TestChangeNameAndEmail(t *testing.T) {
	f := newServiceFixture(t)

	updated, err := f.service.ChangeName(context.Background(), f.session, "Maya C.")
	require.NoError(t, err)
	require.Equal(t, "Maya C.", updated.Name)

	updated, err = f.service.ChangeEmail(context.Background(), f.session, "maya.c@example.com")
	require.NoError(t, err)
	require.Equal(t, "maya.c@example.com", updated.Email)
}

func TestChangePassword(t *testing.T) {
	f := newServiceFixture(t)

	err := f.service.ChangePassword(context.Background(), f.session, "correct-horse", "battery-staple")
	require.NoError(t, err)

	record, err := f.users.GetByID(context.Background(), "u1")
	require.NoError(t, err)
	require.True(t, users.CheckPasswordHash("battery-staple", record.PasswordHash))
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	f := newServiceFixture(t)

	err := f.service.ChangePassword(context.Background(), f.session, "wrong", "battery-staple")
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	record, err := f.users.GetByID(context.Background(), "u1")
	require.NoError(t, err)
	require.True(t, users.CheckPasswordHash("correct-horse", record.PasswordHash))
}

func TestExpiredSessionRejectsMutations(t *testing.T) {
	f := newServiceFixture(t)

	expired := &session.Session{Token: "", User: f.session.User}
	_, err := f.service.ChangeName(context.Background(), expired, "whoever")
	require.ErrorIs(t, err, apperrors.ErrSessionExpired)

	_, err = f.service.WatchList(context.Background(), expired)
	require.ErrorIs(t, err, apperrors.ErrSessionExpired)

	_, err = f.service.RequestMedia(context.Background(), expired, &requests.MediaRequest{Title: "Heat"})
	require.ErrorIs(t, err, apperrors.ErrSessionExpired)
}

func TestWatchListRoundTrip(t *testing.T) {
	f := newServiceFixture(t)
	media := &catalog.Media{ID: "m1", MediaType: catalog.TypeMovie, Title: "Heat", Year: "1995", Poster: "heat.jpg"}

	created, err := f.service.AddToWatchList(context.Background(), f.session, media)
	require.NoError(t, err)
	require.Equal(t, "u1", created.UserID)
	require.Equal(t, "m1", created.MediaID)
	require.NotEmpty(t, created.AddedAt)

	entries, err := f.service.WatchList(context.Background(), f.session)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "Heat", entries[0].Title)

	require.NoError(t, f.service.RemoveFromWatchList(context.Background(), f.session, created.ID))
	entries, err = f.service.WatchList(context.Background(), f.session)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestPreferredListRejectsDuplicateTitle(t *testing.T) {
	f := newServiceFixture(t)
	media := &catalog.Media{ID: "m1", MediaType: catalog.TypeMovie, Title: "Heat"}

	_, err := f.service.AddToPreferredList(context.Background(), f.session, media)
	require.NoError(t, err)

	_, err = f.service.AddToPreferredList(context.Background(), f.session, media)
	require.ErrorIs(t, err, apperrors.ErrDuplicate)

	entries, err := f.service.PreferredList(context.Background(), f.session)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestRecordWatch(t *testing.T) {
	f := newServiceFixture(t)
	now := time.Date(2025, 3, 2, 20, 30, 0, 0, time.UTC)

	service, err := account.NewService(account.Repos{
		Users:    f.users,
		Media:    f.media,
		Ratings:  f.ratings,
		Lists:    f.lists,
		Requests: f.reqs,
	}, f.guard, account.WithNowTime(func() time.Time { return now }))
	require.NoError(t, err)

	created, err := service.RecordWatch(context.Background(), f.session, &catalog.Media{ID: "m1", MediaType: catalog.TypeMovie, Title: "Heat"})
	require.NoError(t, err)
	require.Equal(t, "2025-03-02", created.Date)

	history, err := service.WatchHistory(context.Background(), f.session)
	require.NoError(t, err)
	require.Len(t, history, 1)
}

func TestSubmitReviewAndReply(t *testing.T) {
	f := newServiceFixture(t)

	review, err := f.service.SubmitReview(context.Background(), f.session, "m1", 4.5, "tense and lean")
	require.NoError(t, err)
	require.Equal(t, "u1", review.UserID)
	require.Equal(t, "maya", review.Author)
	require.Empty(t, review.Replies)

	updated, err := f.service.ReplyToReview(context.Background(), f.session, review.ID, "agreed")
	require.NoError(t, err)
	require.Len(t, updated.Replies, 1)
	require.Equal(t, "maya", updated.Replies[0].Author)
	require.Equal(t, "agreed", updated.Replies[0].Text)
}

func TestReplyToMissingReview(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.service.ReplyToReview(context.Background(), f.session, "no-such-id", "hello?")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRecommendations(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	liked, err := f.media.Create(ctx, &catalog.Media{MediaType: catalog.TypeMovie, Title: "Heat"})
	require.NoError(t, err)
	_, err = f.media.Create(ctx, &catalog.Media{MediaType: catalog.TypeMovie, Title: "Unliked"})
	require.NoError(t, err)

	_, err = f.ratings.Create(ctx, &catalog.Rating{MovieID: liked.ID, UserID: "u1", Rating: 5})
	require.NoError(t, err)

	picks, err := f.service.Recommendations(ctx, f.session)
	require.NoError(t, err)
	require.Len(t, picks, 1)
	require.Equal(t, "Heat", picks[0].Title)
}

func TestRequestMedia(t *testing.T) {
	f := newServiceFixture(t)

	created, err := f.service.RequestMedia(context.Background(), f.session, &requests.MediaRequest{
		MediaType: catalog.TypeMovie,
		Title:     "The Conversation",
		Year:      "1974",
		// Submitted status must be overridden to pending.
		Status: requests.StatusApproved,
	})
	require.NoError(t, err)
	require.Equal(t, requests.StatusPending, created.Status)
	require.Equal(t, "u1", created.UserID)
	require.NotEmpty(t, created.CreatedAt)

	mine, err := f.service.MyRequests(context.Background(), f.session)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, "The Conversation", mine[0].Title)
}

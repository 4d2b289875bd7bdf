// Package account implements the end-user app's operations: registration,
// profile changes, lists, reviews and media requests. Every operation that
// touches user data re-consults the session guard first, because a session
// can expire mid-visit.
package account

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/mediaverse/mediaverse/catalog"
	apperrors "github.com/mediaverse/mediaverse/internal/errors"
	"github.com/mediaverse/mediaverse/lists"
	"github.com/mediaverse/mediaverse/requests"
	"github.com/mediaverse/mediaverse/session"
	"github.com/mediaverse/mediaverse/users"
)

// Repos holds all repository dependencies for the Service.
type Repos struct {
	Users    users.Repo
	Media    catalog.MediaRepo
	Ratings  catalog.RatingsRepo
	Lists    lists.Repo
	Requests requests.Repo
}

// Service wires the end-user operations to the guard and the record store.
type Service struct {
	repos   Repos
	guard   *session.Guard
	nowTime func() time.Time // nowTime function (injectable for testing)
}

// ServiceOption defines a function type to modify the Service instance.
type ServiceOption func(*Service)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) ServiceOption {
	return func(s *Service) {
		s.nowTime = nowFunc
	}
}

// NewService initializes a Service with required dependencies.
func NewService(repos Repos, guard *session.Guard, options ...ServiceOption) (*Service, error) {
	if repos.Users == nil {
		return nil, errors.New("[NewService] Users repo is required")
	}
	if repos.Media == nil {
		return nil, errors.New("[NewService] Media repo is required")
	}
	if repos.Ratings == nil {
		return nil, errors.New("[NewService] Ratings repo is required")
	}
	if repos.Lists == nil {
		return nil, errors.New("[NewService] Lists repo is required")
	}
	if repos.Requests == nil {
		return nil, errors.New("[NewService] Requests repo is required")
	}
	if guard == nil {
		return nil, errors.New("[NewService] guard is required")
	}

	service := &Service{
		repos:   repos,
		guard:   guard,
		nowTime: time.Now,
	}
	for _, opt := range options {
		opt(service)
	}
	return service, nil
}

// checkSession asks the guard before any protected read or write.
func (s *Service) checkSession(sess *session.Session) error {
	if s.guard.Check(sess) == session.OutcomeEvict {
		return apperrors.ErrSessionExpired
	}
	return nil
}

// Register creates a new non-admin account. Registration needs no session.
func (s *Service) Register(ctx context.Context, name, email, password, confirmPassword string) (*users.User, error) {
	if password != confirmPassword {
		return nil, errors.New("[Service.Register] passwords do not match")
	}
	if err := users.ValidatePasswordStrength(password); err != nil {
		return nil, errors.Wrap(err, "[Service.Register] weak password")
	}

	hash, err := users.HashPassword(password)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.Register] hash password")
	}

	created, err := s.repos.Users.Create(ctx, &users.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      false,
		CreatedAt:    s.nowTime().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return nil, errors.Wrap(err, "[Service.Register] create user")
	}

	log.Info().Str("email", email).Msg("account registered")
	return created, nil
}

// ChangeName updates the display name on the caller's own record.
func (s *Service) ChangeName(ctx context.Context, sess *session.Session, name string) (*users.User, error) {
	if err := s.checkSession(sess); err != nil {
		return nil, err
	}
	updated, err := s.repos.Users.Patch(ctx, sess.User.ID, map[string]any{"name": name})
	if err != nil {
		return nil, errors.Wrap(err, "[Service.ChangeName] patch user")
	}
	return updated, nil
}

// ChangeEmail updates the email on the caller's own record.
func (s *Service) ChangeEmail(ctx context.Context, sess *session.Session, email string) (*users.User, error) {
	if err := s.checkSession(sess); err != nil {
		return nil, err
	}
	updated, err := s.repos.Users.Patch(ctx, sess.User.ID, map[string]any{"email": email})
	if err != nil {
		return nil, errors.Wrap(err, "[Service.ChangeEmail] patch user")
	}
	return updated, nil
}

// ChangePassword verifies the current password before storing a new hash.
func (s *Service) ChangePassword(ctx context.Context, sess *session.Session, oldPassword, newPassword string) error {
	if err := s.checkSession(sess); err != nil {
		return err
	}

	record, err := s.repos.Users.GetByID(ctx, sess.User.ID)
	if err != nil {
		return errors.Wrap(err, "[Service.ChangePassword] fetch user")
	}
	if !users.CheckPasswordHash(oldPassword, record.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}
	if err := users.ValidatePasswordStrength(newPassword); err != nil {
		return errors.Wrap(err, "[Service.ChangePassword] weak password")
	}

	hash, err := users.HashPassword(newPassword)
	if err != nil {
		return errors.Wrap(err, "[Service.ChangePassword] hash password")
	}
	if _, err := s.repos.Users.Patch(ctx, sess.User.ID, map[string]any{"password": hash}); err != nil {
		return errors.Wrap(err, "[Service.ChangePassword] patch user")
	}
	return nil
}

// WatchList returns the caller's watch list.
func (s *Service) WatchList(ctx context.Context, sess *session.Session) ([]lists.Entry, error) {
	if err := s.checkSession(sess); err != nil {
		return nil, err
	}
	return s.repos.Lists.WatchList(ctx, sess.User.ID)
}

// AddToWatchList saves a media item onto the caller's watch list.
func (s *Service) AddToWatchList(ctx context.Context, sess *session.Session, media *catalog.Media) (*lists.Entry, error) {
	if err := s.checkSession(sess); err != nil {
		return nil, err
	}
	entry := entryFor(sess.User.ID, media, s.nowTime())
	created, err := s.repos.Lists.AddToWatchList(ctx, entry)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.AddToWatchList] add entry")
	}
	return created, nil
}

// RemoveFromWatchList drops an entry from the caller's watch list.
func (s *Service) RemoveFromWatchList(ctx context.Context, sess *session.Session, entryID string) error {
	if err := s.checkSession(sess); err != nil {
		return err
	}
	return s.repos.Lists.RemoveFromWatchList(ctx, entryID)
}

// PreferredList returns the caller's preferred list.
func (s *Service) PreferredList(ctx context.Context, sess *session.Session) ([]lists.Entry, error) {
	if err := s.checkSession(sess); err != nil {
		return nil, err
	}
	return s.repos.Lists.PreferredList(ctx, sess.User.ID)
}

// AddToPreferredList saves a media item onto the preferred list. A title
// already on the list is rejected as a duplicate.
func (s *Service) AddToPreferredList(ctx context.Context, sess *session.Session, media *catalog.Media) (*lists.Entry, error) {
	if err := s.checkSession(sess); err != nil {
		return nil, err
	}

	existing, err := s.repos.Lists.PreferredList(ctx, sess.User.ID)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.AddToPreferredList] list entries")
	}
	for _, e := range existing {
		if e.Title == media.Title {
			return nil, apperrors.ErrDuplicate
		}
	}

	created, err := s.repos.Lists.AddToPreferredList(ctx, entryFor(sess.User.ID, media, s.nowTime()))
	if err != nil {
		return nil, errors.Wrap(err, "[Service.AddToPreferredList] add entry")
	}
	return created, nil
}

// RemoveFromPreferredList drops an entry from the preferred list.
func (s *Service) RemoveFromPreferredList(ctx context.Context, sess *session.Session, entryID string) error {
	if err := s.checkSession(sess); err != nil {
		return err
	}
	return s.repos.Lists.RemoveFromPreferredList(ctx, entryID)
}

// WatchHistory returns the caller's history grouped by day.
func (s *Service) WatchHistory(ctx context.Context, sess *session.Session) ([]lists.HistoryEntry, error) {
	if err := s.checkSession(sess); err != nil {
		return nil, err
	}
	return s.repos.Lists.History(ctx, sess.User.ID)
}

// RecordWatch appends a history entry for today.
func (s *Service) RecordWatch(ctx context.Context, sess *session.Session, media *catalog.Media) (*lists.HistoryEntry, error) {
	if err := s.checkSession(sess); err != nil {
		return nil, err
	}
	created, err := s.repos.Lists.RecordHistory(ctx, &lists.HistoryEntry{
		UserID:    sess.User.ID,
		MediaID:   media.ID,
		MediaType: media.MediaType,
		Title:     media.Title,
		Poster:    media.Poster,
		Date:      s.nowTime().UTC().Format("2006-01-02"),
	})
	if err != nil {
		return nil, errors.Wrap(err, "[Service.RecordWatch] record history")
	}
	return created, nil
}

// SubmitReview posts a rating/review for a media item.
func (s *Service) SubmitReview(ctx context.Context, sess *session.Session, movieID string, rating float64, text string) (*catalog.Rating, error) {
	if err := s.checkSession(sess); err != nil {
		return nil, err
	}
	created, err := s.repos.Ratings.Create(ctx, &catalog.Rating{
		MovieID: movieID,
		UserID:  sess.User.ID,
		Rating:  rating,
		Text:    text,
		Author:  sess.User.Username,
		Date:    s.nowTime().UTC().Format(time.RFC3339),
		Replies: []catalog.Reply{},
	})
	if err != nil {
		return nil, errors.Wrap(err, "[Service.SubmitReview] create rating")
	}
	return created, nil
}

// ReplyToReview appends a reply to an existing review.
func (s *Service) ReplyToReview(ctx context.Context, sess *session.Session, ratingID, text string) (*catalog.Rating, error) {
	if err := s.checkSession(sess); err != nil {
		return nil, err
	}

	forMedia, err := s.repos.Ratings.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.ReplyToReview] list ratings")
	}
	var target *catalog.Rating
	for i := range forMedia {
		if forMedia[i].ID == ratingID {
			target = &forMedia[i]
			break
		}
	}
	if target == nil {
		return nil, apperrors.ErrNotFound
	}

	replies := append(target.Replies, catalog.Reply{
		Author: sess.User.Username,
		Text:   text,
		Date:   s.nowTime().UTC().Format(time.RFC3339),
	})
	updated, err := s.repos.Ratings.PatchReplies(ctx, ratingID, replies)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.ReplyToReview] patch replies")
	}
	return updated, nil
}

// Recommendations derives the caller's home-page picks from their ratings.
func (s *Service) Recommendations(ctx context.Context, sess *session.Session) ([]catalog.Media, error) {
	if err := s.checkSession(sess); err != nil {
		return nil, err
	}

	ratings, err := s.repos.Ratings.ListForUser(ctx, sess.User.ID)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.Recommendations] list ratings")
	}
	media, err := s.repos.Media.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.Recommendations] list media")
	}
	return catalog.Recommend(sess.User.ID, ratings, media), nil
}

// RequestMedia submits a pending catalog request.
func (s *Service) RequestMedia(ctx context.Context, sess *session.Session, request *requests.MediaRequest) (*requests.MediaRequest, error) {
	if err := s.checkSession(sess); err != nil {
		return nil, err
	}

	submission := *request
	submission.UserID = sess.User.ID
	submission.Status = requests.StatusPending
	submission.CreatedAt = s.nowTime().UTC().Format(time.RFC3339)

	created, err := s.repos.Requests.Create(ctx, &submission)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.RequestMedia] create request")
	}
	return created, nil
}

// MyRequests lists the caller's own media requests.
func (s *Service) MyRequests(ctx context.Context, sess *session.Session) ([]requests.MediaRequest, error) {
	if err := s.checkSession(sess); err != nil {
		return nil, err
	}
	return s.repos.Requests.ListForUser(ctx, sess.User.ID)
}

func entryFor(userID string, media *catalog.Media, now time.Time) *lists.Entry {
	return &lists.Entry{
		UserID:    userID,
		MediaID:   media.ID,
		MediaType: media.MediaType,
		Title:     media.Title,
		Year:      media.Year,
		Poster:    media.Poster,
		AddedAt:   now.UTC().Format(time.RFC3339),
	}
}

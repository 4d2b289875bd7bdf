// Package admin implements the admin console's operations: catalog and user
// management, request review, review moderation and the dashboard feeds. The
// console's guard is constructed with WithRequireAdmin, so only isAdmin users
// ever hold a session here.
package admin

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/mediaverse/mediaverse/catalog"
	"github.com/mediaverse/mediaverse/dashboard"
	apperrors "github.com/mediaverse/mediaverse/internal/errors"
	"github.com/mediaverse/mediaverse/lists"
	"github.com/mediaverse/mediaverse/moderation"
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

// Service wires the admin console operations to the guard and the record
// store.
type Service struct {
	repos   Repos
	guard   *session.Guard
	filter  *moderation.Filter
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

// WithFilter replaces the default profanity filter.
func WithFilter(filter *moderation.Filter) ServiceOption {
	return func(s *Service) {
		s.filter = filter
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
		filter:  moderation.NewFilter(),
		nowTime: time.Now,
	}
	for _, opt := range options {
		opt(service)
	}
	return service, nil
}

// checkSession asks the guard, then confirms the session really belongs to an
// administrator.
func (s *Service) checkSession(sess *session.Session) error {
	if s.guard.Check(sess) == session.OutcomeEvict {
		return apperrors.ErrSessionExpired
	}
	if s.guard.CurrentRole(sess) != session.RoleAdmin {
		return apperrors.ErrInvalidCredentials
	}
	return nil
}

// AddAdmin creates a new administrator account. Emails are stored lowercased
// so admin sign-in is predictable.
func (s *Service) AddAdmin(ctx context.Context, sess *session.Session, name, email, password string) (*users.User, error) {
	if err := s.checkSession(sess); err != nil {
		return nil, err
	}
	if err := users.ValidatePasswordStrength(password); err != nil {
		return nil, errors.Wrap(err, "[Service.AddAdmin] weak password")
	}

	hash, err := users.HashPassword(password)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.AddAdmin] hash password")
	}

	created, err := s.repos.Users.Create(ctx, &users.User{
		Name:         name,
		Email:        strings.ToLower(email),
		PasswordHash: hash,
		IsAdmin:      true,
		CreatedAt:    s.nowTime().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return nil, errors.Wrap(err, "[Service.AddAdmin] create user")
	}

	log.Info().Str("email", created.Email).Msg("administrator added")
	return created, nil
}

// ListUsers returns every account in the users collection.
func (s *Service) ListUsers(ctx context.Context, sess *session.Session) ([]*users.User, error) {
	if err := s.checkSession(sess); err != nil {
		return nil, err
	}
	return s.repos.Users.List(ctx)
}

// EditUser patches arbitrary fields on a user record.
func (s *Service) EditUser(ctx context.Context, sess *session.Session, userID string, fields map[string]any) (*users.User, error) {
	if err := s.checkSession(sess); err != nil {
		return nil, err
	}
	updated, err := s.repos.Users.Patch(ctx, userID, fields)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.EditUser] patch user")
	}
	return updated, nil
}

// ChangeUserRole flips the isAdmin flag on a user record.
func (s *Service) ChangeUserRole(ctx context.Context, sess *session.Session, userID string) (*users.User, error) {
	if err := s.checkSession(sess); err != nil {
		return nil, err
	}

	record, err := s.repos.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.ChangeUserRole] fetch user")
	}
	updated, err := s.repos.Users.Patch(ctx, userID, map[string]any{"isAdmin": !record.IsAdmin})
	if err != nil {
		return nil, errors.Wrap(err, "[Service.ChangeUserRole] patch user")
	}

	log.Info().Str("user", userID).Bool("admin", updated.IsAdmin).Msg("role changed")
	return updated, nil
}

// DeleteUser removes a user record.
func (s *Service) DeleteUser(ctx context.Context, sess *session.Session, userID string) error {
	if err := s.checkSession(sess); err != nil {
		return err
	}
	if err := s.repos.Users.Delete(ctx, userID); err != nil {
		return errors.Wrap(err, "[Service.DeleteUser] delete user")
	}
	return nil
}

// AddMedia creates a catalog record in movies or tv_shows.
func (s *Service) AddMedia(ctx context.Context, sess *session.Session, media *catalog.Media) (*catalog.Media, error) {
	if err := s.checkSession(sess); err != nil {
		return nil, err
	}

	record := *media
	if record.CreatedAt == "" {
		record.CreatedAt = s.nowTime().UTC().Format(time.RFC3339)
	}
	created, err := s.repos.Media.Create(ctx, &record)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.AddMedia] create media")
	}
	return created, nil
}

// EditMedia patches fields on a catalog record.
func (s *Service) EditMedia(ctx context.Context, sess *session.Session, mediaType, id string, fields map[string]any) (*catalog.Media, error) {
	if err := s.checkSession(sess); err != nil {
		return nil, err
	}
	updated, err := s.repos.Media.Patch(ctx, mediaType, id, fields)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.EditMedia] patch media")
	}
	return updated, nil
}

// DeleteMedia removes a catalog record.
func (s *Service) DeleteMedia(ctx context.Context, sess *session.Session, mediaType, id string) error {
	if err := s.checkSession(sess); err != nil {
		return err
	}
	if err := s.repos.Media.Delete(ctx, mediaType, id); err != nil {
		return errors.Wrap(err, "[Service.DeleteMedia] delete media")
	}
	return nil
}

// ListRequests returns every media request, all statuses.
func (s *Service) ListRequests(ctx context.Context, sess *session.Session) ([]requests.MediaRequest, error) {
	if err := s.checkSession(sess); err != nil {
		return nil, err
	}
	return s.repos.Requests.List(ctx)
}

// SetRequestStatus moves a pending request to approved or declined. Approval
// also copies the requested title into the catalog.
func (s *Service) SetRequestStatus(ctx context.Context, sess *session.Session, requestID, status string) (*requests.MediaRequest, error) {
	if err := s.checkSession(sess); err != nil {
		return nil, err
	}
	if status != requests.StatusApproved && status != requests.StatusDeclined {
		return nil, errors.Errorf("[Service.SetRequestStatus] unsupported status %q", status)
	}

	updated, err := s.repos.Requests.PatchStatus(ctx, requestID, status)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.SetRequestStatus] patch request")
	}

	if status == requests.StatusApproved {
		media := updated.ToMedia(s.nowTime().UTC().Format(time.RFC3339))
		if _, err := s.repos.Media.Create(ctx, media); err != nil {
			return nil, errors.Wrap(err, "[Service.SetRequestStatus] copy to catalog")
		}
		log.Info().Str("title", updated.Title).Msg("request approved into catalog")
	}
	return updated, nil
}

// FlaggedReview pairs a review with its censored rendering for the
// moderation screen.
type FlaggedReview struct {
	Review   catalog.Rating `json:"review"`
	Censored string         `json:"censored"`
}

// FlaggedReviews lists reviews whose text trips the profanity filter.
func (s *Service) FlaggedReviews(ctx context.Context, sess *session.Session) ([]FlaggedReview, error) {
	if err := s.checkSession(sess); err != nil {
		return nil, err
	}

	ratings, err := s.repos.Ratings.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.FlaggedReviews] list ratings")
	}

	var flagged []FlaggedReview
	for _, r := range ratings {
		if !s.filter.IsProfane(r.Text) {
			continue
		}
		flagged = append(flagged, FlaggedReview{Review: r, Censored: s.filter.Censor(r.Text)})
	}
	return flagged, nil
}

// DeleteReview removes a review record.
func (s *Service) DeleteReview(ctx context.Context, sess *session.Session, reviewID string) error {
	if err := s.checkSession(sess); err != nil {
		return err
	}
	if err := s.repos.Ratings.Delete(ctx, reviewID); err != nil {
		return errors.Wrap(err, "[Service.DeleteReview] delete rating")
	}
	return nil
}

// DashboardData is everything the admin dashboard charts need in one fetch.
type DashboardData struct {
	ReleaseYears []dashboard.YearCount    `json:"release_years"`
	Ratings      []dashboard.RatingPoint  `json:"ratings"`
	History      []dashboard.HistoryGroup `json:"history"`
}

// Dashboard aggregates the catalog, ratings and watch history into the
// dashboard feeds.
func (s *Service) Dashboard(ctx context.Context, sess *session.Session) (*DashboardData, error) {
	if err := s.checkSession(sess); err != nil {
		return nil, err
	}

	media, err := s.repos.Media.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.Dashboard] list media")
	}
	ratings, err := s.repos.Ratings.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.Dashboard] list ratings")
	}
	history, err := s.repos.Lists.AllHistory(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.Dashboard] list history")
	}

	return &DashboardData{
		ReleaseYears: dashboard.ReleaseYearCounts(media),
		Ratings:      dashboard.RatingComparison(media, ratings),
		History:      dashboard.HistoryByDate(history),
	}, nil
}

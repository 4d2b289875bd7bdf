package session

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	apperrors "github.com/mediaverse/mediaverse/internal/errors"
	"github.com/mediaverse/mediaverse/token"
	"github.com/mediaverse/mediaverse/users"
)

// Guard gates access to protected views and mutations. Every protected view
// consults it on mount and every write re-consults it immediately before
// dispatch, because a session can expire mid-visit.
type Guard struct {
	storage      Storage
	users        users.Repo
	tokens       *token.Manager
	requireAdmin bool             // the admin console only accepts isAdmin users
	nowTime      func() time.Time // nowTime function (injectable for testing)
}

// GuardOption defines a function type to modify the Guard instance.
type GuardOption func(*Guard)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) GuardOption {
	return func(g *Guard) {
		g.nowTime = nowFunc
	}
}

// WithRequireAdmin restricts Issue to administrator records. The admin
// console constructs its guard with this; the end-user app accepts any match.
func WithRequireAdmin() GuardOption {
	return func(g *Guard) {
		g.requireAdmin = true
	}
}

// NewGuard initializes a Guard with required dependencies.
func NewGuard(storage Storage, userRepo users.Repo, tokens *token.Manager, options ...GuardOption) (*Guard, error) {
	if storage == nil {
		return nil, errors.New("[NewGuard] storage is required")
	}
	if userRepo == nil {
		return nil, errors.New("[NewGuard] user repo is required")
	}
	if tokens == nil {
		return nil, errors.New("[NewGuard] token manager is required")
	}

	guard := &Guard{
		storage: storage,
		users:   userRepo,
		tokens:  tokens,
		nowTime: time.Now,
	}
	for _, opt := range options {
		opt(guard)
	}
	return guard, nil
}

// Issue authenticates credentials against the users collection and mints a
// new session, fully replacing any previously persisted one.
//
// Callers can distinguish ErrInvalidCredentials (wrong email/password, needs
// new input) from ErrStoreUnavailable (transient, worth a retry message).
func (g *Guard) Issue(ctx context.Context, email, password string) (*Session, error) {
	user, err := g.users.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, errors.Wrap(err, "[Guard.Issue] user lookup")
	}

	if g.requireAdmin && !user.IsAdmin {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !users.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	signed, expiresAt, err := g.tokens.Mint(user)
	if err != nil {
		return nil, errors.Wrap(err, "[Guard.Issue] mint token")
	}

	sess := &Session{Token: signed, User: SummaryOf(user), ExpiresAt: expiresAt}
	if err := g.storage.Write(sess.Token, sess.User); err != nil {
		return nil, errors.Wrap(err, "[Guard.Issue] persist session")
	}

	log.Info().Str("user", user.Username).Bool("admin", user.IsAdmin).Msg("session issued")
	return sess, nil
}

// IsValid reports whether the session can be trusted. It is pure: absence, a
// token that fails verification, or exp <= now all yield false, and stored
// state is never touched, so it is safe to call repeatedly before reads.
func (g *Guard) IsValid(sess *Session) bool {
	if sess == nil || sess.Token == "" {
		return false
	}
	introspection, err := g.tokens.Introspect(sess.Token)
	if err != nil || !introspection.Active || introspection.Exp == nil {
		return false
	}
	return g.nowTime().Unix() < *introspection.Exp
}

// Check is the operation every protected view calls on mount and every
// mutation calls immediately before dispatch. An invalid session is evicted:
// the persisted slot is cleared and the caller is told to navigate back to
// the authentication entry point. Repeat calls on an evicted session are
// no-op evictions, never errors.
func (g *Guard) Check(sess *Session) Outcome {
	if g.IsValid(sess) {
		return OutcomeContinue
	}
	if err := g.storage.Clear(); err != nil {
		log.Warn().Err(err).Msg("failed clearing evicted session")
	}
	return OutcomeEvict
}

// Clear unconditionally removes the persisted session. Used by explicit
// logout; clearing an empty slot is fine.
func (g *Guard) Clear() {
	if err := g.storage.Clear(); err != nil {
		log.Warn().Err(err).Msg("failed clearing session")
	}
}

// CurrentRole derives the caller's role. Anything but a valid session is
// anonymous.
func (g *Guard) CurrentRole(sess *Session) Role {
	if !g.IsValid(sess) {
		return RoleAnonymous
	}
	if sess.User.IsAdmin {
		return RoleAdmin
	}
	return RoleUser
}

// Load eagerly restores a previously persisted session on startup. An
// invalid or expired slot is discarded immediately rather than waiting for
// the first guarded view.
func (g *Guard) Load() *Session {
	stored, summary, err := g.storage.Read()
	if err != nil {
		return nil
	}

	sess := &Session{Token: stored, User: summary}
	introspection, err := g.tokens.Introspect(stored)
	if err == nil && introspection.Exp != nil {
		sess.ExpiresAt = time.Unix(*introspection.Exp, 0)
	}

	if !g.IsValid(sess) {
		g.Clear()
		return nil
	}
	return sess
}

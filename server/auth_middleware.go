package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/mediaverse/mediaverse/internal/utils"
	"github.com/mediaverse/mediaverse/session"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// ContextKeySession stores the caller's reconstructed session.
const ContextKeySession ContextKey = "session"

// sessionFromRequest rebuilds a session from the Authorization header. The
// token carries the subject; the user record fills in the summary. A missing,
// malformed or inactive token yields nil.
func (s *Server) sessionFromRequest(r *http.Request) *session.Session {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil
	}
	raw := parts[1]
	if raw == "" {
		return nil
	}

	introspection, err := s.tokens.Introspect(raw)
	if err != nil || !introspection.Active || introspection.Exp == nil {
		return nil
	}

	user, err := s.repos.Users.GetByID(r.Context(), utils.Value(introspection.Sub))
	if err != nil {
		return nil
	}

	return &session.Session{
		Token:     raw,
		User:      session.SummaryOf(user),
		ExpiresAt: time.Unix(*introspection.Exp, 0),
	}
}

// RequireSession is middleware that validates a Bearer token and injects the
// rebuilt session into the request context.
func (s *Server) RequireSession() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			sess := s.sessionFromRequest(r)
			if sess == nil {
				writeError(w, http.StatusUnauthorized, "session expired")
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeySession, sess)
			next(w, r.WithContext(ctx))
		}
	}
}

// RequireAdmin is middleware that rejects non-admin sessions. Chained after
// RequireSession.
func (s *Server) RequireAdmin() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			sess := sessionFrom(r)
			if sess == nil || !sess.User.IsAdmin {
				writeError(w, http.StatusForbidden, "admin access required")
				return
			}
			next(w, r)
		}
	}
}

func sessionFrom(r *http.Request) *session.Session {
	sess, _ := r.Context().Value(ContextKeySession).(*session.Session)
	return sess
}

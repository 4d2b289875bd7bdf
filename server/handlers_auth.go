package server

import (
	"net/http"

	"github.com/mediaverse/mediaverse/session"
	"github.com/mediaverse/mediaverse/users"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string              `json:"token"`
	User      session.UserSummary `json:"user"`
	ExpiresAt int64               `json:"expires_at"`
}

// LoginHandler authenticates credentials through the given guard. The
// end-user app and the admin console hit separate routes backed by separate
// guards; the admin guard refuses non-admin records outright.
func (s *Server) LoginHandler(guard *session.Guard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.Email == "" || req.Password == "" {
			writeError(w, http.StatusBadRequest, "email and password are required")
			return
		}

		sess, err := guard.Issue(r.Context(), req.Email, req.Password)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, loginResponse{
			Token:     sess.Token,
			User:      sess.User,
			ExpiresAt: sess.ExpiresAt.Unix(),
		})
	}
}

// LogoutHandler drops any persisted session slot.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.userGuard.Clear()
		s.adminGuard.Clear()
		writeJSON(w, http.StatusNoContent, nil)
	}
}

// SessionHandler reports whether the presented token is still a live
// session. Front ends call this on mount instead of trusting a stored token.
func (s *Server) SessionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := s.sessionFromRequest(r)
		if sess == nil || s.userGuard.Check(sess) == session.OutcomeEvict {
			writeError(w, http.StatusUnauthorized, "session expired")
			return
		}
		writeJSON(w, http.StatusOK, loginResponse{
			Token:     sess.Token,
			User:      sess.User,
			ExpiresAt: sess.ExpiresAt.Unix(),
		})
	}
}

type registerRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// RegisterHandler creates a new end-user account.
func (s *Server) RegisterHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.Email == "" || req.Password == "" {
			writeError(w, http.StatusBadRequest, "email and password are required")
			return
		}
		if req.Password != req.ConfirmPassword {
			writeError(w, http.StatusBadRequest, "passwords do not match")
			return
		}
		if err := users.ValidatePasswordStrength(req.Password); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		created, err := s.accounts.Register(r.Context(), req.Name, req.Email, req.Password, req.ConfirmPassword)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		created.PasswordHash = ""
		writeJSON(w, http.StatusCreated, created)
	}
}

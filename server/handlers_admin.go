package server

import (
	"net/http"

	"github.com/mediaverse/mediaverse/catalog"
)

// AdminListUsersHandler lists every account.
func (s *Server) AdminListUsersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := s.admins.ListUsers(r.Context(), sessionFrom(r))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		for _, u := range all {
			u.PasswordHash = ""
		}
		writeJSON(w, http.StatusOK, all)
	}
}

// AdminEditUserHandler patches fields on a user record.
func (s *Server) AdminEditUserHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var fields map[string]any
		if !decodeBody(w, r, &fields) {
			return
		}
		updated, err := s.admins.EditUser(r.Context(), sessionFrom(r), r.PathValue("id"), fields)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		updated.PasswordHash = ""
		writeJSON(w, http.StatusOK, updated)
	}
}

// AdminDeleteUserHandler removes a user record.
func (s *Server) AdminDeleteUserHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.admins.DeleteUser(r.Context(), sessionFrom(r), r.PathValue("id")); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusNoContent, nil)
	}
}

// AdminChangeRoleHandler flips the isAdmin flag on a user record.
func (s *Server) AdminChangeRoleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		updated, err := s.admins.ChangeUserRole(r.Context(), sessionFrom(r), r.PathValue("id"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		updated.PasswordHash = ""
		writeJSON(w, http.StatusOK, updated)
	}
}

type addAdminRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminAddAdminHandler creates a new administrator account.
func (s *Server) AdminAddAdminHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addAdminRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.Email == "" || req.Password == "" {
			writeError(w, http.StatusBadRequest, "email and password are required")
			return
		}
		created, err := s.admins.AddAdmin(r.Context(), sessionFrom(r), req.Name, req.Email, req.Password)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		created.PasswordHash = ""
		writeJSON(w, http.StatusCreated, created)
	}
}

// AdminAddMediaHandler creates a catalog record.
func (s *Server) AdminAddMediaHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var media catalog.Media
		if !decodeBody(w, r, &media) {
			return
		}
		created, err := s.admins.AddMedia(r.Context(), sessionFrom(r), &media)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

// AdminEditMediaHandler patches fields on a catalog record.
func (s *Server) AdminEditMediaHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var fields map[string]any
		if !decodeBody(w, r, &fields) {
			return
		}
		updated, err := s.admins.EditMedia(r.Context(), sessionFrom(r), r.PathValue("type"), r.PathValue("id"), fields)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

// AdminDeleteMediaHandler removes a catalog record.
func (s *Server) AdminDeleteMediaHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.admins.DeleteMedia(r.Context(), sessionFrom(r), r.PathValue("type"), r.PathValue("id")); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusNoContent, nil)
	}
}

// AdminListRequestsHandler lists every media request.
func (s *Server) AdminListRequestsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := s.admins.ListRequests(r.Context(), sessionFrom(r))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, all)
	}
}

type requestStatusUpdate struct {
	Status string `json:"request_status"`
}

// AdminSetRequestStatusHandler approves or declines a pending request.
func (s *Server) AdminSetRequestStatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requestStatusUpdate
		if !decodeBody(w, r, &req) {
			return
		}
		updated, err := s.admins.SetRequestStatus(r.Context(), sessionFrom(r), r.PathValue("id"), req.Status)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

// AdminFlaggedReviewsHandler lists reviews tripping the profanity filter.
func (s *Server) AdminFlaggedReviewsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flagged, err := s.admins.FlaggedReviews(r.Context(), sessionFrom(r))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, flagged)
	}
}

// AdminDeleteReviewHandler removes a review record.
func (s *Server) AdminDeleteReviewHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.admins.DeleteReview(r.Context(), sessionFrom(r), r.PathValue("id")); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusNoContent, nil)
	}
}

// AdminDashboardHandler returns the dashboard chart feeds.
func (s *Server) AdminDashboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := s.admins.Dashboard(r.Context(), sessionFrom(r))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, data)
	}
}

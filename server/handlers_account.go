package server

import (
	"net/http"

	"github.com/mediaverse/mediaverse/catalog"
	"github.com/mediaverse/mediaverse/requests"
)

type changeFieldRequest struct {
	Value string `json:"value"`
}

// ChangeNameHandler updates the caller's display name.
func (s *Server) ChangeNameHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req changeFieldRequest
		if !decodeBody(w, r, &req) {
			return
		}
		updated, err := s.accounts.ChangeName(r.Context(), sessionFrom(r), req.Value)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		updated.PasswordHash = ""
		writeJSON(w, http.StatusOK, updated)
	}
}

// ChangeEmailHandler updates the caller's email.
func (s *Server) ChangeEmailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req changeFieldRequest
		if !decodeBody(w, r, &req) {
			return
		}
		updated, err := s.accounts.ChangeEmail(r.Context(), sessionFrom(r), req.Value)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		updated.PasswordHash = ""
		writeJSON(w, http.StatusOK, updated)
	}
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// ChangePasswordHandler verifies the current password before replacing it.
func (s *Server) ChangePasswordHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req changePasswordRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if err := s.accounts.ChangePassword(r.Context(), sessionFrom(r), req.OldPassword, req.NewPassword); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusNoContent, nil)
	}
}

// WatchListHandler lists the caller's watch list.
func (s *Server) WatchListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := s.accounts.WatchList(r.Context(), sessionFrom(r))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, entries)
	}
}

// AddToWatchListHandler saves a title onto the watch list.
func (s *Server) AddToWatchListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var media catalog.Media
		if !decodeBody(w, r, &media) {
			return
		}
		entry, err := s.accounts.AddToWatchList(r.Context(), sessionFrom(r), &media)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, entry)
	}
}

// RemoveFromWatchListHandler drops a watch-list entry.
func (s *Server) RemoveFromWatchListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.accounts.RemoveFromWatchList(r.Context(), sessionFrom(r), r.PathValue("id")); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusNoContent, nil)
	}
}

// PreferredListHandler lists the caller's preferred list.
func (s *Server) PreferredListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := s.accounts.PreferredList(r.Context(), sessionFrom(r))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, entries)
	}
}

// AddToPreferredListHandler saves a title onto the preferred list.
func (s *Server) AddToPreferredListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var media catalog.Media
		if !decodeBody(w, r, &media) {
			return
		}
		entry, err := s.accounts.AddToPreferredList(r.Context(), sessionFrom(r), &media)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, entry)
	}
}

// RemoveFromPreferredListHandler drops a preferred-list entry.
func (s *Server) RemoveFromPreferredListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.accounts.RemoveFromPreferredList(r.Context(), sessionFrom(r), r.PathValue("id")); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusNoContent, nil)
	}
}

// WatchHistoryHandler lists the caller's watch history.
func (s *Server) WatchHistoryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		history, err := s.accounts.WatchHistory(r.Context(), sessionFrom(r))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, history)
	}
}

// RecordWatchHandler appends a history entry for today.
func (s *Server) RecordWatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var media catalog.Media
		if !decodeBody(w, r, &media) {
			return
		}
		entry, err := s.accounts.RecordWatch(r.Context(), sessionFrom(r), &media)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, entry)
	}
}

type reviewRequest struct {
	MovieID string  `json:"movieId"`
	Rating  float64 `json:"rating"`
	Text    string  `json:"text"`
}

// SubmitReviewHandler posts a review for a title.
func (s *Server) SubmitReviewHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reviewRequest
		if !decodeBody(w, r, &req) {
			return
		}
		created, err := s.accounts.SubmitReview(r.Context(), sessionFrom(r), req.MovieID, req.Rating, req.Text)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

type replyRequest struct {
	Text string `json:"text"`
}

// ReplyToReviewHandler appends a reply to a review.
func (s *Server) ReplyToReviewHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req replyRequest
		if !decodeBody(w, r, &req) {
			return
		}
		updated, err := s.accounts.ReplyToReview(r.Context(), sessionFrom(r), r.PathValue("id"), req.Text)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

// RecommendationsHandler returns the caller's home-page picks.
func (s *Server) RecommendationsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		picks, err := s.accounts.Recommendations(r.Context(), sessionFrom(r))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, picks)
	}
}

// MyRequestsHandler lists the caller's media requests.
func (s *Server) MyRequestsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mine, err := s.accounts.MyRequests(r.Context(), sessionFrom(r))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, mine)
	}
}

// RequestMediaHandler submits a pending catalog request.
func (s *Server) RequestMediaHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.MediaRequest
		if !decodeBody(w, r, &req) {
			return
		}
		created, err := s.accounts.RequestMedia(r.Context(), sessionFrom(r), &req)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

package server

import (
	"net/http"

	"github.com/mediaverse/mediaverse/catalog"
)

// MoviesHandler lists the movies collection. Public: browsing needs no
// session.
func (s *Server) MoviesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		movies, err := s.repos.Media.ListMovies(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, movies)
	}
}

// TVShowsHandler lists the tv_shows collection.
func (s *Server) TVShowsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shows, err := s.repos.Media.ListTVShows(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, shows)
	}
}

// AllMediaHandler lists movies followed by tv shows, the combined order the
// front ends render.
func (s *Server) AllMediaHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		media, err := s.repos.Media.ListAll(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, media)
	}
}

// MediaBySlugHandler resolves the slugged title a detail-page URL carries
// back to its record.
func (s *Server) MediaBySlugHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := r.PathValue("slug")
		media, err := s.repos.Media.ListAll(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		for i := range media {
			if catalog.Slug(media[i].Title) == slug {
				writeJSON(w, http.StatusOK, media[i])
				return
			}
		}
		writeError(w, http.StatusNotFound, "not found")
	}
}

// MediaRatingsHandler lists the reviews for one title.
func (s *Server) MediaRatingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ratings, err := s.repos.Ratings.ListForMedia(r.Context(), r.PathValue("id"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ratings)
	}
}

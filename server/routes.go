package server

import "net/http"

func (s *Server) initRoutes() {
	// Auth
	s.RegisterRouteHandler("POST "+RouteAuthLogin, ChainMiddleware(s.LoginHandler(s.userGuard), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteAuthAdminLogin, ChainMiddleware(s.LoginHandler(s.adminGuard), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteAuthLogout, ChainMiddleware(s.LogoutHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteAuthSession, ChainMiddleware(s.SessionHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteAuthRegister, ChainMiddleware(s.RegisterHandler(), s.APIMiddleware()...))

	// Public catalog
	s.RegisterRouteHandler("GET "+RouteMovies, ChainMiddleware(s.MoviesHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteTVShows, ChainMiddleware(s.TVShowsHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteMedia, ChainMiddleware(s.AllMediaHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteMediaBySlug, ChainMiddleware(s.MediaBySlugHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteMediaRatings, ChainMiddleware(s.MediaRatingsHandler(), s.APIMiddleware()...))

	// Account routes (require a valid end-user session)
	s.RegisterRouteHandler("PATCH "+RouteProfileName, ChainMiddleware(s.ChangeNameHandler(), s.SessionAPIMiddleware()...))
	s.RegisterRouteHandler("PATCH "+RouteProfileEmail, ChainMiddleware(s.ChangeEmailHandler(), s.SessionAPIMiddleware()...))
	s.RegisterRouteHandler("PATCH "+RouteProfilePassword, ChainMiddleware(s.ChangePasswordHandler(), s.SessionAPIMiddleware()...))

	s.RegisterRouteHandler("GET "+RouteWatchList, ChainMiddleware(s.WatchListHandler(), s.SessionAPIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteWatchList, ChainMiddleware(s.AddToWatchListHandler(), s.SessionAPIMiddleware()...))
	s.RegisterRouteHandler("DELETE "+RouteWatchListItem, ChainMiddleware(s.RemoveFromWatchListHandler(), s.SessionAPIMiddleware()...))

	s.RegisterRouteHandler("GET "+RoutePreferredList, ChainMiddleware(s.PreferredListHandler(), s.SessionAPIMiddleware()...))
	s.RegisterRouteHandler("POST "+RoutePreferredList, ChainMiddleware(s.AddToPreferredListHandler(), s.SessionAPIMiddleware()...))
	s.RegisterRouteHandler("DELETE "+RoutePreferredItem, ChainMiddleware(s.RemoveFromPreferredListHandler(), s.SessionAPIMiddleware()...))

	s.RegisterRouteHandler("GET "+RouteHistory, ChainMiddleware(s.WatchHistoryHandler(), s.SessionAPIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteHistory, ChainMiddleware(s.RecordWatchHandler(), s.SessionAPIMiddleware()...))

	s.RegisterRouteHandler("POST "+RouteReviews, ChainMiddleware(s.SubmitReviewHandler(), s.SessionAPIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteReviewReplies, ChainMiddleware(s.ReplyToReviewHandler(), s.SessionAPIMiddleware()...))

	s.RegisterRouteHandler("GET "+RouteRecommendations, ChainMiddleware(s.RecommendationsHandler(), s.SessionAPIMiddleware()...))

	s.RegisterRouteHandler("GET "+RouteRequests, ChainMiddleware(s.MyRequestsHandler(), s.SessionAPIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteRequests, ChainMiddleware(s.RequestMediaHandler(), s.SessionAPIMiddleware()...))

	// Admin routes (require an isAdmin session)
	s.RegisterRouteHandler("GET "+RouteAdminUsers, ChainMiddleware(s.AdminListUsersHandler(), s.AdminAPIMiddleware()...))
	s.RegisterRouteHandler("PATCH "+RouteAdminUser, ChainMiddleware(s.AdminEditUserHandler(), s.AdminAPIMiddleware()...))
	s.RegisterRouteHandler("DELETE "+RouteAdminUser, ChainMiddleware(s.AdminDeleteUserHandler(), s.AdminAPIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteAdminUserRole, ChainMiddleware(s.AdminChangeRoleHandler(), s.AdminAPIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteAdminAdmins, ChainMiddleware(s.AdminAddAdminHandler(), s.AdminAPIMiddleware()...))

	s.RegisterRouteHandler("POST "+RouteAdminMedia, ChainMiddleware(s.AdminAddMediaHandler(), s.AdminAPIMiddleware()...))
	s.RegisterRouteHandler("PATCH "+RouteAdminMediaItem, ChainMiddleware(s.AdminEditMediaHandler(), s.AdminAPIMiddleware()...))
	s.RegisterRouteHandler("DELETE "+RouteAdminMediaItem, ChainMiddleware(s.AdminDeleteMediaHandler(), s.AdminAPIMiddleware()...))

	s.RegisterRouteHandler("GET "+RouteAdminRequests, ChainMiddleware(s.AdminListRequestsHandler(), s.AdminAPIMiddleware()...))
	s.RegisterRouteHandler("PATCH "+RouteAdminRequest, ChainMiddleware(s.AdminSetRequestStatusHandler(), s.AdminAPIMiddleware()...))

	s.RegisterRouteHandler("GET "+RouteAdminFlagged, ChainMiddleware(s.AdminFlaggedReviewsHandler(), s.AdminAPIMiddleware()...))
	s.RegisterRouteHandler("DELETE "+RouteAdminReviewItem, ChainMiddleware(s.AdminDeleteReviewHandler(), s.AdminAPIMiddleware()...))

	s.RegisterRouteHandler("GET "+RouteAdminDashboard, ChainMiddleware(s.AdminDashboardHandler(), s.AdminAPIMiddleware()...))

	// Preflight requests never match the method-scoped patterns above.
	s.RegisterRouteHandler("OPTIONS /api/", ChainMiddleware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}, s.APIMiddleware()...))

	s.RegisterRouteFunc("/", s.NotFoundHandler())
}

// NotFoundHandler handles 404 errors
func (s *Server) NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	}
}

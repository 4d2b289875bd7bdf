package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Auth Routes
	RouteAuthLogin      = "/api/auth/login"
	RouteAuthAdminLogin = "/api/auth/admin/login"
	RouteAuthLogout     = "/api/auth/logout"
	RouteAuthSession    = "/api/auth/session"
	RouteAuthRegister   = "/api/auth/register"

	// Public Catalog Routes
	RouteMovies       = "/api/movies"
	RouteTVShows      = "/api/tv_shows"
	RouteMedia        = "/api/media"
	RouteMediaBySlug  = "/api/media/by-slug/{slug}"
	RouteMediaRatings = "/api/media/{id}/ratings"

	// Account Routes (Bearer token)
	RouteProfileName     = "/api/profile/name"
	RouteProfileEmail    = "/api/profile/email"
	RouteProfilePassword = "/api/profile/password"
	RouteWatchList       = "/api/watch_list"
	RouteWatchListItem   = "/api/watch_list/{id}"
	RoutePreferredList   = "/api/preferred_list"
	RoutePreferredItem   = "/api/preferred_list/{id}"
	RouteHistory         = "/api/watch_history"
	RouteReviews         = "/api/reviews"
	RouteReviewReplies   = "/api/reviews/{id}/replies"
	RouteRecommendations = "/api/recommendations"
	RouteRequests        = "/api/requests"

	// Admin Routes (Bearer token, isAdmin only)
	RouteAdminUsers      = "/api/admin/users"
	RouteAdminUser       = "/api/admin/users/{id}"
	RouteAdminUserRole   = "/api/admin/users/{id}/role"
	RouteAdminAdmins     = "/api/admin/admins"
	RouteAdminMedia      = "/api/admin/media"
	RouteAdminMediaItem  = "/api/admin/media/{type}/{id}"
	RouteAdminRequests   = "/api/admin/requests"
	RouteAdminRequest    = "/api/admin/requests/{id}"
	RouteAdminFlagged    = "/api/admin/reviews/flagged"
	RouteAdminReviewItem = "/api/admin/reviews/{id}"
	RouteAdminDashboard  = "/api/admin/dashboard"
)

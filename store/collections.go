package store

// Collections exposed by the record store. The store is a generic REST
// resource service: GET /{collection} with exact-match query filters,
// GET /{collection}/{id}, POST, PATCH and DELETE.
const (
	CollectionUsers          = "users"
	CollectionMovies         = "movies"
	CollectionTVShows        = "tv_shows"
	CollectionUserRatings    = "user_ratings"
	CollectionWatchHistory   = "watch_history"
	CollectionWatchList      = "watch_list"
	CollectionPreferredList  = "preferred_list"
	CollectionRequestedMedia = "user_requested_media"
)

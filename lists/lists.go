// Package lists covers the per-user collections of the record store: the
// watch list, the preferred list and the watch history.
package lists

// Entry is a saved-media record in the watch_list or preferred_list
// collections. Media display fields are denormalized onto the entry the way
// the apps store them.
type Entry struct {
	ID        string `json:"id,omitempty"`
	UserID    string `json:"user_id,omitempty"`
	MediaID   string `json:"movieId,omitempty"`
	MediaType string `json:"media_type,omitempty"`
	Title     string `json:"Title,omitempty"`
	Year      string `json:"Year,omitempty"`
	Poster    string `json:"Poster,omitempty"`
	AddedAt   string `json:"addedAt,omitempty"`
}

// HistoryEntry is a record in the watch_history collection. Date is the
// calendar-day key the history view groups on.
type HistoryEntry struct {
	ID        string `json:"id,omitempty"`
	UserID    string `json:"user_id,omitempty"`
	MediaID   string `json:"movieId,omitempty"`
	MediaType string `json:"media_type,omitempty"`
	Title     string `json:"Title,omitempty"`
	Poster    string `json:"Poster,omitempty"`
	Date      string `json:"date,omitempty"`
}

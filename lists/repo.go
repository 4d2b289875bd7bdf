package lists

import "context"

// Repo reads and writes the per-user list collections. Reads are filtered to
// a single user except AllHistory, which feeds the admin dashboard.
type Repo interface {
	WatchList(ctx context.Context, userID string) ([]Entry, error)
	AddToWatchList(ctx context.Context, entry *Entry) (*Entry, error)
	RemoveFromWatchList(ctx context.Context, id string) error

	PreferredList(ctx context.Context, userID string) ([]Entry, error)
	AddToPreferredList(ctx context.Context, entry *Entry) (*Entry, error)
	RemoveFromPreferredList(ctx context.Context, id string) error

	History(ctx context.Context, userID string) ([]HistoryEntry, error)
	// AllHistory is unfiltered, for the admin dashboard.
	AllHistory(ctx context.Context) ([]HistoryEntry, error)
	RecordHistory(ctx context.Context, entry *HistoryEntry) (*HistoryEntry, error)
}

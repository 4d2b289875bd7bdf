package lists

import (
	"context"

	"github.com/pkg/errors"

	"github.com/mediaverse/mediaverse/store"
)

var _ Repo = (*StoreRepo)(nil)

// StoreRepo backs Repo with the record store.
type StoreRepo struct {
	client *store.Client
}

func NewStoreRepo(client *store.Client) *StoreRepo {
	return &StoreRepo{client: client}
}

func (r *StoreRepo) WatchList(ctx context.Context, userID string) ([]Entry, error) {
	return r.listEntries(ctx, store.CollectionWatchList, userID)
}

func (r *StoreRepo) AddToWatchList(ctx context.Context, entry *Entry) (*Entry, error) {
	return r.addEntry(ctx, store.CollectionWatchList, entry)
}

func (r *StoreRepo) RemoveFromWatchList(ctx context.Context, id string) error {
	if err := r.client.Delete(ctx, store.CollectionWatchList, id); err != nil {
		return errors.Wrap(err, "[StoreRepo.RemoveFromWatchList] delete entry")
	}
	return nil
}

func (r *StoreRepo) PreferredList(ctx context.Context, userID string) ([]Entry, error) {
	return r.listEntries(ctx, store.CollectionPreferredList, userID)
}

func (r *StoreRepo) AddToPreferredList(ctx context.Context, entry *Entry) (*Entry, error) {
	return r.addEntry(ctx, store.CollectionPreferredList, entry)
}

func (r *StoreRepo) RemoveFromPreferredList(ctx context.Context, id string) error {
	if err := r.client.Delete(ctx, store.CollectionPreferredList, id); err != nil {
		return errors.Wrap(err, "[StoreRepo.RemoveFromPreferredList] delete entry")
	}
	return nil
}

func (r *StoreRepo) History(ctx context.Context, userID string) ([]HistoryEntry, error) {
	var history []HistoryEntry
	if err := r.client.List(ctx, store.CollectionWatchHistory, store.Filters{"user_id": userID}, &history); err != nil {
		return nil, errors.Wrap(err, "[StoreRepo.History] list history")
	}
	return history, nil
}

func (r *StoreRepo) AllHistory(ctx context.Context) ([]HistoryEntry, error) {
	var history []HistoryEntry
	if err := r.client.List(ctx, store.CollectionWatchHistory, nil, &history); err != nil {
		return nil, errors.Wrap(err, "[StoreRepo.AllHistory] list history")
	}
	return history, nil
}

func (r *StoreRepo) RecordHistory(ctx context.Context, entry *HistoryEntry) (*HistoryEntry, error) {
	var created HistoryEntry
	if err := r.client.Create(ctx, store.CollectionWatchHistory, entry, &created); err != nil {
		return nil, errors.Wrap(err, "[StoreRepo.RecordHistory] create entry")
	}
	return &created, nil
}

func (r *StoreRepo) listEntries(ctx context.Context, collection, userID string) ([]Entry, error) {
	var entries []Entry
	if err := r.client.List(ctx, collection, store.Filters{"user_id": userID}, &entries); err != nil {
		return nil, errors.Wrapf(err, "[StoreRepo.listEntries] list %s", collection)
	}
	return entries, nil
}

func (r *StoreRepo) addEntry(ctx context.Context, collection string, entry *Entry) (*Entry, error) {
	var created Entry
	if err := r.client.Create(ctx, collection, entry, &created); err != nil {
		return nil, errors.Wrapf(err, "[StoreRepo.addEntry] create %s entry", collection)
	}
	return &created, nil
}

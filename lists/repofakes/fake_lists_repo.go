package repofakes

import (
	"context"
	"sync"

	"github.com/google/uuid"

	apperrors "github.com/mediaverse/mediaverse/internal/errors"
	"github.com/mediaverse/mediaverse/lists"
)

var _ lists.Repo = (*FakeListsRepo)(nil)

type FakeListsRepo struct {
	watch     []lists.Entry
	preferred []lists.Entry
	history   []lists.HistoryEntry
	lock      sync.RWMutex
}

func NewFakeListsRepo() *FakeListsRepo {
	return &FakeListsRepo{}
}

func (r *FakeListsRepo) WatchList(_ context.Context, userID string) ([]lists.Entry, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return filterEntries(r.watch, userID), nil
}

func (r *FakeListsRepo) AddToWatchList(_ context.Context, entry *lists.Entry) (*lists.Entry, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	created := assignID(*entry)
	r.watch = append(r.watch, created)
	return &created, nil
}

func (r *FakeListsRepo) RemoveFromWatchList(_ context.Context, id string) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	return removeEntry(&r.watch, id)
}

func (r *FakeListsRepo) PreferredList(_ context.Context, userID string) ([]lists.Entry, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return filterEntries(r.preferred, userID), nil
}

func (r *FakeListsRepo) AddToPreferredList(_ context.Context, entry *lists.Entry) (*lists.Entry, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	created := assignID(*entry)
	r.preferred = append(r.preferred, created)
	return &created, nil
}

func (r *FakeListsRepo) RemoveFromPreferredList(_ context.Context, id string) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	return removeEntry(&r.preferred, id)
}

func (r *FakeListsRepo) History(_ context.Context, userID string) ([]lists.HistoryEntry, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	var matches []lists.HistoryEntry
	for _, e := range r.history {
		if e.UserID == userID {
			matches = append(matches, e)
		}
	}
	return matches, nil
}

func (r *FakeListsRepo) AllHistory(_ context.Context) ([]lists.HistoryEntry, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return append([]lists.HistoryEntry(nil), r.history...), nil
}

func (r *FakeListsRepo) RecordHistory(_ context.Context, entry *lists.HistoryEntry) (*lists.HistoryEntry, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	created := *entry
	if created.ID == "" {
		created.ID = uuid.New().String()
	}
	r.history = append(r.history, created)
	return &created, nil
}

func filterEntries(entries []lists.Entry, userID string) []lists.Entry {
	var matches []lists.Entry
	for _, e := range entries {
		if e.UserID == userID {
			matches = append(matches, e)
		}
	}
	return matches
}

func assignID(entry lists.Entry) lists.Entry {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	return entry
}

func removeEntry(entries *[]lists.Entry, id string) error {
	for i := range *entries {
		if (*entries)[i].ID == id {
			*entries = append((*entries)[:i], (*entries)[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

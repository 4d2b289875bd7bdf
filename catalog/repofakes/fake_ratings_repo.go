package repofakes

import (
	"context"
	"sync"

	"github.com/google/uuid"

	apperrors "github.com/mediaverse/mediaverse/internal/errors"
	"github.com/mediaverse/mediaverse/catalog"
)

var _ catalog.RatingsRepo = (*FakeRatingsRepo)(nil)

type FakeRatingsRepo struct {
	ratings []catalog.Rating
	lock    sync.RWMutex
}

func NewFakeRatingsRepo() *FakeRatingsRepo {
	return &FakeRatingsRepo{}
}

func (r *FakeRatingsRepo) List(_ context.Context) ([]catalog.Rating, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return append([]catalog.Rating(nil), r.ratings...), nil
}

func (r *FakeRatingsRepo) ListForMedia(_ context.Context, movieID string) ([]catalog.Rating, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	var matches []catalog.Rating
	for _, rating := range r.ratings {
		if rating.MovieID == movieID {
			matches = append(matches, rating)
		}
	}
	return matches, nil
}

func (r *FakeRatingsRepo) ListForUser(_ context.Context, userID string) ([]catalog.Rating, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	var matches []catalog.Rating
	for _, rating := range r.ratings {
		if rating.UserID == userID {
			matches = append(matches, rating)
		}
	}
	return matches, nil
}

func (r *FakeRatingsRepo) Create(_ context.Context, rating *catalog.Rating) (*catalog.Rating, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	copied := *rating
	if copied.ID == "" {
		copied.ID = uuid.New().String()
	}
	r.ratings = append(r.ratings, copied)
	result := copied
	return &result, nil
}

func (r *FakeRatingsRepo) PatchReplies(_ context.Context, id string, replies []catalog.Reply) (*catalog.Rating, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for i := range r.ratings {
		if r.ratings[i].ID == id {
			r.ratings[i].Replies = replies
			copied := r.ratings[i]
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *FakeRatingsRepo) Delete(_ context.Context, id string) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for i := range r.ratings {
		if r.ratings[i].ID == id {
			r.ratings = append(r.ratings[:i], r.ratings[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

package repofakes

import (
	"context"
	"sync"

	"github.com/google/uuid"

	apperrors "github.com/mediaverse/mediaverse/internal/errors"
	"github.com/mediaverse/mediaverse/requests"
)

var _ requests.Repo = (*FakeRequestRepo)(nil)

type FakeRequestRepo struct {
	records []requests.MediaRequest
	lock    sync.RWMutex
}

func NewFakeRequestRepo() *FakeRequestRepo {
	return &FakeRequestRepo{}
}

func (r *FakeRequestRepo) List(_ context.Context) ([]requests.MediaRequest, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return append([]requests.MediaRequest(nil), r.records...), nil
}

func (r *FakeRequestRepo) ListForUser(_ context.Context, userID string) ([]requests.MediaRequest, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	var matches []requests.MediaRequest
	for _, rec := range r.records {
		if rec.UserID == userID {
			matches = append(matches, rec)
		}
	}
	return matches, nil
}

func (r *FakeRequestRepo) Create(_ context.Context, request *requests.MediaRequest) (*requests.MediaRequest, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	copied := *request
	if copied.ID == "" {
		copied.ID = uuid.New().String()
	}
	r.records = append(r.records, copied)
	result := copied
	return &result, nil
}

func (r *FakeRequestRepo) PatchStatus(_ context.Context, id, status string) (*requests.MediaRequest, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for i := range r.records {
		if r.records[i].ID == id {
			r.records[i].Status = status
			copied := r.records[i]
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *FakeRequestRepo) Delete(_ context.Context, id string) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for i := range r.records {
		if r.records[i].ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

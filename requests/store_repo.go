package requests

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

func (r *StoreRepo) List(ctx context.Context) ([]MediaRequest, error) {
	var all []MediaRequest
	if err := r.client.List(ctx, store.CollectionRequestedMedia, nil, &all); err != nil {
		return nil, errors.Wrap(err, "[StoreRepo.List] list requests")
	}
	return all, nil
}

func (r *StoreRepo) ListForUser(ctx context.Context, userID string) ([]MediaRequest, error) {
	var matches []MediaRequest
	if err := r.client.List(ctx, store.CollectionRequestedMedia, store.Filters{"user_id": userID}, &matches); err != nil {
		return nil, errors.Wrap(err, "[StoreRepo.ListForUser] list requests")
	}
	return matches, nil
}

func (r *StoreRepo) Create(ctx context.Context, request *MediaRequest) (*MediaRequest, error) {
	var created MediaRequest
	if err := r.client.Create(ctx, store.CollectionRequestedMedia, request, &created); err != nil {
		return nil, errors.Wrap(err, "[StoreRepo.Create] create request")
	}
	return &created, nil
}

func (r *StoreRepo) PatchStatus(ctx context.Context, id, status string) (*MediaRequest, error) {
	var merged MediaRequest
	if err := r.client.Patch(ctx, store.CollectionRequestedMedia, id, map[string]any{"request_status": status}, &merged); err != nil {
		return nil, errors.Wrap(err, "[StoreRepo.PatchStatus] patch status")
	}
	return &merged, nil
}

func (r *StoreRepo) Delete(ctx context.Context, id string) error {
	if err := r.client.Delete(ctx, store.CollectionRequestedMedia, id); err != nil {
		return errors.Wrap(err, "[StoreRepo.Delete] delete request")
	}
	return nil
}

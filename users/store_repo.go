package users

import (
	"context"

	"github.com/pkg/errors"

	apperrors "github.com/mediaverse/mediaverse/internal/errors"
	"github.com/mediaverse/mediaverse/store"
)

var _ Repo = (*StoreRepo)(nil)

// StoreRepo reads and writes the users collection in the record store.
type StoreRepo struct {
	client *store.Client
}

func NewStoreRepo(client *store.Client) *StoreRepo {
	return &StoreRepo{client: client}
}

// GetByEmail matches the email field exactly (case-sensitive).
func (r *StoreRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	var matches []*User
	if err := r.client.List(ctx, store.CollectionUsers, store.Filters{"email": email}, &matches); err != nil {
		return nil, errors.Wrap(err, "[StoreRepo.GetByEmail] list users")
	}
	if len(matches) == 0 {
		return nil, apperrors.ErrUserNotFound
	}
	return matches[0], nil
}

func (r *StoreRepo) GetByID(ctx context.Context, id string) (*User, error) {
	var user User
	if err := r.client.Get(ctx, store.CollectionUsers, id, &user); err != nil {
		return nil, errors.Wrap(err, "[StoreRepo.GetByID] get user")
	}
	return &user, nil
}

func (r *StoreRepo) Create(ctx context.Context, user *User) (*User, error) {
	var created User
	if err := r.client.Create(ctx, store.CollectionUsers, user, &created); err != nil {
		return nil, errors.Wrap(err, "[StoreRepo.Create] create user")
	}
	return &created, nil
}

func (r *StoreRepo) Patch(ctx context.Context, id string, fields map[string]any) (*User, error) {
	var merged User
	if err := r.client.Patch(ctx, store.CollectionUsers, id, fields, &merged); err != nil {
		return nil, errors.Wrap(err, "[StoreRepo.Patch] patch user")
	}
	return &merged, nil
}

func (r *StoreRepo) Delete(ctx context.Context, id string) error {
	if err := r.client.Delete(ctx, store.CollectionUsers, id); err != nil {
		return errors.Wrap(err, "[StoreRepo.Delete] delete user")
	}
	return nil
}

func (r *StoreRepo) List(ctx context.Context) ([]*User, error) {
	var all []*User
	if err := r.client.List(ctx, store.CollectionUsers, nil, &all); err != nil {
		return nil, errors.Wrap(err, "[StoreRepo.List] list users")
	}
	return all, nil
}

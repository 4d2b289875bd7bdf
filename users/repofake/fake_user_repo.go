package repofake

import (
	"context"
	"sync"

	"github.com/google/uuid"

	apperrors "github.com/mediaverse/mediaverse/internal/errors"
	"github.com/mediaverse/mediaverse/users"
)

var _ users.Repo = (*FakeUserRepo)(nil)

type FakeUserRepo struct {
	usersByID map[string]*users.User
	lock      sync.RWMutex

	// FailWith, when set, is returned by every operation. Used to simulate
	// an unreachable store.
	FailWith error
}

func NewFakeUserRepo() *FakeUserRepo {
	return &FakeUserRepo{usersByID: make(map[string]*users.User)}
}

func (r *FakeUserRepo) GetByEmail(_ context.Context, email string) (*users.User, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	if r.FailWith != nil {
		return nil, r.FailWith
	}
	for _, u := range r.usersByID {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *FakeUserRepo) GetByID(_ context.Context, id string) (*users.User, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	if r.FailWith != nil {
		return nil, r.FailWith
	}
	u, ok := r.usersByID[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *FakeUserRepo) Create(_ context.Context, user *users.User) (*users.User, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.FailWith != nil {
		return nil, r.FailWith
	}
	copied := *user
	if copied.ID == "" {
		copied.ID = uuid.New().String()
	}
	r.usersByID[copied.ID] = &copied
	result := copied
	return &result, nil
}

func (r *FakeUserRepo) Patch(_ context.Context, id string, fields map[string]any) (*users.User, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.FailWith != nil {
		return nil, r.FailWith
	}
	u, ok := r.usersByID[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "name":
			u.Name, _ = v.(string)
		case "user_name":
			u.Username, _ = v.(string)
		case "email":
			u.Email, _ = v.(string)
		case "password":
			u.PasswordHash, _ = v.(string)
		case "isAdmin":
			u.IsAdmin, _ = v.(bool)
		}
	}
	copied := *u
	return &copied, nil
}

func (r *FakeUserRepo) Delete(_ context.Context, id string) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.FailWith != nil {
		return r.FailWith
	}
	if _, ok := r.usersByID[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.usersByID, id)
	return nil
}

func (r *FakeUserRepo) List(_ context.Context) ([]*users.User, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	if r.FailWith != nil {
		return nil, r.FailWith
	}
	all := make([]*users.User, 0, len(r.usersByID))
	for _, u := range r.usersByID {
		copied := *u
		all = append(all, &copied)
	}
	return all, nil
}

package users

import "context"

type Repo interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) (*User, error)
	Patch(ctx context.Context, id string, fields map[string]any) (*User, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*User, error)
}

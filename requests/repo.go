package requests

import "context"

type Repo interface {
	List(ctx context.Context) ([]MediaRequest, error)
	ListForUser(ctx context.Context, userID string) ([]MediaRequest, error)
	Create(ctx context.Context, request *MediaRequest) (*MediaRequest, error)
	// PatchStatus updates only the request_status field.
	PatchStatus(ctx context.Context, id, status string) (*MediaRequest, error)
	Delete(ctx context.Context, id string) error
}

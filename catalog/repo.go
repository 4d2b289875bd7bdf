package catalog

import "context"

// MediaRepo reads and writes the movies and tv_shows collections.
type MediaRepo interface {
	ListMovies(ctx context.Context) ([]Media, error)
	ListTVShows(ctx context.Context) ([]Media, error)
	// ListAll returns movies followed by tv shows, the order the apps
	// combine them in.
	ListAll(ctx context.Context) ([]Media, error)
	Create(ctx context.Context, media *Media) (*Media, error)
	Patch(ctx context.Context, mediaType, id string, fields map[string]any) (*Media, error)
	Delete(ctx context.Context, mediaType, id string) error
}

// RatingsRepo reads and writes the user_ratings collection.
type RatingsRepo interface {
	List(ctx context.Context) ([]Rating, error)
	ListForMedia(ctx context.Context, movieID string) ([]Rating, error)
	ListForUser(ctx context.Context, userID string) ([]Rating, error)
	Create(ctx context.Context, rating *Rating) (*Rating, error)
	// PatchReplies replaces the replies array on a review.
	PatchReplies(ctx context.Context, id string, replies []Reply) (*Rating, error)
	Delete(ctx context.Context, id string) error
}

package catalog

import (
	"context"

	"github.com/pkg/errors"

	"github.com/mediaverse/mediaverse/store"
)

var (
	_ MediaRepo   = (*StoreMediaRepo)(nil)
	_ RatingsRepo = (*StoreRatingsRepo)(nil)
)

// StoreMediaRepo backs MediaRepo with the record store.
type StoreMediaRepo struct {
	client *store.Client
}

func NewStoreMediaRepo(client *store.Client) *StoreMediaRepo {
	return &StoreMediaRepo{client: client}
}

func collectionFor(mediaType string) string {
	if mediaType == TypeTVShow {
		return store.CollectionTVShows
	}
	return store.CollectionMovies
}

func (r *StoreMediaRepo) ListMovies(ctx context.Context) ([]Media, error) {
	var movies []Media
	if err := r.client.List(ctx, store.CollectionMovies, nil, &movies); err != nil {
		return nil, errors.Wrap(err, "[StoreMediaRepo.ListMovies] list movies")
	}
	return movies, nil
}

func (r *StoreMediaRepo) ListTVShows(ctx context.Context) ([]Media, error) {
	var shows []Media
	if err := r.client.List(ctx, store.CollectionTVShows, nil, &shows); err != nil {
		return nil, errors.Wrap(err, "[StoreMediaRepo.ListTVShows] list tv shows")
	}
	return shows, nil
}

func (r *StoreMediaRepo) ListAll(ctx context.Context) ([]Media, error) {
	movies, err := r.ListMovies(ctx)
	if err != nil {
		return nil, err
	}
	shows, err := r.ListTVShows(ctx)
	if err != nil {
		return nil, err
	}
	return append(movies, shows...), nil
}

func (r *StoreMediaRepo) Create(ctx context.Context, media *Media) (*Media, error) {
	var created Media
	if err := r.client.Create(ctx, collectionFor(media.MediaType), media, &created); err != nil {
		return nil, errors.Wrap(err, "[StoreMediaRepo.Create] create media")
	}
	return &created, nil
}

func (r *StoreMediaRepo) Patch(ctx context.Context, mediaType, id string, fields map[string]any) (*Media, error) {
	var merged Media
	if err := r.client.Patch(ctx, collectionFor(mediaType), id, fields, &merged); err != nil {
		return nil, errors.Wrap(err, "[StoreMediaRepo.Patch] patch media")
	}
	return &merged, nil
}

func (r *StoreMediaRepo) Delete(ctx context.Context, mediaType, id string) error {
	if err := r.client.Delete(ctx, collectionFor(mediaType), id); err != nil {
		return errors.Wrap(err, "[StoreMediaRepo.Delete] delete media")
	}
	return nil
}

// StoreRatingsRepo backs RatingsRepo with the record store.
type StoreRatingsRepo struct {
	client *store.Client
}

func NewStoreRatingsRepo(client *store.Client) *StoreRatingsRepo {
	return &StoreRatingsRepo{client: client}
}

func (r *StoreRatingsRepo) List(ctx context.Context) ([]Rating, error) {
	var ratings []Rating
	if err := r.client.List(ctx, store.CollectionUserRatings, nil, &ratings); err != nil {
		return nil, errors.Wrap(err, "[StoreRatingsRepo.List] list ratings")
	}
	return ratings, nil
}

func (r *StoreRatingsRepo) ListForMedia(ctx context.Context, movieID string) ([]Rating, error) {
	var ratings []Rating
	if err := r.client.List(ctx, store.CollectionUserRatings, store.Filters{"movieId": movieID}, &ratings); err != nil {
		return nil, errors.Wrap(err, "[StoreRatingsRepo.ListForMedia] list ratings")
	}
	return ratings, nil
}

func (r *StoreRatingsRepo) ListForUser(ctx context.Context, userID string) ([]Rating, error) {
	var ratings []Rating
	if err := r.client.List(ctx, store.CollectionUserRatings, store.Filters{"user_id": userID}, &ratings); err != nil {
		return nil, errors.Wrap(err, "[StoreRatingsRepo.ListForUser] list ratings")
	}
	return ratings, nil
}

func (r *StoreRatingsRepo) Create(ctx context.Context, rating *Rating) (*Rating, error) {
	var created Rating
	if err := r.client.Create(ctx, store.CollectionUserRatings, rating, &created); err != nil {
		return nil, errors.Wrap(err, "[StoreRatingsRepo.Create] create rating")
	}
	return &created, nil
}

func (r *StoreRatingsRepo) PatchReplies(ctx context.Context, id string, replies []Reply) (*Rating, error) {
	var merged Rating
	if err := r.client.Patch(ctx, store.CollectionUserRatings, id, map[string]any{"replies": replies}, &merged); err != nil {
		return nil, errors.Wrap(err, "[StoreRatingsRepo.PatchReplies] patch replies")
	}
	return &merged, nil
}

func (r *StoreRatingsRepo) Delete(ctx context.Context, id string) error {
	if err := r.client.Delete(ctx, store.CollectionUserRatings, id); err != nil {
		return errors.Wrap(err, "[StoreRatingsRepo.Delete] delete rating")
	}
	return nil
}

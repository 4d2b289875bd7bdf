package repofakes

import (
	"context"
	"sync"

	"github.com/google/uuid"

	apperrors "github.com/mediaverse/mediaverse/internal/errors"
	"github.com/mediaverse/mediaverse/catalog"
)

var _ catalog.MediaRepo = (*FakeMediaRepo)(nil)

type FakeMediaRepo struct {
	movies []catalog.Media
	shows  []catalog.Media
	lock   sync.RWMutex
}

func NewFakeMediaRepo() *FakeMediaRepo {
	return &FakeMediaRepo{}
}

func (r *FakeMediaRepo) ListMovies(_ context.Context) ([]catalog.Media, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return append([]catalog.Media(nil), r.movies...), nil
}

func (r *FakeMediaRepo) ListTVShows(_ context.Context) ([]catalog.Media, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return append([]catalog.Media(nil), r.shows...), nil
}

func (r *FakeMediaRepo) ListAll(ctx context.Context) ([]catalog.Media, error) {
	movies, _ := r.ListMovies(ctx)
	shows, _ := r.ListTVShows(ctx)
	return append(movies, shows...), nil
}

func (r *FakeMediaRepo) Create(_ context.Context, media *catalog.Media) (*catalog.Media, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	copied := *media
	if copied.ID == "" {
		copied.ID = uuid.New().String()
	}
	if copied.IsMovie() {
		r.movies = append(r.movies, copied)
	} else {
		r.shows = append(r.shows, copied)
	}
	result := copied
	return &result, nil
}

func (r *FakeMediaRepo) Patch(_ context.Context, mediaType, id string, fields map[string]any) (*catalog.Media, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, list := range []*[]catalog.Media{&r.movies, &r.shows} {
		for i := range *list {
			if (*list)[i].ID != id {
				continue
			}
			m := &(*list)[i]
			for k, v := range fields {
				s, _ := v.(string)
				switch k {
				case "Title":
					m.Title = s
				case "Year":
					m.Year = s
				case "Genre":
					m.Genre = s
				case "Plot":
					m.Plot = s
				case "Poster":
					m.Poster = s
				case "imdbRating":
					m.IMDBRating = s
				}
			}
			copied := *m
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *FakeMediaRepo) Delete(_ context.Context, mediaType, id string) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, list := range []*[]catalog.Media{&r.movies, &r.shows} {
		for i := range *list {
			if (*list)[i].ID == id {
				*list = append((*list)[:i], (*list)[i+1:]...)
				return nil
			}
		}
	}
	return apperrors.ErrNotFound
}

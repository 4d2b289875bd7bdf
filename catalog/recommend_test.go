package catalog_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mediaverse/mediaverse/catalog"
)

func mediaFixture(ids ...string) []catalog.Media {
	media := make([]catalog.Media, 0, len(ids))
	for _, id := range ids {
		media = append(media, catalog.Media{ID: id, Title: "Title " + id})
	}
	return media
}

func TestRecommendFiltersByUserAndThreshold(t *testing.T) {
	media := mediaFixture("m1", "m2", "m3", "m4")
	ratings := []catalog.Rating{
		{UserID: "u1", MovieID: "m1", Rating: 5},
		{UserID: "u1", MovieID: "m2", Rating: 3}, // below threshold
		{UserID: "u2", MovieID: "m3", Rating: 5}, // someone else's rating
		{UserID: "u1", MovieID: "m4", Rating: 4},
	}

	picks := catalog.Recommend("u1", ratings, media)
	require.Len(t, picks, 2)
	require.Equal(t, "m1", picks[0].ID)
	require.Equal(t, "m4", picks[1].ID)
}

func TestRecommendDeduplicates(t *testing.T) {
	media := mediaFixture("m1")
	ratings := []catalog.Rating{
		{UserID: "u1", MovieID: "m1", Rating: 5},
		{UserID: "u1", MovieID: "m1", Rating: 4},
	}

	picks := catalog.Recommend("u1", ratings, media)
	require.Len(t, picks, 1)
}

func TestRecommendSkipsUnknownMedia(t *testing.T) {
	ratings := []catalog.Rating{{UserID: "u1", MovieID: "gone", Rating: 5}}

	picks := catalog.Recommend("u1", ratings, mediaFixture("m1"))
	require.Empty(t, picks)
}

func TestRecommendCapsAtTen(t *testing.T) {
	var ids []string
	var ratings []catalog.Rating
	for i := 0; i < 15; i++ {
		id := fmt.Sprintf("m%d", i)
		ids = append(ids, id)
		ratings = append(ratings, catalog.Rating{UserID: "u1", MovieID: id, Rating: 5})
	}

	picks := catalog.Recommend("u1", ratings, mediaFixture(ids...))
	require.Len(t, picks, 10)
}

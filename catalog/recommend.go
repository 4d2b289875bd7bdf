package catalog

// Recommendation tuning: a title counts as liked at 4 stars and up, and the
// home page shows at most 10 picks.
const (
	likedRatingThreshold = 4
	maxRecommendations   = 10
)

// Recommend derives the signed-in user's home-page picks from their own
// ratings: every title they rated at likedRatingThreshold or above, mapped
// back to the catalog, deduplicated in first-seen order and capped at
// maxRecommendations. An empty result means the caller should fall back to
// showing the whole catalog.
func Recommend(userID string, ratings []Rating, media []Media) []Media {
	byID := make(map[string]*Media, len(media))
	for i := range media {
		byID[media[i].ID] = &media[i]
	}

	seen := make(map[string]struct{})
	var picks []Media
	for _, r := range ratings {
		if r.UserID != userID || r.Rating < likedRatingThreshold {
			continue
		}
		if _, dup := seen[r.MovieID]; dup {
			continue
		}
		found, ok := byID[r.MovieID]
		if !ok {
			continue
		}
		seen[r.MovieID] = struct{}{}
		picks = append(picks, *found)
		if len(picks) == maxRecommendations {
			break
		}
	}
	return picks
}

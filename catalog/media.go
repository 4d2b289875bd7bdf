package catalog

// Media type values used by the record store.
const (
	TypeMovie  = "movie"
	TypeTVShow = "tv_show"
)

// Media mirrors a record in the movies or tv_shows collections. The store
// keeps OMDb-style capitalized field names; they are preserved verbatim.
type Media struct {
	ID         string `json:"id,omitempty"`
	UserID     string `json:"user_id,omitempty"`
	MediaType  string `json:"media_type,omitempty"`
	Title      string `json:"Title,omitempty"`
	Year       string `json:"Year,omitempty"`
	Rated      string `json:"Rated,omitempty"`
	Released   string `json:"Released,omitempty"`
	Runtime    string `json:"Runtime,omitempty"`
	Genre      string `json:"Genre,omitempty"`
	Director   string `json:"Director,omitempty"`
	Writer     string `json:"Writer,omitempty"`
	Actors     string `json:"Actors,omitempty"`
	Plot       string `json:"Plot,omitempty"`
	Language   string `json:"Language,omitempty"`
	Country    string `json:"Country,omitempty"`
	Poster     string `json:"Poster,omitempty"`
	IMDBRating string `json:"imdbRating,omitempty"`
	CreatedAt  string `json:"createdAt,omitempty"`
}

// IsMovie reports whether the record belongs in the movies collection.
func (m *Media) IsMovie() bool {
	return m.MediaType != TypeTVShow
}

// Rating is a user review record in the user_ratings collection. movieId
// refers to either a movie or a tv_show record.
type Rating struct {
	ID      string  `json:"id,omitempty"`
	MovieID string  `json:"movieId,omitempty"`
	UserID  string  `json:"user_id,omitempty"`
	Rating  float64 `json:"rating"`
	Text    string  `json:"text,omitempty"`
	Author  string  `json:"author,omitempty"`
	Date    string  `json:"date,omitempty"`
	Replies []Reply `json:"replies"`
}

// Reply is a nested response on a review.
type Reply struct {
	Author string `json:"author,omitempty"`
	Text   string `json:"text,omitempty"`
	Date   string `json:"date,omitempty"`
}

// AverageRating computes the mean of the given ratings, 0 when empty.
func AverageRating(ratings []Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}
	var sum float64
	for _, r := range ratings {
		sum += r.Rating
	}
	return sum / float64(len(ratings))
}

// Package requests covers the user_requested_media collection: titles users
// ask to have added to the catalog, pending admin review.
package requests

import "github.com/mediaverse/mediaverse/catalog"

// Request statuses. A request starts pending and an admin moves it to
// approved or declined; there are no other transitions.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDeclined = "declined"
)

// MediaRequest mirrors a record in user_requested_media. The submission form
// uses lowercase field names where the catalog uses capitalized ones; both
// spellings appear in stored data, so the lowercase fields are kept alongside
// their catalog counterparts.
type MediaRequest struct {
	ID          string `json:"id,omitempty"`
	UserID      string `json:"user_id,omitempty"`
	MediaType   string `json:"media_type,omitempty"`
	Title       string `json:"title,omitempty"`
	Year        string `json:"year,omitempty"`
	Rated       string `json:"Rating,omitempty"`
	ReleaseDate string `json:"Release Date,omitempty"`
	Runtime     string `json:"Runtime,omitempty"`
	Genre       string `json:"Genre,omitempty"`
	Director    string `json:"Director,omitempty"`
	Writer      string `json:"Writer,omitempty"`
	Actors      string `json:"Actors,omitempty"`
	Plot        string `json:"Plot,omitempty"`
	Language    string `json:"Language,omitempty"`
	Country     string `json:"Country,omitempty"`
	Poster      string `json:"Poster,omitempty"`
	IMDBRating  string `json:"imdbRating,omitempty"`
	Status      string `json:"request_status,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

// ToMedia maps an approved request onto a catalog record, the same field
// mapping the admin console performs before posting to movies or tv_shows.
func (m *MediaRequest) ToMedia(createdAt string) *catalog.Media {
	return &catalog.Media{
		UserID:     m.UserID,
		MediaType:  m.MediaType,
		Title:      m.Title,
		Year:       m.Year,
		Rated:      m.Rated,
		Released:   m.ReleaseDate,
		Runtime:    m.Runtime,
		Genre:      m.Genre,
		Director:   m.Director,
		Writer:     m.Writer,
		Actors:     m.Actors,
		Plot:       m.Plot,
		Language:   m.Language,
		Country:    m.Country,
		Poster:     m.Poster,
		IMDBRating: m.IMDBRating,
		CreatedAt:  createdAt,
	}
}

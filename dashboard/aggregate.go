// Package dashboard computes the aggregations behind the admin dashboard
// charts. Everything here is pure: small in-memory folds over records the
// caller already fetched.
package dashboard

import (
	"sort"
	"strconv"
	"strings"

	"github.com/mediaverse/mediaverse/catalog"
	"github.com/mediaverse/mediaverse/lists"
)

// YearCount is one column of the release-year timeline.
type YearCount struct {
	Year  string `json:"year"`
	Count int    `json:"count"`
}

// ReleaseYearCounts builds the per-year release histogram over the combined
// catalog. A Year holding a range ("2010–2015") counts under its first year.
// Columns come back sorted ascending by year.
func ReleaseYearCounts(media []catalog.Media) []YearCount {
	counts := make(map[string]int)
	for _, m := range media {
		if m.Year == "" {
			continue
		}
		year := strings.TrimSpace(strings.SplitN(m.Year, "–", 2)[0])
		counts[year]++
	}

	years := make([]string, 0, len(counts))
	for year := range counts {
		years = append(years, year)
	}
	sort.Strings(years)

	columns := make([]YearCount, 0, len(years))
	for _, year := range years {
		columns = append(columns, YearCount{Year: year, Count: counts[year]})
	}
	return columns
}

// RatingPoint compares the community's average rating with the IMDb rating
// for one title.
type RatingPoint struct {
	IMDB  float64 `json:"x"`
	User  float64 `json:"y"`
	Title string  `json:"label"`
}

// RatingComparison pairs each title's average user rating with its IMDb
// rating. Titles with no user ratings or without a numeric IMDb rating are
// skipped; points follow the catalog's order.
func RatingComparison(media []catalog.Media, ratings []catalog.Rating) []RatingPoint {
	byMedia := make(map[string][]catalog.Rating)
	for _, r := range ratings {
		if r.MovieID != "" {
			byMedia[r.MovieID] = append(byMedia[r.MovieID], r)
		}
	}

	var points []RatingPoint
	for _, m := range media {
		mediaRatings, ok := byMedia[m.ID]
		if !ok {
			continue
		}
		imdb, err := strconv.ParseFloat(m.IMDBRating, 64)
		if err != nil {
			continue
		}
		points = append(points, RatingPoint{
			IMDB:  imdb,
			User:  catalog.AverageRating(mediaRatings),
			Title: m.Title,
		})
	}
	return points
}

// HistoryGroup is one day's worth of watch history.
type HistoryGroup struct {
	Date  string               `json:"date"`
	Items []lists.HistoryEntry `json:"items"`
}

// HistoryByDate groups watch-history entries by their date field. Groups are
// sorted by date; entries within a group keep their fetched order.
func HistoryByDate(entries []lists.HistoryEntry) []HistoryGroup {
	byDate := make(map[string][]lists.HistoryEntry)
	for _, e := range entries {
		byDate[e.Date] = append(byDate[e.Date], e)
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	groups := make([]HistoryGroup, 0, len(dates))
	for _, date := range dates {
		groups = append(groups, HistoryGroup{Date: date, Items: byDate[date]})
	}
	return groups
}

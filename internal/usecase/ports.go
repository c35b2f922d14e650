package usecase

import (
	"mediarec/internal/media"
	"mediarec/internal/recommend"
	"mediarec/internal/search"
)

// Querier is the read side served over HTTP.
type Querier interface {
	MovieList() (string, string, error)
	TVList() (string, string, error)
	BookList() (string, string, error)
	Stats(kind string) (StatsReport, error)
	Ratings() Ratings
	FindShows(q search.ShowQuery) ([]media.Show, string, error)
	FindBooks(q search.BookQuery) ([]media.Book, string, error)
	Recommend(mediaType, title string) (string, string, error)
	Suggestions(mediaType, title string) ([]recommend.Suggestion, string, error)
}

var _ Querier = (*Recommender)(nil)

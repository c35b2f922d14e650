// Package media holds the record model shared by the catalog, the association
// index and the query engines: books and shows with a common base.
package media

import (
	"fmt"
	"strings"
)

// Kind tags the concrete record behind an Item.
type Kind int

const (
	KindBook Kind = iota + 1
	KindShow
)

func (k Kind) String() string {
	switch k {
	case KindBook:
		return "book"
	case KindShow:
		return "show"
	default:
		return "unknown"
	}
}

// Item is the read-only view every record exposes.
type Item interface {
	ItemID() string
	ItemTitle() string
	AverageRating() float64
	Kind() Kind
}

// Base carries the fields every record has.
type Base struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	AvgRating float64 `json:"average_rating"`
}

func (b Base) ItemID() string         { return b.ID }
func (b Base) ItemTitle() string      { return b.Title }
func (b Base) AverageRating() float64 { return b.AvgRating }

// ShowType distinguishes movies from series. Values outside the two known
// constants are kept verbatim so a bad row can still be reported.
type ShowType string

const (
	Movie  ShowType = "Movie"
	TVShow ShowType = "TV Show"
)

// Valid reports whether t is Movie or TVShow.
func (t ShowType) Valid() bool {
	return t == Movie || t == TVShow
}

func (t ShowType) String() string { return string(t) }

// ParseShowType maps user and file spellings onto a ShowType.
func ParseShowType(s string) (ShowType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "movie", "movies":
		return Movie, true
	case "tv show", "tvshow", "tv", "tv shows", "series":
		return TVShow, true
	default:
		return ShowType(strings.TrimSpace(s)), false
	}
}

// MediaType selects the source side of a recommendation.
type MediaType string

const (
	MediaMovie  MediaType = "Movie"
	MediaTVShow MediaType = "TV Show"
	MediaBook   MediaType = "Book"
)

// ParseMediaType accepts the same spellings as ParseShowType plus "book".
func ParseMediaType(s string) (MediaType, error) {
	if t, ok := ParseShowType(s); ok {
		return MediaType(t), nil
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "book", "books":
		return MediaBook, nil
	}
	return "", fmt.Errorf("unknown media type %q", s)
}

// ShowType returns the show side of a media type; ok is false for books.
func (m MediaType) ShowType() (ShowType, bool) {
	switch m {
	case MediaMovie:
		return Movie, true
	case MediaTVShow:
		return TVShow, true
	default:
		return "", false
	}
}

package media

import (
	"strconv"
	"strings"
)

// Row is one header-keyed source row.
type Row map[string]string

// lookup returns the first non-absent column among names.
func (r Row) lookup(names ...string) (string, bool) {
	for _, n := range names {
		if v, ok := r[n]; ok {
			return v, true
		}
	}
	return "", false
}

func (r Row) get(names ...string) string {
	v, _ := r.lookup(names...)
	return v
}

func (r Row) required(names ...string) (string, error) {
	v, ok := r.lookup(names...)
	if !ok || strings.TrimSpace(v) == "" {
		return "", &FormatError{Field: names[0], Value: v, Err: errMissing}
	}
	return v, nil
}

// DecodeBook builds a Book from a books-file row.
func DecodeBook(r Row) (Book, error) {
	id, err := r.required("bookID", "book_id", "id")
	if err != nil {
		return Book{}, err
	}
	title, err := r.required("title")
	if err != nil {
		return Book{}, err
	}
	avg, err := parseRating(r.get("average_rating"))
	if err != nil {
		return Book{}, err
	}
	pages, err := parseCount("num_pages", r.get("num_pages"))
	if err != nil {
		return Book{}, err
	}
	ratings, err := parseCount("ratings_count", r.get("ratings_count"))
	if err != nil {
		return Book{}, err
	}
	return Book{
		Base:            Base{ID: strings.TrimSpace(id), Title: title, AvgRating: avg},
		Authors:         r.get("authors"),
		ISBN:            r.get("isbn"),
		ISBN13:          r.get("isbn13"),
		LanguageCode:    r.get("language_code"),
		NumPages:        pages,
		RatingsCount:    ratings,
		PublicationDate: r.get("publication_date"),
		Publisher:       r.get("publisher"),
	}, nil
}

// DecodeShow builds a Show from a shows-file row. The type column is kept
// verbatim when it is neither "Movie" nor "TV Show".
func DecodeShow(r Row) (Show, error) {
	id, err := r.required("show_id", "id")
	if err != nil {
		return Show{}, err
	}
	title, err := r.required("title")
	if err != nil {
		return Show{}, err
	}
	avg, err := parseRating(r.get("average_rating"))
	if err != nil {
		return Show{}, err
	}
	typ, _ := ParseShowType(r.get("type"))
	return Show{
		Base:        Base{ID: strings.TrimSpace(id), Title: title, AvgRating: avg},
		Type:        typ,
		Directors:   r.get("director", "directors"),
		Actors:      r.get("cast", "actors"),
		CountryCode: r.get("country", "country_code"),
		DateAdded:   r.get("date_added"),
		ReleaseYear: r.get("release_year"),
		Rating:      r.get("rating"),
		Duration:    r.get("duration"),
		Genres:      r.get("listed_in", "genres"),
		Description: r.get("description"),
	}, nil
}

func parseRating(v string) (float64, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, &FormatError{Field: "average_rating", Value: v, Err: err}
	}
	return f, nil
}

func parseCount(field, v string) (int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, &FormatError{Field: field, Value: v, Err: err}
	}
	if n < 0 {
		return 0, &FormatError{Field: field, Value: v, Err: strconv.ErrRange}
	}
	return n, nil
}

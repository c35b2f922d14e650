package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"mediarec/internal/logging"
	"mediarec/internal/media"
	"mediarec/internal/metrics"
	"mediarec/internal/recommend"
	"mediarec/internal/search"
	"mediarec/internal/stats"
	"mediarec/internal/tabular"
)

// Stats kinds.
const (
	StatsMovies = "movies"
	StatsTV     = "tv"
	StatsBooks  = "books"
)

// ErrUnknownStats is returned by Stats for a kind other than movies, tv or books.
var ErrUnknownStats = errors.New("unknown statistics kind")

// WarnNoRecommendations is the message paired with recommend.ErrNoMatches.
const WarnNoRecommendations = "No recommendations for that title"

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, search.ErrInvalidInput), errors.Is(err, ErrUnknownStats):
		return metrics.OutcomeInvalidInput
	case errors.Is(err, recommend.ErrNoMatches):
		return metrics.OutcomeNotFound
	default:
		return metrics.OutcomeError
	}
}

// message is the user-facing text for err, empty when err is not a
// validation failure or a warning.
func message(err error) string {
	var inv *search.InvalidInputError
	switch {
	case errors.As(err, &inv):
		return inv.Message
	case errors.Is(err, recommend.ErrNoMatches):
		return WarnNoRecommendations
	default:
		return ""
	}
}

func observe(op string, start time.Time, err error) {
	metrics.RecordQuery(op, outcome(err), start)
	if err != nil && outcome(err) == metrics.OutcomeError {
		logging.Error().Err(err).Str("op", op).Msg("query failed")
	}
}

func (u *Recommender) MovieList() (text, msg string, err error) {
	defer observe("movie_list", time.Now(), nil)
	t := tabular.New("Title", "Runtime")
	for sh := range u.store.ShowsOfType(media.Movie) {
		t.Append(sh.Title, sh.Duration)
	}
	return t.String(), "", nil
}

func (u *Recommender) TVList() (text, msg string, err error) {
	defer observe("tv_list", time.Now(), nil)
	t := tabular.New("Title", "Seasons")
	for sh := range u.store.ShowsOfType(media.TVShow) {
		t.Append(sh.Title, sh.Duration)
	}
	return t.String(), "", nil
}

func (u *Recommender) BookList() (text, msg string, err error) {
	defer observe("book_list", time.Now(), nil)
	t := tabular.New("Title", "Authors")
	for b := range u.store.Books() {
		t.Append(b.Title, b.Authors)
	}
	return t.String(), "", nil
}

// StatsReport is one statistics view with its rendered text.
type StatsReport struct {
	Kind string `json:"kind"`
	Data any    `json:"data"`
	Text string `json:"text"`
}

func (u *Recommender) Stats(kind string) (rep StatsReport, err error) {
	defer func(start time.Time) { observe("stats", start, err) }(time.Now())

	switch strings.ToLower(kind) {
	case StatsMovies:
		st, err := u.stats.Movies()
		if err != nil {
			return StatsReport{}, err
		}
		return StatsReport{Kind: StatsMovies, Data: st, Text: st.Text()}, nil
	case StatsTV:
		st, err := u.stats.TV()
		if err != nil {
			return StatsReport{}, err
		}
		return StatsReport{Kind: StatsTV, Data: st, Text: st.Text()}, nil
	case StatsBooks:
		st, err := u.stats.Books()
		if err != nil {
			return StatsReport{}, err
		}
		return StatsReport{Kind: StatsBooks, Data: st, Text: st.Text()}, nil
	default:
		return StatsReport{}, fmt.Errorf("%w: %q", ErrUnknownStats, kind)
	}
}

func (u *Recommender) statsText(kind string) (string, string, error) {
	rep, err := u.Stats(kind)
	if err != nil {
		return "", "", err
	}
	return rep.Text, "", nil
}

func (u *Recommender) MovieStats() (text, msg string, err error) { return u.statsText(StatsMovies) }
func (u *Recommender) TVStats() (text, msg string, err error)    { return u.statsText(StatsTV) }
func (u *Recommender) BookStats() (text, msg string, err error)  { return u.statsText(StatsBooks) }

// Ratings holds the content rating distributions of movies and TV shows.
type Ratings struct {
	Movies stats.Distribution `json:"movies"`
	TV     stats.Distribution `json:"tv"`
}

func (r Ratings) Text() string {
	var b strings.Builder
	b.WriteString("Movie Ratings:\n")
	for _, l := range r.Movies.Formatted() {
		b.WriteString(l + "\n")
	}
	b.WriteString("\nTV Show Ratings:\n")
	for _, l := range r.TV.Formatted() {
		b.WriteString(l + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (u *Recommender) Ratings() Ratings {
	defer observe("ratings", time.Now(), nil)
	return Ratings{
		Movies: u.stats.Ratings(media.Movie),
		TV:     u.stats.Ratings(media.TVShow),
	}
}

func (u *Recommender) SearchShows(q search.ShowQuery) (text, msg string, err error) {
	defer func(start time.Time) { observe("search_shows", start, err) }(time.Now())
	text, err = u.search.SearchShows(q)
	return text, message(err), err
}

func (u *Recommender) SearchBooks(q search.BookQuery) (text, msg string, err error) {
	defer func(start time.Time) { observe("search_books", start, err) }(time.Now())
	text, err = u.search.SearchBooks(q)
	return text, message(err), err
}

func (u *Recommender) FindShows(q search.ShowQuery) (shows []media.Show, msg string, err error) {
	defer func(start time.Time) { observe("find_shows", start, err) }(time.Now())
	shows, err = u.search.FindShows(q)
	return shows, message(err), err
}

func (u *Recommender) FindBooks(q search.BookQuery) (books []media.Book, msg string, err error) {
	defer func(start time.Time) { observe("find_books", start, err) }(time.Now())
	books, err = u.search.FindBooks(q)
	return books, message(err), err
}

// Recommend returns the recommendation blocks for the items of mediaType
// whose title contains title. A title with no match yields
// recommend.NoResults, the warning message and recommend.ErrNoMatches.
func (u *Recommender) Recommend(mediaType, title string) (text, msg string, err error) {
	defer func(start time.Time) { observe("recommend", start, err) }(time.Now())
	text, err = u.rec.Recommend(mediaType, title)
	if errors.Is(err, recommend.ErrNoMatches) {
		logging.Warn().Str("type", mediaType).Str("title", title).Msg("no recommendations for that title")
	}
	return text, message(err), err
}

func (u *Recommender) Suggestions(mediaType, title string) (out []recommend.Suggestion, msg string, err error) {
	defer func(start time.Time) { observe("suggestions", start, err) }(time.Now())
	out, err = u.rec.Suggestions(mediaType, title)
	return out, message(err), err
}

// Package stats computes the aggregate views over the catalog: per-type
// show statistics and book statistics.
package stats

import (
	"errors"
	"fmt"
	"iter"

	"mediarec/internal/media"
)

// Source is the part of the catalog the engine reads.
type Source interface {
	Books() iter.Seq[media.Book]
	ShowsOfType(t media.ShowType) iter.Seq[media.Show]
}

// Share is one content rating's slice of a distribution.
type Share struct {
	Rating  string  `json:"rating"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// Distribution lists shares in the order the ratings were first seen.
type Distribution []Share

// Formatted renders each share as "TV-MA: 50.00%".
func (d Distribution) Formatted() []string {
	out := make([]string, len(d))
	for i, s := range d {
		out[i] = fmt.Sprintf("%s: %.2f%%", s.Rating, s.Percent)
	}
	return out
}

func distribution(c *Counter, total int) Distribution {
	d := make(Distribution, 0, c.Len())
	for _, e := range c.Entries() {
		d = append(d, Share{Rating: e.Value, Count: e.Count, Percent: float64(e.Count) / float64(total) * 100})
	}
	return d
}

// Skip records a show left out of a lenient aggregate.
type Skip struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Reason string `json:"reason"`
}

type MovieStats struct {
	Count           int          `json:"count"`
	AverageDuration float64      `json:"average_duration_minutes"`
	Ratings         Distribution `json:"ratings"`
	Director        Entry        `json:"most_common_director"`
	Actor           Entry        `json:"most_common_actor"`
	Genre           Entry        `json:"most_common_genre"`
	Skipped         []Skip       `json:"skipped,omitempty"`
}

type TVStats struct {
	Count          int          `json:"count"`
	AverageSeasons float64      `json:"average_seasons"`
	Ratings        Distribution `json:"ratings"`
	Actor          Entry        `json:"most_common_actor"`
	Genre          Entry        `json:"most_common_genre"`
	Skipped        []Skip       `json:"skipped,omitempty"`
}

type BookStats struct {
	Count        int     `json:"count"`
	AveragePages float64 `json:"average_pages"`
	Author       Entry   `json:"most_common_author"`
	Publisher    Entry   `json:"most_common_publisher"`
}

// Engine computes statistics. By default the first malformed duration fails
// the whole aggregate.
type Engine struct {
	src      Source
	lenient  bool
	splitter media.ListSplitter
}

type Option func(*Engine)

// WithLenient makes the engine skip shows whose duration cannot be parsed.
func WithLenient(lenient bool) Option {
	return func(e *Engine) { e.lenient = lenient }
}

func WithSplitter(ls media.ListSplitter) Option {
	return func(e *Engine) { e.splitter = ls }
}

func New(src Source, opts ...Option) *Engine {
	e := &Engine{src: src, splitter: media.NewListSplitter()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// showAgg is the work shared by the movie and TV aggregates.
type showAgg struct {
	count     int
	units     int
	ratings   *Counter
	directors *Counter
	actors    *Counter
	genres    *Counter
	skipped   []Skip
}

func (e *Engine) aggregate(typ media.ShowType, parse func(string) (int, error)) (*showAgg, error) {
	agg := &showAgg{
		ratings:   NewCounter(),
		directors: NewCounter(),
		actors:    NewCounter(),
		genres:    NewCounter(),
	}
	for sh := range e.src.ShowsOfType(typ) {
		n, err := parse(sh.Duration)
		if err != nil {
			if !e.lenient {
				return nil, fmt.Errorf("show %s: %w", sh.ID, err)
			}
			agg.skipped = append(agg.skipped, Skip{ID: sh.ID, Title: sh.Title, Reason: err.Error()})
			continue
		}
		agg.count++
		agg.units += n
		agg.ratings.Add(sh.Rating)
		agg.directors.Add(e.splitter.Split(sh.Directors)...)
		agg.actors.Add(e.splitter.Split(sh.Actors)...)
		agg.genres.Add(e.splitter.Split(sh.Genres)...)
	}
	return agg, nil
}

func (a *showAgg) average() float64 {
	if a.count == 0 {
		return 0
	}
	return float64(a.units) / float64(a.count)
}

// Movies aggregates the shows of type Movie.
func (e *Engine) Movies() (MovieStats, error) {
	agg, err := e.aggregate(media.Movie, media.ParseMinutes)
	if err != nil {
		return MovieStats{}, err
	}
	return MovieStats{
		Count:           agg.count,
		AverageDuration: agg.average(),
		Ratings:         distribution(agg.ratings, agg.count),
		Director:        agg.directors.MostCommon(),
		Actor:           agg.actors.MostCommon(),
		Genre:           agg.genres.MostCommon(),
		Skipped:         agg.skipped,
	}, nil
}

// TV aggregates the shows of type TV Show. Directors are not counted.
func (e *Engine) TV() (TVStats, error) {
	agg, err := e.aggregate(media.TVShow, media.ParseSeasons)
	if err != nil {
		return TVStats{}, err
	}
	return TVStats{
		Count:          agg.count,
		AverageSeasons: agg.average(),
		Ratings:        distribution(agg.ratings, agg.count),
		Actor:          agg.actors.MostCommon(),
		Genre:          agg.genres.MostCommon(),
		Skipped:        agg.skipped,
	}, nil
}

// Ratings is the content rating distribution of one show type. It reads no
// durations and so cannot fail.
func (e *Engine) Ratings(typ media.ShowType) Distribution {
	c, n := NewCounter(), 0
	for sh := range e.src.ShowsOfType(typ) {
		c.Add(sh.Rating)
		n++
	}
	return distribution(c, n)
}

// Books aggregates every book. The authors field is counted as a whole,
// multi-author strings are not split. Page counts are validated at load time
// so this does not fail on a loaded catalog.
func (e *Engine) Books() (BookStats, error) {
	authors, publishers := NewCounter(), NewCounter()
	count, pages := 0, 0
	for b := range e.src.Books() {
		if b.NumPages < 0 {
			return BookStats{}, &media.FormatError{Field: "num_pages", Value: fmt.Sprint(b.NumPages), Err: errNegative}
		}
		count++
		pages += b.NumPages
		authors.Add(b.Authors)
		publishers.Add(b.Publisher)
	}
	st := BookStats{
		Count:     count,
		Author:    authors.MostCommon(),
		Publisher: publishers.MostCommon(),
	}
	if count > 0 {
		st.AveragePages = float64(pages) / float64(count)
	}
	return st, nil
}

var errNegative = errors.New("negative value")

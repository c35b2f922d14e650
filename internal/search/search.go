// Package search filters the catalog by case-insensitive substring criteria
// and renders the matches as aligned text.
package search

import (
	"iter"
	"strings"

	"mediarec/internal/media"
	"mediarec/internal/tabular"
)

// NoResults is returned in place of a table when nothing matches.
const NoResults = "No Results"

type Source interface {
	Books() iter.Seq[media.Book]
	ShowsOfType(t media.ShowType) iter.Seq[media.Show]
}

// ShowQuery holds the show criteria. Empty fields impose no constraint.
type ShowQuery struct {
	Type     string `json:"type" validate:"omitempty,showtype"`
	Title    string `json:"title" validate:"max=256"`
	Director string `json:"director" validate:"max=256"`
	Actor    string `json:"actor" validate:"max=256"`
	Genre    string `json:"genre" validate:"max=256"`
}

type BookQuery struct {
	Title     string `json:"title" validate:"max=256"`
	Author    string `json:"author" validate:"max=256"`
	Publisher string `json:"publisher" validate:"max=256"`
}

type Engine struct {
	src      Source
	splitter media.ListSplitter
}

type Option func(*Engine)

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

func contains(field, sub string) bool {
	return sub == "" || strings.Contains(strings.ToLower(field), sub)
}

// norm lowercases a criterion for matching. A whitespace-only criterion
// is treated as absent; otherwise the text is kept as typed.
func norm(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return strings.ToLower(s)
}

// FindShows returns the shows matching every provided criterion, in catalog
// order.
func (e *Engine) FindShows(q ShowQuery) ([]media.Show, error) {
	typ, ok := media.ParseShowType(q.Type)
	if !ok {
		return nil, NewInvalidInput(MsgSelectShowType)
	}
	title, director, actor, genre := norm(q.Title), norm(q.Director), norm(q.Actor), norm(q.Genre)
	if title == "" && director == "" && actor == "" && genre == "" {
		return nil, NewInvalidInput(MsgShowCriteria)
	}

	var out []media.Show
	for sh := range e.src.ShowsOfType(typ) {
		if !contains(sh.Title, title) || !contains(sh.Directors, director) || !contains(sh.Genres, genre) {
			continue
		}
		if actor != "" && !e.anyToken(sh.Actors, actor) {
			continue
		}
		out = append(out, sh)
	}
	return out, nil
}

func (e *Engine) anyToken(field, sub string) bool {
	for _, tok := range e.splitter.Split(field) {
		if strings.Contains(strings.ToLower(tok), sub) {
			return true
		}
	}
	return false
}

func (e *Engine) FindBooks(q BookQuery) ([]media.Book, error) {
	title, author, publisher := norm(q.Title), norm(q.Author), norm(q.Publisher)
	if title == "" && author == "" && publisher == "" {
		return nil, NewInvalidInput(MsgBookCriteria)
	}

	var out []media.Book
	for b := range e.src.Books() {
		if contains(b.Title, title) && contains(b.Authors, author) && contains(b.Publisher, publisher) {
			out = append(out, b)
		}
	}
	return out, nil
}

// SearchShows is FindShows rendered by RenderShows.
func (e *Engine) SearchShows(q ShowQuery) (string, error) {
	shows, err := e.FindShows(q)
	if err != nil {
		return "", err
	}
	return RenderShows(shows), nil
}

// RenderShows lays out shows as a Title/Director/Actors/Genres table, or
// returns NoResults for an empty slice.
func RenderShows(shows []media.Show) string {
	if len(shows) == 0 {
		return NoResults
	}
	t := tabular.New("Title", "Director", "Actors", "Genres")
	for _, sh := range shows {
		t.Append(sh.Title, sh.Directors, sh.Actors, sh.Genres)
	}
	return t.String()
}

func (e *Engine) SearchBooks(q BookQuery) (string, error) {
	books, err := e.FindBooks(q)
	if err != nil {
		return "", err
	}
	return RenderBooks(books), nil
}

func RenderBooks(books []media.Book) string {
	if len(books) == 0 {
		return NoResults
	}
	t := tabular.New("Title", "Author", "Publisher")
	for _, b := range books {
		t.Append(b.Title, b.Authors, b.Publisher)
	}
	return t.String()
}

// Package recommend follows the association index from the items matching a
// title to the related items of the other kind.
package recommend

import (
	"errors"
	"iter"
	"slices"
	"strings"

	"mediarec/internal/media"
	"mediarec/internal/search"
)

// ErrNoMatches means no item of the requested type matched the title.
var ErrNoMatches = errors.New("no recommendations for that title")

const (
	NoResults         = "No results"
	NoResultsFound    = "No results found."
	NoAssociatedBooks = "No associated books found for this title."
	NoAssociatedShows = "No associated movies or TV shows found for this book."
)

type Catalog interface {
	Books() iter.Seq[media.Book]
	ShowsOfType(t media.ShowType) iter.Seq[media.Show]
	Book(id string) (media.Book, bool)
	Show(id string) (media.Show, bool)
}

type Associations interface {
	RelatedIDs(id string) []string
	Count(a, b string) int
}

type Engine struct {
	catalog Catalog
	assoc   Associations
}

func New(catalog Catalog, assoc Associations) *Engine {
	return &Engine{catalog: catalog, assoc: assoc}
}

// Suggestion is one related item reached from a matched source item.
type Suggestion struct {
	SourceID    string      `json:"source_id"`
	SourceTitle string      `json:"source_title"`
	Count       int         `json:"count"`
	Book        *media.Book `json:"book,omitempty"`
	Show        *media.Show `json:"show,omitempty"`
}

// match holds the resolvable related items of one source item, in
// association order.
type match struct {
	related []Suggestion
}

func (e *Engine) matches(mediaType, title string) ([]match, media.MediaType, error) {
	mt, err := media.ParseMediaType(mediaType)
	if err != nil {
		return nil, "", search.NewInvalidInput(search.MsgSelectMediaType)
	}
	needle := strings.ToLower(strings.TrimSpace(title))

	var out []match
	if st, ok := mt.ShowType(); ok {
		for sh := range e.catalog.ShowsOfType(st) {
			if !strings.Contains(strings.ToLower(sh.Title), needle) {
				continue
			}
			var m match
			for _, id := range e.assoc.RelatedIDs(sh.ID) {
				b, ok := e.catalog.Book(id)
				if !ok {
					continue
				}
				m.related = append(m.related, Suggestion{
					SourceID: sh.ID, SourceTitle: sh.Title, Count: e.assoc.Count(sh.ID, id), Book: &b,
				})
			}
			out = append(out, m)
		}
	} else {
		for b := range e.catalog.Books() {
			if !strings.Contains(strings.ToLower(b.Title), needle) {
				continue
			}
			var m match
			for _, id := range e.assoc.RelatedIDs(b.ID) {
				sh, ok := e.catalog.Show(id)
				if !ok {
					continue
				}
				m.related = append(m.related, Suggestion{
					SourceID: b.ID, SourceTitle: b.Title, Count: e.assoc.Count(b.ID, id), Show: &sh,
				})
			}
			out = append(out, m)
		}
	}
	if len(out) == 0 {
		return nil, mt, ErrNoMatches
	}
	return out, mt, nil
}

// Recommend renders one block per related item of every match, or a
// placeholder for a match with nothing related. When nothing matches it
// returns NoResults together with ErrNoMatches.
func (e *Engine) Recommend(mediaType, title string) (string, error) {
	ms, mt, err := e.matches(mediaType, title)
	if errors.Is(err, ErrNoMatches) {
		return NoResults, err
	}
	if err != nil {
		return "", err
	}

	placeholder := NoAssociatedBooks
	if mt == media.MediaBook {
		placeholder = NoAssociatedShows
	}
	var blocks []string
	for _, m := range ms {
		if len(m.related) == 0 {
			blocks = append(blocks, placeholder)
			continue
		}
		for _, s := range m.related {
			if s.Book != nil {
				blocks = append(blocks, BookDump(*s.Book))
			} else {
				blocks = append(blocks, ShowDump(*s.Show))
			}
		}
	}
	if len(blocks) == 0 {
		return NoResultsFound, nil
	}
	return strings.Join(blocks, "\n"), nil
}

// Suggestions returns the related items of every match, strongest
// co-occurrence first. Equal counts keep association order.
func (e *Engine) Suggestions(mediaType, title string) ([]Suggestion, error) {
	ms, _, err := e.matches(mediaType, title)
	if err != nil {
		return nil, err
	}
	var out []Suggestion
	for _, m := range ms {
		out = append(out, m.related...)
	}
	slices.SortStableFunc(out, func(a, b Suggestion) int {
		return b.Count - a.Count
	})
	return out, nil
}

// Package catalog is the in-memory store of books and shows, keyed by id.
package catalog

import (
	"errors"
	"fmt"
	"iter"
	"strings"
	"sync"

	"mediarec/internal/media"
)

// LoadMode controls what a load does to the rows already in a table.
type LoadMode int

const (
	// LoadMerge upserts: new ids are appended, existing ids are overwritten in place.
	LoadMerge LoadMode = iota
	// LoadReplace drops the previous table before applying the batch.
	LoadReplace
)

func (m LoadMode) String() string {
	if m == LoadReplace {
		return "replace"
	}
	return "merge"
}

func ParseLoadMode(s string) (LoadMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "merge":
		return LoadMerge, nil
	case "replace":
		return LoadReplace, nil
	default:
		return 0, fmt.Errorf("unknown load mode %q", s)
	}
}

// table is an insertion-ordered map. Once published to readers it is never
// mutated; writers clone it.
type table[T any] struct {
	order []string
	rows  map[string]T
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: map[string]T{}}
}

func (t *table[T]) clone() *table[T] {
	c := &table[T]{
		order: make([]string, len(t.order), len(t.order)+1),
		rows:  make(map[string]T, len(t.rows)),
	}
	copy(c.order, t.order)
	for k, v := range t.rows {
		c.rows[k] = v
	}
	return c
}

func (t *table[T]) put(id string, v T) {
	if _, ok := t.rows[id]; !ok {
		t.order = append(t.order, id)
	}
	t.rows[id] = v
}

func (t *table[T]) all() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, id := range t.order {
			if !yield(t.rows[id]) {
				return
			}
		}
	}
}

// Store owns the book and show tables. The zero value is not usable; call New.
type Store struct {
	mu    sync.RWMutex
	books *table[media.Book]
	shows *table[media.Show]
	mode  LoadMode
}

type Option func(*Store)

func WithLoadMode(m LoadMode) Option {
	return func(s *Store) { s.mode = m }
}

func New(opts ...Option) *Store {
	s := &Store{
		books: newTable[media.Book](),
		shows: newTable[media.Show](),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Mode() LoadMode { return s.mode }

// LoadBooks decodes every row and, only if all of them decode, applies the
// batch. It returns the number of rows applied.
func (s *Store) LoadBooks(rows []media.Row) (int, error) {
	books := make([]media.Book, 0, len(rows))
	for i, r := range rows {
		b, err := media.DecodeBook(r)
		if err != nil {
			return 0, withRow(err, i+1)
		}
		books = append(books, b)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.books = apply(s.books, books, s.mode == LoadReplace, media.Book.ItemID)
	return len(books), nil
}

// LoadShows is LoadBooks for the shows table.
func (s *Store) LoadShows(rows []media.Row) (int, error) {
	shows := make([]media.Show, 0, len(rows))
	for i, r := range rows {
		sh, err := media.DecodeShow(r)
		if err != nil {
			return 0, withRow(err, i+1)
		}
		shows = append(shows, sh)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shows = apply(s.shows, shows, s.mode == LoadReplace, media.Show.ItemID)
	return len(shows), nil
}

// PutBooks upserts already decoded books.
func (s *Store) PutBooks(books []media.Book) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.books = apply(s.books, books, false, media.Book.ItemID)
}

// PutShows upserts already decoded shows.
func (s *Store) PutShows(shows []media.Show) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shows = apply(s.shows, shows, false, media.Show.ItemID)
}

func apply[T any](cur *table[T], batch []T, replace bool, id func(T) string) *table[T] {
	next := newTable[T]()
	if !replace {
		next = cur.clone()
	}
	for _, v := range batch {
		next.put(id(v), v)
	}
	return next
}

func withRow(err error, row int) error {
	var fe *media.FormatError
	if errors.As(err, &fe) {
		c := *fe
		c.Row = row
		return &c
	}
	return fmt.Errorf("row %d: %w", row, err)
}

// Books yields every book in insertion order. The sequence is bound to the
// table as it was when Books was called and can be ranged over repeatedly.
func (s *Store) Books() iter.Seq[media.Book] {
	s.mu.RLock()
	t := s.books
	s.mu.RUnlock()
	return t.all()
}

func (s *Store) Shows() iter.Seq[media.Show] {
	s.mu.RLock()
	t := s.shows
	s.mu.RUnlock()
	return t.all()
}

// ShowsOfType yields the shows whose type equals typ.
func (s *Store) ShowsOfType(typ media.ShowType) iter.Seq[media.Show] {
	all := s.Shows()
	return func(yield func(media.Show) bool) {
		for sh := range all {
			if sh.Type != typ {
				continue
			}
			if !yield(sh) {
				return
			}
		}
	}
}

func (s *Store) Book(id string) (media.Book, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.books.rows[id]
	return b, ok
}

func (s *Store) Show(id string) (media.Show, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sh, ok := s.shows.rows[id]
	return sh, ok
}

func (s *Store) BookCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.books.rows)
}

func (s *Store) ShowCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.shows.rows)
}

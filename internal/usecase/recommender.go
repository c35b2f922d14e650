// Package usecase composes the catalog, the association index and the query
// engines behind the method set the presentation layers call.
package usecase

import (
	"context"
	"fmt"
	"io"
	"sync"

	"mediarec/internal/association"
	"mediarec/internal/catalog"
	"mediarec/internal/ingest"
	"mediarec/internal/logging"
	"mediarec/internal/media"
	"mediarec/internal/metrics"
	"mediarec/internal/recommend"
	"mediarec/internal/search"
	"mediarec/internal/stats"
)

type Options struct {
	LoadMode       catalog.LoadMode
	SelfPairs      association.SelfPairPolicy
	LenientStats   bool
	ListDelimiters []string
}

// Recommender owns one catalog and one association index. Loads and queries
// may run from different goroutines.
type Recommender struct {
	store  *catalog.Store
	index  *association.Index
	stats  *stats.Engine
	search *search.Engine
	rec    *recommend.Engine

	mu     sync.RWMutex
	loaded map[string]bool
}

func New(opts Options) *Recommender {
	store := catalog.New(catalog.WithLoadMode(opts.LoadMode))
	index := association.New(association.WithSelfPairPolicy(opts.SelfPairs))
	splitter := media.NewListSplitter(opts.ListDelimiters...)
	return &Recommender{
		store:  store,
		index:  index,
		stats:  stats.New(store, stats.WithLenient(opts.LenientStats), stats.WithSplitter(splitter)),
		search: search.New(store, search.WithSplitter(splitter)),
		rec:    recommend.New(store, index),
		loaded: map[string]bool{},
	}
}

var _ ingest.Loader = (*Recommender)(nil)

// Store exposes the catalog for record lookups.
func (u *Recommender) Store() *catalog.Store { return u.store }

func (u *Recommender) LoadBooks(ctx context.Context, r io.Reader) (int, error) {
	return u.load(ctx, ingest.KindBooks, func() (int, error) {
		rows, err := ingest.ReadRows(r)
		if err != nil {
			return 0, err
		}
		return u.store.LoadBooks(rows)
	}, u.store.BookCount)
}

func (u *Recommender) LoadShows(ctx context.Context, r io.Reader) (int, error) {
	return u.load(ctx, ingest.KindShows, func() (int, error) {
		rows, err := ingest.ReadRows(r)
		if err != nil {
			return 0, err
		}
		return u.store.LoadShows(rows)
	}, u.store.ShowCount)
}

// LoadAssociations adds pairs to the index. Counts accumulate across calls.
func (u *Recommender) LoadAssociations(ctx context.Context, r io.Reader) (int, error) {
	return u.load(ctx, ingest.KindAssociations, func() (int, error) {
		pairs, err := ingest.ReadPairs(r)
		if err != nil {
			return 0, err
		}
		return u.index.Load(pairs)
	}, u.index.Len)
}

func (u *Recommender) load(ctx context.Context, kind string, apply func() (int, error), size func() int) (int, error) {
	n, err := apply()
	metrics.RecordLoad(kind, n, err)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("kind", kind).Msg("load rejected")
		return 0, fmt.Errorf("load %s: %w", kind, err)
	}
	total := size()
	metrics.SetCatalogItems(kind, total)

	u.mu.Lock()
	u.loaded[kind] = true
	u.mu.Unlock()

	logging.Ctx(ctx).Info().Str("kind", kind).Int("rows", n).Int("total", total).Msg("loaded")
	return n, nil
}

// Ready reports whether books, shows and associations have each been loaded
// at least once.
func (u *Recommender) Ready() bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.loaded[ingest.KindBooks] && u.loaded[ingest.KindShows] && u.loaded[ingest.KindAssociations]
}

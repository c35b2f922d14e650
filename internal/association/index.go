package association

import (
	"fmt"
	"sync"
)

type related struct {
	order  []string
	counts map[string]int
}

func (r *related) clone() *related {
	c := &related{
		order:  make([]string, len(r.order)),
		counts: make(map[string]int, len(r.counts)),
	}
	copy(c.order, r.order)
	for k, v := range r.counts {
		c.counts[k] = v
	}
	return c
}

func (r *related) inc(id string) {
	if _, ok := r.counts[id]; !ok {
		r.order = append(r.order, id)
	}
	r.counts[id]++
}

// Index maps id -> related id -> count. Every count is at least 1 and the
// relation is symmetric. Loads accumulate; nothing ever resets the index.
type Index struct {
	mu     sync.RWMutex
	table  map[string]*related
	pairs  int
	policy SelfPairPolicy
}

type Option func(*Index)

func WithSelfPairPolicy(p SelfPairPolicy) Option {
	return func(ix *Index) { ix.policy = p }
}

func New(opts ...Option) *Index {
	ix := &Index{table: map[string]*related{}}
	for _, opt := range opts {
		opt(ix)
	}
	return ix
}

// Add records a single association.
func (ix *Index) Add(a, b string) error {
	_, err := ix.Load([]Pair{{A: a, B: b}})
	return err
}

// Load applies a batch of pairs and returns how many were counted. The batch
// is built on a copy of the touched entries and swapped in under the write
// lock, so a reader sees either none or all of it.
func (ix *Index) Load(pairs []Pair) (int, error) {
	if ix.policy == SelfPairReject {
		for i, p := range pairs {
			if p.A == p.B {
				return 0, fmt.Errorf("pair %d (%s, %s): %w", i+1, p.A, p.B, ErrSelfAssociation)
			}
		}
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()

	next := make(map[string]*related, len(ix.table))
	for k, v := range ix.table {
		next[k] = v
	}
	touched := map[string]bool{}
	entry := func(id string) *related {
		if touched[id] {
			return next[id]
		}
		touched[id] = true
		if r, ok := next[id]; ok {
			next[id] = r.clone()
		} else {
			next[id] = &related{counts: map[string]int{}}
		}
		return next[id]
	}

	n := 0
	for _, p := range pairs {
		if p.A == p.B {
			if ix.policy == SelfPairIgnore {
				continue
			}
			// both directions land on the same cell
			e := entry(p.A)
			e.inc(p.A)
			e.inc(p.A)
			n++
			continue
		}
		entry(p.A).inc(p.B)
		entry(p.B).inc(p.A)
		n++
	}

	ix.table = next
	ix.pairs += n
	return n, nil
}

// Related returns a copy of the counts for id; unknown ids give an empty map.
func (ix *Index) Related(id string) map[string]int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	r, ok := ix.table[id]
	if !ok {
		return map[string]int{}
	}
	out := make(map[string]int, len(r.counts))
	for k, v := range r.counts {
		out[k] = v
	}
	return out
}

// RelatedIDs returns the ids related to id in first-insertion order.
func (ix *Index) RelatedIDs(id string) []string {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	r, ok := ix.table[id]
	if !ok {
		return nil
	}
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

func (ix *Index) Count(a, b string) int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	if r, ok := ix.table[a]; ok {
		return r.counts[b]
	}
	return 0
}

// Len is the number of ids with at least one relation.
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.table)
}

// Pairs is the total number of pairs counted so far.
func (ix *Index) Pairs() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.pairs
}

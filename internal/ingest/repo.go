package ingest

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

type Repository interface {
	CreateRun(ctx context.Context, run *Run) (string, error)
	UpdateRun(ctx context.Context, run *Run) error
	ListRuns(ctx context.Context) ([]Run, error)
}

// MemoryRepo keeps the run history of the process.
type MemoryRepo struct {
	mu    sync.RWMutex
	order []string
	runs  map[string]Run
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{runs: map[string]Run{}}
}

func (r *MemoryRepo) CreateRun(ctx context.Context, run *Run) (string, error) {
	id := uuid.New().String()
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *run
	cp.ID = id
	r.runs[id] = cp
	r.order = append(r.order, id)
	return id, nil
}

func (r *MemoryRepo) UpdateRun(ctx context.Context, run *Run) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.runs[run.ID]; !ok {
		return fmt.Errorf("run %s not found", run.ID)
	}
	r.runs[run.ID] = *run
	return nil
}

// ListRuns returns every run, most recent first.
func (r *MemoryRepo) ListRuns(ctx context.Context) ([]Run, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Run, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		out = append(out, r.runs[r.order[i]])
	}
	return out, nil
}

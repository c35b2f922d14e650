package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"mediarec/internal/logging"
)

// ErrSourceUnavailable wraps failures to open a source file.
var ErrSourceUnavailable = errors.New("source unavailable")

// ErrUnknownKind is returned by Load for a kind other than books, shows or
// associations.
var ErrUnknownKind = errors.New("unknown load kind")

// Loader applies parsed sources. The query façade implements it.
type Loader interface {
	LoadBooks(ctx context.Context, r io.Reader) (int, error)
	LoadShows(ctx context.Context, r io.Reader) (int, error)
	LoadAssociations(ctx context.Context, r io.Reader) (int, error)
}

type Service struct {
	loader Loader
	repo   Repository
	open   func(path string) (io.ReadCloser, error)
}

func NewService(loader Loader, repo Repository) *Service {
	return &Service{
		loader: loader,
		repo:   repo,
		open:   func(path string) (io.ReadCloser, error) { return os.Open(path) },
	}
}

// track creates a run record and returns the func that closes it.
func (s *Service) track(ctx context.Context, sources []string) (*Run, func(err error), error) {
	run := &Run{
		Status:    StatusRunning,
		Sources:   sources,
		StartedAt: time.Now(),
	}
	id, err := s.repo.CreateRun(ctx, run)
	if err != nil {
		return nil, nil, err
	}
	run.ID = id

	finish := func(err error) {
		now := time.Now()
		run.FinishedAt = &now
		if err != nil && run.Error == "" {
			run.Error = err.Error()
		}
		if run.Error != "" {
			run.Status = StatusFailed
		} else {
			run.Status = StatusCompleted
		}
		if updateErr := s.repo.UpdateRun(ctx, run); updateErr != nil {
			logging.Ctx(ctx).Error().Err(updateErr).Str("run_id", run.ID).Msg("failed to update ingest run")
		}
		ev := logging.Ctx(ctx).Info()
		if run.Status == StatusFailed {
			ev = logging.Ctx(ctx).Warn()
		}
		ev.Str("run_id", run.ID).
			Str("status", run.Status).
			Int("books", run.BooksLoaded).
			Int("shows", run.ShowsLoaded).
			Int("pairs", run.PairsLoaded).
			Dur("took", now.Sub(run.StartedAt)).
			Str("error", run.Error).
			Msg("ingest run finished")
	}
	return run, finish, nil
}

// Run loads books, then shows, then associations from src. The first
// failure stops the run; what was loaded before it stays loaded.
func (s *Service) Run(ctx context.Context, src Sources) (_ *Run, err error) {
	steps := []struct {
		kind string
		path string
	}{
		{KindBooks, src.BooksPath},
		{KindShows, src.ShowsPath},
		{KindAssociations, src.AssociationsPath},
	}
	var names []string
	for _, st := range steps {
		if st.path != "" {
			names = append(names, st.path)
		}
	}

	run, finish, err := s.track(ctx, names)
	if err != nil {
		return nil, err
	}
	defer func() { finish(err) }()

	for _, st := range steps {
		if st.path == "" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return run, err
		}
		if err := s.loadFile(ctx, run, st.kind, st.path); err != nil {
			return run, err
		}
	}
	return run, nil
}

func (s *Service) loadFile(ctx context.Context, run *Run, kind, path string) error {
	f, err := s.open(path)
	if err != nil {
		return fmt.Errorf("%s %s: %w: %w", kind, path, ErrSourceUnavailable, err)
	}
	defer f.Close()

	if err := s.apply(ctx, run, kind, f); err != nil {
		return fmt.Errorf("%s %s: %w", kind, path, err)
	}
	return nil
}

func (s *Service) apply(ctx context.Context, run *Run, kind string, r io.Reader) error {
	switch kind {
	case KindBooks:
		n, err := s.loader.LoadBooks(ctx, r)
		run.BooksLoaded += n
		return err
	case KindShows:
		n, err := s.loader.LoadShows(ctx, r)
		run.ShowsLoaded += n
		return err
	case KindAssociations:
		n, err := s.loader.LoadAssociations(ctx, r)
		run.PairsLoaded += n
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Load applies a single source read from r, recorded as its own run.
func (s *Service) Load(ctx context.Context, kind string, r io.Reader) (_ *Run, err error) {
	switch kind {
	case KindBooks, KindShows, KindAssociations:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	run, finish, err := s.track(ctx, []string{kind})
	if err != nil {
		return nil, err
	}
	defer func() { finish(err) }()

	if err := s.apply(ctx, run, kind, r); err != nil {
		return run, err
	}
	return run, nil
}

func (s *Service) Runs(ctx context.Context) ([]Run, error) {
	return s.repo.ListRuns(ctx)
}

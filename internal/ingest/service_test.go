package ingest

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockLoader struct {
	mock.Mock
}

func (m *mockLoader) LoadBooks(ctx context.Context, r io.Reader) (int, error) {
	args := m.Called(ctx, r)
	return args.Int(0), args.Error(1)
}

func (m *mockLoader) LoadShows(ctx context.Context, r io.Reader) (int, error) {
	args := m.Called(ctx, r)
	return args.Int(0), args.Error(1)
}

func (m *mockLoader) LoadAssociations(ctx context.Context, r io.Reader) (int, error) {
	args := m.Called(ctx, r)
	return args.Int(0), args.Error(1)
}

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) CreateRun(ctx context.Context, run *Run) (string, error) {
	args := m.Called(ctx, run)
	return args.String(0), args.Error(1)
}

func (m *mockRepo) UpdateRun(ctx context.Context, run *Run) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *mockRepo) ListRuns(ctx context.Context) ([]Run, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Run), args.Error(1)
}

func writeFiles(t *testing.T) Sources {
	t.Helper()
	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
		return p
	}
	return Sources{
		BooksPath:        write("books.csv", "bookID,title\n1,Dune\n"),
		ShowsPath:        write("shows.csv", "show_id,title,type\n101,Dune: Part One,Movie\n"),
		AssociationsPath: write("assoc.csv", "1,101\n"),
	}
}

func TestService_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("loads every source in order", func(t *testing.T) {
		mLoader := new(mockLoader)
		mRepo := new(mockRepo)
		s := NewService(mLoader, mRepo)
		src := writeFiles(t)

		mRepo.On("CreateRun", ctx, mock.Anything).Return("run-1", nil)
		mRepo.On("UpdateRun", ctx, mock.MatchedBy(func(run *Run) bool {
			return run.Status == StatusCompleted && run.ID == "run-1" &&
				run.BooksLoaded == 1 && run.ShowsLoaded == 1 && run.PairsLoaded == 1
		})).Return(nil)

		var order []string
		mLoader.On("LoadBooks", ctx, mock.Anything).Run(func(mock.Arguments) { order = append(order, "books") }).Return(1, nil)
		mLoader.On("LoadShows", ctx, mock.Anything).Run(func(mock.Arguments) { order = append(order, "shows") }).Return(1, nil)
		mLoader.On("LoadAssociations", ctx, mock.Anything).Run(func(mock.Arguments) { order = append(order, "associations") }).Return(1, nil)

		run, err := s.Run(ctx, src)
		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, run.Status)
		assert.NotNil(t, run.FinishedAt)
		assert.Equal(t, []string{"books", "shows", "associations"}, order)
		mLoader.AssertExpectations(t)
		mRepo.AssertExpectations(t)
	})

	t.Run("missing file fails the run", func(t *testing.T) {
		mLoader := new(mockLoader)
		mRepo := new(mockRepo)
		s := NewService(mLoader, mRepo)
		src := writeFiles(t)
		src.ShowsPath = filepath.Join(t.TempDir(), "nope.csv")

		mRepo.On("CreateRun", ctx, mock.Anything).Return("run-2", nil)
		mRepo.On("UpdateRun", ctx, mock.MatchedBy(func(run *Run) bool {
			return run.Status == StatusFailed && run.Error != ""
		})).Return(nil)
		mLoader.On("LoadBooks", ctx, mock.Anything).Return(1, nil)

		run, err := s.Run(ctx, src)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSourceUnavailable)
		assert.ErrorIs(t, err, fs.ErrNotExist)
		assert.Equal(t, StatusFailed, run.Status)
		assert.Equal(t, 1, run.BooksLoaded)
		mLoader.AssertNotCalled(t, "LoadShows", mock.Anything, mock.Anything)
		mLoader.AssertNotCalled(t, "LoadAssociations", mock.Anything, mock.Anything)
	})

	t.Run("loader error is reported", func(t *testing.T) {
		mLoader := new(mockLoader)
		mRepo := new(mockRepo)
		s := NewService(mLoader, mRepo)
		src := Sources{BooksPath: writeFiles(t).BooksPath}

		mRepo.On("CreateRun", ctx, mock.Anything).Return("run-3", nil)
		mRepo.On("UpdateRun", ctx, mock.Anything).Return(nil)
		mLoader.On("LoadBooks", ctx, mock.Anything).Return(0, errors.New("bad row"))

		run, err := s.Run(ctx, src)
		assert.ErrorContains(t, err, "bad row")
		assert.Equal(t, StatusFailed, run.Status)
		assert.Contains(t, run.Error, "bad row")
	})

	t.Run("create run failure", func(t *testing.T) {
		mRepo := new(mockRepo)
		s := NewService(new(mockLoader), mRepo)
		mRepo.On("CreateRun", ctx, mock.Anything).Return("", errors.New("full"))

		run, err := s.Run(ctx, Sources{})
		assert.Error(t, err)
		assert.Nil(t, run)
	})

	t.Run("cancelled context", func(t *testing.T) {
		mLoader := new(mockLoader)
		s := NewService(mLoader, NewMemoryRepo())
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		run, err := s.Run(cctx, writeFiles(t))
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, StatusFailed, run.Status)
		mLoader.AssertNotCalled(t, "LoadBooks", mock.Anything, mock.Anything)
	})
}

func TestService_Load(t *testing.T) {
	ctx := context.Background()
	mLoader := new(mockLoader)
	repo := NewMemoryRepo()
	s := NewService(mLoader, repo)

	mLoader.On("LoadAssociations", ctx, mock.Anything).Return(2, nil)

	run, err := s.Load(ctx, KindAssociations, strings.NewReader("1,101\n2,102\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, run.PairsLoaded)
	assert.Equal(t, StatusCompleted, run.Status)

	_, err = s.Load(ctx, "movies", strings.NewReader(""))
	assert.ErrorIs(t, err, ErrUnknownKind)

	runs, err := s.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, run.ID, runs[0].ID)
	assert.Equal(t, StatusCompleted, runs[0].Status)
}

func TestMemoryRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo()

	id1, err := repo.CreateRun(ctx, &Run{Status: StatusRunning})
	require.NoError(t, err)
	id2, err := repo.CreateRun(ctx, &Run{Status: StatusRunning})
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)

	require.NoError(t, repo.UpdateRun(ctx, &Run{ID: id1, Status: StatusCompleted}))
	assert.Error(t, repo.UpdateRun(ctx, &Run{ID: "missing"}))

	runs, err := repo.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, id2, runs[0].ID)
	assert.Equal(t, StatusCompleted, runs[1].Status)
}

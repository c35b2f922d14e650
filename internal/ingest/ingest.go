package ingest

import (
	"time"
)

const (
	StatusRunning   = "RUNNING"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
)

// Kinds accepted by Service.Load.
const (
	KindBooks        = "books"
	KindShows        = "shows"
	KindAssociations = "associations"
)

type Run struct {
	ID          string     `json:"id"`
	StartedAt   time.Time  `json:"started_at"`
	FinishedAt  *time.Time `json:"finished_at,omitempty"`
	Status      string     `json:"status"` // RUNNING, COMPLETED, FAILED
	Sources     []string   `json:"sources"`
	BooksLoaded int        `json:"books_loaded"`
	ShowsLoaded int        `json:"shows_loaded"`
	PairsLoaded int        `json:"pairs_loaded"`
	Error       string     `json:"error,omitempty"`
}

// Sources names the files of one run. An empty path is skipped.
type Sources struct {
	BooksPath        string
	ShowsPath        string
	AssociationsPath string
}

package catalog

import "mediarec/internal/media"

//go:generate mockgen -source=ports.go -destination=mock_reader.go -package=catalog

// Reader is the lookup side of the Store used by the HTTP handler.
type Reader interface {
	Book(id string) (media.Book, bool)
	Show(id string) (media.Show, bool)
}

var _ Reader = (*Store)(nil)

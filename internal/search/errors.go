package search

import "errors"

// ErrInvalidInput is matched by every *InvalidInputError.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError carries the message to show the user verbatim.
type InvalidInputError struct {
	Message string
}

func NewInvalidInput(msg string) *InvalidInputError {
	return &InvalidInputError{Message: msg}
}

func (e *InvalidInputError) Error() string { return e.Message }

func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }

const (
	MsgSelectShowType  = "Please select 'Movie' or 'TV Show' from Type first."
	MsgShowCriteria    = "Please enter information for Title, Director, Actor, and/or Genre."
	MsgBookCriteria    = "Please enter information for Title, Author, and/or Publisher."
	MsgSelectMediaType = "Please select 'Movie', 'TV Show' or 'Book' first."
)

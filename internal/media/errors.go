package media

import (
	"errors"
	"fmt"
)

// ErrFormat is matched by every *FormatError.
var ErrFormat = errors.New("malformed field")

// FormatError reports a field that could not be decoded or coerced.
// Row is the 1-based data row within its load batch, or 0 when the value
// did not come from a batch.
type FormatError struct {
	Field string
	Value string
	Row   int
	Err   error
}

func (e *FormatError) Error() string {
	msg := fmt.Sprintf("field %s: malformed value %q", e.Field, e.Value)
	if e.Row > 0 {
		msg = fmt.Sprintf("row %d: %s", e.Row, msg)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FormatError) Unwrap() error { return e.Err }

func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// errMissing is wrapped when a required column is absent or empty.
var errMissing = errors.New("required field is missing")

// Package association keeps the symmetric co-occurrence counts between
// record ids. The index is type-agnostic: a book id and a show id are just
// strings.
package association

import (
	"errors"
	"fmt"
	"strings"

	"mediarec/internal/media"
)

// ErrSelfAssociation is returned by a SelfPairReject index for rows like (a, a).
var ErrSelfAssociation = errors.New("self association")

// Pair is one association row. Order is irrelevant.
type Pair struct {
	A string
	B string
}

// SelfPairPolicy decides what happens to (a, a) rows.
type SelfPairPolicy int

const (
	// SelfPairCount increments [a][a] twice per row, once for each direction.
	SelfPairCount SelfPairPolicy = iota
	// SelfPairIgnore drops the row.
	SelfPairIgnore
	// SelfPairReject fails the whole batch.
	SelfPairReject
)

func (p SelfPairPolicy) String() string {
	switch p {
	case SelfPairCount:
		return "count"
	case SelfPairIgnore:
		return "ignore"
	case SelfPairReject:
		return "reject"
	default:
		return fmt.Sprintf("SelfPairPolicy(%d)", int(p))
	}
}

// ParseSelfPairPolicy reads the config spelling of a policy. Empty means count.
func ParseSelfPairPolicy(s string) (SelfPairPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "count":
		return SelfPairCount, nil
	case "ignore":
		return SelfPairIgnore, nil
	case "reject":
		return SelfPairReject, nil
	default:
		return 0, fmt.Errorf("unknown self pair policy %q", s)
	}
}

// ParsePairs turns raw two-column records into pairs. Ids are trimmed.
func ParsePairs(records [][]string) ([]Pair, error) {
	pairs := make([]Pair, 0, len(records))
	for i, rec := range records {
		if len(rec) != 2 {
			return nil, &media.FormatError{
				Field: "association",
				Value: strings.Join(rec, ","),
				Row:   i + 1,
				Err:   fmt.Errorf("expected 2 columns, got %d", len(rec)),
			}
		}
		a, b := strings.TrimSpace(rec[0]), strings.TrimSpace(rec[1])
		if a == "" || b == "" {
			return nil, &media.FormatError{
				Field: "association",
				Value: strings.Join(rec, ","),
				Row:   i + 1,
				Err:   errors.New("empty id"),
			}
		}
		pairs = append(pairs, Pair{A: a, B: b})
	}
	return pairs, nil
}

package media

import (
	"strconv"
	"strings"
)

const (
	minutesSuffix = " min"
	seasonsSuffix = " Seasons"
	seasonSuffix  = " Season"
)

// ParseMinutes reads a movie duration such as "142 min".
func ParseMinutes(duration string) (int, error) {
	return parseUnit("duration", duration, minutesSuffix)
}

// ParseSeasons reads a series duration such as "5 Seasons" or "1 Season".
// The plural suffix is checked first.
func ParseSeasons(duration string) (int, error) {
	if strings.HasSuffix(duration, seasonsSuffix) {
		return parseUnit("duration", duration, seasonsSuffix)
	}
	return parseUnit("duration", duration, seasonSuffix)
}

func parseUnit(field, value, suffix string) (int, error) {
	if !strings.HasSuffix(value, suffix) {
		return 0, &FormatError{Field: field, Value: value, Err: errMissingUnit(suffix)}
	}
	n, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(value, suffix)))
	if err != nil {
		return 0, &FormatError{Field: field, Value: value, Err: err}
	}
	return n, nil
}

type errMissingUnit string

func (e errMissingUnit) Error() string {
	return "missing unit " + strconv.Quote(string(e))
}

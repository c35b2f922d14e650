package media

import "strings"

// DefaultListDelimiters are the separators used by the show files for
// directors, cast and genres. Both spellings occur in the wild.
var DefaultListDelimiters = []string{`\`, ", "}

// ListSplitter tokenizes delimiter-joined fields.
type ListSplitter struct {
	delims []string
}

// NewListSplitter returns a splitter over delims, or over
// DefaultListDelimiters when none are given.
func NewListSplitter(delims ...string) ListSplitter {
	var kept []string
	for _, d := range delims {
		if d != "" {
			kept = append(kept, d)
		}
	}
	if len(kept) == 0 {
		kept = DefaultListDelimiters
	}
	return ListSplitter{delims: kept}
}

// Split returns the trimmed, non-empty tokens of s in order.
func (ls ListSplitter) Split(s string) []string {
	if len(ls.delims) == 0 {
		ls = NewListSplitter()
	}
	first := ls.delims[0]
	for _, d := range ls.delims[1:] {
		s = strings.ReplaceAll(s, d, first)
	}
	parts := strings.Split(s, first)
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// SplitList splits s with the default delimiters.
func SplitList(s string) []string {
	return NewListSplitter().Split(s)
}

package stats

import (
	"fmt"
	"strings"
)

func (e Entry) times() string {
	return fmt.Sprintf("%s (%d times)", e.Value, e.Count)
}

func ratingsBlock(b *strings.Builder, d Distribution) {
	b.WriteString("Ratings:\n")
	for _, line := range d.Formatted() {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
}

// Text renders the movie statistics for display.
func (s MovieStats) Text() string {
	var b strings.Builder
	ratingsBlock(&b, s.Ratings)
	fmt.Fprintf(&b, "Average Movie Duration: %.2f minutes\n", s.AverageDuration)
	fmt.Fprintf(&b, "Most Prolific Director: %s\n", s.Director.times())
	fmt.Fprintf(&b, "Most Prolific Actor: %s\n", s.Actor.times())
	fmt.Fprintf(&b, "Most Frequent Genre: %s", s.Genre.times())
	return b.String()
}

func (s TVStats) Text() string {
	var b strings.Builder
	ratingsBlock(&b, s.Ratings)
	fmt.Fprintf(&b, "Average Number of Seasons: %.2f seasons\n", s.AverageSeasons)
	fmt.Fprintf(&b, "Most Prolific Actor: %s\n", s.Actor.times())
	fmt.Fprintf(&b, "Most Frequent Genre: %s", s.Genre.times())
	return b.String()
}

func (s BookStats) Text() string {
	return fmt.Sprintf("Average Page Count: %.2f pages\nMost Common Author: %s\nMost Common Publisher: %s",
		s.AveragePages, s.Author.times(), s.Publisher.times())
}

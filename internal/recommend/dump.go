package recommend

import (
	"fmt"
	"strconv"
	"strings"

	"mediarec/internal/media"
)

// Separator ends every book block.
const Separator = "********************************"

type field struct {
	label string
	value string
}

func render(fields []field) string {
	var b strings.Builder
	for _, f := range fields {
		fmt.Fprintf(&b, "%s: %s\n", f.label, f.value)
	}
	return b.String()
}

func rating(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// BookDump lists every field of b, one "Label: value" line each, followed by
// a blank line and Separator.
func BookDump(b media.Book) string {
	return render([]field{
		{"ID", b.ID},
		{"Title", b.Title},
		{"Authors", b.Authors},
		{"Avg Rating", rating(b.AvgRating)},
		{"ISBN", b.ISBN},
		{"ISBN13", b.ISBN13},
		{"Language Code", b.LanguageCode},
		{"Num Pages", strconv.Itoa(b.NumPages)},
		{"Ratings Count", strconv.Itoa(b.RatingsCount)},
		{"Publication Date", b.PublicationDate},
		{"Publisher", b.Publisher},
	}) + "\n" + Separator + "\n"
}

// ShowDump lists every field of s, one "Label: value" line each.
func ShowDump(s media.Show) string {
	return render([]field{
		{"ID", s.ID},
		{"Title", s.Title},
		{"Show Type", s.Type.String()},
		{"Avg Rating", rating(s.AvgRating)},
		{"Directors", s.Directors},
		{"Actors", s.Actors},
		{"Country", s.CountryCode},
		{"Date Added", s.DateAdded},
		{"Release Year", s.ReleaseYear},
		{"Rating", s.Rating},
		{"Duration", s.Duration},
		{"Genres", s.Genres},
		{"Description", s.Description},
	})
}

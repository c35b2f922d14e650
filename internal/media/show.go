package media

// Show is a movie or a series. Rating is the content rating ("TV-MA");
// the numeric average lives on Base. Duration keeps its unit in the string
// ("142 min", "3 Seasons"), see ParseMinutes and ParseSeasons.
type Show struct {
	Base
	Type        ShowType `json:"type"`
	Directors   string   `json:"directors"`
	Actors      string   `json:"actors"`
	CountryCode string   `json:"country_code"`
	DateAdded   string   `json:"date_added"`
	ReleaseYear string   `json:"release_year"`
	Rating      string   `json:"rating"`
	Duration    string   `json:"duration"`
	Genres      string   `json:"genres"`
	Description string   `json:"description"`
}

func (Show) Kind() Kind { return KindShow }


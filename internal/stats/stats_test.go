package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediarec/internal/catalog"
	"mediarec/internal/media"
)

func movie(id, title, duration, rating, directors, actors, genres string) media.Show {
	return media.Show{
		Base:      media.Base{ID: id, Title: title},
		Type:      media.Movie,
		Duration:  duration,
		Rating:    rating,
		Directors: directors,
		Actors:    actors,
		Genres:    genres,
	}
}

func series(id, title, duration, rating, actors, genres string) media.Show {
	return media.Show{
		Base:     media.Base{ID: id, Title: title},
		Type:     media.TVShow,
		Duration: duration,
		Rating:   rating,
		Actors:   actors,
		Genres:   genres,
	}
}

func TestCounter_MostCommon(t *testing.T) {
	c := NewCounter()
	assert.Equal(t, None, c.MostCommon())

	c.Add("b", "a", "a", "b", "c")
	assert.Equal(t, Entry{Value: "b", Count: 2}, c.MostCommon())

	c.Add("c", "c")
	assert.Equal(t, Entry{Value: "c", Count: 3}, c.MostCommon())
	assert.Equal(t, []Entry{{"b", 2}, {"a", 2}, {"c", 3}}, c.Entries())
	assert.Equal(t, 2, c.Count("a"))
}

func TestEngine_Movies(t *testing.T) {
	store := catalog.New()
	store.PutShows([]media.Show{
		movie("1", "Heat", "170 min", "R", "Michael Mann", `Al Pacino\Robert De Niro`, `Crime\Thrillers`),
		movie("2", "Collateral", "120 min", "R", "Michael Mann", `Tom Cruise\Jamie Foxx`, `Thrillers`),
		movie("3", "Up", "96 min", "PG", "Pete Docter", `Ed Asner`, `Children & Family Movies`),
		series("4", "Dark", "3 Seasons", "TV-MA", "Louis Hofmann", "Thrillers"),
	})

	st, err := New(store).Movies()
	require.NoError(t, err)

	assert.Equal(t, 3, st.Count)
	assert.InDelta(t, 128.666, st.AverageDuration, 0.01)
	assert.Equal(t, Entry{Value: "Michael Mann", Count: 2}, st.Director)
	assert.Equal(t, Entry{Value: "Al Pacino", Count: 1}, st.Actor)
	assert.Equal(t, Entry{Value: "Thrillers", Count: 2}, st.Genre)
	assert.Equal(t, []string{"R: 66.67%", "PG: 33.33%"}, st.Ratings.Formatted())
	assert.Empty(t, st.Skipped)
}

func TestEngine_Movies_Empty(t *testing.T) {
	st, err := New(catalog.New()).Movies()
	require.NoError(t, err)

	assert.Zero(t, st.Count)
	assert.Zero(t, st.AverageDuration)
	assert.Equal(t, None, st.Director)
	assert.Equal(t, None, st.Actor)
	assert.Equal(t, None, st.Genre)
	assert.Empty(t, st.Ratings)
}

func TestEngine_Movies_StrictFailsOnBadDuration(t *testing.T) {
	store := catalog.New()
	store.PutShows([]media.Show{
		movie("1", "Heat", "170 min", "R", "", "", ""),
		movie("2", "Broken", "two hours", "R", "", "", ""),
	})

	_, err := New(store).Movies()
	assert.ErrorIs(t, err, media.ErrFormat)
}

func TestEngine_Movies_LenientSkips(t *testing.T) {
	store := catalog.New()
	store.PutShows([]media.Show{
		movie("1", "Heat", "170 min", "R", "", "", ""),
		movie("2", "Broken", "two hours", "R", "", "", ""),
	})

	st, err := New(store, WithLenient(true)).Movies()
	require.NoError(t, err)
	assert.Equal(t, 1, st.Count)
	assert.Equal(t, 170.0, st.AverageDuration)
	require.Len(t, st.Skipped, 1)
	assert.Equal(t, "2", st.Skipped[0].ID)
}

func TestEngine_TV(t *testing.T) {
	store := catalog.New()
	store.PutShows([]media.Show{
		series("1", "Dark", "3 Seasons", "TV-MA", "Louis Hofmann, Lisa Vicari", "Thrillers, International TV Shows"),
		series("2", "Chernobyl", "1 Season", "TV-MA", "Jared Harris", "Dramas"),
		series("3", "Bluey", "5 Seasons", "TV-Y", "Dave McCormack, Louis Hofmann", "Kids' TV"),
		movie("4", "Heat", "170 min", "R", "Michael Mann", "", ""),
	})

	st, err := New(store).TV()
	require.NoError(t, err)
	assert.Equal(t, 3, st.Count)
	assert.InDelta(t, 3.0, st.AverageSeasons, 0.0001)
	assert.Equal(t, Entry{Value: "Louis Hofmann", Count: 2}, st.Actor)
	assert.Equal(t, Entry{Value: "Thrillers", Count: 1}, st.Genre)
	assert.Equal(t, []string{"TV-MA: 66.67%", "TV-Y: 33.33%"}, st.Ratings.Formatted())
}

func TestEngine_TV_BadSeasons(t *testing.T) {
	store := catalog.New()
	store.PutShows([]media.Show{series("1", "Dark", "90 min", "TV-MA", "", "")})
	_, err := New(store).TV()
	assert.ErrorIs(t, err, media.ErrFormat)
}

func TestEngine_Books(t *testing.T) {
	store := catalog.New()
	store.PutBooks([]media.Book{
		{Base: media.Base{ID: "1"}, Authors: "Frank Herbert", NumPages: 412, Publisher: "Ace"},
		{Base: media.Base{ID: "2"}, Authors: "Frank Herbert/Brian Herbert", NumPages: 300, Publisher: "Tor"},
		{Base: media.Base{ID: "3"}, Authors: "Frank Herbert", NumPages: 200, Publisher: "Tor"},
	})

	st, err := New(store).Books()
	require.NoError(t, err)
	assert.Equal(t, 3, st.Count)
	assert.InDelta(t, 304.0, st.AveragePages, 0.0001)
	assert.Equal(t, Entry{Value: "Frank Herbert", Count: 2}, st.Author)
	assert.Equal(t, Entry{Value: "Tor", Count: 2}, st.Publisher)
}

func TestEngine_Books_Empty(t *testing.T) {
	st, err := New(catalog.New()).Books()
	require.NoError(t, err)
	assert.Equal(t, BookStats{Author: None, Publisher: None}, st)
}

func TestText(t *testing.T) {
	ms := MovieStats{
		Count:           2,
		AverageDuration: 142,
		Ratings:         Distribution{{Rating: "PG-13", Count: 1, Percent: 50}, {Rating: "R", Count: 1, Percent: 50}},
		Director:        Entry{"Denis Villeneuve", 2},
		Actor:           Entry{"Zendaya", 2},
		Genre:           Entry{"Sci-Fi", 2},
	}
	assert.Equal(t, "Ratings:\nPG-13: 50.00%\nR: 50.00%\n\n"+
		"Average Movie Duration: 142.00 minutes\n"+
		"Most Prolific Director: Denis Villeneuve (2 times)\n"+
		"Most Prolific Actor: Zendaya (2 times)\n"+
		"Most Frequent Genre: Sci-Fi (2 times)", ms.Text())

	tv := TVStats{AverageSeasons: 2.5, Actor: None, Genre: None}
	assert.Equal(t, "Ratings:\n\n"+
		"Average Number of Seasons: 2.50 seasons\n"+
		"Most Prolific Actor: None (0 times)\n"+
		"Most Frequent Genre: None (0 times)", tv.Text())

	bs := BookStats{AveragePages: 412, Author: Entry{"Frank Herbert", 1}, Publisher: Entry{"Ace", 1}}
	assert.Equal(t, "Average Page Count: 412.00 pages\n"+
		"Most Common Author: Frank Herbert (1 times)\n"+
		"Most Common Publisher: Ace (1 times)", bs.Text())
}

func TestEngine_Ratings(t *testing.T) {
	store := catalog.New()
	store.PutShows([]media.Show{
		movie("1", "Heat", "not parsed", "R", "", "", ""),
		movie("2", "Up", "96 min", "PG", "", "", ""),
		movie("3", "Alien", "117 min", "R", "", "", ""),
		movie("4", "Big", "104 min", "PG", "", "", ""),
	})
	engine := New(store)

	d := engine.Ratings(media.Movie)
	assert.Equal(t, []string{"R: 50.00%", "PG: 50.00%"}, d.Formatted())
	assert.Equal(t, 2, d[0].Count)
	assert.Empty(t, engine.Ratings(media.TVShow))
}

package usecase

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediarec/internal/association"
	"mediarec/internal/catalog"
	"mediarec/internal/media"
	"mediarec/internal/recommend"
	"mediarec/internal/search"
	"mediarec/internal/testutil"
)

func loaded(t *testing.T, opts Options) *Recommender {
	t.Helper()
	u := New(opts)
	ctx := context.Background()

	n, err := u.LoadBooks(ctx, strings.NewReader(testutil.BooksCSV))
	require.NoError(t, err)
	require.Equal(t, 4, n)
	n, err = u.LoadShows(ctx, strings.NewReader(testutil.ShowsCSV))
	require.NoError(t, err)
	require.Equal(t, 5, n)
	n, err = u.LoadAssociations(ctx, strings.NewReader(testutil.AssociationsCSV))
	require.NoError(t, err)
	require.Equal(t, 5, n)
	return u
}

func TestRecommender_Ready(t *testing.T) {
	u := New(Options{})
	assert.False(t, u.Ready())

	_, err := u.LoadBooks(context.Background(), strings.NewReader(testutil.BooksCSV))
	require.NoError(t, err)
	assert.False(t, u.Ready())

	u = loaded(t, Options{})
	assert.True(t, u.Ready())
}

func TestRecommender_LoadRejectsBadRows(t *testing.T) {
	u := New(Options{})
	_, err := u.LoadBooks(context.Background(), strings.NewReader("bookID,title,num_pages\n1,Dune,many\n"))
	require.ErrorIs(t, err, media.ErrFormat)
	assert.Zero(t, u.Store().BookCount())
	assert.False(t, u.Ready())

	_, err = u.LoadAssociations(context.Background(), strings.NewReader("1\n"))
	require.ErrorIs(t, err, media.ErrFormat)
}

func TestRecommender_SelfPairsRejected(t *testing.T) {
	u := New(Options{SelfPairs: association.SelfPairReject})
	_, err := u.LoadAssociations(context.Background(), strings.NewReader("1,2\n3,3\n"))
	require.ErrorIs(t, err, association.ErrSelfAssociation)
}

func TestRecommender_ReplaceMode(t *testing.T) {
	u := loaded(t, Options{LoadMode: catalog.LoadReplace})
	_, err := u.LoadBooks(context.Background(), strings.NewReader("bookID,title\n9,Solaris\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, u.Store().BookCount())
}

func TestRecommender_Lists(t *testing.T) {
	u := loaded(t, Options{})

	text, msg, err := u.MovieList()
	require.NoError(t, err)
	assert.Empty(t, msg)
	assert.Equal(t, "Title                              Runtime\n"+
		"Dune                               155 min\n"+
		"The Hobbit: An Unexpected Journey  169 min\n"+
		"Emma.                              124 min", text)

	text, _, err = u.TVList()
	require.NoError(t, err)
	assert.Equal(t, "Title           Seasons  \n"+
		"Dune: Prophecy  1 Season \n"+
		"Emma Approved   2 Seasons", text)

	text, _, err = u.BookList()
	require.NoError(t, err)
	lines := strings.Split(text, "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "Title"))
	assert.Contains(t, lines[1], "Frank Herbert")
}

func TestRecommender_Stats(t *testing.T) {
	u := loaded(t, Options{})

	text, _, err := u.MovieStats()
	require.NoError(t, err)
	assert.Equal(t, "Ratings:\nPG-13: 66.67%\nPG: 33.33%\n\n"+
		"Average Movie Duration: 149.33 minutes\n"+
		"Most Prolific Director: Denis Villeneuve (1 times)\n"+
		"Most Prolific Actor: Timothee Chalamet (1 times)\n"+
		"Most Frequent Genre: Action & Adventure (2 times)", text)

	text, _, err = u.TVStats()
	require.NoError(t, err)
	assert.Contains(t, text, "TV-MA: 50.00%\nTV-PG: 50.00%\n")
	assert.Contains(t, text, "Average Number of Seasons: 1.50 seasons")

	text, _, err = u.BookStats()
	require.NoError(t, err)
	assert.Equal(t, "Average Page Count: 445.00 pages\n"+
		"Most Common Author: Frank Herbert (2 times)\n"+
		"Most Common Publisher: Ace Books (2 times)", text)

	rep, err := u.Stats("Movies")
	require.NoError(t, err)
	assert.Equal(t, StatsMovies, rep.Kind)

	_, err = u.Stats("podcasts")
	assert.ErrorIs(t, err, ErrUnknownStats)
}

func TestRecommender_Ratings(t *testing.T) {
	u := loaded(t, Options{})
	rs := u.Ratings()
	require.Len(t, rs.Movies, 2)
	assert.Equal(t, "PG-13", rs.Movies[0].Rating)
	assert.Equal(t, 2, rs.Movies[0].Count)
	assert.Equal(t, "Movie Ratings:\nPG-13: 66.67%\nPG: 33.33%\n\nTV Show Ratings:\nTV-MA: 50.00%\nTV-PG: 50.00%", rs.Text())
}

func TestRecommender_Search(t *testing.T) {
	u := loaded(t, Options{})

	text, msg, err := u.SearchShows(search.ShowQuery{Type: "Movie", Title: "dune"})
	require.NoError(t, err)
	assert.Empty(t, msg)
	assert.Contains(t, text, "Denis Villeneuve")
	assert.NotContains(t, text, "Prophecy")

	_, msg, err = u.SearchShows(search.ShowQuery{Title: "dune"})
	require.ErrorIs(t, err, search.ErrInvalidInput)
	assert.Equal(t, search.MsgSelectShowType, msg)

	_, msg, err = u.SearchBooks(search.BookQuery{Publisher: "  "})
	require.ErrorIs(t, err, search.ErrInvalidInput)
	assert.Equal(t, search.MsgBookCriteria, msg)

	books, _, err := u.FindBooks(search.BookQuery{Author: "herbert"})
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "Dune Messiah", books[1].Title)

	shows, _, err := u.FindShows(search.ShowQuery{Type: "TV Show", Actor: "watson"})
	require.NoError(t, err)
	require.Len(t, shows, 1)
	assert.Equal(t, "103", shows[0].ID)

	text, _, err = u.SearchBooks(search.BookQuery{Title: "zzz"})
	require.NoError(t, err)
	assert.Equal(t, search.NoResults, text)
}

func TestRecommender_Recommend(t *testing.T) {
	u := loaded(t, Options{})
	book1, _ := u.Store().Book("1")
	dune, _ := u.Store().Show("101")
	prophecy, _ := u.Store().Show("103")

	text, msg, err := u.Recommend("Movie", "dune")
	require.NoError(t, err)
	assert.Empty(t, msg)
	assert.Equal(t, recommend.BookDump(book1), text)

	text, _, err = u.Recommend("Book", "DUNE")
	require.NoError(t, err)
	assert.Equal(t, recommend.ShowDump(dune)+"\n"+recommend.ShowDump(prophecy)+"\n"+recommend.NoAssociatedShows, text)

	text, msg, err = u.Recommend("Book", "zzz")
	require.ErrorIs(t, err, recommend.ErrNoMatches)
	assert.Equal(t, recommend.NoResults, text)
	assert.Equal(t, WarnNoRecommendations, msg)

	_, msg, err = u.Recommend("Podcast", "dune")
	require.ErrorIs(t, err, search.ErrInvalidInput)
	assert.Equal(t, search.MsgSelectMediaType, msg)
}

func TestRecommender_Suggestions(t *testing.T) {
	u := loaded(t, Options{})
	out, _, err := u.Suggestions("Book", "dune")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "101", out[0].Show.ID)
	assert.Equal(t, 2, out[0].Count)
	assert.Equal(t, "103", out[1].Show.ID)
	assert.Equal(t, 1, out[1].Count)
}

func TestRecommender_AssociationsAccumulate(t *testing.T) {
	u := loaded(t, Options{})
	_, err := u.LoadAssociations(context.Background(), strings.NewReader("103,1\n103,1\n"))
	require.NoError(t, err)

	out, _, err := u.Suggestions("Book", "dune")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "103", out[0].Show.ID)
	assert.Equal(t, 3, out[0].Count)
}

func TestRecommender_ConcurrentLoadAndQuery(t *testing.T) {
	u := loaded(t, Options{})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = u.LoadAssociations(context.Background(), strings.NewReader("2,104\n"))
		}()
		go func() {
			defer wg.Done()
			_, _, err := u.Recommend("Book", "dune")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	out, _, err := u.Suggestions("Book", "messiah")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 8, out[0].Count)
}

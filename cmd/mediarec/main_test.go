package main

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"mediarec/internal/recommend"
	"mediarec/internal/search"
	"mediarec/internal/testutil"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	cwd, _ := os.Getwd()
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(cwd) })
	t.Setenv("CONFIG_PATH", "")

	f := testutil.WriteFixtures(t)
	full := append([]string{"-books", f.Books, "-shows", f.Shows, "-associations", f.Associations}, args...)
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), full, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Recommend(t *testing.T) {
	code, out, _ := runCLI(t, "recommend", "-type", "Movie", "-title", "dune")
	assert.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "ID: 1\nTitle: Dune\n"))
	assert.Contains(t, out, recommend.Separator)
}

func TestRun_RecommendNoMatches(t *testing.T) {
	code, out, errOut := runCLI(t, "recommend", "-type", "Book", "-title", "zzz")
	assert.Equal(t, 0, code)
	assert.Equal(t, recommend.NoResults+"\n", out)
	assert.Contains(t, errOut, "No recommendations for that title")
}

func TestRun_SearchInvalid(t *testing.T) {
	code, out, errOut := runCLI(t, "search-books")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, search.MsgBookCriteria)
}

func TestRun_StatsAndLists(t *testing.T) {
	code, out, _ := runCLI(t, "stats", "books")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Average Page Count: 445.00 pages")

	code, out, _ = runCLI(t, "list", "tv")
	assert.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "Title"))
	assert.Contains(t, out, "Emma Approved")

	code, out, _ = runCLI(t, "ratings")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "PG-13: 66.67%")
}

func TestRun_SearchShows(t *testing.T) {
	code, out, _ := runCLI(t, "search-shows", "-type", "TV Show", "-genre", "comedies")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Emma Approved")
	assert.NotContains(t, out, "Prophecy")
}

func TestRun_Usage(t *testing.T) {
	code, _, errOut := runCLI(t, "list", "podcasts")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "usage: mediarec")

	var stderr bytes.Buffer
	assert.Equal(t, 2, run(context.Background(), nil, &bytes.Buffer{}, &stderr))
}

func TestRun_MissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-books", "/nonexistent/books.csv", "ratings"}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "cannot load catalog")
	assert.Contains(t, stderr.String(), "source unavailable")
}

// Command seed writes a synthetic books, shows and associations CSV set for
// load testing.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"

	"mediarec/internal/logging"
)

var words = []string{
	"Adventure", "Mystery", "Journey", "Discovery", "Secrets", "Dreams", "Hope",
	"Love", "War", "Peace", "Science", "Nature", "Technology", "History", "Future",
	"Past", "Present", "Reality", "Imagination", "Wisdom", "Life", "Death",
	"Light", "Darkness", "World", "Universe", "Time", "Space", "Mind", "Soul",
}

var (
	people     = []string{"Ada Byron", "Kim Park", "Luis Ortega", "Mara Stone", "Ravi Nair", "Sofia Lind", "Tom Okafor", "Yuki Sato"}
	publishers = []string{"Penguin", "HarperCollins", "Oxford", "Cambridge", "MIT Press", "Springer", "Wiley", "Elsevier"}
	genres     = []string{"Dramas", "Comedies", "Documentaries", "Thrillers", "Sci-Fi & Fantasy", "Romantic Movies"}
	ratings    = []string{"G", "PG", "PG-13", "R", "TV-MA", "TV-14", "TV-PG"}
)

type generator struct {
	rng *rand.Rand
}

func (g *generator) word() string { return words[g.rng.IntN(len(words))] }

func (g *generator) pick(from []string) string { return from[g.rng.IntN(len(from))] }

func (g *generator) title(i int) string {
	return fmt.Sprintf("%s of %s %d", g.word(), g.word(), i)
}

func (g *generator) books(n int) [][]string {
	rows := [][]string{{"bookID", "title", "authors", "average_rating", "isbn", "isbn13",
		"language_code", "num_pages", "ratings_count", "publication_date", "publisher"}}
	for i := 1; i <= n; i++ {
		rows = append(rows, []string{
			strconv.Itoa(i),
			g.title(i),
			g.pick(people),
			strconv.FormatFloat(1+g.rng.Float64()*4, 'f', 2, 64),
			fmt.Sprintf("%010d", i),
			fmt.Sprintf("978%010d", i),
			"eng",
			strconv.Itoa(100 + g.rng.IntN(800)),
			strconv.Itoa(g.rng.IntN(100000)),
			fmt.Sprintf("%d/%d/%d", 1+g.rng.IntN(12), 1+g.rng.IntN(28), 1950+g.rng.IntN(75)),
			g.pick(publishers),
		})
	}
	return rows
}

// shows ids start at 100000 so they never collide with book ids.
func (g *generator) shows(n int) [][]string {
	rows := [][]string{{"show_id", "type", "title", "director", "cast", "average_rating", "country",
		"date_added", "release_year", "rating", "duration", "listed_in", "description"}}
	for i := 1; i <= n; i++ {
		typ, duration := "Movie", fmt.Sprintf("%d min", 60+g.rng.IntN(120))
		if g.rng.IntN(3) == 0 {
			typ, duration = "TV Show", fmt.Sprintf("%d Seasons", 1+g.rng.IntN(9))
		}
		rows = append(rows, []string{
			strconv.Itoa(100000 + i),
			typ,
			g.title(i),
			g.pick(people),
			g.pick(people) + ", " + g.pick(people),
			strconv.FormatFloat(1+g.rng.Float64()*9, 'f', 1, 64),
			"United States",
			"",
			strconv.Itoa(1950 + g.rng.IntN(75)),
			g.pick(ratings),
			duration,
			g.pick(genres) + ", " + g.pick(genres),
			fmt.Sprintf("A story about %s.", g.word()),
		})
	}
	return rows
}

func (g *generator) pairs(n, books, shows int) [][]string {
	rows := make([][]string, 0, n)
	for range n {
		rows = append(rows, []string{
			strconv.Itoa(1 + g.rng.IntN(books)),
			strconv.Itoa(100001 + g.rng.IntN(shows)),
		})
	}
	return rows
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func run(out string, books, shows, pairs int, seed uint64) error {
	if books <= 0 || shows <= 0 {
		return fmt.Errorf("books and shows must be positive")
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		return err
	}
	g := &generator{rng: rand.New(rand.NewPCG(seed, seed))}
	files := []struct {
		name string
		rows [][]string
	}{
		{"books.csv", g.books(books)},
		{"shows.csv", g.shows(shows)},
		{"associations.csv", g.pairs(pairs, books, shows)},
	}
	for _, f := range files {
		path := filepath.Join(out, f.name)
		if err := writeCSV(path, f.rows); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		logging.Info().Str("file", path).Int("rows", len(f.rows)).Msg("generated")
	}
	return nil
}

func main() {
	var (
		out   = flag.String("out", "data", "output directory")
		books = flag.Int("books", 10000, "number of books")
		shows = flag.Int("shows", 5000, "number of shows")
		pairs = flag.Int("pairs", 50000, "number of association rows")
		seed  = flag.Uint64("seed", 1, "random seed")
	)
	flag.Parse()

	logging.Init(logging.Config{Level: "info", Format: "console"})
	if err := run(*out, *books, *shows, *pairs, *seed); err != nil {
		logging.Fatal().Err(err).Msg("seed failed")
	}
}

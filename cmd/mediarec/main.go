// Command mediarec loads a catalog from CSV files and answers one query.
//
//	mediarec -books books.csv -shows shows.csv -associations assoc.csv recommend -type Movie -title Dune
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"mediarec/internal/config"
	"mediarec/internal/ingest"
	"mediarec/internal/logging"
	"mediarec/internal/recommend"
	"mediarec/internal/search"
	"mediarec/internal/usecase"
)

const usage = `usage: mediarec [flags] <command> [args]

commands:
  list {movies|tv|books}
  stats {movies|tv|books}
  ratings
  search-shows -type T [-title] [-director] [-actor] [-genre]
  search-books [-title] [-author] [-publisher]
  recommend -type {Movie|TV Show|Book} -title T

flags:
`

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("mediarec", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "path to a YAML config file")
		books      = fs.String("books", "", "books CSV file")
		shows      = fs.String("shows", "", "shows CSV file")
		assoc      = fs.String("associations", "", "associations CSV file")
	)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	lc := cfg.Logging()
	lc.Output = stderr
	logging.Init(lc)

	src := ingest.Sources{
		BooksPath:        firstNonEmpty(*books, cfg.Data.BooksPath),
		ShowsPath:        firstNonEmpty(*shows, cfg.Data.ShowsPath),
		AssociationsPath: firstNonEmpty(*assoc, cfg.Data.AssociationsPath),
	}
	rec := usecase.New(cfg.RecommenderOptions())
	if _, err := ingest.NewService(rec, ingest.NewMemoryRepo()).Run(ctx, src); err != nil {
		fmt.Fprintf(stderr, "cannot load catalog: %v\n", err)
		return 1
	}

	text, msg, err := dispatch(rec, fs.Arg(0), fs.Args()[1:], stderr)
	switch {
	case errors.Is(err, flag.ErrHelp), errors.Is(err, errUsage):
		return 2
	case errors.Is(err, recommend.ErrNoMatches):
		fmt.Fprintln(stdout, text)
		fmt.Fprintln(stderr, msg)
		return 0
	case errors.Is(err, search.ErrInvalidInput):
		fmt.Fprintln(stderr, msg)
		return 1
	case err != nil:
		fmt.Fprintln(stderr, err)
		return 1
	}
	fmt.Fprintln(stdout, text)
	return 0
}

var errUsage = errors.New("usage")

func dispatch(rec *usecase.Recommender, cmd string, args []string, stderr io.Writer) (string, string, error) {
	switch cmd {
	case "list":
		switch arg(args) {
		case usecase.StatsMovies:
			return rec.MovieList()
		case usecase.StatsTV:
			return rec.TVList()
		case usecase.StatsBooks:
			return rec.BookList()
		}
	case "stats":
		switch arg(args) {
		case usecase.StatsMovies:
			return rec.MovieStats()
		case usecase.StatsTV:
			return rec.TVStats()
		case usecase.StatsBooks:
			return rec.BookStats()
		}
	case "ratings":
		return rec.Ratings().Text(), "", nil
	case "search-shows":
		var q search.ShowQuery
		fs := subcommand(cmd, stderr)
		fs.StringVar(&q.Type, "type", "", "Movie or TV Show")
		fs.StringVar(&q.Title, "title", "", "title contains")
		fs.StringVar(&q.Director, "director", "", "director contains")
		fs.StringVar(&q.Actor, "actor", "", "an actor contains")
		fs.StringVar(&q.Genre, "genre", "", "genres contain")
		if err := fs.Parse(args); err != nil {
			return "", "", err
		}
		return rec.SearchShows(q)
	case "search-books":
		var q search.BookQuery
		fs := subcommand(cmd, stderr)
		fs.StringVar(&q.Title, "title", "", "title contains")
		fs.StringVar(&q.Author, "author", "", "authors contain")
		fs.StringVar(&q.Publisher, "publisher", "", "publisher contains")
		if err := fs.Parse(args); err != nil {
			return "", "", err
		}
		return rec.SearchBooks(q)
	case "recommend":
		fs := subcommand(cmd, stderr)
		typ := fs.String("type", "", "Movie, TV Show or Book")
		title := fs.String("title", "", "title contains")
		if err := fs.Parse(args); err != nil {
			return "", "", err
		}
		return rec.Recommend(*typ, *title)
	}
	fmt.Fprint(stderr, usage)
	return "", "", errUsage
}

func subcommand(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

func arg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

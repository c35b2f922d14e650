// Package testutil holds small catalog fixtures and HTTP helpers for tests.
package testutil

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
)

// BooksCSV is a books file in the upstream layout, padded num_pages header
// included.
const BooksCSV = `bookID,title,authors,average_rating,isbn,isbn13,language_code,  num_pages,ratings_count,text_reviews_count,publication_date,publisher
1,Dune,Frank Herbert,4.25,0441172717,9780441172719,eng,604,1000,50,9/1/1990,Ace Books
2,Dune Messiah,Frank Herbert,3.88,0593098234,9780593098233,eng,336,500,20,7/15/1987,Ace Books
3,The Hobbit,J.R.R. Tolkien,4.27,0618260307,9780618260300,eng,366,2000,80,8/15/2002,Houghton Mifflin
4,Emma,Jane Austen,4.00,0141439580,9780141439587,eng,474,300,10,5/6/2003,Penguin Classics
`

// ShowsCSV holds three movies and two series.
const ShowsCSV = `show_id,type,title,director,cast,average_rating,country,date_added,release_year,rating,duration,listed_in,description
101,Movie,Dune,Denis Villeneuve,"Timothee Chalamet, Rebecca Ferguson",8.0,United States,"October 22, 2021",2021,PG-13,155 min,"Action & Adventure, Sci-Fi & Fantasy",Paul Atreides travels to Arrakis.
102,Movie,The Hobbit: An Unexpected Journey,Peter Jackson,"Martin Freeman, Ian McKellen",7.8,New Zealand,"December 14, 2012",2012,PG-13,169 min,Action & Adventure,Bilbo joins a company of dwarves.
103,TV Show,Dune: Prophecy,,"Emily Watson, Olivia Williams",7.0,United States,"November 17, 2024",2024,TV-MA,1 Season,"TV Dramas, TV Sci-Fi & Fantasy",The Bene Gesserit rise.
104,TV Show,Emma Approved,,Joanna Sotomura,7.2,United States,,2013,TV-PG,2 Seasons,TV Comedies,A matchmaker runs a lifestyle business.
105,Movie,Emma.,Autumn de Wilde,"Anya Taylor-Joy, Johnny Flynn",6.7,United Kingdom,"February 21, 2020",2020,PG,124 min,"Comedies, Romantic Movies",A young woman meddles in love lives.
`

// AssociationsCSV links book 1 to the Dune movie twice.
const AssociationsCSV = `1,101
1,103
1,101
3,102
4,105
`

// Fixture paths written by WriteFixtures.
type Fixtures struct {
	Books        string
	Shows        string
	Associations string
}

// WriteFixtures writes the three CSV fixtures into a temp dir.
func WriteFixtures(t testing.TB) Fixtures {
	t.Helper()
	dir := t.TempDir()
	f := Fixtures{
		Books:        filepath.Join(dir, "books.csv"),
		Shows:        filepath.Join(dir, "shows.csv"),
		Associations: filepath.Join(dir, "associations.csv"),
	}
	for path, body := range map[string]string{
		f.Books:        BooksCSV,
		f.Shows:        ShowsCSV,
		f.Associations: AssociationsCSV,
	} {
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatalf("write fixture %s: %v", path, err)
		}
	}
	return f
}

// NewRequest creates a new HTTP request for testing
func NewRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}
	var r *http.Request
	if bodyBytes != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// RecordResponse records the HTTP response for testing
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
}

// RecordHTTPResponse decodes a JSON response body into a map.
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		_ = json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}

package media

// Book is a catalog book row.
type Book struct {
	Base
	Authors         string `json:"authors"`
	ISBN            string `json:"isbn"`
	ISBN13          string `json:"isbn13"`
	LanguageCode    string `json:"language_code"`
	NumPages        int    `json:"num_pages"`
	RatingsCount    int    `json:"ratings_count"`
	PublicationDate string `json:"publication_date"`
	Publisher       string `json:"publisher"`
}

func (Book) Kind() Kind { return KindBook }

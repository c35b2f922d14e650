package ingest

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"mediarec/internal/association"
	"mediarec/internal/media"
)

const bom = "\ufeff"

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.LazyQuotes = true
	return cr
}

func csvError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &media.FormatError{Field: "csv", Row: pe.Line, Err: pe.Err}
	}
	return err
}

// ReadRows reads a header-keyed CSV. Header names are trimmed and a leading
// UTF-8 BOM is dropped. Every row must have as many cells as the header.
func ReadRows(r io.Reader) ([]media.Row, error) {
	cr := newReader(r)
	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, csvError(err)
	}
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, bom)
		}
		header[i] = strings.TrimSpace(h)
	}

	var rows []media.Row
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, csvError(err)
		}
		row := make(media.Row, len(header))
		for i, h := range header {
			row[h] = rec[i]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ReadPairs reads a headerless two-column association file.
func ReadPairs(r io.Reader) ([]association.Pair, error) {
	cr := newReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, csvError(err)
	}
	if len(records) > 0 && len(records[0]) > 0 {
		records[0][0] = strings.TrimPrefix(records[0][0], bom)
	}
	return association.ParsePairs(records)
}

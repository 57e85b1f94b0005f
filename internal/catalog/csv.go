package catalog

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

// RawRow maps a CSV header name to the raw string value of one line.
// No type coercion happens here; that is the normalizer's job.
type RawRow map[string]string

// ParseCSV turns raw CSV text into header-keyed rows. The first line is the
// header and is not emitted as data. Quoted fields may contain commas, and
// doubled quotes escape a quote. Short lines are padded with empty strings;
// a line the reader cannot parse is skipped so one bad line never sinks the
// whole price list.
func ParseCSV(text string) []RawRow {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []RawRow
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				continue
			}
			break
		}
		row := make(RawRow, len(header))
		for i, h := range header {
			if i < len(record) {
				row[h] = strings.TrimSpace(record[i])
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}

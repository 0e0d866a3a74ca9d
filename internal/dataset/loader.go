// Package dataset loads the historical CSV datasets into typed in-memory
// records. Ingestion is deliberately lenient: historical exports are assumed
// lightly dirty, so short rows are padded and malformed numeric fields default
// to zero instead of failing the load.
package dataset

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
)

// Row maps a column name to its raw text value for one data row.
type Row map[string]string

// Str returns the trimmed raw value of a column, or "" when absent.
func (r Row) Str(col string) string {
	return strings.TrimSpace(r[col])
}

// Int parses a column as an integer, defaulting to 0 on missing or
// malformed input.
func (r Row) Int(col string) int {
	v, err := strconv.Atoi(r.Str(col))
	if err != nil {
		return 0
	}
	return v
}

// Float parses a column as a float, defaulting to 0 on missing or
// malformed input.
func (r Row) Float(col string) float64 {
	v, err := strconv.ParseFloat(r.Str(col), 64)
	if err != nil {
		return 0
	}
	return v
}

// Bool interprets common yes/no spellings found in the exports.
func (r Row) Bool(col string) bool {
	switch strings.ToLower(r.Str(col)) {
	case "sí", "si", "yes", "true", "1":
		return true
	default:
		return false
	}
}

// ParseTable reads delimited tabular text. The first line is strictly the
// header; each following line becomes a Row in input order. Rows with fewer
// columns than headers pad the missing trailing fields with empty strings.
// Zero data rows is valid and yields an empty result.
func ParseTable(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		row := make(Row, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = strings.TrimSpace(record[i])
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

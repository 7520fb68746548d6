// Package dataset binds the three raw source documents to typed records.
// Each document gets an explicit schema with named column indices and a
// minimum field count, so a column shift fails a test instead of silently
// mis-mapping data.
package dataset

import (
	"github.com/additivelabs/additive-atlas/internal/model"
	"github.com/additivelabs/additive-atlas/internal/parse"
)

// Comparison document schema: header row, then comma-separated rows of at
// least comparisonMinFields columns.
const (
	comparisonColCategory = 0
	comparisonColName     = 1
	comparisonColCAS      = 2
	comparisonColDetails  = 3

	comparisonMinFields = 4
)

// DecodeComparison parses the US/EU comparison document. Rows with fewer
// than four fields are discarded whole; a record is never partially
// populated.
func DecodeComparison(text string) []model.ComparisonRecord {
	var records []model.ComparisonRecord
	for _, row := range parse.Rows(text) {
		if len(row) < comparisonMinFields {
			continue
		}
		records = append(records, model.ComparisonRecord{
			Category:  parse.Field(row, comparisonColCategory),
			Name:      parse.Field(row, comparisonColName),
			CASNumber: parse.Field(row, comparisonColCAS),
			Details:   parse.Field(row, comparisonColDetails),
		})
	}
	return records
}

package dataset

import (
	"github.com/additivelabs/additive-atlas/internal/model"
	"github.com/additivelabs/additive-atlas/internal/parse"
)

// US indirect-additives document schema. The FDA export opens with four
// non-data lines before the header, quotes fields that contain commas or raw
// newlines, and carries ~200 columns of which only three matter here.
const (
	indirectColCAS        = 0
	indirectColName       = 1
	indirectColProhibited = 29

	indirectMinFields = 30
	indirectSkipLines = 4
)

// DecodeIndirect parses the US indirect-additives document into regulation
// entries, in document order. A row contributes an entry only when it has at
// least thirty fields, a CAS number, and a substance name. The prohibition
// column being non-empty marks the substance prohibited; otherwise it is
// allowed.
func DecodeIndirect(text string) []model.UsRegulationEntry {
	var entries []model.UsRegulationEntry
	for _, row := range parse.MultilineRows(text, indirectSkipLines) {
		if len(row) < indirectMinFields {
			continue
		}

		cas := parse.Field(row, indirectColCAS)
		name := parse.Field(row, indirectColName)
		if cas == "" || name == "" {
			continue
		}

		status := model.StatusAllowed
		if parse.Field(row, indirectColProhibited) != "" {
			status = model.StatusProhibited
		}

		entries = append(entries, model.UsRegulationEntry{
			CASNumber:     cas,
			SubstanceName: name,
			Status:        status,
		})
	}
	return entries
}

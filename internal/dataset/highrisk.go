package dataset

import (
	"strconv"

	"github.com/additivelabs/additive-atlas/internal/model"
	"github.com/additivelabs/additive-atlas/internal/parse"
)

// EU high-risk document schema. Column 0 is the additive E-number, which the
// pipeline does not consume.
const (
	highRiskColName     = 1
	highRiskColCategory = 2
	highRiskColMaxLevel = 3
	highRiskColDetail   = 4

	highRiskMinFields = 5
)

// DecodeHighRisk parses the EU high-risk restrictions document. Rows with
// fewer than five fields are discarded; an unparsable max level defaults to
// 0 rather than failing the row.
func DecodeHighRisk(text string) []model.HighRiskRestriction {
	var restrictions []model.HighRiskRestriction
	for _, row := range parse.Rows(text) {
		if len(row) < highRiskMinFields {
			continue
		}

		level, err := strconv.ParseFloat(parse.Field(row, highRiskColMaxLevel), 64)
		if err != nil {
			level = 0
		}

		restrictions = append(restrictions, model.HighRiskRestriction{
			SubstanceName: parse.Field(row, highRiskColName),
			FoodCategory:  parse.Field(row, highRiskColCategory),
			MaxLevel:      level,
			RawDetail:     parse.Field(row, highRiskColDetail),
		})
	}
	return restrictions
}

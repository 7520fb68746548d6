package dataset

import (
	"strings"
	"testing"

	"github.com/additivelabs/additive-atlas/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeComparison(t *testing.T) {
	text := "Category,Substance Name,US CAS Number,Details\n" +
		"High risk in EU,Example Acid,123-45-6,Limit 10mg/kg\n" +
		"Banned in EU only,Other Acid,987-65-4,EU Category: flour\n" +
		"too,short,row\n"

	records := DecodeComparison(text)

	require.Len(t, records, 2, "short rows are dropped whole")
	assert.Equal(t, model.ComparisonRecord{
		Category:  model.CategoryHighRiskEU,
		Name:      "Example Acid",
		CASNumber: "123-45-6",
		Details:   "Limit 10mg/kg",
	}, records[0])
	assert.Equal(t, model.CategoryBannedEUOnly, records[1].Category)
}

func TestDecodeComparisonNormalizesFields(t *testing.T) {
	text := "h1,h2,h3,h4\n" +
		`"High risk in EU", "Example Acid" ,123-45-6, details ` + "\n"

	records := DecodeComparison(text)

	require.Len(t, records, 1)
	assert.Equal(t, "High risk in EU", records[0].Category)
	assert.Equal(t, "Example Acid", records[0].Name)
	assert.Equal(t, "details", records[0].Details)
}

func TestDecodeHighRisk(t *testing.T) {
	text := "e_code,name,category,max_level,note\n" +
		"E123,Amaranth,beverages,30,colour only\n" +
		"E124,Ponceau 4R,desserts,not-a-number,note\n" +
		"E125,Short,row\n"

	restrictions := DecodeHighRisk(text)

	require.Len(t, restrictions, 2)
	assert.Equal(t, model.HighRiskRestriction{
		SubstanceName: "Amaranth",
		FoodCategory:  "beverages",
		MaxLevel:      30,
		RawDetail:     "colour only",
	}, restrictions[0])
	assert.Equal(t, 0.0, restrictions[1].MaxLevel, "unparsable max level defaults to 0")
}

// indirectRow builds one 30-column row of the US document with the three
// meaningful columns filled in.
func indirectRow(cas, name, prohibited string) string {
	fields := make([]string, 30)
	fields[0] = cas
	fields[1] = name
	fields[29] = prohibited
	return strings.Join(fields, ",")
}

func indirectDoc(rows ...string) string {
	header := strings.Join(make([]string, 30), ",")
	return "FDA Indirect Additives\nexported 2024\n\ncontact: cfsan\n" +
		header + "\n" + strings.Join(rows, "\n") + "\n"
}

func TestDecodeIndirect(t *testing.T) {
	text := indirectDoc(
		indirectRow("123-45-6", "Example Acid", ""),
		indirectRow("987-65-4", "Other Acid", "21 CFR 189.1"),
	)

	entries := DecodeIndirect(text)

	require.Len(t, entries, 2)
	assert.Equal(t, model.UsRegulationEntry{
		CASNumber:     "123-45-6",
		SubstanceName: "Example Acid",
		Status:        model.StatusAllowed,
	}, entries[0])
	assert.Equal(t, model.StatusProhibited, entries[1].Status)
}

func TestDecodeIndirectFiltersUnusableRows(t *testing.T) {
	text := indirectDoc(
		indirectRow("", "No CAS", ""),
		indirectRow("1-11-1", "", ""),
		"short,row",
		indirectRow("2-22-2", "Kept", ""),
	)

	entries := DecodeIndirect(text)

	require.Len(t, entries, 1)
	assert.Equal(t, "Kept", entries[0].SubstanceName)
}

func TestDecodeIndirectQuotedMultilineField(t *testing.T) {
	fields := make([]string, 30)
	fields[0] = "123-45-6"
	fields[1] = "\"Example\nAcid, technical grade\""
	row := strings.Join(fields, ",")

	entries := DecodeIndirect(indirectDoc(row))

	require.Len(t, entries, 1)
	assert.Equal(t, "Example\nAcid, technical grade", entries[0].SubstanceName)
}

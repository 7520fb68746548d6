package analysis

import (
	"fmt"
	"strings"
	"testing"

	"github.com/additivelabs/additive-atlas/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTallyCategories(t *testing.T) {
	records := []model.ComparisonRecord{
		{Category: model.CategoryHighRiskEU, Name: "A"},
		{Category: model.CategoryHighRiskEU, Name: "B"},
		{Category: model.CategoryBannedEUOnly, Name: "C"},
	}
	idx := NewIndex([]model.UsRegulationEntry{
		{CASNumber: "1-1-1", SubstanceName: "A", Status: model.StatusAllowed},
		{CASNumber: "2-2-2", SubstanceName: "B", Status: model.StatusAllowed},
		{CASNumber: "3-3-3", SubstanceName: "C", Status: model.StatusProhibited},
	})

	counts := TallyCategories(records, idx)

	require.Len(t, counts, 4)
	// EU group first, descending by count; US group after.
	assert.Equal(t, model.CategoryCount{Label: "EU: High risk in EU", Group: model.GroupEU, Count: 2}, counts[0])
	assert.Equal(t, model.CategoryCount{Label: "EU: Banned in EU only", Group: model.GroupEU, Count: 1}, counts[1])
	assert.Equal(t, model.CategoryCount{Label: "US: Allowed", Group: model.GroupUS, Count: 2}, counts[2])
	assert.Equal(t, model.CategoryCount{Label: "US: Prohibited", Group: model.GroupUS, Count: 1}, counts[3])
}

func TestTallyCategoriesCountsDistinctCASOnce(t *testing.T) {
	idx := NewIndex([]model.UsRegulationEntry{
		{CASNumber: "1-1-1", SubstanceName: "A", Status: model.StatusAllowed},
		{CASNumber: "1-1-1", SubstanceName: "A", Status: model.StatusProhibited},
	})

	counts := TallyCategories(nil, idx)

	require.Len(t, counts, 1)
	assert.Equal(t, "US: Prohibited", counts[0].Label, "duplicate CAS tallies once, with the winning status")
	assert.Equal(t, 1, counts[0].Count)
}

func restriction(substance, category string, level float64) model.HighRiskRestriction {
	return model.HighRiskRestriction{SubstanceName: substance, FoodCategory: category, MaxLevel: level}
}

func TestSummarizeFoodCategoriesDropsSingleSubstanceCategories(t *testing.T) {
	restrictions := []model.HighRiskRestriction{
		// Three rows but only one distinct substance: must not appear.
		restriction("Lonely", "solo category", 10),
		restriction("Lonely", "solo category", 20),
		restriction("Lonely", "solo category", 30),
		// Two distinct substances: retained.
		restriction("A", "pair category", 10),
		restriction("B", "pair category", 20),
	}

	summaries := SummarizeFoodCategories(restrictions, NewIndex(nil))

	require.Len(t, summaries, 1)
	assert.Equal(t, "pair category", summaries[0].Category)
	assert.Equal(t, 2, summaries[0].SubstanceCount)
}

func TestSummarizeFoodCategoriesTopTen(t *testing.T) {
	var restrictions []model.HighRiskRestriction
	for i := 0; i < 15; i++ {
		category := fmt.Sprintf("category %02d", i)
		for s := 0; s < 17-i; s++ { // strictly decreasing distinct counts
			restrictions = append(restrictions, restriction(fmt.Sprintf("substance %d", s), category, 1))
		}
	}

	summaries := SummarizeFoodCategories(restrictions, NewIndex(nil))

	require.Len(t, summaries, 10)
	for i := 0; i < len(summaries)-1; i++ {
		assert.GreaterOrEqual(t, summaries[i].SubstanceCount, summaries[i+1].SubstanceCount)
	}
	assert.Equal(t, 17, summaries[0].SubstanceCount)
}

func TestSummarizeFoodCategoriesAverageByRowCount(t *testing.T) {
	// Substance A appears twice; the average divides by three rows, not two
	// distinct substances.
	restrictions := []model.HighRiskRestriction{
		restriction("A", "cat", 10),
		restriction("A", "cat", 20),
		restriction("B", "cat", 0.30),
	}

	summaries := SummarizeFoodCategories(restrictions, NewIndex(nil))

	require.Len(t, summaries, 1)
	assert.Equal(t, 2, summaries[0].SubstanceCount)
	assert.InDelta(t, 10.10, summaries[0].AverageLimit, 1e-9) // (10+20+0.30)/3
}

func TestSummarizeFoodCategoriesTruncatesLongLabels(t *testing.T) {
	long := strings.Repeat("x", 55)
	restrictions := []model.HighRiskRestriction{
		restriction("A", long, 1),
		restriction("B", long, 1),
	}

	summaries := SummarizeFoodCategories(restrictions, NewIndex(nil))

	require.Len(t, summaries, 1)
	assert.Equal(t, strings.Repeat("x", 40)+"…", summaries[0].Category)
}

func TestSummarizeFoodCategoriesStatusBreakdown(t *testing.T) {
	idx := NewIndex([]model.UsRegulationEntry{
		{CASNumber: "1-1-1", SubstanceName: "Sodium Benzoate", Status: model.StatusAllowed},
		{CASNumber: "2-2-2", SubstanceName: "Red 3", Status: model.StatusProhibited},
	})
	restrictions := []model.HighRiskRestriction{
		restriction("benzoate", "cat", 1),      // loose match on US name
		restriction("FD&C Red 3 lake", "cat", 1), // loose match the other way
		restriction("Unknownium", "cat", 1),
	}

	summaries := SummarizeFoodCategories(restrictions, idx)

	require.Len(t, summaries, 1)
	assert.Equal(t, 1, summaries[0].UsAllowed)
	assert.Equal(t, 1, summaries[0].UsProhibited)
	assert.Equal(t, 1, summaries[0].NotListed)
}

func TestEnrichHighRisk(t *testing.T) {
	records := []model.ComparisonRecord{
		{Category: model.CategoryHighRiskEU, Name: "Example Acid", CASNumber: "123-45-6", Details: "Limit 10mg/kg"},
		{Category: model.CategoryBannedBoth, Name: "Skipped", CASNumber: "0-0-0"},
		{Category: model.CategoryHighRiskEU, Name: "Unknownium", CASNumber: "no-match"},
	}
	idx := NewIndex([]model.UsRegulationEntry{
		{CASNumber: "123-45-6", SubstanceName: "Example Acid", Status: model.StatusAllowed},
	})

	enriched := EnrichHighRisk(records, idx)

	require.Len(t, enriched, 2, "only the high-risk category is enriched")
	assert.Equal(t, model.EnrichedHighRiskSubstance{
		Name:      "Example Acid",
		CASNumber: "123-45-6",
		Details:   "Limit 10mg/kg",
		UsStatus:  model.StatusAllowed,
	}, enriched[0])
	assert.Equal(t, model.StatusNotListed, enriched[1].UsStatus)
}

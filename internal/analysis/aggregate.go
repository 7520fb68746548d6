package analysis

import (
	"math"

	"github.com/additivelabs/additive-atlas/internal/model"
)

const (
	topCategories     = 10
	categoryLabelMax  = 40
	categoryLabelMore = "…"
)

// TallyCategories counts comparison records per EU category and US entries
// per regulatory status, returning the combined distribution ordered for
// display.
func TallyCategories(records []model.ComparisonRecord, idx *Index) model.CategoryCounts {
	euCounts := make(map[string]int)
	for _, r := range records {
		euCounts["EU: "+r.Category]++
	}

	usCounts := map[model.RegStatus]int{}
	for _, e := range idx.Unique() {
		usCounts[e.Status]++
	}

	counts := make(model.CategoryCounts, 0, len(euCounts)+2)
	for label, count := range euCounts {
		counts = append(counts, model.CategoryCount{Label: label, Group: model.GroupEU, Count: count})
	}
	if n := usCounts[model.StatusAllowed]; n > 0 {
		counts = append(counts, model.CategoryCount{Label: "US: Allowed", Group: model.GroupUS, Count: n})
	}
	if n := usCounts[model.StatusProhibited]; n > 0 {
		counts = append(counts, model.CategoryCount{Label: "US: Prohibited", Group: model.GroupUS, Count: n})
	}

	counts.Sort()
	return counts
}

// foodCategoryAccum folds the restriction rows of one food category.
type foodCategoryAccum struct {
	substances map[string]bool
	order      []string // distinct substances in first-seen order
	rows       int
	totalLimit float64
}

// SummarizeFoodCategories groups EU high-risk restrictions by food category
// and cross-references each category's distinct substances against the US
// lookup using the loose rule. Categories with a single distinct substance
// are dropped; the result is the top ten by substance count.
//
// The average limit divides by contributing row count, not by distinct
// substance count: a substance restricted at several levels in one category
// weighs in with every level.
func SummarizeFoodCategories(restrictions []model.HighRiskRestriction, idx *Index) model.FoodCategorySummaries {
	accums := make(map[string]*foodCategoryAccum)
	var categoryOrder []string

	for _, r := range restrictions {
		acc, ok := accums[r.FoodCategory]
		if !ok {
			acc = &foodCategoryAccum{substances: make(map[string]bool)}
			accums[r.FoodCategory] = acc
			categoryOrder = append(categoryOrder, r.FoodCategory)
		}
		if !acc.substances[r.SubstanceName] {
			acc.substances[r.SubstanceName] = true
			acc.order = append(acc.order, r.SubstanceName)
		}
		acc.rows++
		acc.totalLimit += r.MaxLevel
	}

	var summaries model.FoodCategorySummaries
	for _, category := range categoryOrder {
		acc := accums[category]
		if len(acc.substances) <= 1 {
			continue
		}

		summary := model.FoodCategorySummary{
			Category:       truncateLabel(category),
			SubstanceCount: len(acc.substances),
			AverageLimit:   round2(acc.totalLimit / float64(acc.rows)),
		}
		for _, name := range acc.order {
			switch idx.ResolveLoose("", name) {
			case model.StatusAllowed:
				summary.UsAllowed++
			case model.StatusProhibited:
				summary.UsProhibited++
			default:
				summary.NotListed++
			}
		}
		summaries = append(summaries, summary)
	}

	return summaries.TopN(topCategories)
}

// EnrichHighRisk joins the "High risk in EU" comparison records with their
// US status, resolved by the strict rule.
func EnrichHighRisk(records []model.ComparisonRecord, idx *Index) []model.EnrichedHighRiskSubstance {
	var enriched []model.EnrichedHighRiskSubstance
	for _, r := range records {
		if r.Category != model.CategoryHighRiskEU {
			continue
		}
		enriched = append(enriched, model.EnrichedHighRiskSubstance{
			Name:      r.Name,
			CASNumber: r.CASNumber,
			Details:   r.Details,
			UsStatus:  idx.Resolve(r.CASNumber, r.Name),
		})
	}
	return enriched
}

func truncateLabel(label string) string {
	runes := []rune(label)
	if len(runes) <= categoryLabelMax {
		return label
	}
	return string(runes[:categoryLabelMax]) + categoryLabelMore
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

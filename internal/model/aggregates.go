package model

import "sort"

// CategoryCount is one labeled slice of the category distribution chart.
// Labels are prefixed by their source ("EU: <category>", "US: Allowed",
// "US: Prohibited") and carry a group tag so the chart can keep the two
// jurisdictions visually separate.
type CategoryCount struct {
	Label string `json:"label"`
	Group string `json:"group"` // GroupEU or GroupUS
	Count int    `json:"count"`
}

// CategoryCounts is a slice of CategoryCount that sorts for display:
// grouped by tag (EU before US), descending by count within a group,
// label ascending as the tiebreak.
type CategoryCounts []CategoryCount

// Len implements sort.Interface.
func (c CategoryCounts) Len() int { return len(c) }

// Less implements sort.Interface.
func (c CategoryCounts) Less(i, j int) bool {
	if c[i].Group != c[j].Group {
		return c[i].Group < c[j].Group // "EU" sorts before "US"
	}
	if c[i].Count != c[j].Count {
		return c[i].Count > c[j].Count
	}
	return c[i].Label < c[j].Label
}

// Swap implements sort.Interface.
func (c CategoryCounts) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Sort orders the counts for display.
func (c CategoryCounts) Sort() { sort.Sort(c) }

// Total returns the sum of all counts.
func (c CategoryCounts) Total() int {
	total := 0
	for _, cc := range c {
		total += cc.Count
	}
	return total
}

// FoodCategorySummary aggregates the EU high-risk restrictions of one food
// category and the US status breakdown of its distinct substances.
type FoodCategorySummary struct {
	Category       string  `json:"category"` // truncated to 40 chars + ellipsis for display
	SubstanceCount int     `json:"substanceCount"` // distinct substance names
	AverageLimit   float64 `json:"averageLimit"`
	UsAllowed      int     `json:"usAllowed"`
	UsProhibited   int     `json:"usProhibited"`
	NotListed      int     `json:"notListed"`
}

// FoodCategorySummaries supports sorting and top-N selection.
type FoodCategorySummaries []FoodCategorySummary

// Len implements sort.Interface.
func (s FoodCategorySummaries) Len() int { return len(s) }

// Less implements sort.Interface - more substances come first.
func (s FoodCategorySummaries) Less(i, j int) bool {
	if s[i].SubstanceCount != s[j].SubstanceCount {
		return s[i].SubstanceCount > s[j].SubstanceCount
	}
	return s[i].Category < s[j].Category
}

// Swap implements sort.Interface.
func (s FoodCategorySummaries) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

// TopN sorts the summaries and returns the N with the most substances.
func (s FoodCategorySummaries) TopN(n int) FoodCategorySummaries {
	if n <= 0 {
		return FoodCategorySummaries{}
	}
	sort.Sort(s)
	if n > len(s) {
		n = len(s)
	}
	result := make(FoodCategorySummaries, n)
	copy(result, s[:n])
	return result
}

// EnrichedHighRiskSubstance is a comparison record from the "High risk in EU"
// category joined with its resolved US regulatory status.
type EnrichedHighRiskSubstance struct {
	Name      string    `json:"name"`
	CASNumber string    `json:"casNumber"`
	Details   string    `json:"details"`
	UsStatus  RegStatus `json:"usStatus"`
}

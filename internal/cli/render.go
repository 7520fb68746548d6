package cli

import (
	"fmt"
	"strings"

	"github.com/additivelabs/additive-atlas/internal/analysis"
	"github.com/additivelabs/additive-atlas/internal/model"
)

const detailColumnWidth = 60

// RenderReport renders the four aggregates as styled terminal tables,
// mirroring the sections of the original comparison page: category
// distribution, food-category summaries, the high-risk substances table, and
// a key-findings box.
func RenderReport(report *analysis.Report) string {
	var b strings.Builder

	b.WriteString(FormatTitle("US/EU Food-Additive Regulation Report"))
	b.WriteString("\n\n")

	renderTally(&b, report.CategoryTally)
	renderFoodCategories(&b, report.FoodCategories)
	renderHighRisk(&b, report.HighRisk)
	renderFindings(&b, report)

	return b.String()
}

func renderTally(b *strings.Builder, counts model.CategoryCounts) {
	b.WriteString(TitleStyle.Render(ChartIcon + " Substance Distribution by Category"))
	b.WriteString("\n")
	b.WriteString(HeaderStyle.Render(fmt.Sprintf("%-40s %8s", "Label", "Count")))
	b.WriteString("\n")
	for _, c := range counts {
		b.WriteString(fmt.Sprintf("%-40s %8d\n", c.Label, c.Count))
	}
	b.WriteString("\n")
}

func renderFoodCategories(b *strings.Builder, summaries model.FoodCategorySummaries) {
	b.WriteString(TitleStyle.Render(ChartIcon + " Top Food Categories by High-Risk Substances"))
	b.WriteString("\n")
	b.WriteString(HeaderStyle.Render(fmt.Sprintf("%-42s %10s %10s %8s %11s %10s",
		"Food Category", "Substances", "Avg Limit", "Allowed", "Prohibited", "Not Listed")))
	b.WriteString("\n")
	for _, s := range summaries {
		b.WriteString(fmt.Sprintf("%-42s %10d %10.2f %8d %11d %10d\n",
			s.Category, s.SubstanceCount, s.AverageLimit, s.UsAllowed, s.UsProhibited, s.NotListed))
	}
	b.WriteString("\n")
}

func renderHighRisk(b *strings.Builder, substances []model.EnrichedHighRiskSubstance) {
	b.WriteString(TitleStyle.Render(TableIcon + " High-Risk Substances (EU) vs US Status"))
	b.WriteString("\n")
	b.WriteString(HeaderStyle.Render(fmt.Sprintf("%-30s %-14s %-12s %s",
		"Substance", "CAS Number", "US Status", "Restrictions")))
	b.WriteString("\n")
	for _, s := range substances {
		b.WriteString(fmt.Sprintf("%-30s %-14s %-12s %s\n",
			clip(s.Name, 30), s.CASNumber, StatusText(s.UsStatus), SubtleStyle.Render(clip(s.Details, detailColumnWidth))))
	}
	b.WriteString("\n")
}

func renderFindings(b *strings.Builder, report *analysis.Report) {
	content := fmt.Sprintf(
		"High-risk substances:  %d\nCategories analyzed:   %d\nTotal tallied records: %d\nUS entries indexed:    %d",
		len(report.HighRisk),
		len(report.CategoryTally),
		report.CategoryTally.Total(),
		len(report.UsEntries))
	b.WriteString(RenderBox("Key Findings", content))
	b.WriteString("\n")
}

// StatusText colors a US regulatory status for terminal display.
func StatusText(status model.RegStatus) string {
	switch status {
	case model.StatusAllowed:
		return AllowedStyle.Render(string(status))
	case model.StatusProhibited:
		return ProhibitedStyle.Render(string(status))
	default:
		return NotListedStyle.Render(string(status))
	}
}

// clip shortens a value to fit its column.
func clip(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}

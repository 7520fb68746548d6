package analysis

import (
	"context"
	"log/slog"

	"github.com/additivelabs/additive-atlas/internal/common"
	"github.com/additivelabs/additive-atlas/internal/dataset"
	"github.com/additivelabs/additive-atlas/internal/fetch"
	"github.com/additivelabs/additive-atlas/internal/model"
)

// Source provides the raw text of the three documents. *fetch.Client
// satisfies it; tests substitute stubs.
type Source interface {
	All(ctx context.Context) (*fetch.Documents, error)
}

// Report holds every aggregate the presentation layer consumes. A Report is
// rebuilt from scratch on every load and never updated in place.
type Report struct {
	CategoryTally  model.CategoryCounts
	FoodCategories model.FoodCategorySummaries
	HighRisk       []model.EnrichedHighRiskSubstance
	UsEntries      []model.UsRegulationEntry
}

// Load runs the whole pipeline: fetch all three documents, decode them,
// build the US lookup, and compute the aggregates. Any document-level
// failure aborts the load with a single user-facing error; partial results
// never escape. Row-level malformations are filtered during decoding and
// never surface here.
func Load(ctx context.Context, src Source) (*Report, error) {
	docs, err := src.All(ctx)
	if err != nil {
		return nil, common.NewUserError("unable to load regulation datasets", err)
	}
	// The fetches may have resolved after the caller gave up; don't hand a
	// stale result to anyone.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	comparison := dataset.DecodeComparison(docs.Comparison)
	restrictions := dataset.DecodeHighRisk(docs.HighRisk)
	entries := dataset.DecodeIndirect(docs.Indirect)
	idx := NewIndex(entries)

	report := &Report{
		CategoryTally:  TallyCategories(comparison, idx),
		FoodCategories: SummarizeFoodCategories(restrictions, idx),
		HighRisk:       EnrichHighRisk(comparison, idx),
		UsEntries:      idx.Unique(),
	}

	slog.Info("Built regulation report",
		"comparison_records", len(comparison),
		"restriction_rows", len(restrictions),
		"us_entries", idx.Len(),
		"tally_labels", len(report.CategoryTally),
		"food_categories", len(report.FoodCategories),
		"high_risk_substances", len(report.HighRisk))

	return report, nil
}

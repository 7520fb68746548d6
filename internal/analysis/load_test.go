package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/additivelabs/additive-atlas/internal/common"
	"github.com/additivelabs/additive-atlas/internal/fetch"
	"github.com/additivelabs/additive-atlas/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	docs *fetch.Documents
	err  error
}

func (s *stubSource) All(_ context.Context) (*fetch.Documents, error) {
	return s.docs, s.err
}

func usDoc(rows ...string) string {
	header := strings.Join(make([]string, 30), ",")
	return "meta\nmeta\nmeta\nmeta\n" + header + "\n" + strings.Join(rows, "\n") + "\n"
}

func usRow(cas, name, prohibited string) string {
	fields := make([]string, 30)
	fields[0] = cas
	fields[1] = name
	fields[29] = prohibited
	return strings.Join(fields, ",")
}

func TestLoadEndToEnd(t *testing.T) {
	src := &stubSource{docs: &fetch.Documents{
		Comparison: "Category,Substance Name,US CAS Number,Details\n" +
			"High risk in EU,Example Acid,123-45-6,Limit 10mg/kg\n",
		HighRisk: "e_code,name,category,max_level,note\n" +
			"E100,Example Acid,beverages,10,note\n" +
			"E101,Other Acid,beverages,20,note\n",
		Indirect: usDoc(usRow("123-45-6", "Example Acid", "")),
	}}

	report, err := Load(context.Background(), src)
	require.NoError(t, err)

	require.Len(t, report.HighRisk, 1)
	assert.Equal(t, model.EnrichedHighRiskSubstance{
		Name:      "Example Acid",
		CASNumber: "123-45-6",
		Details:   "Limit 10mg/kg",
		UsStatus:  model.StatusAllowed,
	}, report.HighRisk[0])

	require.Len(t, report.UsEntries, 1)
	assert.Equal(t, "123-45-6", report.UsEntries[0].CASNumber)

	// One EU label, one US label.
	require.Len(t, report.CategoryTally, 2)
	assert.Equal(t, "EU: High risk in EU", report.CategoryTally[0].Label)
	assert.Equal(t, "US: Allowed", report.CategoryTally[1].Label)

	// beverages has two distinct substances, average (10+20)/2.
	require.Len(t, report.FoodCategories, 1)
	assert.Equal(t, "beverages", report.FoodCategories[0].Category)
	assert.Equal(t, 2, report.FoodCategories[0].SubstanceCount)
	assert.InDelta(t, 15.0, report.FoodCategories[0].AverageLimit, 1e-9)
}

func TestLoadFetchFailureAbortsEverything(t *testing.T) {
	cause := errors.New("connection refused")
	src := &stubSource{err: cause}

	report, err := Load(context.Background(), src)

	require.Error(t, err)
	assert.Nil(t, report, "a failed fetch must never yield partial aggregates")
	assert.ErrorIs(t, err, cause)

	var userErr *common.UserError
	assert.True(t, errors.As(err, &userErr), "document failures surface as a single user-visible error")
}

func TestLoadDiscardsResultAfterCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// The source "succeeds" even though the caller already gave up.
	src := &stubSource{docs: &fetch.Documents{}}

	report, err := Load(ctx, src)

	assert.Nil(t, report)
	assert.ErrorIs(t, err, context.Canceled)
}

package planner

import (
	"testing"

	"vivek/budget-buddy/internal/categories"
	"vivek/budget-buddy/internal/logging"
	"vivek/budget-buddy/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestGenerateStandardAllocation(t *testing.T) {
	profile := models.Profile{
		models.FieldMonthlyIncome:  d("1000"),
		models.FieldFinancialAid:   d("0"),
		models.FieldHousing:        d("400"),
		models.FieldTuition:        d("200"),
		models.FieldTransportation: d("50"),
	}

	plan := New(&logging.MockLogger{}).Generate(profile)

	assert.Equal(t, "1000", plan.TotalIncome.String())
	assert.Equal(t, "33.33", plan.FixedCosts[models.FieldTuition].String())
	assert.Equal(t, "400", plan.FixedCosts[models.FieldHousing].String())
	assert.Equal(t, "50", plan.FixedCosts[models.FieldTransportation].String())
	assert.Equal(t, "516.67", plan.DisposableIncome.String())

	expectedLimits := map[string]string{
		categories.Food:           "180.83",
		categories.BooksSupplies:  "77.5",
		categories.Entertainment:  "51.67",
		categories.PersonalCare:   "51.67",
		categories.Technology:     "51.67",
		categories.HealthWellness: "51.67",
		categories.Miscellaneous:  "51.67",
	}
	require.Len(t, plan.CategoryLimits, len(expectedLimits))
	for cat, want := range expectedLimits {
		assert.Equal(t, want, plan.CategoryLimits[cat].String(), "limit for %s", cat)
	}

	assert.Equal(t, []string{RecommendationCovered, RecommendationStandard}, plan.Recommendations)
}

func TestGenerateSurvivalMode(t *testing.T) {
	profile := models.Profile{
		models.FieldMonthlyIncome: d("300"),
		models.FieldHousing:       d("400"),
	}

	plan := New(&logging.MockLogger{}).Generate(profile)

	assert.Equal(t, "-100", plan.DisposableIncome.String())
	assert.Equal(t, []string{RecommendationCritical}, plan.Recommendations)
	require.Len(t, plan.CategoryLimits, len(categories.Variable))
	for _, cat := range categories.Variable {
		assert.True(t, plan.CategoryLimits[cat].IsZero(), "limit for %s should be zero", cat)
	}
}

func TestGenerateHistoricalSaving(t *testing.T) {
	// Variable spending below disposable income: habits become the limits unchanged.
	profile := models.Profile{
		models.FieldMonthlyIncome: d("1000"),
		models.FieldHousing:       d("400"),
		categories.Food:           d("200"),
		categories.Entertainment:  d("100"),
	}

	plan := New(&logging.MockLogger{}).Generate(profile)

	assert.Equal(t, "600", plan.DisposableIncome.String())
	assert.Equal(t, "200", plan.CategoryLimits[categories.Food].String())
	assert.Equal(t, "100", plan.CategoryLimits[categories.Entertainment].String())
	assert.True(t, plan.CategoryLimits[categories.Technology].IsZero())
	assert.Equal(t, []string{RecommendationCovered, RecommendationSaving}, plan.Recommendations)
}

func TestGenerateHistoricalOverspending(t *testing.T) {
	// Spending 800 against 600 disposable: every limit scales by 600/800.
	profile := models.Profile{
		models.FieldMonthlyIncome: d("1000"),
		models.FieldHousing:       d("400"),
		categories.Food:           d("600"),
		categories.Entertainment:  d("200"),
	}

	plan := New(&logging.MockLogger{}).Generate(profile)

	assert.Equal(t, "450", plan.CategoryLimits[categories.Food].String())
	assert.Equal(t, "150", plan.CategoryLimits[categories.Entertainment].String())
	assert.Equal(t, []string{RecommendationCovered, RecommendationOverspending}, plan.Recommendations)
}

func TestGenerateEmptyProfile(t *testing.T) {
	plan := New(&logging.MockLogger{}).Generate(models.Profile{})

	assert.True(t, plan.TotalIncome.IsZero())
	assert.True(t, plan.DisposableIncome.IsZero())
	// Zero disposable income is not survival mode; standard allocation applies.
	assert.Equal(t, []string{RecommendationCovered, RecommendationStandard}, plan.Recommendations)
	for _, cat := range categories.Variable {
		assert.True(t, plan.CategoryLimits[cat].IsZero())
	}
}

func TestTuitionMonthsConfigurable(t *testing.T) {
	profile := models.Profile{
		models.FieldMonthlyIncome: d("1000"),
		models.FieldTuition:       d("1200"),
	}

	tests := []struct {
		name    string
		months  int
		tuition string
	}{
		{"default six months", DefaultTuitionMonths, "200"},
		{"full year", 12, "100"},
		{"invalid falls back to default", 0, "200"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := NewWithTuitionMonths(tt.months, &logging.MockLogger{}).Generate(profile)
			assert.Equal(t, tt.tuition, plan.FixedCosts[models.FieldTuition].String())
		})
	}
}

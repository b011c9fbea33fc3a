package analyzer

import (
	"fmt"
	"testing"
	"time"

	"vivek/budget-buddy/internal/logging"
	"vivek/budget-buddy/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(date, category, amount string) models.Transaction {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return models.Transaction{
		Date:     d,
		Category: category,
		Amount:   decimal.RequireFromString(amount),
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	analysis := New(&logging.MockLogger{}).Analyze(nil)

	assert.True(t, analysis.TotalSpent.IsZero())
	assert.True(t, analysis.AverageDailySpending.IsZero())
	assert.Empty(t, analysis.CategoryBreakdown)
	assert.Empty(t, analysis.MonthlySpending)
	assert.Empty(t, analysis.TopCategories)
}

func TestAnalyzeAggregates(t *testing.T) {
	transactions := []models.Transaction{
		tx("2024-03-01", "market", "50"),
		tx("2024-03-01", "taxi", "20"),
		tx("2024-03-15", "market", "30"),
		tx("2024-04-02", "events", "40"),
	}

	analysis := New(&logging.MockLogger{}).Analyze(transactions)

	assert.Equal(t, "140", analysis.TotalSpent.String())
	assert.Equal(t, "80", analysis.CategoryBreakdown["market"].String())
	assert.Equal(t, "20", analysis.CategoryBreakdown["taxi"].String())
	assert.Equal(t, "100", analysis.MonthlySpending["2024-03"].String())
	assert.Equal(t, "40", analysis.MonthlySpending["2024-04"].String())
}

func TestAverageDailySpendingCountsActiveDaysOnly(t *testing.T) {
	// 90 spent across two distinct days; the gap days do not dilute the average.
	transactions := []models.Transaction{
		tx("2024-03-01", "market", "40"),
		tx("2024-03-01", "taxi", "20"),
		tx("2024-03-20", "market", "30"),
	}

	analysis := New(&logging.MockLogger{}).Analyze(transactions)

	assert.Equal(t, "45", analysis.AverageDailySpending.String())
}

func TestTopCategoriesRankingAndCap(t *testing.T) {
	var transactions []models.Transaction
	for i := 0; i < 7; i++ {
		transactions = append(transactions, tx("2024-03-01", fmt.Sprintf("cat%d", i), fmt.Sprintf("%d", (i+1)*10)))
	}

	analysis := New(&logging.MockLogger{}).Analyze(transactions)

	require.Len(t, analysis.TopCategories, TopCategoryCount)
	assert.Equal(t, "cat6", analysis.TopCategories[0].Category)
	assert.Equal(t, "70", analysis.TopCategories[0].Amount.String())
	assert.Equal(t, "cat2", analysis.TopCategories[4].Category)
}

func TestTopCategoriesTieBreaksByName(t *testing.T) {
	transactions := []models.Transaction{
		tx("2024-03-01", "zebra", "50"),
		tx("2024-03-01", "apple", "50"),
		tx("2024-03-01", "mango", "50"),
	}

	analysis := New(&logging.MockLogger{}).Analyze(transactions)

	require.Len(t, analysis.TopCategories, 3)
	assert.Equal(t, "apple", analysis.TopCategories[0].Category)
	assert.Equal(t, "mango", analysis.TopCategories[1].Category)
	assert.Equal(t, "zebra", analysis.TopCategories[2].Category)
}

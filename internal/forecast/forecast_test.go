package forecast

import (
	"testing"
	"time"

	"vivek/budget-buddy/internal/logging"
	"vivek/budget-buddy/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func tx(date, amount string) models.Transaction {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return models.Transaction{Date: d, Category: "market", Amount: decimal.RequireFromString(amount)}
}

func TestPredictLinearTrend(t *testing.T) {
	// 100, 200, 300 over three months extrapolates to 400.
	transactions := []models.Transaction{
		tx("2024-01-10", "100"),
		tx("2024-02-10", "200"),
		tx("2024-03-10", "300"),
	}

	forecast := New(&logging.MockLogger{}).Predict(transactions)

	assert.Equal(t, "400", forecast.PredictedSpending.String())
	assert.Equal(t, models.TrendIncreasing, forecast.Trend)
	assert.Empty(t, forecast.Note)
}

func TestPredictDecreasingTrend(t *testing.T) {
	transactions := []models.Transaction{
		tx("2024-01-10", "300"),
		tx("2024-02-10", "100"),
	}

	forecast := New(&logging.MockLogger{}).Predict(transactions)

	assert.Equal(t, "-100", forecast.PredictedSpending.String())
	assert.Equal(t, models.TrendDecreasing, forecast.Trend)
}

func TestPredictFlatSpendingIsDecreasing(t *testing.T) {
	// A zero slope is classified as decreasing, not as a third state.
	transactions := []models.Transaction{
		tx("2024-01-10", "150"),
		tx("2024-02-10", "150"),
		tx("2024-03-10", "150"),
	}

	forecast := New(&logging.MockLogger{}).Predict(transactions)

	assert.Equal(t, "150", forecast.PredictedSpending.String())
	assert.Equal(t, models.TrendDecreasing, forecast.Trend)
}

func TestPredictSingleMonth(t *testing.T) {
	transactions := []models.Transaction{
		tx("2024-01-10", "80"),
		tx("2024-01-20", "20"),
	}

	forecast := New(&logging.MockLogger{}).Predict(transactions)

	assert.Equal(t, "100", forecast.PredictedSpending.String())
	assert.Empty(t, forecast.Trend)
	assert.Equal(t, NoteInsufficientData, forecast.Note)
}

func TestPredictNoData(t *testing.T) {
	forecast := New(&logging.MockLogger{}).Predict(nil)

	assert.True(t, forecast.PredictedSpending.IsZero())
	assert.Empty(t, forecast.Trend)
	assert.Equal(t, NoteInsufficientData, forecast.Note)
}

func TestPredictOrdersMonthsChronologically(t *testing.T) {
	// Input order does not matter; months are sorted before fitting.
	transactions := []models.Transaction{
		tx("2024-03-10", "300"),
		tx("2024-01-10", "100"),
		tx("2024-02-10", "200"),
	}

	forecast := New(&logging.MockLogger{}).Predict(transactions)

	assert.Equal(t, "400", forecast.PredictedSpending.String())
	assert.Equal(t, models.TrendIncreasing, forecast.Trend)
}

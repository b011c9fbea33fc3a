// Package forecast predicts next-month spending from transaction history.
package forecast

import (
	"sort"

	"vivek/budget-buddy/internal/dateutils"
	"vivek/budget-buddy/internal/logging"
	"vivek/budget-buddy/internal/models"

	"github.com/shopspring/decimal"
)

// NoteInsufficientData marks a degenerate forecast produced from fewer than
// two months of history.
const NoteInsufficientData = "Not enough data for regression"

// Engine fits a linear trend over monthly spending totals.
type Engine struct {
	logger logging.Logger
}

// New creates a forecasting engine.
func New(logger logging.Logger) *Engine {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Engine{logger: logger}
}

// Predict groups the transactions into chronological monthly totals and fits
// an ordinary least squares line over them, predicting the total for the
// month after the last observed one. With fewer than two months of data it
// returns the single available total (or zero) tagged with a note instead of
// failing.
func (e *Engine) Predict(transactions []models.Transaction) models.Forecast {
	totals := monthlyTotals(transactions)

	if len(totals) < 2 {
		forecast := models.Forecast{Note: NoteInsufficientData}
		if len(totals) == 1 {
			forecast.PredictedSpending = totals[0]
		} else {
			forecast.PredictedSpending = decimal.Zero
		}
		e.logger.WithField(logging.FieldCount, len(totals)).Debug("Too few months for regression")
		return forecast
	}

	slope, intercept := fitLine(totals)
	predicted := slope*float64(len(totals)) + intercept

	trend := models.TrendDecreasing
	if slope > 0 {
		trend = models.TrendIncreasing
	}

	e.logger.WithFields(
		logging.Field{Key: logging.FieldCount, Value: len(totals)},
		logging.Field{Key: "slope", Value: slope},
	).Debug("Spending forecast computed")

	return models.Forecast{
		PredictedSpending: decimal.NewFromFloat(predicted).Round(2),
		Trend:             trend,
	}
}

// monthlyTotals sums amounts per calendar month and returns the totals in
// chronological order. The "2006-01" month keys sort lexicographically in
// date order.
func monthlyTotals(transactions []models.Transaction) []decimal.Decimal {
	byMonth := map[string]decimal.Decimal{}
	for _, tx := range transactions {
		month := dateutils.MonthKey(tx.Date)
		byMonth[month] = byMonth[month].Add(tx.Amount)
	}

	months := make([]string, 0, len(byMonth))
	for month := range byMonth {
		months = append(months, month)
	}
	sort.Strings(months)

	totals := make([]decimal.Decimal, len(months))
	for i, month := range months {
		totals[i] = byMonth[month]
	}
	return totals
}

// fitLine fits y = slope*x + intercept by ordinary least squares over the
// totals indexed 0..n-1. Callers guarantee n >= 2.
func fitLine(totals []decimal.Decimal) (slope, intercept float64) {
	n := float64(len(totals))
	var sumX, sumY, sumXY, sumXX float64
	for i, total := range totals {
		x := float64(i)
		y := total.InexactFloat64()
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	slope = (n*sumXY - sumX*sumY) / (n*sumXX - sumX*sumX)
	intercept = (sumY - slope*sumX) / n
	return slope, intercept
}

// Package analyzer aggregates a transaction history into spending statistics.
package analyzer

import (
	"sort"

	"vivek/budget-buddy/internal/dateutils"
	"vivek/budget-buddy/internal/logging"
	"vivek/budget-buddy/internal/models"

	"github.com/shopspring/decimal"
)

// TopCategoryCount caps the ranked category list in an analysis.
const TopCategoryCount = 5

// Analyzer computes spending statistics from raw transactions. No category
// mapping happens here; breakdowns are keyed by the free-text category as
// found in the source data.
type Analyzer struct {
	logger logging.Logger
}

// New creates an Analyzer.
func New(logger logging.Logger) *Analyzer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Analyzer{logger: logger}
}

// Analyze aggregates the transaction set. An empty set is legal and yields
// zero totals and empty maps.
//
// The daily average is the mean of per-calendar-day sums; days without any
// transaction do not contribute zero samples, so it answers "how much do I
// spend on a day I spend at all", not "total divided by calendar days".
func (a *Analyzer) Analyze(transactions []models.Transaction) models.SpendingAnalysis {
	analysis := models.SpendingAnalysis{
		TotalSpent:        decimal.Zero,
		CategoryBreakdown: map[string]decimal.Decimal{},
		MonthlySpending:   map[string]decimal.Decimal{},
		TopCategories:     []models.CategoryTotal{},
	}

	days := map[string]struct{}{}
	for _, tx := range transactions {
		analysis.TotalSpent = analysis.TotalSpent.Add(tx.Amount)
		analysis.CategoryBreakdown[tx.Category] = analysis.CategoryBreakdown[tx.Category].Add(tx.Amount)

		month := dateutils.MonthKey(tx.Date)
		analysis.MonthlySpending[month] = analysis.MonthlySpending[month].Add(tx.Amount)

		days[dateutils.ToISODate(tx.Date)] = struct{}{}
	}

	if len(days) > 0 {
		analysis.AverageDailySpending = analysis.TotalSpent.Div(decimal.NewFromInt(int64(len(days))))
	}

	analysis.TopCategories = topCategories(analysis.CategoryBreakdown)

	a.logger.WithFields(
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
		logging.Field{Key: logging.FieldAmount, Value: analysis.TotalSpent},
	).Debug("Spending analysis complete")

	return analysis
}

// topCategories ranks categories by total spend, descending, ties broken by
// name so the output is stable. At most TopCategoryCount entries are returned.
func topCategories(breakdown map[string]decimal.Decimal) []models.CategoryTotal {
	ranked := make([]models.CategoryTotal, 0, len(breakdown))
	for category, amount := range breakdown {
		ranked = append(ranked, models.CategoryTotal{Category: category, Amount: amount})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if !ranked[i].Amount.Equal(ranked[j].Amount) {
			return ranked[i].Amount.GreaterThan(ranked[j].Amount)
		}
		return ranked[i].Category < ranked[j].Category
	})

	if len(ranked) > TopCategoryCount {
		ranked = ranked[:TopCategoryCount]
	}
	return ranked
}

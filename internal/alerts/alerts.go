// Package alerts reconciles analyzed spending against budget limits.
package alerts

import (
	"fmt"
	"strings"

	"vivek/budget-buddy/internal/categories"
	"vivek/budget-buddy/internal/logging"
	"vivek/budget-buddy/internal/models"

	"github.com/shopspring/decimal"
)

// defaultNearLimitRatio is the fraction of a limit at which a near-limit
// warning fires.
const defaultNearLimitRatio = 0.9

// Engine maps raw spending onto canonical categories and emits threshold
// alerts against a budget plan's limits.
type Engine struct {
	mapper    *categories.Mapper
	nearRatio decimal.Decimal
	logger    logging.Logger
}

// New creates an alert engine with the default 90% near-limit threshold.
func New(mapper *categories.Mapper, logger logging.Logger) *Engine {
	return NewWithRatio(mapper, defaultNearLimitRatio, logger)
}

// NewWithRatio creates an alert engine with a custom near-limit threshold.
// Ratios outside (0, 1) fall back to the default.
func NewWithRatio(mapper *categories.Mapper, nearRatio float64, logger logging.Logger) *Engine {
	if mapper == nil {
		mapper = categories.NewMapper()
	}
	if nearRatio <= 0 || nearRatio >= 1 {
		nearRatio = defaultNearLimitRatio
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Engine{
		mapper:    mapper,
		nearRatio: decimal.NewFromFloat(nearRatio),
		logger:    logger,
	}
}

// Check aggregates the analysis' raw category breakdown into canonical
// categories and compares each against the plan's limits. Alerts are emitted
// in the canonical category declaration order. Spend aggregated under a
// category without a limit (transportation, which is budgeted as a fixed
// cost) is reported in AggregatedSpending but never alerts.
func (e *Engine) Check(plan models.BudgetPlan, analysis models.SpendingAnalysis) models.AlertsResult {
	result := models.AlertsResult{
		Alerts:             []string{},
		AggregatedSpending: map[string]decimal.Decimal{},
	}

	for raw, amount := range analysis.CategoryBreakdown {
		canonical := e.mapper.Map(strings.ToLower(raw))
		result.AggregatedSpending[canonical] = result.AggregatedSpending[canonical].Add(amount)
	}

	for _, cat := range categories.Variable {
		limit, ok := plan.CategoryLimits[cat]
		if !ok {
			continue
		}
		actual := result.AggregatedSpending[cat]

		switch {
		case actual.GreaterThan(limit):
			result.Alerts = append(result.Alerts,
				fmt.Sprintf("⚠️ Overspending in %s: Spent $%s vs Limit $%s", cat, actual.StringFixed(2), limit.StringFixed(2)))
			e.logger.WithFields(
				logging.Field{Key: logging.FieldCategory, Value: cat},
				logging.Field{Key: logging.FieldAmount, Value: actual},
				logging.Field{Key: logging.FieldLimit, Value: limit},
			).Debug("Overspending alert raised")
		case actual.GreaterThan(limit.Mul(e.nearRatio)):
			result.Alerts = append(result.Alerts,
				fmt.Sprintf("⚠️ Near limit in %s: Spent $%s vs Limit $%s", cat, actual.StringFixed(2), limit.StringFixed(2)))
		}
	}

	return result
}

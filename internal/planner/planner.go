// Package planner derives a monthly budget plan from a student profile.
package planner

import (
	"vivek/budget-buddy/internal/categories"
	"vivek/budget-buddy/internal/logging"
	"vivek/budget-buddy/internal/models"

	"github.com/shopspring/decimal"
)

// Recommendations attached to generated plans. The wording is part of the
// output contract and is matched by downstream consumers.
const (
	RecommendationCritical     = "⚠️ Critical: Your fixed expenses exceed your income. Seek financial aid or reduce housing costs."
	RecommendationCovered      = "✅ Income covers fixed costs."
	RecommendationSaving       = "You are saving money! Great job."
	RecommendationOverspending = "⚠️ You are overspending your disposable income. Reducing variable spending is advised."
	RecommendationStandard     = "ℹ️ Using standard student budget allocation rules."
)

// DefaultTuitionMonths spreads a semester tuition bill across six monthly payments.
const DefaultTuitionMonths = 6

// Planner turns a profile into a budget plan. Generate is a pure function of
// its input; the planner itself only carries configuration.
type Planner struct {
	tuitionMonths decimal.Decimal
	logger        logging.Logger
}

// New creates a Planner with the default tuition split.
func New(logger logging.Logger) *Planner {
	return NewWithTuitionMonths(DefaultTuitionMonths, logger)
}

// NewWithTuitionMonths creates a Planner spreading tuition over the given
// number of months. Values below one fall back to the default.
func NewWithTuitionMonths(months int, logger logging.Logger) *Planner {
	if months < 1 {
		months = DefaultTuitionMonths
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Planner{
		tuitionMonths: decimal.NewFromInt(int64(months)),
		logger:        logger,
	}
}

// Generate derives a budget plan from the profile. Missing profile fields read
// as zero, so a sparse profile is fine. The plan is built in one of three
// modes: survival (fixed costs exceed income, every limit zero), historical
// (scale the profile's past variable spending to fit disposable income) or
// standard allocation (fixed percentage split for new users).
func (p *Planner) Generate(profile models.Profile) models.BudgetPlan {
	totalIncome := profile.Get(models.FieldMonthlyIncome).Add(profile.Get(models.FieldFinancialAid))

	fixedCosts := map[string]decimal.Decimal{
		models.FieldTuition:        profile.Get(models.FieldTuition).Div(p.tuitionMonths).Round(2),
		models.FieldHousing:        profile.Get(models.FieldHousing),
		models.FieldTransportation: profile.Get(models.FieldTransportation),
	}

	totalFixed := decimal.Zero
	for _, cost := range fixedCosts {
		totalFixed = totalFixed.Add(cost)
	}
	disposable := totalIncome.Sub(totalFixed)

	plan := models.BudgetPlan{
		TotalIncome:      totalIncome,
		FixedCosts:       fixedCosts,
		DisposableIncome: disposable,
		CategoryLimits:   make(map[string]decimal.Decimal, len(categories.Variable)),
		Recommendations:  []string{},
	}

	if disposable.IsNegative() {
		plan.Recommendations = append(plan.Recommendations, RecommendationCritical)
		for _, cat := range categories.Variable {
			plan.CategoryLimits[cat] = decimal.Zero
		}
		p.logger.WithField(logging.FieldAmount, disposable).Warn("Fixed costs exceed income, survival budget applied")
		return plan
	}

	plan.Recommendations = append(plan.Recommendations, RecommendationCovered)

	currentSpending := decimal.Zero
	for _, cat := range categories.Variable {
		currentSpending = currentSpending.Add(profile.Get(cat))
	}

	if currentSpending.IsPositive() {
		factor := decimal.NewFromInt(1)
		if disposable.GreaterThan(currentSpending) {
			plan.Recommendations = append(plan.Recommendations, RecommendationSaving)
		} else {
			plan.Recommendations = append(plan.Recommendations, RecommendationOverspending)
			factor = disposable.Div(currentSpending)
		}
		for _, cat := range categories.Variable {
			plan.CategoryLimits[cat] = profile.Get(cat).Mul(factor).Round(2)
		}
		p.logger.WithField("mode", "historical").Debug("Budget plan generated")
		return plan
	}

	for _, cat := range categories.Variable {
		plan.CategoryLimits[cat] = disposable.Mul(categories.StandardAllocation[cat]).Round(2)
	}
	plan.Recommendations = append(plan.Recommendations, RecommendationStandard)
	p.logger.WithField("mode", "standard_allocation").Debug("Budget plan generated")
	return plan
}

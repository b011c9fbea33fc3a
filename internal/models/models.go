// Package models defines the core data types shared across the budgeting pipeline.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Profile field names. Income and fixed-cost fields are fixed; variable spending
// fields carry the canonical category names.
const (
	FieldMonthlyIncome  = "monthly_income"
	FieldFinancialAid   = "financial_aid"
	FieldHousing        = "housing"
	FieldTuition        = "tuition"
	FieldTransportation = "transportation"
)

// Profile is a sparse mapping of named currency amounts describing a student's
// income, fixed costs and historical variable spending. Absent fields read as zero.
type Profile map[string]decimal.Decimal

// Get returns the amount stored under field, or zero when the field is absent.
func (p Profile) Get(field string) decimal.Decimal {
	if p == nil {
		return decimal.Zero
	}
	if v, ok := p[field]; ok {
		return v
	}
	return decimal.Zero
}

// Merge applies partial on top of the profile, last write wins per field.
// The receiver must be non-nil.
func (p Profile) Merge(partial Profile) {
	for field, value := range partial {
		p[field] = value
	}
}

// BudgetPlan is the immutable result of one planning run.
type BudgetPlan struct {
	TotalIncome      decimal.Decimal            `json:"total_income"`
	FixedCosts       map[string]decimal.Decimal `json:"fixed_costs"`
	DisposableIncome decimal.Decimal            `json:"disposable_income"`
	CategoryLimits   map[string]decimal.Decimal `json:"category_limits"`
	Recommendations  []string                   `json:"recommendations"`

	// Timestamp is set by the memory store when a plan is persisted.
	Timestamp string `json:"timestamp,omitempty"`
}

// Transaction is one spending record from an uploaded history.
// Category is free text as found in the source file; mapping to canonical
// budget categories happens at alert time.
type Transaction struct {
	Date     time.Time       `json:"date"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// CategoryTotal pairs a raw category with its total spend, used for ranked output.
type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// SpendingAnalysis is the aggregate view over a transaction set.
type SpendingAnalysis struct {
	TotalSpent           decimal.Decimal            `json:"total_spent"`
	CategoryBreakdown    map[string]decimal.Decimal `json:"category_breakdown"`
	AverageDailySpending decimal.Decimal            `json:"average_daily_spending"`
	MonthlySpending      map[string]decimal.Decimal `json:"monthly_spending"`
	TopCategories        []CategoryTotal            `json:"top_categories"`
}

// AlertsResult holds threshold alerts plus spending aggregated into canonical categories.
type AlertsResult struct {
	Alerts             []string                   `json:"alerts"`
	AggregatedSpending map[string]decimal.Decimal `json:"aggregated_spending"`
}

// Trend classifications for a forecast.
const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
)

// Forecast is the predicted next-month spend. When fewer than two months of
// history exist, Note explains the degenerate result and Trend is empty.
type Forecast struct {
	PredictedSpending decimal.Decimal `json:"predicted_spending"`
	Trend             string          `json:"trend,omitempty"`
	Note              string          `json:"note,omitempty"`
}

// Chat roles stored in conversation history.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one stored conversation turn.
type ChatMessage struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

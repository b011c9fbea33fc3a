// Package categories defines the canonical budget categories and maps
// free-text transaction categories onto them.
package categories

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Canonical budget categories. Variable categories carry spending limits;
// Transportation is a mapping target but is budgeted as a fixed cost, so it
// never carries a variable limit.
const (
	Food           = "food"
	BooksSupplies  = "books_supplies"
	Entertainment  = "entertainment"
	PersonalCare   = "personal_care"
	Technology     = "technology"
	HealthWellness = "health_wellness"
	Miscellaneous  = "miscellaneous"
	Transportation = "transportation"
)

// Variable is the closed, ordered set of categories that receive spending
// limits. Alert output follows this order.
var Variable = []string{
	Food,
	BooksSupplies,
	Entertainment,
	PersonalCare,
	Technology,
	HealthWellness,
	Miscellaneous,
}

// StandardAllocation holds the fixed percentage split of disposable income
// used when no historical variable spending is available. The shares sum to 1.0.
var StandardAllocation = map[string]decimal.Decimal{
	Food:           decimal.NewFromFloat(0.35),
	BooksSupplies:  decimal.NewFromFloat(0.15),
	Entertainment:  decimal.NewFromFloat(0.10),
	PersonalCare:   decimal.NewFromFloat(0.10),
	Technology:     decimal.NewFromFloat(0.10),
	HealthWellness: decimal.NewFromFloat(0.10),
	Miscellaneous:  decimal.NewFromFloat(0.10),
}

// builtinMappings maps known raw transaction categories (lower-cased) to
// canonical categories. The misspellings match what the transaction exports
// actually contain.
var builtinMappings = map[string]string{
	"restuarant":     Food,
	"coffe":          Food,
	"market":         Food,
	"business_lunch": Food,
	"transport":      Transportation,
	"taxi":           Transportation,
	"travel":         Transportation,
	"rent_car":       Transportation,
	"clothing":       PersonalCare,
	"phone":          Technology,
	"learning":       BooksSupplies,
	"events":         Entertainment,
	"film/enjoyment": Entertainment,
	"sport":          Entertainment,
	"health":         HealthWellness,
	"communal":       Miscellaneous,
	"other":          Miscellaneous,
	"motel":          Miscellaneous,
}

// Mapper resolves free-text transaction categories to canonical budget
// categories. Lookups are case-insensitive; unknown categories fall back to
// miscellaneous.
type Mapper struct {
	mappings map[string]string
}

// NewMapper returns a Mapper loaded with the built-in category table.
func NewMapper() *Mapper {
	mappings := make(map[string]string, len(builtinMappings))
	for raw, canonical := range builtinMappings {
		mappings[raw] = canonical
	}
	return &Mapper{mappings: mappings}
}

// Map returns the canonical category for a raw transaction category.
func (m *Mapper) Map(raw string) string {
	if canonical, ok := m.mappings[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return canonical
	}
	return Miscellaneous
}

// AddMapping registers an extra raw-to-canonical mapping. Built-in entries
// win on conflict so the shipped table stays authoritative, and targets
// outside the canonical set are ignored.
func (m *Mapper) AddMapping(raw, canonical string) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	canonical = strings.ToLower(strings.TrimSpace(canonical))
	if raw == "" || !isCanonical(canonical) {
		return
	}
	if _, exists := builtinMappings[raw]; exists {
		return
	}
	m.mappings[raw] = canonical
}

func isCanonical(name string) bool {
	if name == Transportation {
		return true
	}
	for _, c := range Variable {
		if name == c {
			return true
		}
	}
	return false
}

// Package plan implements the plan command, which updates the stored student
// profile and generates a monthly budget plan from it.
package plan

import (
	"encoding/json"
	"fmt"
	"strings"

	"vivek/budget-buddy/cmd/root"
	"vivek/budget-buddy/internal/categories"
	"vivek/budget-buddy/internal/models"
	"vivek/budget-buddy/internal/planner"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	noSaveFlag bool

	// profileFlags maps profile field names to their flag values.
	profileFlags = map[string]*float64{}

	// Cmd is the plan command
	Cmd = &cobra.Command{
		Use:   "plan",
		Short: "Generate a monthly budget plan from the stored profile.",
		Long: `Merges any profile flags into the stored student profile, derives a
monthly budget plan (fixed costs, disposable income and per-category
spending limits) and prints it as JSON.

When the profile carries per-category spending (e.g. --food), limits are
scaled from those habits; otherwise a standard allocation is applied.`,
		RunE: run,
	}
)

func init() {
	addProfileFlag(models.FieldMonthlyIncome, "income", "Monthly income")
	addProfileFlag(models.FieldFinancialAid, "aid", "Monthly financial aid")
	addProfileFlag(models.FieldHousing, "housing", "Monthly housing cost")
	addProfileFlag(models.FieldTuition, "tuition", "Semester tuition, spread over the configured number of months")
	addProfileFlag(models.FieldTransportation, "transportation", "Monthly transportation cost")

	for _, cat := range categories.Variable {
		addProfileFlag(cat, strings.ReplaceAll(cat, "_", "-"), fmt.Sprintf("Current monthly %s spending", strings.ReplaceAll(cat, "_", " ")))
	}

	Cmd.Flags().BoolVar(&noSaveFlag, "no-save", false, "Do not persist the generated plan")
}

func addProfileFlag(field, name, usage string) {
	value := new(float64)
	profileFlags[field] = value
	Cmd.Flags().Float64Var(value, name, 0, usage)
}

func run(cmd *cobra.Command, args []string) error {
	root.Log.Info("Generating budget plan")

	mem := root.OpenMemory()

	partial := models.Profile{}
	for field, value := range profileFlags {
		if cmd.Flags().Changed(flagNameFor(field)) {
			partial[field] = decimal.NewFromFloat(*value)
		}
	}
	if len(partial) > 0 {
		if err := mem.UpdateProfile(partial); err != nil {
			return fmt.Errorf("failed to update profile: %w", err)
		}
	}

	p := planner.NewWithTuitionMonths(root.Cfg.Budget.TuitionMonths, root.Logger())
	budgetPlan := p.Generate(mem.Profile())

	if !noSaveFlag {
		if err := mem.SaveBudgetPlan(budgetPlan); err != nil {
			return fmt.Errorf("failed to save budget plan: %w", err)
		}
	}

	data, err := json.MarshalIndent(budgetPlan, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal budget plan: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// flagNameFor converts a profile field name to its flag spelling.
func flagNameFor(field string) string {
	switch field {
	case models.FieldMonthlyIncome:
		return "income"
	case models.FieldFinancialAid:
		return "aid"
	default:
		return strings.ReplaceAll(field, "_", "-")
	}
}

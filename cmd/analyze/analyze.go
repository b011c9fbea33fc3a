// Package analyze implements the analyze command, which runs an uploaded
// transaction CSV through spending analysis, alert checks and forecasting.
package analyze

import (
	"encoding/json"
	"fmt"

	"vivek/budget-buddy/cmd/root"
	"vivek/budget-buddy/internal/alerts"
	"vivek/budget-buddy/internal/analyzer"
	"vivek/budget-buddy/internal/forecast"

	"github.com/spf13/cobra"
)

var (
	inputFile string

	// Cmd is the analyze command
	Cmd = &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a transaction CSV: spending breakdown, alerts and forecast.",
		Long: `Parses a transaction history CSV (date, category, amount columns),
aggregates spending by category, day and month, checks the totals against
the most recently saved budget plan and forecasts next month's spending.`,
		RunE: run,
	}
)

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input CSV file with transaction history")
	if err := Cmd.MarkFlagRequired("input"); err != nil {
		root.Log.Fatalf("Failed to mark input flag as required: %v", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	root.Log.Infof("Analyzing transactions from %s", inputFile)

	transactions, err := root.NewParser().ParseFile(inputFile)
	if err != nil {
		return fmt.Errorf("failed to parse transactions: %w", err)
	}

	analysis := analyzer.New(root.Logger()).Analyze(transactions)
	if err := printSection("Spending Analysis", analysis); err != nil {
		return err
	}

	mem := root.OpenMemory()
	if plan, ok := mem.LatestBudgetPlan(); ok {
		result := alerts.NewWithRatio(root.NewMapper(), root.Cfg.Budget.NearLimitRatio, root.Logger()).Check(plan, analysis)
		if err := printSection("Alerts", result); err != nil {
			return err
		}
	} else {
		root.Log.Warn("No saved budget plan found, skipping alert checks. Run 'budget-buddy plan' first.")
	}

	prediction := forecast.New(root.Logger()).Predict(transactions)
	return printSection("Forecast", prediction)
}

func printSection(title string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", title, err)
	}
	fmt.Printf("--- %s ---\n%s\n", title, string(data))
	return nil
}

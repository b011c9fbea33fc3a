// Package pipeline implements the pipeline command, a demonstration run of the
// whole budgeting flow against a fixed mock profile.
package pipeline

import (
	"encoding/json"
	"fmt"
	"strconv"

	"vivek/budget-buddy/cmd/root"
	"vivek/budget-buddy/internal/alerts"
	"vivek/budget-buddy/internal/analyzer"
	"vivek/budget-buddy/internal/assistant"
	"vivek/budget-buddy/internal/forecast"
	"vivek/budget-buddy/internal/logging"
	"vivek/budget-buddy/internal/models"
	"vivek/budget-buddy/internal/planner"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// Cmd is the pipeline command
var Cmd = &cobra.Command{
	Use:   "pipeline [student-id]",
	Short: "Run the full budgeting pipeline against a mock student profile.",
	Long: `Runs planning, spending analysis, alert checks, forecasting and an
offline literacy tip end to end against a fixed mock profile, printing
each stage's result. Useful as a smoke test and a demonstration.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

// mockProfile is the fixed demonstration profile.
func mockProfile() models.Profile {
	return models.Profile{
		models.FieldMonthlyIncome:  decimal.NewFromInt(1000),
		models.FieldFinancialAid:   decimal.Zero,
		models.FieldHousing:        decimal.NewFromInt(400),
		models.FieldTuition:        decimal.NewFromInt(200),
		models.FieldTransportation: decimal.NewFromInt(50),
	}
}

func run(cmd *cobra.Command, args []string) error {
	studentID := 0
	if len(args) > 0 {
		if id, err := strconv.Atoi(args[0]); err == nil {
			studentID = id
		}
	}
	logger := root.Logger()
	logger.WithField(logging.FieldStudentID, studentID).Info("Running budgeting pipeline")

	plan := planner.NewWithTuitionMonths(root.Cfg.Budget.TuitionMonths, logger).Generate(mockProfile())
	if err := printSection("Budget Plan", plan); err != nil {
		return err
	}

	var transactions []models.Transaction
	analysis := analyzer.New(logger).Analyze(transactions)
	if err := printSection("Spending Analysis", analysis); err != nil {
		return err
	}

	result := alerts.NewWithRatio(root.NewMapper(), root.Cfg.Budget.NearLimitRatio, logger).Check(plan, analysis)
	if err := printSection("Alerts", result); err != nil {
		return err
	}

	prediction := forecast.New(logger).Predict(transactions)
	if err := printSection("Forecast", prediction); err != nil {
		return err
	}

	// The tip always runs offline; the pipeline must work without an API key.
	tip := assistant.New(nil, nil, logger).Ask(cmd.Context(), "How do I start saving?")
	fmt.Printf("--- Literacy Tip ---\n%s\n", tip.Text)
	return nil
}

func printSection(title string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", title, err)
	}
	fmt.Printf("--- %s ---\n%s\n", title, string(data))
	return nil
}

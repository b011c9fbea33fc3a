// budget-buddy is a personal budgeting assistant for students. It derives a
// monthly budget plan from a student profile, analyzes transaction history,
// raises overspending alerts, forecasts future spending and answers
// financial-literacy questions through a guarded chat interface.
package main

import (
	"os"

	"vivek/budget-buddy/cmd/analyze"
	"vivek/budget-buddy/cmd/chat"
	"vivek/budget-buddy/cmd/pipeline"
	"vivek/budget-buddy/cmd/plan"
	"vivek/budget-buddy/cmd/root"
)

func main() {
	root.Cmd.AddCommand(plan.Cmd)
	root.Cmd.AddCommand(analyze.Cmd)
	root.Cmd.AddCommand(chat.Cmd)
	root.Cmd.AddCommand(pipeline.Cmd)

	if err := root.Cmd.Execute(); err != nil {
		root.Log.Errorf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
